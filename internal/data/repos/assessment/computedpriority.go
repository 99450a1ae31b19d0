package assessment

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	types "github.com/yungbote/maturitypath-backend/internal/domain"
	"github.com/yungbote/maturitypath-backend/internal/pkg/dbctx"
	"github.com/yungbote/maturitypath-backend/internal/platform/logger"
)

type ComputedPriorityRepo interface {
	// UpsertBatch writes one row per dimension in a single statement, keyed on
	// (response_id, dimension_id): recomputation overwrites instead of
	// duplicating. Callers pass the whole set for a response at once.
	UpsertBatch(dbc dbctx.Context, rows []*types.ComputedPriority) error
	// GetByResponseID returns rows in rank order.
	GetByResponseID(dbc dbctx.Context, responseID uuid.UUID) ([]*types.ComputedPriority, error)
	CountByResponseID(dbc dbctx.Context, responseID uuid.UUID) (int64, error)
	FullDeleteByResponseID(dbc dbctx.Context, responseID uuid.UUID) error
}

type computedPriorityRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewComputedPriorityRepo(db *gorm.DB, baseLog *logger.Logger) ComputedPriorityRepo {
	repoLog := baseLog.With("repo", "ComputedPriorityRepo")
	return &computedPriorityRepo{db: db, log: repoLog}
}

func (r *computedPriorityRepo) UpsertBatch(dbc dbctx.Context, rows []*types.ComputedPriority) error {
	transaction := dbc.Tx
	if transaction == nil {
		transaction = r.db
	}

	if len(rows) == 0 {
		return nil
	}

	return transaction.WithContext(dbc.Ctx).
		Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "response_id"}, {Name: "dimension_id"}},
			DoUpdates: clause.AssignmentColumns([]string{
				"dimension_score",
				"dimension_gap",
				"priority_score",
				"rank_order",
				"recommendations",
				"computed_at",
				"updated_at",
			}),
		}).
		Create(&rows).Error
}

func (r *computedPriorityRepo) GetByResponseID(dbc dbctx.Context, responseID uuid.UUID) ([]*types.ComputedPriority, error) {
	transaction := dbc.Tx
	if transaction == nil {
		transaction = r.db
	}

	var results []*types.ComputedPriority
	if responseID == uuid.Nil {
		return results, nil
	}

	if err := transaction.WithContext(dbc.Ctx).
		Where("response_id = ?", responseID).
		Order("rank_order ASC, priority_score DESC").
		Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}

func (r *computedPriorityRepo) CountByResponseID(dbc dbctx.Context, responseID uuid.UUID) (int64, error) {
	transaction := dbc.Tx
	if transaction == nil {
		transaction = r.db
	}

	if responseID == uuid.Nil {
		return 0, nil
	}

	var count int64
	if err := transaction.WithContext(dbc.Ctx).
		Model(&types.ComputedPriority{}).
		Where("response_id = ?", responseID).
		Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

func (r *computedPriorityRepo) FullDeleteByResponseID(dbc dbctx.Context, responseID uuid.UUID) error {
	transaction := dbc.Tx
	if transaction == nil {
		transaction = r.db
	}

	if responseID == uuid.Nil {
		return nil
	}

	return transaction.WithContext(dbc.Ctx).
		Where("response_id = ?", responseID).
		Delete(&types.ComputedPriority{}).Error
}
