package assessment

import (
	"github.com/google/uuid"
	"gorm.io/gorm"

	types "github.com/yungbote/maturitypath-backend/internal/domain"
	"github.com/yungbote/maturitypath-backend/internal/pkg/dbctx"
	"github.com/yungbote/maturitypath-backend/internal/platform/logger"
)

type AssessmentRepo interface {
	Create(dbc dbctx.Context, rows []*types.Assessment) ([]*types.Assessment, error)
	GetByIDs(dbc dbctx.Context, ids []uuid.UUID) ([]*types.Assessment, error)
	GetByKeys(dbc dbctx.Context, keys []string) ([]*types.Assessment, error)
	List(dbc dbctx.Context) ([]*types.Assessment, error)
	Count(dbc dbctx.Context) (int64, error)
}

type assessmentRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewAssessmentRepo(db *gorm.DB, baseLog *logger.Logger) AssessmentRepo {
	repoLog := baseLog.With("repo", "AssessmentRepo")
	return &assessmentRepo{db: db, log: repoLog}
}

func (r *assessmentRepo) Create(dbc dbctx.Context, rows []*types.Assessment) ([]*types.Assessment, error) {
	transaction := dbc.Tx
	if transaction == nil {
		transaction = r.db
	}

	if len(rows) == 0 {
		return []*types.Assessment{}, nil
	}

	if err := transaction.WithContext(dbc.Ctx).Create(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *assessmentRepo) GetByIDs(dbc dbctx.Context, ids []uuid.UUID) ([]*types.Assessment, error) {
	transaction := dbc.Tx
	if transaction == nil {
		transaction = r.db
	}

	var results []*types.Assessment
	if len(ids) == 0 {
		return results, nil
	}

	if err := transaction.WithContext(dbc.Ctx).
		Where("id IN ?", ids).
		Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}

func (r *assessmentRepo) GetByKeys(dbc dbctx.Context, keys []string) ([]*types.Assessment, error) {
	transaction := dbc.Tx
	if transaction == nil {
		transaction = r.db
	}

	var results []*types.Assessment
	if len(keys) == 0 {
		return results, nil
	}

	if err := transaction.WithContext(dbc.Ctx).
		Where("key IN ?", keys).
		Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}

func (r *assessmentRepo) List(dbc dbctx.Context) ([]*types.Assessment, error) {
	transaction := dbc.Tx
	if transaction == nil {
		transaction = r.db
	}

	var results []*types.Assessment
	if err := transaction.WithContext(dbc.Ctx).
		Order("order_index ASC").
		Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}

func (r *assessmentRepo) Count(dbc dbctx.Context) (int64, error) {
	transaction := dbc.Tx
	if transaction == nil {
		transaction = r.db
	}

	var count int64
	if err := transaction.WithContext(dbc.Ctx).
		Model(&types.Assessment{}).
		Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
