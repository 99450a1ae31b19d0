package assessment

import (
	"github.com/google/uuid"
	"gorm.io/gorm"

	types "github.com/yungbote/maturitypath-backend/internal/domain"
	"github.com/yungbote/maturitypath-backend/internal/pkg/dbctx"
	"github.com/yungbote/maturitypath-backend/internal/platform/logger"
)

type TopicResponseRepo interface {
	// Upsert writes the answer for (response, topic), overwriting any previous
	// one. At most one TopicResponse exists per key.
	Upsert(dbc dbctx.Context, row *types.TopicResponse) error
	GetByResponseID(dbc dbctx.Context, responseID uuid.UUID) ([]*types.TopicResponse, error)
	CountByResponseID(dbc dbctx.Context, responseID uuid.UUID) (int64, error)
}

type topicResponseRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewTopicResponseRepo(db *gorm.DB, baseLog *logger.Logger) TopicResponseRepo {
	repoLog := baseLog.With("repo", "TopicResponseRepo")
	return &topicResponseRepo{db: db, log: repoLog}
}

func (r *topicResponseRepo) Upsert(dbc dbctx.Context, row *types.TopicResponse) error {
	transaction := dbc.Tx
	if transaction == nil {
		transaction = r.db
	}

	if row == nil {
		return nil
	}

	return transaction.WithContext(dbc.Ctx).
		Where("response_id = ? AND topic_id = ?", row.ResponseID, row.TopicID).
		Assign(map[string]interface{}{
			"current_rating":     row.CurrentRating,
			"target_rating":      row.TargetRating,
			"time_spent_seconds": row.TimeSpentSeconds,
			"notes":              row.Notes,
		}).
		FirstOrCreate(row).Error
}

func (r *topicResponseRepo) GetByResponseID(dbc dbctx.Context, responseID uuid.UUID) ([]*types.TopicResponse, error) {
	transaction := dbc.Tx
	if transaction == nil {
		transaction = r.db
	}

	var results []*types.TopicResponse
	if responseID == uuid.Nil {
		return results, nil
	}

	if err := transaction.WithContext(dbc.Ctx).
		Where("response_id = ?", responseID).
		Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}

func (r *topicResponseRepo) CountByResponseID(dbc dbctx.Context, responseID uuid.UUID) (int64, error) {
	transaction := dbc.Tx
	if transaction == nil {
		transaction = r.db
	}

	if responseID == uuid.Nil {
		return 0, nil
	}

	var count int64
	if err := transaction.WithContext(dbc.Ctx).
		Model(&types.TopicResponse{}).
		Where("response_id = ?", responseID).
		Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
