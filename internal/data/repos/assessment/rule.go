package assessment

import (
	"github.com/google/uuid"
	"gorm.io/gorm"

	types "github.com/yungbote/maturitypath-backend/internal/domain"
	"github.com/yungbote/maturitypath-backend/internal/pkg/dbctx"
	"github.com/yungbote/maturitypath-backend/internal/platform/logger"
)

type RecommendationRuleRepo interface {
	Create(dbc dbctx.Context, rows []*types.RecommendationRule) ([]*types.RecommendationRule, error)
	GetByIDs(dbc dbctx.Context, ids []uuid.UUID) ([]*types.RecommendationRule, error)
	// GetActiveByTopicIDs returns active rules ordered by priority descending,
	// then order index, then id. Within one topic this ordering is the
	// discovery order the ranker's stable sort preserves for equal priorities.
	GetActiveByTopicIDs(dbc dbctx.Context, topicIDs []uuid.UUID) ([]*types.RecommendationRule, error)
	GetByTopicID(dbc dbctx.Context, topicID uuid.UUID) ([]*types.RecommendationRule, error)
	Update(dbc dbctx.Context, row *types.RecommendationRule) error
	SoftDeleteByIDs(dbc dbctx.Context, ids []uuid.UUID) error
}

type recommendationRuleRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewRecommendationRuleRepo(db *gorm.DB, baseLog *logger.Logger) RecommendationRuleRepo {
	repoLog := baseLog.With("repo", "RecommendationRuleRepo")
	return &recommendationRuleRepo{db: db, log: repoLog}
}

func (r *recommendationRuleRepo) Create(dbc dbctx.Context, rows []*types.RecommendationRule) ([]*types.RecommendationRule, error) {
	transaction := dbc.Tx
	if transaction == nil {
		transaction = r.db
	}

	if len(rows) == 0 {
		return []*types.RecommendationRule{}, nil
	}

	if err := transaction.WithContext(dbc.Ctx).Create(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *recommendationRuleRepo) GetByIDs(dbc dbctx.Context, ids []uuid.UUID) ([]*types.RecommendationRule, error) {
	transaction := dbc.Tx
	if transaction == nil {
		transaction = r.db
	}

	var results []*types.RecommendationRule
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

func (r *recommendationRuleRepo) GetActiveByTopicIDs(dbc dbctx.Context, topicIDs []uuid.UUID) ([]*types.RecommendationRule, error) {
	transaction := dbc.Tx
	if transaction == nil {
		transaction = r.db
	}

	var results []*types.RecommendationRule
	if len(topicIDs) == 0 {
		return results, nil
	}

	if err := transaction.WithContext(dbc.Ctx).
		Where("topic_id IN ? AND active = ?", topicIDs, true).
		Order("priority DESC, order_index ASC, id ASC").
		Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}

func (r *recommendationRuleRepo) GetByTopicID(dbc dbctx.Context, topicID uuid.UUID) ([]*types.RecommendationRule, error) {
	transaction := dbc.Tx
	if transaction == nil {
		transaction = r.db
	}

	var results []*types.RecommendationRule
	if topicID == uuid.Nil {
		return results, nil
	}

	if err := transaction.WithContext(dbc.Ctx).
		Where("topic_id = ?", topicID).
		Order("priority DESC, order_index ASC, id ASC").
		Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}

func (r *recommendationRuleRepo) Update(dbc dbctx.Context, row *types.RecommendationRule) error {
	transaction := dbc.Tx
	if transaction == nil {
		transaction = r.db
	}

	if row == nil {
		return nil
	}

	return transaction.WithContext(dbc.Ctx).Save(row).Error
}

func (r *recommendationRuleRepo) SoftDeleteByIDs(dbc dbctx.Context, ids []uuid.UUID) error {
	transaction := dbc.Tx
	if transaction == nil {
		transaction = r.db
	}

	if len(ids) == 0 {
		return nil
	}

	return transaction.WithContext(dbc.Ctx).
		Where("id IN ?", ids).
		Delete(&types.RecommendationRule{}).Error
}
