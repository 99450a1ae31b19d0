package assessment

import (
	"github.com/google/uuid"
	"gorm.io/gorm"

	types "github.com/yungbote/maturitypath-backend/internal/domain"
	"github.com/yungbote/maturitypath-backend/internal/pkg/dbctx"
	"github.com/yungbote/maturitypath-backend/internal/platform/logger"
)

type DimensionRepo interface {
	Create(dbc dbctx.Context, rows []*types.Dimension) ([]*types.Dimension, error)
	GetByIDs(dbc dbctx.Context, ids []uuid.UUID) ([]*types.Dimension, error)
	// GetByAssessmentID returns the assessment's dimensions in catalog order.
	GetByAssessmentID(dbc dbctx.Context, assessmentID uuid.UUID) ([]*types.Dimension, error)
}

type dimensionRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewDimensionRepo(db *gorm.DB, baseLog *logger.Logger) DimensionRepo {
	repoLog := baseLog.With("repo", "DimensionRepo")
	return &dimensionRepo{db: db, log: repoLog}
}

func (r *dimensionRepo) Create(dbc dbctx.Context, rows []*types.Dimension) ([]*types.Dimension, error) {
	transaction := dbc.Tx
	if transaction == nil {
		transaction = r.db
	}

	if len(rows) == 0 {
		return []*types.Dimension{}, nil
	}

	if err := transaction.WithContext(dbc.Ctx).Create(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *dimensionRepo) GetByIDs(dbc dbctx.Context, ids []uuid.UUID) ([]*types.Dimension, error) {
	transaction := dbc.Tx
	if transaction == nil {
		transaction = r.db
	}

	var results []*types.Dimension
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

func (r *dimensionRepo) GetByAssessmentID(dbc dbctx.Context, assessmentID uuid.UUID) ([]*types.Dimension, error) {
	transaction := dbc.Tx
	if transaction == nil {
		transaction = r.db
	}

	var results []*types.Dimension
	if assessmentID == uuid.Nil {
		return results, nil
	}

	if err := transaction.WithContext(dbc.Ctx).
		Where("assessment_id = ?", assessmentID).
		Order("order_index ASC").
		Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}
