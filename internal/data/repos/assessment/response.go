package assessment

import (
	"hash/fnv"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	types "github.com/yungbote/maturitypath-backend/internal/domain"
	"github.com/yungbote/maturitypath-backend/internal/pkg/dbctx"
	"github.com/yungbote/maturitypath-backend/internal/platform/logger"
)

type AssessmentResponseRepo interface {
	Create(dbc dbctx.Context, rows []*types.AssessmentResponse) ([]*types.AssessmentResponse, error)
	GetByIDs(dbc dbctx.Context, ids []uuid.UUID) ([]*types.AssessmentResponse, error)
	GetByUserID(dbc dbctx.Context, userID uuid.UUID) ([]*types.AssessmentResponse, error)
	GetInProgress(dbc dbctx.Context, userID, assessmentID uuid.UUID) (*types.AssessmentResponse, error)
	// AdvisoryLockForCompute serializes concurrent compute calls for one
	// response; the lock is transaction-scoped, so dbc.Tx must be non-nil.
	AdvisoryLockForCompute(dbc dbctx.Context, responseID uuid.UUID) error
	// Finalize flips the response to completed and stores the overall
	// aggregates. Must run inside the same transaction as the priority writes.
	Finalize(dbc dbctx.Context, responseID uuid.UUID, overallScore, overallGap float64, completedAt time.Time) error
}

type assessmentResponseRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewAssessmentResponseRepo(db *gorm.DB, baseLog *logger.Logger) AssessmentResponseRepo {
	repoLog := baseLog.With("repo", "AssessmentResponseRepo")
	return &assessmentResponseRepo{db: db, log: repoLog}
}

func (r *assessmentResponseRepo) Create(dbc dbctx.Context, rows []*types.AssessmentResponse) ([]*types.AssessmentResponse, error) {
	transaction := dbc.Tx
	if transaction == nil {
		transaction = r.db
	}

	if len(rows) == 0 {
		return []*types.AssessmentResponse{}, nil
	}

	if err := transaction.WithContext(dbc.Ctx).Create(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *assessmentResponseRepo) GetByIDs(dbc dbctx.Context, ids []uuid.UUID) ([]*types.AssessmentResponse, error) {
	transaction := dbc.Tx
	if transaction == nil {
		transaction = r.db
	}

	var results []*types.AssessmentResponse
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

func (r *assessmentResponseRepo) GetByUserID(dbc dbctx.Context, userID uuid.UUID) ([]*types.AssessmentResponse, error) {
	transaction := dbc.Tx
	if transaction == nil {
		transaction = r.db
	}

	var results []*types.AssessmentResponse
	if userID == uuid.Nil {
		return results, nil
	}

	if err := transaction.WithContext(dbc.Ctx).
		Where("user_id = ?", userID).
		Order("started_at DESC").
		Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}

func (r *assessmentResponseRepo) GetInProgress(dbc dbctx.Context, userID, assessmentID uuid.UUID) (*types.AssessmentResponse, error) {
	transaction := dbc.Tx
	if transaction == nil {
		transaction = r.db
	}

	if userID == uuid.Nil || assessmentID == uuid.Nil {
		return nil, nil
	}

	var results []*types.AssessmentResponse
	if err := transaction.WithContext(dbc.Ctx).
		Where("user_id = ? AND assessment_id = ? AND status = ?", userID, assessmentID, types.ResponseStatusInProgress).
		Order("started_at DESC").
		Limit(1).
		Find(&results).Error; err != nil {
		return nil, err
	}
	if len(results) == 0 {
		return nil, nil
	}
	return results[0], nil
}

func (r *assessmentResponseRepo) AdvisoryLockForCompute(dbc dbctx.Context, responseID uuid.UUID) error {
	if dbc.Tx == nil || responseID == uuid.Nil {
		return gorm.ErrInvalidTransaction
	}
	return dbc.Tx.WithContext(dbc.Ctx).
		Exec("SELECT pg_advisory_xact_lock(?)", advisoryKey64("response_compute", responseID)).Error
}

func (r *assessmentResponseRepo) Finalize(dbc dbctx.Context, responseID uuid.UUID, overallScore, overallGap float64, completedAt time.Time) error {
	transaction := dbc.Tx
	if transaction == nil {
		transaction = r.db
	}

	if responseID == uuid.Nil {
		return nil
	}

	return transaction.WithContext(dbc.Ctx).
		Model(&types.AssessmentResponse{}).
		Where("id = ?", responseID).
		Updates(map[string]interface{}{
			"status":        types.ResponseStatusCompleted,
			"overall_score": overallScore,
			"overall_gap":   overallGap,
			"completed_at":  completedAt,
		}).Error
}

func advisoryKey64(namespace string, id uuid.UUID) int64 {
	h := fnv.New64a()
	_, _ = h.Write([]byte(namespace))
	_, _ = h.Write([]byte{0})
	_, _ = h.Write(id[:])
	return int64(h.Sum64())
}
