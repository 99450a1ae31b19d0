package services

import (
	"context"
	"fmt"
	"math"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/yungbote/maturitypath-backend/internal/data/repos/assessment"
	types "github.com/yungbote/maturitypath-backend/internal/domain"
	"github.com/yungbote/maturitypath-backend/internal/pkg/dbctx"
	"github.com/yungbote/maturitypath-backend/internal/platform/logger"
)

var (
	ErrAssessmentNotFound  = fmt.Errorf("assessment not found")
	ErrTopicNotFound       = fmt.Errorf("topic not found")
	ErrResponseNotEditable = fmt.Errorf("response is already completed")
	ErrNotResponseOwner    = fmt.Errorf("response belongs to another user")
)

// SubmitAnswerInput carries one topic answer from the capture flow.
type SubmitAnswerInput struct {
	TopicID          uuid.UUID `json:"topic_id"`
	CurrentRating    float64   `json:"current_rating"`
	TargetRating     float64   `json:"target_rating"`
	TimeSpentSeconds int       `json:"time_spent_seconds"`
	Notes            string    `json:"notes"`
}

// ResponseProgress reports how far along a response is.
type ResponseProgress struct {
	ResponseID uuid.UUID `json:"response_id"`
	Status     string    `json:"status"`
	Answered   int       `json:"answered"`
	Total      int       `json:"total"`
}

type ResponseService interface {
	// StartResponse returns the user's in-progress response for the
	// assessment, creating one if none exists.
	StartResponse(ctx context.Context, userID, assessmentID uuid.UUID) (*types.AssessmentResponse, error)
	// SubmitAnswer records or overwrites one topic answer. Ratings must lie in
	// [1,5] at 0.5 increments; the response must be in progress and owned by
	// the caller.
	SubmitAnswer(ctx context.Context, userID, responseID uuid.UUID, in SubmitAnswerInput) error
	Progress(ctx context.Context, userID, responseID uuid.UUID) (*ResponseProgress, error)
	ListForUser(ctx context.Context, userID uuid.UUID) ([]*types.AssessmentResponse, error)
	// GetResponse loads a response and enforces ownership.
	GetResponse(ctx context.Context, userID, responseID uuid.UUID) (*types.AssessmentResponse, error)
}

type responseService struct {
	db  *gorm.DB
	log *logger.Logger

	assessments    assessment.AssessmentRepo
	topics         assessment.TopicRepo
	responses      assessment.AssessmentResponseRepo
	topicResponses assessment.TopicResponseRepo
}

func NewResponseService(
	db *gorm.DB,
	baseLog *logger.Logger,
	assessments assessment.AssessmentRepo,
	topics assessment.TopicRepo,
	responses assessment.AssessmentResponseRepo,
	topicResponses assessment.TopicResponseRepo,
) ResponseService {
	return &responseService{
		db:             db,
		log:            baseLog.With("service", "ResponseService"),
		assessments:    assessments,
		topics:         topics,
		responses:      responses,
		topicResponses: topicResponses,
	}
}

func (s *responseService) StartResponse(ctx context.Context, userID, assessmentID uuid.UUID) (*types.AssessmentResponse, error) {
	if userID == uuid.Nil {
		return nil, fmt.Errorf("missing user id")
	}

	rows, err := s.assessments.GetByIDs(dbctx.Context{Ctx: ctx}, []uuid.UUID{assessmentID})
	if err != nil {
		return nil, fmt.Errorf("failed to load assessment: %w", err)
	}
	if len(rows) == 0 {
		return nil, ErrAssessmentNotFound
	}

	var resp *types.AssessmentResponse
	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		dbc := dbctx.Context{Ctx: ctx, Tx: tx}
		existing, err := s.responses.GetInProgress(dbc, userID, assessmentID)
		if err != nil {
			return err
		}
		if existing != nil {
			resp = existing
			return nil
		}
		created, err := s.responses.Create(dbc, []*types.AssessmentResponse{{
			ID:           uuid.New(),
			UserID:       userID,
			AssessmentID: assessmentID,
			Status:       types.ResponseStatusInProgress,
		}})
		if err != nil {
			return err
		}
		resp = created[0]
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to start response: %w", err)
	}
	return resp, nil
}

func (s *responseService) SubmitAnswer(ctx context.Context, userID, responseID uuid.UUID, in SubmitAnswerInput) error {
	if err := ValidateRating(in.CurrentRating); err != nil {
		return fmt.Errorf("current_rating: %w", err)
	}
	if err := ValidateRating(in.TargetRating); err != nil {
		return fmt.Errorf("target_rating: %w", err)
	}
	if in.TimeSpentSeconds < 0 {
		return fmt.Errorf("time_spent_seconds must not be negative")
	}

	dbc := dbctx.Context{Ctx: ctx}
	resp, err := s.ownedResponse(dbc, userID, responseID)
	if err != nil {
		return err
	}
	if resp.Status != types.ResponseStatusInProgress {
		return ErrResponseNotEditable
	}

	topicRows, err := s.topics.GetByIDs(dbc, []uuid.UUID{in.TopicID})
	if err != nil {
		return fmt.Errorf("failed to load topic: %w", err)
	}
	if len(topicRows) == 0 {
		return ErrTopicNotFound
	}

	return s.topicResponses.Upsert(dbc, &types.TopicResponse{
		ID:               uuid.New(),
		ResponseID:       responseID,
		TopicID:          in.TopicID,
		CurrentRating:    in.CurrentRating,
		TargetRating:     in.TargetRating,
		TimeSpentSeconds: in.TimeSpentSeconds,
		Notes:            in.Notes,
	})
}

func (s *responseService) Progress(ctx context.Context, userID, responseID uuid.UUID) (*ResponseProgress, error) {
	dbc := dbctx.Context{Ctx: ctx}
	resp, err := s.ownedResponse(dbc, userID, responseID)
	if err != nil {
		return nil, err
	}

	total, err := s.topics.CountByAssessmentID(dbc, resp.AssessmentID)
	if err != nil {
		return nil, fmt.Errorf("failed to count topics: %w", err)
	}
	answered, err := s.topicResponses.CountByResponseID(dbc, responseID)
	if err != nil {
		return nil, fmt.Errorf("failed to count answers: %w", err)
	}

	return &ResponseProgress{
		ResponseID: responseID,
		Status:     resp.Status,
		Answered:   int(answered),
		Total:      int(total),
	}, nil
}

func (s *responseService) ListForUser(ctx context.Context, userID uuid.UUID) ([]*types.AssessmentResponse, error) {
	return s.responses.GetByUserID(dbctx.Context{Ctx: ctx}, userID)
}

func (s *responseService) GetResponse(ctx context.Context, userID, responseID uuid.UUID) (*types.AssessmentResponse, error) {
	return s.ownedResponse(dbctx.Context{Ctx: ctx}, userID, responseID)
}

func (s *responseService) ownedResponse(dbc dbctx.Context, userID, responseID uuid.UUID) (*types.AssessmentResponse, error) {
	rows, err := s.responses.GetByIDs(dbc, []uuid.UUID{responseID})
	if err != nil {
		return nil, fmt.Errorf("failed to load response: %w", err)
	}
	if len(rows) == 0 {
		return nil, ErrResponseNotFound
	}
	resp := rows[0]
	if resp.UserID != userID {
		return nil, ErrNotResponseOwner
	}
	return resp, nil
}

// ValidateRating enforces the rating domain: [1,5] at 0.5 increments.
func ValidateRating(v float64) error {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return fmt.Errorf("rating must be a finite number")
	}
	if v < 1 || v > 5 {
		return fmt.Errorf("rating must be between 1 and 5")
	}
	if math.Mod(v*2, 1) != 0 {
		return fmt.Errorf("rating must be in 0.5 increments")
	}
	return nil
}
