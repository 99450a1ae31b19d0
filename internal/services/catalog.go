package services

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/yungbote/maturitypath-backend/internal/data/repos/assessment"
	types "github.com/yungbote/maturitypath-backend/internal/domain"
	"github.com/yungbote/maturitypath-backend/internal/pkg/dbctx"
	"github.com/yungbote/maturitypath-backend/internal/platform/logger"
)

// AssessmentDetail is one assessment with its full dimension and topic tree,
// ordered by order_index at every level.
type AssessmentDetail struct {
	Assessment *types.Assessment  `json:"assessment"`
	Dimensions []*DimensionDetail `json:"dimensions"`
}

type DimensionDetail struct {
	Dimension *types.Dimension `json:"dimension"`
	Topics    []*types.Topic   `json:"topics"`
}

type CatalogService interface {
	ListAssessments(ctx context.Context) ([]*types.Assessment, error)
	GetAssessment(ctx context.Context, assessmentID uuid.UUID) (*AssessmentDetail, error)
	GetAssessmentByKey(ctx context.Context, key string) (*AssessmentDetail, error)
}

type catalogService struct {
	db  *gorm.DB
	log *logger.Logger

	assessments assessment.AssessmentRepo
	dimensions  assessment.DimensionRepo
	topics      assessment.TopicRepo
}

func NewCatalogService(
	db *gorm.DB,
	baseLog *logger.Logger,
	assessments assessment.AssessmentRepo,
	dimensions assessment.DimensionRepo,
	topics assessment.TopicRepo,
) CatalogService {
	return &catalogService{
		db:          db,
		log:         baseLog.With("service", "CatalogService"),
		assessments: assessments,
		dimensions:  dimensions,
		topics:      topics,
	}
}

func (s *catalogService) ListAssessments(ctx context.Context) ([]*types.Assessment, error) {
	return s.assessments.List(dbctx.Context{Ctx: ctx})
}

func (s *catalogService) GetAssessment(ctx context.Context, assessmentID uuid.UUID) (*AssessmentDetail, error) {
	dbc := dbctx.Context{Ctx: ctx}
	rows, err := s.assessments.GetByIDs(dbc, []uuid.UUID{assessmentID})
	if err != nil {
		return nil, fmt.Errorf("failed to load assessment: %w", err)
	}
	if len(rows) == 0 {
		return nil, ErrAssessmentNotFound
	}
	return s.buildDetail(dbc, rows[0])
}

func (s *catalogService) GetAssessmentByKey(ctx context.Context, key string) (*AssessmentDetail, error) {
	dbc := dbctx.Context{Ctx: ctx}
	rows, err := s.assessments.GetByKeys(dbc, []string{key})
	if err != nil {
		return nil, fmt.Errorf("failed to load assessment: %w", err)
	}
	if len(rows) == 0 {
		return nil, ErrAssessmentNotFound
	}
	return s.buildDetail(dbc, rows[0])
}

func (s *catalogService) buildDetail(dbc dbctx.Context, a *types.Assessment) (*AssessmentDetail, error) {
	dims, err := s.dimensions.GetByAssessmentID(dbc, a.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to load dimensions: %w", err)
	}
	dimIDs := make([]uuid.UUID, 0, len(dims))
	for _, d := range dims {
		dimIDs = append(dimIDs, d.ID)
	}
	topics, err := s.topics.GetByDimensionIDs(dbc, dimIDs)
	if err != nil {
		return nil, fmt.Errorf("failed to load topics: %w", err)
	}

	topicsByDim := make(map[uuid.UUID][]*types.Topic, len(dims))
	for _, tp := range topics {
		topicsByDim[tp.DimensionID] = append(topicsByDim[tp.DimensionID], tp)
	}

	detail := &AssessmentDetail{Assessment: a, Dimensions: make([]*DimensionDetail, 0, len(dims))}
	for _, d := range dims {
		detail.Dimensions = append(detail.Dimensions, &DimensionDetail{
			Dimension: d,
			Topics:    topicsByDim[d.ID],
		})
	}
	return detail, nil
}
