package services

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"github.com/yungbote/maturitypath-backend/internal/data/repos/assessment"
	types "github.com/yungbote/maturitypath-backend/internal/domain"
	"github.com/yungbote/maturitypath-backend/internal/pkg/dbctx"
	"github.com/yungbote/maturitypath-backend/internal/platform/logger"
	"github.com/yungbote/maturitypath-backend/internal/scoring"
)

var (
	ErrResponseNotFound   = fmt.Errorf("assessment response not found")
	ErrResponseIncomplete = fmt.Errorf("assessment response has unanswered topics")
	ErrResultsNotComputed = fmt.Errorf("results have not been computed for this response")
)

// DimensionResult is one dimension's computed outcome as served to callers.
type DimensionResult struct {
	DimensionID     uuid.UUID                        `json:"dimension_id"`
	Key             string                           `json:"key"`
	Title           string                           `json:"title"`
	Score           float64                          `json:"score"`
	Gap             float64                          `json:"gap"`
	PriorityScore   float64                          `json:"priority_score"`
	RankOrder       int                              `json:"rank_order"`
	Recommendations []scoring.RecommendationSnapshot `json:"recommendations"`
}

// ResultsView is the full computed result for one response. TopRecommendations
// is derived on read from the per-dimension lists; it is never persisted.
type ResultsView struct {
	ResponseID         uuid.UUID                        `json:"response_id"`
	Status             string                           `json:"status"`
	OverallScore       float64                          `json:"overall_score"`
	OverallGap         float64                          `json:"overall_gap"`
	ComputedAt         time.Time                        `json:"computed_at"`
	Dimensions         []DimensionResult                `json:"dimensions"`
	TopRecommendations []scoring.RecommendationSnapshot `json:"top_recommendations"`
}

type ResultsService interface {
	// ComputeResults scores a fully-answered response and persists the outcome
	// atomically: priority rows and response finalization commit together or
	// not at all. Calling it again with unchanged inputs overwrites the same
	// rows with identical values (only computed_at moves).
	ComputeResults(ctx context.Context, responseID uuid.UUID) (*ResultsView, error)
	// GetResults reads a previously computed result.
	GetResults(ctx context.Context, responseID uuid.UUID) (*ResultsView, error)
}

type resultsService struct {
	db  *gorm.DB
	log *logger.Logger

	responses      assessment.AssessmentResponseRepo
	topicResponses assessment.TopicResponseRepo
	dimensions     assessment.DimensionRepo
	topics         assessment.TopicRepo
	rules          assessment.RecommendationRuleRepo
	priorities     assessment.ComputedPriorityRepo
}

func NewResultsService(
	db *gorm.DB,
	baseLog *logger.Logger,
	responses assessment.AssessmentResponseRepo,
	topicResponses assessment.TopicResponseRepo,
	dimensions assessment.DimensionRepo,
	topics assessment.TopicRepo,
	rules assessment.RecommendationRuleRepo,
	priorities assessment.ComputedPriorityRepo,
) ResultsService {
	return &resultsService{
		db:             db,
		log:            baseLog.With("service", "ResultsService"),
		responses:      responses,
		topicResponses: topicResponses,
		dimensions:     dimensions,
		topics:         topics,
		rules:          rules,
		priorities:     priorities,
	}
}

func (s *resultsService) ComputeResults(ctx context.Context, responseID uuid.UUID) (*ResultsView, error) {
	if responseID == uuid.Nil {
		return nil, ErrResponseNotFound
	}

	var view *ResultsView
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		dbc := dbctx.Context{Ctx: ctx, Tx: tx}

		// Serialize concurrent compute calls for the same response. The lock
		// releases with the transaction.
		if err := s.responses.AdvisoryLockForCompute(dbc, responseID); err != nil {
			return fmt.Errorf("failed to acquire compute lock: %w", err)
		}

		resps, err := s.responses.GetByIDs(dbc, []uuid.UUID{responseID})
		if err != nil {
			return fmt.Errorf("failed to load response: %w", err)
		}
		if len(resps) == 0 {
			return ErrResponseNotFound
		}
		resp := resps[0]

		dims, err := s.dimensions.GetByAssessmentID(dbc, resp.AssessmentID)
		if err != nil {
			return fmt.Errorf("failed to load dimensions: %w", err)
		}
		dimIDs := make([]uuid.UUID, 0, len(dims))
		for _, d := range dims {
			dimIDs = append(dimIDs, d.ID)
		}

		topics, err := s.topics.GetByDimensionIDs(dbc, dimIDs)
		if err != nil {
			return fmt.Errorf("failed to load topics: %w", err)
		}

		answers, err := s.topicResponses.GetByResponseID(dbc, responseID)
		if err != nil {
			return fmt.Errorf("failed to load answers: %w", err)
		}
		answerByTopic := make(map[uuid.UUID]*types.TopicResponse, len(answers))
		for _, a := range answers {
			answerByTopic[a.TopicID] = a
		}
		for _, tp := range topics {
			if _, ok := answerByTopic[tp.ID]; !ok {
				return ErrResponseIncomplete
			}
		}

		topicIDs := make([]uuid.UUID, 0, len(topics))
		for _, tp := range topics {
			topicIDs = append(topicIDs, tp.ID)
		}
		activeRules, err := s.rules.GetActiveByTopicIDs(dbc, topicIDs)
		if err != nil {
			return fmt.Errorf("failed to load rules: %w", err)
		}

		// Function-scoped grouping for this invocation only.
		rulesByTopic := make(map[uuid.UUID][]*types.RecommendationRule, len(topics))
		for _, r := range activeRules {
			rulesByTopic[r.TopicID] = append(rulesByTopic[r.TopicID], r)
		}
		topicsByDim := make(map[uuid.UUID][]*types.Topic, len(dims))
		for _, tp := range topics {
			topicsByDim[tp.DimensionID] = append(topicsByDim[tp.DimensionID], tp)
		}

		// Score and match per dimension, topics in catalog order so equal
		// priorities keep a deterministic discovery order.
		aggregates := make([]scoring.DimensionAggregate, len(dims))
		ranked := make([][]scoring.RecommendationSnapshot, len(dims))
		for i, d := range dims {
			var pairs []scoring.RatingPair
			var matched []scoring.RecommendationSnapshot
			for _, tp := range topicsByDim[d.ID] {
				ans := answerByTopic[tp.ID]
				pairs = append(pairs, scoring.RatingPair{Current: ans.CurrentRating, Target: ans.TargetRating})
				for _, rule := range scoring.MatchTopicRules(rulesByTopic[tp.ID], ans.CurrentRating, ans.TargetRating) {
					matched = append(matched, scoring.Snapshot(rule, tp.Key))
				}
			}
			aggregates[i] = scoring.AggregateDimension(pairs)
			ranked[i] = scoring.RankRecommendations(matched, scoring.MaxRecommendations)
		}

		computedAt := time.Now().UTC()
		rows := make([]*types.ComputedPriority, 0, len(dims))
		results := make([]DimensionResult, len(dims))
		for _, dr := range scoring.RankDimensions(aggregates) {
			d := dims[dr.Index]
			agg := aggregates[dr.Index]
			recs := ranked[dr.Index]

			blob, err := json.Marshal(recs)
			if err != nil {
				return fmt.Errorf("failed to serialize recommendations for dimension %s: %w", d.Key, err)
			}
			rows = append(rows, &types.ComputedPriority{
				ID:              uuid.New(),
				ResponseID:      responseID,
				DimensionID:     d.ID,
				DimensionScore:  agg.Score,
				DimensionGap:    agg.Gap,
				PriorityScore:   agg.PriorityScore,
				RankOrder:       dr.RankOrder,
				Recommendations: datatypes.JSON(blob),
				ComputedAt:      computedAt,
			})
			results[dr.Index] = DimensionResult{
				DimensionID:     d.ID,
				Key:             d.Key,
				Title:           d.Title,
				Score:           agg.Score,
				Gap:             agg.Gap,
				PriorityScore:   agg.PriorityScore,
				RankOrder:       dr.RankOrder,
				Recommendations: recs,
			}
		}

		if err := s.priorities.UpsertBatch(dbc, rows); err != nil {
			return fmt.Errorf("failed to persist computed priorities: %w", err)
		}

		overall := scoring.AggregateOverall(aggregates)
		if err := s.responses.Finalize(dbc, responseID, overall.Score, overall.Gap, computedAt); err != nil {
			return fmt.Errorf("failed to finalize response: %w", err)
		}

		view = &ResultsView{
			ResponseID:         responseID,
			Status:             types.ResponseStatusCompleted,
			OverallScore:       overall.Score,
			OverallGap:         overall.Gap,
			ComputedAt:         computedAt,
			Dimensions:         results,
			TopRecommendations: topAcross(results),
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.log.Info("computed assessment results",
		"response_id", responseID.String(),
		"dimensions", len(view.Dimensions),
		"overall_score", view.OverallScore,
		"overall_gap", view.OverallGap,
	)
	return view, nil
}

func (s *resultsService) GetResults(ctx context.Context, responseID uuid.UUID) (*ResultsView, error) {
	if responseID == uuid.Nil {
		return nil, ErrResponseNotFound
	}
	dbc := dbctx.Context{Ctx: ctx}

	resps, err := s.responses.GetByIDs(dbc, []uuid.UUID{responseID})
	if err != nil {
		return nil, fmt.Errorf("failed to load response: %w", err)
	}
	if len(resps) == 0 {
		return nil, ErrResponseNotFound
	}
	resp := resps[0]

	rows, err := s.priorities.GetByResponseID(dbc, responseID)
	if err != nil {
		return nil, fmt.Errorf("failed to load computed priorities: %w", err)
	}
	if resp.Status != types.ResponseStatusCompleted || len(rows) == 0 {
		return nil, ErrResultsNotComputed
	}

	dimIDs := make([]uuid.UUID, 0, len(rows))
	for _, row := range rows {
		dimIDs = append(dimIDs, row.DimensionID)
	}
	dims, err := s.dimensions.GetByIDs(dbc, dimIDs)
	if err != nil {
		return nil, fmt.Errorf("failed to load dimensions: %w", err)
	}
	dimByID := make(map[uuid.UUID]*types.Dimension, len(dims))
	for _, d := range dims {
		dimByID[d.ID] = d
	}

	results := make([]DimensionResult, 0, len(rows))
	computedAt := resp.UpdatedAt
	for _, row := range rows {
		var recs []scoring.RecommendationSnapshot
		if err := json.Unmarshal(row.Recommendations, &recs); err != nil {
			return nil, fmt.Errorf("failed to decode recommendation snapshot: %w", err)
		}
		dr := DimensionResult{
			DimensionID:     row.DimensionID,
			Score:           row.DimensionScore,
			Gap:             row.DimensionGap,
			PriorityScore:   row.PriorityScore,
			RankOrder:       row.RankOrder,
			Recommendations: recs,
		}
		if d, ok := dimByID[row.DimensionID]; ok {
			dr.Key = d.Key
			dr.Title = d.Title
		}
		results = append(results, dr)
		computedAt = row.ComputedAt
	}

	return &ResultsView{
		ResponseID:         responseID,
		Status:             resp.Status,
		OverallScore:       resp.OverallScore,
		OverallGap:         resp.OverallGap,
		ComputedAt:         computedAt,
		Dimensions:         results,
		TopRecommendations: topAcross(results),
	}, nil
}

// topAcross re-ranks the union of all per-dimension lists into the
// response-level top view.
func topAcross(dims []DimensionResult) []scoring.RecommendationSnapshot {
	var all []scoring.RecommendationSnapshot
	for _, d := range dims {
		all = append(all, d.Recommendations...)
	}
	return scoring.RankRecommendations(all, scoring.MaxRecommendations)
}
