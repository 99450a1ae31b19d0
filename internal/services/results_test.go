package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/yungbote/maturitypath-backend/internal/data/repos/assessment"
	"github.com/yungbote/maturitypath-backend/internal/data/repos/testutil"
	types "github.com/yungbote/maturitypath-backend/internal/domain"
	"github.com/yungbote/maturitypath-backend/internal/pkg/dbctx"
)

// finalizeFailingResponseRepo behaves like the real repo until finalization,
// which always fails, so the compute transaction dies after the priority rows
// were already written.
type finalizeFailingResponseRepo struct {
	assessment.AssessmentResponseRepo
	err error
}

func (r finalizeFailingResponseRepo) Finalize(dbctx.Context, uuid.UUID, float64, float64, time.Time) error {
	return r.err
}

func TestResultsServiceComputeResults(t *testing.T) {
	gdb := testutil.DB(t)
	tx := testutil.Tx(t, gdb)
	log := testutil.Logger(t)
	ctx := context.Background()

	svc := NewResultsService(
		tx, log,
		assessment.NewAssessmentResponseRepo(tx, log),
		assessment.NewTopicResponseRepo(tx, log),
		assessment.NewDimensionRepo(tx, log),
		assessment.NewTopicRepo(tx, log),
		assessment.NewRecommendationRuleRepo(tx, log),
		assessment.NewComputedPriorityRepo(tx, log),
	)

	u := testutil.SeedUser(t, ctx, tx, "resultssvc@example.com")
	a := testutil.SeedAssessment(t, ctx, tx, "resultssvc")
	delivery := testutil.SeedDimension(t, ctx, tx, a.ID, "delivery", 1)
	culture := testutil.SeedDimension(t, ctx, tx, a.ID, "culture", 2)
	t1 := testutil.SeedTopic(t, ctx, tx, delivery.ID, "ci", 1)
	t2 := testutil.SeedTopic(t, ctx, tx, delivery.ID, "deploys", 2)
	t3 := testutil.SeedTopic(t, ctx, tx, culture.ID, "blameless", 1)

	resp := testutil.SeedResponse(t, ctx, tx, u.ID, a.ID)
	testutil.SeedTopicResponse(t, ctx, tx, resp.ID, t1.ID, 2, 4)
	testutil.SeedTopicResponse(t, ctx, tx, resp.ID, t2.ID, 3, 4)
	testutil.SeedTopicResponse(t, ctx, tx, resp.ID, t3.ID, 4, 4.5)

	// Matches: gap on t1 is 2.0.
	testutil.SeedRule(t, ctx, tx, t1.ID, 90, func(r *types.RecommendationRule) {
		r.Title = "automate the pipeline"
		r.GapMin = testutil.Ptr(1.5)
	})
	// Matches: no bounds.
	testutil.SeedRule(t, ctx, tx, t1.ID, 50, func(r *types.RecommendationRule) {
		r.Title = "add smoke tests"
	})
	// No match: current rating on t1 is 2, above score_max.
	testutil.SeedRule(t, ctx, tx, t1.ID, 99, func(r *types.RecommendationRule) {
		r.Title = "start from scratch"
		r.ScoreMax = testutil.Ptr(1.5)
	})
	// Excluded: inactive.
	testutil.SeedRule(t, ctx, tx, t1.ID, 100, func(r *types.RecommendationRule) {
		r.Title = "dormant"
		r.Active = false
	})
	// No match: gap on t3 is 0.5.
	testutil.SeedRule(t, ctx, tx, t3.ID, 80, func(r *types.RecommendationRule) {
		r.Title = "retro cadence"
		r.GapMin = testutil.Ptr(1.0)
	})

	view, err := svc.ComputeResults(ctx, resp.ID)
	if err != nil {
		t.Fatalf("ComputeResults: %v", err)
	}

	if view.OverallScore != 3.25 || view.OverallGap != 1.00 {
		t.Fatalf("overall=%v/%v, want 3.25/1.00", view.OverallScore, view.OverallGap)
	}
	if view.Status != types.ResponseStatusCompleted {
		t.Fatalf("status=%s, want completed", view.Status)
	}
	if len(view.Dimensions) != 2 {
		t.Fatalf("len(dimensions)=%d, want 2", len(view.Dimensions))
	}

	byKey := map[string]DimensionResult{}
	for _, d := range view.Dimensions {
		byKey[d.Key] = d
	}
	del := byKey["delivery"]
	if del.Score != 2.50 || del.Gap != 1.50 || del.PriorityScore != 1.50 || del.RankOrder != 1 {
		t.Fatalf("delivery result wrong: %+v", del)
	}
	cul := byKey["culture"]
	if cul.Score != 4.00 || cul.Gap != 0.50 || cul.RankOrder != 2 {
		t.Fatalf("culture result wrong: %+v", cul)
	}

	if len(del.Recommendations) != 2 {
		t.Fatalf("delivery recommendations len=%d, want 2", len(del.Recommendations))
	}
	if del.Recommendations[0].Title != "automate the pipeline" || del.Recommendations[1].Title != "add smoke tests" {
		t.Fatalf("recommendation order wrong: %+v", del.Recommendations)
	}
	if len(cul.Recommendations) != 0 {
		t.Fatalf("culture should match no rules: %+v", cul.Recommendations)
	}
	if len(view.TopRecommendations) != 2 || view.TopRecommendations[0].Priority != 90 {
		t.Fatalf("top recommendations wrong: %+v", view.TopRecommendations)
	}

	// Recomputing overwrites the same rows instead of accumulating.
	again, err := svc.ComputeResults(ctx, resp.ID)
	if err != nil {
		t.Fatalf("ComputeResults again: %v", err)
	}
	if len(again.Dimensions) != 2 || again.OverallScore != view.OverallScore {
		t.Fatalf("recompute diverged: %+v", again)
	}
	priorityRepo := assessment.NewComputedPriorityRepo(tx, log)
	if n, err := priorityRepo.CountByResponseID(dbctx.Context{Ctx: ctx}, resp.ID); err != nil || n != 2 {
		t.Fatalf("stored rows after recompute: err=%v n=%d, want 2", err, n)
	}

	// The persisted view round-trips.
	stored, err := svc.GetResults(ctx, resp.ID)
	if err != nil {
		t.Fatalf("GetResults: %v", err)
	}
	if stored.OverallScore != 3.25 || len(stored.Dimensions) != 2 {
		t.Fatalf("stored view wrong: %+v", stored)
	}
	if stored.Dimensions[0].Key != "delivery" || stored.Dimensions[0].RankOrder != 1 {
		t.Fatalf("stored rank order wrong: %+v", stored.Dimensions[0])
	}
	if len(stored.TopRecommendations) != 2 {
		t.Fatalf("stored top recommendations wrong: %+v", stored.TopRecommendations)
	}
}

func TestResultsServiceComputeRollsBackOnFinalizeFailure(t *testing.T) {
	gdb := testutil.DB(t)
	tx := testutil.Tx(t, gdb)
	log := testutil.Logger(t)
	ctx := context.Background()

	boom := errors.New("finalize write conflict")
	svc := NewResultsService(
		tx, log,
		finalizeFailingResponseRepo{assessment.NewAssessmentResponseRepo(tx, log), boom},
		assessment.NewTopicResponseRepo(tx, log),
		assessment.NewDimensionRepo(tx, log),
		assessment.NewTopicRepo(tx, log),
		assessment.NewRecommendationRuleRepo(tx, log),
		assessment.NewComputedPriorityRepo(tx, log),
	)

	u := testutil.SeedUser(t, ctx, tx, "resultsrollback@example.com")
	a := testutil.SeedAssessment(t, ctx, tx, "resultsrollback")
	d := testutil.SeedDimension(t, ctx, tx, a.ID, "dim", 1)
	t1 := testutil.SeedTopic(t, ctx, tx, d.ID, "only", 1)

	resp := testutil.SeedResponse(t, ctx, tx, u.ID, a.ID)
	testutil.SeedTopicResponse(t, ctx, tx, resp.ID, t1.ID, 2, 4)

	if _, err := svc.ComputeResults(ctx, resp.ID); !errors.Is(err, boom) {
		t.Fatalf("err=%v, want wrapped finalize failure", err)
	}

	// The priority rows were written before finalization failed; the rollback
	// must take them with it and leave the response untouched.
	priorityRepo := assessment.NewComputedPriorityRepo(tx, log)
	if n, err := priorityRepo.CountByResponseID(dbctx.Context{Ctx: ctx}, resp.ID); err != nil || n != 0 {
		t.Fatalf("rows after rolled-back compute: err=%v n=%d, want 0", err, n)
	}
	responseRepo := assessment.NewAssessmentResponseRepo(tx, log)
	got, err := responseRepo.GetByIDs(dbctx.Context{Ctx: ctx}, []uuid.UUID{resp.ID})
	if err != nil || len(got) != 1 {
		t.Fatalf("reload response: err=%v len=%d", err, len(got))
	}
	if got[0].Status != types.ResponseStatusInProgress {
		t.Fatalf("status=%s, want in_progress", got[0].Status)
	}
	if got[0].CompletedAt != nil {
		t.Fatalf("completed_at=%v, want nil", got[0].CompletedAt)
	}
}

func TestResultsServiceIncompleteResponse(t *testing.T) {
	gdb := testutil.DB(t)
	tx := testutil.Tx(t, gdb)
	log := testutil.Logger(t)
	ctx := context.Background()

	svc := NewResultsService(
		tx, log,
		assessment.NewAssessmentResponseRepo(tx, log),
		assessment.NewTopicResponseRepo(tx, log),
		assessment.NewDimensionRepo(tx, log),
		assessment.NewTopicRepo(tx, log),
		assessment.NewRecommendationRuleRepo(tx, log),
		assessment.NewComputedPriorityRepo(tx, log),
	)

	u := testutil.SeedUser(t, ctx, tx, "resultsincomplete@example.com")
	a := testutil.SeedAssessment(t, ctx, tx, "resultsincomplete")
	d := testutil.SeedDimension(t, ctx, tx, a.ID, "dim", 1)
	t1 := testutil.SeedTopic(t, ctx, tx, d.ID, "answered", 1)
	testutil.SeedTopic(t, ctx, tx, d.ID, "unanswered", 2)

	resp := testutil.SeedResponse(t, ctx, tx, u.ID, a.ID)
	testutil.SeedTopicResponse(t, ctx, tx, resp.ID, t1.ID, 3, 4)

	if _, err := svc.ComputeResults(ctx, resp.ID); !errors.Is(err, ErrResponseIncomplete) {
		t.Fatalf("err=%v, want ErrResponseIncomplete", err)
	}

	// The failed compute left nothing behind.
	priorityRepo := assessment.NewComputedPriorityRepo(tx, log)
	if n, err := priorityRepo.CountByResponseID(dbctx.Context{Ctx: ctx}, resp.ID); err != nil || n != 0 {
		t.Fatalf("rows after failed compute: err=%v n=%d, want 0", err, n)
	}
	if _, err := svc.GetResults(ctx, resp.ID); !errors.Is(err, ErrResultsNotComputed) {
		t.Fatalf("GetResults err=%v, want ErrResultsNotComputed", err)
	}
}
