package assessment

import (
	"context"
	"testing"

	"github.com/google/uuid"

	"github.com/yungbote/maturitypath-backend/internal/data/repos/testutil"
	types "github.com/yungbote/maturitypath-backend/internal/domain"
	"github.com/yungbote/maturitypath-backend/internal/pkg/dbctx"
)

func TestRecommendationRuleRepo(t *testing.T) {
	gdb := testutil.DB(t)
	tx := testutil.Tx(t, gdb)

	ctx := context.Background()
	dbc := dbctx.Context{Ctx: ctx, Tx: tx}
	repo := NewRecommendationRuleRepo(gdb, testutil.Logger(t))

	a := testutil.SeedAssessment(t, ctx, tx, "rulerepo")
	d := testutil.SeedDimension(t, ctx, tx, a.ID, "dim", 1)
	tp := testutil.SeedTopic(t, ctx, tx, d.ID, "topic", 1)

	low := testutil.SeedRule(t, ctx, tx, tp.ID, 40, nil)
	high := testutil.SeedRule(t, ctx, tx, tp.ID, 90, nil)
	inactive := testutil.SeedRule(t, ctx, tx, tp.ID, 99, func(r *types.RecommendationRule) {
		r.Active = false
	})

	active, err := repo.GetActiveByTopicIDs(dbc, []uuid.UUID{tp.ID})
	if err != nil {
		t.Fatalf("GetActiveByTopicIDs: %v", err)
	}
	if len(active) != 2 {
		t.Fatalf("len=%d, want 2 (inactive rule must be excluded)", len(active))
	}
	if active[0].ID != high.ID || active[1].ID != low.ID {
		t.Fatalf("rules not in priority order: %v, %v", active[0].Priority, active[1].Priority)
	}

	all, err := repo.GetByTopicID(dbc, tp.ID)
	if err != nil || len(all) != 3 {
		t.Fatalf("GetByTopicID: err=%v len=%d", err, len(all))
	}

	low.Priority = 95
	low.ScoreMax = testutil.Ptr(2.5)
	if err := repo.Update(dbc, low); err != nil {
		t.Fatalf("Update: %v", err)
	}
	got, err := repo.GetByIDs(dbc, []uuid.UUID{low.ID})
	if err != nil || len(got) != 1 {
		t.Fatalf("GetByIDs: err=%v len=%d", err, len(got))
	}
	if got[0].Priority != 95 || got[0].ScoreMax == nil || *got[0].ScoreMax != 2.5 {
		t.Fatalf("update lost: %+v", got[0])
	}

	if err := repo.SoftDeleteByIDs(dbc, []uuid.UUID{inactive.ID}); err != nil {
		t.Fatalf("SoftDeleteByIDs: %v", err)
	}
	remaining, err := repo.GetByTopicID(dbc, tp.ID)
	if err != nil || len(remaining) != 2 {
		t.Fatalf("after soft delete: err=%v len=%d", err, len(remaining))
	}
}
