package assessment

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/yungbote/maturitypath-backend/internal/data/repos/testutil"
	types "github.com/yungbote/maturitypath-backend/internal/domain"
	"github.com/yungbote/maturitypath-backend/internal/pkg/dbctx"
)

func TestAssessmentResponseRepo(t *testing.T) {
	gdb := testutil.DB(t)
	tx := testutil.Tx(t, gdb)

	ctx := context.Background()
	dbc := dbctx.Context{Ctx: ctx, Tx: tx}
	repo := NewAssessmentResponseRepo(gdb, testutil.Logger(t))

	u := testutil.SeedUser(t, ctx, tx, "responserepo@example.com")
	a := testutil.SeedAssessment(t, ctx, tx, "responserepo")
	resp := testutil.SeedResponse(t, ctx, tx, u.ID, a.ID)

	got, err := repo.GetInProgress(dbc, u.ID, a.ID)
	if err != nil {
		t.Fatalf("GetInProgress: %v", err)
	}
	if got == nil || got.ID != resp.ID {
		t.Fatalf("GetInProgress returned %+v, want %s", got, resp.ID)
	}

	if err := repo.AdvisoryLockForCompute(dbc, resp.ID); err != nil {
		t.Fatalf("AdvisoryLockForCompute: %v", err)
	}

	completedAt := time.Now().UTC()
	if err := repo.Finalize(dbc, resp.ID, 3.42, 0.87, completedAt); err != nil {
		t.Fatalf("Finalize: %v", err)
	}

	rows, err := repo.GetByIDs(dbc, []uuid.UUID{resp.ID})
	if err != nil || len(rows) != 1 {
		t.Fatalf("GetByIDs: err=%v len=%d", err, len(rows))
	}
	final := rows[0]
	if final.Status != types.ResponseStatusCompleted {
		t.Fatalf("status=%s, want completed", final.Status)
	}
	if final.OverallScore != 3.42 || final.OverallGap != 0.87 {
		t.Fatalf("overall fields wrong: %+v", final)
	}
	if final.CompletedAt == nil {
		t.Fatalf("completed_at not set")
	}

	// A completed response no longer shows as in progress.
	if got, err := repo.GetInProgress(dbc, u.ID, a.ID); err != nil || got != nil {
		t.Fatalf("GetInProgress after finalize: err=%v got=%+v", err, got)
	}

	if rows, err := repo.GetByUserID(dbc, u.ID); err != nil || len(rows) != 1 {
		t.Fatalf("GetByUserID: err=%v len=%d", err, len(rows))
	}
}
