package assessment

import (
	"context"
	"testing"

	"github.com/google/uuid"

	"github.com/yungbote/maturitypath-backend/internal/data/repos/testutil"
	"github.com/yungbote/maturitypath-backend/internal/pkg/dbctx"
)

func TestCatalogRepos(t *testing.T) {
	gdb := testutil.DB(t)
	tx := testutil.Tx(t, gdb)

	ctx := context.Background()
	dbc := dbctx.Context{Ctx: ctx, Tx: tx}
	log := testutil.Logger(t)

	assessments := NewAssessmentRepo(gdb, log)
	dimensions := NewDimensionRepo(gdb, log)
	topics := NewTopicRepo(gdb, log)

	a := testutil.SeedAssessment(t, ctx, tx, "catalogrepos")
	d2 := testutil.SeedDimension(t, ctx, tx, a.ID, "second", 2)
	d1 := testutil.SeedDimension(t, ctx, tx, a.ID, "first", 1)
	tp2 := testutil.SeedTopic(t, ctx, tx, d1.ID, "t2", 2)
	tp1 := testutil.SeedTopic(t, ctx, tx, d1.ID, "t1", 1)
	_ = testutil.SeedTopic(t, ctx, tx, d2.ID, "t3", 1)

	if rows, err := assessments.GetByKeys(dbc, []string{"catalogrepos"}); err != nil || len(rows) != 1 {
		t.Fatalf("GetByKeys: err=%v len=%d", err, len(rows))
	}

	if n, err := assessments.Count(dbc); err != nil || n < 1 {
		t.Fatalf("Count: err=%v n=%d", err, n)
	}

	dims, err := dimensions.GetByAssessmentID(dbc, a.ID)
	if err != nil || len(dims) != 2 {
		t.Fatalf("GetByAssessmentID: err=%v len=%d", err, len(dims))
	}
	if dims[0].ID != d1.ID || dims[1].ID != d2.ID {
		t.Fatalf("dimensions not in catalog order")
	}

	tps, err := topics.GetByDimensionIDs(dbc, []uuid.UUID{d1.ID})
	if err != nil || len(tps) != 2 {
		t.Fatalf("GetByDimensionIDs: err=%v len=%d", err, len(tps))
	}
	if tps[0].ID != tp1.ID || tps[1].ID != tp2.ID {
		t.Fatalf("topics not in catalog order")
	}

	if n, err := topics.CountByAssessmentID(dbc, a.ID); err != nil || n != 3 {
		t.Fatalf("CountByAssessmentID: err=%v n=%d", err, n)
	}
}
