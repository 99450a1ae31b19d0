package scoring

import (
	"testing"

	"github.com/google/uuid"
	"gorm.io/datatypes"

	types "github.com/yungbote/maturitypath-backend/internal/domain"
)

func TestSnapshot(t *testing.T) {
	r := &types.RecommendationRule{
		ID:          uuid.New(),
		TopicID:     uuid.New(),
		Title:       "Adopt trunk-based development",
		Description: "desc",
		Why:         "why",
		What:        "what",
		How:         "how",
		ActionItems: datatypes.JSON([]byte(`["shorten branches","add CI gate"]`)),
		Category:    types.RuleCategoryQuickWin,
		Priority:    80,
		Tags:        datatypes.JSON([]byte(`["delivery"]`)),
		Active:      true,
	}

	s := Snapshot(r, "branching")
	if s.RuleID != r.ID || s.TopicID != r.TopicID || s.TopicKey != "branching" {
		t.Fatalf("identity fields wrong: %+v", s)
	}
	if len(s.ActionItems) != 2 || s.ActionItems[0] != "shorten branches" {
		t.Fatalf("action items=%v", s.ActionItems)
	}
	if len(s.Tags) != 1 || s.Tags[0] != "delivery" {
		t.Fatalf("tags=%v", s.Tags)
	}
	if s.Priority != 80 || s.Category != types.RuleCategoryQuickWin {
		t.Fatalf("priority/category wrong: %+v", s)
	}
}

func TestSnapshotMalformedBlobs(t *testing.T) {
	r := &types.RecommendationRule{
		ID:          uuid.New(),
		TopicID:     uuid.New(),
		Title:       "rule",
		ActionItems: datatypes.JSON([]byte(`{not json`)),
		Active:      true,
	}
	s := Snapshot(r, "k")
	if s.ActionItems == nil || len(s.ActionItems) != 0 {
		t.Fatalf("malformed blob must degrade to empty list, got %v", s.ActionItems)
	}
	if s.Tags == nil || len(s.Tags) != 0 {
		t.Fatalf("empty tags must decode to empty list, got %v", s.Tags)
	}
}
