package scoring

import (
	"testing"

	"github.com/google/uuid"

	types "github.com/yungbote/maturitypath-backend/internal/domain"
)

func f(v float64) *float64 { return &v }

func rule(mut func(*types.RecommendationRule)) *types.RecommendationRule {
	r := &types.RecommendationRule{
		ID:       uuid.New(),
		TopicID:  uuid.New(),
		Title:    "rule",
		Category: types.RuleCategoryProject,
		Priority: 50,
		Active:   true,
	}
	if mut != nil {
		mut(r)
	}
	return r
}

func TestRuleMatches(t *testing.T) {
	cases := []struct {
		name   string
		rule   *types.RecommendationRule
		score  float64
		target float64
		gap    float64
		want   bool
	}{
		{
			name:  "no_bounds_matches_anything",
			rule:  rule(nil),
			score: 1, target: 5, gap: 4,
			want: true,
		},
		{
			name: "score_max_and_gap_min_both_hold",
			rule: rule(func(r *types.RecommendationRule) {
				r.ScoreMax = f(2.5)
				r.GapMin = f(0.5)
			}),
			score: 2.0, target: 4.0, gap: 2.0,
			want: true,
		},
		{
			name: "score_above_max",
			rule: rule(func(r *types.RecommendationRule) {
				r.ScoreMax = f(2.5)
			}),
			score: 3.0, target: 4.0, gap: 1.0,
			want: false,
		},
		{
			name: "score_min_inclusive",
			rule: rule(func(r *types.RecommendationRule) {
				r.ScoreMin = f(2.0)
			}),
			score: 2.0, target: 3.0, gap: 1.0,
			want: true,
		},
		{
			name: "target_window",
			rule: rule(func(r *types.RecommendationRule) {
				r.TargetMin = f(3.0)
				r.TargetMax = f(4.0)
			}),
			score: 2.0, target: 4.5, gap: 2.5,
			want: false,
		},
		{
			name: "gap_max_inclusive",
			rule: rule(func(r *types.RecommendationRule) {
				r.GapMax = f(1.0)
			}),
			score: 3.0, target: 4.0, gap: 1.0,
			want: true,
		},
		{
			name: "gap_below_min",
			rule: rule(func(r *types.RecommendationRule) {
				r.GapMin = f(1.5)
			}),
			score: 3.0, target: 4.0, gap: 1.0,
			want: false,
		},
		{
			name: "negative_gap_within_max",
			rule: rule(func(r *types.RecommendationRule) {
				r.GapMax = f(0.0)
			}),
			score: 4.0, target: 2.0, gap: -2.0,
			want: true,
		},
		{
			name: "inactive_never_matches",
			rule: rule(func(r *types.RecommendationRule) {
				r.Active = false
			}),
			score: 2.0, target: 4.0, gap: 2.0,
			want: false,
		},
		{
			name: "all_six_bounds_hold",
			rule: rule(func(r *types.RecommendationRule) {
				r.ScoreMin = f(1.0)
				r.ScoreMax = f(3.0)
				r.TargetMin = f(3.0)
				r.TargetMax = f(5.0)
				r.GapMin = f(1.0)
				r.GapMax = f(3.0)
			}),
			score: 2.0, target: 4.0, gap: 2.0,
			want: true,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := RuleMatches(tc.rule, tc.score, tc.target, tc.gap); got != tc.want {
				t.Fatalf("RuleMatches=%v, want %v", got, tc.want)
			}
		})
	}
}

func TestMatchTopicRules(t *testing.T) {
	broad := rule(nil)
	lowScore := rule(func(r *types.RecommendationRule) { r.ScoreMax = f(2.5) })
	bigGap := rule(func(r *types.RecommendationRule) { r.GapMin = f(2.5) })
	inactive := rule(func(r *types.RecommendationRule) { r.Active = false })

	rules := []*types.RecommendationRule{broad, lowScore, bigGap, inactive}

	matched := MatchTopicRules(rules, 2.0, 4.0)
	if len(matched) != 2 {
		t.Fatalf("matched %d rules, want 2", len(matched))
	}
	if matched[0].ID != broad.ID || matched[1].ID != lowScore.ID {
		t.Fatalf("matched rules out of supplied order")
	}

	if got := MatchTopicRules(nil, 2.0, 4.0); len(got) != 0 {
		t.Fatalf("no rules should match from empty set, got %d", len(got))
	}
}
