package scoring

import (
	types "github.com/yungbote/maturitypath-backend/internal/domain"
)

// RuleMatches reports whether a rule's bound predicates are all satisfied by a
// topic's (score, target, gap) triple. Bounds are inclusive; a nil bound never
// excludes. Inactive rules never match.
func RuleMatches(rule *types.RecommendationRule, score, target, gap float64) bool {
	if rule == nil || !rule.Active {
		return false
	}
	if !boundOK(rule.ScoreMin, rule.ScoreMax, score) {
		return false
	}
	if !boundOK(rule.TargetMin, rule.TargetMax, target) {
		return false
	}
	if !boundOK(rule.GapMin, rule.GapMax, gap) {
		return false
	}
	return true
}

// MatchTopicRules evaluates one topic's answered pair against its rules and
// returns the matching subset in the order the rules were supplied. The gap
// axis is the raw gap (target - current), so a gapMax bound can key on
// over-performance. Ordering across topics is the ranker's job, not ours.
func MatchTopicRules(rules []*types.RecommendationRule, current, target float64) []*types.RecommendationRule {
	gap := Gap(current, target)
	var matched []*types.RecommendationRule
	for _, r := range rules {
		if RuleMatches(r, current, target, gap) {
			matched = append(matched, r)
		}
	}
	return matched
}

func boundOK(min, max *float64, v float64) bool {
	if min != nil && v < *min {
		return false
	}
	if max != nil && v > *max {
		return false
	}
	return true
}
