package scoring

import "sort"

// MaxRecommendations bounds every recommendation list the engine emits, both
// per dimension and for the response-level roll-up. Not configurable per
// dimension.
const MaxRecommendations = 5

// RankRecommendations orders matched recommendations by authored priority
// descending and truncates to limit. The sort is stable: equal priorities keep
// the order in which the matches were discovered.
func RankRecommendations(matched []RecommendationSnapshot, limit int) []RecommendationSnapshot {
	out := make([]RecommendationSnapshot, len(matched))
	copy(out, matched)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Priority > out[j].Priority
	})
	if limit >= 0 && len(out) > limit {
		out = out[:limit]
	}
	return out
}

// DimensionRank pairs a dimension's aggregate with its position when ranking a
// whole response.
type DimensionRank struct {
	Index     int // position in the input slice
	RankOrder int // 1-based, dense, by descending priority score
}

// RankDimensions assigns each dimension a 1-based dense rank by priority score
// descending: the highest-priority dimension ranks 1, and dimensions with equal
// priority scores share a rank. Input order breaks ties in the returned
// ordering (stable), so callers should pass dimensions in catalog order.
func RankDimensions(dims []DimensionAggregate) []DimensionRank {
	ranks := make([]DimensionRank, len(dims))
	for i := range dims {
		ranks[i] = DimensionRank{Index: i}
	}
	sort.SliceStable(ranks, func(i, j int) bool {
		return dims[ranks[i].Index].PriorityScore > dims[ranks[j].Index].PriorityScore
	})
	rank := 0
	for i := range ranks {
		if i == 0 || dims[ranks[i].Index].PriorityScore != dims[ranks[i-1].Index].PriorityScore {
			rank++
		}
		ranks[i].RankOrder = rank
	}
	return ranks
}
