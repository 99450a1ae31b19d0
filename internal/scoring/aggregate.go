package scoring

import "math"

// RatingPair is one answered topic's (current, target) ratings.
type RatingPair struct {
	Current float64
	Target  float64
}

// DimensionAggregate is the folded score/gap for one dimension.
// PriorityScore is the same quantity as Gap; it exists as a named field so
// ranking logic needn't re-derive it, and so a weighting can be introduced
// later without changing the ranking contract.
type DimensionAggregate struct {
	Score         float64
	Gap           float64
	PriorityScore float64
}

// OverallAggregate is the response-level roll-up across dimensions.
type OverallAggregate struct {
	Score float64
	Gap   float64
}

// AggregateDimension folds a dimension's answered pairs into a score and gap.
// Pairs with a non-finite rating are excluded from both averages; a dimension
// with zero valid pairs contributes neutrally as {0, 0} rather than failing
// the computation.
func AggregateDimension(pairs []RatingPair) DimensionAggregate {
	var scoreSum, gapSum float64
	valid := 0
	for _, p := range pairs {
		if !isFinite(p.Current) || !isFinite(p.Target) {
			continue
		}
		scoreSum += p.Current
		gapSum += NormalizedGap(p.Current, p.Target)
		valid++
	}
	if valid == 0 {
		return DimensionAggregate{}
	}
	gap := Round2(gapSum / float64(valid))
	return DimensionAggregate{
		Score:         Round2(scoreSum / float64(valid)),
		Gap:           gap,
		PriorityScore: gap,
	}
}

// AggregateOverall is the unweighted mean of dimension scores and gaps.
// Zero dimensions yields {0, 0}.
func AggregateOverall(dims []DimensionAggregate) OverallAggregate {
	if len(dims) == 0 {
		return OverallAggregate{}
	}
	var scoreSum, gapSum float64
	for _, d := range dims {
		scoreSum += d.Score
		gapSum += d.Gap
	}
	n := float64(len(dims))
	return OverallAggregate{
		Score: Round2(scoreSum / n),
		Gap:   Round2(gapSum / n),
	}
}

// Round2 rounds to two decimal places, the precision of every persisted score.
func Round2(v float64) float64 {
	return math.Round(v*100) / 100
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
