package scoring

// Gap is the distance between where a topic was rated and where the user wants
// it to be. Positive means under-performance.
func Gap(current, target float64) float64 {
	return target - current
}

// NormalizedGap floors the gap at zero. Over-performance neither rewards nor
// penalizes a topic; only under-performance drives priority.
func NormalizedGap(current, target float64) float64 {
	g := target - current
	if g > 0 {
		return g
	}
	return 0
}
