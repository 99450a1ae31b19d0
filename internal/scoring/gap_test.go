package scoring

import "testing"

func TestGap(t *testing.T) {
	cases := []struct {
		name     string
		current  float64
		target   float64
		gap      float64
		normGap  float64
	}{
		{name: "under_performance", current: 2.0, target: 4.0, gap: 2.0, normGap: 2.0},
		{name: "over_performance", current: 4.0, target: 2.0, gap: -2.0, normGap: 0.0},
		{name: "on_target", current: 3.5, target: 3.5, gap: 0.0, normGap: 0.0},
		{name: "half_step", current: 1.0, target: 1.5, gap: 0.5, normGap: 0.5},
		{name: "full_range", current: 1.0, target: 5.0, gap: 4.0, normGap: 4.0},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := Gap(tc.current, tc.target); got != tc.gap {
				t.Fatalf("Gap(%v, %v)=%v, want %v", tc.current, tc.target, got, tc.gap)
			}
			if got := NormalizedGap(tc.current, tc.target); got != tc.normGap {
				t.Fatalf("NormalizedGap(%v, %v)=%v, want %v", tc.current, tc.target, got, tc.normGap)
			}
		})
	}
}
