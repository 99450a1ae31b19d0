package services

import (
	"math"
	"testing"
)

func TestValidateRating(t *testing.T) {
	cases := []struct {
		name    string
		in      float64
		wantErr bool
	}{
		{"minimum", 1, false},
		{"maximum", 5, false},
		{"half_step", 3.5, false},
		{"below_range", 0.5, true},
		{"above_range", 5.5, true},
		{"off_step", 3.25, true},
		{"nan", math.NaN(), true},
		{"positive_inf", math.Inf(1), true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := ValidateRating(tc.in)
			if (err != nil) != tc.wantErr {
				t.Fatalf("ValidateRating(%v) err=%v, wantErr=%v", tc.in, err, tc.wantErr)
			}
		})
	}
}

func TestBoundPair(t *testing.T) {
	two, three := 2.0, 3.0
	if err := boundPair("score", &two, &three); err != nil {
		t.Fatalf("valid pair rejected: %v", err)
	}
	if err := boundPair("score", &three, &two); err == nil {
		t.Fatalf("inverted pair accepted")
	}
	if err := boundPair("score", nil, &two); err != nil {
		t.Fatalf("open lower bound rejected: %v", err)
	}
	if err := boundPair("score", &three, nil); err != nil {
		t.Fatalf("open upper bound rejected: %v", err)
	}
}
