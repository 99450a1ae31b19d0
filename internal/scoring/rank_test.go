package scoring

import "testing"

func snap(title string, priority int) RecommendationSnapshot {
	return RecommendationSnapshot{Title: title, Priority: priority}
}

func TestRankRecommendations(t *testing.T) {
	t.Run("priority_descending", func(t *testing.T) {
		got := RankRecommendations([]RecommendationSnapshot{
			snap("a", 70),
			snap("b", 90),
		}, MaxRecommendations)
		if got[0].Title != "b" || got[1].Title != "a" {
			t.Fatalf("order=%v,%v want b,a", got[0].Title, got[1].Title)
		}
	})

	t.Run("ties_keep_discovery_order", func(t *testing.T) {
		got := RankRecommendations([]RecommendationSnapshot{
			snap("first70", 70),
			snap("top", 90),
			snap("second70", 70),
		}, MaxRecommendations)
		want := []string{"top", "first70", "second70"}
		for i, w := range want {
			if got[i].Title != w {
				t.Fatalf("got[%d]=%s, want %s", i, got[i].Title, w)
			}
		}
	})

	t.Run("truncates_to_limit", func(t *testing.T) {
		var in []RecommendationSnapshot
		for i := 0; i < 8; i++ {
			in = append(in, snap("r", i*10))
		}
		got := RankRecommendations(in, MaxRecommendations)
		if len(got) != MaxRecommendations {
			t.Fatalf("len=%d, want %d", len(got), MaxRecommendations)
		}
		if got[0].Priority != 70 {
			t.Fatalf("top priority=%d, want 70", got[0].Priority)
		}
	})

	t.Run("input_not_mutated", func(t *testing.T) {
		in := []RecommendationSnapshot{snap("low", 10), snap("high", 90)}
		_ = RankRecommendations(in, MaxRecommendations)
		if in[0].Title != "low" {
			t.Fatalf("input slice reordered")
		}
	})

	t.Run("empty", func(t *testing.T) {
		if got := RankRecommendations(nil, MaxRecommendations); len(got) != 0 {
			t.Fatalf("len=%d, want 0", len(got))
		}
	})
}

func TestRankDimensions(t *testing.T) {
	t.Run("descending_dense", func(t *testing.T) {
		dims := []DimensionAggregate{
			{PriorityScore: 0.50},
			{PriorityScore: 2.00},
			{PriorityScore: 1.25},
		}
		ranks := RankDimensions(dims)
		// Sorted order: index 1 (2.00), index 2 (1.25), index 0 (0.50).
		wantIndex := []int{1, 2, 0}
		wantRank := []int{1, 2, 3}
		for i := range ranks {
			if ranks[i].Index != wantIndex[i] || ranks[i].RankOrder != wantRank[i] {
				t.Fatalf("ranks[%d]=%+v, want index=%d rank=%d", i, ranks[i], wantIndex[i], wantRank[i])
			}
		}
	})

	t.Run("equal_scores_share_rank", func(t *testing.T) {
		dims := []DimensionAggregate{
			{PriorityScore: 1.00},
			{PriorityScore: 1.00},
			{PriorityScore: 0.25},
		}
		ranks := RankDimensions(dims)
		if ranks[0].Index != 0 || ranks[1].Index != 1 {
			t.Fatalf("ties must keep input order, got %+v", ranks)
		}
		if ranks[0].RankOrder != 1 || ranks[1].RankOrder != 1 || ranks[2].RankOrder != 2 {
			t.Fatalf("dense ranks wrong: %+v", ranks)
		}
	})

	t.Run("empty", func(t *testing.T) {
		if got := RankDimensions(nil); len(got) != 0 {
			t.Fatalf("len=%d, want 0", len(got))
		}
	})
}
