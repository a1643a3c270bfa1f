package assign

import (
	"math"
	"testing"
)

func TestGreedyBasic(t *testing.T) {
	cost := [][]float64{
		{1, 5},
		{5, 1},
	}
	pairs := Greedy(cost)
	if len(pairs) != 2 {
		t.Fatalf("expected 2 pairs, got %d", len(pairs))
	}
	seen := map[Pair]bool{}
	for _, p := range pairs {
		seen[p] = true
	}
	if !seen[(Pair{0, 0})] || !seen[(Pair{1, 1})] {
		t.Fatalf("expected diagonal matching, got %v", pairs)
	}
}

func TestGreedyRowMajorTieBreak(t *testing.T) {
	// Every entry ties at the same minimum; greedy must pick (0,0) first
	// (linearized row-major ascending order), then whatever remains.
	cost := [][]float64{
		{1, 1},
		{1, 1},
	}
	pairs := Greedy(cost)
	if len(pairs) == 0 || pairs[0] != (Pair{0, 0}) {
		t.Fatalf("expected first pair (0,0) under row-major tie-break, got %v", pairs)
	}
}

func TestGreedyTreatsInfAsForbidden(t *testing.T) {
	inf := math.Inf(1)
	cost := [][]float64{
		{inf, inf},
		{inf, inf},
	}
	pairs := Greedy(cost)
	if len(pairs) != 0 {
		t.Fatalf("expected no pairs when every entry is forbidden, got %v", pairs)
	}
}

func TestGreedyNoRepeatedRowOrCol(t *testing.T) {
	cost := [][]float64{
		{3, 1, 4},
		{1, 5, 9},
		{2, 6, 5},
	}
	pairs := Greedy(cost)
	rows := map[int]bool{}
	cols := map[int]bool{}
	for _, p := range pairs {
		if rows[p.Row] {
			t.Fatalf("row %d matched twice", p.Row)
		}
		if cols[p.Col] {
			t.Fatalf("col %d matched twice", p.Col)
		}
		rows[p.Row] = true
		cols[p.Col] = true
	}
}

func TestGreedyEmpty(t *testing.T) {
	if pairs := Greedy(nil); pairs != nil {
		t.Fatalf("expected nil for empty matrix, got %v", pairs)
	}
}
