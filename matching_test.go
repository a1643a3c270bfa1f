package sleap

import (
	"math"
	"testing"
)

func TestCostFromSimilarityNegatesAndMapsNaN(t *testing.T) {
	sim := [][]float64{
		{0.5, math.NaN()},
		{-1, 2},
	}
	cost := costFromSimilarity(sim)
	if cost[0][0] != -0.5 {
		t.Fatalf("cost[0][0] = %v, want -0.5", cost[0][0])
	}
	if !math.IsInf(cost[0][1], 1) {
		t.Fatalf("cost[0][1] = %v, want +Inf", cost[0][1])
	}
	if cost[1][0] != 1 || cost[1][1] != -2 {
		t.Fatalf("cost[1] = %v, want [1, -2]", cost[1])
	}
}

func TestGetMatchByNameUnknown(t *testing.T) {
	_, err := getMatchByName("bogus")
	ce, ok := err.(*ConfigurationError)
	if !ok {
		t.Fatalf("expected *ConfigurationError, got %T", err)
	}
	if ce.Option != "match" {
		t.Fatalf("Option = %q, want match", ce.Option)
	}
}

func TestGetMatchByNameKnown(t *testing.T) {
	for _, name := range matchNames {
		if _, err := getMatchByName(name); err != nil {
			t.Fatalf("getMatchByName(%q) failed: %v", name, err)
		}
	}
}
