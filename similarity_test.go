package sleap

import (
	"math"
	"testing"
)

func instanceAt(rows [][2]float64) *Instance {
	return &Instance{Points: newPointsMatrix(rows)}
}

func TestInstanceSimilaritySelf(t *testing.T) {
	inst := instanceAt([][2]float64{{0, 0}, {1, 1}, {2, 2}})
	cache := newSimilarityCache()
	got := instanceSimilarity(inst, inst, cache)
	if math.Abs(got-1.0) > 1e-9 {
		t.Fatalf("instanceSimilarity(x, x) = %v, want 1", got)
	}
}

func TestInstanceSimilarityAsymmetric(t *testing.T) {
	// Reference has a missing joint the query does not: the joint is
	// excluded from both the sum and the reference-visible count, but a
	// query-only-missing joint still counts against the denominator
	// since it is driven by ref visibility, not query visibility.
	query := instanceAt([][2]float64{{0, 0}, {5, 5}})
	ref := instanceAt([][2]float64{{0, 0}, {math.NaN(), math.NaN()}})
	cache := newSimilarityCache()

	fwd := instanceSimilarity(query, ref, cache)
	bwd := instanceSimilarity(ref, query, cache)
	if fwd == bwd {
		t.Fatalf("expected instanceSimilarity to be asymmetric, got fwd=%v bwd=%v", fwd, bwd)
	}
	if math.Abs(fwd-1.0) > 1e-9 {
		t.Fatalf("fwd = %v, want 1 (only ref-visible joint matches exactly)", fwd)
	}
}

func TestCentroidSimilarityIdentical(t *testing.T) {
	a := instanceAt([][2]float64{{1, 1}, {3, 3}})
	b := instanceAt([][2]float64{{1, 1}, {3, 3}})
	cache := newSimilarityCache()
	got := centroidSimilarity(a, b, cache)
	if got != 0 {
		t.Fatalf("centroidSimilarity(identical) = %v, want 0", got)
	}
}

func TestIoUSimilaritySelf(t *testing.T) {
	a := instanceAt([][2]float64{{0, 0}, {10, 10}})
	cache := newSimilarityCache()
	got := iouSimilarity(a, a, cache)
	if math.Abs(got-1.0) > 1e-9 {
		t.Fatalf("iouSimilarity(x, x) = %v, want 1", got)
	}
}

func TestSimilarityCacheMemoizes(t *testing.T) {
	a := instanceAt([][2]float64{{0, 0}, {10, 10}})
	b := instanceAt([][2]float64{{1, 1}, {9, 9}})
	cache := newSimilarityCache()

	first := cache.centroidOf(a)
	// Mutate the underlying instance after caching; the cached value must
	// not reflect the mutation, proving memoization is in effect.
	a.Points.Set(0, 0, 999)
	second := cache.centroidOf(a)
	if first != second {
		t.Fatalf("centroidOf not memoized: %v != %v", first, second)
	}
	_ = b
}

func TestGetSimilarityByNameUnknown(t *testing.T) {
	_, err := getSimilarityByName("bogus")
	var cfgErr *ConfigurationError
	if err == nil {
		t.Fatal("expected error for unknown similarity name")
	}
	if ce, ok := err.(*ConfigurationError); !ok {
		t.Fatalf("expected *ConfigurationError, got %T", err)
	} else {
		cfgErr = ce
	}
	if cfgErr.Option != "similarity" {
		t.Fatalf("Option = %q, want similarity", cfgErr.Option)
	}
}
