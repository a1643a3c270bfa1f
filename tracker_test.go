package sleap

import (
	"math"
	"testing"

	"github.com/google/uuid"
)

func newSimpleTracker(minMatchPoints, minNewTrackPoints int) *Tracker {
	return &Tracker{
		CandidateMaker:    &SimpleCandidateMaker{MinPoints: minMatchPoints},
		Similarity:        instanceSimilarity,
		Match:             greedyMatch,
		TrackWindow:       5,
		MinNewTrackPoints: minNewTrackPoints,
		MinMatchPoints:    minMatchPoints,
	}
}

func TestTrackerSpawnThenMatch(t *testing.T) {
	tr := newSimpleTracker(0, 0)

	pts := newPointsMatrix([][2]float64{{0, 0}, {1, 1}, {2, 2}, {3, 3}, {4, 4}})
	t0 := 0
	out0, err := tr.Track([]*Instance{{Points: pts}}, nil, &t0)
	if err != nil {
		t.Fatalf("frame 0: %v", err)
	}
	if len(out0) != 1 || out0[0].Track == nil || out0[0].Track.Name != "track_0" {
		t.Fatalf("frame 0 output = %+v, want one instance on track_0", out0)
	}
	if out0[0].Track.ID == uuid.Nil {
		t.Fatalf("spawned track has zero UUID, want a minted one")
	}

	t1 := 1
	out1, err := tr.Track([]*Instance{{Points: pts}}, nil, &t1)
	if err != nil {
		t.Fatalf("frame 1: %v", err)
	}
	if len(out1) != 1 || out1[0].Track != out0[0].Track {
		t.Fatalf("frame 1 should match track_0, got %+v", out1)
	}
	if out1[0].TrackingScore == nil || math.Abs(*out1[0].TrackingScore-1.0) > 1e-9 {
		t.Fatalf("tracking score = %v, want ~1.0", out1[0].TrackingScore)
	}
}

func TestTrackerTwoStableTracks(t *testing.T) {
	tr := newSimpleTracker(0, 0)

	ptsA0 := newPointsMatrix([][2]float64{{0, 0}, {1, 0}})
	ptsB0 := newPointsMatrix([][2]float64{{100, 100}, {101, 100}})
	t0 := 0
	out0, err := tr.Track([]*Instance{{Points: ptsA0}, {Points: ptsB0}}, nil, &t0)
	if err != nil {
		t.Fatalf("frame 0: %v", err)
	}
	if len(out0) != 2 {
		t.Fatalf("expected 2 spawned tracks, got %d", len(out0))
	}
	trackA, trackB := out0[0].Track, out0[1].Track

	ptsA1 := newPointsMatrix([][2]float64{{0.1, 0}, {1.1, 0}})
	ptsB1 := newPointsMatrix([][2]float64{{100.1, 100}, {101.1, 100}})
	t1 := 1
	out1, err := tr.Track([]*Instance{{Points: ptsA1}, {Points: ptsB1}}, nil, &t1)
	if err != nil {
		t.Fatalf("frame 1: %v", err)
	}
	if len(out1) != 2 {
		t.Fatalf("expected 2 matched instances, got %d", len(out1))
	}
	if out1[0].Track != trackA || out1[1].Track != trackB {
		t.Fatalf("expected stable track assignment, got %+v", out1)
	}
}

func TestTrackerBelowSpawnThresholdDropped(t *testing.T) {
	tr := newSimpleTracker(0, 3)
	pts := newPointsMatrix([][2]float64{{0, 0}, {math.NaN(), math.NaN()}, {math.NaN(), math.NaN()}})
	tt := 0
	out, err := tr.Track([]*Instance{{Points: pts}}, nil, &tt)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(out) != 0 {
		t.Fatalf("expected instance to be dropped, got %+v", out)
	}
	if len(tr.SpawnedTracks()) != 0 {
		t.Fatalf("expected no tracks spawned, got %d", len(tr.SpawnedTracks()))
	}
}

func TestTrackerEmptyFrameIsNoop(t *testing.T) {
	tr := newSimpleTracker(0, 0)
	tt := 0
	out, err := tr.Track(nil, nil, &tt)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(out) != 0 {
		t.Fatalf("expected empty output, got %+v", out)
	}
	if len(tr.Window()) != 1 {
		t.Fatalf("expected an empty MatchedFrame pushed, got %d window entries", len(tr.Window()))
	}
}

func TestTrackerRejectsNonIncreasingFrameIndex(t *testing.T) {
	tr := newSimpleTracker(0, 0)
	t0 := 5
	pts := newPointsMatrix([][2]float64{{0, 0}})
	if _, err := tr.Track([]*Instance{{Points: pts}}, nil, &t0); err != nil {
		t.Fatalf("frame 0: %v", err)
	}
	t1 := 5
	_, err := tr.Track([]*Instance{{Points: pts}}, nil, &t1)
	if err == nil {
		t.Fatal("expected ConfigurationError for non-increasing t")
	}
	if _, ok := err.(*ConfigurationError); !ok {
		t.Fatalf("expected *ConfigurationError, got %T", err)
	}
}

func TestTrackerWindowCapacity(t *testing.T) {
	tr := newSimpleTracker(0, 0)
	tr.TrackWindow = 2
	pts := newPointsMatrix([][2]float64{{0, 0}})
	for i := 0; i < 5; i++ {
		tt := i
		if _, err := tr.Track([]*Instance{{Points: pts}}, nil, &tt); err != nil {
			t.Fatalf("frame %d: %v", i, err)
		}
	}
	if len(tr.Window()) != 2 {
		t.Fatalf("window length = %d, want 2", len(tr.Window()))
	}
}
