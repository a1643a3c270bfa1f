package sleap

import (
	"math"
	"testing"
)

func TestInstanceDerivedGeometry(t *testing.T) {
	inst := &Instance{Points: newPointsMatrix([][2]float64{{0, 0}, {2, 4}})}
	y, x := inst.Centroid()
	if y != 1 || x != 2 {
		t.Fatalf("Centroid = (%v, %v), want (1, 2)", y, x)
	}
	box := inst.BoundingBox()
	if box != [4]float64{0, 0, 2, 4} {
		t.Fatalf("BoundingBox = %v, want [0 0 2 4]", box)
	}
	if inst.NVisiblePoints() != 2 {
		t.Fatalf("NVisiblePoints = %d, want 2", inst.NVisiblePoints())
	}
}

func TestInstanceCandidateInterface(t *testing.T) {
	track := &Track{Name: "track_0"}
	inst := &Instance{Points: newPointsMatrix([][2]float64{{0, 0}}), Track: track}
	var c candidate = inst
	if c.candidateTrack() != track {
		t.Fatalf("candidateTrack() did not return the instance's track")
	}
	if c.candidatePoints() != inst.Points {
		t.Fatalf("candidatePoints() did not return the instance's points")
	}
}

func TestShiftedInstanceCandidateInterface(t *testing.T) {
	track := &Track{Name: "track_0"}
	s := &ShiftedInstance{
		Points:      newPointsMatrix([][2]float64{{1, 1}}),
		Track:       track,
		SourceFrame: 3,
		ShiftScore:  -0.5,
	}
	var c candidate = s
	if c.candidateTrack() != track {
		t.Fatalf("candidateTrack() did not return the shifted instance's track")
	}
}

func TestInstanceMissingValuePropagation(t *testing.T) {
	inst := &Instance{Points: newPointsMatrix([][2]float64{
		{math.NaN(), math.NaN()},
		{math.NaN(), math.NaN()},
	})}
	if inst.NVisiblePoints() != 0 {
		t.Fatalf("NVisiblePoints = %d, want 0", inst.NVisiblePoints())
	}
	y, x := inst.Centroid()
	if !math.IsNaN(y) || !math.IsNaN(x) {
		t.Fatalf("Centroid of all-missing instance = (%v, %v), want (NaN, NaN)", y, x)
	}
}
