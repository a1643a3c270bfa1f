package sleap

import (
	"image"

	"github.com/google/uuid"
	"gonum.org/v1/gonum/mat"
)

// Track is an opaque persistent identity. Two Tracks are the same track
// iff they are the same pointer; a Tracker never reconstructs one from
// scratch once spawned.
type Track struct {
	ID        uuid.UUID
	Name      string
	SpawnedOn int
}

// Instance is one detected pose: a keypoint array plus optional track and
// score metadata. Points is (J, 2), row i holding (y, x); a missing
// keypoint has NaN in both coordinates.
type Instance struct {
	Points        *mat.Dense
	Track         *Track
	TrackingScore *float64
	Score         *float64
	Frame         int
}

// NVisiblePoints is the count of rows of Points with no missing coordinate.
func (inst *Instance) NVisiblePoints() int {
	return nVisiblePoints(inst.Points)
}

// Centroid is the elementwise median of Points ignoring missing rows.
func (inst *Instance) Centroid() (y, x float64) {
	return centroid(inst.Points)
}

// BoundingBox returns (yMin, xMin, yMax, xMax) over the visible rows of
// Points.
func (inst *Instance) BoundingBox() [4]float64 {
	yMin, xMin, yMax, xMax := boundingBox(inst.Points)
	return [4]float64{yMin, xMin, yMax, xMax}
}

// candidate is the narrow view that similarity functions and the tracker
// core need from either an Instance or a ShiftedInstance, so both can
// flow through the same candidate-grouping and matrix-fill code.
type candidate interface {
	candidatePoints() *mat.Dense
	candidateTrack() *Track
}

func (inst *Instance) candidatePoints() *mat.Dense { return inst.Points }
func (inst *Instance) candidateTrack() *Track      { return inst.Track }

// ShiftedInstance is a candidate-only instance produced by the flow
// candidate maker: a past instance's keypoints warped into the current
// frame by optical flow. It is never itself emitted as tracker output.
type ShiftedInstance struct {
	Points       *mat.Dense
	Track        *Track
	SourceFrame  int
	ShiftScore   float64
}

func (s *ShiftedInstance) candidatePoints() *mat.Dense { return s.Points }
func (s *ShiftedInstance) candidateTrack() *Track      { return s.Track }

// MatchedFrame is one entry of the sliding window: a frame index, its
// tracked instances, and (only when the active candidate maker needs it)
// the frame image.
type MatchedFrame struct {
	T         int
	Instances []*Instance
	Image     image.Image
}
