package sleap

import "image"

// CandidateMaker produces, from the sliding window and the current
// frame, the pool of reference candidates the tracker compares the
// current frame's instances against.
type CandidateMaker interface {
	// UsesImage reports whether GetCandidates needs the current frame
	// image; the tracker only retains images in the window for makers
	// that report true here.
	UsesImage() bool
	GetCandidates(window []*MatchedFrame, t int, img image.Image) ([]candidate, error)
}

// SimpleCandidateMaker replays every past tracked instance from every
// frame in the window whose visible-point count clears MinPoints. It
// never needs the frame image, so a track is represented once per frame
// it appeared in across the window.
type SimpleCandidateMaker struct {
	MinPoints int
}

func (m *SimpleCandidateMaker) UsesImage() bool { return false }

func (m *SimpleCandidateMaker) GetCandidates(window []*MatchedFrame, t int, img image.Image) ([]candidate, error) {
	var out []candidate
	for _, frame := range window {
		for _, inst := range frame.Instances {
			if inst.NVisiblePoints() >= m.MinPoints {
				out = append(out, inst)
			}
		}
	}
	return out, nil
}
