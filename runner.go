package sleap

import (
	"fmt"
	"image"

	"github.com/schollz/progressbar/v3"
)

// Frame is one pre-loaded frame of a sequence: its untracked instances
// and optional image, paired with the frame index to drive the tracker
// with.
type Frame struct {
	T         int
	Instances []*Instance
	Image     image.Image
}

// RunSequence drives tracker across frames in order, clearing any
// pre-existing track labels first, reporting progress on stderr via a
// progress bar, and running cleaner once at the end if non-nil. It
// returns the tracked frames in input order.
func RunSequence(tracker TrackerLike, frames []Frame, cleaner *TrackCleaner) ([]*MatchedFrame, error) {
	bar := progressbar.Default(int64(len(frames)), "tracking")

	out := make([]*MatchedFrame, len(frames))
	for i, f := range frames {
		untracked := make([]*Instance, len(f.Instances))
		for j, inst := range f.Instances {
			untracked[j] = &Instance{
				Points: inst.Points,
				Score:  inst.Score,
				Frame:  f.T,
			}
		}

		t := f.T
		tracked, err := tracker.Track(untracked, f.Image, &t)
		if err != nil {
			return nil, fmt.Errorf("tracking frame %d: %w", f.T, err)
		}
		out[i] = &MatchedFrame{T: f.T, Instances: tracked, Image: f.Image}

		if err := bar.Add(1); err != nil {
			return nil, fmt.Errorf("updating progress bar: %w", err)
		}
	}

	if cleaner != nil {
		cleaner.Run(out)
	}
	return out, nil
}
