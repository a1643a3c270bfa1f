package sleap

import "image"

// TrackerLike is the common surface of Tracker and the pass-through
// tracker the factory returns for --tracker None, letting callers depend
// on the construction result without caring which one they got.
type TrackerLike interface {
	Track(untracked []*Instance, img image.Image, t *int) ([]*Instance, error)
}

// passthroughTracker implements TrackerLike without a window, candidate
// maker, or assignment step: it echoes its input back unchanged. This is
// what --tracker None builds.
type passthroughTracker struct{}

func (passthroughTracker) Track(untracked []*Instance, _ image.Image, _ *int) ([]*Instance, error) {
	return untracked, nil
}

// candidateMakerNames lists the valid --tracker values, in flag-table order.
var candidateMakerNames = []string{"simple", "flow", "None"}

// NewTrackerByName builds a TrackerLike from a TrackerOptions value,
// resolving each policy name eagerly so an unknown value fails
// construction immediately with a descriptive *ConfigurationError rather
// than surfacing later out of a running Track call.
func NewTrackerByName(opts TrackerOptions) (TrackerLike, error) {
	if opts.Tracker == "None" || opts.Tracker == "" {
		return passthroughTracker{}, nil
	}

	var maker CandidateMaker
	switch opts.Tracker {
	case "simple":
		maker = &SimpleCandidateMaker{MinPoints: opts.MinMatchPoints}
	case "flow":
		maker = &FlowCandidateMaker{
			ImgScale:         opts.ImgScale,
			OfWindowSize:     opts.OfWindowSize,
			OfMaxLevels:      opts.OfMaxLevels,
			MinShiftedPoints: opts.MinMatchPoints,
		}
	default:
		return nil, &ConfigurationError{Option: "tracker", Value: opts.Tracker, Valid: candidateMakerNames}
	}

	similarity, err := getSimilarityByName(opts.Similarity)
	if err != nil {
		return nil, err
	}

	match, err := getMatchByName(opts.Match)
	if err != nil {
		return nil, err
	}

	return &Tracker{
		CandidateMaker:    maker,
		Similarity:        similarity,
		Match:             match,
		TrackWindow:       opts.TrackWindow,
		MinNewTrackPoints: opts.MinNewTrackPoints,
		MinMatchPoints:    opts.MinMatchPoints,
	}, nil
}

// NewTrackCleaner builds a *TrackCleaner from opts, or nil if cleaning is
// disabled (CleanInstanceCount <= 0).
func NewTrackCleaner(opts TrackerOptions) *TrackCleaner {
	if opts.CleanInstanceCount <= 0 {
		return nil
	}
	return &TrackCleaner{InstanceCount: opts.CleanInstanceCount}
}
