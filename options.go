package sleap

import (
	"flag"
	"strconv"

	"gopkg.in/ini.v1"
)

// TrackerOptions mirrors the tracker's command-line surface: one field
// per flag, each carrying its documented default. Both RegisterFlags and
// the ini loader populate the same struct, so a tracker can be built
// identically from flags or from a checked-in config file.
type TrackerOptions struct {
	Tracker    string
	Similarity string
	Match      string

	TrackWindow       int
	MinNewTrackPoints int
	MinMatchPoints    int

	ImgScale     float64
	OfWindowSize int
	OfMaxLevels  int

	CleanInstanceCount int
}

// DefaultTrackerOptions returns the documented flag defaults.
func DefaultTrackerOptions() TrackerOptions {
	return TrackerOptions{
		Tracker:            "None",
		Similarity:         "instance",
		Match:              "greedy",
		TrackWindow:        5,
		MinNewTrackPoints:  0,
		MinMatchPoints:     0,
		ImgScale:           1.0,
		OfWindowSize:       21,
		OfMaxLevels:        3,
		CleanInstanceCount: 0,
	}
}

// RegisterFlags binds every tracker option to fs, seeded with opts'
// current values as defaults. Call on a DefaultTrackerOptions() value to
// reproduce the documented command-line surface.
func (opts *TrackerOptions) RegisterFlags(fs *flag.FlagSet) {
	fs.StringVar(&opts.Tracker, "tracker", opts.Tracker, "candidate maker: simple, flow, or None")
	fs.StringVar(&opts.Similarity, "similarity", opts.Similarity, "pairwise similarity: instance, centroid, or iou")
	fs.StringVar(&opts.Match, "match", opts.Match, "assignment solver: hungarian or greedy")
	fs.IntVar(&opts.TrackWindow, "track_window", opts.TrackWindow, "sliding window capacity")
	fs.IntVar(&opts.MinNewTrackPoints, "min_new_track_points", opts.MinNewTrackPoints, "minimum visible joints required to spawn a new track")
	fs.IntVar(&opts.MinMatchPoints, "min_match_points", opts.MinMatchPoints, "minimum visible joints required for a reference to be a candidate")
	fs.Float64Var(&opts.ImgScale, "img_scale", opts.ImgScale, "flow-only: image prescale factor")
	fs.IntVar(&opts.OfWindowSize, "of_window_size", opts.OfWindowSize, "flow-only: Lucas-Kanade window size")
	fs.IntVar(&opts.OfMaxLevels, "of_max_levels", opts.OfMaxLevels, "flow-only: optical-flow pyramid depth")
	fs.IntVar(&opts.CleanInstanceCount, "clean_instance_count", opts.CleanInstanceCount, "if >0, run the cleaner with this target instance count per frame")
}

// LoadOptionsFromINI reads tracker options from an ini file's default
// section, starting from DefaultTrackerOptions() for any key left unset.
// This mirrors the teacher's own ini-based config idiom for letting a
// tracker configuration live in a project file instead of being passed
// as flags on every run.
func LoadOptionsFromINI(path string) (TrackerOptions, error) {
	opts := DefaultTrackerOptions()

	cfg, err := ini.Load(path)
	if err != nil {
		return opts, err
	}
	sec := cfg.Section("")

	if k := sec.Key("tracker"); k.String() != "" {
		opts.Tracker = k.String()
	}
	if k := sec.Key("similarity"); k.String() != "" {
		opts.Similarity = k.String()
	}
	if k := sec.Key("match"); k.String() != "" {
		opts.Match = k.String()
	}
	opts.TrackWindow = sec.Key("track_window").MustInt(opts.TrackWindow)
	opts.MinNewTrackPoints = sec.Key("min_new_track_points").MustInt(opts.MinNewTrackPoints)
	opts.MinMatchPoints = sec.Key("min_match_points").MustInt(opts.MinMatchPoints)
	opts.ImgScale = sec.Key("img_scale").MustFloat64(opts.ImgScale)
	opts.OfWindowSize = sec.Key("of_window_size").MustInt(opts.OfWindowSize)
	opts.OfMaxLevels = sec.Key("of_max_levels").MustInt(opts.OfMaxLevels)
	opts.CleanInstanceCount = sec.Key("clean_instance_count").MustInt(opts.CleanInstanceCount)

	return opts, nil
}

// SaveOptionsToINI persists opts to path's default section, so a tracker
// configuration arrived at via flags can be checked into a project file.
func SaveOptionsToINI(opts TrackerOptions, path string) error {
	cfg := ini.Empty()
	sec := cfg.Section("")

	sec.Key("tracker").SetValue(opts.Tracker)
	sec.Key("similarity").SetValue(opts.Similarity)
	sec.Key("match").SetValue(opts.Match)
	sec.Key("track_window").SetValue(strconv.Itoa(opts.TrackWindow))
	sec.Key("min_new_track_points").SetValue(strconv.Itoa(opts.MinNewTrackPoints))
	sec.Key("min_match_points").SetValue(strconv.Itoa(opts.MinMatchPoints))
	sec.Key("img_scale").SetValue(strconv.FormatFloat(opts.ImgScale, 'g', -1, 64))
	sec.Key("of_window_size").SetValue(strconv.Itoa(opts.OfWindowSize))
	sec.Key("of_max_levels").SetValue(strconv.Itoa(opts.OfMaxLevels))
	sec.Key("clean_instance_count").SetValue(strconv.Itoa(opts.CleanInstanceCount))

	return cfg.SaveTo(path)
}
