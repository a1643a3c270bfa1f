package sleap

import "sort"

// TrackCleaner is a post-pass, run once after every frame has been
// tracked, that caps the instance count per frame by detection score and
// repairs one-in-one-out identity swaps under a known instance-count
// prior. It operates in place on the frames passed to Run.
type TrackCleaner struct {
	InstanceCount int
}

// Run sorts frames by T, caps each over-capacity frame to the top
// InstanceCount instances by Score, then heals single-track swaps. It
// mutates frames' Instances slices in place.
func (cl *TrackCleaner) Run(frames []*MatchedFrame) {
	if cl.InstanceCount <= 0 {
		return
	}
	sort.Slice(frames, func(i, j int) bool { return frames[i].T < frames[j].T })

	for _, f := range frames {
		cl.capFrame(f)
	}
	cl.healSwaps(frames)
}

// capFrame keeps only the top InstanceCount instances by Score, treating
// a missing Score as the lowest possible.
func (cl *TrackCleaner) capFrame(f *MatchedFrame) {
	if len(f.Instances) <= cl.InstanceCount {
		return
	}
	sorted := make([]*Instance, len(f.Instances))
	copy(sorted, f.Instances)
	sort.SliceStable(sorted, func(i, j int) bool {
		return scoreOf(sorted[i]) > scoreOf(sorted[j])
	})
	f.Instances = sorted[:cl.InstanceCount]
}

func scoreOf(inst *Instance) float64 {
	if inst.Score == nil {
		return negInf
	}
	return *inst.Score
}

const negInf = -1e308

// healSwaps merges a fresh spurious track back onto a track that just
// disappeared on the previous frame. last_good_tracks only re-anchors in
// the else branch below — preserve this exact guard, since re-anchoring
// whenever a frame merely has InstanceCount tracks (even after a repair
// fired) stops healing after the first clean frame.
func (cl *TrackCleaner) healSwaps(frames []*MatchedFrame) {
	if len(frames) == 0 {
		return
	}
	fix := make(map[*Track]*Track)
	lastGood := trackSet(frames[0].Instances)

	for _, f := range frames {
		applyFix(f, fix)

		frameTracks := trackSet(f.Instances)
		extra := setDiff(frameTracks, lastGood)
		missing := setDiff(lastGood, frameTracks)

		if len(extra) == 1 && len(missing) == 1 {
			var fromTrack, toTrack *Track
			for t := range extra {
				fromTrack = t
			}
			for t := range missing {
				toTrack = t
			}
			relabel(f, fromTrack, toTrack)
			fix[fromTrack] = toTrack
		} else if len(frameTracks) == cl.InstanceCount {
			lastGood = frameTracks
		}
	}
}

// applyFix rewrites any instance whose track is a retired key in fix,
// provided the replacement isn't already present in the frame.
func applyFix(f *MatchedFrame, fix map[*Track]*Track) {
	present := trackSet(f.Instances)
	for _, inst := range f.Instances {
		repl, ok := fix[inst.Track]
		if !ok {
			continue
		}
		if present[repl] {
			continue
		}
		present[repl] = true
		delete(present, inst.Track)
		inst.Track = repl
	}
}

func relabel(f *MatchedFrame, from, to *Track) {
	for _, inst := range f.Instances {
		if inst.Track == from {
			inst.Track = to
		}
	}
}

func trackSet(instances []*Instance) map[*Track]bool {
	s := make(map[*Track]bool, len(instances))
	for _, inst := range instances {
		s[inst.Track] = true
	}
	return s
}

func setDiff(a, b map[*Track]bool) map[*Track]bool {
	d := make(map[*Track]bool)
	for t := range a {
		if !b[t] {
			d[t] = true
		}
	}
	return d
}
