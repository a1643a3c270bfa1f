package sleap

import (
	"fmt"
	"image"
	"math"

	"github.com/google/uuid"
)

// Tracker assigns persistent Track identities to the untracked instances
// of each incoming frame, maintaining a bounded sliding window of past
// tracked frames as its only state. A Tracker is not safe for concurrent
// use; callers drive one frame at a time in monotonically increasing
// frame order (see Track).
type Tracker struct {
	CandidateMaker CandidateMaker
	Similarity     SimilarityFunc
	Match          MatchFunc

	TrackWindow       int
	MinNewTrackPoints int
	MinMatchPoints    int

	window        []*MatchedFrame
	spawnedTracks []*Track
	nextSpawnIdx  int
	lastT         *int
}

// SpawnedTracks returns every track minted by this tracker so far, in
// spawn order. The returned slice is the tracker's own list, not a copy;
// callers must not mutate it. The tracker never mutates entries already
// appended.
func (tr *Tracker) SpawnedTracks() []*Track {
	return tr.spawnedTracks
}

// Track runs one frame step: it finds candidates via the configured
// candidate maker, builds the similarity matrix, solves assignment,
// spawns new tracks for whatever is left over, and appends the result to
// the sliding window.
//
// t, when non-nil, must be strictly greater than the last frame index
// pushed into the window; violating this is a configuration error. When
// t is nil, the tracker uses the last pushed index + 1, or 0 if the
// window is empty.
func (tr *Tracker) Track(untracked []*Instance, img image.Image, t *int) ([]*Instance, error) {
	frameT, err := tr.resolveFrameIndex(t)
	if err != nil {
		return nil, err
	}

	if len(untracked) == 0 {
		tr.pushFrame(frameT, nil, img)
		return nil, nil
	}

	candidates, err := tr.CandidateMaker.GetCandidates(tr.window, frameT, img)
	if err != nil {
		return nil, err
	}

	assignedIdx := make(map[int]bool, len(untracked))
	var out []*Instance

	if len(candidates) > 0 {
		groups := groupByTrack(candidates)
		sim, _ := tr.buildSimilarityMatrix(untracked, groups)
		cost := costFromSimilarity(sim)
		pairs := tr.Match(cost)

		for _, p := range pairs {
			score := sim[p.Row][p.Col]
			src := untracked[p.Row]
			tracked := &Instance{
				Points:        src.Points,
				Track:         groups[p.Col].track,
				TrackingScore: &score,
				Score:         src.Score,
				Frame:         frameT,
			}
			out = append(out, tracked)
			assignedIdx[p.Row] = true
		}
	}

	for i, inst := range untracked {
		if assignedIdx[i] {
			continue
		}
		if inst.NVisiblePoints() < tr.MinNewTrackPoints {
			continue
		}
		track := tr.spawnTrack(frameT)
		out = append(out, &Instance{
			Points: inst.Points,
			Track:  track,
			Score:  inst.Score,
			Frame:  frameT,
		})
	}

	tr.pushFrame(frameT, out, img)
	return out, nil
}

// resolveFrameIndex applies the nil-t default and rejects non-increasing
// explicit t values.
func (tr *Tracker) resolveFrameIndex(t *int) (int, error) {
	if t == nil {
		if tr.lastT == nil {
			return 0, nil
		}
		return *tr.lastT + 1, nil
	}
	if tr.lastT != nil && *t <= *tr.lastT {
		return 0, &ConfigurationError{
			Option: "t",
			Value:  fmt.Sprintf("%d", *t),
			Valid:  []string{fmt.Sprintf("> %d", *tr.lastT)},
		}
	}
	return *t, nil
}

// trackGroup is every candidate seen this step that shares one track.
type trackGroup struct {
	track      *Track
	candidates []candidate
}

// groupByTrack partitions candidates by their track identity. Multiple
// candidates can share a track: past frames in the window, or several
// optical-flow-shifted copies of the same track.
func groupByTrack(candidates []candidate) []trackGroup {
	index := make(map[*Track]int)
	var groups []trackGroup
	for _, c := range candidates {
		trk := c.candidateTrack()
		if idx, ok := index[trk]; ok {
			groups[idx].candidates = append(groups[idx].candidates, c)
			continue
		}
		index[trk] = len(groups)
		groups = append(groups, trackGroup{track: trk, candidates: []candidate{c}})
	}
	return groups
}

// buildSimilarityMatrix fills S[i][j] with the best (maximum) similarity
// of untracked[i] against any candidate in groups[j], and repCand[i][j]
// with the candidate that achieved it.
func (tr *Tracker) buildSimilarityMatrix(untracked []*Instance, groups []trackGroup) (sim [][]float64, repCand [][]candidate) {
	cache := newSimilarityCache()
	sim = make([][]float64, len(untracked))
	repCand = make([][]candidate, len(untracked))
	for i, q := range untracked {
		sim[i] = make([]float64, len(groups))
		repCand[i] = make([]candidate, len(groups))
		for j := range sim[i] {
			sim[i][j] = math.NaN()
		}
		for j, g := range groups {
			if len(g.candidates) == 0 {
				continue
			}
			best := math.NaN()
			var bestCand candidate
			for _, c := range g.candidates {
				s := tr.Similarity(q, c, cache)
				if math.IsNaN(s) {
					continue
				}
				if math.IsNaN(best) || s > best {
					best = s
					bestCand = c
				}
			}
			sim[i][j] = best
			repCand[i][j] = bestCand
		}
	}
	return sim, repCand
}

// spawnTrack mints a fresh Track for this tracker instance. The spawn
// counter lives on the Tracker, not at package scope: two trackers never
// share or contend on it.
func (tr *Tracker) spawnTrack(t int) *Track {
	track := &Track{
		ID:        uuid.New(),
		Name:      fmt.Sprintf("track_%d", tr.nextSpawnIdx),
		SpawnedOn: t,
	}
	tr.nextSpawnIdx++
	tr.spawnedTracks = append(tr.spawnedTracks, track)
	return track
}

// pushFrame appends a MatchedFrame to the window, evicting the oldest
// entry once at capacity, and drops the image reference when the active
// candidate maker doesn't need it so evicted frames don't pin memory.
func (tr *Tracker) pushFrame(t int, instances []*Instance, img image.Image) {
	capacity := tr.TrackWindow
	if capacity <= 0 {
		capacity = 5
	}
	var kept image.Image
	if tr.CandidateMaker.UsesImage() {
		kept = img
	}
	tr.window = append(tr.window, &MatchedFrame{T: t, Instances: instances, Image: kept})
	if len(tr.window) > capacity {
		tr.window[0] = nil
		tr.window = tr.window[1:]
	}
	tr.lastT = &t
}

// Window returns the current sliding-window contents, oldest first. The
// returned slice is the tracker's own window, not a copy; callers must
// not mutate it.
func (tr *Tracker) Window() []*MatchedFrame {
	return tr.window
}
