/*
Package sleap implements a streaming multi-object pose tracker.

Given the untracked instances detected in each video frame (and,
depending on the configured candidate maker, the frame image), the
tracker assigns each instance a persistent Track identity: either one
carried forward from a recent frame, or a freshly spawned one.

# Basic usage

	tracker, err := sleap.NewTrackerByName(sleap.TrackerOptions{
		Tracker:    "flow",
		Similarity: "instance",
		Match:      "greedy",
	})
	if err != nil {
		log.Fatalf("failed to build tracker: %v", err)
	}

	for t, frame := range frames {
		tracked, err := tracker.Track(frame.Instances, frame.Image, &t)
		if err != nil {
			log.Fatalf("frame %d: %v", t, err)
		}
		...
	}

# Policies

Three independent axes are pluggable: the candidate maker (simple
replay vs. optical-flow shift), the pairwise similarity function
(instance, centroid, iou), and the bipartite matching function
(hungarian, greedy). See NewTrackerByName and TrackerOptions.

# Cleaning

TrackCleaner is a post-pass run once over all tracked frames; it caps
the instance count per frame and repairs one-in-one-out identity
swaps under a known instance-count prior.
*/
package sleap
