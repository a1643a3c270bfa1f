package sleap

import (
	"math"
)

// SimilarityFunc scores how similar two instances are; higher means more
// similar. The tracker always calls it as similarity(untracked, candidate)
// — instance similarity is asymmetric in that argument order (see
// instanceSimilarity), and callers must preserve it rather than "fixing"
// it by symmetrizing.
type SimilarityFunc func(query, ref candidate, cache *similarityCache) float64

// similarityCache memoizes the per-candidate derived quantities
// (centroid, bounding box) that similarity functions need, for the
// lifetime of one tracker step. Instances are immutable during a step,
// so a value computed once for a given candidate is valid for every
// comparison made against it in that step. Never share a cache across
// steps or tracker instances.
type similarityCache struct {
	centroid map[candidate][2]float64
	bbox     map[candidate][4]float64
}

func newSimilarityCache() *similarityCache {
	return &similarityCache{
		centroid: make(map[candidate][2]float64),
		bbox:     make(map[candidate][4]float64),
	}
}

func (c *similarityCache) centroidOf(inst candidate) [2]float64 {
	if v, ok := c.centroid[inst]; ok {
		return v
	}
	y, x := centroid(inst.candidatePoints())
	v := [2]float64{y, x}
	c.centroid[inst] = v
	return v
}

func (c *similarityCache) bboxOf(inst candidate) [4]float64 {
	if v, ok := c.bbox[inst]; ok {
		return v
	}
	yMin, xMin, yMax, xMax := boundingBox(inst.candidatePoints())
	v := [4]float64{yMin, xMin, yMax, xMax}
	c.bbox[inst] = v
	return v
}

// instanceSimilarity sums exp(-d_j) over joints visible in both query and
// ref, where d_j is squared Euclidean joint distance, normalized by the
// count of joints visible in ref alone. This is intentionally asymmetric:
// swapping query and ref changes the result whenever their visibility
// patterns differ.
func instanceSimilarity(query, ref candidate, _ *similarityCache) float64 {
	q := query.candidatePoints()
	r := ref.candidatePoints()
	qr, _ := q.Dims()
	rr, _ := r.Dims()
	if qr != rr {
		return math.NaN()
	}
	var sum float64
	var refVisible int
	for j := 0; j < rr; j++ {
		ry, rx := r.At(j, 0), r.At(j, 1)
		if math.IsNaN(ry) || math.IsNaN(rx) {
			continue
		}
		refVisible++
		qy, qx := q.At(j, 0), q.At(j, 1)
		if math.IsNaN(qy) || math.IsNaN(qx) {
			continue
		}
		dy, dx := qy-ry, qx-rx
		d := dy*dy + dx*dx
		sum += math.Exp(-d)
	}
	if refVisible == 0 {
		return math.NaN()
	}
	return sum / float64(refVisible)
}

// centroidSimilarity is the negative Euclidean distance between the two
// instances' centroids: closer centroids score higher (less negative).
func centroidSimilarity(query, ref candidate, cache *similarityCache) float64 {
	qc := cache.centroidOf(query)
	rc := cache.centroidOf(ref)
	if math.IsNaN(qc[0]) || math.IsNaN(qc[1]) || math.IsNaN(rc[0]) || math.IsNaN(rc[1]) {
		return math.NaN()
	}
	dy, dx := qc[0]-rc[0], qc[1]-rc[1]
	return -math.Sqrt(dy*dy + dx*dx)
}

// iouSimilarity is intersection-over-union of the two instances' axis
// aligned bounding boxes.
func iouSimilarity(query, ref candidate, cache *similarityCache) float64 {
	qb := cache.bboxOf(query)
	rb := cache.bboxOf(ref)
	return iouBoxes(qb, rb)
}

var similarityRegistry = map[string]SimilarityFunc{
	"instance": instanceSimilarity,
	"centroid": centroidSimilarity,
	"iou":      iouSimilarity,
}

// similarityNames lists the valid --similarity values, in flag-table order.
var similarityNames = []string{"instance", "centroid", "iou"}

// getSimilarityByName resolves a --similarity flag value to its
// SimilarityFunc, or a *ConfigurationError if the name is unknown.
func getSimilarityByName(name string) (SimilarityFunc, error) {
	fn, ok := similarityRegistry[name]
	if !ok {
		return nil, &ConfigurationError{Option: "similarity", Value: name, Valid: similarityNames}
	}
	return fn, nil
}
