package sleap

import (
	"math"

	"gonum.org/v1/gonum/mat"
)

// newPointsMatrix builds a (J, 2) points matrix from row-major (row, col)
// pairs. Missing keypoints are represented by math.NaN() in either (or
// both) coordinates.
func newPointsMatrix(rows [][2]float64) *mat.Dense {
	j := len(rows)
	m := mat.NewDense(j, 2, nil)
	for i, rc := range rows {
		m.Set(i, 0, rc[0])
		m.Set(i, 1, rc[1])
	}
	return m
}

// nVisiblePoints counts the rows of points with no missing coordinate.
func nVisiblePoints(points *mat.Dense) int {
	r, _ := points.Dims()
	n := 0
	for i := 0; i < r; i++ {
		y, x := points.At(i, 0), points.At(i, 1)
		if !math.IsNaN(y) && !math.IsNaN(x) {
			n++
		}
	}
	return n
}

// centroid computes the elementwise median of points, ignoring rows where
// either coordinate is missing. Returns (NaN, NaN) if no row is fully
// visible.
func centroid(points *mat.Dense) (y, x float64) {
	r, _ := points.Dims()
	ys := make([]float64, 0, r)
	xs := make([]float64, 0, r)
	for i := 0; i < r; i++ {
		py, px := points.At(i, 0), points.At(i, 1)
		if math.IsNaN(py) || math.IsNaN(px) {
			continue
		}
		ys = append(ys, py)
		xs = append(xs, px)
	}
	return median(ys), median(xs)
}

// median returns the median of vs, or NaN if vs is empty. vs is sorted
// in place; callers must pass a slice they own.
func median(vs []float64) float64 {
	n := len(vs)
	if n == 0 {
		return math.NaN()
	}
	sortFloat64s(vs)
	if n%2 == 1 {
		return vs[n/2]
	}
	return (vs[n/2-1] + vs[n/2]) / 2
}

// sortFloat64s is a small insertion sort, adequate for the joint counts
// (tens, not thousands) this package operates on.
func sortFloat64s(vs []float64) {
	for i := 1; i < len(vs); i++ {
		for j := i; j > 0 && vs[j-1] > vs[j]; j-- {
			vs[j-1], vs[j] = vs[j], vs[j-1]
		}
	}
}

// boundingBox returns (yMin, xMin, yMax, xMax) over the visible rows of
// points, skipping any row with a missing coordinate. All four values
// are NaN if no row is fully visible.
func boundingBox(points *mat.Dense) (yMin, xMin, yMax, xMax float64) {
	r, _ := points.Dims()
	yMin, xMin = math.NaN(), math.NaN()
	yMax, xMax = math.NaN(), math.NaN()
	for i := 0; i < r; i++ {
		py, px := points.At(i, 0), points.At(i, 1)
		if math.IsNaN(py) || math.IsNaN(px) {
			continue
		}
		if math.IsNaN(yMin) || py < yMin {
			yMin = py
		}
		if math.IsNaN(yMax) || py > yMax {
			yMax = py
		}
		if math.IsNaN(xMin) || px < xMin {
			xMin = px
		}
		if math.IsNaN(xMax) || px > xMax {
			xMax = px
		}
	}
	return yMin, xMin, yMax, xMax
}

// boxArea returns the area of a (yMin, xMin, yMax, xMax) box, or 0 if
// the box is degenerate (non-positive width/height, or any NaN bound).
func boxArea(yMin, xMin, yMax, xMax float64) float64 {
	if math.IsNaN(yMin) || math.IsNaN(xMin) || math.IsNaN(yMax) || math.IsNaN(xMax) {
		return 0
	}
	h := yMax - yMin
	w := xMax - xMin
	if h <= 0 || w <= 0 {
		return 0
	}
	return h * w
}

// iouBoxes computes intersection-over-union of two (yMin, xMin, yMax,
// xMax) boxes, returning 0 if either has non-positive area.
func iouBoxes(a, b [4]float64) float64 {
	areaA := boxArea(a[0], a[1], a[2], a[3])
	areaB := boxArea(b[0], b[1], b[2], b[3])
	if areaA <= 0 || areaB <= 0 {
		return 0
	}
	yMin := math.Max(a[0], b[0])
	xMin := math.Max(a[1], b[1])
	yMax := math.Min(a[2], b[2])
	xMax := math.Min(a[3], b[3])
	inter := boxArea(yMin, xMin, yMax, xMax)
	union := areaA + areaB - inter
	if union <= 0 {
		return 0
	}
	return inter / union
}
