// Package assign solves bipartite assignment problems over a plain cost
// matrix: Hungarian (optimal) and greedy (repeated global minimum).
// Both treat +Inf entries as forbidden pairs that must never appear in
// the returned assignment.
package assign

import "math"

// Pair is one matched (row, col) index pair in an assignment's cost
// matrix.
type Pair struct {
	Row int
	Col int
}

// isForbidden reports whether a cost entry marks a disallowed pair.
func isForbidden(cost float64) bool {
	return math.IsInf(cost, 1)
}
