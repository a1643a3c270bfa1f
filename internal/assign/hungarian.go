package assign

import "github.com/arthurkushman/go-hungarian"

// Hungarian solves the minimum-cost assignment on a possibly rectangular
// cost matrix, treating +Inf as a forbidden pair. go-hungarian only
// solves square, profit-maximization problems, so this wraps it the same
// way: pad the matrix to square with a sentinel worse than any real
// pairing, convert cost to profit by subtracting from a per-call maximum,
// solve, then drop any returned pair that falls on padding or was
// forbidden in the original matrix.
func Hungarian(cost [][]float64) []Pair {
	rows := len(cost)
	if rows == 0 {
		return nil
	}
	cols := len(cost[0])
	if cols == 0 {
		return nil
	}

	n := rows
	if cols > n {
		n = cols
	}

	maxFinite := 0.0
	for _, row := range cost {
		for _, v := range row {
			if !isForbidden(v) && v > maxFinite {
				maxFinite = v
			}
		}
	}
	// maxProfit must exceed the largest finite cost so every real pairing
	// converts to a non-negative profit; padding cells get profit 0 so the
	// solver never prefers them over a real, even marginal, pairing.
	maxProfit := maxFinite + 1.0

	profit := make([][]float64, n)
	for i := 0; i < n; i++ {
		profit[i] = make([]float64, n)
		for j := 0; j < n; j++ {
			if i >= rows || j >= cols || isForbidden(cost[i][j]) {
				profit[i][j] = 0
				continue
			}
			profit[i][j] = maxProfit - cost[i][j]
		}
	}

	assigned := hungarian.SolveMax(profit)

	var pairs []Pair
	for rowIdx, matchedCols := range assigned {
		for colIdx := range matchedCols {
			if rowIdx >= rows || colIdx >= cols {
				continue
			}
			if isForbidden(cost[rowIdx][colIdx]) {
				continue
			}
			pairs = append(pairs, Pair{Row: rowIdx, Col: colIdx})
		}
	}
	return pairs
}
