package sleap

import (
	"math"

	"github.com/kant/sleap/internal/assign"
)

// MatchFunc solves a bipartite assignment on a cost matrix (rows =
// current-frame instances, cols = candidate tracks), returning the
// matched (row, col) pairs. +Inf cost entries are forbidden and never
// appear in the output.
type MatchFunc func(cost [][]float64) []assign.Pair

func hungarianMatch(cost [][]float64) []assign.Pair { return assign.Hungarian(cost) }
func greedyMatch(cost [][]float64) []assign.Pair    { return assign.Greedy(cost) }

var matchRegistry = map[string]MatchFunc{
	"hungarian": hungarianMatch,
	"greedy":    greedyMatch,
}

// matchNames lists the valid --match values, in flag-table order.
var matchNames = []string{"hungarian", "greedy"}

// getMatchByName resolves a --match flag value to its MatchFunc, or a
// *ConfigurationError if the name is unknown.
func getMatchByName(name string) (MatchFunc, error) {
	fn, ok := matchRegistry[name]
	if !ok {
		return nil, &ConfigurationError{Option: "match", Value: name, Valid: matchNames}
	}
	return fn, nil
}

// costFromSimilarity negates a similarity matrix into a cost matrix,
// mapping NaN (no comparable candidate) to +Inf so it is treated as
// forbidden by every solver.
func costFromSimilarity(sim [][]float64) [][]float64 {
	cost := make([][]float64, len(sim))
	for i, row := range sim {
		cost[i] = make([]float64, len(row))
		for j, v := range row {
			if math.IsNaN(v) {
				cost[i][j] = math.Inf(1)
				continue
			}
			cost[i][j] = -v
		}
	}
	return cost
}
