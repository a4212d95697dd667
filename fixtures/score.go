package fixtures

import (
	"github.com/fourtreestech/ilc-models/matches"
	"github.com/fourtreestech/ilc-models/weighted"
)

// Score synthesizes a final score from two strength ratings (0-5). The
// score difference follows a triangular distribution over -5..5 centered
// on the strength gap; the trailing side is pinned to a low baseline drawn
// from {0,1,2}, keeping most scorelines realistic.
func (g *Generator) Score(homeStrength, awayStrength int) matches.Score {
	strengthDelta := homeStrength - awayStrength

	deltas := make([]int, 0, 11)
	weights := make([]int, 0, 11)
	for n := -5; n <= 5; n++ {
		deltas = append(deltas, n)
		weights = append(weights, 12-abs(n-strengthDelta))
	}
	scoreDelta := weighted.Choice(g.rng, deltas, weights)

	// 0 or -1 is a draw at the low score; other negatives are away wins,
	// positives home wins.
	low := g.rng.Intn(3)
	if scoreDelta < 1 {
		away := low
		if scoreDelta < -1 {
			away = low + abs(scoreDelta+1)
		}
		return matches.Score{Home: low, Away: away}
	}
	return matches.Score{Home: low + scoreDelta, Away: low}
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
