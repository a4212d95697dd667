package fixtures

import (
	"fmt"

	"github.com/fourtreestech/ilc-models/weighted"
)

// Default squad shape.
const (
	DefaultSquadSize    = 25
	DefaultSquadKeepers = 3
)

// MaxSquadSize is the number of dressable shirts.
const MaxSquadSize = 39

// Squad returns a randomly generated squad. A size of 0 means 25 players
// and a keepers count of 0 means 3 goalkeepers. Shirt numbers are drawn
// from 2-39 with low numbers weighted up (2-11 three times as likely as
// 20-39, 12-19 twice as likely) so they cluster on outfield players.
// Shirt 1 always belongs to a goalkeeper; any further keepers take drawn
// numbers above 11. Keepers precede outfield players in the result.
//
// Squad panics when the parameters cannot produce a legal squad: more
// than 39 players, more keepers than players, or too few drawn numbers
// above 11 to dress every keeper.
func (g *Generator) Squad(size, keepers int) []SquadPlayer {
	if size == 0 {
		size = DefaultSquadSize
	}
	if keepers == 0 {
		keepers = DefaultSquadKeepers
	}
	if size < 1 || size > MaxSquadSize || keepers < 1 || keepers > size {
		panic(fmt.Sprintf("fixtures: impossible squad of %d players with %d keepers", size, keepers))
	}

	// Everyone but the first keeper gets a shirt from the weighted pool.
	shirts := make([]int, 0, 38)
	weights := make([]int, 0, 38)
	for n := 2; n < 40; n++ {
		shirts = append(shirts, n)
		switch {
		case n <= 11:
			weights = append(weights, 3)
		case n <= 19:
			weights = append(weights, 2)
		default:
			weights = append(weights, 1)
		}
	}
	shirtNumbers := weighted.Sample(g.rng, shirts, weights, size-1)

	keeperShirts := []int{1}
	for len(keeperShirts) < keepers {
		candidates := make([]int, 0, len(shirtNumbers))
		for _, n := range shirtNumbers {
			if n > 11 {
				candidates = append(candidates, n)
			}
		}
		if len(candidates) == 0 {
			panic(fmt.Sprintf("fixtures: no keeper shirt above 11 left in a squad of %d", size))
		}
		shirt := candidates[g.rng.Intn(len(candidates))]
		keeperShirts = append(keeperShirts, shirt)
		shirtNumbers = removeInt(shirtNumbers, shirt)
	}

	squad := make([]SquadPlayer, 0, size)
	for _, n := range keeperShirts {
		squad = append(squad, g.squadPlayer(n, true))
	}
	for _, n := range shirtNumbers {
		squad = append(squad, g.squadPlayer(n, false))
	}
	return squad
}

// squadPlayer builds one squad member with fresh weights. Goalkeepers are
// pinned to the minimum scorer weight.
func (g *Generator) squadPlayer(shirt int, keeper bool) SquadPlayer {
	player := SquadPlayer{
		ShirtNumber:     shirt,
		Keeper:          keeper,
		BasePlayer:      g.BasePlayer(),
		SelectionWeight: g.rng.Intn(100) + 1,
		ScorerWeight:    1,
	}
	if !keeper {
		player.ScorerWeight = g.rng.Intn(99) + 2
	}
	return player
}

// removeInt drops the first occurrence of v, if present.
func removeInt(list []int, v int) []int {
	for i, n := range list {
		if n == v {
			return append(list[:i], list[i+1:]...)
		}
	}
	return list
}
