package fixtures

import (
	"fmt"

	"github.com/fourtreestech/ilc-models/matches"
	"github.com/fourtreestech/ilc-models/weighted"
)

// Throwaway squad shape used when no squad is supplied.
const (
	throwawaySquadSize    = 18
	throwawaySquadKeepers = 2
)

// Lineup picks a starting eleven and a bench of seven from the squad by
// selection weight. An empty squad gets a throwaway squad of 18 with two
// goalkeepers. The starting goalkeeper is always Starting[0] and the
// backup keeper Subs[0]; all eighteen shirt numbers are distinct. Lineup
// panics unless the squad holds at least two goalkeepers and sixteen
// outfield players.
func (g *Generator) Lineup(squad []SquadPlayer) matches.Lineup {
	if len(squad) == 0 {
		squad = g.Squad(throwawaySquadSize, throwawaySquadKeepers)
	}

	keepers := make([]SquadPlayer, 0, 3)
	outfield := make([]SquadPlayer, 0, len(squad))
	for _, p := range squad {
		if p.Keeper {
			keepers = append(keepers, p)
		} else {
			outfield = append(outfield, p)
		}
	}
	if len(keepers) < 2 || len(outfield) < 16 {
		panic(fmt.Sprintf("fixtures: lineup needs 2 keepers and 16 outfield players, squad has %d and %d",
			len(keepers), len(outfield)))
	}

	// Starting keeper by weight; the backup is the next keeper in squad
	// order.
	keeper1 := weighted.Choice(g.rng, keepers, selectionWeights(keepers))
	var keeper2 SquadPlayer
	for _, p := range keepers {
		if p.BasePlayer.PlayerID != keeper1.BasePlayer.PlayerID {
			keeper2 = p
			break
		}
	}

	starting := weighted.Sample(g.rng, outfield, selectionWeights(outfield), 10)
	remaining := subtract(outfield, starting)
	bench := weighted.Sample(g.rng, remaining, selectionWeights(remaining), 6)

	lineup := matches.Lineup{
		Starting: make([]matches.LineupSlot, 0, 11),
		Subs:     make([]matches.LineupSlot, 0, 7),
	}
	lineup.Starting = append(lineup.Starting, slot(keeper1))
	for _, p := range starting {
		lineup.Starting = append(lineup.Starting, slot(p))
	}
	lineup.Subs = append(lineup.Subs, slot(keeper2))
	for _, p := range bench {
		lineup.Subs = append(lineup.Subs, slot(p))
	}
	return lineup
}

// Lineups returns a home/away pair of lineups drawn from the given
// squads; either may be empty to synthesize a throwaway squad.
func (g *Generator) Lineups(home, away []SquadPlayer) matches.Lineups {
	return matches.Lineups{Home: g.Lineup(home), Away: g.Lineup(away)}
}

func slot(p SquadPlayer) matches.LineupSlot {
	return matches.LineupSlot{Shirt: p.ShirtNumber, Player: p.BasePlayer}
}

// selectionWeights extracts the lineup-selection weights.
func selectionWeights(squad []SquadPlayer) []int {
	weights := make([]int, len(squad))
	for i, p := range squad {
		weights[i] = p.SelectionWeight
	}
	return weights
}

// subtract returns the pool members not already picked, matching by
// player ID and preserving pool order.
func subtract(pool, picked []SquadPlayer) []SquadPlayer {
	pickedIDs := make(map[int]struct{}, len(picked))
	for _, p := range picked {
		pickedIDs[p.BasePlayer.PlayerID] = struct{}{}
	}
	remaining := make([]SquadPlayer, 0, len(pool)-len(picked))
	for _, p := range pool {
		if _, ok := pickedIDs[p.BasePlayer.PlayerID]; !ok {
			remaining = append(remaining, p)
		}
	}
	return remaining
}
