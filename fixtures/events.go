package fixtures

import (
	"sort"

	"github.com/fourtreestech/ilc-models/matches"
	"github.com/fourtreestech/ilc-models/players"
	"github.com/fourtreestech/ilc-models/weighted"
)

// First-half weightings passed to EventTime.
const (
	DefaultFirstHalfWeighting = 50
	SubFirstHalfWeighting     = 10
)

// One-in-N chances for event details.
const (
	straightRedChance = 30
	penaltyChance     = 10
	ownGoalChance     = 30
)

// EventTime returns a random (time, plus) pair. firstHalfWeighting is the
// percentage chance of a first-half time. First-half times never carry
// stoppage minutes; second-half minutes past 45 become stoppage time, so
// minute 47 in the second half yields (90, 2).
func (g *Generator) EventTime(firstHalfWeighting int) (timeMin, plus int) {
	half := 1
	if g.rng.Intn(100)+1 <= firstHalfWeighting {
		half = 0
	}
	minute := g.rng.Intn(50) + 1

	timeMin = min(minute, 45) + 45*half
	if half == 1 {
		plus = max(minute-45, 0)
	}
	return timeMin, plus
}

// SubstitutionParams are the optional inputs to Substitution. Zero values
// are synthesized: an empty team name draws one, a zero Time draws a
// second-half biased timestamp, and empty pools fall back to single
// generated players.
type SubstitutionParams struct {
	Team    string
	Time    int
	Plus    int
	Exits   []players.BasePlayer
	Entries []players.BasePlayer
}

// Substitution returns one randomly generated substitution event.
func (g *Generator) Substitution(p SubstitutionParams) matches.Event {
	if p.Team == "" {
		p.Team = g.TeamName()
	}
	if p.Time == 0 {
		p.Time, p.Plus = g.EventTime(SubFirstHalfWeighting)
	}
	exits := p.Exits
	if len(exits) == 0 {
		exits = []players.BasePlayer{g.BasePlayer()}
	}
	entries := p.Entries
	if len(entries) == 0 {
		entries = []players.BasePlayer{g.BasePlayer()}
	}

	return matches.Event{
		Team: p.Team,
		Time: p.Time,
		Plus: p.Plus,
		Detail: matches.Substitution{
			PlayerOn:  entries[g.rng.Intn(len(entries))],
			PlayerOff: exits[g.rng.Intn(len(exits))],
		},
	}
}

// SubWindowParams are the optional inputs to SubWindow. A zero Count draws
// one; Team, Time and the pools behave as in SubstitutionParams.
type SubWindowParams struct {
	Team    string
	Count   int
	Time    int
	Plus    int
	Exits   []players.BasePlayer
	Entries []players.BasePlayer
}

// SubWindow returns the substitutions made within a single window: one
// timestamp carrying Count simultaneous substitutions. Pools shrink as
// players are used and the window closes early if either pool empties, so
// no player is subbed twice.
func (g *Generator) SubWindow(p SubWindowParams) []matches.Event {
	if p.Team == "" {
		p.Team = g.TeamName()
	}
	if p.Count == 0 {
		maxSubs := 3
		if len(p.Exits) > 0 {
			maxSubs = len(p.Exits)
		}
		p.Count = g.rng.Intn(maxSubs) + 1
	}
	if p.Time == 0 {
		p.Time, p.Plus = g.EventTime(SubFirstHalfWeighting)
	}

	exits := clonePlayers(p.Exits)
	if len(exits) == 0 {
		exits = g.basePlayers(p.Count)
	}
	entries := clonePlayers(p.Entries)
	if len(entries) == 0 {
		entries = g.basePlayers(p.Count)
	}

	subs := make([]matches.Event, 0, p.Count)
	for len(subs) < p.Count {
		sub := g.Substitution(SubstitutionParams{
			Team:    p.Team,
			Time:    p.Time,
			Plus:    p.Plus,
			Exits:   exits,
			Entries: entries,
		})
		detail := sub.Detail.(matches.Substitution)
		exits = removeBasePlayer(exits, detail.PlayerOff)
		entries = removeBasePlayer(entries, detail.PlayerOn)
		subs = append(subs, sub)
		if len(exits) == 0 || len(entries) == 0 {
			break
		}
	}
	return subs
}

// CardParams are the optional inputs to Card. An empty Players pool falls
// back to one generated player.
type CardParams struct {
	Team    string
	Time    int
	Plus    int
	Players []players.BasePlayer
}

// Card returns one randomly generated card event. One card in thirty is a
// straight red; the rest are yellow.
func (g *Generator) Card(p CardParams) matches.Event {
	if p.Team == "" {
		p.Team = g.TeamName()
	}
	if p.Time == 0 {
		p.Time, p.Plus = g.EventTime(DefaultFirstHalfWeighting)
	}
	pool := p.Players
	if len(pool) == 0 {
		pool = []players.BasePlayer{g.BasePlayer()}
	}

	color := matches.CardYellow
	if g.rng.Intn(straightRedChance)+1 == straightRedChance {
		color = matches.CardRed
	}

	return matches.Event{
		Team: p.Team,
		Time: p.Time,
		Plus: p.Plus,
		Detail: matches.Card{
			Color:  color,
			Player: pool[g.rng.Intn(len(pool))],
		},
	}
}

// GoalParams are the optional inputs to Goal. Scorers is the scoring
// team's on-pitch pool; Opponents is the other side's, used for own goals.
// An empty Type draws one; a supplied Type is honored verbatim.
type GoalParams struct {
	Team      *Team
	Time      int
	Plus      int
	Scorers   []players.BasePlayer
	Opponents []players.BasePlayer
	Type      matches.GoalType
}

// Goal returns one randomly generated goal event. One goal in ten is a
// penalty, converted by the heaviest-weighted eligible scorer; one in
// thirty is an own goal, scored by a random opponent. Normal goals go to a
// weighted draw by scorer weight over the eligible players.
func (g *Generator) Goal(p GoalParams) matches.Event {
	team := p.Team
	if team == nil {
		t := g.Team()
		team = &t
	}
	if p.Time == 0 {
		p.Time, p.Plus = g.EventTime(DefaultFirstHalfWeighting)
	}

	goalType := p.Type
	if goalType == "" {
		goalType = matches.GoalNormal
		if g.rng.Intn(penaltyChance)+1 == penaltyChance {
			goalType = matches.GoalPenalty
		} else if g.rng.Intn(ownGoalChance)+1 == ownGoalChance {
			goalType = matches.GoalOwn
		}
	}

	var scorer players.BasePlayer
	if goalType == matches.GoalOwn {
		if len(p.Opponents) == 0 {
			scorer = g.BasePlayer()
		} else {
			scorer = p.Opponents[g.rng.Intn(len(p.Opponents))]
		}
	} else {
		scorers := p.Scorers
		if len(scorers) == 0 && len(team.Squad) > 0 {
			scorers = g.Lineup(team.Squad).StartingPlayers()
		}
		potential := eligibleScorers(team.Squad, scorers)
		if len(potential) == 0 {
			potential = []SquadPlayer{{BasePlayer: g.BasePlayer(), ScorerWeight: 1}}
		}
		sort.SliceStable(potential, func(i, j int) bool {
			return potential[i].ScorerWeight > potential[j].ScorerWeight
		})

		if goalType == matches.GoalPenalty {
			scorer = potential[0].BasePlayer
		} else {
			candidates := make([]players.BasePlayer, len(potential))
			weights := make([]int, len(potential))
			for i, sp := range potential {
				candidates[i] = sp.BasePlayer
				weights[i] = sp.ScorerWeight
			}
			scorer = weighted.Choice(g.rng, candidates, weights)
		}
	}

	return matches.Event{
		Team: team.Name,
		Time: p.Time,
		Plus: p.Plus,
		Detail: matches.Goal{
			Type:   goalType,
			Scorer: scorer,
		},
	}
}

// eligibleScorers returns the squad players whose base player appears in
// the pool, preserving squad order.
func eligibleScorers(squad []SquadPlayer, pool []players.BasePlayer) []SquadPlayer {
	inPool := make(map[int]struct{}, len(pool))
	for _, p := range pool {
		inPool[p.PlayerID] = struct{}{}
	}
	eligible := make([]SquadPlayer, 0, len(pool))
	for _, sp := range squad {
		if _, ok := inPool[sp.BasePlayer.PlayerID]; ok {
			eligible = append(eligible, sp)
		}
	}
	return eligible
}

// basePlayers generates n fresh placeholder players.
func (g *Generator) basePlayers(n int) []players.BasePlayer {
	list := make([]players.BasePlayer, n)
	for i := range list {
		list[i] = g.BasePlayer()
	}
	return list
}

// clonePlayers copies a pool so the caller's slice is never mutated.
func clonePlayers(list []players.BasePlayer) []players.BasePlayer {
	if len(list) == 0 {
		return nil
	}
	cloned := make([]players.BasePlayer, len(list))
	copy(cloned, list)
	return cloned
}

// removeBasePlayer drops the first entry matching p's ID, if present.
func removeBasePlayer(list []players.BasePlayer, p players.BasePlayer) []players.BasePlayer {
	for i, candidate := range list {
		if candidate.PlayerID == p.PlayerID {
			return append(list[:i], list[i+1:]...)
		}
	}
	return list
}
