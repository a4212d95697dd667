package fixtures

import (
	"fmt"
	"time"

	"github.com/fourtreestech/ilc-models/internal/timeutil"
	"github.com/fourtreestech/ilc-models/matches"
	"github.com/fourtreestech/ilc-models/players"
)

// Rounds in a default season.
const maxRound = 38

// In-match limits.
const (
	maxSubsPerTeam  = 5
	maxSubWindows   = 3
	maxCardsPerTeam = 4
)

// MatchParams are the optional inputs to Match. Supplied fields are used
// verbatim; zero fields are synthesized.
type MatchParams struct {
	Kickoff time.Time
	Round   string
	Home    *Team
	Away    *Team
	Status  matches.Status
}

// Match returns a randomly generated match. Played matches carry a score
// derived from the team strengths, full lineups and a consistent event
// timeline built in three passes: substitutions, then cards, then goals,
// each pass respecting what the earlier passes scheduled. Unplayed
// matches carry identity, teams, kickoff, round and status only.
func (g *Generator) Match(p MatchParams) matches.Match {
	if p.Kickoff.IsZero() {
		p.Kickoff = g.kickoff()
	}
	if p.Round == "" {
		p.Round = fmt.Sprintf("Round %d", g.rng.Intn(maxRound)+1)
	}
	home := p.Home
	if home == nil {
		t := g.Team()
		home = &t
	}
	away := p.Away
	if away == nil {
		t := g.Team()
		away = &t
	}
	if p.Status == "" {
		p.Status = matches.StatusFullTime
	}

	match := matches.Match{
		MatchID: g.MatchID(),
		Kickoff: p.Kickoff,
		Round:   p.Round,
		Teams:   matches.Teams{Home: home.Name, Away: away.Name},
		Status:  p.Status,
	}
	if !match.Status.Played() {
		return match
	}

	match.Score = g.Score(home.Strength, away.Strength)
	match.Lineups = g.Lineups(home.Squad, away.Squad)

	g.simulateSubstitutions(&match, home, away)
	g.simulateCards(&match, home, away)
	g.simulateGoals(&match, home, away)

	return match
}

// kickoff picks a date in the past year with the traditional 15:00 UTC
// start.
func (g *Generator) kickoff() time.Time {
	now := g.now()
	date := g.faker.DateRange(now.AddDate(-1, 0, 0), now.AddDate(0, 0, -1))
	return timeutil.Kickoff(date)
}

// simulateSubstitutions schedules each team's substitutions in at most
// three windows, spreading the total evenly over the windows that remain.
// Goalkeepers never take part.
func (g *Generator) simulateSubstitutions(match *matches.Match, home, away *Team) {
	for _, side := range matchSides(match, home, away) {
		exits := outfieldPlayers(side.team.Squad, side.lineup.Starting)
		entries := outfieldPlayers(side.team.Squad, side.lineup.Subs)
		if len(exits) == 0 || len(entries) == 0 {
			continue
		}

		total := g.rng.Intn(min(maxSubsPerTeam, len(entries))) + 1
		subs := make([]matches.Event, 0, total)
		for window := 0; window < maxSubWindows && len(subs) < total; window++ {
			remaining := total - len(subs)
			windowsLeft := maxSubWindows - window
			count := (remaining + windowsLeft - 1) / windowsLeft

			windowSubs := g.SubWindow(SubWindowParams{
				Team:    side.team.Name,
				Count:   count,
				Exits:   exits,
				Entries: entries,
			})
			for _, sub := range windowSubs {
				detail := sub.Detail.(matches.Substitution)
				exits = removeBasePlayer(exits, detail.PlayerOff)
				entries = removeBasePlayer(entries, detail.PlayerOn)
			}
			subs = append(subs, windowSubs...)
			if len(exits) == 0 || len(entries) == 0 {
				break
			}
		}
		match.Substitutions = append(match.Substitutions, subs...)
	}
}

// simulateCards books 0-4 players per team, escalating a second yellow
// into a single red card and unscheduling any substitution that would
// take a sent-off player off the pitch.
func (g *Generator) simulateCards(match *matches.Match, home, away *Team) {
	for _, side := range matchSides(match, home, away) {
		starting := side.lineup.StartingPlayers()

		for n := g.rng.Intn(maxCardsPerTeam + 1); n > 0; n-- {
			timeMin, plus := g.EventTime(DefaultFirstHalfWeighting)
			onPitch := matches.PlayersOn(side.team.Name, starting, match.Events(), timeMin, plus)

			card := g.Card(CardParams{
				Team:    side.team.Name,
				Time:    timeMin,
				Plus:    plus,
				Players: onPitch,
			})
			card = escalateSecondYellow(match, card)
			match.Cards = append(match.Cards, card)

			if detail := card.Detail.(matches.Card); detail.Color == matches.CardRed {
				dropSubstitutionOff(match, detail.Player)
			}
		}
	}
}

// simulateGoals attributes exactly score-many goals to each team, drawing
// eligible scorers from the pitch at each goal's moment.
func (g *Generator) simulateGoals(match *matches.Match, home, away *Team) {
	sides := matchSides(match, home, away)
	goals := []int{match.Score.Home, match.Score.Away}

	for i, side := range sides {
		other := sides[1-i]
		for n := 0; n < goals[i]; n++ {
			timeMin, plus := g.EventTime(DefaultFirstHalfWeighting)
			events := match.Events()
			scorers := matches.PlayersOn(side.team.Name, side.lineup.StartingPlayers(), events, timeMin, plus)
			opponents := matches.PlayersOn(other.team.Name, other.lineup.StartingPlayers(), events, timeMin, plus)

			match.Goals = append(match.Goals, g.Goal(GoalParams{
				Team:      side.team,
				Time:      timeMin,
				Plus:      plus,
				Scorers:   scorers,
				Opponents: opponents,
			}))
		}
	}
}

// matchSide pairs a team with its lineup for the simulation passes.
type matchSide struct {
	team   *Team
	lineup matches.Lineup
}

func matchSides(match *matches.Match, home, away *Team) []matchSide {
	return []matchSide{
		{team: home, lineup: match.Lineups.Home},
		{team: away, lineup: match.Lineups.Away},
	}
}

// escalateSecondYellow turns a second booking into a single red card at
// the later of the two moments, removing the first yellow from the match.
func escalateSecondYellow(match *matches.Match, card matches.Event) matches.Event {
	detail, ok := card.Detail.(matches.Card)
	if !ok || detail.Color != matches.CardYellow {
		return card
	}

	for i, prev := range match.Cards {
		prevDetail, ok := prev.Detail.(matches.Card)
		if !ok || prevDetail.Color != matches.CardYellow || prevDetail.Player.PlayerID != detail.Player.PlayerID {
			continue
		}

		laterTime, laterPlus := card.Time, card.Plus
		switch {
		case card.Time == prev.Time:
			laterPlus = max(card.Plus, prev.Plus)
		case card.Time < prev.Time:
			laterTime, laterPlus = prev.Time, prev.Plus
		}

		match.Cards = append(match.Cards[:i], match.Cards[i+1:]...)
		return matches.Event{
			Team: card.Team,
			Time: laterTime,
			Plus: laterPlus,
			Detail: matches.Card{
				Color:  matches.CardRed,
				Player: detail.Player,
			},
		}
	}
	return card
}

// dropSubstitutionOff deletes the substitution, if any, that would take
// the sent-off player off the pitch.
func dropSubstitutionOff(match *matches.Match, sentOff players.BasePlayer) {
	for i, sub := range match.Substitutions {
		detail, ok := sub.Detail.(matches.Substitution)
		if ok && detail.PlayerOff.PlayerID == sentOff.PlayerID {
			match.Substitutions = append(match.Substitutions[:i], match.Substitutions[i+1:]...)
			return
		}
	}
}

// outfieldPlayers returns the base players in the given slots, leaving
// out the squad's goalkeepers.
func outfieldPlayers(squad []SquadPlayer, slots []matches.LineupSlot) []players.BasePlayer {
	keeperIDs := make(map[int]struct{}, 3)
	for _, sp := range squad {
		if sp.Keeper {
			keeperIDs[sp.BasePlayer.PlayerID] = struct{}{}
		}
	}
	outfield := make([]players.BasePlayer, 0, len(slots))
	for _, s := range slots {
		if _, keeper := keeperIDs[s.Player.PlayerID]; !keeper {
			outfield = append(outfield, s.Player)
		}
	}
	return outfield
}
