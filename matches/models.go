// Package matches holds the match data model: scores, lineups, the event
// timeline and the on-pitch eligibility rule shared by cards and goals.
package matches

import (
	"sort"
	"time"

	"github.com/fourtreestech/ilc-models/players"
)

// Status mirrors the short codes used by football data feeds.
type Status string

const (
	StatusNotStarted Status = "NS"
	StatusFullTime   Status = "FT"
	StatusPostponed  Status = "PST"
)

// Played reports whether the match has been played to a result.
func (s Status) Played() bool {
	return s == StatusFullTime
}

// Teams names the two sides of a match.
type Teams struct {
	Home string `json:"home"`
	Away string `json:"away"`
}

// Score captures home and away goal counts.
type Score struct {
	Home int `json:"home"`
	Away int `json:"away"`
}

// LineupSlot pairs a shirt number with the player wearing it.
type LineupSlot struct {
	Shirt  int                `json:"shirt"`
	Player players.BasePlayer `json:"player"`
}

// Lineup is one team's match-day selection: eleven starters and seven
// substitutes. The first entry of each list is a goalkeeper, and shirt
// numbers are unique across the eighteen.
type Lineup struct {
	Starting []LineupSlot `json:"starting"`
	Subs     []LineupSlot `json:"subs"`
}

// StartingPlayers returns the base players of the starting eleven.
func (l Lineup) StartingPlayers() []players.BasePlayer {
	starters := make([]players.BasePlayer, len(l.Starting))
	for i, slot := range l.Starting {
		starters[i] = slot.Player
	}
	return starters
}

// BenchPlayers returns the base players named as substitutes.
func (l Lineup) BenchPlayers() []players.BasePlayer {
	bench := make([]players.BasePlayer, len(l.Subs))
	for i, slot := range l.Subs {
		bench[i] = slot.Player
	}
	return bench
}

// Lineups pairs the home and away lineups.
type Lineups struct {
	Home Lineup `json:"home"`
	Away Lineup `json:"away"`
}

// Match is the canonical match shape produced by the generator.
type Match struct {
	MatchID       int       `json:"match_id"`
	Kickoff       time.Time `json:"kickoff"`
	Round         string    `json:"round"`
	Teams         Teams     `json:"teams"`
	Status        Status    `json:"status"`
	Score         Score     `json:"score"`
	Lineups       Lineups   `json:"lineups"`
	Goals         []Event   `json:"goals"`
	Cards         []Event   `json:"cards"`
	Substitutions []Event   `json:"substitutions"`
}

// Events returns goals, cards and substitutions as a single timeline
// ordered by (Time, Plus). Events at the same instant keep their insertion
// order within goals, then cards, then substitutions.
func (m Match) Events() []Event {
	events := make([]Event, 0, len(m.Goals)+len(m.Cards)+len(m.Substitutions))
	events = append(events, m.Goals...)
	events = append(events, m.Cards...)
	events = append(events, m.Substitutions...)
	sort.SliceStable(events, func(i, j int) bool {
		if events[i].Time != events[j].Time {
			return events[i].Time < events[j].Time
		}
		return events[i].Plus < events[j].Plus
	})
	return events
}
