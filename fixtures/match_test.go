package fixtures

import (
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/fourtreestech/ilc-models/matches"
	"github.com/fourtreestech/ilc-models/players"
)

func TestMatchDefaults(t *testing.T) {
	g := newTestGenerator(60)

	match := g.Match(MatchParams{})
	if match.MatchID < 1 || match.MatchID > 999_999 {
		t.Fatalf("match ID %d out of range", match.MatchID)
	}
	if match.Status != matches.StatusFullTime {
		t.Fatalf("expected a played match, got status %q", match.Status)
	}
	if match.Teams.Home == "" || match.Teams.Away == "" || match.Teams.Home == match.Teams.Away {
		t.Fatalf("bad pairing %+v", match.Teams)
	}

	round, err := strconv.Atoi(strings.TrimPrefix(match.Round, "Round "))
	if err != nil || round < 1 || round > maxRound {
		t.Fatalf("unexpected round %q", match.Round)
	}

	if match.Kickoff.Location() != time.UTC {
		t.Fatalf("kickoff in %v, want UTC", match.Kickoff.Location())
	}
	if match.Kickoff.Hour() != 15 || match.Kickoff.Minute() != 0 {
		t.Fatalf("kickoff at %s, want 15:00", match.Kickoff.Format("15:04"))
	}
	if match.Kickoff.Before(fixedNow.AddDate(-1, 0, -1)) || match.Kickoff.After(fixedNow.AddDate(0, 0, 1)) {
		t.Fatalf("kickoff %s outside the past year", match.Kickoff)
	}
}

func TestMatchHonorsParams(t *testing.T) {
	g := newTestGenerator(61)

	kickoff := time.Date(2023, time.December, 26, 15, 0, 0, 0, time.UTC)
	home := g.Team()
	away := g.Team()
	match := g.Match(MatchParams{
		Kickoff: kickoff,
		Round:   "Round 19",
		Home:    &home,
		Away:    &away,
		Status:  matches.StatusFullTime,
	})

	if !match.Kickoff.Equal(kickoff) {
		t.Fatalf("kickoff %s, want %s", match.Kickoff, kickoff)
	}
	if match.Round != "Round 19" {
		t.Fatalf("round %q, want %q", match.Round, "Round 19")
	}
	if match.Teams.Home != home.Name || match.Teams.Away != away.Name {
		t.Fatalf("teams %+v, want %q v %q", match.Teams, home.Name, away.Name)
	}
}

func TestMatchUnplayedCarriesNoDetail(t *testing.T) {
	g := newTestGenerator(62)

	match := g.Match(MatchParams{Status: matches.StatusPostponed})
	if match.Status != matches.StatusPostponed {
		t.Fatalf("status %q, want %q", match.Status, matches.StatusPostponed)
	}
	if match.Score.Home != 0 || match.Score.Away != 0 {
		t.Fatalf("unplayed match carries a score %+v", match.Score)
	}
	if len(match.Lineups.Home.Starting) != 0 || len(match.Lineups.Away.Starting) != 0 {
		t.Fatal("unplayed match carries lineups")
	}
	if len(match.Events()) != 0 {
		t.Fatal("unplayed match carries events")
	}
}

func TestMatchGoalsMatchScore(t *testing.T) {
	g := newTestGenerator(63)

	for i := 0; i < 20; i++ {
		match := g.Match(MatchParams{})
		home, away := 0, 0
		for _, goal := range match.Goals {
			switch goal.Team {
			case match.Teams.Home:
				home++
			case match.Teams.Away:
				away++
			default:
				t.Fatalf("goal credited to unknown team %q", goal.Team)
			}
		}
		if home != match.Score.Home || away != match.Score.Away {
			t.Fatalf("score %+v but %d-%d goal events", match.Score, home, away)
		}
	}
}

func TestMatchTimelineOrdered(t *testing.T) {
	g := newTestGenerator(64)

	for i := 0; i < 20; i++ {
		events := g.Match(MatchParams{}).Events()
		for j := 1; j < len(events); j++ {
			prev, cur := events[j-1], events[j]
			if cur.Time < prev.Time || (cur.Time == prev.Time && cur.Plus < prev.Plus) {
				t.Fatalf("events out of order: (%d,%d) before (%d,%d)",
					prev.Time, prev.Plus, cur.Time, cur.Plus)
			}
		}
	}
}

func TestMatchLineupsComplete(t *testing.T) {
	g := newTestGenerator(65)

	match := g.Match(MatchParams{})
	assertLegalLineup(t, match.Lineups.Home)
	assertLegalLineup(t, match.Lineups.Away)
}

// lineupIDs collects the player IDs in a slot list.
func lineupIDs(slots []matches.LineupSlot) map[int]struct{} {
	ids := make(map[int]struct{}, len(slots))
	for _, s := range slots {
		ids[s.Player.PlayerID] = struct{}{}
	}
	return ids
}

func TestMatchSubstitutionRules(t *testing.T) {
	g := newTestGenerator(66)

	for i := 0; i < 20; i++ {
		match := g.Match(MatchParams{})
		sides := map[string]matches.Lineup{
			match.Teams.Home: match.Lineups.Home,
			match.Teams.Away: match.Lineups.Away,
		}

		counts := make(map[string]int)
		offs := make(map[int]struct{})
		ons := make(map[int]struct{})
		for _, event := range match.Substitutions {
			lineup, ok := sides[event.Team]
			if !ok {
				t.Fatalf("substitution for unknown team %q", event.Team)
			}
			counts[event.Team]++

			sub := event.Detail.(matches.Substitution)
			if _, dup := offs[sub.PlayerOff.PlayerID]; dup {
				t.Fatalf("player %d substituted off twice", sub.PlayerOff.PlayerID)
			}
			offs[sub.PlayerOff.PlayerID] = struct{}{}
			if _, dup := ons[sub.PlayerOn.PlayerID]; dup {
				t.Fatalf("player %d brought on twice", sub.PlayerOn.PlayerID)
			}
			ons[sub.PlayerOn.PlayerID] = struct{}{}

			if _, ok := lineupIDs(lineup.Starting)[sub.PlayerOff.PlayerID]; !ok {
				t.Fatalf("player off %d was not in the starting eleven", sub.PlayerOff.PlayerID)
			}
			if _, ok := lineupIDs(lineup.Subs)[sub.PlayerOn.PlayerID]; !ok {
				t.Fatalf("player on %d was not on the bench", sub.PlayerOn.PlayerID)
			}

			for _, keeper := range []players.BasePlayer{lineup.Starting[0].Player, lineup.Subs[0].Player} {
				if sub.PlayerOff.PlayerID == keeper.PlayerID || sub.PlayerOn.PlayerID == keeper.PlayerID {
					t.Fatalf("keeper %d involved in a substitution", keeper.PlayerID)
				}
			}
		}
		for team, n := range counts {
			if n > maxSubsPerTeam {
				t.Fatalf("%q made %d substitutions", team, n)
			}
		}
	}
}

func TestMatchCardRules(t *testing.T) {
	g := newTestGenerator(67)

	for i := 0; i < 20; i++ {
		match := g.Match(MatchParams{})
		sides := map[string]matches.Lineup{
			match.Teams.Home: match.Lineups.Home,
			match.Teams.Away: match.Lineups.Away,
		}

		counts := make(map[string]int)
		yellows := make(map[int]int)
		for _, event := range match.Cards {
			lineup, ok := sides[event.Team]
			if !ok {
				t.Fatalf("card for unknown team %q", event.Team)
			}
			counts[event.Team]++

			card := event.Detail.(matches.Card)
			members := lineupIDs(append(append([]matches.LineupSlot{}, lineup.Starting...), lineup.Subs...))
			if _, ok := members[card.Player.PlayerID]; !ok {
				t.Fatalf("carded player %d not in the squad lineup", card.Player.PlayerID)
			}
			if card.Color == matches.CardYellow {
				yellows[card.Player.PlayerID]++
			}
		}
		for team, n := range counts {
			if n > maxCardsPerTeam {
				t.Fatalf("%q collected %d cards", team, n)
			}
		}
		for id, n := range yellows {
			if n > 1 {
				t.Fatalf("player %d holds %d yellow cards, a second booking must become a red", id, n)
			}
		}
	}
}

func TestMatchSentOffStaysOff(t *testing.T) {
	g := newTestGenerator(68)

	for i := 0; i < 30; i++ {
		match := g.Match(MatchParams{})
		for _, event := range match.Cards {
			card := event.Detail.(matches.Card)
			if card.Color != matches.CardRed {
				continue
			}
			for _, subEvent := range match.Substitutions {
				sub := subEvent.Detail.(matches.Substitution)
				if sub.PlayerOff.PlayerID == card.Player.PlayerID {
					t.Fatalf("sent-off player %d later substituted off", card.Player.PlayerID)
				}
			}
		}
	}
}

// containsPlayer reports whether the pool holds the player's ID.
func containsPlayer(pool []players.BasePlayer, p players.BasePlayer) bool {
	for _, candidate := range pool {
		if candidate.PlayerID == p.PlayerID {
			return true
		}
	}
	return false
}

// Scorers and substituted players must have been on the pitch at the
// moment of their event, judged against the final timeline.
func TestMatchEventEligibility(t *testing.T) {
	g := newTestGenerator(69)

	for i := 0; i < 20; i++ {
		match := g.Match(MatchParams{})
		events := match.Events()
		starting := map[string][]players.BasePlayer{
			match.Teams.Home: match.Lineups.Home.StartingPlayers(),
			match.Teams.Away: match.Lineups.Away.StartingPlayers(),
		}
		otherTeam := map[string]string{
			match.Teams.Home: match.Teams.Away,
			match.Teams.Away: match.Teams.Home,
		}

		for _, event := range match.Goals {
			goal := event.Detail.(matches.Goal)
			team := event.Team
			if goal.Type == matches.GoalOwn {
				team = otherTeam[event.Team]
			}
			onPitch := matches.PlayersOn(team, starting[team], events, event.Time, event.Plus)
			if !containsPlayer(onPitch, goal.Scorer) {
				t.Fatalf("goal at (%d,%d) scored by %d who was not on the pitch",
					event.Time, event.Plus, goal.Scorer.PlayerID)
			}
		}

		for _, event := range match.Substitutions {
			sub := event.Detail.(matches.Substitution)
			onPitch := matches.PlayersOn(event.Team, starting[event.Team], events, event.Time, event.Plus)
			if !containsPlayer(onPitch, sub.PlayerOff) {
				t.Fatalf("substitution at (%d,%d) removed %d who was not on the pitch",
					event.Time, event.Plus, sub.PlayerOff.PlayerID)
			}
		}
	}
}

func TestSecondYellowEscalatesToRed(t *testing.T) {
	booked := players.BasePlayer{PlayerID: 7, Name: "R. Keane"}

	tests := []struct {
		name                   string
		firstTime, firstPlus   int
		secondTime, secondPlus int
		wantTime, wantPlus     int
	}{
		{name: "second booking later", firstTime: 30, secondTime: 70, wantTime: 70},
		{name: "second booking drawn earlier", firstTime: 80, firstPlus: 2, secondTime: 40, wantTime: 80, wantPlus: 2},
		{name: "same minute keeps larger stoppage", firstTime: 90, firstPlus: 1, secondTime: 90, secondPlus: 3, wantTime: 90, wantPlus: 3},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			match := &matches.Match{Cards: []matches.Event{
				yellowAt("Trent Albion", booked, tc.firstTime, tc.firstPlus),
			}}

			card := escalateSecondYellow(match, yellowAt("Trent Albion", booked, tc.secondTime, tc.secondPlus))

			detail := card.Detail.(matches.Card)
			if detail.Color != matches.CardRed || detail.Player.PlayerID != booked.PlayerID {
				t.Fatalf("expected a red card for player %d, got %+v", booked.PlayerID, detail)
			}
			if card.Time != tc.wantTime || card.Plus != tc.wantPlus {
				t.Fatalf("red card at (%d,%d), want (%d,%d)", card.Time, card.Plus, tc.wantTime, tc.wantPlus)
			}
			if len(match.Cards) != 0 {
				t.Fatalf("expected the first yellow removed, got %+v", match.Cards)
			}
		})
	}
}

func TestFirstBookingStaysYellow(t *testing.T) {
	match := &matches.Match{Cards: []matches.Event{
		yellowAt("Trent Albion", players.BasePlayer{PlayerID: 8, Name: "P. Vieira"}, 20, 0),
	}}

	card := escalateSecondYellow(match, yellowAt("Trent Albion", players.BasePlayer{PlayerID: 7, Name: "R. Keane"}, 55, 0))

	if detail := card.Detail.(matches.Card); detail.Color != matches.CardYellow {
		t.Fatalf("expected the booking kept yellow, got %+v", detail)
	}
	if len(match.Cards) != 1 {
		t.Fatalf("expected the earlier booking kept, got %d cards", len(match.Cards))
	}
}

func TestDropSubstitutionOff(t *testing.T) {
	off := players.BasePlayer{PlayerID: 4, Name: "S. Gerrard"}
	on := players.BasePlayer{PlayerID: 5, Name: "J. Milner"}
	match := &matches.Match{
		Substitutions: []matches.Event{{
			Team:   "Mersey Rovers",
			Time:   60,
			Detail: matches.Substitution{PlayerOff: off, PlayerOn: on},
		}},
	}

	dropSubstitutionOff(match, on)
	if len(match.Substitutions) != 1 {
		t.Fatal("expected the substitution kept when the sent-off player only came on")
	}

	dropSubstitutionOff(match, off)
	if len(match.Substitutions) != 0 {
		t.Fatalf("expected the substitution dropped, got %+v", match.Substitutions)
	}
}

func yellowAt(team string, p players.BasePlayer, timeMin, plus int) matches.Event {
	return matches.Event{
		Team:   team,
		Time:   timeMin,
		Plus:   plus,
		Detail: matches.Card{Color: matches.CardYellow, Player: p},
	}
}
