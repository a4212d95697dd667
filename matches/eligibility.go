package matches

import "github.com/fourtreestech/ilc-models/players"

// PlayersOn returns the players on the pitch for a team at a given moment.
// Starting from the starting eleven it replays every event for that team
// occurring strictly before (timeMin, plus): a substitution swaps the
// exiting player for the entering one and a red card removes the sent-off
// player. Events referencing players not in the working set are ignored,
// so hand-built histories cannot make the replay fail.
func PlayersOn(team string, starting []players.BasePlayer, events []Event, timeMin, plus int) []players.BasePlayer {
	onPitch := make([]players.BasePlayer, len(starting))
	copy(onPitch, starting)

	for _, event := range events {
		if event.Team != team {
			continue
		}
		if event.Time > timeMin || (event.Time == timeMin && event.Plus >= plus) {
			continue
		}
		switch detail := event.Detail.(type) {
		case Substitution:
			onPitch = removePlayer(onPitch, detail.PlayerOff)
			onPitch = append(onPitch, detail.PlayerOn)
		case Card:
			if detail.Color == CardRed {
				onPitch = removePlayer(onPitch, detail.Player)
			}
		}
	}
	return onPitch
}

// removePlayer drops the first entry matching p's ID, if present.
func removePlayer(list []players.BasePlayer, p players.BasePlayer) []players.BasePlayer {
	for i, candidate := range list {
		if candidate.PlayerID == p.PlayerID {
			return append(list[:i], list[i+1:]...)
		}
	}
	return list
}
