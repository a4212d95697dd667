package matches

import (
	"encoding/json"
	"fmt"

	"github.com/fourtreestech/ilc-models/players"
)

// GoalType distinguishes how a goal was scored.
type GoalType string

const (
	GoalNormal  GoalType = "N"
	GoalOwn     GoalType = "O"
	GoalPenalty GoalType = "P"
)

// CardColor is the disciplinary card color.
type CardColor string

const (
	CardYellow CardColor = "Y"
	CardRed    CardColor = "R"
)

// Detail is the closed set of event payloads: Goal, Card or Substitution.
type Detail interface {
	// Players returns the players involved in the event.
	Players() []players.BasePlayer

	eventDetail()
}

// Goal records a goal and its scorer. An own goal's scorer belongs to the
// team the goal is credited against.
type Goal struct {
	Type   GoalType           `json:"goal_type"`
	Scorer players.BasePlayer `json:"scorer"`
}

// Players returns the scorer.
func (g Goal) Players() []players.BasePlayer {
	return []players.BasePlayer{g.Scorer}
}

func (Goal) eventDetail() {}

// Card records a yellow or red card.
type Card struct {
	Color  CardColor          `json:"color"`
	Player players.BasePlayer `json:"player"`
}

// Players returns the carded player.
func (c Card) Players() []players.BasePlayer {
	return []players.BasePlayer{c.Player}
}

func (Card) eventDetail() {}

// Substitution swaps PlayerOff for PlayerOn.
type Substitution struct {
	PlayerOff players.BasePlayer `json:"player_off"`
	PlayerOn  players.BasePlayer `json:"player_on"`
}

// Players returns the exiting player followed by the entering player.
func (s Substitution) Players() []players.BasePlayer {
	return []players.BasePlayer{s.PlayerOff, s.PlayerOn}
}

func (Substitution) eventDetail() {}

// Event is a single timeline entry for one team. Time is the match minute
// and Plus the stoppage minutes past 45 or 90; ordering is by (Time, Plus).
type Event struct {
	Team   string
	Time   int
	Plus   int
	Detail Detail
}

// Detail discriminators used in the JSON encoding.
const (
	eventTypeGoal         = "goal"
	eventTypeCard         = "card"
	eventTypeSubstitution = "substitution"
)

type eventJSON struct {
	Team   string          `json:"team"`
	Time   int             `json:"time"`
	Plus   int             `json:"plus"`
	Type   string          `json:"type"`
	Detail json.RawMessage `json:"detail"`
}

// MarshalJSON encodes the event with a type tag discriminating the detail.
func (e Event) MarshalJSON() ([]byte, error) {
	var kind string
	switch e.Detail.(type) {
	case Goal:
		kind = eventTypeGoal
	case Card:
		kind = eventTypeCard
	case Substitution:
		kind = eventTypeSubstitution
	default:
		return nil, fmt.Errorf("marshal event: unsupported detail %T", e.Detail)
	}

	detail, err := json.Marshal(e.Detail)
	if err != nil {
		return nil, err
	}
	return json.Marshal(eventJSON{
		Team:   e.Team,
		Time:   e.Time,
		Plus:   e.Plus,
		Type:   kind,
		Detail: detail,
	})
}

// UnmarshalJSON decodes the tagged envelope back into a concrete detail.
func (e *Event) UnmarshalJSON(data []byte) error {
	var wire eventJSON
	if err := json.Unmarshal(data, &wire); err != nil {
		return err
	}

	var detail Detail
	switch wire.Type {
	case eventTypeGoal:
		var g Goal
		if err := json.Unmarshal(wire.Detail, &g); err != nil {
			return err
		}
		detail = g
	case eventTypeCard:
		var c Card
		if err := json.Unmarshal(wire.Detail, &c); err != nil {
			return err
		}
		detail = c
	case eventTypeSubstitution:
		var s Substitution
		if err := json.Unmarshal(wire.Detail, &s); err != nil {
			return err
		}
		detail = s
	default:
		return fmt.Errorf("unmarshal event: unknown type %q", wire.Type)
	}

	*e = Event{Team: wire.Team, Time: wire.Time, Plus: wire.Plus, Detail: detail}
	return nil
}
