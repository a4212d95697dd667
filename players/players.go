// Package players holds the player identity models shared by squads,
// lineups and match events.
package players

// BasePlayer is the minimal identity carried through lineups and events.
// Values are immutable once created.
type BasePlayer struct {
	PlayerID int    `json:"player_id"`
	Name     string `json:"name"`
}

// String returns the player's display name.
func (p BasePlayer) String() string {
	return p.Name
}

// Player extends BasePlayer with biographical attributes. It is used for
// display-oriented fixtures only and never drives event logic.
type Player struct {
	BasePlayer
	FirstName   string `json:"first_name"`
	LastName    string `json:"last_name"`
	DOB         string `json:"dob"`
	Nationality string `json:"nationality"`
}
