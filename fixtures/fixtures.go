// Package fixtures generates internally-consistent randomized football
// data: squads, lineups, scores, match event timelines and league table
// rows. A Generator owns a seeded random source, so a fixed seed and a
// fixed call sequence reproduce its output exactly.
package fixtures

import (
	"fmt"
	"math/rand"
	"strings"
	"time"

	"github.com/brianvoe/gofakeit/v6"

	"github.com/fourtreestech/ilc-models/internal/timeutil"
	"github.com/fourtreestech/ilc-models/players"
)

// Identity spaces for generated entities.
const (
	maxPlayerID = 99_999
	maxMatchID  = 999_999
)

// maxNameAttempts bounds the search for an unused team name.
const maxNameAttempts = 10_000

// teamSuffixes are appended to a city name to form a club name; the empty
// entry yields bare city names.
var teamSuffixes = []string{
	"Albion", "Argyle", "Athletic", "City", "County", "Dons", "FC",
	"Forest", "Hotspur", "North End", "Orient", "Palace", "Rangers",
	"Rovers", "Swifts", "Town", "United", "Wanderers", "Wednesday", "",
}

// SquadPlayer is a squad member: a base player plus shirt number, keeper
// flag and the two weights driving lineup selection and goal attribution.
// Values are never mutated after generation.
type SquadPlayer struct {
	ShirtNumber     int                `json:"shirt_number"`
	Keeper          bool               `json:"keeper"`
	BasePlayer      players.BasePlayer `json:"base_player"`
	SelectionWeight int                `json:"selection_weight"`
	ScorerWeight    int                `json:"scorer_weight"`
}

// String renders the player in squad-list form, e.g. "9. A. Shearer" or
// "1. P. Schmeichel (GK)".
func (p SquadPlayer) String() string {
	if p.Keeper {
		return fmt.Sprintf("%d. %s (GK)", p.ShirtNumber, p.BasePlayer.Name)
	}
	return fmt.Sprintf("%d. %s", p.ShirtNumber, p.BasePlayer.Name)
}

// Team is a generated club: a unique name, a full squad and a 0-5 strength
// rating used only to bias score synthesis.
type Team struct {
	Name     string        `json:"name"`
	Squad    []SquadPlayer `json:"squad"`
	Strength int           `json:"strength"`
}

// String returns the team name.
func (t Team) String() string {
	return t.Name
}

// Generator produces randomized football fixture data. It is not safe for
// concurrent use: it owns a single random source and the uniqueness
// registries for player IDs, match IDs and team names.
type Generator struct {
	faker *gofakeit.Faker
	rng   *rand.Rand
	now   func() time.Time

	playerIDs map[int]struct{}
	matchIDs  map[int]struct{}
	teamNames map[string]struct{}
}

// New returns a Generator seeded with the given value. A seed of 0 draws a
// random seed; any other value pins the full output sequence. The faker
// and the sampler share one random source.
func New(seed int64) *Generator {
	faker := gofakeit.New(seed)
	return &Generator{
		faker:     faker,
		rng:       faker.Rand,
		now:       time.Now,
		playerIDs: make(map[int]struct{}),
		matchIDs:  make(map[int]struct{}),
		teamNames: make(map[string]struct{}),
	}
}

// PlayerID returns a player ID between 1 and 99,999, unique within this
// Generator. Exhausting the ID space panics.
func (g *Generator) PlayerID() int {
	if len(g.playerIDs) >= maxPlayerID {
		panic("fixtures: player ID space exhausted")
	}
	for {
		id := g.rng.Intn(maxPlayerID) + 1
		if _, used := g.playerIDs[id]; !used {
			g.playerIDs[id] = struct{}{}
			return id
		}
	}
}

// MatchID returns a match ID between 1 and 999,999, unique within this
// Generator. Exhausting the ID space panics.
func (g *Generator) MatchID() int {
	if len(g.matchIDs) >= maxMatchID {
		panic("fixtures: match ID space exhausted")
	}
	for {
		id := g.rng.Intn(maxMatchID) + 1
		if _, used := g.matchIDs[id]; !used {
			g.matchIDs[id] = struct{}{}
			return id
		}
	}
}

// BasePlayer returns a player with a unique ID and a display name in
// initial-plus-surname form, e.g. "R. Keane".
func (g *Generator) BasePlayer() players.BasePlayer {
	return players.BasePlayer{
		PlayerID: g.PlayerID(),
		Name:     fmt.Sprintf("%c. %s", g.faker.FirstName()[0], g.faker.LastName()),
	}
}

// Player returns a player with full biographical attributes: a 17-35 year
// old with a date of birth and a nationality.
func (g *Generator) Player() players.Player {
	firstName := g.faker.FirstName()
	lastName := g.faker.LastName()
	now := g.now()
	dob := g.faker.DateRange(now.AddDate(-35, 0, 0), now.AddDate(-17, 0, 0))

	return players.Player{
		BasePlayer: players.BasePlayer{
			PlayerID: g.PlayerID(),
			Name:     fmt.Sprintf("%c. %s", firstName[0], lastName),
		},
		FirstName:   firstName,
		LastName:    lastName,
		DOB:         timeutil.FormatDate(dob),
		Nationality: g.faker.Country(),
	}
}

// TeamSuffix returns a random club suffix, possibly empty.
func (g *Generator) TeamSuffix() string {
	return g.faker.RandomString(teamSuffixes)
}

// TeamName returns a club name built from a city and a suffix, e.g.
// "Sheffield Wednesday", unique within this Generator.
func (g *Generator) TeamName() string {
	for attempts := 0; attempts < maxNameAttempts; attempts++ {
		name := strings.TrimRight(g.faker.City()+" "+g.TeamSuffix(), " ")
		if _, used := g.teamNames[name]; !used {
			g.teamNames[name] = struct{}{}
			return name
		}
	}
	panic("fixtures: team name space exhausted")
}

// Team returns a team with a unique name, a default-shaped squad and a
// strength rating between 0 and 5.
func (g *Generator) Team() Team {
	return Team{
		Name:     g.TeamName(),
		Squad:    g.Squad(0, 0),
		Strength: g.rng.Intn(6),
	}
}
