package fixtures

import "github.com/fourtreestech/ilc-models/standings"

// DefaultTableSize is the league size used when none is given.
const DefaultTableSize = 20

// TableRow returns a standings row with internally consistent counts:
// played is always won+drawn+lost and the derived fields stay derived. An
// empty team name draws a unique one. Most rows carry no deduction; about
// one in ten loses 1-10 points.
func (g *Generator) TableRow(team string) standings.TableRow {
	if team == "" {
		team = g.TeamName()
	}

	won := g.rng.Intn(13)
	drawn := g.rng.Intn(13)
	lost := g.rng.Intn(13)

	deducted := 0
	if g.rng.Intn(10) == 0 {
		deducted = g.rng.Intn(10) + 1
	}

	return standings.TableRow{
		Team:         team,
		Played:       won + drawn + lost,
		Won:          won,
		Drawn:        drawn,
		Lost:         lost,
		GoalsFor:     g.rng.Intn(41),
		GoalsAgainst: g.rng.Intn(41),
		Deducted:     deducted,
	}
}

// Table returns a league table of the given size (0 means 20) with
// distinct team names, already sorted into table order.
func (g *Generator) Table(size int) []standings.TableRow {
	if size == 0 {
		size = DefaultTableSize
	}
	rows := make([]standings.TableRow, size)
	for i := range rows {
		rows[i] = g.TableRow("")
	}
	standings.Sort(rows)
	return rows
}
