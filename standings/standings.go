// Package standings holds the league table model and its ordering rules.
package standings

import "sort"

// TableRow is one team's line in a league table. Goal difference and points
// are always derived; only the raw counts and any deduction are stored.
type TableRow struct {
	Team         string `json:"team"`
	Played       int    `json:"played"`
	Won          int    `json:"won"`
	Drawn        int    `json:"drawn"`
	Lost         int    `json:"lost"`
	GoalsFor     int    `json:"goals_for"`
	GoalsAgainst int    `json:"goals_against"`
	Deducted     int    `json:"deducted"`
}

// GoalDiff returns goals scored minus goals conceded.
func (r TableRow) GoalDiff() int {
	return r.GoalsFor - r.GoalsAgainst
}

// Points returns three points per win plus one per draw, less any deduction.
func (r TableRow) Points() int {
	return r.Won*3 + r.Drawn - r.Deducted
}

// AsTuple flattens the row into its stored fields, in table-column order.
func (r TableRow) AsTuple() (string, int, int, int, int, int, int, int) {
	return r.Team, r.Played, r.Won, r.Drawn, r.Lost, r.GoalsFor, r.GoalsAgainst, r.Deducted
}

// FromTuple rebuilds a row from its stored fields. It is the inverse of
// AsTuple: FromTuple(row.AsTuple()) == row.
func FromTuple(team string, played, won, drawn, lost, goalsFor, goalsAgainst, deducted int) TableRow {
	return TableRow{
		Team:         team,
		Played:       played,
		Won:          won,
		Drawn:        drawn,
		Lost:         lost,
		GoalsFor:     goalsFor,
		GoalsAgainst: goalsAgainst,
		Deducted:     deducted,
	}
}

// Sort orders rows in table order: descending by points, goal difference
// and goals scored, with remaining ties broken by team name ascending.
func Sort(rows []TableRow) {
	sort.SliceStable(rows, func(i, j int) bool {
		a, b := rows[i], rows[j]
		if a.Points() != b.Points() {
			return a.Points() > b.Points()
		}
		if a.GoalDiff() != b.GoalDiff() {
			return a.GoalDiff() > b.GoalDiff()
		}
		if a.GoalsFor != b.GoalsFor {
			return a.GoalsFor > b.GoalsFor
		}
		return a.Team < b.Team
	})
}
