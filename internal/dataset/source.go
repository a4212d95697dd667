package dataset

import (
	"github.com/fourtreestech/ilc-models/fixtures"
	"github.com/fourtreestech/ilc-models/matches"
	"github.com/fourtreestech/ilc-models/standings"
)

// Source produces the randomized building blocks of a dataset.
type Source interface {
	Team() fixtures.Team
	Squad(size, keepers int) []fixtures.SquadPlayer
	Match(p fixtures.MatchParams) matches.Match
	Table(size int) []standings.TableRow
}

var _ Source = (*fixtures.Generator)(nil)
