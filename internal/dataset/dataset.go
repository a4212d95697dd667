// Package dataset assembles complete fixture datasets: a batch of
// generated matches plus a league table, built concurrently and written
// as one JSON document.
package dataset

import (
	"time"

	"github.com/fourtreestech/ilc-models/matches"
	"github.com/fourtreestech/ilc-models/standings"
)

// Dataset is the JSON document produced by a build.
type Dataset struct {
	GeneratedAt time.Time            `json:"generated_at"`
	Seed        int64                `json:"seed"`
	Matches     []matches.Match      `json:"matches"`
	Table       []standings.TableRow `json:"table"`
}
