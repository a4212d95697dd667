package dataset

import (
	"context"
	"errors"
	"fmt"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/fourtreestech/ilc-models/fixtures"
	"github.com/fourtreestech/ilc-models/matches"
	"github.com/fourtreestech/ilc-models/standings"
)

var (
	ErrNoFactory  = errors.New("dataset: source factory not configured")
	ErrSquadShape = errors.New("dataset: impossible squad shape")
)

// Builder configures a dataset build. Factory is required; it is called
// once per worker with a distinct seed so output does not depend on
// scheduling. A Seed of 0 draws one from the clock and reports it in the
// dataset, making any run reproducible.
type Builder struct {
	Factory      func(seed int64) Source
	Seed         int64
	Matches      int
	TableSize    int
	Workers      int
	SquadSize    int
	SquadKeepers int
	Now          func() time.Time
}

// Build generates the configured matches across the workers plus one
// league table, honoring context cancellation between matches.
func (b Builder) Build(ctx context.Context) (Dataset, error) {
	if b.Factory == nil {
		return Dataset{}, ErrNoFactory
	}
	if err := b.validateSquadShape(); err != nil {
		return Dataset{}, err
	}

	nowFn := b.Now
	if nowFn == nil {
		nowFn = time.Now
	}
	seed := b.Seed
	if seed == 0 {
		seed = nowFn().UnixNano()
	}

	count := b.Matches
	if count < 0 {
		count = 0
	}
	workers := b.Workers
	if workers < 1 {
		workers = 1
	}
	if workers > count && count > 0 {
		workers = count
	}

	out := make([]matches.Match, count)
	var table []standings.TableRow

	g, ctx := errgroup.WithContext(ctx)
	for w := 0; w < workers; w++ {
		start := w * count / workers
		end := (w + 1) * count / workers
		if start == end {
			continue
		}
		src := b.Factory(seed + int64(w))
		g.Go(func() error {
			for i := start; i < end; i++ {
				select {
				case <-ctx.Done():
					return ctx.Err()
				default:
				}
				out[i] = src.Match(b.matchParams(src))
			}
			return nil
		})
	}
	g.Go(func() error {
		table = b.Factory(seed + int64(workers)).Table(b.TableSize)
		return nil
	})

	if err := g.Wait(); err != nil {
		return Dataset{}, fmt.Errorf("build dataset: %w", err)
	}

	return Dataset{
		GeneratedAt: nowFn().UTC(),
		Seed:        seed,
		Matches:     out,
		Table:       table,
	}, nil
}

// matchParams builds per-match parameters, overriding the default squad
// shape when one was configured.
func (b Builder) matchParams(src Source) fixtures.MatchParams {
	if !b.customSquadShape() {
		return fixtures.MatchParams{}
	}
	home := src.Team()
	away := src.Team()
	home.Squad = src.Squad(b.SquadSize, b.SquadKeepers)
	away.Squad = src.Squad(b.SquadSize, b.SquadKeepers)
	return fixtures.MatchParams{Home: &home, Away: &away}
}

func (b Builder) customSquadShape() bool {
	size, keepers := b.normalizedSquadShape()
	return size != fixtures.DefaultSquadSize || keepers != fixtures.DefaultSquadKeepers
}

func (b Builder) normalizedSquadShape() (size, keepers int) {
	size, keepers = b.SquadSize, b.SquadKeepers
	if size == 0 {
		size = fixtures.DefaultSquadSize
	}
	if keepers == 0 {
		keepers = fixtures.DefaultSquadKeepers
	}
	return size, keepers
}

// validateSquadShape rejects shapes the lineup rules cannot dress: a
// starting eleven needs two keepers plus sixteen outfield players to
// draw from, and shirt numbers run out above MaxSquadSize.
func (b Builder) validateSquadShape() error {
	if !b.customSquadShape() {
		return nil
	}
	size, keepers := b.normalizedSquadShape()
	if size > fixtures.MaxSquadSize || keepers < 2 || size-keepers < 16 {
		return fmt.Errorf("%w: %d players with %d keepers", ErrSquadShape, size, keepers)
	}
	return nil
}
