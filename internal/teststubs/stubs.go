// Package teststubs holds shared test doubles for the dataset pipeline.
package teststubs

import (
	"sync"
	"sync/atomic"

	"github.com/fourtreestech/ilc-models/fixtures"
	"github.com/fourtreestech/ilc-models/matches"
	"github.com/fourtreestech/ilc-models/standings"
)

// StubSource is a test double for dataset.Source. The zero value is
// usable; calls are safe for concurrent use.
type StubSource struct {
	Seed       int64
	MatchFn    func(p fixtures.MatchParams) matches.Match
	TableRows  []standings.TableRow
	TeamValue  fixtures.Team
	SquadValue []fixtures.SquadPlayer
	MatchCalls atomic.Int32
	TableCalls atomic.Int32

	mu     sync.Mutex
	params []fixtures.MatchParams
}

// Team returns the configured team.
func (s *StubSource) Team() fixtures.Team {
	return s.TeamValue
}

// Squad returns the configured squad regardless of the requested shape.
func (s *StubSource) Squad(size, keepers int) []fixtures.SquadPlayer {
	_ = size
	_ = keepers
	return s.SquadValue
}

// Match returns a configured or synthesized match while tracking calls
// and the parameters seen.
func (s *StubSource) Match(p fixtures.MatchParams) matches.Match {
	n := s.MatchCalls.Add(1)

	s.mu.Lock()
	s.params = append(s.params, p)
	s.mu.Unlock()

	if s.MatchFn != nil {
		return s.MatchFn(p)
	}
	return matches.Match{MatchID: int(n), Status: matches.StatusFullTime}
}

// Table returns the configured rows, or empty rows of the requested size.
func (s *StubSource) Table(size int) []standings.TableRow {
	s.TableCalls.Add(1)
	if s.TableRows != nil {
		return s.TableRows
	}
	return make([]standings.TableRow, size)
}

// Params returns a copy of the match parameters seen so far.
func (s *StubSource) Params() []fixtures.MatchParams {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]fixtures.MatchParams(nil), s.params...)
}
