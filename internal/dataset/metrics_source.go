package dataset

import (
	"time"

	"github.com/fourtreestech/ilc-models/fixtures"
	"github.com/fourtreestech/ilc-models/internal/metrics"
	"github.com/fourtreestech/ilc-models/matches"
	"github.com/fourtreestech/ilc-models/standings"
)

// Event kinds as recorded against the metrics backend.
const (
	kindGoal         = "goal"
	kindCard         = "card"
	kindSubstitution = "substitution"
)

// metricsSource wraps a Source and counts what it hands out.
type metricsSource struct {
	next     Source
	recorder *metrics.Recorder
}

// NewMetricsSource returns a Source that records match, event and table
// counts. A nil recorder disables recording.
func NewMetricsSource(next Source, recorder *metrics.Recorder) Source {
	return &metricsSource{next: next, recorder: recorder}
}

func (s *metricsSource) Team() fixtures.Team {
	return s.next.Team()
}

func (s *metricsSource) Squad(size, keepers int) []fixtures.SquadPlayer {
	return s.next.Squad(size, keepers)
}

func (s *metricsSource) Match(p fixtures.MatchParams) matches.Match {
	start := time.Now()
	match := s.next.Match(p)

	s.recorder.RecordMatch(time.Since(start))
	s.recorder.RecordEvents(kindGoal, len(match.Goals))
	s.recorder.RecordEvents(kindCard, len(match.Cards))
	s.recorder.RecordEvents(kindSubstitution, len(match.Substitutions))
	return match
}

func (s *metricsSource) Table(size int) []standings.TableRow {
	rows := s.next.Table(size)
	s.recorder.RecordTable(len(rows))
	return rows
}
