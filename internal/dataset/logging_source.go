package dataset

import (
	"log/slog"

	"github.com/fourtreestech/ilc-models/fixtures"
	"github.com/fourtreestech/ilc-models/internal/logging"
	"github.com/fourtreestech/ilc-models/matches"
	"github.com/fourtreestech/ilc-models/standings"
)

// loggingSource wraps a Source and logs what it hands out.
type loggingSource struct {
	next   Source
	logger *slog.Logger
}

// NewLoggingSource returns a Source that logs each generated match and
// table at debug level. A nil logger disables logging.
func NewLoggingSource(next Source, logger *slog.Logger) Source {
	return &loggingSource{next: next, logger: logger}
}

func (s *loggingSource) Team() fixtures.Team {
	return s.next.Team()
}

func (s *loggingSource) Squad(size, keepers int) []fixtures.SquadPlayer {
	return s.next.Squad(size, keepers)
}

func (s *loggingSource) Match(p fixtures.MatchParams) matches.Match {
	match := s.next.Match(p)
	logging.Debug(s.logger, "match generated",
		slog.Int(logging.FieldMatchID, match.MatchID),
		slog.String(logging.FieldRound, match.Round),
		slog.Int(logging.FieldCount, len(match.Events())),
	)
	return match
}

func (s *loggingSource) Table(size int) []standings.TableRow {
	rows := s.next.Table(size)
	logging.Debug(s.logger, "table generated", slog.Int(logging.FieldCount, len(rows)))
	return rows
}
