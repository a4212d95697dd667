package metrics

import (
	"sync"
	"time"
)

type datasetStats struct {
	matches          int
	events           map[string]int
	tableRows        int
	builds           int
	buildErrors      int
	lastMatchLatency time.Duration
	lastBuildLatency time.Duration
}

// Recorder captures lightweight, in-memory metrics about dataset
// generation. It is intentionally simple so it can be swapped for a real
// backend later.
type Recorder struct {
	mu    sync.Mutex
	stats datasetStats
	otel  *otelInstruments
}

func NewRecorder() *Recorder {
	return newRecorder(nil)
}

func newRecorder(otel *otelInstruments) *Recorder {
	return &Recorder{
		stats: datasetStats{events: make(map[string]int)},
		otel:  otel,
	}
}

// RecordMatch counts one generated match and stores its latency.
func (r *Recorder) RecordMatch(duration time.Duration) {
	if r == nil {
		return
	}

	r.mu.Lock()
	r.stats.matches++
	r.stats.lastMatchLatency = duration
	r.mu.Unlock()

	if r.otel != nil {
		r.otel.recordMatch(duration)
	}
}

// RecordEvents counts generated match events by kind.
func (r *Recorder) RecordEvents(kind string, count int) {
	if r == nil || count <= 0 {
		return
	}

	r.mu.Lock()
	r.stats.events[kind] += count
	r.mu.Unlock()

	if r.otel != nil {
		r.otel.recordEvents(kind, count)
	}
}

// RecordTable counts the rows of one generated league table.
func (r *Recorder) RecordTable(rows int) {
	if r == nil {
		return
	}

	r.mu.Lock()
	r.stats.tableRows += rows
	r.mu.Unlock()

	if r.otel != nil {
		r.otel.recordTable(rows)
	}
}

// RecordDataset counts one dataset build and stores its latency.
func (r *Recorder) RecordDataset(duration time.Duration, err error) {
	if r == nil {
		return
	}

	r.mu.Lock()
	r.stats.builds++
	r.stats.lastBuildLatency = duration
	if err != nil {
		r.stats.buildErrors++
	}
	r.mu.Unlock()

	if r.otel != nil {
		r.otel.recordDataset(duration, err)
	}
}

// Matches returns the total matches recorded.
func (r *Recorder) Matches() int {
	return r.Snapshot().Matches
}

// Events returns the total events recorded for a kind.
func (r *Recorder) Events(kind string) int {
	return r.Snapshot().Events[kind]
}

// TableRows returns the total table rows recorded.
func (r *Recorder) TableRows() int {
	return r.Snapshot().TableRows
}

// DatasetBuilds returns the total dataset builds recorded.
func (r *Recorder) DatasetBuilds() int {
	return r.Snapshot().Builds
}

// DatasetErrors returns the total failed dataset builds recorded.
func (r *Recorder) DatasetErrors() int {
	return r.Snapshot().BuildErrors
}

// LastMatchLatency returns the latency recorded for the latest match.
func (r *Recorder) LastMatchLatency() time.Duration {
	return r.Snapshot().LastMatchLatency
}

// LastBuildLatency returns the latency recorded for the latest build.
func (r *Recorder) LastBuildLatency() time.Duration {
	return r.Snapshot().LastBuildLatency
}

// Snapshot is a copy of the current stats.
type Snapshot struct {
	Matches          int
	Events           map[string]int
	TableRows        int
	Builds           int
	BuildErrors      int
	LastMatchLatency time.Duration
	LastBuildLatency time.Duration
}

func (r *Recorder) Snapshot() Snapshot {
	if r == nil {
		return Snapshot{Events: map[string]int{}}
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	events := make(map[string]int, len(r.stats.events))
	for kind, n := range r.stats.events {
		events[kind] = n
	}
	return Snapshot{
		Matches:          r.stats.matches,
		Events:           events,
		TableRows:        r.stats.tableRows,
		Builds:           r.stats.builds,
		BuildErrors:      r.stats.buildErrors,
		LastMatchLatency: r.stats.lastMatchLatency,
		LastBuildLatency: r.stats.lastBuildLatency,
	}
}
