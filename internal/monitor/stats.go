// Package monitor collects per-run processing counters for the optional
// end-of-run summary.
package monitor

import (
	"fmt"
	"time"
)

// Stats counts line outcomes while a stream is processed. The driver loop
// is single-threaded, so plain counters are enough.
type Stats struct {
	total       uint64
	colored     uint64
	passthrough uint64
	dropped     uint64
	start       time.Time
}

// NewStats creates a statistics collector.
func NewStats() *Stats {
	return &Stats{start: time.Now()}
}

// RecordLine increments the total line counter.
func (s *Stats) RecordLine() {
	s.total++
}

// RecordColored increments the counter of lines that classified and were
// emitted colorized.
func (s *Stats) RecordColored() {
	s.colored++
}

// RecordPassthrough increments the counter of unmatched lines emitted raw.
func (s *Stats) RecordPassthrough() {
	s.passthrough++
}

// RecordDropped increments the counter of unmatched lines dropped under
// ignore mode.
func (s *Stats) RecordDropped() {
	s.dropped++
}

// Total returns the number of input lines seen.
func (s *Stats) Total() uint64 { return s.total }

// Colored returns the number of lines emitted colorized.
func (s *Stats) Colored() uint64 { return s.colored }

// Passthrough returns the number of unmatched lines emitted raw.
func (s *Stats) Passthrough() uint64 { return s.passthrough }

// Dropped returns the number of unmatched lines dropped.
func (s *Stats) Dropped() uint64 { return s.dropped }

// Elapsed returns the time since the collector was created.
func (s *Stats) Elapsed() time.Duration {
	return time.Since(s.start)
}

// Summary returns a formatted multi-line report of the run.
func (s *Stats) Summary() string {
	matchRate := float64(0)
	if s.total > 0 {
		matchRate = float64(s.colored) / float64(s.total) * 100
	}

	return fmt.Sprintf(
		"  Total lines:  %d\n"+
			"  Colorized:    %d (%.1f%%)\n"+
			"  Passthrough:  %d\n"+
			"  Dropped:      %d\n"+
			"  Duration:     %s",
		s.total, s.colored, matchRate,
		s.passthrough, s.dropped,
		s.Elapsed().Round(time.Millisecond),
	)
}
