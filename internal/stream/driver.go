// Package stream drives line-at-a-time processing of a logcat stream:
// read, classify, render, write. It owns the format lock-in state.
package stream

import (
	"bufio"
	"fmt"
	"io"

	"github.com/logcatize/logcatize/internal/logcat"
	"github.com/logcatize/logcatize/internal/monitor"
	"github.com/logcatize/logcatize/internal/render"
)

// Driver is the single stateful component of the pipeline. After the
// first successful classification it locks onto that format and tries
// only its matcher on subsequent lines; logcat streams are overwhelmingly
// homogeneous, so the fast path skips four wasted pattern matches per
// line. A line that stops matching triggers one full re-classification,
// which re-locks if the stream genuinely changed format.
type Driver struct {
	renderer *render.Renderer
	ignore   bool
	locked   logcat.FormatKind
	stats    *monitor.Stats
}

// New creates a Driver. When ignore is true, lines that fit none of the
// known formats are dropped instead of passed through verbatim.
func New(r *render.Renderer, ignore bool, stats *monitor.Stats) *Driver {
	if stats == nil {
		stats = monitor.NewStats()
	}
	return &Driver{renderer: r, ignore: ignore, stats: stats}
}

// Locked returns the currently locked format, or FormatUnknown before the
// first successful classification.
func (d *Driver) Locked() logcat.FormatKind {
	return d.locked
}

// Run processes every line from r until end of input, writing one output
// line per emitted record to w. A final unterminated line is still
// processed. Per-line parse failures are handled by the ignore policy and
// never abort the stream; only read or write failures do.
func (d *Driver) Run(r io.Reader, w io.Writer) error {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	for scanner.Scan() {
		out, emit := d.processLine(scanner.Text())
		if !emit {
			continue
		}
		if _, err := io.WriteString(w, out+"\n"); err != nil {
			return fmt.Errorf("stream: write output: %w", err)
		}
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("stream: read input: %w", err)
	}
	return nil
}

// processLine runs one line through the lock-in state machine. The second
// return is false when the line is dropped under ignore mode.
func (d *Driver) processLine(line string) (string, bool) {
	d.stats.RecordLine()

	// Fast path: only the locked format's matcher.
	if d.locked != logcat.FormatUnknown {
		if rec, ok := d.locked.Match(line); ok {
			d.stats.RecordColored()
			return d.renderer.Render(rec), true
		}
	}

	// Slow path: first line of the stream, or the locked matcher stopped
	// fitting. Re-locks on success, possibly onto a different format.
	if kind, rec, ok := logcat.Classify(line); ok {
		d.locked = kind
		d.stats.RecordColored()
		return d.renderer.Render(rec), true
	}

	// The lock is sticky: a single unparseable line does not discard the
	// learned format.
	if d.ignore {
		d.stats.RecordDropped()
		return "", false
	}
	d.stats.RecordPassthrough()
	return line, true
}
