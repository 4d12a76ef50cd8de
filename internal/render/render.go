// Package render turns parsed logcat records into colorized output lines.
package render

import (
	"regexp"
	"strings"

	"github.com/logcatize/logcatize/internal/ansi"
	"github.com/logcatize/logcatize/internal/logcat"
	"github.com/logcatize/logcatize/internal/theme"
)

// Renderer produces one colorized line per record. The optional spotlight
// pattern is compiled once at construction, not per line.
type Renderer struct {
	theme *theme.Theme
	spot  *regexp.Regexp
}

// New creates a Renderer. The spotlight pattern is wrapped in a single
// capturing group before compiling; a pattern that fails to compile
// disables highlighting for the run rather than aborting it.
func New(t *theme.Theme, spotlight string) *Renderer {
	r := &Renderer{theme: t}
	if spotlight != "" {
		if re, err := regexp.Compile("(" + spotlight + ")"); err == nil {
			r.spot = re
		}
	}
	return r
}

// spotlight rewrites every non-overlapping match inside a field segment so
// the matched text is painted in the spotlight style and the field's own
// style resumes right after it. No full reset in between: trailing
// characters of the field keep their normal color.
func (r *Renderer) spotlight(s string, resume ansi.Seq) string {
	if r.spot == nil {
		return s
	}
	return r.spot.ReplaceAllString(s, r.theme.Spotlight.String()+"${1}"+resume.String())
}

// Render produces one colorized line without trailing newline. Fields are
// emitted in logcat order and skipped when empty.
func (r *Renderer) Render(rec logcat.Record) string {
	badge, msg, _ := r.theme.Styles(rec.Level)
	reset := r.theme.Reset.String()

	var b strings.Builder

	if rec.Timestamp != "" {
		b.WriteString(r.theme.Timestamp.String())
		b.WriteString(r.spotlight(rec.Timestamp, r.theme.Timestamp))
		b.WriteString(reset)
		b.WriteByte(' ')
	}

	if letter := rec.Level.Letter(); letter != "" {
		b.WriteString(badge.String())
		b.WriteByte(' ')
		b.WriteString(letter)
		b.WriteByte(' ')
		b.WriteString(reset)
		b.WriteByte(' ')
	}

	if rec.PID != "" {
		bracket := "[" + rec.PID + "]"
		if rec.TID != "" {
			bracket = "[" + rec.PID + "/" + rec.TID + "]"
		}
		b.WriteString(r.theme.PIDTID.String())
		b.WriteString(r.spotlight(bracket, r.theme.PIDTID))
		b.WriteString(reset)
		b.WriteByte(' ')
	}

	if rec.Tag != "" {
		b.WriteString(r.theme.Tag.String())
		b.WriteString(r.spotlight(rec.Tag, r.theme.Tag))
		b.WriteString(reset)
		b.WriteByte(' ')
	}

	if rec.Message != "" {
		b.WriteString(msg.String())
		b.WriteString(r.spotlight(rec.Message, msg))
		b.WriteString(reset)
		b.WriteByte(' ')
	}

	return b.String()
}
