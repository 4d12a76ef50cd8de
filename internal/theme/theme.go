// Package theme holds the fixed mapping from logcat severity to terminal
// styling. The table is built once at startup and read-only afterwards.
package theme

import (
	"github.com/logcatize/logcatize/internal/ansi"
	"github.com/logcatize/logcatize/internal/logcat"
)

// Theme maps each severity level to a badge style and a message style,
// plus styles for the remaining line segments.
type Theme struct {
	BadgeVerbose ansi.Seq
	BadgeDebug   ansi.Seq
	BadgeInfo    ansi.Seq
	BadgeWarning ansi.Seq
	BadgeError   ansi.Seq
	BadgeFatal   ansi.Seq

	MsgVerbose ansi.Seq
	MsgDebug   ansi.Seq
	MsgInfo    ansi.Seq
	MsgWarning ansi.Seq
	MsgError   ansi.Seq
	MsgFatal   ansi.Seq

	Timestamp ansi.Seq
	PIDTID    ansi.Seq
	Tag       ansi.Seq
	Spotlight ansi.Seq
	Reset     ansi.Seq
}

// Default returns the standard theme: bold level badges on colored
// backgrounds, plain colored message text, purple timestamps and id
// brackets.
func Default() *Theme {
	return &Theme{
		BadgeVerbose: ansi.New(ansi.AttrBold, ansi.BgCyan, ansi.FgBlack),
		BadgeDebug:   ansi.New(ansi.AttrBold, ansi.BgBlue, ansi.FgBlack),
		BadgeInfo:    ansi.New(ansi.AttrBold, ansi.BgGreen, ansi.FgBlack),
		BadgeWarning: ansi.New(ansi.AttrBold, ansi.BgYellow, ansi.FgBlack),
		BadgeError:   ansi.New(ansi.AttrBold, ansi.BgRed, ansi.FgBlack),
		BadgeFatal:   ansi.New(ansi.AttrBold, ansi.BgBlack, ansi.FgDefault),

		MsgVerbose: ansi.New(ansi.AttrReset, ansi.BgDefault, ansi.FgCyan),
		MsgDebug:   ansi.New(ansi.AttrReset, ansi.BgDefault, ansi.FgBlue),
		MsgInfo:    ansi.New(ansi.AttrReset, ansi.BgDefault, ansi.FgGreen),
		MsgWarning: ansi.New(ansi.AttrReset, ansi.BgDefault, ansi.FgYellow),
		MsgError:   ansi.New(ansi.AttrReset, ansi.BgDefault, ansi.FgRed),
		MsgFatal:   ansi.New(ansi.AttrBold, ansi.BgDefault, ansi.FgBrightRed),

		Timestamp: ansi.New(ansi.AttrReset, ansi.BgDefault, ansi.FgMagenta),
		PIDTID:    ansi.New(ansi.AttrReset, ansi.BgDefault, ansi.FgMagenta),
		Tag:       ansi.New(ansi.AttrReset, ansi.BgDefault, ansi.FgDefault),
		Spotlight: ansi.New(ansi.AttrReset, ansi.BgRed, ansi.FgBrightWhite),
		Reset:     ansi.Reset(),
	}
}

// Styles returns the badge and message styles for a level. Unrecognized
// levels fall back to the neutral reset sequence for both; ok reports
// whether the level was recognized.
func (t *Theme) Styles(l logcat.Level) (badge, msg ansi.Seq, ok bool) {
	switch l {
	case logcat.LevelVerbose:
		return t.BadgeVerbose, t.MsgVerbose, true
	case logcat.LevelDebug:
		return t.BadgeDebug, t.MsgDebug, true
	case logcat.LevelInfo:
		return t.BadgeInfo, t.MsgInfo, true
	case logcat.LevelWarning:
		return t.BadgeWarning, t.MsgWarning, true
	case logcat.LevelError:
		return t.BadgeError, t.MsgError, true
	case logcat.LevelFatal:
		return t.BadgeFatal, t.MsgFatal, true
	default:
		return t.Reset, t.Reset, false
	}
}
