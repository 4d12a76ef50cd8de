package logcat

import (
	"regexp"
	"strings"
)

// FormatKind identifies one of the five recognized logcat text formats.
type FormatKind int

const (
	FormatUnknown FormatKind = iota
	FormatThreadTime
	FormatTime
	FormatBrief
	FormatProcess
	FormatTag
)

// String returns the logcat -v name of the format.
func (k FormatKind) String() string {
	switch k {
	case FormatThreadTime:
		return "threadtime"
	case FormatTime:
		return "time"
	case FormatBrief:
		return "brief"
	case FormatProcess:
		return "process"
	case FormatTag:
		return "tag"
	default:
		return "unknown"
	}
}

// Patterns for the five formats. All are anchored to the full line so that
// log-like text embedded inside a message cannot produce a false positive.
var (
	reThreadTime = regexp.MustCompile(`^([0-9]{2}-[0-9]{2} [0-9]{2}:[0-9]{2}:[0-9]{2}\.[0-9]{3})\s*([0-9]+)\s*([0-9]+) ([VDIWEF]) (.*?): (.*)$`)
	reTime       = regexp.MustCompile(`^([0-9]{2}-[0-9]{2} [0-9]{2}:[0-9]{2}:[0-9]{2}\.[0-9]{3}):? ([VDIWEF])/(.*?)\(([ 0-9]+)\)\s*: (.*)$`)
	reBrief      = regexp.MustCompile(`^([VDIWEF])/(.*?)\(([ 0-9]+)\): (.*)$`)
	reProcess    = regexp.MustCompile(`^([VDIWEF])\(([ 0-9]+)\) (.*) \((.*?)\)$`)
	reTag        = regexp.MustCompile(`^([VDIWEF])/(.*?): (.*)$`)
)

// matchOrder lists the formats most-specific first. The looser shapes
// (Tag in particular) would spuriously match lines that belong to a
// richer format, so order is load-bearing.
var matchOrder = [...]FormatKind{
	FormatThreadTime,
	FormatTime,
	FormatBrief,
	FormatProcess,
	FormatTag,
}

// Match attempts to decompose line according to this format alone.
// It is side-effect-free; numeric id fields are trimmed of padding.
func (k FormatKind) Match(line string) (Record, bool) {
	switch k {
	case FormatThreadTime:
		if c := reThreadTime.FindStringSubmatch(line); c != nil {
			return Record{
				Timestamp: c[1],
				PID:       strings.TrimSpace(c[2]),
				TID:       strings.TrimSpace(c[3]),
				Level:     ParseLevel(c[4]),
				Tag:       c[5],
				Message:   c[6],
			}, true
		}
	case FormatTime:
		if c := reTime.FindStringSubmatch(line); c != nil {
			return Record{
				Timestamp: c[1],
				Level:     ParseLevel(c[2]),
				Tag:       c[3],
				PID:       strings.TrimSpace(c[4]),
				Message:   c[5],
			}, true
		}
	case FormatBrief:
		if c := reBrief.FindStringSubmatch(line); c != nil {
			return Record{
				Level:   ParseLevel(c[1]),
				Tag:     c[2],
				PID:     strings.TrimSpace(c[3]),
				Message: c[4],
			}, true
		}
	case FormatProcess:
		if c := reProcess.FindStringSubmatch(line); c != nil {
			return Record{
				Level:   ParseLevel(c[1]),
				PID:     strings.TrimSpace(c[2]),
				Message: c[3],
				Tag:     c[4],
			}, true
		}
	case FormatTag:
		if c := reTag.FindStringSubmatch(line); c != nil {
			return Record{
				Level:   ParseLevel(c[1]),
				Tag:     c[2],
				Message: c[3],
			}, true
		}
	}
	return Record{}, false
}

// Classify tries every format in matchOrder and returns the first that
// matches. Pure function of its input; the lock-in state that decides
// when to call it lives in the stream driver.
func Classify(line string) (FormatKind, Record, bool) {
	for _, k := range matchOrder {
		if rec, ok := k.Match(line); ok {
			return k, rec, true
		}
	}
	return FormatUnknown, Record{}, false
}
