package logcat

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClassifyThreadTime(t *testing.T) {
	kind, rec, ok := Classify("01-02 03:04:05.006  123  456 I MyTag: hello world")
	require.True(t, ok)
	assert.Equal(t, FormatThreadTime, kind)
	assert.Equal(t, Record{
		Timestamp: "01-02 03:04:05.006",
		PID:       "123",
		TID:       "456",
		Level:     LevelInfo,
		Tag:       "MyTag",
		Message:   "hello world",
	}, rec)
}

func TestClassifyBrief(t *testing.T) {
	kind, rec, ok := Classify("W/Bat(  789): low battery")
	require.True(t, ok)
	assert.Equal(t, FormatBrief, kind)
	assert.Equal(t, Record{
		Level:   LevelWarning,
		Tag:     "Bat",
		PID:     "789",
		Message: "low battery",
	}, rec)
}

func TestClassifyTime(t *testing.T) {
	kind, rec, ok := Classify("05-12 13:14:15.016 E/AudioFlinger(  77): write blocked")
	require.True(t, ok)
	assert.Equal(t, FormatTime, kind)
	assert.Equal(t, "05-12 13:14:15.016", rec.Timestamp)
	assert.Equal(t, LevelError, rec.Level)
	assert.Equal(t, "AudioFlinger", rec.Tag)
	assert.Equal(t, "77", rec.PID)
	assert.Equal(t, "write blocked", rec.Message)
}

func TestClassifyTimeWithColonAfterStamp(t *testing.T) {
	kind, rec, ok := Classify("05-12 13:14:15.016: D/Zygote(  90): preloading classes")
	require.True(t, ok)
	assert.Equal(t, FormatTime, kind)
	assert.Equal(t, "preloading classes", rec.Message)
}

func TestClassifyProcess(t *testing.T) {
	kind, rec, ok := Classify("I(  42) service started (ActivityManager)")
	require.True(t, ok)
	assert.Equal(t, FormatProcess, kind)
	assert.Equal(t, Record{
		Level:   LevelInfo,
		PID:     "42",
		Message: "service started",
		Tag:     "ActivityManager",
	}, rec)
}

func TestClassifyProcessEmptyTag(t *testing.T) {
	kind, rec, ok := Classify("V( 123) boot completed ()")
	require.True(t, ok)
	assert.Equal(t, FormatProcess, kind)
	assert.Empty(t, rec.Tag)
	assert.Equal(t, "boot completed", rec.Message)
}

func TestClassifyTag(t *testing.T) {
	kind, rec, ok := Classify("D/dalvikvm: GC_CONCURRENT freed 1024K")
	require.True(t, ok)
	assert.Equal(t, FormatTag, kind)
	assert.Equal(t, Record{
		Level:   LevelDebug,
		Tag:     "dalvikvm",
		Message: "GC_CONCURRENT freed 1024K",
	}, rec)
}

func TestClassifyRejectsNonLogcat(t *testing.T) {
	for _, line := range []string{
		"not a logcat line at all",
		"",
		"X/Tag: unknown level letter",
		"  01-02 03:04:05.006  123  456 I MyTag: leading spaces break anchoring",
	} {
		kind, _, ok := Classify(line)
		assert.False(t, ok, "line %q should not classify", line)
		assert.Equal(t, FormatUnknown, kind)
	}
}

// A Brief line also satisfies the Tag pattern (the whole "Tag(  789)"
// run parses as a tag). Ordered classification must pick Brief.
func TestClassifyPrefersBriefOverTag(t *testing.T) {
	line := "W/Bat(  789): low battery"

	_, tagOK := FormatTag.Match(line)
	require.True(t, tagOK, "precondition: the loose Tag shape matches too")

	kind, _, ok := Classify(line)
	require.True(t, ok)
	assert.Equal(t, FormatBrief, kind)
}

func TestRoundTrip(t *testing.T) {
	tests := []struct {
		name string
		kind FormatKind
		line string
		want Record
	}{
		{
			name: "threadtime",
			kind: FormatThreadTime,
			line: fmt.Sprintf("%s %5s %5s %s %s: %s", "11-22 10:20:30.456", "31337", "31340", "F", "libc", "Fatal signal 11"),
			want: Record{Timestamp: "11-22 10:20:30.456", PID: "31337", TID: "31340", Level: LevelFatal, Tag: "libc", Message: "Fatal signal 11"},
		},
		{
			name: "time",
			kind: FormatTime,
			line: fmt.Sprintf("%s %s/%s(%5s): %s", "11-22 10:20:30.456", "W", "WifiStateMachine", "901", "scan failed"),
			want: Record{Timestamp: "11-22 10:20:30.456", Level: LevelWarning, Tag: "WifiStateMachine", PID: "901", Message: "scan failed"},
		},
		{
			name: "brief",
			kind: FormatBrief,
			line: fmt.Sprintf("%s/%s(%5s): %s", "E", "AudioTrack", "1337", "underrun"),
			want: Record{Level: LevelError, Tag: "AudioTrack", PID: "1337", Message: "underrun"},
		},
		{
			name: "process",
			kind: FormatProcess,
			line: fmt.Sprintf("%s(%5s) %s (%s)", "I", "42", "service started", "ActivityManager"),
			want: Record{Level: LevelInfo, PID: "42", Message: "service started", Tag: "ActivityManager"},
		},
		{
			name: "tag",
			kind: FormatTag,
			line: fmt.Sprintf("%s/%s: %s", "V", "chatty", "uid=1000 expire 3 lines"),
			want: Record{Level: LevelVerbose, Tag: "chatty", Message: "uid=1000 expire 3 lines"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			kind, rec, ok := Classify(tt.line)
			require.True(t, ok)
			assert.Equal(t, tt.kind, kind)
			assert.Equal(t, tt.want, rec)

			// The single-kind fast path must agree with full classification.
			fast, ok := tt.kind.Match(tt.line)
			require.True(t, ok)
			assert.Equal(t, rec, fast)
		})
	}
}

func TestMatchWrongKind(t *testing.T) {
	_, ok := FormatThreadTime.Match("W/Bat(  789): low battery")
	assert.False(t, ok)
}

func TestParseLevel(t *testing.T) {
	letters := map[string]Level{
		"V": LevelVerbose,
		"D": LevelDebug,
		"I": LevelInfo,
		"W": LevelWarning,
		"E": LevelError,
		"F": LevelFatal,
	}
	for s, want := range letters {
		assert.Equal(t, want, ParseLevel(s))
		assert.Equal(t, s, want.Letter())
	}

	assert.Equal(t, LevelUnknown, ParseLevel("X"))
	assert.Equal(t, LevelUnknown, ParseLevel(""))
	assert.Empty(t, LevelUnknown.Letter())
}
