package theme

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/logcatize/logcatize/internal/logcat"
)

func TestStylesRecognizedLevels(t *testing.T) {
	th := Default()

	badge, msg, ok := th.Styles(logcat.LevelInfo)
	assert.True(t, ok)
	assert.Equal(t, th.BadgeInfo, badge)
	assert.Equal(t, th.MsgInfo, msg)

	badge, msg, ok = th.Styles(logcat.LevelFatal)
	assert.True(t, ok)
	assert.Equal(t, th.BadgeFatal, badge)
	assert.Equal(t, th.MsgFatal, msg)
}

func TestStylesUnknownLevelFallsBackToReset(t *testing.T) {
	th := Default()

	badge, msg, ok := th.Styles(logcat.LevelUnknown)
	assert.False(t, ok)
	assert.Equal(t, th.Reset, badge)
	assert.Equal(t, th.Reset, msg)
}

func TestDefaultSequencesAreWellFormed(t *testing.T) {
	th := Default()
	assert.Equal(t, "\x1b[0;49;39m", th.Reset.String())
	assert.Equal(t, "\x1b[1;42;30m", th.BadgeInfo.String())
	assert.Equal(t, "\x1b[0;41;97m", th.Spotlight.String())
}
