package observe

import (
	"bytes"
	"errors"
	"testing"

	"github.com/getsentry/sentry-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fire-risk-api/pkg/logger"
)

func newCapturingHook(zone string) (*SentryHook, *[]*sentry.Event) {
	var events []*sentry.Event
	h := &SentryHook{
		appZone: zone,
		appName: "fire-risk-api",
		capture: func(e *sentry.Event) { events = append(events, e) },
	}
	return h, &events
}

func TestSentryHook_ForwardsErrors(t *testing.T) {
	h, events := newCapturingHook("prod")
	l := logger.NewZapLogger("fire-risk-api", "prod", "debug", h)

	l.Error(errors.New("artifact exploded"), map[string]any{"artifact": "metrics"})

	require.Len(t, *events, 1)
	e := (*events)[0]
	assert.Equal(t, "artifact exploded", e.Message)
	assert.Equal(t, sentry.LevelError, e.Level)
	assert.Equal(t, "prod", e.Environment)
	assert.Equal(t, "artifact exploded", e.Extra["Error"])
	assert.False(t, e.Timestamp.IsZero())
}

func TestSentryHook_IgnoresLowerLevels(t *testing.T) {
	h, events := newCapturingHook("prod")
	l := logger.NewZapLogger("fire-risk-api", "prod", "debug", h)

	l.Info("fine")
	l.Warning("meh")

	assert.Empty(t, *events)
}

func TestSentryHook_IgnoresNonReportingZones(t *testing.T) {
	h, events := newCapturingHook("development")
	l := logger.NewZapLogger("fire-risk-api", "development", "debug", h)

	l.Error(errors.New("local only"))

	assert.Empty(t, *events)
}

func TestSentryHook_GarbageInputIsSwallowed(t *testing.T) {
	h, events := newCapturingHook("prod")
	var buf bytes.Buffer
	h.SetLogger(logger.NewZapLogger("fire-risk-api", "prod", "debug", &buf))

	n, err := h.Write([]byte("not json"))

	require.NoError(t, err)
	assert.Equal(t, len("not json"), n)
	assert.Empty(t, *events)
	assert.Contains(t, buf.String(), "decode log entry")
}

func TestSentryHook_MapLevel(t *testing.T) {
	h := &SentryHook{}
	assert.Equal(t, sentry.LevelFatal, h.mapLevel(4))
	assert.Equal(t, sentry.LevelWarning, h.mapLevel(1))
	assert.Equal(t, sentry.LevelDebug, h.mapLevel(-1))
}
