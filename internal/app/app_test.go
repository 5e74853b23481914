package app

import (
	"io"
	"log/slog"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vancha/binary-clock/internal/clock"
	"github.com/vancha/binary-clock/internal/config"
	"github.com/vancha/binary-clock/internal/render"
)

// countingChimer records chime calls.
type countingChimer struct {
	calls int
}

func (c *countingChimer) Chime() { c.calls++ }

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestApp(t *testing.T, at time.Time) (*App, *countingChimer) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.json")
	cfg, err := config.Load(path)
	require.NoError(t, err)
	cfg.UTCOffsetSeconds = 0

	ch := &countingChimer{}
	a, err := New(cfg, path, clock.Fixed{T: at}, ch, testLogger())
	require.NoError(t, err)
	return a, ch
}

func TestNewSamplesInitialTime(t *testing.T) {
	at := time.Date(2024, time.March, 14, 13, 5, 9, 0, time.UTC)
	a, _ := newTestApp(t, at)

	assert.True(t, a.now.Equal(at))
	assert.Equal(t, render.ModeBCD, a.mode)
}

func TestNewRejectsBadSettings(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	cfg, err := config.Load(path)
	require.NoError(t, err)
	cfg.ActiveColor = "chartreuse"

	_, err = New(cfg, path, clock.Fixed{}, &countingChimer{}, testLogger())
	assert.Error(t, err)
}

func TestTickReplacesTimestamp(t *testing.T) {
	at := time.Date(2024, time.March, 14, 13, 5, 9, 0, time.UTC)
	a, _ := newTestApp(t, at)

	next := at.Add(time.Second)
	a.tick(next)
	assert.True(t, a.now.Equal(next))
}

func TestTickChimesOnHourChange(t *testing.T) {
	at := time.Date(2024, time.March, 14, 13, 59, 59, 0, time.UTC)
	a, ch := newTestApp(t, at)
	a.cfg.Chime = true

	a.tick(at.Add(time.Second)) // 14:00:00
	assert.Equal(t, 1, ch.calls)

	a.tick(at.Add(2 * time.Second)) // 14:00:01, same hour
	assert.Equal(t, 1, ch.calls)
}

func TestTickChimeDisabledByDefault(t *testing.T) {
	at := time.Date(2024, time.March, 14, 13, 59, 59, 0, time.UTC)
	a, ch := newTestApp(t, at)

	a.tick(at.Add(time.Second))
	assert.Equal(t, 0, ch.calls)
}

func TestTickChimesAfterStall(t *testing.T) {
	// A stalled host can skip past the top of the hour; the chime still
	// fires on the late tick.
	at := time.Date(2024, time.March, 14, 13, 59, 58, 0, time.UTC)
	a, ch := newTestApp(t, at)
	a.cfg.Chime = true

	a.tick(at.Add(5 * time.Second)) // 14:00:03
	assert.Equal(t, 1, ch.calls)
}

func TestToggleMode(t *testing.T) {
	at := time.Date(2024, time.March, 14, 13, 5, 9, 0, time.UTC)
	a, _ := newTestApp(t, at)

	a.toggleMode()
	assert.Equal(t, render.ModeBinary, a.mode)
	assert.Equal(t, "binary", a.cfg.Mode)

	a.toggleMode()
	assert.Equal(t, render.ModeBCD, a.mode)
	assert.Equal(t, "bcd", a.cfg.Mode)
}

func TestSaveSettingsRoundTrips(t *testing.T) {
	at := time.Date(2024, time.March, 14, 13, 5, 9, 0, time.UTC)
	a, _ := newTestApp(t, at)

	a.toggleMode()
	a.cfg.Chime = true
	a.saveSettings()

	got, err := config.Load(a.cfgPath)
	require.NoError(t, err)
	assert.Equal(t, "binary", got.Mode)
	assert.True(t, got.Chime)
}

func TestSameSecond(t *testing.T) {
	base := time.Date(2024, time.March, 14, 13, 5, 9, 0, time.UTC)

	assert.True(t, sameSecond(base, base.Add(500*time.Millisecond)))
	assert.False(t, sameSecond(base, base.Add(time.Second)))
	assert.False(t, sameSecond(base, base.Add(-time.Millisecond)))
}

func TestLayoutUsesConfiguredSize(t *testing.T) {
	at := time.Date(2024, time.March, 14, 13, 5, 9, 0, time.UTC)
	a, _ := newTestApp(t, at)

	w, h := a.Layout(1920, 1080)
	assert.Equal(t, a.cfg.WindowWidth, w)
	assert.Equal(t, a.cfg.WindowHeight, h)
}
