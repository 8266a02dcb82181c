package app

import (
	"image/color"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"exacto/hal"
	"exacto/settings"
	"exacto/sight"
)

type testLogger struct{ lines []string }

func (l *testLogger) WriteLineString(s string) { l.lines = append(l.lines, s) }
func (l *testLogger) WriteLineBytes(b []byte)  { l.lines = append(l.lines, string(b)) }

func (l *testLogger) contains(sub string) bool {
	for _, line := range l.lines {
		if strings.Contains(line, sub) {
			return true
		}
	}
	return false
}

type testHAL struct {
	log *testLogger
	fb  *hal.MemoryFramebuffer
	enc *hal.VirtualEncoder
}

func newTestHAL() *testHAL {
	return &testHAL{
		log: &testLogger{},
		fb:  hal.NewMemoryFramebuffer(hal.ScreenWidth, hal.ScreenHeight, nil),
		enc: &hal.VirtualEncoder{},
	}
}

func (h *testHAL) Logger() hal.Logger   { return h.log }
func (h *testHAL) Display() hal.Display { return h }
func (h *testHAL) Input() hal.Input     { return h }
func (h *testHAL) Time() hal.Time       { return nil }

func (h *testHAL) Framebuffer() hal.Framebuffer { return h.fb }
func (h *testHAL) Encoder() hal.Encoder         { return h.enc }

func (h *testHAL) pixel(x, y int16) color.RGBA {
	return hal.PixelAt(h.fb, int(x), int(y))
}

func quickConfig() Config {
	cfg := DefaultConfig()
	cfg.SplashFrames = 1
	return cfg
}

func TestSplashIsShownUntilFramesElapse(t *testing.T) {
	h := newTestHAL()
	cfg := DefaultConfig()
	cfg.SplashFrames = 3
	c := newController(h, cfg)

	require.NoError(t, c.step())
	require.NoError(t, c.step())
	assert.False(t, c.computed)

	require.NoError(t, c.step())
	assert.True(t, c.computed)
}

func TestFirstFrameDrawsPointOfImpact(t *testing.T) {
	h := newTestHAL()
	c := newController(h, quickConfig())

	require.NoError(t, c.step())
	require.True(t, c.computed)
	assert.Equal(t, sight.Aim, h.pixel(c.aim.X, c.aim.Y))
	assert.Equal(t, sight.Background, h.pixel(1, 1))
	assert.True(t, h.log.contains("solve: range=10m"))
}

func TestClickOpensMenu(t *testing.T) {
	h := newTestHAL()
	c := newController(h, quickConfig())
	require.NoError(t, c.step())

	h.enc.Click()
	h.enc.Poll()
	require.NoError(t, c.step())

	assert.True(t, c.menu.IsOpen())
	assert.Equal(t, color.RGBA{G: 255, A: 255}, h.pixel(1, 0))
}

func TestClockwiseMovesMenuCursorUp(t *testing.T) {
	h := newTestHAL()
	c := newController(h, quickConfig())
	require.NoError(t, c.step())

	h.enc.Click()
	h.enc.Poll()
	require.NoError(t, c.step())
	h.enc.Poll()
	require.NoError(t, c.step())
	menu, ok := c.menu.Current().(*settings.NavigationMenu)
	require.True(t, ok)

	// Arrow Down on the host turns counter-clockwise.
	h.enc.Rotate(-1)
	h.enc.Poll()
	require.NoError(t, c.step())
	assert.Equal(t, 1, menu.Selected())

	// Arrow Up turns clockwise.
	h.enc.Rotate(1)
	h.enc.Poll()
	require.NoError(t, c.step())
	assert.Equal(t, 0, menu.Selected())
}

func TestRangeChangeResolves(t *testing.T) {
	h := newTestHAL()
	c := newController(h, quickConfig())
	require.NoError(t, c.step())
	first := c.aim

	// Main menu, Sight page, focus Range, one detent clockwise.
	h.enc.Click()
	h.enc.Poll()
	require.NoError(t, c.step())
	h.enc.Poll()
	require.NoError(t, c.step())

	h.enc.Click()
	h.enc.Poll()
	require.NoError(t, c.step())
	h.enc.Poll()
	require.NoError(t, c.step())

	h.enc.Click()
	h.enc.Poll()
	require.NoError(t, c.step())
	h.enc.Poll()
	require.NoError(t, c.step())

	h.enc.Rotate(1)
	h.enc.Poll()
	require.NoError(t, c.step())

	assert.Equal(t, uint8(11), c.sight.Range)
	assert.Equal(t, c.sight, c.solvedAt)
	assert.True(t, h.log.contains("solve: range=11m"))
	assert.NotEqual(t, sight.Point{}, first)
}

func TestStepWithoutDisplayReportsError(t *testing.T) {
	c := newController(nilDisplayHAL{}, quickConfig())
	err := c.step()
	assert.ErrorIs(t, err, hal.ErrNotImplemented)
}

type nilDisplayHAL struct{}

func (nilDisplayHAL) Logger() hal.Logger   { return nil }
func (nilDisplayHAL) Display() hal.Display { return nil }
func (nilDisplayHAL) Input() hal.Input     { return nil }
func (nilDisplayHAL) Time() hal.Time       { return nil }

func TestTakeRunes(t *testing.T) {
	prefix, rest := takeRunes("héllo", 2)
	assert.Equal(t, "hé", prefix)
	assert.Equal(t, "llo", rest)

	prefix, rest = takeRunes("ok", 5)
	assert.Equal(t, "ok", prefix)
	assert.Empty(t, rest)
}
