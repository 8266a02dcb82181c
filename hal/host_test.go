package hal

import (
	"context"
	"image/color"
	"testing"

	"github.com/gdamore/tcell/v2"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type reading struct {
	position int
	pressed  bool
}

func TestRunHeadlessFeedsScript(t *testing.T) {
	var got []reading
	newApp := func(h HAL) func() error {
		enc := h.Input().Encoder()
		return func() error {
			got = append(got, reading{enc.Position(), enc.Pressed()})
			return nil
		}
	}

	err := RunHeadless(context.Background(), zerolog.Nop(), newApp, HeadlessConfig{
		Hz:     1000,
		Ticks:  3,
		Script: "<< .",
	})
	require.NoError(t, err)
	assert.Equal(t, []reading{{-2, true}, {-2, false}, {-2, false}}, got)
}

func TestRunHeadlessRejectsBadScript(t *testing.T) {
	err := RunHeadless(context.Background(), zerolog.Nop(), func(HAL) func() error { return nil }, HeadlessConfig{
		Ticks:  1,
		Script: "<x",
	})
	assert.ErrorContains(t, err, "unexpected 'x'")
}

func TestRunHeadlessStopsOnContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	err := RunHeadless(ctx, zerolog.Nop(), func(HAL) func() error { return nil }, HeadlessConfig{})
	assert.ErrorIs(t, err, context.Canceled)
}

func TestRunTerminalDrawsHalfBlocks(t *testing.T) {
	sim := tcell.NewSimulationScreen("UTF-8")

	var (
		steps int
		cell  tcell.SimCell
	)
	newApp := func(h HAL) func() error {
		c := NewCanvas(h.Display().Framebuffer())
		return func() error {
			steps++
			c.SetPixel(0, 0, color.RGBA{R: 255, A: 255})
			c.SetPixel(0, 1, color.RGBA{B: 255, A: 255})
			if steps == 3 {
				cells, _, _ := sim.GetContents()
				cell = cells[0]
				sim.InjectKey(tcell.KeyRune, 'q', tcell.ModNone)
			}
			return nil
		}
	}

	err := RunTerminal(context.Background(), zerolog.Nop(), newApp, TerminalConfig{Hz: 200, Screen: sim})
	require.NoError(t, err)
	require.GreaterOrEqual(t, steps, 3)

	assert.Equal(t, []rune{'▀'}, cell.Runes)
	fg, bg, _ := cell.Style.Decompose()
	assert.NotEqual(t, fg, bg, "top and bottom pixels share a cell")
}

func TestHostLoggerWritesThroughZerolog(t *testing.T) {
	var buf testWriter
	h := newHostHAL(zerolog.New(&buf))
	h.Logger().WriteLineString("hello")
	h.Logger().WriteLineBytes([]byte("bytes"))

	assert.Contains(t, buf.String(), `"message":"hello"`)
	assert.Contains(t, buf.String(), `"message":"bytes"`)
	assert.Contains(t, buf.String(), `"component":"device"`)
}

type testWriter struct{ b []byte }

func (w *testWriter) Write(p []byte) (int, error) {
	w.b = append(w.b, p...)
	return len(p), nil
}

func (w *testWriter) String() string { return string(w.b) }

func TestRunTerminalArrowKeysTurnEncoder(t *testing.T) {
	sim := tcell.NewSimulationScreen("UTF-8")

	var positions []int
	newApp := func(h HAL) func() error {
		enc := h.Input().Encoder()
		steps := 0
		return func() error {
			steps++
			positions = append(positions, enc.Position())
			switch steps {
			case 2:
				sim.InjectKey(tcell.KeyUp, 0, tcell.ModNone)
			case 6:
				sim.InjectKey(tcell.KeyDown, 0, tcell.ModNone)
				sim.InjectKey(tcell.KeyDown, 0, tcell.ModNone)
			case 10:
				sim.InjectKey(tcell.KeyRune, 'q', tcell.ModNone)
			}
			return nil
		}
	}

	err := RunTerminal(context.Background(), zerolog.Nop(), newApp, TerminalConfig{Hz: 100, Screen: sim})
	require.NoError(t, err)
	require.NotEmpty(t, positions)

	assert.Contains(t, positions, 1, "Up turns clockwise")
	assert.Equal(t, -1, positions[len(positions)-1])
}
