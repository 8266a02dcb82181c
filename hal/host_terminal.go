//go:build !tinygo

package hal

import (
	"context"
	"fmt"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/rs/zerolog"
)

// TerminalConfig controls the terminal host runner.
type TerminalConfig struct {
	Hz int

	// Screen overrides the terminal, for tests with a simulation screen.
	Screen tcell.Screen
}

// RunTerminal shows the framebuffer in the terminal with half-block cells,
// two pixel rows per text row. Arrow keys turn the encoder, Enter or Space
// clicks it, q or Esc quits. It blocks until quit or ctx is done.
func RunTerminal(ctx context.Context, log zerolog.Logger, newApp func(HAL) func() error, cfg TerminalConfig) error {
	if cfg.Hz <= 0 {
		cfg.Hz = 30
	}

	screen := cfg.Screen
	if screen == nil {
		s, err := tcell.NewScreen()
		if err != nil {
			return fmt.Errorf("terminal: %w", err)
		}
		screen = s
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("terminal: init: %w", err)
	}
	defer screen.Fini()
	screen.HideCursor()

	h := newHostHAL(log)
	step := newApp(h)

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()
	go pollTerminal(screen, h.enc, cancel)

	t := time.NewTicker(time.Second / time.Duration(cfg.Hz))
	defer t.Stop()

	scratch := make([]byte, len(h.fb.buf))
	for {
		select {
		case <-ctx.Done():
			if ctx.Err() == context.Canceled {
				return nil
			}
			return ctx.Err()
		case <-t.C:
			h.beforeStep()
			if step != nil {
				if err := step(); err != nil {
					return err
				}
			}
			h.fb.snapshotRGB565(scratch)
			drawHalfBlocks(screen, scratch, h.fb.width, h.fb.height)
			screen.Show()
		}
	}
}

func pollTerminal(screen tcell.Screen, enc *VirtualEncoder, quit func()) {
	for {
		switch ev := screen.PollEvent().(type) {
		case nil:
			quit()
			return
		case *tcell.EventKey:
			switch ev.Key() {
			case tcell.KeyUp, tcell.KeyRight:
				enc.Rotate(1)
			case tcell.KeyDown, tcell.KeyLeft:
				enc.Rotate(-1)
			case tcell.KeyEnter:
				enc.Click()
			case tcell.KeyEscape, tcell.KeyCtrlC:
				quit()
				return
			case tcell.KeyRune:
				switch ev.Rune() {
				case ' ':
					enc.Click()
				case 'q':
					quit()
					return
				}
			}
		case *tcell.EventResize:
			screen.Sync()
		}
	}
}

// drawHalfBlocks paints pixel rows 2k and 2k+1 into text row k as an upper
// half block with the top pixel as foreground and the bottom as background.
func drawHalfBlocks(screen tcell.Screen, buf []byte, width, height int) {
	px := func(x, y int) tcell.Color {
		off := (y*width + x) * 2
		r, g, b := rgb888From565(uint16(buf[off]) | uint16(buf[off+1])<<8)
		return tcell.NewRGBColor(int32(r), int32(g), int32(b))
	}
	for y := 0; y+1 < height; y += 2 {
		for x := 0; x < width; x++ {
			style := tcell.StyleDefault.Foreground(px(x, y)).Background(px(x, y+1))
			screen.SetContent(x, y/2, '▀', nil, style)
		}
	}
}
