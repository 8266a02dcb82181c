//go:build !tinygo

package hal

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"
)

// HeadlessConfig controls the no-window host runner.
type HeadlessConfig struct {
	Hz    int
	Ticks uint64

	// Script is fed to the encoder before the first step, one rune per
	// event: '<' rotates up, '>' rotates down, '.' clicks.
	Script string
}

// RunHeadless runs the firmware without any display.
func RunHeadless(ctx context.Context, log zerolog.Logger, newApp func(HAL) func() error, cfg HeadlessConfig) error {
	if cfg.Hz <= 0 {
		cfg.Hz = 60
	}

	h := newHostHAL(log)
	if err := feedScript(h.enc, cfg.Script); err != nil {
		return err
	}
	step := newApp(h)

	d := time.Second / time.Duration(cfg.Hz)
	if d <= 0 {
		return fmt.Errorf("invalid headless hz: %d", cfg.Hz)
	}
	t := time.NewTicker(d)
	defer t.Stop()

	var tick uint64
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-t.C:
			h.beforeStep()
			if step != nil {
				if err := step(); err != nil {
					return err
				}
			}
			tick++
			if cfg.Ticks > 0 && tick >= cfg.Ticks {
				return nil
			}
		}
	}
}

func feedScript(enc *VirtualEncoder, script string) error {
	for i, r := range script {
		ok := true
		switch r {
		case '<':
			ok = enc.Rotate(-1)
		case '>':
			ok = enc.Rotate(1)
		case '.':
			ok = enc.Click()
		case ' ':
		default:
			return fmt.Errorf("input script: unexpected %q at %d", r, i)
		}
		if !ok {
			return fmt.Errorf("input script: too long, queue full at %d", i)
		}
	}
	return nil
}
