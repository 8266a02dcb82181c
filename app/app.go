package app

import (
	"fmt"

	"exacto/ballistic"
	"exacto/hal"
	"exacto/settings"
	"exacto/sight"
)

// frameTicks is the number of 1 ms HAL ticks per frame on the device.
const frameTicks = 16

type Config struct {
	Sight  sight.Sight
	Engine ballistic.Config[ballistic.Scalar]

	// SplashFrames is how long the boot splash stays up.
	SplashFrames int
}

// DefaultConfig is the power-on configuration of the device.
func DefaultConfig() Config {
	return Config{
		Sight:        sight.Default(),
		Engine:       ballistic.DefaultConfig[ballistic.Scalar](),
		SplashFrames: 90,
	}
}

// New returns the step function for h with the default config.
func New(h hal.HAL) func() error {
	return NewWithConfig(h, DefaultConfig())
}

// Run drives the firmware from the HAL tick stream and blocks forever
// (TinyGo/native entrypoint).
func Run(h hal.HAL) {
	RunWithConfig(h, DefaultConfig())
}

func NewWithConfig(h hal.HAL, cfg Config) func() error {
	return newController(h, cfg).step
}

func RunWithConfig(h hal.HAL, cfg Config) {
	step := NewWithConfig(h, cfg)

	var ticks <-chan uint64
	if t := h.Time(); t != nil {
		ticks = t.Ticks()
	}
	if ticks == nil {
		select {}
	}

	var last uint64
	for seq := range ticks {
		if seq-last < frameTicks {
			continue
		}
		last = seq
		if err := step(); err != nil {
			if l := h.Logger(); l != nil {
				l.WriteLineString("step: " + err.Error())
			}
		}
	}
	select {}
}

type controller struct {
	log    hal.Logger
	fb     hal.Framebuffer
	canvas hal.Canvas
	enc    hal.Encoder

	menu   *settings.State
	screen settings.DisplayRenderer
	sight  sight.Sight
	engine ballistic.Config[ballistic.Scalar]

	splash   int
	computed bool
	solvedAt sight.Sight
	aim      sight.Point
	halted   bool
}

func newController(h hal.HAL, cfg Config) *controller {
	c := &controller{
		log:    h.Logger(),
		sight:  cfg.Sight.Clamped(),
		engine: cfg.Engine,
		splash: cfg.SplashFrames,
	}
	if d := h.Display(); d != nil {
		c.fb = d.Framebuffer()
	}
	if in := h.Input(); in != nil {
		c.enc = in.Encoder()
	}
	c.canvas = hal.NewCanvas(c.fb)
	c.screen = settings.DisplayRenderer{D: c.canvas}

	if c.splash > 0 {
		drawSplash(c.canvas)
		_ = c.canvas.Display()
	}
	c.menu = settings.NewState(c.readEncoder())
	return c
}

func (c *controller) readEncoder() (int, bool) {
	if c.enc == nil {
		return 0, false
	}
	return c.enc.Position(), c.enc.Pressed()
}

// step runs one frame. A contract violation inside the engine halts the
// controller on the panic screen; later steps do nothing.
func (c *controller) step() error {
	if c.halted {
		return nil
	}
	defer func() {
		if r := recover(); r != nil {
			c.halted = true
			c.fatal(r)
		}
	}()

	position, pressed := c.readEncoder()
	if c.splash > 0 {
		c.splash--
		c.menu.Reset(position, pressed)
		if c.splash > 0 {
			return nil
		}
	}

	redraw := c.menu.Update(position, pressed, &c.sight)
	if !c.computed || c.sight != c.solvedAt {
		c.solve()
		redraw = true
	}
	if !redraw {
		return nil
	}

	if c.menu.IsOpen() {
		c.screen.Clear()
		c.menu.Draw(c.screen, c.sight)
	} else {
		sight.Draw(c.canvas, c.sight, c.aim)
	}
	if err := c.canvas.Display(); err != nil {
		return fmt.Errorf("present: %w", err)
	}
	return nil
}

func (c *controller) solve() {
	cfg := sight.Configure(c.engine, c.sight)
	rng := ballistic.ScalarFromInt(int32(c.sight.Range))
	drift := ballistic.CalculateDrift(&cfg, rng)

	w, h := c.canvas.Size()
	c.aim = sight.Reticle(c.sight, drift, w, h)
	c.solvedAt = c.sight
	c.computed = true

	if c.log != nil {
		c.log.WriteLineString(fmt.Sprintf("solve: range=%dm energy=%ddJ spin=%d drift=(%v, %v) aim=(%d, %d)",
			c.sight.Range, c.sight.EnergyDeciJoules, c.sight.Spin, drift.X, drift.Y, c.aim.X, c.aim.Y))
	}
}
