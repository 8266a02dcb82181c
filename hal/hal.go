package hal

import "errors"

// Logger writes newline-delimited log lines.
type Logger interface {
	WriteLineString(s string)
	WriteLineBytes(b []byte)
}

var ErrNotImplemented = errors.New("not implemented")

// Screen size of the sight's OLED panel. Host backends use the same size so
// the UI renders identically.
const (
	ScreenWidth  = 128
	ScreenHeight = 128
)

// PixelFormat defines the framebuffer pixel encoding.
type PixelFormat uint8

const (
	// PixelFormatRGB565 is 16bpp: rrrrrggggggbbbbb.
	PixelFormatRGB565 PixelFormat = iota + 1
)

// Framebuffer is a simple pixel buffer plus a "present" hook.
type Framebuffer interface {
	Width() int
	Height() int
	Format() PixelFormat
	StrideBytes() int
	Buffer() []byte
	ClearRGB(r, g, b uint8)
	Present() error
}

// Display provides access to the framebuffer (if available).
type Display interface {
	Framebuffer() Framebuffer
}

// Encoder is a rotary encoder with a push button.
//
// Position is a free-running detent counter; only its changes matter.
type Encoder interface {
	Position() int
	Pressed() bool
}

// Input provides access to input devices (if available).
type Input interface {
	Encoder() Encoder
}

// Time provides a base tick stream.
//
// The tick duration is platform-defined (1 ms on all current backends).
type Time interface {
	Ticks() <-chan uint64
}

// HAL provides the only contact point between the firmware and the outside
// world.
type HAL interface {
	Logger() Logger
	Display() Display
	Input() Input
	Time() Time
}
