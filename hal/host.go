//go:build !tinygo

package hal

import (
	"github.com/rs/zerolog"
)

type hostHAL struct {
	logger *hostLogger
	fb     *MemoryFramebuffer
	enc    *VirtualEncoder
	t      *hostTime
}

func newHostHAL(log zerolog.Logger) *hostHAL {
	return &hostHAL{
		logger: &hostLogger{log: log.With().Str("component", "device").Logger()},
		fb:     NewMemoryFramebuffer(ScreenWidth, ScreenHeight, nil),
		enc:    &VirtualEncoder{},
		t:      newHostTime(),
	}
}

func (h *hostHAL) Logger() Logger   { return h.logger }
func (h *hostHAL) Display() Display { return hostDisplay{fb: h.fb} }
func (h *hostHAL) Input() Input     { return hostInput{enc: h.enc} }
func (h *hostHAL) Time() Time       { return h.t }

// beforeStep runs on the control loop goroutine ahead of each app step.
func (h *hostHAL) beforeStep() {
	h.enc.Poll()
	h.t.step(1)
}

type hostDisplay struct {
	fb *MemoryFramebuffer
}

func (d hostDisplay) Framebuffer() Framebuffer { return d.fb }

type hostInput struct {
	enc *VirtualEncoder
}

func (in hostInput) Encoder() Encoder { return in.enc }

// hostLogger forwards device log lines to zerolog.
type hostLogger struct {
	log zerolog.Logger
}

func (l *hostLogger) WriteLineString(s string) {
	l.log.Info().Msg(s)
}

func (l *hostLogger) WriteLineBytes(b []byte) {
	l.log.Info().Msg(string(b))
}
