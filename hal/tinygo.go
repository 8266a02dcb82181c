//go:build tinygo && baremetal

package hal

import (
	"machine"

	"tinygo.org/x/drivers/encoders"
)

// Pin map for a Raspberry Pi Pico carrying the sight board.
const (
	pinOLEDSCK = machine.GP18
	pinOLEDSDO = machine.GP19
	pinOLEDCS  = machine.GP17
	pinOLEDDC  = machine.GP20
	pinOLEDRST = machine.GP21

	pinEncoderA  = machine.GP2
	pinEncoderB  = machine.GP3
	pinEncoderSW = machine.GP4
)

type tinyGoHAL struct {
	logger *uartLogger
	fb     *MemoryFramebuffer
	enc    *tinyGoEncoder
	t      *tinyGoTime
}

// New returns the sight board HAL: a 128×128 SSD1351 OLED on SPI0, a
// quadrature rotary encoder with push button, and a UART0 logger.
//
// UART: UART0 on GP0 (TX) / GP1 (RX), 115200 8N1.
func New() HAL {
	uart := machine.UART0
	uart.Configure(machine.UARTConfig{
		BaudRate: 115200,
		TX:       machine.GP0,
		RX:       machine.GP1,
	})
	logger := &uartLogger{uart: uart}

	panel := newPanel()
	fb := NewMemoryFramebuffer(ScreenWidth, ScreenHeight, panel.blit)

	return &tinyGoHAL{
		logger: logger,
		fb:     fb,
		enc:    newTinyGoEncoder(),
		t:      newTinyGoTime(),
	}
}

func (h *tinyGoHAL) Logger() Logger   { return h.logger }
func (h *tinyGoHAL) Display() Display { return tinyGoDisplay{fb: h.fb} }
func (h *tinyGoHAL) Input() Input     { return tinyGoInput{enc: h.enc} }
func (h *tinyGoHAL) Time() Time       { return h.t }

type tinyGoEncoder struct {
	q  *encoders.QuadratureDevice
	sw machine.Pin
}

func newTinyGoEncoder() *tinyGoEncoder {
	q := encoders.NewQuadratureViaInterrupt(pinEncoderA, pinEncoderB)
	q.Configure(encoders.QuadratureConfig{Precision: 4})

	pinEncoderSW.Configure(machine.PinConfig{Mode: machine.PinInputPullup})
	return &tinyGoEncoder{q: q, sw: pinEncoderSW}
}

func (e *tinyGoEncoder) Position() int { return e.q.Position() }

// Pressed reads the push button, which pulls the pin low.
func (e *tinyGoEncoder) Pressed() bool { return !e.sw.Get() }
