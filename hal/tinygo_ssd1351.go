//go:build tinygo && baremetal

package hal

import (
	"image/color"
	"machine"

	"tinygo.org/x/drivers/ssd1351"
)

// panel pushes the RGB565 framebuffer to the SSD1351 one row at a time.
type panel struct {
	dev ssd1351.Device
	row [ScreenWidth]color.RGBA
}

func newPanel() *panel {
	machine.SPI0.Configure(machine.SPIConfig{
		SCK:       pinOLEDSCK,
		SDO:       pinOLEDSDO,
		Frequency: 16_000_000,
	})

	p := &panel{
		dev: ssd1351.New(machine.SPI0, pinOLEDRST, pinOLEDDC, pinOLEDCS, machine.NoPin, machine.NoPin),
	}
	p.dev.Configure(ssd1351.Config{Width: ScreenWidth, Height: ScreenHeight})
	return p
}

func (p *panel) blit(buf []byte, width, height int) error {
	if width > len(p.row) {
		width = len(p.row)
	}
	for y := 0; y < height; y++ {
		line := buf[y*width*2:]
		for x := 0; x < width; x++ {
			r, g, b := rgb888From565(uint16(line[2*x]) | uint16(line[2*x+1])<<8)
			p.row[x] = color.RGBA{R: r, G: g, B: b, A: 255}
		}
		if err := p.dev.FillRectangleWithBuffer(0, int16(y), int16(width), 1, p.row[:width]); err != nil {
			return err
		}
	}
	return nil
}
