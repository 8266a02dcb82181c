package sight

import (
	"image/color"
	"strconv"

	"tinygo.org/x/drivers"
	"tinygo.org/x/tinyfont"
)

var (
	Background = color.RGBA{A: 255}
	Crosshair  = color.RGBA{R: 0, G: 96, B: 0, A: 255}
	Aim        = color.RGBA{R: 255, A: 255}
	Text       = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	Battery    = color.RGBA{R: 0, G: 200, B: 255, A: 255}
)

const (
	batteryWidth  = 16
	batteryHeight = 5
	aimRadius     = 1
)

// Draw renders the reticle view: a crosshair through the zeroed center, the
// point of impact, a range readout and a battery gauge. It does not call
// d.Display.
func Draw(d drivers.Displayer, s Sight, aim Point) {
	w, h := d.Size()
	Fill(d, 0, 0, w, h, Background)

	cx, cy := w/2+s.XZero, h/2+s.YZero
	for x := int16(0); x < w; x += 2 {
		d.SetPixel(x, cy, Crosshair)
	}
	for y := int16(0); y < h; y += 2 {
		d.SetPixel(cx, y, Crosshair)
	}

	Fill(d, aim.X-aimRadius, aim.Y-aimRadius, 2*aimRadius+1, 2*aimRadius+1, Aim)

	tinyfont.WriteLine(d, &tinyfont.TomThumb, 1, h-2, strconv.Itoa(int(s.Range))+"m", Text)

	bx := w - batteryWidth - 2
	outline(d, bx, 1, batteryWidth, batteryHeight, Text)
	level := int16(s.BatteryPower) * (batteryWidth - 2) / 100
	Fill(d, bx+1, 2, level, batteryHeight-2, Battery)
}

// Fill paints a w×h rectangle with its top-left corner at (x, y). Pixels
// outside the display are skipped.
func Fill(d drivers.Displayer, x, y, w, h int16, c color.RGBA) {
	sw, sh := d.Size()
	for j := y; j < y+h; j++ {
		if j < 0 || j >= sh {
			continue
		}
		for i := x; i < x+w; i++ {
			if i < 0 || i >= sw {
				continue
			}
			d.SetPixel(i, j, c)
		}
	}
}

func outline(d drivers.Displayer, x, y, w, h int16, c color.RGBA) {
	Fill(d, x, y, w, 1, c)
	Fill(d, x, y+h-1, w, 1, c)
	Fill(d, x, y, 1, h, c)
	Fill(d, x+w-1, y, 1, h, c)
}
