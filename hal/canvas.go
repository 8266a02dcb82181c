package hal

import "image/color"

// Canvas adapts an RGB565 Framebuffer to the tinygo drivers.Displayer
// interface so fonts and UI code can draw into it. Display presents the
// framebuffer.
type Canvas struct {
	fb Framebuffer
}

func NewCanvas(fb Framebuffer) Canvas { return Canvas{fb: fb} }

func (d Canvas) Size() (x, y int16) {
	if d.fb == nil {
		return 0, 0
	}
	return int16(d.fb.Width()), int16(d.fb.Height())
}

func (d Canvas) SetPixel(x, y int16, c color.RGBA) {
	if d.fb == nil || d.fb.Format() != PixelFormatRGB565 {
		return
	}
	buf := d.fb.Buffer()
	if buf == nil {
		return
	}

	w := d.fb.Width()
	h := d.fb.Height()
	ix := int(x)
	iy := int(y)
	if ix < 0 || ix >= w || iy < 0 || iy >= h {
		return
	}

	pixel := rgb565(c.R, c.G, c.B)
	off := iy*d.fb.StrideBytes() + ix*2
	if off < 0 || off+1 >= len(buf) {
		return
	}
	buf[off] = byte(pixel)
	buf[off+1] = byte(pixel >> 8)
}

func (d Canvas) Display() error {
	if d.fb == nil {
		return ErrNotImplemented
	}
	return d.fb.Present()
}
