package settings

import (
	"image/color"

	"tinygo.org/x/drivers"
	"tinygo.org/x/tinyfont"

	"exacto/sight"
)

// TextType selects how a row is styled.
type TextType uint8

const (
	Normal TextType = iota
	Highlighted
	Selected
)

// Renderer is the drawing surface menus render into.
type Renderer interface {
	RenderText(text string, row uint8, style TextType)
	RenderAdditionalText(text string, row uint8, style TextType)
	RenderSightPreview(s sight.Sight)
}

const (
	rowHeight  = 7
	textIndent = 2
	previewBox = 40
)

var (
	white = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	red   = color.RGBA{R: 255, A: 255}
	green = color.RGBA{G: 255, A: 255}
)

type palette struct{ fg, bg color.RGBA }

func paletteFor(style TextType) palette {
	switch style {
	case Highlighted:
		return palette{fg: red, bg: green}
	case Selected:
		return palette{fg: green, bg: red}
	}
	return palette{fg: white, bg: sight.Background}
}

// DisplayRenderer draws menus on a Displayer with the TomThumb font, one
// row every 7 pixels.
type DisplayRenderer struct {
	D drivers.Displayer
}

// Clear paints the whole display with the background color.
func (r DisplayRenderer) Clear() {
	w, h := r.D.Size()
	sight.Fill(r.D, 0, 0, w, h, sight.Background)
}

func (r DisplayRenderer) RenderText(text string, row uint8, style TextType) {
	r.line(textIndent, text, row, style)
}

func (r DisplayRenderer) RenderAdditionalText(text string, row uint8, style TextType) {
	w, _ := r.D.Size()
	_, outbox := tinyfont.LineWidth(&tinyfont.TomThumb, text)
	r.line(w-int16(outbox)-textIndent, text, row, style)
}

// RenderSightPreview draws a scaled-down crosshair shifted by the zero
// offsets in the bottom right corner.
func (r DisplayRenderer) RenderSightPreview(s sight.Sight) {
	w, h := r.D.Size()
	x0, y0 := w-previewBox-1, h-previewBox-1
	sight.Fill(r.D, x0, y0, previewBox, previewBox, sight.Background)
	for i := int16(0); i < previewBox; i++ {
		r.D.SetPixel(x0+i, y0, white)
		r.D.SetPixel(x0+i, y0+previewBox-1, white)
		r.D.SetPixel(x0, y0+i, white)
		r.D.SetPixel(x0+previewBox-1, y0+i, white)
	}

	cx := x0 + previewBox/2 + s.XZero/2
	cy := y0 + previewBox/2 + s.YZero/2
	for i := int16(1); i < previewBox-1; i++ {
		r.D.SetPixel(x0+i, cy, sight.Crosshair)
		r.D.SetPixel(cx, y0+i, sight.Crosshair)
	}
	sight.Fill(r.D, cx-1, cy-1, 3, 3, sight.Aim)
}

func (r DisplayRenderer) line(x int16, text string, row uint8, style TextType) {
	p := paletteFor(style)
	top := int16(row) * rowHeight
	if style != Normal {
		_, outbox := tinyfont.LineWidth(&tinyfont.TomThumb, text)
		sight.Fill(r.D, x-1, top, int16(outbox)+2, rowHeight, p.bg)
	}
	tinyfont.WriteLine(r.D, &tinyfont.TomThumb, x, top+rowHeight-1, text, p.fg)
}
