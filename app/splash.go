package app

import (
	"tinygo.org/x/tinyfont"

	"exacto/hal"
	"exacto/internal/buildinfo"
	"exacto/sight"
)

func drawSplash(d hal.Canvas) {
	w, h := d.Size()
	sight.Fill(d, 0, 0, w, h, sight.Background)

	font := &tinyfont.TomThumb
	center := func(y int16, s string) {
		_, outbox := tinyfont.LineWidth(font, s)
		tinyfont.WriteLine(d, font, (w-int16(outbox))/2, y, s, sight.Text)
	}
	center(h/2-4, buildinfo.Name)
	center(h/2+6, buildinfo.Short())
}
