package app

import (
	"fmt"
	"image/color"
	"runtime/debug"
	"strings"
	"unicode/utf8"

	"tinygo.org/x/tinyfont"

	"exacto/hal"
)

const (
	panicLineHeight = 7
	panicBaseline   = 6
)

func (c *controller) fatal(value any) {
	stack := debug.Stack()
	if c.log != nil {
		c.log.WriteLineString(fmt.Sprintf("Exacto panic: %v", value))
		for _, line := range strings.Split(string(stack), "\n") {
			if line == "" {
				continue
			}
			c.log.WriteLineString(line)
		}
	}

	if c.fb == nil {
		return
	}
	c.fb.ClearRGB(255, 255, 255)

	font := &tinyfont.TomThumb
	_, outboxWidth := tinyfont.LineWidth(font, "0")
	fontWidth := int16(outboxWidth)
	if fontWidth <= 0 {
		_ = c.fb.Present()
		return
	}

	lines := []string{
		"Exacto halted:",
		fmt.Sprint(value),
		"",
		"Power cycle the sight.",
	}

	fg := color.RGBA{R: 0, G: 0, B: 0, A: 255}
	maxW, maxH := c.canvas.Size()
	cols := maxW / fontWidth
	if cols <= 0 {
		cols = 1
	}

	y := int16(0)
	for _, line := range lines {
		if line == "" {
			y += panicLineHeight
			continue
		}
		for len(line) > 0 {
			if y+panicLineHeight > maxH {
				_ = c.fb.Present()
				return
			}
			chunk, rest := takeRunes(line, cols)
			drawTextLine(c.canvas, font, fontWidth, 0, y, chunk, fg)
			y += panicLineHeight
			line = strings.TrimLeft(rest, " ")
		}
	}
	_ = c.fb.Present()
}

func drawTextLine(d hal.Canvas, font tinyfont.Fonter, fontWidth, x0, y0 int16, s string, fg color.RGBA) {
	x := x0
	for _, r := range s {
		tinyfont.DrawChar(d, font, x, y0+panicBaseline, r, fg)
		x += fontWidth
	}
}

func takeRunes(s string, n int16) (prefix, rest string) {
	if n <= 0 || s == "" {
		return "", s
	}
	if int64(len(s)) <= int64(n) {
		return s, ""
	}
	var i int
	var count int16
	for i < len(s) && count < n {
		_, size := utf8.DecodeRuneInString(s[i:])
		if size <= 0 {
			break
		}
		i += size
		count++
	}
	if i >= len(s) {
		return s, ""
	}
	return s[:i], s[i:]
}
