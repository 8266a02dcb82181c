package sight

import "exacto/ballistic"

// Point is a pixel position on the display.
type Point struct {
	X, Y int16
}

// Offset converts a drift in meters to pixels along an axis of axisPx pixels.
// The field of view at rng meters is taken as π·rng/4 meters wide, so
//
//	offset = drift · axisPx / (π · rng / 4)
//
// A non-positive range yields 0.
func Offset[T ballistic.Number[T]](drift, rng T, axisPx int32) int32 {
	var z T
	if !z.FromInt(0).Less(rng) {
		return 0
	}
	span := ballistic.Pi[T]().Mul(rng).Div(z.FromInt(4))
	return drift.Mul(z.FromInt(axisPx)).Div(span).Value()
}

// Reticle returns the point of impact on a width×height display: the center,
// shifted by the zero offsets, then right for positive lateral drift and down
// for negative vertical drift. The result is kept on screen.
func Reticle[T ballistic.Number[T]](s Sight, d ballistic.Drift[T], width, height int16) Point {
	var z T
	rng := z.FromInt(int32(s.Range))

	x := int32(width/2) + int32(s.XZero) + Offset(d.X, rng, int32(width))
	y := int32(height/2) + int32(s.YZero) - Offset(d.Y, rng, int32(height))

	return Point{X: onScreen(x, width), Y: onScreen(y, height)}
}

func onScreen(v int32, size int16) int16 {
	if v < 0 {
		return 0
	}
	if v >= int32(size) {
		return size - 1
	}
	return int16(v)
}
