//go:build !tinygo && cgo

package hal

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// pollKeys maps the window keyboard onto the virtual encoder. Up and Right
// turn it clockwise (position up), Down and Left counter-clockwise; Enter
// and Space are the push button.
func pollKeys(enc *VirtualEncoder) {
	for _, k := range []ebiten.Key{ebiten.KeyArrowUp, ebiten.KeyArrowRight} {
		if inpututil.IsKeyJustPressed(k) {
			enc.Rotate(1)
		}
	}
	for _, k := range []ebiten.Key{ebiten.KeyArrowDown, ebiten.KeyArrowLeft} {
		if inpututil.IsKeyJustPressed(k) {
			enc.Rotate(-1)
		}
	}

	for _, k := range []ebiten.Key{ebiten.KeyEnter, ebiten.KeySpace} {
		if inpututil.IsKeyJustPressed(k) {
			enc.Button(true)
		}
		if inpututil.IsKeyJustReleased(k) {
			enc.Button(false)
		}
	}
}
