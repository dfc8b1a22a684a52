// Package ppu declares the boundary to the (not yet implemented) graphics
// subsystem. The CPU core never calls it; a future video component decoding
// VRAM and the sprite attribute table will.
package ppu

import "image/color"

// Display receives decoded pixels from a video component.
type Display interface {
	// SetPixel sets the color of the pixel at (x, y).
	SetPixel(x, y int, c color.Color)
}
