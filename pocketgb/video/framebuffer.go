// Package video implements the PPU: the dot-accurate scanline state
// machine, sprite selection, pixel composition, and the framebuffer it
// renders into.
package video

// Width and Height are the fixed LCD dimensions.
const (
	Width  = 160
	Height = 144
)

// shades maps a 2-bit palette index to a grayscale byte, lightest
// first, per the documented {0xFF,0xAA,0x55,0x00} mapping.
var shades = [4]byte{0xFF, 0xAA, 0x55, 0x00}

// FrameBuffer holds one rendered frame as raw 2-bit shade indices.
// Conversion to a displayable grayscale byte happens on read, not on
// write, so the PPU itself only ever deals in indices 0..3.
type FrameBuffer struct {
	pixels [Width * Height]uint8
}

func (f *FrameBuffer) set(x, y int, index uint8) {
	f.pixels[y*Width+x] = index & 0x03
}

// Index returns the raw 2-bit shade index at (x, y).
func (f *FrameBuffer) Index(x, y int) uint8 {
	return f.pixels[y*Width+x]
}

// Gray returns the grayscale byte at (x, y).
func (f *FrameBuffer) Gray(x, y int) byte {
	return shades[f.pixels[y*Width+x]]
}

// Clear resets every pixel to index 0 (white).
func (f *FrameBuffer) Clear() {
	for i := range f.pixels {
		f.pixels[i] = 0
	}
}

// Snapshot returns a copy of the raw index plane, safe for a consumer
// to hold onto after the PPU keeps rendering.
func (f *FrameBuffer) Snapshot() [Width * Height]uint8 {
	return f.pixels
}
