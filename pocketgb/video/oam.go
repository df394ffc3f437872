package video

import "github.com/hollowcrest/pocketgb/pocketgb/memory"

// sprite is one decoded OAM entry (4 bytes: Y, X, tile, attributes).
type sprite struct {
	index int
	y     int
	x     int
	tile  uint8
	attrs uint8
}

func (s sprite) priorityBehindBG() bool { return s.attrs&0x80 != 0 }
func (s sprite) flipY() bool            { return s.attrs&0x40 != 0 }
func (s sprite) flipX() bool            { return s.attrs&0x20 != 0 }
func (s sprite) palette1() bool         { return s.attrs&0x10 != 0 }

func readSprite(bus *memory.Bus, index int) sprite {
	base := uint16(0xFE00 + index*4)
	return sprite{
		index: index,
		y:     int(bus.Read(base)) - 16,
		x:     int(bus.Read(base+1)) - 8,
		tile:  bus.Read(base + 2),
		attrs: bus.Read(base + 3),
	}
}

// scanOAM selects up to 10 sprites visible on scanline ly, in OAM
// index order, per the documented 40-entry linear scan.
func scanOAM(bus *memory.Bus, ly int, tall bool) []sprite {
	height := 8
	if tall {
		height = 16
	}

	selected := make([]sprite, 0, 10)
	for i := 0; i < 40 && len(selected) < 10; i++ {
		s := readSprite(bus, i)
		if ly >= s.y && ly < s.y+height {
			selected = append(selected, s)
		}
	}
	return selected
}

// spriteRowPixel returns the 2-bit color index of sprite s at the
// given screen column, and whether that column falls within the
// sprite and is non-transparent. height is 8 or 16 per LCDC bit 2.
func spriteRowPixel(bus *memory.Bus, s sprite, ly, height, x int) (uint8, bool) {
	col := x - s.x
	if col < 0 || col > 7 {
		return 0, false
	}

	row := ly - s.y
	if row < 0 || row >= height {
		return 0, false
	}

	if s.flipY() {
		row = height - 1 - row
	}
	if s.flipX() {
		col = 7 - col
	}

	tile := s.tile
	if height == 16 {
		// the LSB of the tile index is forced to zero for the upper
		// tile and one for the lower tile of an 8x16 sprite.
		tile &= 0xFE
		if row >= 8 {
			tile |= 0x01
			row -= 8
		}
	}

	rowAddr := 0x8000 + uint16(tile)*16 + uint16(row)*2
	lo := bus.Read(rowAddr)
	hi := bus.Read(rowAddr + 1)

	bit := 7 - uint(col)
	pixel := (hi>>bit)&1<<1 | (lo>>bit)&1
	return pixel, pixel != 0
}
