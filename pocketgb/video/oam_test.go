package video

import (
	"testing"

	"github.com/hollowcrest/pocketgb/pocketgb/memory"
)

func writeSprite(bus *memory.Bus, index int, y, x int, tile, attrs uint8) {
	base := uint16(0xFE00 + index*4)
	bus.Write(base, uint8(y+16))
	bus.Write(base+1, uint8(x+8))
	bus.Write(base+2, tile)
	bus.Write(base+3, attrs)
}

func TestScanOAMCapsAtTenSprites(t *testing.T) {
	bus := memory.New()
	for i := 0; i < 15; i++ {
		writeSprite(bus, i, 20, i, 0, 0)
	}

	selected := scanOAM(bus, 20, false)

	if len(selected) != 10 {
		t.Fatalf("selected %d sprites, want 10", len(selected))
	}
	for i, s := range selected {
		if s.index != i {
			t.Errorf("selected[%d].index = %d, want %d (OAM order preserved)", i, s.index, i)
		}
	}
}

func TestScanOAMExcludesSpritesOffScanline(t *testing.T) {
	bus := memory.New()
	writeSprite(bus, 0, 20, 0, 0, 0) // covers lines 20-27 in 8px mode
	writeSprite(bus, 1, 50, 0, 0, 0)

	selected := scanOAM(bus, 20, false)
	if len(selected) != 1 || selected[0].index != 0 {
		t.Fatalf("expected only sprite 0 visible on line 20, got %v", selected)
	}

	selected = scanOAM(bus, 27, false)
	if len(selected) != 1 || selected[0].index != 0 {
		t.Fatalf("expected sprite 0 still visible on its last line (27), got %v", selected)
	}

	selected = scanOAM(bus, 28, false)
	if len(selected) != 0 {
		t.Fatalf("expected no sprites visible on line 28, got %v", selected)
	}
}

func TestScanOAMTallModeDoublesHeight(t *testing.T) {
	bus := memory.New()
	writeSprite(bus, 0, 20, 0, 0, 0)

	selected := scanOAM(bus, 35, true) // line 35 is within 20..35 in 16px mode
	if len(selected) != 1 {
		t.Fatalf("expected sprite visible at line 35 in 8x16 mode, got %v", selected)
	}
}

func TestSpriteRowPixelEightByEight(t *testing.T) {
	bus := memory.New()
	// tile 1 at 0x8000 + 16: row 0 has a single set pixel at column 0.
	bus.Write(0x8010, 0x80)
	bus.Write(0x8011, 0x00)

	s := sprite{index: 0, y: 10, x: 5, tile: 1, attrs: 0}

	raw, visible := spriteRowPixel(bus, s, 10, 8, 5)
	if !visible || raw != 1 {
		t.Errorf("spriteRowPixel at column 0 = (%d, %v), want (1, true)", raw, visible)
	}

	raw, visible = spriteRowPixel(bus, s, 10, 8, 6)
	if visible && raw != 0 {
		t.Errorf("spriteRowPixel at column 1 = (%d, %v), want transparent", raw, visible)
	}
}

func TestSpriteRowPixelTallModeForcesTileLSB(t *testing.T) {
	bus := memory.New()
	// tile index 5 is odd; in 8x16 mode the upper half forces it to 4,
	// the lower half forces it to 5. Put distinct markers in each tile.
	bus.Write(0x8000+4*16, 0x80) // tile 4, row 0, leftmost pixel set
	bus.Write(0x8000+5*16, 0x40) // tile 5, row 0, second pixel set

	s := sprite{index: 0, y: 0, x: 0, tile: 5, attrs: 0}

	// row 0 of the sprite (upper tile, forced to tile 4)
	raw, visible := spriteRowPixel(bus, s, 0, 16, 0)
	if !visible || raw != 1 {
		t.Errorf("upper half row 0 col 0 = (%d, %v), want (1, true)", raw, visible)
	}

	// row 8 of the sprite (lower tile, forced to tile 5), local row 0
	raw, visible = spriteRowPixel(bus, s, 8, 16, 1)
	if !visible || raw != 1 {
		t.Errorf("lower half row 8 col 1 = (%d, %v), want (1, true)", raw, visible)
	}
}

func TestSpriteRowPixelFlipping(t *testing.T) {
	bus := memory.New()
	bus.Write(0x8010, 0x80) // column 0 set, rest clear
	bus.Write(0x8011, 0x00)

	flippedX := sprite{index: 0, y: 0, x: 0, tile: 1, attrs: 0x20}
	raw, visible := spriteRowPixel(bus, flippedX, 0, 8, 7)
	if !visible || raw != 1 {
		t.Errorf("X-flipped sprite column 7 (maps to unflipped column 0) = (%d, %v), want (1, true)", raw, visible)
	}
}
