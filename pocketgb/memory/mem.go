// Package memory implements the console's flat 16-bit address space:
// the Bus that decodes and routes accesses, the cartridge memory bank
// controllers, and the small I/O-adjacent units (timer, joypad, DMA)
// whose registers live inside that space.
package memory

import (
	"github.com/hollowcrest/pocketgb/pocketgb/addr"
	"github.com/hollowcrest/pocketgb/pocketgb/bit"
)

// Bus is the console's memory map. It owns all directly-backed RAM
// regions and delegates to the cartridge MBC and the small peripheral
// units for their mapped registers.
type Bus struct {
	mbc MBC

	vram [0x2000]byte
	wram [0x2000]byte
	oam  [0xA0]byte
	io   [0x80]byte
	hram [0x7F]byte
	ie   byte

	inBoot bool

	Timer  Timer
	Joypad Joypad
	DMA    DMA

	requestInterrupt func(addr.Interrupt)
}

// New creates a bus with no cartridge installed (reads as 0xFF).
func New() *Bus {
	b := &Bus{inBoot: true}
	b.Timer = *NewTimer()
	b.Joypad = *NewJoypad()
	b.Timer.RequestInterrupt = func() { b.RequestInterrupt(addr.Timer) }
	b.Joypad.RequestInterrupt = func() { b.RequestInterrupt(addr.Joypad) }
	return b
}

// NewWithCartridge creates a bus backed by the given cartridge image.
func NewWithCartridge(romData []byte) (*Bus, error) {
	b := New()
	mbc, err := NewCartridgeMBC(romData)
	if err != nil {
		return nil, err
	}
	b.mbc = mbc
	return b, nil
}

// RequestInterrupt sets the corresponding bit in IF.
func (b *Bus) RequestInterrupt(i addr.Interrupt) {
	b.io[addr.IF-0xFF00] = bitSet(b.io[addr.IF-0xFF00], i.Bit())
}

func bitSet(v byte, pos uint8) byte   { return v | (1 << pos) }
func bitClear(v byte, pos uint8) byte { return v &^ (1 << pos) }

// ClearIFBit clears a single interrupt's pending bit, used by the CPU
// once it has begun servicing that interrupt.
func (b *Bus) ClearIFBit(pos uint8) {
	b.io[addr.IF-0xFF00] = bitClear(b.io[addr.IF-0xFF00], pos)
}

// IE returns the interrupt enable mask.
func (b *Bus) IE() byte { return b.ie }

// IF returns the interrupt pending flags, with the unused top 3 bits
// read as 1.
func (b *Bus) IF() byte { return b.io[addr.IF-0xFF00] | 0xE0 }

func (b *Bus) Read(address uint16) byte {
	switch {
	case address <= 0x00FF && b.inBoot:
		return bootROM[address]
	case address <= 0x7FFF:
		if b.mbc == nil {
			return 0xFF
		}
		return b.mbc.Read(address)
	case address <= 0x9FFF:
		return b.vram[address-0x8000]
	case address <= 0xBFFF:
		if b.mbc == nil {
			return 0xFF
		}
		return b.mbc.ReadRAM(address - 0xA000)
	case address <= 0xDFFF:
		return b.wram[address-0xC000]
	case address <= 0xFDFF:
		return b.wram[address-0xE000]
	case address <= 0xFE9F:
		return b.oam[address-0xFE00]
	case address <= 0xFEFF:
		return 0xFF
	case address == addr.P1:
		return b.Joypad.Read()
	case address == addr.DIV, address == addr.TIMA, address == addr.TMA, address == addr.TAC:
		return b.Timer.Read(address)
	case address == addr.IF:
		return b.IF()
	case address <= 0xFF7F:
		return b.io[address-0xFF00]
	case address <= 0xFFFE:
		return b.hram[address-0xFF80]
	case address == addr.IE:
		return b.ie
	default:
		return 0xFF
	}
}

func (b *Bus) Write(address uint16, value byte) {
	switch {
	case address <= 0x7FFF:
		if b.mbc != nil {
			b.mbc.Write(address, value)
		}
	case address <= 0x9FFF:
		b.vram[address-0x8000] = value
	case address <= 0xBFFF:
		if b.mbc != nil {
			b.mbc.WriteRAM(address-0xA000, value)
		}
	case address <= 0xDFFF:
		b.wram[address-0xC000] = value
	case address <= 0xFDFF:
		b.wram[address-0xE000] = value
	case address <= 0xFE9F:
		if b.DMA.Active() {
			return
		}
		b.oam[address-0xFE00] = value
	case address <= 0xFEFF:
		// unusable region: writes ignored
	case address == addr.P1:
		b.Joypad.WriteSelect(value)
	case address == addr.DIV, address == addr.TIMA, address == addr.TMA, address == addr.TAC:
		b.Timer.Write(address, value)
	case address == addr.IF:
		b.io[address-0xFF00] = value & 0x1F
	case address == addr.LY:
		// read-only on real hardware: the PPU is the sole writer, via PokeIO.
	case address == addr.STAT:
		b.io[address-0xFF00] = b.io[address-0xFF00]&0x07 | value&0xF8
	case address == addr.DMA:
		b.io[address-0xFF00] = value
		b.DMA.Request(value)
	case address == addr.BootOff:
		b.io[address-0xFF00] = value
		if value != 0 {
			b.inBoot = false
		}
	case address <= 0xFF7F:
		b.io[address-0xFF00] = value
	case address <= 0xFFFE:
		b.hram[address-0xFF80] = value
	case address == addr.IE:
		b.ie = value
	}
}

// PokeIO writes directly into the I/O register backing array, bypassing
// the CPU-facing write semantics above. It exists for PPU-owned
// registers (LY, the STAT mode/coincidence bits) that the CPU cannot
// write but the PPU must update every dot.
func (b *Bus) PokeIO(address uint16, value uint8) {
	b.io[address-0xFF00] = value
}

func (b *Bus) ReadWord(address uint16) uint16 {
	low := b.Read(address)
	high := b.Read(address + 1)
	return bit.Combine(high, low)
}

func (b *Bus) WriteWord(address uint16, value uint16) {
	b.Write(address, byte(value))
	b.Write(address+1, byte(value>>8))
}

// InBootOverlay reports whether 0000-00FF currently serves the boot
// ROM rather than cartridge ROM.
func (b *Bus) InBootOverlay() bool { return b.inBoot }

// Reset restores the bus to its post-creation state, keeping the
// currently loaded cartridge.
func (b *Bus) Reset() {
	b.vram = [0x2000]byte{}
	b.wram = [0x2000]byte{}
	b.oam = [0xA0]byte{}
	b.io = [0x80]byte{}
	b.hram = [0x7F]byte{}
	b.ie = 0
	b.inBoot = true
	b.Timer = *NewTimer()
	b.Joypad = *NewJoypad()
	b.DMA = DMA{}
	b.Timer.RequestInterrupt = func() { b.RequestInterrupt(addr.Timer) }
	b.Joypad.RequestInterrupt = func() { b.RequestInterrupt(addr.Joypad) }
}
