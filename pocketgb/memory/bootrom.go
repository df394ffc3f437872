package memory

// bootROM is a minimal 256-byte startup program overlaid at 0000-00FF
// until FF50 is written. It does not attempt to reproduce the
// console's original proprietary firmware (logo scroll, checksum
// verification); it simply unmaps itself and hands control to the
// cartridge entry point at 0100, which is the only externally
// observable contract components outside the CPU rely on.
var bootROM = func() [256]byte {
	var rom [256]byte
	program := []byte{
		0x3E, 0x01, // LD A, 0x01
		0xE0, 0x50, // LDH (FF50), A  -- unmap the boot overlay
		0xC3, 0x00, 0x01, // JP 0x0100   -- hand off to the cartridge
	}
	copy(rom[:], program)
	return rom
}()
