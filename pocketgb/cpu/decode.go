package cpu

// Opcode bytes decompose into bitfields x (7-6), y (5-3), z (2-0),
// with p = y>>1 and q = y&1. This collapses the ~245 legal opcodes
// into a few dozen parameterized shapes instead of one handler per
// opcode; see http://www.z80.info/decoding.htm for the general scheme,
// adapted here to the SM83's narrower instruction set (no IX/IY, no
// block transfer group, GB-specific LDH/STOP/ADD SP,e forms).
func split(opcode byte) (x, y, z, p, q uint8) {
	x = opcode >> 6
	y = (opcode >> 3) & 0x07
	z = opcode & 0x07
	p = y >> 1
	q = y & 1
	return
}

// getR/setR implement r[y]/r[z]: B,C,D,E,H,L,(HL),A.
func (c *CPU) getR(i uint8) uint8 {
	switch i {
	case 0:
		return c.bc.High()
	case 1:
		return c.bc.Low()
	case 2:
		return c.de.High()
	case 3:
		return c.de.Low()
	case 4:
		return c.hl.High()
	case 5:
		return c.hl.Low()
	case 6:
		return c.bus.Read(c.hl.Get())
	default:
		return c.af.High()
	}
}

func (c *CPU) setR(i uint8, v uint8) {
	switch i {
	case 0:
		c.bc.SetHigh(v)
	case 1:
		c.bc.SetLow(v)
	case 2:
		c.de.SetHigh(v)
	case 3:
		c.de.SetLow(v)
	case 4:
		c.hl.SetHigh(v)
	case 5:
		c.hl.SetLow(v)
	case 6:
		c.bus.Write(c.hl.Get(), v)
	default:
		c.af.SetHigh(v)
	}
}

// getRP/setRP implement rp[p]: BC,DE,HL,SP.
func (c *CPU) getRP(p uint8) uint16 {
	switch p {
	case 0:
		return c.bc.Get()
	case 1:
		return c.de.Get()
	case 2:
		return c.hl.Get()
	default:
		return c.sp.Get()
	}
}

func (c *CPU) setRP(p uint8, v uint16) {
	switch p {
	case 0:
		c.bc.Set(v)
	case 1:
		c.de.Set(v)
	case 2:
		c.hl.Set(v)
	default:
		c.sp.Set(v)
	}
}

// getRP2/setRP2 implement rp2[p]: BC,DE,HL,AF (used by PUSH/POP).
func (c *CPU) getRP2(p uint8) uint16 {
	if p == 3 {
		return c.af.Get()
	}
	return c.getRP(p)
}

func (c *CPU) setRP2(p uint8, v uint16) {
	if p == 3 {
		c.setAF(v)
		return
	}
	c.setRP(p, v)
}

// checkCond implements cc[y]: NZ,Z,NC,C.
func (c *CPU) checkCond(y uint8) bool {
	switch y {
	case 0:
		return !c.flag(flagZ)
	case 1:
		return c.flag(flagZ)
	case 2:
		return !c.flag(flagC)
	default:
		return c.flag(flagC)
	}
}

// step fetches and executes exactly one instruction, returning its
// cost in machine cycles. It is the sole entry point used by StepCycle
// at an instruction boundary.
func (c *CPU) step() int {
	startPC := c.pc.Get()
	opcode := c.fetch8()

	if isIllegal(opcode) {
		c.Fault = &IllegalOpcodeError{PC: startPC, Opcode: opcode}
		c.pc.Set(startPC)
		return 1
	}

	if opcode == 0xCB {
		return c.stepCB()
	}

	x, y, z, p, q := split(opcode)

	switch x {
	case 0:
		return c.execX0(y, z, p, q)
	case 1:
		return c.execX1(y, z)
	case 2:
		return c.execX2(y, z)
	default:
		return c.execX3(y, z, p, q)
	}
}

func isIllegal(opcode byte) bool {
	switch opcode {
	case 0xD3, 0xDB, 0xDD, 0xE3, 0xE4, 0xEB, 0xEC, 0xED, 0xF4, 0xFC, 0xFD:
		return true
	default:
		return false
	}
}
