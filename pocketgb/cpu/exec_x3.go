package cpu

// execX3 handles the x=3 group: conditional/unconditional RET/JP/CALL,
// RST, PUSH/POP, the LDH and (nn)/(C) indirect A-loads, ADD SP,e and
// LD HL,SP+e, EI/DI, and the immediate-operand ALU forms.
func (c *CPU) execX3(y, z, p, q uint8) int {
	switch z {
	case 0:
		return c.execX3Z0(y)
	case 1:
		return c.execX3Z1(p, q)
	case 2:
		return c.execX3Z2(y)
	case 3:
		return c.execX3Z3(y)
	case 4:
		return c.execX3Z4(y)
	case 5:
		return c.execX3Z5(p, q)
	case 6:
		c.applyALU(y, c.fetch8())
		return 2
	default: // z == 7: RST y*8
		c.pushWord(c.pc.Get())
		c.pc.Set(uint16(y) * 8)
		return 4
	}
}

func (c *CPU) execX3Z0(y uint8) int {
	switch y {
	case 0, 1, 2, 3:
		if c.checkCond(y) {
			c.pc.Set(c.popWord())
			return 5
		}
		return 2
	case 4: // LDH (n),A
		n := c.fetch8()
		c.bus.Write(0xFF00+uint16(n), c.af.High())
		return 3
	case 5: // ADD SP,e
		e := int8(c.fetch8())
		c.sp.Set(c.addSPSigned(e))
		return 4
	case 6: // LDH A,(n)
		n := c.fetch8()
		c.af.SetHigh(c.bus.Read(0xFF00 + uint16(n)))
		return 3
	default: // LD HL,SP+e
		e := int8(c.fetch8())
		c.hl.Set(c.addSPSigned(e))
		return 3
	}
}

func (c *CPU) execX3Z1(p, q uint8) int {
	if q == 0 {
		c.setRP2(p, c.popWord())
		return 3
	}

	switch p {
	case 0: // RET
		c.pc.Set(c.popWord())
		return 4
	case 1: // RETI
		c.pc.Set(c.popWord())
		c.ime = true
		c.eiDelay = 0
		return 4
	case 2: // JP HL
		c.pc.Set(c.hl.Get())
		return 1
	default: // LD SP,HL
		c.sp.Set(c.hl.Get())
		return 2
	}
}

func (c *CPU) execX3Z2(y uint8) int {
	switch y {
	case 0, 1, 2, 3:
		addr := c.fetch16()
		if c.checkCond(y) {
			c.pc.Set(addr)
			return 4
		}
		return 3
	case 4: // LD (C),A
		c.bus.Write(0xFF00+uint16(c.bc.Low()), c.af.High())
		return 2
	case 5: // LD (nn),A
		addr := c.fetch16()
		c.bus.Write(addr, c.af.High())
		return 4
	case 6: // LD A,(C)
		c.af.SetHigh(c.bus.Read(0xFF00 + uint16(c.bc.Low())))
		return 2
	default: // LD A,(nn)
		addr := c.fetch16()
		c.af.SetHigh(c.bus.Read(addr))
		return 4
	}
}

func (c *CPU) execX3Z3(y uint8) int {
	switch y {
	case 0: // JP nn
		addr := c.fetch16()
		c.pc.Set(addr)
		return 4
	case 6: // DI
		c.ime = false
		c.eiDelay = 0
		return 1
	case 7: // EI: takes effect after the next instruction completes
		c.eiDelay = 2
		return 1
	default:
		// y==1 is the CB prefix, handled in step(); y==2..5 are the
		// illegal opcodes, already filtered out before dispatch.
		return 1
	}
}

func (c *CPU) execX3Z4(y uint8) int {
	addr := c.fetch16()
	if y <= 3 && c.checkCond(y) {
		c.pushWord(c.pc.Get())
		c.pc.Set(addr)
		return 6
	}
	return 3
}

func (c *CPU) execX3Z5(p, q uint8) int {
	if q == 0 {
		c.pushWord(c.getRP2(p))
		return 4
	}
	if p == 0 { // CALL nn
		addr := c.fetch16()
		c.pushWord(c.pc.Get())
		c.pc.Set(addr)
		return 6
	}
	// p==1..3 are illegal opcodes, filtered before dispatch.
	return 1
}
