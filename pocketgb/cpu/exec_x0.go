package cpu

// execX0 handles the x=0 opcode group: NOP/STOP/JR/LD SP, 16-bit
// LD/ADD HL, indirect A loads through BC/DE/HL+/HL-, 16-bit INC/DEC,
// 8-bit INC/DEC/LD r,n, and the accumulator rotate/misc block.
func (c *CPU) execX0(y, z, p, q uint8) int {
	switch z {
	case 0:
		return c.execX0Z0(y)
	case 1:
		if q == 0 {
			c.setRP(p, c.fetch16())
			return 3
		}
		c.addHL(c.getRP(p))
		return 2
	case 2:
		return c.execX0Z2(p, q)
	case 3:
		if q == 0 {
			c.setRP(p, c.getRP(p)+1)
		} else {
			c.setRP(p, c.getRP(p)-1)
		}
		return 2
	case 4:
		c.setR(y, c.incR8(c.getR(y)))
		if y == 6 {
			return 3
		}
		return 1
	case 5:
		c.setR(y, c.decR8(c.getR(y)))
		if y == 6 {
			return 3
		}
		return 1
	case 6:
		c.setR(y, c.fetch8())
		if y == 6 {
			return 3
		}
		return 2
	default: // z == 7
		return c.execX0Z7(y)
	}
}

func (c *CPU) execX0Z0(y uint8) int {
	switch y {
	case 0: // NOP
		return 1
	case 1: // LD (nn),SP
		addr := c.fetch16()
		c.bus.WriteWord(addr, c.sp.Get())
		return 5
	case 2: // STOP
		c.fetch8() // STOP is followed by a padding byte on real hardware
		c.state = Stopped
		return 1
	case 3: // JR e
		e := int8(c.fetch8())
		c.pc.Set(uint16(int32(c.pc.Get()) + int32(e)))
		return 3
	default: // JR cc,e
		e := int8(c.fetch8())
		if c.checkCond(y - 4) {
			c.pc.Set(uint16(int32(c.pc.Get()) + int32(e)))
			return 3
		}
		return 2
	}
}

func (c *CPU) execX0Z2(p, q uint8) int {
	if q == 0 {
		switch p {
		case 0:
			c.bus.Write(c.bc.Get(), c.af.High())
		case 1:
			c.bus.Write(c.de.Get(), c.af.High())
		case 2:
			c.bus.Write(c.hl.Get(), c.af.High())
			c.hl.Incr()
		default:
			c.bus.Write(c.hl.Get(), c.af.High())
			c.hl.Decr()
		}
		return 2
	}

	switch p {
	case 0:
		c.af.SetHigh(c.bus.Read(c.bc.Get()))
	case 1:
		c.af.SetHigh(c.bus.Read(c.de.Get()))
	case 2:
		c.af.SetHigh(c.bus.Read(c.hl.Get()))
		c.hl.Incr()
	default:
		c.af.SetHigh(c.bus.Read(c.hl.Get()))
		c.hl.Decr()
	}
	return 2
}

func (c *CPU) execX0Z7(y uint8) int {
	a := c.af.High()
	switch y {
	case 0: // RLCA
		carry := a>>7 == 1
		a = a<<1 | a>>7
		c.setFlag(flagC, carry)
		c.setFlag(flagZ, false)
		c.setFlag(flagN, false)
		c.setFlag(flagH, false)
	case 1: // RRCA
		carry := a&1 == 1
		a = a>>1 | a<<7
		c.setFlag(flagC, carry)
		c.setFlag(flagZ, false)
		c.setFlag(flagN, false)
		c.setFlag(flagH, false)
	case 2: // RLA
		oldCarry := uint8(0)
		if c.flag(flagC) {
			oldCarry = 1
		}
		carry := a>>7 == 1
		a = a<<1 | oldCarry
		c.setFlag(flagC, carry)
		c.setFlag(flagZ, false)
		c.setFlag(flagN, false)
		c.setFlag(flagH, false)
	case 3: // RRA
		oldCarry := uint8(0)
		if c.flag(flagC) {
			oldCarry = 1
		}
		carry := a&1 == 1
		a = a>>1 | oldCarry<<7
		c.setFlag(flagC, carry)
		c.setFlag(flagZ, false)
		c.setFlag(flagN, false)
		c.setFlag(flagH, false)
	case 4: // DAA
		c.daa()
		return 1
	case 5: // CPL
		a = ^a
		c.setFlag(flagN, true)
		c.setFlag(flagH, true)
	case 6: // SCF
		c.setFlag(flagC, true)
		c.setFlag(flagN, false)
		c.setFlag(flagH, false)
	default: // CCF
		c.setFlag(flagC, !c.flag(flagC))
		c.setFlag(flagN, false)
		c.setFlag(flagH, false)
	}
	c.af.SetHigh(a)
	return 1
}
