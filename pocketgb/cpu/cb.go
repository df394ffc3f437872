package cpu

import "github.com/hollowcrest/pocketgb/pocketgb/bit"

// stepCB decodes and executes a CB-prefixed opcode: rotate/shift group,
// BIT, RES, SET, each parameterized over r[z] by the same x/y/z split
// used for unprefixed opcodes.
func (c *CPU) stepCB() int {
	opcode := c.fetch8()
	x, y, z, _, _ := split(opcode)

	switch x {
	case 0:
		v := c.rot(y, c.getR(z))
		c.setR(z, v)
		if z == 6 {
			return 4
		}
		return 2
	case 1: // BIT y,r[z]
		v := c.getR(z)
		c.setFlag(flagZ, !bit.IsSet(y, v))
		c.setFlag(flagN, false)
		c.setFlag(flagH, true)
		if z == 6 {
			return 3
		}
		return 2
	case 2: // RES y,r[z]
		c.setR(z, bit.Reset(y, c.getR(z)))
		if z == 6 {
			return 4
		}
		return 2
	default: // SET y,r[z]
		c.setR(z, bit.Set(y, c.getR(z)))
		if z == 6 {
			return 4
		}
		return 2
	}
}

// rot applies rotate/shift operation y to v, updating flags, and
// returns the new value. y: 0=RLC,1=RRC,2=RL,3=RR,4=SLA,5=SRA,6=SWAP,7=SRL.
func (c *CPU) rot(y uint8, v uint8) uint8 {
	var result uint8
	var carry bool

	switch y {
	case 0: // RLC
		carry = v>>7 == 1
		result = v<<1 | v>>7
	case 1: // RRC
		carry = v&1 == 1
		result = v>>1 | v<<7
	case 2: // RL
		oldCarry := uint8(0)
		if c.flag(flagC) {
			oldCarry = 1
		}
		carry = v>>7 == 1
		result = v<<1 | oldCarry
	case 3: // RR
		oldCarry := uint8(0)
		if c.flag(flagC) {
			oldCarry = 1
		}
		carry = v&1 == 1
		result = v>>1 | oldCarry<<7
	case 4: // SLA
		carry = v>>7 == 1
		result = v << 1
	case 5: // SRA
		carry = v&1 == 1
		result = v>>1 | v&0x80
	case 6: // SWAP
		result = v<<4 | v>>4
		carry = false
	default: // SRL
		carry = v&1 == 1
		result = v >> 1
	}

	c.setFlag(flagC, carry)
	c.setFlag(flagZ, result == 0)
	c.setFlag(flagN, false)
	c.setFlag(flagH, false)
	return result
}
