package cpu

// execX1 handles the x=1 group: 8-bit register-to-register loads,
// including the (HL) forms, with the single exception that the
// LD (HL),(HL) encoding is repurposed as HALT.
func (c *CPU) execX1(y, z uint8) int {
	if y == 6 && z == 6 {
		c.state = Halted
		return 1
	}

	c.setR(y, c.getR(z))
	if y == 6 || z == 6 {
		return 2
	}
	return 1
}

// execX2 handles the x=2 group: the 8-bit ALU operations against A,
// operand r[z].
func (c *CPU) execX2(y, z uint8) int {
	c.applyALU(y, c.getR(z))
	if z == 6 {
		return 2
	}
	return 1
}
