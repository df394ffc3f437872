package cpu

import (
	"github.com/hollowcrest/pocketgb/pocketgb/bit"
	"github.com/hollowcrest/pocketgb/pocketgb/memory"
)

// Flag bit positions within F (the low byte of AF).
const (
	flagZ uint8 = 7
	flagN uint8 = 6
	flagH uint8 = 5
	flagC uint8 = 4
)

// State is the CPU's run state.
type State int

const (
	Running State = iota
	Halted
	Stopped
)

// IllegalOpcodeError is returned (via Fault) when the fetch-decode
// loop hits one of the 11 opcodes the instruction set never defines.
type IllegalOpcodeError struct {
	PC     uint16
	Opcode byte
}

func (e *IllegalOpcodeError) Error() string {
	return "cpu: illegal opcode"
}

// CPU holds SM83 register state and drives fetch-decode-execute.
type CPU struct {
	af, bc, de, hl Register16
	sp, pc         Register16

	ime     bool
	eiDelay int

	state     State
	remaining int

	bus *memory.Bus

	// Fault is set when StepCycle encounters an illegal opcode; once
	// set, the CPU stops advancing PC and subsequent StepCycle calls
	// are no-ops. The scheduler is expected to check this after every
	// call and abort the run.
	Fault *IllegalOpcodeError
}

// New creates a CPU wired to the given bus, in its post-reset state.
func New(bus *memory.Bus) *CPU {
	c := &CPU{bus: bus}
	c.Reset()
	return c
}

// Reset restores registers to their power-on values.
func (c *CPU) Reset() {
	c.af = 0
	c.bc = 0
	c.de = 0
	c.hl = 0
	c.sp = 0xFFFE
	c.pc = 0
	c.ime = true
	c.eiDelay = 0
	c.state = Running
	c.remaining = 0
	c.Fault = nil
}

func (c *CPU) PC() uint16 { return c.pc.Get() }
func (c *CPU) SP() uint16 { return c.sp.Get() }
func (c *CPU) AF() uint16 { return c.af.Get() }
func (c *CPU) BC() uint16 { return c.bc.Get() }
func (c *CPU) DE() uint16 { return c.de.Get() }
func (c *CPU) HL() uint16 { return c.hl.Get() }
func (c *CPU) IME() bool  { return c.ime }
func (c *CPU) State() State { return c.state }

func (c *CPU) flag(flagBit uint8) bool {
	return bit.IsSet(flagBit, c.af.Low())
}

func (c *CPU) setFlag(flagBit uint8, set bool) {
	f := c.af.Low()
	if set {
		f = bit.Set(flagBit, f)
	} else {
		f = bit.Reset(flagBit, f)
	}
	c.af.SetLow(f & 0xF0)
}

func (c *CPU) setAF(v uint16) {
	c.af.Set(v & 0xFFF0)
}

// StepCycle advances the CPU by exactly one machine cycle: either
// consuming one more cycle of an in-flight instruction, or, at an
// instruction boundary, processing the EI delay, attempting interrupt
// service, and (if still running) fetching and executing the next
// instruction.
func (c *CPU) StepCycle() {
	if c.Fault != nil {
		return
	}

	if c.remaining > 0 {
		c.remaining--
		return
	}

	if c.eiDelay > 0 {
		c.eiDelay--
		if c.eiDelay == 0 {
			c.ime = true
		}
	}

	if c.serviceInterrupt() {
		return
	}

	if c.state != Running {
		return
	}

	cycles := c.step()
	if cycles <= 0 {
		cycles = 1
	}
	c.remaining = cycles - 1
}

// serviceInterrupt checks IE & IF and, if IME allows it, pushes PC and
// jumps to the highest-priority pending vector. It also handles the
// halted-CPU wakeup rule: a pending interrupt always exits Halted,
// even when IME is clear (in which case it is not serviced here).
func (c *CPU) serviceInterrupt() bool {
	pending := c.bus.IE() & c.bus.IF() & 0x1F

	if c.state == Halted {
		if pending != 0 {
			c.state = Running
		} else {
			return false
		}
	}

	if !c.ime || pending == 0 {
		return false
	}

	for irq := uint8(0); irq < 5; irq++ {
		if !bit.IsSet(irq, pending) {
			continue
		}
		c.ime = false
		c.bus.ClearIFBit(irq)
		c.pushWord(c.pc.Get())
		c.pc.Set(vectorFor(irq))
		c.remaining = 5 - 1
		return true
	}
	return false
}

func vectorFor(irq uint8) uint16 {
	switch irq {
	case 0:
		return 0x40
	case 1:
		return 0x48
	case 2:
		return 0x50
	case 3:
		return 0x58
	case 4:
		return 0x60
	default:
		panic("cpu: invalid interrupt bit")
	}
}

func (c *CPU) fetch8() uint8 {
	v := c.bus.Read(c.pc.Get())
	c.pc.Incr()
	return v
}

func (c *CPU) fetch16() uint16 {
	low := c.fetch8()
	high := c.fetch8()
	return bit.Combine(high, low)
}

func (c *CPU) pushWord(v uint16) {
	c.sp.Decr()
	c.bus.Write(c.sp.Get(), uint8(v>>8))
	c.sp.Decr()
	c.bus.Write(c.sp.Get(), uint8(v))
}

func (c *CPU) popWord() uint16 {
	low := c.bus.Read(c.sp.Get())
	c.sp.Incr()
	high := c.bus.Read(c.sp.Get())
	c.sp.Incr()
	return bit.Combine(high, low)
}
