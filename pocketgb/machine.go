// Package pocketgb composes the CPU, memory bus, and PPU into a
// runnable machine, driving them at the shared 1 MHz machine-cycle
// tick described by the hardware.
package pocketgb

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/hollowcrest/pocketgb/pocketgb/cpu"
	"github.com/hollowcrest/pocketgb/pocketgb/memory"
	"github.com/hollowcrest/pocketgb/pocketgb/video"
)

// Button identifies one of the eight physical inputs.
type Button int

const (
	Right Button = iota
	Left
	Up
	Down
	A
	B
	Select
	Start
)

func (b Button) joypadButton() memory.Button {
	switch b {
	case Right:
		return memory.ButtonRight
	case Left:
		return memory.ButtonLeft
	case Up:
		return memory.ButtonUp
	case Down:
		return memory.ButtonDown
	case A:
		return memory.ButtonA
	case B:
		return memory.ButtonB
	case Select:
		return memory.ButtonSelect
	default:
		return memory.ButtonStart
	}
}

// CyclesPerFrame is the nominal machine-cycle budget of one frame:
// 154 scanlines * 456 dots, in machine-cycle (4-dot) units.
const CyclesPerFrame = 154 * 456 / 4

// Machine is the emulator core: bus, CPU, and PPU wired together and
// advanced one machine cycle at a time.
type Machine struct {
	Bus *memory.Bus
	CPU *cpu.CPU
	PPU *video.PPU
}

// New creates a machine with the given cartridge image loaded.
func New(romData []byte) (*Machine, error) {
	bus, err := memory.NewWithCartridge(romData)
	if err != nil {
		return nil, err
	}

	title := memory.Title(romData)
	slog.Debug("cartridge loaded", "title", title, "size", len(romData))

	m := &Machine{
		Bus: bus,
		CPU: cpu.New(bus),
		PPU: video.New(),
	}
	return m, nil
}

// NewFromFile reads a cartridge image from disk and creates a machine
// for it.
func NewFromFile(path string) (*Machine, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &memory.ErrCartridgeLoad{Reason: err.Error()}
	}
	return New(data)
}

// Reset returns the machine to its post-power-on state: registers
// zeroed except SP/PC, IME true, boot overlay active.
func (m *Machine) Reset() {
	m.Bus.Reset()
	m.CPU.Reset()
	m.PPU = video.New()
}

// StepCycle advances the whole machine by exactly one machine cycle,
// in the canonical order: DMA step, one CPU cycle, timer advance,
// four PPU dots. This order is load-bearing — tests depend on it.
// There is no separate joypad step: P1 is composed from the live
// button state whenever it is read.
func (m *Machine) StepCycle() {
	m.Bus.DMA.Step(m.Bus)
	m.CPU.StepCycle()
	m.Bus.Timer.Tick()
	for i := 0; i < 4; i++ {
		m.PPU.TickDot(m.Bus)
	}
}

// RunUntilVBlank steps the machine until the PPU completes a frame
// (enters VBlank for line 144), or the CPU faults on an illegal
// opcode. It returns the CPU's fault, if any.
func (m *Machine) RunUntilVBlank() error {
	for {
		m.StepCycle()
		if m.CPU.Fault != nil {
			return m.CPU.Fault
		}
		if m.PPU.ConsumeFrameReady() {
			return nil
		}
	}
}

// SetButton updates the live state of one of the eight inputs. A
// released-to-pressed transition on a currently-selected half raises
// the joypad interrupt.
func (m *Machine) SetButton(b Button, pressed bool) {
	m.Bus.Joypad.SetButton(b.joypadButton(), pressed)
}

// Framebuffer returns the most recently rendered frame.
func (m *Machine) Framebuffer() *video.FrameBuffer {
	return &m.PPU.FrameBuffer
}

// Fault returns the CPU's illegal-opcode fault, if the machine has
// halted on one.
func (m *Machine) Fault() error {
	if m.CPU.Fault == nil {
		return nil
	}
	return m.CPU.Fault
}

// Diagnostic formats a human-readable description of a fatal core
// error, for the driver to print before exiting non-zero.
func Diagnostic(err error) string {
	return fmt.Sprintf("fatal: %v", err)
}
