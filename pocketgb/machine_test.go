package pocketgb

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hollowcrest/pocketgb/pocketgb/addr"
)

func testROM() []byte {
	rom := make([]byte, 32*1024)
	program := []byte{
		0x3E, 0x91, // LD A, 0x91       (LCD on, BG on, unsigned tiles)
		0xE0, 0x40, // LDH (FF40), A
		0xC3, 0x00, 0x01, // JP 0x0100  -- spin forever with the LCD running
	}
	copy(rom[0x0100:], program)
	return rom
}

func TestNewLoadsCartridgeAndWiresComponents(t *testing.T) {
	m, err := New(testROM())
	require.NoError(t, err)

	assert.NotNil(t, m.Bus, "Bus should be wired")
	assert.NotNil(t, m.CPU, "CPU should be wired")
	assert.NotNil(t, m.PPU, "PPU should be wired")
}

func TestRunUntilVBlankCompletesAFrame(t *testing.T) {
	m, err := New(testROM())
	require.NoError(t, err)

	require.NoError(t, m.RunUntilVBlank())
	assert.EqualValues(t, 1, m.PPU.Mode(), "PPU mode after RunUntilVBlank should be VBlank")
}

func TestRunUntilVBlankReturnsFaultOnIllegalOpcode(t *testing.T) {
	rom := make([]byte, 32*1024)
	rom[0x0100] = 0xD3 // illegal opcode
	m, err := New(rom)
	require.NoError(t, err)

	err = m.RunUntilVBlank()
	require.Error(t, err, "expected a fault from the illegal opcode")
	assert.Error(t, m.Fault(), "Fault() should report the same error after a faulted run")
}

func TestResetRestoresPostPowerOnState(t *testing.T) {
	m, err := New(testROM())
	require.NoError(t, err)

	for i := 0; i < 10_000; i++ {
		m.StepCycle()
	}

	m.Reset()

	assert.EqualValues(t, 0, m.CPU.PC(), "PC after Reset")
	assert.EqualValues(t, 0xFFFE, m.CPU.SP(), "SP after Reset")
	assert.True(t, m.Bus.InBootOverlay(), "boot overlay should be active again after Reset")
	assert.EqualValues(t, 0, m.PPU.LY(), "PPU LY after Reset")
}

func TestSetButtonRequestsJoypadInterrupt(t *testing.T) {
	m, err := New(testROM())
	require.NoError(t, err)

	m.SetButton(A, true)

	assert.NotZero(t, m.Bus.IF()&(1<<addr.Joypad.Bit()), "pressing a button should request the joypad interrupt")
}

func TestFramebufferReturnsLivePPUBuffer(t *testing.T) {
	m, err := New(testROM())
	require.NoError(t, err)

	assert.Same(t, &m.PPU.FrameBuffer, m.Framebuffer(), "Framebuffer() should return a pointer to the PPU's live buffer")
}
