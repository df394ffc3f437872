package memory

import "github.com/hollowcrest/pocketgb/pocketgb/bit"

// Button identifies one of the 8 physical buttons.
type Button uint8

const (
	ButtonRight Button = iota
	ButtonLeft
	ButtonUp
	ButtonDown
	ButtonA
	ButtonB
	ButtonSelect
	ButtonStart
)

// Joypad tracks the live (pressed/released) state of all 8 buttons and
// renders the P1 register according to the selection bits last written
// by the CPU. 0 means pressed, matching hardware polarity.
type Joypad struct {
	dpad    uint8 // bits 0-3: right,left,up,down
	buttons uint8 // bits 0-3: a,b,select,start
	select_ uint8 // bits 4-5 as last written to P1

	RequestInterrupt func()
}

func NewJoypad() *Joypad {
	return &Joypad{dpad: 0x0F, buttons: 0x0F}
}

// WriteSelect updates the selection bits (4-5) written by the CPU.
func (j *Joypad) WriteSelect(value uint8) {
	j.select_ = value & 0x30
}

// Read renders the current P1 value: selection bits as last written,
// with the low nibble reflecting live button state gated by selection.
func (j *Joypad) Read() uint8 {
	result := uint8(0xC0) | j.select_

	selectButtons := j.select_&0x20 == 0
	selectDpad := j.select_&0x10 == 0

	switch {
	case selectButtons && selectDpad:
		result |= j.buttons & j.dpad & 0x0F
	case selectButtons:
		result |= j.buttons & 0x0F
	case selectDpad:
		result |= j.dpad & 0x0F
	default:
		result |= 0x0F
	}

	return result
}

// SetButton updates the live state of a single button. A release-to-press
// transition on a currently-selected half requests the joypad interrupt.
func (j *Joypad) SetButton(b Button, pressed bool) {
	var group *uint8
	var bitPos uint8
	var gated bool

	switch b {
	case ButtonRight, ButtonLeft, ButtonUp, ButtonDown:
		group = &j.dpad
		bitPos = uint8(b)
		gated = j.select_&0x10 == 0
	case ButtonA, ButtonB, ButtonSelect, ButtonStart:
		group = &j.buttons
		bitPos = uint8(b - ButtonA)
		gated = j.select_&0x20 == 0
	default:
		return
	}

	was := !bit.IsSet(bitPos, *group)
	if pressed {
		*group = bit.Reset(bitPos, *group)
	} else {
		*group = bit.Set(bitPos, *group)
	}
	isNow := !bit.IsSet(bitPos, *group)

	if gated && !was && isNow && j.RequestInterrupt != nil {
		j.RequestInterrupt()
	}
}
