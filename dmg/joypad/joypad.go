// Package joypad implements the P1 button matrix register.
package joypad

import (
	"sync/atomic"

	"github.com/valerio/go-dmg/dmg/irq"
)

// Key is one of the eight Game Boy keys.
type Key uint8

const (
	Right Key = iota
	Left
	Up
	Down
	A
	B
	Select
	Start
)

// KeySet is the set of currently pressed keys, one bit per Key.
type KeySet uint8

// With returns the set with a key added.
func (s KeySet) With(k Key) KeySet { return s | 1<<k }

// Has reports whether a key is in the set.
func (s KeySet) Has(k Key) bool { return s&(1<<k) != 0 }

// Without returns the set with a key removed.
func (s KeySet) Without(k Key) KeySet { return s &^ (1 << k) }

// Joypad exposes the two 4-bit matrix rows through P1. The host publishes
// pressed-key snapshots from any thread with an atomic store; the core
// latches the snapshot at the next machine-cycle tick.
type Joypad struct {
	pressed atomic.Uint32 // KeySet snapshot published by the host

	dpad    uint8 // latched direction row, 1 = not pressed
	buttons uint8 // latched button row, 1 = not pressed
	sel     uint8 // P1 bits 4-5 as written by the CPU

	irq irq.Requester
}

// New creates a joypad that raises its interrupt on the given requester.
func New(requester irq.Requester) *Joypad {
	j := &Joypad{irq: requester}
	j.Reset()
	return j
}

// Reset restores the power-on state. The pressed-key snapshot is kept: keys
// physically held by the user stay held across a reset.
func (j *Joypad) Reset() {
	j.dpad = 0x0F
	j.buttons = 0x0F
	j.sel = 0x30
}

// UpdatePressedKeys publishes a new pressed-key snapshot. Safe to call from
// any thread.
func (j *Joypad) UpdatePressedKeys(keys KeySet) {
	j.pressed.Store(uint32(keys))
}

// TickMachineCycle latches the current snapshot into the matrix rows and
// requests the Joypad interrupt on a press transition in the selected row.
func (j *Joypad) TickMachineCycle() {
	keys := KeySet(j.pressed.Load())

	dpad := uint8(0x0F) &^ (uint8(keys) & 0x0F)
	buttons := uint8(0x0F) &^ (uint8(keys) >> 4)

	// A bit going 1 -> 0 in a selected row is a fresh key press.
	var transitions uint8
	if j.sel&0x10 == 0 {
		transitions |= j.dpad &^ dpad
	}
	if j.sel&0x20 == 0 {
		transitions |= j.buttons &^ buttons
	}

	j.dpad = dpad
	j.buttons = buttons

	if transitions != 0 {
		j.irq.Request(irq.Joypad)
	}
}

// ReadIO serves the P1 register. Unselected rows and bits 6-7 read as 1.
func (j *Joypad) ReadIO(uint16) byte {
	result := uint8(0xC0) | j.sel

	selectDpad := j.sel&0x10 == 0
	selectButtons := j.sel&0x20 == 0

	switch {
	case selectDpad && selectButtons:
		result |= j.dpad & j.buttons
	case selectDpad:
		result |= j.dpad
	case selectButtons:
		result |= j.buttons
	default:
		result |= 0x0F
	}

	return result
}

// WriteIO serves the P1 register. Only the selection bits 4-5 are writable.
func (j *Joypad) WriteIO(_ uint16, value byte) {
	j.sel = value & 0x30
}
