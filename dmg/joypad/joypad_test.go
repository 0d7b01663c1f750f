package joypad

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/valerio/go-dmg/dmg/addr"
	"github.com/valerio/go-dmg/dmg/irq"
)

func newTestJoypad() (*Joypad, *irq.Controller) {
	ctrl := &irq.Controller{}
	return New(ctrl), ctrl
}

func joypadInterruptRequested(ctrl *irq.Controller) bool {
	return ctrl.ReadFlags()&(1<<irq.Joypad) != 0
}

func TestJoypad_noSelection(t *testing.T) {
	j, _ := newTestJoypad()

	// both rows deselected: low bits read high
	j.WriteIO(addr.JOYP, 0x30)
	assert.Equal(t, byte(0xFF), j.ReadIO(addr.JOYP))
}

func TestJoypad_readSelectedRows(t *testing.T) {
	j, _ := newTestJoypad()

	j.UpdatePressedKeys(KeySet(0).With(Right).With(A))
	j.TickMachineCycle()

	// dpad selected (bit 4 low): Right pressed reads as bit 0 low
	j.WriteIO(addr.JOYP, 0x20)
	assert.Equal(t, byte(0xEE), j.ReadIO(addr.JOYP))

	// buttons selected (bit 5 low): A pressed reads as bit 0 low
	j.WriteIO(addr.JOYP, 0x10)
	assert.Equal(t, byte(0xDE), j.ReadIO(addr.JOYP))

	// both selected: rows are ANDed
	j.WriteIO(addr.JOYP, 0x00)
	assert.Equal(t, byte(0xCE), j.ReadIO(addr.JOYP))
}

func TestJoypad_interruptOnSelectedPress(t *testing.T) {
	j, ctrl := newTestJoypad()

	j.WriteIO(addr.JOYP, 0x20) // select dpad
	j.TickMachineCycle()

	j.UpdatePressedKeys(KeySet(0).With(Left))
	j.TickMachineCycle()

	assert.True(t, joypadInterruptRequested(ctrl))
}

func TestJoypad_noInterruptOnUnselectedRow(t *testing.T) {
	j, ctrl := newTestJoypad()

	j.WriteIO(addr.JOYP, 0x10) // select buttons only
	j.TickMachineCycle()

	j.UpdatePressedKeys(KeySet(0).With(Left)) // dpad key
	j.TickMachineCycle()

	assert.False(t, joypadInterruptRequested(ctrl))
}

func TestJoypad_noInterruptOnRelease(t *testing.T) {
	j, ctrl := newTestJoypad()

	j.WriteIO(addr.JOYP, 0x10)
	j.UpdatePressedKeys(KeySet(0).With(A))
	j.TickMachineCycle()
	ctrl.WriteFlags(0)

	j.UpdatePressedKeys(0)
	j.TickMachineCycle()

	assert.False(t, joypadInterruptRequested(ctrl))
}

func TestJoypad_snapshotLatchedAtTick(t *testing.T) {
	j, _ := newTestJoypad()
	j.WriteIO(addr.JOYP, 0x20)

	// published but not yet latched
	j.UpdatePressedKeys(KeySet(0).With(Down))
	assert.Equal(t, byte(0xEF), j.ReadIO(addr.JOYP))

	j.TickMachineCycle()
	assert.Equal(t, byte(0xE7), j.ReadIO(addr.JOYP))
}

func TestKeySet(t *testing.T) {
	s := KeySet(0).With(A).With(Start)
	assert.True(t, s.Has(A))
	assert.True(t, s.Has(Start))
	assert.False(t, s.Has(B))

	s = s.Without(A)
	assert.False(t, s.Has(A))
}
