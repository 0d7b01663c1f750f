// Package timer implements the DIV/TIMA/TMA/TAC counters.
package timer

import (
	"github.com/valerio/go-dmg/dmg/addr"
	"github.com/valerio/go-dmg/dmg/bit"
	"github.com/valerio/go-dmg/dmg/irq"
)

// Timer is driven by the run loop one machine cycle at a time. DIV is the
// upper byte of an internal 16-bit counter incremented every T-cycle; TIMA
// increments on a falling edge of the counter bit selected by TAC.
type Timer struct {
	counter uint16 // internal 16-bit counter, DIV is its upper 8 bits
	lastBit bool   // previous state of the selected bit, for edge detection

	tima byte
	tma  byte
	tac  byte

	reloadDelay int // T-cycles left until TIMA is reloaded from TMA

	irq irq.Requester
}

// New creates a timer that raises its interrupts on the given requester.
func New(requester irq.Requester) *Timer {
	return &Timer{irq: requester}
}

// Reset restores the power-on state, keeping the divider seed.
func (t *Timer) Reset(seed uint16) {
	t.counter = seed
	t.lastBit = false
	t.tima = 0
	t.tma = 0
	t.tac = 0
	t.reloadDelay = 0
}

// SetSeed initializes the internal divider counter.
func (t *Timer) SetSeed(seed uint16) {
	t.counter = seed
	t.lastBit = t.selectedBit()
}

// TickMachineCycle advances the timer by one machine cycle (4 T-cycles).
func (t *Timer) TickMachineCycle() {
	t.Tick(4)
}

// Tick advances the timer by the given number of T-cycles.
func (t *Timer) Tick(cycles int) {
	for i := 0; i < cycles; i++ {
		t.counter++

		if t.reloadDelay > 0 {
			t.reloadDelay--
			if t.reloadDelay == 0 {
				// TMA lands in TIMA and the interrupt is requested on the
				// same cycle.
				t.tima = t.tma
				t.irq.Request(irq.Timer)
			}
			continue
		}

		current := t.selectedBit()
		if t.lastBit && !current {
			t.incrementTIMA()
		}
		t.lastBit = current
	}
}

// selectedBit returns the state of the counter bit picked by TAC, gated by
// the TAC enable bit.
func (t *Timer) selectedBit() bool {
	if t.tac&0x04 == 0 {
		return false
	}

	var position uint8
	switch t.tac & 0x03 {
	case 0x00:
		position = 9 // 4096 Hz
	case 0x01:
		position = 3 // 262144 Hz
	case 0x02:
		position = 5 // 65536 Hz
	case 0x03:
		position = 7 // 16384 Hz
	}

	return bit.IsSet16(position, t.counter)
}

func (t *Timer) incrementTIMA() {
	if t.tima == 0xFF {
		// Overflow: TIMA reads 0 for 4 T-cycles, then TMA is loaded.
		t.tima = 0
		t.reloadDelay = 4
		return
	}
	t.tima++
}

// ReadIO serves the timer registers.
func (t *Timer) ReadIO(address uint16) byte {
	switch address {
	case addr.DIV:
		return byte(t.counter >> 8)
	case addr.TIMA:
		return t.tima
	case addr.TMA:
		return t.tma
	case addr.TAC:
		return t.tac | 0xF8
	}
	return 0xFF
}

// WriteIO serves the timer registers. Writing DIV resets the whole internal
// counter; the edge detector will observe any resulting falling edge on the
// next tick. Writes to TAC that disable or retarget the selection must
// produce the falling edge immediately.
func (t *Timer) WriteIO(address uint16, value byte) {
	switch address {
	case addr.DIV:
		t.counter = 0
	case addr.TIMA:
		t.tima = value
	case addr.TMA:
		t.tma = value
	case addr.TAC:
		old := t.selectedBit()
		t.tac = value & 0x07
		current := t.selectedBit()
		if old && !current && t.reloadDelay == 0 {
			t.incrementTIMA()
		}
		t.lastBit = current
	}
}
