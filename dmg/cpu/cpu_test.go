package cpu

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/valerio/go-dmg/dmg/irq"
	"github.com/valerio/go-dmg/dmg/memory"
)

// newTestCPU returns a CPU over an empty MMU, with the program counter
// parked in WRAM so tests can write programs there.
func newTestCPU() (*CPU, *memory.MMU) {
	mmu := memory.New()
	c := New(mmu, &irq.Controller{})
	c.pc = 0xC000
	c.ime = false
	return c, mmu
}

func loadProgram(mmu *memory.MMU, start uint16, program ...byte) {
	for i, b := range program {
		mmu.WriteByte(start+uint16(i), b)
	}
}

func TestCPU_reset(t *testing.T) {
	c, _ := newTestCPU()
	c.Reset()

	assert.Equal(t, uint16(0x01B0), c.getAF())
	assert.Equal(t, uint16(0x0013), c.getBC())
	assert.Equal(t, uint16(0x00D8), c.getDE())
	assert.Equal(t, uint16(0x014D), c.getHL())
	assert.Equal(t, uint16(0x0100), c.pc)
	assert.Equal(t, uint16(0xFFFE), c.sp)

	// Z, H and C set; N clear
	assert.True(t, c.isSetFlag(FlagZ))
	assert.False(t, c.isSetFlag(FlagN))
	assert.True(t, c.isSetFlag(FlagH))
	assert.True(t, c.isSetFlag(FlagC))
}

func TestCPU_addAB_halfCarry(t *testing.T) {
	c, mmu := newTestCPU()
	loadProgram(mmu, 0xC000, 0x80) // ADD A, B
	c.a = 0x3A
	c.b = 0x06

	cycles := c.Step()

	assert.Equal(t, 1, cycles)
	assert.Equal(t, uint8(0x40), c.a)
	assert.Equal(t, uint8(FlagH), c.f)
}

func TestCPU_flagLowNibbleAlwaysZero(t *testing.T) {
	c, mmu := newTestCPU()
	c.sp = 0xD000
	c.pushStack(0x12FF)
	loadProgram(mmu, 0xC000, 0xF1) // POP AF

	c.Step()

	assert.Equal(t, uint8(0x12), c.a)
	assert.Equal(t, uint8(0xF0), c.f)
}

func TestCPU_stack(t *testing.T) {
	c, _ := newTestCPU()
	c.sp = 0xD000

	c.pushStack(0x0102)
	assert.Equal(t, uint16(0xCFFE), c.sp)

	popped := c.popStack()
	assert.Equal(t, uint16(0x0102), popped)
	assert.Equal(t, uint16(0xD000), c.sp)
}

func TestCPU_conditionalJumpCosts(t *testing.T) {
	testCases := []struct {
		desc   string
		flags  Flag
		cycles int
		pc     uint16
	}{
		{desc: "JR NZ taken", flags: 0, cycles: 3, pc: 0xC007},
		{desc: "JR NZ not taken", flags: FlagZ, cycles: 2, pc: 0xC002},
	}
	for _, tC := range testCases {
		t.Run(tC.desc, func(t *testing.T) {
			c, mmu := newTestCPU()
			loadProgram(mmu, 0xC000, 0x20, 0x05) // JR NZ, +5
			c.f = uint8(tC.flags)

			cycles := c.Step()

			assert.Equal(t, tC.cycles, cycles)
			assert.Equal(t, tC.pc, c.pc)
		})
	}
}

func TestCPU_interruptDispatch(t *testing.T) {
	c, _ := newTestCPU()
	c.sp = 0xD000
	c.ime = true
	c.irq.WriteEnabled(0x01)
	c.irq.Request(irq.VBlank)

	cycles := c.Step()

	assert.Equal(t, 5, cycles)
	assert.Equal(t, uint16(0x0040), c.pc)
	assert.False(t, c.ime)
	// the pending bit was acknowledged and PC pushed
	assert.Equal(t, uint8(0xE0), c.irq.ReadFlags())
	assert.Equal(t, uint16(0xCFFE), c.sp)
}

func TestCPU_interruptPriority(t *testing.T) {
	c, _ := newTestCPU()
	c.sp = 0xD000
	c.ime = true
	c.irq.WriteEnabled(0x1F)
	c.irq.Request(irq.Timer)
	c.irq.Request(irq.LCDStat)

	c.Step()

	// LCD-STAT outranks Timer
	assert.Equal(t, uint16(0x0048), c.pc)
	assert.Equal(t, uint8(1)<<irq.Timer, c.irq.ReadFlags()&0x1F)
}

func TestCPU_eiDelay(t *testing.T) {
	c, mmu := newTestCPU()
	loadProgram(mmu, 0xC000, 0xFB, 0x00, 0x00) // EI; NOP; NOP
	c.irq.WriteEnabled(0x01)
	c.irq.Request(irq.VBlank)

	c.Step() // EI
	assert.False(t, c.ime)

	c.Step() // NOP completes, IME becomes true after it
	assert.True(t, c.ime)

	cycles := c.Step() // dispatch happens here, not earlier
	assert.Equal(t, 5, cycles)
	assert.Equal(t, uint16(0x0040), c.pc)
}

func TestCPU_diImmediate(t *testing.T) {
	c, mmu := newTestCPU()
	loadProgram(mmu, 0xC000, 0xF3) // DI
	c.ime = true

	c.Step()

	assert.False(t, c.ime)
}

func TestCPU_haltWakesWithoutIME(t *testing.T) {
	c, mmu := newTestCPU()
	loadProgram(mmu, 0xC000, 0x76, 0x3C) // HALT; INC A

	c.Step()
	assert.Equal(t, Halted, c.state)

	// nothing pending: the CPU burns cycles
	assert.Equal(t, 1, c.Step())
	assert.Equal(t, Halted, c.state)

	// an enabled pending interrupt wakes it even with IME clear
	c.irq.WriteEnabled(0x04)
	c.irq.Request(irq.Timer)
	c.Step()
	assert.Equal(t, Running, c.state)
	assert.Equal(t, uint16(0xC002), c.pc) // INC A executed, no dispatch
}

func TestCPU_haltBugRepeatsByte(t *testing.T) {
	c, mmu := newTestCPU()
	loadProgram(mmu, 0xC000, 0x76, 0x3C, 0x00) // HALT; INC A; NOP
	c.a = 0
	c.irq.WriteEnabled(0x04)
	c.irq.Request(irq.Timer)

	c.Step() // HALT with IME clear and a pending interrupt
	assert.Equal(t, HaltBug, c.state)

	c.Step() // INC A fetched, PC not advanced
	assert.Equal(t, uint16(0xC001), c.pc)
	c.Step() // INC A again
	assert.Equal(t, uint8(2), c.a)
	assert.Equal(t, uint16(0xC002), c.pc)
}

func TestCPU_stopWakesOnJoypad(t *testing.T) {
	c, mmu := newTestCPU()
	loadProgram(mmu, 0xC000, 0x10, 0x00, 0x00) // STOP; (padding); NOP

	c.Step()
	assert.Equal(t, Stopped, c.state)
	assert.Equal(t, uint16(0xC002), c.pc)

	assert.Equal(t, 1, c.Step())
	assert.Equal(t, Stopped, c.state)

	c.irq.Request(irq.Joypad)
	c.Step()
	assert.Equal(t, Running, c.state)
}

func TestCPU_illegalOpcode(t *testing.T) {
	for _, opcode := range []byte{0xD3, 0xDB, 0xDD, 0xE3, 0xE4, 0xEB, 0xEC, 0xED, 0xF4, 0xFC, 0xFD} {
		c, mmu := newTestCPU()
		loadProgram(mmu, 0xC000, opcode)

		func() {
			defer func() {
				r := recover()
				require.NotNil(t, r, "opcode 0x%02X", opcode)
				err, ok := r.(error)
				require.True(t, ok)
				assert.True(t, errors.Is(err, ErrIllegalOpcode))
			}()
			c.Step()
		}()
	}
}

func TestCPU_cbPrefixCosts(t *testing.T) {
	c, mmu := newTestCPU()
	loadProgram(mmu, 0xC000, 0xCB, 0x37) // SWAP A
	c.a = 0xF1

	cycles := c.Step()

	assert.Equal(t, 2, cycles)
	assert.Equal(t, uint8(0x1F), c.a)
}

func TestCPU_memoryOperandCosts(t *testing.T) {
	c, mmu := newTestCPU()
	c.setHL(0xC800)
	mmu.WriteByte(0xC800, 0x0F)
	loadProgram(mmu, 0xC000, 0x34) // INC (HL)

	cycles := c.Step()

	assert.Equal(t, 3, cycles)
	assert.Equal(t, byte(0x10), mmu.ReadByte(0xC800))
	assert.True(t, c.isSetFlag(FlagH))
}

func TestCPU_reti(t *testing.T) {
	c, mmu := newTestCPU()
	c.sp = 0xD000
	c.pushStack(0xC123)
	loadProgram(mmu, 0xC000, 0xD9) // RETI

	cycles := c.Step()

	assert.Equal(t, 4, cycles)
	assert.Equal(t, uint16(0xC123), c.pc)
	assert.True(t, c.ime)
}
