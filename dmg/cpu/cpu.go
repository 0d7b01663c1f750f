// Package cpu implements the Sharp LR35902 core: registers, the base and
// CB-prefixed opcode tables, interrupt dispatch, and the HALT/STOP state
// machine. Instruction costs are machine cycles.
package cpu

import (
	"errors"
	"fmt"

	"github.com/valerio/go-dmg/dmg/addr"
	"github.com/valerio/go-dmg/dmg/bit"
	"github.com/valerio/go-dmg/dmg/irq"
	"github.com/valerio/go-dmg/dmg/memory"
)

// ErrIllegalOpcode is the error an undefined base opcode raises. It unwinds
// the running loop as a fault.
var ErrIllegalOpcode = errors.New("illegal opcode")

// interruptDispatchCycles is the machine-cycle cost of servicing an
// interrupt: 2 for the PC push, 1 for the jump, 2 internal.
const interruptDispatchCycles = 5

// Flag is one of the four flags in the flag register (low byte of AF).
// The low nibble of F is always zero.
type Flag uint8

const (
	FlagZ Flag = 0x80 // zero
	FlagN Flag = 0x40 // subtraction
	FlagH Flag = 0x20 // half carry
	FlagC Flag = 0x10 // carry
)

// State is the CPU execution state.
type State uint8

const (
	Running State = iota
	Halted
	// HaltBug is entered when HALT executes with IME clear and an
	// interrupt already pending: the next opcode byte is fetched without
	// advancing PC, so it executes twice.
	HaltBug
	// Stopped is treated like Halted; it wakes on a joypad interrupt.
	Stopped
)

// Snapshot is a copy of the register file for debugger callbacks.
type Snapshot struct {
	AF, BC, DE, HL uint16
	SP, PC         uint16
	IME            bool
}

// CPU holds the LR35902 state. All memory traffic goes through the MMU;
// the interrupt controller is owned here and exposed to the MMU as the
// handler for IF and IE.
type CPU struct {
	mmu *memory.MMU
	irq *irq.Controller

	a, f uint8
	b, c uint8
	d, e uint8
	h, l uint8
	sp   uint16
	pc   uint16

	ime        bool
	imePending bool // EI takes effect after the following instruction

	state         State
	currentOpcode uint8
	previousPC    uint16
}

// New creates a CPU wired to the MMU and owning the interrupt controller.
// IF and IE dispatch is registered on the MMU here.
func New(mmu *memory.MMU, ctrl *irq.Controller) *CPU {
	cpu := &CPU{mmu: mmu, irq: ctrl}
	mmu.RegisterIO(addr.IF, addr.IF, &interruptPort{ctrl})
	mmu.RegisterIE(&interruptPort{ctrl})
	cpu.Reset()
	return cpu
}

// Reset sets the DMG post-boot register values.
func (c *CPU) Reset() {
	c.setAF(0x01B0)
	c.setBC(0x0013)
	c.setDE(0x00D8)
	c.setHL(0x014D)
	c.pc = 0x0100
	c.sp = 0xFFFE
	c.ime = true
	c.imePending = false
	c.state = Running
	c.previousPC = 0
	c.irq.Reset()
}

// Interrupts returns the interrupt controller, for peripherals wiring.
func (c *CPU) Interrupts() *irq.Controller { return c.irq }

// State returns the current execution state.
func (c *CPU) State() State { return c.state }

// GetPC returns the program counter.
func (c *CPU) GetPC() uint16 { return c.pc }

// PreviousPC returns the address of the last fetched instruction.
func (c *CPU) PreviousPC() uint16 { return c.previousPC }

// TakeSnapshot copies the register file.
func (c *CPU) TakeSnapshot() Snapshot {
	return Snapshot{
		AF:  c.getAF(),
		BC:  c.getBC(),
		DE:  c.getDE(),
		HL:  c.getHL(),
		SP:  c.sp,
		PC:  c.pc,
		IME: c.ime,
	}
}

// Step executes one instruction, or services one interrupt, and returns
// the machine-cycle cost. Executing an undefined opcode panics with an
// ErrIllegalOpcode-wrapped error; the run loop recovers it.
func (c *CPU) Step() int {
	switch c.state {
	case Halted:
		if c.irq.Pending() == 0 {
			return 1
		}
		// HALT exits on any enabled pending interrupt, IME or not.
		c.state = Running
	case Stopped:
		if c.irq.ReadFlags()&(1<<irq.Joypad) == 0 {
			return 1
		}
		c.state = Running
	}

	if c.ime {
		if interrupt, ok := c.irq.HighestPending(); ok {
			c.dispatchInterrupt(interrupt)
			return interruptDispatchCycles
		}
	}

	enableIME := c.imePending

	c.previousPC = c.pc
	c.currentOpcode = c.fetch()
	cycles := opcodes[c.currentOpcode](c)

	if enableIME && c.imePending {
		c.ime = true
		c.imePending = false
	}

	return cycles
}

// fetch reads the next opcode. Under the halt bug the byte is read but PC
// is not advanced, so the following instruction sees it again.
func (c *CPU) fetch() uint8 {
	opcode := c.mmu.ReadByte(c.pc)
	if c.state == HaltBug {
		c.state = Running
	} else {
		c.pc++
	}
	return opcode
}

// dispatchInterrupt clears IME, acknowledges the highest priority pending
// interrupt, pushes PC and jumps to its vector.
func (c *CPU) dispatchInterrupt(interrupt irq.Interrupt) {
	c.ime = false
	c.irq.Acknowledge(interrupt)
	c.pushStack(c.pc)
	c.pc = interrupt.Vector()
}

// halt enters the Halted state, or HaltBug when IME is clear with an
// interrupt already pending.
func (c *CPU) halt() {
	if !c.ime && c.irq.Pending() != 0 {
		c.state = HaltBug
		return
	}
	c.state = Halted
}

// stop enters the Stopped state. Full STOP semantics are not needed on
// DMG; the state behaves like HALT and wakes on a joypad interrupt.
func (c *CPU) stop() {
	c.state = Stopped
}

func illegalOpcode(c *CPU) int {
	panic(fmt.Errorf("%w: 0x%02X at 0x%04X", ErrIllegalOpcode, c.currentOpcode, c.previousPC))
}

// interruptPort adapts the interrupt controller to the MMU's I/O handler
// interface for the IF and IE registers.
type interruptPort struct {
	ctrl *irq.Controller
}

func (p *interruptPort) ReadIO(address uint16) byte {
	if address == addr.IE {
		return p.ctrl.ReadEnabled()
	}
	return p.ctrl.ReadFlags()
}

func (p *interruptPort) WriteIO(address uint16, value byte) {
	if address == addr.IE {
		p.ctrl.WriteEnabled(value)
		return
	}
	p.ctrl.WriteFlags(value)
}

// 16-bit register pair accessors. The pairs are big-endian: A is the high
// byte of AF.

func (c *CPU) getAF() uint16 { return bit.Combine(c.a, c.f) }
func (c *CPU) getBC() uint16 { return bit.Combine(c.b, c.c) }
func (c *CPU) getDE() uint16 { return bit.Combine(c.d, c.e) }
func (c *CPU) getHL() uint16 { return bit.Combine(c.h, c.l) }

func (c *CPU) setAF(value uint16) {
	c.a = bit.High(value)
	// the low nibble of F always reads back as zero
	c.f = bit.Low(value) & 0xF0
}

func (c *CPU) setBC(value uint16) {
	c.b = bit.High(value)
	c.c = bit.Low(value)
}

func (c *CPU) setDE(value uint16) {
	c.d = bit.High(value)
	c.e = bit.Low(value)
}

func (c *CPU) setHL(value uint16) {
	c.h = bit.High(value)
	c.l = bit.Low(value)
}

// Flag helpers.

func (c *CPU) setFlag(flag Flag) {
	c.f |= uint8(flag)
}

func (c *CPU) resetFlag(flag Flag) {
	c.f &^= uint8(flag)
}

func (c *CPU) isSetFlag(flag Flag) bool {
	return c.f&uint8(flag) != 0
}

func (c *CPU) setFlagToCondition(flag Flag, condition bool) {
	if condition {
		c.setFlag(flag)
	} else {
		c.resetFlag(flag)
	}
}

func (c *CPU) flagToBit(flag Flag) uint8 {
	if c.isSetFlag(flag) {
		return 1
	}
	return 0
}
