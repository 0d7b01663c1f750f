// Package dmg wires the emulator core together: the CPU drives the tick,
// and the run loop advances the Timer, PPU, APU and OAM DMA engine by each
// instruction's machine-cycle cost, in that fixed order.
package dmg

import (
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"sync/atomic"

	"github.com/valerio/go-dmg/dmg/addr"
	"github.com/valerio/go-dmg/dmg/audio"
	"github.com/valerio/go-dmg/dmg/cpu"
	"github.com/valerio/go-dmg/dmg/irq"
	"github.com/valerio/go-dmg/dmg/joypad"
	"github.com/valerio/go-dmg/dmg/memory"
	"github.com/valerio/go-dmg/dmg/timer"
	"github.com/valerio/go-dmg/dmg/timing"
	"github.com/valerio/go-dmg/dmg/video"
)

// ErrInvalidState is returned on API misuse, such as stepping while the
// running loop is active.
var ErrInvalidState = errors.New("invalid state")

// divSeed is the internal divider phase at the end of the boot ROM.
const divSeed = 0xABCC

// Listener receives debugger callbacks. They are invoked only between
// instructions, while the running loop is not active.
type Listener interface {
	OnCpuStateChanged(s cpu.Snapshot)
	OnBreakpointsChanged(breakpoints []uint16)
	OnRunningLoopExited()
}

// Emulator owns every core component. All of its state is mutated only by
// the goroutine driving execution; the documented exceptions are the
// pressed-keys snapshot and the stop flag.
type Emulator struct {
	mmu    *memory.MMU
	cpu    *cpu.CPU
	ppu    *video.PPU
	dma    *video.OAMDMA
	apu    *audio.APU
	timer  *timer.Timer
	joypad *joypad.Joypad

	mu          sync.RWMutex
	breakpoints map[uint16]struct{}
	listeners   []*emuListenerEntry

	running       atomic.Bool
	stopRequested atomic.Bool
	done          chan error
}

type emuListenerEntry struct {
	l Listener
}

// New creates an emulator with no cartridge loaded.
func New() *Emulator {
	controller := &irq.Controller{}
	mmu := memory.New()

	e := &Emulator{
		mmu:         mmu,
		cpu:         cpu.New(mmu, controller),
		ppu:         video.NewPPU(controller),
		apu:         audio.New(),
		timer:       timer.New(controller),
		joypad:      joypad.New(controller),
		breakpoints: map[uint16]struct{}{},
	}
	e.dma = video.NewOAMDMA(e.ppu, mmu)

	mmu.RegisterRegion(memory.RegionVRAM, e.ppu.VRAMPort())
	mmu.RegisterRegion(memory.RegionOAM, e.ppu.OAMPort())
	mmu.RegisterIO(addr.JOYP, addr.JOYP, e.joypad)
	mmu.RegisterIO(addr.DIV, addr.TAC, e.timer)
	mmu.RegisterIO(addr.AudioStart, addr.WaveRAMEnd, e.apu)
	mmu.RegisterIO(addr.LCDC, addr.WX, e.ppu)

	e.reset()
	return e
}

// NewWithFile creates an emulator and loads the given ROM file into it.
func NewWithFile(path string) (*Emulator, error) {
	e := New()
	if err := e.LoadROM(path); err != nil {
		return nil, err
	}
	return e, nil
}

// LoadROM loads a ROM file and resets the core.
func (e *Emulator) LoadROM(path string) error {
	if e.running.Load() {
		return fmt.Errorf("%w: cannot load a ROM while the running loop is active", ErrInvalidState)
	}

	cart, err := memory.LoadCartridge(path)
	if err != nil {
		return err
	}

	e.mmu.AttachCartridge(cart)
	e.reset()

	slog.Info("Loaded ROM", "title", cart.Title(), "rom_banks", cart.ROMBankCount())
	return nil
}

// Reset re-initializes registers, counters and I/O defaults to their DMG
// post-boot values.
func (e *Emulator) Reset() error {
	if e.running.Load() {
		return fmt.Errorf("%w: cannot reset while the running loop is active", ErrInvalidState)
	}
	e.reset()
	e.notifyCpuStateChanged()
	return nil
}

func (e *Emulator) reset() {
	e.mmu.Reset()
	e.cpu.Reset()
	e.ppu.Reset()
	e.apu.Reset()
	e.dma.Reset()
	e.timer.Reset(divSeed)
	e.joypad.Reset()
	e.writeIODefaults()
}

// writeIODefaults sets the post-boot-ROM register values.
func (e *Emulator) writeIODefaults() {
	defaults := []struct {
		address uint16
		value   byte
	}{
		{addr.JOYP, 0xCF},
		{addr.TIMA, 0x00},
		{addr.TMA, 0x00},
		{addr.TAC, 0x00},
		{addr.NR52, 0xF1}, // power on before the channel registers
		{addr.NR10, 0x80},
		{addr.NR11, 0xBF},
		{addr.NR12, 0xF3},
		{addr.NR14, 0xBF},
		{addr.NR21, 0x3F},
		{addr.NR22, 0x00},
		{addr.NR24, 0xBF},
		{addr.NR30, 0x7F},
		{addr.NR31, 0xFF},
		{addr.NR32, 0x9F},
		{addr.NR34, 0xBF},
		{addr.NR41, 0xFF},
		{addr.NR42, 0x00},
		{addr.NR43, 0x00},
		{addr.NR44, 0xBF},
		{addr.NR50, 0x77},
		{addr.NR51, 0xF3},
		{addr.LCDC, 0x91},
		{addr.SCY, 0x00},
		{addr.SCX, 0x00},
		{addr.LYC, 0x00},
		{addr.BGP, 0xFC},
		{addr.OBP0, 0xFF},
		{addr.OBP1, 0xFF},
		{addr.WY, 0x00},
		{addr.WX, 0x00},
		{addr.IE, 0x00},
	}
	for _, d := range defaults {
		e.mmu.WriteByteQuiet(d.address, d.value)
	}
}

// executeInstruction runs one instruction and distributes its cost to the
// peripherals one machine cycle at a time, in the contract order
// Timer, PPU, APU, OAM DMA, then the joypad latch.
func (e *Emulator) executeInstruction() int {
	cycles := e.cpu.Step()
	for i := 0; i < cycles; i++ {
		e.timer.TickMachineCycle()
		e.ppu.TickMachineCycle()
		e.apu.TickMachineCycle()
		e.dma.TickMachineCycle()
		e.joypad.TickMachineCycle()
	}
	return cycles
}

// StepOver executes a single instruction. It is only legal while the
// running loop is inactive. Faults (such as an illegal opcode) are
// returned as errors.
func (e *Emulator) StepOver() (err error) {
	if e.running.Load() {
		return fmt.Errorf("%w: cannot step while the running loop is active", ErrInvalidState)
	}

	defer func() {
		if r := recover(); r != nil {
			err = recoveredError(r)
		}
		e.notifyCpuStateChanged()
	}()

	e.executeInstruction()
	return nil
}

// RunFrame executes instructions until one full video frame has elapsed.
// For hosts that drive their own cadence instead of using Run/Stop.
func (e *Emulator) RunFrame() (err error) {
	if e.running.Load() {
		return fmt.Errorf("%w: cannot run a frame while the running loop is active", ErrInvalidState)
	}

	defer func() {
		if r := recover(); r != nil {
			err = recoveredError(r)
		}
	}()

	total := 0
	for total < timing.CyclesPerFrame {
		total += e.executeInstruction() * timing.CyclesPerMachineCycle
	}
	return nil
}

// Framebuffer returns the PPU's current frame.
func (e *Emulator) Framebuffer() *video.Framebuffer {
	return e.ppu.Framebuffer()
}

// UpdatePressedKeys publishes a pressed-keys snapshot. Safe from any
// thread.
func (e *Emulator) UpdatePressedKeys(keys joypad.KeySet) {
	e.joypad.UpdatePressedKeys(keys)
}

// SetExpectedSampleRate configures the audio block cadence.
func (e *Emulator) SetExpectedSampleRate(blocksPerSecond, samplesPerBlock int) {
	e.apu.SetExpectedSampleRate(blocksPerSecond, samplesPerBlock)
}

// AddFrameListener subscribes to finished video frames.
func (e *Emulator) AddFrameListener(fn video.FrameListener) func() {
	return e.ppu.AddFrameListener(fn)
}

// AddAudioListener subscribes to finished audio sample blocks.
func (e *Emulator) AddAudioListener(fn audio.BlockListener) func() {
	return e.apu.AddListener(fn)
}

// AddWatchpoint registers a memory watchpoint. Hits are informational.
func (e *Emulator) AddWatchpoint(address uint16, kind memory.WatchpointKind) {
	e.mmu.AddWatchpoint(address, kind)
}

// RemoveWatchpoint removes a memory watchpoint.
func (e *Emulator) RemoveWatchpoint(address uint16, kind memory.WatchpointKind) {
	e.mmu.RemoveWatchpoint(address, kind)
}

// SetWatchpointHandler installs the debugger callback for watchpoint hits.
func (e *Emulator) SetWatchpointHandler(fn func(address uint16, kind memory.WatchpointKind)) {
	e.mmu.WatchpointHit = fn
}

// CPU exposes the CPU for debugger front ends and tests.
func (e *Emulator) CPU() *cpu.CPU { return e.cpu }

// MMU exposes the MMU for debugger front ends and tests.
func (e *Emulator) MMU() *memory.MMU { return e.mmu }

// PPU exposes the PPU for debugger front ends and tests.
func (e *Emulator) PPU() *video.PPU { return e.ppu }

// APU exposes the APU for audio front ends and tests.
func (e *Emulator) APU() *audio.APU { return e.apu }

// AddListener registers a debugger listener. The returned function
// deregisters it.
func (e *Emulator) AddListener(l Listener) func() {
	e.mu.Lock()
	defer e.mu.Unlock()
	entry := &emuListenerEntry{l: l}
	e.listeners = append(e.listeners, entry)
	return func() {
		e.mu.Lock()
		defer e.mu.Unlock()
		for i, x := range e.listeners {
			if x == entry {
				e.listeners = append(e.listeners[:i], e.listeners[i+1:]...)
				return
			}
		}
	}
}

func (e *Emulator) notifyCpuStateChanged() {
	snapshot := e.cpu.TakeSnapshot()
	for _, entry := range e.snapshotListeners() {
		entry.OnCpuStateChanged(snapshot)
	}
}

func (e *Emulator) notifyBreakpointsChanged() {
	breakpoints := e.Breakpoints()
	for _, entry := range e.snapshotListeners() {
		entry.OnBreakpointsChanged(breakpoints)
	}
}

func (e *Emulator) notifyRunningLoopExited() {
	for _, entry := range e.snapshotListeners() {
		entry.OnRunningLoopExited()
	}
}

func (e *Emulator) snapshotListeners() []Listener {
	e.mu.RLock()
	defer e.mu.RUnlock()
	out := make([]Listener, 0, len(e.listeners))
	for _, entry := range e.listeners {
		out = append(out, entry.l)
	}
	return out
}

// recoveredError converts a recovered panic value into an error.
func recoveredError(r any) error {
	if err, ok := r.(error); ok {
		return err
	}
	return fmt.Errorf("running loop panic: %v", r)
}
