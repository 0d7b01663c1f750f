package memory

import (
	"fmt"
	"log/slog"

	"github.com/valerio/go-dmg/dmg/bit"
)

// IOHandler serves reads and writes for a range of I/O registers. Handlers
// are registered once at boot by the component that owns the registers.
type IOHandler interface {
	ReadIO(address uint16) byte
	WriteIO(address uint16, value byte)
}

// RegionHandler serves reads and writes for a whole memory region (used by
// the PPU for VRAM and OAM, which it owns).
type RegionHandler interface {
	ReadRegion(offset uint16) byte
	WriteRegion(offset uint16, value byte)
}

// WriteListener is notified after a write lands in a region it subscribed
// to. Listeners observe; they must not write back into the MMU.
type WriteListener func(address uint16, value byte)

// WatchpointKind distinguishes read and write watchpoints.
type WatchpointKind uint8

const (
	WatchRead WatchpointKind = iota
	WatchWrite
)

// MMU decodes addresses into regions and dispatches to the region backing,
// the cartridge/MBC, or a registered handler. It owns the WRAM/HRAM/echo
// backings and the currently mapped ROM and external RAM banks.
type MMU struct {
	cart *Cartridge
	mbc  *MBC

	rom0 []byte // mapped ROM bank 0
	romX []byte // mapped switchable ROM bank
	eram []byte // mapped external RAM bank, nil when the cart has none

	loadedROMBank int
	loadedRAMBank int
	eramEnabled   bool

	wram   []byte
	hram   []byte
	unused []byte
	io     []byte // backing for I/O registers without a handler

	ioHandlers      [ioSize]IOHandler
	ieHandler       IOHandler
	regionHandlers  [regionCount]RegionHandler
	writeListeners  [regionCount][]*listenerEntry
	readWatchpoints map[uint16]struct{}
	writeWatchpoint map[uint16]struct{}

	// WatchpointHit, when set, is called on every watchpoint hit. Hits are
	// informational and never alter access semantics.
	WatchpointHit func(address uint16, kind WatchpointKind)
}

type listenerEntry struct {
	fn WriteListener
}

// New creates an MMU with no cartridge attached, equivalent to powering on
// an empty unit: ROM reads return 0xFF and ROM writes are dropped.
func New() *MMU {
	return &MMU{
		wram:            make([]byte, wramSize),
		hram:            make([]byte, hramSize),
		unused:          make([]byte, unusedSize),
		io:              make([]byte, ioSize),
		loadedROMBank:   1,
		readWatchpoints: map[uint16]struct{}{},
		writeWatchpoint: map[uint16]struct{}{},
	}
}

// AttachCartridge maps a cartridge's banks and creates its MBC. Bank 0 and
// bank 1 are mapped into their slots; external RAM starts disabled.
func (m *MMU) AttachCartridge(cart *Cartridge) {
	m.cart = cart
	m.mbc = NewMBC(cart, m)
	m.rom0 = cart.romBanks[0]
	m.romX = cart.romBanks[1]
	m.loadedROMBank = 1
	m.loadedRAMBank = 0
	m.eramEnabled = false
	m.eram = nil
	if len(cart.ramBanks) > 0 {
		m.eram = cart.ramBanks[0]
	}
}

// Cartridge returns the attached cartridge, or nil.
func (m *MMU) Cartridge() *Cartridge { return m.cart }

// Reset clears the RAM backings and remaps the cartridge's initial banks.
// Handlers, listeners and watchpoints survive a reset.
func (m *MMU) Reset() {
	clear(m.wram)
	clear(m.hram)
	clear(m.unused)
	clear(m.io)
	if m.cart != nil {
		m.AttachCartridge(m.cart)
	}
}

// RegisterIO registers a handler for the I/O registers in [lo, hi].
// Addresses must be inside the I/O region.
func (m *MMU) RegisterIO(lo, hi uint16, h IOHandler) {
	for a := lo; a <= hi; a++ {
		m.ioHandlers[a-0xFF00] = h
	}
}

// RegisterIE registers the handler for the interrupt enable byte at 0xFFFF.
func (m *MMU) RegisterIE(h IOHandler) {
	m.ieHandler = h
}

// RegisterRegion registers a handler owning a whole region (VRAM or OAM).
func (m *MMU) RegisterRegion(r Region, h RegionHandler) {
	m.regionHandlers[r] = h
}

// AddWriteListener subscribes to writes landing in a region. The returned
// function deregisters the listener.
func (m *MMU) AddWriteListener(r Region, fn WriteListener) func() {
	entry := &listenerEntry{fn: fn}
	m.writeListeners[r] = append(m.writeListeners[r], entry)
	return func() {
		entries := m.writeListeners[r]
		for i, e := range entries {
			if e == entry {
				m.writeListeners[r] = append(entries[:i], entries[i+1:]...)
				return
			}
		}
	}
}

// AddWatchpoint registers a watchpoint for the given address and kind.
func (m *MMU) AddWatchpoint(address uint16, kind WatchpointKind) {
	if kind == WatchRead {
		m.readWatchpoints[address] = struct{}{}
	} else {
		m.writeWatchpoint[address] = struct{}{}
	}
}

// RemoveWatchpoint removes a watchpoint.
func (m *MMU) RemoveWatchpoint(address uint16, kind WatchpointKind) {
	if kind == WatchRead {
		delete(m.readWatchpoints, address)
	} else {
		delete(m.writeWatchpoint, address)
	}
}

// Watchpoints returns the registered watchpoint addresses for a kind.
func (m *MMU) Watchpoints(kind WatchpointKind) []uint16 {
	set := m.readWatchpoints
	if kind == WatchWrite {
		set = m.writeWatchpoint
	}
	out := make([]uint16, 0, len(set))
	for a := range set {
		out = append(out, a)
	}
	return out
}

// ReadByte reads a byte from the address space.
func (m *MMU) ReadByte(address uint16) byte {
	if len(m.readWatchpoints) > 0 {
		if _, hit := m.readWatchpoints[address]; hit && m.WatchpointHit != nil {
			m.WatchpointHit(address, WatchRead)
		}
	}

	region, offset := Decode(address)
	switch region {
	case RegionROMBank0:
		if m.cart == nil {
			return 0xFF
		}
		return m.rom0[offset]
	case RegionROMOther:
		if m.cart == nil {
			return 0xFF
		}
		return m.romX[offset]
	case RegionVRAM, RegionOAM:
		if h := m.regionHandlers[region]; h != nil {
			return h.ReadRegion(offset)
		}
		return 0xFF
	case RegionExtRAM:
		if !m.eramEnabled || m.eram == nil {
			return 0xFF
		}
		if int(offset) >= len(m.eram) {
			return 0xFF
		}
		return m.eram[offset]
	case RegionWRAM:
		return m.wram[offset]
	case RegionEcho:
		return m.wram[offset]
	case RegionUnused:
		return m.unused[offset]
	case RegionIO:
		if h := m.ioHandlers[offset]; h != nil {
			return h.ReadIO(address)
		}
		return m.io[offset]
	case RegionHRAM:
		return m.hram[offset]
	case RegionInterruptEnable:
		if m.ieHandler != nil {
			return m.ieHandler.ReadIO(address)
		}
		return 0xFF
	}
	panic(fmt.Sprintf("read at unmapped address 0x%04X", address))
}

// ReadWord reads a 16-bit little-endian value.
func (m *MMU) ReadWord(address uint16) uint16 {
	return bit.Combine(m.ReadByte(address+1), m.ReadByte(address))
}

// WriteByte writes a byte, notifying region write listeners.
func (m *MMU) WriteByte(address uint16, value byte) {
	m.write(address, value, true)
}

// WriteByteQuiet writes a byte without notifying write listeners. Used by
// components updating registers they own.
func (m *MMU) WriteByteQuiet(address uint16, value byte) {
	m.write(address, value, false)
}

func (m *MMU) write(address uint16, value byte, notify bool) {
	if len(m.writeWatchpoint) > 0 {
		if _, hit := m.writeWatchpoint[address]; hit && m.WatchpointHit != nil {
			m.WatchpointHit(address, WatchWrite)
		}
	}

	region, offset := Decode(address)
	switch region {
	case RegionROMBank0, RegionROMOther:
		// Never stored: the write is offered to the MBC as a control
		// command. A bank swap failure is a fault that must unwind the
		// running loop; see the run loop's recover.
		if m.mbc == nil {
			slog.Warn("ROM write with no cartridge", "addr", fmt.Sprintf("0x%04X", address), "value", fmt.Sprintf("0x%02X", value))
			return
		}
		if err := m.mbc.OnROMWrite(address, value); err != nil {
			panic(err)
		}
	case RegionVRAM, RegionOAM:
		if h := m.regionHandlers[region]; h != nil {
			h.WriteRegion(offset, value)
		}
	case RegionExtRAM:
		if !m.eramEnabled || m.eram == nil {
			return
		}
		if int(offset) >= len(m.eram) {
			// Short 2 KiB RAMs ignore out of range offsets.
			return
		}
		m.eram[offset] = value
	case RegionWRAM:
		m.wram[offset] = value
	case RegionEcho:
		m.wram[offset] = value
	case RegionUnused:
		m.unused[offset] = value
	case RegionIO:
		if h := m.ioHandlers[offset]; h != nil {
			h.WriteIO(address, value)
		} else {
			m.io[offset] = value
		}
	case RegionHRAM:
		m.hram[offset] = value
	case RegionInterruptEnable:
		if m.ieHandler != nil {
			m.ieHandler.WriteIO(address, value)
		}
	}

	if notify {
		for _, e := range m.writeListeners[region] {
			e.fn(address, value)
		}
	}
}

// ReadBit returns the state of one bit of a memory mapped register.
func (m *MMU) ReadBit(index uint8, address uint16) bool {
	return bit.IsSet(index, m.ReadByte(address))
}

// SetBit sets or clears one bit of a memory mapped register.
func (m *MMU) SetBit(index uint8, address uint16, set bool) {
	value := m.ReadByte(address)
	if set {
		value = bit.Set(index, value)
	} else {
		value = bit.Reset(index, value)
	}
	m.WriteByte(address, value)
}

// LoadROMBank maps ROM bank n into the switchable slot. Bank 0 never
// occupies the switchable slot.
func (m *MMU) LoadROMBank(n int) error {
	if m.cart == nil {
		return fmt.Errorf("%w: no cartridge", ErrInvalidBank)
	}
	if n < 1 || n >= len(m.cart.romBanks) {
		return fmt.Errorf("%w: ROM bank %d of %d", ErrInvalidBank, n, len(m.cart.romBanks))
	}
	m.romX = m.cart.romBanks[n]
	m.loadedROMBank = n
	return nil
}

// LoadRAMBank maps external RAM bank n.
func (m *MMU) LoadRAMBank(n int) error {
	if m.cart == nil {
		return fmt.Errorf("%w: no cartridge", ErrInvalidBank)
	}
	if n < 0 || n >= len(m.cart.ramBanks) {
		return fmt.Errorf("%w: RAM bank %d of %d", ErrInvalidBank, n, len(m.cart.ramBanks))
	}
	m.eram = m.cart.ramBanks[n]
	m.loadedRAMBank = n
	return nil
}

// EnableExternalRAM gates access to the external RAM region.
func (m *MMU) EnableExternalRAM(enabled bool) {
	m.eramEnabled = enabled
}

// LoadedROMBank returns the index of the currently mapped switchable bank.
func (m *MMU) LoadedROMBank() int { return m.loadedROMBank }

// LoadedRAMBank returns the index of the currently mapped RAM bank.
func (m *MMU) LoadedRAMBank() int { return m.loadedRAMBank }
