package memory

// Banker is the interface the MBC uses to apply bank swaps. The MMU
// implements it; the MBC never touches ROM or RAM contents itself.
type Banker interface {
	// LoadROMBank maps ROM bank n into the switchable slot. n must be >= 1
	// and within the loaded sequence.
	LoadROMBank(n int) error
	// LoadRAMBank maps external RAM bank n.
	LoadRAMBank(n int) error
	// EnableExternalRAM gates external RAM access.
	EnableExternalRAM(enabled bool)
}

// MBC decodes writes into ROM space as bank controller commands. It is a
// tagged variant over the supported controller types rather than an
// interface hierarchy: the capability set is tiny and fixed.
type MBC struct {
	kind   MBCType
	banker Banker

	romBankCount int
	ramBankCount int

	// MBC1 registers
	romLow  uint8 // low 5 bits of the ROM bank number
	romHigh uint8 // 2-bit register: ROM high bits or RAM bank, per mode
	mode    uint8 // 0 = ROM banking, 1 = RAM banking
	ramOn   bool
}

// NewMBC creates the controller for a cartridge and binds it to a banker.
func NewMBC(cart *Cartridge, banker Banker) *MBC {
	return &MBC{
		kind:         cart.mbcType,
		banker:       banker,
		romBankCount: len(cart.romBanks),
		ramBankCount: len(cart.ramBanks),
		romLow:       1,
	}
}

// OnROMWrite interprets a write to ROM space as a control command. The
// write never mutates ROM contents. A resulting swap to a bank outside the
// loaded sequence propagates as an error from the banker.
func (m *MBC) OnROMWrite(address uint16, value uint8) error {
	if m.kind != MBC1Type {
		return nil
	}

	switch {
	case address <= 0x1FFF:
		m.ramOn = (value & 0x0F) == 0x0A
		m.banker.EnableExternalRAM(m.ramOn && m.ramBankCount > 0)
		return nil
	case address <= 0x3FFF:
		m.romLow = value & 0x1F
		return m.applyROMBank()
	case address <= 0x5FFF:
		m.romHigh = value & 0x03
		if m.mode == 0 {
			return m.applyROMBank()
		}
		return m.applyRAMBank()
	default: // 0x6000-0x7FFF
		m.mode = value & 0x01
		if m.mode == 0 {
			return m.applyROMBank()
		}
		return m.applyRAMBank()
	}
}

// applyROMBank computes the effective bank from the two registers and asks
// the banker to map it. Bank numbers that are 0 modulo 32 select the next
// bank instead (0->1, 0x20->0x21, 0x40->0x41, 0x60->0x61).
func (m *MBC) applyROMBank() error {
	low := m.romLow
	if low == 0 {
		low = 1
	}

	bank := int(low)
	if m.mode == 0 {
		bank |= int(m.romHigh) << 5
	}

	return m.banker.LoadROMBank(bank)
}

func (m *MBC) applyRAMBank() error {
	if m.ramBankCount == 0 {
		return nil
	}
	return m.banker.LoadRAMBank(int(m.romHigh))
}
