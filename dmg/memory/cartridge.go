package memory

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"
	"unicode"
)

// ErrUnsupportedCartridge is returned when the MBC or RAM size header byte
// is outside the accepted set.
var ErrUnsupportedCartridge = errors.New("unsupported cartridge")

// ErrInvalidBank is returned when a bank swap requests an index outside the
// loaded sequence.
var ErrInvalidBank = errors.New("invalid bank")

const (
	titleAddress         = 0x134
	titleLength          = 11
	cartridgeTypeAddress = 0x147
	romSizeAddress       = 0x148
	ramSizeAddress       = 0x149
	versionNumberAddress = 0x14C
)

// MBCType identifies the memory bank controller on the cartridge.
type MBCType uint8

const (
	NoMBCType MBCType = iota
	MBC1Type
)

// Cartridge holds the ROM as an ordered sequence of 16 KiB banks and the
// external RAM as an ordered sequence of 8 KiB banks (2 KiB for the small
// RAM size code).
type Cartridge struct {
	title      string
	version    uint8
	cartCode   uint8
	ramCode    uint8
	mbcType    MBCType
	hasBattery bool

	romBanks [][]byte
	ramBanks [][]byte
}

// LoadCartridge reads and parses a ROM file.
func LoadCartridge(path string) (*Cartridge, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading ROM file: %w", err)
	}
	return NewCartridgeWithData(data)
}

// NewCartridge creates an empty cartridge: a single blank ROM bank pair and
// no external RAM. Equivalent to powering on without a cartridge inserted.
func NewCartridge() *Cartridge {
	return &Cartridge{
		romBanks: [][]byte{
			make([]byte, romBankSize),
			make([]byte, romBankSize),
		},
	}
}

// NewCartridgeWithData parses a ROM image into banks and header metadata.
func NewCartridgeWithData(data []byte) (*Cartridge, error) {
	if len(data) < 2*romBankSize || len(data)%romBankSize != 0 {
		return nil, fmt.Errorf("%w: ROM size %d is not a multiple of 16 KiB banks", ErrUnsupportedCartridge, len(data))
	}

	cart := &Cartridge{
		title:    cleanTitle(data[titleAddress : titleAddress+titleLength]),
		version:  data[versionNumberAddress],
		cartCode: data[cartridgeTypeAddress],
		ramCode:  data[ramSizeAddress],
	}

	switch cart.cartCode {
	case 0x00:
		cart.mbcType = NoMBCType
	case 0x01, 0x02:
		cart.mbcType = MBC1Type
	case 0x03:
		cart.mbcType = MBC1Type
		cart.hasBattery = true
	default:
		return nil, fmt.Errorf("%w: MBC type 0x%02X", ErrUnsupportedCartridge, cart.cartCode)
	}

	for offset := 0; offset < len(data); offset += romBankSize {
		bank := make([]byte, romBankSize)
		copy(bank, data[offset:offset+romBankSize])
		cart.romBanks = append(cart.romBanks, bank)
	}

	switch cart.ramCode {
	case 0x00:
		// no external RAM
	case 0x01:
		cart.ramBanks = [][]byte{make([]byte, 0x800)}
	case 0x02:
		cart.ramBanks = [][]byte{make([]byte, ramBankSize)}
	case 0x03:
		for i := 0; i < 4; i++ {
			cart.ramBanks = append(cart.ramBanks, make([]byte, ramBankSize))
		}
	default:
		return nil, fmt.Errorf("%w: RAM size 0x%02X", ErrUnsupportedCartridge, cart.ramCode)
	}

	slog.Debug("Parsed cartridge header",
		"title", cart.title,
		"mbc", fmt.Sprintf("0x%02X", cart.cartCode),
		"rom_banks", len(cart.romBanks),
		"ram_banks", len(cart.ramBanks),
		"battery", cart.hasBattery)

	return cart, nil
}

// Title returns the cleaned header title.
func (c *Cartridge) Title() string { return c.title }

// Type returns the memory bank controller type.
func (c *Cartridge) Type() MBCType { return c.mbcType }

// HasBattery reports whether external RAM is battery backed.
func (c *Cartridge) HasBattery() bool { return c.hasBattery }

// ROMBankCount returns the number of loaded 16 KiB ROM banks.
func (c *Cartridge) ROMBankCount() int { return len(c.romBanks) }

// RAMBankCount returns the number of external RAM banks.
func (c *Cartridge) RAMBankCount() int { return len(c.ramBanks) }

// RAMSnapshot returns a copy of the external RAM contents, bank by bank.
// Used by hosts to persist battery-backed saves on eject.
func (c *Cartridge) RAMSnapshot() []byte {
	var out []byte
	for _, bank := range c.ramBanks {
		out = append(out, bank...)
	}
	return out
}

// RestoreRAM loads previously persisted external RAM contents. Data beyond
// the cartridge's RAM size is ignored.
func (c *Cartridge) RestoreRAM(data []byte) {
	for _, bank := range c.ramBanks {
		n := copy(bank, data)
		data = data[n:]
		if len(data) == 0 {
			break
		}
	}
}

// cleanTitle processes a raw header title: NUL bytes become spaces,
// non-printable bytes become '?', and the result is trimmed.
func cleanTitle(titleBytes []byte) string {
	runes := make([]rune, 0, len(titleBytes))
	for _, b := range titleBytes {
		r := rune(b)
		if r == 0 {
			r = ' '
		} else if !unicode.IsPrint(r) {
			r = '?'
		}
		runes = append(runes, r)
	}

	return strings.TrimSpace(string(runes))
}
