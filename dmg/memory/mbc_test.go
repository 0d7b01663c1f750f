package memory

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// buildROM creates a ROM image with the given MBC and RAM size header
// bytes. Each bank carries its own index at offset 0x1000 so tests can see
// which bank is mapped.
func buildROM(t *testing.T, banks int, cartType, ramSize byte) *Cartridge {
	t.Helper()
	data := make([]byte, banks*0x4000)
	copy(data[titleAddress:], "BANKTEST")
	data[cartridgeTypeAddress] = cartType
	data[ramSizeAddress] = ramSize
	for b := 0; b < banks; b++ {
		data[b*0x4000+0x1000] = byte(b)
	}
	cart, err := NewCartridgeWithData(data)
	require.NoError(t, err)
	return cart
}

func TestMBC1_bankZeroCoercion(t *testing.T) {
	mmu := New()
	mmu.AttachCartridge(buildROM(t, 4, 0x01, 0x00))

	// writing 0 selects bank 1 instead
	mmu.WriteByte(0x2000, 0x00)
	assert.Equal(t, byte(1), mmu.ReadByte(0x5000))
	assert.Equal(t, 1, mmu.LoadedROMBank())

	mmu.WriteByte(0x2000, 0x02)
	assert.Equal(t, byte(2), mmu.ReadByte(0x5000))

	// bank 0 stays mapped in its fixed slot throughout
	assert.Equal(t, byte(0), mmu.ReadByte(0x1000))
}

func TestMBC1_romWritesNeverStored(t *testing.T) {
	mmu := New()
	mmu.AttachCartridge(buildROM(t, 4, 0x01, 0x00))

	before := mmu.ReadByte(0x0000)
	mmu.WriteByte(0x0000, 0x55)
	mmu.WriteByte(0x3FFF, 0x03) // selects bank 3 of 4
	assert.Equal(t, before, mmu.ReadByte(0x0000))
}

func TestMBC1_invalidBankFaults(t *testing.T) {
	mmu := New()
	mmu.AttachCartridge(buildROM(t, 4, 0x01, 0x00))

	defer func() {
		r := recover()
		require.NotNil(t, r)
		err, ok := r.(error)
		require.True(t, ok)
		assert.True(t, errors.Is(err, ErrInvalidBank))
	}()

	mmu.WriteByte(0x2000, 0x0A) // bank 10 of 4
}

func TestMBC1_ramEnable(t *testing.T) {
	mmu := New()
	mmu.AttachCartridge(buildROM(t, 4, 0x03, 0x02))

	// disabled at power on
	mmu.WriteByte(0xA000, 0x42)
	assert.Equal(t, byte(0xFF), mmu.ReadByte(0xA000))

	// low nibble 0xA enables
	mmu.WriteByte(0x0000, 0x0A)
	mmu.WriteByte(0xA000, 0x42)
	assert.Equal(t, byte(0x42), mmu.ReadByte(0xA000))

	// any other value disables again
	mmu.WriteByte(0x0000, 0x00)
	assert.Equal(t, byte(0xFF), mmu.ReadByte(0xA000))
}

func TestMBC1_ramBanking(t *testing.T) {
	mmu := New()
	mmu.AttachCartridge(buildROM(t, 4, 0x03, 0x03)) // 4 x 8 KiB RAM banks

	mmu.WriteByte(0x0000, 0x0A) // enable RAM
	mmu.WriteByte(0x6000, 0x01) // RAM banking mode

	for bank := 0; bank < 4; bank++ {
		mmu.WriteByte(0x4000, byte(bank))
		mmu.WriteByte(0xA000, byte(0x10+bank))
	}
	for bank := 0; bank < 4; bank++ {
		mmu.WriteByte(0x4000, byte(bank))
		assert.Equal(t, byte(0x10+bank), mmu.ReadByte(0xA000), "bank %d", bank)
	}
}

func TestMBC1_highBitsInROMMode(t *testing.T) {
	mmu := New()
	mmu.AttachCartridge(buildROM(t, 64, 0x01, 0x00))

	// 0x20 wraps to 0x21: low bits 0 coerce to 1
	mmu.WriteByte(0x2000, 0x00)
	mmu.WriteByte(0x4000, 0x01) // high bits = 1 -> bank 0x21
	assert.Equal(t, byte(0x21), mmu.ReadByte(0x5000))

	mmu.WriteByte(0x2000, 0x05)
	assert.Equal(t, byte(0x25), mmu.ReadByte(0x5000))
}

func TestNoMBC_ignoresControlWrites(t *testing.T) {
	mmu := New()
	mmu.AttachCartridge(buildROM(t, 2, 0x00, 0x00))

	mmu.WriteByte(0x2000, 0x05)
	assert.Equal(t, 1, mmu.LoadedROMBank())
	assert.Equal(t, byte(1), mmu.ReadByte(0x5000))
}

func TestCartridge_unsupportedHeaders(t *testing.T) {
	data := make([]byte, 2*0x4000)
	data[cartridgeTypeAddress] = 0x13 // MBC3+RAM+BATTERY, not accepted
	_, err := NewCartridgeWithData(data)
	assert.True(t, errors.Is(err, ErrUnsupportedCartridge))

	data[cartridgeTypeAddress] = 0x01
	data[ramSizeAddress] = 0x04
	_, err = NewCartridgeWithData(data)
	assert.True(t, errors.Is(err, ErrUnsupportedCartridge))
}

func TestCartridge_title(t *testing.T) {
	data := make([]byte, 2*0x4000)
	copy(data[titleAddress:], "TETRIS\x00\x00\x00\x00\x00")
	cart, err := NewCartridgeWithData(data)
	require.NoError(t, err)
	assert.Equal(t, "TETRIS", cart.Title())
}

func TestCartridge_ramSnapshotRoundTrip(t *testing.T) {
	cart := buildROM(t, 2, 0x03, 0x03)
	mmu := New()
	mmu.AttachCartridge(cart)

	mmu.WriteByte(0x0000, 0x0A)
	mmu.WriteByte(0xA000, 0xAB)

	snapshot := cart.RAMSnapshot()
	assert.Len(t, snapshot, 4*0x2000)
	assert.Equal(t, byte(0xAB), snapshot[0])

	snapshot[1] = 0xCD
	cart.RestoreRAM(snapshot)
	assert.Equal(t, byte(0xCD), mmu.ReadByte(0xA001))
}
