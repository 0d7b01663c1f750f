package memory

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMMU_wramRoundTrip(t *testing.T) {
	mmu := New()

	mmu.WriteByte(0xC123, 0x42)
	assert.Equal(t, byte(0x42), mmu.ReadByte(0xC123))

	mmu.WriteByte(0xFF80, 0x99)
	assert.Equal(t, byte(0x99), mmu.ReadByte(0xFF80))
}

func TestMMU_echoMirrorsWRAM(t *testing.T) {
	mmu := New()

	mmu.WriteByte(0xC123, 0x42)
	assert.Equal(t, byte(0x42), mmu.ReadByte(0xE123))

	mmu.WriteByte(0xE200, 0x24)
	assert.Equal(t, byte(0x24), mmu.ReadByte(0xC200))
}

func TestMMU_noCartridge(t *testing.T) {
	mmu := New()

	assert.Equal(t, byte(0xFF), mmu.ReadByte(0x0000))
	assert.Equal(t, byte(0xFF), mmu.ReadByte(0x4000))
	// dropped, not a fault
	mmu.WriteByte(0x2000, 0x01)
}

func TestMMU_romBank0ReadsMappedBank(t *testing.T) {
	mmu := New()
	mmu.AttachCartridge(buildROM(t, 4, 0x01, 0x00))

	for address := uint16(0x0000); address < 0x4000; address += 0x101 {
		assert.Equal(t, mmu.Cartridge().romBanks[0][address], mmu.ReadByte(address))
	}
}

func TestMMU_shortExternalRAM(t *testing.T) {
	mmu := New()
	mmu.AttachCartridge(buildROM(t, 2, 0x03, 0x01)) // single 2 KiB bank

	mmu.WriteByte(0x0000, 0x0A)
	mmu.WriteByte(0xA000, 0x42)
	assert.Equal(t, byte(0x42), mmu.ReadByte(0xA000))

	// offsets beyond the 2 KiB bank are ignored
	mmu.WriteByte(0xA900, 0x42)
	assert.Equal(t, byte(0xFF), mmu.ReadByte(0xA900))
}

func TestMMU_writeListeners(t *testing.T) {
	mmu := New()

	var got []uint16
	deregister := mmu.AddWriteListener(RegionWRAM, func(address uint16, value byte) {
		got = append(got, address)
	})

	mmu.WriteByte(0xC000, 1)
	mmu.WriteByte(0xFF80, 1) // different region, not notified
	assert.Equal(t, []uint16{0xC000}, got)

	// quiet writes skip the fan-out
	mmu.WriteByteQuiet(0xC001, 1)
	assert.Len(t, got, 1)

	deregister()
	mmu.WriteByte(0xC002, 1)
	assert.Len(t, got, 1)
}

func TestMMU_watchpoints(t *testing.T) {
	mmu := New()

	type hit struct {
		address uint16
		kind    WatchpointKind
	}
	var hits []hit
	mmu.WatchpointHit = func(address uint16, kind WatchpointKind) {
		hits = append(hits, hit{address, kind})
	}

	mmu.AddWatchpoint(0xC000, WatchWrite)
	mmu.AddWatchpoint(0xC000, WatchRead)

	mmu.WriteByte(0xC000, 0x42)
	value := mmu.ReadByte(0xC000)

	// semantics are unchanged by the hits
	assert.Equal(t, byte(0x42), value)
	assert.Equal(t, []hit{{0xC000, WatchWrite}, {0xC000, WatchRead}}, hits)

	mmu.RemoveWatchpoint(0xC000, WatchWrite)
	mmu.WriteByte(0xC000, 0x43)
	assert.Len(t, hits, 2)
}

func TestMMU_ioHandlerDispatch(t *testing.T) {
	mmu := New()
	handler := &recordingHandler{value: 0xAB}
	mmu.RegisterIO(0xFF42, 0xFF43, handler)

	assert.Equal(t, byte(0xAB), mmu.ReadByte(0xFF42))
	mmu.WriteByte(0xFF43, 0x07)
	assert.Equal(t, uint16(0xFF43), handler.lastWrite)
	assert.Equal(t, byte(0x07), handler.lastValue)

	// registers without a handler fall back to plain storage
	mmu.WriteByte(0xFF50, 0x01)
	assert.Equal(t, byte(0x01), mmu.ReadByte(0xFF50))
}

type recordingHandler struct {
	value     byte
	lastWrite uint16
	lastValue byte
}

func (h *recordingHandler) ReadIO(address uint16) byte { return h.value }
func (h *recordingHandler) WriteIO(address uint16, value byte) {
	h.lastWrite = address
	h.lastValue = value
}

func TestMMU_resetClearsRAMKeepsHandlers(t *testing.T) {
	mmu := New()
	handler := &recordingHandler{value: 0xAB}
	mmu.RegisterIO(0xFF42, 0xFF42, handler)
	mmu.AttachCartridge(buildROM(t, 4, 0x01, 0x00))

	mmu.WriteByte(0xC000, 0x42)
	mmu.WriteByte(0x2000, 0x02)
	mmu.Reset()

	assert.Equal(t, byte(0x00), mmu.ReadByte(0xC000))
	assert.Equal(t, 1, mmu.LoadedROMBank())
	assert.Equal(t, byte(0xAB), mmu.ReadByte(0xFF42))
}
