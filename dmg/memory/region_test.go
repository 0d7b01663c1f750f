package memory

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDecode(t *testing.T) {
	testCases := []struct {
		desc    string
		address uint16
		region  Region
		offset  uint16
	}{
		{desc: "ROM bank 0 start", address: 0x0000, region: RegionROMBank0, offset: 0x0000},
		{desc: "ROM bank 0 end", address: 0x3FFF, region: RegionROMBank0, offset: 0x3FFF},
		{desc: "switchable ROM", address: 0x4000, region: RegionROMOther, offset: 0x0000},
		{desc: "VRAM", address: 0x8010, region: RegionVRAM, offset: 0x0010},
		{desc: "external RAM", address: 0xA000, region: RegionExtRAM, offset: 0x0000},
		{desc: "WRAM", address: 0xC123, region: RegionWRAM, offset: 0x0123},
		{desc: "echo", address: 0xE123, region: RegionEcho, offset: 0x0123},
		{desc: "OAM", address: 0xFE9F, region: RegionOAM, offset: 0x009F},
		{desc: "unused", address: 0xFEA0, region: RegionUnused, offset: 0x0000},
		{desc: "IO", address: 0xFF40, region: RegionIO, offset: 0x0040},
		{desc: "HRAM", address: 0xFF80, region: RegionHRAM, offset: 0x0000},
		{desc: "IE", address: 0xFFFF, region: RegionInterruptEnable, offset: 0x0000},
	}
	for _, tC := range testCases {
		t.Run(tC.desc, func(t *testing.T) {
			region, offset := Decode(tC.address)
			assert.Equal(t, tC.region, region)
			assert.Equal(t, tC.offset, offset)
		})
	}
}

func TestDecode_partition(t *testing.T) {
	// every address maps to a region, and offsets stay in bounds
	for a := 0; a <= 0xFFFF; a++ {
		region, offset := Decode(uint16(a))
		assert.Less(t, int(offset), SizeOf(region), "address 0x%04X", a)
	}
}
