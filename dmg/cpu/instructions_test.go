package cpu

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCPU_inc(t *testing.T) {
	c, _ := newTestCPU()

	testCases := []struct {
		desc  string
		arg   uint8
		want  uint8
		flags Flag
	}{
		{desc: "increases", arg: 0x0A, want: 0x0B},
		{desc: "sets zero flag", arg: 0xFF, want: 0, flags: FlagZ | FlagH},
		{desc: "sets half carry flag", arg: 0x0F, want: 0x10, flags: FlagH},
	}
	for _, tC := range testCases {
		t.Run(tC.desc, func(t *testing.T) {
			c.f = 0
			c.a = tC.arg
			c.inc(&c.a)
			assert.Equal(t, tC.want, c.a)
			assert.Equal(t, uint8(tC.flags), c.f)
		})
	}
}

func TestCPU_dec(t *testing.T) {
	c, _ := newTestCPU()

	testCases := []struct {
		desc  string
		arg   uint8
		want  uint8
		flags Flag
	}{
		{desc: "decreases", arg: 0x0A, want: 0x09, flags: FlagN},
		{desc: "sets half carry flag", arg: 0, want: 0xFF, flags: FlagN | FlagH},
		{desc: "sets zero flag", arg: 0x01, want: 0, flags: FlagN | FlagZ},
	}
	for _, tC := range testCases {
		t.Run(tC.desc, func(t *testing.T) {
			c.f = 0
			c.a = tC.arg
			c.dec(&c.a)
			assert.Equal(t, tC.want, c.a)
			assert.Equal(t, uint8(tC.flags), c.f)
		})
	}
}

func TestCPU_adcToA(t *testing.T) {
	c, _ := newTestCPU()

	testCases := []struct {
		desc    string
		a, arg  uint8
		carryIn bool
		want    uint8
		flags   Flag
	}{
		{desc: "adds with carry in", a: 0x01, arg: 0x01, carryIn: true, want: 0x03},
		{desc: "carry out", a: 0xFF, arg: 0x01, want: 0x00, flags: FlagZ | FlagH | FlagC},
		{desc: "carry chain", a: 0xFF, arg: 0xFF, carryIn: true, want: 0xFF, flags: FlagH | FlagC},
	}
	for _, tC := range testCases {
		t.Run(tC.desc, func(t *testing.T) {
			c.f = 0
			if tC.carryIn {
				c.setFlag(FlagC)
			}
			c.a = tC.a
			c.adcToA(tC.arg)
			assert.Equal(t, tC.want, c.a)
			assert.Equal(t, uint8(tC.flags), c.f)
		})
	}
}

func TestCPU_sbc(t *testing.T) {
	c, _ := newTestCPU()

	testCases := []struct {
		desc    string
		a, arg  uint8
		carryIn bool
		want    uint8
		flags   Flag
	}{
		{desc: "subtracts with borrow", a: 0x03, arg: 0x01, carryIn: true, want: 0x01, flags: FlagN},
		{desc: "borrow out", a: 0x00, arg: 0x01, want: 0xFF, flags: FlagN | FlagH | FlagC},
		{desc: "zero result", a: 0x02, arg: 0x01, carryIn: true, want: 0x00, flags: FlagZ | FlagN},
	}
	for _, tC := range testCases {
		t.Run(tC.desc, func(t *testing.T) {
			c.f = 0
			if tC.carryIn {
				c.setFlag(FlagC)
			}
			c.a = tC.a
			c.sbc(tC.arg)
			assert.Equal(t, tC.want, c.a)
			assert.Equal(t, uint8(tC.flags), c.f)
		})
	}
}

func TestCPU_addToHL(t *testing.T) {
	c, _ := newTestCPU()

	testCases := []struct {
		desc  string
		hl    uint16
		arg   uint16
		want  uint16
		flags Flag
	}{
		{desc: "adds", hl: 0x0100, arg: 0x0200, want: 0x0300},
		{desc: "half carry from bit 11", hl: 0x0FFF, arg: 0x0001, want: 0x1000, flags: FlagH},
		{desc: "carry out", hl: 0xFFFF, arg: 0x0001, want: 0x0000, flags: FlagH | FlagC},
	}
	for _, tC := range testCases {
		t.Run(tC.desc, func(t *testing.T) {
			c.f = 0
			c.setHL(tC.hl)
			c.addToHL(tC.arg)
			assert.Equal(t, tC.want, c.getHL())
			assert.Equal(t, uint8(tC.flags), c.f)
		})
	}
}

func TestCPU_daa(t *testing.T) {
	c, _ := newTestCPU()

	testCases := []struct {
		desc  string
		a     uint8
		flags Flag
		want  uint8
		wantF Flag
	}{
		{desc: "adjusts after add", a: 0x0A, want: 0x10},
		{desc: "adjusts high nibble", a: 0xA0, want: 0x00, wantF: FlagZ | FlagC},
		{desc: "adjusts after subtract", a: 0x05, flags: FlagN | FlagH, want: 0xFF, wantF: FlagN},
		{desc: "bcd add carry", a: 0x9A, want: 0x00, wantF: FlagZ | FlagC},
	}
	for _, tC := range testCases {
		t.Run(tC.desc, func(t *testing.T) {
			c.f = uint8(tC.flags)
			c.a = tC.a
			c.daa()
			assert.Equal(t, tC.want, c.a)
			assert.Equal(t, uint8(tC.wantF), c.f)
		})
	}
}

func TestCPU_rotations(t *testing.T) {
	c, _ := newTestCPU()

	testCases := []struct {
		desc  string
		fn    func(uint8) uint8
		arg   uint8
		carry bool
		want  uint8
		flags Flag
	}{
		{desc: "rlc rotates left", fn: c.rlc, arg: 0x01, want: 0x02},
		{desc: "rlc carries bit 7", fn: c.rlc, arg: 0x80, want: 0x01, flags: FlagC},
		{desc: "rlc sets zero", fn: c.rlc, arg: 0x00, want: 0x00, flags: FlagZ},
		{desc: "rrc rotates right", fn: c.rrc, arg: 0x02, want: 0x01},
		{desc: "rrc carries bit 0", fn: c.rrc, arg: 0x01, want: 0x80, flags: FlagC},
		{desc: "rl shifts in carry", fn: c.rl, arg: 0x00, carry: true, want: 0x01},
		{desc: "rr shifts in carry", fn: c.rr, arg: 0x00, carry: true, want: 0x80},
		{desc: "sla shifts left", fn: c.sla, arg: 0xC0, want: 0x80, flags: FlagC},
		{desc: "sra keeps sign", fn: c.sra, arg: 0x81, want: 0xC0, flags: FlagC},
		{desc: "srl clears bit 7", fn: c.srl, arg: 0x81, want: 0x40, flags: FlagC},
		{desc: "swap exchanges nibbles", fn: c.swap, arg: 0xAB, want: 0xBA},
	}
	for _, tC := range testCases {
		t.Run(tC.desc, func(t *testing.T) {
			c.f = 0
			if tC.carry {
				c.setFlag(FlagC)
			}
			got := tC.fn(tC.arg)
			assert.Equal(t, tC.want, got)
			assert.Equal(t, uint8(tC.flags), c.f)
		})
	}
}

func TestCPU_bitTest(t *testing.T) {
	c, _ := newTestCPU()

	c.f = 0
	c.bitTest(7, 0x80)
	assert.Equal(t, uint8(FlagH), c.f)

	c.f = 0
	c.bitTest(7, 0x00)
	assert.Equal(t, uint8(FlagZ|FlagH), c.f)
}

func TestCPU_addSignedToSP(t *testing.T) {
	c, _ := newTestCPU()

	testCases := []struct {
		desc   string
		sp     uint16
		offset int8
		want   uint16
		flags  Flag
	}{
		{desc: "positive offset", sp: 0xFFF8, offset: 0x08, want: 0x0000, flags: FlagH | FlagC},
		{desc: "negative offset", sp: 0x0001, offset: -1, want: 0x0000, flags: FlagH | FlagC},
		{desc: "no carries", sp: 0x1000, offset: 0x01, want: 0x1001},
	}
	for _, tC := range testCases {
		t.Run(tC.desc, func(t *testing.T) {
			c.f = 0
			c.sp = tC.sp
			got := c.addSignedToSP(tC.offset)
			assert.Equal(t, tC.want, got)
			assert.Equal(t, uint8(tC.flags), c.f)
		})
	}
}
