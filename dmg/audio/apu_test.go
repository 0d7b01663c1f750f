package audio

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/valerio/go-dmg/dmg/addr"
)

func powerOn(a *APU) {
	a.WriteIO(addr.NR52, 0x80)
}

func TestAPU_powerBit(t *testing.T) {
	a := New()

	assert.Equal(t, byte(0x70), a.ReadIO(addr.NR52))

	powerOn(a)
	assert.Equal(t, byte(0xF0), a.ReadIO(addr.NR52))
}

func TestAPU_registersIgnoredWhilePoweredOff(t *testing.T) {
	a := New()

	a.WriteIO(addr.NR11, 0x80)
	assert.Equal(t, byte(0x3F), a.ReadIO(addr.NR11))

	powerOn(a)
	a.WriteIO(addr.NR11, 0x80)
	assert.Equal(t, byte(0xBF), a.ReadIO(addr.NR11))
}

func TestAPU_readMasks(t *testing.T) {
	a := New()
	powerOn(a)

	testCases := []struct {
		desc    string
		address uint16
		written byte
		read    byte
	}{
		{desc: "NR10 bit 7 reads high", address: addr.NR10, written: 0x00, read: 0x80},
		{desc: "NR11 length bits read high", address: addr.NR11, written: 0x40, read: 0x7F},
		{desc: "NR12 fully readable", address: addr.NR12, written: 0xA7, read: 0xA7},
		{desc: "NR13 write only", address: addr.NR13, written: 0x12, read: 0xFF},
		{desc: "NR14 only length enable readable", address: addr.NR14, written: 0x40, read: 0xFF},
		{desc: "NR50 fully readable", address: addr.NR50, written: 0x77, read: 0x77},
		{desc: "NR51 fully readable", address: addr.NR51, written: 0xF3, read: 0xF3},
	}
	for _, tC := range testCases {
		t.Run(tC.desc, func(t *testing.T) {
			a.WriteIO(tC.address, tC.written)
			assert.Equal(t, tC.read, a.ReadIO(tC.address))
		})
	}
}

func TestAPU_triggerTurnsChannelOn(t *testing.T) {
	a := New()
	powerOn(a)

	a.WriteIO(addr.NR12, 0xF0) // DAC on, volume 15
	a.WriteIO(addr.NR13, 0x00)
	a.WriteIO(addr.NR14, 0x80) // trigger

	assert.True(t, a.ChannelOn(1))
	assert.Equal(t, byte(0xF1), a.ReadIO(addr.NR52))
}

func TestAPU_dacOffSilencesChannel(t *testing.T) {
	a := New()
	powerOn(a)

	a.WriteIO(addr.NR12, 0xF0)
	a.WriteIO(addr.NR14, 0x80)
	require.True(t, a.ChannelOn(1))

	a.WriteIO(addr.NR12, 0x00) // DAC off
	assert.False(t, a.ChannelOn(1))
}

func TestAPU_triggerWithDacOffStaysOff(t *testing.T) {
	a := New()
	powerOn(a)

	a.WriteIO(addr.NR22, 0x00)
	a.WriteIO(addr.NR24, 0x80)
	assert.False(t, a.ChannelOn(2))
}

func TestAPU_lengthCounterExpires(t *testing.T) {
	a := New()
	powerOn(a)

	a.WriteIO(addr.NR22, 0xF0)
	a.WriteIO(addr.NR21, 0x3F) // length counter = 64 - 63 = 1
	a.WriteIO(addr.NR24, 0xC0) // trigger with length enabled
	require.True(t, a.ChannelOn(2))

	// the first sequencer step (step 0) clocks the length counter
	for i := 0; i < sequencerPeriod; i++ {
		a.TickMachineCycle()
	}

	assert.False(t, a.ChannelOn(2))
	assert.Equal(t, byte(0xF0), a.ReadIO(addr.NR52))
}

func TestAPU_triggerReloadsElapsedLength(t *testing.T) {
	a := New()
	powerOn(a)

	a.WriteIO(addr.NR22, 0xF0)
	a.WriteIO(addr.NR21, 0x3F)
	a.WriteIO(addr.NR24, 0xC0)
	for i := 0; i < sequencerPeriod; i++ {
		a.TickMachineCycle()
	}
	require.False(t, a.ChannelOn(2))

	// retriggering with a zero length counter reloads it to 64
	a.WriteIO(addr.NR24, 0xC0)
	assert.True(t, a.ChannelOn(2))
	assert.Equal(t, 64, a.ch2.length)
}

func TestAPU_envelopeSteps(t *testing.T) {
	ch := squareChannel{
		dacEnabled: true,
		envInitial: 10,
		envUp:      false,
		envPeriod:  1,
	}
	ch.trigger()
	require.Equal(t, uint8(10), ch.envVolume)

	ch.clockEnvelope()
	assert.Equal(t, uint8(9), ch.envVolume)

	ch.envUp = true
	ch.clockEnvelope()
	assert.Equal(t, uint8(10), ch.envVolume)
}

func TestAPU_sweepOverflowKillsChannel(t *testing.T) {
	a := New()
	powerOn(a)

	a.WriteIO(addr.NR12, 0xF0)
	a.WriteIO(addr.NR10, 0x11) // period 1, up, shift 1
	a.WriteIO(addr.NR13, 0xFF)
	a.WriteIO(addr.NR14, 0x87) // trigger with frequency 0x7FF

	// 0x7FF + (0x7FF >> 1) overflows 2047 immediately on trigger
	assert.False(t, a.ChannelOn(1))
}

func TestAPU_squareSample(t *testing.T) {
	ch := squareChannel{
		on:         true,
		dacEnabled: true,
		duty:       2,
		envVolume:  15,
	}

	// duty 2 pattern starts high
	ch.dutyStep = 0
	assert.Equal(t, 15, ch.sample())

	ch.dutyStep = 2
	assert.Equal(t, 0, ch.sample())

	ch.on = false
	assert.Equal(t, 0, ch.sample())
}

func TestAPU_blockDelivery(t *testing.T) {
	a := New()
	powerOn(a)
	a.SetExpectedSampleRate(1024, 16) // 1024 APU samples per block

	var blocks int
	var lastRight, lastLeft []int
	a.AddListener(func(right, left []int) {
		blocks++
		lastRight = append([]int(nil), right...)
		lastLeft = append([]int(nil), left...)
	})

	for i := 0; i < samplesPerSecond/1024; i++ {
		a.TickMachineCycle()
	}

	assert.Equal(t, 1, blocks)
	assert.Len(t, lastRight, 16)
	assert.Len(t, lastLeft, 16)

	for i := 0; i < samplesPerSecond/1024; i++ {
		a.TickMachineCycle()
	}
	assert.Equal(t, 2, blocks)
}

func TestAPU_blockSizeAveragesToHostRate(t *testing.T) {
	a := New()
	powerOn(a)
	// a block count that does not divide the APU rate evenly
	a.SetExpectedSampleRate(60, 735)

	var total int
	blocks := 0
	a.AddListener(func(right, left []int) {
		blocks++
	})

	for blocks < 60 {
		a.TickMachineCycle()
		total++
	}

	// 60 blocks cover one second of APU samples, within one block's rounding
	assert.InDelta(t, samplesPerSecond, total, float64(samplesPerSecond/60))
}

func TestAPU_listenerDeregistration(t *testing.T) {
	a := New()
	powerOn(a)
	a.SetExpectedSampleRate(1024, 16)

	count := 0
	deregister := a.AddListener(func(right, left []int) { count++ })

	for i := 0; i < samplesPerSecond/1024; i++ {
		a.TickMachineCycle()
	}
	require.Equal(t, 1, count)

	deregister()
	for i := 0; i < samplesPerSecond/1024; i++ {
		a.TickMachineCycle()
	}
	assert.Equal(t, 1, count)
}

func TestAPU_powerOffClearsRegisters(t *testing.T) {
	a := New()
	powerOn(a)

	a.WriteIO(addr.NR50, 0x77)
	a.WriteIO(addr.NR12, 0xF0)
	a.WriteIO(addr.NR14, 0x80)
	require.True(t, a.ChannelOn(1))

	a.WriteIO(addr.NR52, 0x00)

	assert.False(t, a.ChannelOn(1))
	assert.Equal(t, byte(0x00), a.ReadIO(addr.NR50))
	assert.Equal(t, byte(0x70), a.ReadIO(addr.NR52))
}
