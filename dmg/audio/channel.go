package audio

// dutyPatterns are the four square wave shapes, one bit per duty step.
var dutyPatterns = [4][8]uint8{
	{0, 0, 0, 0, 0, 0, 0, 1}, // 12.5%
	{1, 0, 0, 0, 0, 0, 0, 1}, // 25%
	{1, 0, 0, 0, 0, 1, 1, 1}, // 50%
	{0, 1, 1, 1, 1, 1, 1, 0}, // 75%
}

// squareChannel is one of the two square wave channels. Channel 1 also has
// the frequency sweep unit; channel 2 ignores those fields.
type squareChannel struct {
	on         bool
	dacEnabled bool // NRx2 bits 7-3 non-zero

	duty     uint8 // wave shape, 0 to 3
	dutyStep uint8 // position in the 8-step pattern

	freq      uint16 // 11-bit period value from NRx3/NRx4
	freqTimer int    // T-cycles until the duty step advances

	length       int // 6-bit length counter, counts down from 64
	lengthEnable bool

	envInitial uint8 // initial volume, 0 to 15
	envUp      bool
	envPeriod  uint8
	envVolume  uint8 // current volume
	envCounter uint8

	// Frequency sweep (channel 1 only)
	sweepPeriod  uint8
	sweepDown    bool
	sweepShift   uint8
	sweepTimer   uint8
	sweepEnabled bool
	shadowFreq   uint16
}

// periodCycles is the duty step period in T-cycles.
func (ch *squareChannel) periodCycles() int {
	return (2048 - int(ch.freq&0x7FF)) * 4
}

// tickMachineCycle advances the frequency timer by 4 T-cycles, stepping the
// duty position each time it elapses.
func (ch *squareChannel) tickMachineCycle() {
	if ch.freqTimer <= 0 {
		ch.freqTimer = ch.periodCycles()
	}

	ch.freqTimer -= 4
	for ch.freqTimer <= 0 {
		ch.freqTimer += ch.periodCycles()
		ch.dutyStep = (ch.dutyStep + 1) & 0x7
	}
}

// sample returns the current output level, 0 to 15.
func (ch *squareChannel) sample() int {
	if !ch.on || !ch.dacEnabled {
		return 0
	}
	return int(dutyPatterns[ch.duty&0x3][ch.dutyStep]) * int(ch.envVolume)
}

// trigger starts the channel: reload length if it ran out, reseed the
// frequency timer and the volume envelope, and turn the channel on.
func (ch *squareChannel) trigger() {
	if ch.length == 0 {
		ch.length = 64
	}
	ch.freqTimer = ch.periodCycles()
	ch.envVolume = ch.envInitial
	ch.envCounter = ch.envPeriod
	ch.on = ch.dacEnabled
}

// triggerSweep initializes the sweep unit on trigger (channel 1 only).
// Returns false if the immediate overflow check kills the channel.
func (ch *squareChannel) triggerSweep() bool {
	ch.shadowFreq = ch.freq
	ch.sweepTimer = ch.sweepPeriod
	if ch.sweepTimer == 0 {
		ch.sweepTimer = 8
	}
	ch.sweepEnabled = ch.sweepPeriod != 0 || ch.sweepShift != 0

	if ch.sweepShift != 0 {
		if _, overflow := ch.sweepTarget(); overflow {
			ch.on = false
			return false
		}
	}
	return true
}

// sweepTarget computes the next sweep frequency without mutating state.
func (ch *squareChannel) sweepTarget() (uint16, bool) {
	change := ch.shadowFreq >> ch.sweepShift
	if ch.sweepDown {
		if change > ch.shadowFreq {
			return 0, false
		}
		return ch.shadowFreq - change, false
	}
	next := ch.shadowFreq + change
	return next, next > 2047
}

// clockLength counts the length timer down, silencing the channel at zero.
func (ch *squareChannel) clockLength() {
	if !ch.lengthEnable || ch.length == 0 {
		return
	}
	ch.length--
	if ch.length == 0 {
		ch.on = false
	}
}

// clockEnvelope steps the volume envelope.
func (ch *squareChannel) clockEnvelope() {
	if ch.envPeriod == 0 {
		return
	}
	if ch.envCounter > 0 {
		ch.envCounter--
	}
	if ch.envCounter > 0 {
		return
	}
	ch.envCounter = ch.envPeriod

	if ch.envUp && ch.envVolume < 15 {
		ch.envVolume++
	} else if !ch.envUp && ch.envVolume > 0 {
		ch.envVolume--
	}
}

// clockSweep steps the frequency sweep (channel 1 only).
func (ch *squareChannel) clockSweep() {
	if !ch.sweepEnabled {
		return
	}

	if ch.sweepTimer > 0 {
		ch.sweepTimer--
	}
	if ch.sweepTimer > 0 {
		return
	}

	ch.sweepTimer = ch.sweepPeriod
	if ch.sweepTimer == 0 {
		ch.sweepTimer = 8
	}
	if ch.sweepPeriod == 0 {
		return
	}

	next, overflow := ch.sweepTarget()
	if overflow {
		ch.on = false
		return
	}
	if ch.sweepShift != 0 {
		ch.freq = next & 0x7FF
		ch.shadowFreq = next & 0x7FF
		if _, overflow := ch.sweepTarget(); overflow {
			ch.on = false
		}
	}
}

func (ch *squareChannel) reset() {
	*ch = squareChannel{}
}
