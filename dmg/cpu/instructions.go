package cpu

import "github.com/valerio/go-dmg/dmg/bit"

// Memory access and immediate helpers.

func (c *CPU) readImmediate() uint8 {
	value := c.mmu.ReadByte(c.pc)
	c.pc++
	return value
}

func (c *CPU) readImmediateWord() uint16 {
	low := c.readImmediate()
	high := c.readImmediate()
	return bit.Combine(high, low)
}

func (c *CPU) readImmediateSigned() int8 {
	return int8(c.readImmediate())
}

func (c *CPU) pushStack(value uint16) {
	c.sp--
	c.mmu.WriteByte(c.sp, bit.High(value))
	c.sp--
	c.mmu.WriteByte(c.sp, bit.Low(value))
}

func (c *CPU) popStack() uint16 {
	low := c.mmu.ReadByte(c.sp)
	c.sp++
	high := c.mmu.ReadByte(c.sp)
	c.sp++
	return bit.Combine(high, low)
}

// 8-bit arithmetic and logic.

func (c *CPU) inc(r *uint8) {
	*r++
	value := *r

	c.setFlagToCondition(FlagZ, value == 0)
	c.setFlagToCondition(FlagH, value&0xF == 0)
	c.resetFlag(FlagN)
}

func (c *CPU) dec(r *uint8) {
	*r--
	value := *r

	c.setFlagToCondition(FlagZ, value == 0)
	c.setFlagToCondition(FlagH, value&0xF == 0xF)
	c.setFlag(FlagN)
}

func (c *CPU) addToA(value uint8) {
	a := c.a
	result := a + value

	c.setFlagToCondition(FlagZ, result == 0)
	c.resetFlag(FlagN)
	c.setFlagToCondition(FlagH, (a&0xF)+(value&0xF) > 0xF)
	c.setFlagToCondition(FlagC, uint16(a)+uint16(value) > 0xFF)

	c.a = result
}

func (c *CPU) adcToA(value uint8) {
	a := c.a
	carry := c.flagToBit(FlagC)
	result := a + value + carry

	c.setFlagToCondition(FlagZ, result == 0)
	c.resetFlag(FlagN)
	c.setFlagToCondition(FlagH, (a&0xF)+(value&0xF)+carry > 0xF)
	c.setFlagToCondition(FlagC, uint16(a)+uint16(value)+uint16(carry) > 0xFF)

	c.a = result
}

func (c *CPU) sub(value uint8) {
	a := c.a
	c.a = a - value

	c.setFlagToCondition(FlagZ, c.a == 0)
	c.setFlag(FlagN)
	c.setFlagToCondition(FlagH, a&0xF < value&0xF)
	c.setFlagToCondition(FlagC, a < value)
}

func (c *CPU) sbc(value uint8) {
	a := c.a
	carry := c.flagToBit(FlagC)
	result := int(a) - int(value) - int(carry)
	c.a = uint8(result)

	c.setFlagToCondition(FlagZ, c.a == 0)
	c.setFlag(FlagN)
	c.setFlagToCondition(FlagH, int(a&0xF)-int(value&0xF)-int(carry) < 0)
	c.setFlagToCondition(FlagC, result < 0)
}

func (c *CPU) and(value uint8) {
	c.a &= value

	c.setFlagToCondition(FlagZ, c.a == 0)
	c.resetFlag(FlagN)
	c.setFlag(FlagH)
	c.resetFlag(FlagC)
}

func (c *CPU) or(value uint8) {
	c.a |= value

	c.setFlagToCondition(FlagZ, c.a == 0)
	c.resetFlag(FlagN)
	c.resetFlag(FlagH)
	c.resetFlag(FlagC)
}

func (c *CPU) xor(value uint8) {
	c.a ^= value

	c.setFlagToCondition(FlagZ, c.a == 0)
	c.resetFlag(FlagN)
	c.resetFlag(FlagH)
	c.resetFlag(FlagC)
}

func (c *CPU) compare(value uint8) {
	a := c.a

	c.setFlagToCondition(FlagZ, a == value)
	c.setFlag(FlagN)
	c.setFlagToCondition(FlagH, a&0xF < value&0xF)
	c.setFlagToCondition(FlagC, a < value)
}

// daa adjusts A after BCD arithmetic.
func (c *CPU) daa() {
	a := uint16(c.a)

	if c.isSetFlag(FlagN) {
		if c.isSetFlag(FlagH) {
			a = (a - 0x06) & 0xFF
		}
		if c.isSetFlag(FlagC) {
			a -= 0x60
		}
	} else {
		if c.isSetFlag(FlagH) || a&0x0F > 0x09 {
			a += 0x06
		}
		if c.isSetFlag(FlagC) || a > 0x9F {
			a += 0x60
		}
	}

	if a&0x100 != 0 {
		c.setFlag(FlagC)
	}
	c.a = uint8(a)
	c.setFlagToCondition(FlagZ, c.a == 0)
	c.resetFlag(FlagH)
}

// 16-bit arithmetic.

func (c *CPU) addToHL(value uint16) {
	hl := c.getHL()
	result := hl + value

	c.resetFlag(FlagN)
	c.setFlagToCondition(FlagH, (hl&0xFFF)+(value&0xFFF) > 0xFFF)
	c.setFlagToCondition(FlagC, uint32(hl)+uint32(value) > 0xFFFF)

	c.setHL(result)
}

// addSignedToSP computes SP + e8 with the half carry and carry derived
// from the low byte, as ADD SP,e8 and LD HL,SP+e8 do.
func (c *CPU) addSignedToSP(offset int8) uint16 {
	sp := c.sp
	result := uint16(int32(sp) + int32(offset))

	c.resetFlag(FlagZ)
	c.resetFlag(FlagN)
	c.setFlagToCondition(FlagH, (sp&0xF)+(uint16(uint8(offset))&0xF) > 0xF)
	c.setFlagToCondition(FlagC, (sp&0xFF)+uint16(uint8(offset)) > 0xFF)

	return result
}

// Rotates and shifts. These implement the CB-prefixed semantics (Z set on
// a zero result); the accumulator forms RLCA/RLA/RRCA/RRA clear Z after.

func (c *CPU) rlc(value uint8) uint8 {
	carry := value >> 7
	result := (value << 1) | carry

	c.setFlagToCondition(FlagZ, result == 0)
	c.resetFlag(FlagN)
	c.resetFlag(FlagH)
	c.setFlagToCondition(FlagC, carry == 1)

	return result
}

func (c *CPU) rl(value uint8) uint8 {
	result := (value << 1) | c.flagToBit(FlagC)

	c.setFlagToCondition(FlagZ, result == 0)
	c.resetFlag(FlagN)
	c.resetFlag(FlagH)
	c.setFlagToCondition(FlagC, value > 0x7F)

	return result
}

func (c *CPU) rrc(value uint8) uint8 {
	carry := value & 1
	result := (value >> 1) | (carry << 7)

	c.setFlagToCondition(FlagZ, result == 0)
	c.resetFlag(FlagN)
	c.resetFlag(FlagH)
	c.setFlagToCondition(FlagC, carry == 1)

	return result
}

func (c *CPU) rr(value uint8) uint8 {
	result := (value >> 1) | (c.flagToBit(FlagC) << 7)

	c.setFlagToCondition(FlagZ, result == 0)
	c.resetFlag(FlagN)
	c.resetFlag(FlagH)
	c.setFlagToCondition(FlagC, value&1 == 1)

	return result
}

func (c *CPU) sla(value uint8) uint8 {
	result := value << 1

	c.setFlagToCondition(FlagZ, result == 0)
	c.resetFlag(FlagN)
	c.resetFlag(FlagH)
	c.setFlagToCondition(FlagC, value > 0x7F)

	return result
}

func (c *CPU) sra(value uint8) uint8 {
	result := (value >> 1) | (value & 0x80)

	c.setFlagToCondition(FlagZ, result == 0)
	c.resetFlag(FlagN)
	c.resetFlag(FlagH)
	c.setFlagToCondition(FlagC, value&1 == 1)

	return result
}

func (c *CPU) swap(value uint8) uint8 {
	result := (value << 4) | (value >> 4)

	c.setFlagToCondition(FlagZ, result == 0)
	c.resetFlag(FlagN)
	c.resetFlag(FlagH)
	c.resetFlag(FlagC)

	return result
}

func (c *CPU) srl(value uint8) uint8 {
	result := value >> 1

	c.setFlagToCondition(FlagZ, result == 0)
	c.resetFlag(FlagN)
	c.resetFlag(FlagH)
	c.setFlagToCondition(FlagC, value&1 == 1)

	return result
}

// bitTest implements BIT n, value.
func (c *CPU) bitTest(index uint8, value uint8) {
	c.setFlagToCondition(FlagZ, !bit.IsSet(index, value))
	c.resetFlag(FlagN)
	c.setFlag(FlagH)
}

// Control flow.

// jr adds the signed immediate to PC.
func (c *CPU) jr() {
	offset := c.readImmediateSigned()
	c.pc = uint16(int32(c.pc) + int32(offset))
}

// skipJr consumes the immediate of an untaken JR.
func (c *CPU) skipJr() {
	c.pc++
}

func (c *CPU) call(target uint16) {
	c.pushStack(c.pc)
	c.pc = target
}

func (c *CPU) ret() {
	c.pc = c.popStack()
}

// Memory-operand helpers for (HL).

func (c *CPU) readHL() uint8 {
	return c.mmu.ReadByte(c.getHL())
}

func (c *CPU) writeHL(value uint8) {
	c.mmu.WriteByte(c.getHL(), value)
}
