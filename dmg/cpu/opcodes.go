package cpu

import "github.com/valerio/go-dmg/dmg/bit"

// opcode executes one instruction and returns its cost in machine cycles.
type opcode func(*CPU) int

// opcodes is the flat decode table for the base instruction set. Each
// entry returns its machine-cycle cost; conditional entries return the
// taken or not-taken cost.
var opcodes = [256]opcode{
	0x00: opcode0x00,
	0x01: opcode0x01,
	0x02: opcode0x02,
	0x03: opcode0x03,
	0x04: opcode0x04,
	0x05: opcode0x05,
	0x06: opcode0x06,
	0x07: opcode0x07,
	0x08: opcode0x08,
	0x09: opcode0x09,
	0x0A: opcode0x0A,
	0x0B: opcode0x0B,
	0x0C: opcode0x0C,
	0x0D: opcode0x0D,
	0x0E: opcode0x0E,
	0x0F: opcode0x0F,
	0x10: opcode0x10,
	0x11: opcode0x11,
	0x12: opcode0x12,
	0x13: opcode0x13,
	0x14: opcode0x14,
	0x15: opcode0x15,
	0x16: opcode0x16,
	0x17: opcode0x17,
	0x18: opcode0x18,
	0x19: opcode0x19,
	0x1A: opcode0x1A,
	0x1B: opcode0x1B,
	0x1C: opcode0x1C,
	0x1D: opcode0x1D,
	0x1E: opcode0x1E,
	0x1F: opcode0x1F,
	0x20: opcode0x20,
	0x21: opcode0x21,
	0x22: opcode0x22,
	0x23: opcode0x23,
	0x24: opcode0x24,
	0x25: opcode0x25,
	0x26: opcode0x26,
	0x27: opcode0x27,
	0x28: opcode0x28,
	0x29: opcode0x29,
	0x2A: opcode0x2A,
	0x2B: opcode0x2B,
	0x2C: opcode0x2C,
	0x2D: opcode0x2D,
	0x2E: opcode0x2E,
	0x2F: opcode0x2F,
	0x30: opcode0x30,
	0x31: opcode0x31,
	0x32: opcode0x32,
	0x33: opcode0x33,
	0x34: opcode0x34,
	0x35: opcode0x35,
	0x36: opcode0x36,
	0x37: opcode0x37,
	0x38: opcode0x38,
	0x39: opcode0x39,
	0x3A: opcode0x3A,
	0x3B: opcode0x3B,
	0x3C: opcode0x3C,
	0x3D: opcode0x3D,
	0x3E: opcode0x3E,
	0x3F: opcode0x3F,
	0x40: opcode0x40,
	0x41: opcode0x41,
	0x42: opcode0x42,
	0x43: opcode0x43,
	0x44: opcode0x44,
	0x45: opcode0x45,
	0x46: opcode0x46,
	0x47: opcode0x47,
	0x48: opcode0x48,
	0x49: opcode0x49,
	0x4A: opcode0x4A,
	0x4B: opcode0x4B,
	0x4C: opcode0x4C,
	0x4D: opcode0x4D,
	0x4E: opcode0x4E,
	0x4F: opcode0x4F,
	0x50: opcode0x50,
	0x51: opcode0x51,
	0x52: opcode0x52,
	0x53: opcode0x53,
	0x54: opcode0x54,
	0x55: opcode0x55,
	0x56: opcode0x56,
	0x57: opcode0x57,
	0x58: opcode0x58,
	0x59: opcode0x59,
	0x5A: opcode0x5A,
	0x5B: opcode0x5B,
	0x5C: opcode0x5C,
	0x5D: opcode0x5D,
	0x5E: opcode0x5E,
	0x5F: opcode0x5F,
	0x60: opcode0x60,
	0x61: opcode0x61,
	0x62: opcode0x62,
	0x63: opcode0x63,
	0x64: opcode0x64,
	0x65: opcode0x65,
	0x66: opcode0x66,
	0x67: opcode0x67,
	0x68: opcode0x68,
	0x69: opcode0x69,
	0x6A: opcode0x6A,
	0x6B: opcode0x6B,
	0x6C: opcode0x6C,
	0x6D: opcode0x6D,
	0x6E: opcode0x6E,
	0x6F: opcode0x6F,
	0x70: opcode0x70,
	0x71: opcode0x71,
	0x72: opcode0x72,
	0x73: opcode0x73,
	0x74: opcode0x74,
	0x75: opcode0x75,
	0x76: opcode0x76,
	0x77: opcode0x77,
	0x78: opcode0x78,
	0x79: opcode0x79,
	0x7A: opcode0x7A,
	0x7B: opcode0x7B,
	0x7C: opcode0x7C,
	0x7D: opcode0x7D,
	0x7E: opcode0x7E,
	0x7F: opcode0x7F,
	0x80: opcode0x80,
	0x81: opcode0x81,
	0x82: opcode0x82,
	0x83: opcode0x83,
	0x84: opcode0x84,
	0x85: opcode0x85,
	0x86: opcode0x86,
	0x87: opcode0x87,
	0x88: opcode0x88,
	0x89: opcode0x89,
	0x8A: opcode0x8A,
	0x8B: opcode0x8B,
	0x8C: opcode0x8C,
	0x8D: opcode0x8D,
	0x8E: opcode0x8E,
	0x8F: opcode0x8F,
	0x90: opcode0x90,
	0x91: opcode0x91,
	0x92: opcode0x92,
	0x93: opcode0x93,
	0x94: opcode0x94,
	0x95: opcode0x95,
	0x96: opcode0x96,
	0x97: opcode0x97,
	0x98: opcode0x98,
	0x99: opcode0x99,
	0x9A: opcode0x9A,
	0x9B: opcode0x9B,
	0x9C: opcode0x9C,
	0x9D: opcode0x9D,
	0x9E: opcode0x9E,
	0x9F: opcode0x9F,
	0xA0: opcode0xA0,
	0xA1: opcode0xA1,
	0xA2: opcode0xA2,
	0xA3: opcode0xA3,
	0xA4: opcode0xA4,
	0xA5: opcode0xA5,
	0xA6: opcode0xA6,
	0xA7: opcode0xA7,
	0xA8: opcode0xA8,
	0xA9: opcode0xA9,
	0xAA: opcode0xAA,
	0xAB: opcode0xAB,
	0xAC: opcode0xAC,
	0xAD: opcode0xAD,
	0xAE: opcode0xAE,
	0xAF: opcode0xAF,
	0xB0: opcode0xB0,
	0xB1: opcode0xB1,
	0xB2: opcode0xB2,
	0xB3: opcode0xB3,
	0xB4: opcode0xB4,
	0xB5: opcode0xB5,
	0xB6: opcode0xB6,
	0xB7: opcode0xB7,
	0xB8: opcode0xB8,
	0xB9: opcode0xB9,
	0xBA: opcode0xBA,
	0xBB: opcode0xBB,
	0xBC: opcode0xBC,
	0xBD: opcode0xBD,
	0xBE: opcode0xBE,
	0xBF: opcode0xBF,
	0xC0: opcode0xC0,
	0xC1: opcode0xC1,
	0xC2: opcode0xC2,
	0xC3: opcode0xC3,
	0xC4: opcode0xC4,
	0xC5: opcode0xC5,
	0xC6: opcode0xC6,
	0xC7: opcode0xC7,
	0xC8: opcode0xC8,
	0xC9: opcode0xC9,
	0xCA: opcode0xCA,
	0xCB: opcode0xCB,
	0xCC: opcode0xCC,
	0xCD: opcode0xCD,
	0xCE: opcode0xCE,
	0xCF: opcode0xCF,
	0xD0: opcode0xD0,
	0xD1: opcode0xD1,
	0xD2: opcode0xD2,
	0xD3: illegalOpcode,
	0xD4: opcode0xD4,
	0xD5: opcode0xD5,
	0xD6: opcode0xD6,
	0xD7: opcode0xD7,
	0xD8: opcode0xD8,
	0xD9: opcode0xD9,
	0xDA: opcode0xDA,
	0xDB: illegalOpcode,
	0xDC: opcode0xDC,
	0xDD: illegalOpcode,
	0xDE: opcode0xDE,
	0xDF: opcode0xDF,
	0xE0: opcode0xE0,
	0xE1: opcode0xE1,
	0xE2: opcode0xE2,
	0xE3: illegalOpcode,
	0xE4: illegalOpcode,
	0xE5: opcode0xE5,
	0xE6: opcode0xE6,
	0xE7: opcode0xE7,
	0xE8: opcode0xE8,
	0xE9: opcode0xE9,
	0xEA: opcode0xEA,
	0xEB: illegalOpcode,
	0xEC: illegalOpcode,
	0xED: illegalOpcode,
	0xEE: opcode0xEE,
	0xEF: opcode0xEF,
	0xF0: opcode0xF0,
	0xF1: opcode0xF1,
	0xF2: opcode0xF2,
	0xF3: opcode0xF3,
	0xF4: illegalOpcode,
	0xF5: opcode0xF5,
	0xF6: opcode0xF6,
	0xF7: opcode0xF7,
	0xF8: opcode0xF8,
	0xF9: opcode0xF9,
	0xFA: opcode0xFA,
	0xFB: opcode0xFB,
	0xFC: illegalOpcode,
	0xFD: illegalOpcode,
	0xFE: opcode0xFE,
	0xFF: opcode0xFF,
}

// LD BC, nn
// #0x01:
func opcode0x01(cpu *CPU) int {
	cpu.setBC(cpu.readImmediateWord())
	return 3
}

// INC BC
// #0x03:
func opcode0x03(cpu *CPU) int {
	cpu.setBC(cpu.getBC() + 1)
	return 2
}

// DEC BC
// #0x0B:
func opcode0x0B(cpu *CPU) int {
	cpu.setBC(cpu.getBC() - 1)
	return 2
}

// ADD HL, BC
// #0x09:
func opcode0x09(cpu *CPU) int {
	cpu.addToHL(cpu.getBC())
	return 2
}

// LD DE, nn
// #0x11:
func opcode0x11(cpu *CPU) int {
	cpu.setDE(cpu.readImmediateWord())
	return 3
}

// INC DE
// #0x13:
func opcode0x13(cpu *CPU) int {
	cpu.setDE(cpu.getDE() + 1)
	return 2
}

// DEC DE
// #0x1B:
func opcode0x1B(cpu *CPU) int {
	cpu.setDE(cpu.getDE() - 1)
	return 2
}

// ADD HL, DE
// #0x19:
func opcode0x19(cpu *CPU) int {
	cpu.addToHL(cpu.getDE())
	return 2
}

// LD HL, nn
// #0x21:
func opcode0x21(cpu *CPU) int {
	cpu.setHL(cpu.readImmediateWord())
	return 3
}

// INC HL
// #0x23:
func opcode0x23(cpu *CPU) int {
	cpu.setHL(cpu.getHL() + 1)
	return 2
}

// DEC HL
// #0x2B:
func opcode0x2B(cpu *CPU) int {
	cpu.setHL(cpu.getHL() - 1)
	return 2
}

// ADD HL, HL
// #0x29:
func opcode0x29(cpu *CPU) int {
	cpu.addToHL(cpu.getHL())
	return 2
}

// LD SP, nn
// #0x31:
func opcode0x31(cpu *CPU) int {
	cpu.sp = cpu.readImmediateWord()
	return 3
}

// INC SP
// #0x33:
func opcode0x33(cpu *CPU) int {
	cpu.sp = cpu.sp + 1
	return 2
}

// DEC SP
// #0x3B:
func opcode0x3B(cpu *CPU) int {
	cpu.sp = cpu.sp - 1
	return 2
}

// ADD HL, SP
// #0x39:
func opcode0x39(cpu *CPU) int {
	cpu.addToHL(cpu.sp)
	return 2
}

// NOP
// #0x00:
func opcode0x00(cpu *CPU) int {
	return 1
}

// LD (BC), A
// #0x02:
func opcode0x02(cpu *CPU) int {
	cpu.mmu.WriteByte(cpu.getBC(), cpu.a)
	return 2
}

// LD A, (BC)
// #0x0A:
func opcode0x0A(cpu *CPU) int {
	cpu.a = cpu.mmu.ReadByte(cpu.getBC())
	return 2
}

// LD (DE), A
// #0x12:
func opcode0x12(cpu *CPU) int {
	cpu.mmu.WriteByte(cpu.getDE(), cpu.a)
	return 2
}

// LD A, (DE)
// #0x1A:
func opcode0x1A(cpu *CPU) int {
	cpu.a = cpu.mmu.ReadByte(cpu.getDE())
	return 2
}

// LD (HL+), A
// #0x22:
func opcode0x22(cpu *CPU) int {
	cpu.writeHL(cpu.a)
	cpu.setHL(cpu.getHL() + 1)
	return 2
}

// LD A, (HL+)
// #0x2A:
func opcode0x2A(cpu *CPU) int {
	cpu.a = cpu.readHL()
	cpu.setHL(cpu.getHL() + 1)
	return 2
}

// LD (HL-), A
// #0x32:
func opcode0x32(cpu *CPU) int {
	cpu.writeHL(cpu.a)
	cpu.setHL(cpu.getHL() - 1)
	return 2
}

// LD A, (HL-)
// #0x3A:
func opcode0x3A(cpu *CPU) int {
	cpu.a = cpu.readHL()
	cpu.setHL(cpu.getHL() - 1)
	return 2
}

// INC B
// #0x04:
func opcode0x04(cpu *CPU) int {
	cpu.inc(&cpu.b)
	return 1
}

// DEC B
// #0x05:
func opcode0x05(cpu *CPU) int {
	cpu.dec(&cpu.b)
	return 1
}

// LD B, n
// #0x06:
func opcode0x06(cpu *CPU) int {
	cpu.b = cpu.readImmediate()
	return 2
}

// INC C
// #0x0C:
func opcode0x0C(cpu *CPU) int {
	cpu.inc(&cpu.c)
	return 1
}

// DEC C
// #0x0D:
func opcode0x0D(cpu *CPU) int {
	cpu.dec(&cpu.c)
	return 1
}

// LD C, n
// #0x0E:
func opcode0x0E(cpu *CPU) int {
	cpu.c = cpu.readImmediate()
	return 2
}

// INC D
// #0x14:
func opcode0x14(cpu *CPU) int {
	cpu.inc(&cpu.d)
	return 1
}

// DEC D
// #0x15:
func opcode0x15(cpu *CPU) int {
	cpu.dec(&cpu.d)
	return 1
}

// LD D, n
// #0x16:
func opcode0x16(cpu *CPU) int {
	cpu.d = cpu.readImmediate()
	return 2
}

// INC E
// #0x1C:
func opcode0x1C(cpu *CPU) int {
	cpu.inc(&cpu.e)
	return 1
}

// DEC E
// #0x1D:
func opcode0x1D(cpu *CPU) int {
	cpu.dec(&cpu.e)
	return 1
}

// LD E, n
// #0x1E:
func opcode0x1E(cpu *CPU) int {
	cpu.e = cpu.readImmediate()
	return 2
}

// INC H
// #0x24:
func opcode0x24(cpu *CPU) int {
	cpu.inc(&cpu.h)
	return 1
}

// DEC H
// #0x25:
func opcode0x25(cpu *CPU) int {
	cpu.dec(&cpu.h)
	return 1
}

// LD H, n
// #0x26:
func opcode0x26(cpu *CPU) int {
	cpu.h = cpu.readImmediate()
	return 2
}

// INC L
// #0x2C:
func opcode0x2C(cpu *CPU) int {
	cpu.inc(&cpu.l)
	return 1
}

// DEC L
// #0x2D:
func opcode0x2D(cpu *CPU) int {
	cpu.dec(&cpu.l)
	return 1
}

// LD L, n
// #0x2E:
func opcode0x2E(cpu *CPU) int {
	cpu.l = cpu.readImmediate()
	return 2
}

// INC (HL)
// #0x34:
func opcode0x34(cpu *CPU) int {
	value := cpu.readHL()
	cpu.inc(&value)
	cpu.writeHL(value)
	return 3
}

// DEC (HL)
// #0x35:
func opcode0x35(cpu *CPU) int {
	value := cpu.readHL()
	cpu.dec(&value)
	cpu.writeHL(value)
	return 3
}

// LD (HL), n
// #0x36:
func opcode0x36(cpu *CPU) int {
	cpu.writeHL(cpu.readImmediate())
	return 3
}

// INC A
// #0x3C:
func opcode0x3C(cpu *CPU) int {
	cpu.inc(&cpu.a)
	return 1
}

// DEC A
// #0x3D:
func opcode0x3D(cpu *CPU) int {
	cpu.dec(&cpu.a)
	return 1
}

// LD A, n
// #0x3E:
func opcode0x3E(cpu *CPU) int {
	cpu.a = cpu.readImmediate()
	return 2
}

// RLCA
// #0x07:
func opcode0x07(cpu *CPU) int {
	cpu.a = cpu.rlc(cpu.a)
	cpu.resetFlag(FlagZ)
	return 1
}

// RRCA
// #0x0F:
func opcode0x0F(cpu *CPU) int {
	cpu.a = cpu.rrc(cpu.a)
	cpu.resetFlag(FlagZ)
	return 1
}

// RLA
// #0x17:
func opcode0x17(cpu *CPU) int {
	cpu.a = cpu.rl(cpu.a)
	cpu.resetFlag(FlagZ)
	return 1
}

// RRA
// #0x1F:
func opcode0x1F(cpu *CPU) int {
	cpu.a = cpu.rr(cpu.a)
	cpu.resetFlag(FlagZ)
	return 1
}

// LD (nn), SP
// #0x08:
func opcode0x08(cpu *CPU) int {
	address := cpu.readImmediateWord()
	cpu.mmu.WriteByte(address, bit.Low(cpu.sp))
	cpu.mmu.WriteByte(address+1, bit.High(cpu.sp))
	return 5
}

// STOP
// #0x10:
func opcode0x10(cpu *CPU) int {
	cpu.stop()
	cpu.pc++
	return 1
}

// JR e
// #0x18:
func opcode0x18(cpu *CPU) int {
	cpu.jr()
	return 3
}

// JR NZ, e
// #0x20:
func opcode0x20(cpu *CPU) int {
	if !cpu.isSetFlag(FlagZ) {
		cpu.jr()
		return 3
	}
	cpu.skipJr()
	return 2
}

// JR Z, e
// #0x28:
func opcode0x28(cpu *CPU) int {
	if cpu.isSetFlag(FlagZ) {
		cpu.jr()
		return 3
	}
	cpu.skipJr()
	return 2
}

// JR NC, e
// #0x30:
func opcode0x30(cpu *CPU) int {
	if !cpu.isSetFlag(FlagC) {
		cpu.jr()
		return 3
	}
	cpu.skipJr()
	return 2
}

// JR C, e
// #0x38:
func opcode0x38(cpu *CPU) int {
	if cpu.isSetFlag(FlagC) {
		cpu.jr()
		return 3
	}
	cpu.skipJr()
	return 2
}

// DAA
// #0x27:
func opcode0x27(cpu *CPU) int {
	cpu.daa()
	return 1
}

// CPL
// #0x2F:
func opcode0x2F(cpu *CPU) int {
	cpu.a = ^cpu.a
	cpu.setFlag(FlagN)
	cpu.setFlag(FlagH)
	return 1
}

// SCF
// #0x37:
func opcode0x37(cpu *CPU) int {
	cpu.setFlag(FlagC)
	cpu.resetFlag(FlagN)
	cpu.resetFlag(FlagH)
	return 1
}

// CCF
// #0x3F:
func opcode0x3F(cpu *CPU) int {
	cpu.setFlagToCondition(FlagC, !cpu.isSetFlag(FlagC))
	cpu.resetFlag(FlagN)
	cpu.resetFlag(FlagH)
	return 1
}

// LD B, B
// #0x40:
func opcode0x40(cpu *CPU) int {
	cpu.b = cpu.b
	return 1
}

// LD B, C
// #0x41:
func opcode0x41(cpu *CPU) int {
	cpu.b = cpu.c
	return 1
}

// LD B, D
// #0x42:
func opcode0x42(cpu *CPU) int {
	cpu.b = cpu.d
	return 1
}

// LD B, E
// #0x43:
func opcode0x43(cpu *CPU) int {
	cpu.b = cpu.e
	return 1
}

// LD B, H
// #0x44:
func opcode0x44(cpu *CPU) int {
	cpu.b = cpu.h
	return 1
}

// LD B, L
// #0x45:
func opcode0x45(cpu *CPU) int {
	cpu.b = cpu.l
	return 1
}

// LD B, (HL)
// #0x46:
func opcode0x46(cpu *CPU) int {
	cpu.b = cpu.readHL()
	return 2
}

// LD B, A
// #0x47:
func opcode0x47(cpu *CPU) int {
	cpu.b = cpu.a
	return 1
}

// LD C, B
// #0x48:
func opcode0x48(cpu *CPU) int {
	cpu.c = cpu.b
	return 1
}

// LD C, C
// #0x49:
func opcode0x49(cpu *CPU) int {
	cpu.c = cpu.c
	return 1
}

// LD C, D
// #0x4A:
func opcode0x4A(cpu *CPU) int {
	cpu.c = cpu.d
	return 1
}

// LD C, E
// #0x4B:
func opcode0x4B(cpu *CPU) int {
	cpu.c = cpu.e
	return 1
}

// LD C, H
// #0x4C:
func opcode0x4C(cpu *CPU) int {
	cpu.c = cpu.h
	return 1
}

// LD C, L
// #0x4D:
func opcode0x4D(cpu *CPU) int {
	cpu.c = cpu.l
	return 1
}

// LD C, (HL)
// #0x4E:
func opcode0x4E(cpu *CPU) int {
	cpu.c = cpu.readHL()
	return 2
}

// LD C, A
// #0x4F:
func opcode0x4F(cpu *CPU) int {
	cpu.c = cpu.a
	return 1
}

// LD D, B
// #0x50:
func opcode0x50(cpu *CPU) int {
	cpu.d = cpu.b
	return 1
}

// LD D, C
// #0x51:
func opcode0x51(cpu *CPU) int {
	cpu.d = cpu.c
	return 1
}

// LD D, D
// #0x52:
func opcode0x52(cpu *CPU) int {
	cpu.d = cpu.d
	return 1
}

// LD D, E
// #0x53:
func opcode0x53(cpu *CPU) int {
	cpu.d = cpu.e
	return 1
}

// LD D, H
// #0x54:
func opcode0x54(cpu *CPU) int {
	cpu.d = cpu.h
	return 1
}

// LD D, L
// #0x55:
func opcode0x55(cpu *CPU) int {
	cpu.d = cpu.l
	return 1
}

// LD D, (HL)
// #0x56:
func opcode0x56(cpu *CPU) int {
	cpu.d = cpu.readHL()
	return 2
}

// LD D, A
// #0x57:
func opcode0x57(cpu *CPU) int {
	cpu.d = cpu.a
	return 1
}

// LD E, B
// #0x58:
func opcode0x58(cpu *CPU) int {
	cpu.e = cpu.b
	return 1
}

// LD E, C
// #0x59:
func opcode0x59(cpu *CPU) int {
	cpu.e = cpu.c
	return 1
}

// LD E, D
// #0x5A:
func opcode0x5A(cpu *CPU) int {
	cpu.e = cpu.d
	return 1
}

// LD E, E
// #0x5B:
func opcode0x5B(cpu *CPU) int {
	cpu.e = cpu.e
	return 1
}

// LD E, H
// #0x5C:
func opcode0x5C(cpu *CPU) int {
	cpu.e = cpu.h
	return 1
}

// LD E, L
// #0x5D:
func opcode0x5D(cpu *CPU) int {
	cpu.e = cpu.l
	return 1
}

// LD E, (HL)
// #0x5E:
func opcode0x5E(cpu *CPU) int {
	cpu.e = cpu.readHL()
	return 2
}

// LD E, A
// #0x5F:
func opcode0x5F(cpu *CPU) int {
	cpu.e = cpu.a
	return 1
}

// LD H, B
// #0x60:
func opcode0x60(cpu *CPU) int {
	cpu.h = cpu.b
	return 1
}

// LD H, C
// #0x61:
func opcode0x61(cpu *CPU) int {
	cpu.h = cpu.c
	return 1
}

// LD H, D
// #0x62:
func opcode0x62(cpu *CPU) int {
	cpu.h = cpu.d
	return 1
}

// LD H, E
// #0x63:
func opcode0x63(cpu *CPU) int {
	cpu.h = cpu.e
	return 1
}

// LD H, H
// #0x64:
func opcode0x64(cpu *CPU) int {
	cpu.h = cpu.h
	return 1
}

// LD H, L
// #0x65:
func opcode0x65(cpu *CPU) int {
	cpu.h = cpu.l
	return 1
}

// LD H, (HL)
// #0x66:
func opcode0x66(cpu *CPU) int {
	cpu.h = cpu.readHL()
	return 2
}

// LD H, A
// #0x67:
func opcode0x67(cpu *CPU) int {
	cpu.h = cpu.a
	return 1
}

// LD L, B
// #0x68:
func opcode0x68(cpu *CPU) int {
	cpu.l = cpu.b
	return 1
}

// LD L, C
// #0x69:
func opcode0x69(cpu *CPU) int {
	cpu.l = cpu.c
	return 1
}

// LD L, D
// #0x6A:
func opcode0x6A(cpu *CPU) int {
	cpu.l = cpu.d
	return 1
}

// LD L, E
// #0x6B:
func opcode0x6B(cpu *CPU) int {
	cpu.l = cpu.e
	return 1
}

// LD L, H
// #0x6C:
func opcode0x6C(cpu *CPU) int {
	cpu.l = cpu.h
	return 1
}

// LD L, L
// #0x6D:
func opcode0x6D(cpu *CPU) int {
	cpu.l = cpu.l
	return 1
}

// LD L, (HL)
// #0x6E:
func opcode0x6E(cpu *CPU) int {
	cpu.l = cpu.readHL()
	return 2
}

// LD L, A
// #0x6F:
func opcode0x6F(cpu *CPU) int {
	cpu.l = cpu.a
	return 1
}

// LD (HL), B
// #0x70:
func opcode0x70(cpu *CPU) int {
	cpu.writeHL(cpu.b)
	return 2
}

// LD (HL), C
// #0x71:
func opcode0x71(cpu *CPU) int {
	cpu.writeHL(cpu.c)
	return 2
}

// LD (HL), D
// #0x72:
func opcode0x72(cpu *CPU) int {
	cpu.writeHL(cpu.d)
	return 2
}

// LD (HL), E
// #0x73:
func opcode0x73(cpu *CPU) int {
	cpu.writeHL(cpu.e)
	return 2
}

// LD (HL), H
// #0x74:
func opcode0x74(cpu *CPU) int {
	cpu.writeHL(cpu.h)
	return 2
}

// LD (HL), L
// #0x75:
func opcode0x75(cpu *CPU) int {
	cpu.writeHL(cpu.l)
	return 2
}

// HALT
// #0x76:
func opcode0x76(cpu *CPU) int {
	cpu.halt()
	return 1
}

// LD (HL), A
// #0x77:
func opcode0x77(cpu *CPU) int {
	cpu.writeHL(cpu.a)
	return 2
}

// LD A, B
// #0x78:
func opcode0x78(cpu *CPU) int {
	cpu.a = cpu.b
	return 1
}

// LD A, C
// #0x79:
func opcode0x79(cpu *CPU) int {
	cpu.a = cpu.c
	return 1
}

// LD A, D
// #0x7A:
func opcode0x7A(cpu *CPU) int {
	cpu.a = cpu.d
	return 1
}

// LD A, E
// #0x7B:
func opcode0x7B(cpu *CPU) int {
	cpu.a = cpu.e
	return 1
}

// LD A, H
// #0x7C:
func opcode0x7C(cpu *CPU) int {
	cpu.a = cpu.h
	return 1
}

// LD A, L
// #0x7D:
func opcode0x7D(cpu *CPU) int {
	cpu.a = cpu.l
	return 1
}

// LD A, (HL)
// #0x7E:
func opcode0x7E(cpu *CPU) int {
	cpu.a = cpu.readHL()
	return 2
}

// LD A, A
// #0x7F:
func opcode0x7F(cpu *CPU) int {
	cpu.a = cpu.a
	return 1
}

// ADD A, B
// #0x80:
func opcode0x80(cpu *CPU) int {
	cpu.addToA(cpu.b)
	return 1
}

// ADD A, C
// #0x81:
func opcode0x81(cpu *CPU) int {
	cpu.addToA(cpu.c)
	return 1
}

// ADD A, D
// #0x82:
func opcode0x82(cpu *CPU) int {
	cpu.addToA(cpu.d)
	return 1
}

// ADD A, E
// #0x83:
func opcode0x83(cpu *CPU) int {
	cpu.addToA(cpu.e)
	return 1
}

// ADD A, H
// #0x84:
func opcode0x84(cpu *CPU) int {
	cpu.addToA(cpu.h)
	return 1
}

// ADD A, L
// #0x85:
func opcode0x85(cpu *CPU) int {
	cpu.addToA(cpu.l)
	return 1
}

// ADD A, (HL)
// #0x86:
func opcode0x86(cpu *CPU) int {
	cpu.addToA(cpu.readHL())
	return 2
}

// ADD A, A
// #0x87:
func opcode0x87(cpu *CPU) int {
	cpu.addToA(cpu.a)
	return 1
}

// ADC A, B
// #0x88:
func opcode0x88(cpu *CPU) int {
	cpu.adcToA(cpu.b)
	return 1
}

// ADC A, C
// #0x89:
func opcode0x89(cpu *CPU) int {
	cpu.adcToA(cpu.c)
	return 1
}

// ADC A, D
// #0x8A:
func opcode0x8A(cpu *CPU) int {
	cpu.adcToA(cpu.d)
	return 1
}

// ADC A, E
// #0x8B:
func opcode0x8B(cpu *CPU) int {
	cpu.adcToA(cpu.e)
	return 1
}

// ADC A, H
// #0x8C:
func opcode0x8C(cpu *CPU) int {
	cpu.adcToA(cpu.h)
	return 1
}

// ADC A, L
// #0x8D:
func opcode0x8D(cpu *CPU) int {
	cpu.adcToA(cpu.l)
	return 1
}

// ADC A, (HL)
// #0x8E:
func opcode0x8E(cpu *CPU) int {
	cpu.adcToA(cpu.readHL())
	return 2
}

// ADC A, A
// #0x8F:
func opcode0x8F(cpu *CPU) int {
	cpu.adcToA(cpu.a)
	return 1
}

// SUB B
// #0x90:
func opcode0x90(cpu *CPU) int {
	cpu.sub(cpu.b)
	return 1
}

// SUB C
// #0x91:
func opcode0x91(cpu *CPU) int {
	cpu.sub(cpu.c)
	return 1
}

// SUB D
// #0x92:
func opcode0x92(cpu *CPU) int {
	cpu.sub(cpu.d)
	return 1
}

// SUB E
// #0x93:
func opcode0x93(cpu *CPU) int {
	cpu.sub(cpu.e)
	return 1
}

// SUB H
// #0x94:
func opcode0x94(cpu *CPU) int {
	cpu.sub(cpu.h)
	return 1
}

// SUB L
// #0x95:
func opcode0x95(cpu *CPU) int {
	cpu.sub(cpu.l)
	return 1
}

// SUB (HL)
// #0x96:
func opcode0x96(cpu *CPU) int {
	cpu.sub(cpu.readHL())
	return 2
}

// SUB A
// #0x97:
func opcode0x97(cpu *CPU) int {
	cpu.sub(cpu.a)
	return 1
}

// SBC A, B
// #0x98:
func opcode0x98(cpu *CPU) int {
	cpu.sbc(cpu.b)
	return 1
}

// SBC A, C
// #0x99:
func opcode0x99(cpu *CPU) int {
	cpu.sbc(cpu.c)
	return 1
}

// SBC A, D
// #0x9A:
func opcode0x9A(cpu *CPU) int {
	cpu.sbc(cpu.d)
	return 1
}

// SBC A, E
// #0x9B:
func opcode0x9B(cpu *CPU) int {
	cpu.sbc(cpu.e)
	return 1
}

// SBC A, H
// #0x9C:
func opcode0x9C(cpu *CPU) int {
	cpu.sbc(cpu.h)
	return 1
}

// SBC A, L
// #0x9D:
func opcode0x9D(cpu *CPU) int {
	cpu.sbc(cpu.l)
	return 1
}

// SBC A, (HL)
// #0x9E:
func opcode0x9E(cpu *CPU) int {
	cpu.sbc(cpu.readHL())
	return 2
}

// SBC A, A
// #0x9F:
func opcode0x9F(cpu *CPU) int {
	cpu.sbc(cpu.a)
	return 1
}

// AND B
// #0xA0:
func opcode0xA0(cpu *CPU) int {
	cpu.and(cpu.b)
	return 1
}

// AND C
// #0xA1:
func opcode0xA1(cpu *CPU) int {
	cpu.and(cpu.c)
	return 1
}

// AND D
// #0xA2:
func opcode0xA2(cpu *CPU) int {
	cpu.and(cpu.d)
	return 1
}

// AND E
// #0xA3:
func opcode0xA3(cpu *CPU) int {
	cpu.and(cpu.e)
	return 1
}

// AND H
// #0xA4:
func opcode0xA4(cpu *CPU) int {
	cpu.and(cpu.h)
	return 1
}

// AND L
// #0xA5:
func opcode0xA5(cpu *CPU) int {
	cpu.and(cpu.l)
	return 1
}

// AND (HL)
// #0xA6:
func opcode0xA6(cpu *CPU) int {
	cpu.and(cpu.readHL())
	return 2
}

// AND A
// #0xA7:
func opcode0xA7(cpu *CPU) int {
	cpu.and(cpu.a)
	return 1
}

// XOR B
// #0xA8:
func opcode0xA8(cpu *CPU) int {
	cpu.xor(cpu.b)
	return 1
}

// XOR C
// #0xA9:
func opcode0xA9(cpu *CPU) int {
	cpu.xor(cpu.c)
	return 1
}

// XOR D
// #0xAA:
func opcode0xAA(cpu *CPU) int {
	cpu.xor(cpu.d)
	return 1
}

// XOR E
// #0xAB:
func opcode0xAB(cpu *CPU) int {
	cpu.xor(cpu.e)
	return 1
}

// XOR H
// #0xAC:
func opcode0xAC(cpu *CPU) int {
	cpu.xor(cpu.h)
	return 1
}

// XOR L
// #0xAD:
func opcode0xAD(cpu *CPU) int {
	cpu.xor(cpu.l)
	return 1
}

// XOR (HL)
// #0xAE:
func opcode0xAE(cpu *CPU) int {
	cpu.xor(cpu.readHL())
	return 2
}

// XOR A
// #0xAF:
func opcode0xAF(cpu *CPU) int {
	cpu.xor(cpu.a)
	return 1
}

// OR B
// #0xB0:
func opcode0xB0(cpu *CPU) int {
	cpu.or(cpu.b)
	return 1
}

// OR C
// #0xB1:
func opcode0xB1(cpu *CPU) int {
	cpu.or(cpu.c)
	return 1
}

// OR D
// #0xB2:
func opcode0xB2(cpu *CPU) int {
	cpu.or(cpu.d)
	return 1
}

// OR E
// #0xB3:
func opcode0xB3(cpu *CPU) int {
	cpu.or(cpu.e)
	return 1
}

// OR H
// #0xB4:
func opcode0xB4(cpu *CPU) int {
	cpu.or(cpu.h)
	return 1
}

// OR L
// #0xB5:
func opcode0xB5(cpu *CPU) int {
	cpu.or(cpu.l)
	return 1
}

// OR (HL)
// #0xB6:
func opcode0xB6(cpu *CPU) int {
	cpu.or(cpu.readHL())
	return 2
}

// OR A
// #0xB7:
func opcode0xB7(cpu *CPU) int {
	cpu.or(cpu.a)
	return 1
}

// CP B
// #0xB8:
func opcode0xB8(cpu *CPU) int {
	cpu.compare(cpu.b)
	return 1
}

// CP C
// #0xB9:
func opcode0xB9(cpu *CPU) int {
	cpu.compare(cpu.c)
	return 1
}

// CP D
// #0xBA:
func opcode0xBA(cpu *CPU) int {
	cpu.compare(cpu.d)
	return 1
}

// CP E
// #0xBB:
func opcode0xBB(cpu *CPU) int {
	cpu.compare(cpu.e)
	return 1
}

// CP H
// #0xBC:
func opcode0xBC(cpu *CPU) int {
	cpu.compare(cpu.h)
	return 1
}

// CP L
// #0xBD:
func opcode0xBD(cpu *CPU) int {
	cpu.compare(cpu.l)
	return 1
}

// CP (HL)
// #0xBE:
func opcode0xBE(cpu *CPU) int {
	cpu.compare(cpu.readHL())
	return 2
}

// CP A
// #0xBF:
func opcode0xBF(cpu *CPU) int {
	cpu.compare(cpu.a)
	return 1
}

// POP BC
// #0xC1:
func opcode0xC1(cpu *CPU) int {
	cpu.setBC(cpu.popStack())
	return 3
}

// PUSH BC
// #0xC5:
func opcode0xC5(cpu *CPU) int {
	cpu.pushStack(cpu.getBC())
	return 4
}

// POP DE
// #0xD1:
func opcode0xD1(cpu *CPU) int {
	cpu.setDE(cpu.popStack())
	return 3
}

// PUSH DE
// #0xD5:
func opcode0xD5(cpu *CPU) int {
	cpu.pushStack(cpu.getDE())
	return 4
}

// POP HL
// #0xE1:
func opcode0xE1(cpu *CPU) int {
	cpu.setHL(cpu.popStack())
	return 3
}

// PUSH HL
// #0xE5:
func opcode0xE5(cpu *CPU) int {
	cpu.pushStack(cpu.getHL())
	return 4
}

// POP AF
// #0xF1:
func opcode0xF1(cpu *CPU) int {
	cpu.setAF(cpu.popStack())
	return 3
}

// PUSH AF
// #0xF5:
func opcode0xF5(cpu *CPU) int {
	cpu.pushStack(cpu.getAF())
	return 4
}

// RET NZ
// #0xC0:
func opcode0xC0(cpu *CPU) int {
	if !cpu.isSetFlag(FlagZ) {
		cpu.ret()
		return 5
	}
	return 2
}

// JP NZ, nn
// #0xC2:
func opcode0xC2(cpu *CPU) int {
	if !cpu.isSetFlag(FlagZ) {
		cpu.pc = cpu.readImmediateWord()
		return 4
	}
	cpu.pc += 2
	return 3
}

// CALL NZ, nn
// #0xC4:
func opcode0xC4(cpu *CPU) int {
	if !cpu.isSetFlag(FlagZ) {
		cpu.call(cpu.readImmediateWord())
		return 6
	}
	cpu.pc += 2
	return 3
}

// RET Z
// #0xC8:
func opcode0xC8(cpu *CPU) int {
	if cpu.isSetFlag(FlagZ) {
		cpu.ret()
		return 5
	}
	return 2
}

// JP Z, nn
// #0xCA:
func opcode0xCA(cpu *CPU) int {
	if cpu.isSetFlag(FlagZ) {
		cpu.pc = cpu.readImmediateWord()
		return 4
	}
	cpu.pc += 2
	return 3
}

// CALL Z, nn
// #0xCC:
func opcode0xCC(cpu *CPU) int {
	if cpu.isSetFlag(FlagZ) {
		cpu.call(cpu.readImmediateWord())
		return 6
	}
	cpu.pc += 2
	return 3
}

// RET NC
// #0xD0:
func opcode0xD0(cpu *CPU) int {
	if !cpu.isSetFlag(FlagC) {
		cpu.ret()
		return 5
	}
	return 2
}

// JP NC, nn
// #0xD2:
func opcode0xD2(cpu *CPU) int {
	if !cpu.isSetFlag(FlagC) {
		cpu.pc = cpu.readImmediateWord()
		return 4
	}
	cpu.pc += 2
	return 3
}

// CALL NC, nn
// #0xD4:
func opcode0xD4(cpu *CPU) int {
	if !cpu.isSetFlag(FlagC) {
		cpu.call(cpu.readImmediateWord())
		return 6
	}
	cpu.pc += 2
	return 3
}

// RET C
// #0xD8:
func opcode0xD8(cpu *CPU) int {
	if cpu.isSetFlag(FlagC) {
		cpu.ret()
		return 5
	}
	return 2
}

// JP C, nn
// #0xDA:
func opcode0xDA(cpu *CPU) int {
	if cpu.isSetFlag(FlagC) {
		cpu.pc = cpu.readImmediateWord()
		return 4
	}
	cpu.pc += 2
	return 3
}

// CALL C, nn
// #0xDC:
func opcode0xDC(cpu *CPU) int {
	if cpu.isSetFlag(FlagC) {
		cpu.call(cpu.readImmediateWord())
		return 6
	}
	cpu.pc += 2
	return 3
}

// JP nn
// #0xC3:
func opcode0xC3(cpu *CPU) int {
	cpu.pc = cpu.readImmediateWord()
	return 4
}

// RET
// #0xC9:
func opcode0xC9(cpu *CPU) int {
	cpu.ret()
	return 4
}

// CALL nn
// #0xCD:
func opcode0xCD(cpu *CPU) int {
	cpu.call(cpu.readImmediateWord())
	return 6
}

// RETI
// #0xD9:
func opcode0xD9(cpu *CPU) int {
	cpu.ret()
	cpu.ime = true
	return 4
}

// PREFIX CB
// #0xCB:
func opcode0xCB(cpu *CPU) int {
	next := cpu.readImmediate()
	cpu.currentOpcode = next
	return opcodesCB[next](cpu)
}

// RST 00H
// #0xC7:
func opcode0xC7(cpu *CPU) int {
	cpu.call(0x0000)
	return 4
}

// RST 08H
// #0xCF:
func opcode0xCF(cpu *CPU) int {
	cpu.call(0x0008)
	return 4
}

// RST 10H
// #0xD7:
func opcode0xD7(cpu *CPU) int {
	cpu.call(0x0010)
	return 4
}

// RST 18H
// #0xDF:
func opcode0xDF(cpu *CPU) int {
	cpu.call(0x0018)
	return 4
}

// RST 20H
// #0xE7:
func opcode0xE7(cpu *CPU) int {
	cpu.call(0x0020)
	return 4
}

// RST 28H
// #0xEF:
func opcode0xEF(cpu *CPU) int {
	cpu.call(0x0028)
	return 4
}

// RST 30H
// #0xF7:
func opcode0xF7(cpu *CPU) int {
	cpu.call(0x0030)
	return 4
}

// RST 38H
// #0xFF:
func opcode0xFF(cpu *CPU) int {
	cpu.call(0x0038)
	return 4
}

// ADD A, n
// #0xC6:
func opcode0xC6(cpu *CPU) int {
	cpu.addToA(cpu.readImmediate())
	return 2
}

// ADC A, n
// #0xCE:
func opcode0xCE(cpu *CPU) int {
	cpu.adcToA(cpu.readImmediate())
	return 2
}

// SUB n
// #0xD6:
func opcode0xD6(cpu *CPU) int {
	cpu.sub(cpu.readImmediate())
	return 2
}

// SBC A, n
// #0xDE:
func opcode0xDE(cpu *CPU) int {
	cpu.sbc(cpu.readImmediate())
	return 2
}

// AND n
// #0xE6:
func opcode0xE6(cpu *CPU) int {
	cpu.and(cpu.readImmediate())
	return 2
}

// XOR n
// #0xEE:
func opcode0xEE(cpu *CPU) int {
	cpu.xor(cpu.readImmediate())
	return 2
}

// OR n
// #0xF6:
func opcode0xF6(cpu *CPU) int {
	cpu.or(cpu.readImmediate())
	return 2
}

// CP n
// #0xFE:
func opcode0xFE(cpu *CPU) int {
	cpu.compare(cpu.readImmediate())
	return 2
}

// LDH (n), A
// #0xE0:
func opcode0xE0(cpu *CPU) int {
	cpu.mmu.WriteByte(0xFF00+uint16(cpu.readImmediate()), cpu.a)
	return 3
}

// LDH A, (n)
// #0xF0:
func opcode0xF0(cpu *CPU) int {
	cpu.a = cpu.mmu.ReadByte(0xFF00 + uint16(cpu.readImmediate()))
	return 3
}

// LD (C), A
// #0xE2:
func opcode0xE2(cpu *CPU) int {
	cpu.mmu.WriteByte(0xFF00+uint16(cpu.c), cpu.a)
	return 2
}

// LD A, (C)
// #0xF2:
func opcode0xF2(cpu *CPU) int {
	cpu.a = cpu.mmu.ReadByte(0xFF00 + uint16(cpu.c))
	return 2
}

// ADD SP, e
// #0xE8:
func opcode0xE8(cpu *CPU) int {
	cpu.sp = cpu.addSignedToSP(cpu.readImmediateSigned())
	return 4
}

// LD HL, SP+e
// #0xF8:
func opcode0xF8(cpu *CPU) int {
	cpu.setHL(cpu.addSignedToSP(cpu.readImmediateSigned()))
	return 3
}

// JP (HL)
// #0xE9:
func opcode0xE9(cpu *CPU) int {
	cpu.pc = cpu.getHL()
	return 1
}

// LD SP, HL
// #0xF9:
func opcode0xF9(cpu *CPU) int {
	cpu.sp = cpu.getHL()
	return 2
}

// LD (nn), A
// #0xEA:
func opcode0xEA(cpu *CPU) int {
	cpu.mmu.WriteByte(cpu.readImmediateWord(), cpu.a)
	return 4
}

// LD A, (nn)
// #0xFA:
func opcode0xFA(cpu *CPU) int {
	cpu.a = cpu.mmu.ReadByte(cpu.readImmediateWord())
	return 4
}

// DI
// #0xF3:
func opcode0xF3(cpu *CPU) int {
	cpu.ime = false
	cpu.imePending = false
	return 1
}

// EI
// #0xFB:
func opcode0xFB(cpu *CPU) int {
	cpu.imePending = true
	return 1
}
