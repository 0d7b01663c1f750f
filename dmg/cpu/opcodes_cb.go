package cpu

import "github.com/valerio/go-dmg/dmg/bit"

// opcodesCB is the decode table for the CB-prefixed instruction set.
// Every CB opcode is defined.
var opcodesCB = [256]opcode{
	0x00: opcodeCB0x00,
	0x01: opcodeCB0x01,
	0x02: opcodeCB0x02,
	0x03: opcodeCB0x03,
	0x04: opcodeCB0x04,
	0x05: opcodeCB0x05,
	0x06: opcodeCB0x06,
	0x07: opcodeCB0x07,
	0x08: opcodeCB0x08,
	0x09: opcodeCB0x09,
	0x0A: opcodeCB0x0A,
	0x0B: opcodeCB0x0B,
	0x0C: opcodeCB0x0C,
	0x0D: opcodeCB0x0D,
	0x0E: opcodeCB0x0E,
	0x0F: opcodeCB0x0F,
	0x10: opcodeCB0x10,
	0x11: opcodeCB0x11,
	0x12: opcodeCB0x12,
	0x13: opcodeCB0x13,
	0x14: opcodeCB0x14,
	0x15: opcodeCB0x15,
	0x16: opcodeCB0x16,
	0x17: opcodeCB0x17,
	0x18: opcodeCB0x18,
	0x19: opcodeCB0x19,
	0x1A: opcodeCB0x1A,
	0x1B: opcodeCB0x1B,
	0x1C: opcodeCB0x1C,
	0x1D: opcodeCB0x1D,
	0x1E: opcodeCB0x1E,
	0x1F: opcodeCB0x1F,
	0x20: opcodeCB0x20,
	0x21: opcodeCB0x21,
	0x22: opcodeCB0x22,
	0x23: opcodeCB0x23,
	0x24: opcodeCB0x24,
	0x25: opcodeCB0x25,
	0x26: opcodeCB0x26,
	0x27: opcodeCB0x27,
	0x28: opcodeCB0x28,
	0x29: opcodeCB0x29,
	0x2A: opcodeCB0x2A,
	0x2B: opcodeCB0x2B,
	0x2C: opcodeCB0x2C,
	0x2D: opcodeCB0x2D,
	0x2E: opcodeCB0x2E,
	0x2F: opcodeCB0x2F,
	0x30: opcodeCB0x30,
	0x31: opcodeCB0x31,
	0x32: opcodeCB0x32,
	0x33: opcodeCB0x33,
	0x34: opcodeCB0x34,
	0x35: opcodeCB0x35,
	0x36: opcodeCB0x36,
	0x37: opcodeCB0x37,
	0x38: opcodeCB0x38,
	0x39: opcodeCB0x39,
	0x3A: opcodeCB0x3A,
	0x3B: opcodeCB0x3B,
	0x3C: opcodeCB0x3C,
	0x3D: opcodeCB0x3D,
	0x3E: opcodeCB0x3E,
	0x3F: opcodeCB0x3F,
	0x40: opcodeCB0x40,
	0x41: opcodeCB0x41,
	0x42: opcodeCB0x42,
	0x43: opcodeCB0x43,
	0x44: opcodeCB0x44,
	0x45: opcodeCB0x45,
	0x46: opcodeCB0x46,
	0x47: opcodeCB0x47,
	0x48: opcodeCB0x48,
	0x49: opcodeCB0x49,
	0x4A: opcodeCB0x4A,
	0x4B: opcodeCB0x4B,
	0x4C: opcodeCB0x4C,
	0x4D: opcodeCB0x4D,
	0x4E: opcodeCB0x4E,
	0x4F: opcodeCB0x4F,
	0x50: opcodeCB0x50,
	0x51: opcodeCB0x51,
	0x52: opcodeCB0x52,
	0x53: opcodeCB0x53,
	0x54: opcodeCB0x54,
	0x55: opcodeCB0x55,
	0x56: opcodeCB0x56,
	0x57: opcodeCB0x57,
	0x58: opcodeCB0x58,
	0x59: opcodeCB0x59,
	0x5A: opcodeCB0x5A,
	0x5B: opcodeCB0x5B,
	0x5C: opcodeCB0x5C,
	0x5D: opcodeCB0x5D,
	0x5E: opcodeCB0x5E,
	0x5F: opcodeCB0x5F,
	0x60: opcodeCB0x60,
	0x61: opcodeCB0x61,
	0x62: opcodeCB0x62,
	0x63: opcodeCB0x63,
	0x64: opcodeCB0x64,
	0x65: opcodeCB0x65,
	0x66: opcodeCB0x66,
	0x67: opcodeCB0x67,
	0x68: opcodeCB0x68,
	0x69: opcodeCB0x69,
	0x6A: opcodeCB0x6A,
	0x6B: opcodeCB0x6B,
	0x6C: opcodeCB0x6C,
	0x6D: opcodeCB0x6D,
	0x6E: opcodeCB0x6E,
	0x6F: opcodeCB0x6F,
	0x70: opcodeCB0x70,
	0x71: opcodeCB0x71,
	0x72: opcodeCB0x72,
	0x73: opcodeCB0x73,
	0x74: opcodeCB0x74,
	0x75: opcodeCB0x75,
	0x76: opcodeCB0x76,
	0x77: opcodeCB0x77,
	0x78: opcodeCB0x78,
	0x79: opcodeCB0x79,
	0x7A: opcodeCB0x7A,
	0x7B: opcodeCB0x7B,
	0x7C: opcodeCB0x7C,
	0x7D: opcodeCB0x7D,
	0x7E: opcodeCB0x7E,
	0x7F: opcodeCB0x7F,
	0x80: opcodeCB0x80,
	0x81: opcodeCB0x81,
	0x82: opcodeCB0x82,
	0x83: opcodeCB0x83,
	0x84: opcodeCB0x84,
	0x85: opcodeCB0x85,
	0x86: opcodeCB0x86,
	0x87: opcodeCB0x87,
	0x88: opcodeCB0x88,
	0x89: opcodeCB0x89,
	0x8A: opcodeCB0x8A,
	0x8B: opcodeCB0x8B,
	0x8C: opcodeCB0x8C,
	0x8D: opcodeCB0x8D,
	0x8E: opcodeCB0x8E,
	0x8F: opcodeCB0x8F,
	0x90: opcodeCB0x90,
	0x91: opcodeCB0x91,
	0x92: opcodeCB0x92,
	0x93: opcodeCB0x93,
	0x94: opcodeCB0x94,
	0x95: opcodeCB0x95,
	0x96: opcodeCB0x96,
	0x97: opcodeCB0x97,
	0x98: opcodeCB0x98,
	0x99: opcodeCB0x99,
	0x9A: opcodeCB0x9A,
	0x9B: opcodeCB0x9B,
	0x9C: opcodeCB0x9C,
	0x9D: opcodeCB0x9D,
	0x9E: opcodeCB0x9E,
	0x9F: opcodeCB0x9F,
	0xA0: opcodeCB0xA0,
	0xA1: opcodeCB0xA1,
	0xA2: opcodeCB0xA2,
	0xA3: opcodeCB0xA3,
	0xA4: opcodeCB0xA4,
	0xA5: opcodeCB0xA5,
	0xA6: opcodeCB0xA6,
	0xA7: opcodeCB0xA7,
	0xA8: opcodeCB0xA8,
	0xA9: opcodeCB0xA9,
	0xAA: opcodeCB0xAA,
	0xAB: opcodeCB0xAB,
	0xAC: opcodeCB0xAC,
	0xAD: opcodeCB0xAD,
	0xAE: opcodeCB0xAE,
	0xAF: opcodeCB0xAF,
	0xB0: opcodeCB0xB0,
	0xB1: opcodeCB0xB1,
	0xB2: opcodeCB0xB2,
	0xB3: opcodeCB0xB3,
	0xB4: opcodeCB0xB4,
	0xB5: opcodeCB0xB5,
	0xB6: opcodeCB0xB6,
	0xB7: opcodeCB0xB7,
	0xB8: opcodeCB0xB8,
	0xB9: opcodeCB0xB9,
	0xBA: opcodeCB0xBA,
	0xBB: opcodeCB0xBB,
	0xBC: opcodeCB0xBC,
	0xBD: opcodeCB0xBD,
	0xBE: opcodeCB0xBE,
	0xBF: opcodeCB0xBF,
	0xC0: opcodeCB0xC0,
	0xC1: opcodeCB0xC1,
	0xC2: opcodeCB0xC2,
	0xC3: opcodeCB0xC3,
	0xC4: opcodeCB0xC4,
	0xC5: opcodeCB0xC5,
	0xC6: opcodeCB0xC6,
	0xC7: opcodeCB0xC7,
	0xC8: opcodeCB0xC8,
	0xC9: opcodeCB0xC9,
	0xCA: opcodeCB0xCA,
	0xCB: opcodeCB0xCB,
	0xCC: opcodeCB0xCC,
	0xCD: opcodeCB0xCD,
	0xCE: opcodeCB0xCE,
	0xCF: opcodeCB0xCF,
	0xD0: opcodeCB0xD0,
	0xD1: opcodeCB0xD1,
	0xD2: opcodeCB0xD2,
	0xD3: opcodeCB0xD3,
	0xD4: opcodeCB0xD4,
	0xD5: opcodeCB0xD5,
	0xD6: opcodeCB0xD6,
	0xD7: opcodeCB0xD7,
	0xD8: opcodeCB0xD8,
	0xD9: opcodeCB0xD9,
	0xDA: opcodeCB0xDA,
	0xDB: opcodeCB0xDB,
	0xDC: opcodeCB0xDC,
	0xDD: opcodeCB0xDD,
	0xDE: opcodeCB0xDE,
	0xDF: opcodeCB0xDF,
	0xE0: opcodeCB0xE0,
	0xE1: opcodeCB0xE1,
	0xE2: opcodeCB0xE2,
	0xE3: opcodeCB0xE3,
	0xE4: opcodeCB0xE4,
	0xE5: opcodeCB0xE5,
	0xE6: opcodeCB0xE6,
	0xE7: opcodeCB0xE7,
	0xE8: opcodeCB0xE8,
	0xE9: opcodeCB0xE9,
	0xEA: opcodeCB0xEA,
	0xEB: opcodeCB0xEB,
	0xEC: opcodeCB0xEC,
	0xED: opcodeCB0xED,
	0xEE: opcodeCB0xEE,
	0xEF: opcodeCB0xEF,
	0xF0: opcodeCB0xF0,
	0xF1: opcodeCB0xF1,
	0xF2: opcodeCB0xF2,
	0xF3: opcodeCB0xF3,
	0xF4: opcodeCB0xF4,
	0xF5: opcodeCB0xF5,
	0xF6: opcodeCB0xF6,
	0xF7: opcodeCB0xF7,
	0xF8: opcodeCB0xF8,
	0xF9: opcodeCB0xF9,
	0xFA: opcodeCB0xFA,
	0xFB: opcodeCB0xFB,
	0xFC: opcodeCB0xFC,
	0xFD: opcodeCB0xFD,
	0xFE: opcodeCB0xFE,
	0xFF: opcodeCB0xFF,
}

// RLC B
// #0xCB00:
func opcodeCB0x00(cpu *CPU) int {
	cpu.b = cpu.rlc(cpu.b)
	return 2
}

// RLC C
// #0xCB01:
func opcodeCB0x01(cpu *CPU) int {
	cpu.c = cpu.rlc(cpu.c)
	return 2
}

// RLC D
// #0xCB02:
func opcodeCB0x02(cpu *CPU) int {
	cpu.d = cpu.rlc(cpu.d)
	return 2
}

// RLC E
// #0xCB03:
func opcodeCB0x03(cpu *CPU) int {
	cpu.e = cpu.rlc(cpu.e)
	return 2
}

// RLC H
// #0xCB04:
func opcodeCB0x04(cpu *CPU) int {
	cpu.h = cpu.rlc(cpu.h)
	return 2
}

// RLC L
// #0xCB05:
func opcodeCB0x05(cpu *CPU) int {
	cpu.l = cpu.rlc(cpu.l)
	return 2
}

// RLC (HL)
// #0xCB06:
func opcodeCB0x06(cpu *CPU) int {
	cpu.writeHL(cpu.rlc(cpu.readHL()))
	return 4
}

// RLC A
// #0xCB07:
func opcodeCB0x07(cpu *CPU) int {
	cpu.a = cpu.rlc(cpu.a)
	return 2
}

// RRC B
// #0xCB08:
func opcodeCB0x08(cpu *CPU) int {
	cpu.b = cpu.rrc(cpu.b)
	return 2
}

// RRC C
// #0xCB09:
func opcodeCB0x09(cpu *CPU) int {
	cpu.c = cpu.rrc(cpu.c)
	return 2
}

// RRC D
// #0xCB0A:
func opcodeCB0x0A(cpu *CPU) int {
	cpu.d = cpu.rrc(cpu.d)
	return 2
}

// RRC E
// #0xCB0B:
func opcodeCB0x0B(cpu *CPU) int {
	cpu.e = cpu.rrc(cpu.e)
	return 2
}

// RRC H
// #0xCB0C:
func opcodeCB0x0C(cpu *CPU) int {
	cpu.h = cpu.rrc(cpu.h)
	return 2
}

// RRC L
// #0xCB0D:
func opcodeCB0x0D(cpu *CPU) int {
	cpu.l = cpu.rrc(cpu.l)
	return 2
}

// RRC (HL)
// #0xCB0E:
func opcodeCB0x0E(cpu *CPU) int {
	cpu.writeHL(cpu.rrc(cpu.readHL()))
	return 4
}

// RRC A
// #0xCB0F:
func opcodeCB0x0F(cpu *CPU) int {
	cpu.a = cpu.rrc(cpu.a)
	return 2
}

// RL B
// #0xCB10:
func opcodeCB0x10(cpu *CPU) int {
	cpu.b = cpu.rl(cpu.b)
	return 2
}

// RL C
// #0xCB11:
func opcodeCB0x11(cpu *CPU) int {
	cpu.c = cpu.rl(cpu.c)
	return 2
}

// RL D
// #0xCB12:
func opcodeCB0x12(cpu *CPU) int {
	cpu.d = cpu.rl(cpu.d)
	return 2
}

// RL E
// #0xCB13:
func opcodeCB0x13(cpu *CPU) int {
	cpu.e = cpu.rl(cpu.e)
	return 2
}

// RL H
// #0xCB14:
func opcodeCB0x14(cpu *CPU) int {
	cpu.h = cpu.rl(cpu.h)
	return 2
}

// RL L
// #0xCB15:
func opcodeCB0x15(cpu *CPU) int {
	cpu.l = cpu.rl(cpu.l)
	return 2
}

// RL (HL)
// #0xCB16:
func opcodeCB0x16(cpu *CPU) int {
	cpu.writeHL(cpu.rl(cpu.readHL()))
	return 4
}

// RL A
// #0xCB17:
func opcodeCB0x17(cpu *CPU) int {
	cpu.a = cpu.rl(cpu.a)
	return 2
}

// RR B
// #0xCB18:
func opcodeCB0x18(cpu *CPU) int {
	cpu.b = cpu.rr(cpu.b)
	return 2
}

// RR C
// #0xCB19:
func opcodeCB0x19(cpu *CPU) int {
	cpu.c = cpu.rr(cpu.c)
	return 2
}

// RR D
// #0xCB1A:
func opcodeCB0x1A(cpu *CPU) int {
	cpu.d = cpu.rr(cpu.d)
	return 2
}

// RR E
// #0xCB1B:
func opcodeCB0x1B(cpu *CPU) int {
	cpu.e = cpu.rr(cpu.e)
	return 2
}

// RR H
// #0xCB1C:
func opcodeCB0x1C(cpu *CPU) int {
	cpu.h = cpu.rr(cpu.h)
	return 2
}

// RR L
// #0xCB1D:
func opcodeCB0x1D(cpu *CPU) int {
	cpu.l = cpu.rr(cpu.l)
	return 2
}

// RR (HL)
// #0xCB1E:
func opcodeCB0x1E(cpu *CPU) int {
	cpu.writeHL(cpu.rr(cpu.readHL()))
	return 4
}

// RR A
// #0xCB1F:
func opcodeCB0x1F(cpu *CPU) int {
	cpu.a = cpu.rr(cpu.a)
	return 2
}

// SLA B
// #0xCB20:
func opcodeCB0x20(cpu *CPU) int {
	cpu.b = cpu.sla(cpu.b)
	return 2
}

// SLA C
// #0xCB21:
func opcodeCB0x21(cpu *CPU) int {
	cpu.c = cpu.sla(cpu.c)
	return 2
}

// SLA D
// #0xCB22:
func opcodeCB0x22(cpu *CPU) int {
	cpu.d = cpu.sla(cpu.d)
	return 2
}

// SLA E
// #0xCB23:
func opcodeCB0x23(cpu *CPU) int {
	cpu.e = cpu.sla(cpu.e)
	return 2
}

// SLA H
// #0xCB24:
func opcodeCB0x24(cpu *CPU) int {
	cpu.h = cpu.sla(cpu.h)
	return 2
}

// SLA L
// #0xCB25:
func opcodeCB0x25(cpu *CPU) int {
	cpu.l = cpu.sla(cpu.l)
	return 2
}

// SLA (HL)
// #0xCB26:
func opcodeCB0x26(cpu *CPU) int {
	cpu.writeHL(cpu.sla(cpu.readHL()))
	return 4
}

// SLA A
// #0xCB27:
func opcodeCB0x27(cpu *CPU) int {
	cpu.a = cpu.sla(cpu.a)
	return 2
}

// SRA B
// #0xCB28:
func opcodeCB0x28(cpu *CPU) int {
	cpu.b = cpu.sra(cpu.b)
	return 2
}

// SRA C
// #0xCB29:
func opcodeCB0x29(cpu *CPU) int {
	cpu.c = cpu.sra(cpu.c)
	return 2
}

// SRA D
// #0xCB2A:
func opcodeCB0x2A(cpu *CPU) int {
	cpu.d = cpu.sra(cpu.d)
	return 2
}

// SRA E
// #0xCB2B:
func opcodeCB0x2B(cpu *CPU) int {
	cpu.e = cpu.sra(cpu.e)
	return 2
}

// SRA H
// #0xCB2C:
func opcodeCB0x2C(cpu *CPU) int {
	cpu.h = cpu.sra(cpu.h)
	return 2
}

// SRA L
// #0xCB2D:
func opcodeCB0x2D(cpu *CPU) int {
	cpu.l = cpu.sra(cpu.l)
	return 2
}

// SRA (HL)
// #0xCB2E:
func opcodeCB0x2E(cpu *CPU) int {
	cpu.writeHL(cpu.sra(cpu.readHL()))
	return 4
}

// SRA A
// #0xCB2F:
func opcodeCB0x2F(cpu *CPU) int {
	cpu.a = cpu.sra(cpu.a)
	return 2
}

// SWAP B
// #0xCB30:
func opcodeCB0x30(cpu *CPU) int {
	cpu.b = cpu.swap(cpu.b)
	return 2
}

// SWAP C
// #0xCB31:
func opcodeCB0x31(cpu *CPU) int {
	cpu.c = cpu.swap(cpu.c)
	return 2
}

// SWAP D
// #0xCB32:
func opcodeCB0x32(cpu *CPU) int {
	cpu.d = cpu.swap(cpu.d)
	return 2
}

// SWAP E
// #0xCB33:
func opcodeCB0x33(cpu *CPU) int {
	cpu.e = cpu.swap(cpu.e)
	return 2
}

// SWAP H
// #0xCB34:
func opcodeCB0x34(cpu *CPU) int {
	cpu.h = cpu.swap(cpu.h)
	return 2
}

// SWAP L
// #0xCB35:
func opcodeCB0x35(cpu *CPU) int {
	cpu.l = cpu.swap(cpu.l)
	return 2
}

// SWAP (HL)
// #0xCB36:
func opcodeCB0x36(cpu *CPU) int {
	cpu.writeHL(cpu.swap(cpu.readHL()))
	return 4
}

// SWAP A
// #0xCB37:
func opcodeCB0x37(cpu *CPU) int {
	cpu.a = cpu.swap(cpu.a)
	return 2
}

// SRL B
// #0xCB38:
func opcodeCB0x38(cpu *CPU) int {
	cpu.b = cpu.srl(cpu.b)
	return 2
}

// SRL C
// #0xCB39:
func opcodeCB0x39(cpu *CPU) int {
	cpu.c = cpu.srl(cpu.c)
	return 2
}

// SRL D
// #0xCB3A:
func opcodeCB0x3A(cpu *CPU) int {
	cpu.d = cpu.srl(cpu.d)
	return 2
}

// SRL E
// #0xCB3B:
func opcodeCB0x3B(cpu *CPU) int {
	cpu.e = cpu.srl(cpu.e)
	return 2
}

// SRL H
// #0xCB3C:
func opcodeCB0x3C(cpu *CPU) int {
	cpu.h = cpu.srl(cpu.h)
	return 2
}

// SRL L
// #0xCB3D:
func opcodeCB0x3D(cpu *CPU) int {
	cpu.l = cpu.srl(cpu.l)
	return 2
}

// SRL (HL)
// #0xCB3E:
func opcodeCB0x3E(cpu *CPU) int {
	cpu.writeHL(cpu.srl(cpu.readHL()))
	return 4
}

// SRL A
// #0xCB3F:
func opcodeCB0x3F(cpu *CPU) int {
	cpu.a = cpu.srl(cpu.a)
	return 2
}

// BIT 0, B
// #0xCB40:
func opcodeCB0x40(cpu *CPU) int {
	cpu.bitTest(0, cpu.b)
	return 2
}

// BIT 0, C
// #0xCB41:
func opcodeCB0x41(cpu *CPU) int {
	cpu.bitTest(0, cpu.c)
	return 2
}

// BIT 0, D
// #0xCB42:
func opcodeCB0x42(cpu *CPU) int {
	cpu.bitTest(0, cpu.d)
	return 2
}

// BIT 0, E
// #0xCB43:
func opcodeCB0x43(cpu *CPU) int {
	cpu.bitTest(0, cpu.e)
	return 2
}

// BIT 0, H
// #0xCB44:
func opcodeCB0x44(cpu *CPU) int {
	cpu.bitTest(0, cpu.h)
	return 2
}

// BIT 0, L
// #0xCB45:
func opcodeCB0x45(cpu *CPU) int {
	cpu.bitTest(0, cpu.l)
	return 2
}

// BIT 0, (HL)
// #0xCB46:
func opcodeCB0x46(cpu *CPU) int {
	cpu.bitTest(0, cpu.readHL())
	return 3
}

// BIT 0, A
// #0xCB47:
func opcodeCB0x47(cpu *CPU) int {
	cpu.bitTest(0, cpu.a)
	return 2
}

// BIT 1, B
// #0xCB48:
func opcodeCB0x48(cpu *CPU) int {
	cpu.bitTest(1, cpu.b)
	return 2
}

// BIT 1, C
// #0xCB49:
func opcodeCB0x49(cpu *CPU) int {
	cpu.bitTest(1, cpu.c)
	return 2
}

// BIT 1, D
// #0xCB4A:
func opcodeCB0x4A(cpu *CPU) int {
	cpu.bitTest(1, cpu.d)
	return 2
}

// BIT 1, E
// #0xCB4B:
func opcodeCB0x4B(cpu *CPU) int {
	cpu.bitTest(1, cpu.e)
	return 2
}

// BIT 1, H
// #0xCB4C:
func opcodeCB0x4C(cpu *CPU) int {
	cpu.bitTest(1, cpu.h)
	return 2
}

// BIT 1, L
// #0xCB4D:
func opcodeCB0x4D(cpu *CPU) int {
	cpu.bitTest(1, cpu.l)
	return 2
}

// BIT 1, (HL)
// #0xCB4E:
func opcodeCB0x4E(cpu *CPU) int {
	cpu.bitTest(1, cpu.readHL())
	return 3
}

// BIT 1, A
// #0xCB4F:
func opcodeCB0x4F(cpu *CPU) int {
	cpu.bitTest(1, cpu.a)
	return 2
}

// BIT 2, B
// #0xCB50:
func opcodeCB0x50(cpu *CPU) int {
	cpu.bitTest(2, cpu.b)
	return 2
}

// BIT 2, C
// #0xCB51:
func opcodeCB0x51(cpu *CPU) int {
	cpu.bitTest(2, cpu.c)
	return 2
}

// BIT 2, D
// #0xCB52:
func opcodeCB0x52(cpu *CPU) int {
	cpu.bitTest(2, cpu.d)
	return 2
}

// BIT 2, E
// #0xCB53:
func opcodeCB0x53(cpu *CPU) int {
	cpu.bitTest(2, cpu.e)
	return 2
}

// BIT 2, H
// #0xCB54:
func opcodeCB0x54(cpu *CPU) int {
	cpu.bitTest(2, cpu.h)
	return 2
}

// BIT 2, L
// #0xCB55:
func opcodeCB0x55(cpu *CPU) int {
	cpu.bitTest(2, cpu.l)
	return 2
}

// BIT 2, (HL)
// #0xCB56:
func opcodeCB0x56(cpu *CPU) int {
	cpu.bitTest(2, cpu.readHL())
	return 3
}

// BIT 2, A
// #0xCB57:
func opcodeCB0x57(cpu *CPU) int {
	cpu.bitTest(2, cpu.a)
	return 2
}

// BIT 3, B
// #0xCB58:
func opcodeCB0x58(cpu *CPU) int {
	cpu.bitTest(3, cpu.b)
	return 2
}

// BIT 3, C
// #0xCB59:
func opcodeCB0x59(cpu *CPU) int {
	cpu.bitTest(3, cpu.c)
	return 2
}

// BIT 3, D
// #0xCB5A:
func opcodeCB0x5A(cpu *CPU) int {
	cpu.bitTest(3, cpu.d)
	return 2
}

// BIT 3, E
// #0xCB5B:
func opcodeCB0x5B(cpu *CPU) int {
	cpu.bitTest(3, cpu.e)
	return 2
}

// BIT 3, H
// #0xCB5C:
func opcodeCB0x5C(cpu *CPU) int {
	cpu.bitTest(3, cpu.h)
	return 2
}

// BIT 3, L
// #0xCB5D:
func opcodeCB0x5D(cpu *CPU) int {
	cpu.bitTest(3, cpu.l)
	return 2
}

// BIT 3, (HL)
// #0xCB5E:
func opcodeCB0x5E(cpu *CPU) int {
	cpu.bitTest(3, cpu.readHL())
	return 3
}

// BIT 3, A
// #0xCB5F:
func opcodeCB0x5F(cpu *CPU) int {
	cpu.bitTest(3, cpu.a)
	return 2
}

// BIT 4, B
// #0xCB60:
func opcodeCB0x60(cpu *CPU) int {
	cpu.bitTest(4, cpu.b)
	return 2
}

// BIT 4, C
// #0xCB61:
func opcodeCB0x61(cpu *CPU) int {
	cpu.bitTest(4, cpu.c)
	return 2
}

// BIT 4, D
// #0xCB62:
func opcodeCB0x62(cpu *CPU) int {
	cpu.bitTest(4, cpu.d)
	return 2
}

// BIT 4, E
// #0xCB63:
func opcodeCB0x63(cpu *CPU) int {
	cpu.bitTest(4, cpu.e)
	return 2
}

// BIT 4, H
// #0xCB64:
func opcodeCB0x64(cpu *CPU) int {
	cpu.bitTest(4, cpu.h)
	return 2
}

// BIT 4, L
// #0xCB65:
func opcodeCB0x65(cpu *CPU) int {
	cpu.bitTest(4, cpu.l)
	return 2
}

// BIT 4, (HL)
// #0xCB66:
func opcodeCB0x66(cpu *CPU) int {
	cpu.bitTest(4, cpu.readHL())
	return 3
}

// BIT 4, A
// #0xCB67:
func opcodeCB0x67(cpu *CPU) int {
	cpu.bitTest(4, cpu.a)
	return 2
}

// BIT 5, B
// #0xCB68:
func opcodeCB0x68(cpu *CPU) int {
	cpu.bitTest(5, cpu.b)
	return 2
}

// BIT 5, C
// #0xCB69:
func opcodeCB0x69(cpu *CPU) int {
	cpu.bitTest(5, cpu.c)
	return 2
}

// BIT 5, D
// #0xCB6A:
func opcodeCB0x6A(cpu *CPU) int {
	cpu.bitTest(5, cpu.d)
	return 2
}

// BIT 5, E
// #0xCB6B:
func opcodeCB0x6B(cpu *CPU) int {
	cpu.bitTest(5, cpu.e)
	return 2
}

// BIT 5, H
// #0xCB6C:
func opcodeCB0x6C(cpu *CPU) int {
	cpu.bitTest(5, cpu.h)
	return 2
}

// BIT 5, L
// #0xCB6D:
func opcodeCB0x6D(cpu *CPU) int {
	cpu.bitTest(5, cpu.l)
	return 2
}

// BIT 5, (HL)
// #0xCB6E:
func opcodeCB0x6E(cpu *CPU) int {
	cpu.bitTest(5, cpu.readHL())
	return 3
}

// BIT 5, A
// #0xCB6F:
func opcodeCB0x6F(cpu *CPU) int {
	cpu.bitTest(5, cpu.a)
	return 2
}

// BIT 6, B
// #0xCB70:
func opcodeCB0x70(cpu *CPU) int {
	cpu.bitTest(6, cpu.b)
	return 2
}

// BIT 6, C
// #0xCB71:
func opcodeCB0x71(cpu *CPU) int {
	cpu.bitTest(6, cpu.c)
	return 2
}

// BIT 6, D
// #0xCB72:
func opcodeCB0x72(cpu *CPU) int {
	cpu.bitTest(6, cpu.d)
	return 2
}

// BIT 6, E
// #0xCB73:
func opcodeCB0x73(cpu *CPU) int {
	cpu.bitTest(6, cpu.e)
	return 2
}

// BIT 6, H
// #0xCB74:
func opcodeCB0x74(cpu *CPU) int {
	cpu.bitTest(6, cpu.h)
	return 2
}

// BIT 6, L
// #0xCB75:
func opcodeCB0x75(cpu *CPU) int {
	cpu.bitTest(6, cpu.l)
	return 2
}

// BIT 6, (HL)
// #0xCB76:
func opcodeCB0x76(cpu *CPU) int {
	cpu.bitTest(6, cpu.readHL())
	return 3
}

// BIT 6, A
// #0xCB77:
func opcodeCB0x77(cpu *CPU) int {
	cpu.bitTest(6, cpu.a)
	return 2
}

// BIT 7, B
// #0xCB78:
func opcodeCB0x78(cpu *CPU) int {
	cpu.bitTest(7, cpu.b)
	return 2
}

// BIT 7, C
// #0xCB79:
func opcodeCB0x79(cpu *CPU) int {
	cpu.bitTest(7, cpu.c)
	return 2
}

// BIT 7, D
// #0xCB7A:
func opcodeCB0x7A(cpu *CPU) int {
	cpu.bitTest(7, cpu.d)
	return 2
}

// BIT 7, E
// #0xCB7B:
func opcodeCB0x7B(cpu *CPU) int {
	cpu.bitTest(7, cpu.e)
	return 2
}

// BIT 7, H
// #0xCB7C:
func opcodeCB0x7C(cpu *CPU) int {
	cpu.bitTest(7, cpu.h)
	return 2
}

// BIT 7, L
// #0xCB7D:
func opcodeCB0x7D(cpu *CPU) int {
	cpu.bitTest(7, cpu.l)
	return 2
}

// BIT 7, (HL)
// #0xCB7E:
func opcodeCB0x7E(cpu *CPU) int {
	cpu.bitTest(7, cpu.readHL())
	return 3
}

// BIT 7, A
// #0xCB7F:
func opcodeCB0x7F(cpu *CPU) int {
	cpu.bitTest(7, cpu.a)
	return 2
}

// RES 0, B
// #0xCB80:
func opcodeCB0x80(cpu *CPU) int {
	cpu.b = bit.Reset(0, cpu.b)
	return 2
}

// RES 0, C
// #0xCB81:
func opcodeCB0x81(cpu *CPU) int {
	cpu.c = bit.Reset(0, cpu.c)
	return 2
}

// RES 0, D
// #0xCB82:
func opcodeCB0x82(cpu *CPU) int {
	cpu.d = bit.Reset(0, cpu.d)
	return 2
}

// RES 0, E
// #0xCB83:
func opcodeCB0x83(cpu *CPU) int {
	cpu.e = bit.Reset(0, cpu.e)
	return 2
}

// RES 0, H
// #0xCB84:
func opcodeCB0x84(cpu *CPU) int {
	cpu.h = bit.Reset(0, cpu.h)
	return 2
}

// RES 0, L
// #0xCB85:
func opcodeCB0x85(cpu *CPU) int {
	cpu.l = bit.Reset(0, cpu.l)
	return 2
}

// RES 0, (HL)
// #0xCB86:
func opcodeCB0x86(cpu *CPU) int {
	cpu.writeHL(bit.Reset(0, cpu.readHL()))
	return 4
}

// RES 0, A
// #0xCB87:
func opcodeCB0x87(cpu *CPU) int {
	cpu.a = bit.Reset(0, cpu.a)
	return 2
}

// RES 1, B
// #0xCB88:
func opcodeCB0x88(cpu *CPU) int {
	cpu.b = bit.Reset(1, cpu.b)
	return 2
}

// RES 1, C
// #0xCB89:
func opcodeCB0x89(cpu *CPU) int {
	cpu.c = bit.Reset(1, cpu.c)
	return 2
}

// RES 1, D
// #0xCB8A:
func opcodeCB0x8A(cpu *CPU) int {
	cpu.d = bit.Reset(1, cpu.d)
	return 2
}

// RES 1, E
// #0xCB8B:
func opcodeCB0x8B(cpu *CPU) int {
	cpu.e = bit.Reset(1, cpu.e)
	return 2
}

// RES 1, H
// #0xCB8C:
func opcodeCB0x8C(cpu *CPU) int {
	cpu.h = bit.Reset(1, cpu.h)
	return 2
}

// RES 1, L
// #0xCB8D:
func opcodeCB0x8D(cpu *CPU) int {
	cpu.l = bit.Reset(1, cpu.l)
	return 2
}

// RES 1, (HL)
// #0xCB8E:
func opcodeCB0x8E(cpu *CPU) int {
	cpu.writeHL(bit.Reset(1, cpu.readHL()))
	return 4
}

// RES 1, A
// #0xCB8F:
func opcodeCB0x8F(cpu *CPU) int {
	cpu.a = bit.Reset(1, cpu.a)
	return 2
}

// RES 2, B
// #0xCB90:
func opcodeCB0x90(cpu *CPU) int {
	cpu.b = bit.Reset(2, cpu.b)
	return 2
}

// RES 2, C
// #0xCB91:
func opcodeCB0x91(cpu *CPU) int {
	cpu.c = bit.Reset(2, cpu.c)
	return 2
}

// RES 2, D
// #0xCB92:
func opcodeCB0x92(cpu *CPU) int {
	cpu.d = bit.Reset(2, cpu.d)
	return 2
}

// RES 2, E
// #0xCB93:
func opcodeCB0x93(cpu *CPU) int {
	cpu.e = bit.Reset(2, cpu.e)
	return 2
}

// RES 2, H
// #0xCB94:
func opcodeCB0x94(cpu *CPU) int {
	cpu.h = bit.Reset(2, cpu.h)
	return 2
}

// RES 2, L
// #0xCB95:
func opcodeCB0x95(cpu *CPU) int {
	cpu.l = bit.Reset(2, cpu.l)
	return 2
}

// RES 2, (HL)
// #0xCB96:
func opcodeCB0x96(cpu *CPU) int {
	cpu.writeHL(bit.Reset(2, cpu.readHL()))
	return 4
}

// RES 2, A
// #0xCB97:
func opcodeCB0x97(cpu *CPU) int {
	cpu.a = bit.Reset(2, cpu.a)
	return 2
}

// RES 3, B
// #0xCB98:
func opcodeCB0x98(cpu *CPU) int {
	cpu.b = bit.Reset(3, cpu.b)
	return 2
}

// RES 3, C
// #0xCB99:
func opcodeCB0x99(cpu *CPU) int {
	cpu.c = bit.Reset(3, cpu.c)
	return 2
}

// RES 3, D
// #0xCB9A:
func opcodeCB0x9A(cpu *CPU) int {
	cpu.d = bit.Reset(3, cpu.d)
	return 2
}

// RES 3, E
// #0xCB9B:
func opcodeCB0x9B(cpu *CPU) int {
	cpu.e = bit.Reset(3, cpu.e)
	return 2
}

// RES 3, H
// #0xCB9C:
func opcodeCB0x9C(cpu *CPU) int {
	cpu.h = bit.Reset(3, cpu.h)
	return 2
}

// RES 3, L
// #0xCB9D:
func opcodeCB0x9D(cpu *CPU) int {
	cpu.l = bit.Reset(3, cpu.l)
	return 2
}

// RES 3, (HL)
// #0xCB9E:
func opcodeCB0x9E(cpu *CPU) int {
	cpu.writeHL(bit.Reset(3, cpu.readHL()))
	return 4
}

// RES 3, A
// #0xCB9F:
func opcodeCB0x9F(cpu *CPU) int {
	cpu.a = bit.Reset(3, cpu.a)
	return 2
}

// RES 4, B
// #0xCBA0:
func opcodeCB0xA0(cpu *CPU) int {
	cpu.b = bit.Reset(4, cpu.b)
	return 2
}

// RES 4, C
// #0xCBA1:
func opcodeCB0xA1(cpu *CPU) int {
	cpu.c = bit.Reset(4, cpu.c)
	return 2
}

// RES 4, D
// #0xCBA2:
func opcodeCB0xA2(cpu *CPU) int {
	cpu.d = bit.Reset(4, cpu.d)
	return 2
}

// RES 4, E
// #0xCBA3:
func opcodeCB0xA3(cpu *CPU) int {
	cpu.e = bit.Reset(4, cpu.e)
	return 2
}

// RES 4, H
// #0xCBA4:
func opcodeCB0xA4(cpu *CPU) int {
	cpu.h = bit.Reset(4, cpu.h)
	return 2
}

// RES 4, L
// #0xCBA5:
func opcodeCB0xA5(cpu *CPU) int {
	cpu.l = bit.Reset(4, cpu.l)
	return 2
}

// RES 4, (HL)
// #0xCBA6:
func opcodeCB0xA6(cpu *CPU) int {
	cpu.writeHL(bit.Reset(4, cpu.readHL()))
	return 4
}

// RES 4, A
// #0xCBA7:
func opcodeCB0xA7(cpu *CPU) int {
	cpu.a = bit.Reset(4, cpu.a)
	return 2
}

// RES 5, B
// #0xCBA8:
func opcodeCB0xA8(cpu *CPU) int {
	cpu.b = bit.Reset(5, cpu.b)
	return 2
}

// RES 5, C
// #0xCBA9:
func opcodeCB0xA9(cpu *CPU) int {
	cpu.c = bit.Reset(5, cpu.c)
	return 2
}

// RES 5, D
// #0xCBAA:
func opcodeCB0xAA(cpu *CPU) int {
	cpu.d = bit.Reset(5, cpu.d)
	return 2
}

// RES 5, E
// #0xCBAB:
func opcodeCB0xAB(cpu *CPU) int {
	cpu.e = bit.Reset(5, cpu.e)
	return 2
}

// RES 5, H
// #0xCBAC:
func opcodeCB0xAC(cpu *CPU) int {
	cpu.h = bit.Reset(5, cpu.h)
	return 2
}

// RES 5, L
// #0xCBAD:
func opcodeCB0xAD(cpu *CPU) int {
	cpu.l = bit.Reset(5, cpu.l)
	return 2
}

// RES 5, (HL)
// #0xCBAE:
func opcodeCB0xAE(cpu *CPU) int {
	cpu.writeHL(bit.Reset(5, cpu.readHL()))
	return 4
}

// RES 5, A
// #0xCBAF:
func opcodeCB0xAF(cpu *CPU) int {
	cpu.a = bit.Reset(5, cpu.a)
	return 2
}

// RES 6, B
// #0xCBB0:
func opcodeCB0xB0(cpu *CPU) int {
	cpu.b = bit.Reset(6, cpu.b)
	return 2
}

// RES 6, C
// #0xCBB1:
func opcodeCB0xB1(cpu *CPU) int {
	cpu.c = bit.Reset(6, cpu.c)
	return 2
}

// RES 6, D
// #0xCBB2:
func opcodeCB0xB2(cpu *CPU) int {
	cpu.d = bit.Reset(6, cpu.d)
	return 2
}

// RES 6, E
// #0xCBB3:
func opcodeCB0xB3(cpu *CPU) int {
	cpu.e = bit.Reset(6, cpu.e)
	return 2
}

// RES 6, H
// #0xCBB4:
func opcodeCB0xB4(cpu *CPU) int {
	cpu.h = bit.Reset(6, cpu.h)
	return 2
}

// RES 6, L
// #0xCBB5:
func opcodeCB0xB5(cpu *CPU) int {
	cpu.l = bit.Reset(6, cpu.l)
	return 2
}

// RES 6, (HL)
// #0xCBB6:
func opcodeCB0xB6(cpu *CPU) int {
	cpu.writeHL(bit.Reset(6, cpu.readHL()))
	return 4
}

// RES 6, A
// #0xCBB7:
func opcodeCB0xB7(cpu *CPU) int {
	cpu.a = bit.Reset(6, cpu.a)
	return 2
}

// RES 7, B
// #0xCBB8:
func opcodeCB0xB8(cpu *CPU) int {
	cpu.b = bit.Reset(7, cpu.b)
	return 2
}

// RES 7, C
// #0xCBB9:
func opcodeCB0xB9(cpu *CPU) int {
	cpu.c = bit.Reset(7, cpu.c)
	return 2
}

// RES 7, D
// #0xCBBA:
func opcodeCB0xBA(cpu *CPU) int {
	cpu.d = bit.Reset(7, cpu.d)
	return 2
}

// RES 7, E
// #0xCBBB:
func opcodeCB0xBB(cpu *CPU) int {
	cpu.e = bit.Reset(7, cpu.e)
	return 2
}

// RES 7, H
// #0xCBBC:
func opcodeCB0xBC(cpu *CPU) int {
	cpu.h = bit.Reset(7, cpu.h)
	return 2
}

// RES 7, L
// #0xCBBD:
func opcodeCB0xBD(cpu *CPU) int {
	cpu.l = bit.Reset(7, cpu.l)
	return 2
}

// RES 7, (HL)
// #0xCBBE:
func opcodeCB0xBE(cpu *CPU) int {
	cpu.writeHL(bit.Reset(7, cpu.readHL()))
	return 4
}

// RES 7, A
// #0xCBBF:
func opcodeCB0xBF(cpu *CPU) int {
	cpu.a = bit.Reset(7, cpu.a)
	return 2
}

// SET 0, B
// #0xCBC0:
func opcodeCB0xC0(cpu *CPU) int {
	cpu.b = bit.Set(0, cpu.b)
	return 2
}

// SET 0, C
// #0xCBC1:
func opcodeCB0xC1(cpu *CPU) int {
	cpu.c = bit.Set(0, cpu.c)
	return 2
}

// SET 0, D
// #0xCBC2:
func opcodeCB0xC2(cpu *CPU) int {
	cpu.d = bit.Set(0, cpu.d)
	return 2
}

// SET 0, E
// #0xCBC3:
func opcodeCB0xC3(cpu *CPU) int {
	cpu.e = bit.Set(0, cpu.e)
	return 2
}

// SET 0, H
// #0xCBC4:
func opcodeCB0xC4(cpu *CPU) int {
	cpu.h = bit.Set(0, cpu.h)
	return 2
}

// SET 0, L
// #0xCBC5:
func opcodeCB0xC5(cpu *CPU) int {
	cpu.l = bit.Set(0, cpu.l)
	return 2
}

// SET 0, (HL)
// #0xCBC6:
func opcodeCB0xC6(cpu *CPU) int {
	cpu.writeHL(bit.Set(0, cpu.readHL()))
	return 4
}

// SET 0, A
// #0xCBC7:
func opcodeCB0xC7(cpu *CPU) int {
	cpu.a = bit.Set(0, cpu.a)
	return 2
}

// SET 1, B
// #0xCBC8:
func opcodeCB0xC8(cpu *CPU) int {
	cpu.b = bit.Set(1, cpu.b)
	return 2
}

// SET 1, C
// #0xCBC9:
func opcodeCB0xC9(cpu *CPU) int {
	cpu.c = bit.Set(1, cpu.c)
	return 2
}

// SET 1, D
// #0xCBCA:
func opcodeCB0xCA(cpu *CPU) int {
	cpu.d = bit.Set(1, cpu.d)
	return 2
}

// SET 1, E
// #0xCBCB:
func opcodeCB0xCB(cpu *CPU) int {
	cpu.e = bit.Set(1, cpu.e)
	return 2
}

// SET 1, H
// #0xCBCC:
func opcodeCB0xCC(cpu *CPU) int {
	cpu.h = bit.Set(1, cpu.h)
	return 2
}

// SET 1, L
// #0xCBCD:
func opcodeCB0xCD(cpu *CPU) int {
	cpu.l = bit.Set(1, cpu.l)
	return 2
}

// SET 1, (HL)
// #0xCBCE:
func opcodeCB0xCE(cpu *CPU) int {
	cpu.writeHL(bit.Set(1, cpu.readHL()))
	return 4
}

// SET 1, A
// #0xCBCF:
func opcodeCB0xCF(cpu *CPU) int {
	cpu.a = bit.Set(1, cpu.a)
	return 2
}

// SET 2, B
// #0xCBD0:
func opcodeCB0xD0(cpu *CPU) int {
	cpu.b = bit.Set(2, cpu.b)
	return 2
}

// SET 2, C
// #0xCBD1:
func opcodeCB0xD1(cpu *CPU) int {
	cpu.c = bit.Set(2, cpu.c)
	return 2
}

// SET 2, D
// #0xCBD2:
func opcodeCB0xD2(cpu *CPU) int {
	cpu.d = bit.Set(2, cpu.d)
	return 2
}

// SET 2, E
// #0xCBD3:
func opcodeCB0xD3(cpu *CPU) int {
	cpu.e = bit.Set(2, cpu.e)
	return 2
}

// SET 2, H
// #0xCBD4:
func opcodeCB0xD4(cpu *CPU) int {
	cpu.h = bit.Set(2, cpu.h)
	return 2
}

// SET 2, L
// #0xCBD5:
func opcodeCB0xD5(cpu *CPU) int {
	cpu.l = bit.Set(2, cpu.l)
	return 2
}

// SET 2, (HL)
// #0xCBD6:
func opcodeCB0xD6(cpu *CPU) int {
	cpu.writeHL(bit.Set(2, cpu.readHL()))
	return 4
}

// SET 2, A
// #0xCBD7:
func opcodeCB0xD7(cpu *CPU) int {
	cpu.a = bit.Set(2, cpu.a)
	return 2
}

// SET 3, B
// #0xCBD8:
func opcodeCB0xD8(cpu *CPU) int {
	cpu.b = bit.Set(3, cpu.b)
	return 2
}

// SET 3, C
// #0xCBD9:
func opcodeCB0xD9(cpu *CPU) int {
	cpu.c = bit.Set(3, cpu.c)
	return 2
}

// SET 3, D
// #0xCBDA:
func opcodeCB0xDA(cpu *CPU) int {
	cpu.d = bit.Set(3, cpu.d)
	return 2
}

// SET 3, E
// #0xCBDB:
func opcodeCB0xDB(cpu *CPU) int {
	cpu.e = bit.Set(3, cpu.e)
	return 2
}

// SET 3, H
// #0xCBDC:
func opcodeCB0xDC(cpu *CPU) int {
	cpu.h = bit.Set(3, cpu.h)
	return 2
}

// SET 3, L
// #0xCBDD:
func opcodeCB0xDD(cpu *CPU) int {
	cpu.l = bit.Set(3, cpu.l)
	return 2
}

// SET 3, (HL)
// #0xCBDE:
func opcodeCB0xDE(cpu *CPU) int {
	cpu.writeHL(bit.Set(3, cpu.readHL()))
	return 4
}

// SET 3, A
// #0xCBDF:
func opcodeCB0xDF(cpu *CPU) int {
	cpu.a = bit.Set(3, cpu.a)
	return 2
}

// SET 4, B
// #0xCBE0:
func opcodeCB0xE0(cpu *CPU) int {
	cpu.b = bit.Set(4, cpu.b)
	return 2
}

// SET 4, C
// #0xCBE1:
func opcodeCB0xE1(cpu *CPU) int {
	cpu.c = bit.Set(4, cpu.c)
	return 2
}

// SET 4, D
// #0xCBE2:
func opcodeCB0xE2(cpu *CPU) int {
	cpu.d = bit.Set(4, cpu.d)
	return 2
}

// SET 4, E
// #0xCBE3:
func opcodeCB0xE3(cpu *CPU) int {
	cpu.e = bit.Set(4, cpu.e)
	return 2
}

// SET 4, H
// #0xCBE4:
func opcodeCB0xE4(cpu *CPU) int {
	cpu.h = bit.Set(4, cpu.h)
	return 2
}

// SET 4, L
// #0xCBE5:
func opcodeCB0xE5(cpu *CPU) int {
	cpu.l = bit.Set(4, cpu.l)
	return 2
}

// SET 4, (HL)
// #0xCBE6:
func opcodeCB0xE6(cpu *CPU) int {
	cpu.writeHL(bit.Set(4, cpu.readHL()))
	return 4
}

// SET 4, A
// #0xCBE7:
func opcodeCB0xE7(cpu *CPU) int {
	cpu.a = bit.Set(4, cpu.a)
	return 2
}

// SET 5, B
// #0xCBE8:
func opcodeCB0xE8(cpu *CPU) int {
	cpu.b = bit.Set(5, cpu.b)
	return 2
}

// SET 5, C
// #0xCBE9:
func opcodeCB0xE9(cpu *CPU) int {
	cpu.c = bit.Set(5, cpu.c)
	return 2
}

// SET 5, D
// #0xCBEA:
func opcodeCB0xEA(cpu *CPU) int {
	cpu.d = bit.Set(5, cpu.d)
	return 2
}

// SET 5, E
// #0xCBEB:
func opcodeCB0xEB(cpu *CPU) int {
	cpu.e = bit.Set(5, cpu.e)
	return 2
}

// SET 5, H
// #0xCBEC:
func opcodeCB0xEC(cpu *CPU) int {
	cpu.h = bit.Set(5, cpu.h)
	return 2
}

// SET 5, L
// #0xCBED:
func opcodeCB0xED(cpu *CPU) int {
	cpu.l = bit.Set(5, cpu.l)
	return 2
}

// SET 5, (HL)
// #0xCBEE:
func opcodeCB0xEE(cpu *CPU) int {
	cpu.writeHL(bit.Set(5, cpu.readHL()))
	return 4
}

// SET 5, A
// #0xCBEF:
func opcodeCB0xEF(cpu *CPU) int {
	cpu.a = bit.Set(5, cpu.a)
	return 2
}

// SET 6, B
// #0xCBF0:
func opcodeCB0xF0(cpu *CPU) int {
	cpu.b = bit.Set(6, cpu.b)
	return 2
}

// SET 6, C
// #0xCBF1:
func opcodeCB0xF1(cpu *CPU) int {
	cpu.c = bit.Set(6, cpu.c)
	return 2
}

// SET 6, D
// #0xCBF2:
func opcodeCB0xF2(cpu *CPU) int {
	cpu.d = bit.Set(6, cpu.d)
	return 2
}

// SET 6, E
// #0xCBF3:
func opcodeCB0xF3(cpu *CPU) int {
	cpu.e = bit.Set(6, cpu.e)
	return 2
}

// SET 6, H
// #0xCBF4:
func opcodeCB0xF4(cpu *CPU) int {
	cpu.h = bit.Set(6, cpu.h)
	return 2
}

// SET 6, L
// #0xCBF5:
func opcodeCB0xF5(cpu *CPU) int {
	cpu.l = bit.Set(6, cpu.l)
	return 2
}

// SET 6, (HL)
// #0xCBF6:
func opcodeCB0xF6(cpu *CPU) int {
	cpu.writeHL(bit.Set(6, cpu.readHL()))
	return 4
}

// SET 6, A
// #0xCBF7:
func opcodeCB0xF7(cpu *CPU) int {
	cpu.a = bit.Set(6, cpu.a)
	return 2
}

// SET 7, B
// #0xCBF8:
func opcodeCB0xF8(cpu *CPU) int {
	cpu.b = bit.Set(7, cpu.b)
	return 2
}

// SET 7, C
// #0xCBF9:
func opcodeCB0xF9(cpu *CPU) int {
	cpu.c = bit.Set(7, cpu.c)
	return 2
}

// SET 7, D
// #0xCBFA:
func opcodeCB0xFA(cpu *CPU) int {
	cpu.d = bit.Set(7, cpu.d)
	return 2
}

// SET 7, E
// #0xCBFB:
func opcodeCB0xFB(cpu *CPU) int {
	cpu.e = bit.Set(7, cpu.e)
	return 2
}

// SET 7, H
// #0xCBFC:
func opcodeCB0xFC(cpu *CPU) int {
	cpu.h = bit.Set(7, cpu.h)
	return 2
}

// SET 7, L
// #0xCBFD:
func opcodeCB0xFD(cpu *CPU) int {
	cpu.l = bit.Set(7, cpu.l)
	return 2
}

// SET 7, (HL)
// #0xCBFE:
func opcodeCB0xFE(cpu *CPU) int {
	cpu.writeHL(bit.Set(7, cpu.readHL()))
	return 4
}

// SET 7, A
// #0xCBFF:
func opcodeCB0xFF(cpu *CPU) int {
	cpu.a = bit.Set(7, cpu.a)
	return 2
}
