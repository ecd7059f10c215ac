package mos6502

// opcode is one entry of the 256-slot dispatch table: a mnemonic (for
// disassembly/debugging), its addressing mode, base cycle cost, and
// whether it belongs to the "read-category" that earns +1 cycle on a
// page-crossing absolute,X / absolute,Y / indirect,Y access.
type opcode struct {
	name     string
	mode     addrMode
	cycles   int
	boundary bool
	fn       execFunc
}

// OpcodeName returns the mnemonic for a raw opcode byte, for
// disassembly views in the step debugger.
func OpcodeName(b byte) string {
	return opcodeTable[b].name
}

// opcodeTable is indexed by the fetched opcode byte. Undocumented
// slots decode to XXX, a no-op with a conservative cycle count
// (spec.md §4.1), except 0xEB, which runs as SBC immediate like 0xE9.
var opcodeTable = [256]opcode{
	0x00: {"BRK", modeIMP, 7, false, opBRK},
	0x01: {"ORA", modeIZX, 6, false, opORA},
	0x02: {"XXX", modeIMP, 2, false, opXXX},
	0x03: {"XXX", modeIZX, 8, false, opXXX},
	0x04: {"XXX", modeZP0, 3, false, opXXX},
	0x05: {"ORA", modeZP0, 3, false, opORA},
	0x06: {"ASL", modeZP0, 5, false, opASL},
	0x07: {"XXX", modeZP0, 5, false, opXXX},
	0x08: {"PHP", modeIMP, 3, false, opPHP},
	0x09: {"ORA", modeIMM, 2, false, opORA},
	0x0A: {"ASL", modeACC, 2, false, opASL},
	0x0B: {"XXX", modeIMM, 2, false, opXXX},
	0x0C: {"XXX", modeABS, 4, false, opXXX},
	0x0D: {"ORA", modeABS, 4, false, opORA},
	0x0E: {"ASL", modeABS, 6, false, opASL},
	0x0F: {"XXX", modeABS, 6, false, opXXX},

	0x10: {"BPL", modeREL, 2, false, opBPL},
	0x11: {"ORA", modeIZY, 5, true, opORA},
	0x12: {"XXX", modeIMP, 2, false, opXXX},
	0x13: {"XXX", modeIZY, 8, false, opXXX},
	0x14: {"XXX", modeZPX, 4, false, opXXX},
	0x15: {"ORA", modeZPX, 4, false, opORA},
	0x16: {"ASL", modeZPX, 6, false, opASL},
	0x17: {"XXX", modeZPX, 6, false, opXXX},
	0x18: {"CLC", modeIMP, 2, false, opCLC},
	0x19: {"ORA", modeABY, 4, true, opORA},
	0x1A: {"XXX", modeIMP, 2, false, opXXX},
	0x1B: {"XXX", modeABY, 7, false, opXXX},
	0x1C: {"XXX", modeABX, 4, true, opXXX},
	0x1D: {"ORA", modeABX, 4, true, opORA},
	0x1E: {"ASL", modeABX, 7, false, opASL},
	0x1F: {"XXX", modeABX, 7, false, opXXX},

	0x20: {"JSR", modeABS, 6, false, opJSR},
	0x21: {"AND", modeIZX, 6, false, opAND},
	0x22: {"XXX", modeIMP, 2, false, opXXX},
	0x23: {"XXX", modeIZX, 8, false, opXXX},
	0x24: {"BIT", modeZP0, 3, false, opBIT},
	0x25: {"AND", modeZP0, 3, false, opAND},
	0x26: {"ROL", modeZP0, 5, false, opROL},
	0x27: {"XXX", modeZP0, 5, false, opXXX},
	0x28: {"PLP", modeIMP, 4, false, opPLP},
	0x29: {"AND", modeIMM, 2, false, opAND},
	0x2A: {"ROL", modeACC, 2, false, opROL},
	0x2B: {"XXX", modeIMM, 2, false, opXXX},
	0x2C: {"BIT", modeABS, 4, false, opBIT},
	0x2D: {"AND", modeABS, 4, false, opAND},
	0x2E: {"ROL", modeABS, 6, false, opROL},
	0x2F: {"XXX", modeABS, 6, false, opXXX},

	0x30: {"BMI", modeREL, 2, false, opBMI},
	0x31: {"AND", modeIZY, 5, true, opAND},
	0x32: {"XXX", modeIMP, 2, false, opXXX},
	0x33: {"XXX", modeIZY, 8, false, opXXX},
	0x34: {"XXX", modeZPX, 4, false, opXXX},
	0x35: {"AND", modeZPX, 4, false, opAND},
	0x36: {"ROL", modeZPX, 6, false, opROL},
	0x37: {"XXX", modeZPX, 6, false, opXXX},
	0x38: {"SEC", modeIMP, 2, false, opSEC},
	0x39: {"AND", modeABY, 4, true, opAND},
	0x3A: {"XXX", modeIMP, 2, false, opXXX},
	0x3B: {"XXX", modeABY, 7, false, opXXX},
	0x3C: {"XXX", modeABX, 4, true, opXXX},
	0x3D: {"AND", modeABX, 4, true, opAND},
	0x3E: {"ROL", modeABX, 7, false, opROL},
	0x3F: {"XXX", modeABX, 7, false, opXXX},

	0x40: {"RTI", modeIMP, 6, false, opRTI},
	0x41: {"EOR", modeIZX, 6, false, opEOR},
	0x42: {"XXX", modeIMP, 2, false, opXXX},
	0x43: {"XXX", modeIZX, 8, false, opXXX},
	0x44: {"XXX", modeZP0, 3, false, opXXX},
	0x45: {"EOR", modeZP0, 3, false, opEOR},
	0x46: {"LSR", modeZP0, 5, false, opLSR},
	0x47: {"XXX", modeZP0, 5, false, opXXX},
	0x48: {"PHA", modeIMP, 3, false, opPHA},
	0x49: {"EOR", modeIMM, 2, false, opEOR},
	0x4A: {"LSR", modeACC, 2, false, opLSR},
	0x4B: {"XXX", modeIMM, 2, false, opXXX},
	0x4C: {"JMP", modeABS, 3, false, opJMP},
	0x4D: {"EOR", modeABS, 4, false, opEOR},
	0x4E: {"LSR", modeABS, 6, false, opLSR},
	0x4F: {"XXX", modeABS, 6, false, opXXX},

	0x50: {"BVC", modeREL, 2, false, opBVC},
	0x51: {"EOR", modeIZY, 5, true, opEOR},
	0x52: {"XXX", modeIMP, 2, false, opXXX},
	0x53: {"XXX", modeIZY, 8, false, opXXX},
	0x54: {"XXX", modeZPX, 4, false, opXXX},
	0x55: {"EOR", modeZPX, 4, false, opEOR},
	0x56: {"LSR", modeZPX, 6, false, opLSR},
	0x57: {"XXX", modeZPX, 6, false, opXXX},
	0x58: {"CLI", modeIMP, 2, false, opCLI},
	0x59: {"EOR", modeABY, 4, true, opEOR},
	0x5A: {"XXX", modeIMP, 2, false, opXXX},
	0x5B: {"XXX", modeABY, 7, false, opXXX},
	0x5C: {"XXX", modeABX, 4, true, opXXX},
	0x5D: {"EOR", modeABX, 4, true, opEOR},
	0x5E: {"LSR", modeABX, 7, false, opLSR},
	0x5F: {"XXX", modeABX, 7, false, opXXX},

	0x60: {"RTS", modeIMP, 6, false, opRTS},
	0x61: {"ADC", modeIZX, 6, false, opADC},
	0x62: {"XXX", modeIMP, 2, false, opXXX},
	0x63: {"XXX", modeIZX, 8, false, opXXX},
	0x64: {"XXX", modeZP0, 3, false, opXXX},
	0x65: {"ADC", modeZP0, 3, false, opADC},
	0x66: {"ROR", modeZP0, 5, false, opROR},
	0x67: {"XXX", modeZP0, 5, false, opXXX},
	0x68: {"PLA", modeIMP, 4, false, opPLA},
	0x69: {"ADC", modeIMM, 2, false, opADC},
	0x6A: {"ROR", modeACC, 2, false, opROR},
	0x6B: {"XXX", modeIMM, 2, false, opXXX},
	0x6C: {"JMP", modeIND, 5, false, opJMP},
	0x6D: {"ADC", modeABS, 4, false, opADC},
	0x6E: {"ROR", modeABS, 6, false, opROR},
	0x6F: {"XXX", modeABS, 6, false, opXXX},

	0x70: {"BVS", modeREL, 2, false, opBVS},
	0x71: {"ADC", modeIZY, 5, true, opADC},
	0x72: {"XXX", modeIMP, 2, false, opXXX},
	0x73: {"XXX", modeIZY, 8, false, opXXX},
	0x74: {"XXX", modeZPX, 4, false, opXXX},
	0x75: {"ADC", modeZPX, 4, false, opADC},
	0x76: {"ROR", modeZPX, 6, false, opROR},
	0x77: {"XXX", modeZPX, 6, false, opXXX},
	0x78: {"SEI", modeIMP, 2, false, opSEI},
	0x79: {"ADC", modeABY, 4, true, opADC},
	0x7A: {"XXX", modeIMP, 2, false, opXXX},
	0x7B: {"XXX", modeABY, 7, false, opXXX},
	0x7C: {"XXX", modeABX, 4, true, opXXX},
	0x7D: {"ADC", modeABX, 4, true, opADC},
	0x7E: {"ROR", modeABX, 7, false, opROR},
	0x7F: {"XXX", modeABX, 7, false, opXXX},

	0x80: {"XXX", modeIMM, 2, false, opXXX},
	0x81: {"STA", modeIZX, 6, false, opSTA},
	0x82: {"XXX", modeIMM, 2, false, opXXX},
	0x83: {"XXX", modeIZX, 6, false, opXXX},
	0x84: {"STY", modeZP0, 3, false, opSTY},
	0x85: {"STA", modeZP0, 3, false, opSTA},
	0x86: {"STX", modeZP0, 3, false, opSTX},
	0x87: {"XXX", modeZP0, 3, false, opXXX},
	0x88: {"DEY", modeIMP, 2, false, opDEY},
	0x89: {"XXX", modeIMM, 2, false, opXXX},
	0x8A: {"TXA", modeIMP, 2, false, opTXA},
	0x8B: {"XXX", modeIMM, 2, false, opXXX},
	0x8C: {"STY", modeABS, 4, false, opSTY},
	0x8D: {"STA", modeABS, 4, false, opSTA},
	0x8E: {"STX", modeABS, 4, false, opSTX},
	0x8F: {"XXX", modeABS, 4, false, opXXX},

	0x90: {"BCC", modeREL, 2, false, opBCC},
	0x91: {"STA", modeIZY, 6, false, opSTA},
	0x92: {"XXX", modeIMP, 2, false, opXXX},
	0x93: {"XXX", modeIZY, 6, false, opXXX},
	0x94: {"STY", modeZPX, 4, false, opSTY},
	0x95: {"STA", modeZPX, 4, false, opSTA},
	0x96: {"STX", modeZPY, 4, false, opSTX},
	0x97: {"XXX", modeZPY, 4, false, opXXX},
	0x98: {"TYA", modeIMP, 2, false, opTYA},
	0x99: {"STA", modeABY, 5, false, opSTA},
	0x9A: {"TXS", modeIMP, 2, false, opTXS},
	0x9B: {"XXX", modeABY, 5, false, opXXX},
	0x9C: {"XXX", modeABX, 5, false, opXXX},
	0x9D: {"STA", modeABX, 5, false, opSTA},
	0x9E: {"XXX", modeABY, 5, false, opXXX},
	0x9F: {"XXX", modeABY, 5, false, opXXX},

	0xA0: {"LDY", modeIMM, 2, false, opLDY},
	0xA1: {"LDA", modeIZX, 6, false, opLDA},
	0xA2: {"LDX", modeIMM, 2, false, opLDX},
	0xA3: {"XXX", modeIZX, 6, false, opXXX},
	0xA4: {"LDY", modeZP0, 3, false, opLDY},
	0xA5: {"LDA", modeZP0, 3, false, opLDA},
	0xA6: {"LDX", modeZP0, 3, false, opLDX},
	0xA7: {"XXX", modeZP0, 3, false, opXXX},
	0xA8: {"TAY", modeIMP, 2, false, opTAY},
	0xA9: {"LDA", modeIMM, 2, false, opLDA},
	0xAA: {"TAX", modeIMP, 2, false, opTAX},
	0xAB: {"XXX", modeIMM, 2, false, opXXX},
	0xAC: {"LDY", modeABS, 4, false, opLDY},
	0xAD: {"LDA", modeABS, 4, false, opLDA},
	0xAE: {"LDX", modeABS, 4, false, opLDX},
	0xAF: {"XXX", modeABS, 4, false, opXXX},

	0xB0: {"BCS", modeREL, 2, false, opBCS},
	0xB1: {"LDA", modeIZY, 5, true, opLDA},
	0xB2: {"XXX", modeIMP, 2, false, opXXX},
	0xB3: {"XXX", modeIZY, 5, true, opXXX},
	0xB4: {"LDY", modeZPX, 4, false, opLDY},
	0xB5: {"LDA", modeZPX, 4, false, opLDA},
	0xB6: {"LDX", modeZPY, 4, false, opLDX},
	0xB7: {"XXX", modeZPY, 4, false, opXXX},
	0xB8: {"CLV", modeIMP, 2, false, opCLV},
	0xB9: {"LDA", modeABY, 4, true, opLDA},
	0xBA: {"TSX", modeIMP, 2, false, opTSX},
	0xBB: {"XXX", modeABY, 4, true, opXXX},
	0xBC: {"LDY", modeABX, 4, true, opLDY},
	0xBD: {"LDA", modeABX, 4, true, opLDA},
	0xBE: {"LDX", modeABY, 4, true, opLDX},
	0xBF: {"XXX", modeABY, 4, true, opXXX},

	0xC0: {"CPY", modeIMM, 2, false, opCPY},
	0xC1: {"CMP", modeIZX, 6, false, opCMP},
	0xC2: {"XXX", modeIMM, 2, false, opXXX},
	0xC3: {"XXX", modeIZX, 8, false, opXXX},
	0xC4: {"CPY", modeZP0, 3, false, opCPY},
	0xC5: {"CMP", modeZP0, 3, false, opCMP},
	0xC6: {"DEC", modeZP0, 5, false, opDEC},
	0xC7: {"XXX", modeZP0, 5, false, opXXX},
	0xC8: {"INY", modeIMP, 2, false, opINY},
	0xC9: {"CMP", modeIMM, 2, false, opCMP},
	0xCA: {"DEX", modeIMP, 2, false, opDEX},
	0xCB: {"XXX", modeIMM, 2, false, opXXX},
	0xCC: {"CPY", modeABS, 4, false, opCPY},
	0xCD: {"CMP", modeABS, 4, false, opCMP},
	0xCE: {"DEC", modeABS, 6, false, opDEC},
	0xCF: {"XXX", modeABS, 6, false, opXXX},

	0xD0: {"BNE", modeREL, 2, false, opBNE},
	0xD1: {"CMP", modeIZY, 5, true, opCMP},
	0xD2: {"XXX", modeIMP, 2, false, opXXX},
	0xD3: {"XXX", modeIZY, 8, false, opXXX},
	0xD4: {"XXX", modeZPX, 4, false, opXXX},
	0xD5: {"CMP", modeZPX, 4, false, opCMP},
	0xD6: {"DEC", modeZPX, 6, false, opDEC},
	0xD7: {"XXX", modeZPX, 6, false, opXXX},
	0xD8: {"CLD", modeIMP, 2, false, opCLD},
	0xD9: {"CMP", modeABY, 4, true, opCMP},
	0xDA: {"XXX", modeIMP, 2, false, opXXX},
	0xDB: {"XXX", modeABY, 7, false, opXXX},
	0xDC: {"XXX", modeABX, 4, true, opXXX},
	0xDD: {"CMP", modeABX, 4, true, opCMP},
	0xDE: {"DEC", modeABX, 7, false, opDEC},
	0xDF: {"XXX", modeABX, 7, false, opXXX},

	0xE0: {"CPX", modeIMM, 2, false, opCPX},
	0xE1: {"SBC", modeIZX, 6, false, opSBC},
	0xE2: {"XXX", modeIMM, 2, false, opXXX},
	0xE3: {"XXX", modeIZX, 8, false, opXXX},
	0xE4: {"CPX", modeZP0, 3, false, opCPX},
	0xE5: {"SBC", modeZP0, 3, false, opSBC},
	0xE6: {"INC", modeZP0, 5, false, opINC},
	0xE7: {"XXX", modeZP0, 5, false, opXXX},
	0xE8: {"INX", modeIMP, 2, false, opINX},
	0xE9: {"SBC", modeIMM, 2, false, opSBC},
	0xEA: {"NOP", modeIMP, 2, false, opNOP},
	0xEB: {"SBC", modeIMM, 2, false, opSBC},
	0xEC: {"CPX", modeABS, 4, false, opCPX},
	0xED: {"SBC", modeABS, 4, false, opSBC},
	0xEE: {"INC", modeABS, 6, false, opINC},
	0xEF: {"XXX", modeABS, 6, false, opXXX},

	0xF0: {"BEQ", modeREL, 2, false, opBEQ},
	0xF1: {"SBC", modeIZY, 5, true, opSBC},
	0xF2: {"XXX", modeIMP, 2, false, opXXX},
	0xF3: {"XXX", modeIZY, 8, false, opXXX},
	0xF4: {"XXX", modeZPX, 4, false, opXXX},
	0xF5: {"SBC", modeZPX, 4, false, opSBC},
	0xF6: {"INC", modeZPX, 6, false, opINC},
	0xF7: {"XXX", modeZPX, 6, false, opXXX},
	0xF8: {"SED", modeIMP, 2, false, opSED},
	0xF9: {"SBC", modeABY, 4, true, opSBC},
	0xFA: {"XXX", modeIMP, 2, false, opXXX},
	0xFB: {"XXX", modeABY, 7, false, opXXX},
	0xFC: {"XXX", modeABX, 4, true, opXXX},
	0xFD: {"SBC", modeABX, 4, true, opSBC},
	0xFE: {"INC", modeABX, 7, false, opINC},
	0xFF: {"XXX", modeABX, 7, false, opXXX},
}
