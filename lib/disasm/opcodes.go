package disasm

// instructionSizes is the base byte length of each opcode, before the
// accumulator/index-width adjustment opSize applies to the twelve
// immediate-mode opcodes affected by the M and X processor flags.
// Grounded on disassembler.py's InstructionSizes.
var instructionSizes = [256]int{
	2, 2, 2, 2, 2, 2, 2, 2, 1, 2, 1, 1, 3, 3, 3, 4, // 0x
	2, 2, 2, 2, 2, 2, 2, 2, 1, 3, 1, 1, 3, 3, 3, 4, // 1x
	3, 2, 4, 2, 2, 2, 2, 2, 1, 2, 1, 1, 3, 3, 3, 4, // 2x
	2, 2, 2, 2, 2, 2, 2, 2, 1, 3, 1, 1, 3, 3, 3, 4, // 3x
	1, 2, 2, 2, 3, 2, 2, 2, 1, 2, 1, 1, 3, 3, 3, 4, // 4x
	2, 2, 2, 2, 3, 2, 2, 2, 1, 3, 1, 1, 4, 3, 3, 4, // 5x
	1, 2, 3, 2, 2, 2, 2, 2, 1, 2, 1, 1, 3, 3, 3, 4, // 6x
	2, 2, 2, 2, 2, 2, 2, 2, 1, 3, 1, 1, 3, 3, 3, 4, // 7x
	2, 2, 3, 2, 2, 2, 2, 2, 1, 2, 1, 1, 3, 3, 3, 4, // 8x
	2, 2, 2, 2, 2, 2, 2, 2, 1, 3, 1, 1, 3, 3, 3, 4, // 9x
	2, 2, 2, 2, 2, 2, 2, 2, 1, 2, 1, 1, 3, 3, 3, 4, // Ax
	2, 2, 2, 2, 2, 2, 2, 2, 1, 3, 1, 1, 3, 3, 3, 4, // Bx
	2, 2, 2, 2, 2, 2, 2, 2, 1, 2, 1, 1, 3, 3, 3, 4, // Cx
	2, 2, 2, 2, 2, 2, 2, 2, 1, 3, 1, 1, 3, 3, 3, 4, // Dx
	2, 2, 2, 2, 2, 2, 2, 2, 1, 2, 1, 1, 3, 3, 3, 4, // Ex
	2, 2, 2, 2, 3, 2, 2, 2, 1, 3, 1, 1, 3, 3, 3, 4, // Fx
}

// accVariableOps are the immediate-mode opcodes whose operand widens by one
// byte when the accumulator is 16-bit (the M flag is clear).
var accVariableOps = map[byte]bool{
	0x09: true, 0x69: true, 0x29: true, 0x89: true,
	0xC9: true, 0x49: true, 0xE9: true, 0xA9: true,
}

// indexVariableOps are the immediate-mode opcodes whose operand widens by
// one byte when the index registers are 16-bit (the X flag is clear).
var indexVariableOps = map[byte]bool{
	0xE0: true, 0xC0: true, 0xA2: true, 0xA0: true,
}

type addrMode int

const (
	modeImplied addrMode = iota
	modeAccumulator
	modeImmediateM
	modeImmediateX
	modeDirectPage
	modeDirectPageX
	modeDirectPageY
	modeDirectPageIndirect
	modeDirectPageIndirectLong
	modeDirectPageIndIndirX
	modeDirectPageIndIndirY
	modeDirectPageIndirectLongY
	modeAbsolute
	modeAbsoluteLookup
	modeAbsoluteX
	modeAbsoluteY
	modeAbsoluteLong
	modeAbsoluteLongX
	modeAbsoluteIndirect
	modeAbsoluteIndIndirX
	modeAbsoluteIndirectLong
	modeStackRel
	modeStackRelIndY
	modeStackInterrupt
	modeBlockMove
	modeBranch
	modeBranchLong
	modeJMPAbsolute
	modeJSRAbsolute
	modeJumpAbsoluteLong
	modeREP
	modeSEP
	modeWDM
)

type opInfo struct {
	mnemonic string
	mode     addrMode
}

// opcodes is the 65C816 instruction table: mnemonic and addressing mode per
// opcode byte. Grounded on every op## handler in disassembler.py (confirmed
// one-for-one against each handler's addressing-helper call).
var opcodes = [256]opInfo{
	0x00: {"brk", modeStackInterrupt}, 0x01: {"ora", modeDirectPageIndIndirX},
	0x02: {"cop", modeStackInterrupt}, 0x03: {"ora", modeStackRel},
	0x04: {"tsb", modeDirectPage}, 0x05: {"ora", modeDirectPage},
	0x06: {"asl", modeDirectPage}, 0x07: {"ora", modeDirectPageIndirectLong},
	0x08: {"php", modeImplied}, 0x09: {"ora", modeImmediateM},
	0x0A: {"asl", modeAccumulator}, 0x0B: {"phd", modeImplied},
	0x0C: {"tsb", modeAbsoluteLookup}, 0x0D: {"ora", modeAbsoluteLookup},
	0x0E: {"asl", modeAbsolute}, 0x0F: {"ora", modeAbsoluteLong},

	0x10: {"bpl", modeBranch}, 0x11: {"ora", modeDirectPageIndIndirY},
	0x12: {"ora", modeDirectPageIndirect}, 0x13: {"ora", modeStackRelIndY},
	0x14: {"trb", modeDirectPage}, 0x15: {"ora", modeDirectPageX},
	0x16: {"asl", modeDirectPageX}, 0x17: {"ora", modeDirectPageIndirectLongY},
	0x18: {"clc", modeImplied}, 0x19: {"ora", modeAbsoluteY},
	0x1A: {"inc", modeAccumulator}, 0x1B: {"tcs", modeImplied},
	0x1C: {"trb", modeAbsoluteLookup}, 0x1D: {"ora", modeAbsoluteX},
	0x1E: {"asl", modeAbsoluteX}, 0x1F: {"ora", modeAbsoluteLongX},

	0x20: {"jsr", modeJSRAbsolute}, 0x21: {"and", modeDirectPageIndIndirX},
	// op22 is historically JSL, but the source's op22 handler emits the
	// mnemonic "jsr", not "jsl". Its label resolution (set_label, same as
	// op5C) was commented out upstream; completed here as longJump.
	0x22: {"jsr", modeJumpAbsoluteLong}, 0x23: {"and", modeStackRel},
	0x24: {"bit", modeDirectPage}, 0x25: {"and", modeDirectPage},
	0x26: {"rol", modeDirectPage}, 0x27: {"and", modeDirectPageIndirectLong},
	0x28: {"plp", modeImplied}, 0x29: {"and", modeImmediateM},
	0x2A: {"rol", modeAccumulator}, 0x2B: {"pld", modeImplied},
	0x2C: {"bit", modeAbsolute}, 0x2D: {"and", modeAbsoluteLookup},
	0x2E: {"rol", modeAbsoluteLookup}, 0x2F: {"and", modeAbsoluteLong},

	0x30: {"bmi", modeBranch}, 0x31: {"and", modeDirectPageIndIndirY},
	0x32: {"and", modeDirectPageIndirect}, 0x33: {"and", modeStackRelIndY},
	0x34: {"bit", modeDirectPageX}, 0x35: {"and", modeDirectPageX},
	0x36: {"rol", modeDirectPageX}, 0x37: {"and", modeDirectPageIndirectLongY},
	0x38: {"sec", modeImplied}, 0x39: {"and", modeAbsoluteY},
	0x3A: {"dec", modeAccumulator}, 0x3B: {"tsc", modeImplied},
	0x3C: {"bit", modeAbsoluteX}, 0x3D: {"and", modeAbsoluteX},
	0x3E: {"rol", modeAbsoluteX}, 0x3F: {"and", modeAbsoluteLongX},

	0x40: {"rti", modeImplied}, 0x41: {"eor", modeDirectPageIndIndirX},
	0x42: {"wdm", modeWDM}, 0x43: {"eor", modeStackRel},
	0x44: {"mvp", modeBlockMove}, 0x45: {"eor", modeDirectPage},
	0x46: {"lsr", modeDirectPage}, 0x47: {"eor", modeDirectPageIndirectLong},
	0x48: {"pha", modeImplied}, 0x49: {"eor", modeImmediateM},
	0x4A: {"lsr", modeAccumulator}, 0x4B: {"phk", modeImplied},
	0x4C: {"jmp", modeJMPAbsolute}, 0x4D: {"eor", modeAbsoluteLookup},
	0x4E: {"lsr", modeAbsoluteLookup}, 0x4F: {"eor", modeAbsoluteLong},

	0x50: {"bvc", modeBranch}, 0x51: {"eor", modeDirectPageIndIndirY},
	0x52: {"eor", modeDirectPageIndirect}, 0x53: {"eor", modeStackRelIndY},
	0x54: {"mvn", modeBlockMove}, 0x55: {"eor", modeDirectPageX},
	0x56: {"lsr", modeDirectPageX}, 0x57: {"eor", modeDirectPageIndirectLongY},
	0x58: {"cli", modeImplied}, 0x59: {"eor", modeAbsoluteY},
	0x5A: {"phy", modeImplied}, 0x5B: {"tcd", modeImplied},
	0x5C: {"jmp", modeJumpAbsoluteLong}, // op5C's set_label call was commented out upstream; completed here as longJump
	0x5D: {"eor", modeAbsoluteX},
	0x5E: {"lsr", modeAbsoluteX}, 0x5F: {"eor", modeAbsoluteLongX},

	0x60: {"rts", modeImplied}, 0x61: {"adc", modeDirectPageIndIndirX},
	0x62: {"per", modeBranchLong}, 0x63: {"adc", modeStackRel},
	0x64: {"stz", modeDirectPage}, 0x65: {"adc", modeDirectPage},
	0x66: {"ror", modeDirectPage}, 0x67: {"adc", modeDirectPageIndirectLong},
	0x68: {"pla", modeImplied}, 0x69: {"adc", modeImmediateM},
	0x6A: {"ror", modeAccumulator}, 0x6B: {"rtl", modeImplied},
	0x6C: {"jmp", modeAbsoluteIndirect}, 0x6D: {"adc", modeAbsolute},
	0x6E: {"ror", modeAbsoluteLookup}, 0x6F: {"adc", modeAbsoluteLong},

	0x70: {"bvs", modeBranch}, 0x71: {"adc", modeDirectPageIndIndirY},
	0x72: {"adc", modeDirectPageIndirect}, 0x73: {"adc", modeStackRelIndY},
	0x74: {"stz", modeDirectPageX}, 0x75: {"adc", modeDirectPageX},
	0x76: {"ror", modeDirectPageX}, 0x77: {"adc", modeDirectPageIndirectLongY},
	0x78: {"sei", modeImplied}, 0x79: {"adc", modeAbsoluteY},
	0x7A: {"ply", modeImplied}, 0x7B: {"tdc", modeImplied},
	0x7C: {"jmp", modeAbsoluteIndIndirX}, 0x7D: {"adc", modeAbsoluteX},
	0x7E: {"ror", modeAbsoluteX}, 0x7F: {"adc", modeAbsoluteLongX},

	0x80: {"bra", modeBranch}, 0x81: {"sta", modeDirectPageIndIndirX},
	0x82: {"brl", modeBranchLong}, 0x83: {"sta", modeStackRel},
	0x84: {"sty", modeDirectPage}, 0x85: {"sta", modeDirectPage},
	0x86: {"stx", modeDirectPage}, 0x87: {"sta", modeDirectPageIndirectLong},
	0x88: {"dey", modeImplied}, 0x89: {"bit", modeImmediateM},
	0x8A: {"txa", modeImplied}, 0x8B: {"phb", modeImplied},
	0x8C: {"sty", modeAbsoluteLookup}, 0x8D: {"sta", modeAbsoluteLookup},
	0x8E: {"stx", modeAbsoluteLookup}, 0x8F: {"sta", modeAbsoluteLong},

	0x90: {"bcc", modeBranch}, 0x91: {"sta", modeDirectPageIndIndirY},
	0x92: {"sta", modeDirectPageIndirect}, 0x93: {"sta", modeStackRelIndY},
	0x94: {"sty", modeDirectPageX}, 0x95: {"sta", modeDirectPageX},
	0x96: {"stx", modeDirectPageY}, 0x97: {"sta", modeDirectPageIndirectLongY},
	0x98: {"tya", modeImplied}, 0x99: {"sta", modeAbsoluteY},
	0x9A: {"txs", modeImplied}, 0x9B: {"txy", modeImplied},
	0x9C: {"stz", modeAbsoluteLookup}, 0x9D: {"sta", modeAbsoluteX},
	0x9E: {"stz", modeAbsoluteX}, 0x9F: {"sta", modeAbsoluteLongX},

	0xA0: {"ldy", modeImmediateX}, 0xA1: {"lda", modeDirectPageIndIndirX},
	0xA2: {"ldx", modeImmediateX}, 0xA3: {"lda", modeStackRel},
	0xA4: {"ldy", modeDirectPage}, 0xA5: {"lda", modeDirectPage},
	0xA6: {"ldx", modeDirectPage}, 0xA7: {"lda", modeDirectPageIndirectLong},
	0xA8: {"tay", modeImplied}, 0xA9: {"lda", modeImmediateM},
	0xAA: {"tax", modeImplied}, 0xAB: {"plb", modeImplied},
	0xAC: {"ldy", modeAbsoluteLookup}, 0xAD: {"lda", modeAbsoluteLookup},
	0xAE: {"ldx", modeAbsoluteLookup}, 0xAF: {"lda", modeAbsoluteLong},

	0xB0: {"bcs", modeBranch}, 0xB1: {"lda", modeDirectPageIndIndirY},
	0xB2: {"lda", modeDirectPageIndirect}, 0xB3: {"lda", modeStackRelIndY},
	0xB4: {"ldy", modeDirectPageX}, 0xB5: {"lda", modeDirectPageX},
	0xB6: {"ldx", modeDirectPageY}, 0xB7: {"lda", modeDirectPageIndirectLongY},
	0xB8: {"clv", modeImplied}, 0xB9: {"lda", modeAbsoluteY},
	0xBA: {"tsx", modeImplied}, 0xBB: {"tyx", modeImplied},
	0xBC: {"ldy", modeAbsoluteX}, 0xBD: {"lda", modeAbsoluteX},
	0xBE: {"ldx", modeAbsoluteY}, 0xBF: {"lda", modeAbsoluteLongX},

	0xC0: {"cpy", modeImmediateX}, 0xC1: {"cmp", modeDirectPageIndIndirX},
	0xC2: {"rep", modeREP}, 0xC3: {"cmp", modeStackRel},
	0xC4: {"cpy", modeDirectPage}, 0xC5: {"cmp", modeDirectPage},
	0xC6: {"dec", modeDirectPage}, 0xC7: {"cmp", modeDirectPageIndirectLong},
	0xC8: {"iny", modeImplied}, 0xC9: {"cmp", modeImmediateM},
	0xCA: {"dex", modeImplied}, 0xCB: {"wai", modeImplied},
	0xCC: {"cpy", modeAbsoluteLookup}, 0xCD: {"cmp", modeAbsolute},
	0xCE: {"dec", modeAbsoluteLookup}, 0xCF: {"cmp", modeAbsoluteLong},

	0xD0: {"bne", modeBranch}, 0xD1: {"cmp", modeDirectPageIndIndirY},
	0xD2: {"cmp", modeDirectPageIndirect}, 0xD3: {"cmp", modeStackRelIndY},
	0xD4: {"pei", modeDirectPageIndirect}, 0xD5: {"cmp", modeDirectPageX},
	0xD6: {"dec", modeDirectPageX}, 0xD7: {"cmp", modeDirectPageIndirectLongY},
	0xD8: {"cld", modeImplied}, 0xD9: {"cmp", modeAbsoluteY},
	0xDA: {"phx", modeImplied}, 0xDB: {"stp", modeImplied},
	0xDC: {"jmp", modeAbsoluteIndirectLong}, 0xDD: {"cmp", modeAbsoluteX},
	0xDE: {"dec", modeAbsoluteX}, 0xDF: {"cmp", modeAbsoluteLongX},

	0xE0: {"cpx", modeImmediateX}, 0xE1: {"sbc", modeDirectPageIndIndirX},
	0xE2: {"sep", modeSEP}, 0xE3: {"sbc", modeStackRel},
	0xE4: {"cpx", modeDirectPage}, 0xE5: {"sbc", modeDirectPage},
	0xE6: {"inc", modeDirectPage}, 0xE7: {"sbc", modeDirectPageIndirectLong},
	0xE8: {"inx", modeImplied}, 0xE9: {"sbc", modeImmediateM},
	0xEA: {"nop", modeImplied}, 0xEB: {"xba", modeImplied},
	0xEC: {"cpx", modeAbsoluteLookup}, 0xED: {"sbc", modeAbsoluteLookup},
	0xEE: {"inc", modeAbsoluteLookup}, 0xEF: {"sbc", modeAbsoluteLong},

	0xF0: {"beq", modeBranch}, 0xF1: {"sbc", modeDirectPageIndIndirY},
	0xF2: {"sbc", modeDirectPageIndirect}, 0xF3: {"sbc", modeStackRelIndY},
	0xF4: {"pea", modeAbsolute}, 0xF5: {"sbc", modeDirectPageX},
	0xF6: {"inc", modeDirectPageX}, 0xF7: {"sbc", modeDirectPageIndirectLongY},
	0xF8: {"sed", modeImplied}, 0xF9: {"sbc", modeAbsoluteY},
	0xFA: {"plx", modeImplied}, 0xFB: {"xce", modeImplied},
	0xFC: {"jsr", modeAbsoluteIndIndirX}, 0xFD: {"sbc", modeAbsoluteX},
	0xFE: {"inc", modeAbsoluteX}, 0xFF: {"sbc", modeAbsoluteLongX},
}
