package disasm

import "fmt"

// pipe8/pipe16/pipe24 read the operand bytes immediately following the
// opcode at the current sweep position, little-endian. They never advance
// pos; the caller advances by the opcode's full size once decoding is done.
func (d *Disassembler) pipe8() int {
	return int(d.cart.ByteAt(d.pos + 1))
}

func (d *Disassembler) pipe16() int {
	return int(d.cart.ByteAt(d.pos+1)) | int(d.cart.ByteAt(d.pos+2))<<8
}

func (d *Disassembler) pipe24() int {
	return int(d.cart.ByteAt(d.pos+1)) | int(d.cart.ByteAt(d.pos+2))<<8 | int(d.cart.ByteAt(d.pos+3))<<16
}

// acc16 reports whether the accumulator is in 16-bit mode (M flag clear).
func (d *Disassembler) acc16() bool { return d.flags&0x20 == 0 }

// ind16 reports whether the index registers are in 16-bit mode (X flag clear).
func (d *Disassembler) ind16() bool { return d.flags&0x10 == 0 }

func (d *Disassembler) setLabel(address int) {
	if d.noLabels {
		return
	}
	d.labels[address] = true
}

// labelRef formats a branch/jump target: a symbolic L%06X reference
// normally, or a bare hex address when noLabels is set (the --nl CLI flag).
func (d *Disassembler) labelRef(address int) string {
	if d.noLabels {
		return fmt.Sprintf("$%06X", address)
	}
	return fmt.Sprintf("L%06X", address)
}

// operand formats the instruction operand text (including its leading
// space) for every addressing mode that carries no label/branch semantics
// of its own. Modes with such semantics (branch, branch-long, the jmp/jsr
// absolute variants, absolute-lookup, rep/sep, wdm, block-move) are handled
// directly in decodeOp instead.
func (d *Disassembler) operand(mode addrMode) string {
	switch mode {
	case modeImmediateM:
		if d.acc16() {
			return fmt.Sprintf(" #$%04X.w", d.pipe16())
		}
		return fmt.Sprintf(" #$%02X.b", d.pipe8())
	case modeImmediateX:
		if d.ind16() {
			return fmt.Sprintf(" #$%04X.w", d.pipe16())
		}
		return fmt.Sprintf(" #$%02X.b", d.pipe8())
	case modeAbsolute:
		return fmt.Sprintf(" $%04X.w", d.pipe16())
	case modeAbsoluteIndirect:
		return fmt.Sprintf(" ($%04X.w)", d.pipe16())
	case modeAbsoluteIndIndirX:
		return fmt.Sprintf(" ($%04X.w,X)", d.pipe16())
	case modeAbsoluteIndirectLong:
		return fmt.Sprintf(" [$%04X.w]", d.pipe16())
	case modeAbsoluteX:
		return fmt.Sprintf(" $%04X.w,X", d.pipe16())
	case modeAbsoluteY:
		return fmt.Sprintf(" $%04X.w,Y", d.pipe16())
	case modeAbsoluteLong:
		return fmt.Sprintf(" $%06X.l", d.pipe24())
	case modeAbsoluteLongX:
		return fmt.Sprintf(" $%06X.l,X", d.pipe24())
	case modeDirectPage:
		return fmt.Sprintf(" $%02X.b", d.pipe8())
	case modeDirectPageIndirect:
		return fmt.Sprintf(" ($%02X.b)", d.pipe8())
	case modeDirectPageX:
		return fmt.Sprintf(" $%02X.b,X", d.pipe8())
	case modeDirectPageY:
		return fmt.Sprintf(" $%02X.b,Y", d.pipe8())
	case modeDirectPageIndirectLong:
		return fmt.Sprintf(" [$%02X.b]", d.pipe8())
	case modeDirectPageIndIndirX:
		return fmt.Sprintf(" ($%02X.b,X)", d.pipe8())
	case modeDirectPageIndIndirY:
		return fmt.Sprintf(" ($%02X.b),Y", d.pipe8())
	case modeDirectPageIndirectLongY:
		return fmt.Sprintf(" [$%02X.b],Y", d.pipe8())
	case modeStackRel:
		return fmt.Sprintf(" $%02X.b,S", d.pipe8())
	case modeStackRelIndY:
		return fmt.Sprintf(" ($%02X.b,S),Y", d.pipe8())
	case modeStackInterrupt:
		return fmt.Sprintf(" $%02X.b", d.pipe8())
	default:
		return ""
	}
}

// blockMove formats the MVN/MVP operand, whose two bytes are read and
// printed in reverse order (destination bank, then source bank) relative to
// their position in the instruction stream.
func (d *Disassembler) blockMove() string {
	return fmt.Sprintf(" $%02X,$%02X", d.cart.ByteAt(d.pos+2), d.cart.ByteAt(d.pos+1))
}

// absLookup formats an absolute-mode operand for the 19 mnemonics that
// substitute a known hardware register's symbol name (plus an explanatory
// comment) in place of a bare hex address.
func (d *Disassembler) absLookup(mnemonic string) (code, comment string) {
	address := d.pipe16()
	if reg, ok := staticAddresses[address]; ok {
		return mnemonic + " " + reg.name + ".w", reg.comment
	}
	return mnemonic + d.operand(modeAbsolute), ""
}

// validLabel reports whether index lands exactly on an opcode boundary: a
// position already decoded (index < pos, simply checked against the code
// map), or one the sweep will land on exactly if it continues forward from
// pos, simulating REP/SEP flag changes along the way so opcode sizes are
// computed correctly.
func (d *Disassembler) validLabel(index int) bool {
	if index < d.pos {
		_, ok := d.code[index]
		return ok
	}

	flags := d.flags
	pos := d.pos
	defer func() { d.flags = flags; d.pos = pos }()

	valid := false
	for d.pos <= index {
		op := d.cart.ByteAt(d.pos)
		switch op {
		case 0xC2:
			d.flags &^= byte(d.pipe8())
		case 0xE2:
			d.flags |= byte(d.pipe8())
		}
		d.pos += d.opSize(op)
		if index == d.pos {
			valid = true
			break
		}
	}
	return valid
}

// opSize returns an opcode's encoded length in bytes, including the
// accumulator/index-width adjustment for the twelve immediate-mode opcodes
// whose operand widens when the corresponding processor flag is clear.
func (d *Disassembler) opSize(op byte) int {
	size := instructionSizes[op]
	switch {
	case d.acc16() && accVariableOps[op]:
		size++
	case d.ind16() && indexVariableOps[op]:
		size++
	}
	return size
}

// branch formats an 8-bit relative branch, detecting a LoROM bank-wrap
// (the target would cross out of the current 32KB bank window) and an
// invalid (unreachable-opcode-boundary) target, both of which fall back to
// a raw .db emission with an explanatory comment instead of a label
// reference.
func (d *Disassembler) branch(mnemonic string) Instruction {
	val := d.pipe8()
	if val > 127 {
		val -= 256
	}
	address := (d.pos & 0xFF0000) + ((d.pos + val + 2) & 0xFFFF)

	if !d.cart.HiROM && ((d.pos&0x7FFF)+val+2)&0x8000 != 0 {
		return Instruction{
			Code:    fmt.Sprintf(".db $%02X, $%02X", d.cart.ByteAt(d.pos), byte(d.pipe8())),
			Comment: fmt.Sprintf("Invalid bank wrapping branch target (%s L%06X)", mnemonic, address),
		}
	}

	if d.validLabel(address) {
		d.setLabel(address)
		return Instruction{Code: fmt.Sprintf("%s %s", mnemonic, d.labelRef(address))}
	}
	return Instruction{
		Code:    fmt.Sprintf(".db $%02X, $%02X", d.cart.ByteAt(d.pos), byte(d.pipe8())),
		Comment: fmt.Sprintf("Invalid branch target (%s L%06X)", mnemonic, address),
	}
}

// pcRelLong formats a 16-bit relative branch (BRL, PER).
func (d *Disassembler) pcRelLong(mnemonic string) Instruction {
	val := d.pipe16()
	if val > 32767 {
		val -= 65536
	}

	if !d.cart.HiROM && ((d.pos&0x7FFF)+val+3)&0x8000 != 0 {
		return Instruction{
			Code:    fmt.Sprintf("%s $%04X", mnemonic, 0xFFFF&val),
			Comment: "Invalid branch target",
		}
	}

	address := (d.pos & 0xFF0000) + ((d.pos + val + 3) & 0xFFFF)
	if d.validLabel(address) {
		d.setLabel(address)
		return Instruction{Code: fmt.Sprintf("%s %s", mnemonic, d.labelRef(address))}
	}
	return Instruction{Code: fmt.Sprintf("%s $%04X", mnemonic, 0xFFFF&val)}
}

// jmpAbsolute formats op4C: JMP to a same-bank absolute address, computing
// the target specially for LoROM (the pipe value is a bank-local offset
// past the $8000 window) versus HiROM (a direct bank-relative address), and
// skipping the valid_label check entirely when the LoROM pipe value falls
// below $8000 (an address the LoROM window can't express as a label).
func (d *Disassembler) jmpAbsolute() Instruction {
	pipe := d.pipe16()

	var address int
	if d.cart.HiROM {
		address = (d.pos & 0xFF0000) | pipe
	} else {
		if pipe < 0x8000 {
			return Instruction{Code: fmt.Sprintf("jmp $%04X", pipe)}
		}
		address = (d.pos & 0xFF0000) | (pipe - 0x8000)
	}

	if d.validLabel(address) {
		d.setLabel(address)
		return Instruction{Code: fmt.Sprintf("jmp %s", d.labelRef(address))}
	}
	return Instruction{Code: fmt.Sprintf("jmp $%04X", pipe)}
}

// jsrAbsolute formats op20: JSR to a same-bank absolute address. Unlike
// branches and op4C, it calls setLabel unconditionally, without a
// validLabel gate.
func (d *Disassembler) jsrAbsolute() Instruction {
	address := (d.pos & 0xFF0000) | d.pipe16()
	d.setLabel(address)
	if d.noLabels {
		return Instruction{Code: "jsr" + d.operand(modeAbsolute)}
	}
	return Instruction{Code: "jsr " + d.labelRef(address)}
}

// addAlias records that offset was reached through a long jump encoding
// bank as its source bank, distinct from offset's own natural bank. render.go
// consults this to emit a .BASE-wrapped equivalence ahead of offset's label.
func (d *Disassembler) addAlias(offset int, bank byte) {
	set := d.aliases[offset]
	if set == nil {
		set = make(map[byte]bool)
		d.aliases[offset] = set
	}
	set[bank] = true
}

// aliasLabel names the synthetic label used at a long-jump call site whose
// 24-bit target's bank byte doesn't match offset's natural bank: the same
// L%06X form the rest of the package uses, but with the low 16 bits of
// offset re-paired with the mirror's bank byte instead of offset's own.
func aliasLabel(offset int, bank byte) string {
	return fmt.Sprintf("L%02X%04X", bank, offset&0xFFFF)
}

// longJump formats op22 (JSL) and op5C (JML): convert the 24-bit operand to
// a ROM offset via Cartridge.Index, which already performs the mirror
// translation these two opcodes' labels need. If the address doesn't map
// into the ROM, or doesn't land on a decoded opcode boundary, fall back to a
// literal long operand exactly as the unresolved data-mode handlers do.
//
// Otherwise, compare the operand's literal bank against offset's own
// natural bank using the mask appropriate to the mapping mode (HiROM banks
// are 0x10000 wide in ROM-offset space; LoROM banks are 0x8000 wide, so the
// operand's bank bits are halved before masking). A mismatch means this
// jump reached offset through a bank mirror: record the alias and emit a
// synthetic bank-qualified label instead of the physical one, so the
// assembled source still encodes the original mirror reference.
func (d *Disassembler) longJump(mnemonic string) Instruction {
	pipe := d.pipe24()
	offset, err := d.cart.Index(pipe)
	if err != nil || !d.validLabel(offset) {
		return Instruction{Code: mnemonic + d.operand(modeAbsoluteLong)}
	}

	d.setLabel(offset)

	var mismatch bool
	if d.cart.HiROM {
		mismatch = pipe&0xFF0000 != offset&0xFF0000
	} else {
		mismatch = (pipe>>1)&0xFF8000 != offset&0xFF8000
	}

	if !mismatch {
		return Instruction{Code: fmt.Sprintf("%s %s", mnemonic, d.labelRef(offset))}
	}

	bank := byte(pipe >> 16)
	if d.noLabels {
		return Instruction{Code: mnemonic + d.operand(modeAbsoluteLong)}
	}
	d.addAlias(offset, bank)
	return Instruction{Code: fmt.Sprintf("%s %s", mnemonic, aliasLabel(offset, bank))}
}

// rep/sep mutate the processor flags and emit a .ACCU/.INDEX preamble
// directive for each width the instruction widens/narrows.
func (d *Disassembler) rep() Instruction {
	val := byte(d.pipe8())
	d.flags &^= val
	return flagInstruction("rep", val, "16")
}

func (d *Disassembler) sep() Instruction {
	val := byte(d.pipe8())
	d.flags |= val
	return flagInstruction("sep", val, "8")
}

func flagInstruction(mnemonic string, val byte, width string) Instruction {
	var pre string
	if val&0x20 != 0 {
		pre = ".ACCU " + width
	}
	if val&0x10 != 0 {
		if pre != "" {
			pre += "\n"
		}
		pre += ".INDEX " + width
	}
	return Instruction{Code: fmt.Sprintf("%s #$%02X", mnemonic, val), Preamble: pre}
}
