// Package spc700 implements an independent linear-sweep disassembler for
// SPC700 audio processor machine code, invoked only by the sound decoder's
// spc700 variant when it renders an embedded audio program as assembly
// text rather than a plain binary blob.
package spc700

import "fmt"

// Instruction is one disassembled SPC700 line: the assembly text plus an
// optional trailing comment (typically the raw opcode bytes in hex).
type Instruction struct {
	Code    string
	Comment string
}

// InstructionSizes gives the byte length (1-3) of every opcode 0x00-0xFF.
var InstructionSizes = [256]int{
	2, 1, 2, 2, 2, 2, 2, 2, 2, 3, 3, 2, 3, 1, 3, 3, // 0x
	2, 1, 2, 2, 3, 2, 2, 2, 3, 2, 2, 2, 2, 1, 2, 2, // 1x
	1, 1, 2, 2, 2, 2, 2, 2, 2, 3, 3, 2, 3, 1, 3, 3, // 2x
	2, 1, 2, 2, 3, 2, 2, 2, 2, 2, 2, 2, 2, 1, 2, 2, // 3x
	1, 1, 2, 2, 2, 2, 2, 2, 2, 3, 3, 2, 3, 1, 3, 3, // 4x
	2, 1, 2, 2, 3, 2, 2, 2, 2, 2, 2, 2, 2, 1, 2, 2, // 5x
	1, 1, 2, 2, 2, 2, 2, 2, 2, 3, 3, 2, 3, 1, 3, 3, // 6x
	2, 1, 2, 2, 3, 2, 2, 2, 2, 2, 2, 2, 2, 1, 2, 2, // 7x
	2, 1, 2, 2, 2, 2, 2, 2, 2, 2, 3, 2, 3, 2, 2, 1, // 8x
	2, 1, 2, 2, 2, 2, 2, 2, 2, 2, 3, 2, 3, 2, 2, 1, // 9x
	2, 1, 2, 2, 2, 2, 2, 2, 2, 2, 3, 2, 3, 1, 1, 1, // Ax
	2, 1, 2, 2, 2, 2, 2, 2, 2, 2, 3, 2, 3, 1, 1, 1, // Bx
	2, 1, 2, 2, 2, 2, 2, 2, 2, 2, 3, 2, 3, 2, 2, 1, // Cx
	2, 1, 2, 2, 3, 2, 2, 2, 2, 2, 3, 2, 3, 1, 2, 1, // Dx
	2, 1, 2, 2, 2, 2, 2, 2, 2, 2, 3, 2, 3, 1, 2, 1, // Ex
	2, 1, 2, 2, 3, 2, 2, 2, 2, 2, 3, 2, 3, 1, 2, 1, // Fx
}

// Disassembler sweeps a buffer of SPC700 code linearly from offset 0,
// decoding one instruction per step using InstructionSizes to know how
// many bytes each opcode consumes. It never branches or follows jumps: the
// caller supplies the exact range to decode.
type Disassembler struct {
	data      []byte
	startAddr int
	pos       int
}

// New creates a disassembler over data. startAddr is the SPC700 address
// the first byte of data corresponds to, used to compute relative branch
// targets.
func New(data []byte, startAddr int) *Disassembler {
	return &Disassembler{data: data, startAddr: startAddr}
}

// Disassemble walks the entire buffer, returning one (offset, Instruction)
// pair per decoded opcode. A truncated instruction at the end of the
// buffer is emitted as a .db directive listing its remaining raw bytes.
func (d *Disassembler) Disassemble() []struct {
	Offset int
	Ins    Instruction
} {
	var result []struct {
		Offset int
		Ins    Instruction
	}
	d.pos = 0
	for d.pos < len(d.data) {
		offset := d.pos
		op := d.data[d.pos]
		size := InstructionSizes[op]

		if d.pos+size > len(d.data) {
			remaining := len(d.data) - d.pos
			var code, comment string
			for i := 0; i < remaining; i++ {
				b := d.data[d.pos+i]
				if i > 0 {
					code += ", "
					comment += " "
				}
				code += fmt.Sprintf("$%02X", b)
				comment += fmt.Sprintf("%02X", b)
			}
			result = append(result, struct {
				Offset int
				Ins    Instruction
			}{offset, Instruction{Code: ".db " + code, Comment: "Incomplete instruction: " + comment}})
			break
		}

		ins := d.decode(op)
		switch size {
		case 1:
			ins.Comment = fmt.Sprintf("%02X", op)
		case 2:
			ins.Comment = fmt.Sprintf("%02X %02X", op, d.data[d.pos+1])
		case 3:
			ins.Comment = fmt.Sprintf("%02X %02X %02X", op, d.data[d.pos+1], d.data[d.pos+2])
		}

		result = append(result, struct {
			Offset int
			Ins    Instruction
		}{offset, ins})
		d.pos += size
	}
	return result
}

func (d *Disassembler) ins(code string) Instruction { return Instruction{Code: code} }

func (d *Disassembler) pipe8() byte { return d.data[d.pos+1] }

func (d *Disassembler) pipe16() int {
	return int(d.data[d.pos+1]) | int(d.data[d.pos+2])<<8
}

func (d *Disassembler) pipe8Signed() int {
	val := int(d.pipe8())
	if val > 127 {
		val -= 256
	}
	return val
}

func (d *Disassembler) addrDirect() string     { return fmt.Sprintf("$%02X", d.pipe8()) }
func (d *Disassembler) addrDirectX() string    { return fmt.Sprintf("$%02X+X", d.pipe8()) }
func (d *Disassembler) addrDirectY() string    { return fmt.Sprintf("$%02X+Y", d.pipe8()) }
func (d *Disassembler) addrAbsolute() string   { return fmt.Sprintf("$%04X", d.pipe16()) }
func (d *Disassembler) addrAbsoluteX() string  { return fmt.Sprintf("$%04X+X", d.pipe16()) }
func (d *Disassembler) addrAbsoluteY() string  { return fmt.Sprintf("$%04X+Y", d.pipe16()) }
func (d *Disassembler) addrIndirectX() string  { return fmt.Sprintf("($%02X+X)", d.pipe8()) }
func (d *Disassembler) addrIndirectY() string  { return fmt.Sprintf("($%02X)+Y", d.pipe8()) }
func (d *Disassembler) addrImm8() string       { return fmt.Sprintf("#$%02X", d.pipe8()) }

// addrRelative resolves a branch's signed 8-bit offset against the
// instruction immediately following it (pos+2: opcode byte plus operand).
func (d *Disassembler) addrRelative() string {
	offset := d.pipe8Signed()
	target := (d.startAddr + d.pos + 2 + offset) & 0xFFFF
	return fmt.Sprintf("$%04X", target)
}

// bitAddr splits a 16-bit operand into a 13-bit direct/absolute address
// and a 3-bit bit index packed into its top 3 bits, as used by the
// bit-addressed 1-bit boolean opcodes (or1/and1/mov1/not1/tset1-family).
func (d *Disassembler) bitAddr() (addr, bit int) {
	v := d.pipe16()
	return v & 0x1FFF, (v >> 13) & 0x7
}

func (d *Disassembler) branch3(mnemonic string, bit int) Instruction {
	dp := d.pipe8()
	rel := d.pipe8Signed()
	target := (d.startAddr + d.pos + 3 + rel) & 0xFFFF
	return d.ins(fmt.Sprintf("%s $%02X.%d,$%04X", mnemonic, dp, bit, target))
}

func (d *Disassembler) dp2() (byte, byte) { return d.data[d.pos+1], d.data[d.pos+2] }

// decode dispatches a single opcode to its handler. Implemented as a
// switch rather than 256 separately named methods plus a literal function
// array: Go compiles a dense integer switch to the same jump-table shape
// while keeping each opcode's case readable inline.
func (d *Disassembler) decode(op byte) Instruction {
	switch op {
	case 0x00:
		return d.ins("nop")
	case 0x01, 0x11, 0x21, 0x31, 0x41, 0x51, 0x61, 0x71, 0x81, 0x91, 0xA1, 0xB1, 0xC1, 0xD1, 0xE1, 0xF1:
		return d.ins(fmt.Sprintf("tcall %d", int(op>>4)))
	case 0x02, 0x22, 0x42, 0x62, 0x82, 0xA2, 0xC2, 0xE2:
		return d.ins(fmt.Sprintf("set1 %s.%d", d.addrDirect(), op>>5))
	case 0x12, 0x32, 0x52, 0x72, 0x92, 0xB2, 0xD2, 0xF2:
		return d.ins(fmt.Sprintf("clr1 %s.%d", d.addrDirect(), op>>5))
	case 0x03, 0x23, 0x43, 0x63, 0x83, 0xA3, 0xC3, 0xE3:
		return d.branch3("bbs", int(op>>5))
	case 0x13, 0x33, 0x53, 0x73, 0x93, 0xB3, 0xD3, 0xF3:
		return d.branch3("bbc", int(op>>5))
	case 0x04:
		return d.ins("or a," + d.addrDirect())
	case 0x05:
		return d.ins("or a," + d.addrAbsolute())
	case 0x06:
		return d.ins("or a,(X)")
	case 0x07:
		return d.ins("or a," + d.addrIndirectX())
	case 0x08:
		return d.ins("or a," + d.addrImm8())
	case 0x09:
		a, b := d.dp2()
		return d.ins(fmt.Sprintf("or $%02X,$%02X", a, b))
	case 0x0A:
		addr, bit := d.bitAddr()
		return d.ins(fmt.Sprintf("or1 C,$%04X.%d", addr, bit))
	case 0x0B:
		return d.ins("asl " + d.addrDirect())
	case 0x0C:
		return d.ins("asl " + d.addrAbsolute())
	case 0x0D:
		return d.ins("push PSW")
	case 0x0E:
		return d.ins("tset1 " + d.addrAbsolute())
	case 0x0F:
		return d.ins("brk")
	case 0x10:
		return d.ins("bpl " + d.addrRelative())
	case 0x14:
		return d.ins("or a," + d.addrDirectX())
	case 0x15:
		return d.ins("or a," + d.addrAbsoluteX())
	case 0x16:
		return d.ins("or a," + d.addrAbsoluteY())
	case 0x17:
		return d.ins("or a," + d.addrIndirectY())
	case 0x18:
		dp, imm := d.dp2()
		return d.ins(fmt.Sprintf("or $%02X,#$%02X", dp, imm))
	case 0x19:
		return d.ins("or (X),(Y)")
	case 0x1A:
		return d.ins("decw " + d.addrDirect())
	case 0x1B:
		return d.ins("asl " + d.addrDirectX())
	case 0x1C:
		return d.ins("asl A")
	case 0x1D:
		return d.ins("dec X")
	case 0x1E:
		return d.ins("cmp X," + d.addrAbsolute())
	case 0x1F:
		return d.ins(fmt.Sprintf("jmp [%s]", d.addrAbsoluteX()))
	case 0x20:
		return d.ins("clrp")
	case 0x24:
		return d.ins("and a," + d.addrDirect())
	case 0x25:
		return d.ins("and a," + d.addrAbsolute())
	case 0x26:
		return d.ins("and a,(X)")
	case 0x27:
		return d.ins("and a," + d.addrIndirectX())
	case 0x28:
		return d.ins("and a," + d.addrImm8())
	case 0x29:
		a, b := d.dp2()
		return d.ins(fmt.Sprintf("and $%02X,$%02X", a, b))
	case 0x2A:
		addr, bit := d.bitAddr()
		return d.ins(fmt.Sprintf("or1 C,!$%04X.%d", addr, bit))
	case 0x2B:
		return d.ins("rol " + d.addrDirect())
	case 0x2C:
		return d.ins("rol " + d.addrAbsolute())
	case 0x2D:
		return d.ins("push A")
	case 0x2E:
		return d.ins(fmt.Sprintf("cbne %s,%s", d.addrDirect(), d.addrRelative()))
	case 0x2F:
		return d.ins("bra " + d.addrRelative())
	case 0x30:
		return d.ins("bmi " + d.addrRelative())
	case 0x34:
		return d.ins("and a," + d.addrDirectX())
	case 0x35:
		return d.ins("and a," + d.addrAbsoluteX())
	case 0x36:
		return d.ins("and a," + d.addrAbsoluteY())
	case 0x37:
		return d.ins("and a," + d.addrIndirectY())
	case 0x38:
		dp, imm := d.dp2()
		return d.ins(fmt.Sprintf("and $%02X,#$%02X", dp, imm))
	case 0x39:
		return d.ins("and (X),(Y)")
	case 0x3A:
		return d.ins("incw " + d.addrDirect())
	case 0x3B:
		return d.ins("rol " + d.addrDirectX())
	case 0x3C:
		return d.ins("rol A")
	case 0x3D:
		return d.ins("inc X")
	case 0x3E:
		return d.ins("cmp X," + d.addrDirect())
	case 0x3F:
		return d.ins("call " + d.addrAbsolute())
	case 0x40:
		return d.ins("setp")
	case 0x44:
		return d.ins("eor a," + d.addrDirect())
	case 0x45:
		return d.ins("eor a," + d.addrAbsolute())
	case 0x46:
		return d.ins("eor a,(X)")
	case 0x47:
		return d.ins("eor a," + d.addrIndirectX())
	case 0x48:
		return d.ins("eor a," + d.addrImm8())
	case 0x49:
		a, b := d.dp2()
		return d.ins(fmt.Sprintf("eor $%02X,$%02X", a, b))
	case 0x4A:
		addr, bit := d.bitAddr()
		return d.ins(fmt.Sprintf("and1 C,$%04X.%d", addr, bit))
	case 0x4B:
		return d.ins("lsr " + d.addrDirect())
	case 0x4C:
		return d.ins("lsr " + d.addrAbsolute())
	case 0x4D:
		return d.ins("push X")
	case 0x4E:
		return d.ins("tclr1 " + d.addrAbsolute())
	case 0x4F:
		return d.ins(fmt.Sprintf("pcall $%02X", d.pipe8()))
	case 0x50:
		return d.ins("bvc " + d.addrRelative())
	case 0x54:
		return d.ins("eor a," + d.addrDirectX())
	case 0x55:
		return d.ins("eor a," + d.addrAbsoluteX())
	case 0x56:
		return d.ins("eor a," + d.addrAbsoluteY())
	case 0x57:
		return d.ins("eor a," + d.addrIndirectY())
	case 0x58:
		dp, imm := d.dp2()
		return d.ins(fmt.Sprintf("eor $%02X,#$%02X", dp, imm))
	case 0x59:
		return d.ins("eor (X),(Y)")
	case 0x5A:
		return d.ins("cmpw YA," + d.addrDirect())
	case 0x5B:
		return d.ins("lsr " + d.addrDirectX())
	case 0x5C:
		return d.ins("lsr A")
	case 0x5D:
		return d.ins("mov X,A")
	case 0x5E:
		return d.ins("cmp Y," + d.addrAbsolute())
	case 0x5F:
		return d.ins("jmp " + d.addrAbsolute())
	case 0x60:
		return d.ins("clrc")
	case 0x64:
		return d.ins("cmp a," + d.addrDirect())
	case 0x65:
		return d.ins("cmp a," + d.addrAbsolute())
	case 0x66:
		return d.ins("cmp a,(X)")
	case 0x67:
		return d.ins("cmp a," + d.addrIndirectX())
	case 0x68:
		return d.ins("cmp a," + d.addrImm8())
	case 0x69:
		a, b := d.dp2()
		return d.ins(fmt.Sprintf("cmp $%02X,$%02X", a, b))
	case 0x6A:
		addr, bit := d.bitAddr()
		return d.ins(fmt.Sprintf("and1 C,!$%04X.%d", addr, bit))
	case 0x6B:
		return d.ins("ror " + d.addrDirect())
	case 0x6C:
		return d.ins("ror " + d.addrAbsolute())
	case 0x6D:
		return d.ins("push Y")
	case 0x6E:
		dp := d.data[d.pos+1]
		rel := d.pipe8Signed()
		target := (d.startAddr + d.pos + 3 + rel) & 0xFFFF
		return d.ins(fmt.Sprintf("dbnz $%02X,$%04X", dp, target))
	case 0x6F:
		return d.ins("ret")
	case 0x70:
		return d.ins("bvs " + d.addrRelative())
	case 0x74:
		return d.ins("cmp a," + d.addrDirectX())
	case 0x75:
		return d.ins("cmp a," + d.addrAbsoluteX())
	case 0x76:
		return d.ins("cmp a," + d.addrAbsoluteY())
	case 0x77:
		return d.ins("cmp a," + d.addrIndirectY())
	case 0x78:
		dp, imm := d.dp2()
		return d.ins(fmt.Sprintf("cmp $%02X,#$%02X", dp, imm))
	case 0x79:
		return d.ins("cmp (X),(Y)")
	case 0x7A:
		return d.ins("addw YA," + d.addrDirect())
	case 0x7B:
		return d.ins("ror " + d.addrDirectX())
	case 0x7C:
		return d.ins("ror A")
	case 0x7D:
		return d.ins("mov A,X")
	case 0x7E:
		return d.ins("cmp Y," + d.addrDirect())
	case 0x7F:
		return d.ins("reti")
	case 0x80:
		return d.ins("setc")
	case 0x84:
		return d.ins("adc a," + d.addrDirect())
	case 0x85:
		return d.ins("adc a," + d.addrAbsolute())
	case 0x86:
		return d.ins("adc a,(X)")
	case 0x87:
		return d.ins("adc a," + d.addrIndirectX())
	case 0x88:
		return d.ins("adc a," + d.addrImm8())
	case 0x89:
		a, b := d.dp2()
		return d.ins(fmt.Sprintf("adc $%02X,$%02X", a, b))
	case 0x8A:
		addr, bit := d.bitAddr()
		return d.ins(fmt.Sprintf("eor1 C,$%04X.%d", addr, bit))
	case 0x8B:
		return d.ins("dec " + d.addrDirect())
	case 0x8C:
		return d.ins("dec " + d.addrAbsolute())
	case 0x8D:
		return d.ins("mov Y," + d.addrImm8())
	case 0x8E:
		return d.ins("pop PSW")
	case 0x8F:
		dp, imm := d.dp2()
		return d.ins(fmt.Sprintf("mov $%02X,#$%02X", dp, imm))
	case 0x90:
		return d.ins("bcc " + d.addrRelative())
	case 0x94:
		return d.ins("adc a," + d.addrDirectX())
	case 0x95:
		return d.ins("adc a," + d.addrAbsoluteX())
	case 0x96:
		return d.ins("adc a," + d.addrAbsoluteY())
	case 0x97:
		return d.ins("adc a," + d.addrIndirectY())
	case 0x98:
		dp, imm := d.dp2()
		return d.ins(fmt.Sprintf("adc $%02X,#$%02X", dp, imm))
	case 0x99:
		return d.ins("adc (X),(Y)")
	case 0x9A:
		return d.ins("subw YA," + d.addrDirect())
	case 0x9B:
		return d.ins("dec " + d.addrDirectX())
	case 0x9C:
		return d.ins("dec A")
	case 0x9D:
		return d.ins("mov X,SP")
	case 0x9E:
		return d.ins("div YA,X")
	case 0x9F:
		return d.ins("xcn A")
	case 0xA0:
		return d.ins("ei")
	case 0xA4:
		return d.ins("sbc a," + d.addrDirect())
	case 0xA5:
		return d.ins("sbc a," + d.addrAbsolute())
	case 0xA6:
		return d.ins("sbc a,(X)")
	case 0xA7:
		return d.ins("sbc a," + d.addrIndirectX())
	case 0xA8:
		return d.ins("sbc a," + d.addrImm8())
	case 0xA9:
		a, b := d.dp2()
		return d.ins(fmt.Sprintf("sbc $%02X,$%02X", a, b))
	case 0xAA:
		addr, bit := d.bitAddr()
		return d.ins(fmt.Sprintf("mov1 C,$%04X.%d", addr, bit))
	case 0xAB:
		return d.ins("inc " + d.addrDirect())
	case 0xAC:
		return d.ins("inc " + d.addrAbsolute())
	case 0xAD:
		return d.ins("cmp Y," + d.addrImm8())
	case 0xAE:
		return d.ins("pop A")
	case 0xAF:
		return d.ins("mov (X)+,A")
	case 0xB0:
		return d.ins("bcs " + d.addrRelative())
	case 0xB4:
		return d.ins("sbc a," + d.addrDirectX())
	case 0xB5:
		return d.ins("sbc a," + d.addrAbsoluteX())
	case 0xB6:
		return d.ins("sbc a," + d.addrAbsoluteY())
	case 0xB7:
		return d.ins("sbc a," + d.addrIndirectY())
	case 0xB8:
		dp, imm := d.dp2()
		return d.ins(fmt.Sprintf("sbc $%02X,#$%02X", dp, imm))
	case 0xB9:
		return d.ins("sbc (X),(Y)")
	case 0xBA:
		return d.ins("movw YA," + d.addrDirect())
	case 0xBB:
		return d.ins("inc " + d.addrDirectX())
	case 0xBC:
		return d.ins("inc A")
	case 0xBD:
		return d.ins("mov SP,X")
	case 0xBE:
		return d.ins("das A")
	case 0xBF:
		return d.ins("mov A,(X)+")
	case 0xC0:
		return d.ins("di")
	case 0xC4:
		return d.ins("mov " + d.addrDirect() + ",A")
	case 0xC5:
		return d.ins("mov " + d.addrAbsolute() + ",A")
	case 0xC6:
		return d.ins("mov (X),A")
	case 0xC7:
		return d.ins("mov " + d.addrIndirectX() + ",A")
	case 0xC8:
		return d.ins("cmp X," + d.addrImm8())
	case 0xC9:
		return d.ins("mov " + d.addrAbsolute() + ",X")
	case 0xCA:
		addr, bit := d.bitAddr()
		return d.ins(fmt.Sprintf("mov1 $%04X.%d,C", addr, bit))
	case 0xCB:
		return d.ins("mov " + d.addrDirect() + ",Y")
	case 0xCC:
		return d.ins("mov " + d.addrAbsolute() + ",Y")
	case 0xCD:
		return d.ins("mov X," + d.addrImm8())
	case 0xCE:
		return d.ins("pop X")
	case 0xCF:
		return d.ins("mul YA")
	case 0xD0:
		return d.ins("bne " + d.addrRelative())
	case 0xD4:
		return d.ins("mov " + d.addrDirectX() + ",A")
	case 0xD5:
		return d.ins("mov " + d.addrAbsoluteX() + ",A")
	case 0xD6:
		return d.ins("mov " + d.addrAbsoluteY() + ",A")
	case 0xD7:
		return d.ins("mov " + d.addrIndirectY() + ",A")
	case 0xD8:
		return d.ins("mov " + d.addrDirect() + ",X")
	case 0xD9:
		return d.ins("mov " + d.addrDirectX() + ",Y")
	case 0xDA:
		return d.ins("movw " + d.addrDirect() + ",YA")
	case 0xDB:
		return d.ins("mov " + d.addrDirectX() + ",Y")
	case 0xDC:
		return d.ins("dec Y")
	case 0xDD:
		return d.ins("mov A,Y")
	case 0xDE:
		dp := d.addrDirectX()
		rel := d.pipe8Signed()
		target := (d.startAddr + d.pos + 3 + rel) & 0xFFFF
		return d.ins(fmt.Sprintf("cbne %s,$%04X", dp, target))
	case 0xDF:
		return d.ins("daa A")
	case 0xE0:
		return d.ins("clrv")
	case 0xE4:
		return d.ins("mov a," + d.addrDirect())
	case 0xE5:
		return d.ins("mov a," + d.addrAbsolute())
	case 0xE6:
		return d.ins("mov a,(X)")
	case 0xE7:
		return d.ins("mov a," + d.addrIndirectX())
	case 0xE8:
		return d.ins("mov a," + d.addrImm8())
	case 0xE9:
		return d.ins("mov X," + d.addrAbsolute())
	case 0xEA:
		addr, bit := d.bitAddr()
		return d.ins(fmt.Sprintf("not1 $%04X.%d", addr, bit))
	case 0xEB:
		return d.ins("mov Y," + d.addrDirect())
	case 0xEC:
		return d.ins("mov Y," + d.addrAbsolute())
	case 0xED:
		return d.ins("notc")
	case 0xEE:
		return d.ins("pop Y")
	case 0xEF:
		return d.ins("sleep")
	case 0xF0:
		return d.ins("beq " + d.addrRelative())
	case 0xF4:
		return d.ins("mov a," + d.addrDirectX())
	case 0xF5:
		return d.ins("mov a," + d.addrAbsoluteX())
	case 0xF6:
		return d.ins("mov a," + d.addrAbsoluteY())
	case 0xF7:
		return d.ins("mov a," + d.addrIndirectY())
	case 0xF8:
		return d.ins("mov X," + d.addrDirect())
	case 0xF9:
		return d.ins("mov X," + d.addrDirectY())
	case 0xFA:
		a, b := d.dp2()
		return d.ins(fmt.Sprintf("mov $%02X,$%02X", a, b))
	case 0xFB:
		return d.ins("mov Y," + d.addrDirectX())
	case 0xFC:
		return d.ins("inc Y")
	case 0xFD:
		return d.ins("mov Y,A")
	case 0xFE:
		rel := d.pipe8Signed()
		target := (d.startAddr + d.pos + 2 + rel) & 0xFFFF
		return d.ins(fmt.Sprintf("dbnz Y,$%04X", target))
	case 0xFF:
		return d.ins("stop")
	default:
		return Instruction{Code: fmt.Sprintf(".db $%02X", op), Comment: "Unknown opcode"}
	}
}
