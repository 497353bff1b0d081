package disasm

import (
	"fmt"
	"sort"
	"strings"
)

// Assembly renders the full disassembly as WLA-DX-flavored source: one
// .BANK/.SECTION block per ROM bank, labels before any instruction an
// address the sweep marked, and a trailing .ENDS. Grounded on
// disassembler.py's assembly().
func (d *Disassembler) Assembly() string {
	var b strings.Builder
	bankCount := (d.cart.Size() + d.cart.BankSize() - 1) / d.cart.BankSize()

	for bank := 0; bank < bankCount; bank++ {
		if bank > 0 {
			b.WriteString(".ENDS\n\n")
		}
		d.writeBankHeader(&b, bank)
		d.writeBankLines(&b, bank)
	}

	b.WriteString(".ENDS\n")
	return b.String()
}

// BankCode renders a single bank as a standalone WLA-DX include file: its
// own .BANK/.SECTION header through a trailing .ENDS. Used by the project
// emitter to split the disassembly into one file per bank.
func (d *Disassembler) BankCode(bank int) string {
	var b strings.Builder
	d.writeBankHeader(&b, bank)
	d.writeBankLines(&b, bank)
	b.WriteString(".ENDS\n")
	return b.String()
}

// BankCount returns the number of ROM banks the cartridge spans.
func (d *Disassembler) BankCount() int {
	return (d.cart.Size() + d.cart.BankSize() - 1) / d.cart.BankSize()
}

func (d *Disassembler) writeBankHeader(b *strings.Builder, bank int) {
	fmt.Fprintf(b, ".BANK %d SLOT 0\n.ORG $0000\n\n.SECTION \"Bank%d\" FORCE\n\n", bank, bank)
}

// labelText returns the label line for addr, preferring a name assigned via
// LabelName over the default L%06X form.
func (d *Disassembler) labelText(addr int) string {
	if name, ok := d.names[addr]; ok {
		return name + ":\n"
	}
	return fmt.Sprintf("L%06X:\n", addr)
}

// writeAliases emits each bank alias recorded against addr (by a long jump
// that reached it through a mirror), in ascending bank order for stable
// output: .BASE switches the assembler's label-to-bank accounting so the
// synthetic name binds to the same byte the physical label below names,
// then .BASE $00 restores it before that physical label is written.
func (d *Disassembler) writeAliases(b *strings.Builder, addr int) {
	banks := d.aliases[addr]
	if len(banks) == 0 {
		return
	}
	sorted := make([]int, 0, len(banks))
	for bank := range banks {
		sorted = append(sorted, int(bank))
	}
	sort.Ints(sorted)
	for _, bank := range sorted {
		fmt.Fprintf(b, ".BASE $%02X\n%s:\n.BASE $00\n", bank, aliasLabel(addr, byte(bank)))
	}
}

func (d *Disassembler) writeBankLines(b *strings.Builder, bank int) {
	bankSize := d.cart.BankSize()
	bankStart := bank * bankSize
	bankEnd := bankStart + bankSize

	for _, addr := range d.sortedPositions() {
		if addr < bankStart {
			continue
		}
		if addr >= bankEnd {
			break
		}
		d.writeAliases(b, addr)
		if d.labels[addr] {
			b.WriteString(d.labelText(addr))
		}
		b.WriteString(renderLine(d.code[addr]))
		b.WriteByte('\n')
	}
}

func renderLine(ins Instruction) string {
	var b strings.Builder
	if ins.Preamble != "" {
		b.WriteString(ins.Preamble)
		b.WriteByte('\n')
	}
	b.WriteString(ins.Code)
	if ins.Comment != "" {
		b.WriteString(" ; ")
		b.WriteString(ins.Comment)
	}
	return b.String()
}
