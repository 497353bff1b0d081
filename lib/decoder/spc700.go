package decoder

import (
	"fmt"

	"github.com/sargunv/snes2asm/lib/disasm"
	"github.com/sargunv/snes2asm/lib/spc700"
)

// SPC700Decoder publishes an embedded SPC700 program as a disassembled
// `.spc700.asm` side-file (for inspection) and the raw bytes as a `.bin`
// side-file included back into the main stream, since the SPC700 sweep
// never participates in the 65C816 label/branch graph.
type SPC700Decoder struct {
	base
	addr int
}

// NewSPC700 creates a SPC700Decoder over [start,end); addr is the SPC700
// address the first byte of the range loads to, used to resolve relative
// branches within the embedded program.
func NewSPC700(label string, start, end, addr int) *SPC700Decoder {
	return &SPC700Decoder{base: base{label: label, start: start, end: end}, addr: addr}
}

func (d *SPC700Decoder) binFilename() string { return d.label + ".bin" }

func (d *SPC700Decoder) Decode(rom disasm.ROM) []disasm.Offset {
	raw := rom.Read(d.start, d.end)
	d.addFile(d.binFilename(), raw)

	dis := spc700.New(raw, d.addr)
	lines := dis.Disassemble()

	var listing []byte
	for _, l := range lines {
		if l.Ins.Comment != "" {
			listing = append(listing, fmt.Sprintf("%04X: %-24s ; %s\n", d.addr+l.Offset, l.Ins.Code, l.Ins.Comment)...)
		} else {
			listing = append(listing, fmt.Sprintf("%04X: %s\n", d.addr+l.Offset, l.Ins.Code)...)
		}
	}
	d.addFile(d.label+".spc700.asm", listing)

	return []disasm.Offset{{
		Pos: d.start,
		Ins: disasm.Instruction{Code: fmt.Sprintf(".INCBIN \"%s\"", d.binFilename()), Preamble: d.label + ":"},
	}}
}
