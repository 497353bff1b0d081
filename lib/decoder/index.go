package decoder

import (
	"fmt"

	"github.com/sargunv/snes2asm/lib/disasm"
	"github.com/sargunv/snes2asm/lib/disasmerr"
)

// indexParent is the subset of a Decoder an IndexDecoder needs to validate
// and label the offsets it decodes: a label to build `<parent>_<i>` names
// and a range to bounds-check against.
type indexParent interface {
	Label() string
	Start() int
	End() int
}

// IndexDecoder renders a table of offsets relative to a paired parent
// decoder (typically a Text decoder) as `<directive> parent_<i> -
// parent_0` entries, so the assembler computes each string's length from
// label arithmetic rather than a baked-in constant.
type IndexDecoder struct {
	base
	size   int
	parent indexParent
}

// NewIndex creates an IndexDecoder over [start,end) with the given entry
// size in bytes (conventionally 2). It returns an error if the range does
// not evenly divide by size.
func NewIndex(label string, start, end, size int) (*IndexDecoder, error) {
	if (end-start)%size != 0 {
		return nil, disasmerr.New(disasmerr.DecoderMisconfigured, start, "index decoder %s: range does not align with size %d", label, size)
	}
	return &IndexDecoder{base: base{label: label, start: start, end: end}, size: size}, nil
}

// SetParent attaches the Text (or other) decoder this index's offsets are
// relative to.
func (d *IndexDecoder) SetParent(p indexParent) { d.parent = p }

// Offsets returns the decoded entries' resolved ROM offsets (parent.Start
// + each entry's raw value), in entry order, for consumption by a paired
// Text decoder.
func (d *IndexDecoder) Offsets(rom disasm.ROM) []int {
	var offsets []int
	for pos := d.start; pos < d.end; pos += d.size {
		offsets = append(offsets, d.parent.Start()+val(rom, pos, d.size))
	}
	return offsets
}

func (d *IndexDecoder) Decode(rom disasm.ROM) []disasm.Offset {
	var out []disasm.Offset
	instr := dataDirective(d.size)
	index := 0
	previous := 0
	first := true
	for pos := d.start; pos < d.end; pos += d.size {
		offset := val(rom, pos, d.size)
		if !first && offset != previous {
			index++
		}
		var ins disasm.Instruction
		if offset+d.parent.Start() > d.parent.End() {
			ins = disasm.Instruction{Code: fmt.Sprintf("%s %d", instr, offset), Comment: "Invalid index"}
		} else {
			ins = disasm.Instruction{Code: fmt.Sprintf("%s %s_%d - %s_0", instr, d.parent.Label(), index, d.parent.Label())}
		}
		out = append(out, disasm.Offset{Pos: pos, Ins: ins})
		previous = offset
		first = false
	}
	return out
}
