package decoder

import (
	"fmt"
	"strings"

	"github.com/sargunv/snes2asm/lib/disasm"
	"github.com/sargunv/snes2asm/lib/disasmerr"
)

// ArrayDecoder renders a fixed-width element array as .db/.dw/.dl/.dd
// directives, 16 bytes (not elements) per line, matching the original
// tool's line-wrapping.
type ArrayDecoder struct {
	base
	size int
}

// NewArray creates an ArrayDecoder over [start,end) with the given
// element size in bytes (1-4). It returns an error if the range does not
// evenly divide by size.
func NewArray(label string, start, end, size int) (*ArrayDecoder, error) {
	if size < 1 || size > 4 {
		return nil, disasmerr.New(disasmerr.DecoderMisconfigured, start, "array decoder %s: invalid element size %d", label, size)
	}
	if (end-start)%size != 0 {
		return nil, disasmerr.New(disasmerr.DecoderMisconfigured, start, "array decoder %s: range does not align with element size %d", label, size)
	}
	return &ArrayDecoder{base: base{label: label, start: start, end: end}, size: size}, nil
}

func (d *ArrayDecoder) Decode(rom disasm.ROM) []disasm.Offset {
	var out []disasm.Offset
	instr := dataDirective(d.size) + " "
	form := hexFormats[d.size-1]
	showLabel := d.label != ""

	for y := d.start; y < d.end; y += 16 {
		lineEnd := y + 16
		if lineEnd > d.end {
			lineEnd = d.end
		}
		var parts []string
		for x := y; x < lineEnd; x += d.size {
			parts = append(parts, fmt.Sprintf(form, val(rom, x, d.size)))
		}
		line := instr + strings.Join(parts, ", ")
		ins := disasm.Instruction{Code: line}
		if showLabel {
			ins.Preamble = d.label + ":"
			showLabel = false
		}
		out = append(out, disasm.Offset{Pos: y, Ins: ins})
	}
	return out
}
