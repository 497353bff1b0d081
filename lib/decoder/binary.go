package decoder

import (
	"fmt"

	"github.com/sargunv/snes2asm/lib/disasm"
)

// BinaryDecoder writes the whole claimed range to a `.bin` side-file and
// emits a single INCBIN line, for opaque blobs that need no further
// structure (bank padding, raw co-processor firmware, etc).
type BinaryDecoder struct{ base }

// NewBinary creates a BinaryDecoder over [start,end).
func NewBinary(label string, start, end int) *BinaryDecoder {
	return &BinaryDecoder{base{label: label, start: start, end: end}}
}

// NewBinaryCompressed additionally decompresses the range under the named
// codec before writing the side-file; the codec's decompressed length
// is published, not end-start.
func NewBinaryCompressed(label string, start, end int, compress string) *BinaryDecoder {
	return &BinaryDecoder{base{label: label, start: start, end: end, compress: compress}}
}

func (d *BinaryDecoder) Decode(rom disasm.ROM) []disasm.Offset {
	data, err := d.rawBytes(rom)
	if err != nil {
		return []disasm.Offset{{Pos: d.start, Ins: disasm.Instruction{
			Code: fmt.Sprintf("; decode error: %v", err), Preamble: d.label + ":",
		}}}
	}
	name := d.label + ".bin"
	d.addFile(name, data)
	return []disasm.Offset{{
		Pos: d.start,
		Ins: disasm.Instruction{Code: fmt.Sprintf(".INCBIN \"%s\"", name), Preamble: d.label + ":"},
	}}
}
