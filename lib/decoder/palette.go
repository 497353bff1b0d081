package decoder

import (
	"fmt"
	"strings"

	"github.com/sargunv/snes2asm/lib/disasm"
	"github.com/sargunv/snes2asm/lib/disasmerr"
)

// PaletteDecoder publishes a run of 2-byte BGR555 colors as a raw `.pal`
// side-file plus a human-readable `.rgb` listing of 24-bit hex colors, and
// decodes the same colors for GraphicDecoder to render bitmaps against.
type PaletteDecoder struct {
	base
	colors []uint32
}

// NewPalette creates a PaletteDecoder over [start,end), which must be an
// even number of bytes (one SNES color per 2-byte entry).
func NewPalette(label string, start, end int) (*PaletteDecoder, error) {
	if (end-start)&0x1 != 0 {
		return nil, disasmerr.New(disasmerr.DecoderMisconfigured, start,
			"palette %s: start and end do not align with 2-byte color entries", label)
	}
	return &PaletteDecoder{base: base{label: label, start: start, end: end}}, nil
}

// ColorCount returns the number of SNES colors this palette spans.
func (p *PaletteDecoder) ColorCount() int { return (p.end - p.start) / 2 }

func (p *PaletteDecoder) filename() string { return p.label + ".pal" }

// Colors returns the decoded 24-bit RGB colors, decoding from rom on first
// use if Decode has not yet run (mirrors the original tool's lazy
// palette-decode-on-demand from GraphicDecoder).
func (p *PaletteDecoder) Colors(rom disasm.ROM) []uint32 {
	if len(p.colors) == 0 {
		p.Decode(rom)
	}
	return p.colors
}

func (p *PaletteDecoder) Decode(rom disasm.ROM) []disasm.Offset {
	raw := rom.Read(p.start, p.end)
	p.addFile(p.filename(), raw)

	p.colors = p.colors[:0]
	var lines []string
	for i := p.start; i < p.end; i += 2 {
		lo, hi := rom.ByteAt(i), rom.ByteAt(i+1)
		bgr555 := int(lo) | int(hi)<<8
		rgb := uint32((bgr555&0x7c00)>>7 | (bgr555&0x3e0)<<6 | (bgr555&0x1f)<<19)
		p.colors = append(p.colors, rgb)
		lines = append(lines, fmt.Sprintf("#%06X", rgb))
	}
	p.addFile(p.label+".rgb", []byte(strings.Join(lines, "\n")))

	return []disasm.Offset{{
		Pos: p.start,
		Ins: disasm.Instruction{Code: fmt.Sprintf(".INCBIN \"%s\"", p.filename()), Preamble: p.label + ":"},
	}}
}
