package decoder

import (
	"fmt"
	"strings"

	"github.com/sargunv/snes2asm/lib/disasm"
	"github.com/sargunv/snes2asm/lib/disasmerr"
)

var escapeChars = map[rune]string{
	'\t': "\\t", '\n': "\\n", '\r': "\\r",
	'\x0b': "\\x0b", '\x0c': "\\x0c", '"': "\\\"", '\x00': "\\0",
}

// ansiEscape renders control and quote characters in subject as their
// WLA-DX string-literal escape sequences.
func ansiEscape(subject string) string {
	var b strings.Builder
	for _, c := range subject {
		if esc, ok := escapeChars[c]; ok {
			b.WriteString(esc)
		} else {
			b.WriteRune(c)
		}
	}
	return b.String()
}

// quoteEscape backslash-escapes literal backslashes, applied after
// ansiEscape so a translated char that happens to map to "\" isn't
// mistaken for the start of an escape sequence.
func quoteEscape(subject string) string {
	return strings.ReplaceAll(subject, "\\", "\\\\")
}

// TextDecoder renders a range as one or more WLA-DX string literals, in one
// of three shapes: a single run over [start,end), a fixed set of
// pre-sized chunks (pack), or chunks split at offsets read from a paired
// IndexDecoder. At most one of pack or index may be set.
type TextDecoder struct {
	base
	pack        []int
	index       *IndexDecoder
	translation *TranslationMap
}

// NewText creates a plain single-run TextDecoder over [start,end).
func NewText(label string, start, end int, translation *TranslationMap) *TextDecoder {
	return &TextDecoder{base: base{label: label, start: start, end: end}, translation: translation}
}

// NewTextPacked creates a TextDecoder split into len(pack) fixed-size
// chunks starting at start. If end is given (nonzero) it must match
// start+sum(pack).
func NewTextPacked(label string, start, end int, pack []int, translation *TranslationMap) (*TextDecoder, error) {
	packSize := 0
	for _, p := range pack {
		packSize += p
	}
	if end == 0 {
		end = start + packSize
	} else if start+packSize != end {
		return nil, disasmerr.New(disasmerr.DecoderMisconfigured, start, "text decoder %s: pack lengths do not match end point", label)
	}
	return &TextDecoder{base: base{label: label, start: start, end: end}, pack: pack, translation: translation}, nil
}

// NewTextIndexed creates a TextDecoder split at the offsets published by
// idx, which is wired to this decoder as its parent.
func NewTextIndexed(label string, start, end int, idx *IndexDecoder, translation *TranslationMap) *TextDecoder {
	d := &TextDecoder{base: base{label: label, start: start, end: end}, index: idx, translation: translation}
	idx.SetParent(d)
	return d
}

func (d *TextDecoder) Decode(rom disasm.ROM) []disasm.Offset {
	switch {
	case d.pack != nil:
		return d.decodePacked(rom)
	case d.index != nil:
		return d.decodeIndexed(rom)
	default:
		return d.textSegments(d.start, rom.Read(d.start, d.end), d.label+":")
	}
}

func (d *TextDecoder) decodePacked(rom disasm.ROM) []disasm.Offset {
	var out []disasm.Offset
	pos := d.start
	for i, size := range d.pack {
		label := fmt.Sprintf("%s_%d:", d.label, i)
		end := pos + size
		out = append(out, d.textSegments(pos, rom.Read(pos, end), label)...)
		pos = end
	}
	return out
}

func (d *TextDecoder) decodeIndexed(rom disasm.ROM) []disasm.Offset {
	var out []disasm.Offset
	pos := d.start
	index := 0
	for indexPos := d.index.start; indexPos < d.index.end; indexPos += d.index.size {
		if indexPos == d.index.start {
			continue
		}
		offset := d.start + val(rom, indexPos, d.index.size)
		if offset >= d.end {
			continue
		}
		// A repeated offset is an empty entry: it gets no chunk and does not
		// advance the label number, matching IndexDecoder's numbering.
		if offset == pos {
			continue
		}
		out = append(out, d.textSegments(pos, rom.Read(pos, offset), fmt.Sprintf("%s_%d:", d.label, index))...)
		pos = offset
		index++
	}
	if pos < d.end {
		out = append(out, d.textSegments(pos, rom.Read(pos, d.end), fmt.Sprintf("%s_%d:", d.label, index))...)
	}
	return out
}

// stringmapSegmentLimit bounds how many translated characters go into a
// single .STRINGMAP line; some WLA-DX builds overrun an internal buffer on
// longer string-literal operands, so long runs are split across several
// consecutive lines instead of emitting the violation.
const stringmapSegmentLimit = 64

func (d *TextDecoder) text(pos int, input []byte, label string) disasm.Offset {
	if d.translation != nil {
		var b strings.Builder
		for _, c := range input {
			b.WriteString(d.translation.charAt(c))
		}
		output := ansiEscape(b.String())
		return disasm.Offset{Pos: pos, Ins: disasm.Instruction{
			Code:     fmt.Sprintf(".STRINGMAP %s \"%s\"", d.translation.Label(), quoteEscape(output)),
			Preamble: label,
		}}
	}
	output := ansiEscape(string(input))
	return disasm.Offset{Pos: pos, Ins: disasm.Instruction{
		Code:     fmt.Sprintf(".db \"%s\"", quoteEscape(output)),
		Preamble: label,
	}}
}

// textSegments is d.text, generalized to split a translated run across
// multiple .STRINGMAP lines once its rendered character count would cross
// stringmapSegmentLimit. Plain (untranslated) runs render as one .db line,
// same as text, since the buffer bug this sidesteps is specific to
// .STRINGMAP operands.
func (d *TextDecoder) textSegments(pos int, input []byte, label string) []disasm.Offset {
	if d.translation == nil {
		return []disasm.Offset{d.text(pos, input, label)}
	}

	var out []disasm.Offset
	segStart := pos
	var seg strings.Builder
	segChars := 0
	segLabel := label

	flush := func(end int) {
		if seg.Len() == 0 && segStart == end {
			return
		}
		output := ansiEscape(seg.String())
		out = append(out, disasm.Offset{Pos: segStart, Ins: disasm.Instruction{
			Code:     fmt.Sprintf(".STRINGMAP %s \"%s\"", d.translation.Label(), quoteEscape(output)),
			Preamble: segLabel,
		}})
		seg.Reset()
		segChars = 0
		segLabel = ""
	}

	for i, c := range input {
		translated := d.translation.charAt(c)
		if segChars+len([]rune(translated)) > stringmapSegmentLimit && segChars > 0 {
			flush(pos + i)
			segStart = pos + i
		}
		seg.WriteString(translated)
		segChars += len([]rune(translated))
	}
	flush(pos + len(input))

	if len(out) == 0 {
		// Empty run: still publish an (empty) segment so the label exists.
		out = append(out, disasm.Offset{Pos: pos, Ins: disasm.Instruction{
			Code:     fmt.Sprintf(".STRINGMAP %s \"\"", d.translation.Label()),
			Preamble: label,
		}})
	}
	return out
}
