package decoder

import (
	"fmt"
	"strings"

	"github.com/sargunv/snes2asm/lib/disasm"
)

// TranslationMap publishes a WLA-DX .STRINGMAPTABLE: a 256-entry
// byte-to-string table, defaulting any byte not given an explicit mapping
// to its own single-character representation, written out as a `.tbl`
// side-file.
type TranslationMap struct {
	base
	table [256]string
}

// NewTranslationMap creates a TranslationMap from a sparse byte->string
// override table; bytes absent from table map to themselves.
func NewTranslationMap(label string, table map[byte]string) *TranslationMap {
	t := &TranslationMap{base: base{label: label}}
	for i := 0; i < 256; i++ {
		if s, ok := table[byte(i)]; ok {
			t.table[i] = s
		} else {
			t.table[i] = string(rune(i))
		}
	}

	var lines []string
	for i := 0; i < 256; i++ {
		lines = append(lines, fmt.Sprintf("%02x=%s", i, ansiEscape(t.table[i])))
	}
	t.addFile(label+".tbl", []byte(strings.Join(lines, "\n")))
	return t
}

func (t *TranslationMap) charAt(b byte) string { return t.table[b] }

func (t *TranslationMap) Decode(rom disasm.ROM) []disasm.Offset {
	return []disasm.Offset{{
		Pos: t.start,
		Ins: disasm.Instruction{Code: fmt.Sprintf(".STRINGMAPTABLE %s \"%s.tbl\"", t.label, t.label)},
	}}
}
