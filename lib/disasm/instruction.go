// Package disasm implements the 65C816 linear-sweep disassembler: the
// opcode-table-driven instruction decoder, label/vector bookkeeping, and
// the per-bank assembly text renderer. It also defines the shared
// Instruction record and Decoder interface used by the data-region decoder
// registry (package decoder), so that decoders can be constructed and
// registered without this package importing them back.
package disasm

// Instruction is one line of rendered assembly: an optional label preamble
// printed on its own line before Code, the code/data line itself, and an
// optional trailing comment.
type Instruction struct {
	Code     string
	Preamble string
	Comment  string
}

// ROM is the byte-addressable source a Decoder reads from. *cartridge.Cartridge
// satisfies this interface; decoders never need the rest of its API.
type ROM interface {
	ByteAt(offset int) byte
	Read(start, end int) []byte
}

// Offset pairs a ROM file offset with the Instruction rendered for it.
type Offset struct {
	Pos int
	Ins Instruction
}

// Decoder is a region handler that claims a half-open ROM range [Start,End)
// and renders it as data (or, for the spc700 variant, as a side-file plus a
// single INCBIN line) instead of as 65C816 instructions. Implementations
// live in package decoder; this interface lets the range tree and
// disassembler hold them without importing that package.
type Decoder interface {
	Label() string
	Start() int
	End() int
	// Decode renders rom[Start:End) and returns one Offset per emitted
	// line, in ascending Pos order. It may also populate side-files,
	// retrievable via Files.
	Decode(rom ROM) []Offset
	// Files returns side-file contents produced by the most recent
	// Decode call, keyed by file name.
	Files() map[string][]byte
}
