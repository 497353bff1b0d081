package disasm

import (
	"fmt"
	"sort"

	"github.com/sargunv/snes2asm/lib/cartridge"
	"github.com/sargunv/snes2asm/lib/rangetree"
)

// Disassembler performs the linear 65C816 sweep over a cartridge image,
// dispatching to data-region Decoders where registered and falling back to
// raw .db emission at bank boundaries, unhandled opcodes, or decoder
// overrun. Grounded on disassembler.py's Disassembler class.
type Disassembler struct {
	cart       *cartridge.Cartridge
	pos        int
	flags      byte
	labels     map[int]bool
	names      map[int]string
	memory     map[int]string
	codeBanks  []int
	code       map[int]Instruction
	decoders   *rangetree.Tree
	hexComment bool
	noLabels   bool
	aliases    map[int]map[byte]bool
}

// New creates a Disassembler over cart. hexComment, when true, appends a raw
// hex-byte comment to every decoded instruction line.
func New(cart *cartridge.Cartridge, hexComment bool) *Disassembler {
	return &Disassembler{
		cart:       cart,
		labels:     make(map[int]bool),
		names:      make(map[int]string),
		memory:     make(map[int]string),
		code:       make(map[int]Instruction),
		decoders:   rangetree.New(),
		hexComment: hexComment,
		aliases:    make(map[int]map[byte]bool),
	}
}

// LabelName assigns a fixed name to the label at index, overriding the
// default L%06X form in rendered output. Configurator's "labels:" section
// is the only caller; the original tool's Configurator.apply calls this as
// disasm.label_name but the method was never implemented on the Python
// Disassembler class it shipped alongside, so this completes the feature
// the config schema already described.
func (d *Disassembler) LabelName(index int, name string) {
	d.labels[index] = true
	d.names[index] = name
}

// SetMemory records a named zero-page/register variable for the project
// emitter's .define block. Same upstream gap as LabelName: Configurator
// calls disasm.set_memory but no such method existed in the source this
// was ported from.
func (d *Disassembler) SetMemory(index int, name string) {
	d.memory[index] = name
}

// Labels returns every address that was given an explicit name via
// LabelName (address -> name), for a caller that wants to persist them
// (the disk cache) independent of the full code map.
func (d *Disassembler) Labels() map[int]string {
	return d.names
}

// Memory returns the configured memory-variable map (address -> name).
func (d *Disassembler) Memory() map[int]string {
	return d.memory
}

// SetNoLabels disables symbolic L%06X label generation (the --nl CLI
// flag): branch and jump targets render as bare hex addresses instead.
func (d *Disassembler) SetNoLabels(v bool) {
	d.noLabels = v
}

// SetCodeBanks restricts Run to sweeping only the given banks, equivalent
// to calling RunBanks directly but settable ahead of time from config.
func (d *Disassembler) SetCodeBanks(banks []int) {
	d.codeBanks = banks
}

// Decoders returns every registered Decoder, in ascending start order, so a
// caller (the project emitter) can flush each one's published side-files.
func (d *Disassembler) Decoders() []Decoder {
	items := d.decoders.Items()
	out := make([]Decoder, 0, len(items))
	for _, item := range items {
		out = append(out, item.Value.(Decoder))
	}
	return out
}

// AddDecoder registers dec to claim [dec.Start(), dec.End()) as a data
// region instead of 65C816 code.
func (d *Disassembler) AddDecoder(dec Decoder) error {
	if err := d.decoders.Add(dec.Start(), dec.End(), dec); err != nil {
		return err
	}
	return nil
}

// runDecoders invokes every registered decoder and folds its rendered lines
// into the code map, in ascending start order.
func (d *Disassembler) runDecoders(rom ROM) {
	for _, item := range d.decoders.Items() {
		dec := item.Value.(Decoder)
		for _, off := range dec.Decode(rom) {
			d.code[off.Pos] = off.Ins
		}
	}
}

// markVectors marks every interrupt/reset vector address (translated from
// its bank-0 16-bit pointer to a ROM offset) as a code label. This uses
// Cartridge.Index for the translation rather than the fixed "subtract
// $8000" arithmetic of the ported tool, since Index already generalizes
// that computation correctly for both LoROM and HiROM; the >= $8000 gate is
// preserved unchanged.
func (d *Disassembler) markVectors() {
	for _, v := range d.cart.Header.Vectors {
		addr := int(v)
		if addr < 0x8000 {
			continue
		}
		offset, err := d.cart.Index(addr)
		if err != nil {
			continue
		}
		d.labels[offset] = true
	}
}

// Run executes the full pipeline: mark vectors, run registered decoders,
// sweep every bank for 65C816 code, then fill any bank the sweep never
// reached with a raw hex dump.
func (d *Disassembler) Run(rom ROM) {
	if d.codeBanks != nil {
		d.RunBanks(rom, d.codeBanks)
		return
	}
	d.markVectors()
	d.runDecoders(rom)
	d.autoRun()
	d.fillDataBanks()
}

// RunBanks is the --banks equivalent: decode only the named banks (plus
// registered decoders and vectors), skipping the full-image sweep and the
// data-bank fill.
func (d *Disassembler) RunBanks(rom ROM, banks []int) {
	d.markVectors()
	d.runDecoders(rom)
	for _, b := range banks {
		if b < d.cart.BankCount() {
			d.decodeBank(b)
		}
	}
}

func (d *Disassembler) autoRun() {
	d.decode(0, d.cart.Size())
}

// RunWithProgress is Run's equivalent for a caller (the CLI) that wants a
// per-bank callback to drive a progress display. progress is invoked once
// per bank swept, after that bank's decoding completes.
func (d *Disassembler) RunWithProgress(rom ROM, progress func(done, total int)) {
	d.markVectors()
	d.runDecoders(rom)

	banks := d.codeBanks
	if banks == nil {
		for b := 0; b < d.cart.BankCount(); b++ {
			banks = append(banks, b)
		}
	}

	total := len(banks)
	for i, b := range banks {
		if b < d.cart.BankCount() {
			d.decodeBank(b)
		}
		if progress != nil {
			progress(i+1, total)
		}
	}

	if d.codeBanks == nil {
		d.fillDataBanks()
	}
}

func (d *Disassembler) decodeBank(bank int) {
	start := bank * d.cart.BankSize()
	d.decode(start, start+d.cart.BankSize())
}

// decode sweeps [start,end), dispatching each opcode in turn. A decoder
// whose range intersects the opcode's window preempts decoding: any bytes
// already consumed into the overrun are flushed as a .db fallback, and the
// sweep resumes at the decoder's end. An opcode that would cross the
// current bank's 16-bit address boundary is similarly skipped byte-by-byte
// with an explanatory comment.
func (d *Disassembler) decode(start, end int) {
	d.pos = start
	for d.pos < end {
		op := d.cart.ByteAt(d.pos)
		opSize := d.opSize(op)

		if v := d.decoders.Intersects(d.pos, d.pos+opSize); v != nil {
			dec := v.(Decoder)
			if d.pos+opSize > dec.Start() {
				d.code[d.pos] = Instruction{
					Code:    ".db " + hexList(d.cart.Read(d.pos, dec.Start())),
					Comment: "Opcode overrunning decoder",
				}
			}
			d.pos = dec.End()
			continue
		}

		if (d.cart.Address(d.pos)&0xFFFF)+opSize > 0xFFFF {
			d.code[d.pos] = Instruction{
				Code:    fmt.Sprintf(".db $%02X", op),
				Comment: fmt.Sprintf("Opcode %02X overrunning bank boundary at %06X. Skipping.", op, d.pos),
			}
			d.pos++
			continue
		}

		ins := d.decodeOp(op)
		if d.hexComment && ins.Comment == "" {
			ins.Comment = hexComment(d.cart.Read(d.pos, d.pos+opSize))
		}
		d.code[d.pos] = ins
		d.pos += opSize
	}
}

func hexList(b []byte) string {
	s := ""
	for i, x := range b {
		if i > 0 {
			s += ", "
		}
		s += fmt.Sprintf("$%02X", x)
	}
	return s
}

func hexComment(b []byte) string {
	s := ""
	for i, x := range b {
		if i > 0 {
			s += " "
		}
		s += fmt.Sprintf("%02X", x)
	}
	return s
}

// decodeOp dispatches a single opcode to its addressing-mode formatter.
func (d *Disassembler) decodeOp(op byte) Instruction {
	info := opcodes[op]

	switch info.mode {
	case modeImplied:
		return Instruction{Code: info.mnemonic}
	case modeAccumulator:
		return Instruction{Code: info.mnemonic + " A"}
	case modeWDM:
		return Instruction{
			Code:    fmt.Sprintf(".db $42, $%02X", d.pipe8()),
			Comment: fmt.Sprintf("opcode wdm $%02X", d.pipe8()),
		}
	case modeBlockMove:
		return Instruction{Code: info.mnemonic + d.blockMove()}
	case modeBranch:
		return d.branch(info.mnemonic)
	case modeBranchLong:
		return d.pcRelLong(info.mnemonic)
	case modeJMPAbsolute:
		return d.jmpAbsolute()
	case modeJSRAbsolute:
		return d.jsrAbsolute()
	case modeJumpAbsoluteLong:
		return d.longJump(info.mnemonic)
	case modeAbsoluteLookup:
		code, comment := d.absLookup(info.mnemonic)
		return Instruction{Code: code, Comment: comment}
	case modeREP:
		return d.rep()
	case modeSEP:
		return d.sep()
	default:
		return Instruction{Code: info.mnemonic + d.operand(info.mode)}
	}
}

// fillDataBanks renders every bank the sweep never reached (no instruction
// recorded at its first address) as a plain 16-bytes-per-line hex dump.
func (d *Disassembler) fillDataBanks() {
	for bank := 0; bank < d.cart.BankCount(); bank++ {
		addr := bank * d.cart.BankSize()
		if _, ok := d.code[addr]; !ok {
			d.makeDataBank(bank)
		}
	}
}

func (d *Disassembler) makeDataBank(bank int) {
	start := bank * d.cart.BankSize()
	end := start + d.cart.BankSize()
	for y := start; y < end; y += 16 {
		lineEnd := y + 16
		if lineEnd > end {
			lineEnd = end
		}
		d.code[y] = Instruction{Code: ".db " + hexList(d.cart.Read(y, lineEnd))}
	}
}

// sortedPositions returns every recorded code position in ascending order.
func (d *Disassembler) sortedPositions() []int {
	positions := make([]int, 0, len(d.code))
	for pos := range d.code {
		positions = append(positions, pos)
	}
	sort.Ints(positions)
	return positions
}
