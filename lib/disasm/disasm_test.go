package disasm

import (
	"strings"
	"testing"

	"github.com/sargunv/snes2asm/lib/cartridge"
)

// buildLoROM returns a minimal 64KB LoROM image with a valid header (so
// Cartridge.Load selects LoROM mapping unambiguously) and the given bytes
// placed starting at ROM offset 0. Callers write opcode bytes into the
// returned slice via the offsets they choose, staying clear of the header
// at 0x7FB0-0x7FFF.
func buildLoROM(t *testing.T) []byte {
	t.Helper()
	data := make([]byte, 0x10000)

	h := 0x7FB0
	data[h+37] = 0x20 // MapMode: LoROM, slow
	data[h+42] = 0x33 // License: extended

	// Vector table starts at h+48; nvec_reset sits at byte offset 12. The
	// scoring heuristic separately inspects evec_reset, the real hardware
	// reset vector, at byte offset 28; set it >= $8000 too so the LoROM
	// candidate doesn't lose the mapping-mode heuristic to a spurious
	// penalty.
	vec := h + 48
	data[vec+12] = 0x00
	data[vec+13] = 0xC0 // nvec_reset = 0xC000
	data[vec+28] = 0x00
	data[vec+29] = 0x80 // evec_reset = 0x8000

	cart, err := cartridge.Load(data)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cart.HiROM {
		t.Fatal("fixture must score as LoROM")
	}
	return data
}

func newTestDisassembler(t *testing.T) (*Disassembler, *cartridge.Cartridge) {
	t.Helper()
	data := buildLoROM(t)
	cart, err := cartridge.Load(data)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	return New(cart, false), cart
}

func TestMarkVectorsLabelsResetTarget(t *testing.T) {
	d, cart := newTestDisassembler(t)
	d.markVectors()

	offset, err := cart.Index(0xC000)
	if err != nil {
		t.Fatalf("Index: %v", err)
	}
	if !d.labels[offset] {
		t.Fatalf("expected label at offset %#x from reset vector", offset)
	}
}

func TestDecodeSimpleSequence(t *testing.T) {
	d, cart := newTestDisassembler(t)
	data := cart.Read(0, cart.Size())
	d.flags = 0x30 // M and X both set: 8-bit accumulator and index registers

	// At offset 0x1000: NOP, LDA #$12 (8-bit acc), BRK.
	data[0x1000] = 0xEA // nop
	data[0x1001] = 0xA9 // lda #imm
	data[0x1002] = 0x12
	data[0x1003] = 0x00 // brk
	data[0x1004] = 0x00 // brk operand (signature byte)

	d.decode(0x1000, 0x1005)

	if d.code[0x1000].Code != "nop" {
		t.Errorf("got %q, want nop", d.code[0x1000].Code)
	}
	want := "lda #$12.b"
	if d.code[0x1001].Code != want {
		t.Errorf("got %q, want %q", d.code[0x1001].Code, want)
	}
	if d.code[0x1003].Code != "brk $00.b" {
		t.Errorf("got %q, want %q", d.code[0x1003].Code, "brk $00.b")
	}
}

func TestREPWidensSubsequentImmediate(t *testing.T) {
	d, cart := newTestDisassembler(t)
	data := cart.Read(0, cart.Size())
	d.flags = 0x30 // start 8-bit

	// REP #$20 (widen accumulator to 16-bit), then LDA #$1234.
	data[0x1000] = 0xC2
	data[0x1001] = 0x20
	data[0x1002] = 0xA9
	data[0x1003] = 0x34
	data[0x1004] = 0x12

	d.decode(0x1000, 0x1005)

	rep := d.code[0x1000]
	if rep.Code != "rep #$20" {
		t.Errorf("got %q, want rep #$20", rep.Code)
	}
	if rep.Preamble != ".ACCU 16" {
		t.Errorf("got preamble %q, want .ACCU 16", rep.Preamble)
	}
	lda := d.code[0x1002]
	if lda.Code != "lda #$1234.w" {
		t.Errorf("got %q, want lda #$1234.w", lda.Code)
	}
}

func TestAbsLookupSubstitutesRegisterName(t *testing.T) {
	d, cart := newTestDisassembler(t)
	data := cart.Read(0, cart.Size())

	// LDA $2100 (INIDSP) absolute.
	data[0x1000] = 0xAD
	data[0x1001] = 0x00
	data[0x1002] = 0x21

	d.decode(0x1000, 0x1003)

	ins := d.code[0x1000]
	if ins.Code != "lda INIDSP.w" {
		t.Errorf("got %q, want lda INIDSP.w", ins.Code)
	}
	if ins.Comment != "Screen Display" {
		t.Errorf("got comment %q, want Screen Display", ins.Comment)
	}
}

func TestBranchDetectsBankWrap(t *testing.T) {
	d, cart := newTestDisassembler(t)
	data := cart.Read(0, cart.Size())

	// BPL near the top of bank0's 0x7FFF boundary, with a large forward
	// offset that would wrap the bank.
	pos := 0x7FF0
	data[pos] = 0x10   // bpl
	data[pos+1] = 0x7F // +127: (pos&0x7FFF)+127+2 crosses 0x8000

	d.decode(pos, pos+2)

	ins := d.code[pos]
	if !strings.HasPrefix(ins.Code, ".db") {
		t.Errorf("got %q, want a .db fallback for bank-wrapping branch", ins.Code)
	}
	if !strings.Contains(ins.Comment, "bank wrapping") {
		t.Errorf("got comment %q, want a bank-wrapping explanation", ins.Comment)
	}
}

func TestLongJumpRecordsMirrorBankAlias(t *testing.T) {
	d, cart := newTestDisassembler(t)
	data := cart.Read(0, cart.Size())

	data[0x1000] = 0xEA // nop, the long jump's canonical target
	d.decode(0x1000, 0x1001)

	// jsl $809000: bank $80 maps, via the LoROM mirror formula, to the same
	// ROM offset ($1000) as bank $00 - but the literal bank byte differs
	// from that offset's own natural bank, so this must record an alias
	// rather than reference the L001000 label directly.
	data[0x2000] = 0x22
	data[0x2001] = 0x00
	data[0x2002] = 0x90
	data[0x2003] = 0x80
	d.decode(0x2000, 0x2004)

	ins := d.code[0x2000]
	if ins.Code != "jsr L801000" {
		t.Fatalf("got %q, want jsr L801000", ins.Code)
	}
	if !d.aliases[0x1000][0x80] {
		t.Fatalf("expected alias bank $80 recorded against offset 0x1000, got %v", d.aliases[0x1000])
	}
	if !d.labels[0x1000] {
		t.Fatal("expected the physical target to still be labeled")
	}

	out := d.Assembly()
	if !strings.Contains(out, ".BASE $80\nL801000:\n.BASE $00\nL001000:\nnop") {
		t.Fatalf("expected alias equivalence ahead of the physical label, got:\n%s", out)
	}
	if !strings.Contains(out, "jsr L801000") {
		t.Fatalf("expected the call site to reference the alias label, got:\n%s", out)
	}
}

func TestLongJumpFallsBackToLiteralOnUnmappedTarget(t *testing.T) {
	d, cart := newTestDisassembler(t)
	data := cart.Read(0, cart.Size())

	// jml $000000: bit 15 clear, invalid for LoROM, so Index fails and the
	// operand must render as a literal long address instead of a label.
	data[0x3000] = 0x5C
	data[0x3001] = 0x00
	data[0x3002] = 0x00
	data[0x3003] = 0x00
	d.decode(0x3000, 0x3004)

	ins := d.code[0x3000]
	if ins.Code != "jmp $000000.l" {
		t.Fatalf("got %q, want jmp $000000.l", ins.Code)
	}
}

func TestAssemblyRendersBankHeadersAndLabels(t *testing.T) {
	d, cart := newTestDisassembler(t)
	data := cart.Read(0, cart.Size())
	data[0x1000] = 0xEA // nop

	d.labels[0x1000] = true
	d.code[0x1000] = Instruction{Code: "nop"}
	// Fill every other bank-start address so fillDataBanks has nothing left
	// to add beyond what's already present, keeping the assertion narrow.
	for bank := 0; bank < cart.BankCount(); bank++ {
		addr := bank * cart.BankSize()
		if _, ok := d.code[addr]; !ok {
			d.code[addr] = Instruction{Code: ".db $00"}
		}
	}

	out := d.Assembly()
	if !strings.Contains(out, ".BANK 0 SLOT 0") {
		t.Error("expected bank 0 header")
	}
	if !strings.Contains(out, "L001000:\nnop") {
		t.Errorf("expected labeled nop line, got:\n%s", out)
	}
	if !strings.HasSuffix(out, ".ENDS\n") {
		t.Error("expected trailing .ENDS")
	}
}
