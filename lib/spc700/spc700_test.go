package spc700

import "testing"

func TestDisassembleSimple(t *testing.T) {
	data := []byte{0x00, 0x5D, 0xFF} // nop; mov X,A; stop
	d := New(data, 0x0200)
	lines := d.Disassemble()
	if len(lines) != 3 {
		t.Fatalf("got %d instructions, want 3", len(lines))
	}
	want := []string{"nop", "mov X,A", "stop"}
	for i, w := range want {
		if lines[i].Ins.Code != w {
			t.Errorf("instruction %d: got %q, want %q", i, lines[i].Ins.Code, w)
		}
	}
}

func TestRelativeBranch(t *testing.T) {
	// bra $FE -> offset -2, at pos 0 start_addr 0x0100: target = 0x0100+0+2-2 = 0x0100
	data := []byte{0x2F, 0xFE}
	d := New(data, 0x0100)
	lines := d.Disassemble()
	if lines[0].Ins.Code != "bra $0100" {
		t.Fatalf("got %q, want bra $0100", lines[0].Ins.Code)
	}
}

func TestBitAddressedOp(t *testing.T) {
	// or1 C,$1234.n: pipe16 encodes addr|bit<<13
	addr := 0x0123
	bit := 5
	word := addr | bit<<13
	data := []byte{0x0A, byte(word & 0xFF), byte(word >> 8)}
	d := New(data, 0)
	lines := d.Disassemble()
	want := "or1 C,$0123.5"
	if lines[0].Ins.Code != want {
		t.Fatalf("got %q, want %q", lines[0].Ins.Code, want)
	}
}

func TestIncompleteTrailingInstruction(t *testing.T) {
	data := []byte{0x05, 0x01} // "or a,$XXXX" needs 3 bytes, only 2 present
	d := New(data, 0)
	lines := d.Disassemble()
	if len(lines) != 1 {
		t.Fatalf("got %d lines, want 1", len(lines))
	}
	if lines[0].Ins.Comment == "" {
		t.Fatal("expected incomplete-instruction comment")
	}
}
