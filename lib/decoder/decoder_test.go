package decoder

import (
	"strings"
	"testing"
)

// fakeROM is a flat in-memory ROM.ByteAt/Read implementation for tests.
type fakeROM []byte

func (r fakeROM) ByteAt(offset int) byte     { return r[offset] }
func (r fakeROM) Read(start, end int) []byte { return r[start:end] }

func TestArrayDecoderRejectsMisalignedSize(t *testing.T) {
	if _, err := NewArray("tbl", 0, 5, 2); err == nil {
		t.Fatal("expected error for misaligned range")
	}
}

func TestRawDecoderLineWrap(t *testing.T) {
	rom := fakeROM(make([]byte, 32))
	d := NewRaw("Data", 0, 20)
	out := d.Decode(rom)
	if len(out) != 2 {
		t.Fatalf("expected 2 lines for 20 bytes at 16/line, got %d", len(out))
	}
	if out[0].Ins.Preamble != "Data:" {
		t.Fatalf("expected label on first line, got %q", out[0].Ins.Preamble)
	}
	if out[1].Ins.Preamble != "" {
		t.Fatalf("expected no label on continuation line, got %q", out[1].Ins.Preamble)
	}
}

func TestIndexDecoderSkipsLabelOnRepeatedOffset(t *testing.T) {
	rom := fakeROM{
		0x00, 0x00,
		0x05, 0x00,
		0x05, 0x00, // repeated offset: must not consume a label number
		0x0A, 0x00,
	}
	parent := &RawDecoder{base: base{label: "Str", start: 0, end: 20}}
	idx, err := NewIndex("StrIdx", 0, 8, 2)
	if err != nil {
		t.Fatalf("NewIndex: %v", err)
	}
	idx.SetParent(parent)

	out := idx.Decode(rom)
	if len(out) != 4 {
		t.Fatalf("expected 4 entries, got %d", len(out))
	}
	want := []string{
		".dw Str_0 - Str_0",
		".dw Str_1 - Str_0",
		".dw Str_1 - Str_0", // same index as previous, per the preserved quirk
		".dw Str_2 - Str_0",
	}
	for i, w := range want {
		if out[i].Ins.Code != w {
			t.Errorf("entry %d: got %q, want %q", i, out[i].Ins.Code, w)
		}
	}
}

func TestIndexDecoderInvalidIndex(t *testing.T) {
	rom := fakeROM{0xFF, 0xFF}
	parent := &RawDecoder{base: base{label: "Str", start: 0, end: 4}}
	idx, _ := NewIndex("StrIdx", 0, 2, 2)
	idx.SetParent(parent)

	out := idx.Decode(rom)
	if out[0].Ins.Comment != "Invalid index" {
		t.Fatalf("expected Invalid index comment, got %q", out[0].Ins.Comment)
	}
}

func TestTextDecoderPlainString(t *testing.T) {
	rom := fakeROM("HELLO")
	d := NewText("Greeting", 0, 5, nil)
	out := d.Decode(rom)
	if len(out) != 1 {
		t.Fatalf("expected 1 line, got %d", len(out))
	}
	want := `.db "HELLO"`
	if out[0].Ins.Code != want {
		t.Fatalf("got %q, want %q", out[0].Ins.Code, want)
	}
}

func TestTextDecoderEscapesControlAndQuoteChars(t *testing.T) {
	rom := fakeROM("A\"B\nC")
	d := NewText("Msg", 0, 5, nil)
	out := d.Decode(rom)
	if !strings.Contains(out[0].Ins.Code, `\"`) || !strings.Contains(out[0].Ins.Code, `\n`) {
		t.Fatalf("expected escaped quote and newline, got %q", out[0].Ins.Code)
	}
}

func TestTextDecoderPacked(t *testing.T) {
	rom := fakeROM("HIBYE!")
	d, err := NewTextPacked("Msgs", 0, 0, []int{2, 4}, nil)
	if err != nil {
		t.Fatalf("NewTextPacked: %v", err)
	}
	out := d.Decode(rom)
	if len(out) != 2 {
		t.Fatalf("expected 2 chunks, got %d", len(out))
	}
	if out[0].Ins.Preamble != "Msgs_0:" || out[1].Ins.Preamble != "Msgs_1:" {
		t.Fatalf("unexpected chunk labels: %q, %q", out[0].Ins.Preamble, out[1].Ins.Preamble)
	}
	if out[0].Ins.Code != `.db "HI"` || out[1].Ins.Code != `.db "BYE!"` {
		t.Fatalf("unexpected chunk text: %q, %q", out[0].Ins.Code, out[1].Ins.Code)
	}
}

func TestTextDecoderPackedMismatchedEndErrors(t *testing.T) {
	if _, err := NewTextPacked("Msgs", 0, 10, []int{2, 4}, nil); err == nil {
		t.Fatal("expected error when pack lengths don't match end")
	}
}

func TestTranslationMapDefaultsUnmappedBytes(t *testing.T) {
	tm := NewTranslationMap("Chars", map[byte]string{0x41: "a"})
	if got := tm.charAt(0x41); got != "a" {
		t.Fatalf("mapped byte: got %q, want %q", got, "a")
	}
	if got := tm.charAt(0x42); got != "B" {
		t.Fatalf("unmapped byte should default to itself: got %q", got)
	}
	if tm.Files()["Chars.tbl"] == nil {
		t.Fatal("expected Chars.tbl side file")
	}
}

func TestTextDecoderWithTranslation(t *testing.T) {
	tm := NewTranslationMap("Chars", map[byte]string{'A': "<A>"})
	rom := fakeROM("AB")
	d := NewText("Msg", 0, 2, tm)
	out := d.Decode(rom)
	want := `.STRINGMAP Chars "<A>B"`
	if out[0].Ins.Code != want {
		t.Fatalf("got %q, want %q", out[0].Ins.Code, want)
	}
}

func TestTextDecoderSplitsLongTranslatedRunAt64Chars(t *testing.T) {
	run := strings.Repeat("A", 70)
	rom := fakeROM(run)
	tm := NewTranslationMap("Chars", nil)
	d := NewText("Msg", 0, 70, tm)
	out := d.Decode(rom)
	if len(out) != 2 {
		t.Fatalf("expected 2 segments, got %d", len(out))
	}
	if got := len(strings.Repeat("A", 64)); got != 64 {
		t.Fatalf("sanity check failed")
	}
	want0 := `.STRINGMAP Chars "` + strings.Repeat("A", 64) + `"`
	want1 := `.STRINGMAP Chars "` + strings.Repeat("A", 6) + `"`
	if out[0].Ins.Code != want0 {
		t.Fatalf("first segment: got %q, want %q", out[0].Ins.Code, want0)
	}
	if out[1].Ins.Code != want1 {
		t.Fatalf("second segment: got %q, want %q", out[1].Ins.Code, want1)
	}
	if out[0].Ins.Preamble != "Msg:" {
		t.Fatalf("expected label on first segment, got %q", out[0].Ins.Preamble)
	}
	if out[1].Ins.Preamble != "" {
		t.Fatalf("expected no label on continuation segment, got %q", out[1].Ins.Preamble)
	}
	if out[1].Pos != 64 {
		t.Fatalf("expected continuation segment positioned at byte 64, got %d", out[1].Pos)
	}
}

func TestPaletteDecoderConvertsBGR555(t *testing.T) {
	// 0x7FFF: all 15 color bits set. The source's conversion is a plain
	// bit-shift expansion (no bit replication), so each 5-bit channel
	// maxes out at 0xF8, not 0xFF.
	rom := fakeROM{0xFF, 0x7F}
	p, err := NewPalette("Pal", 0, 2)
	if err != nil {
		t.Fatalf("NewPalette: %v", err)
	}
	out := p.Decode(rom)
	if out[0].Ins.Code != `.INCBIN "Pal.pal"` {
		t.Fatalf("unexpected instruction: %q", out[0].Ins.Code)
	}
	if p.Files()["Pal.pal"] == nil || p.Files()["Pal.rgb"] == nil {
		t.Fatal("expected both .pal and .rgb side files")
	}
	if p.colors[0] != 0xF8F8F8 {
		t.Fatalf("got %06X, want %06X", p.colors[0], 0xF8F8F8)
	}
}

func TestPaletteDecoderRejectsOddRange(t *testing.T) {
	if _, err := NewPalette("Pal", 0, 3); err == nil {
		t.Fatal("expected error for odd-length palette range")
	}
}
