package bitmap

import "testing"

func TestRoundTripIndexedBitmap(t *testing.T) {
	palette := make([]uint32, 16)
	for i := range palette {
		palette[i] = uint32(i) * 0x111111
	}
	b, err := New(8, 8, 4, palette)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	for y := 0; y < 8; y++ {
		for x := 0; x < 8; x++ {
			if err := b.SetPixel(x, y, (x+y)%16); err != nil {
				t.Fatalf("SetPixel(%d,%d): %v", x, y, err)
			}
		}
	}

	out, err := ReadIndexed(b.Output())
	if err != nil {
		t.Fatalf("ReadIndexed: %v", err)
	}
	if out.Width() != 8 || out.Height() != 8 {
		t.Fatalf("got dims %dx%d, want 8x8", out.Width(), out.Height())
	}

	for y := 0; y < 8; y++ {
		for x := 0; x < 8; x++ {
			got, err := out.GetPixel(x, y)
			if err != nil {
				t.Fatalf("GetPixel(%d,%d): %v", x, y, err)
			}
			want := (x + y) % 16
			if got != want {
				t.Errorf("pixel (%d,%d) = %d, want %d", x, y, got, want)
			}
		}
	}
}
