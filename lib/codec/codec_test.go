package codec

import (
	"bytes"
	"testing"
)

func roundTrip(t *testing.T, c Codec, data []byte) {
	t.Helper()
	compressed, err := c.Compress(data)
	if err != nil {
		t.Fatalf("%s: compress: %v", c.Name(), err)
	}
	got, err := c.Decompress(compressed)
	if err != nil {
		t.Fatalf("%s: decompress: %v", c.Name(), err)
	}
	if !bytes.Equal(got, data) {
		t.Fatalf("%s: round trip mismatch\n in: %v\nout: %v", c.Name(), data, got)
	}
}

func sampleInputs() [][]byte {
	return [][]byte{
		nil,
		{0x00},
		{0x42, 0x42, 0x42, 0x42, 0x42, 0x42, 0x42, 0x42, 0x42, 0x42},
		[]byte("aaaaaaaaaaccaacccaaaa6ca7c712a6b2248dc409d34b82e58876"),
		{0x01, 0x02, 0x03, 0x04, 0x05, 0x01, 0x02, 0x03, 0x04, 0x05, 0x01, 0x02, 0x03, 0x04, 0x05},
		bytes.Repeat([]byte{0xAB, 0xCD}, 40),
	}
}

func TestCodecsRoundTrip(t *testing.T) {
	for _, c := range registry {
		c := c
		for _, in := range sampleInputs() {
			roundTrip(t, c, in)
		}
	}
}

func TestHALCompressScenario(t *testing.T) {
	in := bytes.Repeat([]byte{0x42}, 10)
	want := []byte{0x29, 0x42, 0xFF}
	got, err := HAL{}.Compress(in)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(got, want) {
		t.Fatalf("hal.compress(%v) = %v, want %v", in, got, want)
	}
}

func TestByteRLERoundTripFixture(t *testing.T) {
	in := []byte("aaaaaaaaaaccaacccaaaa6ca7c712a6b2248dc409d34b82e58876")
	compressed, err := ByteRLE{}.Compress(in)
	if err != nil {
		t.Fatal(err)
	}
	got, err := ByteRLE{}.Decompress(compressed)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(got, in) {
		t.Fatalf("byte_rle round trip mismatch: got %v want %v", got, in)
	}
}

func TestRLE1CompressFixture(t *testing.T) {
	in := bytes.Repeat([]byte{0xFF}, 255)
	want := []byte{0x80, 0x7F, 0xFF, 0x80, 0x7E, 0xFF, 0xFF, 0xFF}
	got, err := RLE1{}.Compress(in)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(got, want) {
		t.Fatalf("rle1.compress(255x0xFF) = %v, want %v", got, want)
	}
}

func TestLookup(t *testing.T) {
	if Lookup("lz3") == nil {
		t.Fatal("expected lz3 to be registered")
	}
	if Lookup("nonexistent") != nil {
		t.Fatal("expected lookup of unknown codec to return nil")
	}
}
