package cartridge

import "testing"

func buildLoROM(t *testing.T) []byte {
	t.Helper()
	data := make([]byte, 0x10000)
	h := loromHeaderOffset
	data[h+37] = 0x20 // MapMode: LoROM, slow
	data[h+42] = 0x33 // License: extended
	vec := h + 48
	data[vec+12] = 0x00
	data[vec+13] = 0xC0 // nvec_reset = 0xC000
	data[vec+28] = 0x00
	data[vec+29] = 0x80 // evec_reset = 0x8000, the real hardware reset vector
	return data
}

func TestLoadDetectsLoROM(t *testing.T) {
	cart, err := Load(buildLoROM(t))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cart.HiROM {
		t.Fatal("expected LoROM detection")
	}
	if cart.Header.Vectors[VecNativeRESET] != 0xC000 {
		t.Fatalf("got native reset vector %#x, want 0xC000", cart.Header.Vectors[VecNativeRESET])
	}
	if cart.Header.Vectors[VecEmuRESET] != 0x8000 {
		t.Fatalf("got emulation reset vector %#x, want 0x8000", cart.Header.Vectors[VecEmuRESET])
	}
}

func TestLoadRejectsUndersizedImage(t *testing.T) {
	if _, err := Load(make([]byte, 1024)); err == nil {
		t.Fatal("expected an error for an undersized image")
	}
}

func TestLoadWithOptionsForcesHiROM(t *testing.T) {
	cart, err := LoadWithOptions(buildLoROM(t), Options{ForceHiROM: true})
	if err != nil {
		t.Fatalf("LoadWithOptions: %v", err)
	}
	if !cart.HiROM {
		t.Fatal("expected ForceHiROM to override detection")
	}
}

func TestLoadWithOptionsForcesFastROM(t *testing.T) {
	cart, err := LoadWithOptions(buildLoROM(t), Options{ForceFast: true})
	if err != nil {
		t.Fatalf("LoadWithOptions: %v", err)
	}
	if !cart.FastROM {
		t.Fatal("expected ForceFast to override the header's speed bit")
	}
}

func TestAddressAndIndexRoundTrip(t *testing.T) {
	cart, err := Load(buildLoROM(t))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	addr := cart.Address(0x1000)
	index, err := cart.Index(addr)
	if err != nil {
		t.Fatalf("Index: %v", err)
	}
	if index != 0x1000 {
		t.Errorf("got index %#x, want 0x1000", index)
	}
}
