package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/sargunv/snes2asm/lib/cartridge"
	"github.com/sargunv/snes2asm/lib/disasm"
)

func buildLoROM(t *testing.T) *cartridge.Cartridge {
	t.Helper()
	data := make([]byte, 0x10000)
	h := 0x7FB0
	data[h+37] = 0x20
	data[h+42] = 0x33
	vec := h + 48
	data[vec+12] = 0x00
	data[vec+13] = 0xC0 // nvec_reset = 0xC000
	data[vec+28] = 0x00
	data[vec+29] = 0x80 // evec_reset = 0x8000

	cart, err := cartridge.Load(data)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	return cart
}

func TestApplyRegistersDecoderAndLabels(t *testing.T) {
	cart := buildLoROM(t)
	d := disasm.New(cart, false)

	yamlDoc := `
decoders:
  - type: data
    label: Intro
    start: 0x1000
    end: 0x1010
labels:
  GameStart: 0x1000
memory:
  counter: 0x10
`
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	if err := os.WriteFile(path, []byte(yamlDoc), 0644); err != nil {
		t.Fatalf("writing fixture: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if err := cfg.Apply(d, cart); err != nil {
		t.Fatalf("Apply: %v", err)
	}

	if len(d.Decoders()) != 1 {
		t.Fatalf("got %d decoders, want 1", len(d.Decoders()))
	}
	if d.Decoders()[0].Label() != "Intro" {
		t.Errorf("got label %q, want Intro", d.Decoders()[0].Label())
	}
	if d.Labels()[0x1000] != "GameStart" {
		t.Errorf("got label name %q, want GameStart", d.Labels()[0x1000])
	}
	if d.Memory()[0x10] != "counter" {
		t.Errorf("got memory name %q, want counter", d.Memory()[0x10])
	}
}

func TestApplySkipsUnknownDecoderType(t *testing.T) {
	cart := buildLoROM(t)
	d := disasm.New(cart, false)

	cfg := &Config{
		Decoders: []DecoderConfig{{Type: "unknown_thing", Label: "X"}},
	}
	if err := cfg.Apply(d, cart); err != nil {
		t.Fatalf("Apply: %v", err)
	}
	if len(d.Decoders()) != 0 {
		t.Fatalf("expected unknown decoder type to be skipped, got %d decoders", len(d.Decoders()))
	}
}

func TestApplyRejectsDuplicateLabel(t *testing.T) {
	cart := buildLoROM(t)
	d := disasm.New(cart, false)

	cfg := &Config{
		Decoders: []DecoderConfig{
			{Type: "data", Label: "Dup", Start: 0x1000, End: 0x1010},
			{Type: "data", Label: "Dup", Start: 0x2000, End: 0x2010},
		},
	}
	if err := cfg.Apply(d, cart); err == nil {
		t.Fatal("expected an error for a duplicate decoder label")
	}
}

func TestWhenGuardSkipsDecoder(t *testing.T) {
	cart := buildLoROM(t)
	d := disasm.New(cart, false)

	cfg := &Config{
		Decoders: []DecoderConfig{
			{Type: "data", Label: "NeverRuns", Start: 0x1000, End: 0x1010, When: "mapmode == 99"},
		},
	}
	if err := cfg.Apply(d, cart); err != nil {
		t.Fatalf("Apply: %v", err)
	}
	if len(d.Decoders()) != 0 {
		t.Fatalf("expected when: guard to skip the decoder, got %d decoders", len(d.Decoders()))
	}
}
