package project

import (
	"os"
	"path/filepath"
	"strings"
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

func TestEmitWritesBankFilesAndMain(t *testing.T) {
	cart := buildLoROM(t)
	d := disasm.New(cart, false)
	d.SetMemory(0x10, "counter")
	d.Run(cart)

	dir := t.TempDir()
	if err := Emit(dir, cart, d, false); err != nil {
		t.Fatalf("Emit: %v", err)
	}

	mainPath := filepath.Join(dir, "main.asm")
	mainData, err := os.ReadFile(mainPath)
	if err != nil {
		t.Fatalf("reading main.asm: %v", err)
	}
	main := string(mainData)
	if !strings.Contains(main, ".define counter $0010") {
		t.Errorf("expected memory define in main.asm, got:\n%s", main)
	}
	if !strings.Contains(main, ".INCLUDE \"bank00.asm\"") {
		t.Errorf("expected bank00.asm include, got:\n%s", main)
	}

	bank0Path := filepath.Join(dir, "bank00.asm")
	if _, err := os.Stat(bank0Path); err != nil {
		t.Fatalf("bank00.asm not written: %v", err)
	}
}

func TestEmitWritesBundleWhenRequested(t *testing.T) {
	cart := buildLoROM(t)
	d := disasm.New(cart, false)
	d.Run(cart)

	dir := t.TempDir()
	if err := Emit(dir, cart, d, true); err != nil {
		t.Fatalf("Emit: %v", err)
	}

	if _, err := os.Stat(filepath.Join(dir, "project.tar.zst")); err != nil {
		t.Fatalf("expected project.tar.zst, got: %v", err)
	}
}
