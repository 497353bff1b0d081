// Package project writes a completed disassembly out as a buildable
// WLA-DX project tree: one source file per bank, a top-level include file,
// and every decoder's published side-files. The Go counterpart of
// project_maker.py's ProjectMaker, generalized to split output per bank
// and to optionally bundle the tree for archival.
package project

import (
	"archive/tar"
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/klauspost/compress/zstd"

	"github.com/sargunv/snes2asm/lib/cartridge"
	"github.com/sargunv/snes2asm/lib/disasm"
)

// Emit creates dir (if needed) and writes the full project: <bank>.asm
// files, main.asm (includes plus the .define memory-variable block), and
// every registered decoder's side-files. If bundle is true, the same tree
// is additionally archived to dir/project.tar.zst.
func Emit(dir string, cart *cartridge.Cartridge, d *disasm.Disassembler, bundle bool) error {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("project: creating %s: %w", dir, err)
	}

	bankFiles, err := writeBanks(dir, d)
	if err != nil {
		return err
	}

	if err := writeMain(dir, cart, d, bankFiles); err != nil {
		return err
	}

	if err := flushDecoderFiles(dir, d); err != nil {
		return err
	}

	if bundle {
		if err := writeBundle(dir); err != nil {
			return err
		}
	}
	return nil
}

func writeBanks(dir string, d *disasm.Disassembler) ([]string, error) {
	names := make([]string, 0, d.BankCount())
	for bank := 0; bank < d.BankCount(); bank++ {
		name := fmt.Sprintf("bank%02X.asm", bank)
		path := filepath.Join(dir, name)
		if err := os.WriteFile(path, []byte(d.BankCode(bank)), 0644); err != nil {
			return nil, fmt.Errorf("project: writing %s: %w", name, err)
		}
		names = append(names, name)
	}
	return names, nil
}

func writeMain(dir string, cart *cartridge.Cartridge, d *disasm.Disassembler, bankFiles []string) error {
	var b []byte
	b = append(b, headerComment(cart)...)

	mem := d.Memory()
	if len(mem) > 0 {
		addrs := make([]int, 0, len(mem))
		for addr := range mem {
			addrs = append(addrs, addr)
		}
		sort.Ints(addrs)
		for _, addr := range addrs {
			b = append(b, []byte(fmt.Sprintf(".define %s $%04X\n", mem[addr], addr))...)
		}
		b = append(b, '\n')
	}

	for _, name := range bankFiles {
		b = append(b, []byte(fmt.Sprintf(".INCLUDE \"%s\"\n", name))...)
	}

	return os.WriteFile(filepath.Join(dir, "main.asm"), b, 0644)
}

// headerComment renders the cartridge header fields as a WLA-DX comment
// block, the information project_maker.py's hdr.asm template carried.
func headerComment(cart *cartridge.Cartridge) []byte {
	romMap := "LOROM"
	if cart.HiROM {
		romMap = "HIROM"
	}
	if cart.Extended {
		romMap = "EX" + romMap
	}
	romSpeed := "SLOWROM"
	if cart.FastROM {
		romSpeed = "FASTROM"
	}

	return []byte(fmt.Sprintf(
		"; %s\n; %s %s\n; cart_type=%02X rom_size=%02X sram_size=%02X country=%02X license=%02X version=%02X\n\n",
		cart.Header.TitleString(), romMap, romSpeed,
		cart.Header.CartType, cart.Header.ROMSizeIdx, cart.Header.SRAMIdx,
		cart.Header.Country, cart.Header.License, cart.Header.Version,
	))
}

func flushDecoderFiles(dir string, d *disasm.Disassembler) error {
	for _, dec := range d.Decoders() {
		for name, data := range dec.Files() {
			path := filepath.Join(dir, name)
			if err := os.WriteFile(path, data, 0644); err != nil {
				return fmt.Errorf("project: writing decoder file %s: %w", name, err)
			}
		}
	}
	return nil
}

// writeBundle archives dir's contents (sorted by name for determinism)
// into dir/project.tar.zst.
func writeBundle(dir string) error {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return fmt.Errorf("project: listing %s: %w", dir, err)
	}
	names := make([]string, 0, len(entries))
	for _, e := range entries {
		if !e.IsDir() {
			names = append(names, e.Name())
		}
	}
	sort.Strings(names)

	bundlePath := filepath.Join(dir, "project.tar.zst")
	f, err := os.Create(bundlePath)
	if err != nil {
		return fmt.Errorf("project: creating bundle: %w", err)
	}
	defer f.Close()

	zw, err := zstd.NewWriter(f, zstd.WithEncoderLevel(zstd.SpeedDefault))
	if err != nil {
		return fmt.Errorf("project: zstd writer: %w", err)
	}
	defer zw.Close()

	tw := tar.NewWriter(zw)
	defer tw.Close()

	for _, name := range names {
		path := filepath.Join(dir, name)
		data, err := os.ReadFile(path)
		if err != nil {
			return fmt.Errorf("project: reading %s for bundle: %w", name, err)
		}
		hdr := &tar.Header{Name: name, Size: int64(len(data)), Mode: 0644}
		if err := tw.WriteHeader(hdr); err != nil {
			return fmt.Errorf("project: bundle header %s: %w", name, err)
		}
		if _, err := tw.Write(data); err != nil {
			return fmt.Errorf("project: bundle write %s: %w", name, err)
		}
	}
	return nil
}
