// Package cartridge loads a SNES ROM image, identifies its memory-mapping
// mode, and translates between ROM file offsets and 24-bit SNES addresses.
package cartridge

import (
	"fmt"
	"os"

	"github.com/sargunv/snes2asm/lib/disasmerr"
)

const (
	minSize        = 32 * 1024
	sizeGranule    = 64 * 1024
	copierHeader   = 0x200
	extendedCutoff = 4 * 1024 * 1024

	loromHeaderOffset = 0x7FB0
	hiromHeaderOffset = 0xFFB0
	extendedBase      = 0x400000

	headerRecordLen = 48
	vectorTableLen  = 32
)

// Vector identifies one of the fourteen interrupt/exception vectors stored
// in the cartridge header.
type Vector int

const (
	VecNativeCOP Vector = iota
	VecNativeBRK
	VecNativeABORT
	VecNativeNMI
	VecNativeRESET
	VecNativeIRQ
	VecUnused1
	VecUnused2
	VecEmuCOP
	VecEmuABORT
	VecEmuNMI
	VecEmuRESET
	VecEmuIRQ
	vectorCount
)

// vectorOffsets gives each Vector's byte offset within the 32-byte vector
// table at header+48, matching cartridge.py's "I6HI6H" unpack: a 4-byte
// unused field (nvec_unused), six 2-byte native vectors, another 4-byte
// unused field (evec_unused), then six 2-byte emulation vectors. The table
// is not a flat run of 2-byte slots - each 4-byte unused field widens its
// gap by an extra 2 bytes, which is why VecEmuRESET sits at 28, not 22.
// evec_unused2 (the 2-byte gap at offset 22-23, between VecEmuCOP and
// VecEmuABORT) has no named Vector of its own since nothing reads it.
var vectorOffsets = [vectorCount]int{
	VecNativeCOP:   4,
	VecNativeBRK:   6,
	VecNativeABORT: 8,
	VecNativeNMI:   10,
	VecNativeRESET: 12,
	VecNativeIRQ:   14,
	VecUnused1:     0,
	VecUnused2:     16,
	VecEmuCOP:      20,
	VecEmuABORT:    24,
	VecEmuNMI:      26,
	VecEmuRESET:    28,
	VecEmuIRQ:      30,
}

// Header holds the parsed fields of the 80-byte internal cartridge header.
type Header struct {
	Maker      [2]byte
	GameCode   [4]byte
	ExpandRAM  byte
	Version    byte
	SubType    byte
	Title      [21]byte
	MapMode    byte
	CartType   byte
	ROMSizeIdx byte
	SRAMIdx    byte
	Country    byte
	License    byte
	ROMMask    byte
	Complement byte
	Checksum   byte
	Vectors    [vectorCount]uint16
}

// TitleString returns the 21-byte padded title, right-trimmed of trailing spaces
// and NUL bytes.
func (h *Header) TitleString() string {
	end := len(h.Title)
	for end > 0 && (h.Title[end-1] == ' ' || h.Title[end-1] == 0) {
		end--
	}
	return string(h.Title[:end])
}

// Cartridge is the loaded ROM image plus its parsed header and mapping mode.
// It is constructed once per invocation and never mutated afterward.
type Cartridge struct {
	data         []byte
	HiROM        bool
	FastROM      bool
	Extended     bool
	HeaderOffset int
	Header       Header
}

// Open reads path and parses it as described in §4.1.
func Open(path string) (*Cartridge, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading rom image: %w", err)
	}
	return Load(raw)
}

// Load parses raw ROM bytes, stripping a copier header if present, and
// auto-detects its mapping mode and ROM speed from the header heuristics.
func Load(raw []byte) (*Cartridge, error) {
	return LoadWithOptions(raw, Options{})
}

// Options forces mapping-mode/ROM-speed detection to a fixed outcome
// instead of running the header-scoring heuristics, the Go counterpart of
// cartridge.py's constructor options dict ("hirom"/"lorom"/"fastrom"/
// "slowrom" keys). ForceHiROM and ForceLoROM are mutually exclusive, as
// are ForceFast and ForceSlow; when neither of a pair is set, detection
// proceeds as usual for that axis.
type Options struct {
	ForceHiROM bool
	ForceLoROM bool
	ForceFast  bool
	ForceSlow  bool
}

// LoadWithOptions is Load with explicit mapping-mode/speed overrides.
func LoadWithOptions(raw []byte, opts Options) (*Cartridge, error) {
	data := raw
	if len(data)&0x2FF == 0x200 {
		data = data[copierHeader:]
	}

	if len(data) < minSize {
		return nil, disasmerr.New(disasmerr.InvalidRomImage, -1, "size %d below minimum %d", len(data), minSize)
	}
	if len(data)%sizeGranule != 0 {
		return nil, disasmerr.New(disasmerr.InvalidRomImage, -1, "size %d is not a multiple of %d", len(data), sizeGranule)
	}

	c := &Cartridge{data: data, Extended: len(data) > extendedCutoff}

	switch {
	case opts.ForceHiROM:
		c.HiROM = true
	case opts.ForceLoROM:
		c.HiROM = false
	default:
		c.HiROM = scoreHirom(data) >= scoreLorom(data)
	}

	base := loromHeaderOffset
	if c.HiROM {
		base = hiromHeaderOffset
	}
	if c.Extended {
		base += extendedBase
	}
	c.HeaderOffset = base

	if err := c.parseHeader(); err != nil {
		return nil, err
	}

	switch {
	case opts.ForceFast:
		c.FastROM = true
	case opts.ForceSlow:
		c.FastROM = false
	default:
		c.FastROM = c.Header.MapMode&0x10 != 0
	}

	return c, nil
}

// Size returns the ROM's byte length after copier-header stripping.
func (c *Cartridge) Size() int { return len(c.data) }

// Read returns a half-open byte slice [start,end) of the ROM buffer.
func (c *Cartridge) Read(start, end int) []byte { return c.data[start:end] }

// ByteAt returns a single byte at offset.
func (c *Cartridge) ByteAt(offset int) byte { return c.data[offset] }

// BankSize returns 0x10000 for HiROM or 0x8000 for LoROM.
func (c *Cartridge) BankSize() int {
	if c.HiROM {
		return 0x10000
	}
	return 0x8000
}

// BankCount returns the number of banks in the ROM.
func (c *Cartridge) BankCount() int { return len(c.data) / c.BankSize() }

// Address translates a ROM offset to its 24-bit SNES address.
func (c *Cartridge) Address(offset int) int {
	if c.HiROM {
		base := 0x008000
		if c.Extended {
			base = 0x400000
		}
		return base + offset
	}
	return ((offset & 0xFF8000) << 1) + (offset & 0x7FFF) + 0x008000
}

// Index translates a 24-bit SNES address back to a ROM offset. It returns
// AddressOutOfRange if the address does not map into the loaded ROM.
func (c *Cartridge) Index(addr int) (int, error) {
	var offset int
	if c.HiROM {
		offset = addr & 0x7FFFFF
	} else {
		if addr&0x8000 == 0 {
			return 0, disasmerr.New(disasmerr.AddressOutOfRange, -1, "address $%06X has bit 15 clear, not valid for LoROM", addr)
		}
		offset = ((addr & 0x7F0000) >> 1) + (addr & 0x7FFF)
	}
	offset &= len(c.data) - 1
	if offset < 0 || offset >= len(c.data) {
		return 0, disasmerr.New(disasmerr.AddressOutOfRange, -1, "address $%06X maps outside the %d byte rom", addr, len(c.data))
	}
	return offset, nil
}

func (c *Cartridge) parseHeader() error {
	h := c.HeaderOffset
	if h+headerRecordLen+vectorTableLen > len(c.data) {
		return disasmerr.New(disasmerr.InvalidRomImage, h, "header record exceeds rom size")
	}
	rec := c.data[h : h+headerRecordLen]

	var hdr Header
	copy(hdr.Maker[:], rec[0:2])
	copy(hdr.GameCode[:], rec[2:6])
	// rec[6:13] are the seven reserved zero bytes
	hdr.ExpandRAM = rec[13]
	hdr.Version = rec[14]
	hdr.SubType = rec[15]
	copy(hdr.Title[:], rec[16:37])
	hdr.MapMode = rec[37]
	hdr.CartType = rec[38]
	hdr.ROMSizeIdx = rec[39]
	hdr.SRAMIdx = rec[40]
	hdr.Country = rec[41]
	hdr.License = rec[42]
	hdr.ROMMask = rec[43]
	hdr.Complement = rec[44]
	hdr.Checksum = rec[45]
	// rec[46:48] unused in this layout

	vecs := c.data[h+headerRecordLen : h+headerRecordLen+vectorTableLen]
	for i := 0; i < int(vectorCount); i++ {
		off := vectorOffsets[i]
		hdr.Vectors[i] = uint16(vecs[off]) | uint16(vecs[off+1])<<8
	}

	c.Header = hdr
	return nil
}

// scoreHirom scores the header candidate at the HiROM offset.
func scoreHirom(data []byte) int {
	return scoreCommon(data, hiromHeaderOffset, hiromHeaderOffset)
}

// scoreLorom scores the header candidate at the LoROM offset. This
// preserves the original implementation's copy-paste bug: its ASCII
// plausibility checks read the maker/title bytes at the *HiROM* offsets
// (0xFFB0, 0xFFC0) instead of its own candidate offset. Games in the wild
// rely on the resulting score ordering, not on the check being "correct",
// so the bug is preserved rather than fixed (see spec Design Notes).
func scoreLorom(data []byte) int {
	return scoreCommon(data, loromHeaderOffset, hiromHeaderOffset)
}

// scoreCommon evaluates the heuristic at headerOffset, except the ASCII
// plausibility check which reads from asciiOffset.
func scoreCommon(data []byte, headerOffset, asciiOffset int) int {
	if headerOffset+headerRecordLen+vectorTableLen > len(data) {
		return -100
	}
	score := 0
	rec := data[headerOffset : headerOffset+headerRecordLen]

	complement := rec[44]
	checksum := rec[45]
	if uint16(complement)+uint16(checksum) == 0xFFFF {
		score += 2
	}

	if rec[42] == 0x33 {
		score += 2
	}

	if rec[37]&0x0F < 4 {
		score += 2
	}

	resetVec := uint16(data[headerOffset+headerRecordLen+28]) | uint16(data[headerOffset+headerRecordLen+29])<<8
	if resetVec&0x8000 == 0 {
		score -= 4
	}

	if rec[39] > 0x0D {
		score -= 1
	}

	if asciiOffset+37 <= len(data) {
		maker := data[asciiOffset : asciiOffset+2]
		title := data[asciiOffset+16 : asciiOffset+37]
		if !isASCII(maker) {
			score -= 1
		}
		if !isASCII(title) {
			score -= 1
		}
	} else {
		score -= 2
	}

	return score
}

func isASCII(b []byte) bool {
	for _, c := range b {
		if c != 0 && c != ' ' && (c < 0x20 || c > 0x7E) {
			return false
		}
	}
	return true
}
