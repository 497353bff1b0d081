package decoder

import (
	"fmt"

	"github.com/sargunv/snes2asm/lib/bitmap"
	"github.com/sargunv/snes2asm/lib/disasm"
	"github.com/sargunv/snes2asm/lib/disasmerr"
	"github.com/sargunv/snes2asm/lib/tile"
)

// GraphicDecoder publishes a run of planar tile graphics as a raw `.chr`
// side-file (the exact packed bytes, for reassembly) plus a `.bmp` preview
// rendered against its paired palette, or a synthetic grayscale ramp if
// no palette was given.
type GraphicDecoder struct {
	base
	bitDepth      int
	width         int
	palette       *PaletteDecoder
	paletteOffset int
	mode7         bool
	tileSize      int
	tileDecoder   func([]byte) [64]int
}

// NewGraphic creates a GraphicDecoder over [start,end) rendering
// bitDepth-bit-per-pixel planar tiles at the given pixel width (a multiple
// of 8). Pass palette=nil for a synthetic grayscale preview, or mode7=true
// for Mode 7's 8bpp linear tile layout (which then ignores bitDepth and
// forbids paletteOffset).
func NewGraphic(label string, start, end, bitDepth, width int, palette *PaletteDecoder, paletteOffset int, mode7 bool) (*GraphicDecoder, error) {
	if width&0x7 != 0 {
		return nil, disasmerr.New(disasmerr.DecoderMisconfigured, start, "graphic %s: width must be a multiple of 8", label)
	}

	d := &GraphicDecoder{
		base:          base{label: label, start: start, end: end},
		bitDepth:      bitDepth,
		width:         width,
		palette:       palette,
		paletteOffset: paletteOffset,
		mode7:         mode7,
	}

	switch {
	case mode7:
		if paletteOffset != 0 {
			return nil, disasmerr.New(disasmerr.DecoderMisconfigured, start, "graphic %s: palette_offset not allowed for mode 7", label)
		}
		d.bitDepth = 8
		d.tileDecoder = tile.DecodeMode7Tile
		d.tileSize = 64
	case bitDepth == 8:
		d.tileDecoder = tile.Decode8bppTile
		d.tileSize = 64
	case bitDepth == 2:
		d.tileDecoder = tile.Decode2bppTile
		d.tileSize = 16
	case bitDepth == 3:
		d.tileDecoder = tile.Decode3bppTile
		d.tileSize = 24
	default:
		d.tileDecoder = tile.Decode4bppTile
		d.tileSize = 32
	}

	if palette != nil {
		if (1 << uint(d.bitDepth)) > palette.ColorCount()-paletteOffset {
			return nil, disasmerr.New(disasmerr.DecoderMisconfigured, start,
				"graphic %s: palette %s does not provide enough colors for %d-bit graphic", label, palette.Label(), d.bitDepth)
		}
	}

	if (end-start)%d.tileSize != 0 {
		return nil, disasmerr.New(disasmerr.DecoderMisconfigured, start,
			"graphic %s: range does not align with the %d-bit tile size", label, d.bitDepth)
	}

	return d, nil
}

// grayscalePalette builds the fallback ramp used when no palette decoder
// was supplied: index 0 is transparent magenta, index 1 true black, and
// the rest step evenly across the bit depth's range.
func (d *GraphicDecoder) grayscalePalette() []uint32 {
	step := 1 << uint(8-d.bitDepth)
	total := 1 << uint(d.bitDepth)
	pal := make([]uint32, total)
	for i, x := 0, 0; i < total; i, x = i+1, x+step {
		v := uint32(x + step - 1)
		pal[i] = v<<16 | v<<8 | v
	}
	pal[0] = 0xFF00FF
	pal[1] = 0
	return pal
}

func (d *GraphicDecoder) getPalette(rom disasm.ROM) []uint32 {
	if d.palette != nil {
		colors := d.palette.Colors(rom)
		return colors[d.paletteOffset:]
	}
	return d.grayscalePalette()
}

func (d *GraphicDecoder) filename() string { return fmt.Sprintf("%s_%dbpp.bmp", d.label, d.bitDepth) }

func (d *GraphicDecoder) chrFilename() string { return fmt.Sprintf("%s_%dbpp.chr", d.label, d.bitDepth) }

func (d *GraphicDecoder) Decode(rom disasm.ROM) []disasm.Offset {
	raw := rom.Read(d.start, d.end)
	d.addFile(d.chrFilename(), raw)

	tileCount := (d.end - d.start) / d.tileSize
	tilesWide := d.width / 8
	height := (tileCount / tilesWide) * 8
	if tileCount%tilesWide != 0 {
		height += 8
	}

	// 3bpp graphics have no native indexed-bitmap depth; store as 4bpp.
	bitmapDepth := d.bitDepth
	if bitmapDepth == 3 {
		bitmapDepth = 4
	}

	bmp, err := bitmap.New(d.width, height, bitmapDepth, d.getPalette(rom))
	if err != nil {
		return []disasm.Offset{{Pos: d.start, Ins: disasm.Instruction{
			Code: fmt.Sprintf("; decode error: %v", err), Preamble: d.label + ":",
		}}}
	}

	tileIndex := 0
	for i := d.start; i < d.end; i += d.tileSize {
		pixels := d.tileDecoder(rom.Read(i, i+d.tileSize))
		tileX := (tileIndex % tilesWide) * 8
		tileY := (tileIndex / tilesWide) * 8
		for y := 0; y < 8; y++ {
			for x := 0; x < 8; x++ {
				bmp.SetPixel(tileX+x, tileY+y, pixels[y*8+x])
			}
		}
		tileIndex++
	}
	d.addFile(d.filename(), bmp.Output())

	return []disasm.Offset{{
		Pos: d.start,
		Ins: disasm.Instruction{Code: fmt.Sprintf(".INCBIN \"%s\"", d.chrFilename()), Preamble: d.label + ":"},
	}}
}
