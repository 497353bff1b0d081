package decoder

import (
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/sargunv/snes2asm/lib/disasm"
)

// tilemapFile is the YAML sidecar describing how a tilemap's raw character
// data pairs with the graphic and palette assets it references, for tools
// downstream of this disassembler (tilemap editors, build scripts).
type tilemapFile struct {
	Name    string   `yaml:"name"`
	Width   int      `yaml:"width"`
	Height  int      `yaml:"height"`
	TileBin string   `yaml:"tilebin"`
	Gfx     []string `yaml:"gfx"`
	Palette []string `yaml:"palette"`
}

// TileMapDecoder publishes a background tilemap's raw tile-index/attribute
// data as a `.tilebin` side-file plus a YAML sidecar naming the graphic
// and palette assets it's meant to be viewed against.
type TileMapDecoder struct {
	base
	width, height int
	gfxLabels     []string
	paletteLabels []string
}

// NewTileMap creates a TileMapDecoder over [start,end) for a tilemap
// width*2 bytes per row of 2-byte tile entries, referencing one or more
// GraphicDecoders (and their paired palettes) by label.
func NewTileMap(label string, start, end, width int, gfx []*GraphicDecoder) *TileMapDecoder {
	height := (end - start) / (width * 2)
	var gfxLabels, paletteLabels []string
	for _, g := range gfx {
		gfxLabels = append(gfxLabels, g.filename())
		if g.palette != nil {
			paletteLabels = append(paletteLabels, g.palette.filename())
		}
	}
	return &TileMapDecoder{
		base:          base{label: label, start: start, end: end},
		width:         width,
		height:        height,
		gfxLabels:     gfxLabels,
		paletteLabels: paletteLabels,
	}
}

func (d *TileMapDecoder) tileBinName() string { return d.label + ".tilebin" }

func (d *TileMapDecoder) Decode(rom disasm.ROM) []disasm.Offset {
	tm := tilemapFile{
		Name:    d.label,
		Width:   d.width,
		Height:  d.height,
		TileBin: d.tileBinName(),
		Gfx:     d.gfxLabels,
		Palette: d.paletteLabels,
	}
	y, err := yaml.Marshal(tm)
	if err != nil {
		return []disasm.Offset{{Pos: d.start, Ins: disasm.Instruction{
			Code: fmt.Sprintf("; decode error: %v", err), Preamble: d.label + ":",
		}}}
	}
	d.addFile(d.label+".tilemap", y)
	d.addFile(d.tileBinName(), rom.Read(d.start, d.end))

	return []disasm.Offset{{
		Pos: d.start,
		Ins: disasm.Instruction{Code: fmt.Sprintf(".INCBIN \"%s\"", d.tileBinName()), Preamble: d.label + ":"},
	}}
}
