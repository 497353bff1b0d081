// Package config loads the YAML decoder/label/memory-variable description
// that steers a disassembly run, the Go counterpart of configurator.py's
// Configurator class.
package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/expr-lang/expr"
	"gopkg.in/yaml.v3"

	"github.com/sargunv/snes2asm/lib/cartridge"
	"github.com/sargunv/snes2asm/lib/decoder"
	"github.com/sargunv/snes2asm/lib/disasm"
)

// HexInt unmarshals either a YAML integer or a "0x"-prefixed hex string,
// since config files address ROM offsets the way the assembly output
// prints them.
type HexInt int

func (h *HexInt) UnmarshalYAML(value *yaml.Node) error {
	var i int
	if err := value.Decode(&i); err == nil {
		*h = HexInt(i)
		return nil
	}
	var s string
	if err := value.Decode(&s); err != nil {
		return err
	}
	n, err := strconv.ParseInt(s, 0, 64)
	if err != nil {
		return fmt.Errorf("config: invalid integer %q: %w", s, err)
	}
	*h = HexInt(n)
	return nil
}

// DecoderConfig is the on-disk shape of one "decoders:" list entry. Not
// every field applies to every type; apply_decoder in the original picked
// params by Python kwargs, this dispatches the same way by type string.
type DecoderConfig struct {
	Type          string            `yaml:"type"`
	Label         string            `yaml:"label"`
	Start         HexInt            `yaml:"start"`
	End           HexInt            `yaml:"end"`
	Size          int               `yaml:"size"`
	BitDepth      int               `yaml:"bit_depth"`
	Width         int               `yaml:"width"`
	Palette       string            `yaml:"palette"`
	PaletteOffset int               `yaml:"palette_offset"`
	Mode7         bool              `yaml:"mode7"`
	Compress      string            `yaml:"compress"`
	Translation   string            `yaml:"translation"`
	Pack          []int             `yaml:"pack"`
	Index         string            `yaml:"index"`
	Rate          int               `yaml:"rate"`
	Addr          HexInt            `yaml:"addr"`
	Table         map[string]string `yaml:"table"`
	Gfx           []string          `yaml:"gfx"`
	When          string            `yaml:"when"`
}

// Config is the full document: code banks to sweep, data-region decoders,
// named labels, and named memory variables.
type Config struct {
	Banks    []int             `yaml:"banks"`
	Decoders []DecoderConfig   `yaml:"decoders"`
	Labels   map[string]HexInt `yaml:"labels"`
	Memory   map[string]HexInt `yaml:"memory"`
}

// Load reads and parses a YAML config file from path.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config: reading %s: %w", path, err)
	}
	var c Config
	if err := yaml.Unmarshal(data, &c); err != nil {
		return nil, fmt.Errorf("config: parsing %s: %w", path, err)
	}
	return &c, nil
}

// knownTypes mirrors Configurator.decoders_enabled: the set of decoder
// type names a config entry may name.
var knownTypes = map[string]bool{
	"data": true, "array": true, "text": true, "gfx": true,
	"palette": true, "bin": true, "translation": true,
	"index": true, "tilemap": true, "sound": true, "spc700": true,
}

// Apply walks the document and drives disasm and the label/translation
// registries it resolves decoder references against, mirroring
// Configurator.apply/apply_decoder.
func (c *Config) Apply(d *disasm.Disassembler, cart *cartridge.Cartridge) error {
	if len(c.Banks) > 0 {
		d.SetCodeBanks(c.Banks)
	}

	resolved := make(map[string]*decoder.PaletteDecoder)
	translations := make(map[string]*decoder.TranslationMap)
	indexes := make(map[string]*decoder.IndexDecoder)
	graphics := make(map[string]*decoder.GraphicDecoder)
	seenLabels := make(map[string]bool)

	env := evalEnv(cart)

	for _, dc := range c.Decoders {
		if dc.Type == "" {
			return fmt.Errorf("config: decoder missing type")
		}
		if !knownTypes[dc.Type] {
			fmt.Fprintf(os.Stderr, "Unknown decoder type %s. Skipping.\n", dc.Type)
			continue
		}
		if dc.Label == "" {
			return fmt.Errorf("config: decoder missing label")
		}
		if seenLabels[dc.Label] {
			return fmt.Errorf("config: duplicate label %s", dc.Label)
		}

		if dc.When != "" {
			ok, err := evalWhen(dc.When, env)
			if err != nil {
				return fmt.Errorf("config: decoder %s: when: %w", dc.Label, err)
			}
			if !ok {
				continue
			}
		}

		dec, err := buildDecoder(dc, resolved, translations, indexes, graphics)
		if err != nil {
			return fmt.Errorf("config: decoder %s: %w", dc.Label, err)
		}
		if err := d.AddDecoder(dec); err != nil {
			fmt.Fprintf(os.Stderr, "Could not add decoder type: %v\n", err)
			continue
		}
		seenLabels[dc.Label] = true

		switch t := dec.(type) {
		case *decoder.PaletteDecoder:
			resolved[dc.Label] = t
		case *decoder.TranslationMap:
			translations[dc.Label] = t
		case *decoder.IndexDecoder:
			indexes[dc.Label] = t
		case *decoder.GraphicDecoder:
			graphics[dc.Label] = t
		}
	}

	for label, index := range c.Labels {
		d.LabelName(int(index), label)
	}
	for name, index := range c.Memory {
		d.SetMemory(int(index), name)
	}

	return nil
}

func evalEnv(cart *cartridge.Cartridge) map[string]any {
	return map[string]any{
		"mapmode": int(cart.Header.MapMode),
		"region":  int(cart.Header.Country),
		"maker":   string(cart.Header.Maker[:]),
	}
}

func evalWhen(expression string, env map[string]any) (bool, error) {
	out, err := expr.Eval(expression, env)
	if err != nil {
		return false, err
	}
	ok, isBool := out.(bool)
	if !isBool {
		return false, fmt.Errorf("when expression %q did not evaluate to a bool", expression)
	}
	return ok, nil
}

func buildDecoder(
	dc DecoderConfig,
	palettes map[string]*decoder.PaletteDecoder,
	translations map[string]*decoder.TranslationMap,
	indexes map[string]*decoder.IndexDecoder,
	graphics map[string]*decoder.GraphicDecoder,
) (disasm.Decoder, error) {
	switch dc.Type {
	case "data":
		return decoder.NewRaw(dc.Label, int(dc.Start), int(dc.End)), nil
	case "array":
		return decoder.NewArray(dc.Label, int(dc.Start), int(dc.End), dc.Size)
	case "bin":
		if dc.Compress != "" {
			return decoder.NewBinaryCompressed(dc.Label, int(dc.Start), int(dc.End), dc.Compress), nil
		}
		return decoder.NewBinary(dc.Label, int(dc.Start), int(dc.End)), nil
	case "palette":
		return decoder.NewPalette(dc.Label, int(dc.Start), int(dc.End))
	case "translation":
		table := make(map[byte]string, len(dc.Table))
		for k, v := range dc.Table {
			n, err := strconv.ParseInt(k, 0, 16)
			if err != nil {
				return nil, fmt.Errorf("translation table key %q: %w", k, err)
			}
			table[byte(n)] = v
		}
		return decoder.NewTranslationMap(dc.Label, table), nil
	case "index":
		return decoder.NewIndex(dc.Label, int(dc.Start), int(dc.End), dc.Size)
	case "text":
		tr := translations[dc.Translation]
		switch {
		case dc.Index != "":
			idx, ok := indexes[dc.Index]
			if !ok {
				return nil, fmt.Errorf("could not find decoder label reference %q", dc.Index)
			}
			return decoder.NewTextIndexed(dc.Label, int(dc.Start), int(dc.End), idx, tr), nil
		case len(dc.Pack) > 0:
			return decoder.NewTextPacked(dc.Label, int(dc.Start), int(dc.End), dc.Pack, tr)
		default:
			return decoder.NewText(dc.Label, int(dc.Start), int(dc.End), tr), nil
		}
	case "gfx":
		pal, ok := palettes[dc.Palette]
		if dc.Palette != "" && !ok {
			return nil, fmt.Errorf("could not find decoder label reference %q", dc.Palette)
		}
		return decoder.NewGraphic(dc.Label, int(dc.Start), int(dc.End), dc.BitDepth, dc.Width, pal, dc.PaletteOffset, dc.Mode7)
	case "tilemap":
		gfx := make([]*decoder.GraphicDecoder, 0, len(dc.Gfx))
		for _, ref := range dc.Gfx {
			g, ok := graphics[ref]
			if !ok {
				return nil, fmt.Errorf("could not find decoder label reference %q", ref)
			}
			gfx = append(gfx, g)
		}
		return decoder.NewTileMap(dc.Label, int(dc.Start), int(dc.End), dc.Width, gfx), nil
	case "sound":
		return decoder.NewSound(dc.Label, int(dc.Start), int(dc.End), dc.Rate), nil
	case "spc700":
		return decoder.NewSPC700(dc.Label, int(dc.Start), int(dc.End), int(dc.Addr)), nil
	default:
		return nil, fmt.Errorf("unhandled decoder type %s", dc.Type)
	}
}
