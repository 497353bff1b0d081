package cli

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/sargunv/snes2asm/internal/config"
	"github.com/sargunv/snes2asm/internal/diskcache"
	"github.com/sargunv/snes2asm/internal/project"
	"github.com/sargunv/snes2asm/lib/cartridge"
	"github.com/sargunv/snes2asm/lib/decoder"
	"github.com/sargunv/snes2asm/lib/disasm"
)

var (
	outputDir   string
	configPath  string
	banksFlag   string
	forceHiROM  bool
	forceLoROM  bool
	forceFast   bool
	forceSlow   bool
	noLabels    bool
	hexComments bool
	bundle      bool
)

var disasmCmd = &cobra.Command{
	Use:   "disasm <rom>",
	Short: "Disassemble a SNES cartridge into a WLA-DX project",
	Args:  cobra.ExactArgs(1),
	RunE:  runDisasm,
}

func init() {
	disasmCmd.Flags().StringVarP(&outputDir, "output", "o", ".", "file path to output project")
	disasmCmd.Flags().StringVarP(&configPath, "config", "c", "", "path to decoding configuration yaml file")
	disasmCmd.Flags().StringVarP(&banksFlag, "banks", "b", "", "comma-separated code banks to disassemble (default auto-detect)")
	disasmCmd.Flags().BoolVar(&forceHiROM, "hi", false, "force HiROM")
	disasmCmd.Flags().BoolVar(&forceLoROM, "lo", false, "force LoROM")
	disasmCmd.Flags().BoolVarP(&forceFast, "fastrom", "f", false, "force fast ROM addressing")
	disasmCmd.Flags().BoolVarP(&forceSlow, "slowrom", "s", false, "force slow ROM addressing")
	disasmCmd.Flags().BoolVar(&noLabels, "nl", false, "use addresses instead of labels")
	disasmCmd.Flags().BoolVarP(&hexComments, "hex", "x", false, "comments show instruction hex")
	disasmCmd.Flags().BoolVar(&bundle, "bundle", false, "additionally write a compressed project archive")
}

func runDisasm(cmd *cobra.Command, args []string) error {
	romPath := args[0]
	raw, err := os.ReadFile(romPath)
	if err != nil {
		return fmt.Errorf("reading %s: %w", romPath, err)
	}

	cart, err := cartridge.LoadWithOptions(raw, cartridge.Options{
		ForceHiROM: forceHiROM,
		ForceLoROM: forceLoROM,
		ForceFast:  forceFast,
		ForceSlow:  forceSlow,
	})
	if err != nil {
		return fmt.Errorf("parsing %s: %w", romPath, err)
	}

	d := disasm.New(cart, hexComments)
	d.SetNoLabels(noLabels)
	if err := d.AddDecoder(decoder.NewHeaders(cart.HeaderOffset, cart.HeaderOffset+80)); err != nil {
		return fmt.Errorf("registering header decoder: %w", err)
	}

	if configPath != "" {
		cfg, err := config.Load(configPath)
		if err != nil {
			return err
		}
		if err := cfg.Apply(d, cart); err != nil {
			return err
		}
	}

	if banksFlag != "" {
		banks, err := parseBanks(banksFlag)
		if err != nil {
			return err
		}
		d.SetCodeBanks(banks)
	}

	var cache *diskcache.Cache
	romHash := diskcache.HashROM(raw)
	if cacheDir, err := cacheDirectory(); err == nil {
		if c, err := diskcache.New(cacheDir); err == nil {
			cache = c
			if entry, ok := cache.Load(romHash); ok {
				for addr, name := range entry.Labels {
					d.LabelName(addr, name)
				}
			}
		}
	}

	if err := runWithProgress(d, cart); err != nil {
		return err
	}

	if cache != nil {
		_ = cache.Store(&diskcache.Entry{ROMHash: romHash, Labels: d.Labels()})
	}

	if err := project.Emit(outputDir, cart, d, bundle); err != nil {
		return fmt.Errorf("writing project: %w", err)
	}

	return nil
}

func parseBanks(flag string) ([]int, error) {
	parts := strings.Split(flag, ",")
	banks := make([]int, 0, len(parts))
	for _, p := range parts {
		n, err := strconv.Atoi(strings.TrimSpace(p))
		if err != nil {
			return nil, fmt.Errorf("invalid bank %q: %w", p, err)
		}
		banks = append(banks, n)
	}
	return banks, nil
}

func cacheDirectory() (string, error) {
	dir, err := os.UserCacheDir()
	if err != nil {
		return "", err
	}
	return dir + "/snes2asm/v1", nil
}

// runWithProgress drives the sweep through a bubbletea progress model on a
// TTY, or plain log.Printf lines under --json or when no TTY is attached;
// the core disassembler never logs on its own.
func runWithProgress(d *disasm.Disassembler, cart *cartridge.Cartridge) error {
	if jsonOutput || !isTerminal() {
		d.RunWithProgress(cart, func(done, total int) {
			log.Printf("bank %d/%d disassembled", done, total)
		})
		return nil
	}

	p := tea.NewProgram(newProgressModel(d, cart))
	_, err := p.Run()
	return err
}

func isTerminal() bool {
	info, err := os.Stdout.Stat()
	if err != nil {
		return false
	}
	return info.Mode()&os.ModeCharDevice != 0
}
