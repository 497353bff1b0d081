// Package cli wires the disasm command's cobra flag set and a bubbletea
// progress display, the Go counterpart of __init__.py's argparse-based
// main(), restyled on the teacher repository's internal/cli package.
package cli

import (
	"github.com/spf13/cobra"
)

var jsonOutput bool

var rootCmd = &cobra.Command{
	Use:   "snes2asm",
	Short: "Disassembles SNES cartridges into practical WLA-DX projects",
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&jsonOutput, "json", false, "disable the interactive progress display and log plain lines instead")
	rootCmd.AddCommand(disasmCmd)
}

// Execute runs the command tree; main.go's only call into this package.
func Execute() error {
	return rootCmd.Execute()
}
