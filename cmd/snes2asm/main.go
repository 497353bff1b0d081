// Command snes2asm disassembles a SNES cartridge image into a buildable
// WLA-DX project.
package main

import (
	"fmt"
	"os"

	"github.com/sargunv/snes2asm/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
