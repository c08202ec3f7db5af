package main

import (
	"fmt"
	"os"
	"runtime/debug"

	"github.com/lixenwraith/tlock/terminal"
)

func main() {
	// Panic Recovery: restore the terminal before printing anything
	defer func() {
		if r := recover(); r != nil {
			terminal.EmergencyReset(os.Stdout)

			fmt.Fprintf(os.Stderr, "\n\x1b[31mTLOCK CRASHED: %v\x1b[0m\n", r)
			fmt.Fprintf(os.Stderr, "Stack Trace:\n%s\n", debug.Stack())
			os.Exit(1)
		}
	}()

	os.Exit(Execute())
}
