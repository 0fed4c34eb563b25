// Command goscm is the goscm command-line front end: a REPL, a one-shot
// script runner, and lexer/parser debug subcommands, built on cobra per
// the teacher's cmd/dwscript layout.
package main

import (
	"fmt"
	"os"

	"github.com/cwbudde/goscm/cmd/goscm/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
