package cmd

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/cwbudde/goscm/pkg/goscm"
)

var replCmd = &cobra.Command{
	Use:   "repl",
	Short: "start an interactive read-eval-print loop",
	RunE: func(c *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		interp := goscm.New(goscm.WithConfig(cfg))
		runREPL(interp, c.InOrStdin(), c.OutOrStdout(), cfg.Prompt)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(replCmd)
}

// runREPL implements the `scm> ` read-eval-print loop: it reads lines
// until parentheses balance, evaluates the accumulated form, and prints
// either its value or an "Error: "-prefixed message — one expression per
// turn, per original_source/src/bin/rust-scheme.rs's line-reading loop,
// extended here to span multiple lines for usability.
func runREPL(interp *goscm.Interpreter, in io.Reader, out io.Writer, prompt string) {
	scanner := bufio.NewScanner(in)
	var pending strings.Builder

	fmt.Fprint(out, prompt)
	for scanner.Scan() {
		line := scanner.Text()
		pending.WriteString(line)
		pending.WriteString("\n")

		if !balanced(pending.String()) {
			fmt.Fprint(out, "... ")
			continue
		}

		src := pending.String()
		pending.Reset()
		if strings.TrimSpace(src) != "" {
			result, err := interp.Eval(src)
			if drained := interp.Drain(); drained != "" {
				fmt.Fprint(out, drained)
			}
			if err != nil {
				fmt.Fprintln(out, "Error: "+formatErr(err))
			} else if result != "" {
				fmt.Fprintln(out, result)
			}
		}
		fmt.Fprint(out, prompt)
	}
}

// formatErr renders an error for the REPL/CLI surface. It deliberately
// calls Error() rather than a promoted Format(bool) string method:
// TokenError/ParseError embed *diagnostics.SourceError, whose Format
// produces a multi-line caret diagram, but spec.md §6 mandates a single
// catalog-wording line here regardless of error kind.
func formatErr(err error) string {
	return err.Error()
}
