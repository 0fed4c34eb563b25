package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/cwbudde/goscm/internal/lexer"
)

var lexCmd = &cobra.Command{
	Use:   "lex [file]",
	Short: "dump the token stream for a Scheme source file",
	Args:  cobra.ExactArgs(1),
	RunE: func(c *cobra.Command, args []string) error {
		data, err := os.ReadFile(args[0])
		if err != nil {
			return err
		}
		tokens, err := lexer.Tokenize(string(data))
		if err != nil {
			fmt.Fprintln(c.OutOrStdout(), "Error: "+formatErr(err))
			return nil
		}
		for _, t := range tokens {
			fmt.Fprintf(c.OutOrStdout(), "%-16s %-20q %s\n", t.Type, t.Literal, t.Pos)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(lexCmd)
}
