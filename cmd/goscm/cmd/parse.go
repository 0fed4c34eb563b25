package cmd

import (
	"fmt"
	"os"

	"github.com/kr/pretty"
	"github.com/spf13/cobra"

	"github.com/cwbudde/goscm/internal/parser"
)

var parseCmd = &cobra.Command{
	Use:   "parse [file]",
	Short: "dump the parsed datum tree for a Scheme source file",
	Args:  cobra.ExactArgs(1),
	RunE: func(c *cobra.Command, args []string) error {
		data, err := os.ReadFile(args[0])
		if err != nil {
			return err
		}
		forms, err := parser.Parse(string(data), args[0])
		if err != nil {
			fmt.Fprintln(c.OutOrStdout(), "Error: "+formatErr(err))
			return nil
		}
		for _, f := range forms {
			fmt.Fprintf(c.OutOrStdout(), "%# v\n", pretty.Formatter(f))
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(parseCmd)
}
