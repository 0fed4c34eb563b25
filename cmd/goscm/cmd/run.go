package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/cwbudde/goscm/pkg/goscm"
)

var evalExpr string

var runCmd = &cobra.Command{
	Use:   "run [file]",
	Short: "evaluate a Scheme script file, or an inline expression with -e",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(c *cobra.Command, args []string) error {
		var src string
		switch {
		case evalExpr != "":
			src = evalExpr
		case len(args) == 1:
			data, err := os.ReadFile(args[0])
			if err != nil {
				return err
			}
			src = string(data)
		default:
			return fmt.Errorf("run requires a file argument or -e EXPR")
		}

		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		interp := goscm.New(goscm.WithConfig(cfg))
		result, err := interp.Eval(src)
		if drained := interp.Drain(); drained != "" {
			fmt.Fprint(c.OutOrStdout(), drained)
		}
		if err != nil {
			return fmt.Errorf("Error: %s", formatErr(err))
		}
		if result != "" {
			fmt.Fprintln(c.OutOrStdout(), result)
		}
		return nil
	},
}

func init() {
	runCmd.Flags().StringVarP(&evalExpr, "eval", "e", "", "evaluate EXPR instead of reading a file")
	rootCmd.AddCommand(runCmd)
}
