package cmd

import (
	"github.com/spf13/cobra"

	"github.com/cwbudde/goscm/internal/config"
)

var rootCmd = &cobra.Command{
	Use:   "goscm",
	Short: "goscm is an R7RS-small Scheme interpreter",
	Long: `goscm evaluates Scheme programs: a REPL for interactive use, a
script runner for files, and debug subcommands that dump the lexer's
token stream or the parser's datum tree.`,
}

var configPath string

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", ".goscmrc", "path to an optional config file")
}

// Execute runs the goscm command tree; called once from main.
func Execute() error {
	return rootCmd.Execute()
}

func loadConfig() (config.Config, error) {
	return config.Load(configPath)
}
