package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/aretw0/tale/internal/config"
	"github.com/aretw0/tale/internal/presentation/tui"
)

var rootCmd = &cobra.Command{
	Use:   "tale",
	Short: "Tale is a turn-based text scenario engine",
	Long: `Tale runs text adventures built from named scenarios and global commands.
Without a subcommand it plays the bundled demo adventure.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := execute(); err != nil {
		os.Exit(1)
	}
}

// execute runs the command tree and reports a failure once on its error stream.
func execute() error {
	err := rootCmd.Execute()
	if err != nil {
		tui.PrintError(rootCmd.ErrOrStderr(), "%v", err)
	}
	return err
}

func init() {
	rootCmd.PersistentFlags().String("config", config.DefaultPath, "Path to the configuration file")
}
