package main

import (
	"github.com/spf13/cobra"

	"github.com/aretw0/tale/internal/cli"
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Play the demo adventure",
	Long:  `Starts the Tale engine in interactive mode, reading one command per line from Stdin.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		configPath, _ := cmd.Flags().GetString("config")
		debug, _ := cmd.Flags().GetBool("debug")
		plain, _ := cmd.Flags().GetBool("plain")
		metrics, _ := cmd.Flags().GetBool("metrics")

		return cli.Execute(cli.RunOptions{
			ConfigPath: configPath,
			Debug:      debug,
			Plain:      plain,
			Metrics:    metrics,
			Input:      cmd.InOrStdin(),
			Output:     cmd.OutOrStdout(),
			ErrOutput:  cmd.ErrOrStderr(),
		})
	},
}

func init() {
	rootCmd.AddCommand(runCmd)

	runCmd.Flags().Bool("debug", false, "Enable debug logging on Stderr")
	runCmd.Flags().Bool("plain", false, "Disable markdown rendering")
	runCmd.Flags().Bool("metrics", false, "Print Prometheus metrics on Stderr when the session ends")

	// Run by default, sharing the same flags.
	rootCmd.Flags().AddFlagSet(runCmd.Flags())
	rootCmd.RunE = runCmd.RunE
}
