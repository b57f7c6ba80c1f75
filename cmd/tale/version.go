package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/aretw0/tale"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of tale",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "tale version %s\n", tale.Version)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
