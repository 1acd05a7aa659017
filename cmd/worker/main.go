package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var version = "dev"

var rootCmd = &cobra.Command{
	Use:   "worker",
	Short: "Project tracker side tools",
	Long: `worker runs helper tasks next to the project tracker API.

Use "worker watch" to follow board snapshots published on Redis.`,
	SilenceUsage: true,
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the worker version",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintln(cmd.OutOrStdout(), version)
	},
}

func main() {
	rootCmd.AddCommand(versionCmd, newWatchCmd())
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
