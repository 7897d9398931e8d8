package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

var (
	flagSince   string
	flagRefresh bool
	flagConfig  string
)

var rootCmd = &cobra.Command{
	Use:   "wins-analyzer",
	Short: "TUI achievement tracker backed by Google Sheets",
	Long:  "wins-analyzer renders your wins spreadsheet as a filterable list and an analytics dashboard, straight in the terminal.",
	RunE:  runApp,
}

func init() {
	rootCmd.Flags().StringVar(&flagSince, "since", "", "only load wins from the last duration (e.g., 90d, 24h)")
	rootCmd.Flags().BoolVar(&flagRefresh, "refresh", false, "force refresh from the spreadsheet before launching")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "path to config file")

	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(exportCmd)
	rootCmd.AddCommand(ideasCmd)
	rootCmd.AddCommand(pruneCmd)
	rootCmd.AddCommand(statsCmd)
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("wins-analyzer %s (commit: %s, built: %s)\n", version, commit, date)
	},
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func SetVersionInfo(v, c, d string) {
	version = v
	commit = c
	date = d
}
