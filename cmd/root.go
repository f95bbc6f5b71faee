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
	flagConfig    string
	flagDebug     bool
	flagEphemeral bool
)

var rootCmd = &cobra.Command{
	Use:   "promotronik",
	Short: "Browse a deal listings snapshot in the terminal",
	Long: `promotronik loads a snapshot of deal listings and lets you search, sort,
and filter them by host, keeping favorites and the color theme between runs.`,
	SilenceUsage: true,
	RunE:         runTUI,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "path to config file")
	rootCmd.PersistentFlags().BoolVar(&flagDebug, "debug", false, "write a debug log to the state directory")
	rootCmd.PersistentFlags().BoolVar(&flagEphemeral, "ephemeral", false, "keep favorites and theme in memory only")

	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(exportCmd)
	rootCmd.AddCommand(favoritesCmd)
	rootCmd.AddCommand(themeCmd)
	rootCmd.AddCommand(statsCmd)
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "promotronik %s (commit: %s, built: %s)\n", version, commit, date)
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
