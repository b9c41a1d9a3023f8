package cmd

import (
	"github.com/spf13/cobra"

	"github.com/ziadkadry99/mission-control/internal/config"
)

var (
	cfgFile string
	verbose bool
)

var rootCmd = &cobra.Command{
	Use:   "missioncontrol",
	Short: "Password-gated operations dashboard",
	Long: `Mission Control serves a single-page operations dashboard behind a
shared passphrase. Each browser keeps its own theme and sign-in flag,
which survive reloads and server restarts.`,
	SilenceUsage: true,
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", config.DefaultPath, "config file path")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
}
