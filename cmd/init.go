package cmd

import (
	"github.com/spf13/cobra"

	"github.com/ziadkadry99/mission-control/internal/config"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Create a missioncontrol configuration with an interactive wizard",
	Long:  `Runs an interactive wizard that asks for the dashboard passphrase, port and storage, and writes missioncontrol.yml (or the --config path).`,
	RunE: func(cmd *cobra.Command, args []string) error {
		_, err := config.RunWizard(cfgFile)
		return err
	},
}

func init() {
	rootCmd.AddCommand(initCmd)
}
