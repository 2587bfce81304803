package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/ziadkadry99/semview/internal/config"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Create a .semview.yml configuration interactively",
	Run: func(cmd *cobra.Command, args []string) {
		if _, err := os.Stat(config.DefaultConfigFile); err == nil {
			fmt.Printf("%s already exists; edit it directly or remove it first.\n", config.DefaultConfigFile)
			return
		}
		_, err := config.RunWizard()
		exitOnError(err)
	},
}

func init() {
	rootCmd.AddCommand(initCmd)
}
