package cmd

import (
	"github.com/spf13/cobra"

	"github.com/xunohq/support-chat/internal/config"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize supportchat configuration with an interactive wizard",
	Long:  `Runs an interactive wizard to configure the widget backend and generates a .supportchat.yml file.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		_, err := config.RunWizard(cfgFile)
		return err
	},
}

func init() {
	rootCmd.AddCommand(initCmd)
}
