package cmd

import (
	"github.com/spf13/cobra"
)

var cfgFile string

var rootCmd = &cobra.Command{
	Use:   "supportchat",
	Short: "Customer-support chat backend for the Xuno money-transfer widget",
	Long: `Supportchat serves the Xuno support widget: it answers customer
questions from a markdown FAQ knowledge base, or delegates to an LLM
completion service with session history and FAQ context, and relays
replies with optional UI-component hints for the widget to render.`,
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", ".supportchat.yml", "config file path")
}
