package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/xunohq/support-chat/internal/config"
	mcpserver "github.com/xunohq/support-chat/internal/mcp"
)

var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "Start the MCP server for AI agent integration",
	Long:  `Starts a Model Context Protocol (MCP) server on stdio, exposing the FAQ knowledge base as lookup tools for AI agents.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load(cfgFile)
		if err != nil {
			return fmt.Errorf("loading config: %w", err)
		}

		composer, sessions := createComposerFromConfig(cfg, nil)
		defer sessions.Stop()

		mcpserver.Version = Version

		fmt.Fprintf(os.Stderr, "supportchat MCP server started on stdio (faq=%s)\n", cfg.FAQPath)

		srv := mcpserver.NewServer(composer)
		return srv.Serve()
	},
}

func init() {
	rootCmd.AddCommand(mcpCmd)
}
