package cmd

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/xunohq/support-chat/internal/chat"
	"github.com/xunohq/support-chat/internal/config"
	"github.com/xunohq/support-chat/internal/facebook"
	"github.com/xunohq/support-chat/internal/faq"
	"github.com/xunohq/support-chat/internal/server"
)

var serverPort int

var serverCmd = &cobra.Command{
	Use:   "server",
	Short: "Start the chat widget backend",
	Long:  `Starts the supportchat HTTP server with the chat, FAQ and Facebook Graph endpoints.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load(cfgFile)
		if err != nil {
			return fmt.Errorf("loading config: %w", err)
		}
		if serverPort != 0 {
			cfg.Port = serverPort
		}
		if err := cfg.Validate(); err != nil {
			return fmt.Errorf("invalid config: %w", err)
		}

		provider, err := createProviderFromConfig(cfg)
		if err != nil {
			return fmt.Errorf("creating LLM provider: %w", err)
		}

		composer, sessions := createComposerFromConfig(cfg, provider)
		sessions.Start()
		defer sessions.Stop()

		srv := server.New(server.Config{
			Port:     cfg.Port,
			AllowAll: cfg.AllowAllOrigins,
		})

		r := srv.Router()
		chat.RegisterRoutes(r, composer)
		chat.RegisterWebSocket(r, composer)
		faq.RegisterPage(r, faq.NewStore(cfg.FAQPath))

		if cfg.FacebookEnabled {
			fb := facebook.NewClient(facebook.Credentials{
				AccessToken: os.Getenv("FACEBOOK_ACCESS_TOKEN"),
				AppID:       os.Getenv("FACEBOOK_APP_ID"),
				AppSecret:   os.Getenv("FACEBOOK_APP_SECRET"),
			}, cfg.FacebookAPIVersion)
			facebook.RegisterRoutes(r, fb)
		}

		// Graceful shutdown.
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		go func() {
			<-ctx.Done()
			fmt.Fprintln(os.Stderr, "\nShutting down server...")
			srv.Shutdown(context.Background())
		}()

		fmt.Fprintf(os.Stderr, "supportchat v%s starting on port %d\n", Version, cfg.Port)
		fmt.Fprintf(os.Stderr, "  Mode: %s\n", cfg.Mode)
		if provider != nil {
			fmt.Fprintf(os.Stderr, "  Provider: %s (%s)\n", provider.Name(), cfg.Model)
		}
		fmt.Fprintf(os.Stderr, "  FAQ document: %s\n", cfg.FAQPath)

		if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	},
}

func init() {
	serverCmd.Flags().IntVar(&serverPort, "port", 0, "Port to listen on (overrides config)")
	rootCmd.AddCommand(serverCmd)
}
