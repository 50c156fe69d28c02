package cmd

import (
	"time"

	"github.com/xunohq/support-chat/internal/chat"
	"github.com/xunohq/support-chat/internal/config"
	"github.com/xunohq/support-chat/internal/faq"
	"github.com/xunohq/support-chat/internal/llm"
)

// createProviderFromConfig creates a completion provider, or nil when the
// service runs in FAQ-only mode.
func createProviderFromConfig(cfg *config.Config) (llm.Provider, error) {
	if cfg.Mode != config.ModeAssistant {
		return nil, nil
	}
	return llm.NewProvider(string(cfg.Provider), cfg.Model)
}

// createComposerFromConfig wires the FAQ store, session store and provider
// into a composer. The returned session store is not started.
func createComposerFromConfig(cfg *config.Config, provider llm.Provider) (*chat.Composer, *chat.SessionStore) {
	sessions := chat.NewSessionStore(
		time.Duration(cfg.SessionTTLHours)*time.Hour,
		time.Duration(cfg.SweepIntervalHours)*time.Hour,
	)
	composer := chat.NewComposer(chat.ComposerConfig{
		Mode:        chat.Mode(cfg.Mode),
		Model:       cfg.Model,
		Temperature: cfg.Temperature,
		MaxTokens:   cfg.MaxTokens,
	}, faq.NewStore(cfg.FAQPath), sessions, provider)
	return composer, sessions
}
