package config

// defaultModels maps each provider to the model used when none is
// configured.
var defaultModels = map[ProviderType]string{
	ProviderAnthropic: "claude-sonnet-4-5-20250929",
	ProviderOpenAI:    "gpt-4o-mini",
	ProviderOllama:    "llama3",
}

// DefaultModel returns the default model for the given provider.
func DefaultModel(provider ProviderType) string {
	if m, ok := defaultModels[provider]; ok {
		return m
	}
	return defaultModels[ProviderAnthropic]
}

// DefaultConfig returns a Config with sensible defaults: the assistant
// answers through Anthropic, reads the FAQ from the knowledge_base
// directory and listens on the widget's expected port.
func DefaultConfig() *Config {
	return &Config{
		Mode:               ModeAssistant,
		Provider:           ProviderAnthropic,
		Model:              defaultModels[ProviderAnthropic],
		FAQPath:            "knowledge_base/faq.md",
		Port:               3000,
		Temperature:        0.7,
		MaxTokens:          1000,
		SessionTTLHours:    24,
		SweepIntervalHours: 24,
		AllowAllOrigins:    true,
		FacebookEnabled:    false,
		FacebookAPIVersion: "v18.0",
	}
}
