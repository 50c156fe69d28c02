package config

// ProviderType identifies a completion-service provider.
type ProviderType string

const (
	ProviderAnthropic ProviderType = "anthropic"
	ProviderOpenAI    ProviderType = "openai"
	ProviderOllama    ProviderType = "ollama"
)

// Mode selects how non-canned messages are answered.
type Mode string

const (
	ModeFAQ       Mode = "faq"
	ModeAssistant Mode = "assistant"
)

// Config is the top-level service configuration, corresponding to
// .supportchat.yml.
type Config struct {
	Mode        Mode         `yaml:"mode" koanf:"mode"`
	Provider    ProviderType `yaml:"provider" koanf:"provider"`
	Model       string       `yaml:"model" koanf:"model"`
	FAQPath     string       `yaml:"faq_path" koanf:"faq_path"`
	Port        int          `yaml:"port" koanf:"port"`
	Temperature float64      `yaml:"temperature" koanf:"temperature"`
	MaxTokens   int          `yaml:"max_tokens" koanf:"max_tokens"`

	SessionTTLHours    int `yaml:"session_ttl_hours" koanf:"session_ttl_hours"`
	SweepIntervalHours int `yaml:"sweep_interval_hours" koanf:"sweep_interval_hours"`

	AllowAllOrigins bool `yaml:"allow_all_origins" koanf:"allow_all_origins"`

	FacebookEnabled    bool   `yaml:"facebook_enabled" koanf:"facebook_enabled"`
	FacebookAPIVersion string `yaml:"facebook_api_version" koanf:"facebook_api_version"`
}
