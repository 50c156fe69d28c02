package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/manifoldco/promptui"
)

// RunWizard runs an interactive configuration wizard and returns the
// resulting Config. It also saves the config to the given path.
func RunWizard(path string) (*Config, error) {
	fmt.Println("Welcome to supportchat! Let's configure your widget backend.")
	fmt.Println()

	cfg := DefaultConfig()

	// 1. Mode selection.
	modePrompt := promptui.Select{
		Label: "How should unmatched messages be answered",
		Items: []string{
			"assistant — delegate to an LLM with FAQ context",
			"faq       — FAQ knowledge base only, no LLM",
		},
	}
	modeIdx, _, err := modePrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("mode selection: %w", err)
	}
	modes := []Mode{ModeAssistant, ModeFAQ}
	cfg.Mode = modes[modeIdx]

	// 2. Provider selection (assistant mode only).
	if cfg.Mode == ModeAssistant {
		providerPrompt := promptui.Select{
			Label: "Select LLM provider",
			Items: []string{"anthropic", "openai", "ollama"},
		}
		_, providerStr, err := providerPrompt.Run()
		if err != nil {
			return nil, fmt.Errorf("provider selection: %w", err)
		}
		cfg.Provider = ProviderType(providerStr)
		cfg.Model = DefaultModel(cfg.Provider)

		if envVar := APIKeyEnvVar(cfg.Provider); envVar != "" && os.Getenv(envVar) == "" {
			fmt.Printf("\nNote: set %s before starting the server.\n\n", envVar)
		}
	}

	// 3. FAQ document path.
	faqPrompt := promptui.Prompt{
		Label:   "FAQ document path",
		Default: cfg.FAQPath,
	}
	faqPath, err := faqPrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("faq path: %w", err)
	}
	cfg.FAQPath = faqPath

	// 4. Port.
	portPrompt := promptui.Prompt{
		Label:   "HTTP port",
		Default: strconv.Itoa(cfg.Port),
		Validate: func(s string) error {
			n, err := strconv.Atoi(s)
			if err != nil || n <= 0 || n > 65535 {
				return fmt.Errorf("must be a port number")
			}
			return nil
		},
	}
	portStr, err := portPrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("port: %w", err)
	}
	cfg.Port, _ = strconv.Atoi(portStr)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	if err := cfg.Save(path); err != nil {
		return nil, err
	}
	fmt.Printf("\nConfiguration saved to %s\n", path)

	return cfg, nil
}
