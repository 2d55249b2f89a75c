package llmprovider

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"productivity-calendar/config"
	"productivity-calendar/pkg/deepseek"
	"productivity-calendar/pkg/gemini"
	"productivity-calendar/pkg/qwen"
)

// InitializeProviders builds the enabled providers sorted by ascending priority.
// A provider that fails to initialize is skipped; warnings are returned
// alongside the providers that did start.
func InitializeProviders(cfg *config.LLMConfig) ([]Provider, []string, error) {
	if cfg == nil {
		return nil, nil, fmt.Errorf("LLM config is nil")
	}

	var enabledProviders []config.ProviderConfig
	for _, p := range cfg.Providers {
		if p.Enabled {
			enabledProviders = append(enabledProviders, p)
		}
	}

	if len(enabledProviders) == 0 {
		return nil, nil, ErrNoProvidersConfigured
	}

	sort.SliceStable(enabledProviders, func(i, j int) bool {
		return enabledProviders[i].Priority < enabledProviders[j].Priority
	})

	var providers []Provider
	var warnings []string
	for _, p := range enabledProviders {
		provider, err := createProvider(p)
		if err != nil {
			warnings = append(warnings, fmt.Sprintf("provider %s (priority %d) skipped: %v", p.Name, p.Priority, err))
			continue
		}
		providers = append(providers, provider)
	}

	if len(providers) == 0 {
		return nil, warnings, fmt.Errorf("no providers successfully initialized: %s", strings.Join(warnings, "; "))
	}
	return providers, warnings, nil
}

// ManagerConfig converts the loaded LLM section into a Manager Config.
// Empty durations are left zero.
func ManagerConfig(cfg *config.LLMConfig) (*Config, error) {
	if cfg == nil {
		return nil, fmt.Errorf("LLM config is nil")
	}
	retryDelay, err := parseOptionalDuration(cfg.RetryDelay)
	if err != nil {
		return nil, fmt.Errorf("retry_delay: %w", err)
	}
	maxTotal, err := parseOptionalDuration(cfg.MaxTotalTimeout)
	if err != nil {
		return nil, fmt.Errorf("max_total_timeout: %w", err)
	}
	return &Config{
		FallbackEnabled: cfg.FallbackEnabled,
		RetryAttempts:   cfg.RetryAttempts,
		RetryDelay:      retryDelay,
		MaxTotalTimeout: maxTotal,
		Temperature:     cfg.Temperature,
		MaxTokens:       cfg.MaxTokens,
	}, nil
}

func parseOptionalDuration(s string) (time.Duration, error) {
	if s == "" {
		return 0, nil
	}
	return time.ParseDuration(s)
}

func createProvider(cfg config.ProviderConfig) (Provider, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("provider %s: API key is required", cfg.Name)
	}
	if cfg.Model == "" {
		return nil, fmt.Errorf("provider %s: model is required", cfg.Name)
	}

	switch cfg.Name {
	case "deepseek", "openai":
		client, err := deepseek.New(deepseek.Config{
			APIKey:  cfg.APIKey,
			Model:   cfg.Model,
			BaseURL: cfg.BaseURL,
		})
		if err != nil {
			return nil, fmt.Errorf("failed to create deepseek client: %w", err)
		}
		return NewDeepSeekAdapter(client), nil

	case "qwen", "alibaba":
		client, err := qwen.New(qwen.Config{
			APIKey:  cfg.APIKey,
			Model:   cfg.Model,
			BaseURL: cfg.BaseURL,
		})
		if err != nil {
			return nil, fmt.Errorf("failed to create qwen client: %w", err)
		}
		return NewQwenAdapter(client), nil

	case "gemini":
		client, err := gemini.New(gemini.Config{
			APIKey: cfg.APIKey,
			Model:  cfg.Model,
			APIURL: cfg.BaseURL,
		})
		if err != nil {
			return nil, fmt.Errorf("failed to create gemini client: %w", err)
		}
		return NewGeminiAdapter(client), nil

	default:
		return nil, fmt.Errorf("unknown provider: %s", cfg.Name)
	}
}
