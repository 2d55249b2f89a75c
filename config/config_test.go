package config

import "testing"

func TestValidateLLMConfig(t *testing.T) {
	tests := []struct {
		name    string
		cfg     LLMConfig
		wantErr bool
	}{
		{
			name: "valid",
			cfg: LLMConfig{Providers: []ProviderConfig{
				{Name: "gemini", Enabled: true, Priority: 1, Model: "gemini-2.5-flash"},
				{Name: "qwen", Enabled: true, Priority: 2, Model: "qwen-plus"},
			}},
		},
		{
			name: "duplicate priority",
			cfg: LLMConfig{Providers: []ProviderConfig{
				{Name: "gemini", Enabled: true, Priority: 1, Model: "m"},
				{Name: "qwen", Enabled: true, Priority: 1, Model: "m"},
			}},
			wantErr: true,
		},
		{
			name:    "missing model",
			cfg:     LLMConfig{Providers: []ProviderConfig{{Name: "gemini", Enabled: true, Priority: 1}}},
			wantErr: true,
		},
		{
			name:    "none enabled",
			cfg:     LLMConfig{Providers: []ProviderConfig{{Name: "gemini", Priority: 1, Model: "m"}}},
			wantErr: true,
		},
		{
			name:    "non-positive priority",
			cfg:     LLMConfig{Providers: []ProviderConfig{{Name: "gemini", Enabled: true, Model: "m"}}},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := validateLLMConfig(&tt.cfg); (err != nil) != tt.wantErr {
				t.Errorf("validateLLMConfig() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestGetIntFromMap(t *testing.T) {
	m := map[string]interface{}{"a": 3, "b": 4.0, "c": "x"}
	if getIntFromMap(m, "a") != 3 || getIntFromMap(m, "b") != 4 || getIntFromMap(m, "c") != 0 {
		t.Errorf("unexpected conversions")
	}
}

func TestExpandEnvVar(t *testing.T) {
	t.Setenv("PC_TEST_KEY", "secret")
	if got := expandEnvVar("${PC_TEST_KEY}"); got != "secret" {
		t.Errorf("expandEnvVar = %q", got)
	}
	if got := expandEnvVar("plain"); got != "plain" {
		t.Errorf("expandEnvVar = %q", got)
	}
}
