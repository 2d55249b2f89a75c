package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all service configuration.
type Config struct {
	Environment EnvironmentConfig

	// Server
	HTTPServer HTTPServerConfig
	Logger     LoggerConfig

	// Storage
	Database DatabaseConfig
	Cache    CacheConfig

	JWT            JWTConfig
	LLM            LLMConfig
	Extraction     ExtractionConfig
	Scheduler      SchedulerConfig
	GoogleCalendar GoogleCalendarConfig
	Gmail          GmailConfig
	Outlook        OutlookConfig
	RateLimit      RateLimitConfig
}

type EnvironmentConfig struct {
	Name string
}

type HTTPServerConfig struct {
	Port int
	Mode string
}

type LoggerConfig struct {
	Level        string
	Mode         string
	Encoding     string
	ColorEnabled bool
	FilePath     string
	MaxSizeMB    int
	MaxBackups   int
	MaxAgeDays   int
}

type DatabaseConfig struct {
	Driver          string
	DSN             string
	MaxIdleConns    int
	MaxOpenConns    int
	ConnMaxLifetime time.Duration
	LogSQL          bool
}

// CacheConfig selects the extraction cache backend: "lru" or "redis".
type CacheConfig struct {
	Driver        string
	Size          int
	RedisAddr     string
	RedisPassword string
	RedisDB       int
}

type JWTConfig struct {
	Secret string
	TTL    time.Duration
}

// LLMConfig holds configuration for the LLM provider abstraction layer.
type LLMConfig struct {
	Providers       []ProviderConfig `yaml:"providers"`
	FallbackEnabled bool             `yaml:"fallback_enabled"`
	RetryAttempts   int              `yaml:"retry_attempts"`
	RetryDelay      string           `yaml:"retry_delay"`
	MaxTotalTimeout string           `yaml:"max_total_timeout"`
	Temperature     float64          `yaml:"temperature"`
	MaxTokens       int              `yaml:"max_tokens"`
}

// ProviderConfig holds configuration for a single LLM provider.
type ProviderConfig struct {
	Name     string `yaml:"name"`
	Enabled  bool   `yaml:"enabled"`
	Priority int    `yaml:"priority"`
	APIKey   string `yaml:"api_key"`
	BaseURL  string `yaml:"base_url,omitempty"`
	Model    string `yaml:"model"`
	Timeout  string `yaml:"timeout"`
}

type ExtractionConfig struct {
	MaxChars              int
	Timeout               time.Duration
	DefaultEstimatedHours float64
	CacheTTL              time.Duration
	PreviewChars          int
}

type SchedulerConfig struct {
	DayStartHour int
	DayEndHour   int
	Timezone     string
}

type GoogleCalendarConfig struct {
	CredentialsPath string
	// TokenPath is the OAuth token written by scripts/gcal-auth.
	TokenPath  string
	CalendarID string
	// SyncCron enables the periodic import for SyncOwnerID when both are set.
	SyncCron    string
	SyncOwnerID string
	SyncDays    int
}

// GmailConfig enables the deadline scan. It reuses the Google Calendar
// credentials; the OAuth token must carry the gmail.readonly scope.
type GmailConfig struct {
	Enabled bool
}

// OutlookConfig is the Azure AD app registration for Outlook sync. A blank
// ClientID disables it.
type OutlookConfig struct {
	TenantID     string
	ClientID     string
	ClientSecret string
	// TokenPath is the token written by scripts/outlook-auth.
	TokenPath string
}

type RateLimitConfig struct {
	UploadPerMin int
}

// Load loads configuration using Viper.
// Config file name: config.yaml, searched in ./config, ., /etc/app/
func Load() (*Config, error) {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath("./config")
	viper.AddConfigPath(".")
	viper.AddConfigPath("/etc/app/")

	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	setDefaults()

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	cfg := &Config{}

	// Environment & Server
	cfg.Environment.Name = viper.GetString("environment.name")
	cfg.HTTPServer.Port = viper.GetInt("http_server.port")
	cfg.HTTPServer.Mode = viper.GetString("http_server.mode")
	cfg.Logger.Level = viper.GetString("logger.level")
	cfg.Logger.Mode = viper.GetString("logger.mode")
	cfg.Logger.Encoding = viper.GetString("logger.encoding")
	cfg.Logger.ColorEnabled = viper.GetBool("logger.color_enabled")
	cfg.Logger.FilePath = viper.GetString("logger.file_path")
	cfg.Logger.MaxSizeMB = viper.GetInt("logger.max_size_mb")
	cfg.Logger.MaxBackups = viper.GetInt("logger.max_backups")
	cfg.Logger.MaxAgeDays = viper.GetInt("logger.max_age_days")

	// Storage
	cfg.Database.Driver = viper.GetString("database.driver")
	cfg.Database.DSN = viper.GetString("database.dsn")
	cfg.Database.MaxIdleConns = viper.GetInt("database.max_idle_conns")
	cfg.Database.MaxOpenConns = viper.GetInt("database.max_open_conns")
	cfg.Database.ConnMaxLifetime = viper.GetDuration("database.conn_max_lifetime")
	cfg.Database.LogSQL = viper.GetBool("database.log_sql")
	if dsn := viper.GetString("database_url"); dsn != "" {
		cfg.Database.DSN = dsn
	}

	cfg.Cache.Driver = viper.GetString("cache.driver")
	cfg.Cache.Size = viper.GetInt("cache.size")
	cfg.Cache.RedisAddr = viper.GetString("cache.redis_addr")
	cfg.Cache.RedisPassword = viper.GetString("cache.redis_password")
	cfg.Cache.RedisDB = viper.GetInt("cache.redis_db")

	// Auth
	cfg.JWT.Secret = viper.GetString("jwt.secret")
	cfg.JWT.TTL = viper.GetDuration("jwt.ttl")
	if secret := viper.GetString("jwt_secret"); secret != "" {
		cfg.JWT.Secret = secret
	}
	if cfg.JWT.Secret == "" {
		return nil, fmt.Errorf("jwt.secret is required")
	}

	// LLM Provider Abstraction
	cfg.LLM.FallbackEnabled = viper.GetBool("llm.fallback_enabled")
	cfg.LLM.RetryAttempts = viper.GetInt("llm.retry_attempts")
	cfg.LLM.RetryDelay = viper.GetString("llm.retry_delay")
	cfg.LLM.MaxTotalTimeout = viper.GetString("llm.max_total_timeout")
	cfg.LLM.Temperature = viper.GetFloat64("llm.temperature")
	cfg.LLM.MaxTokens = viper.GetInt("llm.max_tokens")

	if viper.IsSet("llm.providers") {
		if providersList, ok := viper.Get("llm.providers").([]interface{}); ok {
			for _, p := range providersList {
				providerMap, ok := p.(map[string]interface{})
				if !ok {
					continue
				}
				cfg.LLM.Providers = append(cfg.LLM.Providers, ProviderConfig{
					Name:     getStringFromMap(providerMap, "name"),
					Enabled:  getBoolFromMap(providerMap, "enabled"),
					Priority: getIntFromMap(providerMap, "priority"),
					APIKey:   expandEnvVar(getStringFromMap(providerMap, "api_key")),
					BaseURL:  getStringFromMap(providerMap, "base_url"),
					Model:    getStringFromMap(providerMap, "model"),
					Timeout:  getStringFromMap(providerMap, "timeout"),
				})
			}
		}
	}

	// No providers is allowed: extraction then runs on the keyword fallback only.
	if len(cfg.LLM.Providers) > 0 {
		if err := validateLLMConfig(&cfg.LLM); err != nil {
			return nil, fmt.Errorf("invalid llm config: %w", err)
		}
	}

	// Extraction
	cfg.Extraction.MaxChars = viper.GetInt("extraction.max_chars")
	cfg.Extraction.Timeout = viper.GetDuration("extraction.timeout")
	cfg.Extraction.DefaultEstimatedHours = viper.GetFloat64("extraction.default_estimated_hours")
	cfg.Extraction.CacheTTL = viper.GetDuration("extraction.cache_ttl")
	cfg.Extraction.PreviewChars = viper.GetInt("extraction.preview_chars")

	// Scheduler
	cfg.Scheduler.DayStartHour = viper.GetInt("scheduler.day_start_hour")
	cfg.Scheduler.DayEndHour = viper.GetInt("scheduler.day_end_hour")
	cfg.Scheduler.Timezone = viper.GetString("scheduler.timezone")
	if cfg.Scheduler.DayStartHour < 0 || cfg.Scheduler.DayEndHour > 24 || cfg.Scheduler.DayStartHour >= cfg.Scheduler.DayEndHour {
		return nil, fmt.Errorf("scheduler: invalid day window %d-%d", cfg.Scheduler.DayStartHour, cfg.Scheduler.DayEndHour)
	}

	// Google Calendar
	cfg.GoogleCalendar.CredentialsPath = viper.GetString("google_calendar.credentials_path")
	cfg.GoogleCalendar.TokenPath = viper.GetString("google_calendar.token_path")
	cfg.GoogleCalendar.CalendarID = viper.GetString("google_calendar.calendar_id")
	cfg.GoogleCalendar.SyncCron = viper.GetString("google_calendar.sync_cron")
	cfg.GoogleCalendar.SyncOwnerID = viper.GetString("google_calendar.sync_owner_id")
	cfg.GoogleCalendar.SyncDays = viper.GetInt("google_calendar.sync_days")
	if googleCreds := viper.GetString("google_calendar_credentials"); googleCreds != "" {
		cfg.GoogleCalendar.CredentialsPath = googleCreds
	}

	cfg.Gmail.Enabled = viper.GetBool("gmail.enabled")

	// Outlook
	cfg.Outlook.TenantID = viper.GetString("outlook.tenant_id")
	cfg.Outlook.ClientID = viper.GetString("outlook.client_id")
	cfg.Outlook.ClientSecret = expandEnvVar(viper.GetString("outlook.client_secret"))
	cfg.Outlook.TokenPath = viper.GetString("outlook.token_path")

	cfg.RateLimit.UploadPerMin = viper.GetInt("rate_limit.upload_per_min")

	return cfg, nil
}

func setDefaults() {
	viper.SetDefault("environment.name", "development")
	viper.SetDefault("http_server.port", 8080)
	viper.SetDefault("http_server.mode", "debug")
	viper.SetDefault("logger.level", "debug")
	viper.SetDefault("logger.mode", "debug")
	viper.SetDefault("logger.encoding", "console")
	viper.SetDefault("logger.color_enabled", true)

	viper.SetDefault("database.driver", "sqlite")
	viper.SetDefault("database.dsn", "file:productivity.db?_pragma=foreign_keys(1)")
	viper.SetDefault("database.max_idle_conns", 5)
	viper.SetDefault("database.max_open_conns", 20)
	viper.SetDefault("database.conn_max_lifetime", "1h")

	viper.SetDefault("cache.driver", "lru")
	viper.SetDefault("cache.size", 256)

	viper.SetDefault("jwt.ttl", "72h")

	viper.SetDefault("llm.fallback_enabled", true)
	viper.SetDefault("llm.retry_attempts", 2)
	viper.SetDefault("llm.retry_delay", "1s")
	viper.SetDefault("llm.max_total_timeout", "60s")
	viper.SetDefault("llm.temperature", 0.2)
	viper.SetDefault("llm.max_tokens", 4096)

	viper.SetDefault("extraction.max_chars", 6000)
	viper.SetDefault("extraction.timeout", "45s")
	viper.SetDefault("extraction.default_estimated_hours", 5)
	viper.SetDefault("extraction.cache_ttl", "24h")
	viper.SetDefault("extraction.preview_chars", 500)

	viper.SetDefault("scheduler.day_start_hour", 8)
	viper.SetDefault("scheduler.day_end_hour", 22)
	viper.SetDefault("scheduler.timezone", "UTC")

	viper.SetDefault("google_calendar.calendar_id", "primary")
	viper.SetDefault("google_calendar.token_path", "token.json")
	viper.SetDefault("google_calendar.sync_days", 30)

	viper.SetDefault("gmail.enabled", false)

	viper.SetDefault("outlook.tenant_id", "common")
	viper.SetDefault("outlook.token_path", "outlook-token.json")

	viper.SetDefault("rate_limit.upload_per_min", 20)
}

// expandEnvVar expands values written as ${VAR_NAME}.
func expandEnvVar(value string) string {
	if !strings.HasPrefix(value, "${") || !strings.HasSuffix(value, "}") {
		return value
	}

	envVar := value[2 : len(value)-1]
	if envValue := viper.GetString(envVar); envValue != "" {
		return envValue
	}
	if envValue := viper.GetString(strings.ToLower(envVar)); envValue != "" {
		return envValue
	}
	if envValue := os.Getenv(envVar); envValue != "" {
		return envValue
	}
	return value
}

func validateLLMConfig(cfg *LLMConfig) error {
	enabledCount := 0
	priorityMap := make(map[int]bool)

	for i, provider := range cfg.Providers {
		if provider.Name == "" {
			return fmt.Errorf("provider %d: name is required", i)
		}
		if provider.Model == "" {
			return fmt.Errorf("provider %s: model is required", provider.Name)
		}
		if !provider.Enabled {
			continue
		}

		enabledCount++
		if provider.Priority <= 0 {
			return fmt.Errorf("provider %s: priority must be positive", provider.Name)
		}
		if priorityMap[provider.Priority] {
			return fmt.Errorf("provider %s: duplicate priority %d", provider.Name, provider.Priority)
		}
		priorityMap[provider.Priority] = true
	}

	if enabledCount == 0 {
		return fmt.Errorf("no enabled LLM providers")
	}
	return nil
}

func getStringFromMap(m map[string]interface{}, key string) string {
	if val, ok := m[key]; ok {
		if str, ok := val.(string); ok {
			return str
		}
	}
	return ""
}

func getBoolFromMap(m map[string]interface{}, key string) bool {
	if val, ok := m[key]; ok {
		if b, ok := val.(bool); ok {
			return b
		}
	}
	return false
}

func getIntFromMap(m map[string]interface{}, key string) int {
	if val, ok := m[key]; ok {
		if i, ok := val.(int); ok {
			return i
		}
		if f, ok := val.(float64); ok {
			return int(f)
		}
	}
	return 0
}
