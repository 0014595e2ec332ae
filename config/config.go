package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

const (
	ProviderOpenAI    = "openai"
	ProviderAnthropic = "anthropic"

	UpstreamErrorsSoft   = "soft"
	UpstreamErrorsStrict = "strict"
)

type Config struct {
	Server ServerConfig
	LLM    LLMConfig
	App    AppConfig
}

type ServerConfig struct {
	Port               string
	CORSAllowedOrigins []string
	MaxBodyBytes       int64
	UpstreamErrorMode  string
}

type LLMConfig struct {
	Provider string
	APIKey   string
	Model    string
	BaseURL  string
	Timeout  time.Duration
	// MaxTokens only applies to providers that require an explicit output budget.
	MaxTokens int
}

type AppConfig struct {
	ServiceName string
	Environment string
	LogLevel    string
	LogFormat   string
	Version     string
}

// Simulated reports whether no credential is configured for the selected provider.
func (c LLMConfig) Simulated() bool {
	return strings.TrimSpace(c.APIKey) == ""
}

func Load() (*Config, error) {
	// Load .env file if it exists (ignore error in production)
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	provider := strings.ToLower(getEnv("LLM_PROVIDER", ProviderOpenAI))

	cfg := &Config{
		Server: ServerConfig{
			Port:               getEnv("PORT", "8000"),
			CORSAllowedOrigins: getEnvAsList("CORS_ALLOWED_ORIGINS", []string{"*"}),
			MaxBodyBytes:       int64(getEnvAsInt("MAX_BODY_BYTES", 64<<10)),
			UpstreamErrorMode:  strings.ToLower(getEnv("UPSTREAM_ERROR_MODE", UpstreamErrorsSoft)),
		},
		LLM: LLMConfig{
			Provider:  provider,
			APIKey:    apiKeyFor(provider),
			Model:     getEnv("LLM_MODEL", defaultModel(provider)),
			BaseURL:   getEnv("LLM_BASE_URL", ""),
			Timeout:   getEnvAsDuration("LLM_TIMEOUT", 30*time.Second),
			MaxTokens: getEnvAsInt("LLM_MAX_TOKENS", 1024),
		},
		App: AppConfig{
			ServiceName: getEnv("SERVICE_NAME", "intelligence-api"),
			Environment: getEnv("APP_ENV", "development"),
			LogLevel:    getEnv("LOG_LEVEL", "info"),
			LogFormat:   getEnv("LOG_FORMAT", "text"),
			Version:     getEnv("APP_VERSION", "1.0.0"),
		},
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func (c *Config) Validate() error {
	if c.Server.Port == "" {
		return fmt.Errorf("PORT is required")
	}

	switch c.LLM.Provider {
	case ProviderOpenAI, ProviderAnthropic:
	default:
		return fmt.Errorf("LLM_PROVIDER must be %q or %q, got %q", ProviderOpenAI, ProviderAnthropic, c.LLM.Provider)
	}

	switch c.Server.UpstreamErrorMode {
	case UpstreamErrorsSoft, UpstreamErrorsStrict:
	default:
		return fmt.Errorf("UPSTREAM_ERROR_MODE must be %q or %q, got %q", UpstreamErrorsSoft, UpstreamErrorsStrict, c.Server.UpstreamErrorMode)
	}

	if c.LLM.Timeout <= 0 {
		return fmt.Errorf("LLM_TIMEOUT must be positive")
	}

	if c.Server.MaxBodyBytes <= 0 {
		return fmt.Errorf("MAX_BODY_BYTES must be positive")
	}

	return nil
}

func apiKeyFor(provider string) string {
	switch provider {
	case ProviderAnthropic:
		return os.Getenv("ANTHROPIC_API_KEY")
	default:
		return os.Getenv("OPENAI_API_KEY")
	}
}

func defaultModel(provider string) string {
	if provider == ProviderAnthropic {
		return "claude-3-5-haiku-latest"
	}
	return "gpt-3.5-turbo"
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}

	value, err := strconv.Atoi(valueStr)
	if err != nil {
		log.Printf("Warning: Invalid integer for %s, using default: %d", key, defaultValue)
		return defaultValue
	}

	return value
}

func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}

	value, err := time.ParseDuration(valueStr)
	if err != nil {
		log.Printf("Warning: Invalid duration for %s, using default: %s", key, defaultValue)
		return defaultValue
	}

	return value
}

func getEnvAsList(key string, defaultValue []string) []string {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}

	var out []string
	for _, part := range strings.Split(valueStr, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	if len(out) == 0 {
		return defaultValue
	}
	return out
}
