package config

import (
	"fmt"
	"time"

	"github.com/spf13/viper"
)

// Config holds all configuration for the application
type Config struct {
	Server ServerConfig
	Amazon AmazonConfig
	LLM    LLMConfig
	Cache  CacheConfig
}

// ServerConfig holds server-related configuration
type ServerConfig struct {
	Port           string   `mapstructure:"port"`
	Environment    string   `mapstructure:"environment"`
	AllowedOrigins []string `mapstructure:"allowed_origins"`
}

// AmazonConfig holds product page fetch configuration
type AmazonConfig struct {
	BaseURL           string        `mapstructure:"base_url"`
	UserAgent         string        `mapstructure:"user_agent"`
	Timeout           time.Duration `mapstructure:"timeout"`
	RequestsPerSecond float64       `mapstructure:"requests_per_second"`
}

// LLMConfig holds completion service configuration
type LLMConfig struct {
	BaseURL     string        `mapstructure:"base_url"`
	Model       string        `mapstructure:"model"`
	Temperature float64       `mapstructure:"temperature"`
	TopP        float64       `mapstructure:"top_p"`
	Timeout     time.Duration `mapstructure:"timeout"`
}

// CacheConfig holds cache-related configuration
type CacheConfig struct {
	TTL time.Duration `mapstructure:"ttl"`
}

// Load loads configuration from environment variables and config files
func Load() (*Config, error) {
	v := viper.New()

	// Set config name and paths
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")
	v.AddConfigPath("/etc/wraplens/")

	// Environment variable settings
	v.SetEnvPrefix("WRAPLENS")
	v.AutomaticEnv()

	// Set default values
	setDefaults(v)

	// Read config file (optional - will use env vars if file doesn't exist)
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
		// Config file not found; using environment variables and defaults
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("unable to decode config: %w", err)
	}

	// Validate configuration
	if err := validate(&config); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &config, nil
}

// setDefaults sets default configuration values
func setDefaults(v *viper.Viper) {
	// Server defaults
	v.SetDefault("server.port", "8080")
	v.SetDefault("server.environment", "development")
	v.SetDefault("server.allowed_origins", []string{"http://localhost:3000"})

	// Amazon fetch defaults
	v.SetDefault("amazon.base_url", "https://www.amazon.com")
	v.SetDefault("amazon.user_agent",
		"Mozilla/5.0 (Macintosh; Intel Mac OS X 10_15_7) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0 Safari/537.36")
	v.SetDefault("amazon.timeout", "20s")
	v.SetDefault("amazon.requests_per_second", 0.5)

	// Completion service defaults (Ollama-compatible endpoint)
	v.SetDefault("llm.base_url", "http://localhost:11434")
	v.SetDefault("llm.model", "llama3.1")
	v.SetDefault("llm.temperature", 0.1)
	v.SetDefault("llm.top_p", 0.9)
	v.SetDefault("llm.timeout", "120s")

	// Cache defaults
	v.SetDefault("cache.ttl", "24h")
}

// validate validates the configuration
func validate(config *Config) error {
	if config.LLM.Model == "" {
		return fmt.Errorf("LLM model is required (set WRAPLENS_LLM_MODEL)")
	}

	if config.LLM.BaseURL == "" {
		return fmt.Errorf("LLM base URL is required (set WRAPLENS_LLM_BASE_URL)")
	}

	if config.Amazon.Timeout <= 0 {
		return fmt.Errorf("amazon timeout must be positive, got: %s", config.Amazon.Timeout)
	}

	if config.LLM.Timeout <= 0 {
		return fmt.Errorf("LLM timeout must be positive, got: %s", config.LLM.Timeout)
	}

	if config.Amazon.RequestsPerSecond <= 0 {
		return fmt.Errorf("amazon requests_per_second must be positive, got: %f", config.Amazon.RequestsPerSecond)
	}

	return nil
}
