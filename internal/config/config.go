package config

import (
	"fmt"
	"os"
	"strings"
)

// Upstream providers understood by the relay.
const (
	ProviderGroq = "groq"
	ProviderArk  = "ark"
)

const (
	defaultPort        = "3000"
	defaultGroqModel   = "llama3-8b-8192"
	defaultGroqBaseURL = "https://api.groq.com/openai/v1"
	defaultArkBaseURL  = "https://ark.cn-beijing.volces.com/api/v3"
	defaultArkRegion   = "cn-beijing"
)

// Config aggregates every setting the service reads at startup.
type Config struct {
	Server ServerConfig
	AI     AIConfig
	Log    LogConfig
}

// Load reads the configuration from the process environment.
func Load() (*Config, error) {
	server, err := loadServerConfig()
	if err != nil {
		return nil, err
	}

	ai, err := loadAIConfig()
	if err != nil {
		return nil, err
	}

	return &Config{Server: server, AI: ai, Log: loadLogConfig()}, nil
}

// ServerConfig describes the HTTP listener.
type ServerConfig struct {
	Addr string
}

func loadServerConfig() (ServerConfig, error) {
	port := strings.TrimSpace(os.Getenv("PORT"))
	if port == "" {
		port = defaultPort
	}

	if strings.Contains(port, ":") {
		// Accept ":3000" or "127.0.0.1:3000" as-is.
		return ServerConfig{Addr: port}, nil
	}

	if strings.Contains(port, " ") {
		return ServerConfig{}, fmt.Errorf("invalid PORT value: %q", port)
	}

	return ServerConfig{Addr: ":" + port}, nil
}

// AIConfig describes the upstream completion service.
type AIConfig struct {
	Provider string
	APIKey   string
	Model    string
	BaseURL  string
	Region   string
}

// Enabled reports whether a credential and a model are present.
func (c AIConfig) Enabled() bool {
	return c.APIKey != "" && c.Model != ""
}

func loadAIConfig() (AIConfig, error) {
	provider := strings.ToLower(getEnvOrDefault("LLM_PROVIDER", ProviderGroq))

	switch provider {
	case ProviderGroq:
		return AIConfig{
			Provider: ProviderGroq,
			APIKey:   strings.TrimSpace(os.Getenv("GROQ_API_KEY")),
			Model:    getEnvOrDefault("GROQ_MODEL", defaultGroqModel),
			BaseURL:  strings.TrimRight(getEnvOrDefault("GROQ_BASE_URL", defaultGroqBaseURL), "/"),
		}, nil
	case ProviderArk:
		return AIConfig{
			Provider: ProviderArk,
			APIKey:   strings.TrimSpace(os.Getenv("ARK_API_KEY")),
			Model:    strings.TrimSpace(os.Getenv("Model")),
			BaseURL:  getEnvOrDefault("ARK_BASE_URL", defaultArkBaseURL),
			Region:   getEnvOrDefault("ARK_REGION", defaultArkRegion),
		}, nil
	default:
		return AIConfig{}, fmt.Errorf("invalid LLM_PROVIDER value %q: want %q or %q", provider, ProviderGroq, ProviderArk)
	}
}

// LogConfig selects the zap level and encoding.
type LogConfig struct {
	Level  string
	Format string
}

func loadLogConfig() LogConfig {
	return LogConfig{
		Level:  getEnvOrDefault("LOG_LEVEL", "info"),
		Format: getEnvOrDefault("LOG_FORMAT", "json"),
	}
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := strings.TrimSpace(os.Getenv(key)); value != "" {
		return value
	}
	return defaultValue
}
