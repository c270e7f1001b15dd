package config

import (
	"fmt"
	"os"
	"regexp"
	"strings"

	"gopkg.in/yaml.v3"
)

const (
	DefaultAPI               = "gemini"
	DefaultModel             = "gemini-2.5-flash"
	DefaultMaxToolsPerServer = 10
	DefaultMinConfidence     = 0.8
)

type Config struct {
	Provider ProviderConfig `yaml:"provider"`
	Suggest  SuggestConfig  `yaml:"suggest"`
	Analysis AnalysisConfig `yaml:"analysis"`
}

type ProviderConfig struct {
	API     string `yaml:"api"`
	BaseURL string `yaml:"base_url"`
	APIKey  string `yaml:"api_key"`
	Model   string `yaml:"model"`
}

type SuggestConfig struct {
	// MaxToolsPerServer caps how many tools per MCP server are listed in
	// the suggestion prompt. Zero means unset and is floored to
	// DefaultMaxToolsPerServer; the cap cannot be disabled.
	MaxToolsPerServer int `yaml:"max_tools_per_server"`
}

type AnalysisConfig struct {
	// MinConfidence is the threshold below which detected workflows are
	// discarded. Zero means unset and is floored to DefaultMinConfidence;
	// to keep every workflow set a small positive value instead.
	MinConfidence float64 `yaml:"min_confidence"`
}

// ResolvedAPIKey returns the credential after env expansion, or "" when the
// referenced environment variable was never set.
func (p ProviderConfig) ResolvedAPIKey() string {
	if strings.Contains(p.APIKey, "${") {
		return ""
	}
	return p.APIKey
}

var envPattern = regexp.MustCompile(`\$\{([^}]+)}`)

func expandEnv(s string) string {
	return envPattern.ReplaceAllStringFunc(s, func(match string) string {
		varName := envPattern.FindStringSubmatch(match)[1]
		if val, ok := os.LookupEnv(varName); ok {
			return val
		}
		return match
	})
}

// Default returns the configuration used when no config file is supplied:
// the Gemini generateContent API with the credential taken from GEMINI_API_KEY.
func Default() *Config {
	return &Config{
		Provider: ProviderConfig{
			API:    DefaultAPI,
			APIKey: os.Getenv("GEMINI_API_KEY"),
			Model:  DefaultModel,
		},
		Suggest: SuggestConfig{
			MaxToolsPerServer: DefaultMaxToolsPerServer,
		},
		Analysis: AnalysisConfig{
			MinConfidence: DefaultMinConfidence,
		},
	}
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config %s: %w", path, err)
	}
	return Parse(data)
}

func Parse(data []byte) (*Config, error) {
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	cfg.Provider.BaseURL = expandEnv(cfg.Provider.BaseURL)
	cfg.Provider.APIKey = expandEnv(cfg.Provider.APIKey)
	applyDefaults(&cfg)
	return &cfg, nil
}

func applyDefaults(cfg *Config) {
	if cfg.Provider.API == "" {
		cfg.Provider.API = DefaultAPI
	}
	if cfg.Provider.APIKey == "" {
		cfg.Provider.APIKey = os.Getenv("GEMINI_API_KEY")
	}
	if cfg.Provider.Model == "" {
		cfg.Provider.Model = DefaultModel
	}
	if cfg.Suggest.MaxToolsPerServer == 0 {
		cfg.Suggest.MaxToolsPerServer = DefaultMaxToolsPerServer
	}
	if cfg.Analysis.MinConfidence == 0 {
		cfg.Analysis.MinConfidence = DefaultMinConfidence
	}
}
