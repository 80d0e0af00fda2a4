package model

import "time"

// Config is the full claimsift configuration
type Config struct {
	Server      ServerConfig      `yaml:"server"`
	HTTP        HTTPConfig        `yaml:"http"`
	Classifier  ClassifierConfig  `yaml:"classifier"`
	FactCheck   FactCheckConfig   `yaml:"factcheck"`
	Checkworthy CheckworthyConfig `yaml:"checkworthy"`
	Cache       CacheConfig       `yaml:"cache"`
	Concurrency ConcurrencyConfig `yaml:"concurrency"`
	Output      OutputConfig      `yaml:"output"`
}

// ServerConfig configures the HTTP API
type ServerConfig struct {
	Addr              string   `yaml:"addr"`
	RequestsPerMinute int      `yaml:"requests_per_minute"` // per-client ceiling on /analyze
	AllowedOrigins    []string `yaml:"allowed_origins"`
}

// HTTPConfig configures outbound HTTP behavior (providers and fetch)
type HTTPConfig struct {
	Timeout      time.Duration `yaml:"timeout"`
	UserAgent    string        `yaml:"user_agent"`
	MaxBodyBytes int64         `yaml:"max_body_bytes"`
}

// ClassifierConfig configures the zero-shot classification backend
type ClassifierConfig struct {
	Backend string `yaml:"backend"` // "huggingface" or "openai"
	Model   string `yaml:"model"`
	APIKey  string `yaml:"-"` // from env, never written to config files
	BaseURL string `yaml:"base_url"`
	Timeout int    `yaml:"timeout"` // seconds
}

// FactCheckConfig configures the fact-check claim search provider
type FactCheckConfig struct {
	APIKey  string `yaml:"-"`
	BaseURL string `yaml:"base_url"`
}

// CheckworthyConfig configures the claim-checkworthiness scorer
type CheckworthyConfig struct {
	APIKey  string `yaml:"-"`
	BaseURL string `yaml:"base_url"`
}

// CacheConfig configures fetched-content caching
type CacheConfig struct {
	Enabled bool          `yaml:"enabled"`
	TTL     time.Duration `yaml:"ttl"`
}

// ConcurrencyConfig configures batch processing
type ConcurrencyConfig struct {
	Workers int `yaml:"workers"`
}

// OutputConfig configures CLI output
type OutputConfig struct {
	Verbose bool `yaml:"verbose"`
}

// DefaultConfig returns the standard claimsift defaults
func DefaultConfig() *Config {
	return &Config{
		Server: ServerConfig{
			Addr:              ":8080",
			RequestsPerMinute: 10,
			AllowedOrigins:    []string{"*"},
		},
		HTTP: HTTPConfig{
			Timeout:      30 * time.Second,
			UserAgent:    "Claimsift/0.1 (+https://github.com/claimsift/claimsift)",
			MaxBodyBytes: 2_000_000,
		},
		Classifier: ClassifierConfig{
			Backend: "huggingface",
			Model:   "facebook/bart-large-mnli",
			Timeout: 30,
		},
		FactCheck: FactCheckConfig{
			BaseURL: "https://factchecktools.googleapis.com/v1alpha1",
		},
		Checkworthy: CheckworthyConfig{
			BaseURL: "https://idir.uta.edu/claimbuster/api/v2",
		},
		Cache: CacheConfig{
			Enabled: true,
			TTL:     15 * time.Minute,
		},
		Concurrency: ConcurrencyConfig{
			Workers: 4,
		},
		Output: OutputConfig{
			Verbose: false,
		},
	}
}
