package model

import "time"

// Config is the complete PressPilot configuration
type Config struct {
	HTTP        HTTPConfig        `yaml:"http"`
	Cache       CacheConfig       `yaml:"cache"`
	LLM         LLMConfig         `yaml:"llm"`
	Server      ServerConfig      `yaml:"server"`
	Concurrency ConcurrencyConfig `yaml:"concurrency"`
	Output      OutputConfig      `yaml:"output"`
}

// HTTPConfig controls outbound homepage fetches
type HTTPConfig struct {
	Timeout      time.Duration `yaml:"timeout"`
	UserAgent    string        `yaml:"user_agent"`
	MaxBodyBytes int64         `yaml:"max_body_bytes"`
	InsecureTLS  bool          `yaml:"insecure_tls"`
	HTTPProxy    string        `yaml:"http_proxy"`
	HTTPSProxy   string        `yaml:"https_proxy"`
	NoProxy      string        `yaml:"no_proxy"`
}

// CacheConfig controls the URL-keyed match-result cache
type CacheConfig struct {
	Enabled   bool          `yaml:"enabled"`
	Dir       string        `yaml:"dir"`
	MemoryTTL time.Duration `yaml:"memory_ttl"`
	DiskTTL   time.Duration `yaml:"disk_ttl"`
}

// LLMConfig selects and configures the matching provider
type LLMConfig struct {
	Provider  string `yaml:"provider"` // openai, anthropic, ollama
	Model     string `yaml:"model"`
	APIKey    string `yaml:"-"` // Never written to config files
	BaseURL   string `yaml:"base_url"`
	Timeout   int    `yaml:"timeout"` // seconds
	MaxTokens int    `yaml:"max_tokens"`
}

// ServerConfig controls the web server
type ServerConfig struct {
	Port       string        `yaml:"port"`
	SessionTTL time.Duration `yaml:"session_ttl"`
}

// ConcurrencyConfig controls batch processing
type ConcurrencyConfig struct {
	Workers       int     `yaml:"workers"`
	FetchRate     float64 `yaml:"fetch_rate"`  // homepage fetches per second per domain
	FetchBurst    int     `yaml:"fetch_burst"`
	MaxOutreach   int     `yaml:"max_outreach"` // drafts per CLI match run
}

// OutputConfig controls CLI output
type OutputConfig struct {
	Verbose bool `yaml:"verbose"`
}

// DefaultConfig returns sensible defaults
func DefaultConfig() *Config {
	return &Config{
		HTTP: HTTPConfig{
			Timeout:      30 * time.Second,
			UserAgent:    "PressPilot/0.1 (+https://github.com/presspilot/presspilot)",
			MaxBodyBytes: 2_000_000,
		},
		Cache: CacheConfig{
			Enabled:   true,
			Dir:       "",
			MemoryTTL: 30 * time.Minute,
			DiskTTL:   24 * time.Hour,
		},
		LLM: LLMConfig{
			Provider:  "", // Disabled by default
			Model:     "",
			Timeout:   60,
			MaxTokens: 4000,
		},
		Server: ServerConfig{
			Port:       ":4100",
			SessionTTL: time.Hour,
		},
		Concurrency: ConcurrencyConfig{
			Workers:     4,
			FetchRate:   1,
			FetchBurst:  2,
			MaxOutreach: 3,
		},
		Output: OutputConfig{},
	}
}
