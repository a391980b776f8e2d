package model

import "time"

// Config holds the complete vitae configuration
type Config struct {
	HTTP    HTTPConfig    `yaml:"http" json:"http"`
	Cache   CacheConfig   `yaml:"cache" json:"cache"`
	Extract ExtractConfig `yaml:"extract" json:"extract"`
	Report  ReportConfig  `yaml:"report" json:"report"`
	LLM     LLMConfig     `yaml:"llm" json:"llm"`
}

// HTTPConfig controls the page fetch
type HTTPConfig struct {
	Timeout       time.Duration `yaml:"timeout" json:"timeout"`
	UserAgent     string        `yaml:"user_agent" json:"user_agent"`
	MaxBodyBytes  int64         `yaml:"max_body_bytes" json:"max_body_bytes"`
	RespectRobots bool          `yaml:"respect_robots" json:"respect_robots"`
	RatePerSecond float64       `yaml:"rate_per_second" json:"rate_per_second"`
	RateBurst     int           `yaml:"rate_burst" json:"rate_burst"`
}

// CacheConfig controls the fetched-page cache
type CacheConfig struct {
	Enabled   bool          `yaml:"enabled" json:"enabled"`
	Dir       string        `yaml:"dir" json:"dir"` // Disk cache directory; empty means ~/.vitae/cache
	MemoryTTL time.Duration `yaml:"memory_ttl" json:"memory_ttl"`
	DiskTTL   time.Duration `yaml:"disk_ttl" json:"disk_ttl"`
}

// ExtractConfig identifies the data table and the composite column within it
type ExtractConfig struct {
	TableClass string `yaml:"table_class" json:"table_class"` // CSS class marking the data table
	Column     string `yaml:"column" json:"column"`           // Header text of the composite column
}

// ReportConfig controls derived output
type ReportConfig struct {
	Verbose       bool `yaml:"verbose" json:"verbose"`
	CurrentYear   int  `yaml:"current_year" json:"current_year"`     // 0 means use the wall-clock year
	SkipMalformed bool `yaml:"skip_malformed" json:"skip_malformed"` // Collect-and-skip instead of abort-on-first
	IncludeFooter bool `yaml:"include_footer" json:"include_footer"`
}

// LLMConfig controls the optional narrative generator
type LLMConfig struct {
	Provider  string        `yaml:"provider" json:"provider"` // "", "openai", "ollama"
	Model     string        `yaml:"model" json:"model"`
	APIKey    string        `yaml:"-" json:"-"` // Never serialized; environment only
	BaseURL   string        `yaml:"base_url" json:"base_url"`
	Timeout   time.Duration `yaml:"timeout" json:"timeout"`
	MaxTokens int           `yaml:"max_tokens" json:"max_tokens"`
}

// DefaultConfig returns the built-in defaults
func DefaultConfig() *Config {
	return &Config{
		HTTP: HTTPConfig{
			Timeout:       2 * time.Minute,
			UserAgent:     "Vitae/0.1 (lifespan scanner)",
			MaxBodyBytes:  4_000_000,
			RespectRobots: true,
			RatePerSecond: 1,
			RateBurst:     3,
		},
		Cache: CacheConfig{
			Enabled:   true,
			MemoryTTL: 15 * time.Minute,
			DiskTTL:   24 * time.Hour,
		},
		Extract: ExtractConfig{
			TableClass: "wikitable",
			Column:     "Name(Birth–Death)Constituency",
		},
		Report: ReportConfig{
			IncludeFooter: true,
		},
		LLM: LLMConfig{
			Model:     "gpt-4o-mini",
			Timeout:   60 * time.Second,
			MaxTokens: 600,
		},
	}
}
