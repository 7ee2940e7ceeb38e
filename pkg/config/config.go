package config

import (
	"fmt"
	"os"
	"time"

	"github.com/go-pkgz/lgr"
	"gopkg.in/yaml.v3"

	"github.com/umputun/newsdigest/pkg/domain"
)

//go:generate go run ../../cmd/schema/main.go schema.json

// Config holds the application configuration
type Config struct {
	Server struct {
		Listen  string        `yaml:"listen" json:"listen" jsonschema:"default=:8080,description=HTTP server listen address"`
		Timeout time.Duration `yaml:"timeout" json:"timeout" jsonschema:"default=30s,description=HTTP server timeout"`
		BaseURL string        `yaml:"base_url" json:"base_url" jsonschema:"default=http://localhost:8080,description=Base URL for RSS feeds and links"`
	} `yaml:"server" json:"server" jsonschema:"description=Server configuration"`

	Database struct {
		DSN             string `yaml:"dsn" json:"dsn" jsonschema:"default=file:newsdigest.db?cache=shared&mode=rwc,description=Database connection string"`
		MaxOpenConns    int    `yaml:"max_open_conns" json:"max_open_conns" jsonschema:"default=10,description=Maximum number of open connections"`
		MaxIdleConns    int    `yaml:"max_idle_conns" json:"max_idle_conns" jsonschema:"default=5,description=Maximum number of idle connections"`
		ConnMaxLifetime int    `yaml:"conn_max_lifetime" json:"conn_max_lifetime" jsonschema:"default=3600,description=Connection maximum lifetime in seconds"`
	} `yaml:"database" json:"database" jsonschema:"description=Database configuration"`

	Fetch FetchConfig `yaml:"fetch" json:"fetch" jsonschema:"description=Feed fetching configuration"`

	LLM LLMConfig `yaml:"llm" json:"llm" jsonschema:"description=LLM configuration for digest curation"`

	Archive ArchiveConfig `yaml:"archive" json:"archive" jsonschema:"description=Paywall detection and archive links"`

	Digest DigestConfig `yaml:"digest" json:"digest" jsonschema:"description=Digest generation settings"`

	Schedule ScheduleConfig `yaml:"schedule" json:"schedule" jsonschema:"description=Scheduler configuration"`

	Papers PapersConfig `yaml:"papers" json:"papers" jsonschema:"description=Anonymous paper store"`

	Extraction ExtractionConfig `yaml:"extraction" json:"extraction" jsonschema:"description=Content extraction configuration"`

	Sources map[string][]domain.Source `yaml:"sources" json:"sources,omitempty" jsonschema:"description=News sources per category, replaces the built-in list"`
}

// FetchConfig holds feed retrieval settings
type FetchConfig struct {
	Timeout   time.Duration `yaml:"timeout" json:"timeout" jsonschema:"default=10s,description=Per-feed fetch timeout"`
	UserAgent string        `yaml:"user_agent" json:"user_agent" jsonschema:"default=Mozilla/5.0 (compatible; NewsDigest/1.0),description=User agent for feed requests"`
}

// LLMConfig holds LLM configuration for digest curation
type LLMConfig struct {
	Endpoint      string        `yaml:"endpoint" json:"endpoint" jsonschema:"required,description=OpenAI-compatible API endpoint"`
	APIKey        string        `yaml:"api_key" json:"api_key" jsonschema:"description=API key (can use environment variable)"`
	Model         string        `yaml:"model" json:"model" jsonschema:"required,description=Model name (e.g. gpt-4o or llama3)"`
	Temperature   float64       `yaml:"temperature" json:"temperature" jsonschema:"default=0.3,description=Temperature for response generation"`
	MaxTokens     int           `yaml:"max_tokens" json:"max_tokens" jsonschema:"default=4096,description=Maximum tokens in response"`
	Timeout       time.Duration `yaml:"timeout" json:"timeout" jsonschema:"default=2m,description=Curation request timeout"`
	SystemPrompt  string        `yaml:"system_prompt" json:"system_prompt" jsonschema:"description=System prompt for the LLM (optional)"`
	MaxCandidates int           `yaml:"max_candidates" json:"max_candidates" jsonschema:"default=80,minimum=1,description=Number of top ranked articles offered for curation"`
	UseJSONSchema bool          `yaml:"use_json_schema" json:"use_json_schema" jsonschema:"default=false,description=Request structured output with a JSON schema (not all models support this)"`
}

// ArchiveConfig holds paywall detection settings
type ArchiveConfig struct {
	BaseURL string   `yaml:"base_url" json:"base_url" jsonschema:"default=https://archive.today/newest,description=Archive service prefix, original link is appended"`
	Domains []string `yaml:"domains" json:"domains,omitempty" jsonschema:"description=Paywalled domains, replaces the built-in list"`
}

// DigestConfig holds digest generation settings
type DigestConfig struct {
	Title               string        `yaml:"title" json:"title" jsonschema:"default=The TebPaper,description=Digest masthead title"`
	DefaultLeaning      string        `yaml:"default_leaning" json:"default_leaning" jsonschema:"default=centre,enum=left,enum=centre-left,enum=centre,enum=centre-right,enum=right,description=Leaning for new profiles"`
	DefaultFrequency    string        `yaml:"default_frequency" json:"default_frequency" jsonschema:"default=weekly,enum=daily,enum=weekly,description=Frequency for new profiles"`
	StuckAfter          time.Duration `yaml:"stuck_after" json:"stuck_after" jsonschema:"default=30m,description=Age after which a generating digest is considered stuck"`
	CompensationTimeout time.Duration `yaml:"compensation_timeout" json:"compensation_timeout" jsonschema:"default=10s,description=Timeout for marking a digest failed"`
	KeepFailed          time.Duration `yaml:"keep_failed" json:"keep_failed" jsonschema:"default=720h,description=Failed digests are removed after this long (at least 168h)"`
}

// ScheduleConfig holds scheduler settings
type ScheduleConfig struct {
	Enabled    bool   `yaml:"enabled" json:"enabled" jsonschema:"default=false,description=Generate digests for due profiles in the background"`
	Generate   string `yaml:"generate" json:"generate" jsonschema:"default=@hourly,description=Cron spec for the generation job"`
	Reconcile  string `yaml:"reconcile" json:"reconcile" jsonschema:"default=@every 10m,description=Cron spec for failing stuck digests"`
	MaxWorkers int    `yaml:"max_workers" json:"max_workers" jsonschema:"default=2,description=Maximum concurrent digest generations"`
}

// PapersConfig holds the anonymous paper store settings
type PapersConfig struct {
	MaxEntries int           `yaml:"max_entries" json:"max_entries" jsonschema:"default=100,minimum=1,description=Maximum number of papers kept in memory"`
	TTL        time.Duration `yaml:"ttl" json:"ttl" jsonschema:"default=24h,description=How long a paper is kept"`
}

// ExtractionConfig holds content extraction settings
type ExtractionConfig struct {
	Enabled       bool          `yaml:"enabled" json:"enabled" jsonschema:"default=false,description=Extract text for candidates without a summary"`
	Timeout       time.Duration `yaml:"timeout" json:"timeout" jsonschema:"default=30s,description=Extraction timeout per article"`
	MaxConcurrent int           `yaml:"max_concurrent" json:"max_concurrent" jsonschema:"default=5,description=Maximum concurrent extractions"`
	UserAgent     string        `yaml:"user_agent" json:"user_agent" jsonschema:"default=NewsDigest/1.0,description=User agent for HTTP requests"`
	MinTextLength int           `yaml:"min_text_length" json:"min_text_length" jsonschema:"default=100,description=Minimum text length to consider valid"`
	MaxLength     int           `yaml:"max_length" json:"max_length" jsonschema:"default=600,description=Extracted text is truncated to this many characters"`
}

// Load reads configuration from a YAML file
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path) //nolint:gosec // file path comes from CLI flag
	if err != nil {
		return nil, fmt.Errorf("read config file: %w", err)
	}

	// expand environment variables
	expanded := os.ExpandEnv(string(data))

	var cfg Config
	if err := yaml.Unmarshal([]byte(expanded), &cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	cfg.setDefaults()

	if err := validate(&cfg); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}

	// schema validation is supplementary
	if err := VerifyAgainstEmbeddedSchema(&cfg); err != nil {
		lgr.Printf("[WARN] schema validation failed: %v", err)
	}

	return &cfg, nil
}

func (c *Config) setDefaults() {
	if c.Server.Listen == "" {
		c.Server.Listen = ":8080"
	}
	if c.Server.Timeout == 0 {
		c.Server.Timeout = 30 * time.Second
	}
	if c.Server.BaseURL == "" {
		c.Server.BaseURL = "http://localhost:8080"
	}

	if c.Database.DSN == "" {
		c.Database.DSN = "file:newsdigest.db?cache=shared&mode=rwc&_txlock=immediate&_time_format=sqlite"
	}
	if c.Database.MaxOpenConns == 0 {
		c.Database.MaxOpenConns = 10
	}
	if c.Database.MaxIdleConns == 0 {
		c.Database.MaxIdleConns = 5
	}
	if c.Database.ConnMaxLifetime == 0 {
		c.Database.ConnMaxLifetime = 3600
	}

	if c.Fetch.Timeout == 0 {
		c.Fetch.Timeout = 10 * time.Second
	}
	if c.Fetch.UserAgent == "" {
		c.Fetch.UserAgent = "Mozilla/5.0 (compatible; NewsDigest/1.0)"
	}

	if c.LLM.Temperature == 0 {
		c.LLM.Temperature = 0.3
	}
	if c.LLM.MaxTokens == 0 {
		c.LLM.MaxTokens = 4096
	}
	if c.LLM.Timeout == 0 {
		c.LLM.Timeout = 2 * time.Minute
	}
	if c.LLM.MaxCandidates == 0 {
		c.LLM.MaxCandidates = 80
	}

	if c.Archive.BaseURL == "" {
		c.Archive.BaseURL = "https://archive.today/newest"
	}

	if c.Digest.Title == "" {
		c.Digest.Title = "The TebPaper"
	}
	if c.Digest.DefaultLeaning == "" {
		c.Digest.DefaultLeaning = string(domain.LeaningCentre)
	}
	if c.Digest.DefaultFrequency == "" {
		c.Digest.DefaultFrequency = string(domain.FrequencyWeekly)
	}
	if c.Digest.StuckAfter == 0 {
		c.Digest.StuckAfter = 30 * time.Minute
	}
	if c.Digest.CompensationTimeout == 0 {
		c.Digest.CompensationTimeout = 10 * time.Second
	}
	if c.Digest.KeepFailed == 0 {
		c.Digest.KeepFailed = 30 * 24 * time.Hour
	}

	if c.Schedule.Generate == "" {
		c.Schedule.Generate = "@hourly"
	}
	if c.Schedule.Reconcile == "" {
		c.Schedule.Reconcile = "@every 10m"
	}
	if c.Schedule.MaxWorkers == 0 {
		c.Schedule.MaxWorkers = 2
	}

	if c.Papers.MaxEntries == 0 {
		c.Papers.MaxEntries = 100
	}
	if c.Papers.TTL == 0 {
		c.Papers.TTL = 24 * time.Hour
	}

	if c.Extraction.Timeout == 0 {
		c.Extraction.Timeout = 30 * time.Second
	}
	if c.Extraction.MaxConcurrent == 0 {
		c.Extraction.MaxConcurrent = 5
	}
	if c.Extraction.UserAgent == "" {
		c.Extraction.UserAgent = "NewsDigest/1.0"
	}
	if c.Extraction.MinTextLength == 0 {
		c.Extraction.MinTextLength = 100
	}
	if c.Extraction.MaxLength == 0 {
		c.Extraction.MaxLength = 600
	}
}

// validate checks configuration for correctness
func validate(cfg *Config) error {
	if cfg.LLM.Endpoint == "" {
		return fmt.Errorf("llm.endpoint is required")
	}
	if cfg.LLM.Model == "" {
		return fmt.Errorf("llm.model is required")
	}
	if cfg.LLM.Temperature < 0 || cfg.LLM.Temperature > 2 {
		return fmt.Errorf("llm.temperature must be between 0 and 2")
	}
	if cfg.LLM.MaxCandidates < 1 {
		return fmt.Errorf("llm.max_candidates must be at least 1")
	}

	if !domain.Leaning(cfg.Digest.DefaultLeaning).Valid() {
		return fmt.Errorf("digest.default_leaning %q is not a known leaning", cfg.Digest.DefaultLeaning)
	}
	if f := domain.Frequency(cfg.Digest.DefaultFrequency); f != domain.FrequencyDaily && f != domain.FrequencyWeekly {
		return fmt.Errorf("digest.default_frequency must be daily or weekly")
	}
	if cfg.Digest.KeepFailed < domain.FrequencyWeekly.Period() {
		return fmt.Errorf("digest.keep_failed must be at least %s", domain.FrequencyWeekly.Period())
	}

	for cat, sources := range cfg.Sources {
		for i, src := range sources {
			if src.URL == "" {
				return fmt.Errorf("sources.%s[%d]: url is required", cat, i)
			}
			if !src.Leaning.Valid() {
				return fmt.Errorf("sources.%s[%d]: unknown leaning %q", cat, i, src.Leaning)
			}
		}
	}

	if cfg.Papers.MaxEntries < 1 {
		return fmt.Errorf("papers.max_entries must be at least 1")
	}

	if cfg.Extraction.Enabled {
		if cfg.Extraction.Timeout < time.Second {
			return fmt.Errorf("extraction timeout must be at least 1 second")
		}
		if cfg.Extraction.MinTextLength < 0 {
			return fmt.Errorf("extraction min_text_length must be non-negative")
		}
	}

	if cfg.Server.Timeout < time.Second {
		return fmt.Errorf("server timeout must be at least 1 second")
	}

	return nil
}

// GetServerConfig returns server configuration
func (c *Config) GetServerConfig() (listen string, timeout time.Duration) {
	return c.Server.Listen, c.Server.Timeout
}

// GetBaseURL returns the public base URL used in RSS links
func (c *Config) GetBaseURL() string {
	return c.Server.BaseURL
}
