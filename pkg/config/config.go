package config

import (
	"fmt"
	"net/url"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

//go:generate go run ../../cmd/schema/main.go schema.json

// Config holds the application configuration
type Config struct {
	LLM LLMConfig `yaml:"llm" json:"llm" jsonschema:"description=LLM configuration shared by all agents"`

	Feed FeedConfig `yaml:"feed" json:"feed" jsonschema:"description=Feed fetching configuration"`

	Curation CurationConfig `yaml:"curation" json:"curation" jsonschema:"description=Relevance curation configuration"`

	Writer WriterConfig `yaml:"writer" json:"writer" jsonschema:"description=Article writer configuration"`

	Script ScriptConfig `yaml:"script" json:"script" jsonschema:"description=Video script generator configuration"`

	Extraction ExtractionConfig `yaml:"extraction" json:"extraction" jsonschema:"description=Content extraction configuration"`

	Server struct {
		Listen  string        `yaml:"listen" json:"listen" jsonschema:"default=:8080,description=HTTP server listen address"`
		Timeout time.Duration `yaml:"timeout" json:"timeout" jsonschema:"default=30s,description=HTTP server timeout"`
	} `yaml:"server" json:"server" jsonschema:"description=Server configuration (newsdraft-server only)"`

	Database struct {
		DSN             string `yaml:"dsn" json:"dsn" jsonschema:"default=file:newsdraft.db?cache=shared&mode=rwc,description=Database connection string"`
		MaxOpenConns    int    `yaml:"max_open_conns" json:"max_open_conns" jsonschema:"default=10,description=Maximum number of open connections"`
		MaxIdleConns    int    `yaml:"max_idle_conns" json:"max_idle_conns" jsonschema:"default=5,description=Maximum number of idle connections"`
		ConnMaxLifetime int    `yaml:"conn_max_lifetime" json:"conn_max_lifetime" jsonschema:"default=3600,description=Connection maximum lifetime in seconds"`
	} `yaml:"database" json:"database" jsonschema:"description=Database configuration (newsdraft-server only)"`
}

// LLMConfig holds connection settings for the OpenAI-compatible endpoint
type LLMConfig struct {
	Endpoint    string        `yaml:"endpoint" json:"endpoint" jsonschema:"default=https://api.openai.com/v1,description=OpenAI-compatible API endpoint"`
	APIKey      string        `yaml:"api_key" json:"api_key" jsonschema:"description=API key (can use environment variable)"`
	Model       string        `yaml:"model" json:"model" jsonschema:"required,description=Model name (e.g. gpt-4o-mini or llama3)"`
	Temperature float64       `yaml:"temperature" json:"temperature" jsonschema:"default=0.3,description=Temperature for response generation"`
	MaxTokens   int           `yaml:"max_tokens" json:"max_tokens" jsonschema:"default=4096,description=Maximum tokens in response"`
	Timeout     time.Duration `yaml:"timeout" json:"timeout" jsonschema:"default=120s,description=Request timeout"`
	JSONMode    bool          `yaml:"json_mode" json:"json_mode" jsonschema:"default=false,description=Use JSON response format (not all models support this)"`
}

// FeedConfig holds feed fetching settings
type FeedConfig struct {
	Timeout    time.Duration `yaml:"timeout" json:"timeout" jsonschema:"default=30s,description=Feed fetch timeout"`
	MaxEntries int           `yaml:"max_entries" json:"max_entries" jsonschema:"default=10,description=Maximum entries taken from a feed (0 for unlimited)"`
	UserAgent  string        `yaml:"user_agent" json:"user_agent" jsonschema:"default=newsdraft/1.0,description=User agent for feed requests"`
}

// CurationConfig holds relevance curation settings
type CurationConfig struct {
	MaxSelected int    `yaml:"max_selected" json:"max_selected" jsonschema:"default=5,minimum=1,description=Maximum number of entries the curator may select"`
	Prompt      string `yaml:"prompt" json:"prompt" jsonschema:"description=System prompt override for the curator (optional)"`
}

// WriterConfig holds article writer settings
type WriterConfig struct {
	Prompt         string `yaml:"prompt" json:"prompt" jsonschema:"description=System prompt override for the article writer (optional)"`
	MaxSourceChars int    `yaml:"max_source_chars" json:"max_source_chars" jsonschema:"default=8000,description=Maximum characters per source fed to the writer prompt"`
}

// ScriptConfig holds video script generator settings
type ScriptConfig struct {
	Prompt      string `yaml:"prompt" json:"prompt" jsonschema:"description=System prompt override for the script writer (optional)"`
	CoderPrompt string `yaml:"coder_prompt" json:"coder_prompt" jsonschema:"description=System prompt override for the visualization coder (optional)"`
	MaxScenes   int    `yaml:"max_scenes" json:"max_scenes" jsonschema:"default=6,description=Maximum number of visualization scenes to generate"`
	MaxWorkers  int    `yaml:"max_workers" json:"max_workers" jsonschema:"default=3,description=Maximum concurrent scene code generations"`
}

// ExtractionConfig holds content extraction settings
type ExtractionConfig struct {
	Timeout       time.Duration `yaml:"timeout" json:"timeout" jsonschema:"default=30s,description=Extraction timeout per article"`
	UserAgent     string        `yaml:"user_agent" json:"user_agent" jsonschema:"default=newsdraft/1.0,description=User agent for HTTP requests"`
	MinTextLength int           `yaml:"min_text_length" json:"min_text_length" jsonschema:"default=100,description=Minimum text length to consider valid"`
	MaxTextLength int           `yaml:"max_text_length" json:"max_text_length" jsonschema:"default=50000,description=Maximum text length before truncation"`
	Proxy         string        `yaml:"proxy" json:"proxy" jsonschema:"description=Proxy URL for page fetches (empty honors HTTP_PROXY/HTTPS_PROXY)"`
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

	setDefaults(&cfg)

	// validate configuration
	if err := validate(&cfg); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}

	// verify against embedded schema
	if err := VerifyAgainstEmbeddedSchema(&cfg); err != nil {
		// log warning but don't fail - schema validation is supplementary
		fmt.Printf("warning: schema validation failed: %v\n", err)
	}

	return &cfg, nil
}

// setDefaults fills zero values with defaults
func setDefaults(cfg *Config) {
	// llm defaults
	if cfg.LLM.Endpoint == "" {
		cfg.LLM.Endpoint = "https://api.openai.com/v1"
	}
	if cfg.LLM.Temperature == 0 {
		cfg.LLM.Temperature = 0.3
	}
	if cfg.LLM.MaxTokens == 0 {
		cfg.LLM.MaxTokens = 4096
	}
	if cfg.LLM.Timeout == 0 {
		cfg.LLM.Timeout = 120 * time.Second
	}

	// feed defaults
	if cfg.Feed.Timeout == 0 {
		cfg.Feed.Timeout = 30 * time.Second
	}
	if cfg.Feed.MaxEntries == 0 {
		cfg.Feed.MaxEntries = 10
	}
	if cfg.Feed.UserAgent == "" {
		cfg.Feed.UserAgent = "newsdraft/1.0"
	}

	// curation defaults
	if cfg.Curation.MaxSelected == 0 {
		cfg.Curation.MaxSelected = 5
	}

	// writer defaults
	if cfg.Writer.MaxSourceChars == 0 {
		cfg.Writer.MaxSourceChars = 8000
	}

	// script defaults
	if cfg.Script.MaxScenes == 0 {
		cfg.Script.MaxScenes = 6
	}
	if cfg.Script.MaxWorkers == 0 {
		cfg.Script.MaxWorkers = 3
	}

	// extraction defaults
	if cfg.Extraction.Timeout == 0 {
		cfg.Extraction.Timeout = 30 * time.Second
	}
	if cfg.Extraction.UserAgent == "" {
		cfg.Extraction.UserAgent = "newsdraft/1.0"
	}
	if cfg.Extraction.MinTextLength == 0 {
		cfg.Extraction.MinTextLength = 100
	}
	if cfg.Extraction.MaxTextLength == 0 {
		cfg.Extraction.MaxTextLength = 50000
	}

	// server defaults
	if cfg.Server.Listen == "" {
		cfg.Server.Listen = ":8080"
	}
	if cfg.Server.Timeout == 0 {
		cfg.Server.Timeout = 30 * time.Second
	}

	// database defaults
	if cfg.Database.DSN == "" {
		cfg.Database.DSN = "file:newsdraft.db?cache=shared&mode=rwc&_txlock=immediate"
	}
	if cfg.Database.MaxOpenConns == 0 {
		cfg.Database.MaxOpenConns = 10
	}
	if cfg.Database.MaxIdleConns == 0 {
		cfg.Database.MaxIdleConns = 5
	}
	if cfg.Database.ConnMaxLifetime == 0 {
		cfg.Database.ConnMaxLifetime = 3600
	}
}

// validate checks configuration for correctness
func validate(cfg *Config) error {

	// validate LLM config
	if cfg.LLM.Model == "" {
		return fmt.Errorf("llm.model is required")
	}
	if cfg.LLM.Temperature < 0 || cfg.LLM.Temperature > 2 {
		return fmt.Errorf("llm.temperature must be between 0 and 2")
	}
	if cfg.LLM.Timeout < time.Second {
		return fmt.Errorf("llm.timeout must be at least 1 second")
	}

	// validate curation config
	if cfg.Curation.MaxSelected < 1 {
		return fmt.Errorf("curation.max_selected must be at least 1")
	}

	// validate script config
	if cfg.Script.MaxScenes < 1 {
		return fmt.Errorf("script.max_scenes must be at least 1")
	}
	if cfg.Script.MaxWorkers < 1 {
		return fmt.Errorf("script.max_workers must be at least 1")
	}

	// validate extraction config
	if cfg.Extraction.Timeout < time.Second {
		return fmt.Errorf("extraction.timeout must be at least 1 second")
	}
	if cfg.Extraction.MinTextLength < 0 {
		return fmt.Errorf("extraction.min_text_length must be non-negative")
	}
	if cfg.Extraction.MaxTextLength > 0 && cfg.Extraction.MaxTextLength < cfg.Extraction.MinTextLength {
		return fmt.Errorf("extraction.max_text_length must not be less than min_text_length")
	}
	if cfg.Extraction.Proxy != "" {
		if _, err := url.Parse(cfg.Extraction.Proxy); err != nil {
			return fmt.Errorf("extraction.proxy is not a valid URL: %w", err)
		}
	}

	// validate server config
	if cfg.Server.Timeout < time.Second {
		return fmt.Errorf("server.timeout must be at least 1 second")
	}

	return nil
}

// GetLLMConfig returns LLM configuration
func (c *Config) GetLLMConfig() LLMConfig {
	return c.LLM
}

// GetFeedConfig returns feed fetching configuration
func (c *Config) GetFeedConfig() FeedConfig {
	return c.Feed
}

// GetCurationConfig returns curation configuration
func (c *Config) GetCurationConfig() CurationConfig {
	return c.Curation
}

// GetWriterConfig returns article writer configuration
func (c *Config) GetWriterConfig() WriterConfig {
	return c.Writer
}

// GetScriptConfig returns video script configuration
func (c *Config) GetScriptConfig() ScriptConfig {
	return c.Script
}

// GetExtractionConfig returns content extraction configuration
func (c *Config) GetExtractionConfig() ExtractionConfig {
	return c.Extraction
}

// GetServerConfig returns server configuration
func (c *Config) GetServerConfig() (listen string, timeout time.Duration) {
	return c.Server.Listen, c.Server.Timeout
}
