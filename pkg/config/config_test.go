package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	t.Run("valid config", func(t *testing.T) {
		configContent := `
llm:
  endpoint: http://localhost:11434/v1
  api_key: test-key
  model: llama3
  temperature: 0.7
  max_tokens: 2048
  timeout: 60s

feed:
  timeout: 15s
  max_entries: 20

curation:
  max_selected: 3

script:
  max_scenes: 4
  max_workers: 2
`
		tmpDir := t.TempDir()
		configPath := filepath.Join(tmpDir, "test-config.yml")
		err := os.WriteFile(configPath, []byte(configContent), 0o644)
		require.NoError(t, err)

		cfg, err := Load(configPath)
		require.NoError(t, err)
		require.NotNil(t, cfg)

		assert.Equal(t, "http://localhost:11434/v1", cfg.LLM.Endpoint)
		assert.Equal(t, "test-key", cfg.LLM.APIKey)
		assert.Equal(t, "llama3", cfg.LLM.Model)
		assert.InDelta(t, 0.7, cfg.LLM.Temperature, 0.001)
		assert.Equal(t, 2048, cfg.LLM.MaxTokens)
		assert.Equal(t, 60*time.Second, cfg.LLM.Timeout)

		assert.Equal(t, 15*time.Second, cfg.Feed.Timeout)
		assert.Equal(t, 20, cfg.Feed.MaxEntries)

		assert.Equal(t, 3, cfg.Curation.MaxSelected)
		assert.Equal(t, 4, cfg.Script.MaxScenes)
		assert.Equal(t, 2, cfg.Script.MaxWorkers)
	})

	t.Run("defaults", func(t *testing.T) {
		configContent := `
llm:
  model: gpt-4o-mini
`
		tmpDir := t.TempDir()
		configPath := filepath.Join(tmpDir, "test-config.yml")
		err := os.WriteFile(configPath, []byte(configContent), 0o644)
		require.NoError(t, err)

		cfg, err := Load(configPath)
		require.NoError(t, err)
		require.NotNil(t, cfg)

		// check llm defaults
		assert.Equal(t, "https://api.openai.com/v1", cfg.LLM.Endpoint)
		assert.InDelta(t, 0.3, cfg.LLM.Temperature, 0.001)
		assert.Equal(t, 4096, cfg.LLM.MaxTokens)
		assert.Equal(t, 120*time.Second, cfg.LLM.Timeout)
		assert.False(t, cfg.LLM.JSONMode)

		// check feed defaults
		assert.Equal(t, 30*time.Second, cfg.Feed.Timeout)
		assert.Equal(t, 10, cfg.Feed.MaxEntries)
		assert.Equal(t, "newsdraft/1.0", cfg.Feed.UserAgent)

		// check pipeline defaults
		assert.Equal(t, 5, cfg.Curation.MaxSelected)
		assert.Equal(t, 8000, cfg.Writer.MaxSourceChars)
		assert.Equal(t, 6, cfg.Script.MaxScenes)
		assert.Equal(t, 3, cfg.Script.MaxWorkers)

		// check extraction defaults
		assert.Equal(t, 30*time.Second, cfg.Extraction.Timeout)
		assert.Equal(t, 100, cfg.Extraction.MinTextLength)
		assert.Equal(t, 50000, cfg.Extraction.MaxTextLength)
		assert.Empty(t, cfg.Extraction.Proxy)

		// check server defaults
		assert.Equal(t, ":8080", cfg.Server.Listen)
		assert.Equal(t, 30*time.Second, cfg.Server.Timeout)

		// check database defaults
		assert.Equal(t, "file:newsdraft.db?cache=shared&mode=rwc&_txlock=immediate", cfg.Database.DSN)
		assert.Equal(t, 10, cfg.Database.MaxOpenConns)
		assert.Equal(t, 5, cfg.Database.MaxIdleConns)
		assert.Equal(t, 3600, cfg.Database.ConnMaxLifetime)
	})

	t.Run("environment variable expansion", func(t *testing.T) {
		t.Setenv("TEST_NEWSDRAFT_KEY", "secret-from-env")
		configContent := `
llm:
  model: gpt-4o-mini
  api_key: ${TEST_NEWSDRAFT_KEY}
`
		tmpDir := t.TempDir()
		configPath := filepath.Join(tmpDir, "test-config.yml")
		err := os.WriteFile(configPath, []byte(configContent), 0o644)
		require.NoError(t, err)

		cfg, err := Load(configPath)
		require.NoError(t, err)
		assert.Equal(t, "secret-from-env", cfg.LLM.APIKey)
	})

	t.Run("file not found", func(t *testing.T) {
		cfg, err := Load("/non/existent/file.yml")
		require.Error(t, err)
		assert.Nil(t, cfg)
		assert.Contains(t, err.Error(), "read config file")
	})

	t.Run("invalid yaml", func(t *testing.T) {
		configContent := `
invalid yaml content
  with bad indentation
    and no structure
`
		tmpDir := t.TempDir()
		configPath := filepath.Join(tmpDir, "invalid.yml")
		err := os.WriteFile(configPath, []byte(configContent), 0o644)
		require.NoError(t, err)

		cfg, err := Load(configPath)
		require.Error(t, err)
		assert.Nil(t, cfg)
		assert.Contains(t, err.Error(), "parse config")
	})

	t.Run("missing model", func(t *testing.T) {
		configContent := `
llm:
  endpoint: http://localhost:11434/v1
`
		tmpDir := t.TempDir()
		configPath := filepath.Join(tmpDir, "no-model.yml")
		err := os.WriteFile(configPath, []byte(configContent), 0o644)
		require.NoError(t, err)

		cfg, err := Load(configPath)
		require.Error(t, err)
		assert.Nil(t, cfg)
		assert.Contains(t, err.Error(), "llm.model is required")
	})
}

func TestValidate(t *testing.T) {
	makeValid := func() *Config {
		cfg := &Config{}
		cfg.LLM.Model = "test-model"
		setDefaults(cfg)
		return cfg
	}

	tests := []struct {
		name   string
		modify func(cfg *Config)
		errMsg string
	}{
		{
			name:   "valid config passes",
			modify: func(cfg *Config) {},
		},
		{
			name:   "temperature too high",
			modify: func(cfg *Config) { cfg.LLM.Temperature = 2.5 },
			errMsg: "llm.temperature must be between 0 and 2",
		},
		{
			name:   "llm timeout too short",
			modify: func(cfg *Config) { cfg.LLM.Timeout = 500 * time.Millisecond },
			errMsg: "llm.timeout must be at least 1 second",
		},
		{
			name:   "max_selected zero",
			modify: func(cfg *Config) { cfg.Curation.MaxSelected = -1 },
			errMsg: "curation.max_selected must be at least 1",
		},
		{
			name:   "max_scenes negative",
			modify: func(cfg *Config) { cfg.Script.MaxScenes = -2 },
			errMsg: "script.max_scenes must be at least 1",
		},
		{
			name:   "max_workers negative",
			modify: func(cfg *Config) { cfg.Script.MaxWorkers = -1 },
			errMsg: "script.max_workers must be at least 1",
		},
		{
			name: "max text length below min",
			modify: func(cfg *Config) {
				cfg.Extraction.MinTextLength = 1000
				cfg.Extraction.MaxTextLength = 500
			},
			errMsg: "extraction.max_text_length must not be less than min_text_length",
		},
		{
			name:   "bad proxy url",
			modify: func(cfg *Config) { cfg.Extraction.Proxy = "http://bad proxy\x7f" },
			errMsg: "extraction.proxy is not a valid URL",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := makeValid()
			tt.modify(cfg)
			err := validate(cfg)
			if tt.errMsg == "" {
				require.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.errMsg)
		})
	}
}

func TestConfig_Getters(t *testing.T) {
	cfg := &Config{
		LLM: LLMConfig{
			Endpoint: "http://localhost:8080/v1",
			Model:    "test-model",
		},
		Feed: FeedConfig{
			Timeout:    15 * time.Second,
			MaxEntries: 7,
		},
		Curation: CurationConfig{MaxSelected: 2},
		Writer:   WriterConfig{MaxSourceChars: 4000},
		Script:   ScriptConfig{MaxScenes: 3, MaxWorkers: 2},
		Extraction: ExtractionConfig{
			Timeout:       10 * time.Second,
			MinTextLength: 50,
		},
	}

	assert.Equal(t, cfg.LLM, cfg.GetLLMConfig())
	assert.Equal(t, cfg.Feed, cfg.GetFeedConfig())
	assert.Equal(t, cfg.Curation, cfg.GetCurationConfig())
	assert.Equal(t, cfg.Writer, cfg.GetWriterConfig())
	assert.Equal(t, cfg.Script, cfg.GetScriptConfig())
	assert.Equal(t, cfg.Extraction, cfg.GetExtractionConfig())
}

func TestConfig_GetServerConfig(t *testing.T) {
	cfg := &Config{
		Server: struct {
			Listen  string        `yaml:"listen" json:"listen" jsonschema:"default=:8080,description=HTTP server listen address"`
			Timeout time.Duration `yaml:"timeout" json:"timeout" jsonschema:"default=30s,description=HTTP server timeout"`
		}{
			Listen:  ":9090",
			Timeout: 45 * time.Second,
		},
	}

	listen, timeout := cfg.GetServerConfig()
	assert.Equal(t, ":9090", listen)
	assert.Equal(t, 45*time.Second, timeout)
}
