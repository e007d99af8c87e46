package main

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestRun_MissingConfig(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 1*time.Second)
	defer cancel()

	opts := Opts{
		Config:       "non-existent-config.yml",
		Audience:     "beginner",
		OutputDir:    t.TempDir(),
		OutputFormat: "md",
	}
	opts.Args.Keyword = "recursion"

	err := run(ctx, opts)
	require.Error(t, err)
	require.Contains(t, err.Error(), "failed to load config")
}

func TestRun_InvalidConfig(t *testing.T) {
	// create a temporary invalid config file
	tmpFile, err := os.CreateTemp("", "invalid-config-*.yml")
	require.NoError(t, err)
	defer os.Remove(tmpFile.Name())

	// write invalid yaml
	_, err = tmpFile.WriteString("invalid: yaml: content: [")
	require.NoError(t, err)
	tmpFile.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 1*time.Second)
	defer cancel()

	opts := Opts{
		Config:       tmpFile.Name(),
		Audience:     "beginner",
		OutputDir:    t.TempDir(),
		OutputFormat: "md",
	}
	opts.Args.Keyword = "recursion"

	err = run(ctx, opts)
	require.Error(t, err)
	require.Contains(t, err.Error(), "failed to load config")
}

func TestRun_BadFormat(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 1*time.Second)
	defer cancel()

	opts := Opts{
		Config:       "testdata/test_config.yml",
		Audience:     "beginner",
		OutputDir:    t.TempDir(),
		OutputFormat: "pdf",
	}
	opts.Args.Keyword = "recursion"

	err := run(ctx, opts)
	require.Error(t, err)
	require.Contains(t, err.Error(), "unknown output format")
}

func TestRun_GenerationFailure(t *testing.T) {
	// LLM endpoint answering with an error fails the script stage
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	t.Setenv("TEST_LLM_ENDPOINT", srv.URL+"/v1")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	opts := Opts{
		Config:       "testdata/test_config.yml",
		Audience:     "beginner",
		OutputDir:    t.TempDir(),
		OutputFormat: "md",
	}
	opts.Args.Keyword = "recursion"

	err := run(ctx, opts)
	require.Error(t, err)
	require.Contains(t, err.Error(), "script generation failed")
}

func TestSetupLog(t *testing.T) {
	t.Run("debug mode enabled", func(t *testing.T) {
		SetupLog(true)
	})

	t.Run("debug mode disabled", func(t *testing.T) {
		SetupLog(false)
	})

	t.Run("with secrets", func(t *testing.T) {
		SetupLog(true, "secret1", "secret2")
	})
}
