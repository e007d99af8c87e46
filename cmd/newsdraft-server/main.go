package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"runtime"
	"syscall"
	"time"

	"github.com/fatih/color"
	"github.com/go-pkgz/lgr"
	"github.com/jessevdk/go-flags"

	"github.com/newsdraft/newsdraft/pkg/config"
	"github.com/newsdraft/newsdraft/pkg/content"
	"github.com/newsdraft/newsdraft/pkg/feed"
	"github.com/newsdraft/newsdraft/pkg/llm"
	"github.com/newsdraft/newsdraft/pkg/store"
	"github.com/newsdraft/newsdraft/pkg/workflow"
	"github.com/newsdraft/newsdraft/server"
)

// Opts with all CLI options
type Opts struct {
	Config string `short:"c" long:"config" env:"CONFIG" default:"newsdraft.yml" description:"config file"`
	Listen string `short:"l" long:"listen" env:"LISTEN" description:"listen address, overrides config"`

	// Common options
	Debug   bool `long:"dbg" env:"DEBUG" description:"debug mode"`
	Version bool `short:"V" long:"version" description:"show version info"`
	NoColor bool `long:"no-color" env:"NO_COLOR" description:"disable color output"`
}

var revision = "unknown"

func main() {
	var opts Opts
	parser := flags.NewParser(&opts, flags.Default)
	if _, err := parser.Parse(); err != nil {
		if flagsErr, ok := err.(*flags.Error); ok && flagsErr.Type == flags.ErrHelp {
			os.Exit(0)
		}
		os.Exit(1)
	}

	if opts.Version {
		fmt.Printf("Version: %s\nGolang: %s\n", revision, runtime.Version())
		os.Exit(0)
	}

	ctx, cancel := context.WithCancel(context.Background())

	// handle termination signals
	go func() {
		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
		<-sigChan
		log.Print("[INFO] termination signal received")
		cancel()
	}()

	err := run(ctx, opts)
	cancel()

	if err != nil {
		log.Printf("[ERROR] server failed: %v", err)
		os.Exit(1)
	}

	log.Print("[INFO] shutdown complete")
}

// run wires both pipelines and the artifact store into the HTTP server
func run(ctx context.Context, opts Opts) error {
	cfg, err := config.Load(opts.Config)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	SetupLog(opts.Debug, logSecrets(cfg)...)

	log.Printf("[INFO] starting newsdraft-server version %s", revision)

	if opts.Listen != "" {
		cfg.Server.Listen = opts.Listen
	}

	st, err := store.New(ctx, store.Config{
		DSN:             cfg.Database.DSN,
		MaxOpenConns:    cfg.Database.MaxOpenConns,
		MaxIdleConns:    cfg.Database.MaxIdleConns,
		ConnMaxLifetime: time.Duration(cfg.Database.ConnMaxLifetime) * time.Second,
	})
	if err != nil {
		return fmt.Errorf("failed to open store: %w", err)
	}
	defer func() {
		if closeErr := st.Close(); closeErr != nil {
			log.Printf("[WARN] failed to close store: %v", closeErr)
		}
	}()

	parser := feed.NewParser(cfg.Feed.Timeout, cfg.Feed.UserAgent, cfg.Feed.MaxEntries)
	curator := llm.NewCurator(cfg.LLM, cfg.Curation)
	extractor := content.NewHTTPExtractor(cfg.Extraction)
	writer := llm.NewWriter(cfg.LLM, cfg.Writer)
	articles := workflow.NewArticleWorkflow(parser, curator, extractor, writer)

	scriptWriter := llm.NewScriptWriter(cfg.LLM, cfg.Script)
	coder := llm.NewCoder(cfg.LLM, cfg.Script)
	scripts := workflow.NewVideoWorkflow(scriptWriter, coder, cfg.Script.MaxScenes, cfg.Script.MaxWorkers)

	srv := server.New(cfg, articles, scripts, server.NewStoreAdapter(st), revision, opts.Debug)
	return srv.Run(ctx)
}

// logSecrets collects config values that must never appear in logs
func logSecrets(cfg *config.Config) []string {
	var secs []string
	if cfg.LLM.APIKey != "" {
		secs = append(secs, cfg.LLM.APIKey)
	}
	return secs
}

// SetupLog configures the logger, secrets are masked in the output
func SetupLog(dbg bool, secs ...string) {
	logOpts := []lgr.Option{lgr.Msec, lgr.LevelBraces, lgr.StackTraceOnError}
	if dbg {
		logOpts = []lgr.Option{lgr.Debug, lgr.Msec, lgr.LevelBraces, lgr.StackTraceOnError}
	}

	colorizer := lgr.Mapper{
		ErrorFunc:  func(s string) string { return color.New(color.FgHiRed).Sprint(s) },
		WarnFunc:   func(s string) string { return color.New(color.FgRed).Sprint(s) },
		InfoFunc:   func(s string) string { return color.New(color.FgYellow).Sprint(s) },
		DebugFunc:  func(s string) string { return color.New(color.FgWhite).Sprint(s) },
		CallerFunc: func(s string) string { return color.New(color.FgBlue).Sprint(s) },
		TimeFunc:   func(s string) string { return color.New(color.FgCyan).Sprint(s) },
	}
	logOpts = append(logOpts, lgr.Map(colorizer))
	if len(secs) > 0 {
		logOpts = append(logOpts, lgr.Secret(secs...))
	}
	lgr.SetupStdLogger(logOpts...)
	lgr.Setup(logOpts...)
}
