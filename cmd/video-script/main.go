package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"runtime"
	"syscall"

	"github.com/fatih/color"
	"github.com/go-pkgz/lgr"
	"github.com/jessevdk/go-flags"

	"github.com/newsdraft/newsdraft/pkg/config"
	"github.com/newsdraft/newsdraft/pkg/domain"
	"github.com/newsdraft/newsdraft/pkg/llm"
	"github.com/newsdraft/newsdraft/pkg/output"
	"github.com/newsdraft/newsdraft/pkg/workflow"
)

// Opts with all CLI options
type Opts struct {
	Audience     string `long:"audience" env:"AUDIENCE" default:"beginner" choice:"beginner" choice:"intermediate" choice:"advanced" description:"target audience level"`
	OutputDir    string `long:"output-dir" env:"OUTPUT_DIR" default:"./output" description:"directory for generated files"`
	OutputFormat string `long:"output-format" env:"OUTPUT_FORMAT" default:"md" description:"output format, md, txt or json"`
	Config       string `short:"c" long:"config" env:"CONFIG" default:"newsdraft.yml" description:"config file"`

	// Common options
	Debug   bool `long:"dbg" env:"DEBUG" description:"debug mode"`
	Version bool `short:"V" long:"version" description:"show version info"`
	NoColor bool `long:"no-color" env:"NO_COLOR" description:"disable color output"`

	Args struct {
		Keyword string `positional-arg-name:"keyword" description:"topic to generate a video script for" required:"true"`
	} `positional-args:"true" required:"true"`
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
		log.Printf("[ERROR] video-script failed: %v", err)
		os.Exit(1)
	}
}

// run executes the keyword-to-script pipeline with the loaded configuration
func run(ctx context.Context, opts Opts) error {
	cfg, err := config.Load(opts.Config)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	SetupLog(opts.Debug, logSecrets(cfg)...)

	log.Printf("[INFO] starting video-script version %s", revision)

	format, err := output.ParseFormat(opts.OutputFormat)
	if err != nil {
		return err
	}

	scriptWriter := llm.NewScriptWriter(cfg.LLM, cfg.Script)
	coder := llm.NewCoder(cfg.LLM, cfg.Script)

	wf := workflow.NewVideoWorkflow(scriptWriter, coder, cfg.Script.MaxScenes, cfg.Script.MaxWorkers)
	result, err := wf.Run(ctx, opts.Args.Keyword, domain.Audience(opts.Audience))
	if err != nil {
		return fmt.Errorf("script generation failed: %w", err)
	}

	path, err := output.WriteScript(opts.OutputDir, format, result)
	if err != nil {
		return fmt.Errorf("failed to write script: %w", err)
	}
	log.Printf("[INFO] script written to %s, %d visualization scenes", path, len(result.CodeBlocks))

	return nil
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
