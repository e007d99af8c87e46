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
	"github.com/newsdraft/newsdraft/pkg/content"
	"github.com/newsdraft/newsdraft/pkg/feed"
	"github.com/newsdraft/newsdraft/pkg/llm"
	"github.com/newsdraft/newsdraft/pkg/output"
	"github.com/newsdraft/newsdraft/pkg/workflow"
)

// Opts with all CLI options
type Opts struct {
	Output string `short:"o" long:"output" description:"output file path, stdout when empty"`
	Format string `short:"f" long:"format" env:"FORMAT" default:"md" description:"output format, md, txt or json"`
	Config string `short:"c" long:"config" env:"CONFIG" default:"newsdraft.yml" description:"config file"`

	// Common options
	Debug   bool `long:"dbg" env:"DEBUG" description:"debug mode"`
	Version bool `short:"V" long:"version" description:"show version info"`
	NoColor bool `long:"no-color" env:"NO_COLOR" description:"disable color output"`

	Args struct {
		FeedURL string `positional-arg-name:"rss-url" description:"RSS feed URL" required:"true"`
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
		log.Printf("[ERROR] rss-writer failed: %v", err)
		os.Exit(1)
	}
}

// run executes the feed-to-article pipeline with the loaded configuration
func run(ctx context.Context, opts Opts) error {
	cfg, err := config.Load(opts.Config)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	SetupLog(opts.Debug, logSecrets(cfg)...)

	log.Printf("[INFO] starting rss-writer version %s", revision)

	format, err := output.ParseFormat(opts.Format)
	if err != nil {
		return err
	}

	parser := feed.NewParser(cfg.Feed.Timeout, cfg.Feed.UserAgent, cfg.Feed.MaxEntries)
	curator := llm.NewCurator(cfg.LLM, cfg.Curation)
	extractor := content.NewHTTPExtractor(cfg.Extraction)
	writer := llm.NewWriter(cfg.LLM, cfg.Writer)

	wf := workflow.NewArticleWorkflow(parser, curator, extractor, writer)
	result, err := wf.Run(ctx, opts.Args.FeedURL)
	if err != nil {
		return fmt.Errorf("article generation failed: %w", err)
	}

	// a run where the curator found nothing worth writing about is a clean exit
	if result.Article == nil {
		fmt.Println("no valuable articles found in the feed, nothing to write")
		return nil
	}

	if err := output.WriteArticle(opts.Output, format, result.Article); err != nil {
		return fmt.Errorf("failed to write article: %w", err)
	}
	if opts.Output != "" {
		log.Printf("[INFO] article written to %s", opts.Output)
	}

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
