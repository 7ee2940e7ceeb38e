package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"runtime"
	"syscall"
	"time"

	"github.com/fatih/color"
	"github.com/go-pkgz/lgr"
	"github.com/jessevdk/go-flags"

	"github.com/umputun/newsdigest/pkg/archive"
	"github.com/umputun/newsdigest/pkg/config"
	"github.com/umputun/newsdigest/pkg/content"
	"github.com/umputun/newsdigest/pkg/digest"
	"github.com/umputun/newsdigest/pkg/domain"
	"github.com/umputun/newsdigest/pkg/feed"
	"github.com/umputun/newsdigest/pkg/llm"
	"github.com/umputun/newsdigest/pkg/news"
	"github.com/umputun/newsdigest/pkg/repository"
	"github.com/umputun/newsdigest/pkg/scheduler"
	"github.com/umputun/newsdigest/pkg/service"
	"github.com/umputun/newsdigest/server"
)

// Opts with all CLI options
type Opts struct {
	Config    string `short:"c" long:"config" env:"CONFIG" default:"newsdigest.yml" description:"configuration file"`
	Generate  string `short:"g" long:"generate" description:"generate a digest for the owner once and exit"`
	Anonymous string `short:"a" long:"anonymous" description:"print an anonymous paper for the leaning and exit"`

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
		var flagsErr *flags.Error
		if errors.As(err, &flagsErr) && flagsErr.Type == flags.ErrHelp {
			os.Exit(0)
		}
		os.Exit(1)
	}

	if opts.Version {
		fmt.Printf("Version: %s\nGolang: %s\n", revision, runtime.Version())
		os.Exit(0)
	}

	if opts.NoColor {
		color.NoColor = true
	}
	SetupLog(opts.Debug)

	lgr.Printf("[INFO] starting newsdigest version %s", revision)

	ctx, cancel := context.WithCancel(context.Background())

	// handle termination signals
	go func() {
		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
		<-sigChan
		lgr.Printf("[INFO] termination signal received")
		cancel()
	}()

	err := run(ctx, opts)
	cancel()

	if err != nil {
		lgr.Printf("[ERROR] %v", err)
		os.Exit(1)
	}

	lgr.Printf("[INFO] shutdown complete")
}

// app holds wired components
type app struct {
	cfg     *config.Config
	repos   *repository.Repositories
	digests *service.DigestService
}

func run(ctx context.Context, opts Opts) error {
	cfg, err := config.Load(opts.Config)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	if cfg.LLM.APIKey != "" {
		SetupLog(opts.Debug, cfg.LLM.APIKey)
	}

	a, err := newApp(ctx, cfg)
	if err != nil {
		return err
	}
	defer func() {
		if err := a.repos.Close(); err != nil {
			lgr.Printf("[WARN] failed to close database: %v", err)
		}
	}()

	switch {
	case opts.Generate != "":
		id, err := a.digests.GenerateFor(ctx, opts.Generate)
		if err != nil {
			return fmt.Errorf("failed to generate digest for %s: %w", opts.Generate, err)
		}
		fmt.Println(id)
		return nil
	case opts.Anonymous != "":
		paper, err := a.digests.Preview(ctx, domain.Leaning(opts.Anonymous))
		if err != nil {
			return fmt.Errorf("failed to make anonymous paper: %w", err)
		}
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		if err := enc.Encode(paper); err != nil {
			return fmt.Errorf("failed to print paper: %w", err)
		}
		return nil
	}

	return a.serve(ctx, opts.Debug)
}

// newApp wires the pipeline from configuration
func newApp(ctx context.Context, cfg *config.Config) (*app, error) {
	repos, err := repository.NewRepositories(ctx, repository.Config{
		DSN:             cfg.Database.DSN,
		MaxOpenConns:    cfg.Database.MaxOpenConns,
		MaxIdleConns:    cfg.Database.MaxIdleConns,
		ConnMaxLifetime: time.Duration(cfg.Database.ConnMaxLifetime) * time.Second,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	registry := news.DefaultSources()
	if len(cfg.Sources) > 0 {
		registry = news.Registry(cfg.Sources)
		lgr.Printf("[INFO] using %d categories of sources from config", registry.Categories())
	}
	aggregator := news.NewAggregator(registry, feed.NewHTTPFetcher(cfg.Fetch.Timeout, cfg.Fetch.UserAgent))

	var filler digest.SummaryFiller
	if cfg.Extraction.Enabled {
		extractor := content.NewHTTPExtractor(cfg.Extraction.Timeout, cfg.Extraction.UserAgent, cfg.Extraction.MinTextLength)
		filler = content.NewFiller(extractor, cfg.Extraction.MaxConcurrent, cfg.Extraction.MaxLength)
	}

	generator := digest.NewGenerator(aggregator, llm.NewCurator(cfg.LLM), service.NewStore(repos),
		archive.New(cfg.Archive.BaseURL, cfg.Archive.Domains), filler, digest.Config{
			Title:               cfg.Digest.Title,
			MaxCandidates:       cfg.LLM.MaxCandidates,
			CompensationTimeout: cfg.Digest.CompensationTimeout,
		})

	digests := service.NewDigestService(repos.Digest, repos.Profile, generator,
		digest.NewPaperStore(cfg.Papers.MaxEntries, cfg.Papers.TTL), service.Config{
			DefaultLeaning:   domain.Leaning(cfg.Digest.DefaultLeaning),
			DefaultFrequency: domain.Frequency(cfg.Digest.DefaultFrequency),
			StuckAfter:       cfg.Digest.StuckAfter,
			KeepFailed:       cfg.Digest.KeepFailed,
		})

	return &app{cfg: cfg, repos: repos, digests: digests}, nil
}

// serve runs the scheduler, if enabled, and the HTTP server until ctx is done
func (a *app) serve(ctx context.Context, debug bool) error {
	if a.cfg.Schedule.Enabled {
		sched, err := scheduler.NewScheduler(a.digests, scheduler.Config{
			Generate:   a.cfg.Schedule.Generate,
			Reconcile:  a.cfg.Schedule.Reconcile,
			MaxWorkers: a.cfg.Schedule.MaxWorkers,
		})
		if err != nil {
			return fmt.Errorf("failed to create scheduler: %w", err)
		}
		if err := sched.Start(ctx); err != nil {
			return fmt.Errorf("failed to start scheduler: %w", err)
		}
		defer sched.Stop()
	}

	srv := server.New(a.cfg, a.digests, revision, debug)
	if err := srv.Run(ctx); err != nil {
		return fmt.Errorf("server failed: %w", err)
	}
	return nil
}

// SetupLog configures lgr and the standard logger, secrets are masked in the output
func SetupLog(dbg bool, secs ...string) {
	logOpts := []lgr.Option{lgr.Msec, lgr.LevelBraces}
	if dbg {
		logOpts = []lgr.Option{lgr.Debug, lgr.CallerFile, lgr.CallerFunc, lgr.Msec, lgr.LevelBraces, lgr.StackTraceOnError}
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
