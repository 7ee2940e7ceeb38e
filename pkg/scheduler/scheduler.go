package scheduler

import (
	"context"
	"fmt"
	"sync/atomic"

	"github.com/go-pkgz/lgr"
	"github.com/robfig/cron/v3"
	"golang.org/x/sync/errgroup"
)

//go:generate moq -out mocks/digests.go -pkg mocks -skip-ensure -fmt goimports . Digests

// Digests interface for scheduled digest operations
type Digests interface {
	DueOwners(ctx context.Context) ([]string, error)
	GenerateFor(ctx context.Context, owner string) (string, error)
	Reconcile(ctx context.Context) (int, error)
}

// Config holds scheduler configuration
type Config struct {
	Generate   string // cron spec of the generate job
	Reconcile  string // cron spec of the reconcile job, empty disables it
	MaxWorkers int    // digests generated in parallel
}

// Scheduler periodically generates due digests and fails stuck ones
type Scheduler struct {
	digests    Digests
	cron       *cron.Cron
	cfg        Config
	cancel     context.CancelFunc
	generating atomic.Bool // generate job in progress
}

// NewScheduler creates a new scheduler instance, cron specs are validated here
func NewScheduler(digests Digests, cfg Config) (*Scheduler, error) {
	if cfg.Generate == "" {
		cfg.Generate = "@hourly"
	}
	if cfg.MaxWorkers <= 0 {
		cfg.MaxWorkers = 2
	}
	if _, err := cron.ParseStandard(cfg.Generate); err != nil {
		return nil, fmt.Errorf("invalid generate schedule %q: %w", cfg.Generate, err)
	}
	if cfg.Reconcile != "" {
		if _, err := cron.ParseStandard(cfg.Reconcile); err != nil {
			return nil, fmt.Errorf("invalid reconcile schedule %q: %w", cfg.Reconcile, err)
		}
	}

	return &Scheduler{
		digests: digests,
		cron:    cron.New(cron.WithLogger(cron.PrintfLogger(cronLogger{}))),
		cfg:     cfg,
	}, nil
}

// Start registers the jobs and begins the scheduler. Stuck digests are reconciled right away.
func (s *Scheduler) Start(ctx context.Context) error {
	ctx, s.cancel = context.WithCancel(ctx)

	if _, err := s.cron.AddFunc(s.cfg.Generate, func() { s.runGenerate(ctx) }); err != nil {
		s.cancel()
		return fmt.Errorf("add generate job: %w", err)
	}
	if s.cfg.Reconcile != "" {
		if _, err := s.cron.AddFunc(s.cfg.Reconcile, func() { s.runReconcile(ctx) }); err != nil {
			s.cancel()
			return fmt.Errorf("add reconcile job: %w", err)
		}
		s.runReconcile(ctx)
	}

	s.cron.Start()
	lgr.Printf("[INFO] scheduler started, generate %q, reconcile %q, max workers %d",
		s.cfg.Generate, s.cfg.Reconcile, s.cfg.MaxWorkers)
	return nil
}

// Stop gracefully stops the scheduler, waiting for running jobs
func (s *Scheduler) Stop() {
	lgr.Printf("[INFO] stopping scheduler...")
	if s.cancel != nil {
		s.cancel()
	}
	<-s.cron.Stop().Done()
	lgr.Printf("[INFO] scheduler stopped")
}

// GenerateDue generates digests for all due owners with bounded parallelism and returns
// the number of generated digests. Failures of single owners are logged and skipped.
func (s *Scheduler) GenerateDue(ctx context.Context) (int, error) {
	owners, err := s.digests.DueOwners(ctx)
	if err != nil {
		return 0, fmt.Errorf("get due owners: %w", err)
	}
	if len(owners) == 0 {
		lgr.Printf("[DEBUG] no digests due")
		return 0, nil
	}

	lgr.Printf("[INFO] generating digests for %d owners", len(owners))
	var generated atomic.Int32
	g := errgroup.Group{}
	g.SetLimit(s.cfg.MaxWorkers)
	for _, owner := range owners {
		if ctx.Err() != nil {
			break
		}
		g.Go(func() error {
			id, err := s.digests.GenerateFor(ctx, owner)
			if err != nil {
				lgr.Printf("[WARN] failed to generate digest for %s: %v", owner, err)
				return nil
			}
			lgr.Printf("[INFO] generated digest %s for %s", id, owner)
			generated.Add(1)
			return nil
		})
	}
	_ = g.Wait() // tasks never return errors
	return int(generated.Load()), ctx.Err()
}

// runGenerate is the generate job, a run is skipped while the previous one is in progress
func (s *Scheduler) runGenerate(ctx context.Context) {
	if !s.generating.CompareAndSwap(false, true) {
		lgr.Printf("[DEBUG] previous digest generation still running, skipped")
		return
	}
	defer s.generating.Store(false)

	n, err := s.GenerateDue(ctx)
	if err != nil {
		lgr.Printf("[ERROR] scheduled generation failed: %v", err)
		return
	}
	if n > 0 {
		lgr.Printf("[INFO] scheduled generation completed, %d digests", n)
	}
}

// runReconcile is the reconcile job
func (s *Scheduler) runReconcile(ctx context.Context) {
	n, err := s.digests.Reconcile(ctx)
	if err != nil {
		lgr.Printf("[ERROR] failed to reconcile digests: %v", err)
		return
	}
	if n > 0 {
		lgr.Printf("[INFO] reconciled %d stuck digests", n)
	}
}

// cronLogger routes cron messages to lgr
type cronLogger struct{}

func (cronLogger) Printf(format string, args ...any) {
	lgr.Printf("[DEBUG] cron: "+format, args...)
}
