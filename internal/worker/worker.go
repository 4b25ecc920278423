package worker

import (
	"context"
	"time"

	"github.com/namongk/fast-linkedin-scraper/internal/config"
	"github.com/namongk/fast-linkedin-scraper/internal/scraper"
	"github.com/namongk/fast-linkedin-scraper/pkg/models"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
	"golang.org/x/time/rate"
)

// Outcome is the result of running one plan.
type Outcome struct {
	Plan    scraper.Plan
	Results []models.Result
	Err     error
}

// Pool runs plans on a shared Runner with bounded concurrency.
type Pool struct {
	Runner  scraper.Runner
	Workers int
	Limiter *rate.Limiter
	Logger  *zap.Logger
}

// NewPool creates a new worker pool. A zero rate limit disables limiting.
func NewPool(cfg config.ScraperConfig, runner scraper.Runner, logger *zap.Logger) *Pool {
	if logger == nil {
		logger = zap.NewNop()
	}
	workers := cfg.Workers
	if workers <= 0 {
		workers = 1
	}
	return &Pool{
		Runner:  runner,
		Workers: workers,
		Limiter: newLimiter(cfg.RateLimit),
		Logger:  logger,
	}
}

func newLimiter(every time.Duration) *rate.Limiter {
	if every <= 0 {
		return rate.NewLimiter(rate.Inf, 1)
	}
	return rate.NewLimiter(rate.Every(every), 1)
}

// Run starts the plans and returns a channel receiving exactly one Outcome
// per plan. The channel is closed once every plan has finished. Plans that
// have not started when ctx is cancelled report ctx's error.
func (p *Pool) Run(ctx context.Context, plans []scraper.Plan) <-chan Outcome {
	out := make(chan Outcome, len(plans))

	go func() {
		defer close(out)

		var g errgroup.Group
		g.SetLimit(p.Workers)
		for i, plan := range plans {
			g.Go(func() error {
				out <- p.runOne(ctx, i+1, plan)
				return nil
			})
		}
		_ = g.Wait()
	}()

	return out
}

func (p *Pool) runOne(ctx context.Context, n int, plan scraper.Plan) Outcome {
	logger := p.Logger.With(zap.Int("job", n), zap.String("target", plan.Target.URL))

	if err := ctx.Err(); err != nil {
		return Outcome{Plan: plan, Err: err}
	}
	if err := p.Limiter.Wait(ctx); err != nil {
		return Outcome{Plan: plan, Err: err}
	}

	logger.Info("processing target", zap.Int("steps", len(plan.Steps)))
	start := time.Now()
	results, err := p.Runner.Run(ctx, plan)
	if err != nil {
		logger.Warn("target failed", zap.Error(err), zap.Duration("elapsed", time.Since(start)))
	} else {
		logger.Info("target done", zap.Int("results", len(results)), zap.Duration("elapsed", time.Since(start)))
	}
	return Outcome{Plan: plan, Results: results, Err: err}
}
