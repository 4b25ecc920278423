package worker

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/namongk/fast-linkedin-scraper/internal/config"
	"github.com/namongk/fast-linkedin-scraper/internal/scraper"
	"github.com/namongk/fast-linkedin-scraper/pkg/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

type fakeRunner struct {
	mu       sync.Mutex
	seen     []string
	active   atomic.Int32
	peak     atomic.Int32
	delay    time.Duration
	failURL  string
	blockCtx bool
}

func (f *fakeRunner) Run(ctx context.Context, plan scraper.Plan) ([]models.Result, error) {
	n := f.active.Add(1)
	defer f.active.Add(-1)
	for {
		p := f.peak.Load()
		if n <= p || f.peak.CompareAndSwap(p, n) {
			break
		}
	}

	f.mu.Lock()
	f.seen = append(f.seen, plan.Target.URL)
	f.mu.Unlock()

	if f.blockCtx {
		<-ctx.Done()
		return nil, ctx.Err()
	}
	time.Sleep(f.delay)

	if plan.Target.URL == f.failURL {
		return nil, scraper.ErrAuthWall
	}
	results := make([]models.Result, len(plan.Steps))
	for i, s := range plan.Steps {
		results[i] = models.Result{URL: s.URL, Section: s.Section}
	}
	return results, nil
}

func makePlans(t *testing.T, n int) []scraper.Plan {
	t.Helper()
	planner := scraper.NewPlanner(config.Default())
	plans := make([]scraper.Plan, 0, n)
	for i := 0; i < n; i++ {
		plan, err := planner.PersonPlan("https://www.linkedin.com/in/user-"+string(rune('a'+i)), models.PersonCareer)
		require.NoError(t, err)
		plans = append(plans, plan)
	}
	return plans
}

func collect(ch <-chan Outcome) []Outcome {
	var out []Outcome
	for o := range ch {
		out = append(out, o)
	}
	return out
}

func TestPoolRunsEveryPlan(t *testing.T) {
	runner := &fakeRunner{delay: 10 * time.Millisecond}
	cfg := config.ScraperConfig{Workers: 2}
	pool := NewPool(cfg, runner, nil)

	plans := makePlans(t, 6)
	outcomes := collect(pool.Run(context.Background(), plans))

	require.Len(t, outcomes, len(plans))
	for _, o := range outcomes {
		assert.NoError(t, o.Err)
		assert.Len(t, o.Results, 3)
	}
	assert.Len(t, runner.seen, len(plans))
	assert.LessOrEqual(t, runner.peak.Load(), int32(2))
}

func TestPoolReportsRunnerErrors(t *testing.T) {
	plans := makePlans(t, 3)
	runner := &fakeRunner{failURL: plans[1].Target.URL}
	core, logs := observer.New(zapcore.DebugLevel)
	pool := NewPool(config.ScraperConfig{Workers: 3}, runner, zap.New(core))

	var failed int
	for o := range pool.Run(context.Background(), plans) {
		if o.Err != nil {
			failed++
			assert.ErrorIs(t, o.Err, scraper.ErrAuthWall)
			assert.Equal(t, plans[1].Target.URL, o.Plan.Target.URL)
		}
	}
	assert.Equal(t, 1, failed)

	failures := logs.FilterMessage("target failed").All()
	require.Len(t, failures, 1)
	assert.Equal(t, zapcore.WarnLevel, failures[0].Level)
	assert.Zero(t, logs.FilterLevelExact(zapcore.ErrorLevel).Len())
}

func TestPoolRateLimit(t *testing.T) {
	runner := &fakeRunner{}
	pool := NewPool(config.ScraperConfig{Workers: 3, RateLimit: 40 * time.Millisecond}, runner, nil)

	start := time.Now()
	outcomes := collect(pool.Run(context.Background(), makePlans(t, 3)))
	require.Len(t, outcomes, 3)
	// burst of one: the second and third start at least one interval apart
	assert.GreaterOrEqual(t, time.Since(start), 70*time.Millisecond)
}

func TestPoolCancellation(t *testing.T) {
	runner := &fakeRunner{blockCtx: true}
	pool := NewPool(config.ScraperConfig{Workers: 1}, runner, nil)

	ctx, cancel := context.WithCancel(context.Background())
	ch := pool.Run(ctx, makePlans(t, 4))

	require.Eventually(t, func() bool { return runner.active.Load() == 1 }, time.Second, 5*time.Millisecond)
	cancel()

	outcomes := collect(ch)
	require.Len(t, outcomes, 4)
	for _, o := range outcomes {
		assert.True(t, errors.Is(o.Err, context.Canceled))
	}
	assert.Len(t, runner.seen, 1, "plans queued behind the cancelled one never start")
}

func TestNewPoolDefaults(t *testing.T) {
	pool := NewPool(config.ScraperConfig{}, &fakeRunner{}, nil)
	assert.Equal(t, 1, pool.Workers)
	assert.NotNil(t, pool.Logger)

	outcomes := collect(pool.Run(context.Background(), nil))
	assert.Empty(t, outcomes)
}
