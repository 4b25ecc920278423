package scraper

import (
	"context"
	"errors"
	"fmt"

	"github.com/chromedp/cdproto/network"
	"github.com/chromedp/chromedp"
	"github.com/namongk/fast-linkedin-scraper/internal/config"
	"github.com/namongk/fast-linkedin-scraper/internal/launch"
)

type chromedpDriver struct {
	cfg           config.BrowserConfig
	cancelAlloc   context.CancelFunc
	browserCtx    context.Context
	cancelBrowser context.CancelFunc
}

func startChromedp(ctx context.Context, cfg config.BrowserConfig) (*chromedpDriver, error) {
	opts, err := launch.ChromedpOptions(cfg)
	if err != nil {
		return nil, err
	}

	allocCtx, cancelAlloc := chromedp.NewExecAllocator(ctx, opts...)
	browserCtx, cancelBrowser := chromedp.NewContext(allocCtx)

	// The first Run on a fresh context launches the browser.
	if err := chromedp.Run(browserCtx); err != nil {
		cancelBrowser()
		cancelAlloc()
		return nil, fmt.Errorf("starting browser: %w", err)
	}

	return &chromedpDriver{
		cfg:           cfg,
		cancelAlloc:   cancelAlloc,
		browserCtx:    browserCtx,
		cancelBrowser: cancelBrowser,
	}, nil
}

func (d *chromedpDriver) newTab(ctx context.Context) (tab, error) {
	tabCtx, cancel := chromedp.NewContext(d.browserCtx)
	stop := context.AfterFunc(ctx, cancel)

	// The first Run creates the target and ties its event loop to tabCtx,
	// so it must not carry a step timeout.
	if err := chromedp.Run(tabCtx); err != nil {
		stop()
		cancel()
		return nil, err
	}
	return &chromedpTab{cfg: d.cfg, ctx: tabCtx, cancel: cancel, stop: stop}, nil
}

func (d *chromedpDriver) close() {
	d.cancelBrowser()
	d.cancelAlloc()
}

type chromedpTab struct {
	cfg    config.BrowserConfig
	ctx    context.Context
	cancel context.CancelFunc
	stop   func() bool
}

func (t *chromedpTab) exec(step Step) (location, html string, err error) {
	stepCtx, cancel := context.WithTimeout(t.ctx, t.cfg.Timeout)
	defer cancel()

	err = chromedp.Run(stepCtx, t.actions(stepCtx, step, &location, &html)...)
	return location, html, err
}

func (t *chromedpTab) close() {
	t.stop()
	t.cancel()
}

func (t *chromedpTab) actions(stepCtx context.Context, step Step, location, html *string) []chromedp.Action {
	var tasks []chromedp.Action

	switch step.Kind {
	case KindPage:
		waits := pageWaits(t.cfg, step)
		tasks = append(tasks,
			network.Enable(),
			chromedp.Navigate(step.URL),
			chromedp.Sleep(waits[0]),
			chromedp.Evaluate(scrollHalfJS, nil),
			chromedp.Sleep(waits[1]),
			chromedp.Evaluate(scrollBottomJS, nil),
			chromedp.Sleep(waits[2]),
		)
	case KindModal:
		tasks = append(tasks,
			chromedp.ActionFunc(func(ctx context.Context) error {
				clickCtx, cancel := context.WithTimeout(ctx, t.cfg.WaitTimeout)
				defer cancel()
				err := chromedp.Click(step.Selector, chromedp.ByQuery, chromedp.NodeVisible).Do(clickCtx)
				if errors.Is(err, context.DeadlineExceeded) && stepCtx.Err() == nil {
					return fmt.Errorf("%w: %s not visible", ErrSectionUnavailable, step.Selector)
				}
				return err
			}),
			chromedp.Sleep(step.Wait),
		)
	case KindScroll:
		tasks = append(tasks,
			chromedp.Evaluate(scrollBottomJS, nil),
			chromedp.Sleep(step.Wait),
		)
	default:
		tasks = append(tasks, chromedp.ActionFunc(func(context.Context) error {
			return fmt.Errorf("unknown step kind %q", step.Kind)
		}))
	}

	return append(tasks,
		chromedp.Location(location),
		chromedp.OuterHTML("html", html, chromedp.ByQuery),
	)
}
