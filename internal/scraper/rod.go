package scraper

import (
	"context"
	"errors"
	"fmt"

	"github.com/go-rod/rod"
	"github.com/go-rod/rod/lib/launcher"
	"github.com/go-rod/rod/lib/proto"
	"github.com/namongk/fast-linkedin-scraper/internal/config"
	"github.com/namongk/fast-linkedin-scraper/internal/launch"
)

// rod evaluates functions, not bare expressions.
const (
	rodScrollHalf   = "() => " + scrollHalfJS
	rodScrollBottom = "() => " + scrollBottomJS
)

type rodDriver struct {
	cfg      config.BrowserConfig
	launcher *launcher.Launcher
	browser  *rod.Browser
}

func startRod(ctx context.Context, cfg config.BrowserConfig) (*rodDriver, error) {
	l, err := launch.RodLauncher(cfg)
	if err != nil {
		return nil, err
	}
	// Without a bin rod would download a browser; use an installed one.
	if cfg.ExecPath == "" {
		bin, ok := launcher.LookPath()
		if !ok {
			return nil, fmt.Errorf("%w: set browser.exec_path", ErrNoBrowser)
		}
		l = l.Bin(bin)
	}

	controlURL, err := l.Context(ctx).Launch()
	if err != nil {
		return nil, fmt.Errorf("starting browser: %w", err)
	}

	browser := rod.New().ControlURL(controlURL).Context(ctx)
	if err := browser.Connect(); err != nil {
		l.Kill()
		l.Cleanup()
		return nil, fmt.Errorf("connecting to browser: %w", err)
	}

	return &rodDriver{cfg: cfg, launcher: l, browser: browser}, nil
}

func (d *rodDriver) newTab(ctx context.Context) (tab, error) {
	page, err := d.browser.Page(proto.TargetCreateTarget{})
	if err != nil {
		return nil, err
	}
	return &rodTab{cfg: d.cfg, ctx: ctx, page: page}, nil
}

func (d *rodDriver) close() {
	_ = d.browser.Close()
	d.launcher.Kill()
	d.launcher.Cleanup()
}

type rodTab struct {
	cfg  config.BrowserConfig
	ctx  context.Context
	page *rod.Page
}

func (t *rodTab) exec(step Step) (location, html string, err error) {
	p := t.page.Context(t.ctx).Timeout(t.cfg.Timeout)
	defer p.CancelTimeout()

	switch step.Kind {
	case KindPage:
		err = t.open(p, step)
	case KindModal:
		err = t.click(p, step)
	case KindScroll:
		if _, err = p.Eval(rodScrollBottom); err == nil {
			err = sleep(p.GetContext(), step.Wait)
		}
	default:
		err = fmt.Errorf("unknown step kind %q", step.Kind)
	}
	if err != nil {
		return "", "", err
	}

	info, err := p.Info()
	if err != nil {
		return "", "", err
	}
	html, err = p.HTML()
	if err != nil {
		return info.URL, "", err
	}
	return info.URL, html, nil
}

func (t *rodTab) open(p *rod.Page, step Step) error {
	ctx := p.GetContext()
	waits := pageWaits(t.cfg, step)
	if err := p.Navigate(step.URL); err != nil {
		return err
	}
	if err := p.WaitLoad(); err != nil {
		return err
	}
	if err := sleep(ctx, waits[0]); err != nil {
		return err
	}
	if _, err := p.Eval(rodScrollHalf); err != nil {
		return err
	}
	if err := sleep(ctx, waits[1]); err != nil {
		return err
	}
	if _, err := p.Eval(rodScrollBottom); err != nil {
		return err
	}
	return sleep(ctx, waits[2])
}

func (t *rodTab) click(p *rod.Page, step Step) error {
	wp := p.Timeout(t.cfg.WaitTimeout)
	el, err := wp.Element(step.Selector)
	if err == nil {
		err = el.WaitVisible()
	}
	if err == nil {
		err = el.Click(proto.InputMouseButtonLeft, 1)
	}
	wp.CancelTimeout()

	if errors.Is(err, context.DeadlineExceeded) && p.GetContext().Err() == nil {
		return fmt.Errorf("%w: %s not visible", ErrSectionUnavailable, step.Selector)
	}
	if err != nil {
		return err
	}
	return sleep(p.GetContext(), step.Wait)
}

func (t *rodTab) close() {
	_ = t.page.Close()
}
