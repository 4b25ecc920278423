package scraper

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/namongk/fast-linkedin-scraper/internal/config"
	"github.com/namongk/fast-linkedin-scraper/pkg/models"
	"go.uber.org/zap"
)

var (
	// ErrAuthWall means the site answered with a login page instead of the
	// requested section. The rest of the plan is abandoned.
	ErrAuthWall = errors.New("login wall reached")
	// ErrSectionUnavailable means a modal trigger never became visible.
	ErrSectionUnavailable = errors.New("section unavailable")
	// ErrUnknownDriver is returned for a browser.driver no session supports.
	ErrUnknownDriver = errors.New("unknown browser driver")
	// ErrNoBrowser means no installed chrome binary was found.
	ErrNoBrowser = errors.New("no chrome binary found")
)

const (
	scrollHalfJS   = `window.scrollTo({top: document.body.scrollHeight / 2, behavior: 'smooth'})`
	scrollBottomJS = `window.scrollTo({top: document.body.scrollHeight, behavior: 'smooth'})`
)

// Paths the site redirects to instead of serving a section.
var authWallPaths = []string{"/authwall", "/login", "/checkpoint", "/uas/login"}

// driver owns a running browser.
type driver interface {
	// newTab opens a tab that lives until close or until ctx is done.
	newTab(ctx context.Context) (tab, error)
	close()
}

// tab carries out steps on one page, each bounded by the profile timeout.
type tab interface {
	exec(step Step) (location, html string, err error)
	close()
}

// BrowserSession owns one chrome process started from a launch profile.
// Each Run opens its own tab, so Run is safe to call from several
// goroutines.
type BrowserSession struct {
	cfg    config.BrowserConfig
	logger *zap.Logger
	driver driver
}

// NewBrowserSession starts chrome through the driver named by cfg.Driver.
func NewBrowserSession(ctx context.Context, cfg config.BrowserConfig, logger *zap.Logger) (*BrowserSession, error) {
	if logger == nil {
		logger = zap.NewNop()
	}

	var (
		d   driver
		err error
	)
	switch cfg.Driver {
	case config.DriverChromedp, "":
		d, err = startChromedp(ctx, cfg)
	case config.DriverRod:
		d, err = startRod(ctx, cfg)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownDriver, cfg.Driver)
	}
	if err != nil {
		return nil, err
	}

	logger.Debug("browser started", zap.String("driver", cfg.Driver), zap.Bool("headless", cfg.Headless))
	return &BrowserSession{cfg: cfg, logger: logger, driver: d}, nil
}

// Close shuts the browser down.
func (s *BrowserSession) Close() {
	s.driver.close()
}

// Run executes plan in a new tab. A failing step is recorded in its result
// and the run moves on; a login wall or a cancelled ctx stops it.
func (s *BrowserSession) Run(ctx context.Context, plan Plan) ([]models.Result, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	t, err := s.driver.newTab(ctx)
	if err != nil {
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		return nil, fmt.Errorf("opening tab: %w", err)
	}
	defer t.close()

	logger := s.logger.With(zap.String("target", plan.Target.URL))
	results := make([]models.Result, 0, len(plan.Steps))

	for _, step := range plan.Steps {
		if err := ctx.Err(); err != nil {
			return results, err
		}

		res, err := runStep(t, step)
		if ctx.Err() != nil {
			return results, ctx.Err()
		}
		results = append(results, res)

		if errors.Is(err, ErrAuthWall) {
			logger.Warn("login wall, abandoning plan", zap.String("url", step.URL))
			return results, fmt.Errorf("%s: %w", step.URL, err)
		}
		if err != nil {
			logger.Warn("step failed",
				zap.String("section", step.Section),
				zap.String("url", step.URL),
				zap.Error(err))
			continue
		}
		logger.Debug("step done",
			zap.String("section", step.Section),
			zap.String("title", res.Title),
			zap.Duration("duration", res.Duration))
	}
	return results, nil
}

func runStep(t tab, step Step) (models.Result, error) {
	start := time.Now()
	res := models.Result{URL: step.URL, Section: step.Section}

	location, html, err := t.exec(step)
	if err == nil && isAuthWall(location, html) {
		err = ErrAuthWall
	}

	res.HTML = html
	res.Title = pageTitle(html)
	res.Duration = time.Since(start)
	res.Timestamp = time.Now()
	if err != nil {
		res.Err = err.Error()
	}
	return res, err
}

// pageWaits are the pauses of a page step: after load, after the half
// scroll and after the bottom scroll.
func pageWaits(cfg config.BrowserConfig, step Step) [3]time.Duration {
	return [3]time.Duration{step.Wait, cfg.WaitShort, cfg.WaitMedium}
}

// sleep waits for d or until ctx is done.
func sleep(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

// pageTitle returns the document title, or "" when html does not parse.
func pageTitle(html string) string {
	if html == "" {
		return ""
	}
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return ""
	}
	return strings.TrimSpace(doc.Find("title").First().Text())
}

// isAuthWall reports whether the page is the sign-in form rather than content.
func isAuthWall(location, html string) bool {
	if u, err := url.Parse(location); err == nil {
		for _, p := range authWallPaths {
			if u.Path == p || strings.HasPrefix(u.Path, p+"/") {
				return true
			}
		}
	}
	if html == "" {
		return false
	}
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return false
	}
	return doc.Find("form.login__form, #session_key").Length() > 0
}
