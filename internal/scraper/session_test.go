package scraper

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"os/exec"
	"testing"
	"time"

	"github.com/namongk/fast-linkedin-scraper/internal/config"
	"github.com/namongk/fast-linkedin-scraper/pkg/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func findBrowser() string {
	if p := os.Getenv("LINKEDIN_BROWSER_EXEC_PATH"); p != "" {
		return p
	}
	for _, name := range []string{"headless-shell", "chromium", "chromium-browser", "google-chrome", "google-chrome-stable", "chrome"} {
		if p, err := exec.LookPath(name); err == nil {
			return p
		}
	}
	return ""
}

func TestBrowserSessionMultiStepPlan(t *testing.T) {
	if testing.Short() {
		t.Skip("launches a browser")
	}
	bin := findBrowser()
	if bin == "" {
		t.Skip("no chrome binary found")
	}

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprintf(w, `<html><head><title>%s</title></head><body style="height:3000px"><button id="more">Show all</button></body></html>`, r.URL.Path)
	}))
	defer srv.Close()

	for _, driver := range []string{config.DriverChromedp, config.DriverRod} {
		t.Run(driver, func(t *testing.T) {
			cfg := config.DefaultBrowserConfig()
			cfg.Driver = driver
			cfg.ExecPath = bin
			cfg.Timeout = 20 * time.Second
			cfg.WaitShort = 10 * time.Millisecond
			cfg.WaitMedium = 20 * time.Millisecond
			cfg.WaitLong = 30 * time.Millisecond
			cfg.WaitTimeout = 500 * time.Millisecond
			require.NoError(t, cfg.Validate())

			ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
			defer cancel()

			session, err := NewBrowserSession(ctx, cfg, zap.NewNop())
			require.NoError(t, err)
			defer session.Close()

			base := srv.URL + "/in/jane-doe/"
			plan := Plan{
				Target: models.Target{Kind: models.TargetPerson, URL: base},
				Steps: []Step{
					{Section: SectionBasicInfo, Kind: KindPage, URL: base, Wait: cfg.WaitMedium},
					{Section: SectionExperience, Kind: KindPage, URL: base + "details/experience/", Wait: cfg.WaitMedium},
					{Section: SectionExperience, Kind: KindScroll, URL: base + "details/experience/", Wait: cfg.WaitShort},
					{Section: SectionAffiliatedPages, Kind: KindModal, URL: base + "details/experience/", Selector: "#more", Wait: cfg.WaitShort},
					{Section: SectionAffiliatedPages, Kind: KindModal, URL: base + "details/experience/", Selector: "#missing", Wait: cfg.WaitShort},
				},
			}

			results, err := session.Run(ctx, plan)
			require.NoError(t, err)
			require.Len(t, results, 5)

			assert.Equal(t, "/in/jane-doe/", results[0].Title)
			for _, r := range results[1:4] {
				assert.Empty(t, r.Err)
				assert.Equal(t, "/in/jane-doe/details/experience/", r.Title)
			}
			assert.Contains(t, results[4].Err, ErrSectionUnavailable.Error())
		})
	}
}
