package config

import (
	"errors"
	"fmt"
	"io"
	"slices"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
	"github.com/namongk/fast-linkedin-scraper/pkg/models"
	"gopkg.in/yaml.v3"
)

// AppConfig holds the complete application configuration
type AppConfig struct {
	Browser BrowserConfig `yaml:"browser"`
	Scraper ScraperConfig `yaml:"scraper"`
	Logger  LoggerConfig  `yaml:"logger"`
}

// Viewport is the browser window size in pixels.
type Viewport struct {
	Width  int `yaml:"width" env:"LINKEDIN_VIEWPORT_WIDTH"`
	Height int `yaml:"height" env:"LINKEDIN_VIEWPORT_HEIGHT"`
}

// BrowserConfig is the launch profile shared by every browser session.
// It is built once at startup and only read afterwards.
type BrowserConfig struct {
	UserAgent   string        `yaml:"user_agent" env:"LINKEDIN_USER_AGENT"`
	Viewport    Viewport      `yaml:"viewport"`
	Headless    bool          `yaml:"headless" env:"LINKEDIN_HEADLESS"`
	Timeout     time.Duration `yaml:"timeout" env:"LINKEDIN_BROWSER_TIMEOUT"`
	WaitShort   time.Duration `yaml:"wait_short" env:"LINKEDIN_WAIT_SHORT"`
	WaitMedium  time.Duration `yaml:"wait_medium" env:"LINKEDIN_WAIT_MEDIUM"`
	WaitLong    time.Duration `yaml:"wait_long" env:"LINKEDIN_WAIT_LONG"`
	WaitTimeout time.Duration `yaml:"wait_timeout" env:"LINKEDIN_WAIT_TIMEOUT"`
	Args        []string      `yaml:"args" env:"LINKEDIN_CHROME_ARGS" env-separator:" "`
	Driver      string        `yaml:"driver" env:"LINKEDIN_BROWSER_DRIVER"`
	ExecPath    string        `yaml:"exec_path" env:"LINKEDIN_BROWSER_EXEC_PATH"`
}

// Browser drivers a session can launch chrome with.
const (
	DriverChromedp = "chromedp"
	DriverRod      = "rod"
)

// ScraperConfig holds what to scrape and how many sessions run at once.
// MaxPages is the employee list depth; it is not a company field flag.
type ScraperConfig struct {
	Workers         int                          `yaml:"workers" env:"LINKEDIN_WORKERS"`
	RateLimit       time.Duration                `yaml:"rate_limit" env:"LINKEDIN_RATE_LIMIT"`
	PersonFields    models.PersonScrapingFields  `yaml:"person_fields" env:"LINKEDIN_PERSON_FIELDS"`
	CompanyFields   models.CompanyScrapingFields `yaml:"company_fields" env:"LINKEDIN_COMPANY_FIELDS"`
	MaxPages        int                          `yaml:"max_pages" env:"LINKEDIN_MAX_PAGES"`
	ShowAllSelector string                       `yaml:"show_all_selector" env:"LINKEDIN_SHOW_ALL_SELECTOR"`
}

// LoggerConfig configures the zap logger.
type LoggerConfig struct {
	Level  string `yaml:"level" env:"LINKEDIN_LOG_LEVEL"`
	Format string `yaml:"format" env:"LINKEDIN_LOG_FORMAT"`
}

// DefaultBrowserConfig returns the built-in launch profile.
func DefaultBrowserConfig() BrowserConfig {
	return BrowserConfig{
		UserAgent:   DefaultUserAgent,
		Viewport:    Viewport{Width: DefaultViewportWidth, Height: DefaultViewportHeight},
		Headless:    true,
		Timeout:     DefaultTimeout,
		WaitShort:   DefaultWaitShort,
		WaitMedium:  DefaultWaitMedium,
		WaitLong:    DefaultWaitLong,
		WaitTimeout: DefaultWaitTimeout,
		Args:        slices.Clone(DefaultChromeArgs),
		Driver:      DriverChromedp,
	}
}

// Default creates a default configuration
func Default() *AppConfig {
	return &AppConfig{
		Browser: DefaultBrowserConfig(),
		Scraper: ScraperConfig{
			Workers:         3,
			RateLimit:       1 * time.Second,
			PersonFields:    models.PersonCareer,
			CompanyFields:   models.CompanyMinimal,
			MaxPages:        0,
			ShowAllSelector: DefaultShowAllSelector,
		},
		Logger: LoggerConfig{
			Level:  "info",
			Format: "console",
		},
	}
}

// Load reads the configuration from a YAML file on top of the defaults and
// then applies LINKEDIN_* environment overrides. An empty filename reads
// the environment only.
func Load(filename string) (*AppConfig, error) {
	cfg := Default()

	var err error
	if filename != "" {
		err = cleanenv.ReadConfig(filename, cfg)
	} else {
		err = cleanenv.ReadEnv(cfg)
	}
	if err != nil {
		return nil, fmt.Errorf("loading configuration: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

// Dump writes cfg to w as YAML.
func Dump(w io.Writer, cfg *AppConfig) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(cfg); err != nil {
		return err
	}
	return enc.Close()
}

// Validate checks every section of the configuration.
func (c *AppConfig) Validate() error {
	if err := c.Browser.Validate(); err != nil {
		return err
	}
	return c.Scraper.Validate()
}

// LaunchArgs returns a copy of the launch flags.
func (b BrowserConfig) LaunchArgs() []string {
	return slices.Clone(b.Args)
}

// Waits returns the wait durations from shortest to longest.
func (b BrowserConfig) Waits() [4]time.Duration {
	return [4]time.Duration{b.WaitShort, b.WaitMedium, b.WaitLong, b.WaitTimeout}
}

var waitKeys = [4]string{"wait_short", "wait_medium", "wait_long", "wait_timeout"}

// Validate enforces viewport and timing sanity. Waits must be positive and
// strictly increasing.
func (b BrowserConfig) Validate() error {
	if b.UserAgent == "" {
		return errors.New("browser.user_agent must not be empty")
	}
	if b.Viewport.Width <= 0 || b.Viewport.Height <= 0 {
		return fmt.Errorf("browser.viewport must be positive, got %dx%d", b.Viewport.Width, b.Viewport.Height)
	}
	if b.Timeout <= 0 {
		return errors.New("browser.timeout must be positive")
	}
	waits := b.Waits()
	for i, w := range waits {
		if w <= 0 {
			return fmt.Errorf("browser.%s must be positive", waitKeys[i])
		}
		if i > 0 && w <= waits[i-1] {
			return fmt.Errorf("browser.%s (%v) must be greater than browser.%s (%v)", waitKeys[i], w, waitKeys[i-1], waits[i-1])
		}
	}
	for _, arg := range b.Args {
		if arg == "" {
			return errors.New("browser.args must not contain empty entries")
		}
	}
	if b.Driver != DriverChromedp && b.Driver != DriverRod {
		return fmt.Errorf("browser.driver must be %q or %q, got %q", DriverChromedp, DriverRod, b.Driver)
	}
	return nil
}

// Validate checks worker and field settings.
func (s ScraperConfig) Validate() error {
	if s.Workers <= 0 {
		return errors.New("scraper.workers must be a positive integer")
	}
	if s.RateLimit < 0 {
		return errors.New("scraper.rate_limit must not be negative")
	}
	if !s.PersonFields.Valid() {
		return fmt.Errorf("scraper.person_fields has unknown bits: %s", s.PersonFields)
	}
	if !s.CompanyFields.Valid() {
		return fmt.Errorf("scraper.company_fields has unknown bits: %s", s.CompanyFields)
	}
	if s.MaxPages < 0 {
		return errors.New("scraper.max_pages must not be negative")
	}
	return nil
}
