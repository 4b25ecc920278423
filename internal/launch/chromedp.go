package launch

import (
	"github.com/chromedp/chromedp"
	"github.com/namongk/fast-linkedin-scraper/internal/config"
)

// ChromedpOptions builds exec allocator options on top of the chromedp
// defaults: headless mode, then every flag of the profile in order.
func ChromedpOptions(cfg config.BrowserConfig) ([]chromedp.ExecAllocatorOption, error) {
	flags, err := Flags(cfg)
	if err != nil {
		return nil, err
	}

	opts := append(chromedp.DefaultExecAllocatorOptions[:],
		chromedp.Flag("headless", cfg.Headless),
	)
	if cfg.ExecPath != "" {
		opts = append(opts, chromedp.ExecPath(cfg.ExecPath))
	}
	for _, f := range flags {
		if f.HasValue {
			opts = append(opts, chromedp.Flag(f.Name, f.Value))
		} else {
			opts = append(opts, chromedp.Flag(f.Name, true))
		}
	}
	return opts, nil
}
