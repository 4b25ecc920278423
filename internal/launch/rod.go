package launch

import (
	"github.com/go-rod/rod/lib/launcher"
	"github.com/go-rod/rod/lib/launcher/flags"
	"github.com/namongk/fast-linkedin-scraper/internal/config"
)

// RodLauncher returns a go-rod launcher carrying the same flags as
// ChromedpOptions. Nothing is started until the caller calls Launch.
func RodLauncher(cfg config.BrowserConfig) (*launcher.Launcher, error) {
	profile, err := Flags(cfg)
	if err != nil {
		return nil, err
	}

	l := launcher.New().Headless(cfg.Headless)
	if cfg.ExecPath != "" {
		l = l.Bin(cfg.ExecPath)
	}
	for _, f := range profile {
		if f.HasValue {
			l = l.Set(flags.Flag(f.Name), f.Value)
		} else {
			l = l.Set(flags.Flag(f.Name))
		}
	}
	return l, nil
}
