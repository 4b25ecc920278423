// Package launch turns a BrowserConfig into launch options for the
// browser drivers the scraper can hand it to.
package launch

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/namongk/fast-linkedin-scraper/internal/config"
)

// ErrInvalidArg is returned for a launch argument that is not a "--flag" or
// "--flag=value" string.
var ErrInvalidArg = errors.New("invalid launch argument")

// Flag is one browser command line switch.
type Flag struct {
	Name     string
	Value    string
	HasValue bool
}

func (f Flag) String() string {
	if f.HasValue {
		return "--" + f.Name + "=" + f.Value
	}
	return "--" + f.Name
}

// ParseArg splits "--name=value" at the first "=". hasValue is false for
// bare switches such as "--no-sandbox".
func ParseArg(arg string) (name, value string, hasValue bool, err error) {
	if !strings.HasPrefix(arg, "--") || len(arg) == 2 {
		return "", "", false, fmt.Errorf("%w: %q", ErrInvalidArg, arg)
	}
	name, value, hasValue = strings.Cut(arg[2:], "=")
	if name == "" {
		return "", "", false, fmt.Errorf("%w: %q", ErrInvalidArg, arg)
	}
	return name, value, hasValue, nil
}

// Flags returns the switches the profile adds on top of a driver's own
// defaults: every launch arg in order, then window size and user agent.
// Headless mode is left to each driver.
func Flags(cfg config.BrowserConfig) ([]Flag, error) {
	args := cfg.LaunchArgs()
	out := make([]Flag, 0, len(args)+2)
	for _, arg := range args {
		name, value, hasValue, err := ParseArg(arg)
		if err != nil {
			return nil, err
		}
		out = append(out, Flag{Name: name, Value: value, HasValue: hasValue})
	}
	return append(out,
		Flag{Name: "window-size", Value: strconv.Itoa(cfg.Viewport.Width) + "," + strconv.Itoa(cfg.Viewport.Height), HasValue: true},
		Flag{Name: "user-agent", Value: cfg.UserAgent, HasValue: true},
	), nil
}

// Args formats Flags as command line arguments, led by "--headless" when
// the profile is headless.
func Args(cfg config.BrowserConfig) ([]string, error) {
	flags, err := Flags(cfg)
	if err != nil {
		return nil, err
	}
	out := make([]string, 0, len(flags)+1)
	if cfg.Headless {
		out = append(out, "--headless")
	}
	for _, f := range flags {
		out = append(out, f.String())
	}
	return out, nil
}
