package config

import "time"

// DefaultUserAgent is the identity string sent by every browser session.
const DefaultUserAgent = "Mozilla/5.0 (Macintosh; Intel Mac OS X 10_15_7) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/141.0.0.0 Safari/537.36"

const (
	DefaultViewportWidth  = 1920
	DefaultViewportHeight = 1080

	DefaultTimeout = 15000 * time.Millisecond

	// Waits must stay strictly increasing.
	DefaultWaitShort   = 1000 * time.Millisecond
	DefaultWaitMedium  = 2000 * time.Millisecond
	DefaultWaitLong    = 3000 * time.Millisecond
	DefaultWaitTimeout = 5000 * time.Millisecond
)

// DefaultChromeArgs are passed verbatim, in this order, to the browser launcher.
var DefaultChromeArgs = []string{
	"--no-sandbox",
	"--disable-blink-features=AutomationControlled",
	"--disable-dev-shm-usage",
	"--disable-web-security",
	"--disable-features=VizDisplayCompositor",
	"--disable-gpu",
	"--no-first-run",
	"--no-default-browser-check",
	"--disable-background-timer-throttling",
	"--disable-backgrounding-occluded-windows",
	"--disable-renderer-backgrounding",
}

// DefaultShowAllSelector matches the "Show all" button of the affiliated pages sidebar.
const DefaultShowAllSelector = "button[aria-label*='Show all']"
