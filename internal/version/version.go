package version

const (
	Version     = "0.1.0"
	Name        = "a340ctl"
	Description = "Standalone shift-control ECU for A340E-class four-speed automatic transmissions"
	Copyright   = "(c) 2026 a340-controller contributors"
	License     = "GPL-2.0-or-later"
	URL         = "https://github.com/clydeger/a340-controller"
)

// Injected at build time via -ldflags
var (
	GitHash   = "dev"
	BuildTime = "unknown"
)

// FullVersion returns version string with git hash and build time.
func FullVersion() string {
	return Version + " (" + GitHash + ") built " + BuildTime
}
