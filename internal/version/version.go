package version

const APP = "ethograph"

// Overridden at build time via -ldflags "-X ethograph/internal/version.VERSION=...".
var (
	VERSION = "dev"
	COMMIT  = "unknown"
)
