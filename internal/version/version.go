package version

// Version contains the application version information.
// Set via build-time ldflags in releases:
// go build -ldflags "-X git.home.luguber.info/inful/patternforge/internal/version.Version=v1.0.0".
var Version = "unknown"

// BuildInfo contains additional build metadata.
var (
	BuildTime = "unknown"
	GitCommit = "unknown"
)
