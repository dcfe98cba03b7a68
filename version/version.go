package version

import "fmt"

// Build variables, set via -ldflags at build time.
var (
	GitCommit   = "unknown"
	GitBranch   = "unknown"
	GitUpstream = "unknown"
	BuildDate   = "unknown"
	Version     = "unknown"
)

// String returns a multi-line description of the build.
func String() string {
	return fmt.Sprintf(
		"git commit: %s\ngit branch: %s\ngit upstream: %s\nbuild date: %s\nversion: %s",
		GitCommit, GitBranch, GitUpstream, BuildDate, Version,
	)
}

// LogFields returns build info as alternating key/value pairs for structured logging.
func LogFields() []interface{} {
	return []interface{}{
		"GitCommit", GitCommit,
		"GitBranch", GitBranch,
		"GitUpstream", GitUpstream,
		"BuildDate", BuildDate,
		"Version", Version,
	}
}
