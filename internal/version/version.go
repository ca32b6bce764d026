// Package version records build identity for the bot binary.
package version

import (
	"fmt"
	"runtime"

	"github.com/Masterminds/semver/v3"
)

// Build information, injected at compile time via -ldflags.
var (
	Version   = "0.1.0"
	GitCommit = "unknown"
	BuildDate = "unknown"
)

// Validate reports whether Version parses as a semantic version.
func Validate() error {
	if _, err := semver.NewVersion(Version); err != nil {
		return fmt.Errorf("invalid version %q: %w", Version, err)
	}
	return nil
}

// Banner returns the one-line identification string the bot advertises
// to peers, e.g. in reply to a CTCP VERSION query.
func Banner() string {
	banner := fmt.Sprintf("ircbot v%s", Version)
	if GitCommit != "unknown" && GitCommit != "" {
		commit := GitCommit
		if len(commit) > 7 {
			commit = commit[:7]
		}
		banner += fmt.Sprintf(" (%s)", commit)
	}
	return banner
}

// Detailed returns a full build description for startup logging.
func Detailed() string {
	return fmt.Sprintf("ircbot v%s (commit %s, built %s, %s %s/%s)",
		Version, GitCommit, BuildDate, runtime.Version(), runtime.GOOS, runtime.GOARCH)
}
