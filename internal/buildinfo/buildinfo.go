// Package buildinfo exposes version metadata stamped in at link time.
package buildinfo

import "fmt"

// Set via -ldflags at release time.
var (
	Version = "dev"
	Commit  = "none"
	Date    = "unknown"
)

// String formats the version line printed by the version command
func String() string {
	return fmt.Sprintf("citydistance %s (commit=%s, date=%s)", Version, Commit, Date)
}
