// Package buildinfo carries release metadata for the adv binary.
package buildinfo

// Set with -ldflags "-X github.com/aidanlsb/advert/internal/buildinfo.Version=..."
// on release builds. Empty for local builds.
var (
	Version = ""
	Commit  = ""
	Date    = ""
)
