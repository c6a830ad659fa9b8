// Package constant holds application-wide identifiers.
package constant

const (
	// Swatch is the application name, used for paths, env prefixes and branding.
	Swatch = "swatch"

	// Version is the current semantic version.
	Version = "0.1.0"
)

// Set at build time with -ldflags "-X github.com/swatch-cli/swatch/constant.BuiltAt=...".
var (
	BuiltAt  = "unknown"
	BuiltBy  = "unknown"
	Revision = "unknown"
)
