package constant

import _ "embed"

// AsciiArtLogo is the banner shown by the version command.
//
//go:embed ascii.txt
var AsciiArtLogo string
