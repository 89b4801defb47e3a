package printconfig

import (
	"fmt"

	"github.com/nspcc-dev/pngme/cmd/pngme/config"
	"github.com/spf13/pflag"
)

const subsection = "print"

// Supported output formats of the print command.
const (
	FormatText  = "text"
	FormatTable = "table"
	FormatYAML  = "yaml"

	// FormatDefault is a default output format.
	FormatDefault = FormatText
)

// Format returns the value of "format" config parameter
// from "print" section.
//
// Returns FormatDefault if the value is not set. Returns an error if
// the value is not one of the supported formats.
func Format(c *config.Config) (string, error) {
	v := config.StringSafe(c.Sub(subsection), "format")
	switch v {
	case "":
		return FormatDefault, nil
	case FormatText, FormatTable, FormatYAML:
		return v, nil
	default:
		return "", fmt.Errorf("unsupported print format %q", v)
	}
}

// BindFormat binds the flag to "format" config parameter
// of "print" section.
func BindFormat(c *config.Config, f *pflag.Flag) error {
	return c.Sub(subsection).BindFlag("format", f)
}
