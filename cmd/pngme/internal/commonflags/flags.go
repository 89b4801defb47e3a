package commonflags

import (
	"github.com/spf13/cobra"
)

// Common CLI flag keys, shorthands, default
// values and their usage descriptions.
const (
	Config          = "config"
	ConfigShorthand = "c"
	ConfigDefault   = ""
	ConfigUsage     = "Config file (default is $HOME/.config/pngme/config.yaml)"

	Verbose          = "verbose"
	VerboseShorthand = "v"
	VerboseUsage     = "Verbose output"

	Version      = "version"
	VersionUsage = "Application version"

	Output          = "output"
	OutputShorthand = "o"
	OutputDefault   = ""
	OutputUsage     = "Output format: text, table or yaml (default is taken from config, text if unset)"
)

// Init adds global flags to the root command:
// - Config,
// - Verbose.
func Init(cmd *cobra.Command) {
	ff := cmd.PersistentFlags()

	ff.StringP(Config, ConfigShorthand, ConfigDefault, ConfigUsage)
	ff.BoolP(Verbose, VerboseShorthand, false, VerboseUsage)
}
