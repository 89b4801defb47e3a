package common

import (
	"github.com/spf13/cobra"
)

// PrintVerbose prints to the command output if verbose is set.
func PrintVerbose(cmd *cobra.Command, verbose bool, format string, a ...any) {
	if verbose {
		cmd.Printf(format+"\n", a...)
	}
}
