package modules

import (
	"github.com/nspcc-dev/pngme/cmd/pngme/internal/common"
	"github.com/spf13/cobra"
)

func newRemoveCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "remove FILE CHUNK_TYPE [OUTPUT_FILE]",
		Short: "Remove a message from PNG file",
		Long: `Remove the first chunk of CHUNK_TYPE type from PNG file.

Result is written to OUTPUT_FILE, FILE is overwritten if OUTPUT_FILE is not
specified.`,
		Args: cobra.RangeArgs(2, 3),
		RunE: a.remove,
	}
}

func (a *app) remove(cmd *cobra.Command, args []string) error {
	in, chunkType := args[0], args[1]

	out := in
	if len(args) > 2 {
		out = args[2]
	}

	data, err := common.ReadFile(in)
	if err != nil {
		return err
	}

	res, err := a.svc.Remove(data, chunkType)
	if err != nil {
		return err
	}

	err = common.WriteFile(out, res)
	if err != nil {
		return err
	}

	common.PrintVerbose(cmd, a.verbose(), "Chunk %s removed, %d bytes written to %s", chunkType, len(res), out)

	return nil
}
