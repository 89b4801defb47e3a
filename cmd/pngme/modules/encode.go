package modules

import (
	"github.com/nspcc-dev/pngme/cmd/pngme/internal/common"
	"github.com/spf13/cobra"
)

func newEncodeCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "encode FILE CHUNK_TYPE MESSAGE [OUTPUT_FILE]",
		Short: "Encode (add) a message to PNG file",
		Long: `Encode (add) a message to PNG file.

The message is stored in a new chunk of CHUNK_TYPE type appended to the end
of the file. CHUNK_TYPE is 4 ASCII letters, try "RuSt". Result is written to
OUTPUT_FILE, FILE is overwritten if OUTPUT_FILE is not specified.`,
		Args: cobra.RangeArgs(3, 4),
		RunE: a.encode,
	}
}

func (a *app) encode(cmd *cobra.Command, args []string) error {
	in, chunkType, msg := args[0], args[1], args[2]

	out := in
	if len(args) > 3 {
		out = args[3]
	}

	data, err := common.ReadFile(in)
	if err != nil {
		return err
	}

	res, err := a.svc.Encode(data, chunkType, msg)
	if err != nil {
		return err
	}

	err = common.WriteFile(out, res)
	if err != nil {
		return err
	}

	common.PrintVerbose(cmd, a.verbose(), "Message of %d bytes encoded into %s chunk of %s", len(msg), chunkType, out)

	return nil
}
