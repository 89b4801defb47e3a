package modules

import (
	"github.com/nspcc-dev/pngme/cmd/pngme/internal/common"
	"github.com/spf13/cobra"
)

func newDecodeCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "decode FILE CHUNK_TYPE",
		Short: "Decode (read) a message from PNG file",
		Long:  `Decode (read) a message stored in the first chunk of CHUNK_TYPE type.`,
		Args:  cobra.ExactArgs(2),
		RunE:  a.decode,
	}
}

func (a *app) decode(cmd *cobra.Command, args []string) error {
	data, err := common.ReadFile(args[0])
	if err != nil {
		return err
	}

	msg, err := a.svc.Decode(data, args[1])
	if err != nil {
		return err
	}

	cmd.Printf("Chunk data: `%s`\n", msg)

	return nil
}
