package modules

import (
	"github.com/nspcc-dev/pngme/cmd/internal/cmdprinter"
	printconfig "github.com/nspcc-dev/pngme/cmd/pngme/config/print"
	"github.com/nspcc-dev/pngme/cmd/pngme/internal/common"
	"github.com/nspcc-dev/pngme/cmd/pngme/internal/commonflags"
	"github.com/spf13/cobra"
)

func newPrintCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "print FILE",
		Short: "Print information about PNG file",
		Long: `Print all chunks of PNG file.

Text format lists chunk types with their data shown as text. Table and YAML
formats also show chunk offsets, CRC and type property bits.`,
		Args: cobra.ExactArgs(1),
		RunE: a.print,
	}

	cmd.Flags().StringP(commonflags.Output, commonflags.OutputShorthand, commonflags.OutputDefault, commonflags.OutputUsage)

	return cmd
}

func (a *app) print(cmd *cobra.Command, args []string) error {
	err := printconfig.BindFormat(a.cfg, cmd.Flags().Lookup(commonflags.Output))
	if err != nil {
		return err
	}

	format, err := printconfig.Format(a.cfg)
	if err != nil {
		return err
	}

	data, err := common.ReadFile(args[0])
	if err != nil {
		return err
	}

	if format == printconfig.FormatText {
		text, err := a.svc.Describe(data)
		if err != nil {
			return err
		}

		cmd.Println(text)

		return nil
	}

	infos, err := a.svc.Inspect(data)
	if err != nil {
		return err
	}

	if format == printconfig.FormatYAML {
		return cmdprinter.PrettyPrintChunksYAML(cmd, infos)
	}

	cmdprinter.PrettyPrintChunksTable(cmd, infos)

	return nil
}
