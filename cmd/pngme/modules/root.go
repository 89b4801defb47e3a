package modules

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/mitchellh/go-homedir"
	"github.com/nspcc-dev/pngme/cmd/pngme/config"
	loggerconfig "github.com/nspcc-dev/pngme/cmd/pngme/config/logger"
	"github.com/nspcc-dev/pngme/cmd/pngme/internal/common"
	"github.com/nspcc-dev/pngme/cmd/pngme/internal/commonflags"
	"github.com/nspcc-dev/pngme/misc"
	"github.com/nspcc-dev/pngme/pkg/services/message"
	"github.com/nspcc-dev/pngme/pkg/util/logger"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// app holds the state initialized before any subcommand is run.
type app struct {
	cfg *config.Config
	log *zap.Logger
	svc *message.Service
}

// NewRootCommand constructs pngme command tree.
func NewRootCommand() *cobra.Command {
	a := new(app)

	rootCmd := &cobra.Command{
		Use:   "pngme",
		Short: "Hides secret messages in PNG files",
		Long: `pngme hides text messages in PNG files by adding auxiliary chunks.

Messages can be encoded (added), decoded (read) and removed, all other chunks
of the image are kept byte-for-byte. Files are parsed strictly: a file with
a bad signature, truncated chunk or wrong chunk CRC is rejected.`,
		Args:              cobra.NoArgs,
		RunE:              entryPoint,
		PersistentPreRunE: a.setup,
		SilenceUsage:      true,
		SilenceErrors:     true,
	}

	// use stdout as default output for cmd.Print()
	rootCmd.SetOut(os.Stdout)
	commonflags.Init(rootCmd)
	rootCmd.Flags().Bool(commonflags.Version, false, commonflags.VersionUsage)

	rootCmd.AddCommand(
		newEncodeCmd(a),
		newDecodeCmd(a),
		newRemoveCmd(a),
		newPrintCmd(a),
	)

	return rootCmd
}

// Execute runs pngme with the command line arguments. Returned error carries
// the exit code, see common.WrapExitErr.
func Execute() error {
	return common.WrapExitErr(NewRootCommand().Execute())
}

func entryPoint(cmd *cobra.Command, _ []string) error {
	printVersion, _ := cmd.Flags().GetBool(commonflags.Version)
	if printVersion {
		cmd.Print(misc.BuildInfo("pngme"))

		return nil
	}

	return cmd.Usage()
}

// setup reads configuration and sets up the logger and the message service.
func (a *app) setup(cmd *cobra.Command, _ []string) error {
	cfgFile, _ := cmd.Flags().GetString(commonflags.Config)

	var opt config.Option
	if cfgFile != "" {
		opt = config.WithConfigFile(cfgFile)
	} else {
		home, err := homedir.Dir()
		if err != nil {
			return fmt.Errorf("locate home directory: %w", err)
		}

		opt = config.WithOptionalConfigFile(filepath.Join(home, ".config", "pngme", "config.yaml"))
	}

	var err error

	a.cfg, err = config.New(opt)
	if err != nil {
		return err
	}

	err = a.cfg.BindFlag(commonflags.Verbose, cmd.Flags().Lookup(commonflags.Verbose))
	if err != nil {
		return err
	}

	err = config.Validate(a.cfg)
	if err != nil {
		return fmt.Errorf("invalid config %s: %w", a.cfg.Used(), err)
	}

	var logPrm logger.Prm

	lvl := loggerconfig.Level(a.cfg)
	if a.verbose() {
		lvl = "debug"
	}

	err = logPrm.SetLevelString(lvl)
	if err != nil {
		return fmt.Errorf("invalid logger level: %w", err)
	}

	err = logPrm.SetEncoding(loggerconfig.Encoding(a.cfg))
	if err != nil {
		return err
	}

	a.log, err = logger.NewLogger(&logPrm)
	if err != nil {
		return fmt.Errorf("build logger: %w", err)
	}

	if used := a.cfg.Used(); used != "" {
		a.log.Debug("using config file", zap.String("path", used))
	}

	a.svc = message.New(message.WithLogger(a.log))

	return nil
}

func (a *app) verbose() bool {
	return config.BoolSafe(a.cfg, commonflags.Verbose)
}
