package cmd

import (
	"promptpack/pkg/config"
	"promptpack/pkg/logging"
	"promptpack/pkg/version"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

// app carries the state shared by all commands of one invocation.
type app struct {
	v          *viper.Viper
	configFile string
	settings   config.Settings
	logger     *zap.Logger
}

// NewRootCmd builds the command tree and returns it with a function that
// reports the logger the invocation ended up using.
func NewRootCmd() (*cobra.Command, func() *zap.Logger) {
	a := &app{v: viper.New(), logger: zap.NewNop()}

	rootCmd := &cobra.Command{
		Use:   "promptpack",
		Short: "promptpack packs a directory of text files into one LLM prompt",
		Long: `promptpack filters the files of a directory through exclude or include-only
patterns and concatenates the text files that remain into a single prompt,
ready to paste into a chat with a language model.`,
		SilenceUsage:      true,
		PersistentPreRunE: a.setup,
	}

	rootCmd.PersistentFlags().StringVar(&a.configFile, "config", "", "Config file (default is .promptpack.yaml in the working or home directory)")
	rootCmd.PersistentFlags().Bool("debug", false, "Enable debug logging")
	_ = a.v.BindPFlag(config.KeyDebug, rootCmd.PersistentFlags().Lookup("debug"))

	rootCmd.AddCommand(newGenerateCmd(a), newDefaultsCmd(), newVersionCmd())
	return rootCmd, func() *zap.Logger { return a.logger }
}

// setup loads the settings and builds the logger before any command runs.
func (a *app) setup(cmd *cobra.Command, args []string) error {
	settings, err := config.Load(a.v, a.configFile, nil)
	if err != nil {
		return err
	}
	a.settings = settings

	v := version.Get()
	logger, err := logging.New(settings.Debug, "promptpack", v.Version)
	if err != nil {
		return err
	}
	a.logger = logger
	a.logger.Debug("Loaded settings", zap.Any("settings", settings))
	return nil
}

// Execute runs the root command and returns its error together with the logger it used.
func Execute() (*zap.Logger, error) {
	rootCmd, logger := NewRootCmd()
	err := rootCmd.Execute()
	return logger(), err
}
