package cmd

import (
	"errors"
	"os"
	"strings"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"cosmossdk.io/log"

	"github.com/cosmos/ics20-escrow/client/cli"
)

const (
	appName = "escrowctl"

	flagConfig   = "config"
	flagLogLevel = "log_level"
	envPrefix    = "ESCROWCTL"
)

// NewRootCmd creates the escrowctl root command. Settings are read from flags, from
// ESCROWCTL_* environment variables and from an escrowctl.yaml config file, in that order
// of precedence.
func NewRootCmd() *cobra.Command {
	rootCmd := cli.GetToolsCmd()
	rootCmd.Use = appName
	rootCmd.SilenceUsage = true
	rootCmd.PersistentPreRunE = func(cmd *cobra.Command, _ []string) error {
		if err := initConfig(cmd); err != nil {
			return err
		}

		logger, err := newLogger()
		if err != nil {
			return err
		}
		logger.Debug("loaded configuration", "config", viper.ConfigFileUsed(), cli.FlagOutput, viper.GetString(cli.FlagOutput))
		cmd.SetContext(cli.WithLogger(cmd.Context(), logger))

		return nil
	}

	rootCmd.PersistentFlags().String(flagConfig, "", "path to the escrowctl config file (default ./escrowctl.yaml or $HOME/.escrowctl/escrowctl.yaml)")
	rootCmd.PersistentFlags().String(cli.FlagOutput, "json", "output format (json|indent)")
	rootCmd.PersistentFlags().String(flagLogLevel, "info", "the logging level (trace|debug|info|warn|error|fatal|panic|disabled or '*:<level>,<key>:<level>')")

	return rootCmd
}

func initConfig(cmd *cobra.Command) error {
	viper.SetEnvPrefix(envPrefix)
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_", ".", "_"))
	viper.AutomaticEnv()

	if err := viper.BindPFlags(cmd.Flags()); err != nil {
		return err
	}

	if configFile := viper.GetString(flagConfig); configFile != "" {
		viper.SetConfigFile(configFile)
	} else {
		viper.SetConfigName(appName)
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")
		if home, err := os.UserHomeDir(); err == nil {
			viper.AddConfigPath(home + "/." + appName)
		}
	}

	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return err
		}
	}

	return nil
}

func newLogger() (log.Logger, error) {
	logLvlStr := viper.GetString(flagLogLevel)

	var opts []log.Option
	if logLvl, err := zerolog.ParseLevel(logLvlStr); err == nil {
		opts = append(opts, log.LevelOption(logLvl))
	} else {
		filterFunc, err := log.ParseLogLevel(logLvlStr)
		if err != nil {
			return nil, err
		}
		opts = append(opts, log.FilterOption(filterFunc))
	}

	return log.NewLogger(os.Stderr, opts...), nil
}
