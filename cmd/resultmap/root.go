package main

import (
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

const (
	cfgKeyMode      = "mode"
	cfgKeyFormat    = "format"
	cfgKeyNoneToken = "none_token"
)

type rootOptions struct {
	cfgFile string
	verbose bool
	cfg     *viper.Viper
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{cfg: viper.New()}

	cmd := &cobra.Command{
		Use:   "resultmap",
		Short: "Resolve a sequence of foos to their bar values",
		Long: `resultmap looks up the bar held by every foo and checks that it reads "bar".
In "all" mode it prints every value or only the first error. In "each" mode
it prints one line per foo.`,
		Version: version,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			setupLogging(opts.verbose)
			return opts.loadConfig()
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.PersistentFlags().StringVar(&opts.cfgFile, "config", "", "config file (default is $HOME/.resultmap.yaml)")
	cmd.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "enable verbose output")

	cmd.AddCommand(newCheckCmd(opts))
	cmd.AddCommand(newVersionCmd())
	return cmd
}

func (o *rootOptions) loadConfig() error {
	o.cfg.SetDefault(cfgKeyMode, modeAll)
	o.cfg.SetDefault(cfgKeyFormat, formatText)
	o.cfg.SetDefault(cfgKeyNoneToken, "-")

	o.cfg.SetEnvPrefix("RESULTMAP")
	o.cfg.AutomaticEnv()

	if o.cfgFile != "" {
		o.cfg.SetConfigFile(o.cfgFile)
	} else {
		home, err := os.UserHomeDir()
		if err != nil {
			slog.Debug("no home directory, skipping config file", "error", err)
			return nil
		}
		o.cfg.AddConfigPath(home)
		o.cfg.SetConfigType("yaml")
		o.cfg.SetConfigName(".resultmap")
	}

	if err := o.cfg.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if o.cfgFile == "" && errors.As(err, &notFound) {
			return nil
		}
		return err
	}

	slog.Debug("using config file", "file", o.cfg.ConfigFileUsed())
	return nil
}

func setupLogging(verbose bool) {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	}))
	slog.SetDefault(logger)
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the resultmap version",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintln(cmd.OutOrStdout(), "resultmap", version)
		},
	}
}
