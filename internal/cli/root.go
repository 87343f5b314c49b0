// Package cli wires the disjoint command tree: cobra commands on top of the
// viper configuration, a zap logger and the solver packages.
package cli

import (
	"context"
	"strings"

	"github.com/katalvlaran/disjoint/internal/config"
	"github.com/katalvlaran/disjoint/internal/logutil"
	"github.com/pingcap/errors"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

// app is the state shared by every command of one invocation.
type app struct {
	v       *viper.Viper
	cfgFile string
	envFile string
	cfg     config.Config
	logger  *zap.Logger
}

// NewRootCommand builds a fresh command tree with its own viper instance.
func NewRootCommand() *cobra.Command {
	a := &app{
		v:      viper.New(),
		logger: zap.NewNop(),
	}

	root := &cobra.Command{
		Use:               "disjoint",
		Short:             "Union-find clustering toolkit",
		Long:              "disjoint wires junction boxes shortest-cable-first and measures regions of character grids, both on top of a generic union-find store.",
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: a.setup,
	}

	pf := root.PersistentFlags()
	pf.StringVar(&a.cfgFile, "config", "", "config file (default .disjoint.yaml)")
	pf.StringVar(&a.envFile, "env-file", "", "dotenv file (default .env when present)")
	pf.String("log-level", "info", "log level: debug, info, warn, error")

	root.AddCommand(
		newSolveCommand(a),
		newRegionsCommand(a),
		newVersionCommand(),
	)

	return root
}

// Execute runs the command tree under ctx.
func Execute(ctx context.Context) error {
	return NewRootCommand().ExecuteContext(ctx)
}

// setup loads configuration for the command being run and builds the logger.
// Flags are bound here rather than at construction so that subcommands
// sharing a flag name do not overwrite each other's bindings.
func (a *app) setup(cmd *cobra.Command, _ []string) error {
	if err := config.Init(a.v, a.cfgFile, a.envFile); err != nil {
		return err
	}
	if err := bindFlags(a.v, cmd.Flags()); err != nil {
		return err
	}

	cfg, err := config.Load(a.v)
	if err != nil {
		return err
	}
	a.cfg = cfg

	logger, err := logutil.New(cfg.LogLevel)
	if err != nil {
		return err
	}
	a.logger = logger
	a.logger.Debug("configuration loaded",
		zap.String("command", cmd.Name()),
		zap.String("input", cfg.Input),
		zap.String("config", a.v.ConfigFileUsed()))

	return nil
}

// runE adapts fn to cobra's RunE and flushes the logger once fn returns,
// whether or not it failed.
func (a *app) runE(fn func(cmd *cobra.Command) error) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, _ []string) error {
		defer a.syncLogger()
		return fn(cmd)
	}
}

// syncLogger flushes buffered log entries. Sync on a terminal stderr fails
// with EINVAL or ENOTTY on some platforms, so the error is dropped.
func (a *app) syncLogger() {
	_ = a.logger.Sync()
}

// bindFlags binds every flag except the bootstrap ones to the viper key of
// the same name with dashes turned into underscores.
func bindFlags(v *viper.Viper, fs *pflag.FlagSet) error {
	var err error
	fs.VisitAll(func(f *pflag.Flag) {
		if err != nil {
			return
		}
		switch f.Name {
		case "config", "env-file", "help":
			return
		}
		key := strings.ReplaceAll(f.Name, "-", "_")
		if bindErr := v.BindPFlag(key, f); bindErr != nil {
			err = errors.Annotatef(bindErr, "bind flag --%s", f.Name)
		}
	})

	return err
}
