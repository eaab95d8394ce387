package cli

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/spaghettifunk/icemath/engine/core"
	"github.com/spaghettifunk/icemath/engine/geometry"
	"github.com/spaghettifunk/icemath/engine/math"
)

// app holds what the persistent pre-run resolved for the subcommands.
type app struct {
	configPath string
	logLevel   string
	config     *core.Config
}

// NewRootCommand builds the icemath command tree.
func NewRootCommand() *cobra.Command {
	a := &app{}

	root := &cobra.Command{
		Use:           "icemath",
		Short:         "Numeric kernel toolbox: scalar math, number theory, vertex buffers and random numbers",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup(cmd)
		},
	}

	root.PersistentFlags().StringVar(&a.configPath, "config", "icemath.toml", "path to the TOML configuration file")
	root.PersistentFlags().StringVar(&a.logLevel, "log-level", "", "log level (debug, info, warn, error), overrides the config file")

	root.AddCommand(
		newEvalCommand(a),
		newFuncsCommand(a),
		newVerticesCommand(a),
		newRandCommand(a),
		newBatchCommand(a),
		newCameraCommand(a),
		newConfigCommand(a),
	)
	return root
}

func (a *app) setup(cmd *cobra.Command) error {
	cfg, err := core.LoadConfig(a.configPath)
	if err != nil {
		return err
	}
	a.config = cfg

	level := cfg.LogLevel
	if cmd.Flags().Changed("log-level") {
		level = a.logLevel
	}
	if err := core.SetLogLevel(level); err != nil {
		return err
	}

	geometry.Configure(cfg.Geometry)
	if cfg.Random.Seed != 0 {
		math.SeedRandom(cfg.Random.Seed)
	}
	core.LogDebug("configuration loaded from %s", a.configPath)
	return nil
}

// Execute runs the command line with args. ctx is cancelled on SIGINT/SIGTERM
// by the caller.
func Execute(ctx context.Context, args []string) error {
	root := NewRootCommand()
	root.SetArgs(args)
	if err := root.ExecuteContext(ctx); err != nil {
		core.LogError("%s", err.Error())
		return err
	}
	return nil
}
