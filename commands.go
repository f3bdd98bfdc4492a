package main

import (
	"fmt"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"montyhall/config"
	"montyhall/experiments"
	"montyhall/game"
)

// newRootCommand builds the CLI. Flag defaults come from cfg and flags
// write back into it.
func newRootCommand(cfg *config.Config) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "montyhall",
		Short: "Monte Carlo simulation of the Monty Hall problem",
		Long: `montyhall plays the Monty Hall game many times, picking the stick or switch
strategy at random for each game, and charts the running win rate of both.`,
		SilenceUsage: true,
		PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
			return configureLogger(cfg.LogLevel)
		},
	}

	rootCmd.PersistentFlags().StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "Log level (debug|info|warn|error)")
	rootCmd.PersistentFlags().IntVarP(&cfg.Iterations, "iterations", "n", cfg.Iterations, "Number of games per experiment")
	rootCmd.PersistentFlags().Uint64Var(&cfg.Seed, "seed", cfg.Seed, "Random seed (default: seeded from the clock)")
	rootCmd.PersistentFlags().StringVar(&cfg.OutputDir, "out", cfg.OutputDir, "Directory for exported results")
	rootCmd.PersistentFlags().BoolVar(&cfg.Export, "export", cfg.Export, "Export results as CSV and JSON")
	rootCmd.PersistentFlags().BoolVar(&cfg.Trace, "trace", cfg.Trace, "Log every step of every game")
	rootCmd.PersistentFlags().StringVar(&cfg.Switch, "switch-policy", cfg.Switch, "Door a switching player takes when several remain (random|lowest)")

	runCmd := &cobra.Command{
		Use:   "run",
		Short: "Run one experiment",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			runner, err := newRunner(cmd, cfg)
			if err != nil {
				return err
			}
			_, err = newExperiment(cmd, cfg, "montyhall").Run(runner, cfg.Doors)
			return err
		},
	}
	runCmd.Flags().IntVarP(&cfg.Doors, "doors", "d", cfg.Doors, "Number of doors")

	sweepCmd := &cobra.Command{
		Use:   "sweep",
		Short: "Run one experiment per door count",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			runner, err := newRunner(cmd, cfg)
			if err != nil {
				return err
			}
			_, err = newExperiment(cmd, cfg, "sweep").Sweep(runner, cfg.SweepDoors)
			return err
		},
	}
	sweepCmd.Flags().IntSliceVarP(&cfg.SweepDoors, "doors", "d", cfg.SweepDoors, "Door counts to sweep")

	rootCmd.AddCommand(runCmd, sweepCmd)
	return rootCmd
}

func newRunner(cmd *cobra.Command, cfg *config.Config) (*experiments.Runner, error) {
	policy, err := game.ParseSwitchPolicy(cfg.Switch)
	if err != nil {
		return nil, err
	}

	options := []experiments.Option{experiments.WithSwitchPolicy(policy)}
	if cfg.Seed != 0 || cmd.Flags().Changed("seed") {
		options = append(options, experiments.WithSeed(cfg.Seed))
	}
	if cfg.Trace {
		logger := log.Logger.Level(zerolog.DebugLevel).With().Str("component", "game").Logger()
		options = append(options, experiments.WithTracer(game.NewLogTracer(logger)))
	}
	return experiments.NewRunner(options...), nil
}

func newExperiment(cmd *cobra.Command, cfg *config.Config, name string) experiments.Experiment {
	e := experiments.Experiment{
		Name:       name,
		Iterations: cfg.Iterations,
		Out:        cmd.OutOrStdout(),
	}
	if cfg.Export {
		e.OutputDir = cfg.OutputDir
	}
	return e
}

func configureLogger(level string) error {
	lvl, err := zerolog.ParseLevel(level)
	if err != nil {
		return fmt.Errorf("invalid log level %q: %w", level, err)
	}
	log.Logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.TimeOnly}).
		Level(lvl).
		With().Timestamp().Logger()
	return nil
}
