// Package main is the entry point for the not-rogue terminal game
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/lixenwraith/not-rogue/config"
)

// runOptions carries the flags shared by every subcommand
type runOptions struct {
	configPath string
	seed       uint64
	tick       string
	spawnEvery int
	obstacles  int
	debug      bool
	noAudio    bool
	logLevel   string
}

func newRootCmd() *cobra.Command {
	opts := &runOptions{}

	rootCmd := &cobra.Command{
		Use:           "not-rogue",
		Short:         "Definitely Not Rogue, a turn-stepped terminal dungeon crawl",
		Long:          `Move with w/a/s/d or the arrow keys, press r to start a run and ` + "`" + ` to end it. Esc or Ctrl+C exits.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPlay(cmd, opts)
		},
	}

	flags := rootCmd.PersistentFlags()
	flags.StringVar(&opts.configPath, "config", "", "path to a TOML config file")
	flags.Uint64Var(&opts.seed, "seed", 0, "RNG seed until the first restart")
	flags.StringVar(&opts.tick, "tick", "", "tick interval, e.g. 100ms")
	flags.IntVar(&opts.spawnEvery, "spawn-every", 0, "ticks between enemy spawns")
	flags.IntVar(&opts.obstacles, "obstacles", 0, "random wall cells to scatter")
	flags.BoolVar(&opts.debug, "debug", false, "write logs to the log directory")
	flags.BoolVar(&opts.noAudio, "no-audio", false, "disable sound effects")
	flags.StringVar(&opts.logLevel, "log-level", "", "log level: trace, debug, info, warn, error")

	rootCmd.AddCommand(newPlayCmd(opts))
	rootCmd.AddCommand(newSimCmd(opts))
	rootCmd.AddCommand(newSchemaCmd())

	return rootCmd
}

// resolveConfig layers file, environment, then explicitly set flags
func resolveConfig(cmd *cobra.Command, opts *runOptions) (*config.Config, error) {
	cfg, err := config.Load(opts.configPath)
	if err != nil {
		return nil, err
	}
	if err := cfg.ApplyEnv(); err != nil {
		return nil, err
	}

	flags := cmd.Flags()
	if flags.Changed("seed") {
		cfg.Seed = opts.seed
	}
	if flags.Changed("tick") {
		cfg.TickInterval = opts.tick
	}
	if flags.Changed("spawn-every") {
		cfg.SpawnEvery = opts.spawnEvery
	}
	if flags.Changed("obstacles") {
		cfg.Obstacles = opts.obstacles
	}
	if flags.Changed("debug") {
		cfg.Log.Debug = opts.debug
	}
	if flags.Changed("no-audio") && opts.noAudio {
		cfg.Audio.Enabled = false
	}
	if flags.Changed("log-level") {
		cfg.Log.Level = opts.logLevel
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
