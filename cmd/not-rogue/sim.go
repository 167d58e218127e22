package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/lixenwraith/not-rogue/constants"
	"github.com/lixenwraith/not-rogue/engine"
	"github.com/lixenwraith/not-rogue/game"
	"github.com/lixenwraith/not-rogue/input"
	"github.com/lixenwraith/not-rogue/render"
	"github.com/lixenwraith/not-rogue/rng"
	"github.com/lixenwraith/not-rogue/status"
)

// simKeys is the pool random input is drawn from; reset is handled separately
var simKeys = []input.Key{
	input.Char('w'), input.Char('a'), input.Char('s'), input.Char('d'),
	input.Raw(input.RawUp), input.Raw(input.RawDown), input.Raw(input.RawLeft), input.Raw(input.RawRight),
}

type simOptions struct {
	ticks     int
	inputSeed uint64
	dump      bool
}

func newSimCmd(run *runOptions) *cobra.Command {
	opts := &simOptions{}

	cmd := &cobra.Command{
		Use:   "sim",
		Short: "Run a headless game driven by random input",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSim(cmd, run, opts)
		},
	}

	cmd.Flags().IntVar(&opts.ticks, "ticks", 1000, "ticks to simulate")
	cmd.Flags().Uint64Var(&opts.inputSeed, "input-seed", 1, "seed for the random key stream")
	cmd.Flags().BoolVar(&opts.dump, "dump", false, "print the final screen")

	return cmd
}

func runSim(cmd *cobra.Command, run *runOptions, opts *simOptions) error {
	if opts.ticks < 0 {
		return fmt.Errorf("ticks must not be negative: %d", opts.ticks)
	}

	cfg, err := resolveConfig(cmd, run)
	if err != nil {
		return err
	}

	logger, logFile := setupLogging(cfg.Log)
	if logFile != nil {
		defer logFile.Close()
	}

	tracker := status.NewTracker(status.NewRegistry())
	router := engine.NewRouter()
	router.Register(tracker)
	router.Register(newEventLogger(logger))

	buf := render.NewBuffer(constants.GridWidth, constants.GridHeight)
	g, err := game.New(&game.Config{
		Surface:    buf,
		Logger:     logger,
		Router:     router,
		Seed:       cfg.Seed,
		SpawnEvery: cfg.SpawnEvery,
		Obstacles:  cfg.Obstacles,
	})
	if err != nil {
		return err
	}

	src := rng.NewFastRand(opts.inputSeed)
	for i := 0; i < opts.ticks; i++ {
		if g.GameOver() {
			g.Key(input.Char(constants.KeyReset))
		}
		// Roughly one key per two ticks
		if src.Intn(2) == 0 {
			g.Key(simKeys[src.Intn(len(simKeys))])
		}
		g.Tick()
	}

	out := cmd.OutOrStdout()
	writeSummary(out, g, tracker.Registry())
	if opts.dump {
		fmt.Fprintln(out, buf.String())
	}
	return nil
}

func writeSummary(w io.Writer, g *game.Game, reg *status.Registry) {
	p := g.Player()
	fmt.Fprintf(w, "ticks: %d\n", g.TickCount())
	fmt.Fprintf(w, "state: %s\n", g.StateName())
	fmt.Fprintf(w, "runs: %d\n", reg.Int(status.KeyRuns))
	fmt.Fprintf(w, "deaths: %d\n", reg.Int(status.KeyDeaths))
	fmt.Fprintf(w, "spawns: %d\n", reg.Int(status.KeySpawns))
	fmt.Fprintf(w, "kills: %d\n", reg.Int(status.KeyKills))
	fmt.Fprintf(w, "hits: %d\n", reg.Int(status.KeyHits))
	fmt.Fprintf(w, "damage: %d dealt, %d taken\n", reg.Int(status.KeyDamageDealt), reg.Int(status.KeyDamageTaken))
	fmt.Fprintf(w, "moves: %d\n", reg.Int(status.KeyMoves))
	fmt.Fprintf(w, "best score: %d\n", reg.Int(status.KeyBestScore))
	fmt.Fprintf(w, "score: %d\n", g.Score())
	fmt.Fprintf(w, "enemies: %d/%d\n", g.Enemies().Len(), g.Enemies().Cap())
	fmt.Fprintf(w, "player: %d/%d HP at (%d,%d)\n", p.CurrentHealth, p.MaxHealth, p.X, p.Y)
}
