package main

import (
	"fmt"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/lixenwraith/not-rogue/audio"
	"github.com/lixenwraith/not-rogue/constants"
	"github.com/lixenwraith/not-rogue/core"
	"github.com/lixenwraith/not-rogue/engine"
	"github.com/lixenwraith/not-rogue/game"
	"github.com/lixenwraith/not-rogue/input"
	"github.com/lixenwraith/not-rogue/render"
	"github.com/lixenwraith/not-rogue/status"
)

func newPlayCmd(opts *runOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "play",
		Short: "Play in the terminal (default)",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPlay(cmd, opts)
		},
	}
}

func runPlay(cmd *cobra.Command, opts *runOptions) error {
	cfg, err := resolveConfig(cmd, opts)
	if err != nil {
		return err
	}

	logger, logFile := setupLogging(cfg.Log)
	if logFile != nil {
		defer logFile.Close()
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("initialize terminal: %w", err)
	}
	defer screen.Fini()

	// Panic recovery: the terminal is restored before the trace is printed
	core.SetCrashReset(screen.Fini)
	defer func() {
		if r := recover(); r != nil {
			core.HandleCrash(r)
		}
	}()

	screen.HideCursor()
	surface := render.NewTerminalSurface(screen, constants.GridWidth, constants.GridHeight)

	tracker := status.NewTracker(status.NewRegistry())
	router := engine.NewRouter()
	router.Register(tracker)
	router.Register(newEventLogger(logger))

	if cfg.Audio.Enabled {
		sm := audio.NewSoundManager(audio.Config{Volume: cfg.Audio.Volume, Logger: logger})
		if err := sm.Initialize(); err != nil {
			// Non-fatal, game can run without sound
			logger.WithError(err).Warn("audio unavailable")
		} else {
			defer sm.Cleanup()
			router.Register(sm)
		}
	}

	g, err := game.New(&game.Config{
		Surface:    surface,
		Logger:     logger,
		Router:     router,
		Seed:       cfg.Seed,
		SpawnEvery: cfg.SpawnEvery,
		Obstacles:  cfg.Obstacles,
	})
	if err != nil {
		return err
	}

	err = loop(screen, surface, g, cfg.Tick(), logger)
	logger.WithFields(tracker.Registry().Fields()).Info("session summary")
	return err
}

// loop serializes key and tick handling on the calling goroutine
func loop(screen tcell.Screen, surface *render.TerminalSurface, g *game.Game, interval time.Duration, log logrus.FieldLogger) error {
	events := make(chan tcell.Event, 64)
	done := make(chan struct{})
	defer close(done)
	core.Go(func() { pollEvents(screen, events, done) })

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	g.Tick()
	surface.Show()

	for {
		select {
		case ev := <-events:
			switch ev := ev.(type) {
			case *tcell.EventKey:
				if input.IsExit(ev) {
					log.WithFields(logrus.Fields{
						"tick":  g.TickCount(),
						"score": g.Score(),
					}).Info("exit requested")
					return nil
				}
				g.Key(input.FromTcell(ev))
				surface.Show()
			case *tcell.EventResize:
				screen.Sync()
			}

		case <-ticker.C:
			g.Tick()
			surface.Show()
		}
	}
}

// pollEvents forwards screen events until the screen is finalized or done closes
func pollEvents(screen tcell.Screen, events chan<- tcell.Event, done <-chan struct{}) {
	for {
		ev := screen.PollEvent()
		// nil after Fini
		if ev == nil {
			return
		}
		select {
		case events <- ev:
		case <-done:
			return
		}
	}
}
