package main

import (
	"context"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/gdamore/tcell/v2"
	"github.com/pkg/errors"

	"github.com/sheikhrachel/gol-sim/game"
	"github.com/sheikhrachel/gol-sim/model"
	"github.com/sheikhrachel/gol-sim/utils"
	"github.com/sheikhrachel/gol-sim/view"
)

// app holds everything built at startup. It is created once and passed
// around explicitly.
type app struct {
	config    utils.Config
	logger    *log.Logger
	logCloser io.Closer

	snapshots *game.SnapshotChannel
	commands  *game.CommandChannel
	driver    *game.Driver
	consumer  consumer
}

type consumer interface {
	Run(ctx context.Context) error
}

// initializeGame sets up the driver, its channels and the consumer
func initializeGame(config utils.Config) (*app, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}

	logger, closer, err := utils.NewLogger(config)
	if err != nil {
		return nil, err
	}

	a := &app{
		config:    config,
		logger:    logger,
		logCloser: closer,
		snapshots: game.NewSnapshotChannel(),
		commands:  game.NewCommandChannel(config.CommandCapacity),
	}

	tick := model.Tick
	if config.UseParallel {
		tick = model.ParallelTicker(config.Workers)
	}

	a.driver, err = game.NewDriver(game.Config{
		Width:            config.Width,
		Height:           config.Height,
		TicksPerSecond:   config.TicksPerSecond,
		AliveProbability: config.AliveProbability,
		Seed:             config.Seed,
		Tick:             tick,
	}, a.snapshots, a.commands, logger.With("component", "driver"))
	if err != nil {
		_ = closer.Close()
		return nil, err
	}

	var (
		sub      = a.snapshots.Subscribe()
		renderer = model.GlyphRenderer{}
		status   = view.NewStatus(config.HistorySize)
		viewLog  = logger.With("component", "view")
	)
	if config.Headless {
		a.consumer = view.NewPlain(os.Stdout, renderer, sub, viewLog, config.FrameInterval(), status, true)
	} else {
		screen, err := tcell.NewScreen()
		if err != nil {
			_ = closer.Close()
			return nil, errors.Wrap(err, "[initializeGame] failed to create terminal screen")
		}
		a.consumer = view.NewTerminal(screen, renderer, sub, a.commands, viewLog, config.FrameInterval(), status)
	}

	if config.AutoStart {
		if err := a.commands.Send(game.Start); err != nil {
			logger.Warn("dropped start command", "err", err)
		}
	}

	return a, nil
}

// close releases the log file
func (a *app) close() {
	if err := a.logCloser.Close(); err != nil {
		a.logger.Error("failed to close log file", "err", err)
	}
}
