package view

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/log"
	"github.com/pkg/errors"

	"github.com/sheikhrachel/gol-sim/game"
	"github.com/sheikhrachel/gol-sim/model"
)

const clearScreen = "\033[H\033[2J"

// Plain is the headless consumer: it prints each new frame to a writer and
// takes no input.
type Plain struct {
	out      io.Writer
	renderer model.Renderer
	sub      *game.Subscription
	logger   *log.Logger
	interval time.Duration
	status   *Status
	clear    bool

	last model.Snapshot
}

// NewPlain creates a headless consumer. clear prefixes every frame with an
// ANSI clear screen sequence.
func NewPlain(
	out io.Writer,
	renderer model.Renderer,
	sub *game.Subscription,
	logger *log.Logger,
	interval time.Duration,
	status *Status,
	clear bool,
) *Plain {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	if status == nil {
		status = NewStatus(0)
	}
	if interval <= 0 {
		interval = defaultFrameInterval
	}
	return &Plain{
		out:      out,
		renderer: renderer,
		sub:      sub,
		logger:   logger,
		interval: interval,
		status:   status,
		clear:    clear,
	}
}

// Run prints frames until ctx is cancelled
func (p *Plain) Run(ctx context.Context) error {
	ticker := time.NewTicker(p.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			if err := p.Frame(); err != nil {
				return err
			}
		}
	}
}

// Frame prints the latest snapshot unless it is the one printed last time
func (p *Plain) Frame() error {
	s := p.sub.Latest()
	if s.Current == nil || s == p.last {
		return nil
	}
	p.last = s
	p.status.Observe(s, time.Now())

	prefix := ""
	if p.clear {
		prefix = clearScreen
	}
	if _, err := fmt.Fprintf(p.out, "%s%s%s\n", prefix, p.renderer.Render(s), p.status.Line(s)); err != nil {
		return errors.Wrap(err, "[Plain.Frame] failed to write frame")
	}
	return nil
}
