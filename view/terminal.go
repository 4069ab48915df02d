package view

import (
	"context"
	"io"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gdamore/tcell/v2"
	"github.com/pkg/errors"

	"github.com/sheikhrachel/gol-sim/game"
	"github.com/sheikhrachel/gol-sim/model"
)

// ErrQuit is returned by Terminal.Run when the user asks to leave
var ErrQuit = errors.New("quit requested")

const (
	offsetX = 1
	offsetY = 1

	defaultFrameInterval = 100 * time.Millisecond
)

// Terminal is the interactive consumer: it draws the latest snapshot on a
// tcell screen and turns key presses into driver commands.
type Terminal struct {
	screen   tcell.Screen
	renderer model.Renderer
	sub      *game.Subscription
	commands *game.CommandChannel
	logger   *log.Logger
	interval time.Duration
	status   *Status

	boardStyle  tcell.Style
	statusStyle tcell.Style
}

// NewTerminal wires a screen to the snapshot subscription and command channel.
// The screen is initialized and finalized by Run.
func NewTerminal(
	screen tcell.Screen,
	renderer model.Renderer,
	sub *game.Subscription,
	commands *game.CommandChannel,
	logger *log.Logger,
	interval time.Duration,
	status *Status,
) *Terminal {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	if status == nil {
		status = NewStatus(0)
	}
	if interval <= 0 {
		interval = defaultFrameInterval
	}
	return &Terminal{
		screen:      screen,
		renderer:    renderer,
		sub:         sub,
		commands:    commands,
		logger:      logger,
		interval:    interval,
		status:      status,
		boardStyle:  tcell.StyleDefault.Foreground(tcell.ColorGreen),
		statusStyle: tcell.StyleDefault.Bold(true),
	}
}

// Run draws frames and handles input until ctx is cancelled or the user quits
func (t *Terminal) Run(ctx context.Context) error {
	if err := t.screen.Init(); err != nil {
		return errors.Wrap(err, "[Terminal.Run] failed to initialize screen")
	}
	defer t.screen.Fini()

	events := make(chan tcell.Event, 16)
	quit := make(chan struct{})
	defer close(quit)
	go t.screen.ChannelEvents(events, quit)

	ticker := time.NewTicker(t.interval)
	defer ticker.Stop()

	t.draw()
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case ev := <-events:
			if t.handleEvent(ev) {
				t.logger.Info("quit requested")
				return ErrQuit
			}
		case <-ticker.C:
			t.draw()
		}
	}
}

// handleEvent reports whether the consumer should stop
func (t *Terminal) handleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		act, ok := keyAction(ev.Key(), ev.Rune(), t.sub.Latest().Running)
		if !ok {
			return false
		}
		switch {
		case act.quit:
			return true
		case act.print:
			t.logBoard()
		default:
			t.send(act.cmd)
		}
	case *tcell.EventResize:
		t.screen.Sync()
		t.draw()
	}
	return false
}

// logBoard writes the latest board to the log
func (t *Terminal) logBoard() {
	s := t.sub.Latest()
	if s.Current == nil {
		t.logger.Info("no board published yet")
		return
	}
	t.logger.Info("board state",
		"generation", s.Generation, "running", s.Running,
		"population", s.Current.Population(),
		"board", "\n"+s.Current.String(),
	)
}

func (t *Terminal) send(cmd game.Command) {
	if err := t.commands.Send(cmd); err != nil {
		t.logger.Warn("dropped command", "command", cmd, "err", err)
		return
	}
	t.logger.Debug("command sent", "command", cmd)
}

func (t *Terminal) draw() {
	s := t.sub.Latest()
	t.status.Observe(s, time.Now())

	t.screen.Clear()
	frame := t.renderer.Render(s)
	for y, row := range frame.Rows {
		for x, r := range row {
			t.screen.SetContent(offsetX+x, offsetY+y, r, nil, t.boardStyle)
		}
	}
	t.drawText(offsetX, offsetY+frame.Height+1, t.status.Line(s), t.statusStyle)
	t.drawText(offsetX, offsetY+frame.Height+2, helpLine, tcell.StyleDefault)
	t.screen.Show()
}

func (t *Terminal) drawText(x, y int, text string, style tcell.Style) {
	for _, r := range text {
		t.screen.SetContent(x, y, r, nil, style)
		x++
	}
}
