package game

import (
	"context"
	"io"
	"math/rand/v2"
	"time"

	"github.com/charmbracelet/log"
	"github.com/pkg/errors"

	"github.com/sheikhrachel/gol-sim/model"
)

const (
	// DefaultTicksPerSecond is the tick rate used when none is configured
	DefaultTicksPerSecond = 30.0
	// DefaultAliveProbability is the chance a cell starts alive
	DefaultAliveProbability = 0.5
)

// Config describes the board and pacing a Driver runs with
type Config struct {
	Width            int
	Height           int
	TicksPerSecond   float64
	AliveProbability float64
	// Seed makes randomization reproducible, 0 picks a random seed
	Seed uint64
	// Tick computes the next generation, nil uses model.Tick
	Tick model.TickFunc
}

// TickInterval returns the sleep between generations while running
func (c Config) TickInterval() time.Duration {
	tps := c.TicksPerSecond
	if tps <= 0 {
		tps = DefaultTicksPerSecond
	}
	return time.Duration(float64(time.Second) / tps)
}

// Driver owns the live board and run state. It is the only writer: consumers
// see copies through the snapshot channel and talk back through commands.
type Driver struct {
	interval    time.Duration
	probability float64
	rng         *rand.Rand
	tick        model.TickFunc
	logger      *log.Logger

	snapshots *SnapshotChannel
	commands  *CommandChannel

	running    bool
	generation int
	width      int
	height     int
	current    *model.Board
	previous   *model.Board

	// copies handed to consumers, rebuilt only when the boards change
	published model.Snapshot
	// published.Current as it was before a single tick, reused as the next
	// published.Previous. nil when it no longer matches d.previous.
	frozenPrevious *model.Board
	dirty     bool
	lonely    bool
}

// NewDriver creates a stopped driver with a freshly randomized board
func NewDriver(cfg Config, snapshots *SnapshotChannel, commands *CommandChannel, logger *log.Logger) (*Driver, error) {
	board, err := model.NewBoard(cfg.Width, cfg.Height)
	if err != nil {
		return nil, errors.Wrap(err, "[NewDriver] failed to create board")
	}
	if snapshots == nil || commands == nil {
		return nil, errors.New("[NewDriver] snapshot and command channels are required")
	}
	if logger == nil {
		logger = log.New(io.Discard)
	}

	probability := cfg.AliveProbability
	if probability < 0 || probability > 1 {
		return nil, errors.Errorf("[NewDriver] alive probability %v outside [0,1]", probability)
	}

	seed := cfg.Seed
	if seed == 0 {
		seed = rand.Uint64()
	}

	tick := cfg.Tick
	if tick == nil {
		tick = model.Tick
	}

	d := &Driver{
		interval:    cfg.TickInterval(),
		probability: probability,
		rng:         rand.New(rand.NewPCG(seed, seed>>1|1)),
		tick:        tick,
		logger:      logger,
		snapshots:   snapshots,
		commands:    commands,
		width:       cfg.Width,
		height:      cfg.Height,
	}
	board.Randomize(d.rng, d.probability)
	d.current = board
	d.previous = board
	d.dirty = true

	d.logger.Info("board created",
		"width", cfg.Width, "height", cfg.Height,
		"population", board.Population(), "seed", seed,
	)
	return d, nil
}

// Run drives the simulation until ctx is cancelled. Every iteration publishes
// a snapshot, ticks once if running and applies at most one command.
func (d *Driver) Run(ctx context.Context) error {
	d.logger.Info("simulation started", "interval", d.interval)
	defer d.logger.Info("simulation finished", "generation", d.generation)

	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		d.publish()

		if d.running {
			if !d.sleep(ctx) {
				return ctx.Err()
			}
			d.advance()
			if cmd, ok := d.commands.TryReceive(); ok {
				d.apply(cmd)
			}
			continue
		}

		// Stopped: the receive waits up to one tick interval so an idle
		// driver does not spin. A pending command is taken at once and
		// still only one per iteration.
		if cmd, ok := d.commands.receiveWithin(ctx.Done(), d.interval); ok {
			d.apply(cmd)
		}
	}
}

func (d *Driver) snapshot() model.Snapshot {
	if d.dirty {
		d.published.Current = d.current.Clone()
		switch {
		case d.previous == d.current:
			d.published.Previous = d.published.Current
		case d.frozenPrevious != nil:
			d.published.Previous = d.frozenPrevious
		default:
			d.published.Previous = d.previous.Clone()
		}
		d.frozenPrevious = nil
		d.dirty = false
	}
	d.published.Running = d.running
	d.published.Generation = d.generation
	return d.published
}

func (d *Driver) publish() {
	err := d.snapshots.Publish(d.snapshot())
	switch {
	case err == nil:
		d.lonely = false
	case errors.Is(err, ErrNoSubscribers):
		if !d.lonely {
			d.logger.Debug("published snapshot with no subscribers", "generation", d.generation)
			d.lonely = true
		}
	default:
		d.logger.Warn("failed to publish snapshot", "err", err)
	}
}

func (d *Driver) sleep(ctx context.Context) bool {
	timer := time.NewTimer(d.interval)
	defer timer.Stop()

	select {
	case <-timer.C:
		return true
	case <-ctx.Done():
		return false
	}
}

func (d *Driver) apply(cmd Command) {
	switch cmd {
	case Start:
		d.running = true
	case Stop:
		d.running = false
	case Step:
		d.advance()
	case Reset:
		d.reset()
	default:
		d.logger.Warn("ignoring unknown command", "command", cmd)
		return
	}
	d.logger.Info("command applied",
		"command", cmd, "running", d.running, "generation", d.generation,
	)
}

func (d *Driver) advance() {
	d.frozenPrevious = nil
	if !d.dirty {
		d.frozenPrevious = d.published.Current
	}
	d.previous = d.current
	d.current = d.tick(d.current)
	d.generation++
	d.dirty = true
	d.logger.Debug("tick", "generation", d.generation)
}

func (d *Driver) reset() {
	board, _ := model.NewBoard(d.width, d.height) // dimensions were checked in NewDriver
	board.Randomize(d.rng, d.probability)

	d.running = false
	d.frozenPrevious = nil
	d.generation = 0
	d.current = board
	d.previous = board
	d.dirty = true
}
