package game

import (
	"fmt"
	"time"

	"github.com/pkg/errors"
)

// DefaultCommandCapacity is the number of commands that can wait for the driver
const DefaultCommandCapacity = 100

// ErrFull is returned by Send when the queue is at capacity. The command is
// dropped, callers should log and move on.
var ErrFull = errors.New("command channel full")

// Command is a control message for the driver
type Command uint8

const (
	Start Command = iota + 1
	Stop
	Step
	Reset
)

func (c Command) String() string {
	switch c {
	case Start:
		return "start"
	case Stop:
		return "stop"
	case Step:
		return "step"
	case Reset:
		return "reset"
	default:
		return fmt.Sprintf("command(%d)", uint8(c))
	}
}

// CommandChannel is a bounded FIFO of commands from any number of senders to
// the driver. Sends never block.
type CommandChannel struct {
	ch chan Command
}

// NewCommandChannel creates a queue holding up to capacity commands,
// capacity <= 0 uses DefaultCommandCapacity.
func NewCommandChannel(capacity int) *CommandChannel {
	if capacity <= 0 {
		capacity = DefaultCommandCapacity
	}
	return &CommandChannel{ch: make(chan Command, capacity)}
}

// Send queues cmd or returns ErrFull
func (c *CommandChannel) Send(cmd Command) error {
	select {
	case c.ch <- cmd:
		return nil
	default:
		return errors.Wrapf(ErrFull, "[Send] dropped %s", cmd)
	}
}

// TryReceive returns the oldest pending command, ok is false when empty
func (c *CommandChannel) TryReceive() (cmd Command, ok bool) {
	select {
	case cmd = <-c.ch:
		return cmd, true
	default:
		return 0, false
	}
}

// receiveWithin waits up to d for a command, or until done is closed
func (c *CommandChannel) receiveWithin(done <-chan struct{}, d time.Duration) (Command, bool) {
	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case cmd := <-c.ch:
		return cmd, true
	case <-timer.C:
		return 0, false
	case <-done:
		return 0, false
	}
}

// Len returns the number of pending commands
func (c *CommandChannel) Len() int {
	return len(c.ch)
}

// Cap returns the queue capacity
func (c *CommandChannel) Cap() int {
	return cap(c.ch)
}
