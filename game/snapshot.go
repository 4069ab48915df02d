package game

import (
	"sync"
	"sync/atomic"

	"github.com/pkg/errors"

	"github.com/sheikhrachel/gol-sim/model"
)

// ErrNoSubscribers is returned by Publish when nobody is subscribed. The
// value is still stored and later subscribers will see it.
var ErrNoSubscribers = errors.New("snapshot channel has no subscribers")

// SnapshotChannel holds the latest published snapshot. Publishing overwrites
// it, readers only ever see the newest value.
type SnapshotChannel struct {
	latest  atomic.Pointer[model.Snapshot]
	version atomic.Uint64

	mu   sync.Mutex
	subs map[*Subscription]struct{}
}

// NewSnapshotChannel creates a channel holding the zero snapshot
func NewSnapshotChannel() *SnapshotChannel {
	c := &SnapshotChannel{subs: make(map[*Subscription]struct{})}
	c.latest.Store(&model.Snapshot{})
	return c
}

// Publish replaces the held snapshot and wakes subscribers. It never blocks.
func (c *SnapshotChannel) Publish(s model.Snapshot) error {
	c.latest.Store(&s)
	c.version.Add(1)

	c.mu.Lock()
	defer c.mu.Unlock()

	if len(c.subs) == 0 {
		return ErrNoSubscribers
	}
	for sub := range c.subs {
		select {
		case sub.changed <- struct{}{}:
		default:
		}
	}
	return nil
}

// Subscribe returns a handle reading the latest snapshot
func (c *SnapshotChannel) Subscribe() *Subscription {
	sub := &Subscription{
		c:       c,
		changed: make(chan struct{}, 1),
	}

	c.mu.Lock()
	c.subs[sub] = struct{}{}
	c.mu.Unlock()

	return sub
}

// Subscribers returns the number of open subscriptions
func (c *SnapshotChannel) Subscribers() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.subs)
}

// Subscription reads from a SnapshotChannel. Each subscription is
// independent of the others' read cadence.
type Subscription struct {
	c       *SnapshotChannel
	changed chan struct{}
	once    sync.Once
}

// Latest returns the most recently published snapshot. Its boards are
// shared with other subscribers and later publishes, do not modify them.
func (s *Subscription) Latest() model.Snapshot {
	return *s.c.latest.Load()
}

// Version returns how many snapshots have been published so far
func (s *Subscription) Version() uint64 {
	return s.c.version.Load()
}

// Changed receives a value after one or more publishes since the last receive
func (s *Subscription) Changed() <-chan struct{} {
	return s.changed
}

// Close detaches the subscription, Latest keeps working
func (s *Subscription) Close() {
	s.once.Do(func() {
		s.c.mu.Lock()
		delete(s.c.subs, s)
		s.c.mu.Unlock()
	})
}
