package game

import (
	"sync"
	"testing"
	"time"

	"github.com/pkg/errors"
)

func TestCommandChannelFIFO(t *testing.T) {
	c := NewCommandChannel(4)
	for _, cmd := range []Command{Start, Step, Stop, Reset} {
		if err := c.Send(cmd); err != nil {
			t.Fatalf("Send(%s): %v", cmd, err)
		}
	}
	for _, want := range []Command{Start, Step, Stop, Reset} {
		got, ok := c.TryReceive()
		if !ok || got != want {
			t.Fatalf("TryReceive() = %s, %v; want %s", got, ok, want)
		}
	}
	if _, ok := c.TryReceive(); ok {
		t.Fatal("TryReceive on an empty channel returned a command")
	}
}

func TestCommandChannelFull(t *testing.T) {
	c := NewCommandChannel(0)
	if c.Cap() != DefaultCommandCapacity {
		t.Fatalf("Cap() = %d, want %d", c.Cap(), DefaultCommandCapacity)
	}

	done := make(chan int)
	go func() {
		full := 0
		for range 3 * DefaultCommandCapacity {
			if err := c.Send(Step); errors.Is(err, ErrFull) {
				full++
			} else if err != nil {
				t.Errorf("unexpected error: %v", err)
			}
		}
		done <- full
	}()

	select {
	case full := <-done:
		if full != 2*DefaultCommandCapacity {
			t.Fatalf("%d sends reported Full, want %d", full, 2*DefaultCommandCapacity)
		}
	case <-time.After(time.Second):
		t.Fatal("Send blocked on a full channel")
	}
	if c.Len() != DefaultCommandCapacity {
		t.Fatalf("Len() = %d", c.Len())
	}
}

func TestCommandChannelPerSenderOrder(t *testing.T) {
	c := NewCommandChannel(200)
	var wg sync.WaitGroup
	for _, cmd := range []Command{Start, Stop} {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for range 50 {
				if err := c.Send(cmd); err != nil {
					t.Errorf("Send: %v", err)
				}
			}
		}()
	}
	wg.Wait()

	counts := map[Command]int{}
	for {
		cmd, ok := c.TryReceive()
		if !ok {
			break
		}
		counts[cmd]++
	}
	if counts[Start] != 50 || counts[Stop] != 50 {
		t.Fatalf("counts = %v", counts)
	}
}

func TestCommandChannelReceiveWithin(t *testing.T) {
	c := NewCommandChannel(1)
	if _, ok := c.receiveWithin(nil, time.Millisecond); ok {
		t.Fatal("received from an empty channel")
	}
	_ = c.Send(Reset)
	if cmd, ok := c.receiveWithin(nil, time.Second); !ok || cmd != Reset {
		t.Fatalf("receiveWithin = %s, %v", cmd, ok)
	}

	done := make(chan struct{})
	close(done)
	start := time.Now()
	if _, ok := c.receiveWithin(done, time.Minute); ok {
		t.Fatal("received after done")
	}
	if time.Since(start) > time.Second {
		t.Fatal("receiveWithin ignored done")
	}
}

func TestCommandString(t *testing.T) {
	tests := map[Command]string{
		Start:       "start",
		Stop:        "stop",
		Step:        "step",
		Reset:       "reset",
		Command(42): "command(42)",
	}
	for cmd, want := range tests {
		if got := cmd.String(); got != want {
			t.Errorf("String() = %q, want %q", got, want)
		}
	}
}
