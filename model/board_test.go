package model

import (
	"math/rand/v2"
	"testing"

	"github.com/pkg/errors"
)

func seeded(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, 0))
}

func mustBoard(t *testing.T, w, h int) *Board {
	t.Helper()
	b, err := NewBoard(w, h)
	if err != nil {
		t.Fatalf("NewBoard(%d, %d): %v", w, h, err)
	}
	return b
}

func TestNewBoard(t *testing.T) {
	b := mustBoard(t, 4, 3)
	if b.Width() != 4 || b.Height() != 3 {
		t.Fatalf("size = %dx%d, want 4x3", b.Width(), b.Height())
	}
	if got := b.Population(); got != 0 {
		t.Fatalf("population = %d, want 0", got)
	}
	for i, c := range b.Cells() {
		if c.X() != i%4 || c.Y() != i/4 {
			t.Fatalf("cell %d at (%d,%d), want row-major (%d,%d)", i, c.X(), c.Y(), i%4, i/4)
		}
		if c.Alive() {
			t.Fatalf("cell (%d,%d) alive on a new board", c.X(), c.Y())
		}
	}
}

func TestNewBoardInvalidDimensions(t *testing.T) {
	tests := []struct {
		name string
		w, h int
	}{
		{"zero width", 0, 5},
		{"zero height", 5, 0},
		{"both zero", 0, 0},
		{"negative", -1, 3},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b, err := NewBoard(tt.w, tt.h)
			if !errors.Is(err, ErrInvalidDimensions) {
				t.Fatalf("err = %v, want ErrInvalidDimensions", err)
			}
			if b != nil {
				t.Fatal("expected nil board")
			}
		})
	}
}

func TestNeighborCount(t *testing.T) {
	b := mustBoard(t, 3, 3)
	for y := range 3 {
		for x := range 3 {
			b.Set(x, y, Alive)
		}
	}

	tests := []struct {
		x, y int
		want int
	}{
		{1, 1, 8}, // center
		{0, 0, 3}, // corner, no wrap
		{2, 2, 3},
		{1, 0, 5}, // edge
		{0, 1, 5},
	}
	for _, tt := range tests {
		if got := b.NeighborCount(tt.x, tt.y); got != tt.want {
			t.Errorf("NeighborCount(%d,%d) = %d, want %d", tt.x, tt.y, got, tt.want)
		}
	}

	b.Set(1, 1, Dead)
	if got := b.NeighborCount(1, 1); got != 8 {
		t.Errorf("own state counted: got %d, want 8", got)
	}
}

func TestNeighborCountDoesNotWrap(t *testing.T) {
	b := mustBoard(t, 5, 5)
	b.Set(4, 4, Alive)
	b.Set(4, 0, Alive)
	b.Set(0, 4, Alive)
	if got := b.NeighborCount(0, 0); got != 0 {
		t.Fatalf("NeighborCount(0,0) = %d, want 0 on a bounded board", got)
	}
}

func TestSetOutOfBoundsIgnored(t *testing.T) {
	b := mustBoard(t, 2, 2)
	b.Set(-1, 0, Alive)
	b.Set(2, 1, Alive)
	b.Set(0, 5, Alive)
	if got := b.Population(); got != 0 {
		t.Fatalf("population = %d, want 0", got)
	}
	if b.Alive(7, 7) {
		t.Fatal("off-board cell reported alive")
	}
	if _, ok := b.Cell(2, 0); ok {
		t.Fatal("Cell(2,0) ok on a 2x2 board")
	}
}

func TestRandomize(t *testing.T) {
	t.Run("probability bounds", func(t *testing.T) {
		b := mustBoard(t, 10, 10)
		b.Randomize(seeded(1), 0)
		if got := b.Population(); got != 0 {
			t.Fatalf("p=0 population = %d", got)
		}
		b.Randomize(seeded(1), 1)
		if got := b.Population(); got != 100 {
			t.Fatalf("p=1 population = %d", got)
		}
	})

	t.Run("same seed same board", func(t *testing.T) {
		a := mustBoard(t, 20, 20)
		b := mustBoard(t, 20, 20)
		a.Randomize(seeded(42), 0.5)
		b.Randomize(seeded(42), 0.5)
		if !a.Equal(b) {
			t.Fatal("boards differ for the same seed")
		}
	})

	t.Run("roughly half alive", func(t *testing.T) {
		b := mustBoard(t, 100, 100)
		b.Randomize(seeded(7), 0.5)
		if got := b.Population(); got < 4000 || got > 6000 {
			t.Fatalf("population = %d, want about 5000", got)
		}
	})
}

func TestCloneIsDeep(t *testing.T) {
	b := mustBoard(t, 3, 3)
	b.Set(1, 1, Alive)
	c := b.Clone()
	if !b.Equal(c) {
		t.Fatal("clone differs")
	}
	c.Set(0, 0, Alive)
	if b.Alive(0, 0) {
		t.Fatal("mutating the clone changed the original")
	}
	if b.Equal(c) {
		t.Fatal("Equal ignored a changed cell")
	}
}

func TestEqualSizeMismatch(t *testing.T) {
	if mustBoard(t, 2, 3).Equal(mustBoard(t, 3, 2)) {
		t.Fatal("boards of different sizes compared equal")
	}
}

func TestHash(t *testing.T) {
	a := mustBoard(t, 4, 4)
	b := mustBoard(t, 4, 4)
	if a.Hash() != b.Hash() {
		t.Fatal("empty boards hash differently")
	}
	b.Set(3, 3, Alive)
	if a.Hash() == b.Hash() {
		t.Fatal("different boards share a hash")
	}
}

func TestBounds(t *testing.T) {
	b := mustBoard(t, 10, 10)
	if _, _, _, _, ok := b.Bounds(); ok {
		t.Fatal("empty board has bounds")
	}
	b.Set(2, 7, Alive)
	b.Set(5, 3, Alive)
	minX, minY, maxX, maxY, ok := b.Bounds()
	if !ok || minX != 2 || minY != 3 || maxX != 5 || maxY != 7 {
		t.Fatalf("Bounds = (%d,%d,%d,%d,%v)", minX, minY, maxX, maxY, ok)
	}
}

func TestPlaceAndString(t *testing.T) {
	b := mustBoard(t, 4, 3)
	b.Place(Glider, 1, 0)
	want := "..#.\n...#\n.###\n"
	if got := b.String(); got != want {
		t.Fatalf("String() =\n%s\nwant\n%s", got, want)
	}
	// clipped at the edge
	b.Clear()
	b.Place(Blinker, 2, 2)
	if got := b.Population(); got != 2 {
		t.Fatalf("population after clipped place = %d, want 2", got)
	}
}
