package model

// State is the alive/dead flag of a cell
type State uint8

const (
	Dead State = iota
	Alive
)

func (s State) String() string {
	if s == Alive {
		return "alive"
	}
	return "dead"
}

// Cell is one position on a board. Its coordinates are fixed at creation,
// only its state changes.
type Cell struct {
	x, y  int
	state State
}

// NewCell creates a dead cell at (x, y)
func NewCell(x, y int) Cell {
	return Cell{x: x, y: y}
}

// X returns the column of the cell
func (c Cell) X() int { return c.x }

// Y returns the row of the cell
func (c Cell) Y() int { return c.y }

// State returns the current state of the cell
func (c Cell) State() State { return c.state }

// Alive reports whether the cell is alive
func (c Cell) Alive() bool { return c.state == Alive }
