package model

import (
	"crypto/md5"
	"fmt"
	"math/rand/v2"

	"github.com/pkg/errors"
)

// ErrInvalidDimensions is returned when a board is requested with a zero
// (or negative) width or height.
var ErrInvalidDimensions = errors.New("invalid board dimensions")

// Board is a fixed-size grid of cells stored row by row. Every coordinate in
// [0,width) x [0,height) holds a cell.
type Board struct {
	width  int
	height int
	cells  [][]Cell // cells[y][x]
}

// NewBoard creates a board with every cell dead
func NewBoard(width, height int) (*Board, error) {
	if width <= 0 || height <= 0 {
		return nil, errors.Wrapf(ErrInvalidDimensions, "[NewBoard] width: %d, height: %d", width, height)
	}
	return newBoard(width, height), nil
}

func newBoard(width, height int) *Board {
	cells := make([][]Cell, height)
	for y := range cells {
		row := make([]Cell, width)
		for x := range row {
			row[x] = NewCell(x, y)
		}
		cells[y] = row
	}
	return &Board{
		width:  width,
		height: height,
		cells:  cells,
	}
}

// Width returns the number of columns
func (b *Board) Width() int {
	return b.width
}

// Height returns the number of rows
func (b *Board) Height() int {
	return b.height
}

// InBounds reports whether (x, y) lies on the board
func (b *Board) InBounds(x, y int) bool {
	return x >= 0 && x < b.width && y >= 0 && y < b.height
}

// Cell returns the cell at (x, y), ok is false outside the board
func (b *Board) Cell(x, y int) (Cell, bool) {
	if !b.InBounds(x, y) {
		return Cell{}, false
	}
	return b.cells[y][x], true
}

// Alive returns the state of a cell, anything off the board is dead
func (b *Board) Alive(x, y int) bool {
	if !b.InBounds(x, y) {
		return false
	}
	return b.cells[y][x].state == Alive
}

// Set changes the state of a cell. Coordinates off the board are ignored.
func (b *Board) Set(x, y int, state State) {
	if b.InBounds(x, y) {
		b.cells[y][x].state = state
	}
}

// NeighborCount counts living cells among the up to 8 cells around (x, y).
// Neighbors past an edge do not count, the board does not wrap.
func (b *Board) NeighborCount(x, y int) int {
	count := 0

	minX := max(0, x-1)
	maxX := min(b.width-1, x+1)
	minY := max(0, y-1)
	maxY := min(b.height-1, y+1)

	for ny := minY; ny <= maxY; ny++ {
		for nx := minX; nx <= maxX; nx++ {
			if nx == x && ny == y {
				continue
			}
			if b.cells[ny][nx].state == Alive {
				count++
			}
		}
	}

	return count
}

// Randomize sets each cell alive with probability p using rng
func (b *Board) Randomize(rng *rand.Rand, p float64) {
	for y := range b.height {
		for x := range b.width {
			state := Dead
			if rng.Float64() < p {
				state = Alive
			}
			b.cells[y][x].state = state
		}
	}
}

// Clear kills every cell
func (b *Board) Clear() {
	for y := range b.height {
		for x := range b.width {
			b.cells[y][x].state = Dead
		}
	}
}

// Clone returns a deep copy of the board
func (b *Board) Clone() *Board {
	cells := make([][]Cell, b.height)
	for y, row := range b.cells {
		cells[y] = append([]Cell(nil), row...)
	}
	return &Board{
		width:  b.width,
		height: b.height,
		cells:  cells,
	}
}

// Equal reports whether both boards have the same size and cell states
func (b *Board) Equal(o *Board) bool {
	if b == nil || o == nil {
		return b == o
	}
	if b.width != o.width || b.height != o.height {
		return false
	}
	for y := range b.height {
		for x := range b.width {
			if b.cells[y][x].state != o.cells[y][x].state {
				return false
			}
		}
	}
	return true
}

// Cells returns a row-major copy of every cell on the board
func (b *Board) Cells() []Cell {
	out := make([]Cell, 0, b.width*b.height)
	for _, row := range b.cells {
		out = append(out, row...)
	}
	return out
}

// Population returns the total number of living cells
func (b *Board) Population() (count int) {
	for y := range b.height {
		for x := range b.width {
			if b.cells[y][x].state == Alive {
				count++
			}
		}
	}
	return
}

// Hash returns an MD5 digest of the cell states
func (b *Board) Hash() string {
	h := md5.New()
	row := make([]byte, b.width)
	for y := range b.height {
		for x := range b.width {
			row[x] = byte(b.cells[y][x].state)
		}
		h.Write(row)
	}
	return fmt.Sprintf("%x", h.Sum(nil))
}

// Bounds returns the bounding box of living cells. ok is false on an empty board.
func (b *Board) Bounds() (minX, minY, maxX, maxY int, ok bool) {
	for y := range b.height {
		for x := range b.width {
			if b.cells[y][x].state != Alive {
				continue
			}
			if !ok {
				minX, maxX, minY, maxY, ok = x, x, y, y, true
				continue
			}
			minX = min(minX, x)
			maxX = max(maxX, x)
			minY = min(minY, y)
			maxY = max(maxY, y)
		}
	}
	return
}

// String draws the board with '#' for live cells and '.' for dead ones
func (b *Board) String() string {
	buf := make([]byte, 0, (b.width+1)*b.height)
	for y := range b.height {
		for x := range b.width {
			if b.cells[y][x].state == Alive {
				buf = append(buf, '#')
			} else {
				buf = append(buf, '.')
			}
		}
		buf = append(buf, '\n')
	}
	return string(buf)
}
