package model

// Pattern is a small block of cells, rows top to bottom
type Pattern [][]bool

var (
	// Block is a 2x2 still life
	Block = Pattern{
		{true, true},
		{true, true},
	}
	// Blinker is a period 2 oscillator, horizontal phase
	Blinker = Pattern{
		{true, true, true},
	}
	// Glider travels one cell diagonally every 4 generations
	Glider = Pattern{
		{false, true, false},
		{false, false, true},
		{true, true, true},
	}
)

// Place writes the pattern with its top left corner at (startX, startY).
// Cells falling off the board are dropped.
func (b *Board) Place(p Pattern, startX, startY int) {
	for y, row := range p {
		for x, alive := range row {
			state := Dead
			if alive {
				state = Alive
			}
			b.Set(startX+x, startY+y, state)
		}
	}
}
