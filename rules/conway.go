package rules

/*
Next reports whether a cell is alive in the next generation.

Conway's Game of Life: a live cell survives with 2 or 3 live neighbors,
a dead cell is born with exactly 3, every other cell is dead.
*/
func Next(alive bool, neighbors int) bool {
	if alive {
		return neighbors == 2 || neighbors == 3
	}
	return neighbors == 3
}
