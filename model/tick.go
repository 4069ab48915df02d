package model

import (
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/sheikhrachel/gol-sim/rules"
)

// TickFunc maps one generation to the next
type TickFunc func(*Board) *Board

// Tick computes the next generation of b into a fresh board. b is only read,
// so every cell sees the same prior generation.
func Tick(b *Board) *Board {
	next := newBoard(b.width, b.height)
	b.tickRows(next, 0, b.height)
	return next
}

// TickParallel computes the same generation as Tick, splitting rows across
// workers goroutines. workers <= 0 uses one worker per CPU.
func TickParallel(b *Board, workers int) *Board {
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	next := newBoard(b.width, b.height)

	var (
		eg            errgroup.Group
		rowsPerWorker = (b.height + workers - 1) / workers // Ceiling division
	)

	for i := range workers {
		var (
			startRow = i * rowsPerWorker
			endRow   = min(startRow+rowsPerWorker, b.height)
		)
		if startRow >= b.height {
			break
		}

		eg.Go(func() error {
			b.tickRows(next, startRow, endRow)
			return nil
		})
	}

	// workers never fail, Wait only joins them
	_ = eg.Wait()

	return next
}

// ParallelTicker returns a TickFunc bound to a worker count
func ParallelTicker(workers int) TickFunc {
	return func(b *Board) *Board {
		return TickParallel(b, workers)
	}
}

// tickRows writes rows [startRow, endRow) of the next generation into next
func (b *Board) tickRows(next *Board, startRow, endRow int) {
	for y := startRow; y < endRow; y++ {
		for x := 0; x < b.width; x++ {
			if rules.Next(b.cells[y][x].state == Alive, b.NeighborCount(x, y)) {
				next.cells[y][x].state = Alive
			}
		}
	}
}
