// Package life implements Conway's Game of Life (B3/S23) on a toroidal grid.
package life

import "lifedit/internal/core"

// Engine owns a rows×cols grid and computes its generations. Two buffers are
// allocated up front; Step computes into the inactive one and swaps, so no
// partially updated grid is ever visible.
//
// Engine is not safe for concurrent use.
type Engine struct {
	cur *core.Grid
	nxt *core.Grid
	rng *core.RNG
}

// New returns an Engine of the given size whose Randomize draws from a
// clock-seeded RNG.
func New(rows, cols int) *Engine {
	return NewWithRNG(rows, cols, core.NewClockRNG())
}

// NewWithRNG returns an Engine that randomizes from rng.
func NewWithRNG(rows, cols int, rng *core.RNG) *Engine {
	if rng == nil {
		rng = core.NewClockRNG()
	}
	cur := core.NewGrid(rows, cols)
	return &Engine{cur: cur, nxt: core.NewGrid(cur.Rows, cur.Cols), rng: rng}
}

// Size returns the grid dimensions.
func (e *Engine) Size() core.Size { return e.cur.Size() }

// WrapRow projects n onto [0, rows).
func (e *Engine) WrapRow(n int) int { return e.cur.WrapRow(n) }

// WrapCol projects n onto [0, cols).
func (e *Engine) WrapCol(n int) int { return e.cur.WrapCol(n) }

// CountLiveNeighbors returns the number of live cells among the eight
// toroidal neighbours of (row, col).
func (e *Engine) CountLiveNeighbors(row, col int) int {
	return countNeighbors(e.cur, row, col)
}

func countNeighbors(g *core.Grid, row, col int) int {
	n := 0
	for dr := -1; dr <= 1; dr++ {
		for dc := -1; dc <= 1; dc++ {
			if dr == 0 && dc == 0 {
				continue
			}
			n += int(g.At(row+dr, col+dc))
		}
	}
	return n
}

// Alive reports whether (row, col) is alive. Out-of-range coordinates are
// reported dead.
func (e *Engine) Alive(row, col int) bool {
	if !e.cur.In(row, col) {
		return false
	}
	return e.cur.Cells()[e.cur.Index(row, col)] == 1
}

// Toggle flips the cell at (row, col). Out-of-range coordinates are ignored
// and reported as false.
func (e *Engine) Toggle(row, col int) bool {
	if !e.cur.In(row, col) {
		return false
	}
	idx := e.cur.Index(row, col)
	e.cur.Cells()[idx] ^= 1
	return true
}

// Set forces the cell at (row, col) alive or dead. Out-of-range coordinates
// are ignored and reported as false.
func (e *Engine) Set(row, col int, alive bool) bool {
	if !e.cur.In(row, col) {
		return false
	}
	var v uint8
	if alive {
		v = 1
	}
	e.cur.Cells()[e.cur.Index(row, col)] = v
	return true
}

// Randomize makes every cell independently alive with probability 1/2.
func (e *Engine) Randomize() {
	e.rng.FillBinary(e.cur.Cells())
}

// Clear kills every cell.
func (e *Engine) Clear() {
	e.cur.Clear()
	e.nxt.Clear()
}

// Step advances the grid by one generation.
func (e *Engine) Step() {
	cur, nxt := e.cur.Cells(), e.nxt.Cells()
	rows, cols := e.cur.Rows, e.cur.Cols
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			idx := r*cols + c
			nxt[idx] = nextState(cur[idx] == 1, countNeighbors(e.cur, r, c))
		}
	}
	e.cur, e.nxt = e.nxt, e.cur
}

// nextState applies B3/S23.
func nextState(alive bool, neighbors int) uint8 {
	if neighbors == 3 || (alive && neighbors == 2) {
		return 1
	}
	return 0
}

// LiveCells returns the live coordinates in row-major order. The slice is
// freshly allocated.
func (e *Engine) LiveCells() []core.Cell {
	cells := e.cur.Cells()
	cols := e.cur.Cols
	live := make([]core.Cell, 0, e.Population())
	for i, v := range cells {
		if v == 1 {
			live = append(live, core.Cell{Row: i / cols, Col: i % cols})
		}
	}
	return live
}

// Population returns the number of live cells.
func (e *Engine) Population() int {
	n := 0
	for _, v := range e.cur.Cells() {
		n += int(v)
	}
	return n
}

// Clone returns an independent copy of the engine's cells. The clone gets
// its own clock-seeded RNG, so randomizing it never touches the source's
// stream.
func (e *Engine) Clone() *Engine {
	c := &Engine{
		cur: core.NewGrid(e.cur.Rows, e.cur.Cols),
		nxt: core.NewGrid(e.cur.Rows, e.cur.Cols),
		rng: core.NewClockRNG(),
	}
	c.cur.CopyFrom(e.cur)
	return c
}

// Equal reports whether both engines have the same size and cell values.
func (e *Engine) Equal(other *Engine) bool {
	if other == nil || e.Size() != other.Size() {
		return false
	}
	a, b := e.cur.Cells(), other.cur.Cells()
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
