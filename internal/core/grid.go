package core

// Grid stores a rows×cols plane of 0/1 cell values in row-major order.
type Grid struct {
	Rows, Cols int
	data       []uint8
}

// NewGrid allocates a grid with the given dimensions. Non-positive
// dimensions are clamped to 1.
func NewGrid(rows, cols int) *Grid {
	if rows <= 0 {
		rows = 1
	}
	if cols <= 0 {
		cols = 1
	}
	return &Grid{Rows: rows, Cols: cols, data: make([]uint8, rows*cols)}
}

// Size returns the grid dimensions.
func (g *Grid) Size() Size { return Size{Rows: g.Rows, Cols: g.Cols} }

// Cells exposes the backing slice so callers can read/write values directly.
func (g *Grid) Cells() []uint8 { return g.data }

// Index returns the linear slice index for (row, col).
func (g *Grid) Index(row, col int) int { return row*g.Cols + col }

// In reports whether (row, col) lies inside the grid.
func (g *Grid) In(row, col int) bool {
	return row >= 0 && row < g.Rows && col >= 0 && col < g.Cols
}

// WrapRow projects n onto [0, Rows) with toroidal wrapping. Values further
// out than one step use modular wrap, so Rows+1 maps to 1.
func (g *Grid) WrapRow(n int) int { return (n%g.Rows + g.Rows) % g.Rows }

// WrapCol projects n onto [0, Cols) like WrapRow.
func (g *Grid) WrapCol(n int) int { return (n%g.Cols + g.Cols) % g.Cols }

// At returns the value at (row, col), wrapping both coordinates.
func (g *Grid) At(row, col int) uint8 {
	return g.data[g.WrapRow(row)*g.Cols+g.WrapCol(col)]
}

// CopyFrom overwrites g with the contents of src. Sizes must match.
func (g *Grid) CopyFrom(src *Grid) {
	copy(g.data, src.data)
}

// Clear fills the grid with zeros.
func (g *Grid) Clear() {
	for i := range g.data {
		g.data[i] = 0
	}
}
