package render

import "lifedit/internal/core"

// Layout describes how cells map to screen pixels: each live cell is a
// Dot×Dot square, cells repeat every Dot+Gap pixels, and the whole canvas
// is inset by Offset pixels from its top-left corner.
type Layout struct {
	Dot    int
	Gap    int
	Offset int
}

// DefaultLayout returns 6px dots on an 8px pitch with a 4px margin.
func DefaultLayout() Layout {
	return Layout{Dot: 6, Gap: 2, Offset: 4}
}

// Pitch returns the distance between neighbouring cells in pixels.
func (l Layout) Pitch() int {
	p := l.Dot + l.Gap
	if p <= 0 {
		return 1
	}
	return p
}

// CanvasSize returns the pixel size needed to show a grid of the given size.
func (l Layout) CanvasSize(size core.Size) (w, h int) {
	p := l.Pitch()
	return p*size.Cols + l.Offset, p*size.Rows + l.Offset
}

// CellAt maps a pixel position to the cell under it. ok is false when the
// position lies outside the grid.
func (l Layout) CellAt(x, y int, size core.Size) (cell core.Cell, ok bool) {
	if x < l.Offset || y < l.Offset {
		return core.Cell{}, false
	}
	p := l.Pitch()
	cell = core.Cell{Row: (y - l.Offset) / p, Col: (x - l.Offset) / p}
	if cell.Row >= size.Rows || cell.Col >= size.Cols {
		return core.Cell{}, false
	}
	return cell, true
}

// DotOrigin returns the top-left pixel of the dot drawn for cell.
func (l Layout) DotOrigin(cell core.Cell) (x, y int) {
	p := l.Pitch()
	return cell.Col*p + l.Offset, cell.Row*p + l.Offset
}
