// Package patterns keeps a registry of named starting patterns.
package patterns

import (
	"sort"

	"lifedit/internal/core"
)

// Pattern is a set of live cells relative to the pattern's top-left corner.
type Pattern struct {
	Name  string
	Cells []core.Cell
}

// Setter is satisfied by anything that can force a cell alive or dead.
type Setter interface {
	Set(row, col int, alive bool) bool
}

// Bounds returns the height and width of the pattern's bounding box.
func (p Pattern) Bounds() core.Size {
	var s core.Size
	for _, c := range p.Cells {
		if c.Row+1 > s.Rows {
			s.Rows = c.Row + 1
		}
		if c.Col+1 > s.Cols {
			s.Cols = c.Col + 1
		}
	}
	return s
}

// Stamp sets the pattern's cells alive with its corner at (row, col). Cells
// that fall outside the target are skipped; the number placed is returned.
func (p Pattern) Stamp(dst Setter, row, col int) int {
	placed := 0
	for _, c := range p.Cells {
		if dst.Set(row+c.Row, col+c.Col, true) {
			placed++
		}
	}
	return placed
}

// StampCentered stamps the pattern in the middle of a grid of the given size.
func (p Pattern) StampCentered(dst Setter, size core.Size) int {
	b := p.Bounds()
	return p.Stamp(dst, (size.Rows-b.Rows)/2, (size.Cols-b.Cols)/2)
}

var registry = map[string]Pattern{}

// Register adds a pattern under its name.
func Register(p Pattern) {
	if p.Name == "" || len(p.Cells) == 0 {
		return
	}
	registry[p.Name] = p
}

// Lookup returns the named pattern.
func Lookup(name string) (Pattern, bool) {
	p, ok := registry[name]
	return p, ok
}

// Names lists registered patterns alphabetically.
func Names() []string {
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func cells(rc ...int) []core.Cell {
	out := make([]core.Cell, 0, len(rc)/2)
	for i := 0; i+1 < len(rc); i += 2 {
		out = append(out, core.Cell{Row: rc[i], Col: rc[i+1]})
	}
	return out
}

func init() {
	Register(Pattern{Name: "block", Cells: cells(0, 0, 0, 1, 1, 0, 1, 1)})
	Register(Pattern{Name: "blinker", Cells: cells(0, 0, 0, 1, 0, 2)})
	Register(Pattern{Name: "toad", Cells: cells(0, 1, 0, 2, 0, 3, 1, 0, 1, 1, 1, 2)})
	Register(Pattern{Name: "beacon", Cells: cells(0, 0, 0, 1, 1, 0, 2, 3, 3, 2, 3, 3)})
	Register(Pattern{Name: "glider", Cells: cells(0, 1, 1, 2, 2, 0, 2, 1, 2, 2)})
	Register(Pattern{Name: "lwss", Cells: cells(0, 1, 0, 4, 1, 0, 2, 0, 2, 4, 3, 0, 3, 1, 3, 2, 3, 3)})
	Register(Pattern{Name: "r-pentomino", Cells: cells(0, 1, 0, 2, 1, 0, 1, 1, 2, 1)})
	Register(Pattern{Name: "acorn", Cells: cells(0, 1, 1, 3, 2, 0, 2, 1, 2, 4, 2, 5, 2, 6)})
	Register(Pattern{Name: "gosper-gun", Cells: cells(
		0, 24,
		1, 22, 1, 24,
		2, 12, 2, 13, 2, 20, 2, 21, 2, 34, 2, 35,
		3, 11, 3, 15, 3, 20, 3, 21, 3, 34, 3, 35,
		4, 0, 4, 1, 4, 10, 4, 16, 4, 20, 4, 21,
		5, 0, 5, 1, 5, 10, 5, 14, 5, 16, 5, 17, 5, 22, 5, 24,
		6, 10, 6, 16, 6, 24,
		7, 11, 7, 15,
		8, 12, 8, 13,
	)})
}
