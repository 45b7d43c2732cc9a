package render

import (
	"image/color"
	"testing"

	"lifedit/internal/core"
)

func TestCanvasSize(t *testing.T) {
	w, h := DefaultLayout().CanvasSize(core.Size{Rows: 50, Cols: 40})
	if w != 40*8+4 || h != 50*8+4 {
		t.Fatalf("canvas %dx%d", w, h)
	}
}

func TestCellAt(t *testing.T) {
	l := DefaultLayout()
	size := core.Size{Rows: 10, Cols: 12}
	cases := []struct {
		x, y int
		want core.Cell
		ok   bool
	}{
		{4, 4, core.Cell{Row: 0, Col: 0}, true},
		{11, 11, core.Cell{Row: 0, Col: 0}, true},
		{12, 4, core.Cell{Row: 0, Col: 1}, true},
		{4 + 8*11 + 7, 4 + 8*9 + 7, core.Cell{Row: 9, Col: 11}, true},
		{3, 20, core.Cell{}, false},
		{20, 0, core.Cell{}, false},
		{4 + 8*12, 10, core.Cell{}, false},
		{10, 4 + 8*10, core.Cell{}, false},
		{-5, -5, core.Cell{}, false},
	}
	for _, tc := range cases {
		got, ok := l.CellAt(tc.x, tc.y, size)
		if ok != tc.ok || got != tc.want {
			t.Fatalf("CellAt(%d,%d) = %v,%v; want %v,%v", tc.x, tc.y, got, ok, tc.want, tc.ok)
		}
	}
}

func TestCellAtRoundTrip(t *testing.T) {
	l := Layout{Dot: 3, Gap: 1, Offset: 2}
	size := core.Size{Rows: 7, Cols: 9}
	for r := 0; r < size.Rows; r++ {
		for c := 0; c < size.Cols; c++ {
			x, y := l.DotOrigin(core.Cell{Row: r, Col: c})
			got, ok := l.CellAt(x+l.Dot-1, y+l.Dot-1, size)
			if !ok || got != (core.Cell{Row: r, Col: c}) {
				t.Fatalf("round trip for (%d,%d) gave %v,%v", r, c, got, ok)
			}
		}
	}
}

func TestFillDots(t *testing.T) {
	l := Layout{Dot: 2, Gap: 1, Offset: 1}
	size := core.Size{Rows: 2, Cols: 2}
	w, h := l.CanvasSize(size)
	buf := make([]byte, 4*w*h)

	fillDotsRGBA(buf, w, h, l, []core.Cell{{Row: 1, Col: 0}}, color.White, color.Black)

	at := func(x, y int) byte { return buf[(y*w+x)*4] }
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			inDot := x >= 1 && x < 3 && y >= 4 && y < 6
			if got := at(x, y); (got == 0xff) != inDot {
				t.Fatalf("pixel (%d,%d) = %#x, inDot=%v", x, y, got, inDot)
			}
			if a := buf[(y*w+x)*4+3]; a != 0xff {
				t.Fatalf("pixel (%d,%d) alpha %#x", x, y, a)
			}
		}
	}
}
