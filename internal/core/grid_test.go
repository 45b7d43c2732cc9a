package core

import "testing"

func TestWrapNeighbours(t *testing.T) {
	g := NewGrid(5, 7)
	for r := 0; r < g.Rows; r++ {
		up := r - 1
		if r == 0 {
			up = g.Rows - 1
		}
		down := r + 1
		if r == g.Rows-1 {
			down = 0
		}
		if got := g.WrapRow(r - 1); got != up {
			t.Fatalf("WrapRow(%d) = %d, want %d", r-1, got, up)
		}
		if got := g.WrapRow(r + 1); got != down {
			t.Fatalf("WrapRow(%d) = %d, want %d", r+1, got, down)
		}
		if got := g.WrapRow(r); got != r {
			t.Fatalf("WrapRow(%d) = %d, want unchanged", r, got)
		}
	}
	for c := 0; c < g.Cols; c++ {
		left := c - 1
		if c == 0 {
			left = g.Cols - 1
		}
		right := c + 1
		if c == g.Cols-1 {
			right = 0
		}
		if got := g.WrapCol(c - 1); got != left {
			t.Fatalf("WrapCol(%d) = %d, want %d", c-1, got, left)
		}
		if got := g.WrapCol(c + 1); got != right {
			t.Fatalf("WrapCol(%d) = %d, want %d", c+1, got, right)
		}
	}
}

func TestNewGridClampsDimensions(t *testing.T) {
	g := NewGrid(0, -3)
	if g.Rows != 1 || g.Cols != 1 {
		t.Fatalf("expected 1x1 grid, got %dx%d", g.Rows, g.Cols)
	}
	if len(g.Cells()) != 1 {
		t.Fatalf("expected 1 cell, got %d", len(g.Cells()))
	}
}

func TestGridAtWraps(t *testing.T) {
	g := NewGrid(3, 4)
	g.Cells()[g.Index(2, 3)] = 1
	if g.At(-1, -1) != 1 {
		t.Fatal("At(-1,-1) should read the bottom-right cell")
	}
	if g.At(2, 3) != 1 || g.At(5, 7) != 1 {
		t.Fatal("At should wrap positive overflow")
	}
	if g.In(3, 0) || g.In(0, 4) || g.In(-1, 0) {
		t.Fatal("In accepted an out-of-range coordinate")
	}
	g.Clear()
	if g.At(2, 3) != 0 {
		t.Fatal("Clear left a live cell")
	}
}

func TestWrapBeyondOneStepIsModular(t *testing.T) {
	g := NewGrid(5, 7)
	if got := g.WrapRow(g.Rows + 1); got != 1 {
		t.Fatalf("WrapRow(rows+1) = %d, want 1", got)
	}
	if got := g.WrapRow(-2); got != g.Rows-2 {
		t.Fatalf("WrapRow(-2) = %d, want %d", got, g.Rows-2)
	}
	if got := g.WrapCol(3*g.Cols + 2); got != 2 {
		t.Fatalf("WrapCol(3*cols+2) = %d, want 2", got)
	}
}
