package patterns

import (
	"sort"
	"testing"

	"lifedit/internal/core"
	"lifedit/internal/life"
)

func stamped(t *testing.T, name string, rows, cols int) *life.Engine {
	t.Helper()
	p, ok := Lookup(name)
	if !ok {
		t.Fatalf("pattern %q not registered", name)
	}
	e := life.NewWithRNG(rows, cols, core.NewRNG(1))
	if placed := p.StampCentered(e, e.Size()); placed != len(p.Cells) {
		t.Fatalf("%s: placed %d of %d cells", name, placed, len(p.Cells))
	}
	return e
}

func TestOscillatorPeriods(t *testing.T) {
	cases := []struct {
		name   string
		period int
	}{
		{"block", 1},
		{"blinker", 2},
		{"toad", 2},
		{"beacon", 2},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			e := stamped(t, tc.name, 12, 12)
			start := e.Clone()
			for i := 0; i < tc.period; i++ {
				e.Step()
			}
			if !e.Equal(start) {
				t.Fatalf("%s did not repeat after %d generations", tc.name, tc.period)
			}
		})
	}
}

func TestGliderKeepsPopulation(t *testing.T) {
	e := stamped(t, "glider", 10, 10)
	for i := 0; i < 40; i++ {
		e.Step()
		if e.Population() != 5 {
			t.Fatalf("glider population %d at generation %d", e.Population(), i+1)
		}
	}
}

func TestGunFitsDefaultGrid(t *testing.T) {
	p, ok := Lookup("gosper-gun")
	if !ok {
		t.Fatal("gosper-gun not registered")
	}
	if b := p.Bounds(); b.Rows != 9 || b.Cols != 36 {
		t.Fatalf("gun bounds %+v, want 9x36", b)
	}
	stamped(t, "gosper-gun", 50, 50)
}

func TestStampClipsOutsideCells(t *testing.T) {
	p, _ := Lookup("block")
	e := life.NewWithRNG(3, 3, core.NewRNG(1))
	if placed := p.Stamp(e, 2, 2); placed != 1 {
		t.Fatalf("placed %d cells, want 1", placed)
	}
	if !e.Alive(2, 2) || e.Population() != 1 {
		t.Fatal("clipped stamp wrote the wrong cells")
	}
}

func TestRegistry(t *testing.T) {
	names := Names()
	if !sort.StringsAreSorted(names) {
		t.Fatalf("names not sorted: %v", names)
	}
	if len(names) < 5 {
		t.Fatalf("expected the built-in patterns, got %v", names)
	}
	if _, ok := Lookup("no-such-pattern"); ok {
		t.Fatal("lookup of unknown pattern succeeded")
	}

	before := len(Names())
	Register(Pattern{Name: ""})
	Register(Pattern{Name: "empty"})
	if len(Names()) != before {
		t.Fatal("invalid patterns were registered")
	}
}
