package ui

import (
	"testing"

	"lifedit/internal/session"
)

func TestToolbarHitTest(t *testing.T) {
	tb := NewToolbar(404, 404)
	want := []session.Intent{session.IntentToggleRun, session.IntentStep, session.IntentRandomize, session.IntentClear}
	if len(tb.Buttons) != len(want) {
		t.Fatalf("got %d buttons", len(tb.Buttons))
	}
	for i, b := range tb.Buttons {
		if b.Intent != want[i] {
			t.Fatalf("button %q bound to %v", b.Label, b.Intent)
		}
		c := b.Rect.Min.Add(b.Rect.Size().Div(2))
		got, ok := tb.HitTest(c.X, c.Y)
		if !ok || got != b.Intent {
			t.Fatalf("click at centre of %q hit %v,%v", b.Label, got, ok)
		}
		if b.Rect.Min.Y < 404 || b.Rect.Max.Y > 404+ToolbarHeight {
			t.Fatalf("button %q outside the strip: %v", b.Label, b.Rect)
		}
		if i > 0 && b.Rect.Min.X <= tb.Buttons[i-1].Rect.Max.X {
			t.Fatalf("button %q overlaps its neighbour", b.Label)
		}
	}

	if _, ok := tb.HitTest(1, 1); ok {
		t.Fatal("click above the toolbar hit a button")
	}
	gap := tb.Buttons[0].Rect.Max.X + 1
	if _, ok := tb.HitTest(gap, tb.Buttons[0].Rect.Min.Y+2); ok {
		t.Fatal("click between buttons hit a button")
	}
}

func TestToolbarFitsDefaultCanvas(t *testing.T) {
	tb := NewToolbar(404, 404)
	label := StepLabel(123456)
	x, _ := tb.LabelOrigin(label)
	if x <= tb.Buttons[len(tb.Buttons)-1].Rect.Max.X {
		t.Fatalf("step label at x=%d overlaps the buttons (min width %d)", x, tb.MinWidth())
	}
}

func TestStepLabel(t *testing.T) {
	if got := StepLabel(0); got != "Step=0" {
		t.Fatalf("StepLabel(0) = %q", got)
	}
	if got := StepLabel(42); got != "Step=42" {
		t.Fatalf("StepLabel(42) = %q", got)
	}
}
