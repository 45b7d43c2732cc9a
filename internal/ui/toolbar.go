package ui

import (
	"fmt"
	"image"

	"lifedit/internal/session"
)

const (
	panelPadding = 6
	buttonHeight = 22
	buttonGap    = 6
	glyphWidth   = 7 // basicfont.Face7x13 advance
	glyphHeight  = 13

	// ToolbarHeight is the vertical space reserved below the canvas.
	ToolbarHeight = buttonHeight + 2*panelPadding
)

// Button is a clickable toolbar entry bound to an intent.
type Button struct {
	Label  string
	Intent session.Intent
	Rect   image.Rectangle
}

// Toolbar lays out the control buttons in a strip starting at top.
type Toolbar struct {
	Buttons []Button
	Width   int
	Top     int
}

// NewToolbar builds the Run/Pause, Step, Randomize and Clear buttons in a
// strip of the given width whose top edge is at y = top.
func NewToolbar(width, top int) *Toolbar {
	tb := &Toolbar{Width: width, Top: top}
	x := panelPadding
	y := top + panelPadding
	for _, entry := range []struct {
		label  string
		intent session.Intent
	}{
		{"Run/Pause", session.IntentToggleRun},
		{"Step", session.IntentStep},
		{"Randomize", session.IntentRandomize},
		{"Clear", session.IntentClear},
	} {
		w := len(entry.label)*glyphWidth + 2*panelPadding
		tb.Buttons = append(tb.Buttons, Button{
			Label:  entry.label,
			Intent: entry.intent,
			Rect:   image.Rect(x, y, x+w, y+buttonHeight),
		})
		x += w + buttonGap
	}
	return tb
}

// MinWidth returns the width needed to fit every button.
func (tb *Toolbar) MinWidth() int {
	if len(tb.Buttons) == 0 {
		return 2 * panelPadding
	}
	return tb.Buttons[len(tb.Buttons)-1].Rect.Max.X + panelPadding
}

// HitTest returns the intent of the button under (x, y).
func (tb *Toolbar) HitTest(x, y int) (session.Intent, bool) {
	p := image.Pt(x, y)
	for _, b := range tb.Buttons {
		if p.In(b.Rect) {
			return b.Intent, true
		}
	}
	return 0, false
}

// StepLabel formats the generation counter.
func StepLabel(generation int) string {
	return fmt.Sprintf("Step=%d", generation)
}

// LabelOrigin returns the baseline origin for the right-aligned step label.
func (tb *Toolbar) LabelOrigin(label string) (x, y int) {
	x = tb.Width - panelPadding - len(label)*glyphWidth
	y = tb.Top + panelPadding + (buttonHeight+glyphHeight)/2 - 2
	return x, y
}
