//go:build ebiten

package ui

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"

	"lifedit/internal/session"
)

// HUD draws the toolbar below the grid and turns clicks on it into intents.
type HUD struct {
	toolbar *Toolbar
	running bool
}

// NewHUD constructs a HUD whose strip spans width pixels starting at top.
func NewHUD(width, top int) *HUD {
	return &HUD{toolbar: NewToolbar(width, top)}
}

// Update returns the intent of a toolbar button clicked this frame.
func (h *HUD) Update(state session.State) (session.Intent, bool) {
	h.running = state == session.Running
	if !inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		return 0, false
	}
	mx, my := ebiten.CursorPosition()
	return h.toolbar.HitTest(mx, my)
}

// Draw paints the toolbar and the step label.
func (h *HUD) Draw(screen *ebiten.Image, generation int) {
	tb := h.toolbar
	vector.DrawFilledRect(screen, 0, float32(tb.Top), float32(tb.Width), ToolbarHeight,
		color.RGBA{R: 230, G: 230, B: 230, A: 255}, false)
	for _, b := range tb.Buttons {
		h.drawButton(screen, b)
	}
	label := StepLabel(generation)
	x, y := tb.LabelOrigin(label)
	text.Draw(screen, label, basicfont.Face7x13, x, y, color.Black)
}

func (h *HUD) drawButton(screen *ebiten.Image, b Button) {
	bg := color.RGBA{R: 250, G: 250, B: 250, A: 255}
	if b.Intent == session.IntentToggleRun && h.running {
		bg = color.RGBA{R: 200, G: 220, B: 200, A: 255}
	}
	r := b.Rect
	vector.DrawFilledRect(screen, float32(r.Min.X), float32(r.Min.Y), float32(r.Dx()), float32(r.Dy()), bg, false)
	vector.StrokeRect(screen, float32(r.Min.X), float32(r.Min.Y), float32(r.Dx()), float32(r.Dy()), 1,
		color.RGBA{R: 120, G: 120, B: 120, A: 255}, false)

	face := basicfont.Face7x13
	bounds := text.BoundString(face, b.Label)
	x := r.Min.X + (r.Dx()-bounds.Dx())/2
	y := r.Min.Y + (r.Dy()+glyphHeight)/2 - 2
	text.Draw(screen, b.Label, face, x, y, color.Black)
}
