//go:build ebiten

package app

import (
	"image/color"
	"time"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"lifedit/internal/core"
	"lifedit/internal/render"
	"lifedit/internal/session"
	"lifedit/internal/ui"
)

// Game adapts a session to the ebiten.Game interface. It is also the
// session's renderer: every render request replaces the snapshot drawn by
// Draw.
type Game struct {
	session *session.Session
	painter *render.GridPainter
	hud     *ui.HUD
	layout  render.Layout
	logger  *log.Logger

	onColor  color.Color
	offColor color.Color

	width, height int

	live       []core.Cell
	generation int
}

// New constructs a Game for the provided configuration.
func New(cfg *Config, logger *log.Logger) (*Game, error) {
	layout := cfg.Layout()
	cw, ch := layout.CanvasSize(cfg.Size())
	g := &Game{
		painter:  render.NewGridPainter(cfg.Size(), layout),
		layout:   layout,
		logger:   logger,
		onColor:  color.Black,
		offColor: color.White,
		height:   ch + ui.ToolbarHeight,
	}
	g.width = max(cw, ui.NewToolbar(cw, ch).MinWidth())
	g.hud = ui.NewHUD(g.width, ch)

	s, err := cfg.NewSession(g, logger)
	if err != nil {
		return nil, err
	}
	g.session = s
	s.Refresh()
	return g, nil
}

// Render stores the latest snapshot for Draw.
func (g *Game) Render(live []core.Cell, generation int) {
	g.live = live
	g.generation = generation
}

// Session exposes the underlying session.
func (g *Game) Session() *session.Session { return g.session }

// Update handles input, then lets the session advance if a generation is
// due.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.session.Handle(session.IntentToggleRun)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyN) {
		g.session.Handle(session.IntentStep)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.session.Handle(session.IntentRandomize)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyC) {
		g.session.Handle(session.IntentClear)
	}

	if intent, ok := g.hud.Update(g.session.State()); ok {
		g.session.Handle(intent)
	} else if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		mx, my := ebiten.CursorPosition()
		if cell, ok := g.layout.CellAt(mx, my, g.session.Size()); ok {
			g.logger.Debug("clicked", "x", mx, "y", my, "row", cell.Row, "col", cell.Col)
			g.session.Toggle(cell.Row, cell.Col)
		}
	}

	g.session.Tick(time.Now())
	return nil
}

// Draw renders the latest snapshot and the toolbar.
func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(g.offColor)
	g.painter.Blit(screen, g.live, g.onColor, g.offColor)
	g.hud.Draw(screen, g.generation)
}

// Layout returns the logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.width, g.height
}
