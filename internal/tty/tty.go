// Package tty is a terminal frontend: it draws the grid with tcell, two
// columns per cell, and turns keys and mouse clicks into session intents.
package tty

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gdamore/tcell/v2"

	"lifedit/internal/app"
	"lifedit/internal/core"
	"lifedit/internal/session"
)

const (
	liveGlyph       = '█'
	deadGlyph       = '·'
	maxTickInterval = 10 * time.Millisecond

	help = "[space] run/pause  [n] step  [r] randomize  [c] clear  [q] quit"
)

var (
	liveStyle   = tcell.StyleDefault.Foreground(tcell.ColorWhite)
	deadStyle   = tcell.StyleDefault.Foreground(tcell.ColorGray)
	statusStyle = tcell.StyleDefault.Reverse(true)
)

// Frontend owns a tcell screen and the session it displays. All session
// calls happen on the goroutine running Run.
type Frontend struct {
	screen  tcell.Screen
	session *session.Session
	logger  *log.Logger

	live       []core.Cell
	generation int
	buttons    tcell.ButtonMask
}

// New builds the session described by cfg and attaches it to an already
// initialised screen.
func New(screen tcell.Screen, cfg *app.Config, logger *log.Logger) (*Frontend, error) {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	f := &Frontend{screen: screen, logger: logger}
	s, err := cfg.NewSession(f, logger)
	if err != nil {
		return nil, err
	}
	f.session = s
	s.Refresh()
	return f, nil
}

// Session exposes the underlying session.
func (f *Frontend) Session() *session.Session { return f.session }

// Render stores the snapshot and repaints.
func (f *Frontend) Render(live []core.Cell, generation int) {
	f.live = live
	f.generation = generation
	if f.session != nil {
		f.draw()
	}
}

// Run pumps screen events and the generation ticker until the user quits
// or ctx is cancelled.
func (f *Frontend) Run(ctx context.Context) error {
	f.screen.EnableMouse()
	f.draw()

	events := make(chan tcell.Event)
	done := make(chan struct{})
	defer close(done)
	go func() {
		for {
			ev := f.screen.PollEvent()
			if ev == nil {
				return
			}
			select {
			case events <- ev:
			case <-done:
				return
			}
		}
	}()

	ticker := time.NewTicker(tickInterval(f.session.Delay()))
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case ev := <-events:
			if !f.handleEvent(ev) {
				return nil
			}
		case now := <-ticker.C:
			f.session.Tick(now)
		}
	}
}

// tickInterval polls several times per delay so ticker jitter never costs
// a whole generation, and at least every maxTickInterval so a run starts
// promptly even with long delays.
func tickInterval(delay time.Duration) time.Duration {
	return min(max(delay/4, time.Millisecond), maxTickInterval)
}

// handleEvent applies one screen event and reports whether to keep running.
func (f *Frontend) handleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		switch ev.Key() {
		case tcell.KeyEscape, tcell.KeyCtrlC:
			return false
		case tcell.KeyRune:
			switch ev.Rune() {
			case 'q', 'Q':
				return false
			case ' ':
				f.session.Handle(session.IntentToggleRun)
			case 'n', 'N':
				f.session.Handle(session.IntentStep)
			case 'r', 'R':
				f.session.Handle(session.IntentRandomize)
			case 'c', 'C':
				f.session.Handle(session.IntentClear)
			}
		}
	case *tcell.EventMouse:
		pressed := ev.Buttons()&tcell.Button1 != 0 && f.buttons&tcell.Button1 == 0
		f.buttons = ev.Buttons()
		if pressed {
			x, y := ev.Position()
			f.logger.Debug("clicked", "x", x, "y", y, "row", y, "col", x/2)
			rows, cols := f.visible()
			if x >= 0 && y >= 0 && y < rows && x/2 < cols {
				f.session.Toggle(y, x/2)
			}
		}
	case *tcell.EventResize:
		f.screen.Sync()
	}
	f.draw()
	return true
}

// visible returns how many grid rows and columns fit on the screen above
// the status line.
func (f *Frontend) visible() (rows, cols int) {
	size := f.session.Size()
	sw, sh := f.screen.Size()
	return max(min(size.Rows, sh-1), 0), max(min(size.Cols, sw/2), 0)
}

func (f *Frontend) draw() {
	f.screen.Clear()
	sw, sh := f.screen.Size()
	rows, cols := f.visible()
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			f.screen.SetContent(2*c, r, deadGlyph, nil, deadStyle)
		}
	}
	for _, cell := range f.live {
		if cell.Row < rows && cell.Col < cols {
			f.screen.SetContent(2*cell.Col, cell.Row, liveGlyph, nil, liveStyle)
			f.screen.SetContent(2*cell.Col+1, cell.Row, liveGlyph, nil, liveStyle)
		}
	}
	if sh > 0 {
		status := fmt.Sprintf(" %-7s Step=%d  %s", f.session.State(), f.generation, help)
		y := rows
		for x := 0; x < sw; x++ {
			ch := ' '
			if x < len(status) {
				ch = rune(status[x])
			}
			f.screen.SetContent(x, y, ch, nil, statusStyle)
		}
	}
	f.screen.Show()
}
