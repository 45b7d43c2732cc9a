// Package session drives a life.Engine from user intents and a generation
// cadence, and tells a renderer when the visible state changed.
//
// A Session is not safe for concurrent use: the host calls every method from
// its event loop goroutine.
package session

import (
	"io"
	"time"

	"github.com/charmbracelet/log"

	"lifedit/internal/core"
	"lifedit/internal/life"
)

// State is the run state of a session.
type State int

const (
	// Idle is the initial state; generations only advance via StepOnce.
	Idle State = iota
	// Running advances one generation per cadence delay.
	Running
)

func (s State) String() string {
	switch s {
	case Idle:
		return "idle"
	case Running:
		return "running"
	default:
		return "unknown"
	}
}

// Intent is a parameterless user request.
type Intent int

const (
	IntentToggleRun Intent = iota + 1
	IntentStep
	IntentRandomize
	IntentClear
)

// Renderer receives a full snapshot after every state-changing operation.
type Renderer interface {
	Render(live []core.Cell, generation int)
}

// RenderFunc adapts a function to the Renderer interface.
type RenderFunc func(live []core.Cell, generation int)

// Render calls f.
func (f RenderFunc) Render(live []core.Cell, generation int) { f(live, generation) }

// Config controls session timing and logging.
type Config struct {
	Delay  time.Duration
	Logger *log.Logger
}

// Session owns the run state and generation counter for one engine.
type Session struct {
	engine   *life.Engine
	renderer Renderer
	cadence  *core.Cadence
	logger   *log.Logger

	state      State
	generation int
}

// New constructs an idle Session at generation 0. A nil renderer discards
// render requests.
func New(engine *life.Engine, renderer Renderer, cfg Config) *Session {
	if renderer == nil {
		renderer = RenderFunc(func([]core.Cell, int) {})
	}
	logger := cfg.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Session{
		engine:   engine,
		renderer: renderer,
		cadence:  core.NewCadence(cfg.Delay),
		logger:   logger,
	}
}

// State returns the current run state.
func (s *Session) State() State { return s.state }

// Generation returns the number of completed transitions since the last
// clear.
func (s *Session) Generation() int { return s.generation }

// Size returns the grid dimensions.
func (s *Session) Size() core.Size { return s.engine.Size() }

// LiveCells returns the current live coordinates.
func (s *Session) LiveCells() []core.Cell { return s.engine.LiveCells() }

// Delay returns the pause between automatic generations.
func (s *Session) Delay() time.Duration { return s.cadence.Delay() }

// Refresh renders the current state without changing it.
func (s *Session) Refresh() { s.render() }

// Toggle flips the cell at (row, col). Out-of-range coordinates are ignored
// and do not trigger a render.
func (s *Session) Toggle(row, col int) {
	if !s.engine.Toggle(row, col) {
		s.logger.Debug("ignored toggle outside grid", "row", row, "col", col)
		return
	}
	s.render()
}

// Randomize fills the grid with random cells. The generation counter is
// left alone.
func (s *Session) Randomize() {
	s.engine.Randomize()
	s.render()
}

// Clear kills every cell and resets the generation counter. The run state
// is not changed.
func (s *Session) Clear() {
	s.engine.Clear()
	s.generation = 0
	s.logger.Debug("cleared", "state", s.state)
	s.render()
}

// StepOnce advances exactly one generation, regardless of run state.
func (s *Session) StepOnce() {
	s.advance()
}

// ToggleRun switches between Idle and Running. Entering Running arms the
// cadence so the next Tick produces a generation.
func (s *Session) ToggleRun() {
	if s.state == Running {
		s.state = Idle
	} else {
		s.state = Running
		s.cadence.Reset()
	}
	s.logger.Debug("run state changed", "state", s.state, "generation", s.generation)
}

// Tick is called periodically by the host loop. While Running it advances
// at most one generation, once the cadence delay has passed since the
// previous one, and reports whether it did.
func (s *Session) Tick(now time.Time) bool {
	if s.state != Running || !s.cadence.Due(now) {
		return false
	}
	s.advance()
	return true
}

// Handle dispatches a parameterless intent. Unknown intents are ignored.
func (s *Session) Handle(intent Intent) {
	switch intent {
	case IntentToggleRun:
		s.ToggleRun()
	case IntentStep:
		s.StepOnce()
	case IntentRandomize:
		s.Randomize()
	case IntentClear:
		s.Clear()
	}
}

func (s *Session) advance() {
	s.generation++
	s.engine.Step()
	s.render()
}

func (s *Session) render() {
	s.renderer.Render(s.engine.LiveCells(), s.generation)
}
