package app

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/log"

	"lifedit/internal/core"
	"lifedit/internal/life"
	"lifedit/internal/patterns"
	"lifedit/internal/session"
)

func (c *Config) pattern() (patterns.Pattern, error) {
	p, ok := patterns.Lookup(c.Pattern)
	if !ok {
		return patterns.Pattern{}, fmt.Errorf("%w: unknown pattern %q (known: %s)", ErrInvalidConfig, c.Pattern, strings.Join(patterns.Names(), ", "))
	}
	return p, nil
}

// NewEngine builds the engine described by the config: seeded when Seed is
// non-zero, optionally randomized, then stamped with the starting pattern.
func (c *Config) NewEngine() (*life.Engine, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}
	rng := core.NewClockRNG()
	if c.Seed != 0 {
		rng = core.NewRNG(c.Seed)
	}
	e := life.NewWithRNG(c.Rows, c.Cols, rng)
	if c.Random {
		e.Randomize()
	}
	if c.Pattern != "" {
		p, err := c.pattern()
		if err != nil {
			return nil, err
		}
		p.StampCentered(e, e.Size())
	}
	return e, nil
}

// NewSession builds the engine and wraps it in an idle session that reports
// to renderer.
func (c *Config) NewSession(renderer session.Renderer, logger *log.Logger) (*session.Session, error) {
	e, err := c.NewEngine()
	if err != nil {
		return nil, fmt.Errorf("build engine: %w", err)
	}
	return session.New(e, renderer, session.Config{Delay: c.Delay, Logger: logger}), nil
}
