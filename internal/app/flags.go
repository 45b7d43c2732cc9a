package app

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/log"

	"lifedit/internal/core"
	"lifedit/internal/render"
)

// ErrInvalidConfig is returned by Validate for unusable settings.
var ErrInvalidConfig = errors.New("invalid config")

// Config represents the command-line parameters for the application.
type Config struct {
	Rows  int
	Cols  int
	Delay time.Duration

	Dot    int
	Gap    int
	Offset int
	TPS    int

	Pattern  string
	Random   bool
	Seed     int64
	LogLevel string
}

// NewConfig returns a Config populated with sensible defaults.
func NewConfig() *Config {
	l := render.DefaultLayout()
	return &Config{
		Rows:     50,
		Cols:     50,
		Delay:    core.DefaultDelay,
		Dot:      l.Dot,
		Gap:      l.Gap,
		Offset:   l.Offset,
		TPS:      60,
		LogLevel: "info",
	}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.IntVar(&c.Rows, "rows", c.Rows, "grid rows")
	fs.IntVar(&c.Cols, "cols", c.Cols, "grid columns")
	fs.DurationVar(&c.Delay, "delay", c.Delay, "pause between generations while running")
	fs.IntVar(&c.Dot, "dot", c.Dot, "cell dot size in pixels")
	fs.IntVar(&c.Gap, "gap", c.Gap, "gap between dots in pixels")
	fs.IntVar(&c.Offset, "offset", c.Offset, "canvas margin in pixels")
	fs.IntVar(&c.TPS, "tps", c.TPS, "host loop ticks per second")
	fs.StringVar(&c.Pattern, "pattern", c.Pattern, "starting pattern, centred on the grid")
	fs.BoolVar(&c.Random, "random", c.Random, "start from a random grid")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "seed for randomize (0 uses the clock)")
	fs.StringVar(&c.LogLevel, "log-level", c.LogLevel, "debug, info, warn or error")
}

// Validate reports the first unusable setting.
func (c *Config) Validate() error {
	switch {
	case c.Rows <= 0 || c.Cols <= 0:
		return fmt.Errorf("%w: grid must be at least 1x1, got %dx%d", ErrInvalidConfig, c.Rows, c.Cols)
	case c.Delay <= 0:
		return fmt.Errorf("%w: delay must be positive, got %v", ErrInvalidConfig, c.Delay)
	case c.Dot <= 0 || c.Gap < 0 || c.Offset < 0:
		return fmt.Errorf("%w: dot %d, gap %d, offset %d", ErrInvalidConfig, c.Dot, c.Gap, c.Offset)
	case c.TPS <= 0:
		return fmt.Errorf("%w: tps must be positive, got %d", ErrInvalidConfig, c.TPS)
	}
	if c.Pattern != "" {
		if _, err := c.pattern(); err != nil {
			return err
		}
	}
	if _, err := log.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("%w: log level %q", ErrInvalidConfig, c.LogLevel)
	}
	return nil
}

// Size returns the configured grid dimensions.
func (c *Config) Size() core.Size { return core.Size{Rows: c.Rows, Cols: c.Cols} }

// Layout returns the configured pixel layout.
func (c *Config) Layout() render.Layout {
	return render.Layout{Dot: c.Dot, Gap: c.Gap, Offset: c.Offset}
}

// NewLogger builds a leveled logger writing to w.
func (c *Config) NewLogger(w io.Writer) *log.Logger {
	level, err := log.ParseLevel(c.LogLevel)
	if err != nil {
		level = log.InfoLevel
	}
	return log.NewWithOptions(w, log.Options{
		Level:           level,
		Prefix:          "lifedit",
		ReportTimestamp: true,
		TimeFormat:      time.TimeOnly,
	})
}
