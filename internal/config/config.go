package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"
	"go.uber.org/multierr"

	"github.com/l1jgo/pong/internal/geom"
	"github.com/l1jgo/pong/internal/match"
)

type Config struct {
	Court      CourtConfig      `toml:"court"`
	Paddle     PaddleConfig     `toml:"paddle"`
	Ball       BallConfig       `toml:"ball"`
	Match      MatchConfig      `toml:"match"`
	Prediction PredictionConfig `toml:"prediction"`
	Display    DisplayConfig    `toml:"display"`
	Logging    LoggingConfig    `toml:"logging"`
}

type CourtConfig struct {
	Width  int `toml:"width"`
	Height int `toml:"height"`
}

type PaddleConfig struct {
	Width  int     `toml:"width"`
	Height int     `toml:"height"`
	Margin int     `toml:"margin"` // gap between side wall and paddle
	Speed  float64 `toml:"speed"`  // pixels per tick
}

type BallConfig struct {
	Size          int     `toml:"size"`
	SpeedX        float64 `toml:"speed_x"`        // pixels per tick
	SpeedY        float64 `toml:"speed_y"`        // pixels per tick
	SpeedIncrease float64 `toml:"speed_increase"` // per-tick fractional growth
}

type MatchConfig struct {
	TickRate       int           `toml:"tick_rate"` // ticks per second
	ResetTime      time.Duration `toml:"reset_time"`
	Seed           uint64        `toml:"seed"`            // 0 = seed from clock
	StatusInterval int           `toml:"status_interval"` // ticks between status logs, 0 = off
}

type PredictionConfig struct {
	Enabled bool `toml:"enabled"`
	Frames  int  `toml:"frames"` // 0 = tick_rate / 4
}

type DisplayConfig struct {
	Mode     string `toml:"mode"` // "window" or "headless"
	Title    string `toml:"title"`
	Script   string `toml:"script"`    // Lua input script for headless mode
	MaxTicks int    `toml:"max_ticks"` // headless stop after N ticks, 0 = run until signal
}

type LoggingConfig struct {
	Level  string `toml:"level"`
	Format string `toml:"format"` // "json" or "console"
}

const (
	ModeWindow   = "window"
	ModeHeadless = "headless"
)

// Load reads the TOML file at path on top of the defaults, then applies
// variables from .env and the process environment. A missing file is not an
// error: every setting has a default.
func Load(path string) (*Config, error) {
	cfg := defaults()
	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		if err := toml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config %s: %w", path, err)
		}
	case errors.Is(err, fs.ErrNotExist):
	default:
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}

	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("load .env: %w", err)
	}
	if err := cfg.ApplyEnv(os.LookupEnv); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

// ApplyEnv overrides settings from environment variables. The names are the
// classic unprefixed ones (WIDTH, BALL_SPEED_X, ...); RESET_TIME is given in
// seconds.
func (c *Config) ApplyEnv(lookup func(string) (string, bool)) error {
	var errs error
	ints := []struct {
		key string
		dst *int
	}{
		{"WIDTH", &c.Court.Width},
		{"HEIGHT", &c.Court.Height},
		{"PADDLE_WIDTH", &c.Paddle.Width},
		{"PADDLE_HEIGHT", &c.Paddle.Height},
		{"BALL_SIZE", &c.Ball.Size},
		{"TICK_RATE", &c.Match.TickRate},
	}
	for _, e := range ints {
		v, ok := lookup(e.key)
		if !ok {
			continue
		}
		n, err := strconv.Atoi(v)
		if err != nil {
			errs = multierr.Append(errs, fmt.Errorf("env %s=%q: %w", e.key, v, err))
			continue
		}
		*e.dst = n
	}

	floats := []struct {
		key string
		dst *float64
	}{
		{"PADDLE_SPEED", &c.Paddle.Speed},
		{"BALL_SPEED_X", &c.Ball.SpeedX},
		{"BALL_SPEED_Y", &c.Ball.SpeedY},
		{"BALL_SPEED_INCREASE", &c.Ball.SpeedIncrease},
	}
	for _, e := range floats {
		v, ok := lookup(e.key)
		if !ok {
			continue
		}
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			errs = multierr.Append(errs, fmt.Errorf("env %s=%q: %w", e.key, v, err))
			continue
		}
		*e.dst = f
	}

	if v, ok := lookup("RESET_TIME"); ok {
		secs, err := strconv.ParseFloat(v, 64)
		if err != nil {
			errs = multierr.Append(errs, fmt.Errorf("env RESET_TIME=%q: %w", v, err))
		} else {
			c.Match.ResetTime = time.Duration(secs * float64(time.Second))
		}
	}
	return errs
}

// Validate reports every setting the simulation cannot run with.
func (c *Config) Validate() error {
	var errs error
	positive := func(name string, v float64) {
		if v <= 0 {
			errs = multierr.Append(errs, fmt.Errorf("%s must be positive, got %v", name, v))
		}
	}
	positive("court.width", float64(c.Court.Width))
	positive("court.height", float64(c.Court.Height))
	positive("paddle.width", float64(c.Paddle.Width))
	positive("paddle.height", float64(c.Paddle.Height))
	positive("ball.size", float64(c.Ball.Size))
	positive("match.tick_rate", float64(c.Match.TickRate))

	if c.Paddle.Height > c.Court.Height {
		errs = multierr.Append(errs, fmt.Errorf("paddle.height %d exceeds court.height %d", c.Paddle.Height, c.Court.Height))
	}
	if 2*(c.Paddle.Margin+c.Paddle.Width) >= c.Court.Width {
		errs = multierr.Append(errs, fmt.Errorf("paddles do not fit in court.width %d", c.Court.Width))
	}
	if c.Paddle.Margin < 0 {
		errs = multierr.Append(errs, fmt.Errorf("paddle.margin must not be negative, got %d", c.Paddle.Margin))
	}
	if c.Paddle.Speed < 0 {
		errs = multierr.Append(errs, fmt.Errorf("paddle.speed must not be negative, got %v", c.Paddle.Speed))
	}
	if c.Ball.SpeedIncrease < 0 {
		errs = multierr.Append(errs, fmt.Errorf("ball.speed_increase must not be negative, got %v", c.Ball.SpeedIncrease))
	}
	if c.Match.ResetTime < 0 {
		errs = multierr.Append(errs, fmt.Errorf("match.reset_time must not be negative, got %s", c.Match.ResetTime))
	}
	if c.Prediction.Frames < 0 {
		errs = multierr.Append(errs, fmt.Errorf("prediction.frames must not be negative, got %d", c.Prediction.Frames))
	}
	switch c.Display.Mode {
	case ModeWindow, ModeHeadless:
	default:
		errs = multierr.Append(errs, fmt.Errorf("display.mode must be %q or %q, got %q", ModeWindow, ModeHeadless, c.Display.Mode))
	}
	return errs
}

// TickInterval is the wall-clock length of one tick.
func (c *Config) TickInterval() time.Duration {
	return time.Second / time.Duration(c.Match.TickRate)
}

// PredictionFrames is how many future ball positions to draw.
func (c *Config) PredictionFrames() int {
	if c.Prediction.Frames > 0 {
		return c.Prediction.Frames
	}
	return c.Match.TickRate / 4
}

// Rules converts the configuration into match constants.
func (c *Config) Rules() match.Rules {
	return match.Rules{
		Court: match.Court{
			Width:  float64(c.Court.Width),
			Height: float64(c.Court.Height),
		},
		PaddleWidth:   float64(c.Paddle.Width),
		PaddleHeight:  float64(c.Paddle.Height),
		PaddleMargin:  float64(c.Paddle.Margin),
		PaddleSpeed:   c.Paddle.Speed,
		BallSize:      float64(c.Ball.Size),
		BallSpeed:     geom.Vec2{X: c.Ball.SpeedX, Y: c.Ball.SpeedY},
		SpeedIncrease: c.Ball.SpeedIncrease,
		ResetTime:     c.Match.ResetTime,
	}
}

func defaults() *Config {
	return &Config{
		Court: CourtConfig{
			Width:  800,
			Height: 600,
		},
		Paddle: PaddleConfig{
			Width:  15,
			Height: 100,
			Margin: 50,
			Speed:  5,
		},
		Ball: BallConfig{
			Size:          20,
			SpeedX:        5,
			SpeedY:        5,
			SpeedIncrease: 0.0001,
		},
		Match: MatchConfig{
			TickRate:       60,
			ResetTime:      time.Second,
			StatusInterval: 600,
		},
		Prediction: PredictionConfig{
			Enabled: true,
		},
		Display: DisplayConfig{
			Mode:  ModeWindow,
			Title: "Pong",
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "console",
		},
	}
}
