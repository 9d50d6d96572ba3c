package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/multierr"

	"github.com/l1jgo/pong/internal/geom"
)

func writeFile(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "pong.toml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.toml"))
	require.NoError(t, err)

	assert.Equal(t, defaults(), cfg)
	assert.Equal(t, 15, cfg.PredictionFrames())
	assert.Equal(t, time.Second/60, cfg.TickInterval())
}

func TestLoadTOML(t *testing.T) {
	path := writeFile(t, `
[court]
width = 640
height = 480

[ball]
speed_x = 3.5
speed_increase = 0.0

[match]
tick_rate = 120
reset_time = "1500ms"
seed = 99

[prediction]
frames = 8

[display]
mode = "headless"
max_ticks = 1000
`)
	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 640, cfg.Court.Width)
	assert.Equal(t, 480, cfg.Court.Height)
	assert.Equal(t, 3.5, cfg.Ball.SpeedX)
	assert.Equal(t, 5.0, cfg.Ball.SpeedY, "untouched keys keep defaults")
	assert.Zero(t, cfg.Ball.SpeedIncrease)
	assert.Equal(t, 1500*time.Millisecond, cfg.Match.ResetTime)
	assert.Equal(t, uint64(99), cfg.Match.Seed)
	assert.Equal(t, 8, cfg.PredictionFrames())
	assert.Equal(t, ModeHeadless, cfg.Display.Mode)
	assert.Equal(t, 1000, cfg.Display.MaxTicks)
}

func TestLoadBadTOML(t *testing.T) {
	_, err := Load(writeFile(t, "[court\nwidth = 1"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parse config")
}

func TestLoadEnvOverridesFile(t *testing.T) {
	t.Setenv("WIDTH", "1024")
	t.Setenv("RESET_TIME", "0.25")
	t.Setenv("BALL_SPEED_INCREASE", "0")

	cfg, err := Load(writeFile(t, "[court]\nwidth = 640\n"))
	require.NoError(t, err)
	assert.Equal(t, 1024, cfg.Court.Width)
	assert.Equal(t, 250*time.Millisecond, cfg.Match.ResetTime)
	assert.Zero(t, cfg.Ball.SpeedIncrease)
}

func TestApplyEnv(t *testing.T) {
	env := map[string]string{
		"HEIGHT":        "720",
		"PADDLE_HEIGHT": "80",
		"PADDLE_SPEED":  "7.5",
		"BALL_SPEED_X":  "6",
		"BALL_SPEED_Y":  "4",
		"TICK_RATE":     "30",
	}
	cfg := defaults()
	require.NoError(t, cfg.ApplyEnv(func(k string) (string, bool) {
		v, ok := env[k]
		return v, ok
	}))

	assert.Equal(t, 720, cfg.Court.Height)
	assert.Equal(t, 80, cfg.Paddle.Height)
	assert.Equal(t, 7.5, cfg.Paddle.Speed)
	assert.Equal(t, geom.Vec2{X: 6, Y: 4}, cfg.Rules().BallSpeed)
	assert.Equal(t, 30, cfg.Match.TickRate)
	assert.Equal(t, 7, cfg.PredictionFrames())
}

func TestApplyEnvCollectsErrors(t *testing.T) {
	env := map[string]string{
		"WIDTH":        "wide",
		"BALL_SPEED_Y": "fast",
		"RESET_TIME":   "soon",
	}
	cfg := defaults()
	err := cfg.ApplyEnv(func(k string) (string, bool) {
		v, ok := env[k]
		return v, ok
	})
	require.Error(t, err)
	assert.Len(t, multierr.Errors(err), 3)
	assert.Equal(t, 800, cfg.Court.Width, "bad values leave the setting alone")
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
		errs   int
	}{
		{"defaults", func(*Config) {}, 0},
		{"zero width", func(c *Config) { c.Court.Width = 0 }, 2},
		{"negative ball", func(c *Config) { c.Ball.Size = -1 }, 1},
		{"tall paddle", func(c *Config) { c.Paddle.Height = 700 }, 1},
		{"bad mode", func(c *Config) { c.Display.Mode = "vr" }, 1},
		{"negative reset", func(c *Config) { c.Match.ResetTime = -time.Second }, 1},
		{"zero tick rate", func(c *Config) { c.Match.TickRate = 0 }, 1},
		{"several", func(c *Config) {
			c.Paddle.Width = 0
			c.Ball.SpeedIncrease = -0.1
			c.Prediction.Frames = -2
		}, 3},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := defaults()
			tt.mutate(cfg)
			err := cfg.Validate()
			assert.Len(t, multierr.Errors(err), tt.errs)
		})
	}
}

func TestRules(t *testing.T) {
	r := defaults().Rules()

	assert.Equal(t, 800.0, r.Court.Width)
	assert.Equal(t, 600.0, r.Court.Height)
	assert.Equal(t, 15.0, r.PaddleWidth)
	assert.Equal(t, 100.0, r.PaddleHeight)
	assert.Equal(t, 50.0, r.PaddleMargin)
	assert.Equal(t, 5.0, r.PaddleSpeed)
	assert.Equal(t, 20.0, r.BallSize)
	assert.Equal(t, 0.0001, r.SpeedIncrease)
	assert.Equal(t, time.Second, r.ResetTime)
}
