package data

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/l1jgo/pong/internal/geom"
)

// Trace is the tick-by-tick record of a replayed scenario.
type Trace struct {
	Scenario string      `yaml:"scenario"`
	Ticks    []TraceTick `yaml:"ticks"`
}

// TraceTick is the match state after one tick.
type TraceTick struct {
	Tick          uint64    `yaml:"tick"`
	Ball          geom.Vec2 `yaml:"ball"` // center
	Velocity      geom.Vec2 `yaml:"velocity"`
	Player        float64   `yaml:"player_y"`
	Opponent      float64   `yaml:"opponent_y"`
	PlayerScore   int       `yaml:"player_score"`
	OpponentScore int       `yaml:"opponent_score"`
	InPlay        bool      `yaml:"in_play"`
	PlayerAI      bool      `yaml:"player_ai"`
	Events        []string  `yaml:"events,omitempty"`
}

// WriteTrace writes t as YAML to path.
func WriteTrace(path string, t *Trace) error {
	out, err := yaml.Marshal(t)
	if err != nil {
		return fmt.Errorf("marshal trace: %w", err)
	}
	if err := os.WriteFile(path, out, 0o644); err != nil {
		return fmt.Errorf("write trace: %w", err)
	}
	return nil
}

// LoadTrace reads a trace written by WriteTrace.
func LoadTrace(path string) (*Trace, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read trace: %w", err)
	}
	var t Trace
	if err := yaml.Unmarshal(raw, &t); err != nil {
		return nil, fmt.Errorf("parse trace: %w", err)
	}
	return &t, nil
}
