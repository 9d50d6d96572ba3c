package data

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/l1jgo/pong/internal/geom"
	"github.com/l1jgo/pong/internal/match"
)

// Scenario is a scripted match used for deterministic replays. Unset
// optional fields keep the values of the base rules / the fresh match.
type Scenario struct {
	Name        string  `yaml:"name"`
	Seed        uint64  `yaml:"seed"`
	Ticks       int     `yaml:"ticks"`
	TickSeconds float64 `yaml:"tick_seconds"` // clock advance per tick, 0 = 1/60
	Elapsed     float64 `yaml:"elapsed"`      // seconds since the opening serve at tick 0

	Court         *CourtSpec `yaml:"court,omitempty"`
	ResetTime     *float64   `yaml:"reset_time,omitempty"` // seconds
	SpeedIncrease *float64   `yaml:"speed_increase,omitempty"`
	PaddleSpeed   *float64   `yaml:"paddle_speed,omitempty"`

	Ball     *BallSpec `yaml:"ball,omitempty"`
	Player   *float64  `yaml:"player_y,omitempty"`   // paddle center
	Opponent *float64  `yaml:"opponent_y,omitempty"` // paddle center
	PlayerAI bool      `yaml:"player_ai"`

	Inputs []InputEntry `yaml:"inputs"`
}

type CourtSpec struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

type BallSpec struct {
	Center   geom.Vec2 `yaml:"center"`
	Velocity geom.Vec2 `yaml:"velocity"`
}

// InputEntry is the player input held during one tick (1-based).
type InputEntry struct {
	Tick   uint64 `yaml:"tick"`
	Up     bool   `yaml:"up"`
	Down   bool   `yaml:"down"`
	Toggle bool   `yaml:"toggle"`
}

// LoadScenario loads a scenario YAML file.
func LoadScenario(path string) (*Scenario, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read scenario: %w", err)
	}
	return ParseScenario(raw)
}

// ParseScenario decodes and checks a scenario document.
func ParseScenario(raw []byte) (*Scenario, error) {
	var sc Scenario
	if err := yaml.Unmarshal(raw, &sc); err != nil {
		return nil, fmt.Errorf("parse scenario: %w", err)
	}
	if sc.Ticks <= 0 {
		return nil, fmt.Errorf("scenario %q: ticks must be positive", sc.Name)
	}
	if sc.TickSeconds < 0 || sc.Elapsed < 0 {
		return nil, fmt.Errorf("scenario %q: tick_seconds and elapsed must not be negative", sc.Name)
	}
	if sc.Court != nil && (sc.Court.Width <= 0 || sc.Court.Height <= 0) {
		return nil, fmt.Errorf("scenario %q: court size must be positive", sc.Name)
	}
	return &sc, nil
}

// TickInterval is the clock advance between ticks.
func (sc *Scenario) TickInterval() time.Duration {
	if sc.TickSeconds == 0 {
		return time.Second / 60
	}
	return seconds(sc.TickSeconds)
}

// Rules applies the scenario's overrides on top of base.
func (sc *Scenario) Rules(base match.Rules) match.Rules {
	r := base
	if sc.Court != nil {
		r.Court = match.Court{Width: sc.Court.Width, Height: sc.Court.Height}
	}
	if sc.ResetTime != nil {
		r.ResetTime = seconds(*sc.ResetTime)
	}
	if sc.SpeedIncrease != nil {
		r.SpeedIncrease = *sc.SpeedIncrease
	}
	if sc.PaddleSpeed != nil {
		r.PaddleSpeed = *sc.PaddleSpeed
	}
	return r
}

// Setup places the entities of a freshly created match.
func (sc *Scenario) Setup(s *match.State) {
	if sc.Ball != nil {
		s.Ball.Rect.SetCenter(sc.Ball.Center)
		s.Ball.Velocity = sc.Ball.Velocity
	}
	if sc.Player != nil {
		s.Player.Rect.SetCenter(geom.Vec2{X: s.Player.Rect.Center().X, Y: *sc.Player})
	}
	if sc.Opponent != nil {
		s.Opponent.Rect.SetCenter(geom.Vec2{X: s.Opponent.Rect.Center().X, Y: *sc.Opponent})
	}
	s.PlayerAI = sc.PlayerAI
}

// InputAt returns the input scheduled for tick, if any.
func (sc *Scenario) InputAt(tick uint64) (InputEntry, bool) {
	for _, in := range sc.Inputs {
		if in.Tick == tick {
			return in, true
		}
	}
	return InputEntry{}, false
}

func seconds(s float64) time.Duration {
	return time.Duration(s * float64(time.Second))
}
