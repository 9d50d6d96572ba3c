package system

import (
	"time"

	"go.uber.org/zap"

	coresys "github.com/l1jgo/pong/internal/core/system"
	"github.com/l1jgo/pong/internal/match"
)

// ScoreboardSystem logs a status line every interval ticks. Phase 4 (Output).
type ScoreboardSystem struct {
	state     *match.State
	log       *zap.Logger
	interval  int
	tickCount int
}

func NewScoreboardSystem(state *match.State, interval int, log *zap.Logger) *ScoreboardSystem {
	return &ScoreboardSystem{state: state, interval: interval, log: log}
}

func (s *ScoreboardSystem) Phase() coresys.Phase { return coresys.PhaseOutput }

func (s *ScoreboardSystem) Update(_ time.Duration) {
	if s.interval <= 0 {
		return
	}
	s.tickCount++
	if s.tickCount%s.interval != 0 {
		return
	}
	v := s.state.Ball.Velocity
	s.log.Info("match status",
		zap.Uint64("tick", s.state.Tick),
		zap.Int("player", s.state.PlayerScore),
		zap.Int("opponent", s.state.OpponentScore),
		zap.Bool("in_play", s.state.InPlay),
		zap.Bool("player_ai", s.state.PlayerAI),
		zap.Float64("ball_speed_x", v.X),
		zap.Float64("ball_speed_y", v.Y),
	)
}
