package system

import (
	"time"

	coresys "github.com/l1jgo/pong/internal/core/system"
	"github.com/l1jgo/pong/internal/match"
	"github.com/l1jgo/pong/internal/predict"
)

// PredictionSystem refreshes the ball's predicted path after the match has
// moved. Phase 3 (PostUpdate).
type PredictionSystem struct {
	state  *match.State
	frame  *Frame
	frames int
}

func NewPredictionSystem(state *match.State, frame *Frame, frames int) *PredictionSystem {
	return &PredictionSystem{state: state, frame: frame, frames: frames}
}

func (s *PredictionSystem) Phase() coresys.Phase { return coresys.PhasePostUpdate }

func (s *PredictionSystem) Update(_ time.Duration) {
	s.frame.Predicted = predict.Ball(s.state.Ball, s.frames)
}
