package system

import (
	"time"

	"github.com/l1jgo/pong/internal/control"
	coresys "github.com/l1jgo/pong/internal/core/system"
	"github.com/l1jgo/pong/internal/match"
)

// InputSource produces the player's input for the coming tick.
type InputSource interface {
	Poll(s *match.State) control.Input
}

// Idle is an InputSource that never presses anything.
type Idle struct{}

func (Idle) Poll(*match.State) control.Input { return control.Input{} }

// InputSystem samples the input source into the frame. Phase 0 (Input).
type InputSystem struct {
	source InputSource
	state  *match.State
	frame  *Frame
}

func NewInputSystem(source InputSource, state *match.State, frame *Frame) *InputSystem {
	if source == nil {
		source = Idle{}
	}
	return &InputSystem{source: source, state: state, frame: frame}
}

func (s *InputSystem) Phase() coresys.Phase { return coresys.PhaseInput }

func (s *InputSystem) Update(_ time.Duration) {
	s.frame.Input = s.source.Poll(s.state)
}
