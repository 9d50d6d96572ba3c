package system

import (
	"time"

	"github.com/benbjohnson/clock"

	"github.com/l1jgo/pong/internal/core/event"
	coresys "github.com/l1jgo/pong/internal/core/system"
	"github.com/l1jgo/pong/internal/match"
	"github.com/l1jgo/pong/internal/sim"
)

// MatchSystem advances the match by one Step per tick and publishes what
// happened on the bus. Phase 2 (Update).
type MatchSystem struct {
	state *match.State
	frame *Frame
	clock clock.Clock
	bus   *event.Bus
}

func NewMatchSystem(state *match.State, frame *Frame, clk clock.Clock, bus *event.Bus) *MatchSystem {
	return &MatchSystem{state: state, frame: frame, clock: clk, bus: bus}
}

func (s *MatchSystem) Phase() coresys.Phase { return coresys.PhaseUpdate }

func (s *MatchSystem) Update(_ time.Duration) {
	rep := sim.Step(s.state, s.frame.Input, s.clock.Now())
	s.frame.Report = rep

	if rep.Toggled {
		event.Emit(s.bus, event.ControlToggled{Tick: rep.Tick, PlayerAI: s.state.PlayerAI})
	}
	if rep.WallBounce {
		event.Emit(s.bus, event.WallBounce{Tick: rep.Tick})
	}
	if rep.Scorer != match.SideNone {
		event.Emit(s.bus, event.PointScored{
			Tick:          rep.Tick,
			Scorer:        rep.Scorer,
			PlayerScore:   s.state.PlayerScore,
			OpponentScore: s.state.OpponentScore,
		})
		event.Emit(s.bus, event.BallServed{Tick: rep.Tick, Velocity: s.state.Ball.Velocity})
	}
	if rep.PaddleHit != match.SideNone {
		event.Emit(s.bus, event.PaddleHit{Tick: rep.Tick, Side: rep.PaddleHit})
	}
}
