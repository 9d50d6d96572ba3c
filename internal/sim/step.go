// Package sim advances a match by one tick.
//
// Step order matters: the respawn gate is evaluated before integration,
// scoring is checked every tick regardless of the gate, and the speed ramp
// is applied last and unconditionally. Collisions are resolved by flipping
// velocity signs only; positions are never corrected, so a ball may overlap
// a wall or paddle for a frame and a fast ball may pass through a paddle.
package sim

import (
	"time"

	"github.com/l1jgo/pong/internal/control"
	"github.com/l1jgo/pong/internal/match"
)

// Input is the per-tick human input.
type Input = control.Input

// Report describes what happened during one Step.
type Report struct {
	Tick       uint64
	InPlay     bool
	Toggled    bool       // player control source switched
	WallBounce bool       // vy was inverted
	PaddleHit  match.Side // paddle that inverted vx, SideNone if none
	Scorer     match.Side // side that won a point, SideNone if none
}

// Step runs one tick of the match at wall-clock time now.
func Step(s *match.State, in Input, now time.Time) Report {
	s.Tick++
	rep := Report{Tick: s.Tick}

	rep.Toggled = control.Apply(s, in)

	s.InPlay = s.Elapsed(now) >= s.Rules.ResetTime
	rep.InPlay = s.InPlay

	ball := &s.Ball
	if s.InPlay {
		ball.Rect.Translate(ball.Velocity.X, ball.Velocity.Y)
	}

	court := s.Rules.Court
	if ball.Rect.Top() <= 0 || ball.Rect.Bottom() >= court.Height {
		ball.Velocity.Y = -ball.Velocity.Y
		rep.WallBounce = true
	}

	if ball.Rect.Left() <= 0 {
		s.OpponentScore++
		s.ResetBall(now)
		rep.Scorer = match.SideOpponent
	} else if ball.Rect.Right() >= court.Width {
		s.PlayerScore++
		s.ResetBall(now)
		rep.Scorer = match.SidePlayer
	}

	switch {
	case ball.Rect.Intersects(s.Player.Rect):
		ball.Velocity.X = -ball.Velocity.X
		rep.PaddleHit = match.SidePlayer
	case ball.Rect.Intersects(s.Opponent.Rect):
		ball.Velocity.X = -ball.Velocity.X
		rep.PaddleHit = match.SideOpponent
	}

	ramp := 1 + s.Rules.SpeedIncrease
	ball.Velocity.X *= ramp
	ball.Velocity.Y *= ramp

	return rep
}
