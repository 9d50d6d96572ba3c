// Package control moves paddles. Every policy moves a paddle by at most one
// Speed step per tick and keeps it inside the court.
package control

import (
	"github.com/l1jgo/pong/internal/match"
)

// Input is the human side of one tick: held keys plus the AI toggle press.
type Input struct {
	Up       bool
	Down     bool
	ToggleAI bool
}

// Apply runs the movement policies for one tick. The toggle is processed
// first so the new control source already applies this tick.
// It reports whether the player's control source was switched.
func Apply(s *match.State, in Input) bool {
	if in.ToggleAI {
		s.PlayerAI = !s.PlayerAI
	}

	if s.PlayerAI {
		Track(&s.Player, s.Ball, s.Rules.Court, s.Ball.Velocity.X < 0)
	} else {
		Human(&s.Player, in.Up, in.Down, s.Rules.Court)
	}
	Track(&s.Opponent, s.Ball, s.Rules.Court, s.Ball.Velocity.X > 0)
	return in.ToggleAI
}

// Human moves the paddle by held keys. Holding both keys cancels out.
func Human(p *match.Paddle, up, down bool, court match.Court) {
	dy := 0.0
	if up {
		dy -= p.Speed
	}
	if down {
		dy += p.Speed
	}
	move(p, dy, court)
}

// Track steps the paddle toward the ball's vertical center, but only while
// the ball is approaching. A receding ball leaves the paddle where it is.
func Track(p *match.Paddle, b match.Ball, court match.Court, approaching bool) {
	if !approaching {
		return
	}
	target := b.Rect.CenterY()
	center := p.Rect.CenterY()
	switch {
	case target < center:
		move(p, -p.Speed, court)
	case target > center:
		move(p, p.Speed, court)
	}
}

func move(p *match.Paddle, dy float64, court match.Court) {
	if dy == 0 {
		return
	}
	p.Rect.Translate(0, dy)
	if p.Rect.Top() < 0 {
		p.Rect.Y = 0
	}
	if p.Rect.Bottom() > court.Height {
		p.Rect.Y = court.Height - p.Rect.H
	}
}
