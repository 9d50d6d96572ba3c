package match

import (
	"math/rand/v2"
	"time"

	"github.com/l1jgo/pong/internal/geom"
)

// Court is the playable area. The origin is the top-left corner.
type Court struct {
	Width  float64
	Height float64
}

// Center returns the geometric center of the court.
func (c Court) Center() geom.Vec2 {
	return geom.Vec2{X: c.Width / 2, Y: c.Height / 2}
}

// Rules holds the per-run constants of a match. They are read once at startup
// and never change while the match runs.
type Rules struct {
	Court Court

	PaddleWidth  float64
	PaddleHeight float64
	PaddleMargin float64 // distance from the side wall to the paddle's outer face
	PaddleSpeed  float64 // pixels per tick

	BallSize      float64
	BallSpeed     geom.Vec2 // serve speed per axis, pixels per tick; signs are ignored
	SpeedIncrease float64   // per-tick fractional growth of the ball velocity

	ResetTime time.Duration // pause after every reset before the ball moves
}

// Paddle is a vertically moving bat.
type Paddle struct {
	Rect  geom.Rect
	Speed float64
}

// Ball is the square ball and its per-tick velocity.
type Ball struct {
	Rect     geom.Rect
	Velocity geom.Vec2
}

// Side identifies who a point or paddle belongs to.
type Side int8

const (
	SideNone Side = iota
	SidePlayer
	SideOpponent
)

func (s Side) String() string {
	switch s {
	case SidePlayer:
		return "player"
	case SideOpponent:
		return "opponent"
	default:
		return "none"
	}
}

// State is the whole mutable match. It is owned by a single goroutine (the
// tick loop) and must not be shared.
type State struct {
	Rules Rules

	Player   Paddle // left side, human or AI controlled
	Opponent Paddle // right side, always AI controlled
	Ball     Ball

	PlayerScore   int
	OpponentScore int

	ResetAt  time.Time // time of the last ball reset
	InPlay   bool      // set each tick from the elapsed time since ResetAt
	PlayerAI bool      // player paddle follows the ball instead of input
	Tick     uint64

	rng *rand.Rand
}

// New creates a 0–0 match with both paddles vertically centered and the ball
// served from the center. The opening serve waits ResetTime like any other.
func New(r Rules, now time.Time, rng *rand.Rand) *State {
	midY := r.Court.Height/2 - r.PaddleHeight/2
	s := &State{
		Rules: r,
		Player: Paddle{
			Rect:  geom.NewRect(r.PaddleMargin, midY, r.PaddleWidth, r.PaddleHeight),
			Speed: r.PaddleSpeed,
		},
		Opponent: Paddle{
			Rect:  geom.NewRect(r.Court.Width-r.PaddleMargin-r.PaddleWidth, midY, r.PaddleWidth, r.PaddleHeight),
			Speed: r.PaddleSpeed,
		},
		Ball: Ball{
			Rect: geom.CenteredRect(r.Court.Center(), r.BallSize, r.BallSize),
		},
		rng: rng,
	}
	s.ResetBall(now)
	return s
}

// NewRand returns a deterministic generator for serve directions.
func NewRand(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

// ResetBall re-centers the ball, serves it in a random diagonal direction at
// base speed and restarts the respawn delay.
func (s *State) ResetBall(now time.Time) {
	s.Ball.Rect.SetCenter(s.Rules.Court.Center())
	s.Ball.Velocity = geom.Vec2{
		X: s.sign() * abs(s.Rules.BallSpeed.X),
		Y: s.sign() * abs(s.Rules.BallSpeed.Y),
	}
	s.ResetAt = now
}

// Elapsed returns the time since the last reset.
func (s *State) Elapsed(now time.Time) time.Duration {
	return now.Sub(s.ResetAt)
}

// Score returns (player, opponent).
func (s *State) Score() (int, int) {
	return s.PlayerScore, s.OpponentScore
}

func (s *State) sign() float64 {
	if s.rng.IntN(2) == 0 {
		return -1
	}
	return 1
}

func abs(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}
