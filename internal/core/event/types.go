package event

import (
	"github.com/l1jgo/pong/internal/geom"
	"github.com/l1jgo/pong/internal/match"
)

// Match event types. Each carries the tick it was produced on.

type PointScored struct {
	Tick          uint64
	Scorer        match.Side
	PlayerScore   int
	OpponentScore int
}

type BallServed struct {
	Tick     uint64
	Velocity geom.Vec2
}

type ControlToggled struct {
	Tick     uint64
	PlayerAI bool
}

type PaddleHit struct {
	Tick uint64
	Side match.Side
}

type WallBounce struct {
	Tick uint64
}
