// Package predict extrapolates the ball's path for on-screen guidance.
// It ignores walls and paddles, so predictions drift near the court edges.
package predict

import (
	"iter"
	"slices"

	"github.com/l1jgo/pong/internal/geom"
	"github.com/l1jgo/pong/internal/match"
)

// Seq lazily yields the n centers that follow start when vel is added once
// per frame. The first yielded value is one frame ahead of start.
func Seq(start, vel geom.Vec2, n int) iter.Seq[geom.Vec2] {
	return func(yield func(geom.Vec2) bool) {
		for i := 1; i <= n; i++ {
			if !yield(start.Add(vel.Scale(float64(i)))) {
				return
			}
		}
	}
}

// Path returns the next n centers as a slice.
func Path(start, vel geom.Vec2, n int) []geom.Vec2 {
	if n <= 0 {
		return nil
	}
	return slices.Collect(Seq(start, vel, n))
}

// Ball predicts the next n centers of b from its current velocity.
func Ball(b match.Ball, n int) []geom.Vec2 {
	return Path(b.Rect.Center(), b.Velocity, n)
}
