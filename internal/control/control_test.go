package control

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/l1jgo/pong/internal/geom"
	"github.com/l1jgo/pong/internal/match"
)

var court = match.Court{Width: 800, Height: 600}

func paddleAt(y float64) match.Paddle {
	return match.Paddle{Rect: geom.NewRect(50, y, 15, 100), Speed: 5}
}

func ballAt(centerY, vx float64) match.Ball {
	return match.Ball{
		Rect:     geom.CenteredRect(geom.Vec2{X: 400, Y: centerY}, 20, 20),
		Velocity: geom.Vec2{X: vx, Y: 5},
	}
}

func TestHuman(t *testing.T) {
	tests := []struct {
		name     string
		y        float64
		up, down bool
		wantY    float64
	}{
		{"idle", 250, false, false, 250},
		{"up", 250, true, false, 245},
		{"down", 250, false, true, 255},
		{"both cancel", 250, true, true, 250},
		{"clamped at top", 3, true, false, 0},
		{"already at top", 0, true, false, 0},
		{"clamped at bottom", 498, false, true, 500},
		{"already at bottom", 500, false, true, 500},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := paddleAt(tt.y)
			Human(&p, tt.up, tt.down, court)
			assert.Equal(t, tt.wantY, p.Rect.Y)
		})
	}
}

func TestTrack(t *testing.T) {
	tests := []struct {
		name        string
		paddleY     float64 // paddle center = paddleY + 50
		ballY       float64
		approaching bool
		wantY       float64
	}{
		{"ball above", 250, 100, true, 245},
		{"ball below", 250, 500, true, 255},
		{"centers equal", 250, 300, true, 250},
		{"one pixel off still full step", 250, 301, true, 255},
		{"receding ball ignored", 250, 100, false, 250},
		{"clamped at top", 2, 0, true, 0},
		{"clamped at bottom", 499, 600, true, 500},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := paddleAt(tt.paddleY)
			Track(&p, ballAt(tt.ballY, 5), court, tt.approaching)
			assert.Equal(t, tt.wantY, p.Rect.Y)
		})
	}
}

func newState() *match.State {
	r := match.Rules{
		Court:        court,
		PaddleWidth:  15,
		PaddleHeight: 100,
		PaddleMargin: 50,
		PaddleSpeed:  5,
		BallSize:     20,
		BallSpeed:    geom.Vec2{X: 5, Y: 5},
		ResetTime:    time.Second,
	}
	return match.New(r, time.Unix(0, 0), match.NewRand(3))
}

func TestApplyOpponentTracksOnlyApproachingBall(t *testing.T) {
	s := newState()
	s.Ball.Rect.SetCenter(geom.Vec2{X: 400, Y: 100})

	s.Ball.Velocity = geom.Vec2{X: -5, Y: 5}
	Apply(s, Input{})
	assert.Equal(t, 250.0, s.Opponent.Rect.Y, "ball moving away from opponent")

	s.Ball.Velocity = geom.Vec2{X: 5, Y: 5}
	Apply(s, Input{})
	assert.Equal(t, 245.0, s.Opponent.Rect.Y)
}

func TestApplyHumanPlayer(t *testing.T) {
	s := newState()
	s.Ball.Velocity = geom.Vec2{X: -5, Y: 5}
	s.Ball.Rect.SetCenter(geom.Vec2{X: 400, Y: 100})

	toggled := Apply(s, Input{Down: true})
	assert.False(t, toggled)
	assert.Equal(t, 255.0, s.Player.Rect.Y, "human input wins over ball position")
}

func TestApplyToggleSwitchesControlSource(t *testing.T) {
	s := newState()
	s.Ball.Velocity = geom.Vec2{X: -5, Y: 5}
	s.Ball.Rect.SetCenter(geom.Vec2{X: 400, Y: 100})
	ballBefore := s.Ball
	scoreP, scoreO := s.Score()

	toggled := Apply(s, Input{ToggleAI: true, Down: true})
	assert.True(t, toggled)
	assert.True(t, s.PlayerAI)
	assert.Equal(t, 245.0, s.Player.Rect.Y, "AI follows the ball and ignores held keys")
	assert.Equal(t, ballBefore, s.Ball)
	p, o := s.Score()
	assert.Equal(t, scoreP, p)
	assert.Equal(t, scoreO, o)

	Apply(s, Input{ToggleAI: true})
	assert.False(t, s.PlayerAI)
	assert.Equal(t, 245.0, s.Player.Rect.Y, "no keys held after switching back")
}

func TestApplyPlayerAIIgnoresRecedingBall(t *testing.T) {
	s := newState()
	s.PlayerAI = true
	s.Ball.Velocity = geom.Vec2{X: 5, Y: 5}
	s.Ball.Rect.SetCenter(geom.Vec2{X: 400, Y: 100})

	Apply(s, Input{})
	assert.Equal(t, 250.0, s.Player.Rect.Y)
}
