// Package render is the ebiten window front-end. It owns no game rules: it
// ticks a system.Pipeline and draws the resulting state.
package render

import (
	"fmt"
	"image/color"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"go.uber.org/zap"

	"github.com/l1jgo/pong/internal/geom"
	"github.com/l1jgo/pong/internal/system"
)

var (
	white = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	gray  = color.RGBA{R: 110, G: 110, B: 110, A: 255}
)

// debugGlyphWidth is the advance of ebitenutil's debug font.
const debugGlyphWidth = 6

type Options struct {
	Title    string
	TickRate int
	Log      *zap.Logger
}

// Game adapts a Pipeline to ebiten.Game.
type Game struct {
	pipeline *system.Pipeline
	dt       time.Duration
	log      *zap.Logger
}

func NewGame(p *system.Pipeline, opts Options) *Game {
	if opts.Log == nil {
		opts.Log = zap.NewNop()
	}
	return &Game{
		pipeline: p,
		dt:       time.Second / time.Duration(opts.TickRate),
		log:      opts.Log,
	}
}

func (g *Game) Update() error {
	if ebiten.IsKeyPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	g.pipeline.Tick(g.dt)
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	s := g.pipeline.State
	court := s.Rules.Court
	screen.Fill(color.Black)

	for y := float32(0); y < float32(court.Height); y += 20 {
		vector.StrokeLine(screen, float32(court.Width/2), y, float32(court.Width/2), y+10, 2, gray, false)
	}
	for _, p := range g.pipeline.Frame.Predicted {
		vector.DrawFilledCircle(screen, float32(p.X), float32(p.Y), 2, gray, false)
	}

	fillRect(screen, s.Player.Rect)
	fillRect(screen, s.Opponent.Rect)
	fillRect(screen, s.Ball.Rect)

	left := fmt.Sprintf("Player: %d", s.PlayerScore)
	if s.PlayerAI {
		left += " (AI)"
	}
	right := fmt.Sprintf("Opponent: %d", s.OpponentScore)
	ebitenutil.DebugPrintAt(screen, left, 10, 10)
	ebitenutil.DebugPrintAt(screen, right, int(court.Width)-len(right)*debugGlyphWidth-10, 10)
}

func (g *Game) Layout(_, _ int) (int, int) {
	c := g.pipeline.State.Rules.Court
	return int(c.Width), int(c.Height)
}

func fillRect(dst *ebiten.Image, r geom.Rect) {
	vector.DrawFilledRect(dst, float32(r.X), float32(r.Y), float32(r.W), float32(r.H), white, false)
}

// Run opens the window and blocks until it is closed or Escape is pressed.
func Run(p *system.Pipeline, opts Options) error {
	c := p.State.Rules.Court
	ebiten.SetWindowSize(int(c.Width), int(c.Height))
	ebiten.SetWindowTitle(opts.Title)
	ebiten.SetTPS(opts.TickRate)
	ebiten.SetVsyncEnabled(true)

	g := NewGame(p, opts)
	if err := ebiten.RunGame(g); err != nil {
		return fmt.Errorf("run window: %w", err)
	}
	p.Flush()
	g.log.Info("window closed",
		zap.Int("player", p.State.PlayerScore),
		zap.Int("opponent", p.State.OpponentScore),
	)
	return nil
}
