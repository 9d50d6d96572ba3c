// Package replay runs a scenario against the simulation with a mock clock
// and records every tick.
package replay

import (
	"time"

	"github.com/benbjohnson/clock"
	"go.uber.org/zap"

	"github.com/l1jgo/pong/internal/control"
	"github.com/l1jgo/pong/internal/data"
	"github.com/l1jgo/pong/internal/match"
	"github.com/l1jgo/pong/internal/sim"
)

// Run replays sc on top of base and returns its trace. The opening serve
// happens at clock time zero; the first tick runs sc.Elapsed seconds later
// and every further tick advances the clock by sc.TickInterval().
func Run(sc *data.Scenario, base match.Rules, log *zap.Logger) *data.Trace {
	clk := clock.NewMock()
	s := match.New(sc.Rules(base), clk.Now(), match.NewRand(sc.Seed))
	sc.Setup(s)
	clk.Add(seconds(sc.Elapsed))

	trace := &data.Trace{
		Scenario: sc.Name,
		Ticks:    make([]data.TraceTick, 0, sc.Ticks),
	}
	for i := 0; i < sc.Ticks; i++ {
		if i > 0 {
			clk.Add(sc.TickInterval())
		}
		var in control.Input
		if e, ok := sc.InputAt(s.Tick + 1); ok {
			in = control.Input{Up: e.Up, Down: e.Down, ToggleAI: e.Toggle}
		}
		rep := sim.Step(s, in, clk.Now())
		trace.Ticks = append(trace.Ticks, record(s, rep))
		if rep.Scorer != match.SideNone {
			log.Debug("replay point",
				zap.String("scenario", sc.Name),
				zap.Uint64("tick", rep.Tick),
				zap.Stringer("scorer", rep.Scorer),
			)
		}
	}
	return trace
}

func record(s *match.State, rep sim.Report) data.TraceTick {
	return data.TraceTick{
		Tick:          rep.Tick,
		Ball:          s.Ball.Rect.Center(),
		Velocity:      s.Ball.Velocity,
		Player:        s.Player.Rect.CenterY(),
		Opponent:      s.Opponent.Rect.CenterY(),
		PlayerScore:   s.PlayerScore,
		OpponentScore: s.OpponentScore,
		InPlay:        rep.InPlay,
		PlayerAI:      s.PlayerAI,
		Events:        events(rep),
	}
}

// events names what happened during a tick, e.g. "wall", "paddle:player",
// "point:opponent", "toggle".
func events(rep sim.Report) []string {
	var out []string
	if rep.Toggled {
		out = append(out, "toggle")
	}
	if rep.WallBounce {
		out = append(out, "wall")
	}
	if rep.Scorer != match.SideNone {
		out = append(out, "point:"+rep.Scorer.String())
	}
	if rep.PaddleHit != match.SideNone {
		out = append(out, "paddle:"+rep.PaddleHit.String())
	}
	return out
}

func seconds(s float64) time.Duration {
	return time.Duration(s * float64(time.Second))
}
