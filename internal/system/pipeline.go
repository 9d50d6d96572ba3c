package system

import (
	"time"

	"github.com/benbjohnson/clock"
	"go.uber.org/zap"

	"github.com/l1jgo/pong/internal/core/event"
	coresys "github.com/l1jgo/pong/internal/core/system"
	"github.com/l1jgo/pong/internal/match"
)

// Options configures a Pipeline.
type Options struct {
	Source         InputSource // nil = Idle
	Clock          clock.Clock // nil = wall clock
	PredictFrames  int         // 0 disables prediction
	StatusInterval int         // ticks between status logs, 0 = off
	Log            *zap.Logger // nil = no logging
}

// Pipeline wires one match into a Runner. Front-ends call Tick once per frame
// and read State and Frame afterwards.
type Pipeline struct {
	State  *match.State
	Frame  *Frame
	Bus    *event.Bus
	Runner *coresys.Runner
}

func NewPipeline(state *match.State, opts Options) *Pipeline {
	if opts.Clock == nil {
		opts.Clock = clock.New()
	}
	if opts.Log == nil {
		opts.Log = zap.NewNop()
	}

	p := &Pipeline{
		State:  state,
		Frame:  &Frame{},
		Bus:    event.NewBus(),
		Runner: coresys.NewRunner(),
	}
	LogEvents(p.Bus, opts.Log)

	p.Runner.Register(NewInputSystem(opts.Source, state, p.Frame))
	p.Runner.Register(NewEventDispatchSystem(p.Bus))
	p.Runner.Register(NewMatchSystem(state, p.Frame, opts.Clock, p.Bus))
	if opts.PredictFrames > 0 {
		p.Runner.Register(NewPredictionSystem(state, p.Frame, opts.PredictFrames))
	}
	p.Runner.Register(NewScoreboardSystem(state, opts.StatusInterval, opts.Log))
	return p
}

// Tick runs every system once.
func (p *Pipeline) Tick(dt time.Duration) {
	p.Runner.Tick(dt)
}

// Flush delivers events emitted by the last tick. Call it once on shutdown.
func (p *Pipeline) Flush() {
	p.Bus.SwapBuffers()
	p.Bus.DispatchAll()
}
