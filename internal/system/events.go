package system

import (
	"time"

	"go.uber.org/zap"

	"github.com/l1jgo/pong/internal/core/event"
	coresys "github.com/l1jgo/pong/internal/core/system"
)

// EventDispatchSystem delivers the previous tick's events. Phase 1 (PreUpdate).
type EventDispatchSystem struct {
	bus *event.Bus
}

func NewEventDispatchSystem(bus *event.Bus) *EventDispatchSystem {
	return &EventDispatchSystem{bus: bus}
}

func (s *EventDispatchSystem) Phase() coresys.Phase { return coresys.PhasePreUpdate }

func (s *EventDispatchSystem) Update(_ time.Duration) {
	s.bus.SwapBuffers()
	s.bus.DispatchAll()
}

// LogEvents subscribes structured log lines for match events.
func LogEvents(bus *event.Bus, log *zap.Logger) {
	event.Subscribe(bus, func(e event.PointScored) {
		log.Info("point scored",
			zap.Uint64("tick", e.Tick),
			zap.Stringer("scorer", e.Scorer),
			zap.Int("player", e.PlayerScore),
			zap.Int("opponent", e.OpponentScore),
		)
	})
	event.Subscribe(bus, func(e event.BallServed) {
		log.Debug("ball served",
			zap.Uint64("tick", e.Tick),
			zap.Float64("vx", e.Velocity.X),
			zap.Float64("vy", e.Velocity.Y),
		)
	})
	event.Subscribe(bus, func(e event.ControlToggled) {
		log.Info("player control switched",
			zap.Uint64("tick", e.Tick),
			zap.Bool("ai", e.PlayerAI),
		)
	})
	event.Subscribe(bus, func(e event.PaddleHit) {
		log.Debug("paddle hit", zap.Uint64("tick", e.Tick), zap.Stringer("side", e.Side))
	})
	event.Subscribe(bus, func(e event.WallBounce) {
		log.Debug("wall bounce", zap.Uint64("tick", e.Tick))
	})
}
