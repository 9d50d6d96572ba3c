package system

import (
	"github.com/l1jgo/pong/internal/control"
	"github.com/l1jgo/pong/internal/geom"
	"github.com/l1jgo/pong/internal/sim"
)

// Frame carries one tick's data between systems and out to the front-end.
type Frame struct {
	Input     control.Input
	Report    sim.Report
	Predicted []geom.Vec2 // future ball centers, empty when prediction is off
}
