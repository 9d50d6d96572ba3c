package scripting

import (
	"fmt"

	lua "github.com/yuin/gopher-lua"
	"go.uber.org/zap"

	"github.com/l1jgo/pong/internal/control"
	"github.com/l1jgo/pong/internal/match"
)

// Controller drives the player's keys from a Lua script. The script must
// define a global function control(view) returning up to three booleans:
// up, down, toggle.
//
// view fields: tick, ball_x, ball_y, ball_vx, ball_vy, paddle_y,
// opponent_y, court_w, court_h, ai. Positions are centers.
//
// Single-goroutine access only (tick loop).
type Controller struct {
	vm   *lua.LState
	fn   lua.LValue
	path string
	log  *zap.Logger
}

// NewController loads the script at path and checks that it defines control.
func NewController(path string, log *zap.Logger) (*Controller, error) {
	vm := lua.NewState()
	vm.SetGlobal("API_VERSION", lua.LNumber(1))
	if err := vm.DoFile(path); err != nil {
		vm.Close()
		return nil, fmt.Errorf("load %s: %w", path, err)
	}
	return newController(vm, path, log)
}

// NewControllerString is NewController for an in-memory script.
func NewControllerString(src string, log *zap.Logger) (*Controller, error) {
	vm := lua.NewState()
	vm.SetGlobal("API_VERSION", lua.LNumber(1))
	if err := vm.DoString(src); err != nil {
		vm.Close()
		return nil, fmt.Errorf("load script: %w", err)
	}
	return newController(vm, "<string>", log)
}

func newController(vm *lua.LState, path string, log *zap.Logger) (*Controller, error) {
	fn := vm.GetGlobal("control")
	if fn.Type() != lua.LTFunction {
		vm.Close()
		return nil, fmt.Errorf("%s: global function control not defined", path)
	}
	log.Debug("loaded lua controller", zap.String("file", path))
	return &Controller{vm: vm, fn: fn, path: path, log: log}, nil
}

// Poll calls the script once. Script errors are logged and produce no input.
func (c *Controller) Poll(s *match.State) control.Input {
	view := c.vm.NewTable()
	ball := s.Ball.Rect.Center()
	view.RawSetString("tick", lua.LNumber(s.Tick))
	view.RawSetString("ball_x", lua.LNumber(ball.X))
	view.RawSetString("ball_y", lua.LNumber(ball.Y))
	view.RawSetString("ball_vx", lua.LNumber(s.Ball.Velocity.X))
	view.RawSetString("ball_vy", lua.LNumber(s.Ball.Velocity.Y))
	view.RawSetString("paddle_y", lua.LNumber(s.Player.Rect.CenterY()))
	view.RawSetString("opponent_y", lua.LNumber(s.Opponent.Rect.CenterY()))
	view.RawSetString("court_w", lua.LNumber(s.Rules.Court.Width))
	view.RawSetString("court_h", lua.LNumber(s.Rules.Court.Height))
	view.RawSetString("ai", lua.LBool(s.PlayerAI))

	if err := c.vm.CallByParam(lua.P{
		Fn:      c.fn,
		NRet:    3,
		Protect: true,
	}, view); err != nil {
		c.log.Error("lua control error", zap.String("file", c.path), zap.Error(err))
		return control.Input{}
	}

	up, down, toggle := c.vm.Get(-3), c.vm.Get(-2), c.vm.Get(-1)
	c.vm.Pop(3)
	return control.Input{
		Up:       lua.LVAsBool(up),
		Down:     lua.LVAsBool(down),
		ToggleAI: lua.LVAsBool(toggle),
	}
}

func (c *Controller) Close() {
	c.vm.Close()
}
