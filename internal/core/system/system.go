package system

import "time"

// Phase defines execution ordering within a single tick.
type Phase int

const (
	PhaseInput      Phase = iota // 0: sample keyboard / script input
	PhasePreUpdate               // 1: deliver last tick's events
	PhaseUpdate                  // 2: match simulation
	PhasePostUpdate              // 3: derived data (trajectory prediction)
	PhaseOutput                  // 4: status reporting
)

func (p Phase) String() string {
	switch p {
	case PhaseInput:
		return "input"
	case PhasePreUpdate:
		return "pre-update"
	case PhaseUpdate:
		return "update"
	case PhasePostUpdate:
		return "post-update"
	case PhaseOutput:
		return "output"
	default:
		return "unknown"
	}
}

// System is the interface every tick system implements.
type System interface {
	Phase() Phase
	Update(dt time.Duration)
}
