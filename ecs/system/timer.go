package system

import (
	"github.com/milk9111/ledgeclimb/ecs"
	"github.com/milk9111/ledgeclimb/timer"
)

// TimerSystem advances the shared timer wheel. It runs before the character
// system, which applies completions fired here during its tick.
type TimerSystem struct {
	wheel *timer.Wheel
}

func NewTimerSystem(wheel *timer.Wheel) *TimerSystem {
	return &TimerSystem{wheel: wheel}
}

func (s *TimerSystem) Update(w *ecs.World) {
	if s == nil || s.wheel == nil || w == nil {
		return
	}
	s.wheel.Advance(w.Delta())
}
