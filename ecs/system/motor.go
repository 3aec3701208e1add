package system

import (
	"github.com/milk9111/ledgeclimb/ecs"
	"github.com/milk9111/ledgeclimb/ecs/component"
)

// MotorSystem applies the move axis and integrates every motor.
type MotorSystem struct{}

func NewMotorSystem() *MotorSystem {
	return &MotorSystem{}
}

func (s *MotorSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}
	dt := w.Delta()

	ecs.ForEach(w, component.MotorComponent.Kind(), func(e ecs.Entity, m *component.Motor) {
		if m.Body == nil {
			return
		}
		if in, ok := ecs.Get(w, e, component.InputComponent.Kind()); ok {
			m.Body.SetMoveInput(in.MoveX)
		}
		m.Body.Step(dt)
	})
}
