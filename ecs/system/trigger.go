package system

import (
	"github.com/milk9111/ledgeclimb/ecs"
	"github.com/milk9111/ledgeclimb/ecs/component"
)

// TriggerSystem raises EventTriggerEntered when the player walks into a
// trigger area. Staying inside does not raise it again.
type TriggerSystem struct{}

func NewTriggerSystem() *TriggerSystem {
	return &TriggerSystem{}
}

func (s *TriggerSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}
	player, _, ok := ecs.First(w, component.PlayerTagComponent.Kind())
	if !ok {
		return
	}
	motor, ok := ecs.Get(w, player, component.MotorComponent.Kind())
	if !ok || motor.Body == nil {
		return
	}
	pos := motor.Body.Position()

	ecs.ForEach(w, component.TriggerComponent.Kind(), func(e ecs.Entity, t *component.Trigger) {
		inside := t.Contains(pos.X(), pos.Z())
		if inside && !t.Inside {
			w.Events().Push(ecs.Event{Type: ecs.EventTriggerEntered, Entity: player, Data: t.Event})
		}
		t.Inside = inside
	})
}
