package system

import (
	"github.com/milk9111/ledgeclimb/ecs"
	"github.com/milk9111/ledgeclimb/ecs/component"
)

// CharacterSystem feeds input edges to each character and advances it.
type CharacterSystem struct{}

func NewCharacterSystem() *CharacterSystem {
	return &CharacterSystem{}
}

func (s *CharacterSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}
	dt := w.Delta()

	ecs.ForEach2(w, component.CharacterComponent.Kind(), component.InputComponent.Kind(), func(e ecs.Entity, c *component.Character, in *component.Input) {
		if c.Actor == nil {
			return
		}
		if in.SprintPressed {
			c.Actor.StartSprinting()
		}
		if in.SprintReleased {
			c.Actor.StopSprinting()
		}
		if in.JumpPressed {
			c.Actor.OnJumpRequested()
		}
		in.JumpPressed = false
		in.SprintPressed = false
		in.SprintReleased = false
	})

	ecs.ForEach(w, component.CharacterComponent.Kind(), func(e ecs.Entity, c *component.Character) {
		c.Actor.Tick(dt)
	})
}
