package system

import (
	"github.com/milk9111/ledgeclimb/ecs"
	"github.com/milk9111/ledgeclimb/ecs/component"
)

type MontageSystem struct{}

func NewMontageSystem() *MontageSystem {
	return &MontageSystem{}
}

func (s *MontageSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}
	dt := w.Delta()
	ecs.ForEach(w, component.MontageComponent.Kind(), func(e ecs.Entity, m *component.Montage) {
		m.Player.Update(dt)
	})
}
