package entity

import (
	"fmt"

	"github.com/milk9111/ledgeclimb/ecs"
	"github.com/milk9111/ledgeclimb/ecs/component"
	"github.com/milk9111/ledgeclimb/physics"
	"github.com/milk9111/ledgeclimb/prefabs"
)

// BuildLevel adds the level geometry to pw and one trigger entity per
// trigger area.
func BuildLevel(w *ecs.World, pw *physics.World, level *prefabs.LevelSpec) ([]ecs.Entity, error) {
	if err := level.Build(pw); err != nil {
		return nil, err
	}

	out := make([]ecs.Entity, 0, len(level.Triggers))
	for _, t := range level.Triggers {
		e := ecs.CreateEntity(w)
		trigger := &component.Trigger{
			Name:  t.Name,
			Event: t.Event,
			MinX:  t.MinX,
			MinZ:  t.MinZ,
			MaxX:  t.MaxX,
			MaxZ:  t.MaxZ,
		}
		if err := ecs.Add(w, e, component.TriggerComponent.Kind(), trigger); err != nil {
			return nil, fmt.Errorf("entity: trigger %s: %w", t.Name, err)
		}
		out = append(out, e)
	}
	return out, nil
}
