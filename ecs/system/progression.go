package system

import (
	"log/slog"

	"github.com/milk9111/ledgeclimb/character"
	"github.com/milk9111/ledgeclimb/ecs"
	"github.com/milk9111/ledgeclimb/ecs/component"
	"github.com/milk9111/ledgeclimb/progression"
)

// ProgressionSystem hands trigger events to the progression script and
// saves the character's abilities after a grant.
type ProgressionSystem struct {
	runtime *progression.Runtime
	store   *progression.Store
	logger  *slog.Logger
}

func NewProgressionSystem(rt *progression.Runtime, store *progression.Store, logger *slog.Logger) *ProgressionSystem {
	if logger == nil {
		logger = slog.Default()
	}
	return &ProgressionSystem{runtime: rt, store: store, logger: logger}
}

func (s *ProgressionSystem) Update(w *ecs.World) {
	if s == nil || w == nil {
		return
	}
	for _, evt := range w.Events().Drain(ecs.EventTriggerEntered) {
		c, ok := ecs.Get(w, evt.Entity, component.CharacterComponent.Kind())
		if !ok || c.Actor == nil {
			continue
		}
		before := c.Actor.Abilities()
		granted, err := s.runtime.Dispatch(c.Actor, evt.Data)
		if err != nil {
			s.logger.Error("progression dispatch failed", "event", evt.Data, "err", err)
			continue
		}
		if !granted {
			continue
		}

		after := c.Actor.Abilities()
		for _, kind := range grantedKinds(before, after) {
			w.Events().Push(ecs.Event{Type: ecs.EventAbilityGranted, Entity: evt.Entity, Data: kind})
		}
		if err := s.store.Save(after); err != nil {
			s.logger.Warn("could not save abilities", "err", err)
		}
	}
}

func grantedKinds(before, after character.AbilityState) []string {
	var out []string
	for _, kind := range []character.AbilityKind{character.AbilityDoubleJump, character.AbilitySprint} {
		if after.Has(kind) && !before.Has(kind) {
			out = append(out, kind.String())
		}
	}
	return out
}
