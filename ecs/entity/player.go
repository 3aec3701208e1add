package entity

import (
	"fmt"
	"log/slog"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/milk9111/ledgeclimb/character"
	"github.com/milk9111/ledgeclimb/ecs"
	"github.com/milk9111/ledgeclimb/ecs/component"
	"github.com/milk9111/ledgeclimb/montage"
	"github.com/milk9111/ledgeclimb/physics"
	"github.com/milk9111/ledgeclimb/prefabs"
	"github.com/milk9111/ledgeclimb/timer"
)

// PlayerSpec gathers what BuildPlayer needs to assemble a climber.
type PlayerSpec struct {
	ID          character.ActorID
	Character   *prefabs.CharacterSpec
	Montages    montage.Library
	// MontageRate scales montage playback. Zero plays at normal speed.
	MontageRate float64
	Spawn       mgl64.Vec3
	Physics     *physics.World
	Timers      *timer.Wheel
	Logger      *slog.Logger
	Abilities   []character.AbilityKind
}

// BuildPlayer creates the player entity with its motor, montage player and
// movement ability core wired together.
func BuildPlayer(w *ecs.World, spec PlayerSpec) (ecs.Entity, error) {
	if w == nil {
		return 0, fmt.Errorf("entity: nil world")
	}
	if spec.Physics == nil || spec.Timers == nil {
		return 0, fmt.Errorf("entity: player needs physics and timers")
	}
	if spec.MontageRate < 0 {
		return 0, fmt.Errorf("entity: negative montage rate %v", spec.MontageRate)
	}

	cfg, err := spec.Character.Config()
	if err != nil {
		return 0, err
	}
	starting, err := spec.Character.StartingAbilities()
	if err != nil {
		return 0, err
	}

	motor := physics.NewMotor(spec.ID, spec.Physics, spec.Character.MotorParams(), spec.Spawn, cfg.Movement.WalkSpeed)
	player := montage.NewPlayer(spec.Montages)
	if spec.MontageRate > 0 {
		player.SetRate(spec.MontageRate)
	}

	actor, err := character.New(spec.ID, cfg, character.Deps{
		World:     spec.Physics,
		Movement:  motor,
		Animator:  player,
		Scheduler: spec.Timers,
		Body:      motor,
		Logger:    spec.Logger,
	})
	if err != nil {
		return 0, fmt.Errorf("entity: build player: %w", err)
	}
	motor.OnLanded = actor.OnLanded

	for _, kind := range starting {
		actor.GrantAbility(kind)
	}
	for _, kind := range spec.Abilities {
		actor.GrantAbility(kind)
	}

	e := ecs.CreateEntity(w)
	steps := []func() error{
		func() error { return ecs.Add(w, e, component.PlayerTagComponent.Kind(), &component.PlayerTag{}) },
		func() error { return ecs.Add(w, e, component.InputComponent.Kind(), &component.Input{}) },
		func() error { return ecs.Add(w, e, component.MotorComponent.Kind(), &component.Motor{Body: motor}) },
		func() error { return ecs.Add(w, e, component.MontageComponent.Kind(), &component.Montage{Player: player}) },
		func() error {
			return ecs.Add(w, e, component.CharacterComponent.Kind(), &component.Character{Actor: actor})
		},
	}
	for _, step := range steps {
		if err := step(); err != nil {
			actor.Destroy()
			ecs.DestroyEntity(w, e)
			return 0, fmt.Errorf("entity: build player: %w", err)
		}
	}
	return e, nil
}

// DestroyPlayer tears down the character before its entity goes away so no
// timer outlives it.
func DestroyPlayer(w *ecs.World, e ecs.Entity) bool {
	if c, ok := ecs.Get(w, e, component.CharacterComponent.Kind()); ok {
		c.Actor.Destroy()
	}
	return ecs.DestroyEntity(w, e)
}
