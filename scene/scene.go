package scene

import (
	"fmt"
	"log/slog"

	"github.com/milk9111/ledgeclimb/character"
	"github.com/milk9111/ledgeclimb/ecs"
	"github.com/milk9111/ledgeclimb/ecs/component"
	"github.com/milk9111/ledgeclimb/ecs/entity"
	"github.com/milk9111/ledgeclimb/ecs/system"
	"github.com/milk9111/ledgeclimb/physics"
	"github.com/milk9111/ledgeclimb/prefabs"
	"github.com/milk9111/ledgeclimb/progression"
	"github.com/milk9111/ledgeclimb/timer"
)

const progressionScript = "progression"

// Options selects the level and the state a scene starts from.
type Options struct {
	Level     string
	Abilities []character.AbilityKind
	Store     *progression.Store
	Logger    *slog.Logger
	// Input runs ahead of the simulation systems each step.
	Input ecs.System
}

// Scene is one loaded level with its player and the systems that drive it.
type Scene struct {
	World   *ecs.World
	Physics *physics.World
	Level   *prefabs.LevelSpec
	Player  ecs.Entity

	sched  *ecs.Scheduler
	closed bool
}

// Load builds a scene from the current prefab specs and progression script.
func Load(opts Options) (*Scene, error) {
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}

	charSpec, err := prefabs.LoadCharacterSpec()
	if err != nil {
		return nil, err
	}
	montages, err := prefabs.LoadMontagesSpec()
	if err != nil {
		return nil, err
	}
	rate, err := montages.PlaybackRate()
	if err != nil {
		return nil, err
	}
	level, err := prefabs.LoadLevelSpec(opts.Level)
	if err != nil {
		return nil, err
	}
	rt, err := progression.Load(progressionScript, logger)
	if err != nil {
		return nil, err
	}

	world := ecs.NewWorld()
	pw := physics.NewWorld()
	if _, err := entity.BuildLevel(world, pw, level); err != nil {
		return nil, err
	}

	wheel := timer.NewWheel()
	player, err := entity.BuildPlayer(world, entity.PlayerSpec{
		ID:          1,
		Character:   charSpec,
		Montages:    montages.Library(),
		MontageRate: rate,
		Spawn:       level.SpawnPoint(),
		Physics:     pw,
		Timers:      wheel,
		Logger:      logger,
		Abilities:   opts.Abilities,
	})
	if err != nil {
		return nil, fmt.Errorf("scene: %s: %w", level.Name, err)
	}

	sched := ecs.NewScheduler(
		opts.Input,
		system.NewTimerSystem(wheel),
		system.NewCharacterSystem(),
		system.NewMotorSystem(),
		system.NewMontageSystem(),
		system.NewTriggerSystem(),
		system.NewProgressionSystem(rt, opts.Store, logger),
	)

	logger.Info("scene loaded", "level", level.Name, "character", charSpec.Name, "abilities", len(opts.Abilities))
	return &Scene{World: world, Physics: pw, Level: level, Player: player, sched: sched}, nil
}

// Replace loads a new scene and closes current once the load succeeds. On
// failure current is returned untouched along with the error.
func Replace(current *Scene, opts Options) (*Scene, error) {
	next, err := Load(opts)
	if err != nil {
		return current, err
	}
	current.Close()
	return next, nil
}

// Step runs one frame of dt seconds.
func (s *Scene) Step(dt float64) {
	if s == nil || s.closed {
		return
	}
	s.sched.Step(s.World, dt)
}

// Close tears down the player so no timer outlives the scene.
func (s *Scene) Close() {
	if s == nil || s.closed {
		return
	}
	s.closed = true
	entity.DestroyPlayer(s.World, s.Player)
}

func (s *Scene) Actor() *character.Character {
	if s == nil {
		return nil
	}
	c, ok := ecs.Get(s.World, s.Player, component.CharacterComponent.Kind())
	if !ok {
		return nil
	}
	return c.Actor
}

func (s *Scene) Motor() *physics.Motor {
	if s == nil {
		return nil
	}
	m, ok := ecs.Get(s.World, s.Player, component.MotorComponent.Kind())
	if !ok {
		return nil
	}
	return m.Body
}

// Montage returns the player's montage component, if any.
func (s *Scene) Montage() *component.Montage {
	if s == nil {
		return nil
	}
	m, _ := ecs.Get(s.World, s.Player, component.MontageComponent.Kind())
	return m
}
