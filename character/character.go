package character

import (
	"errors"
	"log/slog"

	"github.com/go-gl/mathgl/mgl64"
)

var ErrMissingCapability = errors.New("character: missing capability")

// Deps are the engine capabilities a character is built on.
type Deps struct {
	World     Raycaster
	Movement  Movement
	Animator  Animator
	Scheduler Scheduler
	Body      Body
	Logger    *slog.Logger
}

// Character owns the ability grants and the climb state machine of one actor.
// All methods must be called from the simulation thread.
type Character struct {
	id  ActorID
	cfg Config
	log *slog.Logger

	world     Raycaster
	movement  Movement
	animator  Animator
	scheduler Scheduler
	body      Body

	curve     BlendCurve
	abilities AbilityState
	phase     climbPhase
	climbSeq  uint64
	events    eventQueue
}

// New creates an idle character with no abilities granted.
func New(id ActorID, cfg Config, deps Deps) (*Character, error) {
	switch {
	case deps.World == nil:
		return nil, errors.Join(ErrMissingCapability, errors.New("world"))
	case deps.Movement == nil:
		return nil, errors.Join(ErrMissingCapability, errors.New("movement"))
	case deps.Animator == nil:
		return nil, errors.Join(ErrMissingCapability, errors.New("animator"))
	case deps.Scheduler == nil:
		return nil, errors.Join(ErrMissingCapability, errors.New("scheduler"))
	case deps.Body == nil:
		return nil, errors.Join(ErrMissingCapability, errors.New("body"))
	}

	logger := deps.Logger
	if logger == nil {
		logger = slog.Default()
	}
	curve := cfg.Curve
	if curve == nil {
		curve = LinearCurve
	}

	return &Character{
		id:        id,
		cfg:       cfg,
		log:       logger.With("actor", uint64(id)),
		world:     deps.World,
		movement:  deps.Movement,
		animator:  deps.Animator,
		scheduler: deps.Scheduler,
		body:      deps.Body,
		curve:     curve,
		abilities: AbilityState{CanDoubleJump: true},
		phase:     climbIdle{},
	}, nil
}

func (c *Character) ID() ActorID {
	return c.id
}

func (c *Character) Config() Config {
	return c.cfg
}

// Abilities returns a copy of the ability state.
func (c *Character) Abilities() AbilityState {
	if c == nil {
		return AbilityState{}
	}
	return c.abilities
}

// GrantAbility permanently unlocks an ability. Unknown kinds are ignored.
func (c *Character) GrantAbility(kind AbilityKind) {
	if c == nil {
		return
	}
	if !c.abilities.grant(kind) {
		c.log.Debug("ignoring unknown ability grant", "kind", int(kind))
		return
	}
	c.log.Info("ability granted", "ability", kind.String())
}

// Tick advances the character by dt seconds. Deferred completions posted since
// the previous tick are applied first. The montage owned this tick's dt, so a
// lerp that begins here accumulates time from the next tick on.
func (c *Character) Tick(dt float64) {
	if c == nil {
		return
	}

	finished := false
	for _, evt := range c.events.drain() {
		if c.handleEvent(evt) {
			finished = true
		}
	}
	if finished {
		return
	}

	switch st := c.phase.(type) {
	case climbIdle:
		if c.movement.IsFalling() {
			c.StartClimbing()
		}
	case *climbLerp:
		c.advanceLerp(st, dt)
	}
}

// OnJumpRequested double jumps while airborne, or climbs a ledge in reach, or
// falls back to the default jump.
func (c *Character) OnJumpRequested() {
	if c == nil || c.phase.Kind() != PhaseIdle {
		return
	}

	if c.movement.IsFalling() {
		if !c.abilities.HasDoubleJump || !c.abilities.CanDoubleJump {
			return
		}
		v := c.movement.Velocity()
		v[2] = 0
		c.movement.SetVelocity(v)
		c.movement.Launch(mgl64.Vec3{0, 0, c.movement.JumpZVelocity()}, false, true)
		c.abilities.CanDoubleJump = false
		c.log.Debug("double jump")
		return
	}

	if _, ok := c.CanClimbLedge(); ok {
		c.StartClimbing()
		return
	}
	c.movement.Jump()
}

// OnLanded restores the double jump charge.
func (c *Character) OnLanded() {
	if c == nil {
		return
	}
	c.abilities.CanDoubleJump = true
}

// StartSprinting raises the max speed if sprint has been granted.
func (c *Character) StartSprinting() {
	if c == nil || !c.abilities.HasSprint {
		return
	}
	c.movement.SetMaxSpeed(c.cfg.Movement.SprintSpeed)
	c.log.Debug("sprint on")
}

// StopSprinting restores the walk speed.
func (c *Character) StopSprinting() {
	if c == nil {
		return
	}
	c.movement.SetMaxSpeed(c.cfg.Movement.WalkSpeed)
	c.log.Debug("sprint off")
}

// Destroy cancels any outstanding climb completion and returns to idle.
func (c *Character) Destroy() {
	if c == nil {
		return
	}
	if st, ok := c.phase.(*climbMontage); ok && st.timer != 0 {
		c.scheduler.Cancel(st.timer)
	}
	c.phase = climbIdle{}
	c.events.flush()
}
