package character

import "github.com/go-gl/mathgl/mgl64"

// ActorID identifies an actor in the collision world so probes can skip it.
type ActorID uint64

// Hit is the result of a successful world raycast.
type Hit struct {
	ImpactPoint mgl64.Vec3
	Normal      mgl64.Vec3
}

// Raycaster answers line traces against the world's static geometry.
type Raycaster interface {
	Raycast(origin, end mgl64.Vec3, ignore ActorID) (Hit, bool)
}

// MovementMode is the locomotion mode of the movement collaborator.
type MovementMode int

const (
	// ModeGrounded walks on surfaces under gravity.
	ModeGrounded MovementMode = iota
	// ModeAirborne is free fall, including the rising part of a jump.
	ModeAirborne
	// ModeNonGrounded suspends gravity and collision-driven locomotion.
	ModeNonGrounded
)

func (m MovementMode) String() string {
	switch m {
	case ModeGrounded:
		return "grounded"
	case ModeAirborne:
		return "airborne"
	case ModeNonGrounded:
		return "non_grounded"
	default:
		return "unknown"
	}
}

// Movement controls the character's locomotion.
type Movement interface {
	MovementMode() MovementMode
	SetMovementMode(mode MovementMode)
	IsFalling() bool
	SetMaxSpeed(speed float64)
	Velocity() mgl64.Vec3
	SetVelocity(v mgl64.Vec3)
	// Launch applies an instantaneous velocity change. Components with the
	// override flag set replace the current velocity instead of adding to it.
	Launch(v mgl64.Vec3, overrideXY, overrideZ bool)
	JumpZVelocity() float64
	// Jump performs the default ground jump.
	Jump()
}

// Animator plays one-shot montages and reports their duration in seconds.
// Unknown or invalid montages report 0.
type Animator interface {
	PlayMontage(name string) float64
}

// TimerHandle identifies a scheduled one-shot callback. The zero handle is
// never issued.
type TimerHandle uint64

// Scheduler runs deferred one-shot callbacks on the simulation thread,
// between ticks.
type Scheduler interface {
	ScheduleOnce(delay float64, fire func()) TimerHandle
	Cancel(h TimerHandle)
}

// Body exposes the actor's pose.
type Body interface {
	Position() mgl64.Vec3
	SetPosition(p mgl64.Vec3)
	Forward() mgl64.Vec3
}
