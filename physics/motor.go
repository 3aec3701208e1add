package physics

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/milk9111/ledgeclimb/character"
	"github.com/milk9111/ledgeclimb/common"
)

// MotorParams tunes the side view character motor.
type MotorParams struct {
	Gravity       float64
	JumpZVelocity float64
	AirControl    float64
	HalfHeight    float64
	Radius        float64
	GroundSnap    float64
	MaxFallSpeed  float64
}

func DefaultMotorParams() MotorParams {
	return MotorParams{
		Gravity:       980,
		JumpZVelocity: 700,
		AirControl:    0.35,
		HalfHeight:    96,
		Radius:        34,
		GroundSnap:    4,
		MaxFallSpeed:  4000,
	}
}

// Motor moves a capsule-like actor through a World. Position is the center of
// the capsule. It implements character.Movement and character.Body.
type Motor struct {
	id     character.ActorID
	world  *World
	params MotorParams

	pos      mgl64.Vec3
	vel      mgl64.Vec3
	mode     character.MovementMode
	maxSpeed float64
	facing   float64
	moveX    float64

	// OnLanded is called when an airborne step ends on the ground.
	OnLanded func()
}

func NewMotor(id character.ActorID, world *World, params MotorParams, spawn mgl64.Vec3, maxSpeed float64) *Motor {
	return &Motor{
		id:       id,
		world:    world,
		params:   params,
		pos:      spawn,
		mode:     character.ModeAirborne,
		maxSpeed: maxSpeed,
		facing:   1,
	}
}

func (m *Motor) Params() MotorParams {
	return m.params
}

// SetMoveInput sets the horizontal input axis in [-1,1].
func (m *Motor) SetMoveInput(x float64) {
	if m == nil {
		return
	}
	m.moveX = common.Clamp(x, -1, 1)
	if m.mode == character.ModeNonGrounded {
		return
	}
	if m.moveX > 0 {
		m.facing = 1
	} else if m.moveX < 0 {
		m.facing = -1
	}
}

// Step integrates the motor by dt seconds.
func (m *Motor) Step(dt float64) {
	if m == nil || dt <= 0 {
		return
	}

	switch m.mode {
	case character.ModeNonGrounded:
		m.vel = mgl64.Vec3{}
	case character.ModeGrounded:
		m.vel[0] = m.moveX * m.maxSpeed
		m.vel[2] = 0
		m.moveHorizontal(dt)
		if !m.snapToGround() {
			m.mode = character.ModeAirborne
		}
	case character.ModeAirborne:
		target := m.moveX * m.maxSpeed
		if m.moveX != 0 {
			m.vel[0] = common.Lerp(m.vel[0], target, m.params.AirControl)
		}
		m.vel[2] = math.Max(m.vel[2]-m.params.Gravity*dt, -m.params.MaxFallSpeed)
		m.moveHorizontal(dt)
		m.moveVertical(dt)
	}
}

func (m *Motor) moveHorizontal(dt float64) {
	dx := m.vel[0] * dt
	if dx == 0 {
		return
	}
	dir := math.Copysign(1, dx)
	end := m.pos.Add(mgl64.Vec3{dir * (m.params.Radius + math.Abs(dx)), 0, 0})
	if hit, ok := m.world.Raycast(m.pos, end, m.id); ok {
		m.pos[0] = hit.ImpactPoint.X() - dir*m.params.Radius
		m.vel[0] = 0
		return
	}
	m.pos[0] += dx
}

func (m *Motor) moveVertical(dt float64) {
	dz := m.vel[2] * dt
	if dz == 0 {
		return
	}

	if dz > 0 {
		end := common.Lift(m.pos, m.params.HalfHeight+dz)
		if hit, ok := m.world.Raycast(m.pos, end, m.id); ok {
			m.pos[2] = hit.ImpactPoint.Z() - m.params.HalfHeight
			m.vel[2] = 0
			return
		}
		m.pos[2] += dz
		return
	}

	end := common.Lift(m.pos, -m.params.HalfHeight+dz)
	if hit, ok := m.world.Raycast(m.pos, end, m.id); ok {
		m.pos[2] = hit.ImpactPoint.Z() + m.params.HalfHeight
		m.vel[2] = 0
		m.mode = character.ModeGrounded
		if m.OnLanded != nil {
			m.OnLanded()
		}
		return
	}
	m.pos[2] += dz
}

// snapToGround keeps a walking actor on the surface below it, lifting it out
// of the ground when it ended up inside. It reports false when there is no
// ground within reach.
func (m *Motor) snapToGround() bool {
	end := common.Lift(m.pos, -(m.params.HalfHeight + m.params.GroundSnap))
	hit, ok := m.world.Raycast(m.pos, end, m.id)
	if !ok {
		return false
	}
	m.pos[2] = hit.ImpactPoint.Z() + m.params.HalfHeight
	return true
}

func (m *Motor) MovementMode() character.MovementMode {
	return m.mode
}

func (m *Motor) SetMovementMode(mode character.MovementMode) {
	switch mode {
	case character.ModeNonGrounded:
		m.vel = mgl64.Vec3{}
	case character.ModeGrounded:
		m.vel[2] = 0
	}
	m.mode = mode
}

func (m *Motor) IsFalling() bool {
	return m.mode == character.ModeAirborne
}

func (m *Motor) MaxSpeed() float64 {
	return m.maxSpeed
}

func (m *Motor) SetMaxSpeed(speed float64) {
	m.maxSpeed = math.Max(0, speed)
}

func (m *Motor) Velocity() mgl64.Vec3 {
	return m.vel
}

func (m *Motor) SetVelocity(v mgl64.Vec3) {
	m.vel = v
}

func (m *Motor) Launch(v mgl64.Vec3, overrideXY, overrideZ bool) {
	if overrideXY {
		m.vel[0], m.vel[1] = v[0], v[1]
	} else {
		m.vel[0] += v[0]
		m.vel[1] += v[1]
	}
	if overrideZ {
		m.vel[2] = v[2]
	} else {
		m.vel[2] += v[2]
	}
	m.mode = character.ModeAirborne
}

func (m *Motor) JumpZVelocity() float64 {
	return m.params.JumpZVelocity
}

func (m *Motor) Jump() {
	if m.mode != character.ModeGrounded {
		return
	}
	m.vel[2] = m.params.JumpZVelocity
	m.mode = character.ModeAirborne
}

func (m *Motor) Position() mgl64.Vec3 {
	return m.pos
}

func (m *Motor) SetPosition(p mgl64.Vec3) {
	m.pos = p
}

func (m *Motor) Forward() mgl64.Vec3 {
	return mgl64.Vec3{m.facing, 0, 0}
}
