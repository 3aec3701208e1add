package physics

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/milk9111/ledgeclimb/character"
)

const frame = 1.0 / 60

func TestMotorFallsAndLands(t *testing.T) {
	w := testLevel()
	m := NewMotor(1, w, DefaultMotorParams(), mgl64.Vec3{-300, 0, 400}, 500)
	landed := 0
	m.OnLanded = func() { landed++ }

	for i := 0; i < 120; i++ {
		m.Step(frame)
	}

	if m.MovementMode() != character.ModeGrounded {
		t.Fatalf("expected grounded, got %v", m.MovementMode())
	}
	if landed != 1 {
		t.Fatalf("expected a single landing, got %d", landed)
	}
	if math.Abs(m.Position().Z()-96) > 0.05 {
		t.Fatalf("expected to rest at half height, got %v", m.Position())
	}
}

func TestMotorStopsAtWall(t *testing.T) {
	w := testLevel()
	m := NewMotor(1, w, DefaultMotorParams(), mgl64.Vec3{-100, 0, 96}, 500)
	m.SetMovementMode(character.ModeGrounded)
	m.SetMoveInput(1)

	for i := 0; i < 120; i++ {
		m.Step(frame)
	}

	if math.Abs(m.Position().X()-16) > 0.05 {
		t.Fatalf("expected to stop flush with the wall at x=16, got %v", m.Position())
	}
	if m.Forward() != (mgl64.Vec3{1, 0, 0}) {
		t.Fatalf("expected to face +X, got %v", m.Forward())
	}
}

func TestMotorWalksOffLedge(t *testing.T) {
	w := NewWorld()
	w.AddBox(Box{MinX: -100, MinZ: -100, MaxX: 0, MaxZ: 0})
	m := NewMotor(1, w, DefaultMotorParams(), mgl64.Vec3{-10, 0, 96}, 500)
	m.SetMovementMode(character.ModeGrounded)
	m.SetMoveInput(1)

	for i := 0; i < 10; i++ {
		m.Step(frame)
	}
	if !m.IsFalling() {
		t.Fatalf("expected to fall after leaving the block, got %v", m.MovementMode())
	}
}

func TestMotorJumpAndLaunch(t *testing.T) {
	cases := []struct {
		name string
		do   func(m *Motor)
		want mgl64.Vec3
	}{
		{"default_jump", func(m *Motor) { m.Jump() }, mgl64.Vec3{10, 0, 700}},
		{"launch_override_z", func(m *Motor) { m.Launch(mgl64.Vec3{0, 0, 700}, false, true) }, mgl64.Vec3{10, 0, 700}},
		{"launch_additive", func(m *Motor) { m.Launch(mgl64.Vec3{5, 0, 100}, false, false) }, mgl64.Vec3{15, 0, 50}},
		{"launch_override_xy", func(m *Motor) { m.Launch(mgl64.Vec3{0, 0, 100}, true, false) }, mgl64.Vec3{0, 0, 50}},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			m := NewMotor(1, testLevel(), DefaultMotorParams(), mgl64.Vec3{-300, 0, 96}, 500)
			m.SetMovementMode(character.ModeGrounded)
			m.SetVelocity(mgl64.Vec3{10, 0, -50})
			c.do(m)
			if m.Velocity() != c.want {
				t.Fatalf("expected velocity %v, got %v", c.want, m.Velocity())
			}
			if !m.IsFalling() {
				t.Fatalf("expected airborne")
			}
		})
	}
}

func TestMotorJumpOnlyFromGround(t *testing.T) {
	m := NewMotor(1, testLevel(), DefaultMotorParams(), mgl64.Vec3{-300, 0, 400}, 500)
	m.Jump()
	if m.Velocity().Z() != 0 {
		t.Fatalf("airborne jump should be ignored, got %v", m.Velocity())
	}
}

func TestMotorNonGroundedHolds(t *testing.T) {
	m := NewMotor(1, testLevel(), DefaultMotorParams(), mgl64.Vec3{-300, 0, 400}, 500)
	m.SetVelocity(mgl64.Vec3{100, 0, -100})
	m.SetMovementMode(character.ModeNonGrounded)
	m.SetMoveInput(-1)

	for i := 0; i < 30; i++ {
		m.Step(frame)
	}
	if m.Position() != (mgl64.Vec3{-300, 0, 400}) {
		t.Fatalf("expected motor to hold position, got %v", m.Position())
	}
	if m.Forward() != (mgl64.Vec3{1, 0, 0}) {
		t.Fatalf("facing must not change while non-grounded, got %v", m.Forward())
	}
}

func TestMotorSatisfiesCapabilities(t *testing.T) {
	var m *Motor = NewMotor(1, NewWorld(), DefaultMotorParams(), mgl64.Vec3{}, 0)
	var _ character.Movement = m
	var _ character.Body = m
}
