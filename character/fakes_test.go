package character

import (
	"io"
	"log/slog"

	"github.com/go-gl/mathgl/mgl64"
)

// fakeWorld answers the wall ray (horizontal) and the ledge ray (vertical)
// with fixed hits.
type fakeWorld struct {
	wall  *Hit
	ledge *Hit
	calls int
}

func (w *fakeWorld) Raycast(origin, end mgl64.Vec3, ignore ActorID) (Hit, bool) {
	w.calls++
	hit := w.ledge
	if origin.Z() == end.Z() {
		hit = w.wall
	}
	if hit == nil {
		return Hit{}, false
	}
	return *hit, true
}

type fakeMovement struct {
	mode     MovementMode
	maxSpeed float64
	velocity mgl64.Vec3
	jumpZ    float64
	jumps    int
	launches []mgl64.Vec3
	modes    []MovementMode
}

func (m *fakeMovement) MovementMode() MovementMode { return m.mode }
func (m *fakeMovement) SetMovementMode(mode MovementMode) {
	m.mode = mode
	m.modes = append(m.modes, mode)
}
func (m *fakeMovement) IsFalling() bool           { return m.mode == ModeAirborne }
func (m *fakeMovement) SetMaxSpeed(speed float64) { m.maxSpeed = speed }
func (m *fakeMovement) Velocity() mgl64.Vec3      { return m.velocity }
func (m *fakeMovement) SetVelocity(v mgl64.Vec3)  { m.velocity = v }
func (m *fakeMovement) JumpZVelocity() float64    { return m.jumpZ }
func (m *fakeMovement) Jump() {
	m.jumps++
	m.velocity[2] = m.jumpZ
	m.mode = ModeAirborne
}
func (m *fakeMovement) Launch(v mgl64.Vec3, overrideXY, overrideZ bool) {
	m.launches = append(m.launches, v)
	if overrideXY {
		m.velocity[0], m.velocity[1] = v[0], v[1]
	} else {
		m.velocity[0] += v[0]
		m.velocity[1] += v[1]
	}
	if overrideZ {
		m.velocity[2] = v[2]
	} else {
		m.velocity[2] += v[2]
	}
	m.mode = ModeAirborne
}

type fakeAnimator struct {
	durations map[string]float64
	played    []string
}

func (a *fakeAnimator) PlayMontage(name string) float64 {
	a.played = append(a.played, name)
	return a.durations[name]
}

type fakeTimer struct {
	due  float64
	fire func()
}

type fakeScheduler struct {
	now      float64
	next     TimerHandle
	timers   map[TimerHandle]fakeTimer
	delays   []float64
	canceled []TimerHandle
}

func (s *fakeScheduler) ScheduleOnce(delay float64, fire func()) TimerHandle {
	if s.timers == nil {
		s.timers = map[TimerHandle]fakeTimer{}
	}
	s.next++
	s.timers[s.next] = fakeTimer{due: s.now + delay, fire: fire}
	s.delays = append(s.delays, delay)
	return s.next
}

func (s *fakeScheduler) Cancel(h TimerHandle) {
	s.canceled = append(s.canceled, h)
	delete(s.timers, h)
}

func (s *fakeScheduler) Advance(dt float64) {
	s.now += dt
	for h, t := range s.timers {
		if t.due <= s.now+1e-9 {
			delete(s.timers, h)
			t.fire()
		}
	}
}

type fakeBody struct {
	pos     mgl64.Vec3
	forward mgl64.Vec3
}

func (b *fakeBody) Position() mgl64.Vec3     { return b.pos }
func (b *fakeBody) SetPosition(p mgl64.Vec3) { b.pos = p }
func (b *fakeBody) Forward() mgl64.Vec3      { return b.forward }

type rig struct {
	c     *Character
	world *fakeWorld
	move  *fakeMovement
	anim  *fakeAnimator
	sched *fakeScheduler
	body  *fakeBody
}

// ledgeAt builds a world with a wall at the given horizontal distance and a
// ledge whose height above the actor's feet is height.
func ledgeAt(horizontal, height float64, cfg Config) *fakeWorld {
	return &fakeWorld{
		wall:  &Hit{ImpactPoint: mgl64.Vec3{horizontal, 0, cfg.Probe.WallHeight}},
		ledge: &Hit{ImpactPoint: mgl64.Vec3{horizontal, 0, height - cfg.Climb.ClimbHeightOffset}},
	}
}

func newRig(cfg Config, world *fakeWorld) *rig {
	r := &rig{
		world: world,
		move:  &fakeMovement{mode: ModeGrounded, maxSpeed: cfg.Movement.WalkSpeed, jumpZ: 700},
		anim:  &fakeAnimator{durations: map[string]float64{"climb": 2.0}},
		sched: &fakeScheduler{},
		body:  &fakeBody{forward: mgl64.Vec3{1, 0, 0}},
	}
	c, err := New(7, cfg, Deps{
		World:     r.world,
		Movement:  r.move,
		Animator:  r.anim,
		Scheduler: r.sched,
		Body:      r.body,
		Logger:    slog.New(slog.NewTextHandler(io.Discard, nil)),
	})
	if err != nil {
		panic(err)
	}
	r.c = c
	return r
}

// step advances the scheduler and then ticks the character, the same order
// the simulation loop uses.
func (r *rig) step(dt float64) {
	r.sched.Advance(dt)
	r.c.Tick(dt)
}
