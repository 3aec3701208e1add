package character

import (
	"github.com/go-gl/mathgl/mgl64"
	"github.com/milk9111/ledgeclimb/common"
)

// PhaseKind names the active climb phase.
type PhaseKind int

const (
	PhaseIdle PhaseKind = iota
	PhaseClimbing
	PhaseLerpingToLedge
)

func (p PhaseKind) String() string {
	switch p {
	case PhaseIdle:
		return "idle"
	case PhaseClimbing:
		return "climbing"
	case PhaseLerpingToLedge:
		return "lerping_to_ledge"
	default:
		return "unknown"
	}
}

// climbPhase is the climb state. Exactly one phase value is held at a time.
type climbPhase interface {
	Kind() PhaseKind
}

type climbIdle struct{}

// climbMontage waits for the climb montage to finish.
type climbMontage struct {
	pending mgl64.Vec3
	timer   TimerHandle
	seq     uint64
}

// climbLerp blends the actor onto the ledge.
type climbLerp struct {
	start   mgl64.Vec3
	target  mgl64.Vec3
	elapsed float64
}

func (climbIdle) Kind() PhaseKind     { return PhaseIdle }
func (*climbMontage) Kind() PhaseKind { return PhaseClimbing }
func (*climbLerp) Kind() PhaseKind    { return PhaseLerpingToLedge }

// ClimbSnapshot is a read-only view of the climb state for UI and animation
// graph consumers.
type ClimbSnapshot struct {
	Phase   PhaseKind
	Pending mgl64.Vec3
	Target  mgl64.Vec3
	Elapsed float64
	Alpha   float64
}

// lerpEpsilon absorbs float drift when summing frame deltas.
const lerpEpsilon = 1e-9

// StartClimbing begins a climb onto the ledge in front of the character. It
// refuses while a climb is in progress and re-probes the ledge. It reports
// whether the climb montage was started.
func (c *Character) StartClimbing() bool {
	if c == nil {
		return false
	}
	if c.phase.Kind() != PhaseIdle {
		c.log.Debug("climb refused", "phase", c.phase.Kind().String())
		return false
	}

	loc, ok := c.CanClimbLedge()
	if !ok {
		return false
	}

	prevMode := c.movement.MovementMode()
	prevPos := c.body.Position()
	c.movement.SetMovementMode(ModeNonGrounded)

	abort := func(reason string) bool {
		c.body.SetPosition(prevPos)
		c.movement.SetMovementMode(prevMode)
		c.log.Debug("climb aborted", "reason", reason)
		return false
	}

	if c.cfg.ClimbMontage == "" {
		return abort("no climb montage configured")
	}

	offset := mgl64.Vec3{0, -c.cfg.Climb.ClimbStartSideOffset, c.cfg.Climb.ClimbStartHeightOffset}
	c.body.SetPosition(prevPos.Add(offset))

	duration := c.animator.PlayMontage(c.cfg.ClimbMontage)
	if duration <= 0 {
		return abort("climb montage reported no duration")
	}

	c.climbSeq++
	seq := c.climbSeq
	st := &climbMontage{pending: loc, seq: seq}
	st.timer = c.scheduler.ScheduleOnce(duration, func() {
		c.events.push(event{kind: eventClimbFinished, seq: seq})
	})
	c.phase = st

	c.log.Debug("climb started", "ledge", loc, "duration", duration)
	return true
}

// finishClimbing moves from the montage phase to the ledge lerp.
func (c *Character) finishClimbing(st *climbMontage) {
	forward := c.body.Forward().Mul(c.cfg.Climb.ClimbForwardOffset)
	c.phase = &climbLerp{
		start:  c.body.Position(),
		target: st.pending.Add(forward),
	}
	c.abilities.CanDoubleJump = true

	c.scheduler.Cancel(st.timer)
	st.timer = 0

	c.log.Debug("climb montage finished, lerping to ledge")
}

// lerpAlpha is the linear lerp progress for elapsed seconds of a blend lasting
// duration. A non-positive duration is already complete.
func lerpAlpha(elapsed, duration float64) float64 {
	if duration <= 0 || elapsed >= duration-lerpEpsilon {
		return 1
	}
	return common.Clamp(elapsed/duration, 0, 1)
}

func (c *Character) advanceLerp(st *climbLerp, dt float64) {
	st.elapsed += dt

	alpha := lerpAlpha(st.elapsed, c.cfg.LerpDuration)

	c.body.SetPosition(common.LerpVec3(st.start, st.target, c.curve(alpha)))

	if alpha >= 1 {
		c.phase = climbIdle{}
		c.movement.SetMovementMode(ModeGrounded)
		c.log.Debug("climb finished")
	}
}

// handleEvent applies a deferred event and reports whether it ended the climb
// montage.
func (c *Character) handleEvent(evt event) bool {
	switch evt.kind {
	case eventClimbFinished:
		st, ok := c.phase.(*climbMontage)
		if !ok || st.seq != evt.seq {
			c.log.Debug("stale climb completion dropped", "seq", evt.seq)
			return false
		}
		c.finishClimbing(st)
		return true
	}
	return false
}

// Climb returns a snapshot of the climb state.
func (c *Character) Climb() ClimbSnapshot {
	if c == nil {
		return ClimbSnapshot{}
	}
	snap := ClimbSnapshot{Phase: c.phase.Kind()}
	switch st := c.phase.(type) {
	case *climbMontage:
		snap.Pending = st.pending
	case *climbLerp:
		snap.Target = st.target
		snap.Elapsed = st.elapsed
		snap.Alpha = lerpAlpha(st.elapsed, c.cfg.LerpDuration)
	}
	return snap
}

// IsClimbing reports whether the climb montage is playing.
func (c *Character) IsClimbing() bool {
	return c != nil && c.phase.Kind() == PhaseClimbing
}

// WantsToClimb reports whether a climb has been committed to and its montage
// has not yet finished.
func (c *Character) WantsToClimb() bool {
	return c.IsClimbing()
}

// IsLerpingToLedge reports whether the character is blending onto the ledge.
func (c *Character) IsLerpingToLedge() bool {
	return c != nil && c.phase.Kind() == PhaseLerpingToLedge
}
