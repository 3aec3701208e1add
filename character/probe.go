package character

import (
	"github.com/go-gl/mathgl/mgl64"
	"github.com/milk9111/ledgeclimb/common"
)

// CanClimbLedge probes for a climbable ledge in front of the character and
// returns the grab position. It does not mutate any state.
func (c *Character) CanClimbLedge() (mgl64.Vec3, bool) {
	if c == nil {
		return mgl64.Vec3{}, false
	}
	return probeLedge(c.world, c.id, c.body.Position(), c.body.Forward(), c.cfg)
}

// probeLedge casts a forward wall ray and then a downward ledge ray from the
// wall impact. The ledge is accepted when it is both low enough and close
// enough to the actor.
func probeLedge(world Raycaster, self ActorID, pos, forward mgl64.Vec3, cfg Config) (mgl64.Vec3, bool) {
	probe := cfg.Probe

	start := common.Lift(pos, probe.WallHeight)
	wallEnd := start.Add(forward.Mul(probe.WallReach))
	wallHit, ok := world.Raycast(start, wallEnd, self)
	if !ok {
		return mgl64.Vec3{}, false
	}

	ledgeStart := common.Lift(wallHit.ImpactPoint, probe.LedgeRise)
	ledgeEnd := common.Lift(ledgeStart, -probe.LedgeDrop)
	ledgeHit, ok := world.Raycast(ledgeStart, ledgeEnd, self)
	if !ok {
		return mgl64.Vec3{}, false
	}

	ledgeHeight := (ledgeHit.ImpactPoint.Z() + cfg.Climb.ClimbHeightOffset) - pos.Z()
	grab := common.Lift(ledgeHit.ImpactPoint, probe.GrabHeight)
	horizontal := common.Dist2D(grab, pos)

	if ledgeHeight > cfg.Climb.MaxClimbHeight || horizontal > cfg.Climb.MaxHorizontalGrabDistance {
		return mgl64.Vec3{}, false
	}
	return grab, true
}

// ProbeLedge runs the ledge probe for an arbitrary pose. Tools use it to
// survey a level without spawning a character.
func ProbeLedge(world Raycaster, pos, forward mgl64.Vec3, cfg Config) (mgl64.Vec3, bool) {
	if world == nil {
		return mgl64.Vec3{}, false
	}
	return probeLedge(world, 0, pos, forward, cfg)
}
