package physics

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/jakecoffman/cp"
	"github.com/milk9111/ledgeclimb/character"
)

// Box is an axis aligned block in the side view plane. X runs along the
// level, Z is up. Blocks extend infinitely along Y.
type Box struct {
	MinX, MinZ float64
	MaxX, MaxZ float64
	Owner      character.ActorID
}

// traceRadius fattens traces slightly so a ray running exactly along a block
// face still finds the block's corner.
const traceRadius = 0.01

// World is the side view collision world. It stores static level geometry
// in a Chipmunk space and answers 3D line traces by projecting them onto the
// XZ plane.
type World struct {
	space  *cp.Space
	boxes  []Box
	groups map[character.ActorID]uint
}

func NewWorld() *World {
	space := cp.NewSpace()
	space.Iterations = 20
	return &World{
		space:  space,
		groups: make(map[character.ActorID]uint),
	}
}

// Space returns the underlying Chipmunk space.
func (w *World) Space() *cp.Space {
	if w == nil {
		return nil
	}
	return w.space
}

// Boxes returns the level blocks in insertion order.
func (w *World) Boxes() []Box {
	if w == nil {
		return nil
	}
	return w.boxes
}

// AddBox adds a static block. Blocks owned by an actor are skipped by traces
// that ignore that actor.
func (w *World) AddBox(b Box) {
	if w == nil || b.MaxX <= b.MinX || b.MaxZ <= b.MinZ {
		return
	}
	bb := cp.BB{L: b.MinX, B: b.MinZ, R: b.MaxX, T: b.MaxZ}
	shape := cp.NewBox2(w.space.StaticBody, bb, 0)
	shape.SetFriction(1)
	if b.Owner != 0 {
		shape.SetFilter(cp.NewShapeFilter(w.group(b.Owner), cp.ALL_CATEGORIES, cp.ALL_CATEGORIES))
	}
	w.space.AddShape(shape)
	w.boxes = append(w.boxes, b)
}

func (w *World) group(id character.ActorID) uint {
	if g, ok := w.groups[id]; ok {
		return g
	}
	g := uint(len(w.groups) + 1)
	w.groups[id] = g
	return g
}

// Raycast traces the segment origin->end against the level and returns the
// first impact. Y is carried along the segment so the impact point stays on
// the 3D ray.
func (w *World) Raycast(origin, end mgl64.Vec3, ignore character.ActorID) (character.Hit, bool) {
	if w == nil || w.space == nil {
		return character.Hit{}, false
	}

	a := cp.Vector{X: origin.X(), Y: origin.Z()}
	b := cp.Vector{X: end.X(), Y: end.Z()}
	if a == b {
		return character.Hit{}, false
	}

	filter := cp.SHAPE_FILTER_ALL
	if g, ok := w.groups[ignore]; ok && ignore != 0 {
		filter = cp.NewShapeFilter(g, cp.ALL_CATEGORIES, cp.ALL_CATEGORIES)
	}

	info := w.space.SegmentQueryFirst(a, b, traceRadius, filter)
	if info.Shape == nil {
		return character.Hit{}, false
	}

	// info.Point is the center of the fattened trace at contact. Step back
	// along the normal so the impact lies on the block surface.
	surface := info.Point.Sub(info.Normal.Mult(traceRadius))
	alpha := math.Max(0, math.Min(1, info.Alpha))
	y := origin.Y() + (end.Y()-origin.Y())*alpha
	return character.Hit{
		ImpactPoint: mgl64.Vec3{surface.X, y, surface.Y},
		Normal:      mgl64.Vec3{info.Normal.X, 0, info.Normal.Y},
	}, true
}
