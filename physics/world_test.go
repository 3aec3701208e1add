package physics

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/milk9111/ledgeclimb/character"
)

func near(a, b mgl64.Vec3) bool {
	for i := range a {
		if math.Abs(a[i]-b[i]) > 0.05 {
			return false
		}
	}
	return true
}

func testLevel() *World {
	w := NewWorld()
	w.AddBox(Box{MinX: -1000, MinZ: -100, MaxX: 1000, MaxZ: 0})
	w.AddBox(Box{MinX: 50, MinZ: 0, MaxX: 200, MaxZ: 200})
	return w
}

func TestWorldRaycast(t *testing.T) {
	w := testLevel()

	cases := []struct {
		name       string
		origin     mgl64.Vec3
		end        mgl64.Vec3
		wantOK     bool
		wantImpact mgl64.Vec3
	}{
		{"wall_face", mgl64.Vec3{16, 5, 186}, mgl64.Vec3{116, 5, 186}, true, mgl64.Vec3{50, 5, 186}},
		{"ledge_top", mgl64.Vec3{50, 0, 296}, mgl64.Vec3{50, 0, 146}, true, mgl64.Vec3{50, 0, 200}},
		{"floor", mgl64.Vec3{0, 0, 96}, mgl64.Vec3{0, 0, -4}, true, mgl64.Vec3{0, 0, 0}},
		{"over_the_wall", mgl64.Vec3{16, 0, 250}, mgl64.Vec3{116, 0, 250}, false, mgl64.Vec3{}},
		{"short_of_the_floor", mgl64.Vec3{0, 0, 196}, mgl64.Vec3{0, 0, 96}, false, mgl64.Vec3{}},
		{"depth_is_carried", mgl64.Vec3{0, 0, 100}, mgl64.Vec3{100, -100, 100}, true, mgl64.Vec3{50, -50, 100}},
		{"zero_length", mgl64.Vec3{0, 0, 100}, mgl64.Vec3{0, 7, 100}, false, mgl64.Vec3{}},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			hit, ok := w.Raycast(c.origin, c.end, 0)
			if ok != c.wantOK {
				t.Fatalf("expected ok=%v, got %v (%v)", c.wantOK, ok, hit.ImpactPoint)
			}
			if ok && !near(hit.ImpactPoint, c.wantImpact) {
				t.Fatalf("expected impact %v, got %v", c.wantImpact, hit.ImpactPoint)
			}
		})
	}
}

func TestWorldRaycastNormal(t *testing.T) {
	w := testLevel()
	hit, ok := w.Raycast(mgl64.Vec3{16, 0, 100}, mgl64.Vec3{116, 0, 100}, 0)
	if !ok {
		t.Fatalf("expected wall hit")
	}
	if math.Abs(hit.Normal.X()+1) > 1e-6 || math.Abs(hit.Normal.Z()) > 1e-6 {
		t.Fatalf("expected normal facing -X, got %v", hit.Normal)
	}
}

func TestWorldRaycastIgnoresOwner(t *testing.T) {
	w := NewWorld()
	w.AddBox(Box{MinX: 40, MinZ: 0, MaxX: 60, MaxZ: 100, Owner: 9})
	w.AddBox(Box{MinX: 80, MinZ: 0, MaxX: 100, MaxZ: 100})

	hit, ok := w.Raycast(mgl64.Vec3{0, 0, 50}, mgl64.Vec3{200, 0, 50}, 9)
	if !ok || !near(hit.ImpactPoint, mgl64.Vec3{80, 0, 50}) {
		t.Fatalf("expected owner block skipped and hit at x=80, got %v ok=%v", hit.ImpactPoint, ok)
	}

	hit, ok = w.Raycast(mgl64.Vec3{0, 0, 50}, mgl64.Vec3{200, 0, 50}, 3)
	if !ok || !near(hit.ImpactPoint, mgl64.Vec3{40, 0, 50}) {
		t.Fatalf("expected owner block hit for another actor, got %v ok=%v", hit.ImpactPoint, ok)
	}
}

func TestWorldIgnoresDegenerateBoxes(t *testing.T) {
	w := NewWorld()
	w.AddBox(Box{MinX: 10, MinZ: 0, MaxX: 10, MaxZ: 50})
	w.AddBox(Box{MinX: 0, MinZ: 10, MaxX: 50, MaxZ: 5})
	if len(w.Boxes()) != 0 {
		t.Fatalf("expected degenerate boxes rejected, got %d", len(w.Boxes()))
	}
}

func TestWorldSatisfiesRaycaster(t *testing.T) {
	var _ character.Raycaster = NewWorld()
}
