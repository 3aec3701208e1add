package character

import (
	"testing"

	"github.com/go-gl/mathgl/mgl64"
)

func TestCanClimbLedge(t *testing.T) {
	cfg := DefaultConfig()

	cases := []struct {
		name     string
		world    *fakeWorld
		wantOK   bool
		wantGrab mgl64.Vec3
	}{
		{"within_limits", ledgeAt(20, 50, cfg), true, mgl64.Vec3{20, 0, 47 + 55}},
		{"at_limits", ledgeAt(40, 120, cfg), true, mgl64.Vec3{40, 0, 117 + 55}},
		{"too_far", ledgeAt(60, 50, cfg), false, mgl64.Vec3{}},
		{"too_high", ledgeAt(20, 121, cfg), false, mgl64.Vec3{}},
		{"too_far_and_too_high", ledgeAt(60, 200, cfg), false, mgl64.Vec3{}},
		{"no_wall", &fakeWorld{ledge: &Hit{}}, false, mgl64.Vec3{}},
		{"no_ledge", &fakeWorld{wall: &Hit{ImpactPoint: mgl64.Vec3{20, 0, 90}}}, false, mgl64.Vec3{}},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			r := newRig(cfg, c.world)
			grab, ok := r.c.CanClimbLedge()
			if ok != c.wantOK {
				t.Fatalf("expected ok=%v, got %v", c.wantOK, ok)
			}
			if ok && !grab.ApproxEqual(c.wantGrab) {
				t.Fatalf("expected grab %v, got %v", c.wantGrab, grab)
			}
		})
	}
}

func TestCanClimbLedgeIsPure(t *testing.T) {
	r := newRig(DefaultConfig(), ledgeAt(20, 50, DefaultConfig()))
	r.body.pos = mgl64.Vec3{0, 0, 0}

	first, ok1 := r.c.CanClimbLedge()
	second, ok2 := r.c.CanClimbLedge()
	if first != second || ok1 != ok2 {
		t.Fatalf("expected identical results, got %v/%v and %v/%v", first, ok1, second, ok2)
	}
	if r.body.pos != (mgl64.Vec3{}) || r.move.mode != ModeGrounded || len(r.anim.played) != 0 {
		t.Fatalf("probe must not mutate state")
	}
	if r.c.Climb().Phase != PhaseIdle {
		t.Fatalf("probe must not start a climb")
	}
}

func TestCanClimbLedgeRaysFollowFacing(t *testing.T) {
	rec := &recordingWorld{hits: []Hit{
		{ImpactPoint: mgl64.Vec3{100, -20, 90}},
		{ImpactPoint: mgl64.Vec3{100, -20, 97}},
	}}
	r := newRig(DefaultConfig(), &fakeWorld{})
	r.c.world = rec
	r.body.pos = mgl64.Vec3{100, 0, 0}
	r.body.forward = mgl64.Vec3{0, -1, 0}

	if _, ok := r.c.CanClimbLedge(); !ok {
		t.Fatalf("expected ledge")
	}
	want := [][2]mgl64.Vec3{
		{{100, 0, 90}, {100, -100, 90}},
		{{100, -20, 200}, {100, -20, 50}},
	}
	if len(rec.rays) != len(want) {
		t.Fatalf("expected %d rays, got %d", len(want), len(rec.rays))
	}
	for i := range want {
		if !rec.rays[i][0].ApproxEqual(want[i][0]) || !rec.rays[i][1].ApproxEqual(want[i][1]) {
			t.Fatalf("ray %d: expected %v, got %v", i, want[i], rec.rays[i])
		}
	}
	if rec.ignored != 7 {
		t.Fatalf("expected probe to ignore actor 7, got %d", rec.ignored)
	}
}

type recordingWorld struct {
	hits    []Hit
	rays    [][2]mgl64.Vec3
	ignored ActorID
}

func (w *recordingWorld) Raycast(origin, end mgl64.Vec3, ignore ActorID) (Hit, bool) {
	w.ignored = ignore
	w.rays = append(w.rays, [2]mgl64.Vec3{origin, end})
	if len(w.rays) > len(w.hits) {
		return Hit{}, false
	}
	return w.hits[len(w.rays)-1], true
}

func TestProbeLedgeWithoutCharacter(t *testing.T) {
	cfg := DefaultConfig()
	grab, ok := ProbeLedge(ledgeAt(20, 50, cfg), mgl64.Vec3{}, mgl64.Vec3{1, 0, 0}, cfg)
	if !ok || !grab.ApproxEqual(mgl64.Vec3{20, 0, 47 + 55}) {
		t.Fatalf("expected grab at (20,0,102), got %v ok=%v", grab, ok)
	}
	if _, ok := ProbeLedge(nil, mgl64.Vec3{}, mgl64.Vec3{1, 0, 0}, cfg); ok {
		t.Fatalf("nil world must not report a ledge")
	}
}
