package character

import (
	"strings"

	"github.com/tanema/gween/ease"
)

// MovementTuning holds the per-archetype ground speeds.
type MovementTuning struct {
	WalkSpeed   float64
	SprintSpeed float64
}

// ClimbGeometry holds the ledge grab limits and climb alignment offsets.
type ClimbGeometry struct {
	MaxHorizontalGrabDistance float64
	MaxClimbHeight            float64
	ClimbForwardOffset        float64
	ClimbStartHeightOffset    float64
	ClimbStartSideOffset      float64
	ClimbHeightOffset         float64
}

// ProbeShape holds the fixed ray lengths of the ledge probe.
type ProbeShape struct {
	WallHeight float64 // wall ray origin above the actor
	WallReach  float64 // wall ray length along the facing vector
	LedgeRise  float64 // ledge ray origin above the wall impact
	LedgeDrop  float64 // ledge ray length downwards
	GrabHeight float64 // grab point above the ledge surface
}

// Config is the immutable archetype of a character.
type Config struct {
	Movement     MovementTuning
	Climb        ClimbGeometry
	Probe        ProbeShape
	ClimbMontage string
	LerpDuration float64
	Curve        BlendCurve
}

func DefaultConfig() Config {
	return Config{
		Movement: MovementTuning{
			WalkSpeed:   500,
			SprintSpeed: 900,
		},
		Climb: ClimbGeometry{
			MaxHorizontalGrabDistance: 40,
			MaxClimbHeight:            120,
			ClimbForwardOffset:        30,
			ClimbStartHeightOffset:    30,
			ClimbStartSideOffset:      30,
			ClimbHeightOffset:         3,
		},
		Probe: ProbeShape{
			WallHeight: 90,
			WallReach:  100,
			LedgeRise:  110,
			LedgeDrop:  150,
			GrabHeight: 55,
		},
		ClimbMontage: "climb",
		LerpDuration: 0.25,
		Curve:        LinearCurve,
	}
}

// BlendCurve maps the linear lerp progress in [0,1] to a blend weight.
type BlendCurve func(alpha float64) float64

// LinearCurve blends at a constant rate.
func LinearCurve(alpha float64) float64 { return alpha }

// CurveFromEase adapts a gween easing function to a BlendCurve.
func CurveFromEase(fn ease.TweenFunc) BlendCurve {
	if fn == nil {
		return LinearCurve
	}
	return func(alpha float64) float64 {
		return float64(fn(float32(alpha), 0, 1, 1))
	}
}

var namedCurves = map[string]ease.TweenFunc{
	"linear":       ease.Linear,
	"in_quad":      ease.InQuad,
	"out_quad":     ease.OutQuad,
	"in_out_quad":  ease.InOutQuad,
	"in_cubic":     ease.InCubic,
	"out_cubic":    ease.OutCubic,
	"in_out_cubic": ease.InOutCubic,
	"out_sine":     ease.OutSine,
	"in_out_sine":  ease.InOutSine,
	"out_back":     ease.OutBack,
	"out_expo":     ease.OutExpo,
}

// NamedCurve resolves a curve name from config. Empty selects linear.
func NamedCurve(name string) (BlendCurve, bool) {
	name = strings.ToLower(strings.TrimSpace(name))
	if name == "" || name == "linear" {
		return LinearCurve, true
	}
	fn, ok := namedCurves[name]
	if !ok {
		return LinearCurve, false
	}
	return CurveFromEase(fn), true
}
