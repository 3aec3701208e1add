package common

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// Up is the world up axis. Heights are measured along Z.
var Up = mgl64.Vec3{0, 0, 1}

func Lerp(a, b, t float64) float64 {
	return a + t*(b-a)
}

func LerpVec3(a, b mgl64.Vec3, t float64) mgl64.Vec3 {
	return a.Add(b.Sub(a).Mul(t))
}

func Clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, v))
}

// Dist2D is the distance between a and b ignoring the vertical axis.
func Dist2D(a, b mgl64.Vec3) float64 {
	return mgl64.Vec2{a.X() - b.X(), a.Y() - b.Y()}.Len()
}

// Lift offsets v along the up axis.
func Lift(v mgl64.Vec3, dz float64) mgl64.Vec3 {
	return mgl64.Vec3{v.X(), v.Y(), v.Z() + dz}
}
