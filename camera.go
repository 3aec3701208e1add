package main

import "github.com/go-gl/mathgl/mgl64"

// Camera follows a world point in the side view. World Z is up, screen Y is
// down.
type Camera struct {
	X, Z   float64
	Zoom   float64
	smooth float64
	w, h   float64
}

func NewCamera(w, h int, zoom float64) *Camera {
	return &Camera{Zoom: zoom, smooth: 0.15, w: float64(w), h: float64(h)}
}

// Follow eases the camera toward target.
func (c *Camera) Follow(target mgl64.Vec3) {
	c.X += (target.X() - c.X) * c.smooth
	c.Z += (target.Z() - c.Z) * c.smooth
}

// Snap centers the camera on target immediately.
func (c *Camera) Snap(target mgl64.Vec3) {
	c.X, c.Z = target.X(), target.Z()
}

// ToScreen maps a world XZ point to screen pixels.
func (c *Camera) ToScreen(x, z float64) (float32, float32) {
	sx := (x-c.X)*c.Zoom + c.w/2
	sy := c.h/2 - (z-c.Z)*c.Zoom
	return float32(sx), float32(sy)
}

// RectToScreen maps a world box to a screen rectangle.
func (c *Camera) RectToScreen(minX, minZ, maxX, maxZ float64) (x, y, w, h float32) {
	x, y = c.ToScreen(minX, maxZ)
	w = float32((maxX - minX) * c.Zoom)
	h = float32((maxZ - minZ) * c.Zoom)
	return x, y, w, h
}
