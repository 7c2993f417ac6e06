// Package camera provides the orbit camera used to inspect sketches.
package camera

import (
	"github.com/chewxy/math32"

	"github.com/Faultbox/sketchview/pkg/math"
)

// OrbitCamera orbits around a center point.
type OrbitCamera struct {
	Center math.Vec3

	// Spherical coordinates
	Distance float32
	Pitch    float32 // radians, positive looks down
	Yaw      float32 // radians

	// Constraints
	MinDistance float32
	MaxDistance float32
	MinPitch    float32
	MaxPitch    float32

	// AutoRotate is the yaw speed in radians per second. Zero disables it.
	AutoRotate float32
}

// NewOrbitCamera creates an orbit camera sized for room-scale sketches.
func NewOrbitCamera() *OrbitCamera {
	return &OrbitCamera{
		Distance:    20,
		Pitch:       0.3,
		MinDistance: 0.1,
		MaxDistance: 10000,
		MinPitch:    -1.5,
		MaxPitch:    1.5,
	}
}

// Position returns the camera position in world space.
func (c *OrbitCamera) Position() math.Vec3 {
	sinP, cosP := math32.Sincos(c.Pitch)
	sinY, cosY := math32.Sincos(c.Yaw)
	offset := math.Vec3{
		X: c.Distance * cosP * sinY,
		Y: c.Distance * sinP,
		Z: c.Distance * cosP * cosY,
	}
	return c.Center.Add(offset)
}

// ViewMatrix returns the view matrix for this camera.
func (c *OrbitCamera) ViewMatrix() math.Mat4 {
	return math.LookAt(c.Position(), c.Center, math.Vec3{Y: 1})
}

// Update advances auto-rotation by dt seconds.
func (c *OrbitCamera) Update(dt float32) {
	if c.AutoRotate == 0 {
		return
	}
	c.Yaw = math32.Mod(c.Yaw+c.AutoRotate*dt, 2*math32.Pi)
}

// FitToBounds centers the camera on a bounding box and backs off far
// enough to see all of it with the given vertical field of view.
func (c *OrbitCamera) FitToBounds(minP, maxP math.Vec3, fovY float32) {
	c.Center = minP.Add(maxP).Scale(0.5)

	radius := maxP.Sub(minP).Length() / 2
	if radius <= 0 {
		radius = 1
	}
	c.Distance = clamp(radius/math32.Sin(fovY/2), c.MinDistance, c.MaxDistance)
	c.Pitch = clamp(0.3, c.MinPitch, c.MaxPitch)
	c.Yaw = 0
}

// ClipPlanes returns near and far planes that enclose the orbit.
func (c *OrbitCamera) ClipPlanes() (near, far float32) {
	near = max(c.Distance*0.01, 0.01)
	far = c.Distance * 4
	return near, far
}

func clamp(v, lo, hi float32) float32 {
	return min(max(v, lo), hi)
}
