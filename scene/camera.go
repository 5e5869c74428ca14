package scene

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/go-gl/mathgl/mgl64"
)

// Camera is a free-flying render view. Yaw and Pitch are in degrees, Y is up.
type Camera struct {
	Entity
	Yaw    float32
	Pitch  float32
	FovY   float32
	Aspect float32
	Near   float32
	Far    float32
}

func NewCamera(pos mgl64.Vec3) *Camera {
	return &Camera{
		Entity: *NewEntity("camera", pos),
		FovY:   70,
		Aspect: 16.0 / 9.0,
		Near:   0.05,
		Far:    512,
	}
}

// Forward is the unit view direction.
func (c *Camera) Forward() mgl32.Vec3 {
	yaw := mgl32.DegToRad(c.Yaw)
	pitch := mgl32.DegToRad(c.Pitch)
	return mgl32.Vec3{
		float32(math.Sin(float64(yaw)) * math.Cos(float64(pitch))),
		float32(math.Sin(float64(pitch))),
		float32(-math.Cos(float64(yaw)) * math.Cos(float64(pitch))),
	}.Normalize()
}

// Look turns the camera, clamping pitch short of straight up or down.
func (c *Camera) Look(dYaw, dPitch float32) {
	c.Yaw += dYaw
	c.Pitch += dPitch
	if c.Pitch > 89.0 {
		c.Pitch = 89.0
	}
	if c.Pitch < -89.0 {
		c.Pitch = -89.0
	}
}

// Fly moves the camera relative to where it looks: x strafes, y rises,
// z goes forward.
func (c *Camera) Fly(move mgl32.Vec3, distance float32) {
	forward := c.Forward()
	up := mgl32.Vec3{0, 1, 0}
	right := forward.Cross(up).Normalize()

	dir := right.Mul(move[0]).Add(up.Mul(move[1])).Add(forward.Mul(move[2]))
	if dir.Len() == 0 {
		return
	}
	step := dir.Normalize().Mul(distance)
	c.MoveTo(c.pos.Add(mgl64.Vec3{float64(step[0]), float64(step[1]), float64(step[2])}))
}

// ViewProjection is the clip matrix with the camera at the origin.
func (c *Camera) ViewProjection() (mgl32.Mat4, bool) {
	if c.FovY <= 0 || c.Aspect <= 0 || c.Near <= 0 || c.Far <= c.Near {
		return mgl32.Mat4{}, false
	}
	proj := mgl32.Perspective(mgl32.DegToRad(c.FovY), c.Aspect, c.Near, c.Far)
	view := mgl32.LookAtV(mgl32.Vec3{}, c.Forward(), mgl32.Vec3{0, 1, 0})
	return proj.Mul4(view), true
}
