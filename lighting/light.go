package lighting

import "github.com/go-gl/mathgl/mgl64"

// Light describes one dynamic light as the fragment shader consumes it.
// Two lights with equal fields are interchangeable.
type Light struct {
	X, Y, Z    float32 // position
	R, G, B, A float32 // color, A is an intensity multiplier for shaders that use it
	SX, SY, SZ float32 // spot cone direction, zero for point lights
	SF         float32 // cone falloff
	Mag        float32 // influence radius
	L          float32 // raw intensity
}

// NewPointLight returns an omnidirectional light at pos.
func NewPointLight(pos mgl64.Vec3, color [4]float32, radius, intensity float32) Light {
	return Light{
		X: float32(pos.X()), Y: float32(pos.Y()), Z: float32(pos.Z()),
		R: color[0], G: color[1], B: color[2], A: color[3],
		Mag: radius,
		L:   intensity,
	}
}

// NewSpotLight returns a cone light at pos pointing along dir.
func NewSpotLight(pos mgl64.Vec3, dir mgl64.Vec3, color [4]float32, falloff, radius, intensity float32) Light {
	l := NewPointLight(pos, color, radius, intensity)
	if dir.Len() > 0 {
		dir = dir.Normalize()
	}
	l.SX, l.SY, l.SZ = float32(dir.X()), float32(dir.Y()), float32(dir.Z())
	l.SF = falloff
	return l
}

func (l Light) Position() mgl64.Vec3 {
	return mgl64.Vec3{float64(l.X), float64(l.Y), float64(l.Z)}
}

// At returns a copy of l moved to pos.
func (l Light) At(pos mgl64.Vec3) Light {
	l.X, l.Y, l.Z = float32(pos.X()), float32(pos.Y()), float32(pos.Z())
	return l
}

// DistanceSq is the squared distance from origin to the light.
func (l Light) DistanceSq(origin mgl64.Vec3) float64 {
	d := l.Position().Sub(origin)
	return d.Dot(d)
}
