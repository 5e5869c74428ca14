package lighting

import "github.com/go-gl/mathgl/mgl64"

// CameraSnapshot is the per-frame camera state used for culling and ranking.
// Frustum may be nil when the host has no projection for the frame, in which
// case only the distance test applies.
type CameraSnapshot struct {
	Position mgl64.Vec3
	Frustum  *Frustum
}

// Interpolate blends the previous and current tick positions by partial.
func Interpolate(prev, cur mgl64.Vec3, partial float64) mgl64.Vec3 {
	return prev.Add(cur.Sub(prev).Mul(partial))
}
