package lighting

import "github.com/go-gl/mathgl/mgl64"

// Accept decides whether l can affect the frame seen from cam.
//
// The distance test compares the squared camera distance against the linear
// sum Mag + maxDistance. A light exactly on the boundary is accepted.
func Accept(l *Light, cam *CameraSnapshot, maxDistance float64) bool {
	if l == nil || cam == nil {
		return false
	}
	if l.DistanceSq(cam.Position) > float64(l.Mag)+maxDistance {
		return false
	}
	if cam.Frustum != nil {
		pos := l.Position()
		r := float64(l.Mag)
		ext := mgl64.Vec3{r, r, r}
		if !cam.Frustum.IntersectsAABB(pos.Sub(ext), pos.Add(ext)) {
			return false
		}
	}
	return true
}
