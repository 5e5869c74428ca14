package lighting

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/go-gl/mathgl/mgl64"
)

// Frustum is a view volume expressed as six inward-facing planes in
// camera-relative space, anchored at a world origin.
type Frustum struct {
	Planes [6]mgl64.Vec4 // Left, Right, Bottom, Top, Near, Far
	Origin mgl64.Vec3
}

// NewFrustum extracts the planes of viewProj (a camera-relative, OpenGL-style
// clip matrix) and anchors them at origin.
func NewFrustum(viewProj mgl32.Mat4, origin mgl64.Vec3) *Frustum {
	f := &Frustum{Origin: origin}
	row := func(r int) mgl64.Vec4 {
		return mgl64.Vec4{
			float64(viewProj.At(r, 0)),
			float64(viewProj.At(r, 1)),
			float64(viewProj.At(r, 2)),
			float64(viewProj.At(r, 3)),
		}
	}
	r0, r1, r2, r3 := row(0), row(1), row(2), row(3)
	f.Planes[0] = r3.Add(r0)
	f.Planes[1] = r3.Sub(r0)
	f.Planes[2] = r3.Add(r1)
	f.Planes[3] = r3.Sub(r1)
	f.Planes[4] = r3.Add(r2)
	f.Planes[5] = r3.Sub(r2)

	for i := range f.Planes {
		p := f.Planes[i]
		length := math.Sqrt(p[0]*p[0] + p[1]*p[1] + p[2]*p[2])
		if length > 0 {
			f.Planes[i] = p.Mul(1.0 / length)
		}
	}
	return f
}

// IntersectsAABB reports whether the world-space box [min, max] is at least
// partially inside the frustum. A nil frustum contains everything.
func (f *Frustum) IntersectsAABB(min, max mgl64.Vec3) bool {
	if f == nil {
		return true
	}
	lo := min.Sub(f.Origin)
	hi := max.Sub(f.Origin)

	for _, plane := range f.Planes {
		// Most-inside corner along the plane normal; if even that one is
		// behind the plane the whole box is outside.
		var p mgl64.Vec3
		for axis := 0; axis < 3; axis++ {
			if plane[axis] > 0 {
				p[axis] = hi[axis]
			} else {
				p[axis] = lo[axis]
			}
		}
		if plane[0]*p[0]+plane[1]*p[1]+plane[2]*p[2]+plane[3] < 0 {
			return false
		}
	}
	return true
}
