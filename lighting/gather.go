package lighting

import (
	"github.com/go-gl/mathgl/mgl64"
	"github.com/google/uuid"
)

// GatherContext is handed to subscribers and multi-light emitters during a
// scan. Every submission goes through Accept before it reaches the registry.
type GatherContext struct {
	frame       *Frame
	maxDistance float64

	accepted int
	rejected int
}

// Add submits l. A nil light is ignored. It reports whether l was kept.
func (c *GatherContext) Add(l *Light) bool {
	if l == nil {
		return false
	}
	if !Accept(l, c.frame.camera, c.maxDistance) {
		c.rejected++
		return false
	}
	c.frame.registry.Append(*l)
	c.accepted++
	return true
}

// AddAt submits a copy of l positioned at pos.
func (c *GatherContext) AddAt(l *Light, pos mgl64.Vec3) bool {
	if l == nil {
		return false
	}
	stamped := l.At(pos)
	return c.Add(&stamped)
}

// CameraPosition is the interpolated camera position of the frame.
func (c *GatherContext) CameraPosition() mgl64.Vec3 {
	if c.frame.camera == nil {
		return mgl64.Vec3{}
	}
	return c.frame.camera.Position
}

// Frustum is nil when the frame has no projection or the scan has ended.
func (c *GatherContext) Frustum() *Frustum {
	if c.frame.camera == nil {
		return nil
	}
	return c.frame.camera.Frustum
}

func (c *GatherContext) MaxDistance() float64 {
	return c.maxDistance
}

// Lights returns what has been accepted so far. Do not modify it.
func (c *GatherContext) Lights() []Light {
	return c.frame.registry.Snapshot()
}

// SubscriberFunc is called once per scan before the world is walked.
type SubscriberFunc func(ctx *GatherContext)

// Subscription identifies a registered subscriber.
type Subscription struct {
	id uuid.UUID
}

func (s Subscription) String() string {
	return s.id.String()
}

type subscriber struct {
	id uuid.UUID
	fn SubscriberFunc
}
