package lighting

import "github.com/go-gl/mathgl/mgl64"

// Registry accumulates the lights accepted during one frame. It never evicts;
// a light only stays out by failing Accept before Append. Not safe for
// concurrent use.
type Registry struct {
	lights []Light
}

func NewRegistry(capacity int) *Registry {
	return &Registry{lights: make([]Light, 0, capacity)}
}

// Append stores a copy of l. Duplicates are kept.
func (r *Registry) Append(l Light) {
	r.lights = append(r.lights, l)
}

// Clear empties the registry but keeps its backing storage.
func (r *Registry) Clear() {
	r.lights = r.lights[:0]
}

func (r *Registry) Len() int {
	return len(r.lights)
}

// Snapshot returns the lights in their current order. The slice aliases the
// registry and is only valid until the next Append or Clear.
func (r *Registry) Snapshot() []Light {
	return r.lights
}

// Sort orders the registry by ascending squared distance to origin.
func (r *Registry) Sort(origin mgl64.Vec3) {
	RankByDistance(r.lights, origin)
}
