package scene

import (
	"github.com/gekko3d/mirage/lighting"
	"github.com/google/uuid"
)

type ticker interface {
	lighting.Entity
	EntityID() uuid.UUID
	tick()
}

// World holds the loaded objects of a scene and implements lighting.World.
// It is driven from the render thread and is not safe for concurrent use.
type World struct {
	entities []ticker
	blocks   []*BlockEntity
	view     *Camera
	partial  float64

	entityView []lighting.Entity
	blockView  []lighting.BlockEntity
}

func NewWorld() *World {
	return &World{}
}

// Spawn adds an entity, dropped item or camera to the loaded entity list.
func (w *World) Spawn(e ticker) uuid.UUID {
	w.entities = append(w.entities, e)
	return e.EntityID()
}

func (w *World) Despawn(id uuid.UUID) bool {
	for i, e := range w.entities {
		if e.EntityID() == id {
			w.entities = append(w.entities[:i], w.entities[i+1:]...)
			return true
		}
	}
	return false
}

func (w *World) AddBlockEntity(b *BlockEntity) {
	w.blocks = append(w.blocks, b)
}

func (w *World) RemoveBlockEntity(b *BlockEntity) bool {
	for i, existing := range w.blocks {
		if existing == b {
			w.blocks = append(w.blocks[:i], w.blocks[i+1:]...)
			return true
		}
	}
	return false
}

// SetView selects the camera frames are rendered from; nil clears it.
func (w *World) SetView(c *Camera) {
	w.view = c
}

func (w *World) View() *Camera {
	return w.view
}

// Tick closes a simulation tick: every position becomes the new
// interpolation start.
func (w *World) Tick() {
	for _, e := range w.entities {
		e.tick()
	}
	if w.view != nil {
		w.view.tick()
	}
}

// SetPartialTick records how far the frame is between the last tick and
// the next, clamped to [0, 1].
func (w *World) SetPartialTick(f float64) {
	w.partial = min(max(f, 0), 1)
}

func (w *World) PartialTick() float64 {
	return w.partial
}

func (w *World) RenderView() (lighting.RenderView, bool) {
	if w.view == nil {
		return nil, false
	}
	return w.view, true
}

func (w *World) Entities() []lighting.Entity {
	w.entityView = w.entityView[:0]
	for _, e := range w.entities {
		w.entityView = append(w.entityView, e)
	}
	return w.entityView
}

func (w *World) BlockEntities() []lighting.BlockEntity {
	w.blockView = w.blockView[:0]
	for _, b := range w.blocks {
		w.blockView = append(w.blockView, b)
	}
	return w.blockView
}
