package lighting

import (
	"github.com/go-gl/mathgl/mgl32"
	"github.com/go-gl/mathgl/mgl64"
)

// World is the host scene as the scanner sees it. Implementations own all
// objects; the scanner only reads them during Scan.
type World interface {
	// RenderView returns the entity the frame is rendered from, if any.
	RenderView() (RenderView, bool)
	// PartialTick is the fraction of a simulation tick elapsed since the
	// last tick, in [0, 1].
	PartialTick() float64
	Entities() []Entity
	BlockEntities() []BlockEntity
}

type RenderView interface {
	PrevPosition() mgl64.Vec3
	Position() mgl64.Vec3
	// ViewProjection is the camera-relative clip matrix of the frame. When
	// it is unavailable lights are culled by distance only.
	ViewProjection() (mgl32.Mat4, bool)
}

// Entity is a dynamic, moving scene object.
type Entity interface {
	Emitter
	Position() mgl64.Vec3
	HeldItems() []Item
	ArmorItems() []Item
}

// ItemEntity is an item stack lying loose in the world. Its light comes from
// the stack alone.
type ItemEntity interface {
	Entity
	Stack() Item
}

// BlockEntity lights are positioned by their owner.
type BlockEntity interface {
	Emitter
}

type Item interface {
	Emitter
}
