package scene

import (
	"github.com/gekko3d/mirage/lighting"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/google/uuid"
)

// Entity is a moving object. prev holds the position at the last tick so
// renderers can interpolate between ticks.
type Entity struct {
	Glow
	ID    uuid.UUID
	Name  string
	Held  []*Item
	Armor []*Item

	prev mgl64.Vec3
	pos  mgl64.Vec3
}

func NewEntity(name string, pos mgl64.Vec3) *Entity {
	return &Entity{
		ID:   uuid.New(),
		Name: name,
		prev: pos,
		pos:  pos,
	}
}

func (e *Entity) EntityID() uuid.UUID { return e.ID }

func (e *Entity) Position() mgl64.Vec3     { return e.pos }
func (e *Entity) PrevPosition() mgl64.Vec3 { return e.prev }

// MoveTo sets the position for the current tick.
func (e *Entity) MoveTo(pos mgl64.Vec3) {
	e.pos = pos
}

// Teleport moves without interpolation.
func (e *Entity) Teleport(pos mgl64.Vec3) {
	e.prev = pos
	e.pos = pos
}

func (e *Entity) tick() {
	e.prev = e.pos
}

func (e *Entity) HeldItems() []lighting.Item {
	return items(e.Held)
}

func (e *Entity) ArmorItems() []lighting.Item {
	return items(e.Armor)
}

func items(in []*Item) []lighting.Item {
	if len(in) == 0 {
		return nil
	}
	out := make([]lighting.Item, 0, len(in))
	for _, it := range in {
		if it != nil {
			out = append(out, it)
		}
	}
	return out
}

// DroppedItem is an item stack lying in the world.
type DroppedItem struct {
	Entity
	Item *Item
}

func NewDroppedItem(item *Item, pos mgl64.Vec3) *DroppedItem {
	name := "item"
	if item != nil {
		name = item.Name
	}
	return &DroppedItem{Entity: *NewEntity(name, pos), Item: item}
}

func (d *DroppedItem) Stack() lighting.Item {
	if d.Item == nil {
		return nil
	}
	return d.Item
}
