// Package scene is a small in-memory host world for the lighting pipeline:
// moving entities with equipment, dropped item stacks, block entities and a
// fly camera that serves as the render view.
package scene

import "github.com/gekko3d/mirage/lighting"

// Glow is the light capability shared by every scene object. Gather wins
// over Light when both are set.
type Glow struct {
	Light  *lighting.Light
	Gather lighting.GatherFunc
}

func (g Glow) Emission() lighting.Emission {
	if g.Gather != nil {
		return lighting.Multi(g.Gather)
	}
	return lighting.SingleRef(g.Light)
}

// Item is an item type that may glow when held, worn or dropped.
type Item struct {
	Glow
	Name string
}

func NewItem(name string) *Item {
	return &Item{Name: name}
}

// WithLight makes the item emit l wherever it is carried.
func (i *Item) WithLight(l lighting.Light) *Item {
	i.Light = &l
	return i
}

// BlockEntity is a fixed object in the world; its lights carry their own
// position.
type BlockEntity struct {
	Glow
	Name string
}
