// Package demoscene builds the light demo world without touching the window
// or the GPU.
package demoscene

import (
	"math"

	"github.com/gekko3d/mirage/lighting"
	"github.com/gekko3d/mirage/scene"
	"github.com/go-gl/mathgl/mgl64"
)

// MaxDistance is the culling radius the demo runs with when no config file
// is given. The lanterns sit 22 units below the camera and culling compares
// squared distance with radius+MaxDistance, so the library default of 64
// rejects every light from there.
const MaxDistance = 1200

var (
	torchColor   = [4]float32{1.0, 0.7, 0.35, 1}
	lanternColor = [4]float32{1.0, 0.9, 0.6, 1}
	crystalColor = [4]float32{0.4, 0.6, 1.0, 1}
	fireflyColor = [4]float32{0.6, 1.0, 0.3, 1}
)

// Scene is a walker carrying a torch in a circle, a grid of lanterns,
// a dropped crystal, a firefly swarm and a flying camera above it all.
type Scene struct {
	World  *scene.World
	Camera *scene.Camera
	Walker *scene.Entity
	ticks  int
}

func New() *Scene {
	d := &Scene{World: scene.NewWorld()}

	d.Camera = scene.NewCamera(mgl64.Vec3{0, 24, 0})
	d.Camera.Pitch = -89
	d.World.SetView(d.Camera)

	torch := scene.NewItem("torch").WithLight(lighting.NewPointLight(mgl64.Vec3{}, torchColor, 14, 6))
	helmet := scene.NewItem("miner_helmet").WithLight(
		lighting.NewSpotLight(mgl64.Vec3{}, mgl64.Vec3{0, -1, 0}, lanternColor, 8, 10, 4),
	)
	d.Walker = scene.NewEntity("walker", mgl64.Vec3{8, 1, 0})
	d.Walker.Held = []*scene.Item{torch}
	d.Walker.Armor = []*scene.Item{helmet}
	d.World.Spawn(d.Walker)

	for x := -32; x <= 32; x += 16 {
		for z := -32; z <= 32; z += 16 {
			l := lighting.NewPointLight(mgl64.Vec3{float64(x), 2, float64(z)}, lanternColor, 10, 3)
			d.World.AddBlockEntity(&scene.BlockEntity{Name: "lantern", Glow: scene.Glow{Light: &l}})
		}
	}

	crystal := scene.NewItem("crystal").WithLight(lighting.NewPointLight(mgl64.Vec3{}, crystalColor, 6, 5))
	d.World.Spawn(scene.NewDroppedItem(crystal, mgl64.Vec3{-6, 0.2, 4}))

	swarm := scene.NewEntity("fireflies", mgl64.Vec3{4, 2, -10})
	swarm.Gather = func(ctx *lighting.GatherContext, owner lighting.Entity) {
		center := owner.Position()
		for i := 0; i < 5; i++ {
			a := float64(d.ticks)*0.15 + float64(i)*2*math.Pi/5
			l := lighting.NewPointLight(center.Add(mgl64.Vec3{2 * math.Cos(a), 0, 2 * math.Sin(a)}), fireflyColor, 4, 1)
			ctx.Add(&l)
		}
	}
	d.World.Spawn(swarm)
	return d
}

// Tick advances the walker along its circle once per simulation tick.
func (d *Scene) Tick(w *scene.World) {
	d.ticks++
	a := float64(d.ticks) * 0.05
	d.Walker.MoveTo(mgl64.Vec3{8 * math.Cos(a), 1, 8 * math.Sin(a)})
}
