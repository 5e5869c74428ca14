package mirage

import "github.com/gekko3d/mirage/scene"

// SceneModule drives a scene.World from the Time resource: it closes one
// world tick per elapsed simulation tick and feeds the partial tick used to
// interpolate the camera. Requires TimeModule.
type SceneModule struct {
	World *scene.World
	// OnTick runs after every world tick; game logic moves entities here.
	OnTick func(w *scene.World)
}

type sceneDriver struct {
	world  *scene.World
	onTick func(w *scene.World)
}

func (m SceneModule) Install(app *App, cmd *Commands) {
	if m.World == nil {
		panic("SceneModule: World is nil")
	}
	cmd.AddResources(&sceneDriver{world: m.World, onTick: m.OnTick})
	app.UseSystem(System(sceneTickSystem).InStage(Update))
}

func sceneTickSystem(t *Time, d *sceneDriver) {
	for i := 0; i < t.TicksThisFrame; i++ {
		d.world.Tick()
		if d.onTick != nil {
			d.onTick(d.world)
		}
	}
	d.world.SetPartialTick(t.PartialTick)
}
