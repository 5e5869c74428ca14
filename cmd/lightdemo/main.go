package main

import (
	"flag"
	"runtime"
	"time"

	"github.com/gekko3d/mirage"
	"github.com/gekko3d/mirage/cmd/lightdemo/demoscene"
	"github.com/gekko3d/mirage/debugviz"
	"github.com/gekko3d/mirage/lighting"
	"github.com/gekko3d/mirage/shaders"
	"github.com/go-gl/glfw/v3.3/glfw"
)

func init() {
	runtime.LockOSThread()
}

func main() {
	configPath := flag.String("config", "", "YAML config file")
	snapshotPath := flag.String("snapshot", "", "write a top-down PNG of the ranked lights of the first frame")
	flag.Parse()

	cfg := mirage.DefaultConfig()
	cfg.Lighting.MaxDistance = demoscene.MaxDistance
	if *configPath != "" {
		var err error
		if cfg, err = mirage.LoadConfig(*configPath); err != nil {
			panic(err)
		}
	}
	log := mirage.NewDefaultLogger(cfg.LogPrefix, cfg.Debug)
	if cfg.Lighting.MaxLights > shaders.MaxLights {
		log.Warnf("max_lights %d exceeds the shader array, clamped to %d", cfg.Lighting.MaxLights, shaders.MaxLights)
		cfg.Lighting.MaxLights = shaders.MaxLights
	}

	if err := glfw.Init(); err != nil {
		panic(err)
	}
	defer glfw.Terminate()

	glfw.WindowHint(glfw.ClientAPI, glfw.NoAPI)
	glfw.WindowHint(glfw.Resizable, glfw.True)
	window, err := glfw.CreateWindow(1280, 720, "Mirage Light Demo", nil, nil)
	if err != nil {
		panic(err)
	}
	defer window.Destroy()

	gpu, err := newGPUState(window)
	if err != nil {
		panic(err)
	}
	defer gpu.release()

	window.SetFramebufferSizeCallback(func(w *glfw.Window, width, height int) {
		gpu.resize(width, height)
	})
	window.SetKeyCallback(func(w *glfw.Window, key glfw.Key, scancode int, action glfw.Action, mods glfw.ModifierKey) {
		if key == glfw.KeyEscape && action == glfw.Press {
			w.SetShouldClose(true)
		}
	})

	demo := demoscene.New()
	snap := &snapshot{path: *snapshotPath, overlay: debugviz.NewOverlay(512, 96, cfg.Lighting.MaxLights)}

	var pipeline *mirage.LightPipeline
	app := mirage.NewAppBuilder().
		UseModule(mirage.TimeModule{TickRate: cfg.TickRate}).
		UseModule(mirage.SceneModule{World: demo.World, OnTick: demo.Tick}).
		UseModule(mirage.LightingModule{
			Name:    "demo",
			Config:  cfg.Lighting,
			World:   demo.World,
			Program: gpu.lights,
			Draw: func(layer lighting.BlockLayer) {
				if layer == lighting.LayerSolid {
					snap.capture(pipeline, log)
				}
				if err := gpu.drawLayer(layer); err != nil {
					log.Errorf("draw %s: %v", layer, err)
				}
			},
		}).
		Build()
	app.Commands().AddResources(log, &controls{window: window, speed: 12}, demo)
	pipeline = mirage.Resource[mirage.LightPipeline](app)

	app.UseSystem(mirage.System(flySystem).InStage(mirage.Update))
	app.UseSystem(mirage.System(func(d *demoscene.Scene) {
		gpu.beginFrame(d.Camera.Position(), 96)
	}).InStage(mirage.PreRender))
	app.UseSystem(mirage.System(func() {
		if err := gpu.endFrame(); err != nil {
			log.Errorf("frame: %v", err)
		}
	}).InStage(mirage.Finale))

	lastStats := time.Now()
	app.UseSystem(mirage.System(func(p *mirage.LightPipeline) {
		if !log.DebugEnabled() || time.Since(lastStats) < time.Second {
			return
		}
		lastStats = time.Now()
		log.Debugf("%s", p.Profiler.GetStatsString())
	}).InStage(mirage.Finale))

	app.Run(func() bool {
		glfw.PollEvents()
		return window.ShouldClose()
	})
}
