package mirage

import (
	"github.com/gekko3d/mirage/lighting"
	"github.com/gekko3d/mirage/profiler"
)

// AllBlockLayers is the default draw order of the block renderer.
var AllBlockLayers = []lighting.BlockLayer{
	lighting.LayerSolid,
	lighting.LayerCutoutMipped,
	lighting.LayerCutout,
	lighting.LayerTranslucent,
}

// LightPipeline is the App resource that owns one frame of dynamic lights.
type LightPipeline struct {
	World    lighting.World
	Frame    *lighting.Frame
	Scanner  *lighting.Scanner
	Uploader *lighting.Uploader
	Hooks    *lighting.LayerHooks
	Profiler *profiler.Profiler

	Layers []lighting.BlockLayer
	Draw   func(layer lighting.BlockLayer)

	LastScan   lighting.ScanStats
	LastUpload lighting.UploadStats
}

// Subscribe registers a third-party light source for every scan.
func (p *LightPipeline) Subscribe(fn lighting.SubscriberFunc) lighting.Subscription {
	return p.Scanner.Subscribe(fn)
}

func (p *LightPipeline) Unsubscribe(sub lighting.Subscription) bool {
	return p.Scanner.Unsubscribe(sub)
}

// LightingModule scans World in PreRender, brackets each block layer draw
// with the light shader in Render, and clears the frame in PostRender.
type LightingModule struct {
	Name    string
	Config  lighting.Config
	World   lighting.World
	Program lighting.BindableProgram
	// Layers defaults to AllBlockLayers.
	Layers []lighting.BlockLayer
	// Draw is the host's block layer draw call.
	Draw func(layer lighting.BlockLayer)
}

func (m LightingModule) Install(app *App, cmd *Commands) {
	name := m.Name
	if name == "" {
		name = "mirage"
	}
	if ensureSingleLightShader(app, name) {
		// Reinstalling the same shader keeps the first pipeline.
		return
	}
	if m.Program == nil {
		panic("LightingModule: Program is nil")
	}
	if err := m.Config.Validate(); err != nil {
		panic(err.Error())
	}

	layers := m.Layers
	if len(layers) == 0 {
		layers = AllBlockLayers
	}

	log := appLogger{app: app}
	frame := lighting.NewFrame()
	uploader := lighting.NewUploader(m.Config)
	cmd.AddResources(&LightPipeline{
		World:    m.World,
		Frame:    frame,
		Scanner:  lighting.NewScanner(m.Config, lighting.WithLogger(log)),
		Uploader: uploader,
		Hooks:    lighting.NewLayerHooks(frame, uploader, m.Program, log),
		Profiler: profiler.NewProfiler(),
		Layers:   layers,
		Draw:     m.Draw,
	})

	app.UseSystem(System(lightScanSystem).InStage(PreRender))
	app.UseSystem(System(lightDrawSystem).InStage(Render))
	app.UseSystem(System(lightEndFrameSystem).InStage(PostRender))
}

func lightScanSystem(p *LightPipeline, cmd *Commands) {
	p.Profiler.BeginScope("Scan Lights")
	stats, err := p.Scanner.Scan(p.Frame, p.World)
	p.Profiler.EndScope("Scan Lights")
	if err != nil {
		cmd.Logger().Errorf("lighting: scan: %v", err)
		return
	}

	p.LastScan = stats
	p.Profiler.SetCount("lights.accepted", stats.Accepted)
	p.Profiler.SetCount("lights.rejected", stats.Rejected)
	if stats.Faults > 0 {
		p.Profiler.AddCount("lights.faults", stats.Faults)
	}
}

func lightDrawSystem(p *LightPipeline, cmd *Commands) {
	p.Profiler.BeginScope("Block Layers")
	for _, layer := range p.Layers {
		err := p.Hooks.Draw(layer, func() {
			if p.Draw != nil {
				p.Draw(layer)
			}
		})
		if err != nil {
			cmd.Logger().Warnf("lighting: %v", err)
		}
	}
	p.Profiler.EndScope("Block Layers")

	p.LastUpload = p.Hooks.LastUpload()
	p.Profiler.SetCount("lights.uploaded", p.LastUpload.Count)
}

func lightEndFrameSystem(p *LightPipeline, cmd *Commands) {
	if err := p.Hooks.EndFrame(); err != nil {
		cmd.Logger().Warnf("lighting: %v", err)
	}
}
