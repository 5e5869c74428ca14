package main

import (
	"os"

	"github.com/gekko3d/mirage"
	"github.com/gekko3d/mirage/cmd/lightdemo/demoscene"
	"github.com/gekko3d/mirage/debugviz"
	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/go-gl/mathgl/mgl32"
)

// controls is the keyboard state the fly system reads.
type controls struct {
	window *glfw.Window
	speed  float32
}

func flySystem(c *controls, d *demoscene.Scene, t *mirage.Time) {
	var move mgl32.Vec3
	keys := []struct {
		key  glfw.Key
		axis int
		sign float32
	}{
		{glfw.KeyW, 2, 1}, {glfw.KeyS, 2, -1},
		{glfw.KeyD, 0, 1}, {glfw.KeyA, 0, -1},
		{glfw.KeySpace, 1, 1}, {glfw.KeyLeftControl, 1, -1},
	}
	for _, k := range keys {
		if c.window.GetKey(k.key) == glfw.Press {
			move[k.axis] += k.sign
		}
	}
	if c.window.GetKey(glfw.KeyQ) == glfw.Press {
		d.Camera.Look(-90*float32(t.Dt.Seconds()), 0)
	}
	if c.window.GetKey(glfw.KeyE) == glfw.Press {
		d.Camera.Look(90*float32(t.Dt.Seconds()), 0)
	}
	d.Camera.Fly(move, c.speed*float32(t.Dt.Seconds()))
}

// snapshot writes one debug overlay of the ranked lights, then disarms.
type snapshot struct {
	path    string
	overlay *debugviz.Overlay
	done    bool
}

func (s *snapshot) capture(p *mirage.LightPipeline, log mirage.Logger) {
	if s == nil || s.done || s.path == "" {
		return
	}
	origin, ok := p.Frame.Origin()
	if !ok {
		return
	}
	s.done = true

	f, err := os.Create(s.path)
	if err != nil {
		log.Errorf("snapshot: %v", err)
		return
	}
	defer f.Close()
	if err := s.overlay.WritePNG(f, p.Frame.Lights(), origin.Position); err != nil {
		log.Errorf("snapshot: %v", err)
		return
	}
	log.Infof("wrote light overlay to %s", s.path)
}
