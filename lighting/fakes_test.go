package lighting

import (
	"testing"

	"github.com/gekko3d/mirage/shader"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/go-gl/mathgl/mgl64"
)

type fakeView struct {
	prev, pos mgl64.Vec3
	vp        *mgl32.Mat4
}

func (v *fakeView) PrevPosition() mgl64.Vec3 { return v.prev }
func (v *fakeView) Position() mgl64.Vec3     { return v.pos }
func (v *fakeView) ViewProjection() (mgl32.Mat4, bool) {
	if v.vp == nil {
		return mgl32.Mat4{}, false
	}
	return *v.vp, true
}

type fakeWorld struct {
	view     *fakeView
	partial  float64
	entities []Entity
	blocks   []BlockEntity
}

func (w *fakeWorld) RenderView() (RenderView, bool) {
	if w.view == nil {
		return nil, false
	}
	return w.view, true
}
func (w *fakeWorld) PartialTick() float64         { return w.partial }
func (w *fakeWorld) Entities() []Entity           { return w.entities }
func (w *fakeWorld) BlockEntities() []BlockEntity { return w.blocks }

type fakeItem struct {
	em Emission
}

func (i fakeItem) Emission() Emission { return i.em }

type fakeEntity struct {
	pos   mgl64.Vec3
	em    Emission
	held  []Item
	armor []Item
}

func (e *fakeEntity) Emission() Emission   { return e.em }
func (e *fakeEntity) Position() mgl64.Vec3 { return e.pos }
func (e *fakeEntity) HeldItems() []Item    { return e.held }
func (e *fakeEntity) ArmorItems() []Item   { return e.armor }

type fakeDrop struct {
	fakeEntity
	stack Item
}

func (d *fakeDrop) Stack() Item { return d.stack }

type fakeBlock struct {
	em Emission
}

func (b fakeBlock) Emission() Emission { return b.em }

type panicEmitter struct{}

func (panicEmitter) Emission() Emission { panic("broken emitter") }

type recordingLogger struct {
	warnings []string
}

func (l *recordingLogger) Debugf(format string, args ...any) {}
func (l *recordingLogger) Warnf(format string, args ...any) {
	l.warnings = append(l.warnings, format)
}

func originWorld() *fakeWorld {
	return &fakeWorld{view: &fakeView{}}
}

func testConfig(maxDistance float64, maxLights, frameSkip int) Config {
	return Config{Enabled: true, MaxDistance: maxDistance, MaxLights: maxLights, FrameSkip: frameSkip}
}

func white() [4]float32 {
	return [4]float32{1, 1, 1, 1}
}

type testProgram struct {
	*shader.Recorder
}

func newProgram() *testProgram {
	return &testProgram{Recorder: shader.NewRecorder()}
}

func (p *testProgram) mustGet(t *testing.T, name string) shader.Value {
	t.Helper()
	v, ok := p.Get(name)
	if !ok {
		t.Fatalf("uniform %s was not set", name)
	}
	return v
}
