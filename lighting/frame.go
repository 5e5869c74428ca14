package lighting

type framePhase int

const (
	phaseIdle framePhase = iota
	phaseScanned
)

// Frame carries everything the pipeline mutates during one rendered frame:
// the registry, the camera snapshot and the upload throttle. Callers scan,
// upload and Clear it in that order.
type Frame struct {
	registry *Registry
	camera   *CameraSnapshot
	origin   *CameraSnapshot // position kept for ranking after the frustum is released
	throttle int
	phase    framePhase
}

func NewFrame() *Frame {
	return &Frame{registry: NewRegistry(64)}
}

// Lights returns the frame's lights in registry order.
func (f *Frame) Lights() []Light {
	return f.registry.Snapshot()
}

func (f *Frame) Registry() *Registry {
	return f.registry
}

// Camera returns the active camera snapshot, nil outside a scan.
func (f *Frame) Camera() *CameraSnapshot {
	return f.camera
}

// Origin is the camera position the frame was ranked against, if any.
func (f *Frame) Origin() (CameraSnapshot, bool) {
	if f.origin == nil {
		return CameraSnapshot{}, false
	}
	return *f.origin, true
}

func (f *Frame) Scanned() bool {
	return f.phase == phaseScanned
}

// ThrottleCounter exposes the upload throttle for diagnostics.
func (f *Frame) ThrottleCounter() int {
	return f.throttle
}

// Clear ends the frame. The throttle counter spans frames and is kept.
func (f *Frame) Clear() {
	f.registry.Clear()
	f.camera = nil
	f.origin = nil
	f.phase = phaseIdle
}
