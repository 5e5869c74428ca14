package lighting

import "github.com/gekko3d/mirage/shader"

// Program is a bound shader program that takes uniform writes by name.
type Program interface {
	SetInt(name string, v int32)
	SetFloat(name string, v float32)
	SetFloat3(name string, x, y, z float32)
	SetFloat4(name string, x, y, z, w float32)
}

// UploadStats describes one Upload call.
type UploadStats struct {
	Count   int  // value written to lightCount
	Written bool // per-light arrays were refreshed
}

// Uploader copies the nearest lights of a frame into a shader program.
type Uploader struct {
	cfg Config
}

func NewUploader(cfg Config) *Uploader {
	return &Uploader{cfg: cfg}
}

// Upload writes lightCount every call. The per-light arrays are refreshed
// only once every FrameSkip+1 calls; in between the GPU keeps the previous
// values while lightCount may already describe the new set. Lights past
// MaxLights are dropped, and ranking guarantees those are the farthest.
func (u *Uploader) Upload(frame *Frame, prog Program) (UploadStats, error) {
	if !frame.Scanned() {
		return UploadStats{}, ErrNotScanned
	}
	lights := frame.Lights()
	// lightCount is clamped to the prefix actually written, never the number
	// of accepted lights, so the shader cannot index past the last slot.
	n := min(max(u.cfg.MaxLights, 0), len(lights))

	prog.SetInt(shader.LightCount, int32(n))
	stats := UploadStats{Count: n}

	frame.throttle++
	if frame.throttle < u.cfg.FrameSkip+1 {
		return stats, nil
	}
	frame.throttle = 0

	for i := 0; i < n; i++ {
		l := &lights[i]
		prog.SetFloat3(shader.LightUniform(i, shader.FieldPosition), l.X, l.Y, l.Z)
		prog.SetFloat4(shader.LightUniform(i, shader.FieldColor), l.R, l.G, l.B, l.A)
		prog.SetFloat3(shader.LightUniform(i, shader.FieldConeDirection), l.SX, l.SY, l.SZ)
		prog.SetFloat(shader.LightUniform(i, shader.FieldConeFalloff), l.SF)
		prog.SetFloat(shader.LightUniform(i, shader.FieldIntensity), l.L)
	}
	stats.Written = true
	return stats, nil
}
