// Package gpu backs the light uniform block with a wgpu buffer. It is kept
// apart from package shader so headless code never links the native driver.
package gpu

import (
	"fmt"

	"github.com/cogentcore/webgpu/wgpu"
	"github.com/gekko3d/mirage/shader"
)

// LightProgram keeps the light block in a wgpu uniform buffer. Uniform writes
// land in the CPU-side Block; Unbind (or Flush) sends the dirty range.
type LightProgram struct {
	*shader.Block

	Buffer *wgpu.Buffer
	queue  *wgpu.Queue
	bound  bool
	err    error
}

// NewLightProgram allocates a uniform buffer sized for capacity lights.
func NewLightProgram(device *wgpu.Device, capacity int) (*LightProgram, error) {
	block := shader.NewBlock(capacity)
	buf, err := device.CreateBuffer(&wgpu.BufferDescriptor{
		Label:            "LightsUB",
		Size:             uint64(block.Size()),
		Usage:            wgpu.BufferUsageUniform | wgpu.BufferUsageCopyDst,
		MappedAtCreation: false,
	})
	if err != nil {
		return nil, fmt.Errorf("create light uniform buffer: %w", err)
	}
	p := &LightProgram{
		Block:  block,
		Buffer: buf,
		queue:  device.GetQueue(),
	}
	// Zeroed block so lightCount starts at 0 on the GPU.
	if err := p.queue.WriteBuffer(p.Buffer, 0, block.Bytes()); err != nil {
		buf.Release()
		return nil, fmt.Errorf("clear light uniform buffer: %w", err)
	}
	p.MarkClean()
	return p, nil
}

// BindGroupEntry exposes the buffer at binding for a bind group layout that
// declares the light block.
func (p *LightProgram) BindGroupEntry(binding uint32) wgpu.BindGroupEntry {
	return wgpu.BindGroupEntry{Binding: binding, Buffer: p.Buffer, Size: wgpu.WholeSize}
}

func (p *LightProgram) Bind() {
	p.bound = true
}

// Unbind flushes the block. A failed flush is kept for Err and retried on
// the next Unbind.
func (p *LightProgram) Unbind() {
	p.err = p.Flush()
	p.bound = false
}

func (p *LightProgram) Bound() bool {
	return p.bound
}

// Err is the error of the last flush done by Unbind.
func (p *LightProgram) Err() error {
	return p.err
}

// Flush writes the dirty part of the block to the GPU buffer.
func (p *LightProgram) Flush() error {
	lo, hi, ok := p.Dirty()
	if !ok {
		return nil
	}
	if err := p.queue.WriteBuffer(p.Buffer, uint64(lo), p.Bytes()[lo:hi]); err != nil {
		return fmt.Errorf("flush lights [%d:%d]: %w", lo, hi, err)
	}
	p.MarkClean()
	return nil
}

func (p *LightProgram) Release() {
	if p.Buffer != nil {
		p.Buffer.Release()
		p.Buffer = nil
	}
}
