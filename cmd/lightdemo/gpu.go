package main

import (
	"encoding/binary"
	"fmt"
	"math"

	"github.com/cogentcore/webgpu/wgpu"
	"github.com/cogentcore/webgpu/wgpuglfw"
	"github.com/gekko3d/mirage/lighting"
	"github.com/gekko3d/mirage/shader/gpu"
	"github.com/gekko3d/mirage/shaders"
	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/go-gl/mathgl/mgl64"
)

// gpuState owns the surface and the floor pipeline. A frame is opened in
// PreRender, the solid layer records into it, and Finale submits it.
type gpuState struct {
	instance *wgpu.Instance
	surface  *wgpu.Surface
	adapter  *wgpu.Adapter
	device   *wgpu.Device
	queue    *wgpu.Queue
	config   *wgpu.SurfaceConfiguration

	pipeline   *wgpu.RenderPipeline
	viewBuffer *wgpu.Buffer
	viewBG     *wgpu.BindGroup
	lightsBG   *wgpu.BindGroup
	lights     *gpu.LightProgram

	texture *wgpu.Texture
	target  *wgpu.TextureView
	encoder *wgpu.CommandEncoder
}

func newGPUState(window *glfw.Window) (*gpuState, error) {
	s := &gpuState{instance: wgpu.CreateInstance(nil)}
	s.surface = s.instance.CreateSurface(wgpuglfw.GetSurfaceDescriptor(window))

	adapter, err := s.instance.RequestAdapter(&wgpu.RequestAdapterOptions{
		CompatibleSurface: s.surface,
		PowerPreference:   wgpu.PowerPreferenceHighPerformance,
	})
	if err != nil {
		return nil, fmt.Errorf("request adapter: %w", err)
	}
	s.adapter = adapter

	s.device, err = adapter.RequestDevice(&wgpu.DeviceDescriptor{Label: "Light Demo Device"})
	if err != nil {
		return nil, fmt.Errorf("request device: %w", err)
	}
	s.queue = s.device.GetQueue()

	width, height := window.GetFramebufferSize()
	caps := s.surface.GetCapabilities(adapter)
	s.config = &wgpu.SurfaceConfiguration{
		Usage:       wgpu.TextureUsageRenderAttachment,
		Format:      caps.Formats[0],
		Width:       uint32(width),
		Height:      uint32(height),
		PresentMode: wgpu.PresentModeFifo,
		AlphaMode:   caps.AlphaModes[0],
	}
	s.surface.Configure(adapter, s.device, s.config)

	if err := s.createPipeline(); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *gpuState) createPipeline() error {
	module, err := s.device.CreateShaderModule(&wgpu.ShaderModuleDescriptor{
		Label:          "Floor VS/FS",
		WGSLDescriptor: &wgpu.ShaderModuleWGSLDescriptor{Code: shaders.FloorSource()},
	})
	if err != nil {
		return fmt.Errorf("floor shader: %w", err)
	}
	defer module.Release()

	s.pipeline, err = s.device.CreateRenderPipeline(&wgpu.RenderPipelineDescriptor{
		Label: "Floor Pipeline",
		Vertex: wgpu.VertexState{
			Module:     module,
			EntryPoint: "vs_main",
		},
		Fragment: &wgpu.FragmentState{
			Module:     module,
			EntryPoint: "fs_main",
			Targets: []wgpu.ColorTargetState{{
				Format:    s.config.Format,
				WriteMask: wgpu.ColorWriteMaskAll,
			}},
		},
		Primitive: wgpu.PrimitiveState{
			Topology: wgpu.PrimitiveTopologyTriangleList,
		},
		Multisample: wgpu.MultisampleState{
			Count: 1,
			Mask:  0xFFFFFFFF,
		},
	})
	if err != nil {
		return fmt.Errorf("floor pipeline: %w", err)
	}

	s.viewBuffer, err = s.device.CreateBuffer(&wgpu.BufferDescriptor{
		Label: "View UB",
		Size:  16,
		Usage: wgpu.BufferUsageUniform | wgpu.BufferUsageCopyDst,
	})
	if err != nil {
		return fmt.Errorf("view buffer: %w", err)
	}
	s.viewBG, err = s.device.CreateBindGroup(&wgpu.BindGroupDescriptor{
		Layout: s.pipeline.GetBindGroupLayout(0),
		Entries: []wgpu.BindGroupEntry{
			{Binding: 0, Buffer: s.viewBuffer, Size: wgpu.WholeSize},
		},
	})
	if err != nil {
		return fmt.Errorf("view bind group: %w", err)
	}

	s.lights, err = gpu.NewLightProgram(s.device, shaders.MaxLights)
	if err != nil {
		return err
	}
	s.lightsBG, err = s.device.CreateBindGroup(&wgpu.BindGroupDescriptor{
		Layout:  s.pipeline.GetBindGroupLayout(1),
		Entries: []wgpu.BindGroupEntry{s.lights.BindGroupEntry(0)},
	})
	if err != nil {
		return fmt.Errorf("lights bind group: %w", err)
	}
	return nil
}

func (s *gpuState) resize(width, height int) {
	if width <= 0 || height <= 0 {
		return
	}
	s.config.Width = uint32(width)
	s.config.Height = uint32(height)
	s.surface.Configure(s.adapter, s.device, s.config)
}

// beginFrame acquires the swapchain texture. It reports false when the
// frame has to be skipped.
func (s *gpuState) beginFrame(center mgl64.Vec3, extent float32) bool {
	texture, err := s.surface.GetCurrentTexture()
	if err != nil {
		return false
	}
	view, err := texture.CreateView(nil)
	if err != nil {
		texture.Release()
		return false
	}
	encoder, err := s.device.CreateCommandEncoder(nil)
	if err != nil {
		view.Release()
		texture.Release()
		return false
	}
	s.texture, s.target, s.encoder = texture, view, encoder

	var buf [16]byte
	binary.LittleEndian.PutUint32(buf[0:], math.Float32bits(float32(center.X())))
	binary.LittleEndian.PutUint32(buf[4:], math.Float32bits(float32(center.Y())))
	binary.LittleEndian.PutUint32(buf[8:], math.Float32bits(float32(center.Z())))
	binary.LittleEndian.PutUint32(buf[12:], math.Float32bits(extent))
	_ = s.queue.WriteBuffer(s.viewBuffer, 0, buf[:])
	return true
}

// drawLayer records the floor for the solid layer. The other layers have
// no geometry in the demo.
func (s *gpuState) drawLayer(layer lighting.BlockLayer) error {
	if s.encoder == nil || layer != lighting.LayerSolid {
		return nil
	}
	pass := s.encoder.BeginRenderPass(&wgpu.RenderPassDescriptor{
		ColorAttachments: []wgpu.RenderPassColorAttachment{{
			View:       s.target,
			LoadOp:     wgpu.LoadOpClear,
			StoreOp:    wgpu.StoreOpStore,
			ClearValue: wgpu.Color{R: 0, G: 0, B: 0, A: 1},
		}},
	})
	pass.SetPipeline(s.pipeline)
	pass.SetBindGroup(0, s.viewBG, nil)
	pass.SetBindGroup(1, s.lightsBG, nil)
	pass.Draw(3, 1, 0, 0)
	return pass.End()
}

func (s *gpuState) endFrame() error {
	if s.encoder == nil {
		return nil
	}
	defer func() {
		s.target.Release()
		s.texture.Release()
		s.encoder.Release()
		s.texture, s.target, s.encoder = nil, nil, nil
	}()

	cmd, err := s.encoder.Finish(nil)
	if err != nil {
		return fmt.Errorf("finish encoder: %w", err)
	}
	defer cmd.Release()
	s.queue.Submit(cmd)
	s.surface.Present()
	return s.lights.Err()
}

func (s *gpuState) release() {
	s.lights.Release()
	s.lightsBG.Release()
	s.viewBG.Release()
	s.viewBuffer.Release()
	s.pipeline.Release()
	s.device.Release()
	s.adapter.Release()
	s.surface.Release()
	s.instance.Release()
}
