package shaders

import (
	_ "embed"
)

// MaxLights is the array size of LightBlock in LightsWGSL. Uniform buffers
// bound to it must hold at least shader.BlockSize(MaxLights) bytes.
const MaxLights = 64

// LightsWGSL declares the Light struct, the LightBlock uniform at
// group 1 binding 0 and the dynamic_lights helper.
//
//go:embed lights.wgsl
var LightsWGSL string

//go:embed floor.wgsl
var FloorWGSL string

// FloorSource is the complete floor shader module.
func FloorSource() string {
	return LightsWGSL + "\n" + FloorWGSL
}
