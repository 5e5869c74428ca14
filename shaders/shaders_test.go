package shaders

import (
	"fmt"
	"strings"
	"testing"

	"github.com/gekko3d/mirage/shader"
	"github.com/stretchr/testify/assert"
)

func TestLightsWGSL_MatchesUniformNames(t *testing.T) {
	assert.Contains(t, LightsWGSL, shader.LightCount+": i32")
	for f := shader.FieldPosition; f <= shader.FieldIntensity; f++ {
		assert.Contains(t, LightsWGSL, "    "+f.String()+":", "field %s missing from Light", f)
	}
	assert.Contains(t, LightsWGSL, fmt.Sprintf("const MAX_LIGHTS: u32 = %du;", MaxLights))
}

func TestFloorSource(t *testing.T) {
	src := FloorSource()
	assert.True(t, strings.HasPrefix(src, LightsWGSL))
	assert.Contains(t, src, "fn fs_main")
	assert.Contains(t, src, "dynamic_lights(")
}
