package shader

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLightUniform(t *testing.T) {
	assert.Equal(t, "lights[0].position", LightUniform(0, FieldPosition))
	assert.Equal(t, "lights[3].coneFalloff", LightUniform(3, FieldConeFalloff))
	assert.Equal(t, "lights[12].intensity", LightUniform(12, FieldIntensity))
	assert.Empty(t, LightUniform(-1, FieldColor))
	assert.Empty(t, LightUniform(0, LightField(9)))
	assert.Equal(t, "LightField(9)", LightField(9).String())
}

func TestParseLightUniform(t *testing.T) {
	for i := 0; i < 20; i++ {
		for f := FieldPosition; f < numLightFields; f++ {
			idx, field, ok := ParseLightUniform(LightUniform(i, f))
			assert.True(t, ok)
			assert.Equal(t, i, idx)
			assert.Equal(t, f, field)
		}
	}

	for _, name := range []string{
		"",
		LightCount,
		"lights[",
		"lights[].color",
		"lights[1]color",
		"lights[1].",
		"lights[1].radius",
		"lights[x].color",
		"light[1].color",
	} {
		_, _, ok := ParseLightUniform(name)
		assert.False(t, ok, name)
	}
}
