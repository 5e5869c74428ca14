package shader

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRecorder(t *testing.T) {
	r := NewRecorder()
	assert.False(t, r.Bound())

	r.Bind()
	r.SetInt(LightCount, 3)
	r.SetFloat3(LightUniform(0, FieldPosition), 1, 2, 3)
	r.SetFloat(LightUniform(0, FieldIntensity), 0.5)
	assert.True(t, r.Bound())
	r.Unbind()
	assert.False(t, r.Bound())

	assert.Equal(t, int32(3), r.Int(LightCount))
	v, ok := r.Get(LightUniform(0, FieldPosition))
	assert.True(t, ok)
	assert.Equal(t, Value{V: [4]float32{1, 2, 3}, N: 3}, v)

	_, ok = r.Get(LightUniform(1, FieldPosition))
	assert.False(t, ok)

	assert.Equal(t, 3, r.Writes())
	r.ResetWrites()
	assert.Equal(t, 0, r.Writes())

	assert.Equal(t, []string{LightCount, "lights[0].intensity", "lights[0].position"}, r.Names())
}
