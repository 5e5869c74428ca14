package debugviz

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"testing"

	"github.com/gekko3d/mirage/lighting"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOverlay_Project(t *testing.T) {
	o := NewOverlay(100, 50, 4)
	origin := mgl64.Vec3{10, 3, 10}

	assert.Equal(t, image.Pt(50, 50), o.Project(origin, origin))
	assert.Equal(t, image.Pt(60, 50), o.Project(mgl64.Vec3{15, 0, 10}, origin))
	assert.Equal(t, image.Pt(50, 30), o.Project(mgl64.Vec3{10, 99, 0}, origin))
}

func TestOverlay_Render(t *testing.T) {
	o := NewOverlay(128, 64, 1)
	red := lighting.NewPointLight(mgl64.Vec3{-16, 0, 0}, [4]float32{1, 0, 0, 1}, 16, 1)
	blue := lighting.NewPointLight(mgl64.Vec3{16, 0, 0}, [4]float32{0, 0, 1, 1}, 16, 1)

	img := o.Render([]lighting.Light{red, blue}, mgl64.Vec3{})
	assert.Equal(t, image.Rect(0, 0, 128, 128), img.Bounds())

	// Ranked first and uploaded.
	assert.Equal(t, color.RGBA{255, 0, 0, 255}, img.RGBAAt(32, 64))
	// Past MaxLights.
	assert.Equal(t, culledTint, img.RGBAAt(96, 64))
	assert.Equal(t, cameraMark, img.RGBAAt(64, 64))
	assert.Equal(t, background, img.RGBAAt(127, 127))
}

func TestOverlay_WritePNG(t *testing.T) {
	o := NewOverlay(32, 16, 8)
	var buf bytes.Buffer
	require.NoError(t, o.WritePNG(&buf, nil, mgl64.Vec3{}))

	img, err := png.Decode(&buf)
	require.NoError(t, err)
	assert.Equal(t, 32, img.Bounds().Dx())
}
