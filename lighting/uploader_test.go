package lighting

import (
	"math/rand"
	"sort"
	"testing"

	"github.com/gekko3d/mirage/shader"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func scannedFrame(t *testing.T, cfg Config, positions ...mgl64.Vec3) *Frame {
	t.Helper()
	world := originWorld()
	for _, p := range positions {
		world.blocks = append(world.blocks, fakeBlock{em: Single(NewPointLight(p, white(), 1, 1))})
	}
	frame := NewFrame()
	_, err := NewScanner(cfg).Scan(frame, world)
	require.NoError(t, err)
	return frame
}

func TestUpload_NearestPrefix(t *testing.T) {
	cfg := testConfig(100, 2, 0)
	frame := scannedFrame(t, cfg,
		mgl64.Vec3{2, 0, 0}, // distSq 4
		mgl64.Vec3{0, 1, 0}, // distSq 1
		mgl64.Vec3{0, 0, 3}, // distSq 9
	)

	prog := newProgram()
	stats, err := NewUploader(cfg).Upload(frame, prog)
	require.NoError(t, err)

	assert.Equal(t, UploadStats{Count: 2, Written: true}, stats)
	assert.Equal(t, int32(2), prog.Int("lightCount"))
	assert.Equal(t, [4]float32{0, 1, 0, 0}, prog.mustGet(t, "lights[0].position").V)
	assert.Equal(t, [4]float32{2, 0, 0, 0}, prog.mustGet(t, "lights[1].position").V)
	_, ok := prog.Get("lights[2].position")
	assert.False(t, ok, "farthest light is dropped")
}

func TestUpload_CountClampedToWrittenSlots(t *testing.T) {
	cfg := testConfig(100, 0, 0)
	frame := scannedFrame(t, cfg, mgl64.Vec3{1, 0, 0}, mgl64.Vec3{0, 2, 0})
	require.Len(t, frame.Lights(), 2)

	prog := newProgram()
	stats, err := NewUploader(cfg).Upload(frame, prog)
	require.NoError(t, err)
	assert.Equal(t, 0, stats.Count)
	assert.Equal(t, int32(0), prog.Int("lightCount"))
	_, ok := prog.Get("lights[0].position")
	assert.False(t, ok)
}

func TestUpload_WritesEveryField(t *testing.T) {
	cfg := testConfig(100, 4, 0)
	frame := NewFrame()
	world := originWorld()
	spot := NewSpotLight(mgl64.Vec3{1, 2, 3}, mgl64.Vec3{0, -2, 0}, [4]float32{0.1, 0.2, 0.3, 0.4}, 0.5, 6, 7)
	world.blocks = []BlockEntity{fakeBlock{em: Single(spot)}}
	_, err := NewScanner(cfg).Scan(frame, world)
	require.NoError(t, err)

	prog := newProgram()
	_, err = NewUploader(cfg).Upload(frame, prog)
	require.NoError(t, err)

	assert.Equal(t, [4]float32{1, 2, 3, 0}, prog.mustGet(t, "lights[0].position").V)
	assert.Equal(t, [4]float32{0.1, 0.2, 0.3, 0.4}, prog.mustGet(t, "lights[0].color").V)
	assert.Equal(t, [4]float32{0, -1, 0, 0}, prog.mustGet(t, "lights[0].coneDirection").V)
	assert.Equal(t, float32(0.5), prog.mustGet(t, "lights[0].coneFalloff").V[0])
	assert.Equal(t, float32(7), prog.mustGet(t, "lights[0].intensity").V[0])
}

func TestUpload_Throttle(t *testing.T) {
	const frameSkip = 2
	cfg := testConfig(100, 4, frameSkip)
	scanner := NewScanner(cfg)
	uploader := NewUploader(cfg)
	world := originWorld()
	world.blocks = []BlockEntity{fakeBlock{em: Single(NewPointLight(mgl64.Vec3{1, 0, 0}, white(), 1, 1))}}

	frame := NewFrame()
	prog := newProgram()
	var written []int
	for i := 1; i <= 3*(frameSkip+1); i++ {
		_, err := scanner.Scan(frame, world)
		require.NoError(t, err)
		prog.ResetWrites()
		stats, err := uploader.Upload(frame, prog)
		require.NoError(t, err)
		if stats.Written {
			written = append(written, i)
			assert.Equal(t, 1+5, prog.Writes())
		} else {
			assert.Equal(t, 1, prog.Writes(), "only lightCount on throttled frames")
		}
		frame.Clear()
	}
	assert.Equal(t, []int{3, 6, 9}, written)
}

func TestUpload_ThrottleKeepsStaleArraysButFreshCount(t *testing.T) {
	cfg := testConfig(100, 4, 1)
	scanner := NewScanner(cfg)
	uploader := NewUploader(cfg)
	prog := newProgram()

	// Warm up so the next upload is a throttled one right after a full write.
	frame := scannedFrame(t, cfg, mgl64.Vec3{1, 0, 0}, mgl64.Vec3{2, 0, 0})
	_, err := uploader.Upload(frame, prog)
	require.NoError(t, err)
	stats, err := uploader.Upload(frame, prog)
	require.NoError(t, err)
	require.True(t, stats.Written)
	frame.Clear()

	world := originWorld()
	world.blocks = []BlockEntity{fakeBlock{em: Single(NewPointLight(mgl64.Vec3{0, 0, 1}, white(), 1, 1))}}
	_, err = scanner.Scan(frame, world)
	require.NoError(t, err)
	stats, err = uploader.Upload(frame, prog)
	require.NoError(t, err)

	assert.False(t, stats.Written)
	assert.Equal(t, int32(1), prog.Int("lightCount"))
	assert.Equal(t, [4]float32{1, 0, 0, 0}, prog.mustGet(t, "lights[0].position").V)
}

func TestUpload_TwiceInOneFrame(t *testing.T) {
	cfg := testConfig(100, 2, 0)
	frame := scannedFrame(t, cfg, mgl64.Vec3{3, 0, 0}, mgl64.Vec3{1, 0, 0}, mgl64.Vec3{2, 0, 0})
	uploader := NewUploader(cfg)

	first := newProgram()
	_, err := uploader.Upload(frame, first)
	require.NoError(t, err)
	second := newProgram()
	_, err = uploader.Upload(frame, second)
	require.NoError(t, err)

	assert.Equal(t, first.Names(), second.Names())
	for _, name := range first.Names() {
		assert.Equal(t, first.mustGet(t, name), second.mustGet(t, name), name)
	}
}

func TestUpload_RequiresScan(t *testing.T) {
	_, err := NewUploader(DefaultConfig()).Upload(NewFrame(), newProgram())
	assert.ErrorIs(t, err, ErrNotScanned)
}

func TestUpload_ZeroMaxLights(t *testing.T) {
	cfg := testConfig(100, 0, 0)
	frame := scannedFrame(t, cfg, mgl64.Vec3{1, 0, 0})
	prog := newProgram()

	stats, err := NewUploader(cfg).Upload(frame, prog)
	require.NoError(t, err)
	assert.Equal(t, 0, stats.Count)
	assert.Equal(t, []string{"lightCount"}, prog.Names())
}

func TestUpload_PrefixIsClosestAccepted(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	for round := 0; round < 50; round++ {
		cfg := testConfig(float64(rng.Intn(200)), 1+rng.Intn(8), 0)

		var positions []mgl64.Vec3
		for i := 0; i < rng.Intn(30); i++ {
			positions = append(positions, mgl64.Vec3{
				float64(rng.Intn(41) - 20),
				float64(rng.Intn(41) - 20),
				float64(rng.Intn(41) - 20),
			})
		}

		var want []float64
		for _, p := range positions {
			if d := p.Dot(p); d <= 1+cfg.MaxDistance {
				want = append(want, d)
			}
		}
		sort.Float64s(want)
		if len(want) > cfg.MaxLights {
			want = want[:cfg.MaxLights]
		}

		frame := scannedFrame(t, cfg, positions...)
		prog := newProgram()
		stats, err := NewUploader(cfg).Upload(frame, prog)
		require.NoError(t, err)
		require.Equal(t, len(want), stats.Count)

		for i, d := range want {
			v := prog.mustGet(t, shader.LightUniform(i, shader.FieldPosition)).V
			p := mgl64.Vec3{float64(v[0]), float64(v[1]), float64(v[2])}
			assert.Equal(t, d, p.Dot(p), "round %d slot %d", round, i)
		}
	}
}
