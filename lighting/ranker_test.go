package lighting

import (
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/stretchr/testify/assert"
)

func TestRankByDistance(t *testing.T) {
	origin := mgl64.Vec3{5, 5, 5}
	lights := []Light{
		NewPointLight(origin.Add(mgl64.Vec3{2, 0, 0}), white(), 1, 1),
		NewPointLight(origin.Add(mgl64.Vec3{0, 1, 0}), white(), 1, 1),
		NewPointLight(origin.Add(mgl64.Vec3{0, 0, -3}), white(), 1, 1),
	}

	RankByDistance(lights, origin)

	assert.InDelta(t, 1.0, lights[0].DistanceSq(origin), 1e-6)
	assert.InDelta(t, 4.0, lights[1].DistanceSq(origin), 1e-6)
	assert.InDelta(t, 9.0, lights[2].DistanceSq(origin), 1e-6)
}

func TestRegistry_KeepsDuplicatesAndCopies(t *testing.T) {
	r := NewRegistry(0)
	l := NewPointLight(mgl64.Vec3{1, 2, 3}, white(), 1, 1)

	r.Append(l)
	r.Append(l)
	l.X = 99

	assert.Equal(t, 2, r.Len())
	assert.Equal(t, float32(1), r.Snapshot()[0].X, "registry holds copies")

	r.Clear()
	assert.Equal(t, 0, r.Len())
}
