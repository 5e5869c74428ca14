package lighting

import (
	"cmp"
	"slices"

	"github.com/go-gl/mathgl/mgl64"
)

// RankByDistance sorts lights nearest-first by squared distance to origin.
// Lights at equal distance end up in no particular order.
func RankByDistance(lights []Light, origin mgl64.Vec3) {
	slices.SortFunc(lights, func(a, b Light) int {
		return cmp.Compare(a.DistanceSq(origin), b.DistanceSq(origin))
	})
}
