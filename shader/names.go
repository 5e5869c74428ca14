// Package shader binds the light array of the block-layer shader: the uniform
// naming convention, an in-memory program for tests and tooling, and the
// std140 uniform block layout. Package shader/gpu uploads the block to wgpu.
package shader

import (
	"strconv"
	"sync"
)

// LightCount is the uniform holding the number of valid array entries.
const LightCount = "lightCount"

// LightField selects one member of a lights[i] struct.
type LightField int

const (
	FieldPosition LightField = iota
	FieldColor
	FieldConeDirection
	FieldConeFalloff
	FieldIntensity
	numLightFields
)

var fieldNames = [numLightFields]string{
	FieldPosition:      "position",
	FieldColor:         "color",
	FieldConeDirection: "coneDirection",
	FieldConeFalloff:   "coneFalloff",
	FieldIntensity:     "intensity",
}

func (f LightField) String() string {
	if f < 0 || f >= numLightFields {
		return "LightField(" + strconv.Itoa(int(f)) + ")"
	}
	return fieldNames[f]
}

// nameCache holds preformatted "lights[i].field" names so the per-frame
// upload does not format strings.
var (
	nameMu    sync.Mutex
	nameCache [][numLightFields]string
)

// LightUniform returns the uniform name of field in array slot i,
// e.g. "lights[3].coneFalloff".
func LightUniform(i int, f LightField) string {
	if i < 0 || f < 0 || f >= numLightFields {
		return ""
	}
	nameMu.Lock()
	defer nameMu.Unlock()
	for len(nameCache) <= i {
		n := len(nameCache)
		var names [numLightFields]string
		prefix := "lights[" + strconv.Itoa(n) + "]."
		for field, suffix := range fieldNames {
			names[field] = prefix + suffix
		}
		nameCache = append(nameCache, names)
	}
	return nameCache[i][f]
}

// ParseLightUniform is the inverse of LightUniform.
func ParseLightUniform(name string) (int, LightField, bool) {
	const open = "lights["
	if len(name) <= len(open) || name[:len(open)] != open {
		return 0, 0, false
	}
	rest := name[len(open):]
	end := 0
	for end < len(rest) && rest[end] >= '0' && rest[end] <= '9' {
		end++
	}
	if end == 0 || end+2 > len(rest) || rest[end] != ']' || rest[end+1] != '.' {
		return 0, 0, false
	}
	idx, err := strconv.Atoi(rest[:end])
	if err != nil {
		return 0, 0, false
	}
	suffix := rest[end+2:]
	for field, fname := range fieldNames {
		if fname == suffix {
			return idx, LightField(field), true
		}
	}
	return 0, 0, false
}
