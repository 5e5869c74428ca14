package lighting

// EmissionKind tags which light capability a scene object exposes.
type EmissionKind uint8

const (
	EmitNone EmissionKind = iota
	// EmitSingle objects hand back one colored light.
	EmitSingle
	// EmitMulti objects submit any number of lights themselves.
	EmitMulti
)

func (k EmissionKind) String() string {
	switch k {
	case EmitSingle:
		return "single"
	case EmitMulti:
		return "multi"
	default:
		return "none"
	}
}

// GatherFunc submits lights on behalf of a scene object. owner is the entity
// the object belongs to, or nil for block entities.
type GatherFunc func(ctx *GatherContext, owner Entity)

// Emission is the light capability of a scene object for the current frame.
// Exactly one variant is active, so a multi-light emitter always wins over a
// single light.
type Emission struct {
	kind   EmissionKind
	light  Light
	gather GatherFunc
}

// Emitter is implemented by every scene object the scanner visits.
type Emitter interface {
	Emission() Emission
}

func NoLight() Emission {
	return Emission{}
}

func Single(l Light) Emission {
	return Emission{kind: EmitSingle, light: l}
}

// SingleRef is Single for emitters that keep a light they may not have yet.
func SingleRef(l *Light) Emission {
	if l == nil {
		return NoLight()
	}
	return Single(*l)
}

func Multi(fn GatherFunc) Emission {
	if fn == nil {
		return NoLight()
	}
	return Emission{kind: EmitMulti, gather: fn}
}

func (e Emission) Kind() EmissionKind {
	return e.kind
}

// Light returns the single light, if this is a single emission.
func (e Emission) Light() (Light, bool) {
	return e.light, e.kind == EmitSingle
}
