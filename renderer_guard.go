package mirage

import (
	"fmt"
	"reflect"
)

// LightShaderTag marks that a light shader has been hooked into the block
// renderer. Only one may be installed per App.
type LightShaderTag struct {
	Name string
}

// ensureSingleLightShader enforces the single light shader invariant. It
// reports whether a shader of the same name was already installed; a
// different name panics.
func ensureSingleLightShader(app *App, name string) bool {
	if app == nil {
		panic("ensureSingleLightShader: app is nil")
	}
	t := reflect.TypeOf((*LightShaderTag)(nil)).Elem()
	if res, ok := app.resources[t]; ok {
		if tag, ok2 := res.(*LightShaderTag); ok2 {
			if tag.Name != name {
				app.Logger().Errorf("Multiple light shaders installed: %s and %s", tag.Name, name)
				panic(fmt.Sprintf("Multiple light shaders installed: %s and %s", tag.Name, name))
			}
			return true
		}
		panic("LightShaderTag resource present with unexpected type")
	}
	app.addResources(&LightShaderTag{Name: name})
	return false
}
