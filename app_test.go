package mirage

import (
	"fmt"
	"reflect"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type MockResource1 struct {
	name string
}
type MockResource2 struct {
	name string
}

func NewMockResource1(name string) *MockResource1 {
	return &MockResource1{name: name}
}
func NewMockResource2(name string) *MockResource2 {
	return &MockResource2{name: name}
}

func TestApp_addResources(t *testing.T) {
	app := &App{
		resources: make(map[reflect.Type]any),
	}

	resource1 := NewMockResource1("Resource1")
	app.addResources(resource1)
	assert.Contains(t, app.resources, reflect.TypeOf(resource1).Elem(), "Resource1 should be in resources map.")

	require.PanicsWithValue(t, fmt.Sprintf("%s is already in resources", reflect.TypeOf(resource1)), func() {
		app.addResources(resource1)
	})

	resource2 := NewMockResource2("Resource2")
	app.addResources(resource2)
	assert.Contains(t, app.resources, reflect.TypeOf(resource2).Elem(), "Resource2 should be in resources map.")

	assert.Same(t, resource2, Resource[MockResource2](app))
	assert.Panics(t, func() { app.addResources(MockResource1{}) }, "resources must be pointers")
}

func TestApp_StepRunsStagesInOrder(t *testing.T) {
	app := NewAppBuilder().Build()
	app.addResources(NewMockResource1("log"))

	var order []string
	record := func(name string) func(*MockResource1, *Commands) {
		return func(r *MockResource1, cmd *Commands) {
			require.NotNil(t, cmd)
			order = append(order, r.name+":"+name)
		}
	}
	app.UseSystem(System(record("render")).InStage(Render))
	app.UseSystem(System(record("prelude")).InStage(Prelude))
	app.UseSystem(System(record("update")))

	custom := Stage{Name: "Lights"}
	app.UseStage(custom, BeforeStage(Render))
	app.UseSystem(System(record("lights")).InStage(custom))

	app.Step()
	assert.Equal(t, []string{"log:prelude", "log:update", "log:lights", "log:render"}, order)
	assert.Equal(t, uint64(1), app.Frames())
}

func TestApp_Run(t *testing.T) {
	app := NewAppBuilder().Build()
	calls := 0
	app.UseSystem(System(func() { calls++ }))

	app.Run(func() bool { return calls >= 3 })
	assert.Equal(t, 3, calls)
}

func TestApp_UnresolvedDependencyPanics(t *testing.T) {
	app := NewAppBuilder().Build()
	app.UseSystem(System(func(*MockResource2) {}))
	assert.Panics(t, app.Step)
}

func TestApp_UnknownStagePanics(t *testing.T) {
	app := NewAppBuilder().Build()
	require.PanicsWithValue(t, "Stage Nope doesn't exist", func() {
		app.UseSystem(System(func() {}).InStage(Stage{Name: "Nope"}))
	})
	require.PanicsWithValue(t, "Stage Nope not found", func() {
		app.UseStage(Stage{Name: "Other"}, AfterStage(Stage{Name: "Nope"}))
	})
}
