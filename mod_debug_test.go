package probe

import (
	"reflect"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDebugTogglesDecode(t *testing.T) {
	input := &Input{}

	// No modifier: letters do nothing.
	input.JustPressed[KeyS] = true
	stats, physics, panel := debugToggles(input)
	if stats || physics || panel {
		t.Errorf("letter without modifier should not toggle")
	}

	input.Pressed[KeyControl] = true
	stats, physics, panel = debugToggles(input)
	assert.True(t, stats)
	assert.False(t, physics)
	assert.False(t, panel)

	// Held key is not a press edge.
	input.JustPressed[KeyS] = false
	input.Pressed[KeyS] = true
	stats, _, _ = debugToggles(input)
	assert.False(t, stats)

	input.JustPressed[KeyP] = true
	input.JustPressed[KeyG] = true
	_, physics, panel = debugToggles(input)
	assert.True(t, physics)
	assert.True(t, panel)
}

func TestDebugHotkeySystem(t *testing.T) {
	scene := NewScene()
	world := NewPhysicsWorld()
	debug := NewDebug(scene, scene, world, DebugConfig{Enabled: true})

	input := &Input{}
	input.Pressed[KeyControl] = true
	input.JustPressed[KeyP] = true

	debugHotkeySystem(input, debug.Modes(), debug.State())
	assert.True(t, debug.State().PhysicsDebugEnabled)

	// Same snapshot again flips it back.
	debugHotkeySystem(input, debug.Modes(), debug.State())
	assert.False(t, debug.State().PhysicsDebugEnabled)
}

func TestDebugHotkeySystemMasterOff(t *testing.T) {
	scene := NewScene()
	world := NewPhysicsWorld()
	debug := NewDebug(scene, scene, world, DebugConfig{Enabled: false})

	input := &Input{}
	input.Pressed[KeyControl] = true
	input.JustPressed[KeyS] = true
	input.JustPressed[KeyP] = true
	input.JustPressed[KeyG] = true

	debugHotkeySystem(input, debug.Modes(), debug.State())

	state := debug.State()
	if state.StatsEnabled || state.PhysicsDebugEnabled || state.PanelEnabled {
		t.Errorf("hotkeys must be ignored while master is off: %+v", state)
	}
}

func TestDebugModuleInstallAndStep(t *testing.T) {
	scene := NewScene()
	world := NewPhysicsWorld()
	world.AddBody(0, []ShapeDescriptor{SphereShape(1)}, mgl32.Vec3{}, mgl32.QuatIdent())

	app := NewApp()
	app.UseModules(DebugModule{
		Enabled:  true,
		Scene:    scene,
		Settings: scene,
		Physics:  world,
	})

	debug, ok := app.resources[reflect.TypeOf(Debug{})].(*Debug)
	require.True(t, ok)

	debug.SetStats(true)
	debug.SetPhysicsDebug(true)

	app.Step()

	assert.Equal(t, 1, debug.Stats().SampleCount())
	assert.Len(t, scene.Children(debug.Visualizer().Group()), 1)
}
