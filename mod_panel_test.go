package probe

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestPanel(t *testing.T) (*Scene, *PhysicsWorld, *Panel) {
	t.Helper()
	scene := NewScene()
	world := NewPhysicsWorld()
	panel := NewPanel("debug")
	panel.Bind(StandardBindings(scene, world)...)
	return scene, world, panel
}

func TestPanelRows(t *testing.T) {
	_, _, panel := newTestPanel(t)

	rows := panel.Rows()
	require.Len(t, rows, 5)
	assert.Equal(t, "clear color", rows[0][0])
	assert.Equal(t, "0 0 0", rows[0][1])
}

func TestPanelClearColorBinding(t *testing.T) {
	scene, _, panel := newTestPanel(t)

	require.NoError(t, panel.Set("clear color", "0.1 0.2 0.3"))
	assert.Equal(t, [3]float32{0.1, 0.2, 0.3}, scene.ClearColor())

	// Collaborator rejection surfaces synchronously through Set.
	err := panel.Set("clear color", "2 0 0")
	assert.Error(t, err)
	assert.Equal(t, [3]float32{0.1, 0.2, 0.3}, scene.ClearColor())

	assert.Error(t, panel.Set("clear color", "garbage"))
}

func TestPanelShadowsBinding(t *testing.T) {
	scene, _, panel := newTestPanel(t)

	require.NoError(t, panel.Set("shadows", "true"))
	assert.True(t, scene.ShadowsEnabled())

	require.NoError(t, panel.Set("shadows", "false"))
	assert.False(t, scene.ShadowsEnabled())
}

func TestPanelFOVBindingRequestsProjectionRecompute(t *testing.T) {
	scene, _, panel := newTestPanel(t)
	scene.ConsumeProjectionDirty()

	require.NoError(t, panel.Set("camera fov", "75"))

	assert.Equal(t, float32(75), scene.CameraFOV())
	assert.True(t, scene.ConsumeProjectionDirty())
	assert.False(t, scene.ConsumeProjectionDirty())
}

func TestPanelCameraPositionBinding(t *testing.T) {
	scene, _, panel := newTestPanel(t)

	require.NoError(t, panel.Set("camera position", "1 2 3"))
	assert.Equal(t, mgl32.Vec3{1, 2, 3}, scene.CameraPosition())

	value, err := panel.Get("camera position")
	require.NoError(t, err)
	assert.Equal(t, "1 2 3", value)
}

func TestPanelGravityBinding(t *testing.T) {
	_, world, panel := newTestPanel(t)

	require.NoError(t, panel.Set("gravity", "0 -3.7 0"))
	assert.Equal(t, mgl32.Vec3{0, -3.7, 0}, world.Gravity())
}

func TestPanelUnknownBinding(t *testing.T) {
	_, _, panel := newTestPanel(t)

	assert.Error(t, panel.Set("no such row", "1"))
	_, err := panel.Get("no such row")
	assert.Error(t, err)
}

func TestPanelReadOnlyBinding(t *testing.T) {
	panel := NewPanel("t")
	panel.Bind(PanelBinding{Name: "build", Read: func() string { return "debug" }})

	if err := panel.Set("build", "release"); err == nil {
		t.Errorf("writing a read-only binding should error")
	}
}
