package probe

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPhysicsWorldAddRemove(t *testing.T) {
	world := NewPhysicsWorld()

	a := world.AddBody(0, []ShapeDescriptor{SphereShape(1)}, mgl32.Vec3{}, mgl32.QuatIdent())
	b := world.AddBody(1, []ShapeDescriptor{BoxShape(mgl32.Vec3{1, 1, 1})}, mgl32.Vec3{}, mgl32.QuatIdent())
	c := world.AddBody(2, nil, mgl32.Vec3{}, mgl32.QuatIdent())

	// Stable ids, insertion order preserved.
	require.Equal(t, BodyId(0), a.ID())
	require.Equal(t, BodyId(1), b.ID())
	require.Equal(t, BodyId(2), c.ID())

	bodies := world.Bodies()
	require.Len(t, bodies, 3)
	assert.Equal(t, a.ID(), bodies[0].ID())
	assert.Equal(t, b.ID(), bodies[1].ID())

	world.RemoveBody(b.ID())
	bodies = world.Bodies()
	require.Len(t, bodies, 2)
	assert.Equal(t, a.ID(), bodies[0].ID())
	assert.Equal(t, c.ID(), bodies[1].ID())

	// Removing an unknown id is harmless; ids are never reused.
	world.RemoveBody(b.ID())
	d := world.AddBody(0, nil, mgl32.Vec3{}, mgl32.QuatIdent())
	assert.Equal(t, BodyId(3), d.ID())
}

func TestPhysicsWorldGravity(t *testing.T) {
	world := NewPhysicsWorld()

	assert.Equal(t, mgl32.Vec3{0, -9.81, 0}, world.Gravity())

	world.SetGravity(mgl32.Vec3{0, -1.62, 0})
	assert.Equal(t, mgl32.Vec3{0, -1.62, 0}, world.Gravity())
}

func TestRigidBodyMutation(t *testing.T) {
	world := NewPhysicsWorld()
	body := world.AddBody(1, []ShapeDescriptor{SphereShape(1)}, mgl32.Vec3{}, mgl32.QuatIdent())

	body.SetMass(0)
	assert.Equal(t, float32(0), body.Mass())

	body.AddShape(PlaneShape())
	require.Len(t, body.Shapes(), 2)
	assert.Equal(t, ShapePlane, body.Shapes()[1].Kind)

	rot := mgl32.QuatRotate(mgl32.DegToRad(30), mgl32.Vec3{0, 0, 1})
	body.SetTransform(mgl32.Vec3{4, 5, 6}, rot)
	assert.Equal(t, mgl32.Vec3{4, 5, 6}, body.Position())
	assert.Equal(t, rot, body.Orientation())
}
