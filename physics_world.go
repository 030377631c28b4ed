package probe

import (
	"github.com/go-gl/mathgl/mgl32"
)

type BodyId uint64

// Body is the per-body view the visualizer reads from the physics
// collaborator each frame. Mass 0 means static/immovable.
type Body interface {
	ID() BodyId
	Mass() float32
	Shapes() []ShapeDescriptor
	Position() mgl32.Vec3
	Orientation() mgl32.Quat
}

// PhysicsSource is the slice of a physics engine the debug layer consumes.
// Bodies must be returned in the engine's native iteration order; the
// visualizer applies no additional sort.
type PhysicsSource interface {
	Bodies() []Body
	Gravity() mgl32.Vec3
	SetGravity(g mgl32.Vec3)
}

// RigidBody is the body type of the reference PhysicsWorld. Transforms and
// mass are committed by the host's physics step; the debug layer only reads
// them.
type RigidBody struct {
	id          BodyId
	mass        float32
	shapes      []ShapeDescriptor
	position    mgl32.Vec3
	orientation mgl32.Quat
}

func (b *RigidBody) ID() BodyId                { return b.id }
func (b *RigidBody) Mass() float32             { return b.mass }
func (b *RigidBody) Shapes() []ShapeDescriptor { return b.shapes }
func (b *RigidBody) Position() mgl32.Vec3      { return b.position }
func (b *RigidBody) Orientation() mgl32.Quat   { return b.orientation }

func (b *RigidBody) SetMass(mass float32) {
	b.mass = mass
}

func (b *RigidBody) SetTransform(position mgl32.Vec3, orientation mgl32.Quat) {
	b.position = position
	b.orientation = orientation
}

func (b *RigidBody) AddShape(shape ShapeDescriptor) {
	b.shapes = append(b.shapes, shape)
}

// PhysicsWorld is an in-memory reference implementation of PhysicsSource:
// an insertion-ordered body store with stable ids. It holds state only, it
// does not integrate motion.
type PhysicsWorld struct {
	gravity mgl32.Vec3
	bodies  []*RigidBody
	nextId  BodyId
}

func NewPhysicsWorld() *PhysicsWorld {
	return &PhysicsWorld{
		gravity: mgl32.Vec3{0, -9.81, 0},
	}
}

func (w *PhysicsWorld) AddBody(mass float32, shapes []ShapeDescriptor, position mgl32.Vec3, orientation mgl32.Quat) *RigidBody {
	body := &RigidBody{
		id:          w.nextId,
		mass:        mass,
		shapes:      shapes,
		position:    position,
		orientation: orientation,
	}
	w.nextId++
	w.bodies = append(w.bodies, body)
	return body
}

func (w *PhysicsWorld) RemoveBody(id BodyId) {
	for i, body := range w.bodies {
		if body.id == id {
			w.bodies = append(w.bodies[:i], w.bodies[i+1:]...)
			return
		}
	}
}

func (w *PhysicsWorld) Bodies() []Body {
	res := make([]Body, len(w.bodies))
	for i, body := range w.bodies {
		res[i] = body
	}
	return res
}

func (w *PhysicsWorld) Gravity() mgl32.Vec3 {
	return w.gravity
}

func (w *PhysicsWorld) SetGravity(g mgl32.Vec3) {
	w.gravity = g
}
