package probe

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/google/uuid"
)

type NodeId string

type Color [4]float32

// SceneGraph is the slice of a rendering engine the debug layer needs: node
// creation and parenting, visibility, transforms. The renderer itself is an
// external collaborator; it only has to expose these operations.
type SceneGraph interface {
	CreateGroup() NodeId
	CreateNode(geometry WireGeometry, color Color, wireframe, translucent bool) NodeId
	DestroyNode(id NodeId)
	Attach(parent, child NodeId)
	Detach(parent, child NodeId)
	DetachChildren(parent NodeId)
	Children(parent NodeId) []NodeId
	SetVisible(id NodeId, visible bool)
	SetTransform(id NodeId, position mgl32.Vec3, rotation mgl32.Quat)
}

// RenderSettings is the renderer-level knob surface the parameter panel binds
// to. SetClearColor reports a rejection synchronously to the caller of the
// binding that triggered it.
type RenderSettings interface {
	ClearColor() [3]float32
	SetClearColor(c [3]float32) error
	ShadowsEnabled() bool
	SetShadowsEnabled(enabled bool)
	CameraFOV() float32
	SetCameraFOV(degrees float32)
	CameraPosition() mgl32.Vec3
	SetCameraPosition(p mgl32.Vec3)
	// RecomputeProjection must be requested after an FOV change.
	RecomputeProjection()
}

// sceneNode is one node of the reference scene graph.
type sceneNode struct {
	id          NodeId
	group       bool
	geometry    WireGeometry
	color       Color
	wireframe   bool
	translucent bool
	visible     bool
	position    mgl32.Vec3
	rotation    mgl32.Quat
	children    []NodeId
	parent      NodeId
}

// Scene is an in-memory reference implementation of SceneGraph and
// RenderSettings, used by the package tests and usable by hosts whose
// renderer consumes a retained node list.
type Scene struct {
	nodes map[NodeId]*sceneNode

	clearColor     [3]float32
	shadowsEnabled bool

	cameraPosition  mgl32.Vec3
	cameraFOV       float32
	projectionDirty bool
}

func NewScene() *Scene {
	return &Scene{
		nodes:      make(map[NodeId]*sceneNode),
		clearColor: [3]float32{0, 0, 0},
		cameraFOV:  60.0,
	}
}

func (s *Scene) CreateGroup() NodeId {
	id := NodeId(uuid.NewString())
	s.nodes[id] = &sceneNode{
		id:       id,
		group:    true,
		visible:  true,
		rotation: mgl32.QuatIdent(),
	}
	return id
}

func (s *Scene) CreateNode(geometry WireGeometry, color Color, wireframe, translucent bool) NodeId {
	id := NodeId(uuid.NewString())
	s.nodes[id] = &sceneNode{
		id:          id,
		geometry:    geometry,
		color:       color,
		wireframe:   wireframe,
		translucent: translucent,
		visible:     true,
		rotation:    mgl32.QuatIdent(),
	}
	return id
}

func (s *Scene) DestroyNode(id NodeId) {
	node, ok := s.nodes[id]
	if !ok {
		return
	}
	if node.parent != "" {
		s.Detach(node.parent, id)
	}
	for _, child := range append([]NodeId(nil), node.children...) {
		s.Detach(id, child)
	}
	delete(s.nodes, id)
}

func (s *Scene) Attach(parent, child NodeId) {
	p, ok := s.nodes[parent]
	c, cok := s.nodes[child]
	if !ok || !cok {
		return
	}
	if c.parent == parent {
		return
	}
	if c.parent != "" {
		s.Detach(c.parent, child)
	}
	p.children = append(p.children, child)
	c.parent = parent
}

func (s *Scene) Detach(parent, child NodeId) {
	p, ok := s.nodes[parent]
	if !ok {
		return
	}
	for i, id := range p.children {
		if id == child {
			p.children = append(p.children[:i], p.children[i+1:]...)
			break
		}
	}
	if c, ok := s.nodes[child]; ok && c.parent == parent {
		c.parent = ""
	}
}

// DetachChildren unparents every child of the node without destroying them.
func (s *Scene) DetachChildren(parent NodeId) {
	p, ok := s.nodes[parent]
	if !ok {
		return
	}
	for _, child := range p.children {
		if c, ok := s.nodes[child]; ok {
			c.parent = ""
		}
	}
	p.children = p.children[:0]
}

func (s *Scene) Children(parent NodeId) []NodeId {
	p, ok := s.nodes[parent]
	if !ok {
		return nil
	}
	return append([]NodeId(nil), p.children...)
}

func (s *Scene) SetVisible(id NodeId, visible bool) {
	if node, ok := s.nodes[id]; ok {
		node.visible = visible
	}
}

func (s *Scene) Visible(id NodeId) bool {
	if node, ok := s.nodes[id]; ok {
		return node.visible
	}
	return false
}

func (s *Scene) SetTransform(id NodeId, position mgl32.Vec3, rotation mgl32.Quat) {
	if node, ok := s.nodes[id]; ok {
		node.position = position
		node.rotation = rotation
	}
}

func (s *Scene) Transform(id NodeId) (mgl32.Vec3, mgl32.Quat) {
	if node, ok := s.nodes[id]; ok {
		return node.position, node.rotation
	}
	return mgl32.Vec3{}, mgl32.QuatIdent()
}

// NodeColor reports the color a node was created with.
func (s *Scene) NodeColor(id NodeId) Color {
	if node, ok := s.nodes[id]; ok {
		return node.color
	}
	return Color{}
}

func (s *Scene) NodeGeometry(id NodeId) WireGeometry {
	if node, ok := s.nodes[id]; ok {
		return node.geometry
	}
	return WireGeometry{}
}

func (s *Scene) NodeCount() int {
	return len(s.nodes)
}

func (s *Scene) ClearColor() [3]float32 {
	return s.clearColor
}

func (s *Scene) SetClearColor(c [3]float32) error {
	for i, v := range c {
		if v < 0 || v > 1 {
			return fmt.Errorf("clear color component %d out of range [0,1]: %f", i, v)
		}
	}
	s.clearColor = c
	return nil
}

func (s *Scene) ShadowsEnabled() bool {
	return s.shadowsEnabled
}

func (s *Scene) SetShadowsEnabled(enabled bool) {
	s.shadowsEnabled = enabled
}

func (s *Scene) CameraFOV() float32 {
	return s.cameraFOV
}

func (s *Scene) SetCameraFOV(degrees float32) {
	s.cameraFOV = degrees
}

func (s *Scene) CameraPosition() mgl32.Vec3 {
	return s.cameraPosition
}

func (s *Scene) SetCameraPosition(p mgl32.Vec3) {
	s.cameraPosition = p
}

func (s *Scene) RecomputeProjection() {
	s.projectionDirty = true
}

// ConsumeProjectionDirty reports whether a projection recompute was requested
// since the last call, clearing the flag. A renderer polls this once per frame.
func (s *Scene) ConsumeProjectionDirty() bool {
	dirty := s.projectionDirty
	s.projectionDirty = false
	return dirty
}
