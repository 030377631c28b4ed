package probe

// DefaultSweepPeriod is the reconciliation interval, in frames, at which the
// proxy cache is swept for entries whose bodies left the physics world.
const DefaultSweepPeriod = 300

// PhysicsVisualizer mirrors the collision geometry of a physics source onto
// transient wireframe proxies under a single group node, re-deriving the
// attached set from the live body population every frame.
type PhysicsVisualizer struct {
	scene   SceneGraph
	physics PhysicsSource
	group   NodeId
	cache   *VisualProxyCache

	// sweepPeriod frames between cache sweeps; 0 disables eviction.
	sweepPeriod uint64
	frame       uint64
}

func NewPhysicsVisualizer(scene SceneGraph, physics PhysicsSource) *PhysicsVisualizer {
	group := scene.CreateGroup()
	return &PhysicsVisualizer{
		scene:       scene,
		physics:     physics,
		group:       group,
		cache:       NewVisualProxyCache(scene, group),
		sweepPeriod: DefaultSweepPeriod,
	}
}

// SetSweepPeriod overrides the cache eviction interval. 0 restores the base
// never-evict policy.
func (v *PhysicsVisualizer) SetSweepPeriod(frames uint64) {
	v.sweepPeriod = frames
}

// Reconcile re-derives the attached proxy set from the current physics-world
// body population, in the world's native iteration order, and copies each
// body's committed transform onto its proxies. A body removed from the world
// between frames disappears from the visualization on this pass; its cache
// entry survives until a sweep.
func (v *PhysicsVisualizer) Reconcile() {
	v.cache.ClearAttachments()

	for _, body := range v.physics.Bodies() {
		shapes := body.Shapes()
		if len(shapes) == 0 {
			continue
		}

		position := body.Position()
		orientation := body.Orientation()
		isStatic := body.Mass() == 0

		for i, shape := range shapes {
			proxy := v.cache.GetOrCreate(body.ID(), i, shape, isStatic)
			v.scene.SetTransform(proxy.Node, position, orientation)
			v.cache.Attach(proxy)
		}
	}

	v.frame++
	if v.sweepPeriod > 0 && v.frame%v.sweepPeriod == 0 {
		v.cache.Sweep(v.sweepPeriod)
	}
}

// SetVisible toggles the group node. Proxies are hidden as a unit, never
// destroyed by a visibility change.
func (v *PhysicsVisualizer) SetVisible(visible bool) {
	v.scene.SetVisible(v.group, visible)
}

// Group exposes the group node handle, e.g. for a host that wants to reparent
// the debug layer in its own scene.
func (v *PhysicsVisualizer) Group() NodeId {
	return v.group
}

func (v *PhysicsVisualizer) Cache() *VisualProxyCache {
	return v.cache
}
