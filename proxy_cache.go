package probe

// Colors are fixed at proxy creation from the body's mass at first sighting.
var (
	staticProxyColor  = Color{0, 1, 0, 0.5}
	dynamicProxyColor = Color{1, 0, 0, 0.5}
)

type proxyKey struct {
	body  BodyId
	shape int
}

// VisualProxy is a debug-only scene node mirroring one collision shape.
// Geometry and color are fixed at creation; only its transform is updated on
// later frames.
type VisualProxy struct {
	Node     NodeId
	Color    Color
	Geometry WireGeometry

	lastAttached uint64
}

// VisualProxyCache owns the mapping from (bodyId, shapeIndex) to a live
// proxy node. At most one proxy exists per key; entries survive their body
// leaving the physics world until a sweep evicts them.
type VisualProxyCache struct {
	scene   SceneGraph
	group   NodeId
	entries map[proxyKey]*VisualProxy

	// generation counts reconciliation passes; each proxy is stamped with
	// the generation it was last attached in.
	generation uint64
}

func NewVisualProxyCache(scene SceneGraph, group NodeId) *VisualProxyCache {
	return &VisualProxyCache{
		scene:   scene,
		group:   group,
		entries: make(map[proxyKey]*VisualProxy),
	}
}

// GetOrCreate returns the proxy for the key, building geometry and
// allocating a node on first sighting. On a hit the proxy is returned
// unchanged: geometry and color are not refreshed even if the underlying
// shape's dimensions changed.
func (c *VisualProxyCache) GetOrCreate(body BodyId, shapeIndex int, shape ShapeDescriptor, isStatic bool) *VisualProxy {
	key := proxyKey{body: body, shape: shapeIndex}
	if proxy, ok := c.entries[key]; ok {
		return proxy
	}

	color := dynamicProxyColor
	if isStatic {
		color = staticProxyColor
	}

	geometry := WireGeometryFor(shape)
	proxy := &VisualProxy{
		Node:         c.scene.CreateNode(geometry, color, true, true),
		Color:        color,
		Geometry:     geometry,
		lastAttached: c.generation,
	}
	c.entries[key] = proxy
	return proxy
}

// ClearAttachments detaches every proxy from the group node without deleting
// cache entries, and opens a new attachment generation. Bodies gone from the
// physics world simply stop being re-attached.
func (c *VisualProxyCache) ClearAttachments() {
	c.scene.DetachChildren(c.group)
	c.generation++
}

// Attach parents the proxy under the group node and stamps it as attached in
// the current generation.
func (c *VisualProxyCache) Attach(proxy *VisualProxy) {
	c.scene.Attach(c.group, proxy.Node)
	proxy.lastAttached = c.generation
}

// Sweep destroys and removes every entry that has not been attached for more
// than maxIdle generations, bounding cache growth when bodies leave the
// world. Returns the number of evicted entries.
func (c *VisualProxyCache) Sweep(maxIdle uint64) int {
	evicted := 0
	for key, proxy := range c.entries {
		if c.generation-proxy.lastAttached > maxIdle {
			c.scene.DestroyNode(proxy.Node)
			delete(c.entries, key)
			evicted++
		}
	}
	return evicted
}

func (c *VisualProxyCache) Len() int {
	return len(c.entries)
}
