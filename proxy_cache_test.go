package probe

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestCache(t *testing.T) (*Scene, NodeId, *VisualProxyCache) {
	t.Helper()
	scene := NewScene()
	group := scene.CreateGroup()
	return scene, group, NewVisualProxyCache(scene, group)
}

func TestCacheGetOrCreateMissAndHit(t *testing.T) {
	scene, _, cache := newTestCache(t)

	first := cache.GetOrCreate(1, 0, SphereShape(1), false)
	require.NotNil(t, first)
	assert.Equal(t, 1, cache.Len())

	// Hit: same proxy back, unchanged, even with different dimensions.
	second := cache.GetOrCreate(1, 0, SphereShape(99), true)
	assert.Same(t, first, second)
	assert.Equal(t, 1, cache.Len())
	assert.Equal(t, float32(1), second.Geometry.Radius)
	assert.Equal(t, dynamicProxyColor, second.Color)

	// Distinct shape index on the same body is a distinct entry.
	cache.GetOrCreate(1, 1, SphereShape(1), false)
	assert.Equal(t, 2, cache.Len())
	assert.Equal(t, 3, scene.NodeCount()) // group + 2 proxies
}

func TestCacheColorFromStaticness(t *testing.T) {
	_, _, cache := newTestCache(t)

	static := cache.GetOrCreate(1, 0, BoxShape(mgl32.Vec3{1, 1, 1}), true)
	dynamic := cache.GetOrCreate(2, 0, BoxShape(mgl32.Vec3{1, 1, 1}), false)

	assert.Equal(t, staticProxyColor, static.Color)
	assert.Equal(t, dynamicProxyColor, dynamic.Color)
}

func TestCacheClearAttachmentsKeepsEntries(t *testing.T) {
	scene, group, cache := newTestCache(t)

	p1 := cache.GetOrCreate(1, 0, SphereShape(1), false)
	p2 := cache.GetOrCreate(2, 0, SphereShape(1), false)
	cache.Attach(p1)
	cache.Attach(p2)
	require.Len(t, scene.Children(group), 2)

	cache.ClearAttachments()

	assert.Empty(t, scene.Children(group))
	assert.Equal(t, 2, cache.Len())
	// Nodes survive the detach.
	assert.Equal(t, 3, scene.NodeCount())
}

func TestCacheSweepEvictsStaleEntries(t *testing.T) {
	scene, group, cache := newTestCache(t)

	stale := cache.GetOrCreate(1, 0, SphereShape(1), false)
	live := cache.GetOrCreate(2, 0, SphereShape(1), false)
	cache.Attach(stale)
	cache.Attach(live)

	// Only the live proxy keeps getting re-attached.
	for i := 0; i < 5; i++ {
		cache.ClearAttachments()
		cache.Attach(live)
	}

	evicted := cache.Sweep(3)

	assert.Equal(t, 1, evicted)
	assert.Equal(t, 1, cache.Len())
	assert.Equal(t, 2, scene.NodeCount()) // group + live proxy
	require.Len(t, scene.Children(group), 1)
	assert.Equal(t, live.Node, scene.Children(group)[0])
}

func TestCacheSweepKeepsRecentEntries(t *testing.T) {
	_, _, cache := newTestCache(t)

	p := cache.GetOrCreate(1, 0, SphereShape(1), false)
	cache.Attach(p)
	cache.ClearAttachments()

	// One unattached generation is within any reasonable idle budget.
	assert.Equal(t, 0, cache.Sweep(3))
	assert.Equal(t, 1, cache.Len())
}
