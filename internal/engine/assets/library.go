// Package assets caches the shared mesh, material and texture handles the
// scene is built from. Handles are created once, treated as immutable and
// referenced by any number of nodes.
package assets

import (
	"sync"

	"github.com/solhaug/sceneview/internal/engine/material"
	"github.com/solhaug/sceneview/internal/engine/mesh"
)

// Stats counts cache traffic.
type Stats struct {
	Hits   int
	Misses int
}

// Library is the process-wide handle cache. Safe for concurrent use, though
// builders that touch GL must still run on the GL thread.
type Library struct {
	mu        sync.RWMutex
	meshes    map[string]*mesh.Mesh
	materials map[string]*material.Material
	textures  map[string]uint32
	stats     Stats
}

// NewLibrary returns an empty cache.
func NewLibrary() *Library {
	return &Library{
		meshes:    make(map[string]*mesh.Mesh),
		materials: make(map[string]*material.Material),
		textures:  make(map[string]uint32),
	}
}

// Mesh returns the mesh registered under name, building and caching it on
// first use. The build func runs at most once per name.
func (l *Library) Mesh(name string, build func() (*mesh.Mesh, error)) (*mesh.Mesh, error) {
	l.mu.RLock()
	m, ok := l.meshes[name]
	l.mu.RUnlock()
	if ok {
		l.hit()
		return m, nil
	}

	l.mu.Lock()
	defer l.mu.Unlock()
	if m, ok := l.meshes[name]; ok {
		l.stats.Hits++
		return m, nil
	}
	m, err := build()
	if err != nil {
		return nil, err
	}
	l.meshes[name] = m
	l.stats.Misses++
	return m, nil
}

// Material returns the material registered under name, building it on first
// use.
func (l *Library) Material(name string, build func() *material.Material) *material.Material {
	l.mu.RLock()
	m, ok := l.materials[name]
	l.mu.RUnlock()
	if ok {
		l.hit()
		return m
	}

	l.mu.Lock()
	defer l.mu.Unlock()
	if m, ok := l.materials[name]; ok {
		l.stats.Hits++
		return m
	}
	m = build()
	l.materials[name] = m
	l.stats.Misses++
	return m
}

// Texture returns the GL texture registered under name, building it on
// first use.
func (l *Library) Texture(name string, build func() uint32) uint32 {
	l.mu.RLock()
	t, ok := l.textures[name]
	l.mu.RUnlock()
	if ok {
		l.hit()
		return t
	}

	l.mu.Lock()
	defer l.mu.Unlock()
	if t, ok := l.textures[name]; ok {
		l.stats.Hits++
		return t
	}
	t = build()
	l.textures[name] = t
	l.stats.Misses++
	return t
}

// LookupMesh returns the cached mesh for name without building. The second
// result reports whether it exists.
func (l *Library) LookupMesh(name string) (*mesh.Mesh, bool) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	m, ok := l.meshes[name]
	return m, ok
}

// LookupMaterial returns the cached material for name without building.
func (l *Library) LookupMaterial(name string) (*material.Material, bool) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	m, ok := l.materials[name]
	return m, ok
}

// Stats returns the hit/miss counters.
func (l *Library) Stats() Stats {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.stats
}

func (l *Library) hit() {
	l.mu.Lock()
	l.stats.Hits++
	l.mu.Unlock()
}

// Destroy releases every cached mesh. Must run on the GL thread.
func (l *Library) Destroy() {
	l.mu.Lock()
	defer l.mu.Unlock()
	for _, m := range l.meshes {
		m.Destroy()
	}
	l.meshes = make(map[string]*mesh.Mesh)
	l.materials = make(map[string]*material.Material)
	l.textures = make(map[string]uint32)
}
