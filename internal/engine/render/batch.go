package render

import (
	"github.com/go-gl/mathgl/mgl32"

	"github.com/solhaug/sceneview/internal/engine/material"
	"github.com/solhaug/sceneview/internal/engine/mesh"
)

// batchKey groups submissions that can share one instanced draw call.
// Meshes and materials are shared immutable handles, so pointer identity is
// identity.
type batchKey struct {
	mesh     *mesh.Mesh
	material *material.Material
}

// batch accumulates the world matrices of all submissions sharing a key.
type batch struct {
	mesh     *mesh.Mesh
	material *material.Material
	worlds   []mgl32.Mat4
}

// batchList collects one frame's submissions grouped by mesh and material.
// keys preserves first-submission order so a frame draws deterministically.
type batchList struct {
	byKey map[batchKey]*batch
	keys  []batchKey
}

func newBatchList() *batchList {
	return &batchList{byKey: make(map[batchKey]*batch)}
}

func (bl *batchList) add(m *mesh.Mesh, mat *material.Material, world mgl32.Mat4) {
	key := batchKey{mesh: m, material: mat}
	b, ok := bl.byKey[key]
	if !ok {
		b = &batch{mesh: m, material: mat}
		bl.byKey[key] = b
		bl.keys = append(bl.keys, key)
	}
	b.worlds = append(b.worlds, world)
}

func (bl *batchList) reset() {
	for k := range bl.byKey {
		delete(bl.byKey, k)
	}
	bl.keys = bl.keys[:0]
}

// each yields the batches in first-submission order, splitting any batch
// larger than maxInstances into full chunks plus a remainder. Nothing is
// ever dropped from an oversized batch.
func (bl *batchList) each(maxInstances int, fn func(b *batch, worlds []mgl32.Mat4)) {
	for _, k := range bl.keys {
		b := bl.byKey[k]
		worlds := b.worlds
		for len(worlds) > maxInstances {
			fn(b, worlds[:maxInstances])
			worlds = worlds[maxInstances:]
		}
		if len(worlds) > 0 {
			fn(b, worlds)
		}
	}
}
