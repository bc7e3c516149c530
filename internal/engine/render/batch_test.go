package render

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/solhaug/sceneview/internal/engine/mesh"
)

func translation(x float32) mgl32.Mat4 {
	return mgl32.Translate3D(x, 0, 0)
}

func TestBatchGrouping(t *testing.T) {
	meshA := &mesh.Mesh{}
	meshB := &mesh.Mesh{}

	bl := newBatchList()
	bl.add(meshA, nil, translation(1))
	bl.add(meshB, nil, translation(2))
	bl.add(meshA, nil, translation(3))

	var sizes []int
	bl.each(16, func(b *batch, worlds []mgl32.Mat4) {
		sizes = append(sizes, len(worlds))
	})

	// Two batches: meshA with 2 instances, meshB with 1, in first-seen order.
	if len(sizes) != 2 || sizes[0] != 2 || sizes[1] != 1 {
		t.Fatalf("batch sizes = %v, want [2 1]", sizes)
	}
}

func TestBatchSplitAtMaxInstances(t *testing.T) {
	m := &mesh.Mesh{}
	bl := newBatchList()
	for i := 0; i < 10; i++ {
		bl.add(m, nil, translation(float32(i)))
	}

	var total int
	var sizes []int
	bl.each(4, func(b *batch, worlds []mgl32.Mat4) {
		sizes = append(sizes, len(worlds))
		total += len(worlds)
	})

	if total != 10 {
		t.Fatalf("split dropped instances: drew %d of 10", total)
	}
	want := []int{4, 4, 2}
	if len(sizes) != len(want) {
		t.Fatalf("chunk sizes = %v, want %v", sizes, want)
	}
	for i := range want {
		if sizes[i] != want[i] {
			t.Fatalf("chunk sizes = %v, want %v", sizes, want)
		}
	}
}

func TestBatchPreservesWorldOrder(t *testing.T) {
	m := &mesh.Mesh{}
	bl := newBatchList()
	for i := 0; i < 5; i++ {
		bl.add(m, nil, translation(float32(i)))
	}

	var xs []float32
	bl.each(16, func(b *batch, worlds []mgl32.Mat4) {
		for _, w := range worlds {
			xs = append(xs, w[12])
		}
	})

	for i, x := range xs {
		if x != float32(i) {
			t.Fatalf("world order = %v", xs)
		}
	}
}

func TestBatchOrderIndependence(t *testing.T) {
	meshA := &mesh.Mesh{}
	meshB := &mesh.Mesh{}

	subs := []struct {
		m *mesh.Mesh
		x float32
	}{
		{meshA, 1}, {meshB, 2}, {meshA, 3}, {meshB, 4}, {meshA, 5},
	}

	collect := func(order []int) map[*mesh.Mesh]map[float32]int {
		bl := newBatchList()
		for _, i := range order {
			bl.add(subs[i].m, nil, translation(subs[i].x))
		}
		got := make(map[*mesh.Mesh]map[float32]int)
		bl.each(16, func(b *batch, worlds []mgl32.Mat4) {
			if got[b.mesh] == nil {
				got[b.mesh] = make(map[float32]int)
			}
			for _, w := range worlds {
				got[b.mesh][w[12]]++
			}
		})
		return got
	}

	forward := collect([]int{0, 1, 2, 3, 4})
	reversed := collect([]int{4, 3, 2, 1, 0})

	// The per-group transform multisets must match regardless of
	// submission order.
	for m, worlds := range forward {
		for x, n := range worlds {
			if reversed[m][x] != n {
				t.Fatalf("multiset mismatch for x=%v: %d vs %d", x, n, reversed[m][x])
			}
		}
	}
	if len(forward) != len(reversed) {
		t.Fatalf("group counts differ: %d vs %d", len(forward), len(reversed))
	}
}

func TestBatchReset(t *testing.T) {
	m := &mesh.Mesh{}
	bl := newBatchList()
	bl.add(m, nil, translation(1))
	bl.reset()

	calls := 0
	bl.each(16, func(b *batch, worlds []mgl32.Mat4) { calls++ })
	if calls != 0 {
		t.Fatalf("reset batch list still yielded %d batches", calls)
	}

	// Reuse after reset starts clean.
	bl.add(m, nil, translation(2))
	bl.each(16, func(b *batch, worlds []mgl32.Mat4) {
		if len(worlds) != 1 {
			t.Fatalf("got %d worlds after reuse, want 1", len(worlds))
		}
	})
}
