package quadtree_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/lvlgen/quadtree"
)

// BenchmarkCollides measures overlap checks against 2000 small rectangles
// spread over a 501×501 extent.
func BenchmarkCollides(b *testing.B) {
	r := rand.New(rand.NewSource(42))
	tr, _ := quadtree.New[quadtree.Rect](quadtree.Rect{W: 501, H: 501})
	for i := 0; i < 2000; i++ {
		tr.Insert(quadtree.Rect{X: r.Intn(495), Y: r.Intn(495), W: 3 + r.Intn(5), H: 3 + r.Intn(5)})
	}
	queries := make([]quadtree.Rect, 1024)
	for i := range queries {
		queries[i] = quadtree.Rect{X: r.Intn(495), Y: r.Intn(495), W: 5, H: 5}
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = tr.Collides(queries[i%len(queries)])
	}
}
