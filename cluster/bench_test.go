package cluster_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/disjoint/cluster"
)

// randomPoints returns n deterministic points in a 100k cube.
func randomPoints(n int) []cluster.Point3 {
	r := rand.New(rand.NewSource(42))
	pts := make([]cluster.Point3, n)
	for i := range pts {
		pts[i] = cluster.Point3{X: r.Int63n(100000), Y: r.Int63n(100000), Z: r.Int63n(100000)}
	}

	return pts
}

// BenchmarkCompleteEdges measures edge generation and sorting for 500 points.
func BenchmarkCompleteEdges(b *testing.B) {
	pts := randomPoints(500)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = cluster.CompleteEdges(pts, cluster.Euclidean)
	}
}

// BenchmarkLastConnectingEdge measures the connectivity pass on pre-sorted edges.
func BenchmarkLastConnectingEdge(b *testing.B) {
	pts := randomPoints(500)
	edges := cluster.CompleteEdges(pts, cluster.Euclidean)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = cluster.LastConnectingEdge(pts, edges)
	}
}
