package cluster

import (
	"math"
	"sort"
)

// SquaredEuclidean returns the squared distance between a and b.
//
// It is computed in float64 from exact per-axis gaps, so it never wraps
// around for any int64 input. The result is exact while it stays below 2^53.
func SquaredEuclidean(a, b Point3) float64 {
	dx := float64(absDiff(a.X, b.X))
	dy := float64(absDiff(a.Y, b.Y))
	dz := float64(absDiff(a.Z, b.Z))

	return dx*dx + dy*dy + dz*dz
}

// Euclidean returns the straight-line distance between a and b.
// It is a DistanceFunc[Point3].
func Euclidean(a, b Point3) float64 {
	return math.Sqrt(SquaredEuclidean(a, b))
}

// absDiff returns |a-b|. Every int64 gap fits in a uint64.
func absDiff(a, b int64) uint64 {
	if a >= b {
		return uint64(a) - uint64(b)
	}

	return uint64(b) - uint64(a)
}

// CompleteEdges builds every pair (elems[i], elems[j]) with i < j, weighted by
// dist, and returns them sorted by ascending weight. Equal weights keep their
// generation order.
//
// Complexity: O(n² log n) time, O(n²) memory.
func CompleteEdges[T comparable](elems []T, dist DistanceFunc[T]) []Edge[T] {
	n := len(elems)
	if n < 2 {
		return []Edge[T]{}
	}

	edges := make([]Edge[T], 0, n*(n-1)/2)
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			edges = append(edges, Edge[T]{
				From:   elems[i],
				To:     elems[j],
				Weight: dist(elems[i], elems[j]),
			})
		}
	}

	sort.SliceStable(edges, func(i, j int) bool {
		return edges[i].Weight < edges[j].Weight
	})

	return edges
}
