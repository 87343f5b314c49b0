package cluster

import (
	"sort"

	"github.com/katalvlaran/disjoint/dsu"
)

// BulkMerge registers every element, then merges the endpoints of the first k
// edges in order. Edges whose endpoints are already together are merged
// anyway; the store treats that as a no-op.
//
// Returns ErrNegativeConnections if k < 0 and ErrConnectionsExceedEdges if
// k > len(edges).
//
// Complexity: O(n + k·α(n)).
func BulkMerge[T comparable](elems []T, edges []Edge[T], k int) (*dsu.Store[T], error) {
	if k < 0 {
		return nil, ErrNegativeConnections
	}
	if k > len(edges) {
		return nil, ErrConnectionsExceedEdges
	}

	store := dsu.New[T](dsu.WithCapacity(len(elems)))
	for _, e := range elems {
		store.Add(e)
	}
	for _, e := range edges[:k] {
		store.Merge(e.From, e.To)
	}

	return store, nil
}

// ClassSizes groups elems by their root in store and returns the group sizes
// in descending order. Every entry of elems is counted, so an element listed
// twice adds two to its class. Elements unknown to the store are skipped.
func ClassSizes[T comparable](store *dsu.Store[T], elems []T) []int {
	counts := make(map[T]int)
	for _, e := range elems {
		root, ok := store.Find(e)
		if !ok {
			continue
		}
		counts[root]++
	}

	sizes := make([]int, 0, len(counts))
	for _, n := range counts {
		sizes = append(sizes, n)
	}
	sort.Sort(sort.Reverse(sort.IntSlice(sizes)))

	return sizes
}

// TopProduct multiplies the n largest values of sizes. If fewer than n values
// exist, all of them are used; the product of nothing is 1.
// The input slice is not modified.
func TopProduct(sizes []int, n int) int64 {
	sorted := make([]int, len(sizes))
	copy(sorted, sizes)
	sort.Sort(sort.Reverse(sort.IntSlice(sorted)))

	if n > len(sorted) {
		n = len(sorted)
	}

	product := int64(1)
	for _, s := range sorted[:max(n, 0)] {
		product *= int64(s)
	}

	return product
}
