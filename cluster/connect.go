package cluster

import "github.com/katalvlaran/disjoint/dsu"

// LastConnectingEdge merges, in edge order, every edge whose endpoints are not
// yet connected, and returns the last one merged together with true.
//
// Because connectivity only grows, an edge skipped once stays skipped, so a
// single forward pass picks the same edges as rescanning the list from the
// start after every merge. The pass stops as soon as one cluster remains.
//
// Returns the zero Edge and false when no merge happens, e.g. for zero or one
// element. If the edges cannot join everything, the last edge merged is still
// returned.
//
// Complexity: O(n + E·α(n)).
func LastConnectingEdge[T comparable](elems []T, edges []Edge[T]) (Edge[T], bool) {
	store := dsu.New[T](dsu.WithCapacity(len(elems)))
	for _, e := range elems {
		store.Add(e)
	}

	var (
		last  Edge[T]
		found bool
	)
	for _, e := range edges {
		if store.IsConnected(e.From, e.To) {
			continue
		}
		store.Merge(e.From, e.To)
		last, found = e, true
		if store.Count() == 1 {
			break
		}
	}

	return last, found
}

// SpanningTree runs Kruskal's algorithm over edges, which must already be
// sorted by ascending weight (CompleteEdges output is). It returns the tree
// edges in the order they were taken and their total weight.
//
// Error Conditions:
//   - ErrNoElements   : elems is empty.
//   - ErrDisconnected : edges leave more than one cluster.
//
// A single element yields an empty tree with weight 0.
//
// Complexity: O(n + E·α(n)).
func SpanningTree[T comparable](elems []T, edges []Edge[T]) ([]Edge[T], float64, error) {
	if len(elems) == 0 {
		return nil, 0, ErrNoElements
	}

	store := dsu.New[T](dsu.WithCapacity(len(elems)))
	for _, e := range elems {
		store.Add(e)
	}
	if store.Count() == 1 {
		return []Edge[T]{}, 0, nil
	}

	var (
		tree  = make([]Edge[T], 0, store.Count()-1)
		total float64
	)
	for _, e := range edges {
		if !store.Merge(e.From, e.To) {
			continue
		}
		tree = append(tree, e)
		total += e.Weight
		if store.Count() == 1 {
			break
		}
	}

	if store.Count() > 1 {
		return nil, 0, ErrDisconnected
	}

	return tree, total, nil
}
