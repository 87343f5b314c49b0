// Package cluster implements single-linkage clustering over a weighted
// complete graph, driven by the generic disjoint-set store in package dsu.
//
// What & Why
//
//   - Given n elements and a symmetric distance, CompleteEdges produces all
//     n·(n−1)/2 pairs sorted by ascending weight.
//
//   - Bulk mode (BulkMerge) joins the endpoints of the k cheapest edges,
//     whether or not they are already connected, and ClassSizes/TopProduct
//     summarise the resulting clusters.
//
//   - Full-connectivity mode (LastConnectingEdge) keeps taking the cheapest
//     edge whose endpoints are still apart until a single cluster remains,
//     and reports the edge that closed the last gap. That edge is the
//     heaviest edge of the minimum spanning tree, i.e. the single-linkage
//     merge height at which everything becomes one cluster.
//
//   - SpanningTree returns the whole Kruskal tree when the edge list spans
//     every element.
//
// Determinism
//
//   - Edges are generated in (i, j) order with i < j and sorted with a stable
//     sort, so equal weights keep generation order and repeated runs produce
//     the same clusters and the same last edge.
//
// Complexity
//
//   - CompleteEdges: O(n² log n) time, O(n²) memory.
//   - BulkMerge:     O(k·α(n)).
//   - LastConnectingEdge / SpanningTree: O(E·α(n)), E = len(edges).
//
// Errors
//
//   - ErrNegativeConnections:    k < 0.
//   - ErrConnectionsExceedEdges: k > len(edges).
//   - ErrInvalidTop:             Options.Top < 1.
//   - ErrNoElements:             SpanningTree on an empty element list.
//   - ErrDisconnected:           SpanningTree edges leave more than one cluster.
package cluster
