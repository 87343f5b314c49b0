// Package dsu provides a generic disjoint-set (union-find) store over any
// comparable key type.
//
// What & Why
//
//   - A Store partitions a growing set of elements into disjoint classes
//     ("clusters"). Elements are registered lazily and never removed.
//
//   - Typical uses: Kruskal's MST, single-linkage clustering, connected
//     components of grids or graphs, incremental connectivity queries.
//
// Techniques
//
//   - Union by size: the root of the smaller class is attached under the root
//     of the larger one. On equal sizes the first argument's root is attached
//     under the second's, so the surviving root is deterministic.
//
//   - Path compression: Find walks to the root, then rewires every visited
//     node straight to it. The walk is iterative; chain length never turns
//     into stack depth.
//
// Complexity
//
//   - Any sequence of m operations over n elements runs in O((m+n)·α(n))
//     amortized, α being the inverse Ackermann function.
//   - Memory: O(n) for the parent and size maps plus the insertion log.
//
// Failure semantics
//
//   - There are none. Find reports a missing element with ok == false,
//     IsConnected treats a missing element as "not connected", and Merge adds
//     unknown elements before joining them.
//
// Concurrency
//
//   - Store is NOT safe for concurrent use: Find mutates parent pointers even
//     though it never changes the partition. Share a store between goroutines
//     through Locked, which serialises every call behind one mutex.
//
// GoDoc Summary
//
//	s := dsu.New[string]()
//	s.Merge("A", "B")            // true
//	s.IsConnected("B", "A")      // true
//	root, ok := s.Find("A")      // "B", true
//	s.Len(), s.Count()           // 2, 1
package dsu
