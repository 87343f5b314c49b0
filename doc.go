// Package disjoint is a small toolkit built around one data structure: a
// generic disjoint-set (union-find) store, and the clustering you can do with it.
//
// What's inside
//
//	• dsu/       — Store[T comparable]: Add, Find, Merge, IsConnected, Len, IsEmpty,
//	               plus Count, SizeOf, Groups, Sizes and a mutex-guarded Locked[T]
//	• cluster/   — complete-graph edges, bulk merge of the k cheapest edges,
//	               cluster sizes, last connecting edge, Kruskal spanning tree
//	• junction/  — the junction-box wiring puzzle: "x,y,z" parsing and both answers
//	• gridgraph/ — connected regions of a rectangular grid via the same store
//	• cmd/disjoint — CLI: solve, regions, version
//
// Quick ASCII example:
//
//	A───B   C───D      Merge(A,B), Merge(C,D): two classes
//	    └───┘          Merge(B,C): one class, IsConnected(A,D) == true
//
// Every store operation is total: unknown elements are "not found" or "not
// connected", and Merge adds them first. Store itself is single-owner; share
// one across goroutines through dsu.Locked.
//
//	go get github.com/katalvlaran/disjoint
package disjoint
