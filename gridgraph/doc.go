// Package gridgraph groups the cells of a rectangular grid into regions.
//
// A grid is an implicit graph: every cell whose value reaches LandThreshold is
// a vertex, and two such cells are adjacent when one lies in the other's
// neighbourhood (Conn4: the four sides, Conn8: sides and corners). Regions
// are the classes of a dsu.Store[int] keyed by row-major cell index, so no
// adjacency list is ever built.
//
// Construction:
//
//   - NewGridGraph copies a [][]int and takes GridOptions.
//   - From2D is the same with the default threshold of 1.
//   - FromLines reads text rows; cells equal to the land rune become 1.
//
// Queries:
//
//   - ConnectedComponents: regions as ascending index lists, ordered by first cell.
//   - ComponentSizes:      region sizes, largest first.
//   - Coordinate / InBounds / IsLand for index and bounds work.
//
// Cost: O(W·H·d·α(W·H)) time, O(W·H) memory, d = 4 or 8.
//
// Shape errors are ErrEmptyGrid and ErrNonRectangular.
package gridgraph
