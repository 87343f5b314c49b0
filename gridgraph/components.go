package gridgraph

import (
	"sort"

	"github.com/katalvlaran/disjoint/dsu"
)

// ConnectedComponents finds all contiguous regions of land cells under
// gg.Conn. Each component is a slice of row-major cell indices in ascending
// order; components are ordered by their first cell.
//
// To convert an index back to (x,y), use Coordinate.
//
// Time:   O(W·H·d·α(W·H)), d = 4 or 8.
// Memory: O(W·H).
func (gg *GridGraph) ConnectedComponents() [][]int {
	regions := gg.regions()

	return regions.Groups()
}

// ComponentSizes returns the cell count of every component, largest first.
func (gg *GridGraph) ComponentSizes() []int {
	comps := gg.ConnectedComponents()
	sizes := make([]int, len(comps))
	for i, c := range comps {
		sizes[i] = len(c)
	}
	sort.Sort(sort.Reverse(sort.IntSlice(sizes)))

	return sizes
}

// regions registers land cells in row-major order and merges each with its
// land neighbors.
func (gg *GridGraph) regions() *dsu.Store[int] {
	store := dsu.New[int](dsu.WithCapacity(gg.Width * gg.Height))
	for y := 0; y < gg.Height; y++ {
		for x := 0; x < gg.Width; x++ {
			if gg.IsLand(x, y) {
				store.Add(gg.index(x, y))
			}
		}
	}

	for y := 0; y < gg.Height; y++ {
		for x := 0; x < gg.Width; x++ {
			if !gg.IsLand(x, y) {
				continue
			}
			for _, d := range gg.offsets {
				nx, ny := x+d[0], y+d[1]
				if gg.IsLand(nx, ny) {
					store.Merge(gg.index(x, y), gg.index(nx, ny))
				}
			}
		}
	}

	return store
}
