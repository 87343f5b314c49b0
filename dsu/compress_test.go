package dsu

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// buildBinomial merges n (a power of two) consecutive ints starting at lo by
// always pairing equal-size classes. The tie rule puts the first root under
// the second, so element lo ends up log2(n) links below the returned root.
func buildBinomial(s *Store[int], lo, n int) int {
	if n == 1 {
		s.Add(lo)
		return lo
	}
	left := buildBinomial(s, lo, n/2)
	right := buildBinomial(s, lo+n/2, n/2)
	s.Merge(left, right)

	return right
}

// pathToRoot walks parent links without compressing them.
func pathToRoot(s *Store[int], x int) []int {
	path := []int{x}
	for s.parent[x] != x {
		x = s.parent[x]
		path = append(path, x)
	}

	return path
}

// TestFind_CompressesDeepPath checks a single Find repoints every node on a
// multi-level path at the root and leaves other links alone.
func TestFind_CompressesDeepPath(t *testing.T) {
	const n = 64
	s := New[int](WithCapacity(n))
	root := buildBinomial(s, 0, n)
	require.Equal(t, n-1, root)
	require.Equal(t, 1, s.Count())

	path := pathToRoot(s, 0)
	require.Equal(t, []int{0, 1, 3, 7, 15, 31, 63}, path)

	// 2 is not on the path but hangs off 3, which is.
	require.Equal(t, 3, s.parent[2])

	got, ok := s.Find(0)
	require.True(t, ok)
	require.Equal(t, root, got)
	for _, x := range path {
		require.Equal(t, root, s.parent[x], "node %d", x)
	}
	require.Equal(t, 3, s.parent[2])
	require.Equal(t, n, s.size[root])
	require.Len(t, s.size, 1)

	// Nodes below a compressed one are one step shorter, not flattened.
	require.Equal(t, []int{2, 3, root}, pathToRoot(s, 2))
}
