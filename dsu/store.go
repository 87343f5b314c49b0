package dsu

import "sort"

// New constructs an empty Store.
//
// Complexity: O(Capacity) for map pre-allocation.
func New[T comparable](opts ...Option) *Store[T] {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	return &Store[T]{
		parent: make(map[T]T, cfg.Capacity),
		size:   make(map[T]int, cfg.Capacity),
		order:  make([]T, 0, cfg.Capacity),
	}
}

// Add registers x as a singleton class. Adding an element twice is a no-op.
//
// Complexity: O(1) amortized.
func (s *Store[T]) Add(x T) {
	if _, ok := s.parent[x]; ok {
		return
	}
	if s.parent == nil {
		s.parent = make(map[T]T)
		s.size = make(map[T]int)
	}
	s.parent[x] = x
	s.size[x] = 1
	s.order = append(s.order, x)
	s.classes++
}

// Find returns the representative of the class containing x and true, or the
// zero value and false if x was never added.
//
// Every node on the walked path is rewired to point at the root. The
// partition itself is never changed by Find.
//
// Complexity: O(α(n)) amortized.
func (s *Store[T]) Find(x T) (T, bool) {
	p, ok := s.parent[x]
	if !ok {
		var zero T
		return zero, false
	}

	// 1. Walk up to the root.
	root := x
	for p != root {
		root = p
		p = s.parent[root]
	}

	// 2. Repoint every node on the path directly at the root.
	for x != root {
		next := s.parent[x]
		s.parent[x] = root
		x = next
	}

	return root, true
}

// Merge joins the classes of x and y, adding either element first if it is
// unknown. It reports false when both already share a root and nothing
// changed, true when two classes were joined.
//
// The smaller class is attached under the larger; on a tie the root of x is
// attached under the root of y.
//
// Complexity: O(α(n)) amortized.
func (s *Store[T]) Merge(x, y T) bool {
	s.Add(x)
	s.Add(y)

	rootX, _ := s.Find(x)
	rootY, _ := s.Find(y)
	if rootX == rootY {
		return false
	}

	sizeX, sizeY := s.size[rootX], s.size[rootY]
	if sizeX > sizeY {
		s.parent[rootY] = rootX
		s.size[rootX] = sizeX + sizeY
		delete(s.size, rootY)
	} else {
		s.parent[rootX] = rootY
		s.size[rootY] = sizeX + sizeY
		delete(s.size, rootX)
	}
	s.classes--

	return true
}

// IsConnected reports whether x and y are both present and share a root.
// A missing element is never connected to anything, itself included.
func (s *Store[T]) IsConnected(x, y T) bool {
	rootX, okX := s.Find(x)
	if !okX {
		return false
	}
	rootY, okY := s.Find(y)
	if !okY {
		return false
	}

	return rootX == rootY
}

// Len returns the number of distinct elements ever added (not classes).
func (s *Store[T]) Len() int {
	return len(s.parent)
}

// IsEmpty reports whether no element has been added yet.
func (s *Store[T]) IsEmpty() bool {
	return len(s.parent) == 0
}

// Count returns the number of disjoint classes.
func (s *Store[T]) Count() int {
	return s.classes
}

// SizeOf returns the population of the class containing x, or 0 and false
// if x was never added.
func (s *Store[T]) SizeOf(x T) (int, bool) {
	root, ok := s.Find(x)
	if !ok {
		return 0, false
	}

	return s.size[root], true
}

// Elements returns a copy of all elements in first-insertion order.
func (s *Store[T]) Elements() []T {
	out := make([]T, len(s.order))
	copy(out, s.order)

	return out
}

// Groups returns every class as a slice of its members.
//
// Classes are ordered by the earliest-inserted member of each, and members
// within a class keep insertion order, so two stores built by the same call
// sequence yield identical output.
//
// Complexity: O(n·α(n)).
func (s *Store[T]) Groups() [][]T {
	slot := make(map[T]int, s.classes)
	groups := make([][]T, 0, s.classes)
	for _, x := range s.order {
		root, _ := s.Find(x)
		i, seen := slot[root]
		if !seen {
			i = len(groups)
			slot[root] = i
			groups = append(groups, make([]T, 0, s.size[root]))
		}
		groups[i] = append(groups[i], x)
	}

	return groups
}

// Sizes returns the population of every class in descending order.
func (s *Store[T]) Sizes() []int {
	sizes := make([]int, 0, len(s.size))
	for _, n := range s.size {
		sizes = append(sizes, n)
	}
	sort.Sort(sort.Reverse(sort.IntSlice(sizes)))

	return sizes
}
