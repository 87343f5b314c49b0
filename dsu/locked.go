package dsu

import "sync"

// Locked wraps a Store behind a single mutex so it can be shared between
// goroutines. Find compresses paths, so even read-only queries take the
// exclusive lock. The zero value is ready to use.
type Locked[T comparable] struct {
	mu    sync.Mutex
	inner Store[T]
}

// NewLocked constructs an empty, mutex-guarded Store.
func NewLocked[T comparable](opts ...Option) *Locked[T] {
	return &Locked[T]{inner: *New[T](opts...)}
}

// Add registers x. See Store.Add.
func (l *Locked[T]) Add(x T) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.inner.Add(x)
}

// Find returns the root of x. See Store.Find.
func (l *Locked[T]) Find(x T) (T, bool) {
	l.mu.Lock()
	defer l.mu.Unlock()

	return l.inner.Find(x)
}

// Merge joins the classes of x and y. See Store.Merge.
func (l *Locked[T]) Merge(x, y T) bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	return l.inner.Merge(x, y)
}

// IsConnected reports whether x and y share a class. See Store.IsConnected.
func (l *Locked[T]) IsConnected(x, y T) bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	return l.inner.IsConnected(x, y)
}

// Len returns the number of distinct elements.
func (l *Locked[T]) Len() int {
	l.mu.Lock()
	defer l.mu.Unlock()

	return l.inner.Len()
}

// IsEmpty reports whether no element has been added.
func (l *Locked[T]) IsEmpty() bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	return l.inner.IsEmpty()
}

// Count returns the number of disjoint classes.
func (l *Locked[T]) Count() int {
	l.mu.Lock()
	defer l.mu.Unlock()

	return l.inner.Count()
}

// SizeOf returns the population of x's class.
func (l *Locked[T]) SizeOf(x T) (int, bool) {
	l.mu.Lock()
	defer l.mu.Unlock()

	return l.inner.SizeOf(x)
}

// Groups returns a snapshot of every class. See Store.Groups.
func (l *Locked[T]) Groups() [][]T {
	l.mu.Lock()
	defer l.mu.Unlock()

	return l.inner.Groups()
}

// Sizes returns class populations, largest first.
func (l *Locked[T]) Sizes() []int {
	l.mu.Lock()
	defer l.mu.Unlock()

	return l.inner.Sizes()
}

// Elements returns a copy of all elements in insertion order.
func (l *Locked[T]) Elements() []T {
	l.mu.Lock()
	defer l.mu.Unlock()

	return l.inner.Elements()
}
