package dsu

// Options configures a Store at construction time.
type Options struct {
	// Capacity pre-sizes the internal maps. Zero means "grow on demand".
	Capacity int
}

// Option mutates Options. All Option functions should modify the pointed Options.
type Option func(*Options)

// WithCapacity returns an Option that pre-allocates room for n elements.
// Negative values are treated as zero.
func WithCapacity(n int) Option {
	return func(o *Options) {
		if n < 0 {
			n = 0
		}
		o.Capacity = n
	}
}

// DefaultOptions returns Options with no pre-allocation.
func DefaultOptions() Options {
	return Options{Capacity: 0}
}

// Store is a disjoint-set forest over elements of type T.
// The zero value is an empty store ready to use; New only adds pre-sizing.
//
// parent maps every element ever added to its parent; a root maps to itself.
// size holds the class population for current roots only.
// order logs elements in first-insertion order so enumeration is repeatable.
// classes is the number of current roots.
type Store[T comparable] struct {
	parent  map[T]T
	size    map[T]int
	order   []T
	classes int
}
