package cluster

import (
	"errors"
	"fmt"
)

// Sentinel errors for clustering operations.
var (
	// ErrNegativeConnections indicates a negative number of edges to merge.
	ErrNegativeConnections = errors.New("cluster: connection count must be non-negative")

	// ErrConnectionsExceedEdges indicates more edges were requested than exist.
	ErrConnectionsExceedEdges = errors.New("cluster: connection count exceeds available edges")

	// ErrInvalidTop indicates a top-N count below one.
	ErrInvalidTop = errors.New("cluster: top count must be at least 1")

	// ErrNoElements indicates an empty element list where at least one is required.
	ErrNoElements = errors.New("cluster: no elements to cluster")

	// ErrDisconnected indicates the edge list cannot join every element into one cluster.
	ErrDisconnected = errors.New("cluster: edges do not span every element")
)

const (
	// DefaultConnections is the number of cheapest edges merged in bulk mode.
	DefaultConnections = 1000

	// DefaultTop is how many of the largest clusters feed the size product.
	DefaultTop = 3
)

// Point3 is an integer coordinate in 3-D space.
type Point3 struct {
	X, Y, Z int64
}

// String renders the point as "x,y,z", the same shape it is parsed from.
func (p Point3) String() string {
	return fmt.Sprintf("%d,%d,%d", p.X, p.Y, p.Z)
}

// Edge is an undirected weighted pair of elements.
type Edge[T comparable] struct {
	// From and To are the endpoints; From precedes To in the element list.
	From, To T

	// Weight is the distance between the endpoints.
	Weight float64
}

// DistanceFunc measures the distance between two elements. It must be
// symmetric and return the same value for the same pair on every call.
type DistanceFunc[T any] func(a, b T) float64

// Options configures the clustering run.
//
// Fields:
//
//	Connections int — how many cheapest edges BulkMerge joins.
//	Top         int — how many of the largest clusters TopProduct multiplies.
type Options struct {
	Connections int
	Top         int
}

// Option configures Options. All Option functions should modify the pointed Options.
type Option func(*Options)

// WithConnections returns an Option that sets the bulk-merge edge count.
func WithConnections(k int) Option {
	return func(o *Options) {
		o.Connections = k
	}
}

// WithTop returns an Option that sets how many clusters feed the size product.
func WithTop(n int) Option {
	return func(o *Options) {
		o.Top = n
	}
}

// DefaultOptions returns Options with Connections = DefaultConnections and Top = DefaultTop.
func DefaultOptions() Options {
	return Options{
		Connections: DefaultConnections,
		Top:         DefaultTop,
	}
}

// NewOptions applies opts over DefaultOptions and validates the result.
func NewOptions(opts ...Option) (Options, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if err := o.Validate(); err != nil {
		return Options{}, err
	}

	return o, nil
}

// Validate checks the option values that do not depend on the input size.
// The upper bound of Connections is checked by BulkMerge against the edge count.
func (o Options) Validate() error {
	if o.Connections < 0 {
		return ErrNegativeConnections
	}
	if o.Top < 1 {
		return ErrInvalidTop
	}

	return nil
}
