package junction

import (
	"github.com/katalvlaran/disjoint/cluster"
	"github.com/pingcap/errors"
)

var (
	// ErrMalformedLine indicates a line that is not three comma-separated integers.
	ErrMalformedLine = errors.New("junction: malformed point line")

	// ErrNoPoints indicates input without a single point.
	ErrNoPoints = errors.New("junction: no points in input")

	// ErrAnswerOverflow indicates an answer that does not fit in an int64.
	ErrAnswerOverflow = errors.New("junction: answer overflows int64")
)

// Result carries both answers plus the intermediate data behind them.
type Result struct {
	// Part1 is the product of the largest circuit sizes after bulk wiring.
	Part1 int64

	// Part2 is From.X * To.X of LastEdge. Valid only when HasPart2 is true.
	Part2 int64

	// HasPart2 is false when no cable was ever needed (a single box).
	HasPart2 bool

	// Sizes lists every circuit size after bulk wiring, largest first.
	Sizes []int

	// Circuits is the number of circuits after bulk wiring.
	Circuits int

	// Edges is the number of candidate cables considered.
	Edges int

	// LastEdge is the cable that joined the final two circuits.
	LastEdge cluster.Edge[cluster.Point3]
}
