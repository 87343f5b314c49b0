package junction

import (
	"math/big"
	"os"

	"github.com/katalvlaran/disjoint/cluster"
	"github.com/pingcap/errors"
)

// Solve computes both answers for points. Options default to
// cluster.DefaultOptions (1000 connections, top 3).
func Solve(points []cluster.Point3, opts ...cluster.Option) (Result, error) {
	o, err := cluster.NewOptions(opts...)
	if err != nil {
		return Result{}, errors.Trace(err)
	}
	if len(points) == 0 {
		return Result{}, errors.Trace(ErrNoPoints)
	}

	edges := cluster.CompleteEdges(points, cluster.Euclidean)

	store, err := cluster.BulkMerge(points, edges, o.Connections)
	if err != nil {
		return Result{}, errors.Annotatef(err, "wire %d connections among %d candidate cables", o.Connections, len(edges))
	}
	sizes := cluster.ClassSizes(store, points)

	res := Result{
		Part1:    cluster.TopProduct(sizes, o.Top),
		Sizes:    sizes,
		Circuits: len(sizes),
		Edges:    len(edges),
	}

	if last, ok := cluster.LastConnectingEdge(points, edges); ok {
		part2, err := mulExact(last.From.X, last.To.X)
		if err != nil {
			return Result{}, errors.Annotatef(err, "last cable %s-%s", last.From, last.To)
		}
		res.LastEdge = last
		res.Part2 = part2
		res.HasPart2 = true
	}

	return res, nil
}

// mulExact returns a*b, or ErrAnswerOverflow when the product leaves int64.
func mulExact(a, b int64) (int64, error) {
	p := new(big.Int).Mul(big.NewInt(a), big.NewInt(b))
	if !p.IsInt64() {
		return 0, errors.Trace(ErrAnswerOverflow)
	}

	return p.Int64(), nil
}

// SolveFile parses the file at path and solves it.
func SolveFile(path string, opts ...cluster.Option) (Result, error) {
	f, err := os.Open(path)
	if err != nil {
		return Result{}, errors.Trace(err)
	}
	defer f.Close()

	points, err := Parse(f)
	if err != nil {
		return Result{}, errors.Annotatef(err, "parse %s", path)
	}

	return Solve(points, opts...)
}
