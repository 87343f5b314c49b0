package gridgraph

import "errors"

var (
	// ErrEmptyGrid is returned for a grid without rows or without columns.
	ErrEmptyGrid = errors.New("gridgraph: grid has no cells")

	// ErrNonRectangular is returned when a row differs in length from the first.
	ErrNonRectangular = errors.New("gridgraph: rows differ in length")
)

// Connectivity picks which neighbouring cells count as touching.
type Connectivity int

const (
	// Conn4 joins cells that share a side.
	Conn4 Connectivity = iota

	// Conn8 also joins cells that share only a corner.
	Conn8
)

// GridOptions controls how cell values are read.
//
//	LandThreshold int          — cells with value >= LandThreshold are land.
//	Conn          Connectivity — Conn4 or Conn8.
type GridOptions struct {
	LandThreshold int
	Conn          Connectivity
}

// DefaultGridOptions treats any positive value as land, with side neighbours only.
func DefaultGridOptions() GridOptions {
	return GridOptions{LandThreshold: 1, Conn: Conn4}
}

// GridGraph is a rectangular grid that is never modified after construction.
// Cell (x, y) is CellValues[y][x] and has row-major index y*Width + x.
type GridGraph struct {
	Width, Height int
	CellValues    [][]int
	Conn          Connectivity
	LandThreshold int

	offsets [][2]int
}
