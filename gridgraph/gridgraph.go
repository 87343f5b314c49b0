package gridgraph

var (
	offsets4 = [][2]int{{0, -1}, {1, 0}, {0, 1}, {-1, 0}}
	offsets8 = [][2]int{{0, -1}, {1, -1}, {1, 0}, {1, 1}, {0, 1}, {-1, 1}, {-1, 0}, {-1, -1}}
)

// NewGridGraph builds a GridGraph from a non-empty rectangular 2D slice.
// The input is deep-copied; later changes to values do not leak in.
// Returns ErrEmptyGrid or ErrNonRectangular on bad shapes.
// Complexity: O(W×H) time and memory.
func NewGridGraph(values [][]int, opts GridOptions) (*GridGraph, error) {
	if len(values) == 0 || len(values[0]) == 0 {
		return nil, ErrEmptyGrid
	}
	w := len(values[0])
	cells := make([][]int, len(values))
	for y, row := range values {
		if len(row) != w {
			return nil, ErrNonRectangular
		}
		cells[y] = append([]int(nil), row...)
	}

	offsets := offsets4
	if opts.Conn == Conn8 {
		offsets = offsets8
	}

	return &GridGraph{
		Width:         w,
		Height:        len(cells),
		CellValues:    cells,
		Conn:          opts.Conn,
		LandThreshold: opts.LandThreshold,
		offsets:       offsets,
	}, nil
}

// From2D is NewGridGraph with the default threshold and the given connectivity.
func From2D(values [][]int, conn Connectivity) (*GridGraph, error) {
	opts := DefaultGridOptions()
	opts.Conn = conn

	return NewGridGraph(values, opts)
}

// FromLines builds a grid from text rows: cells equal to land become 1,
// everything else 0. opts.LandThreshold is forced to 1.
// Rows are measured in runes, so multi-byte symbols count as one cell.
func FromLines(lines []string, land rune, opts GridOptions) (*GridGraph, error) {
	values := make([][]int, len(lines))
	for y, line := range lines {
		row := make([]int, 0, len(line))
		for _, r := range line {
			if r == land {
				row = append(row, 1)
			} else {
				row = append(row, 0)
			}
		}
		values[y] = row
	}
	opts.LandThreshold = 1

	return NewGridGraph(values, opts)
}

// InBounds reports whether (x,y) lies within the grid boundaries.
// Complexity: O(1).
func (gg *GridGraph) InBounds(x, y int) bool {
	return x >= 0 && x < gg.Width && y >= 0 && y < gg.Height
}

// IsLand reports whether (x,y) is inside the grid and at or above LandThreshold.
func (gg *GridGraph) IsLand(x, y int) bool {
	return gg.InBounds(x, y) && gg.CellValues[y][x] >= gg.LandThreshold
}

// NeighborOffsets returns the (dx, dy) steps for the grid's connectivity.
// The slice is shared; callers must not modify it.
func (gg *GridGraph) NeighborOffsets() [][2]int {
	return gg.offsets
}

// index maps (x,y) to a row-major index: y*Width + x.
func (gg *GridGraph) index(x, y int) int {
	return y*gg.Width + x
}

// Coordinate converts a row-major index back to (x,y).
// Complexity: O(1).
func (gg *GridGraph) Coordinate(idx int) (x, y int) {
	return idx % gg.Width, idx / gg.Width
}
