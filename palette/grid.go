package palette

// Grid is a palette laid out as [valueIndex][hueIndex].
type Grid [][]Color

// NewGrid allocates a rows x cols grid of black swatches.
func NewGrid(rows, cols int) Grid {
	grid := make(Grid, rows)
	for j := range grid {
		grid[j] = make([]Color, cols)
	}
	return grid
}

// Rows returns the number of value rows.
func (g Grid) Rows() int {
	return len(g)
}

// Cols returns the number of hue columns.
func (g Grid) Cols() int {
	if len(g) == 0 {
		return 0
	}
	return len(g[0])
}

// Empty reports whether the grid has no swatches.
func (g Grid) Empty() bool {
	return g.Rows() == 0 || g.Cols() == 0
}

// Clone returns a deep copy.
func (g Grid) Clone() Grid {
	if g == nil {
		return nil
	}

	clone := make(Grid, len(g))
	for j, row := range g {
		clone[j] = append([]Color(nil), row...)
	}
	return clone
}

// Hex returns the grid as #rrggbb strings.
func (g Grid) Hex() [][]string {
	hex := make([][]string, len(g))
	for j, row := range g {
		hex[j] = make([]string, len(row))
		for i, c := range row {
			hex[j][i] = c.Hex()
		}
	}
	return hex
}
