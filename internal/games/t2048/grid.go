package t2048

// Cell identifies a position on the grid.
type Cell struct {
	Row int
	Col int
}

// Grid is an N×N matrix of tile values. Zero marks an empty cell.
type Grid [][]int

// NewGrid returns an empty size×size grid.
func NewGrid(size int) Grid {
	g := make(Grid, size)
	for r := range g {
		g[r] = make([]int, size)
	}
	return g
}

// Size returns the grid dimension.
func (g Grid) Size() int {
	return len(g)
}

// Clone returns a deep copy of the grid.
func (g Grid) Clone() Grid {
	c := make(Grid, len(g))
	for r := range g {
		c[r] = append([]int(nil), g[r]...)
	}
	return c
}

// Equal reports whether both grids have the same shape and values.
func (g Grid) Equal(other Grid) bool {
	if len(g) != len(other) {
		return false
	}
	for r := range g {
		if len(g[r]) != len(other[r]) {
			return false
		}
		for c := range g[r] {
			if g[r][c] != other[r][c] {
				return false
			}
		}
	}
	return true
}

// Clear sets every cell to zero.
func (g Grid) Clear() {
	for r := range g {
		for c := range g[r] {
			g[r][c] = 0
		}
	}
}

// EmptyCells returns the empty cells in row-major order.
func (g Grid) EmptyCells() []Cell {
	var cells []Cell
	for r := range g {
		for c := range g[r] {
			if g[r][c] == 0 {
				cells = append(cells, Cell{Row: r, Col: c})
			}
		}
	}
	return cells
}

// HasEmptyCell returns true if at least one cell is empty.
func (g Grid) HasEmptyCell() bool {
	for r := range g {
		for c := range g[r] {
			if g[r][c] == 0 {
				return true
			}
		}
	}
	return false
}

// Count returns the number of nonzero cells.
func (g Grid) Count() int {
	n := 0
	for r := range g {
		for c := range g[r] {
			if g[r][c] != 0 {
				n++
			}
		}
	}
	return n
}

// MaxTile returns the largest value on the grid.
func (g Grid) MaxTile() int {
	maxVal := 0
	for r := range g {
		for c := range g[r] {
			if g[r][c] > maxVal {
				maxVal = g[r][c]
			}
		}
	}
	return maxVal
}

// Row returns a copy of row r.
func (g Grid) Row(r int) []int {
	return append([]int(nil), g[r]...)
}

// SetRow overwrites row r with line.
func (g Grid) SetRow(r int, line []int) {
	copy(g[r], line)
}

// Column returns a copy of column c, top to bottom.
func (g Grid) Column(c int) []int {
	col := make([]int, len(g))
	for r := range g {
		col[r] = g[r][c]
	}
	return col
}

// SetColumn overwrites column c with line, top to bottom.
func (g Grid) SetColumn(c int, line []int) {
	for r := range g {
		g[r][c] = line[r]
	}
}

// hasAdjacentPair reports whether two horizontally or vertically
// neighbouring cells hold the same value. Rows are scanned first.
func (g Grid) hasAdjacentPair() bool {
	n := len(g)
	for r := range n {
		for c := 0; c < n-1; c++ {
			if g[r][c] == g[r][c+1] {
				return true
			}
		}
	}
	for c := range n {
		for r := 0; r < n-1; r++ {
			if g[r][c] == g[r+1][c] {
				return true
			}
		}
	}
	return false
}
