package world

// Grid represents the game map with encapsulated cell storage.
// Cells are stored in a flat slice indexed row*cols+col.
type Grid struct {
	cells []*Cell
	rows  int
	cols  int
}

// NewGrid creates a new grid of wall cells with the given dimensions
func NewGrid(rows, cols int) *Grid {
	g := &Grid{}
	g.Build(rows, cols)
	return g
}

// Build initializes the grid with the given dimensions
func (g *Grid) Build(rows, cols int) {
	if rows <= 0 || cols <= 0 {
		panic("Grid dimensions must be positive")
	}

	g.rows = rows
	g.cols = cols
	g.cells = make([]*Cell, rows*cols)

	for row := 0; row < rows; row++ {
		for col := 0; col < cols; col++ {
			g.cells[row*cols+col] = NewCell(row, col)
		}
	}
}

// Rows returns the number of rows in the grid
func (g *Grid) Rows() int {
	return g.rows
}

// Cols returns the number of columns in the grid
func (g *Grid) Cols() int {
	return g.cols
}

// IsValidPosition checks if a row/col position is within grid bounds
func (g *Grid) IsValidPosition(row, col int) bool {
	return row >= 0 && row < g.rows && col >= 0 && col < g.cols
}

// IsPlayablePosition checks if a position is within the playable area
// (not on the perimeter). This keeps a 1-cell wall border around the map.
func (g *Grid) IsPlayablePosition(row, col int) bool {
	return row >= 1 && row < g.rows-1 && col >= 1 && col < g.cols-1
}

// GetCell returns the cell at the given position, or nil if out of bounds
func (g *Grid) GetCell(row, col int) *Cell {
	if !g.IsValidPosition(row, col) {
		return nil
	}
	return g.cells[row*g.cols+col]
}

// GetCellRelative returns the cell adjacent to the given cell in the specified direction
func (g *Grid) GetCellRelative(c *Cell, dir Direction) *Cell {
	if c == nil || !dir.IsValid() {
		return nil
	}
	rowRel, colRel := dir.Delta()
	return g.GetCell(c.Row+rowRel, c.Col+colRel)
}

// SetTile sets the tile kind at a position. Returns false if out of bounds.
func (g *Grid) SetTile(row, col int, t Tile) bool {
	cell := g.GetCell(row, col)
	if cell == nil {
		return false
	}
	cell.Tile = t
	return true
}

// CenterPosition returns the row and column of the grid center
func (g *Grid) CenterPosition() (int, int) {
	return g.rows / 2, g.cols / 2
}

// ForEachCell iterates over all cells in the grid, calling the provided function for each
func (g *Grid) ForEachCell(fn func(row, col int, cell *Cell)) {
	for row := 0; row < g.rows; row++ {
		for col := 0; col < g.cols; col++ {
			fn(row, col, g.cells[row*g.cols+col])
		}
	}
}

// DiagonalPassable reports whether a diagonal step between two cells is
// allowed. A diagonal move may not cut a corner: both orthogonally adjacent
// cells flanking the move must be walkable. Non-diagonal steps always pass.
func (g *Grid) DiagonalPassable(fromRow, fromCol, toRow, toCol int) bool {
	dRow := toRow - fromRow
	dCol := toCol - fromCol
	if dRow == 0 || dCol == 0 {
		return true
	}

	horiz := g.GetCell(fromRow, fromCol+dCol)
	vert := g.GetCell(fromRow+dRow, fromCol)
	if horiz == nil || vert == nil {
		return false
	}
	return horiz.Tile.Walkable() && vert.Tile.Walkable()
}

// Validate checks the grid for common issues and returns an error description
// or empty string if valid
func (g *Grid) Validate() string {
	if g.rows <= 0 || g.cols <= 0 {
		return "Grid has invalid dimensions"
	}

	walkable := 0
	g.ForEachCell(func(row, col int, cell *Cell) {
		if cell.Tile.Walkable() {
			walkable++
		}
	})
	if walkable == 0 {
		return "Grid has no walkable cells"
	}

	return ""
}
