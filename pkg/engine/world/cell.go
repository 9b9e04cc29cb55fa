// Package world provides generic 2D grid-based world primitives.
// These are engine-level constructs usable by any tile-based game.
package world

// Cell represents a single cell in the grid
type Cell struct {
	Row int
	Col int

	Tile Tile

	// Explored is set once the cell has been inside the player's
	// field of view at least once.
	Explored bool

	// PickProgress counts lockpicking turns already spent on a locked
	// door cell. The lock springs once enough work has gone in.
	PickProgress int
}

// NewCell creates a new wall cell at the given position
func NewCell(row, col int) *Cell {
	return &Cell{
		Row:  row,
		Col:  col,
		Tile: TileWall,
	}
}
