package world

// Tile is the terrain of a single grid cell.
type Tile int

// Terrain kinds
const (
	TileWall Tile = iota
	TileFloor
	TileDoorClosed
	TileDoorOpen
	TileDoorLocked
	TileStairsDown
)

// String returns the display name of a tile kind
func (t Tile) String() string {
	switch t {
	case TileWall:
		return "wall"
	case TileFloor:
		return "floor"
	case TileDoorClosed:
		return "closed door"
	case TileDoorOpen:
		return "open door"
	case TileDoorLocked:
		return "locked door"
	case TileStairsDown:
		return "staircase"
	default:
		return "unknown"
	}
}

// Walkable reports whether the tile can be stood on as-is.
// Closed and locked doors are not walkable until opened.
func (t Tile) Walkable() bool {
	switch t {
	case TileFloor, TileDoorOpen, TileStairsDown:
		return true
	default:
		return false
	}
}

// Door reports whether the tile is any kind of door
func (t Tile) Door() bool {
	switch t {
	case TileDoorClosed, TileDoorOpen, TileDoorLocked:
		return true
	default:
		return false
	}
}

// BlocksSight reports whether the tile stops line of sight
func (t Tile) BlocksSight() bool {
	switch t {
	case TileWall, TileDoorClosed, TileDoorLocked:
		return true
	default:
		return false
	}
}
