// Package autopilot drives hands-free movement through the dungeon: weighted
// route search, frontier-based auto-exploration and the per-turn controller
// that walks a route while watching for anything that should stop it.
//
// The package owns no world state. Everything it needs is consumed through
// the World interface, so the whole engine runs unchanged against the live
// game or against synthetic test dungeons.
package autopilot

// Point is an integer grid coordinate
type Point struct {
	Row int
	Col int
}

// Adjacent reports whether o is one of p's eight neighbours
func (p Point) Adjacent(o Point) bool {
	dRow := p.Row - o.Row
	dCol := p.Col - o.Col
	if dRow < 0 {
		dRow = -dRow
	}
	if dCol < 0 {
		dCol = -dCol
	}
	if dRow == 0 && dCol == 0 {
		return false
	}
	return dRow <= 1 && dCol <= 1
}

// Manhattan returns the Manhattan distance between two points
func Manhattan(a, b Point) int {
	dRow := a.Row - b.Row
	if dRow < 0 {
		dRow = -dRow
	}
	dCol := a.Col - b.Col
	if dCol < 0 {
		dCol = -dCol
	}
	return dRow + dCol
}

// Mode is the controller's automation state
type Mode int

// Controller modes
const (
	ModeIdle Mode = iota
	ModeTraveling
	ModeExploring
)

// String returns the display name of a mode
func (m Mode) String() string {
	switch m {
	case ModeIdle:
		return "idle"
	case ModeTraveling:
		return "traveling"
	case ModeExploring:
		return "exploring"
	default:
		return "unknown"
	}
}

// Terrain is the route-relevant classification of a cell
type Terrain int

// Terrain classes
const (
	TerrainBlocked Terrain = iota
	TerrainOpen
	TerrainClosedDoor
	TerrainLockedDoor
)

// Occupant classifies whatever is standing on a cell
type Occupant int

// Occupant classes
const (
	OccupantNone Occupant = iota
	OccupantSelf
	OccupantAlly
	OccupantHostile
)

// Severity classifies an emitted message
type Severity int

// Message severities
const (
	Info Severity = iota
	Warning
)

// ItemKind classifies a ground item for the loot policy
type ItemKind int

// Loot classification
const (
	ItemGear ItemKind = iota
	ItemGold
	ItemChest
	ItemCorpse
	ItemAmmo
)

// GroundItem is the autopilot's view of one visible item on the floor.
// MatchingRanged is precomputed by the caller so the loot policy itself
// stays free of inventory knowledge.
type GroundItem struct {
	Pos  Point
	Kind ItemKind
	Name string

	// MatchingRanged is true for ammo whose launcher the player owns
	MatchingRanged bool
}

// World is the narrow view of the game the autopilot operates on. The live
// game provides an adapter; tests provide synthetic dungeons.
type World interface {
	// Size returns the grid dimensions in rows and columns
	Size() (rows, cols int)

	// InBounds reports whether a point lies on the grid
	InBounds(p Point) bool

	// Explored reports whether the cell has ever been seen
	Explored(p Point) bool

	// Terrain classifies the cell for routing
	Terrain(p Point) Terrain

	// DiagonalOpen reports whether a diagonal step between two cells is
	// allowed under the corner-cutting rule. Non-diagonal steps pass.
	DiagonalOpen(from, to Point) bool

	// OccupantAt classifies whoever stands on the cell
	OccupantAt(p Point) Occupant

	// HostileVisible reports whether any hostile is currently in view
	HostileVisible() bool

	// TrapKnown reports whether a revealed trap sits on the cell
	TrapKnown(p Point) bool

	// HasKey reports whether the player carries a door key
	HasKey() bool

	// HasLockpick reports whether the player carries a lockpick
	HasLockpick() bool

	// VisibleGroundItems lists the items currently in view on the floor
	VisibleGroundItems() []GroundItem

	// PlayerPos returns the player's current position
	PlayerPos() Point

	// PlayerHP returns current hit points
	PlayerHP() int

	// PoisonTurns returns remaining poison turns
	PoisonTurns() int

	// WebTurns returns remaining web turns
	WebTurns() int

	// ConfusionTurns returns remaining confusion turns
	ConfusionTurns() int

	// Starving reports whether starvation has been reached
	Starving() bool

	// Finished reports whether the underlying game is over
	Finished() bool

	// PerformMove executes one movement action toward the given offset
	// and reports whether any action was taken. Opening, unlocking,
	// attacking and moving all count as actions.
	PerformMove(dRow, dCol int) bool

	// AdvanceTurn runs exactly one world-simulation tick
	AdvanceTurn()

	// Emit reports a player-visible message
	Emit(text string, severity Severity)
}
