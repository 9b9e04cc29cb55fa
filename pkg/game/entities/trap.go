package entities

// TrapKind identifies a trap type
type TrapKind int

// Trap kinds
const (
	// TrapSpike damages whoever steps on it
	TrapSpike TrapKind = iota
	// TrapWarp flings the victim to a nearby cell
	TrapWarp
)

// TrapInfo contains display information for each trap kind
type TrapInfo struct {
	Name           string
	Glyph          string
	Damage         int
	TriggerMessage string
}

// TrapKinds maps trap kinds to their display information
var TrapKinds = map[TrapKind]TrapInfo{
	TrapSpike: {
		Name:           "spike trap",
		Glyph:          "^",
		Damage:         3,
		TriggerMessage: "Spikes shoot up from the floor!",
	},
	TrapWarp: {
		Name:           "warp trap",
		Glyph:          "^",
		TriggerMessage: "The floor twists and flings you aside!",
	},
}

// Trap is a floor trap on a dungeon cell
type Trap struct {
	Kind TrapKind
	Row  int
	Col  int

	// Known is set once the trap has revealed itself by triggering.
	// Known traps are routed around by the autopilot.
	Known bool
}

// NewTrap creates a hidden trap at the given position
func NewTrap(kind TrapKind, row, col int) *Trap {
	return &Trap{Kind: kind, Row: row, Col: col}
}

// Info returns the trap's display information
func (t *Trap) Info() TrapInfo {
	return TrapKinds[t.Kind]
}
