package autopilot

import (
	"strings"
	"testing"
)

// fakeWorld is a synthetic dungeon built from a rune map. Legend:
//
//	'#' wall        '.' floor          '+' closed door
//	'*' locked door '?' unexplored floor
//	'@' player      'M' hostile        'a' ally
//	'^' known trap (on floor)
//
// Every cell except '?' starts explored. Moving reveals the cells around
// the player, so frontier exploration makes progress the way it would in
// the real game.
type fakeWorld struct {
	rows, cols int
	terrain    []Terrain
	explored   []bool

	player   Point
	hostiles map[Point]bool
	allies   map[Point]bool
	traps    map[Point]bool
	items    []GroundItem

	hasKey      bool
	hasLockpick bool
	hostileSeen bool
	starving    bool
	finished    bool

	hp        int
	poison    int
	web       int
	confusion int

	// pickWork tracks remaining lockpick progress per locked door
	pickWork map[Point]int

	// warpOn teleports the player on entering a cell, like a hidden trap
	warpOn map[Point]Point

	// afterTurn runs at the end of AdvanceTurn, standing in for monster
	// and status-effect processing
	afterTurn func(w *fakeWorld)

	turns    int
	messages []string
}

func parseWorld(t *testing.T, lines ...string) *fakeWorld {
	t.Helper()
	w := &fakeWorld{
		rows:     len(lines),
		cols:     len(lines[0]),
		hostiles: map[Point]bool{},
		allies:   map[Point]bool{},
		traps:    map[Point]bool{},
		pickWork: map[Point]int{},
		warpOn:   map[Point]Point{},
		hp:       20,
	}
	w.terrain = make([]Terrain, w.rows*w.cols)
	w.explored = make([]bool, w.rows*w.cols)

	foundPlayer := false
	for row, line := range lines {
		if len(line) != w.cols {
			t.Fatalf("row %d has %d columns, want %d", row, len(line), w.cols)
		}
		for col, r := range line {
			p := Point{Row: row, Col: col}
			idx := row*w.cols + col
			w.explored[idx] = true
			switch r {
			case '#':
				w.terrain[idx] = TerrainBlocked
			case '.':
				w.terrain[idx] = TerrainOpen
			case '+':
				w.terrain[idx] = TerrainClosedDoor
			case '*':
				w.terrain[idx] = TerrainLockedDoor
			case '?':
				w.terrain[idx] = TerrainOpen
				w.explored[idx] = false
			case '@':
				w.terrain[idx] = TerrainOpen
				w.player = p
				foundPlayer = true
			case 'M':
				w.terrain[idx] = TerrainOpen
				w.hostiles[p] = true
			case 'a':
				w.terrain[idx] = TerrainOpen
				w.allies[p] = true
			case '^':
				w.terrain[idx] = TerrainOpen
				w.traps[p] = true
			default:
				t.Fatalf("unknown map rune %q at (%d,%d)", r, row, col)
			}
		}
	}
	if !foundPlayer {
		t.Fatal("map has no '@' player cell")
	}
	return w
}

func (w *fakeWorld) index(p Point) int { return p.Row*w.cols + p.Col }

func (w *fakeWorld) Size() (int, int) { return w.rows, w.cols }

func (w *fakeWorld) InBounds(p Point) bool {
	return p.Row >= 0 && p.Row < w.rows && p.Col >= 0 && p.Col < w.cols
}

func (w *fakeWorld) Explored(p Point) bool { return w.explored[w.index(p)] }

func (w *fakeWorld) Terrain(p Point) Terrain { return w.terrain[w.index(p)] }

func (w *fakeWorld) DiagonalOpen(from, to Point) bool {
	a := Point{Row: from.Row, Col: to.Col}
	b := Point{Row: to.Row, Col: from.Col}
	return w.Terrain(a) != TerrainBlocked && w.Terrain(b) != TerrainBlocked
}

func (w *fakeWorld) OccupantAt(p Point) Occupant {
	switch {
	case p == w.player:
		return OccupantSelf
	case w.hostiles[p]:
		return OccupantHostile
	case w.allies[p]:
		return OccupantAlly
	}
	return OccupantNone
}

func (w *fakeWorld) HostileVisible() bool { return w.hostileSeen }

func (w *fakeWorld) TrapKnown(p Point) bool { return w.traps[p] }

func (w *fakeWorld) HasKey() bool      { return w.hasKey }
func (w *fakeWorld) HasLockpick() bool { return w.hasLockpick }

func (w *fakeWorld) VisibleGroundItems() []GroundItem { return w.items }

func (w *fakeWorld) PlayerPos() Point    { return w.player }
func (w *fakeWorld) PlayerHP() int       { return w.hp }
func (w *fakeWorld) PoisonTurns() int    { return w.poison }
func (w *fakeWorld) WebTurns() int       { return w.web }
func (w *fakeWorld) ConfusionTurns() int { return w.confusion }
func (w *fakeWorld) Starving() bool      { return w.starving }
func (w *fakeWorld) Finished() bool      { return w.finished }

// PerformMove mirrors the real movement rules closely enough for the
// controller: doors cost in-place actions before the cell can be entered,
// successful steps reveal the surrounding cells.
func (w *fakeWorld) PerformMove(dRow, dCol int) bool {
	target := Point{Row: w.player.Row + dRow, Col: w.player.Col + dCol}
	if !w.InBounds(target) {
		return false
	}
	idx := w.index(target)
	switch w.terrain[idx] {
	case TerrainBlocked:
		return false
	case TerrainClosedDoor:
		w.terrain[idx] = TerrainOpen
		return true
	case TerrainLockedDoor:
		if w.hasKey {
			w.terrain[idx] = TerrainOpen
			return true
		}
		if w.hasLockpick {
			if w.pickWork[target] == 0 {
				w.pickWork[target] = 3
			}
			w.pickWork[target]--
			if w.pickWork[target] == 0 {
				w.terrain[idx] = TerrainOpen
			}
			return true
		}
		return false
	}
	if w.hostiles[target] || w.allies[target] {
		return false
	}
	w.player = target
	if dest, ok := w.warpOn[target]; ok {
		w.player = dest
	}
	w.reveal(w.player)
	return true
}

// reveal marks the player's cell and its eight neighbours explored
func (w *fakeWorld) reveal(p Point) {
	for dRow := -1; dRow <= 1; dRow++ {
		for dCol := -1; dCol <= 1; dCol++ {
			n := Point{Row: p.Row + dRow, Col: p.Col + dCol}
			if w.InBounds(n) {
				w.explored[w.index(n)] = true
			}
		}
	}
}

func (w *fakeWorld) AdvanceTurn() {
	w.turns++
	if w.afterTurn != nil {
		w.afterTurn(w)
	}
}

func (w *fakeWorld) Emit(text string, severity Severity) {
	w.messages = append(w.messages, text)
}

func (w *fakeWorld) lastMessage() string {
	if len(w.messages) == 0 {
		return ""
	}
	return w.messages[len(w.messages)-1]
}

func (w *fakeWorld) sawMessage(substr string) bool {
	for _, m := range w.messages {
		if strings.Contains(m, substr) {
			return true
		}
	}
	return false
}

// routeCost sums the step cost of every cell on the route after the start
func routeCost(t *testing.T, w World, route []Point) int {
	t.Helper()
	total := 0
	for _, p := range route[1:] {
		cost, ok := StepCost(w, w.Terrain(p))
		if !ok {
			t.Fatalf("route passes unenterable cell %v", p)
		}
		total += cost
	}
	return total
}
