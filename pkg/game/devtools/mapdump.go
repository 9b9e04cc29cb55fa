// Package devtools provides developer tools for testing and debugging.
package devtools

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"gloomdeep/pkg/engine/world"
	"gloomdeep/pkg/game/entities"
	"gloomdeep/pkg/game/renderer"
	"gloomdeep/pkg/game/state"
)

const mapDumpFilename = "map.txt"

// fullSymbol returns the layout symbol for a cell ignoring exploration
func fullSymbol(g *state.Game, row, col int) rune {
	if row == g.Player.Row && col == g.Player.Col {
		return '@'
	}
	if m := g.MonsterAt(row, col); m != nil {
		if m.Ally {
			return 'a'
		}
		return 'm'
	}
	if g.TrapAt(row, col) != nil {
		return '^'
	}
	if len(g.GroundAt(row, col)) > 0 {
		return 'i'
	}

	cell := g.Grid.GetCell(row, col)
	if cell == nil {
		return '#'
	}
	switch cell.Tile {
	case world.TileWall:
		return '#'
	case world.TileDoorClosed:
		return '+'
	case world.TileDoorOpen:
		return '\''
	case world.TileDoorLocked:
		return '*'
	case world.TileStairsDown:
		return '>'
	default:
		return '.'
	}
}

// DumpMap writes a full debug dump to map.txt: metadata, the map as the
// player knows it, the full layout, and entity lists with coordinates.
// Format is human- and LLM-readable (sections, key: value).
func DumpMap(g *state.Game) (string, error) {
	if g.Grid == nil {
		return "", fmt.Errorf("no grid")
	}

	absPath, err := filepath.Abs(mapDumpFilename)
	if err != nil {
		return "", err
	}

	f, err := os.Create(absPath)
	if err != nil {
		return "", err
	}
	defer f.Close()

	rows := g.Grid.Rows()
	cols := g.Grid.Cols()

	fmt.Fprintln(f, "=== MAP DUMP DEBUG (layout, routing, entities) ===")
	fmt.Fprintln(f, "")
	fmt.Fprintln(f, "--- Metadata ---")
	fmt.Fprintf(f, "depth: %d\n", g.Depth)
	fmt.Fprintf(f, "turn: %d\n", g.Turn)
	fmt.Fprintf(f, "grid_rows: %d\n", rows)
	fmt.Fprintf(f, "grid_cols: %d\n", cols)
	fmt.Fprintf(f, "coordinate_system: row,col (0-based, row=vertical, col=horizontal)\n")
	fmt.Fprintf(f, "player_cell: %d,%d\n", g.Player.Row, g.Player.Col)
	fmt.Fprintf(f, "player_hp: %d/%d\n", g.Player.HP, g.Player.MaxHP)
	fmt.Fprintf(f, "player_gold: %d\n", g.Player.Gold)
	fmt.Fprintf(f, "hunger: %d\n", g.Player.Hunger)
	fmt.Fprintln(f, "")

	fmt.Fprintln(f, "--- Legend (cell symbols) ---")
	fmt.Fprintln(f, ". = floor  # = wall  + = closed door  ' = open door  * = locked door  > = stairs  ^ = trap  i = items  m = monster  a = ally  @ = player")
	fmt.Fprintln(f, "")

	fmt.Fprintln(f, "--- Map (as the player knows it) ---")
	for _, line := range renderer.PlainFrame(g) {
		fmt.Fprintln(f, line)
	}
	fmt.Fprintln(f, "")

	fmt.Fprintln(f, "--- Map (full layout) ---")
	for row := 0; row < rows; row++ {
		for col := 0; col < cols; col++ {
			fmt.Fprintf(f, "%c", fullSymbol(g, row, col))
		}
		fmt.Fprintln(f)
	}
	fmt.Fprintln(f, "")

	fmt.Fprintln(f, "Monsters:")
	for _, m := range g.Monsters {
		info := m.Info()
		fmt.Fprintf(f, "  row: %d col: %d name: %q hp: %d ally: %v hostile: %v\n",
			m.Row, m.Col, info.Name, m.HP, m.Ally, m.HostileTo())
	}
	fmt.Fprintln(f, "")

	fmt.Fprintln(f, "Traps:")
	for _, t := range g.Traps {
		fmt.Fprintf(f, "  row: %d col: %d kind: %q known: %v\n", t.Row, t.Col, t.Info().Name, t.Known)
	}
	fmt.Fprintln(f, "")

	fmt.Fprintln(f, "Items on floor:")
	for _, gi := range g.Ground {
		fmt.Fprintf(f, "  row: %d col: %d item_name: %q\n", gi.Row, gi.Col, gi.Item.Name)
	}
	fmt.Fprintln(f, "")

	fmt.Fprintln(f, "Player inventory:")
	if g.Player.Inventory.Size() == 0 {
		fmt.Fprintln(f, "  (none)")
	} else {
		var names []string
		g.Player.Inventory.Each(func(item *entities.Item) {
			names = append(names, item.Name)
		})
		sort.Strings(names)
		for _, n := range names {
			fmt.Fprintf(f, "  item_name: %q\n", n)
		}
	}
	fmt.Fprintln(f, "")

	fmt.Fprintln(f, "=== END MAP DUMP ===")

	if err := f.Sync(); err != nil {
		return absPath, err
	}
	return absPath, nil
}
