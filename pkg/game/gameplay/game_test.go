package gameplay

import (
	"math/rand"
	"strings"
	"testing"

	"gloomdeep/pkg/engine/world"
	"gloomdeep/pkg/game/entities"
	"gloomdeep/pkg/game/state"
)

// buildGame creates a game over a small synthetic map. Legend:
//
//	'#' wall  '.' floor  '+' closed door  '*' locked door
//	'>' stairs down  '@' player on floor
//
// Monsters, traps and ground items are added by the individual tests.
func buildGame(t *testing.T, lines ...string) *state.Game {
	t.Helper()
	g := state.NewGame(rand.New(rand.NewSource(1)), state.Options{})
	g.Grid = world.NewGrid(len(lines), len(lines[0]))
	g.Depth = 1

	for row, line := range lines {
		if len(line) != g.Grid.Cols() {
			t.Fatalf("row %d has %d columns, want %d", row, len(line), g.Grid.Cols())
		}
		for col, r := range line {
			var tile world.Tile
			switch r {
			case '#':
				tile = world.TileWall
			case '.':
				tile = world.TileFloor
			case '+':
				tile = world.TileDoorClosed
			case '*':
				tile = world.TileDoorLocked
			case '>':
				tile = world.TileStairsDown
			case '@':
				tile = world.TileFloor
				g.Player = entities.NewPlayer(row, col)
			default:
				t.Fatalf("unknown map rune %q at (%d,%d)", r, row, col)
			}
			g.Grid.SetTile(row, col, tile)
		}
	}
	if g.Player == nil {
		t.Fatal("map has no '@' player cell")
	}
	return g
}

// lastMessage returns the text of the newest log entry
func lastMessage(g *state.Game) string {
	if len(g.Messages) == 0 {
		return ""
	}
	return g.Messages[len(g.Messages)-1].Text
}

// sawMessage reports whether any log entry contains the substring
func sawMessage(g *state.Game, substr string) bool {
	for _, m := range g.Messages {
		if strings.Contains(m.Text, substr) {
			return true
		}
	}
	return false
}
