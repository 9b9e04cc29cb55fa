// Package generator tests BSP dungeon generation: seeded determinism,
// start/stairs placement, connectivity and key coverage for locked doors.
package generator

import (
	"fmt"
	"math/rand"
	"strings"
	"testing"

	"gloomdeep/pkg/engine/world"
	"gloomdeep/pkg/game/entities"
	"gloomdeep/pkg/game/state"
)

func generate(seed int64, depth int) *state.Game {
	rng := rand.New(rand.NewSource(seed))
	return DefaultGenerator.Generate(depth, rng, state.Options{})
}

// snapshot renders the complete level to a comparable string
func snapshot(g *state.Game) string {
	var b strings.Builder
	g.Grid.ForEachCell(func(row, col int, cell *world.Cell) {
		if col == 0 && row > 0 {
			b.WriteByte('\n')
		}
		fmt.Fprintf(&b, "%d", cell.Tile)
	})
	fmt.Fprintf(&b, "\nplayer %d,%d depth %d\n", g.Player.Row, g.Player.Col, g.Depth)
	for _, m := range g.Monsters {
		fmt.Fprintf(&b, "monster %d %d,%d ally=%v\n", m.Kind, m.Row, m.Col, m.Ally)
	}
	for _, gi := range g.Ground {
		fmt.Fprintf(&b, "item %d %q %d,%d\n", gi.Item.Kind, gi.Item.Name, gi.Row, gi.Col)
	}
	for _, tr := range g.Traps {
		fmt.Fprintf(&b, "trap %d %d,%d\n", tr.Kind, tr.Row, tr.Col)
	}
	return b.String()
}

func TestGenerate_SeededDeterminism(t *testing.T) {
	first := generate(42, 2)
	again := generate(42, 2)
	if snapshot(first) != snapshot(again) {
		t.Error("same seed produced different dungeons")
	}

	other := generate(43, 2)
	if snapshot(first) == snapshot(other) {
		t.Error("different seeds produced identical dungeons")
	}
}

func TestGenerate_ValidStartingState(t *testing.T) {
	g := generate(7, 1)

	if msg := g.Grid.Validate(); msg != "" {
		t.Fatalf("generated grid invalid: %s", msg)
	}
	cell := g.PlayerCell()
	if cell == nil || !cell.Tile.Walkable() {
		t.Fatal("player not standing on a walkable cell")
	}
	if !cell.Explored {
		t.Error("player's starting surroundings not revealed")
	}

	stairs := 0
	g.Grid.ForEachCell(func(row, col int, c *world.Cell) {
		if c.Tile == world.TileStairsDown {
			stairs++
		}
	})
	if stairs != 1 {
		t.Errorf("stairs down = %d, want exactly 1", stairs)
	}
}

func TestGenerate_BorderIsSolidWall(t *testing.T) {
	g := generate(11, 3)
	rows, cols := g.Grid.Rows(), g.Grid.Cols()
	g.Grid.ForEachCell(func(row, col int, cell *world.Cell) {
		onBorder := row == 0 || row == rows-1 || col == 0 || col == cols-1
		if onBorder && cell.Tile != world.TileWall {
			t.Errorf("border cell (%d,%d) is %v, want wall", row, col, cell.Tile)
		}
	})
}

func TestGenerate_StairsReachableFromStart(t *testing.T) {
	for seed := int64(1); seed <= 5; seed++ {
		g := generate(seed, 1)

		visited := map[*world.Cell]bool{}
		queue := []*world.Cell{g.PlayerCell()}
		visited[g.PlayerCell()] = true
		found := false
		for len(queue) > 0 && !found {
			c := queue[0]
			queue = queue[1:]
			if c.Tile == world.TileStairsDown {
				found = true
				break
			}
			for _, dir := range world.AllDirections() {
				if dir.Diagonal() {
					continue
				}
				dRow, dCol := dir.Delta()
				n := g.Grid.GetCell(c.Row+dRow, c.Col+dCol)
				if n == nil || visited[n] || n.Tile == world.TileWall {
					continue
				}
				visited[n] = true
				queue = append(queue, n)
			}
		}
		if !found {
			t.Errorf("seed %d: no path from start to the stairs", seed)
		}
	}
}

func TestGenerate_KeysCoverLockedDoors(t *testing.T) {
	for seed := int64(1); seed <= 5; seed++ {
		g := generate(seed, 2)

		lockedDoors := 0
		g.Grid.ForEachCell(func(row, col int, cell *world.Cell) {
			if cell.Tile == world.TileDoorLocked {
				lockedDoors++
			}
		})

		keys := 0
		for _, gi := range g.Ground {
			if gi.Item.Kind == entities.ItemKey {
				keys++
			}
		}
		if keys < lockedDoors {
			t.Errorf("seed %d: %d locked doors but only %d keys on the floor", seed, lockedDoors, keys)
		}
	}
}

func TestGenerate_AllyStartsAtThePlayersSide(t *testing.T) {
	g := generate(9, 1)

	var ally *entities.Monster
	for _, m := range g.Monsters {
		if m.Ally {
			ally = m
			break
		}
	}
	if ally == nil {
		t.Fatal("no ally generated")
	}
	dRow, dCol := ally.Row-g.Player.Row, ally.Col-g.Player.Col
	if dRow < -1 || dRow > 1 || dCol < -1 || dCol > 1 || (dRow == 0 && dCol == 0) {
		t.Errorf("ally at (%d,%d), player at (%d,%d); want adjacent",
			ally.Row, ally.Col, g.Player.Row, g.Player.Col)
	}
}

func TestGenerate_NothingSpawnsInWalls(t *testing.T) {
	g := generate(13, 2)
	for _, m := range g.Monsters {
		if !g.Grid.GetCell(m.Row, m.Col).Tile.Walkable() {
			t.Errorf("monster inside a wall at (%d,%d)", m.Row, m.Col)
		}
	}
	for _, gi := range g.Ground {
		if !g.Grid.GetCell(gi.Row, gi.Col).Tile.Walkable() {
			t.Errorf("item inside a wall at (%d,%d)", gi.Row, gi.Col)
		}
	}
	for _, tr := range g.Traps {
		if !g.Grid.GetCell(tr.Row, tr.Col).Tile.Walkable() {
			t.Errorf("trap inside a wall at (%d,%d)", tr.Row, tr.Col)
		}
	}
}

func TestGenerate_DepthScalesTheMap(t *testing.T) {
	shallow := generate(3, 1)
	deep := generate(3, 5)
	if deep.Grid.Rows() <= shallow.Grid.Rows() || deep.Grid.Cols() <= shallow.Grid.Cols() {
		t.Errorf("depth 5 grid (%dx%d) not larger than depth 1 (%dx%d)",
			deep.Grid.Rows(), deep.Grid.Cols(), shallow.Grid.Rows(), shallow.Grid.Cols())
	}
}
