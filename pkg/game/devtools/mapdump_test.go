package devtools

import (
	"math/rand"
	"os"
	"strings"
	"testing"

	"gloomdeep/pkg/engine/world"
	"gloomdeep/pkg/game/entities"
	"gloomdeep/pkg/game/state"
)

func TestDumpMap(t *testing.T) {
	t.Chdir(t.TempDir())

	g := state.NewGame(rand.New(rand.NewSource(1)), state.Options{})
	g.Grid = world.NewGrid(3, 5)
	g.Grid.SetTile(1, 1, world.TileFloor)
	g.Grid.SetTile(1, 2, world.TileFloor)
	g.Grid.SetTile(1, 3, world.TileStairsDown)
	g.Player = entities.NewPlayer(1, 1)
	g.Player.Acquire(entities.NewItem(entities.ItemKey, "iron key"))
	g.Monsters = append(g.Monsters, entities.NewMonster(entities.MonsterRat, 1, 2))
	g.Traps = append(g.Traps, entities.NewTrap(entities.TrapSpike, 1, 3))
	world.RevealFOVDefault(g.Grid, g.PlayerCell())

	path, err := DumpMap(g)
	if err != nil {
		t.Fatalf("DumpMap: %v", err)
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("reading dump: %v", err)
	}
	dump := string(raw)

	for _, want := range []string{
		"--- Metadata ---",
		"player_cell: 1,1",
		"--- Map (as the player knows it) ---",
		"--- Map (full layout) ---",
		`name: "giant rat"`,
		`kind: "spike trap"`,
		`item_name: "iron key"`,
		"=== END MAP DUMP ===",
	} {
		if !strings.Contains(dump, want) {
			t.Errorf("dump missing %q", want)
		}
	}

	// The full layout shows hidden entities the player map does not
	if !strings.Contains(dump, "@m^") {
		t.Errorf("full layout row not found in dump:\n%s", dump)
	}
}

func TestDumpMap_NoGrid(t *testing.T) {
	g := state.NewGame(rand.New(rand.NewSource(1)), state.Options{})
	if _, err := DumpMap(g); err == nil {
		t.Error("DumpMap without a grid should fail")
	}
}
