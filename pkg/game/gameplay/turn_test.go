package gameplay

import (
	"testing"

	"gloomdeep/pkg/game/entities"
)

func TestAdvanceTurn_CountsAndReveals(t *testing.T) {
	g := buildGame(t,
		"####",
		"#@.#",
		"####",
	)
	AdvanceTurn(g)
	if g.Turn != 1 {
		t.Errorf("turn = %d, want 1", g.Turn)
	}
	if !g.PlayerCell().Explored {
		t.Error("player's surroundings not revealed")
	}
}

func TestAdvanceTurn_NoopWhenFinished(t *testing.T) {
	g := buildGame(t,
		"####",
		"#@.#",
		"####",
	)
	g.Finished = true
	AdvanceTurn(g)
	if g.Turn != 0 {
		t.Errorf("turn advanced to %d on a finished game", g.Turn)
	}
}

func TestAdvanceTurn_AdjacentViperBitesAndPoisons(t *testing.T) {
	g := buildGame(t,
		"#####",
		"#@..#",
		"#####",
	)
	viper := entities.NewMonster(entities.MonsterViper, 1, 2)
	g.Monsters = append(g.Monsters, viper)

	AdvanceTurn(g)
	// The bite lands, then the first poison tick burns one more point
	want := 20 - viper.Info().Damage - 1
	if g.Player.HP != want {
		t.Errorf("player HP = %d, want %d", g.Player.HP, want)
	}
	if g.Player.Poison != viper.Info().PoisonTurns-1 {
		t.Errorf("poison = %d, want %d", g.Player.Poison, viper.Info().PoisonTurns-1)
	}
	if !sawMessage(g, "The pit viper hits you!") {
		t.Errorf("no attack message in %v", g.Messages)
	}
	if !sawMessage(g, "Venom burns through your veins.") {
		t.Errorf("no poison message in %v", g.Messages)
	}
}

func TestAdvanceTurn_HostileClosesIn(t *testing.T) {
	g := buildGame(t,
		"#######",
		"#@....#",
		"#######",
	)
	rat := entities.NewMonster(entities.MonsterRat, 1, 5)
	g.Monsters = append(g.Monsters, rat)

	AdvanceTurn(g)
	if rat.Col != 4 {
		t.Errorf("rat at col %d, want 4 (one step toward the player)", rat.Col)
	}
	if g.Player.HP != 20 {
		t.Errorf("player HP = %d, want 20 (rat not yet in reach)", g.Player.HP)
	}
}

func TestAdvanceTurn_WallBlocksMonsterSight(t *testing.T) {
	// The rat cannot see through the wall, so it never marches on the
	// player; at most it wanders inside its own chamber.
	g := buildGame(t,
		"#######",
		"#@#...#",
		"#######",
	)
	rat := entities.NewMonster(entities.MonsterRat, 1, 5)
	g.Monsters = append(g.Monsters, rat)

	for i := 0; i < 20; i++ {
		AdvanceTurn(g)
	}
	if g.Player.HP != 20 {
		t.Errorf("player HP = %d, want 20 (rat is sealed off)", g.Player.HP)
	}
	if rat.Col <= 2 {
		t.Errorf("rat at col %d, impossible through the wall", rat.Col)
	}
}

func TestAdvanceTurn_AllyFollows(t *testing.T) {
	g := buildGame(t,
		"#######",
		"#@....#",
		"#######",
	)
	hound := entities.NewAlly(entities.MonsterHound, 1, 4)
	g.Monsters = append(g.Monsters, hound)

	AdvanceTurn(g)
	if hound.Col != 3 {
		t.Errorf("hound at col %d, want 3 (one step toward the player)", hound.Col)
	}

	// Adjacent allies hold position instead of crowding
	AdvanceTurn(g)
	AdvanceTurn(g)
	if hound.Col != 2 {
		t.Errorf("hound at col %d, want 2 (stays at arm's length)", hound.Col)
	}
}

func TestAdvanceTurn_StatusEffectsBurnDown(t *testing.T) {
	g := buildGame(t,
		"####",
		"#@.#",
		"####",
	)
	g.Player.Poison = 1
	g.Player.Web = 1
	g.Player.Confusion = 1

	AdvanceTurn(g)
	if g.Player.Poison != 0 || g.Player.Web != 0 || g.Player.Confusion != 0 {
		t.Errorf("timers = %d/%d/%d, want all zero",
			g.Player.Poison, g.Player.Web, g.Player.Confusion)
	}
	if g.Player.HP != 19 {
		t.Errorf("player HP = %d, want 19 (one poison tick)", g.Player.HP)
	}
	if !sawMessage(g, "The venom wears off.") {
		t.Error("no poison wear-off message")
	}
	if !sawMessage(g, "You tear free of the webbing.") {
		t.Error("no web wear-off message")
	}
	if !sawMessage(g, "Your head clears.") {
		t.Error("no confusion wear-off message")
	}
}

func TestAdvanceTurn_HungerProgression(t *testing.T) {
	g := buildGame(t,
		"####",
		"#@.#",
		"####",
	)
	g.Opts.HungerEnabled = true
	g.Player.Hunger = entities.HungerHungry - 1

	AdvanceTurn(g)
	if g.Player.Hunger != entities.HungerHungry {
		t.Errorf("hunger = %d, want %d", g.Player.Hunger, entities.HungerHungry)
	}
	if lastMessage(g) != "Your stomach growls." {
		t.Errorf("last message = %q", lastMessage(g))
	}

	g.Player.Hunger = entities.HungerStarving - 1
	AdvanceTurn(g)
	if !g.Starving() {
		t.Error("not starving at the starvation threshold")
	}
	if lastMessage(g) != "You are starving!" {
		t.Errorf("last message = %q", lastMessage(g))
	}
}

func TestAdvanceTurn_HungerDisabled(t *testing.T) {
	g := buildGame(t,
		"####",
		"#@.#",
		"####",
	)
	for i := 0; i < 10; i++ {
		AdvanceTurn(g)
	}
	if g.Player.Hunger != 0 {
		t.Errorf("hunger = %d with hunger disabled, want 0", g.Player.Hunger)
	}
	if g.Starving() {
		t.Error("starving with hunger disabled")
	}
}

func TestAdvanceTurn_Regeneration(t *testing.T) {
	g := buildGame(t,
		"####",
		"#@.#",
		"####",
	)
	g.Player.HP = 10
	g.Turn = regenInterval - 1

	AdvanceTurn(g)
	if g.Player.HP != 11 {
		t.Errorf("player HP = %d, want 11 (regen tick)", g.Player.HP)
	}

	// No recovery while poisoned, and never past the maximum
	g.Player.Poison = 2
	g.Turn = regenInterval - 1
	AdvanceTurn(g)
	if g.Player.HP != 10 {
		t.Errorf("player HP = %d, want 10 (poison tick, no regen)", g.Player.HP)
	}

	g.Player.Poison = 0
	g.Player.HP = g.Player.MaxHP
	g.Turn = regenInterval - 1
	AdvanceTurn(g)
	if g.Player.HP != g.Player.MaxHP {
		t.Errorf("player HP = %d, want capped at %d", g.Player.HP, g.Player.MaxHP)
	}
}

func TestAdvanceTurn_DeathEndsTheRun(t *testing.T) {
	g := buildGame(t,
		"####",
		"#@.#",
		"####",
	)
	g.Player.HP = 1
	g.Player.Poison = 1

	AdvanceTurn(g)
	if g.Player.HP > 0 {
		t.Fatalf("player HP = %d, want 0 or less", g.Player.HP)
	}
	if !g.Finished {
		t.Error("game not finished after death")
	}
	if !sawMessage(g, "You die...") {
		t.Errorf("no death message in %v", g.Messages)
	}
}

func TestHostileVisible_LineOfSight(t *testing.T) {
	g := buildGame(t,
		"#######",
		"#@#...#",
		"#######",
	)
	rat := entities.NewMonster(entities.MonsterRat, 1, 4)
	g.Monsters = append(g.Monsters, rat)

	if HostileVisible(g) {
		t.Error("hostile visible through a solid wall")
	}

	// The same rat in an open corridor is in plain view
	open := buildGame(t,
		"#######",
		"#@....#",
		"#######",
	)
	open.Monsters = append(open.Monsters, entities.NewMonster(entities.MonsterRat, 1, 4))
	if !HostileVisible(open) {
		t.Error("hostile in an open corridor not visible")
	}

	// Allies never count as danger
	open.Monsters = []*entities.Monster{entities.NewAlly(entities.MonsterHound, 1, 3)}
	if HostileVisible(open) {
		t.Error("ally reported as a visible hostile")
	}
}

func TestVisibleGround_RangeAndWalls(t *testing.T) {
	g := buildGame(t,
		"##########",
		"#@.......#",
		"##########",
	)
	g.DropItem(entities.NewGold(3), 1, 3)
	g.DropItem(entities.NewGold(4), 1, 8) // beyond the sight radius

	visible := VisibleGround(g)
	if len(visible) != 1 {
		t.Fatalf("visible items = %d, want 1", len(visible))
	}
	if visible[0].Col != 3 {
		t.Errorf("visible item at col %d, want 3", visible[0].Col)
	}
}
