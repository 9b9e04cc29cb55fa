package gameplay

import (
	"fmt"

	"github.com/leonelquinteros/gotext"

	"gloomdeep/pkg/engine/world"
	"gloomdeep/pkg/game/entities"
	"gloomdeep/pkg/game/state"
)

// regenInterval is how many turns pass between natural hit point recovery
const regenInterval = 8

// AdvanceTurn runs exactly one world-simulation tick: monsters act, status
// effects burn down, hunger progresses, regeneration applies, and the
// player's surroundings are revealed. Every player action is followed by
// exactly one call, whether it came from a keypress or the autopilot.
func AdvanceTurn(g *state.Game) {
	if g.Finished {
		return
	}
	g.Turn++

	moveMonsters(g)
	applyStatusEffects(g)
	applyHunger(g)
	regenerate(g)

	if g.Player.HP <= 0 {
		g.Finished = true
		g.AddMessage(gotext.Get("You die..."), state.SeverityWarning)
		return
	}

	world.RevealFOVDefault(g.Grid, g.PlayerCell())
}

// moveMonsters gives every living monster its turn
func moveMonsters(g *state.Game) {
	p := g.Player
	for _, m := range g.Monsters {
		if !m.Alive() {
			continue
		}
		dist := chebyshev(m.Row-p.Row, m.Col-p.Col)
		if m.Ally {
			if dist > 1 {
				stepToward(g, m, p.Row, p.Col)
			}
			continue
		}
		if !MonsterCanSeePlayer(g, m) {
			if g.Rand.Intn(4) == 0 {
				wander(g, m)
			}
			continue
		}
		if dist <= 1 {
			attackPlayer(g, m)
		} else {
			stepToward(g, m, p.Row, p.Col)
		}
	}
}

// attackPlayer resolves one monster swing at the player, including any
// status effect the species inflicts
func attackPlayer(g *state.Game, m *entities.Monster) {
	p := g.Player
	info := m.Info()

	p.HP -= info.Damage
	g.AddMessage(fmt.Sprintf(gotext.Get("The %s hits you!"), info.Name), state.SeverityWarning)

	if info.PoisonTurns > 0 {
		p.Poison += info.PoisonTurns
		g.AddMessage(gotext.Get("Venom burns through your veins."), state.SeverityWarning)
	}
	if info.WebTurns > 0 {
		p.Web += info.WebTurns
		g.AddMessage(gotext.Get("Sticky strands wrap around you."), state.SeverityWarning)
	}
	if info.ConfuseTurns > 0 {
		p.Confusion += info.ConfuseTurns
		g.AddMessage(gotext.Get("Your head swims."), state.SeverityWarning)
	}
}

// stepToward moves a monster one greedy step toward a target position.
// Monsters obey the same corner rule as the player.
func stepToward(g *state.Game, m *entities.Monster, row, col int) {
	bestRow, bestCol := m.Row, m.Col
	bestDist := chebyshev(m.Row-row, m.Col-col)

	for _, dir := range world.AllDirections() {
		dRow, dCol := dir.Delta()
		nextRow, nextCol := m.Row+dRow, m.Col+dCol
		cell := g.Grid.GetCell(nextRow, nextCol)
		if cell == nil || !cell.Tile.Walkable() {
			continue
		}
		if dir.Diagonal() && !g.Grid.DiagonalPassable(m.Row, m.Col, nextRow, nextCol) {
			continue
		}
		if g.MonsterAt(nextRow, nextCol) != nil {
			continue
		}
		if nextRow == g.Player.Row && nextCol == g.Player.Col {
			continue
		}
		if d := chebyshev(nextRow-row, nextCol-col); d < bestDist {
			bestDist = d
			bestRow, bestCol = nextRow, nextCol
		}
	}

	m.Row, m.Col = bestRow, bestCol
}

// wander moves a monster one random step, if the cell is free
func wander(g *state.Game, m *entities.Monster) {
	dirs := world.AllDirections()
	dRow, dCol := dirs[g.Rand.Intn(len(dirs))].Delta()
	nextRow, nextCol := m.Row+dRow, m.Col+dCol

	cell := g.Grid.GetCell(nextRow, nextCol)
	if cell == nil || !cell.Tile.Walkable() {
		return
	}
	if g.MonsterAt(nextRow, nextCol) != nil {
		return
	}
	if nextRow == g.Player.Row && nextCol == g.Player.Col {
		return
	}
	m.Row, m.Col = nextRow, nextCol
}

// applyStatusEffects burns down poison, webbing and confusion
func applyStatusEffects(g *state.Game) {
	p := g.Player
	if p.Poison > 0 {
		p.HP--
		p.Poison--
		if p.Poison == 0 {
			g.AddMessage(gotext.Get("The venom wears off."), state.SeverityInfo)
		}
	}
	if p.Web > 0 {
		p.Web--
		if p.Web == 0 {
			g.AddMessage(gotext.Get("You tear free of the webbing."), state.SeverityInfo)
		}
	}
	if p.Confusion > 0 {
		p.Confusion--
		if p.Confusion == 0 {
			g.AddMessage(gotext.Get("Your head clears."), state.SeverityInfo)
		}
	}
}

// applyHunger advances hunger when enabled, announcing each threshold once
func applyHunger(g *state.Game) {
	if !g.Opts.HungerEnabled {
		return
	}
	p := g.Player
	p.Hunger++
	switch p.Hunger {
	case entities.HungerHungry:
		g.AddMessage(gotext.Get("Your stomach growls."), state.SeverityWarning)
	case entities.HungerStarving:
		g.AddMessage(gotext.Get("You are starving!"), state.SeverityWarning)
	}
}

// regenerate slowly recovers hit points while healthy and fed
func regenerate(g *state.Game) {
	p := g.Player
	if g.Turn%regenInterval != 0 {
		return
	}
	if p.HP >= p.MaxHP || p.Poison > 0 || g.Starving() {
		return
	}
	p.HP++
}

// chebyshev returns chessboard distance for an offset
func chebyshev(dRow, dCol int) int {
	if dRow < 0 {
		dRow = -dRow
	}
	if dCol < 0 {
		dCol = -dCol
	}
	if dRow > dCol {
		return dRow
	}
	return dCol
}
