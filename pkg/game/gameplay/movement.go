// Package gameplay provides the core game logic: the movement primitive,
// the turn simulation and the autopilot's view onto both.
package gameplay

import (
	"fmt"

	"github.com/leonelquinteros/gotext"

	"gloomdeep/pkg/engine/world"
	"gloomdeep/pkg/game/entities"
	"gloomdeep/pkg/game/state"
)

// lockpickWork is how many turns of raking a lockpick needs before a lock
// springs. With the turn spent entering, a picked door costs four turns
// against a keyed door's two.
const lockpickWork = 3

// playerDamage is the player's melee damage per hit
const playerDamage = 3

// PerformMove executes one player action toward the given offset and
// reports whether any action was taken. Bumping a hostile attacks it,
// bumping an ally swaps places, bumping a shut door opens or picks it, and
// a zero offset rests. Confusion scrambles the chosen direction before any
// of that, so a confused turn can be wasted on a rejected move.
func PerformMove(g *state.Game, dRow, dCol int) bool {
	p := g.Player
	if g.Finished {
		return false
	}

	if p.Confused() {
		dirs := world.AllDirections()
		dRow, dCol = dirs[g.Rand.Intn(len(dirs))].Delta()
	}

	if dRow == 0 && dCol == 0 {
		return true
	}

	targetRow, targetCol := p.Row+dRow, p.Col+dCol
	cell := g.Grid.GetCell(targetRow, targetCol)
	if cell == nil {
		return false
	}

	if m := g.MonsterAt(targetRow, targetCol); m != nil {
		if m.Ally {
			if !cell.Tile.Walkable() {
				return false
			}
			m.Row, m.Col = p.Row, p.Col
			p.Row, p.Col = targetRow, targetCol
			g.AddMessage(fmt.Sprintf(gotext.Get("You swap places with your %s."), m.Info().Name), state.SeverityInfo)
			enterCell(g)
			return true
		}
		attackMonster(g, m)
		return true
	}

	switch cell.Tile {
	case world.TileDoorClosed:
		cell.Tile = world.TileDoorOpen
		g.AddMessage(gotext.Get("You push the door open."), state.SeverityInfo)
		return true
	case world.TileDoorLocked:
		if p.HasKey() {
			p.UseKey()
			cell.Tile = world.TileDoorOpen
			g.AddMessage(gotext.Get("Your key grinds in the lock and the door swings open."), state.SeverityInfo)
			return true
		}
		if p.HasLockpick() {
			cell.PickProgress++
			if cell.PickProgress >= lockpickWork {
				cell.Tile = world.TileDoorOpen
				g.AddMessage(gotext.Get("The lock springs open."), state.SeverityInfo)
			} else {
				g.AddMessage(gotext.Get("You work your pick into the lock."), state.SeverityInfo)
			}
			return true
		}
		g.AddMessage(gotext.Get("The door is locked."), state.SeverityWarning)
		return false
	}

	if !cell.Tile.Walkable() {
		return false
	}

	if p.Web > 0 {
		g.AddMessage(gotext.Get("You struggle against the webbing."), state.SeverityWarning)
		return true
	}

	p.Row, p.Col = targetRow, targetCol
	enterCell(g)
	return true
}

// attackMonster resolves one melee swing against a monster
func attackMonster(g *state.Game, m *entities.Monster) {
	info := m.Info()
	m.HP -= playerDamage
	if m.HP > 0 {
		g.AddMessage(fmt.Sprintf(gotext.Get("You hit the %s."), info.Name), state.SeverityInfo)
		return
	}
	g.AddMessage(fmt.Sprintf(gotext.Get("You kill the %s!"), info.Name), state.SeverityInfo)
	g.RemoveMonster(m)
	dropRemains(g, m)
}

// enterCell handles everything that happens when the player arrives on a
// new cell: traps fire, loot is collected per policy, the surroundings are
// revealed, and the stairs end the run.
func enterCell(g *state.Game) {
	triggerTrap(g)
	PickupHere(g)
	world.RevealFOVDefault(g.Grid, g.PlayerCell())

	if g.PlayerCell().Tile == world.TileStairsDown {
		g.Finished = true
		g.AddMessage(gotext.Get("You descend into the dark. The run is complete."), state.SeverityInfo)
	}
}
