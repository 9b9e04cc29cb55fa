package gameplay

import (
	"fmt"

	"github.com/leonelquinteros/gotext"

	"gloomdeep/pkg/engine/world"
	"gloomdeep/pkg/game/entities"
	"gloomdeep/pkg/game/state"
)

// triggerTrap fires the trap under the player, if any. Triggering reveals
// the trap permanently; a warp trap also throws the player to a nearby free
// cell, which is how the autopilot can find itself off its route.
func triggerTrap(g *state.Game) {
	p := g.Player
	trap := g.TrapAt(p.Row, p.Col)
	if trap == nil {
		return
	}
	info := trap.Info()
	trap.Known = true
	g.AddMessage(gotext.Get(info.TriggerMessage), state.SeverityWarning)

	switch trap.Kind {
	case entities.TrapSpike:
		p.HP -= info.Damage
	case entities.TrapWarp:
		warpPlayer(g)
	}
}

// warpPlayer flings the player to a random free walkable cell within two
// steps of the trap
func warpPlayer(g *state.Game) {
	p := g.Player
	var candidates []*world.Cell
	for dRow := -2; dRow <= 2; dRow++ {
		for dCol := -2; dCol <= 2; dCol++ {
			if dRow == 0 && dCol == 0 {
				continue
			}
			cell := g.Grid.GetCell(p.Row+dRow, p.Col+dCol)
			if cell == nil || !cell.Tile.Walkable() {
				continue
			}
			if g.MonsterAt(cell.Row, cell.Col) != nil {
				continue
			}
			candidates = append(candidates, cell)
		}
	}
	if len(candidates) == 0 {
		return
	}
	dest := candidates[g.Rand.Intn(len(candidates))]
	p.Row, p.Col = dest.Row, dest.Col
}

// dropRemains leaves a corpse, and sometimes loose coin, where a monster died
func dropRemains(g *state.Game, m *entities.Monster) {
	info := m.Info()
	corpse := entities.NewItem(entities.ItemCorpse, fmt.Sprintf("%s corpse", info.Name))
	g.DropItem(corpse, m.Row, m.Col)
	if g.Rand.Intn(3) == 0 {
		g.DropItem(entities.NewGold(1+g.Rand.Intn(12)), m.Row, m.Col)
	}
}
