package gameplay

import (
	"gloomdeep/pkg/engine/world"
	"gloomdeep/pkg/game/entities"
	"gloomdeep/pkg/game/state"
)

// PlayerCanSee reports whether the player currently sees the given cell:
// within field-of-view range with a clear line of sight
func PlayerCanSee(g *state.Game, row, col int) bool {
	p := g.Player
	if chebyshev(row-p.Row, col-p.Col) > world.FOVRadius {
		return false
	}
	return world.LineOfSight(g.Grid, p.Row, p.Col, row, col)
}

// MonsterCanSeePlayer reports whether a monster has the player in view.
// Sight is symmetric, so the same range and line test applies.
func MonsterCanSeePlayer(g *state.Game, m *entities.Monster) bool {
	return PlayerCanSee(g, m.Row, m.Col)
}

// HostileVisible reports whether any hostile monster is in the player's view
func HostileVisible(g *state.Game) bool {
	for _, m := range g.Monsters {
		if m.Alive() && m.HostileTo() && PlayerCanSee(g, m.Row, m.Col) {
			return true
		}
	}
	return false
}

// VisibleGround returns the ground items currently in the player's view
func VisibleGround(g *state.Game) []*entities.GroundItem {
	var visible []*entities.GroundItem
	for _, gi := range g.Ground {
		if PlayerCanSee(g, gi.Row, gi.Col) {
			visible = append(visible, gi)
		}
	}
	return visible
}
