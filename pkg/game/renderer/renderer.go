// Package renderer defines the rendering interface and the glyph mapping
// shared by every backend: the TUI, the Ebiten window, the spectator feed
// and the map dump all draw the same symbols.
package renderer

import (
	"strings"

	"gloomdeep/pkg/engine/world"
	"gloomdeep/pkg/game/entities"
	"gloomdeep/pkg/game/gameplay"
	"gloomdeep/pkg/game/state"
)

// Icon constants
const (
	PlayerIcon     = "@"
	IconWall       = "#"
	IconFloor      = "·"
	IconVoid       = " "
	IconDoorClosed = "+"
	IconDoorOpen   = "'"
	IconDoorLocked = "*"
	IconStairs     = ">"
	IconGold       = "$"
	IconChest      = "("
	IconCorpse     = "%"
	IconAmmo       = "|"
	IconKey        = "⚷"
	IconItem       = "?"
	IconTrap       = "^"
)

// Glyph returns the symbol and style for one cell as the player knows it.
// Unexplored cells are void; monsters and loose items only show while the
// player can actually see them, while terrain and known traps persist from
// memory.
func Glyph(g *state.Game, row, col int) (string, TextStyle) {
	cell := g.Grid.GetCell(row, col)
	if cell == nil || !cell.Explored {
		return IconVoid, StyleNormal
	}

	if row == g.Player.Row && col == g.Player.Col {
		return PlayerIcon, StylePlayer
	}

	visible := gameplay.PlayerCanSee(g, row, col)

	if visible {
		if m := g.MonsterAt(row, col); m != nil && m.Alive() {
			if m.Ally {
				return m.Info().Glyph, StyleAlly
			}
			return m.Info().Glyph, StyleMonster
		}
	}

	if trap := g.TrapAt(row, col); trap != nil && trap.Known {
		return IconTrap, StyleTrap
	}

	if visible {
		if items := g.GroundAt(row, col); len(items) > 0 {
			return itemGlyph(items[0].Item)
		}
	}

	switch cell.Tile {
	case world.TileWall:
		return IconWall, StyleWall
	case world.TileFloor:
		return IconFloor, StyleFloor
	case world.TileDoorClosed:
		return IconDoorClosed, StyleDoor
	case world.TileDoorOpen:
		return IconDoorOpen, StyleDoor
	case world.TileDoorLocked:
		return IconDoorLocked, StyleDoor
	case world.TileStairsDown:
		return IconStairs, StyleStairs
	}
	return IconVoid, StyleNormal
}

// itemGlyph returns the symbol and style for a ground item
func itemGlyph(item *entities.Item) (string, TextStyle) {
	switch item.Kind {
	case entities.ItemGold:
		return IconGold, StyleGold
	case entities.ItemChest:
		return IconChest, StyleItem
	case entities.ItemCorpse:
		return IconCorpse, StyleSubtle
	case entities.ItemAmmo:
		return IconAmmo, StyleItem
	case entities.ItemKey, entities.ItemLockpick:
		return IconKey, StyleItem
	default:
		return IconItem, StyleItem
	}
}

// PlainFrame renders the whole known map as unstyled text rows. The
// spectator feed and the map dump both use it.
func PlainFrame(g *state.Game) []string {
	rows := make([]string, 0, g.Grid.Rows())
	for row := 0; row < g.Grid.Rows(); row++ {
		var sb strings.Builder
		for col := 0; col < g.Grid.Cols(); col++ {
			glyph, _ := Glyph(g, row, col)
			sb.WriteString(glyph)
		}
		rows = append(rows, sb.String())
	}
	return rows
}
