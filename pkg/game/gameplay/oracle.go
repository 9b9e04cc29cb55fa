package gameplay

import (
	log "github.com/sirupsen/logrus"

	"gloomdeep/pkg/engine/world"
	"gloomdeep/pkg/game/autopilot"
	"gloomdeep/pkg/game/state"
)

// Oracle adapts the live game to the autopilot's World interface
type Oracle struct {
	game *state.Game
}

// NewOracle returns the autopilot's view onto a game
func NewOracle(g *state.Game) *Oracle {
	return &Oracle{game: g}
}

func (o *Oracle) Size() (rows, cols int) {
	return o.game.Grid.Rows(), o.game.Grid.Cols()
}

func (o *Oracle) InBounds(p autopilot.Point) bool {
	return o.game.Grid.IsValidPosition(p.Row, p.Col)
}

func (o *Oracle) Explored(p autopilot.Point) bool {
	cell := o.game.Grid.GetCell(p.Row, p.Col)
	return cell != nil && cell.Explored
}

func (o *Oracle) Terrain(p autopilot.Point) autopilot.Terrain {
	cell := o.game.Grid.GetCell(p.Row, p.Col)
	if cell == nil {
		return autopilot.TerrainBlocked
	}
	switch {
	case cell.Tile == world.TileDoorClosed:
		return autopilot.TerrainClosedDoor
	case cell.Tile == world.TileDoorLocked:
		return autopilot.TerrainLockedDoor
	case cell.Tile.Walkable():
		return autopilot.TerrainOpen
	default:
		return autopilot.TerrainBlocked
	}
}

func (o *Oracle) DiagonalOpen(from, to autopilot.Point) bool {
	return o.game.Grid.DiagonalPassable(from.Row, from.Col, to.Row, to.Col)
}

func (o *Oracle) OccupantAt(p autopilot.Point) autopilot.Occupant {
	if p.Row == o.game.Player.Row && p.Col == o.game.Player.Col {
		return autopilot.OccupantSelf
	}
	m := o.game.MonsterAt(p.Row, p.Col)
	if m == nil {
		return autopilot.OccupantNone
	}
	if m.Ally {
		return autopilot.OccupantAlly
	}
	return autopilot.OccupantHostile
}

func (o *Oracle) HostileVisible() bool {
	return HostileVisible(o.game)
}

func (o *Oracle) TrapKnown(p autopilot.Point) bool {
	trap := o.game.TrapAt(p.Row, p.Col)
	return trap != nil && trap.Known
}

func (o *Oracle) HasKey() bool {
	return o.game.Player.HasKey()
}

func (o *Oracle) HasLockpick() bool {
	return o.game.Player.HasLockpick()
}

func (o *Oracle) VisibleGroundItems() []autopilot.GroundItem {
	var items []autopilot.GroundItem
	for _, gi := range VisibleGround(o.game) {
		items = append(items, autopilot.GroundItem{
			Pos:            autopilot.Point{Row: gi.Row, Col: gi.Col},
			Kind:           LootKind(gi.Item),
			Name:           gi.Item.Name,
			MatchingRanged: o.game.Player.HasRangedFor(gi.Item.Class),
		})
	}
	return items
}

func (o *Oracle) PlayerPos() autopilot.Point {
	return autopilot.Point{Row: o.game.Player.Row, Col: o.game.Player.Col}
}

func (o *Oracle) PlayerHP() int {
	return o.game.Player.HP
}

func (o *Oracle) PoisonTurns() int {
	return o.game.Player.Poison
}

func (o *Oracle) WebTurns() int {
	return o.game.Player.Web
}

func (o *Oracle) ConfusionTurns() int {
	return o.game.Player.Confusion
}

func (o *Oracle) Starving() bool {
	return o.game.Starving()
}

func (o *Oracle) Finished() bool {
	return o.game.Finished
}

func (o *Oracle) PerformMove(dRow, dCol int) bool {
	return PerformMove(o.game, dRow, dCol)
}

func (o *Oracle) AdvanceTurn() {
	AdvanceTurn(o.game)
}

func (o *Oracle) Emit(text string, severity autopilot.Severity) {
	log.WithFields(log.Fields{
		"turn": o.game.Turn,
		"text": text,
	}).Debug("autopilot message")

	sev := state.SeverityInfo
	if severity == autopilot.Warning {
		sev = state.SeverityWarning
	}
	o.game.AddMessage(text, sev)
}
