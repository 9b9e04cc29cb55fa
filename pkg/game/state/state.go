// Package state holds the aggregate mutable game state. Everything the game
// mutates lives here and is passed around explicitly, so tests can run whole
// scenarios on synthetic dungeons.
package state

import (
	"math/rand"

	"gloomdeep/pkg/engine/world"
	"gloomdeep/pkg/game/autopilot"
	"gloomdeep/pkg/game/entities"
)

// Severity classifies a log message for display styling
type Severity int

// Message severities
const (
	SeverityInfo Severity = iota
	SeverityWarning
)

// Message is one entry in the player-facing message log
type Message struct {
	Text     string
	Severity Severity
}

// Options holds run configuration that affects game rules
type Options struct {
	// HungerEnabled turns on hunger progression and starvation
	HungerEnabled bool

	// Pickup is the auto-pickup policy applied when the player enters
	// a cell with items on it
	Pickup autopilot.PickupMode
}

// Game represents a single dungeon run
type Game struct {
	Grid    *world.Grid
	Player  *entities.Player
	Depth   int
	Monsters []*entities.Monster
	Ground  []*entities.GroundItem
	Traps   []*entities.Trap

	// Turn counts completed world-simulation ticks
	Turn int

	Messages []Message

	Rand *rand.Rand
	Opts Options

	// Finished is set when the run is over (death or descent)
	Finished bool
}

// NewGame creates an empty game shell; the generator fills it in
func NewGame(rng *rand.Rand, opts Options) *Game {
	return &Game{
		Rand: rng,
		Opts: opts,
	}
}

// AddMessage appends a message to the player-facing log
func (g *Game) AddMessage(text string, severity Severity) {
	const maxMessages = 8
	g.Messages = append(g.Messages, Message{Text: text, Severity: severity})
	if len(g.Messages) > maxMessages {
		g.Messages = g.Messages[len(g.Messages)-maxMessages:]
	}
}

// MonsterAt returns the living monster at a position, or nil
func (g *Game) MonsterAt(row, col int) *entities.Monster {
	for _, m := range g.Monsters {
		if m.Alive() && m.Row == row && m.Col == col {
			return m
		}
	}
	return nil
}

// RemoveMonster drops a monster from the game
func (g *Game) RemoveMonster(victim *entities.Monster) {
	for i, m := range g.Monsters {
		if m == victim {
			g.Monsters = append(g.Monsters[:i], g.Monsters[i+1:]...)
			return
		}
	}
}

// GroundAt returns all items lying at a position
func (g *Game) GroundAt(row, col int) []*entities.GroundItem {
	var items []*entities.GroundItem
	for _, gi := range g.Ground {
		if gi.Row == row && gi.Col == col {
			items = append(items, gi)
		}
	}
	return items
}

// DropItem places an item on the floor at a position
func (g *Game) DropItem(item *entities.Item, row, col int) {
	g.Ground = append(g.Ground, &entities.GroundItem{Item: item, Row: row, Col: col})
}

// RemoveGroundItem takes an item off the floor
func (g *Game) RemoveGroundItem(target *entities.GroundItem) {
	for i, gi := range g.Ground {
		if gi == target {
			g.Ground = append(g.Ground[:i], g.Ground[i+1:]...)
			return
		}
	}
}

// TrapAt returns the trap at a position, or nil
func (g *Game) TrapAt(row, col int) *entities.Trap {
	for _, t := range g.Traps {
		if t.Row == row && t.Col == col {
			return t
		}
	}
	return nil
}

// PlayerCell returns the cell the player stands on
func (g *Game) PlayerCell() *world.Cell {
	return g.Grid.GetCell(g.Player.Row, g.Player.Col)
}

// Starving reports whether hunger has reached the starvation threshold
func (g *Game) Starving() bool {
	return g.Opts.HungerEnabled && g.Player.Hunger >= entities.HungerStarving
}
