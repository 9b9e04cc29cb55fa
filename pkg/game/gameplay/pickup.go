package gameplay

import (
	"fmt"

	"github.com/leonelquinteros/gotext"

	"gloomdeep/pkg/game/autopilot"
	"gloomdeep/pkg/game/entities"
	"gloomdeep/pkg/game/state"
)

// LootKind maps an item to its loot-policy classification
func LootKind(item *entities.Item) autopilot.ItemKind {
	switch item.Kind {
	case entities.ItemGold:
		return autopilot.ItemGold
	case entities.ItemChest:
		return autopilot.ItemChest
	case entities.ItemCorpse:
		return autopilot.ItemCorpse
	case entities.ItemAmmo:
		return autopilot.ItemAmmo
	default:
		return autopilot.ItemGear
	}
}

// PickupHere applies the auto-pickup policy to the cell the player stands on
func PickupHere(g *state.Game) {
	p := g.Player
	for _, gi := range g.GroundAt(p.Row, p.Col) {
		matching := p.HasRangedFor(gi.Item.Class)
		if !autopilot.AutoPickup(LootKind(gi.Item), matching, g.Opts.Pickup) {
			continue
		}
		takeItem(g, gi)
	}
}

// PickupAll picks up everything carriable on the player's cell, regardless
// of policy. Bound to the manual pickup key.
func PickupAll(g *state.Game) bool {
	p := g.Player
	items := g.GroundAt(p.Row, p.Col)
	taken := false
	for _, gi := range items {
		if !gi.Item.Pickupable() {
			continue
		}
		takeItem(g, gi)
		taken = true
	}
	if !taken {
		g.AddMessage(gotext.Get("There is nothing here to pick up."), state.SeverityInfo)
	}
	return taken
}

// takeItem moves one ground item into the player's possession
func takeItem(g *state.Game, gi *entities.GroundItem) {
	g.RemoveGroundItem(gi)
	g.Player.Acquire(gi.Item)
	if gi.Item.Kind == entities.ItemGold {
		g.AddMessage(fmt.Sprintf(gotext.Get("You pick up %d gold."), gi.Item.Amount), state.SeverityInfo)
		return
	}
	g.AddMessage(fmt.Sprintf(gotext.Get("You pick up the %s."), gi.Item.Name), state.SeverityInfo)
}
