package autopilot

import (
	"strings"
)

// PickupMode is the auto-pickup policy
type PickupMode int

// Pickup policies
const (
	// PickupOff collects nothing automatically
	PickupOff PickupMode = iota
	// PickupGold collects only gold
	PickupGold
	// PickupSmart collects gold and useful gear, skipping corpses and
	// ammo the player has no launcher for
	PickupSmart
	// PickupAll collects everything that can be carried
	PickupAll
)

// String returns the policy's flag name
func (m PickupMode) String() string {
	switch m {
	case PickupOff:
		return "off"
	case PickupGold:
		return "gold"
	case PickupSmart:
		return "smart"
	case PickupAll:
		return "all"
	default:
		return "unknown"
	}
}

// ParsePickupMode converts a flag value to a policy. Unrecognised values
// fall back to smart.
func ParsePickupMode(s string) PickupMode {
	switch strings.ToLower(s) {
	case "off":
		return PickupOff
	case "gold":
		return PickupGold
	case "all":
		return PickupAll
	default:
		return PickupSmart
	}
}

// AutoPickup decides whether an item of the given kind is collected
// automatically when the player steps onto it. Chests are furniture and are
// never picked up regardless of policy.
func AutoPickup(kind ItemKind, matchingRanged bool, mode PickupMode) bool {
	if kind == ItemChest {
		return false
	}
	switch mode {
	case PickupOff:
		return false
	case PickupGold:
		return kind == ItemGold
	case PickupSmart:
		switch kind {
		case ItemCorpse:
			return false
		case ItemAmmo:
			return matchingRanged
		default:
			return true
		}
	case PickupAll:
		return true
	default:
		return false
	}
}

// Interesting decides whether sighting the item while auto-exploring is
// worth a detour. Chests always are; gold and corpses never are; everything
// else is interesting exactly when the policy would collect it.
func Interesting(it GroundItem, mode PickupMode) bool {
	switch it.Kind {
	case ItemChest:
		return true
	case ItemGold, ItemCorpse:
		return false
	default:
		return AutoPickup(it.Kind, it.MatchingRanged, mode)
	}
}

// BestTarget selects the loot cell most worth walking to: chests beat all
// other loot, then nearer beats farther by Manhattan distance, then earlier
// in the list wins. Returns false when nothing visible is interesting.
func BestTarget(items []GroundItem, from Point, mode PickupMode) (GroundItem, bool) {
	var best GroundItem
	found := false
	for _, it := range items {
		if !Interesting(it, mode) {
			continue
		}
		if !found {
			best = it
			found = true
			continue
		}
		if lootRank(it.Kind) != lootRank(best.Kind) {
			if lootRank(it.Kind) < lootRank(best.Kind) {
				best = it
			}
			continue
		}
		if Manhattan(from, it.Pos) < Manhattan(from, best.Pos) {
			best = it
		}
	}
	return best, found
}

// lootRank orders interest classes; lower is better
func lootRank(kind ItemKind) int {
	if kind == ItemChest {
		return 0
	}
	return 1
}
