package entities

// Hunger thresholds, in hunger points accumulated over turns
const (
	HungerHungry   = 300
	HungerStarving = 450
)

// Player holds the player character's state
type Player struct {
	Row int
	Col int

	HP    int
	MaxHP int

	// Hunger grows by one each turn when hunger is enabled
	Hunger int

	Gold      int
	Inventory ItemSet

	// Status effect timers, in remaining turns
	Poison    int
	Web       int
	Confusion int
}

// NewPlayer creates a player at the given position
func NewPlayer(row, col int) *Player {
	return &Player{
		Row:       row,
		Col:       col,
		HP:        20,
		MaxHP:     20,
		Inventory: NewItemSet(),
	}
}

// Confused reports whether the player currently staggers at random
func (p *Player) Confused() bool {
	return p.Confusion > 0
}

// findItem returns some inventory item of the given kind, or nil
func (p *Player) findItem(kind ItemKind) *Item {
	var found *Item
	p.Inventory.Each(func(item *Item) {
		if found == nil && item.Kind == kind {
			found = item
		}
	})
	return found
}

// HasKey reports whether the player carries a door key
func (p *Player) HasKey() bool {
	return p.findItem(ItemKey) != nil
}

// HasLockpick reports whether the player carries a lockpick
func (p *Player) HasLockpick() bool {
	return p.findItem(ItemLockpick) != nil
}

// UseKey removes one key from the inventory. Returns false if none carried.
func (p *Player) UseKey() bool {
	key := p.findItem(ItemKey)
	if key == nil {
		return false
	}
	p.Inventory.Remove(key)
	return true
}

// HasRangedFor reports whether the player owns a launcher matching the
// given ammo class
func (p *Player) HasRangedFor(class WeaponClass) bool {
	found := false
	p.Inventory.Each(func(item *Item) {
		if item.Kind == ItemWeapon && item.Ranged && item.Class == class {
			found = true
		}
	})
	return found
}

// Acquire puts an item into the inventory, merging gold into the purse
func (p *Player) Acquire(item *Item) {
	if item.Kind == ItemGold {
		p.Gold += item.Amount
		return
	}
	p.Inventory.Put(item)
}
