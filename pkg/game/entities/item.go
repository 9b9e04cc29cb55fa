// Package entities defines the creatures, items and hazards that populate
// the dungeon.
package entities

import (
	"github.com/zyedidia/generic/mapset"
)

// ItemKind classifies an item for pickup and interaction rules
type ItemKind int

// Item kinds
const (
	ItemGold ItemKind = iota
	ItemChest
	ItemCorpse
	ItemAmmo
	ItemWeapon
	ItemArmor
	ItemPotion
	ItemRation
	ItemKey
	ItemLockpick
)

// WeaponClass ties ammo to the launcher that fires it
type WeaponClass int

// Weapon classes
const (
	ClassNone WeaponClass = iota
	ClassMelee
	ClassBow
	ClassSling
)

// Item represents a single item, in an inventory or on the floor
type Item struct {
	Kind ItemKind
	Name string

	// Amount is the coin count for gold piles and the stack size for ammo
	Amount int

	// Class is the weapon class of a weapon, or the launcher class
	// required by a stack of ammo
	Class WeaponClass

	// Ranged marks weapons that fire ammo of the same class
	Ranged bool
}

// ItemSet is a set of items
type ItemSet = mapset.Set[*Item]

// NewItemSet creates an empty item set
func NewItemSet() ItemSet {
	return mapset.New[*Item]()
}

// NewItem creates a plain item of the given kind
func NewItem(kind ItemKind, name string) *Item {
	return &Item{Kind: kind, Name: name}
}

// NewGold creates a pile of coins
func NewGold(amount int) *Item {
	return &Item{Kind: ItemGold, Name: "gold", Amount: amount}
}

// NewAmmo creates a stack of ammo for the given launcher class
func NewAmmo(name string, class WeaponClass, amount int) *Item {
	return &Item{Kind: ItemAmmo, Name: name, Class: class, Amount: amount}
}

// NewRangedWeapon creates a launcher of the given class
func NewRangedWeapon(name string, class WeaponClass) *Item {
	return &Item{Kind: ItemWeapon, Name: name, Class: class, Ranged: true}
}

// Pickupable reports whether the item can go into an inventory at all.
// Chests are furniture: they are interacted with, never carried.
func (i *Item) Pickupable() bool {
	return i.Kind != ItemChest
}

// GroundItem is an item lying on a dungeon cell
type GroundItem struct {
	Item *Item
	Row  int
	Col  int
}
