package entities

import (
	"testing"
)

func TestAcquire_GoldGoesToThePurse(t *testing.T) {
	p := NewPlayer(1, 1)
	p.Acquire(NewGold(7))
	p.Acquire(NewGold(5))
	if p.Gold != 12 {
		t.Errorf("gold = %d, want 12", p.Gold)
	}
	if p.Inventory.Size() != 0 {
		t.Error("gold landed in the inventory instead of the purse")
	}
}

func TestKeys(t *testing.T) {
	p := NewPlayer(1, 1)
	if p.HasKey() {
		t.Error("fresh player carries a key")
	}
	p.Acquire(NewItem(ItemKey, "iron key"))
	if !p.HasKey() {
		t.Error("acquired key not found")
	}
	if !p.UseKey() {
		t.Error("UseKey failed with a key carried")
	}
	if p.HasKey() {
		t.Error("key survived being used")
	}
	if p.UseKey() {
		t.Error("UseKey succeeded with no key")
	}
}

func TestHasRangedFor(t *testing.T) {
	p := NewPlayer(1, 1)
	p.Acquire(NewAmmo("arrows", ClassBow, 6))
	if p.HasRangedFor(ClassBow) {
		t.Error("ammo alone should not count as a launcher")
	}
	p.Acquire(NewRangedWeapon("short bow", ClassBow))
	if !p.HasRangedFor(ClassBow) {
		t.Error("bow not matched to its ammo class")
	}
	if p.HasRangedFor(ClassSling) {
		t.Error("bow matched to sling ammo")
	}
}

func TestMonsterBasics(t *testing.T) {
	rat := NewMonster(MonsterRat, 2, 3)
	if !rat.Alive() || rat.HP != rat.Info().MaxHP {
		t.Error("new monster not at full health")
	}
	if !rat.HostileTo() {
		t.Error("wild rat not hostile")
	}

	hound := NewAlly(MonsterHound, 2, 4)
	if hound.HostileTo() {
		t.Error("ally reported hostile")
	}

	rat.HP = 0
	if rat.Alive() {
		t.Error("monster at zero HP still alive")
	}
}

func TestPickupable(t *testing.T) {
	if NewItem(ItemChest, "chest").Pickupable() {
		t.Error("chests must not be carriable")
	}
	if !NewItem(ItemCorpse, "corpse").Pickupable() {
		t.Error("corpses should be carriable")
	}
	if !NewGold(3).Pickupable() {
		t.Error("gold should be carriable")
	}
}
