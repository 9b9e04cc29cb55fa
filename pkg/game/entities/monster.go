package entities

// MonsterKind identifies a monster species
type MonsterKind int

// Monster kinds
const (
	MonsterRat MonsterKind = iota
	MonsterGhoul
	MonsterSpider
	MonsterViper
	MonsterHound
)

// MonsterInfo contains the per-species stat block
type MonsterInfo struct {
	Name    string
	Glyph   string
	MaxHP   int
	Damage  int
	Hostile bool

	// On-hit status effects inflicted on the player, in turns
	PoisonTurns  int
	WebTurns     int
	ConfuseTurns int
}

// MonsterKinds maps each species to its stat block
var MonsterKinds = map[MonsterKind]MonsterInfo{
	MonsterRat: {
		Name:    "giant rat",
		Glyph:   "r",
		MaxHP:   4,
		Damage:  1,
		Hostile: true,
	},
	MonsterGhoul: {
		Name:         "ghoul",
		Glyph:        "z",
		MaxHP:        8,
		Damage:       2,
		Hostile:      true,
		ConfuseTurns: 3,
	},
	MonsterSpider: {
		Name:     "cave spider",
		Glyph:    "x",
		MaxHP:    5,
		Damage:   1,
		Hostile:  true,
		WebTurns: 2,
	},
	MonsterViper: {
		Name:        "pit viper",
		Glyph:       "s",
		MaxHP:       6,
		Damage:      1,
		Hostile:     true,
		PoisonTurns: 4,
	},
	MonsterHound: {
		Name:    "pack hound",
		Glyph:   "d",
		MaxHP:   10,
		Damage:  2,
		Hostile: false,
	},
}

// Monster is a single creature in the dungeon
type Monster struct {
	Kind MonsterKind
	Row  int
	Col  int
	HP   int

	// Ally marks a creature travelling with the player. Allies never
	// block the player's path; stepping into one swaps positions.
	Ally bool
}

// NewMonster creates a monster of the given kind at full health
func NewMonster(kind MonsterKind, row, col int) *Monster {
	info := MonsterKinds[kind]
	return &Monster{
		Kind: kind,
		Row:  row,
		Col:  col,
		HP:   info.MaxHP,
	}
}

// NewAlly creates a friendly pack-mate of the given kind
func NewAlly(kind MonsterKind, row, col int) *Monster {
	m := NewMonster(kind, row, col)
	m.Ally = true
	return m
}

// Info returns the species stat block
func (m *Monster) Info() MonsterInfo {
	return MonsterKinds[m.Kind]
}

// HostileTo reports whether the monster will attack the player
func (m *Monster) HostileTo() bool {
	return !m.Ally && m.Info().Hostile
}

// Alive reports whether the monster is still up
func (m *Monster) Alive() bool {
	return m.HP > 0
}
