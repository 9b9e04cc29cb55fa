// Package generator builds populated dungeon levels.
package generator

import (
	"math/rand"

	"gloomdeep/pkg/game/state"
)

// Generator builds a complete, populated game for a depth
type Generator interface {
	// Name returns the name of this generator
	Name() string

	// Generate builds the level. The same rng seed produces the same
	// dungeon.
	Generate(depth int, rng *rand.Rand, opts state.Options) *state.Game
}

// DefaultGenerator is the generator used for normal runs
var DefaultGenerator Generator = &BSPGenerator{}
