package autopilot

import (
	"fmt"
	"time"

	"github.com/leonelquinteros/gotext"
)

// DefaultStepDelay paces visible automation; one step per delay, each step
// one full game turn
const DefaultStepDelay = 60 * time.Millisecond

// Controller is the per-turn automation driver. It owns the current mode,
// the resolved route and its cursor, and the interrupt policy. All methods
// run on the single game thread; nothing here is safe for concurrent use,
// and nothing needs to be.
type Controller struct {
	world  World
	pickup PickupMode

	mode   Mode
	path   []Point
	cursor int

	// lootGoal is set while the current explore route heads for spotted
	// loot rather than the frontier
	lootGoal *Point

	stepDelay time.Duration
	waited    time.Duration
}

// New creates an idle controller over the given world
func New(w World, stepDelay time.Duration, pickup PickupMode) *Controller {
	if stepDelay <= 0 {
		stepDelay = DefaultStepDelay
	}
	return &Controller{
		world:     w,
		pickup:    pickup,
		stepDelay: stepDelay,
	}
}

// Mode returns the current automation mode
func (c *Controller) Mode() Mode {
	return c.mode
}

// Active reports whether automation is running
func (c *Controller) Active() bool {
	return c.mode != ModeIdle
}

// Remaining returns the path cells not yet entered, for display
func (c *Controller) Remaining() []Point {
	if c.mode == ModeIdle || c.cursor >= len(c.path) {
		return nil
	}
	return c.path[c.cursor:]
}

// reset silently returns the controller to Idle and clears the route
func (c *Controller) reset() {
	c.mode = ModeIdle
	c.path = nil
	c.cursor = 0
	c.lootGoal = nil
	c.waited = 0
}

// stop returns to Idle and reports why
func (c *Controller) stop(text string, severity Severity) {
	c.reset()
	c.world.Emit(text, severity)
}

// Travel starts walking toward goal. The request is rejected, leaving the
// controller Idle, when the goal is the current cell, unexplored,
// unenterable, occupied, or unreachable.
func (c *Controller) Travel(goal Point) bool {
	w := c.world
	if w.Finished() {
		return false
	}
	c.reset()

	pos := w.PlayerPos()
	if goal == pos {
		w.Emit(gotext.Get("You are already there."), Info)
		return false
	}
	if !w.InBounds(goal) || !w.Explored(goal) {
		w.Emit(gotext.Get("You have not explored there yet."), Warning)
		return false
	}
	if _, ok := StepCost(w, w.Terrain(goal)); !ok {
		w.Emit(gotext.Get("You cannot walk there."), Warning)
		return false
	}
	if occ := w.OccupantAt(goal); occ != OccupantNone && occ != OccupantSelf {
		w.Emit(gotext.Get("Something is standing there."), Warning)
		return false
	}

	route := FindRoute(w, pos, goal, true)
	if len(route) < 2 {
		w.Emit(gotext.Get("No path found."), Warning)
		return false
	}

	c.path = route[1:]
	c.cursor = 0
	c.mode = ModeTraveling
	w.Emit(gotext.Get("You set off."), Info)
	return true
}

// Explore starts walking toward the nearest unexplored terrain. Rejected
// while a hostile is in view or when nothing reachable remains unexplored.
func (c *Controller) Explore() bool {
	w := c.world
	if w.Finished() {
		return false
	}
	c.reset()

	if w.HostileVisible() {
		w.Emit(gotext.Get("Not with enemies in sight."), Warning)
		return false
	}
	if !c.routeToFrontier() {
		w.Emit(gotext.Get("There is nothing left to explore."), Info)
		return false
	}

	c.mode = ModeExploring
	w.Emit(gotext.Get("You begin exploring."), Info)
	return true
}

// Cancel stops automation on the player's request
func (c *Controller) Cancel() {
	if c.mode == ModeIdle {
		return
	}
	c.stop(gotext.Get("You stop."), Info)
}

// Update advances the real-time pacing clock and performs at most one step
// once the per-step delay has elapsed. Call it every frame while the game
// runs; it is a no-op when Idle.
func (c *Controller) Update(dt time.Duration) {
	if c.mode == ModeIdle {
		return
	}
	c.waited += dt
	if c.waited < c.stepDelay {
		return
	}
	c.waited = 0
	c.step()
}

// step performs one automation turn: validate, move, tick the world, and
// evaluate every interrupt condition. Each completed step is behaviorally
// identical to a manual move keypress.
func (c *Controller) step() {
	w := c.world

	if w.Finished() {
		c.reset()
		return
	}

	// Safety interrupts checked before anything moves
	if w.HostileVisible() {
		c.stop(gotext.Get("You spot danger and stop."), Warning)
		return
	}
	if w.Starving() {
		c.stop(gotext.Get("You are too hungry to go on."), Warning)
		return
	}
	if w.ConfusionTurns() > 0 {
		c.stop(gotext.Get("You are too confused to keep going."), Warning)
		return
	}

	if c.mode == ModeExploring {
		c.retargetLoot()
	}

	if c.cursor >= len(c.path) {
		if c.mode == ModeTraveling {
			c.stop(gotext.Get("You arrive."), Info)
			return
		}
		if !c.routeToFrontier() {
			c.stop(gotext.Get("You have explored everywhere you can."), Info)
			return
		}
	}

	pos := w.PlayerPos()
	next := c.path[c.cursor]

	// The world may have shifted under the route: a trap moved the
	// player, a door swung elsewhere. Exploring replans once; traveling
	// gives up.
	if !pos.Adjacent(next) {
		if c.mode != ModeExploring || !c.routeToFrontier() {
			c.stop(gotext.Get("Your route is no longer valid."), Warning)
			return
		}
		next = c.path[c.cursor]
		if !pos.Adjacent(next) {
			c.stop(gotext.Get("Your route is no longer valid."), Warning)
			return
		}
	}

	if w.OccupantAt(next) == OccupantHostile {
		c.stop(gotext.Get("A monster blocks your path."), Warning)
		return
	}

	hp := w.PlayerHP()
	poison := w.PoisonTurns()
	web := w.WebTurns()
	confusion := w.ConfusionTurns()

	if !w.PerformMove(next.Row-pos.Row, next.Col-pos.Col) {
		c.stop(gotext.Get("Something blocks your way."), Warning)
		return
	}

	now := w.PlayerPos()
	desynced := now != next && now != pos
	if now == next {
		// Arrived on the intended cell; an in-place action (opening a
		// door) leaves the cursor put for a retry next step.
		c.cursor++
	}

	// The move consumed the player's action, so the world ticks exactly
	// once, same as a manual keypress.
	w.AdvanceTurn()

	if desynced {
		c.stop(gotext.Get("You lose your bearings."), Warning)
		return
	}
	if w.Starving() {
		c.stop(gotext.Get("You are too hungry to go on."), Warning)
		return
	}
	if w.PlayerHP() < hp {
		c.stop(gotext.Get("You are taking damage."), Warning)
		return
	}
	if w.PoisonTurns() > poison {
		c.stop(gotext.Get("You have been poisoned."), Warning)
		return
	}
	if w.WebTurns() > web {
		c.stop(gotext.Get("You are tangled in webbing."), Warning)
		return
	}
	if w.ConfusionTurns() > confusion {
		c.stop(gotext.Get("You suddenly feel dizzy."), Warning)
		return
	}

	if c.mode == ModeExploring && c.lootGoal != nil && now == *c.lootGoal {
		if c.lootAt(now) {
			c.stop(gotext.Get("You reach your find."), Info)
			return
		}
		// Collected on arrival (or gone); head back out
		c.lootGoal = nil
		if !c.routeToFrontier() {
			c.stop(gotext.Get("You have explored everywhere you can."), Info)
			return
		}
	}

	if c.mode == ModeTraveling && c.cursor >= len(c.path) {
		c.stop(gotext.Get("You arrive."), Info)
		return
	}
}

// retargetLoot checks visible loot and, when something more interesting
// than the current objective is in view, discards the remaining path and
// reroutes toward it without leaving Exploring.
func (c *Controller) retargetLoot() {
	w := c.world

	best, ok := BestTarget(w.VisibleGroundItems(), w.PlayerPos(), c.pickup)
	if !ok {
		if c.lootGoal != nil {
			// The loot is gone; fall back to the frontier objective
			c.lootGoal = nil
			if !c.routeToFrontier() {
				c.path = nil
				c.cursor = 0
			}
		}
		return
	}
	if c.lootGoal != nil && *c.lootGoal == best.Pos {
		return
	}

	route := FindRoute(w, w.PlayerPos(), best.Pos, true)
	if len(route) < 2 {
		return
	}

	c.path = route[1:]
	c.cursor = 0
	goal := best.Pos
	c.lootGoal = &goal
	w.Emit(fmt.Sprintf(gotext.Get("You head for the %s."), best.Name), Info)
}

// lootAt reports whether an interesting item still lies at p
func (c *Controller) lootAt(p Point) bool {
	for _, it := range c.world.VisibleGroundItems() {
		if it.Pos == p && Interesting(it, c.pickup) {
			return true
		}
	}
	return false
}

// routeToFrontier points the path at the nearest frontier cell. Returns
// false when no frontier remains or none is reachable.
func (c *Controller) routeToFrontier() bool {
	w := c.world

	target, ok := FindFrontier(w, w.PlayerPos())
	if !ok {
		return false
	}
	route := FindRoute(w, w.PlayerPos(), target, true)
	if len(route) < 2 {
		return false
	}

	c.path = route[1:]
	c.cursor = 0
	c.lootGoal = nil
	return true
}
