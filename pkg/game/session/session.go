// Package session ties the turn engine, the autopilot and the input intents
// together so the terminal loop and the Ebiten loop drive the exact same
// logic.
package session

import (
	"time"

	"github.com/leonelquinteros/gotext"
	log "github.com/sirupsen/logrus"

	"gloomdeep/pkg/engine/input"
	"gloomdeep/pkg/engine/world"
	"gloomdeep/pkg/game/autopilot"
	"gloomdeep/pkg/game/devtools"
	"gloomdeep/pkg/game/gameplay"
	"gloomdeep/pkg/game/state"
)

// Session is one running game with its automation controller
type Session struct {
	Game *state.Game
	Ctrl *autopilot.Controller

	observers []func(*state.Game)
	lastTurn  int
}

// New wraps a game in a session, wiring the autopilot to it
func New(g *state.Game, stepDelay time.Duration) *Session {
	oracle := gameplay.NewOracle(g)
	return &Session{
		Game: g,
		Ctrl: autopilot.New(oracle, stepDelay, g.Opts.Pickup),
	}
}

// Observe registers a callback invoked after every completed turn. The
// spectator feed hangs off this.
func (s *Session) Observe(fn func(*state.Game)) {
	s.observers = append(s.observers, fn)
}

// notifyIfAdvanced fires observers when the turn counter moved
func (s *Session) notifyIfAdvanced() {
	if s.Game.Turn == s.lastTurn {
		return
	}
	s.lastTurn = s.Game.Turn
	for _, fn := range s.observers {
		fn(s.Game)
	}
}

// Active reports whether the autopilot is running
func (s *Session) Active() bool {
	return s.Ctrl.Active()
}

// Tick advances autopilot pacing while automation is active
func (s *Session) Tick(dt time.Duration) {
	s.Ctrl.Update(dt)
	s.notifyIfAdvanced()
}

// HandleAction executes one player intent and reports whether the player
// asked to quit. Any intent other than quit interrupts running automation
// instead of acting.
func (s *Session) HandleAction(act input.Action) (quit bool) {
	g := s.Game

	if act == input.ActionQuit {
		return true
	}

	if s.Ctrl.Active() {
		s.Ctrl.Cancel()
		return false
	}

	switch {
	case act == input.ActionWait:
		if gameplay.PerformMove(g, 0, 0) {
			gameplay.AdvanceTurn(g)
		}

	case act == input.ActionPickup:
		if gameplay.PickupAll(g) {
			gameplay.AdvanceTurn(g)
		}

	case act == input.ActionExplore:
		s.Ctrl.Explore()

	case act == input.ActionTravel:
		s.travelToStairs()

	case act == input.ActionCancel:
		// Nothing running; ignore

	case act == input.ActionDumpMap:
		if path, err := devtools.DumpMap(g); err != nil {
			log.WithError(err).Warn("map dump failed")
		} else {
			g.AddMessage(gotext.Get("Map dumped to ")+path, state.SeverityInfo)
		}

	default:
		if dRow, dCol, ok := input.MoveDelta(act); ok {
			if gameplay.PerformMove(g, dRow, dCol) {
				gameplay.AdvanceTurn(g)
			}
		}
	}

	s.notifyIfAdvanced()
	return false
}

// travelToStairs points the autopilot at the stairs, if they have been seen
func (s *Session) travelToStairs() {
	g := s.Game

	var goal *autopilot.Point
	g.Grid.ForEachCell(func(row, col int, cell *world.Cell) {
		if goal == nil && cell.Tile == world.TileStairsDown && cell.Explored {
			goal = &autopilot.Point{Row: row, Col: col}
		}
	})
	if goal == nil {
		g.AddMessage(gotext.Get("You have not found the stairs yet."), state.SeverityInfo)
		return
	}
	s.Ctrl.Travel(*goal)
}
