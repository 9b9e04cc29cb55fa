package input

import (
	"sort"
	"time"
)

// Device represents a physical input source.
type Device int

const (
	DeviceUnknown Device = iota
	DeviceKeyboard
	DeviceTerminal
)

// Action represents a high-level intent in the game.
type Action int

const (
	ActionNone Action = iota

	// Movement
	ActionMoveNorth
	ActionMoveNorthEast
	ActionMoveEast
	ActionMoveSouthEast
	ActionMoveSouth
	ActionMoveSouthWest
	ActionMoveWest
	ActionMoveNorthWest

	// Turn-consuming actions
	ActionWait
	ActionPickup

	// Automation
	ActionExplore
	ActionTravel
	ActionCancel

	// Meta / UI
	ActionDumpMap
	ActionQuit
)

// Intent is the high-level description of what the player wants to do.
type Intent struct {
	Action Action
}

// RawInput is the event emitted directly from an input device.
// Code is a device-specific identifier (e.g. "h", "arrow_up", "KeyH").
type RawInput struct {
	Device    Device
	Code      string
	Timestamp time.Time
}

// DebouncedInput is the representation after debouncing/deduplication.
// Terminal raw mode and Ebiten's just-pressed checks already debounce, but
// the distinct type keeps the layering explicit and extensible.
type DebouncedInput struct {
	Device Device
	Code   string
}

// NewDebouncedInput converts a raw event to a debounced event
func NewDebouncedInput(raw RawInput) DebouncedInput {
	return DebouncedInput{
		Device: raw.Device,
		Code:   raw.Code,
	}
}

// bindings maps raw codes to actions.
// Multiple codes may point to the same Action.
var bindings = map[string]Action{
	// Cardinal movement (arrows + Vim)
	"arrow_up":    ActionMoveNorth,
	"k":           ActionMoveNorth,
	"arrow_down":  ActionMoveSouth,
	"j":           ActionMoveSouth,
	"arrow_left":  ActionMoveWest,
	"h":           ActionMoveWest,
	"arrow_right": ActionMoveEast,
	"l":           ActionMoveEast,

	// Diagonal movement (Vim/roguelike)
	"y": ActionMoveNorthWest,
	"u": ActionMoveNorthEast,
	"b": ActionMoveSouthWest,
	"n": ActionMoveSouthEast,

	// Turn-consuming actions
	".": ActionWait,
	",": ActionPickup,

	// Automation
	"o":      ActionExplore,
	"G":      ActionTravel,
	">":      ActionTravel,
	"escape": ActionCancel,
	"space":  ActionCancel,

	// Meta
	"M":         ActionDumpMap,
	"q":         ActionQuit,
	"interrupt": ActionQuit,
}

// MapToIntent applies the current bindings to a debounced input and returns
// a high-level Intent.
func MapToIntent(ev DebouncedInput) Intent {
	if act, ok := bindings[ev.Code]; ok {
		return Intent{Action: act}
	}
	return Intent{Action: ActionNone}
}

// MoveDelta returns the grid offset for a movement action
func MoveDelta(a Action) (dRow, dCol int, ok bool) {
	switch a {
	case ActionMoveNorth:
		return -1, 0, true
	case ActionMoveNorthEast:
		return -1, 1, true
	case ActionMoveEast:
		return 0, 1, true
	case ActionMoveSouthEast:
		return 1, 1, true
	case ActionMoveSouth:
		return 1, 0, true
	case ActionMoveSouthWest:
		return 1, -1, true
	case ActionMoveWest:
		return 0, -1, true
	case ActionMoveNorthWest:
		return -1, -1, true
	}
	return 0, 0, false
}

// ActionName returns a human-friendly name for an action
func ActionName(a Action) string {
	switch a {
	case ActionMoveNorth:
		return "Move North"
	case ActionMoveNorthEast:
		return "Move North-East"
	case ActionMoveEast:
		return "Move East"
	case ActionMoveSouthEast:
		return "Move South-East"
	case ActionMoveSouth:
		return "Move South"
	case ActionMoveSouthWest:
		return "Move South-West"
	case ActionMoveWest:
		return "Move West"
	case ActionMoveNorthWest:
		return "Move North-West"
	case ActionWait:
		return "Wait"
	case ActionPickup:
		return "Pick Up"
	case ActionExplore:
		return "Auto-Explore"
	case ActionTravel:
		return "Travel to Stairs"
	case ActionCancel:
		return "Cancel"
	case ActionDumpMap:
		return "Dump Map"
	case ActionQuit:
		return "Quit"
	default:
		return "None"
	}
}

// GetBindingsByAction returns the current bindings grouped by action
func GetBindingsByAction() map[Action][]string {
	result := make(map[Action][]string)
	for code, act := range bindings {
		result[act] = append(result[act], code)
	}
	// Stable ordering of codes within each action so UI doesn't flicker
	for act, codes := range result {
		sort.Strings(codes)
		result[act] = codes
	}
	return result
}
