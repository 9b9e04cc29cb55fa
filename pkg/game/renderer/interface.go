package renderer

import (
	"gloomdeep/pkg/game/autopilot"
	"gloomdeep/pkg/game/state"
)

// TextStyle represents different text styling options
type TextStyle int

const (
	StyleNormal TextStyle = iota
	StylePlayer
	StyleWall
	StyleFloor
	StyleDoor
	StyleStairs
	StyleItem
	StyleGold
	StyleMonster
	StyleAlly
	StyleTrap
	StyleWarning
	StyleSubtle
	StyleAction
)

// Renderer defines the interface for game rendering backends
type Renderer interface {
	// Init initializes the renderer (colors, fonts, window, etc.)
	Init()

	// Clear clears the display
	Clear()

	// RenderFrame renders a complete game frame: the map, status bar,
	// messages and the autopilot state
	RenderFrame(g *state.Game, ctrl *autopilot.Controller)

	// StyleText applies a style to text and returns the styled string.
	// For TUI this applies ANSI colors; for GUI backends it is a no-op.
	StyleText(text string, style TextStyle) string

	// FormatText formats a message with the renderer's markup system
	FormatText(msg string, args ...any) string

	// ShowMessage displays a message to the user
	ShowMessage(msg string)

	// GetViewportSize returns the current viewport dimensions (rows, cols)
	GetViewportSize() (rows, cols int)
}

// Current holds the active renderer instance
var Current Renderer

// SetRenderer sets the active renderer
func SetRenderer(r Renderer) {
	Current = r
}

// Init initializes the current renderer
func Init() {
	if Current != nil {
		Current.Init()
	}
}

// Clear clears the display using the current renderer
func Clear() {
	if Current != nil {
		Current.Clear()
	}
}

// RenderFrame renders a complete game frame
func RenderFrame(g *state.Game, ctrl *autopilot.Controller) {
	if Current != nil {
		Current.RenderFrame(g, ctrl)
	}
}

// ShowMessage displays a message to the user
func ShowMessage(msg string) {
	if Current != nil {
		Current.ShowMessage(msg)
	}
}

// GetViewportSize returns viewport dimensions
func GetViewportSize() (rows, cols int) {
	if Current != nil {
		return Current.GetViewportSize()
	}
	return 15, 30 // sensible defaults
}
