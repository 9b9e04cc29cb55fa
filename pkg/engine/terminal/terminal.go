package terminal

import (
	"os"

	"golang.org/x/term"
)

const (
	DefaultWidth  = 80
	DefaultHeight = 24
)

// GetSize returns the current terminal width and height.
// Falls back to defaults if the size cannot be determined.
func GetSize() (width, height int) {
	width, height, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil {
		return DefaultWidth, DefaultHeight
	}
	return width, height
}

// GetWidth returns the current terminal width
func GetWidth() int {
	width, _ := GetSize()
	return width
}

// GetHeight returns the current terminal height
func GetHeight() int {
	_, height := GetSize()
	return height
}

// MakeRaw switches the terminal into raw mode for single-key input and
// returns the previous state for Restore
func MakeRaw() (*term.State, error) {
	return term.MakeRaw(int(os.Stdin.Fd()))
}

// Restore returns the terminal to the given saved state
func Restore(state *term.State) {
	if state != nil {
		term.Restore(int(os.Stdin.Fd()), state)
	}
}
