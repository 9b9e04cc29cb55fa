// Package input reads single keypresses from the terminal and maps them to
// high-level intents. The terminal enters raw mode only around each read,
// so normal printing still works between keys.
package input

import (
	"errors"
	"os"
	"time"

	log "github.com/sirupsen/logrus"

	"gloomdeep/pkg/engine/terminal"
)

// readByte reads a single byte from stdin in raw mode
func readByte() (byte, error) {
	buf := make([]byte, 1)
	_, err := os.Stdin.Read(buf)
	if err != nil {
		return 0, err
	}
	return buf[0], nil
}

// decodeEscape reads the remainder of an escape sequence and returns the
// key code for it, or "escape" for a bare Escape press
func decodeEscape() string {
	// The continuation bytes arrive together with the ESC or not at all
	os.Stdin.SetReadDeadline(time.Now().Add(20 * time.Millisecond))
	defer os.Stdin.SetReadDeadline(time.Time{})

	b2, err := readByte()
	if err != nil {
		return "escape"
	}

	// CSI sequences (ESC [) and SS3 sequences (ESC O)
	if b2 != '[' && b2 != 'O' {
		return "escape"
	}

	b3, err := readByte()
	if err != nil {
		return "escape"
	}

	switch b3 {
	case 'A':
		return "arrow_up"
	case 'B':
		return "arrow_down"
	case 'C':
		return "arrow_right"
	case 'D':
		return "arrow_left"
	}
	// Unknown escape sequence - discard it
	return ""
}

// decodeByte turns one leading byte into a key code
func decodeByte(b byte) string {
	switch {
	case b == 0x1b:
		return decodeEscape()
	case b == 3: // Ctrl+C
		return "interrupt"
	case b == '\n' || b == '\r':
		return "enter"
	case b == ' ':
		return "space"
	case b >= 33 && b < 127:
		return string(b)
	}
	return ""
}

// GetKey blocks until one keypress arrives and returns its code
func GetKey() string {
	oldState, err := terminal.MakeRaw()
	if err != nil {
		log.WithError(err).Fatal("cannot set terminal to raw mode")
	}
	defer terminal.Restore(oldState)

	for {
		b, err := readByte()
		if err != nil {
			terminal.Restore(oldState)
			log.WithError(err).Fatal("cannot read stdin")
		}
		if code := decodeByte(b); code != "" {
			return code
		}
	}
}

// PollKey waits up to d for a keypress and returns its code, or the empty
// string when nothing was pressed. Used while the autopilot runs, so any
// key can interrupt it without stalling the step clock.
func PollKey(d time.Duration) string {
	oldState, err := terminal.MakeRaw()
	if err != nil {
		log.WithError(err).Fatal("cannot set terminal to raw mode")
	}
	defer terminal.Restore(oldState)

	os.Stdin.SetReadDeadline(time.Now().Add(d))
	defer os.Stdin.SetReadDeadline(time.Time{})

	b, err := readByte()
	if err != nil {
		if errors.Is(err, os.ErrDeadlineExceeded) {
			return ""
		}
		terminal.Restore(oldState)
		log.WithError(err).Fatal("cannot read stdin")
	}
	return decodeByte(b)
}
