package cli

import (
	"fmt"
	"io"
	"os"

	"golang.org/x/term"
)

// isTerminal is a test seam for term.IsTerminal.
var isTerminal = term.IsTerminal

// Screen clears the display between renders.
type Screen interface {
	Clear()
}

// clearSequence homes the cursor and erases the display.
const clearSequence = "\033[H\033[2J"

type ansiScreen struct {
	w io.Writer
}

func (s ansiScreen) Clear() {
	fmt.Fprint(s.w, clearSequence)
}

type nopScreen struct{}

func (nopScreen) Clear() {}

// NewScreen returns a Screen that clears f when enabled is set and f is a
// terminal. Otherwise clearing is a no-op, so piped output stays clean.
func NewScreen(f *os.File, enabled bool) Screen {
	if enabled && isTerminal(int(f.Fd())) {
		return ansiScreen{w: f}
	}
	return nopScreen{}
}
