// Package clipboard copies text to the system clipboard through the terminal
// using OSC 52 escape sequences.
package clipboard

import (
	"errors"
	"fmt"
	"io"

	"github.com/aymanbagabas/go-osc52/v2"
)

var (
	ErrEmpty      = errors.New("nothing to copy")
	ErrNoTerminal = errors.New("no terminal to send the clipboard sequence to")
)

// Clipboard writes OSC 52 sequences to a terminal.
type Clipboard struct {
	w    io.Writer
	tmux bool
}

// New returns a Clipboard writing to w. With tmux set the sequence is wrapped
// in a tmux passthrough. A nil w makes every Copy fail with ErrNoTerminal.
func New(w io.Writer, tmux bool) *Clipboard {
	return &Clipboard{w: w, tmux: tmux}
}

// Copy places text on the clipboard.
func (c *Clipboard) Copy(text string) error {
	if text == "" {
		return ErrEmpty
	}
	if c.w == nil {
		return ErrNoTerminal
	}

	seq := osc52.New(text)
	if c.tmux {
		seq = seq.Tmux()
	}

	if _, err := seq.WriteTo(c.w); err != nil {
		return fmt.Errorf("writing clipboard sequence: %w", err)
	}
	return nil
}
