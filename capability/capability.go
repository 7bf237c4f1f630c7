// Package capability resolves what the terminfo database claims about a
// terminal. The probes measure what the terminal actually does; this
// package supplies the claims those measurements get compared against.
//
// Resolution tries the compiled-in database first and falls back to the
// system database through infocmp, so an unusual TERM still resolves on
// boxes that have one.
package capability

import (
	"fmt"
	"os"

	"github.com/gdamore/tcell/v2/terminfo"
	"github.com/gdamore/tcell/v2/terminfo/dynamic"

	// Compiled-in descriptions for the common terminals.
	_ "github.com/gdamore/tcell/v2/terminfo/base"
)

// Entry is one resolved terminfo description.
type Entry struct {
	ti *terminfo.Terminfo
}

// Lookup resolves a terminal name. An empty name falls back to $TERM.
func Lookup(term string) (*Entry, error) {
	if term == "" {
		term = os.Getenv("TERM")
	}
	if term == "" {
		return nil, fmt.Errorf("no terminal name to resolve")
	}

	ti, err := terminfo.LookupTerminfo(term)
	if err != nil {
		ti, _, err = dynamic.LoadTerminfo(term)
		if err != nil {
			return nil, fmt.Errorf("resolve %q: %w", term, err)
		}
	}
	return &Entry{ti: ti}, nil
}

// Name returns the primary name of the resolved entry.
func (e *Entry) Name() string {
	return e.ti.Name
}

// Colors returns the palette size the database claims.
func (e *Entry) Colors() int {
	return e.ti.Colors
}

// DirectColor reports the database's 24-bit color claim, the Tc/RGB
// extensions in tmux parlance.
func (e *Entry) DirectColor() bool {
	return e.ti.TrueColor
}

// HasMouse reports whether the database carries the xterm mouse marker.
func (e *Entry) HasMouse() bool {
	return e.ti.Mouse != ""
}

// EnterBold returns the bold attribute sequence.
func (e *Entry) EnterBold() (string, bool) {
	return e.ti.Bold, e.ti.Bold != ""
}

// EnterBlink returns the blink attribute sequence.
func (e *Entry) EnterBlink() (string, bool) {
	return e.ti.Blink, e.ti.Blink != ""
}

// EnterItalic returns the italics sequence. Plenty of databases omit it
// even where the terminal renders italics fine, which is exactly the kind
// of gap a live probe shows up.
func (e *Entry) EnterItalic() (string, bool) {
	return e.ti.Italic, e.ti.Italic != ""
}

// ExitAttr returns the attribute reset sequence.
func (e *Entry) ExitAttr() (string, bool) {
	return e.ti.AttrOff, e.ti.AttrOff != ""
}

// SetForeground renders the foreground sequence for a palette index.
func (e *Entry) SetForeground(color int) (string, bool) {
	if e.ti.SetFg == "" {
		return "", false
	}
	return e.ti.TParm(e.ti.SetFg, color), true
}

// SetBackground renders the background sequence for a palette index.
func (e *Entry) SetBackground(color int) (string, bool) {
	if e.ti.SetBg == "" {
		return "", false
	}
	return e.ti.TParm(e.ti.SetBg, color), true
}
