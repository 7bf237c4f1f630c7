package capability

import (
	"strings"
	"testing"
)

// TestLookup_Xterm256 exercises the compiled-in database, which registers
// the xterm family regardless of the host's terminfo installation.
func TestLookup_Xterm256(t *testing.T) {
	e, err := Lookup("xterm-256color")
	if err != nil {
		t.Fatalf("Lookup failed: %v", err)
	}

	if e.Name() != "xterm-256color" {
		t.Errorf("Name = %q", e.Name())
	}
	if e.Colors() != 256 {
		t.Errorf("Colors = %d, want 256", e.Colors())
	}

	if seq, ok := e.EnterBold(); !ok || seq == "" {
		t.Error("no bold sequence for xterm-256color")
	}
	if seq, ok := e.EnterBlink(); !ok || seq == "" {
		t.Error("no blink sequence for xterm-256color")
	}
	if seq, ok := e.ExitAttr(); !ok || seq == "" {
		t.Error("no attribute reset for xterm-256color")
	}
	if !e.HasMouse() {
		t.Error("xterm-256color should carry the mouse marker")
	}
}

func TestEntry_SetForeground(t *testing.T) {
	e, err := Lookup("xterm-256color")
	if err != nil {
		t.Fatalf("Lookup failed: %v", err)
	}

	seq, ok := e.SetForeground(2)
	if !ok {
		t.Fatal("no setaf capability")
	}
	if !strings.HasPrefix(seq, "\x1b[") || !strings.Contains(seq, "2") {
		t.Errorf("setaf 2 rendered as %q", seq)
	}

	seq, ok = e.SetBackground(4)
	if !ok {
		t.Fatal("no setab capability")
	}
	if !strings.Contains(seq, "4") {
		t.Errorf("setab 4 rendered as %q", seq)
	}
}

// TestLookup_TermFallback resolves through $TERM when no name is given.
func TestLookup_TermFallback(t *testing.T) {
	t.Setenv("TERM", "xterm")
	e, err := Lookup("")
	if err != nil {
		t.Fatalf("Lookup failed: %v", err)
	}
	if e.Name() != "xterm" {
		t.Errorf("Name = %q, want xterm", e.Name())
	}
}

func TestLookup_NoName(t *testing.T) {
	t.Setenv("TERM", "")
	if _, err := Lookup(""); err == nil {
		t.Error("Lookup with no name succeeded")
	}
}

func TestLookup_Unknown(t *testing.T) {
	if _, err := Lookup("no-such-terminal-entry-on-any-box"); err == nil {
		t.Error("Lookup of a nonsense name succeeded")
	}
}
