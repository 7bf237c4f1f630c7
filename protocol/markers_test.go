package protocol

import (
	"testing"
)

func TestParseFocus(t *testing.T) {
	ev, ok := ParseFocus([]byte("\x1b[I"))
	if !ok || ev.Direction != FocusIn {
		t.Errorf("focus in: ok = %v direction = %v", ok, ev.Direction)
	}

	ev, ok = ParseFocus([]byte("\x1b[O"))
	if !ok || ev.Direction != FocusOut {
		t.Errorf("focus out: ok = %v direction = %v", ok, ev.Direction)
	}

	// A fast flip lands both markers in one capture; the head wins.
	ev, ok = ParseFocus([]byte("\x1b[O\x1b[I"))
	if !ok || ev.Direction != FocusOut {
		t.Errorf("flip capture: ok = %v direction = %v, want out", ok, ev.Direction)
	}
}

func TestParseFocus_Rejects(t *testing.T) {
	for _, resp := range []string{"", "\x1b", "\x1b[", "\x1b[A", "q", "I"} {
		if _, ok := ParseFocus([]byte(resp)); ok {
			t.Errorf("ParseFocus(%q) matched, want reject", resp)
		}
	}
}

func TestFocusDirection_String(t *testing.T) {
	if FocusIn.String() != "in" || FocusOut.String() != "out" {
		t.Errorf("got %q %q", FocusIn.String(), FocusOut.String())
	}
}

func TestDetectPaste(t *testing.T) {
	if !DetectPaste([]byte("\x1b[200~hello\x1b[201~")) {
		t.Error("bracketed paste not detected")
	}
	if DetectPaste([]byte("hello")) {
		t.Error("plain text detected as bracketed")
	}
	if DetectPaste([]byte("\x1b[201~")) {
		t.Error("end marker alone detected as bracketed")
	}
}

func TestStripPasteMarkers(t *testing.T) {
	payload, ok := StripPasteMarkers([]byte("\x1b[200~hello\x1b[201~"))
	if !ok || string(payload) != "hello" {
		t.Errorf("got %q ok = %v, want hello true", payload, ok)
	}

	// Escape bytes inside the payload pass through untouched.
	payload, ok = StripPasteMarkers([]byte("\x1b[200~a\x1bb\x1b[201~"))
	if !ok || string(payload) != "a\x1bb" {
		t.Errorf("got %q ok = %v", payload, ok)
	}
}

// TestStripPasteMarkers_Truncated keeps the payload when a long paste
// outruns the capture and the end marker never arrives.
func TestStripPasteMarkers_Truncated(t *testing.T) {
	payload, ok := StripPasteMarkers([]byte("\x1b[200~partial tex"))
	if !ok || string(payload) != "partial tex" {
		t.Errorf("got %q ok = %v, want partial tex true", payload, ok)
	}
}

func TestStripPasteMarkers_NotBracketed(t *testing.T) {
	if _, ok := StripPasteMarkers([]byte("plain paste")); ok {
		t.Error("unbracketed input stripped, want ok = false")
	}
}
