package protocol

import (
	"bytes"
	"fmt"
	"testing"
)

// TestParseMouse_LegacyClick decodes the fixed six byte form: button and
// both coordinates carry a +32 offset.
func TestParseMouse_LegacyClick(t *testing.T) {
	resp := []byte{0x1b, '[', 'M', 32, 37, 53}
	ev, ok := ParseMouse(resp, 80, 24)
	if !ok {
		t.Fatal("legacy click did not match")
	}
	if ev.Protocol != MouseX10 {
		t.Errorf("Protocol = %v, want %v", ev.Protocol, MouseX10)
	}
	if ev.Button != 0 || !ev.Pressed {
		t.Errorf("Button = %d Pressed = %v, want 0 true", ev.Button, ev.Pressed)
	}
	if ev.Col != 5 || ev.Row != 21 {
		t.Errorf("position = %d,%d, want 5,21", ev.Col, ev.Row)
	}
	if !ev.Ambiguous {
		t.Error("six byte capture must stay ambiguous, 1000 and 1005 look alike")
	}
	if !bytes.Equal(ev.Raw, resp) {
		t.Errorf("Raw = %q, want original capture", ev.Raw)
	}
}

// TestParseMouse_LegacyOverlong classifies captures longer than six bytes
// as the UTF-8 variant without attempting coordinates.
func TestParseMouse_LegacyOverlong(t *testing.T) {
	resp := []byte{0x1b, '[', 'M', 35, 200, 190, 130}
	ev, ok := ParseMouse(resp, 80, 24)
	if !ok {
		t.Fatal("overlong legacy capture did not match")
	}
	if ev.Protocol != MouseUTF8 {
		t.Errorf("Protocol = %v, want %v", ev.Protocol, MouseUTF8)
	}
	if ev.Col != 0 || ev.Row != 0 {
		t.Errorf("coordinates decoded as %d,%d, want none", ev.Col, ev.Row)
	}
	if !ev.Ambiguous {
		t.Error("overlong capture must stay ambiguous, could be two frames")
	}
}

// TestParseMouse_LegacyLowBytes rejects payload bytes below 32, which the
// encoding cannot produce.
func TestParseMouse_LegacyLowBytes(t *testing.T) {
	resp := []byte{0x1b, '[', 'M', 0x1f, 40, 40}
	if _, ok := ParseMouse(resp, 80, 24); ok {
		t.Error("payload byte below 32 matched, want reject")
	}
}

func TestParseMouse_SGR(t *testing.T) {
	tests := []struct {
		name    string
		resp    string
		proto   MouseProtocol
		button  int
		pressed bool
		col     int
		row     int
	}{
		{"press", "\x1b[<0;12;34M", MouseSGR, 0, true, 12, 34},
		{"release", "\x1b[<0;12;34m", MouseSGR, 0, false, 12, 34},
		{"wheel", "\x1b[<64;1;1M", MouseSGR, 64, true, 1, 1},
		{"press with trailing release", "\x1b[<0;5;6M\x1b[<0;5;6m", MouseSGR, 0, true, 5, 6},
		{"pixel addressed", "\x1b[<0;523;1031M", MouseSGRPixel, 0, true, 523, 1031},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ev, ok := ParseMouse([]byte(tt.resp), 80, 40)
			if !ok {
				t.Fatalf("ParseMouse(%q) did not match", tt.resp)
			}
			if ev.Protocol != tt.proto {
				t.Errorf("Protocol = %v, want %v", ev.Protocol, tt.proto)
			}
			if ev.Button != tt.button || ev.Pressed != tt.pressed {
				t.Errorf("button = %d pressed = %v, want %d %v",
					ev.Button, ev.Pressed, tt.button, tt.pressed)
			}
			if ev.Col != tt.col || ev.Row != tt.row {
				t.Errorf("position = %d,%d, want %d,%d", ev.Col, ev.Row, tt.col, tt.row)
			}
			if ev.Ambiguous {
				t.Error("SGR events are unambiguous")
			}
		})
	}
}

// TestParseMouse_SGRRoundTrip formats press and release reports for a
// spread of buttons and positions and decodes them back unchanged.
func TestParseMouse_SGRRoundTrip(t *testing.T) {
	events := []struct {
		button, col, row int
	}{
		{0, 1, 1},
		{2, 80, 24},
		{64, 150, 3},
		{65, 9, 199},
	}
	for _, e := range events {
		for _, final := range []byte{'M', 'm'} {
			wire := fmt.Sprintf("\x1b[<%d;%d;%d%c", e.button, e.col, e.row, final)
			ev, ok := ParseMouse([]byte(wire), 200, 200)
			if !ok {
				t.Fatalf("ParseMouse(%q) did not match", wire)
			}
			if ev.Protocol != MouseSGR {
				t.Errorf("%q: Protocol = %v, want %v", wire, ev.Protocol, MouseSGR)
			}
			if ev.Button != e.button || ev.Col != e.col || ev.Row != e.row {
				t.Errorf("%q decoded to (%d @ %d,%d), want (%d @ %d,%d)",
					wire, ev.Button, ev.Col, ev.Row, e.button, e.col, e.row)
			}
			if ev.Pressed != (final == 'M') {
				t.Errorf("%q: Pressed = %v with final %c", wire, ev.Pressed, final)
			}
		}
	}
}

// TestParseMouse_SGRGeometryEdge keeps an event exactly on the window
// boundary cell addressed; only coordinates beyond it imply pixels.
func TestParseMouse_SGRGeometryEdge(t *testing.T) {
	ev, ok := ParseMouse([]byte("\x1b[<0;80;24M"), 80, 24)
	if !ok {
		t.Fatal("boundary event did not match")
	}
	if ev.Protocol != MouseSGR {
		t.Errorf("Protocol = %v, want %v at the boundary", ev.Protocol, MouseSGR)
	}

	ev, ok = ParseMouse([]byte("\x1b[<0;81;24M"), 80, 24)
	if !ok {
		t.Fatal("out of bounds event did not match")
	}
	if ev.Protocol != MouseSGRPixel {
		t.Errorf("Protocol = %v, want %v past the boundary", ev.Protocol, MouseSGRPixel)
	}
}

func TestParseMouse_Urxvt(t *testing.T) {
	ev, ok := ParseMouse([]byte("\x1b[32;12;34M"), 80, 40)
	if !ok {
		t.Fatal("urxvt event did not match")
	}
	if ev.Protocol != MouseUrxvt {
		t.Errorf("Protocol = %v, want %v", ev.Protocol, MouseUrxvt)
	}
	if ev.Button != 0 || !ev.Pressed {
		t.Errorf("button = %d pressed = %v, want 0 true", ev.Button, ev.Pressed)
	}
	if ev.Col != 12 || ev.Row != 34 {
		t.Errorf("position = %d,%d, want 12,34", ev.Col, ev.Row)
	}

	// Button 3 encodes release.
	ev, ok = ParseMouse([]byte("\x1b[35;1;1M"), 80, 40)
	if !ok {
		t.Fatal("urxvt release did not match")
	}
	if ev.Button != 3 || ev.Pressed {
		t.Errorf("button = %d pressed = %v, want 3 false", ev.Button, ev.Pressed)
	}
}

// TestParseMouse_NoMatch treats unrecognized captures as a finding, with
// the raw bytes preserved for display.
func TestParseMouse_NoMatch(t *testing.T) {
	unmatched := []string{
		"",
		"q",
		"\x1b[?1003;2$y",
		"\x1b[A",
		"\x1b[12;34R",
	}
	for _, resp := range unmatched {
		ev, ok := ParseMouse([]byte(resp), 80, 24)
		if ok {
			t.Errorf("ParseMouse(%q) matched, want no match", resp)
		}
		if !bytes.Equal(ev.Raw, []byte(resp)) {
			t.Errorf("Raw = %q, want original capture %q", ev.Raw, resp)
		}
	}
}

// TestMouseProtocol_ModeNumbers pins the candidate mode sets reported for
// each classification.
func TestMouseProtocol_ModeNumbers(t *testing.T) {
	pairs := []struct {
		proto MouseProtocol
		want  string
	}{
		{MouseX10, "1000/1005"},
		{MouseUTF8, "1005"},
		{MouseSGR, "1006/1016"},
		{MouseSGRPixel, "1016"},
		{MouseUrxvt, "1015"},
		{MouseNone, "?"},
	}
	for _, p := range pairs {
		if got := p.proto.ModeNumbers(); got != p.want {
			t.Errorf("%v.ModeNumbers() = %q, want %q", p.proto, got, p.want)
		}
	}
}
