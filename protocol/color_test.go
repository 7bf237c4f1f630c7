package protocol

import (
	"testing"
)

func TestParseColorReply_Terminators(t *testing.T) {
	tests := []struct {
		name string
		resp string
	}{
		{"bel", "\x1b]4;1;rgb:ffff/0000/0000\x07"},
		{"st", "\x1b]4;1;rgb:ffff/0000/0000\x1b\\"},
		{"st 8-bit", "\x1b]4;1;rgb:ffff/0000/0000\x9c"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rep, ok := ParseColorReply([]byte(tt.resp))
			if !ok {
				t.Fatalf("ParseColorReply(%q) did not match", tt.resp)
			}
			if rep.Index != "1" {
				t.Errorf("Index = %q, want \"1\"", rep.Index)
			}
			if rep.Spec != "rgb:ffff/0000/0000" {
				t.Errorf("Spec = %q, want rgb:ffff/0000/0000", rep.Spec)
			}
		})
	}
}

func TestParseColorReply_HighIndex(t *testing.T) {
	rep, ok := ParseColorReply([]byte("\x1b]4;231;rgb:aaaa/bbbb/cccc\x07"))
	if !ok {
		t.Fatal("high index reply did not match")
	}
	if rep.Index != "231" || rep.Spec != "rgb:aaaa/bbbb/cccc" {
		t.Errorf("got %q %q", rep.Index, rep.Spec)
	}
}

func TestParseColorReply_Rejects(t *testing.T) {
	bad := []struct {
		name string
		resp string
	}{
		{"empty", ""},
		{"wrong osc number", "\x1b]10;rgb:ffff/ffff/ffff\x07"},
		{"no terminator", "\x1b]4;1;rgb:ffff/0000/0000"},
		{"no spec separator", "\x1b]4;1\x07"},
		{"decrpm reply", "\x1b[?1000;2$y"},
	}

	for _, tt := range bad {
		t.Run(tt.name, func(t *testing.T) {
			if _, ok := ParseColorReply([]byte(tt.resp)); ok {
				t.Errorf("ParseColorReply(%q) matched, want reject", tt.resp)
			}
		})
	}
}
