package protocol

import "fmt"

// DEC private modes this tool queries or toggles.
const (
	ModeMouseClick     = 1000 // X10-compatible click tracking
	ModeMouseDrag      = 1002 // click plus drag tracking
	ModeMouseMotion    = 1003 // any-motion tracking
	ModeFocusEvents    = 1004 // focus in/out reporting
	ModeMouseUTF8      = 1005 // UTF-8 coordinate extension
	ModeMouseSGR       = 1006 // SGR coordinate extension
	ModeMouseUrxvt     = 1015 // urxvt coordinate extension
	ModeMouseSGRPixel  = 1016 // SGR extension with pixel coordinates
	ModeBracketedPaste = 2004
)

// ModeQuery renders DECRQM for a private mode: CSI ? Pd $ p.
func ModeQuery(mode int) []byte {
	return []byte(fmt.Sprintf("\x1b[?%d$p", mode))
}

// SetPrivateMode renders DECSET (on) or DECRST (off) for a private mode.
func SetPrivateMode(mode int, on bool) []byte {
	suffix := byte('l')
	if on {
		suffix = 'h'
	}
	return []byte(fmt.Sprintf("\x1b[?%d%c", mode, suffix))
}

// ColorQuery renders an OSC 4 palette read for one color index.
func ColorQuery(index int) []byte {
	return []byte(fmt.Sprintf("\x1b]4;%d;?\a", index))
}

// SetColor renders an OSC 4 palette write. spec is any colorspec the
// terminal understands, such as "rgb:ffff/0000/0000".
func SetColor(index int, spec string) []byte {
	return []byte(fmt.Sprintf("\x1b]4;%d;%s\a", index, spec))
}

// ResetColor renders an OSC 104 palette reset for one color index.
func ResetColor(index int) []byte {
	return []byte(fmt.Sprintf("\x1b]104;%d\a", index))
}

// LegacyPaletteSet renders the old Linux console palette escape: OSC P, a
// hex index nibble, then rrggbb with no terminator. Terminals that do not
// know it may echo the tail as text, which is itself a finding.
func LegacyPaletteSet(index int, rgb string) []byte {
	return []byte(fmt.Sprintf("\x1b]P%x%s", index, rgb))
}

// SelectionQuery renders an OSC 52 read of the given selection names.
func SelectionQuery(names string) []byte {
	return []byte(fmt.Sprintf("\x1b]52;%s;?\a", names))
}

// SelectionSet renders an OSC 52 write. data must already be base64. BEL
// terminates the sequence because a trailing ST confuses some emulators
// when it follows base64 text.
func SelectionSet(names, data string) []byte {
	return []byte(fmt.Sprintf("\x1b]52;%s;%s\a", names, data))
}

// CursorStyle renders DECSCUSR: CSI Ps SP q. Styles 1 and 2 are block, 3
// and 4 underline, 5 and 6 bar, with the odd number of each pair blinking.
func CursorStyle(style int) []byte {
	return []byte(fmt.Sprintf("\x1b[%d q", style))
}

// SixelProbe renders a device attributes query followed by a minimal sixel
// image. A sixel-capable terminal answers the query with a "4" in its
// attribute list and draws a small checker pattern; everyone else ignores
// the DCS string.
func SixelProbe() []byte {
	return []byte("\x1b[4c\x1bP0;0;0;q??~~??~~??iTiTiT\x1b\\")
}
