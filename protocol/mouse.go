package protocol

// MouseProtocol identifies which reporting encoding produced a mouse event.
type MouseProtocol uint8

const (
	MouseNone     MouseProtocol = iota
	MouseX10                    // mode 1000, fixed single-byte coordinates
	MouseUTF8                   // mode 1005, multi-byte coordinates
	MouseSGR                    // mode 1006, cell addressed
	MouseSGRPixel               // mode 1016, pixel addressed
	MouseUrxvt                  // mode 1015, decimal with offset button
)

// String returns a short name for the encoding.
func (p MouseProtocol) String() string {
	switch p {
	case MouseX10:
		return "legacy"
	case MouseUTF8:
		return "utf-8"
	case MouseSGR:
		return "sgr"
	case MouseSGRPixel:
		return "sgr-pixel"
	case MouseUrxvt:
		return "urxvt"
	}
	return "none"
}

// ModeNumbers returns the DEC private mode numbers an event of this
// encoding may have originated from. Two entries mean the wire bytes could
// not discriminate further.
func (p MouseProtocol) ModeNumbers() string {
	switch p {
	case MouseX10:
		return "1000/1005"
	case MouseUTF8:
		return "1005"
	case MouseSGR:
		return "1006/1016"
	case MouseSGRPixel:
		return "1016"
	case MouseUrxvt:
		return "1015"
	}
	return "?"
}

// MouseEvent is one decoded mouse report. Ambiguous marks events whose
// classification rests on the capture length, which is not a sound
// discriminator: a six byte legacy report is indistinguishable from a UTF-8
// report with small coordinates, and a longer capture may be concatenated
// legacy frames rather than one UTF-8 frame. Raw always carries the
// captured bytes so the caller can show them.
type MouseEvent struct {
	Protocol  MouseProtocol
	Button    int
	Pressed   bool
	Col       int
	Row       int
	Ambiguous bool
	Raw       []byte
}

// ParseMouse classifies a captured response against the three mouse report
// grammars in fixed priority order: legacy fixed-width, then SGR extended,
// then urxvt. cols and rows are the cached window geometry; an SGR
// coordinate beyond either bound reclassifies the event as pixel addressed,
// the only discriminator available since modes 1006 and 1016 share one
// grammar. ok is false when no grammar matches, which is a finding about
// the terminal, not an error.
func ParseMouse(resp []byte, cols, rows int) (MouseEvent, bool) {
	if ev, ok := parseLegacyMouse(resp); ok {
		return ev, true
	}
	if ev, ok := parseSGRMouse(resp, cols, rows); ok {
		return ev, true
	}
	if ev, ok := parseUrxvtMouse(resp); ok {
		return ev, true
	}
	return MouseEvent{Raw: resp}, false
}

// parseLegacyMouse matches ESC [ M b x y with every payload byte >= 32.
// Captures longer than the fixed six bytes are classified as the UTF-8
// variant and left coordinate-free, since decoding them soundly is not
// possible without knowing how many frames arrived.
func parseLegacyMouse(resp []byte) (MouseEvent, bool) {
	if len(resp) < 6 || resp[0] != esc || resp[1] != '[' || resp[2] != 'M' {
		return MouseEvent{}, false
	}
	b, x, y := resp[3], resp[4], resp[5]
	if b < 32 || x < 32 || y < 32 {
		return MouseEvent{}, false
	}
	btn := int(b) - 32
	ev := MouseEvent{
		Button:    btn,
		Pressed:   btn&3 != 3,
		Ambiguous: true,
		Raw:       resp,
	}
	if len(resp) > 6 {
		ev.Protocol = MouseUTF8
		return ev, true
	}
	ev.Protocol = MouseX10
	ev.Col = int(x) - 32
	ev.Row = int(y) - 32
	return ev, true
}

// parseSGRMouse matches ESC [ < b ; x ; y followed by 'M' for press or 'm'
// for release. Trailing bytes after the final letter are tolerated because
// terminals often deliver the release frame in the same burst as the press.
func parseSGRMouse(resp []byte, cols, rows int) (MouseEvent, bool) {
	if len(resp) < 4 || resp[0] != esc || resp[1] != '[' || resp[2] != '<' {
		return MouseEvent{}, false
	}
	btn, rest, ok := scanNumber(resp[3:])
	if !ok || len(rest) == 0 || rest[0] != ';' {
		return MouseEvent{}, false
	}
	x, rest, ok := scanNumber(rest[1:])
	if !ok || len(rest) == 0 || rest[0] != ';' {
		return MouseEvent{}, false
	}
	y, rest, ok := scanNumber(rest[1:])
	if !ok || len(rest) == 0 || (rest[0] != 'M' && rest[0] != 'm') {
		return MouseEvent{}, false
	}
	ev := MouseEvent{
		Protocol: MouseSGR,
		Button:   btn,
		Pressed:  rest[0] == 'M',
		Col:      x,
		Row:      y,
		Raw:      resp,
	}
	if x > cols || y > rows {
		ev.Protocol = MouseSGRPixel
	}
	return ev, true
}

// parseUrxvtMouse matches ESC [ b ; x ; y M with the button offset by 32,
// the same offset the legacy encoding uses.
func parseUrxvtMouse(resp []byte) (MouseEvent, bool) {
	if len(resp) < 3 || resp[0] != esc || resp[1] != '[' {
		return MouseEvent{}, false
	}
	b, rest, ok := scanNumber(resp[2:])
	if !ok || b < 32 || len(rest) == 0 || rest[0] != ';' {
		return MouseEvent{}, false
	}
	x, rest, ok := scanNumber(rest[1:])
	if !ok || len(rest) == 0 || rest[0] != ';' {
		return MouseEvent{}, false
	}
	y, rest, ok := scanNumber(rest[1:])
	if !ok || len(rest) == 0 || rest[0] != 'M' {
		return MouseEvent{}, false
	}
	btn := b - 32
	return MouseEvent{
		Protocol: MouseUrxvt,
		Button:   btn,
		Pressed:  btn&3 != 3,
		Col:      x,
		Row:      y,
		Raw:      resp,
	}, true
}
