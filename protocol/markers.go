package protocol

import "bytes"

// FocusDirection distinguishes the two focus transitions reported under
// mode 1004.
type FocusDirection uint8

const (
	FocusIn FocusDirection = iota
	FocusOut
)

// String returns "in" or "out".
func (d FocusDirection) String() string {
	if d == FocusOut {
		return "out"
	}
	return "in"
}

// FocusEvent is one reported focus transition.
type FocusEvent struct {
	Direction FocusDirection
}

// ParseFocus matches a response beginning with CSI 'I' (focus gained) or
// CSI 'O' (focus lost). Only the head of the capture is examined; a fast
// focus flip delivers both markers in one burst and the first one is the
// transition that happened first.
func ParseFocus(resp []byte) (FocusEvent, bool) {
	if len(resp) < 3 || resp[0] != esc || resp[1] != '[' {
		return FocusEvent{}, false
	}
	switch resp[2] {
	case 'I':
		return FocusEvent{Direction: FocusIn}, true
	case 'O':
		return FocusEvent{Direction: FocusOut}, true
	}
	return FocusEvent{}, false
}

var (
	pasteStart = []byte{esc, '[', '2', '0', '0', '~'}
	pasteEnd   = []byte{esc, '[', '2', '0', '1', '~'}
)

// DetectPaste reports whether a captured response opens with the bracketed
// paste start marker, meaning mode 2004 is honored.
func DetectPaste(resp []byte) bool {
	return bytes.HasPrefix(resp, pasteStart)
}

// StripPasteMarkers returns the pasted text with both markers removed. ok
// is false when the start marker is absent. A missing end marker leaves the
// payload running to the end of the capture, which happens when a long
// paste outruns the response buffer.
func StripPasteMarkers(resp []byte) (payload []byte, ok bool) {
	body, ok := bytes.CutPrefix(resp, pasteStart)
	if !ok {
		return nil, false
	}
	if i := bytes.Index(body, pasteEnd); i >= 0 {
		return body[:i], true
	}
	return body, true
}
