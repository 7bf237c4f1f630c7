package probe

import (
	"github.com/lixenwraith/termprobe/protocol"
)

// selection asks for the clipboard over OSC 52, then tries to write it.
// Most terminals refuse the read unless explicitly configured, so silence
// here is normal.
func (r *Runner) selection() error {
	r.section("Selection")

	resp, err := r.transact(protocol.SelectionQuery("pc"), false)
	if err != nil {
		return err
	}
	if rep, ok := protocol.ParseSelectionReply(resp); ok {
		r.printf("We have received the selection from the terminal!\x1b[1m\n")
		if data, derr := rep.Decode(); derr != nil {
			r.printf("(payload did not decode: %v)", derr)
		} else {
			r.tty.Write(data)
		}
		r.printf("\x1b[m\n")
		if rep.Degraded {
			r.printf("The reply dropped the selection name field.\n")
		}
	}

	if _, err := r.transact(protocol.SelectionSet("pc", "VGVzdA=="), false); err != nil {
		return err
	}
	_, err = r.transact([]byte("Check if the selection now contains 'Test' and press a key.\n"), true)
	return err
}

// bracketedPaste arms mode 2004 and checks whether pasted input arrives
// wrapped in the markers.
func (r *Runner) bracketedPaste() error {
	r.section("Bracketed paste")
	if r.decrqm {
		status, err := r.modeStatus(protocol.ModeBracketedPaste)
		if err != nil {
			return err
		}
		r.printf("DECRQM: %s\n", status)
	}

	resp, err := r.ask(protocol.SetPrivateMode(protocol.ModeBracketedPaste, true), "Paste something: ")
	if err != nil {
		return err
	}
	wrapped := protocol.DetectPaste(resp)
	r.printf("%d\n", bit(wrapped))
	if wrapped {
		if payload, ok := protocol.StripPasteMarkers(resp); ok {
			r.printf("Pasted %d bytes.\n", len(payload))
		}
	}

	_, err = r.transact(protocol.SetPrivateMode(protocol.ModeBracketedPaste, false), false)
	return err
}

// focusEvents arms mode 1004 and reports focus transitions until the
// first capture that isn't one. A keypress is the operator's way out, so
// the section can't hang on terminals without the mode.
func (r *Runner) focusEvents() error {
	r.section("Focus events")
	if r.decrqm {
		status, err := r.modeStatus(protocol.ModeFocusEvents)
		if err != nil {
			return err
		}
		r.printf("DECRQM: %s\n", status)
	}

	resp, err := r.ask(protocol.SetPrivateMode(protocol.ModeFocusEvents, true),
		"Flip focus away and back; press a key to finish: ")
	if err != nil {
		return err
	}

	seen := 0
	for {
		ev, ok := protocol.ParseFocus(resp)
		if !ok {
			break
		}
		seen++
		r.printf("Focus %s.\n", ev.Direction)
		// A fast flip lands both markers in one capture.
		if len(resp) >= 6 {
			if second, ok := protocol.ParseFocus(resp[3:]); ok {
				seen++
				r.printf("Focus %s.\n", second.Direction)
			}
		}
		resp, err = r.transact(nil, true)
		if err != nil {
			return err
		}
	}
	if seen == 0 {
		r.printf("No focus events.\n")
	}

	_, err = r.transact(protocol.SetPrivateMode(protocol.ModeFocusEvents, false), false)
	return err
}
