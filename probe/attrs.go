package probe

import (
	"github.com/lixenwraith/termprobe/protocol"
)

// Curses colour numbers used by the attribute demonstrations.
const (
	colorGreen = 2
	colorBlue  = 4
)

// blink demonstrates the blink attribute through terminfo when the entry
// carries everything needed, and always through raw SGR.
func (r *Runner) blink() error {
	r.section("Blink attribute")

	var bold, blinkSeq, setaf, setab, exit string
	supported := false
	if r.caps != nil {
		var okBold, okBlink, okFg, okBg, okExit bool
		bold, okBold = r.caps.EnterBold()
		blinkSeq, okBlink = r.caps.EnterBlink()
		setaf, okFg = r.caps.SetForeground(colorGreen)
		setab, okBg = r.caps.SetBackground(colorBlue)
		exit, okExit = r.caps.ExitAttr()
		supported = okBold && okBlink && okFg && okBg && okExit
	}
	r.printf("Terminfo: %d\n", bit(supported))
	if supported {
		r.printf("%s%sTerminfo%s ", setaf, setab, exit)
		r.printf("%s%s%sBold%s ", bold, setaf, setab, exit)
		r.printf("%s%s%sBlink%s ", blinkSeq, setaf, setab, exit)
		r.printf("\n")
	}

	r.printf("\x1b[0;32;44mSGR\x1b[m ")
	r.printf("\x1b[1;32;44mBold\x1b[m ")
	r.printf("\x1b[5;32;44mBlink\x1b[m ")
	r.printf("\n")
	r.printf("\x1b[0;5mBlink with default colours.\x1b[m")
	r.printf("\n")
	return nil
}

// italic demonstrates the italic attribute the same two ways.
func (r *Runner) italic() error {
	r.section("Italic attribute")

	var seq, exit string
	supported := false
	if r.caps != nil {
		var okSeq, okExit bool
		seq, okSeq = r.caps.EnterItalic()
		exit, okExit = r.caps.ExitAttr()
		supported = okSeq && okExit
	}
	r.printf("Terminfo: %d\n", bit(supported))
	if supported {
		r.printf("%sTerminfo test.%s\n", seq, exit)
	}
	r.printf("\x1b[3mSGR test.\n\x1b[0m")
	return nil
}

// barCursor switches cursor shapes and asks the operator to look. There is
// no way of reading the current style back, so the cursor ends up parked
// on a steady block.
func (r *Runner) barCursor() error {
	r.section("Bar cursor")

	if _, err := r.ask(protocol.CursorStyle(5), "Blinking (press a key): "); err != nil {
		return err
	}
	r.printf("\n")
	if _, err := r.ask(protocol.CursorStyle(6), "Steady (press a key): "); err != nil {
		return err
	}
	r.printf("\n")

	_, err := r.transact(protocol.CursorStyle(2), false)
	return err
}
