//go:build unix

package terminal

import (
	"io"
	"os"
)

// Pre-built reset fragments. These go out blind during cleanup, so every
// mode the probes may have armed gets an explicit off switch.
var (
	csiMouseClickOff  = []byte("\x1b[?1000l")
	csiMouseDragOff   = []byte("\x1b[?1002l")
	csiMouseMotionOff = []byte("\x1b[?1003l")
	csiFocusOff       = []byte("\x1b[?1004l")
	csiMouseUTF8Off   = []byte("\x1b[?1005l")
	csiMouseSGROff    = []byte("\x1b[?1006l")
	csiMouseUrxvtOff  = []byte("\x1b[?1015l")
	csiMousePixelOff  = []byte("\x1b[?1016l")
	csiPasteOff       = []byte("\x1b[?2004l")
	csiCursorShow     = []byte("\x1b[?25h")
	csiCursorDefault  = []byte("\x1b[0 q")
	csiSGR0           = []byte("\x1b[0m")
	oscPaletteReset   = []byte("\x1b]104\a")
)

// EmergencyReset pushes the terminal back toward a usable state when the
// session cannot be restored normally. Call from panic recovery; errors
// are unreportable at that point and ignored.
func EmergencyReset(w io.Writer) {
	w.Write(csiMouseMotionOff)
	w.Write(csiMouseDragOff)
	w.Write(csiMouseClickOff)
	w.Write(csiMouseUTF8Off)
	w.Write(csiMouseSGROff)
	w.Write(csiMouseUrxvtOff)
	w.Write(csiMousePixelOff)
	w.Write(csiFocusOff)
	w.Write(csiPasteOff)
	w.Write(csiCursorShow)
	w.Write(csiCursorDefault)
	w.Write(oscPaletteReset)
	w.Write(csiSGR0)

	if f, ok := w.(*os.File); ok {
		f.Sync()
	}

	// Escape sequences alone don't restore termios
	resetTerminalMode()
}
