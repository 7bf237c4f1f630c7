//go:build unix

package terminal

import (
	"os"
	"strings"

	"golang.org/x/sys/unix"
)

// RemoteTransport reports whether the session appears to ride a network
// transport. Replies cross the wire twice there, so response framing gets
// a wider idle window.
func RemoteTransport() bool {
	return os.Getenv("SSH_CONNECTION") != "" ||
		os.Getenv("SSH_CLIENT") != "" ||
		os.Getenv("SSH_TTY") != ""
}

// TruecolorClaim returns the COLORTERM value and whether it amounts to a
// 24-bit color claim.
func TruecolorClaim() (string, bool) {
	v := os.Getenv("COLORTERM")
	return v, v == "truecolor" || v == "24bit"
}

// WindowID returns the X11 window id advertised by the terminal, used by
// w3mimgdisplay style overlay tools.
func WindowID() (string, bool) {
	v := os.Getenv("WINDOWID")
	return v, v != ""
}

// VersionCandidates picks environment entries that look like terminal
// identity hints: anything mentioning VERSION, or the upper-cased terminal
// name itself. environ arrives in os.Environ() form, "KEY=value". An empty
// terminal name matches nothing rather than everything.
func VersionCandidates(environ []string, termName string) []string {
	upper := strings.ToUpper(termName)
	var out []string
	for _, kv := range environ {
		if strings.Contains(kv, "VERSION") ||
			(upper != "" && strings.Contains(kv, upper)) {
			out = append(out, kv)
		}
	}
	return out
}

// resetTerminalMode attempts to restore cooked mode via /dev/tty, which
// still works when stdin has been redirected. Best-effort for crash
// recovery; errors ignored.
func resetTerminalMode() {
	tty, err := os.OpenFile("/dev/tty", os.O_RDWR, 0)
	if err != nil {
		return
	}
	defer tty.Close()

	fd := int(tty.Fd())
	termios, err := unix.IoctlGetTermios(fd, unix.TCGETS)
	if err != nil {
		return
	}
	termios.Lflag |= unix.ECHO | unix.ICANON | unix.ISIG | unix.IEXTEN
	termios.Iflag |= unix.ICRNL
	unix.IoctlSetTermios(fd, unix.TCSETS, termios)
}
