package protocol

// ModeStatus is the terminal's answer to a DECRQM private mode query.
type ModeStatus uint8

// DECRPM status values, in wire order.
const (
	StatusUnknown ModeStatus = iota
	StatusSet
	StatusReset
	StatusPermanentlySet
	StatusPermanentlyReset
)

// String returns the conventional description of the status.
func (s ModeStatus) String() string {
	switch s {
	case StatusUnknown:
		return "not recognized"
	case StatusSet:
		return "set"
	case StatusReset:
		return "reset"
	case StatusPermanentlySet:
		return "permanently set"
	case StatusPermanentlyReset:
		return "permanently reset"
	}
	return "invalid"
}

// Supported reports whether the status means the mode exists on this
// terminal, whatever its current setting.
func (s ModeStatus) Supported() bool {
	return s != StatusUnknown
}

// ModeReport is a parsed DECRPM response.
type ModeReport struct {
	Mode   int
	Status ModeStatus
}

// ParseModeReport matches a complete DECRPM response such as
// "\x1b[?1000;2$y". The whole input must match: trailing bytes after the
// final 'y' reject the response rather than being guessed at, and status
// digits outside 0-4 are treated as no match even though they scan.
func ParseModeReport(resp []byte) (ModeReport, bool) {
	if len(resp) < 4 || resp[0] != esc || resp[1] != '[' || resp[2] != '?' {
		return ModeReport{}, false
	}
	mode, rest, ok := scanNumber(resp[3:])
	if !ok || len(rest) != 4 || rest[0] != ';' {
		return ModeReport{}, false
	}
	if rest[1] < '0' || rest[1] > '4' || rest[2] != '$' || rest[3] != 'y' {
		return ModeReport{}, false
	}
	return ModeReport{Mode: mode, Status: ModeStatus(rest[1] - '0')}, true
}
