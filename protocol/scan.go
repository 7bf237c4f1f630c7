package protocol

// Control bytes shared by the parsers. BEL is what xterm emits as an OSC
// terminator by default; ST and its single-byte 8-bit form appear on
// stricter emulators.
const (
	bel = 0x07
	esc = 0x1b
	st8 = 0x9c
)

// scanNumber reads a decimal number from the head of data. It returns the
// value, the unconsumed remainder, and whether at least one digit was
// consumed. Values are capped well above any legal mode number or
// coordinate so hostile input cannot overflow.
func scanNumber(data []byte) (int, []byte, bool) {
	val := 0
	i := 0
	for i < len(data) && data[i] >= '0' && data[i] <= '9' {
		val = val*10 + int(data[i]-'0')
		if val > 99999 {
			return 0, data, false
		}
		i++
	}
	if i == 0 {
		return 0, data, false
	}
	return val, data[i:], true
}

// findTerminator returns the offset of the first accepted OSC terminator in
// data, or -1 when none is present (a truncated capture).
func findTerminator(data []byte) int {
	for i, b := range data {
		switch b {
		case bel, st8:
			return i
		case esc:
			if i+1 < len(data) && data[i+1] == '\\' {
				return i
			}
		}
	}
	return -1
}
