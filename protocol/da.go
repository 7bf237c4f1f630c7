package protocol

// SixelCode is the primary device attributes feature code for sixel
// graphics.
const SixelCode = 4

// DeviceAttrs is the parameter list of a primary device attributes reply.
// The first entry names the device class, the rest are feature codes.
type DeviceAttrs []int

// Has reports whether the list advertises a feature code.
func (a DeviceAttrs) Has(code int) bool {
	for _, p := range a {
		if p == code {
			return true
		}
	}
	return false
}

// ParsePrimaryDA matches a primary device attributes response,
// ESC [ ? p1 ; p2 ; ... c. Only the head of the capture has to match,
// since the probe that triggers it sends a DCS payload whose side effects
// may land in the same burst.
func ParsePrimaryDA(resp []byte) (DeviceAttrs, bool) {
	if len(resp) < 4 || resp[0] != esc || resp[1] != '[' || resp[2] != '?' {
		return nil, false
	}
	rest := resp[3:]
	var params DeviceAttrs
	for {
		n, r, ok := scanNumber(rest)
		if !ok {
			return nil, false
		}
		params = append(params, n)
		rest = r
		if len(rest) == 0 {
			return nil, false
		}
		switch rest[0] {
		case ';':
			rest = rest[1:]
		case 'c':
			return params, true
		default:
			return nil, false
		}
	}
}
