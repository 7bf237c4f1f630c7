package protocol

import "bytes"

var colorReplyPrefix = []byte{esc, ']', '4', ';'}

// ColorReply is a parsed OSC 4 palette query response. Spec carries the
// colorspec text exactly as the terminal sent it, usually of the form
// "rgb:rrrr/gggg/bbbb"; no further decoding is attempted here.
type ColorReply struct {
	Index string
	Spec  string
}

// ParseColorReply matches OSC 4 ; index ; spec terminated by BEL, ST, or
// the 8-bit ST. A reply without that shape means the terminal does not
// answer palette queries, so ok is false and the caller reports the
// capability as absent.
func ParseColorReply(resp []byte) (ColorReply, bool) {
	rest, ok := bytes.CutPrefix(resp, colorReplyPrefix)
	if !ok {
		return ColorReply{}, false
	}
	term := findTerminator(rest)
	if term < 0 {
		return ColorReply{}, false
	}
	body := rest[:term]
	semi := bytes.IndexByte(body, ';')
	if semi < 0 {
		return ColorReply{}, false
	}
	return ColorReply{
		Index: string(body[:semi]),
		Spec:  string(body[semi+1:]),
	}, true
}
