package protocol

import (
	"bytes"
	"encoding/base64"
)

var selectionReplyPrefix = []byte{esc, ']', '5', '2', ';'}

// SelectionReply is a parsed OSC 52 selection response. Payload is the
// base64 text between the last ';' and the terminator, a split that is
// sound because the base64 alphabet contains no ';'. Degraded marks the
// two-field vendor form in which the selection name segment is missing
// entirely; it has been seen in the wild but is a tolerance, not a
// documented variant.
type SelectionReply struct {
	Name     string
	Payload  string
	Degraded bool
}

// Decode returns the decoded selection contents.
func (r SelectionReply) Decode() ([]byte, error) {
	return base64.StdEncoding.DecodeString(r.Payload)
}

// ParseSelectionReply matches OSC 52 ; name ; payload with the usual three
// terminators accepted.
func ParseSelectionReply(resp []byte) (SelectionReply, bool) {
	rest, ok := bytes.CutPrefix(resp, selectionReplyPrefix)
	if !ok {
		return SelectionReply{}, false
	}
	term := findTerminator(rest)
	if term < 0 {
		return SelectionReply{}, false
	}
	body := rest[:term]
	semi := bytes.LastIndexByte(body, ';')
	if semi < 0 {
		return SelectionReply{Payload: string(body), Degraded: true}, true
	}
	return SelectionReply{
		Name:    string(body[:semi]),
		Payload: string(body[semi+1:]),
	}, true
}
