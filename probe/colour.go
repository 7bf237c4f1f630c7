package probe

import (
	"bytes"
	"fmt"

	colorful "github.com/lucasb-eyer/go-colorful"

	"github.com/lixenwraith/termprobe/protocol"
	"github.com/lixenwraith/termprobe/terminal"
)

// rampWidth is the cell count of the visual colour strips.
const rampWidth = 36

// colours reports colour support claims, then draws strips to judge by
// eye. COLORTERM and terminfo regularly disagree with reality in both
// directions.
func (r *Runner) colours() error {
	r.section("Colours")
	if v, claimed := terminal.TruecolorClaim(); v != "" {
		r.printf("COLORTERM=%s", v)
		if claimed {
			r.printf(" - Claims to support 24-bit colours")
		}
		r.printf("\n")
	}

	if r.caps != nil {
		r.printf("Terminfo: %d colours.\n", r.caps.Colors())
		if r.caps.DirectColor() {
			r.printf("Terminfo: claims direct color.\n")
		}
	}

	r.writeRamp256()
	r.writeRampRGB()
	return nil
}

// writeRampRGB emits a 24-bit hue sweep. Without direct colour support the
// row visibly collapses into a few stepped blocks.
func (r *Runner) writeRampRGB() {
	var b bytes.Buffer
	for i := 0; i < rampWidth; i++ {
		h := 360.0 * float64(i) / float64(rampWidth)
		cr, cg, cb := colorful.Hsv(h, 1, 1).RGB255()
		fmt.Fprintf(&b, "\x1b[48;2;%d;%d;%dm ", cr, cg, cb)
	}
	b.WriteString("\x1b[0m 24-bit\n")
	r.tty.Write(b.Bytes())
}

// writeRamp256 emits the same sweep quantised to the 6x6x6 cube.
func (r *Runner) writeRamp256() {
	var b bytes.Buffer
	for i := 0; i < rampWidth; i++ {
		h := 360.0 * float64(i) / float64(rampWidth)
		cr, cg, cb := colorful.Hsv(h, 1, 1).RGB255()
		idx := 16 + 36*(int(cr)*6/256) + 6*(int(cg)*6/256) + int(cb)*6/256
		fmt.Fprintf(&b, "\x1b[48;5;%dm ", idx)
	}
	b.WriteString("\x1b[0m 256\n")
	r.tty.Write(b.Bytes())
}

// colourChange redefines palette entry 1, reads it back and restores it.
// Terminals that never answer the query skip the roundtrip rather than get
// stuck with a stray red.
func (r *Runner) colourChange() error {
	r.section("Colour change")

	resp, err := r.transact(protocol.ColorQuery(1), false)
	if err != nil {
		return err
	}
	before, ok := protocol.ParseColorReply(resp)
	if !ok {
		r.printf("Palette query: no reply.\n")
		if r.term == "linux" {
			// The console has its own palette escape and no query at all.
			if _, err := r.transact(protocol.LegacyPaletteSet(1, "aa0000"), false); err != nil {
				return err
			}
			r.printf("Sent the legacy console palette escape instead.\n")
		}
		return nil
	}
	r.printf("Colour 1 was %s\n", before.Spec)

	if _, err := r.transact(protocol.SetColor(1, "rgb:ffff/0000/0000"), false); err != nil {
		return err
	}
	resp, err = r.transact(protocol.ColorQuery(1), false)
	if err != nil {
		return err
	}
	if after, ok := protocol.ParseColorReply(resp); ok {
		r.printf("Colour 1 set to %s\n", after.Spec)
	}
	r.printf("\x1b[31mThis renders in the redefined colour 1.\x1b[0m\n")

	if _, err := r.transact(protocol.ResetColor(1), false); err != nil {
		return err
	}
	resp, err = r.transact(protocol.ColorQuery(1), false)
	if err != nil {
		return err
	}
	if restored, ok := protocol.ParseColorReply(resp); ok {
		r.printf("Colour 1 reset to %s\n", restored.Spec)
	}
	return nil
}
