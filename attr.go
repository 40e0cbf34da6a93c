package termctl

import "strconv"

// Attr is a set of text attributes. Each bit position equals the SGR
// parameter it stands for, so a set can be rendered by walking the set
// bits in order. Combine with bitwise or.
type Attr uint64

const (
	AttrNormal          Attr = 1 << 0
	AttrBold            Attr = 1 << 1
	AttrFaint           Attr = 1 << 2
	AttrItalic          Attr = 1 << 3
	AttrUnderline       Attr = 1 << 4
	AttrBlinkSlow       Attr = 1 << 5
	AttrBlinkFast       Attr = 1 << 6
	AttrReverse         Attr = 1 << 7
	AttrConceal         Attr = 1 << 8
	AttrStrikethrough   Attr = 1 << 9
	AttrFraktur         Attr = 1 << 20
	AttrDoubleUnderline Attr = 1 << 21
	AttrNoBold          Attr = 1 << 22
	AttrNoItalic        Attr = 1 << 23
	AttrNoUnderline     Attr = 1 << 24
	AttrNoBlink         Attr = 1 << 25
	AttrNoReverse       Attr = 1 << 27
	AttrNoConceal       Attr = 1 << 28
	AttrNoStrikethrough Attr = 1 << 29
	AttrFramed          Attr = 1 << 51
	AttrEncircled       Attr = 1 << 52
	AttrOverlined       Attr = 1 << 53
	AttrNoFramed        Attr = 1 << 54
	AttrNoOverlined     Attr = 1 << 55
)

// Alternate font selection, SGR 10 through 19. AttrFont(0) is the
// primary font.
func AttrFont(n int) Attr {
	if n < 0 || n > 9 {
		return 0
	}
	return 1 << (10 + n)
}

// SetAttributes emits every attribute in the set as a single SGR
// sequence, lowest parameter first. An empty set writes nothing.
func (s *Session) SetAttributes(a Attr) {
	if a == 0 {
		return
	}
	s.w.WriteString("\x1b[")
	first := true
	for bit := 0; bit < 64; bit++ {
		if a&(1<<bit) == 0 {
			continue
		}
		if !first {
			s.w.WriteByte(';')
		}
		first = false
		s.w.WriteString(strconv.Itoa(bit))
	}
	s.w.WriteByte('m')
}

// ResetAttributes returns the terminal to the default rendition.
func (s *Session) ResetAttributes() {
	s.SetAttributes(AttrNormal)
}
