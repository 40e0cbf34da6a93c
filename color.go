package termctl

import (
	"fmt"

	"github.com/lucasb-eyer/go-colorful"
)

// SetFg sets the foreground to a 24-bit color.
func (s *Session) SetFg(r, g, b uint8) {
	fmt.Fprintf(s.w, "\x1b[38;2;%d;%d;%dm", r, g, b)
}

// SetBg sets the background to a 24-bit color.
func (s *Session) SetBg(r, g, b uint8) {
	fmt.Fprintf(s.w, "\x1b[48;2;%d;%d;%dm", r, g, b)
}

// SetFg256 sets the foreground to a 256-palette index.
func (s *Session) SetFg256(index uint8) {
	fmt.Fprintf(s.w, "\x1b[38;5;%dm", index)
}

// SetBg256 sets the background to a 256-palette index.
func (s *Session) SetBg256(index uint8) {
	fmt.Fprintf(s.w, "\x1b[48;5;%dm", index)
}

// SetFgColor sets the foreground from a color value.
func (s *Session) SetFgColor(c colorful.Color) {
	r, g, b := c.RGB255()
	s.SetFg(r, g, b)
}

// SetBgColor sets the background from a color value.
func (s *Session) SetBgColor(c colorful.Color) {
	r, g, b := c.RGB255()
	s.SetBg(r, g, b)
}

// SetFgHex parses a "#rrggbb" string and sets the foreground.
func (s *Session) SetFgHex(hex string) error {
	c, err := colorful.Hex(hex)
	if err != nil {
		return fmt.Errorf("parse color %q: %w", hex, err)
	}
	s.SetFgColor(c)
	return nil
}

// SetBgHex parses a "#rrggbb" string and sets the background.
func (s *Session) SetBgHex(hex string) error {
	c, err := colorful.Hex(hex)
	if err != nil {
		return fmt.Errorf("parse color %q: %w", hex, err)
	}
	s.SetBgColor(c)
	return nil
}

// ResetColors restores the default foreground and background.
func (s *Session) ResetColors() {
	s.w.WriteString("\x1b[39;49m")
}
