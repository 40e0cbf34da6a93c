package termctl

import (
	"fmt"

	"github.com/mattn/go-runewidth"
)

// ClearMode selects the region affected by Clear.
type ClearMode int

const (
	ClearScreen ClearMode = iota
	ClearAbove
	ClearBelow
	ClearLine
	ClearLeft
	ClearRight
)

var clearSequences = map[ClearMode]string{
	ClearScreen: "\x1b[2J",
	ClearAbove:  "\x1b[1J",
	ClearBelow:  "\x1b[J",
	ClearLine:   "\x1b[2K",
	ClearLeft:   "\x1b[1K",
	ClearRight:  "\x1b[K",
}

// WriteString appends text to the output buffer. Nothing reaches the
// terminal until Flush, a mode transition, or the buffer filling up.
func (s *Session) WriteString(str string) (int, error) {
	return s.w.WriteString(str)
}

// Printf formats into the output buffer.
func (s *Session) Printf(format string, args ...any) (int, error) {
	return fmt.Fprintf(s.w, format, args...)
}

// Flush pushes buffered output to the terminal.
func (s *Session) Flush() error {
	return s.w.Flush()
}

// MoveCursor moves the cursor to the zero-based cell (x, y).
func (s *Session) MoveCursor(x, y int) {
	fmt.Fprintf(s.w, "\x1b[%d;%dH", y+1, x+1)
}

// MoveCursorRelative moves the cursor by the given cell deltas.
// Positive dx moves right, positive dy moves down.
func (s *Session) MoveCursorRelative(dx, dy int) {
	if dx > 0 {
		fmt.Fprintf(s.w, "\x1b[%dC", dx)
	} else if dx < 0 {
		fmt.Fprintf(s.w, "\x1b[%dD", -dx)
	}
	if dy > 0 {
		fmt.Fprintf(s.w, "\x1b[%dB", dy)
	} else if dy < 0 {
		fmt.Fprintf(s.w, "\x1b[%dA", -dy)
	}
}

// Clear erases the region named by mode.
func (s *Session) Clear(mode ClearMode) error {
	seq, ok := clearSequences[mode]
	if !ok {
		return fmt.Errorf("clear mode %d: %w", int(mode), ErrInvalidClearMode)
	}
	s.w.WriteString(seq)
	return nil
}

// ScrollRegion scrolls the inclusive zero-based row range [first, last]
// by n rows. Positive n moves content up, negative down. The scroll
// region is reset afterward so later output is unaffected.
func (s *Session) ScrollRegion(first, last, n int) {
	if n == 0 {
		return
	}
	dir := byte('S')
	if n < 0 {
		dir, n = 'T', -n
	}
	fmt.Fprintf(s.w, "\x1b[%d;%dr\x1b[%d%c\x1b[r", first+1, last+1, n, dir)
}

// ShowCursor makes the cursor visible without changing modes.
func (s *Session) ShowCursor() {
	s.w.WriteString("\x1b[?25h")
}

// HideCursor hides the cursor without changing modes.
func (s *Session) HideCursor() {
	s.w.WriteString("\x1b[?25l")
}

// CursorShape selects the cursor glyph and blink behavior.
type CursorShape int

const (
	CursorDefault CursorShape = iota
	CursorBlinkingBlock
	CursorSteadyBlock
	CursorBlinkingUnderline
	CursorSteadyUnderline
	CursorBlinkingBar
	CursorSteadyBar
)

// SetCursorShape changes the cursor glyph.
func (s *Session) SetCursorShape(shape CursorShape) {
	fmt.Fprintf(s.w, "\x1b[%d q", int(shape))
}

// DrawBox draws a single-line border around the rectangle whose
// interior top-left cell is (x, y) and whose interior is w by h cells.
// The border occupies the cells just outside that rectangle.
func (s *Session) DrawBox(x, y, w, h int) {
	s.w.WriteString("\x1b(0")
	s.MoveCursor(x-1, y-1)
	s.w.WriteByte('l')
	s.repeatByte('q', w)
	s.w.WriteByte('k')
	for j := 0; j < h; j++ {
		s.MoveCursor(x-1, y+j)
		s.w.WriteByte('x')
		s.MoveCursor(x+w, y+j)
		s.w.WriteByte('x')
	}
	s.MoveCursor(x-1, y+h)
	s.w.WriteByte('m')
	s.repeatByte('q', w)
	s.w.WriteByte('j')
	s.w.WriteString("\x1b(B")
}

// DrawTitledBox draws a box like DrawBox with the title centered in
// the top border. Titles wider than the box interior are truncated on
// display-cell width, so double-width runes are never split.
func (s *Session) DrawTitledBox(x, y, w, h int, title string) {
	s.DrawBox(x, y, w, h)
	if title == "" {
		return
	}
	title = runewidth.Truncate(title, w, "")
	tw := runewidth.StringWidth(title)
	s.MoveCursor(x+(w-tw)/2, y-1)
	s.w.WriteString(title)
}

// DrawShadow shades the cells along the right and bottom edges of the
// rectangle, offset one cell down and right, using the DEC checkerboard
// glyph.
func (s *Session) DrawShadow(x, y, w, h int) {
	s.w.WriteString("\x1b(0")
	for j := 1; j <= h; j++ {
		s.MoveCursor(x+w, y+j)
		s.w.WriteByte('a')
	}
	s.MoveCursor(x+1, y+h)
	s.repeatByte('a', w)
	s.w.WriteString("\x1b(B")
}

// FillBox overwrites the w by h rectangle at (x, y) with spaces in the
// current attributes.
func (s *Session) FillBox(x, y, w, h int) {
	for j := 0; j < h; j++ {
		s.MoveCursor(x, y+j)
		s.repeatByte(' ', w)
	}
}

func (s *Session) repeatByte(b byte, n int) {
	for i := 0; i < n; i++ {
		s.w.WriteByte(b)
	}
}
