package termctl

import (
	"errors"
	"testing"
	"time"

	"github.com/dshills/termctl/key"
)

// sliceSource feeds a fixed byte sequence; exhaustion behaves like a
// read timeout.
type sliceSource struct {
	data []byte
	pos  int
}

func (s *sliceSource) next() int {
	if s.pos >= len(s.data) {
		return -1
	}
	b := s.data[s.pos]
	s.pos++
	return int(b)
}

func newDecodeSession() *Session {
	s := &Session{}
	s.applyDefaults()
	return s
}

func decode(t *testing.T, s *Session, input string) key.Event {
	t.Helper()
	ev, err := s.decodeEvent(&sliceSource{data: []byte(input)})
	if err != nil {
		t.Fatalf("decodeEvent(%q) error: %v", input, err)
	}
	return ev
}

func TestDecodePlainBytes(t *testing.T) {
	tests := []struct {
		input string
		want  key.Key
	}{
		{"a", 'a'},
		{"Z", 'Z'},
		{" ", key.Space},
		{"\x03", key.CtrlC},
		{"\x7f", key.Backspace2},
		{"\x00", key.CtrlAt},
	}
	s := newDecodeSession()
	for _, tt := range tests {
		if got := decode(t, s, tt.input); got.Key != tt.want {
			t.Errorf("decode(%q) = %v, want %v", tt.input, got.Key, tt.want)
		}
	}
}

func TestDecodeEscapeSequences(t *testing.T) {
	tests := []struct {
		input string
		want  key.Key
	}{
		{"\x1b[A", key.Up},
		{"\x1b[B", key.Down},
		{"\x1b[C", key.Right},
		{"\x1b[D", key.Left},
		{"\x1b[H", key.Home},
		{"\x1b[F", key.End},
		{"\x1bOA", key.Up},
		{"\x1bOB", key.Down},
		{"\x1bOH", key.Home},
		{"\x1bOF", key.End},
		{"\x1bOP", key.F1},
		{"\x1bOQ", key.F2},
		{"\x1bOR", key.F3},
		{"\x1bOS", key.F4},
		{"\x1b[1;5A", key.ModCtrl | key.Up},
		{"\x1b[1;2C", key.ModShift | key.Right},
		{"\x1b[1;3D", key.ModAlt | key.Left},
		{"\x1b[1;8B", key.ModShift | key.ModAlt | key.ModCtrl | key.Down},
		{"\x1b[2J", key.ModShift | key.Home},
		{"\x1b[K", key.ModShift | key.End},
		{"\x1b[M", key.ModCtrl | key.Delete},
		{"\x1b[P", key.Delete},
		{"\x1b[1P", key.F1},
		{"\x1b[1Q", key.F2},
		{"\x1b[1R", key.F3},
		{"\x1b[1S", key.F4},
		{"\x1b[Z", key.ModShift | key.Tab},
		{"\x1b[1;5Z", key.ModCtrl | key.ModShift | key.Tab},
		{"\x1b[1;3Z", key.ModAlt | key.ModShift | key.Tab},
	}
	s := newDecodeSession()
	for _, tt := range tests {
		if got := decode(t, s, tt.input); got.Key != tt.want {
			t.Errorf("decode(%q) = %v, want %v", tt.input, got.Key, tt.want)
		}
	}
}

func TestDecodeTildeSequences(t *testing.T) {
	tests := []struct {
		input string
		want  key.Key
	}{
		{"\x1b[1~", key.Home},
		{"\x1b[2~", key.Insert},
		{"\x1b[3~", key.Delete},
		{"\x1b[4~", key.End},
		{"\x1b[5~", key.PageUp},
		{"\x1b[6~", key.PageDown},
		{"\x1b[7~", key.Home},
		{"\x1b[8~", key.End},
		{"\x1b[11~", key.F1},
		{"\x1b[15~", key.F5},
		{"\x1b[17~", key.F6},
		{"\x1b[21~", key.F10},
		{"\x1b[24~", key.F12},
		{"\x1b[3;5~", key.ModCtrl | key.Delete},
		{"\x1b[5;2~", key.ModShift | key.PageUp},
	}
	s := newDecodeSession()
	for _, tt := range tests {
		if got := decode(t, s, tt.input); got.Key != tt.want {
			t.Errorf("decode(%q) = %v, want %v", tt.input, got.Key, tt.want)
		}
	}
}

func TestDecodeLoneEscapeAndAltChords(t *testing.T) {
	tests := []struct {
		input string
		want  key.Key
	}{
		{"\x1b", key.Escape},
		{"\x1b\x1b", key.Escape},
		{"\x1bx", key.ModAlt | 'x'},
		{"\x1b\x7f", key.ModAlt | key.Backspace2},
		{"\x1b[", key.ModAlt | '['},
		{"\x1bO", key.ModAlt | 'O'},
	}
	s := newDecodeSession()
	for _, tt := range tests {
		if got := decode(t, s, tt.input); got.Key != tt.want {
			t.Errorf("decode(%q) = %v, want %v", tt.input, got.Key, tt.want)
		}
	}
}

func TestDecodeSGRMouse(t *testing.T) {
	tests := []struct {
		input string
		want  key.Key
		x, y  int
	}{
		{"\x1b[<0;11;6M", key.MouseLeftPress, 10, 5},
		{"\x1b[<1;1;1M", key.MouseMiddlePress, 0, 0},
		{"\x1b[<2;80;24M", key.MouseRightPress, 79, 23},
		{"\x1b[<0;5;5m", key.MouseLeftRelease, 4, 4},
		{"\x1b[<2;5;5m", key.MouseRightRelease, 4, 4},
		{"\x1b[<32;3;4M", key.MouseLeftDrag, 2, 3},
		{"\x1b[<33;3;4M", key.MouseMiddleDrag, 2, 3},
		{"\x1b[<34;3;4M", key.MouseRightDrag, 2, 3},
		{"\x1b[<64;2;2M", key.MouseWheelUp, 1, 1},
		{"\x1b[<65;2;2M", key.MouseWheelDown, 1, 1},
		{"\x1b[<4;1;1M", key.ModShift | key.MouseLeftPress, 0, 0},
		{"\x1b[<8;1;1M", key.ModMeta | key.MouseLeftPress, 0, 0},
		{"\x1b[<16;1;1M", key.ModCtrl | key.MouseLeftPress, 0, 0},
		{"\x1b[<20;1;1M", key.ModShift | key.ModCtrl | key.MouseLeftPress, 0, 0},
	}
	for _, tt := range tests {
		s := newDecodeSession()
		got := decode(t, s, tt.input)
		if got.Key != tt.want || got.X != tt.x || got.Y != tt.y {
			t.Errorf("decode(%q) = %v at (%d,%d), want %v at (%d,%d)",
				tt.input, got.Key, got.X, got.Y, tt.want, tt.x, tt.y)
		}
	}
}

func TestDoubleClickPromotion(t *testing.T) {
	s := newDecodeSession()
	now := time.Unix(0, 0)
	s.now = func() time.Time { return now }

	click := func() key.Key {
		t.Helper()
		return decode(t, s, "\x1b[<0;1;1m").Key
	}

	if got := click(); got != key.MouseLeftRelease {
		t.Fatalf("first release = %v, want MouseLeftRelease", got)
	}
	now = now.Add(100 * time.Millisecond)
	if got := click(); got != key.MouseLeftDouble {
		t.Fatalf("second release = %v, want MouseLeftDouble", got)
	}
	// The record now holds the promoted key, so a third rapid release
	// starts over as a single click.
	now = now.Add(100 * time.Millisecond)
	if got := click(); got != key.MouseLeftRelease {
		t.Fatalf("third release = %v, want MouseLeftRelease", got)
	}

	// Beyond the threshold there is no promotion.
	now = now.Add(300 * time.Millisecond)
	if got := click(); got != key.MouseLeftRelease {
		t.Fatalf("slow release = %v, want MouseLeftRelease", got)
	}
}

func TestDoubleClickIgnoresModifiers(t *testing.T) {
	s := newDecodeSession()
	now := time.Unix(0, 0)
	s.now = func() time.Time { return now }

	// Button 4 is a Shift-chorded left release; the chord must not
	// break promotion, and each event keeps its own modifiers.
	if got := decode(t, s, "\x1b[<4;1;1m").Key; got != key.ModShift|key.MouseLeftRelease {
		t.Fatalf("first release = %v, want Shift-MouseLeftRelease", got)
	}
	now = now.Add(100 * time.Millisecond)
	if got := decode(t, s, "\x1b[<0;1;1m").Key; got != key.MouseLeftDouble {
		t.Fatalf("plain release after chorded = %v, want MouseLeftDouble", got)
	}

	now = now.Add(300 * time.Millisecond)
	decode(t, s, "\x1b[<0;1;1m")
	now = now.Add(100 * time.Millisecond)
	if got := decode(t, s, "\x1b[<16;1;1m").Key; got != key.ModCtrl|key.MouseLeftDouble {
		t.Fatalf("chorded release after plain = %v, want Ctrl-MouseLeftDouble", got)
	}
}

func TestDoubleClickDifferentButtons(t *testing.T) {
	s := newDecodeSession()
	now := time.Unix(0, 0)
	s.now = func() time.Time { return now }

	decode(t, s, "\x1b[<0;1;1m")
	now = now.Add(50 * time.Millisecond)
	if got := decode(t, s, "\x1b[<2;1;1m").Key; got != key.MouseRightRelease {
		t.Fatalf("right after left = %v, want MouseRightRelease", got)
	}
}

func TestTimeoutReturnsNone(t *testing.T) {
	s := newDecodeSession()
	ev, err := s.decodeEvent(&sliceSource{})
	if err != nil {
		t.Fatalf("decodeEvent() error: %v", err)
	}
	if !ev.IsNone() {
		t.Errorf("timed-out read = %v, want none", ev.Key)
	}
}

func TestResizeReportedOnce(t *testing.T) {
	s := newDecodeSession()
	s.resized.Store(true)

	ev, err := s.decodeEvent(&sliceSource{})
	if err != nil {
		t.Fatalf("decodeEvent() error: %v", err)
	}
	if ev.Key != key.Resize {
		t.Fatalf("pending resize = %v, want Resize", ev.Key)
	}

	ev, err = s.decodeEvent(&sliceSource{})
	if err != nil {
		t.Fatalf("decodeEvent() error: %v", err)
	}
	if !ev.IsNone() {
		t.Errorf("second poll = %v, want none", ev.Key)
	}
}

func TestUnknownSequences(t *testing.T) {
	inputs := []string{
		"\x1b[5J",
		"\x1b[5Q",
		"\x1b[99~",
		"\x1b[<3;1;1M",
		"\x1b[<0;1M",
		"\x1bOx",
	}
	s := newDecodeSession()
	for _, input := range inputs {
		ev, err := s.decodeEvent(&sliceSource{data: []byte(input)})
		if !errors.Is(err, ErrUnknownSequence) {
			t.Errorf("decode(%q) error = %v, want ErrUnknownSequence", input, err)
		}
		if !ev.IsNone() {
			t.Errorf("decode(%q) = %v, want none", input, ev.Key)
		}
	}
}

func TestDeviceControlStringIgnored(t *testing.T) {
	s := newDecodeSession()
	ev, err := s.decodeEvent(&sliceSource{data: []byte("\x1bP1$r0m\x1b\\")})
	if !errors.Is(err, ErrUnsupportedSequence) {
		t.Fatalf("DCS error = %v, want ErrUnsupportedSequence", err)
	}
	if !ev.IsNone() {
		t.Errorf("DCS event = %v, want none", ev.Key)
	}
}

func TestReadEventClosedSession(t *testing.T) {
	s := &Session{}
	if _, err := s.ReadEvent(0); !errors.Is(err, ErrClosed) {
		t.Errorf("ReadEvent on closed session error = %v, want ErrClosed", err)
	}
}
