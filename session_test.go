package termctl

import (
	"bufio"
	"bytes"
	"testing"
	"time"

	"golang.org/x/sys/unix"
)

// newOutputSession builds a session over an in-memory buffer with no
// terminal device. Attribute syscalls are skipped for such sessions, so
// output methods and mode transitions can be observed byte for byte.
func newOutputSession() (*Session, *bytes.Buffer) {
	s := &Session{}
	s.applyDefaults()
	buf := &bytes.Buffer{}
	s.w = bufio.NewWriter(buf)
	s.mode = ModeDisabled
	return s, buf
}

func TestSetModeTransitions(t *testing.T) {
	s, buf := newOutputSession()

	if err := s.SetMode(ModeTUI); err != nil {
		t.Fatalf("SetMode(ModeTUI) error: %v", err)
	}
	if got := buf.String(); got != seqTUIEnter {
		t.Errorf("enter TUI wrote %q, want %q", got, seqTUIEnter)
	}

	buf.Reset()
	if err := s.SetMode(ModeNormal); err != nil {
		t.Fatalf("SetMode(ModeNormal) error: %v", err)
	}
	// Leaving TUI turns the alternate screen off before the rest of
	// the cleanup.
	want := seqAltScreenOff + seqTUIExit
	if got := buf.String(); got != want {
		t.Errorf("leave TUI wrote %q, want %q", got, want)
	}

	buf.Reset()
	if err := s.SetMode(ModeDisabled); err != nil {
		t.Fatalf("SetMode(ModeDisabled) error: %v", err)
	}
	if got := buf.String(); got != seqTUIExit {
		t.Errorf("disable wrote %q, want %q", got, seqTUIExit)
	}
}

func TestSetModeIdempotent(t *testing.T) {
	s, buf := newOutputSession()
	s.mode = ModeTUI
	if err := s.SetMode(ModeTUI); err != nil {
		t.Fatalf("SetMode error: %v", err)
	}
	if buf.Len() != 0 {
		t.Errorf("repeated SetMode wrote %q, want nothing", buf.String())
	}
}

func TestModeString(t *testing.T) {
	tests := []struct {
		mode Mode
		want string
	}{
		{ModeUninitialized, "uninitialized"},
		{ModeDisabled, "disabled"},
		{ModeNormal, "normal"},
		{ModeTUI, "tui"},
	}
	for _, tt := range tests {
		if got := tt.mode.String(); got != tt.want {
			t.Errorf("Mode(%d).String() = %q, want %q", int(tt.mode), got, tt.want)
		}
	}
}

func TestMakeRawPreservesCooked(t *testing.T) {
	var cooked unix.Termios
	cooked.Iflag = unix.IXON | unix.ICRNL | unix.BRKINT
	cooked.Oflag = unix.OPOST
	cooked.Lflag = unix.ECHO | unix.ICANON | unix.ISIG | unix.IEXTEN
	cooked.Cc[unix.VMIN] = 0
	cooked.Cc[unix.VTIME] = 5
	original := cooked

	raw := makeRaw(cooked)

	if cooked != original {
		t.Fatal("makeRaw modified its input")
	}
	if raw.Lflag&(unix.ECHO|unix.ICANON|unix.ISIG|unix.IEXTEN) != 0 {
		t.Errorf("raw Lflag = %#x, echo/canonical/signal bits still set", raw.Lflag)
	}
	if raw.Iflag&(unix.IXON|unix.ICRNL|unix.BRKINT) != 0 {
		t.Errorf("raw Iflag = %#x, input translation bits still set", raw.Iflag)
	}
	if raw.Oflag&unix.OPOST != 0 {
		t.Errorf("raw Oflag = %#x, OPOST still set", raw.Oflag)
	}
	if raw.Cc[unix.VMIN] != 1 || raw.Cc[unix.VTIME] != 0 {
		t.Errorf("raw VMIN/VTIME = %d/%d, want 1/0", raw.Cc[unix.VMIN], raw.Cc[unix.VTIME])
	}
}

func TestSetReadTimeout(t *testing.T) {
	tests := []struct {
		timeout time.Duration
		vmin    uint8
		vtime   uint8
	}{
		{-1, 1, 0},
		{0, 0, 0},
		{50 * time.Millisecond, 0, 1},
		{100 * time.Millisecond, 0, 1},
		{250 * time.Millisecond, 0, 3},
		{time.Minute, 0, 255},
	}
	for _, tt := range tests {
		s, _ := newOutputSession()
		if err := s.setReadTimeout(tt.timeout); err != nil {
			t.Fatalf("setReadTimeout(%v) error: %v", tt.timeout, err)
		}
		if s.raw.Cc[unix.VMIN] != tt.vmin || s.raw.Cc[unix.VTIME] != tt.vtime {
			t.Errorf("setReadTimeout(%v) left VMIN/VTIME = %d/%d, want %d/%d",
				tt.timeout, s.raw.Cc[unix.VMIN], s.raw.Cc[unix.VTIME], tt.vmin, tt.vtime)
		}
	}
}

func TestDisableOnFreshSessionIsNoop(t *testing.T) {
	s := &Session{}
	if err := s.Disable(); err != nil {
		t.Errorf("Disable on fresh session error: %v", err)
	}
}
