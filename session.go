package termctl

import (
	"bufio"
	"fmt"
	"os"
	"sync"
	"sync/atomic"
	"time"

	"golang.org/x/sys/unix"
	"golang.org/x/term"
)

// defaultDoubleClickThreshold is the maximum time between two releases
// of the same button for the second to be promoted to a double click.
const defaultDoubleClickThreshold = 200 * time.Millisecond

// defaultTTYPath is the controlling terminal device.
const defaultTTYPath = "/dev/tty"

// Escape sequences for mode transitions. Entering TUI hides the cursor
// and disables wrap before switching to the alternate screen and
// enabling mouse reporting (basic + cell-motion + SGR coordinates).
// Leaving TUI disables the alternate screen first, then undoes the
// rest and resets text attributes.
const (
	seqTUIEnter     = "\x1b[?25;7l\x1b[?1049;1000;1002;1006h"
	seqAltScreenOff = "\x1b[?1049l"
	seqTUIExit      = "\x1b[?25;7h\x1b[?1000;1002;1006l\x1b[0m"
)

// Session owns the controlling terminal: its open handles, the cooked
// and raw attribute snapshots, the current display mode, the last known
// dimensions, and the double-click record. There is at most one live
// session per process; all methods assume a single owner and need
// external synchronization if shared across goroutines.
type Session struct {
	in  *os.File
	out *os.File
	w   *bufio.Writer

	// mu guards width and height so readers always observe the
	// consistent pair written by the resize watcher.
	mu     sync.Mutex
	width  int
	height int

	// resized is set by the resize watcher and consumed exactly once
	// per resize by ReadEvent.
	resized atomic.Bool

	mode Mode

	// cooked is captured at initialization and is the restore target;
	// it must never be modified. raw is derived from it; only its
	// VMIN/VTIME fields change after derivation (read timeouts).
	cooked unix.Termios
	raw    unix.Termios

	clicks clickTracker
	now    func() time.Time

	ttyPath string

	winchc chan os.Signal
	sigc   chan os.Signal
	wg     sync.WaitGroup
}

var (
	activeMu sync.Mutex
	active   *Session
)

// Option configures a session at Open.
type Option func(*Session)

// WithDoubleClickThreshold sets the maximum interval between two
// releases of the same mouse button for double-click promotion.
func WithDoubleClickThreshold(d time.Duration) Option {
	return func(s *Session) { s.clicks.threshold = d }
}

// WithTTYPath overrides the terminal device path. Intended for tests
// and unusual environments; the default is /dev/tty.
func WithTTYPath(path string) Option {
	return func(s *Session) { s.ttyPath = path }
}

// Open initializes the terminal session: it opens the terminal device
// for reading and writing, captures the cooked attribute snapshot,
// derives the raw one, installs the resize and restore-then-reraise
// signal watchers, probes the dimensions once, and leaves the session
// in ModeDisabled.
//
// There is one session per process: if a session is already active,
// Open returns it and ignores opts. Without a controlling terminal
// there is no meaningful degraded mode; callers should treat an error
// from Open as fatal.
func Open(opts ...Option) (*Session, error) {
	activeMu.Lock()
	defer activeMu.Unlock()
	if active != nil {
		return active, nil
	}

	s := &Session{}
	s.applyDefaults()
	for _, opt := range opts {
		opt(s)
	}
	if err := s.initDevice(); err != nil {
		return nil, err
	}
	s.watchSignals()
	active = s
	return s, nil
}

// applyDefaults fills zero-valued configuration. Also used when a
// disabled session is lazily re-initialized through SetMode.
func (s *Session) applyDefaults() {
	if s.ttyPath == "" {
		s.ttyPath = defaultTTYPath
	}
	if s.clicks.threshold == 0 {
		s.clicks.threshold = defaultDoubleClickThreshold
	}
	if s.now == nil {
		s.now = time.Now
	}
}

// initDevice opens the terminal handles, captures the attribute
// snapshots, and probes the dimensions. It does not start the signal
// watchers; Open and reopen do that separately so the stop/continue
// path can rebuild the device without doubling up watchers.
func (s *Session) initDevice() error {
	in, err := os.OpenFile(s.ttyPath, os.O_RDONLY, 0)
	if err != nil {
		return fmt.Errorf("open %s for reading: %w", s.ttyPath, err)
	}
	out, err := os.OpenFile(s.ttyPath, os.O_WRONLY, 0)
	if err != nil {
		in.Close()
		return fmt.Errorf("open %s for writing: %w", s.ttyPath, err)
	}
	if !term.IsTerminal(int(out.Fd())) {
		in.Close()
		out.Close()
		return fmt.Errorf("%s: %w", s.ttyPath, ErrNotATerminal)
	}
	cooked, err := getTermios(int(in.Fd()))
	if err != nil {
		in.Close()
		out.Close()
		return fmt.Errorf("query terminal attributes: %w", err)
	}

	s.in = in
	s.out = out
	s.w = bufio.NewWriter(out)
	s.cooked = cooked
	s.raw = makeRaw(cooked)
	s.mode = ModeDisabled

	if w, h, err := term.GetSize(int(out.Fd())); err == nil {
		s.mu.Lock()
		s.width, s.height = w, h
		s.mu.Unlock()
	}
	s.resized.Store(false)
	return nil
}

// reopen lazily re-initializes a session whose mode fell back to
// ModeUninitialized (after Disable on the same handle).
func (s *Session) reopen() error {
	activeMu.Lock()
	defer activeMu.Unlock()
	if active == s {
		return nil
	}
	if active != nil {
		return fmt.Errorf("another session is active: %w", ErrClosed)
	}
	s.applyDefaults()
	if err := s.initDevice(); err != nil {
		return err
	}
	s.watchSignals()
	active = s
	return nil
}

// SetMode transitions the terminal to the given display mode. Calling
// it with the current mode is a no-op. Entering ModeNormal or ModeTUI
// applies the raw attribute snapshot; entering ModeTUI additionally
// hides the cursor, disables line wrap, and enables the alternate
// screen and mouse reporting. Leaving ModeTUI undoes all of that,
// alternate screen first. Output is flushed before returning.
func (s *Session) SetMode(mode Mode) error {
	if mode == s.mode {
		return nil
	}
	if s.mode == ModeUninitialized {
		if err := s.reopen(); err != nil {
			return err
		}
		if mode == s.mode {
			return nil
		}
	}

	if mode == ModeNormal || mode == ModeTUI {
		if err := s.applyTermios(&s.raw); err != nil {
			return fmt.Errorf("apply raw attributes: %w", err)
		}
	}

	switch mode {
	case ModeUninitialized, ModeDisabled, ModeNormal:
		if s.mode == ModeTUI {
			s.w.WriteString(seqAltScreenOff)
		}
		s.w.WriteString(seqTUIExit)
	case ModeTUI:
		s.w.WriteString(seqTUIEnter)
	}
	if err := s.w.Flush(); err != nil {
		return fmt.Errorf("flush mode transition: %w", err)
	}
	s.mode = mode
	return nil
}

// Mode returns the current display mode.
func (s *Session) Mode() Mode {
	return s.mode
}

// Size returns the last known terminal dimensions in cells. The pair
// is consistent as of the last processed resize.
func (s *Session) Size() (width, height int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.width, s.height
}

// Disable restores the cooked terminal attributes, resets the cursor
// shape, emits the mode cleanup sequences, closes both handles, and
// clears the session record. Calling it on an already-disabled session
// is a no-op.
func (s *Session) Disable() error {
	if s.out == nil {
		return nil
	}

	err := s.applyTermios(&s.cooked)
	s.SetCursorShape(CursorDefault)
	if mErr := s.SetMode(ModeUninitialized); err == nil {
		err = mErr
	}
	s.w.Flush()

	s.stopSignals()
	s.in.Close()
	s.out.Close()
	s.clearRecord()
	return err
}

// ForceClose closes the handles and clears the session record without
// restoring attributes or emitting cleanup sequences. For use
// immediately before replacing the process image, where the terminal
// state belongs to the successor.
func (s *Session) ForceClose() {
	if s.out == nil {
		return
	}
	s.stopSignals()
	s.in.Close()
	s.out.Close()
	s.clearRecord()
}

// clearRecord zeroes the session and releases the singleton slot.
func (s *Session) clearRecord() {
	activeMu.Lock()
	if active == s {
		active = nil
	}
	activeMu.Unlock()
	*s = Session{}
}

// Suspend stops the process, as Ctrl-Z would in cooked mode. The
// signal watcher restores the terminal before the stop takes effect
// and re-initializes the session when the process is continued.
func (s *Session) Suspend() error {
	return unix.Kill(os.Getpid(), unix.SIGTSTP)
}

// applyTermios applies attributes to the output handle. Sessions built
// by tests have no device and skip the syscall.
func (s *Session) applyTermios(t *unix.Termios) error {
	if s.out == nil {
		return nil
	}
	return setTermios(int(s.out.Fd()), t)
}

// setReadTimeout reconfigures the raw snapshot's VMIN/VTIME fields for
// the given timeout and reapplies them only when they differ from the
// currently applied values. A negative timeout blocks for at least one
// byte; otherwise the terminal waits up to the timeout rounded up to
// tenths of a second.
func (s *Session) setReadTimeout(timeout time.Duration) error {
	var vmin, vtime uint8
	if timeout < 0 {
		vmin, vtime = 1, 0
	} else {
		tenths := int64((timeout + 100*time.Millisecond - 1) / (100 * time.Millisecond))
		if tenths > 255 {
			tenths = 255
		}
		vmin, vtime = 0, uint8(tenths)
	}
	if vmin == s.raw.Cc[unix.VMIN] && vtime == s.raw.Cc[unix.VTIME] {
		return nil
	}
	s.raw.Cc[unix.VMIN] = vmin
	s.raw.Cc[unix.VTIME] = vtime
	return s.applyTermios(&s.raw)
}
