//go:build unix

package termctl

import (
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"
	"golang.org/x/sys/unix"

	"github.com/dshills/termctl/internal/logging"
)

// terminatingSignals are routed through restore-then-reraise so the
// terminal is never left in raw mode by a crash, a kill, or a stop.
// SIGSEGV here covers externally delivered faults; the Go runtime
// turns synchronous faults in Go code into panics before a handler
// would run.
var terminatingSignals = []os.Signal{
	unix.SIGINT,
	unix.SIGTERM,
	unix.SIGXCPU,
	unix.SIGXFSZ,
	unix.SIGVTALRM,
	unix.SIGPROF,
	unix.SIGSEGV,
	unix.SIGTSTP,
	unix.SIGPIPE,
}

func (s *Session) watchSignals() {
	s.winchc = make(chan os.Signal, 1)
	signal.Notify(s.winchc, unix.SIGWINCH)
	s.wg.Add(1)
	go s.watchResize(s.winchc)

	s.sigc = make(chan os.Signal, 1)
	signal.Notify(s.sigc, terminatingSignals...)
	s.wg.Add(1)
	go s.watchTermination(s.sigc)
}

// stopSignals unregisters both watchers and waits for their goroutines
// to drain, so the caller may close the handles and zero the session
// afterward.
func (s *Session) stopSignals() {
	if s.winchc != nil {
		signal.Stop(s.winchc)
		close(s.winchc)
		s.winchc = nil
	}
	if s.sigc != nil {
		signal.Stop(s.sigc)
		close(s.sigc)
	}
	s.wg.Wait()
	s.sigc = nil
}

// watchResize requeries the dimensions on each SIGWINCH, caches them,
// and marks a resize pending. The flag is consumed exactly once by
// ReadEvent. The input handle is reread each iteration because the
// stop/continue path replaces it.
func (s *Session) watchResize(c chan os.Signal) {
	defer s.wg.Done()
	for range c {
		in := s.in
		if in == nil {
			continue
		}
		w, h, err := getWinsize(int(in.Fd()))
		if err != nil {
			logging.Warn("window size query failed", zap.Error(err))
			continue
		}
		s.mu.Lock()
		if w != s.width || h != s.height {
			s.width, s.height = w, h
			s.resized.Store(true)
		}
		s.mu.Unlock()
	}
}

// watchTermination restores the terminal, resets the signal's
// disposition to the default, and redelivers it to the process. For
// fatal signals the process dies on delivery. Only SIGTSTP returns
// control: the process was stopped and has just been continued, so the
// raw attributes and the stop disposition did not survive and the
// session must be rebuilt.
func (s *Session) watchTermination(c chan os.Signal) {
	defer s.wg.Done()
	for sig := range c {
		sysSig, ok := sig.(syscall.Signal)
		if !ok {
			continue
		}
		prev := s.mode
		s.restoreForSignal()
		signal.Reset(sysSig)
		if err := unix.Kill(os.Getpid(), sysSig); err != nil {
			logging.Error("signal redelivery failed",
				zap.String("signal", sysSig.String()), zap.Error(err))
		}
		if sysSig != unix.SIGTSTP {
			return
		}
		s.resume(prev)
		signal.Notify(c, sysSig)
	}
}

// restoreForSignal puts the terminal back into its cooked state using
// direct writes on the output descriptor, bypassing the buffered
// writer so no partially buffered application output is interleaved
// with the cleanup sequences.
func (s *Session) restoreForSignal() {
	out := s.out
	if out == nil {
		return
	}
	fd := int(out.Fd())
	if err := setTermios(fd, &s.cooked); err != nil {
		logging.Error("cooked attribute restore failed", zap.Error(err))
	}
	seq := seqTUIExit + "\x1b[0 q"
	if s.mode == ModeTUI {
		seq = seqAltScreenOff + seq
	}
	unix.Write(fd, []byte(seq))
}

// resume rebuilds the session after a stop/continue cycle: the handles
// are reopened, the attribute snapshots recaptured, and the previous
// display mode re-entered.
func (s *Session) resume(prev Mode) {
	if s.in != nil {
		s.in.Close()
	}
	if s.out != nil {
		s.out.Close()
	}
	s.in, s.out = nil, nil
	if err := s.initDevice(); err != nil {
		logging.Error("session rebuild after continue failed", zap.Error(err))
		return
	}
	if prev == ModeNormal || prev == ModeTUI {
		if err := s.SetMode(prev); err != nil {
			logging.Error("mode restore after continue failed",
				zap.String("mode", prev.String()), zap.Error(err))
		}
	}
}
