// Package termctl turns the controlling terminal into a structured
// text-UI surface: it manages display modes (raw input, alternate
// screen, mouse reporting), decodes the terminal's input byte stream
// into discrete key/mouse/resize events, and encodes drawing and
// styling requests into ANSI/VT100 escape sequences.
//
// The central guarantee is that the terminal is never left in a broken
// state: every terminating signal is routed through a restore path that
// puts the terminal back into its original configuration before the
// signal's default action proceeds, and a stop/continue cycle
// re-initializes the session transparently.
//
// # Usage
//
//	s, err := termctl.Open()
//	if err != nil {
//	    // no controlling terminal; nothing useful can happen
//	}
//	defer s.Disable()
//
//	if err := s.SetMode(termctl.ModeTUI); err != nil { ... }
//	for {
//	    ev, err := s.ReadEvent(-1)
//	    if err != nil {
//	        continue // undecodable sequence; already logged
//	    }
//	    switch {
//	    case ev.Key == 'q':
//	        return
//	    case ev.IsResize():
//	        w, h := s.Size()
//	        redraw(w, h)
//	    }
//	}
//
// There is exactly one session per process. Open returns the existing
// session if one is already active. The session is not safe for
// concurrent use from multiple goroutines without external
// synchronization; the only internal concurrency is the signal watcher.
//
// Event values and the key name registry live in the key subpackage.
package termctl
