package termctl

// Mode is a terminal display mode.
type Mode int

const (
	// ModeUninitialized is the state before Open and after Disable.
	ModeUninitialized Mode = iota

	// ModeDisabled: the session is open but the terminal keeps its
	// normal cooked configuration.
	ModeDisabled

	// ModeNormal: raw input on the main screen buffer. Useful for
	// prompt-style programs that want per-key input without taking
	// over the whole screen.
	ModeNormal

	// ModeTUI: raw input on the alternate screen buffer with the
	// cursor hidden, line wrap off, and mouse reporting on.
	ModeTUI
)

// String returns the mode name.
func (m Mode) String() string {
	switch m {
	case ModeUninitialized:
		return "uninitialized"
	case ModeDisabled:
		return "disabled"
	case ModeNormal:
		return "normal"
	case ModeTUI:
		return "tui"
	default:
		return "unknown"
	}
}
