package termctl

import "errors"

// Session errors.
var (
	// ErrNotATerminal indicates the tty device is not a terminal.
	ErrNotATerminal = errors.New("not a terminal")

	// ErrClosed indicates an operation on a disabled or closed session.
	ErrClosed = errors.New("session is closed")

	// ErrUnknownSequence indicates the decoder received a structurally
	// invalid or unmapped input sequence. The raw bytes are logged at
	// debug level; the caller cannot recover the sequence.
	ErrUnknownSequence = errors.New("unknown input sequence")

	// ErrUnsupportedSequence indicates a recognized but unsupported
	// sequence family (DCS).
	ErrUnsupportedSequence = errors.New("unsupported input sequence")

	// ErrInvalidClearMode indicates an out-of-range clear mode.
	ErrInvalidClearMode = errors.New("invalid clear mode")
)
