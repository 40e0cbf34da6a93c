//go:build unix

package termctl

import "golang.org/x/sys/unix"

// makeRaw derives the raw-mode attribute snapshot from the cooked one,
// following the standard cfmakeraw construction: no canonical
// processing, no echo, no signal-generating control characters, no
// output post-processing, 8-bit characters. The cooked snapshot is not
// modified; it is the restore target and must stay bit-for-bit intact.
func makeRaw(cooked unix.Termios) unix.Termios {
	raw := cooked
	raw.Iflag &^= unix.IGNBRK | unix.BRKINT | unix.PARMRK | unix.ISTRIP |
		unix.INLCR | unix.IGNCR | unix.ICRNL | unix.IXON
	raw.Oflag &^= unix.OPOST
	raw.Lflag &^= unix.ECHO | unix.ECHONL | unix.ICANON | unix.ISIG | unix.IEXTEN
	raw.Cflag &^= unix.CSIZE | unix.PARENB
	raw.Cflag |= unix.CS8
	raw.Cc[unix.VMIN] = 1
	raw.Cc[unix.VTIME] = 0
	return raw
}

// getTermios queries the terminal attributes for a descriptor.
func getTermios(fd int) (unix.Termios, error) {
	t, err := unix.IoctlGetTermios(fd, ioctlReadTermios)
	if err != nil {
		return unix.Termios{}, err
	}
	return *t, nil
}

// setTermios applies terminal attributes to a descriptor immediately.
func setTermios(fd int, t *unix.Termios) error {
	return unix.IoctlSetTermios(fd, ioctlWriteTermios, t)
}

// getWinsize reads the terminal dimensions in cells.
func getWinsize(fd int) (width, height int, err error) {
	ws, err := unix.IoctlGetWinsize(fd, unix.TIOCGWINSZ)
	if err != nil {
		return 0, 0, err
	}
	return int(ws.Col), int(ws.Row), nil
}
