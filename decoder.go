package termctl

import (
	"time"

	"golang.org/x/sys/unix"

	"github.com/dshills/termctl/internal/logging"
	"github.com/dshills/termctl/key"
)

// byteSource yields input one byte at a time. next returns -1 when no
// byte arrives within the configured read timeout.
type byteSource interface {
	next() int
}

// fdSource reads from the terminal descriptor. The read blocks or
// times out according to the VMIN/VTIME values applied by
// setReadTimeout.
type fdSource struct {
	fd int
}

func (f fdSource) next() int {
	var buf [1]byte
	n, err := unix.Read(f.fd, buf[:])
	if err != nil || n != 1 {
		return -1
	}
	return int(buf[0])
}

// clickTracker promotes a button release to a double click when it
// repeats the previous release within the threshold. Only the bare
// button code is tracked; modifier chording does not break a double
// click. The record stores the promoted code, so a third rapid release
// reads as a single click again rather than a triple.
type clickTracker struct {
	threshold time.Duration
	lastBase  key.Key
	lastTime  time.Time
}

func (c *clickTracker) observe(k key.Key, at time.Time) key.Key {
	base := k.Base()
	if d, ok := doubleFor(base); ok && base == c.lastBase && at.Sub(c.lastTime) <= c.threshold {
		base = d
	}
	c.lastBase = base
	c.lastTime = at
	return base | k.Modifiers()
}

func doubleFor(base key.Key) (key.Key, bool) {
	switch base {
	case key.MouseLeftRelease:
		return key.MouseLeftDouble, true
	case key.MouseRightRelease:
		return key.MouseRightDouble, true
	case key.MouseMiddleRelease:
		return key.MouseMiddleDouble, true
	}
	return key.None, false
}

// ReadEvent reads and decodes the next input event. A negative timeout
// blocks until at least one byte arrives; otherwise the read waits up
// to the timeout (rounded up to tenths of a second) and returns an
// event with key.None when nothing arrived. A pending resize is
// reported, once, in place of a timed-out read; a blocking read is not
// interrupted by the resize signal and reports it on its next return,
// so callers that care about prompt resizes should poll with a finite
// timeout.
//
// Unrecognized escape sequences are consumed and reported as
// ErrUnknownSequence so a stray sequence never bleeds into later
// reads as spurious key presses.
func (s *Session) ReadEvent(timeout time.Duration) (key.Event, error) {
	if s.in == nil {
		return key.NewEvent(key.None), ErrClosed
	}
	if err := s.setReadTimeout(timeout); err != nil {
		return key.NewEvent(key.None), err
	}
	return s.decodeEvent(fdSource{fd: int(s.in.Fd())})
}

func (s *Session) decodeEvent(src byteSource) (key.Event, error) {
	c := src.next()
	if c < 0 {
		if s.resized.CompareAndSwap(true, false) {
			return key.NewEvent(key.Resize), nil
		}
		return key.NewEvent(key.None), nil
	}
	if c != 0x1b {
		return key.NewEvent(key.Key(c)), nil
	}
	return s.decodeEscape(src)
}

func (s *Session) decodeEscape(src byteSource) (key.Event, error) {
	raw := []byte{0x1b}
	c := src.next()
	if c < 0 {
		// A lone ESC byte is the Escape key.
		return key.NewEvent(key.Escape), nil
	}
	raw = append(raw, byte(c))
	switch c {
	case 0x1b:
		// A doubled ESC is still the Escape key, not an Alt chord.
		return key.NewEvent(key.Escape), nil
	case '[':
		return s.decodeCSI(src, raw)
	case 'O':
		return s.decodeSS3(src, raw)
	case 'P':
		return s.discardDCS(src, raw)
	default:
		// ESC prefix followed by an ordinary byte is an Alt chord.
		return key.NewEvent(key.ModAlt | key.Key(c)), nil
	}
}

func (s *Session) decodeCSI(src byteSource, raw []byte) (key.Event, error) {
	c := src.next()
	if c < 0 {
		// Truncated CSI introducer decodes as Alt-[.
		return key.NewEvent(key.ModAlt | '['), nil
	}
	if c == '<' {
		raw = append(raw, byte(c))
		return s.decodeSGRMouse(src, raw)
	}

	numcode := 0
	var mods key.Key
	for c >= '0' && c <= '9' {
		numcode = numcode*10 + (c - '0')
		raw = append(raw, byte(c))
		c = src.next()
		if c < 0 {
			return s.unknown(raw)
		}
	}
	if c == ';' {
		raw = append(raw, byte(c))
		param := 0
		c = src.next()
		for c >= '0' && c <= '9' {
			param = param*10 + (c - '0')
			raw = append(raw, byte(c))
			c = src.next()
		}
		if c < 0 {
			return s.unknown(raw)
		}
		mods = key.FromCSIParam(param)
	}
	raw = append(raw, byte(c))

	switch c {
	case 'A':
		return key.NewEvent(mods | key.Up), nil
	case 'B':
		return key.NewEvent(mods | key.Down), nil
	case 'C':
		return key.NewEvent(mods | key.Right), nil
	case 'D':
		return key.NewEvent(mods | key.Left), nil
	case 'F':
		return key.NewEvent(mods | key.End), nil
	case 'H':
		return key.NewEvent(mods | key.Home), nil
	case 'J':
		if numcode == 2 {
			return key.NewEvent(key.ModShift | key.Home), nil
		}
	case 'K':
		return key.NewEvent(key.ModShift | key.End), nil
	case 'M':
		return key.NewEvent(key.ModCtrl | key.Delete), nil
	case 'P':
		if numcode == 1 {
			return key.NewEvent(mods | key.F1), nil
		}
		return key.NewEvent(mods | key.Delete), nil
	case 'Q':
		if numcode == 1 {
			return key.NewEvent(mods | key.F2), nil
		}
	case 'R':
		if numcode == 1 {
			return key.NewEvent(mods | key.F3), nil
		}
	case 'S':
		if numcode == 1 {
			return key.NewEvent(mods | key.F4), nil
		}
	case 'Z':
		return key.NewEvent(key.ModShift | mods | key.Tab), nil
	case '~':
		if k, ok := tildeKeys[numcode]; ok {
			return key.NewEvent(mods | k), nil
		}
	}
	return s.unknown(raw)
}

// tildeKeys maps the numeric code of a CSI-tilde sequence to its key.
// Codes 7 and 8 are the rxvt variants of Home and End.
var tildeKeys = map[int]key.Key{
	1:  key.Home,
	2:  key.Insert,
	3:  key.Delete,
	4:  key.End,
	5:  key.PageUp,
	6:  key.PageDown,
	7:  key.Home,
	8:  key.End,
	10: key.F0,
	11: key.F1,
	12: key.F2,
	13: key.F3,
	14: key.F4,
	15: key.F5,
	17: key.F6,
	18: key.F7,
	19: key.F8,
	20: key.F9,
	21: key.F10,
	23: key.F11,
	24: key.F12,
}

func (s *Session) decodeSS3(src byteSource, raw []byte) (key.Event, error) {
	c := src.next()
	if c < 0 {
		return key.NewEvent(key.ModAlt | 'O'), nil
	}
	raw = append(raw, byte(c))
	switch c {
	case 'A':
		return key.NewEvent(key.Up), nil
	case 'B':
		return key.NewEvent(key.Down), nil
	case 'C':
		return key.NewEvent(key.Right), nil
	case 'D':
		return key.NewEvent(key.Left), nil
	case 'F':
		return key.NewEvent(key.End), nil
	case 'H':
		return key.NewEvent(key.Home), nil
	case 'P', 'Q', 'R', 'S':
		return key.NewEvent(key.F1 + key.Key(c-'P')), nil
	}
	return s.unknown(raw)
}

// decodeSGRMouse parses "<buttons;x;y" terminated by M (press or
// motion) or m (release). Coordinates arrive one-based and are
// reported zero-based.
func (s *Session) decodeSGRMouse(src byteSource, raw []byte) (key.Event, error) {
	var params [3]int
	idx := 0
	c := src.next()
	for {
		if c < 0 {
			return s.unknown(raw)
		}
		if c >= '0' && c <= '9' {
			params[idx] = params[idx]*10 + (c - '0')
			raw = append(raw, byte(c))
			c = src.next()
			continue
		}
		if c == ';' && idx < 2 {
			idx++
			raw = append(raw, byte(c))
			c = src.next()
			continue
		}
		break
	}
	raw = append(raw, byte(c))
	if (c != 'M' && c != 'm') || idx != 2 {
		return s.unknown(raw)
	}

	buttons := params[0]
	x, y := params[1]-1, params[2]-1
	release := c == 'm'

	var mods key.Key
	if buttons&4 != 0 {
		mods |= key.ModShift
	}
	if buttons&8 != 0 {
		mods |= key.ModMeta
	}
	if buttons&16 != 0 {
		mods |= key.ModCtrl
	}

	var k key.Key
	switch buttons &^ (4 | 8 | 16) {
	case 0:
		k = key.MouseLeftPress
		if release {
			k = key.MouseLeftRelease
		}
	case 1:
		k = key.MouseMiddlePress
		if release {
			k = key.MouseMiddleRelease
		}
	case 2:
		k = key.MouseRightPress
		if release {
			k = key.MouseRightRelease
		}
	case 32:
		k = key.MouseLeftDrag
	case 33:
		k = key.MouseMiddleDrag
	case 34:
		k = key.MouseRightDrag
	case 64:
		k = key.MouseWheelUp
	case 65:
		k = key.MouseWheelDown
	default:
		return s.unknown(raw)
	}

	k |= mods
	if release {
		k = s.clicks.observe(k, s.now())
	}
	return key.NewMouseEvent(k, x, y), nil
}

// discardDCS consumes a device control string through its terminator
// so it cannot bleed into later reads.
func (s *Session) discardDCS(src byteSource, raw []byte) (key.Event, error) {
	for {
		c := src.next()
		if c < 0 {
			break
		}
		raw = append(raw, byte(c))
		if c == '\\' && len(raw) >= 2 && raw[len(raw)-2] == 0x1b {
			break
		}
	}
	logging.LogRawBytes("device control string ignored", raw)
	return key.NewEvent(key.None), ErrUnsupportedSequence
}

func (s *Session) unknown(raw []byte) (key.Event, error) {
	logging.LogRawBytes("unrecognized input sequence", raw)
	return key.NewEvent(key.None), ErrUnknownSequence
}
