package key

// Key is a single decoded input event value: a base code OR'd with zero
// or more modifier bits. The zero value is Ctrl-@ (NUL), which is a real
// key; None (-1) is the no-event/undecodable sentinel.
type Key int32

// None indicates no key: a timed-out read or a failed name lookup.
const None Key = -1

// ASCII control-character identities (0x00-0x1F).
const (
	CtrlAt Key = iota
	CtrlA
	CtrlB
	CtrlC
	CtrlD
	CtrlE
	CtrlF
	CtrlG
	CtrlH
	CtrlI
	CtrlJ
	CtrlK
	CtrlL
	CtrlM
	CtrlN
	CtrlO
	CtrlP
	CtrlQ
	CtrlR
	CtrlS
	CtrlT
	CtrlU
	CtrlV
	CtrlW
	CtrlX
	CtrlY
	CtrlZ
	CtrlLeftBracket
	CtrlBackslash
	CtrlRightBracket
	CtrlCaret
	CtrlUnderscore
	Space
	// Printable ASCII 0x21-0x7E passes through as itself.
)

// Backspace2 is the DEL character (0x7F), which most terminals send for
// the Backspace key.
const Backspace2 Key = 0x7F

// Multi-byte escape-sequence keys. These ordinals sit above ASCII and
// below the modifier bit range.
const (
	F0 Key = 0x80 + iota
	F1
	F2
	F3
	F4
	F5
	F6
	F7
	F8
	F9
	F10
	F11
	F12
	Insert
	Delete
	Home
	End
	PageUp
	PageDown
	Up
	Down
	Left
	Right
	MouseLeftPress
	MouseRightPress
	MouseMiddlePress
	MouseLeftDrag
	MouseRightDrag
	MouseMiddleDrag
	MouseLeftRelease
	MouseRightRelease
	MouseMiddleRelease
	MouseLeftDouble
	MouseRightDouble
	MouseMiddleDouble
	MouseWheelUp
	MouseWheelDown
	Resize
)

// Common aliases for control characters that have key caps of their own.
const (
	Backspace = CtrlH
	Tab       = CtrlI
	Enter     = CtrlM
	Escape    = CtrlLeftBracket
	CtrlSpace = CtrlAt
)

// Modifier bits. They occupy bits 9-12, a range disjoint from every
// base code, and follow the xterm CSI parameter order (Shift, Alt,
// Ctrl, Meta) so the wire encoding (param-1) maps onto them directly.
const (
	modShift = 9

	ModShift Key = 1 << (modShift + iota)
	ModAlt
	ModCtrl
	ModMeta
)

// ModMask selects the modifier bit range of a Key.
const ModMask = ModShift | ModAlt | ModCtrl | ModMeta

// FromCSIParam converts an xterm CSI modifier parameter (the 1-based
// value after ';' in sequences like "ESC [ 1 ; 5 A") into modifier
// bits. Parameter 2 is Shift, 3 is Alt, 5 is Ctrl, 9 is Meta, and
// combinations add. Values below 2 carry no modifiers.
func FromCSIParam(param int) Key {
	if param < 2 {
		return 0
	}
	return (Key(param-1) << modShift) & ModMask
}

// Base returns the base code with all modifier bits stripped.
func (k Key) Base() Key {
	if k < 0 {
		return k
	}
	return k &^ ModMask
}

// Modifiers returns only the modifier bits of k.
func (k Key) Modifiers() Key {
	if k < 0 {
		return 0
	}
	return k & ModMask
}

// Has reports whether every modifier in mod is set on k.
func (k Key) Has(mod Key) bool {
	return k >= 0 && k&mod == mod
}

// With returns k with the given modifier bits added.
func (k Key) With(mod Key) Key {
	if k < 0 {
		return k
	}
	return k | (mod & ModMask)
}

// Without returns k with the given modifier bits removed.
func (k Key) Without(mod Key) Key {
	if k < 0 {
		return k
	}
	return k &^ (mod & ModMask)
}

// IsMouse reports whether the base code is any mouse action.
func (k Key) IsMouse() bool {
	b := k.Base()
	return b >= MouseLeftPress && b <= MouseWheelDown
}

// IsMouseRelease reports whether the base code is a button release.
func (k Key) IsMouseRelease() bool {
	b := k.Base()
	return b >= MouseLeftRelease && b <= MouseMiddleRelease
}

// IsResize reports whether this is the resize notification.
func (k Key) IsResize() bool {
	return k.Base() == Resize
}

// IsPrintable reports whether the base code is a printable ASCII
// character other than space.
func (k Key) IsPrintable() bool {
	b := k.Base()
	return b > Space && b < Backspace2
}

// IsFunctionKey reports whether the base code is F0-F12.
func (k Key) IsFunctionKey() bool {
	b := k.Base()
	return b >= F0 && b <= F12
}

// IsArrowKey reports whether the base code is an arrow key.
func (k Key) IsArrowKey() bool {
	b := k.Base()
	return b >= Up && b <= Right
}

// IsNavigationKey reports whether the base code moves the cursor:
// arrows, Home, End, PageUp, or PageDown.
func (k Key) IsNavigationKey() bool {
	b := k.Base()
	return k.IsArrowKey() || b == Home || b == End || b == PageUp || b == PageDown
}

// String returns the registry name of k. See Name.
func (k Key) String() string {
	return Name(k)
}
