package key

import (
	"fmt"
	"strings"
)

// keyName pairs a code with a human-readable name. The table is ordered
// and intentionally many-to-one: several names can resolve to the same
// code, and the first entry for a code is its canonical rendering.
type keyName struct {
	code Key
	name string
}

var keyNames = []keyName{
	{Space, "Space"},
	{Backspace2, "Backspace"},
	{Insert, "Insert"},
	{Delete, "Delete"},
	{Tab, "Tab"},
	{Enter, "Enter"},
	{Enter, "Return"},
	{Home, "Home"},
	{End, "End"},
	{PageUp, "PgUp"},
	{PageUp, "Page Up"},
	{PageDown, "PgDn"},
	{PageDown, "Page Down"},
	{Up, "Up"},
	{Down, "Down"},
	{Left, "Left"},
	{Right, "Right"},
	{MouseLeftPress, "Left press"},
	{MouseRightPress, "Right press"},
	{MouseMiddlePress, "Middle press"},
	{MouseLeftDrag, "Left drag"},
	{MouseRightDrag, "Right drag"},
	{MouseMiddleDrag, "Middle drag"},
	{MouseLeftRelease, "Left release"},
	{MouseRightRelease, "Right release"},
	{MouseMiddleRelease, "Middle release"},
	{MouseLeftRelease, "Left up"},
	{MouseRightRelease, "Right up"},
	{MouseMiddleRelease, "Middle up"},
	{MouseLeftRelease, "Left click"},
	{MouseRightRelease, "Right click"},
	{MouseMiddleRelease, "Middle click"},
	{MouseLeftDouble, "Double left click"},
	{MouseRightDouble, "Double right click"},
	{MouseMiddleDouble, "Double middle click"},
	{MouseWheelUp, "Mouse wheel up"},
	{MouseWheelDown, "Mouse wheel down"},
	{Escape, "Esc"},
	{Escape, "Escape"},
	{CtrlA, "Ctrl-a"},
	{CtrlB, "Ctrl-b"},
	{CtrlC, "Ctrl-c"},
	{CtrlD, "Ctrl-d"},
	{CtrlE, "Ctrl-e"},
	{CtrlF, "Ctrl-f"},
	{CtrlG, "Ctrl-g"},
	{CtrlH, "Ctrl-h"},
	{CtrlI, "Ctrl-i"},
	{CtrlJ, "Ctrl-j"},
	{CtrlK, "Ctrl-k"},
	{CtrlL, "Ctrl-l"},
	{CtrlM, "Ctrl-m"},
	{CtrlN, "Ctrl-n"},
	{CtrlO, "Ctrl-o"},
	{CtrlP, "Ctrl-p"},
	{CtrlQ, "Ctrl-q"},
	{CtrlR, "Ctrl-r"},
	{CtrlS, "Ctrl-s"},
	{CtrlT, "Ctrl-t"},
	{CtrlU, "Ctrl-u"},
	{CtrlV, "Ctrl-v"},
	{CtrlW, "Ctrl-w"},
	{CtrlX, "Ctrl-x"},
	{CtrlY, "Ctrl-y"},
	{CtrlZ, "Ctrl-z"},
	{CtrlBackslash, "Ctrl-\\"},
	{CtrlRightBracket, "Ctrl-]"},
	{CtrlCaret, "Ctrl-^"},
	{CtrlCaret, "Ctrl-~"},
	{CtrlUnderscore, "Ctrl-_"},
	{CtrlUnderscore, "Ctrl-/"},
	{CtrlAt, "Ctrl-@"},
	{CtrlAt, "Ctrl-`"},
	{CtrlAt, "Ctrl-2"},
	{Escape, "Ctrl-3"},
	{CtrlBackslash, "Ctrl-4"},
	{CtrlRightBracket, "Ctrl-5"},
	{CtrlCaret, "Ctrl-6"},
	{CtrlUnderscore, "Ctrl-7"},
	{Backspace2, "Ctrl-8"},
	{F1, "F1"},
	{F2, "F2"},
	{F3, "F3"},
	{F4, "F4"},
	{F5, "F5"},
	{F6, "F6"},
	{F7, "F7"},
	{F8, "F8"},
	{F9, "F9"},
	{F10, "F10"},
	{F11, "F11"},
	{F12, "F12"},
	{F0, "F0"},
	{Resize, "Resize"},
}

// Modifier name prefixes, in the fixed rendering order.
var modNames = []struct {
	prefix string
	mod    Key
}{
	{"Super-", ModMeta},
	{"Ctrl-", ModCtrl},
	{"Alt-", ModAlt},
	{"Shift-", ModShift},
}

// Name renders a Key as a human-readable string. Modifier prefixes come
// first (Super-, Ctrl-, Alt-, Shift-, in that order), then the canonical
// registry name of the base code. Printable ASCII not in the registry
// renders as the literal character; anything else as a hex escape.
func Name(k Key) string {
	if k == None {
		return "<none>"
	}

	var b strings.Builder
	for _, m := range modNames {
		if k.Has(m.mod) {
			b.WriteString(m.prefix)
		}
	}

	base := k.Base()
	for _, kn := range keyNames {
		if kn.code == base {
			b.WriteString(kn.name)
			return b.String()
		}
	}
	if base > Space && base <= '~' {
		b.WriteByte(byte(base))
		return b.String()
	}
	fmt.Fprintf(&b, "\\x%02X", uint32(base))
	return b.String()
}

// Named resolves a name produced by Name (or typed by a user) back to
// its Key. Recognized modifier prefixes are stripped and accumulated
// before the remaining text is matched against the registry. A single
// unmatched character resolves to its own code. Unknown names yield
// None.
func Named(name string) Key {
	var mods Key
	for {
		for _, kn := range keyNames {
			if kn.name == name {
				return mods | kn.code
			}
		}
		stripped := false
		for _, m := range modNames {
			if rest, ok := strings.CutPrefix(name, m.prefix); ok {
				mods |= m.mod
				name = rest
				stripped = true
				break
			}
		}
		if !stripped {
			break
		}
	}
	if len(name) == 1 {
		return mods | Key(name[0])
	}
	return None
}
