// Package key defines the event vocabulary produced by the input decoder.
//
// Every decoded input — a key press, a mouse action, a terminal resize —
// is a single Key value: a base code OR'd with zero or more modifier
// bits. Base codes below 0x80 are ASCII identities (control characters
// and printable characters decode as themselves); codes from 0x80 up are
// reserved ordinals for function keys, navigation keys, mouse actions,
// and the resize notification. Modifier bits live at bit positions 9-12,
// strictly above every base code, so callers can always split "which
// key" from "which modifiers" by masking:
//
//	k := ev.Key
//	switch k.Base() {
//	case key.Up:
//	    if k.Has(key.ModCtrl) { ... }
//	}
//
// # Names
//
// The package carries a bidirectional name registry. Name renders a Key
// as a human-readable string ("Ctrl-Up", "F5", "Left click"); Named
// resolves such a string back to its Key. Several names may map to the
// same code ("Left click" and "Left release" are the same event); the
// first table entry wins when rendering.
package key
