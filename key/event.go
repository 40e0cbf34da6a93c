package key

import "fmt"

// Event is a single decoded input event. For mouse events X and Y hold
// the 0-indexed cell coordinates; for everything else they are -1.
type Event struct {
	Key Key
	X   int
	Y   int
}

// NewEvent creates a non-mouse event.
func NewEvent(k Key) Event {
	return Event{Key: k, X: -1, Y: -1}
}

// NewMouseEvent creates a mouse event at the given 0-indexed cell.
func NewMouseEvent(k Key, x, y int) Event {
	return Event{Key: k, X: x, Y: y}
}

// IsNone reports whether this is the no-event value (a timed-out read).
func (e Event) IsNone() bool {
	return e.Key == None
}

// IsMouse reports whether this event carries mouse coordinates.
func (e Event) IsMouse() bool {
	return e.Key.IsMouse()
}

// IsResize reports whether this is a terminal resize notification.
func (e Event) IsResize() bool {
	return e.Key.IsResize()
}

// Matches reports whether the event's key equals the key named by spec.
// Unknown specs never match.
func (e Event) Matches(spec string) bool {
	k := Named(spec)
	return k != None && e.Key == k
}

// String renders the event name, with coordinates for mouse events.
func (e Event) String() string {
	if e.IsMouse() {
		return fmt.Sprintf("%s (%d,%d)", Name(e.Key), e.X, e.Y)
	}
	return Name(e.Key)
}
