package key

import "testing"

func TestNewEvent(t *testing.T) {
	ev := NewEvent(ModCtrl | Up)
	if ev.Key != ModCtrl|Up {
		t.Errorf("Key = %#x, want Ctrl-Up", int32(ev.Key))
	}
	if ev.X != -1 || ev.Y != -1 {
		t.Errorf("non-mouse event coordinates = (%d,%d), want (-1,-1)", ev.X, ev.Y)
	}
	if ev.IsMouse() {
		t.Error("IsMouse() = true for a key event")
	}
}

func TestNewMouseEvent(t *testing.T) {
	ev := NewMouseEvent(MouseLeftPress, 10, 5)
	if !ev.IsMouse() {
		t.Fatal("IsMouse() = false for a mouse event")
	}
	if ev.X != 10 || ev.Y != 5 {
		t.Errorf("coordinates = (%d,%d), want (10,5)", ev.X, ev.Y)
	}
	if got := ev.String(); got != "Left press (10,5)" {
		t.Errorf("String() = %q", got)
	}
}

func TestEventMatches(t *testing.T) {
	tests := []struct {
		ev   Event
		spec string
		want bool
	}{
		{NewEvent('q'), "q", true},
		{NewEvent(CtrlC), "Ctrl-c", true},
		{NewEvent(Up), "Up", true},
		{NewEvent(Up), "Down", false},
		{NewEvent('q'), "???", false},
		{NewEvent(None), "<none>", false}, // unknown specs never match
	}

	for _, tt := range tests {
		if got := tt.ev.Matches(tt.spec); got != tt.want {
			t.Errorf("Event(%s).Matches(%q) = %v, want %v", tt.ev, tt.spec, got, tt.want)
		}
	}
}

func TestIsNone(t *testing.T) {
	if !NewEvent(None).IsNone() {
		t.Error("NewEvent(None).IsNone() = false")
	}
	if NewEvent('a').IsNone() {
		t.Error("NewEvent('a').IsNone() = true")
	}
}
