package key

import "testing"

func TestEventIsRune(t *testing.T) {
	if !NewRuneEvent('a', ModNone).IsRune() {
		t.Error("rune event not detected as rune")
	}
	if NewSpecialEvent(KeyEnter, ModNone).IsRune() {
		t.Error("special event detected as rune")
	}
}

func TestEventIsModified(t *testing.T) {
	tests := []struct {
		name  string
		event Event
		want  bool
	}{
		{"plain rune", NewRuneEvent('a', ModNone), false},
		{"shifted rune", NewRuneEvent('A', ModShift), false},
		{"ctrl rune", NewRuneEvent('a', ModCtrl), true},
		{"plain special", NewSpecialEvent(KeyEnter, ModNone), false},
		{"shifted special", NewSpecialEvent(KeyTab, ModShift), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.event.IsModified(); got != tt.want {
				t.Errorf("IsModified() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestEventWithModifiers(t *testing.T) {
	e := NewRuneEvent('a', ModNone)
	modified := e.WithModifiers(ModCtrl | ModAlt)

	if modified.Modifiers != ModCtrl|ModAlt {
		t.Errorf("WithModifiers() modifiers = %v, want Ctrl+Alt", modified.Modifiers)
	}
	if e.Modifiers != ModNone {
		t.Error("WithModifiers() mutated the original event")
	}
}

func TestEventString(t *testing.T) {
	tests := []struct {
		event Event
		want  string
	}{
		{NewRuneEvent('a', ModNone), "a"},
		{NewRuneEvent('A', ModShift), "A"},
		{NewRuneEvent(' ', ModNone), "Space"},
		{NewRuneEvent('s', ModCtrl), "C-s"},
		{NewSpecialEvent(KeyEnter, ModNone), "Enter"},
		{NewSpecialEvent(KeyF1, ModCtrl|ModShift), "C-S-F1"},
		{NewSpecialEvent(KeyTab, ModAlt|ModMeta), "A-M-Tab"},
	}

	for _, tt := range tests {
		if got := tt.event.String(); got != tt.want {
			t.Errorf("Event.String() = %q, want %q", got, tt.want)
		}
	}
}

func TestEventEquals(t *testing.T) {
	a := NewRuneEvent('x', ModCtrl)
	b := NewRuneEvent('x', ModCtrl)
	c := NewRuneEvent('x', ModAlt)

	if !a.Equals(b) {
		t.Error("identical events not equal")
	}
	if a.Equals(c) {
		t.Error("events with different modifiers reported equal")
	}

	released := a
	released.Pressed = false
	if a.Equals(released) {
		t.Error("press and release reported equal")
	}
}
