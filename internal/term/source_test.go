package term

import (
	"testing"

	"github.com/gdamore/tcell/v2"

	"github.com/dshills/winput/key"
	"github.com/dshills/winput/window"
)

func translateOne(t *testing.T, tr *translator, tev tcell.Event) []window.Event {
	t.Helper()
	return tr.translate(tev, nil)
}

func TestTranslateRuneKey(t *testing.T) {
	tr := newTranslator()

	evs := translateOne(t, &tr, tcell.NewEventKey(tcell.KeyRune, 'x', tcell.ModNone))
	if len(evs) != 1 {
		t.Fatalf("got %d events, want 1", len(evs))
	}
	ev := evs[0]
	if ev.Kind != window.KindKeyboardInput {
		t.Fatalf("kind = %v, want keyboard input", ev.Kind)
	}
	if ev.Key.Key != key.KeyRune || ev.Key.Rune != 'x' || ev.Key.Modifiers != 0 {
		t.Errorf("key = %v, want plain rune 'x'", ev.Key)
	}
}

func TestTranslateUppercaseRuneAddsShift(t *testing.T) {
	tr := newTranslator()

	// Shift is inferred from case on the key event itself; the terminal
	// reports no modifiers, so no modifiers-changed event precedes it.
	evs := translateOne(t, &tr, tcell.NewEventKey(tcell.KeyRune, 'X', tcell.ModNone))
	if len(evs) != 1 {
		t.Fatalf("got %d events, want 1", len(evs))
	}
	if got := evs[0].Key; got.Rune != 'X' || !got.Modifiers.HasShift() {
		t.Errorf("key = %v, want 'X' with shift", got)
	}
}

func TestTranslateCtrlLetterUnfolds(t *testing.T) {
	tr := newTranslator()

	evs := translateOne(t, &tr, tcell.NewEventKey(tcell.KeyCtrlS, 0, tcell.ModCtrl))
	last := evs[len(evs)-1]
	if last.Kind != window.KindKeyboardInput {
		t.Fatalf("kind = %v, want keyboard input", last.Kind)
	}
	if last.Key.Key != key.KeyRune || last.Key.Rune != 's' || !last.Key.Modifiers.HasCtrl() {
		t.Errorf("key = %v, want 's' with ctrl", last.Key)
	}
}

func TestTranslateControlByteCollisions(t *testing.T) {
	// Enter, Tab, and Backspace share byte values with Ctrl+M, Ctrl+I, and
	// Ctrl+H; they must come out as the named keys.
	tests := []struct {
		name string
		k    tcell.Key
		want key.Key
	}{
		{"enter", tcell.KeyEnter, key.KeyEnter},
		{"tab", tcell.KeyTab, key.KeyTab},
		{"backspace", tcell.KeyBackspace, key.KeyBackspace},
		{"backspace2", tcell.KeyBackspace2, key.KeyBackspace},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := convertKey(tcell.NewEventKey(tt.k, 0, tcell.ModNone))
			if got.Key != tt.want {
				t.Errorf("convertKey(%v) = %v, want %v", tt.k, got.Key, tt.want)
			}
			if got.Modifiers.HasCtrl() {
				t.Errorf("convertKey(%v) reported ctrl", tt.k)
			}
		})
	}
}

func TestTranslateSpecialKeys(t *testing.T) {
	tests := []struct {
		k    tcell.Key
		want key.Key
	}{
		{tcell.KeyEscape, key.KeyEscape},
		{tcell.KeyUp, key.KeyUp},
		{tcell.KeyPgDn, key.KeyPageDown},
		{tcell.KeyF5, key.KeyF5},
	}
	for _, tt := range tests {
		got := convertKey(tcell.NewEventKey(tt.k, 0, tcell.ModNone))
		if got.Key != tt.want {
			t.Errorf("convertKey(%v) = %v, want %v", tt.k, got.Key, tt.want)
		}
	}
}

func TestTranslateModifierChangeEmittedOnce(t *testing.T) {
	tr := newTranslator()

	evs := translateOne(t, &tr, tcell.NewEventKey(tcell.KeyRune, 'a', tcell.ModAlt))
	if len(evs) != 2 || evs[0].Kind != window.KindModifiersChanged {
		t.Fatalf("first alt key: got %+v, want modifiers-changed then key", evs)
	}
	if !evs[0].Modifiers.HasAlt() {
		t.Errorf("modifiers = %v, want alt", evs[0].Modifiers)
	}

	// Same modifiers again: no modifiers-changed event this time.
	evs = translateOne(t, &tr, tcell.NewEventKey(tcell.KeyRune, 'b', tcell.ModAlt))
	if len(evs) != 1 || evs[0].Kind != window.KindKeyboardInput {
		t.Fatalf("second alt key: got %+v, want a single key event", evs)
	}
}

func TestTranslateMousePressAndRelease(t *testing.T) {
	tr := newTranslator()

	evs := translateOne(t, &tr, tcell.NewEventMouse(10, 5, tcell.Button1, tcell.ModNone))

	// First mouse event establishes the cursor and presses the button.
	var moved, pressed bool
	for _, ev := range evs {
		switch ev.Kind {
		case window.KindCursorMoved:
			moved = true
			if ev.Position != (window.Position{X: 10, Y: 5}) {
				t.Errorf("position = %v, want (10, 5)", ev.Position)
			}
		case window.KindMouseButton:
			pressed = true
			if ev.Button != window.MouseLeft || !ev.Pressed {
				t.Errorf("button event = %+v, want left press", ev)
			}
		}
	}
	if !moved || !pressed {
		t.Fatalf("events = %+v, want cursor move and button press", evs)
	}

	// Release at the same position: only the button event.
	evs = translateOne(t, &tr, tcell.NewEventMouse(10, 5, tcell.ButtonNone, tcell.ModNone))
	if len(evs) != 1 {
		t.Fatalf("release: got %d events, want 1", len(evs))
	}
	if ev := evs[0]; ev.Kind != window.KindMouseButton || ev.Button != window.MouseLeft || ev.Pressed {
		t.Errorf("release event = %+v, want left release", ev)
	}
}

func TestTranslateMouseButtonMapping(t *testing.T) {
	tests := []struct {
		name string
		mask tcell.ButtonMask
		want window.MouseButton
		code uint16
	}{
		{"left", tcell.Button1, window.MouseLeft, 0},
		{"right", tcell.Button2, window.MouseRight, 0},
		{"middle", tcell.Button3, window.MouseMiddle, 0},
		{"extra", tcell.Button5, window.MouseOther, 5},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tr := newTranslator()
			evs := translateOne(t, &tr, tcell.NewEventMouse(0, 0, tt.mask, tcell.ModNone))
			var found bool
			for _, ev := range evs {
				if ev.Kind == window.KindMouseButton {
					found = true
					if ev.Button != tt.want || ev.ButtonCode != tt.code {
						t.Errorf("button = %v code %d, want %v code %d",
							ev.Button, ev.ButtonCode, tt.want, tt.code)
					}
				}
			}
			if !found {
				t.Errorf("no button event in %+v", evs)
			}
		})
	}
}

func TestTranslateCursorMoveDeduplicated(t *testing.T) {
	tr := newTranslator()

	translateOne(t, &tr, tcell.NewEventMouse(3, 3, tcell.ButtonNone, tcell.ModNone))

	// Same cell again: nothing to report.
	evs := translateOne(t, &tr, tcell.NewEventMouse(3, 3, tcell.ButtonNone, tcell.ModNone))
	if len(evs) != 0 {
		t.Errorf("stationary mouse event produced %+v", evs)
	}

	evs = translateOne(t, &tr, tcell.NewEventMouse(4, 3, tcell.ButtonNone, tcell.ModNone))
	if len(evs) != 1 || evs[0].Kind != window.KindCursorMoved {
		t.Errorf("moved mouse event produced %+v", evs)
	}
}

func TestTranslateWheelTicks(t *testing.T) {
	tests := []struct {
		name string
		mask tcell.ButtonMask
		x, y float64
	}{
		{"up", tcell.WheelUp, 0, 1},
		{"down", tcell.WheelDown, 0, -1},
		{"left", tcell.WheelLeft, -1, 0},
		{"right", tcell.WheelRight, 1, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tr := newTranslator()
			tr.haveCursor = true // suppress the initial cursor event

			evs := translateOne(t, &tr, tcell.NewEventMouse(0, 0, tt.mask, tcell.ModNone))
			if len(evs) != 1 {
				t.Fatalf("got %d events, want 1", len(evs))
			}
			ev := evs[0]
			if ev.Kind != window.KindMouseWheel {
				t.Fatalf("kind = %v, want mouse wheel", ev.Kind)
			}
			want := window.WheelDelta{Unit: window.WheelLine, X: tt.x, Y: tt.y}
			if ev.Wheel != want {
				t.Errorf("wheel = %v, want %v", ev.Wheel, want)
			}
		})
	}
}

func TestTranslateResizeAndFocus(t *testing.T) {
	tr := newTranslator()

	evs := translateOne(t, &tr, tcell.NewEventResize(80, 24))
	if len(evs) != 1 || evs[0].Kind != window.KindResized {
		t.Errorf("resize produced %+v", evs)
	}

	evs = translateOne(t, &tr, tcell.NewEventFocus(true))
	if len(evs) != 1 || evs[0].Kind != window.KindFocus {
		t.Errorf("focus produced %+v", evs)
	}
}
