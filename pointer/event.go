package pointer

import (
	"time"

	"github.com/dshills/winput/key"
)

// State is a snapshot of a pointer at a point in time. Value type; each
// emitted event carries its own copy.
type State struct {
	// Time is a monotonic timestamp relative to the first event observed
	// by the reducer instance that produced it. It is not wall-clock time.
	Time time.Duration

	// Position is the pointer location in logical pixels.
	Position Position

	// Modifiers are the keyboard modifiers held at the time of the event.
	Modifiers key.Modifier

	// Buttons are the currently-held mouse buttons. Touch and pen contacts
	// do not populate it.
	Buttons ButtonSet

	// Pressure is the normalized contact force in [0, 1]. Mouse pointers
	// report 0; touch contacts without force data report 0.5.
	Pressure float32

	// Count is the repeat count assigned by the tap counter
	// (2 = double-click, 3 = triple-click). 0 until assigned.
	Count uint8
}

// WithCount returns a copy of the state with the repeat count set.
func (s State) WithCount(count uint8) State {
	s.Count = count
	return s
}

// Kind identifies the kind of a pointer event.
type Kind uint8

const (
	// KindNone indicates no event.
	KindNone Kind = iota
	// KindDown indicates a button press or touch contact start.
	KindDown
	// KindUp indicates a button release or touch contact end.
	KindUp
	// KindMove indicates pointer movement.
	KindMove
	// KindCancel indicates the platform aborted the pointer's interaction.
	KindCancel
	// KindEnter indicates the pointer entered the window.
	KindEnter
	// KindLeave indicates the pointer left the window.
	KindLeave
	// KindScroll indicates scroll wheel movement.
	KindScroll
)

// String returns a string representation of the kind.
func (k Kind) String() string {
	switch k {
	case KindDown:
		return "down"
	case KindUp:
		return "up"
	case KindMove:
		return "move"
	case KindCancel:
		return "cancel"
	case KindEnter:
		return "enter"
	case KindLeave:
		return "leave"
	case KindScroll:
		return "scroll"
	default:
		return "none"
	}
}

// ScrollUnit identifies how a scroll delta is measured.
type ScrollUnit uint8

const (
	// UnitLine measures a scroll delta in text lines.
	UnitLine ScrollUnit = iota
	// UnitPixel measures a scroll delta in logical pixels.
	UnitPixel
)

// String returns a string representation of the unit.
func (u ScrollUnit) String() string {
	switch u {
	case UnitPixel:
		return "pixel"
	default:
		return "line"
	}
}

// ScrollDelta is a 2D scroll amount, either line- or pixel-based.
type ScrollDelta struct {
	// Unit indicates how X and Y are measured.
	Unit ScrollUnit

	X float64
	Y float64
}

// Event is a normalized pointer event. Kind determines which fields are
// meaningful:
//
//   - KindDown, KindUp: Pointer, Button, State
//   - KindMove: Pointer, State (current), Coalesced, Predicted
//   - KindCancel, KindEnter, KindLeave: Pointer only
//   - KindScroll: Pointer, Delta, State
type Event struct {
	// Kind is the event kind.
	Kind Kind

	// Pointer identifies the source pointer.
	Pointer Info

	// Button is the button involved in a Down/Up event. ButtonNone for
	// touch contacts and for buttons outside the semantic set.
	Button Button

	// State is the pointer snapshot at the time of the event.
	State State

	// Coalesced holds high-frequency samples folded into a Move event.
	// This core leaves it empty; collaborators may populate it.
	Coalesced []State

	// Predicted holds extrapolated samples attached to a Move event.
	// This core leaves it empty; collaborators may populate it.
	Predicted []State

	// Delta is the scroll amount of a Scroll event.
	Delta ScrollDelta
}

// IsPrimary returns true if the event comes from the primary pointer.
func (e Event) IsPrimary() bool {
	return e.Pointer.IsPrimary()
}
