package window

import "github.com/dshills/winput/key"

// Kind identifies the kind of a raw window event.
type Kind uint8

const (
	// KindNone indicates no event.
	KindNone Kind = iota
	// KindModifiersChanged reports a change to the held modifier keys.
	KindModifiersChanged
	// KindKeyboardInput reports a key press or release.
	KindKeyboardInput
	// KindCursorEntered reports the mouse cursor entering the window.
	KindCursorEntered
	// KindCursorLeft reports the mouse cursor leaving the window.
	KindCursorLeft
	// KindCursorMoved reports mouse cursor movement in physical pixels.
	KindCursorMoved
	// KindMouseButton reports a mouse button press or release.
	KindMouseButton
	// KindMouseWheel reports scroll wheel movement.
	KindMouseWheel
	// KindTouch reports a touch contact update.
	KindTouch
	// KindScaleFactorChanged reports a change to the display scale factor.
	KindScaleFactorChanged
	// KindResized reports a window size change. The reducer ignores it.
	KindResized
	// KindFocus reports a window focus change. The reducer ignores it.
	KindFocus
)

// String returns a string representation of the kind.
func (k Kind) String() string {
	switch k {
	case KindModifiersChanged:
		return "modifiers-changed"
	case KindKeyboardInput:
		return "keyboard-input"
	case KindCursorEntered:
		return "cursor-entered"
	case KindCursorLeft:
		return "cursor-left"
	case KindCursorMoved:
		return "cursor-moved"
	case KindMouseButton:
		return "mouse-button"
	case KindMouseWheel:
		return "mouse-wheel"
	case KindTouch:
		return "touch"
	case KindScaleFactorChanged:
		return "scale-factor-changed"
	case KindResized:
		return "resized"
	case KindFocus:
		return "focus"
	default:
		return "none"
	}
}

// MouseButton identifies a physical mouse button as reported by the platform.
type MouseButton uint8

const (
	// MouseNone indicates no button.
	MouseNone MouseButton = iota
	// MouseLeft is the left button.
	MouseLeft
	// MouseRight is the right button.
	MouseRight
	// MouseMiddle is the middle button.
	MouseMiddle
	// MouseBack is the back navigation button.
	MouseBack
	// MouseForward is the forward navigation button.
	MouseForward
	// MouseOther is any button outside the named set; see Event.ButtonCode.
	MouseOther
)

// String returns a string representation of the button.
func (b MouseButton) String() string {
	switch b {
	case MouseLeft:
		return "left"
	case MouseRight:
		return "right"
	case MouseMiddle:
		return "middle"
	case MouseBack:
		return "back"
	case MouseForward:
		return "forward"
	case MouseOther:
		return "other"
	default:
		return "none"
	}
}

// Position is a 2D point in physical pixels.
type Position struct {
	X float64
	Y float64
}

// WheelUnit identifies how a wheel delta is measured.
type WheelUnit uint8

const (
	// WheelLine measures the delta in text lines.
	WheelLine WheelUnit = iota
	// WheelPixel measures the delta in physical pixels.
	WheelPixel
)

// WheelDelta is a raw 2D scroll amount.
type WheelDelta struct {
	// Unit indicates how X and Y are measured.
	Unit WheelUnit

	X float64
	Y float64
}

// TouchPhase identifies the lifecycle phase of a touch contact.
type TouchPhase uint8

const (
	// PhaseStarted indicates a new contact.
	PhaseStarted TouchPhase = iota
	// PhaseMoved indicates contact movement.
	PhaseMoved
	// PhaseEnded indicates the contact lifted normally.
	PhaseEnded
	// PhaseCancelled indicates the platform aborted the contact.
	PhaseCancelled
)

// String returns a string representation of the phase.
func (p TouchPhase) String() string {
	switch p {
	case PhaseStarted:
		return "started"
	case PhaseMoved:
		return "moved"
	case PhaseEnded:
		return "ended"
	case PhaseCancelled:
		return "cancelled"
	default:
		return "unknown"
	}
}

// ForceKind identifies how a touch force reading is expressed.
type ForceKind uint8

const (
	// ForceNone indicates no force data.
	ForceNone ForceKind = iota
	// ForceCalibrated is a device-calibrated force reading.
	ForceCalibrated
	// ForceNormalized is a reading already normalized to [0, 1].
	ForceNormalized
)

// Force is an optional touch force reading.
type Force struct {
	// Kind indicates how Value is expressed. ForceNone means no reading.
	Kind ForceKind

	Value float64
}

// TouchData carries the payload of a touch event.
type TouchData struct {
	// Phase is the contact's lifecycle phase.
	Phase TouchPhase

	// ContactID is the platform's numeric id for the contact, stable for
	// the contact's lifetime.
	ContactID uint64

	// Force is the contact force, if the platform reports one.
	Force Force
}

// Event is a raw window-input event. Kind determines which fields are
// meaningful:
//
//   - KindModifiersChanged: Modifiers
//   - KindKeyboardInput: Key
//   - KindCursorMoved: Position
//   - KindMouseButton: Button, ButtonCode (MouseOther only), Pressed
//   - KindMouseWheel: Wheel
//   - KindTouch: Touch, Position
//   - KindScaleFactorChanged: ScaleFactor
type Event struct {
	// Kind is the event kind.
	Kind Kind

	// Modifiers is the new modifier set for KindModifiersChanged.
	Modifiers key.Modifier

	// Key is the keyboard event for KindKeyboardInput, pre-mapped to a
	// semantic key by the host.
	Key key.Event

	// Position is the cursor or touch location in physical pixels.
	Position Position

	// Button is the mouse button for KindMouseButton.
	Button MouseButton

	// ButtonCode is the platform button number when Button is MouseOther.
	ButtonCode uint16

	// Pressed is true for a press and false for a release.
	Pressed bool

	// Wheel is the scroll delta for KindMouseWheel.
	Wheel WheelDelta

	// Touch is the contact payload for KindTouch.
	Touch TouchData

	// ScaleFactor is the new scale factor for KindScaleFactorChanged.
	ScaleFactor float64
}
