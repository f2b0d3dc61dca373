package winput

import (
	"time"

	"github.com/dshills/winput/key"
	"github.com/dshills/winput/pointer"
	"github.com/dshills/winput/window"
)

// TranslationKind identifies which variant a Translation carries.
type TranslationKind uint8

const (
	// KindKeyboard indicates a keyboard event.
	KindKeyboard TranslationKind = iota
	// KindPointer indicates a pointer event.
	KindPointer
)

// String returns a string representation of the kind.
func (k TranslationKind) String() string {
	switch k {
	case KindPointer:
		return "pointer"
	default:
		return "keyboard"
	}
}

// Translation is the normalized result of reducing one raw event: either a
// keyboard event or a pointer event, selected by Kind.
type Translation struct {
	// Kind selects the populated variant.
	Kind TranslationKind

	// Keyboard is the keyboard event when Kind is KindKeyboard.
	Keyboard key.Event

	// Pointer is the pointer event when Kind is KindPointer.
	Pointer pointer.Event
}

// primaryMouse is the identity of the synthetic system-mouse pointer.
var primaryMouse = pointer.Info{
	ID:   pointer.IDPrimary,
	Type: pointer.TypeMouse,
}

// touchIDOffset shifts platform contact ids past the reserved
// IDUnknown and IDPrimary values.
const touchIDOffset = 2

// Reducer manages stateful translation of raw window events into the
// normalized model. Create one per window and call Reduce on every raw
// event for that window, in delivery order, from a single goroutine.
type Reducer struct {
	cfg Config

	// modifiers is the last reported modifier set.
	modifiers key.Modifier

	// primary is the running state of the system mouse pointer.
	primary pointer.State

	// taps assigns repeat counts to pointer sequences.
	taps tapCounter

	// epoch is the wall time of the first processed event; the zero value
	// means no event has been seen yet. Event timestamps are measured
	// from it so downstream duration math is independent of wall clocks.
	epoch time.Time

	// scale is the physical-to-logical conversion factor. Zero means the
	// host has not reported one yet; conversion then uses 1.0.
	scale float64

	// metrics is an optional throughput tracker.
	metrics *Metrics

	// now is the clock. Tests substitute a deterministic one.
	now func() time.Time
}

// New creates a reducer with the given configuration.
func New(cfg Config) *Reducer {
	return &Reducer{
		cfg:  cfg,
		taps: tapCounter{cfg: cfg},
		now:  time.Now,
	}
}

// SetScaleFactor primes the logical/physical conversion factor, typically
// from the window before the first event arrives. Until set (or until a
// scale-factor-changed event arrives), conversion uses 1.0.
func (r *Reducer) SetScaleFactor(scale float64) {
	r.scale = scale
}

// SetMetrics attaches a throughput tracker. Pass nil to detach.
func (r *Reducer) SetMetrics(m *Metrics) {
	r.metrics = m
}

// Reduce processes one raw window event. It returns the normalized event
// and true, or a zero Translation and false when the raw event is not
// relevant to the input model.
//
// Reduce never fails: unmapped buttons and unrecognized kinds degrade to
// ButtonNone and false rather than erroring.
func (r *Reducer) Reduce(ev window.Event) (Translation, bool) {
	tr, ok := r.reduce(ev)
	r.metrics.record(tr, ok)
	return tr, ok
}

func (r *Reducer) reduce(ev window.Event) (Translation, bool) {
	now := r.now()
	if r.epoch.IsZero() {
		r.epoch = now
	}
	t := now.Sub(r.epoch)
	r.primary.Time = t

	switch ev.Kind {
	case window.KindModifiersChanged:
		r.modifiers = ev.Modifiers
		r.primary.Modifiers = ev.Modifiers
		return Translation{}, false

	case window.KindKeyboardInput:
		return Translation{
			Kind:     KindKeyboard,
			Keyboard: ev.Key.WithModifiers(r.modifiers),
		}, true

	case window.KindCursorEntered:
		return r.pointerEvent(pointer.Event{
			Kind:    pointer.KindEnter,
			Pointer: primaryMouse,
		})

	case window.KindCursorLeft:
		return r.pointerEvent(r.taps.attachCount(pointer.Event{
			Kind:    pointer.KindLeave,
			Pointer: primaryMouse,
		}))

	case window.KindCursorMoved:
		r.primary.Position = r.logical(ev.Position)
		return r.pointerEvent(r.taps.attachCount(pointer.Event{
			Kind:    pointer.KindMove,
			Pointer: primaryMouse,
			State:   r.primary,
		}))

	case window.KindMouseButton:
		button := mapButton(ev.Button)
		if ev.Pressed {
			r.primary.Buttons = r.primary.Buttons.With(button)
			return r.pointerEvent(r.taps.attachCount(pointer.Event{
				Kind:    pointer.KindDown,
				Pointer: primaryMouse,
				Button:  button,
				State:   r.primary,
			}))
		}
		r.primary.Buttons = r.primary.Buttons.Without(button)
		return r.pointerEvent(r.taps.attachCount(pointer.Event{
			Kind:    pointer.KindUp,
			Pointer: primaryMouse,
			Button:  button,
			State:   r.primary,
		}))

	case window.KindMouseWheel:
		return r.pointerEvent(pointer.Event{
			Kind:    pointer.KindScroll,
			Pointer: primaryMouse,
			Delta:   r.scrollDelta(ev.Wheel),
			State:   r.primary,
		})

	case window.KindTouch:
		return r.reduceTouch(ev, t)

	case window.KindScaleFactorChanged:
		r.scale = ev.ScaleFactor
		return Translation{}, false

	default:
		return Translation{}, false
	}
}

// reduceTouch maps a touch contact update onto the pointer model.
func (r *Reducer) reduceTouch(ev window.Event, t time.Duration) (Translation, bool) {
	info := pointer.Info{
		ID:   pointer.ID(ev.Touch.ContactID + touchIDOffset),
		Type: pointer.TypeTouch,
	}

	state := pointer.State{
		Time:      t,
		Position:  r.logical(ev.Position),
		Modifiers: r.modifiers,
		Pressure:  touchPressure(ev.Touch),
	}

	var pe pointer.Event
	switch ev.Touch.Phase {
	case window.PhaseStarted:
		pe = pointer.Event{Kind: pointer.KindDown, Pointer: info, State: state}
	case window.PhaseMoved:
		pe = pointer.Event{Kind: pointer.KindMove, Pointer: info, State: state}
	case window.PhaseEnded:
		pe = pointer.Event{Kind: pointer.KindUp, Pointer: info, State: state}
	case window.PhaseCancelled:
		pe = pointer.Event{Kind: pointer.KindCancel, Pointer: info}
	default:
		return Translation{}, false
	}

	return r.pointerEvent(r.taps.attachCount(pe))
}

func (r *Reducer) pointerEvent(pe pointer.Event) (Translation, bool) {
	return Translation{Kind: KindPointer, Pointer: pe}, true
}

// logical converts a physical-pixel position using the active scale factor.
func (r *Reducer) logical(p window.Position) pointer.Position {
	s := r.scale
	if s == 0 {
		s = 1.0
	}
	return pointer.Position{X: p.X / s, Y: p.Y / s}
}

// scrollDelta normalizes a wheel delta: line deltas pass through unchanged,
// pixel deltas are converted to logical pixels.
func (r *Reducer) scrollDelta(w window.WheelDelta) pointer.ScrollDelta {
	if w.Unit == window.WheelPixel {
		s := r.scale
		if s == 0 {
			s = 1.0
		}
		return pointer.ScrollDelta{Unit: pointer.UnitPixel, X: w.X / s, Y: w.Y / s}
	}
	return pointer.ScrollDelta{Unit: pointer.UnitLine, X: w.X, Y: w.Y}
}

// touchPressure derives normalized pressure from a touch update. Lifted and
// cancelled contacts have no meaningful force. Calibrated readings are
// scaled by 0.5 to approximate the normalized range; contacts without force
// data report 0.5, the "present but unmeasured" convention.
func touchPressure(t window.TouchData) float32 {
	if t.Phase == window.PhaseEnded || t.Phase == window.PhaseCancelled {
		return 0.0
	}
	switch t.Force.Kind {
	case window.ForceCalibrated:
		return float32(t.Force.Value * 0.5)
	case window.ForceNormalized:
		return float32(t.Force.Value)
	default:
		return 0.5
	}
}

// mapButton maps a platform mouse button onto the semantic set. Buttons
// outside the set map to ButtonNone: the Down/Up event is still emitted,
// but the held-button set is not touched.
func mapButton(b window.MouseButton) pointer.Button {
	switch b {
	case window.MouseLeft:
		return pointer.ButtonPrimary
	case window.MouseRight:
		return pointer.ButtonSecondary
	case window.MouseMiddle:
		return pointer.ButtonAuxiliary
	case window.MouseBack:
		return pointer.ButtonX1
	case window.MouseForward:
		return pointer.ButtonX2
	default:
		return pointer.ButtonNone
	}
}
