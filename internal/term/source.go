package term

import (
	"unicode"

	"github.com/gdamore/tcell/v2"

	"github.com/dshills/winput/key"
	"github.com/dshills/winput/window"
)

// Source polls a tcell screen and converts its events into raw window
// events. One tcell event may expand into several window events (a
// modifier change followed by the input that carried it), so Source keeps
// a small queue between polls.
type Source struct {
	screen tcell.Screen

	// translator state carried between tcell events.
	tr translator

	// pending holds events queued from the last tcell event.
	pending []window.Event
}

// NewSource creates a source backed by a new tcell screen.
func NewSource() (*Source, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, err
	}
	return &Source{screen: screen, tr: newTranslator()}, nil
}

// Init initializes the screen and enables mouse reporting.
func (s *Source) Init() error {
	if err := s.screen.Init(); err != nil {
		return err
	}
	s.screen.EnableMouse()
	return nil
}

// Fini restores the terminal.
func (s *Source) Fini() {
	s.screen.Fini()
}

// Screen exposes the underlying screen for hosts that also render.
func (s *Source) Screen() tcell.Screen {
	return s.screen
}

// Poll blocks until input is available and returns the next raw window
// event. It returns false when the screen has been finalized.
func (s *Source) Poll() (window.Event, bool) {
	for {
		if len(s.pending) > 0 {
			ev := s.pending[0]
			s.pending = s.pending[1:]
			return ev, true
		}

		tev := s.screen.PollEvent()
		if tev == nil {
			return window.Event{}, false
		}
		s.pending = s.tr.translate(tev, s.pending)
	}
}

// translator converts individual tcell events, tracking the state needed
// to synthesize transitions the terminal does not report directly.
type translator struct {
	// buttons is the last reported tcell button state.
	buttons tcell.ButtonMask

	// mods is the last modifier set forwarded downstream.
	mods key.Modifier

	// haveCursor is false until the first mouse event fixes the cursor.
	haveCursor bool

	// cursorX, cursorY is the last reported cell position.
	cursorX, cursorY int
}

func newTranslator() translator {
	return translator{}
}

// translate appends the window events for one tcell event to out.
func (t *translator) translate(tev tcell.Event, out []window.Event) []window.Event {
	switch e := tev.(type) {
	case *tcell.EventKey:
		out = t.syncModifiers(convertMod(e.Modifiers()), out)
		return append(out, window.Event{
			Kind: window.KindKeyboardInput,
			Key:  convertKey(e),
		})

	case *tcell.EventMouse:
		out = t.syncModifiers(convertMod(e.Modifiers()), out)
		out = t.syncCursor(e, out)
		out = t.syncButtons(e.Buttons(), out)
		return t.syncWheel(e.Buttons(), out)

	case *tcell.EventResize:
		return append(out, window.Event{Kind: window.KindResized})

	case *tcell.EventFocus:
		return append(out, window.Event{Kind: window.KindFocus})

	default:
		return out
	}
}

// syncModifiers emits a modifiers-changed event when the reported set
// differs from the last forwarded one. Terminals report modifiers per
// event rather than as transitions.
func (t *translator) syncModifiers(mods key.Modifier, out []window.Event) []window.Event {
	if mods == t.mods {
		return out
	}
	t.mods = mods
	return append(out, window.Event{
		Kind:      window.KindModifiersChanged,
		Modifiers: mods,
	})
}

// syncCursor emits a cursor-moved event when the cell position changed.
// Cell coordinates stand in for physical pixels; the terminal has no
// scale factor.
func (t *translator) syncCursor(e *tcell.EventMouse, out []window.Event) []window.Event {
	x, y := e.Position()
	if t.haveCursor && x == t.cursorX && y == t.cursorY {
		return out
	}
	t.haveCursor = true
	t.cursorX, t.cursorY = x, y
	return append(out, window.Event{
		Kind:     window.KindCursorMoved,
		Position: window.Position{X: float64(x), Y: float64(y)},
	})
}

// buttonMasks lists the tcell button bits in a stable order, mapped to the
// platform buttons they usually represent.
var buttonMasks = []struct {
	mask   tcell.ButtonMask
	button window.MouseButton
	code   uint16
}{
	{tcell.Button1, window.MouseLeft, 0},
	{tcell.Button2, window.MouseRight, 0},
	{tcell.Button3, window.MouseMiddle, 0},
	{tcell.Button4, window.MouseOther, 4},
	{tcell.Button5, window.MouseOther, 5},
	{tcell.Button6, window.MouseOther, 6},
	{tcell.Button7, window.MouseOther, 7},
	{tcell.Button8, window.MouseOther, 8},
}

// syncButtons diffs the reported button mask against the previous one and
// emits a press or release per changed button.
func (t *translator) syncButtons(buttons tcell.ButtonMask, out []window.Event) []window.Event {
	const all = tcell.Button1 | tcell.Button2 | tcell.Button3 | tcell.Button4 |
		tcell.Button5 | tcell.Button6 | tcell.Button7 | tcell.Button8

	buttons &= all
	changed := buttons ^ t.buttons
	if changed == 0 {
		return out
	}
	for _, bm := range buttonMasks {
		if changed&bm.mask == 0 {
			continue
		}
		out = append(out, window.Event{
			Kind:       window.KindMouseButton,
			Button:     bm.button,
			ButtonCode: bm.code,
			Pressed:    buttons&bm.mask != 0,
		})
	}
	t.buttons = buttons
	return out
}

// syncWheel emits a line-based wheel event per reported wheel tick.
// Positive Y scrolls content up, matching platform line-delta conventions.
func (t *translator) syncWheel(buttons tcell.ButtonMask, out []window.Event) []window.Event {
	var dx, dy float64
	if buttons&tcell.WheelUp != 0 {
		dy++
	}
	if buttons&tcell.WheelDown != 0 {
		dy--
	}
	if buttons&tcell.WheelLeft != 0 {
		dx--
	}
	if buttons&tcell.WheelRight != 0 {
		dx++
	}
	if dx == 0 && dy == 0 {
		return out
	}
	return append(out, window.Event{
		Kind:  window.KindMouseWheel,
		Wheel: window.WheelDelta{Unit: window.WheelLine, X: dx, Y: dy},
	})
}

// convertKey converts a tcell key event to the semantic key model.
// Terminals encode Ctrl+letter as dedicated key codes; those unfold back
// into the letter rune with ModCtrl set.
func convertKey(e *tcell.EventKey) key.Event {
	mods := convertMod(e.Modifiers())

	// Enter, Tab, and Backspace share byte values with Ctrl+M, Ctrl+I,
	// and Ctrl+H; resolve them as the named keys before unfolding the
	// rest of the control range.
	k := e.Key()
	switch k {
	case tcell.KeyEnter:
		return key.NewSpecialEvent(key.KeyEnter, mods)
	case tcell.KeyTab:
		return key.NewSpecialEvent(key.KeyTab, mods)
	case tcell.KeyBackspace, tcell.KeyBackspace2:
		return key.NewSpecialEvent(key.KeyBackspace, mods)
	}

	if k >= tcell.KeyCtrlA && k <= tcell.KeyCtrlZ {
		r := rune('a' + (k - tcell.KeyCtrlA))
		return key.Event{Key: key.KeyRune, Rune: r, Modifiers: mods.With(key.ModCtrl), Pressed: true}
	}

	switch k {
	case tcell.KeyRune:
		r := e.Rune()
		if unicode.IsUpper(r) {
			mods = mods.With(key.ModShift)
		}
		return key.Event{Key: key.KeyRune, Rune: r, Modifiers: mods, Pressed: true}
	case tcell.KeyEscape:
		return key.NewSpecialEvent(key.KeyEscape, mods)
	case tcell.KeyDelete:
		return key.NewSpecialEvent(key.KeyDelete, mods)
	case tcell.KeyInsert:
		return key.NewSpecialEvent(key.KeyInsert, mods)
	case tcell.KeyHome:
		return key.NewSpecialEvent(key.KeyHome, mods)
	case tcell.KeyEnd:
		return key.NewSpecialEvent(key.KeyEnd, mods)
	case tcell.KeyPgUp:
		return key.NewSpecialEvent(key.KeyPageUp, mods)
	case tcell.KeyPgDn:
		return key.NewSpecialEvent(key.KeyPageDown, mods)
	case tcell.KeyUp:
		return key.NewSpecialEvent(key.KeyUp, mods)
	case tcell.KeyDown:
		return key.NewSpecialEvent(key.KeyDown, mods)
	case tcell.KeyLeft:
		return key.NewSpecialEvent(key.KeyLeft, mods)
	case tcell.KeyRight:
		return key.NewSpecialEvent(key.KeyRight, mods)
	case tcell.KeyF1:
		return key.NewSpecialEvent(key.KeyF1, mods)
	case tcell.KeyF2:
		return key.NewSpecialEvent(key.KeyF2, mods)
	case tcell.KeyF3:
		return key.NewSpecialEvent(key.KeyF3, mods)
	case tcell.KeyF4:
		return key.NewSpecialEvent(key.KeyF4, mods)
	case tcell.KeyF5:
		return key.NewSpecialEvent(key.KeyF5, mods)
	case tcell.KeyF6:
		return key.NewSpecialEvent(key.KeyF6, mods)
	case tcell.KeyF7:
		return key.NewSpecialEvent(key.KeyF7, mods)
	case tcell.KeyF8:
		return key.NewSpecialEvent(key.KeyF8, mods)
	case tcell.KeyF9:
		return key.NewSpecialEvent(key.KeyF9, mods)
	case tcell.KeyF10:
		return key.NewSpecialEvent(key.KeyF10, mods)
	case tcell.KeyF11:
		return key.NewSpecialEvent(key.KeyF11, mods)
	case tcell.KeyF12:
		return key.NewSpecialEvent(key.KeyF12, mods)
	default:
		return key.NewSpecialEvent(key.KeyNone, mods)
	}
}

// convertMod converts a tcell modifier mask to the key modifier bitset.
func convertMod(m tcell.ModMask) key.Modifier {
	var result key.Modifier
	if m&tcell.ModShift != 0 {
		result = result.With(key.ModShift)
	}
	if m&tcell.ModCtrl != 0 {
		result = result.With(key.ModCtrl)
	}
	if m&tcell.ModAlt != 0 {
		result = result.With(key.ModAlt)
	}
	if m&tcell.ModMeta != 0 {
		result = result.With(key.ModMeta)
	}
	return result
}
