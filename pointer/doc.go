// Package pointer defines the device-independent pointer event model.
//
// A pointer is any cursor-like input source: the system mouse, a touch
// contact, or a pen. Events carry a snapshot of the pointer's state at the
// moment they occurred:
//
//   - Info: identity of the pointer source (id, device, type)
//   - State: position, held buttons, modifiers, pressure, repeat count
//   - Event: a kind-tagged event (Down, Up, Move, Cancel, Enter, Leave,
//     Scroll) combining the two
//
// Positions are always logical coordinates, already divided by the display
// scale factor. The repeat count on Down/Up/Move states is assigned by the
// reducer's tap counter; it is 0 until assigned.
package pointer
