// Package key defines the device-independent keyboard event model.
//
// The windowing host is responsible for mapping platform key codes to
// semantic keys; this package only carries the result:
//
//   - Key: identifies a keyboard key (special keys, function keys, or runes)
//   - Modifier: a bitset of modifier keys (Shift, Ctrl, Alt, Meta)
//   - Event: a single key press or release with its modifier set
//
// Events pass through the reducer unchanged apart from having the current
// modifier set attached.
package key
