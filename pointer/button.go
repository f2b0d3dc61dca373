package pointer

import "strings"

// Button represents a semantic mouse button, following the conventional
// primary/secondary mapping rather than physical button numbers.
type Button uint8

const (
	// ButtonNone indicates no button, or a button outside the semantic set.
	ButtonNone Button = iota
	// ButtonPrimary is the primary button (left for right-handed mice).
	ButtonPrimary
	// ButtonSecondary is the secondary button (right for right-handed mice).
	ButtonSecondary
	// ButtonAuxiliary is the middle button (scroll wheel click).
	ButtonAuxiliary
	// ButtonX1 is the back navigation button (mouse button 4).
	ButtonX1
	// ButtonX2 is the forward navigation button (mouse button 5).
	ButtonX2
)

// String returns a string representation of the button.
func (b Button) String() string {
	switch b {
	case ButtonPrimary:
		return "primary"
	case ButtonSecondary:
		return "secondary"
	case ButtonAuxiliary:
		return "auxiliary"
	case ButtonX1:
		return "x1"
	case ButtonX2:
		return "x2"
	default:
		return "none"
	}
}

// ButtonSet is a bitset of currently-held mouse buttons.
// ButtonNone is never a member.
type ButtonSet uint8

// With returns a new set with the button added.
func (s ButtonSet) With(b Button) ButtonSet {
	if b == ButtonNone {
		return s
	}
	return s | 1<<(b-1)
}

// Without returns a new set with the button removed.
func (s ButtonSet) Without(b Button) ButtonSet {
	if b == ButtonNone {
		return s
	}
	return s &^ (1 << (b - 1))
}

// Contains returns true if the button is in the set.
func (s ButtonSet) Contains(b Button) bool {
	if b == ButtonNone {
		return false
	}
	return s&(1<<(b-1)) != 0
}

// IsEmpty returns true if no buttons are held.
func (s ButtonSet) IsEmpty() bool {
	return s == 0
}

// String returns a representation like "primary+secondary".
func (s ButtonSet) String() string {
	if s.IsEmpty() {
		return ""
	}

	var parts []string
	for b := ButtonPrimary; b <= ButtonX2; b++ {
		if s.Contains(b) {
			parts = append(parts, b.String())
		}
	}
	return strings.Join(parts, "+")
}
