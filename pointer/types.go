package pointer

import "math"

// Type identifies the kind of device behind a pointer.
type Type uint8

const (
	// TypeUnknown indicates an unidentified pointer device.
	TypeUnknown Type = iota
	// TypeMouse is the system mouse cursor.
	TypeMouse
	// TypeTouch is a touch contact.
	TypeTouch
	// TypePen is a stylus or pen.
	TypePen
)

// String returns a string representation of the pointer type.
func (t Type) String() string {
	switch t {
	case TypeMouse:
		return "mouse"
	case TypeTouch:
		return "touch"
	case TypePen:
		return "pen"
	default:
		return "unknown"
	}
}

// ID is a unique handle for a pointer, stable for the lifetime of a contact
// or device interaction. IDUnknown means the pointer has no identity.
type ID uint64

const (
	// IDUnknown indicates a pointer without an assigned identity.
	IDUnknown ID = 0

	// IDPrimary is the synthetic identity of the system mouse cursor,
	// distinct from individually-identified touch contacts.
	IDPrimary ID = 1
)

// IsKnown returns true if the ID identifies a specific pointer.
func (id ID) IsKnown() bool {
	return id != IDUnknown
}

// DeviceID is a stable hardware identifier for the physical device behind a
// pointer. Zero means absent; platform translation does not populate it.
type DeviceID uint64

// Info identifies a pointer source. Immutable once constructed for an event.
type Info struct {
	// ID is the pointer's unique handle, if any.
	ID ID

	// DeviceID is the persistent hardware identifier, if any.
	DeviceID DeviceID

	// Type is the kind of device behind the pointer.
	Type Type
}

// IsPrimary returns true if this is the primary (system mouse) pointer.
func (i Info) IsPrimary() bool {
	return i.ID == IDPrimary
}

// Position is a 2D point in logical pixels.
type Position struct {
	X float64
	Y float64
}

// Distance returns the Euclidean distance between two positions.
func (p Position) Distance(other Position) float64 {
	dx := p.X - other.X
	dy := p.Y - other.Y
	return math.Sqrt(dx*dx + dy*dy)
}

// Equal returns true if two positions are equal.
func (p Position) Equal(other Position) bool {
	return p.X == other.X && p.Y == other.Y
}
