package winput

import (
	"time"

	"github.com/dshills/winput/pointer"
)

// tapState is one active click cluster: a provisional grouping of
// consecutive press/release pairs judged to be the same repeated
// interaction.
type tapState struct {
	// id is the last pointer associated with the cluster.
	id pointer.ID

	// downTime is when the cluster's latest tap went down.
	downTime time.Duration

	// upTime is when the cluster's latest tap was released.
	// Equal to downTime while the tap is still pressed.
	upTime time.Duration

	// count is the cluster's repeat count as of the latest down.
	count uint8

	// x, y is the logical position of the latest matching down.
	x, y float64
}

// pressed returns true while the cluster's latest tap has not been released.
func (t tapState) pressed() bool {
	return t.downTime == t.upTime
}

// tapCounter assigns repeat counts to pointer events by clustering
// consecutive presses that are close in space and time.
//
// Clusters are kept in insertion order and scanned linearly; the first
// match wins. Active clusters are bounded by the number of simultaneously
// tracked pointers, so the scan stays cheap.
type tapCounter struct {
	cfg  Config
	taps []tapState
}

// attachCount populates the repeat count of a Down, Up, or Move event and
// maintains the cluster list. Cancel and Leave remove the pointer's
// clusters; Enter and Scroll pass through unchanged.
//
// The returned event is a fresh value: stamping a count never mutates the
// input's state or its coalesced/predicted slices in place.
func (c *tapCounter) attachCount(e pointer.Event) pointer.Event {
	switch e.Kind {
	case pointer.KindDown:
		e = c.attachDown(e)
		c.clearExpired(e.State.Time)
		return e

	case pointer.KindUp:
		if i := c.find(e.Pointer.ID); i >= 0 {
			c.taps[i].upTime = e.State.Time
			e.State = e.State.WithCount(c.taps[i].count)
		}
		return e

	case pointer.KindMove:
		for _, t := range c.taps {
			if t.id == e.Pointer.ID && t.pressed() {
				e.State = e.State.WithCount(t.count)
				e.Coalesced = stampAll(e.Coalesced, t.count)
				e.Predicted = stampAll(e.Predicted, t.count)
				break
			}
		}
		return e

	case pointer.KindCancel, pointer.KindLeave:
		c.remove(e.Pointer.ID)
		return e

	default:
		return e
	}
}

// attachDown matches a Down event against the active clusters, extending
// the first cluster within both the spatial radius and the time window of
// its last release, or starting a new cluster at count 1.
func (c *tapCounter) attachDown(e pointer.Event) pointer.Event {
	pos := e.State.Position
	for i := range c.taps {
		t := &c.taps[i]
		at := pointer.Position{X: t.x, Y: t.y}
		if at.Distance(pos) < c.cfg.TapRadius && t.upTime+c.cfg.TapWindow > e.State.Time {
			t.count++
			t.id = e.Pointer.ID
			t.downTime = e.State.Time
			t.upTime = e.State.Time
			t.x = pos.X
			t.y = pos.Y
			e.State = e.State.WithCount(t.count)
			return e
		}
	}

	c.taps = append(c.taps, tapState{
		id:       e.Pointer.ID,
		downTime: e.State.Time,
		upTime:   e.State.Time,
		count:    1,
		x:        pos.X,
		y:        pos.Y,
	})
	e.State = e.State.WithCount(1)
	return e
}

// clearExpired drops fully released clusters whose grace window has passed
// as of the reference time. Pressed clusters are kept unless MaxPressAge
// bounds them.
func (c *tapCounter) clearExpired(ref time.Duration) {
	kept := c.taps[:0]
	for _, t := range c.taps {
		if t.pressed() {
			if c.cfg.MaxPressAge > 0 && t.downTime+c.cfg.MaxPressAge <= ref {
				continue
			}
			kept = append(kept, t)
			continue
		}
		if t.upTime+c.cfg.TapWindow > ref {
			kept = append(kept, t)
		}
	}
	c.taps = kept
}

// find returns the index of the cluster for the given pointer, or -1.
func (c *tapCounter) find(id pointer.ID) int {
	for i, t := range c.taps {
		if t.id == id {
			return i
		}
	}
	return -1
}

// remove deletes every cluster associated with the given pointer.
func (c *tapCounter) remove(id pointer.ID) {
	kept := c.taps[:0]
	for _, t := range c.taps {
		if t.id != id {
			kept = append(kept, t)
		}
	}
	c.taps = kept
}

// stampAll returns a copy of the states with the repeat count applied.
func stampAll(states []pointer.State, count uint8) []pointer.State {
	if len(states) == 0 {
		return states
	}
	out := make([]pointer.State, len(states))
	for i, s := range states {
		out[i] = s.WithCount(count)
	}
	return out
}
