package winput

import "sync/atomic"

// Metrics tracks reducer throughput. A single Metrics value may be shared
// by several reducers; counters are safe to read from other goroutines.
type Metrics struct {
	rawTotal        atomic.Uint64
	keyboardEmitted atomic.Uint64
	pointerEmitted  atomic.Uint64
	ignored         atomic.Uint64
}

// NewMetrics creates a new metrics tracker.
func NewMetrics() *Metrics {
	return &Metrics{}
}

// record tallies one processed raw event and its outcome.
func (m *Metrics) record(tr Translation, ok bool) {
	if m == nil {
		return
	}
	m.rawTotal.Add(1)
	switch {
	case !ok:
		m.ignored.Add(1)
	case tr.Kind == KindKeyboard:
		m.keyboardEmitted.Add(1)
	case tr.Kind == KindPointer:
		m.pointerEmitted.Add(1)
	}
}

// Snapshot is a point-in-time copy of the counters.
type Snapshot struct {
	// RawTotal is the number of raw events processed.
	RawTotal uint64

	// KeyboardEmitted is the number of keyboard events produced.
	KeyboardEmitted uint64

	// PointerEmitted is the number of pointer events produced.
	PointerEmitted uint64

	// Ignored is the number of raw events that yielded nothing.
	Ignored uint64
}

// Snapshot returns a copy of the current counter values.
func (m *Metrics) Snapshot() Snapshot {
	return Snapshot{
		RawTotal:        m.rawTotal.Load(),
		KeyboardEmitted: m.keyboardEmitted.Load(),
		PointerEmitted:  m.pointerEmitted.Load(),
		Ignored:         m.ignored.Load(),
	}
}

// Reset zeroes all counters.
func (m *Metrics) Reset() {
	m.rawTotal.Store(0)
	m.keyboardEmitted.Store(0)
	m.pointerEmitted.Store(0)
	m.ignored.Store(0)
}
