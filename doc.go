// Package winput normalizes heterogeneous platform window-input events into
// a stable, device-independent event model.
//
// The entry point is the Reducer: a per-window stateful translator that
// consumes one raw window.Event at a time and produces zero or one normalized
// event. It maintains running pointer state (position, held buttons,
// modifiers, pressure) across calls and runs a spatio-temporal tap counter
// that assigns repeat counts to pointer press/release/move sequences,
// mimicking OS-level double/triple-click detection.
//
//	reducer := winput.New(winput.DefaultConfig())
//	reducer.SetScaleFactor(window.ScaleFactor())
//
//	for raw := range events {
//	    tr, ok := reducer.Reduce(raw)
//	    if !ok {
//	        continue
//	    }
//	    switch tr.Kind {
//	    case winput.KindKeyboard:
//	        handleKey(tr.Keyboard)
//	    case winput.KindPointer:
//	        handlePointer(tr.Pointer)
//	    }
//	}
//
// A Reducer owns all of its state; create one per window. It is not safe
// for concurrent use: the host must deliver events serially and in order,
// which matches how platform event loops dispatch per-window input.
package winput
