// Package term adapts tcell terminal input into raw window events.
//
// Terminals are a degenerate windowing host: coordinates are character
// cells, wheel movement arrives as discrete line ticks, and key releases
// are not reported. The adapter does not paper over any of that. It
// translates what the terminal reports into window.Event values
// (synthesizing button press/release transitions from tcell's button
// masks) and leaves normalization to the reducer.
package term
