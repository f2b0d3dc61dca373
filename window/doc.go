// Package window defines the raw window-input event union consumed by the
// reducer.
//
// Construction of these events is owned by the host windowing layer: a
// platform bridge (or the bundled terminal adapter) translates native input
// into window.Event values and feeds them to a reducer one at a time.
// Positions are physical pixels; the reducer converts them to logical
// coordinates using the window's scale factor.
//
// The set of kinds is open-ended. Kinds the reducer does not recognize are
// ignored, so hosts may extend the union without breaking consumers.
package window
