// Package trace persists normalized input events to SQLite for offline
// inspection of input streams.
//
// Each Recorder owns one database and one session id; records are buffered
// in memory and written in batched transactions. The store is append-only:
// rows carry the session, a per-session sequence number, the event kind,
// the reducer-relative timestamp, and the event payload as JSON.
package trace
