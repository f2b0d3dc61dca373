package trace

import (
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
	_ "modernc.org/sqlite" // CGO-free SQLite

	"github.com/dshills/winput"
	"github.com/dshills/winput/pointer"
)

// flushThreshold is how many buffered records trigger an automatic flush.
const flushThreshold = 64

// Recorder writes normalized input events to a SQLite database.
// It is not safe for concurrent use; record from the event loop's goroutine.
type Recorder struct {
	db      *sql.DB
	session string
	seq     int64
	buf     []row
}

type row struct {
	seq    int64
	kind   string
	timeNS int64
	data   []byte
}

// NewRecorder opens (creating if needed) the database at path and starts a
// new recording session.
func NewRecorder(path string) (*Recorder, error) {
	// WAL + busy timeout to avoid "database is locked"
	db, err := sql.Open("sqlite", path+"?_journal_mode=WAL&_busy_timeout=5000")
	if err != nil {
		return nil, fmt.Errorf("failed to open trace database: %w", err)
	}

	if err := createTables(db); err != nil {
		db.Close()
		return nil, err
	}

	return &Recorder{
		db:      db,
		session: uuid.NewString(),
	}, nil
}

func createTables(db *sql.DB) error {
	_, err := db.Exec(`
	CREATE TABLE IF NOT EXISTS events(
	  id        INTEGER PRIMARY KEY,
	  session   TEXT    NOT NULL,
	  seq       INTEGER NOT NULL,
	  kind      TEXT    NOT NULL,
	  time_ns   INTEGER NOT NULL,
	  data_json TEXT    NOT NULL CHECK (json_valid(data_json))
	);
	CREATE INDEX IF NOT EXISTS idx_events_session ON events(session, seq);
	CREATE INDEX IF NOT EXISTS idx_events_kind    ON events(kind);
	`)
	if err != nil {
		return fmt.Errorf("failed to create trace tables: %w", err)
	}
	return nil
}

// Session returns the recording session id.
func (r *Recorder) Session() string {
	return r.session
}

// Record buffers one normalized event, flushing when the buffer fills.
func (r *Recorder) Record(tr winput.Translation) error {
	data, kind, timeNS, err := encode(tr)
	if err != nil {
		return err
	}

	r.buf = append(r.buf, row{
		seq:    r.seq,
		kind:   kind,
		timeNS: timeNS,
		data:   data,
	})
	r.seq++

	if len(r.buf) >= flushThreshold {
		return r.Flush()
	}
	return nil
}

// Flush writes all buffered records in one transaction.
func (r *Recorder) Flush() error {
	if len(r.buf) == 0 {
		return nil
	}

	tx, err := r.db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	stmt, err := tx.Prepare(`INSERT INTO events(session, seq, kind, time_ns, data_json) VALUES(?,?,?,?,json(?))`)
	if err != nil {
		_ = tx.Rollback()
		return fmt.Errorf("failed to prepare statement: %w", err)
	}
	defer stmt.Close()

	for _, row := range r.buf {
		if _, err := stmt.Exec(r.session, row.seq, row.kind, row.timeNS, string(row.data)); err != nil {
			_ = tx.Rollback()
			return fmt.Errorf("failed to insert event: %w", err)
		}
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	r.buf = r.buf[:0]
	return nil
}

// Count returns the number of persisted rows for this session.
func (r *Recorder) Count() (int64, error) {
	var n int64
	err := r.db.QueryRow(`SELECT COUNT(*) FROM events WHERE session = ?`, r.session).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("failed to count events: %w", err)
	}
	return n, nil
}

// Close flushes buffered records and closes the database.
func (r *Recorder) Close() error {
	if err := r.Flush(); err != nil {
		r.db.Close()
		return err
	}
	return r.db.Close()
}

// keyboardRecord is the JSON payload of a keyboard event row.
type keyboardRecord struct {
	Key       string `json:"key"`
	Rune      string `json:"rune,omitempty"`
	Modifiers string `json:"modifiers,omitempty"`
	Pressed   bool   `json:"pressed"`
	Repeat    bool   `json:"repeat,omitempty"`
}

// pointerRecord is the JSON payload of a pointer event row.
type pointerRecord struct {
	Kind      string  `json:"kind"`
	PointerID uint64  `json:"pointer_id"`
	Type      string  `json:"type"`
	Button    string  `json:"button,omitempty"`
	X         float64 `json:"x"`
	Y         float64 `json:"y"`
	Buttons   string  `json:"buttons,omitempty"`
	Modifiers string  `json:"modifiers,omitempty"`
	Pressure  float32 `json:"pressure"`
	Count     uint8   `json:"count"`
	DeltaUnit string  `json:"delta_unit,omitempty"`
	DeltaX    float64 `json:"delta_x,omitempty"`
	DeltaY    float64 `json:"delta_y,omitempty"`
}

func encode(tr winput.Translation) (data []byte, kind string, timeNS int64, err error) {
	switch tr.Kind {
	case winput.KindKeyboard:
		ke := tr.Keyboard
		rec := keyboardRecord{
			Key:       ke.Key.String(),
			Modifiers: ke.Modifiers.String(),
			Pressed:   ke.Pressed,
			Repeat:    ke.Repeat,
		}
		if ke.IsRune() {
			rec.Rune = string(ke.Rune)
		}
		data, err = json.Marshal(rec)
		return data, "keyboard", 0, err

	case winput.KindPointer:
		pe := tr.Pointer
		rec := pointerRecord{
			Kind:      pe.Kind.String(),
			PointerID: uint64(pe.Pointer.ID),
			Type:      pe.Pointer.Type.String(),
			X:         pe.State.Position.X,
			Y:         pe.State.Position.Y,
			Buttons:   pe.State.Buttons.String(),
			Modifiers: pe.State.Modifiers.String(),
			Pressure:  pe.State.Pressure,
			Count:     pe.State.Count,
		}
		if pe.Button != pointer.ButtonNone {
			rec.Button = pe.Button.String()
		}
		if pe.Kind == pointer.KindScroll {
			rec.DeltaUnit = pe.Delta.Unit.String()
			rec.DeltaX = pe.Delta.X
			rec.DeltaY = pe.Delta.Y
		}
		data, err = json.Marshal(rec)
		return data, "pointer/" + pe.Kind.String(), pe.State.Time.Nanoseconds(), err

	default:
		return nil, "", 0, fmt.Errorf("unknown translation kind: %d", tr.Kind)
	}
}
