// Package config loads the demo binary's TOML configuration.
package config

import (
	"fmt"
	"os"
	"time"

	"github.com/pelletier/go-toml/v2"

	"github.com/dshills/winput"
	"github.com/dshills/winput/key"
)

// File is the on-disk configuration shape.
type File struct {
	Tap   TapSection   `toml:"tap"`
	Trace TraceSection `toml:"trace"`
	Demo  DemoSection  `toml:"demo"`
}

// TapSection tunes the reducer's tap counter.
type TapSection struct {
	// Radius is the tap cluster radius in logical pixels.
	Radius float64 `toml:"radius"`

	// WindowMS is the tap cluster time window in milliseconds.
	WindowMS int64 `toml:"window_ms"`

	// MaxPressAgeMS bounds stuck pressed clusters, in milliseconds.
	// Zero disables the bound.
	MaxPressAgeMS int64 `toml:"max_press_age_ms"`
}

// TraceSection configures event recording.
type TraceSection struct {
	// Path is the SQLite database to record into. Empty disables recording.
	Path string `toml:"path"`
}

// DemoSection configures the demo binary itself.
type DemoSection struct {
	// QuitKey names the key that exits the demo, e.g. "escape" or "f10".
	QuitKey string `toml:"quit_key"`
}

// Default returns the configuration used when no file is given.
func Default() File {
	cfg := winput.DefaultConfig()
	return File{
		Tap: TapSection{
			Radius:   cfg.TapRadius,
			WindowMS: cfg.TapWindow.Milliseconds(),
		},
		Demo: DemoSection{
			QuitKey: "escape",
		},
	}
}

// Load reads a TOML configuration file. Fields absent from the file keep
// their default values.
func Load(path string) (File, error) {
	f := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		return f, fmt.Errorf("failed to read config: %w", err)
	}
	if err := toml.Unmarshal(data, &f); err != nil {
		return f, fmt.Errorf("failed to parse config: %w", err)
	}
	return f, nil
}

// ReducerConfig converts the file into a reducer configuration.
func (f File) ReducerConfig() winput.Config {
	return winput.Config{
		TapRadius:   f.Tap.Radius,
		TapWindow:   time.Duration(f.Tap.WindowMS) * time.Millisecond,
		MaxPressAge: time.Duration(f.Tap.MaxPressAgeMS) * time.Millisecond,
	}
}

// QuitKey resolves the configured quit key name.
func (f File) QuitKey() (key.Key, error) {
	k := key.KeyFromName(f.Demo.QuitKey)
	if k == key.KeyNone {
		return key.KeyNone, fmt.Errorf("unknown quit key %q", f.Demo.QuitKey)
	}
	return k, nil
}
