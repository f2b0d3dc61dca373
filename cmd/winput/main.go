// Package main is an interactive demo for the winput event reducer.
//
// It polls terminal input through the tcell adapter, reduces it to the
// normalized model, and displays the resulting event stream. With tracing
// enabled, the normalized events are also recorded to SQLite.
package main

import (
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/dustin/go-humanize"
	"github.com/gdamore/tcell/v2"

	"github.com/dshills/winput"
	"github.com/dshills/winput/internal/config"
	"github.com/dshills/winput/internal/term"
	"github.com/dshills/winput/internal/trace"
	"github.com/dshills/winput/key"
	"github.com/dshills/winput/pointer"
	"github.com/dshills/winput/window"
)

// Version information (set via ldflags during build).
var version = "dev"

// historyLines is how many normalized events stay on screen.
const historyLines = 16

func main() {
	os.Exit(run())
}

func run() int {
	opts := parseFlags()

	cfg := config.Default()
	if opts.configPath != "" {
		loaded, err := config.Load(opts.configPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return 1
		}
		cfg = loaded
	}
	tracePath := cfg.Trace.Path
	if opts.tracePath != "" {
		tracePath = opts.tracePath
	}
	quitKey, err := cfg.QuitKey()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}

	var recorder *trace.Recorder
	if tracePath != "" {
		var err error
		recorder, err = trace.NewRecorder(tracePath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return 1
		}
		defer recorder.Close()
	}

	source, err := term.NewSource()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: failed to create terminal: %v\n", err)
		return 1
	}
	if err := source.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: failed to initialize terminal: %v\n", err)
		return 1
	}
	defer source.Fini()

	// Restore the terminal on SIGINT/SIGTERM before exiting.
	signals := make(chan os.Signal, 1)
	signal.Notify(signals, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-signals
		source.Fini()
		os.Exit(1)
	}()

	reducer := winput.New(cfg.ReducerConfig())
	metrics := winput.NewMetrics()
	reducer.SetMetrics(metrics)

	if err := loop(source, reducer, recorder, quitKey); err != nil {
		source.Fini()
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}

	source.Fini()
	summarize(metrics, recorder)
	return 0
}

// loop drives the poll/reduce/display cycle until the quit key is pressed.
func loop(source *term.Source, reducer *winput.Reducer, recorder *trace.Recorder, quitKey key.Key) error {
	screen := source.Screen()
	var history []string

	drawHeader(screen, quitKey)
	screen.Show()

	for {
		raw, ok := source.Poll()
		if !ok {
			return nil
		}
		if raw.Kind == window.KindResized {
			screen.Sync()
		}

		tr, ok := reducer.Reduce(raw)
		if !ok {
			continue
		}
		if recorder != nil {
			if err := recorder.Record(tr); err != nil {
				return err
			}
		}

		if tr.Kind == winput.KindKeyboard && tr.Keyboard.Key == quitKey {
			return nil
		}

		history = append(history, describe(tr))
		if len(history) > historyLines {
			history = history[len(history)-historyLines:]
		}

		screen.Clear()
		drawHeader(screen, quitKey)
		for i, line := range history {
			drawText(screen, 0, i+2, line)
		}
		screen.Show()
	}
}

// describe formats a normalized event for display.
func describe(tr winput.Translation) string {
	if tr.Kind == winput.KindKeyboard {
		return fmt.Sprintf("keyboard  %s", tr.Keyboard)
	}

	pe := tr.Pointer
	switch pe.Kind {
	case pointer.KindDown, pointer.KindUp:
		return fmt.Sprintf("pointer   %-6s %-9s (%.0f,%.0f) count=%d buttons=%s",
			pe.Kind, pe.Button, pe.State.Position.X, pe.State.Position.Y,
			pe.State.Count, pe.State.Buttons)
	case pointer.KindMove:
		return fmt.Sprintf("pointer   move   (%.0f,%.0f) count=%d buttons=%s",
			pe.State.Position.X, pe.State.Position.Y, pe.State.Count, pe.State.Buttons)
	case pointer.KindScroll:
		return fmt.Sprintf("pointer   scroll %s (%.1f,%.1f)",
			pe.Delta.Unit, pe.Delta.X, pe.Delta.Y)
	default:
		return fmt.Sprintf("pointer   %s", pe.Kind)
	}
}

func drawHeader(screen tcell.Screen, quitKey key.Key) {
	drawText(screen, 0, 0, fmt.Sprintf("winput demo - move, click, and scroll; press %s to quit", quitKey))
}

func drawText(screen tcell.Screen, x, y int, s string) {
	for i, r := range s {
		screen.SetContent(x+i, y, r, nil, tcell.StyleDefault)
	}
}

// summarize reports processing counts after the terminal is restored.
func summarize(metrics *winput.Metrics, recorder *trace.Recorder) {
	snap := metrics.Snapshot()
	fmt.Fprintf(os.Stderr, "raw events: %s  pointer: %s  keyboard: %s  ignored: %s\n",
		humanize.Comma(int64(snap.RawTotal)),
		humanize.Comma(int64(snap.PointerEmitted)),
		humanize.Comma(int64(snap.KeyboardEmitted)),
		humanize.Comma(int64(snap.Ignored)))

	if recorder != nil {
		if err := recorder.Flush(); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return
		}
		n, err := recorder.Count()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return
		}
		fmt.Fprintf(os.Stderr, "recorded %s events (session %s)\n",
			humanize.Comma(n), recorder.Session())
	}
}

type options struct {
	configPath string
	tracePath  string
}

func parseFlags() options {
	var opts options
	var showVersion bool

	flag.StringVar(&opts.configPath, "config", "", "Path to configuration file")
	flag.StringVar(&opts.tracePath, "trace", "", "Record normalized events to this SQLite database")
	flag.BoolVar(&showVersion, "version", false, "Print version and exit")
	flag.Parse()

	if showVersion {
		fmt.Printf("winput %s\n", version)
		os.Exit(0)
	}

	return opts
}
