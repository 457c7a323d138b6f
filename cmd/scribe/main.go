// Package main is the entry point for the Scribe block editor.
package main

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/gdamore/tcell/v2"

	"github.com/latticeapp/scribe/internal/app"
)

// Version information (set via ldflags during build).
var (
	version = "dev"
	commit  = "unknown"
)

func main() {
	os.Exit(run())
}

func run() int {
	opts := parseFlags()

	application, err := app.New(opts)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: failed to initialize: %v\n", err)
		return 1
	}

	// Ensure cleanup on all exit paths
	defer application.Shutdown()

	application.SeedDocument(sampleDocument())

	screen, err := tcell.NewScreen()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: failed to create screen: %v\n", err)
		return 1
	}
	application.SetScreen(screen)

	// Handle signals for graceful shutdown
	signals := make(chan os.Signal, 1)
	signal.Notify(signals, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		<-signals
		screen.Fini()
		application.Shutdown()
		os.Exit(0)
	}()

	if err := application.Run(); err != nil {
		if errors.Is(err, app.ErrQuit) {
			return 0
		}
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}

	return 0
}

func parseFlags() app.Options {
	var opts app.Options
	var showVersion bool

	flag.StringVar(&opts.ConfigPath, "config", "", "Path to configuration file")
	flag.StringVar(&opts.ConfigPath, "c", "", "Path to configuration file (shorthand)")
	flag.BoolVar(&opts.Debug, "debug", false, "Enable debug mode")
	flag.BoolVar(&showVersion, "version", false, "Show version information")
	flag.BoolVar(&showVersion, "v", false, "Show version information (shorthand)")

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Scribe - block-based text editor\n\n")
		fmt.Fprintf(os.Stderr, "Usage: scribe [options]\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nKeys:\n")
		fmt.Fprintf(os.Stderr, "  Shift+Down/Up    Extend or shrink the block selection\n")
		fmt.Fprintf(os.Stderr, "  Escape           Clear the selection\n")
		fmt.Fprintf(os.Stderr, "  q                Quit\n")
		fmt.Fprintf(os.Stderr, "\nDrag across blocks with the mouse to select them.\n")
	}

	flag.Parse()

	if showVersion {
		fmt.Printf("Scribe %s\n", version)
		fmt.Printf("Commit: %s\n", commit)
		os.Exit(0)
	}

	return opts
}

func sampleDocument() []string {
	return []string{
		"Scribe: a block-based editor core.",
		"Each line here is one block.",
		"Drag across blocks to select them.",
		"Reverse mid-drag and the far side deselects.",
		"Shift+Down extends the selection by one block.",
		"Shift+Up shrinks it again.",
		"Escape clears everything.",
		"The caret lands where the gesture ended.",
	}
}
