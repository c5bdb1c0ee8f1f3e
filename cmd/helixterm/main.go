// Command helixterm spins a multi-strand helix in the terminal.
//
//	helixterm -strands 7
//
// Keys: space pause, r reset, +/- zoom, q or Esc quit.
package main

import (
	"context"
	"errors"
	"flag"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/katalvlaran/lvhelix/helix"
	"github.com/katalvlaran/lvhelix/preview"
)

func main() {
	strands := flag.Int("strands", 2, "number of strands (≥ 1)")
	turns := flag.Float64("turns", helix.DefaultTurns, "full turns over the height")
	axis := flag.String("axis", "y", "helix axis: x, y or z")
	fps := flag.Int("fps", 30, "frames per second")
	flag.Parse()

	// The terminal belongs to the renderer; logs go to stderr only on failure.
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelWarn})))

	if err := run(*strands, *turns, *axis, *fps); err != nil {
		slog.Error("helixterm failed", "error", err)
		os.Exit(1)
	}
}

func run(strands int, turns float64, axisName string, fps int) error {
	axis, err := helix.ParseAxis(axisName)
	if err != nil {
		return err
	}
	p := helix.DefaultParams(strands)
	p.Turns = turns
	g, err := helix.Generate(p, helix.WithAxis(axis))
	if err != nil {
		return err
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		return err
	}
	if err := screen.Init(); err != nil {
		return err
	}
	defer screen.Fini()
	screen.HideCursor()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	opts := preview.Options{StatusLine: true}
	if fps > 0 {
		opts.FramePeriod = time.Second / time.Duration(fps)
	}

	err = preview.Run(ctx, screen, g, opts)
	if errors.Is(err, context.Canceled) {
		return nil
	}

	return err
}
