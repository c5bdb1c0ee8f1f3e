// Command helixview opens a window with a spinning multi-strand helix.
//
//	helixview -strands 12
//
// Keys: space pause, r reset, +/- or mouse wheel zoom, q or Esc quit.
package main

import (
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/katalvlaran/lvhelix/helix"
	"github.com/katalvlaran/lvhelix/scene"
)

const (
	windowWidth  = 960
	windowHeight = 720
)

func main() {
	strands := flag.Int("strands", 2, "number of strands (≥ 1)")
	turns := flag.Float64("turns", helix.DefaultTurns, "full turns over the height")
	flag.Parse()

	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelInfo})))

	p := helix.DefaultParams(*strands)
	p.Turns = *turns
	g, err := helix.Generate(p)
	if err != nil {
		slog.Error("generate failed", "error", err)
		os.Exit(1)
	}
	sc, err := scene.Build(g)
	if err != nil {
		slog.Error("scene failed", "error", err)
		os.Exit(1)
	}
	c := g.Counts()
	slog.Info("helix ready", "strands", p.StrandCount, "mode", g.Mode.String(),
		"connectors", c.Connectors, "hubs", c.Hubs, "markers", len(sc.Markers))

	ebiten.SetWindowSize(windowWidth, windowHeight)
	ebiten.SetWindowTitle(fmt.Sprintf("lvhelix - %d strands (space pause, r reset, q quit)", p.StrandCount))
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	if err := ebiten.RunGame(newViewer(sc)); err != nil && !errors.Is(err, ebiten.Termination) {
		slog.Error("window failed", "error", err)
		os.Exit(1)
	}
}
