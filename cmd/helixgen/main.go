// Command helixgen generates multi-strand helix geometry and writes it as
// JSON, Wavefront OBJ or SVG, or renders the static HTML gallery.
//
//	helixgen -strands 5 -format obj -out pentaplex.obj
//	helixgen -strands 12 -turns 4 -format svg > dodeca.svg
//	helixgen -site public/
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/dustin/go-humanize"

	"github.com/katalvlaran/lvhelix/export"
	"github.com/katalvlaran/lvhelix/helix"
	"github.com/katalvlaran/lvhelix/site"
)

func main() {
	if err := run(os.Args[1:], os.Stdout, os.Stderr); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			os.Exit(0)
		}
		slog.Error("helixgen failed", "error", err)
		os.Exit(1)
	}
}

// options holds the parsed command line.
type options struct {
	strands  int
	radius   float64
	law      string
	height   float64
	turns    float64
	segments int
	axis     string
	format   string
	out      string
	siteDir  string
	verbose  bool

	set map[string]bool // flags given explicitly on the command line
}

// siteConflicts lists flags that select a single geometry and have no meaning
// for the gallery, which covers a fixed range of strand counts.
var siteConflicts = []string{"strands", "radius", "format", "out"}

func parseFlags(args []string, stderr io.Writer) (options, error) {
	var o options
	fs := flag.NewFlagSet("helixgen", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.IntVar(&o.strands, "strands", 2, "number of strands (≥ 1)")
	fs.Float64Var(&o.radius, "radius", 0, "strand radius; 0 scales the base radius with the strand count")
	fs.StringVar(&o.law, "law", "sqrt", "radius scaling law when -radius is 0: sqrt or linear")
	fs.Float64Var(&o.height, "height", helix.DefaultHeight, "axial height")
	fs.Float64Var(&o.turns, "turns", helix.DefaultTurns, "full turns over the height")
	fs.IntVar(&o.segments, "segments", helix.DefaultSegments, "backbone segments per strand")
	fs.StringVar(&o.axis, "axis", "y", "helix axis: x, y or z")
	fs.StringVar(&o.format, "format", "json", "output format: json, obj or svg")
	fs.StringVar(&o.out, "out", "", "output file (default stdout)")
	fs.StringVar(&o.siteDir, "site", "", "render the HTML gallery for 2..12 strands into this directory instead")
	fs.BoolVar(&o.verbose, "v", false, "debug logging")
	if err := fs.Parse(args); err != nil {
		return o, err
	}
	if fs.NArg() > 0 {
		return o, fmt.Errorf("unexpected arguments: %v", fs.Args())
	}
	o.set = make(map[string]bool)
	fs.Visit(func(f *flag.Flag) { o.set[f.Name] = true })

	return o, nil
}

func (o options) params() (helix.Params, error) {
	p := helix.Params{
		StrandCount: o.strands,
		Radius:      o.radius,
		Height:      o.height,
		Turns:       o.turns,
		Segments:    o.segments,
	}
	if p.Radius == 0 {
		switch o.law {
		case "sqrt":
			p.Radius = helix.ScaledRadiusLaw(helix.SqrtLaw, helix.DefaultBaseRadius, o.strands)
		case "linear":
			p.Radius = helix.ScaledRadiusLaw(helix.LinearLaw, helix.DefaultBaseRadius, o.strands)
		default:
			return p, fmt.Errorf("unknown radius law %q", o.law)
		}
	}

	return p, nil
}

func run(args []string, stdout, stderr io.Writer) error {
	o, err := parseFlags(args, stderr)
	if err != nil {
		return err
	}

	level := slog.LevelInfo
	if o.verbose {
		level = slog.LevelDebug
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level})))

	axis, err := helix.ParseAxis(o.axis)
	if err != nil {
		return err
	}

	if o.siteDir != "" {
		return buildSite(o, axis)
	}

	format, err := export.ParseFormat(o.format)
	if err != nil {
		return err
	}
	p, err := o.params()
	if err != nil {
		return err
	}

	g, err := helix.Generate(p, helix.WithAxis(axis))
	if err != nil {
		return err
	}
	c := g.Counts()
	slog.Debug("generated",
		"strands", p.StrandCount,
		"radius", fmt.Sprintf("%.3f", p.Radius),
		"mode", g.Mode.String(),
		"points", humanize.Comma(int64(c.Points)),
		"connectors", humanize.Comma(int64(c.Connectors)),
		"hubs", c.Hubs,
	)

	n, err := writeGeometry(o.out, stdout, g, format)
	if err != nil {
		return err
	}

	dest := o.out
	if dest == "" {
		dest = "stdout"
	}
	slog.Info("wrote geometry",
		"format", format.String(),
		"dest", dest,
		"size", humanize.Bytes(uint64(n)),
		"mode", g.Mode.String(),
	)

	return nil
}

// buildSite renders the gallery. Height, turns, segments and the radius law
// apply to every page; the radius itself is always scaled per strand count.
func buildSite(o options, axis helix.Axis) error {
	for _, name := range siteConflicts {
		if o.set[name] {
			return fmt.Errorf("-%s cannot be combined with -site", name)
		}
	}
	o.radius = 0
	if _, err := o.params(); err != nil {
		return err
	}

	cfg := site.DefaultConfig()
	cfg.Options = []helix.Option{helix.WithAxis(axis)}
	cfg.Params = func(n int) helix.Params {
		q := o
		q.strands = n
		p, _ := q.params() // law checked above
		return p
	}

	dir := o.siteDir
	pages, err := site.Build(dir, cfg)
	if err != nil {
		return err
	}
	var total uint64
	for _, p := range pages {
		total += uint64(p.Size)
		slog.Debug("page", "strands", p.Strands, "file", p.File, "name", p.Name, "size", humanize.Bytes(uint64(p.Size)))
	}
	slog.Info("built site", "dir", dir, "pages", len(pages), "size", humanize.Bytes(total))

	return nil
}

// writeGeometry encodes g to stdout, or to path when it is set, and returns
// the number of bytes written. A file that could not be written completely is
// removed.
func writeGeometry(path string, stdout io.Writer, g *helix.Geometry, format export.Format) (int64, error) {
	if path == "" {
		cw := &countingWriter{w: stdout}
		err := export.Encode(cw, g, format)
		return cw.n, err
	}

	f, err := os.Create(path)
	if err != nil {
		return 0, err
	}
	cw := &countingWriter{w: f}
	err = export.Encode(cw, g, format)
	err = errors.Join(err, f.Close())
	if err != nil {
		if rmErr := os.Remove(path); rmErr != nil {
			err = errors.Join(err, rmErr)
		}
		return 0, err
	}

	return cw.n, nil
}

type countingWriter struct {
	w io.Writer
	n int64
}

func (c *countingWriter) Write(p []byte) (int, error) {
	n, err := c.w.Write(p)
	c.n += int64(n)
	return n, err
}
