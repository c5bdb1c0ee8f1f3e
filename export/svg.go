// SPDX-License-Identifier: MIT
// Package: lvhelix/export
//
// svg.go - orthographic side view.
//
// The helix is viewed perpendicular to its axis with the axis pointing up the
// page. Draw order: background, connectors, hubs, backbones, so strands are
// never hidden behind rungs.

package export

import (
	"bufio"
	"fmt"
	"html"
	"io"
	"math"
	"strconv"
	"strings"

	"gonum.org/v1/gonum/spatial/r3"

	"github.com/katalvlaran/lvhelix/helix"
	"github.com/katalvlaran/lvhelix/scene"
)

// SVG defaults.
const (
	DefaultSVGWidth  = 480
	DefaultSVGHeight = 640
	svgMargin        = 2.0
	svgStrandWidth   = 0.3
	svgRungWidth     = 0.15
	svgSpokeWidth    = 0.08
	svgHubRadius     = 0.25
)

// SVGOptions controls EncodeSVG.
type SVGOptions struct {
	Width, Height int    // pixel size of the element; ≤ 0 selects the default
	Title         string // accessible title; empty selects "<n>-strand helix"
	Background    bool   // paint the scene background colour
}

// DefaultSVGOptions returns 480×640 with background.
func DefaultSVGOptions() SVGOptions {
	return SVGOptions{Width: DefaultSVGWidth, Height: DefaultSVGHeight, Background: true}
}

// sideView maps a world point onto the drawing plane: x stays horizontal,
// the helix axis (or Y for an X-axis helix) goes up.
func sideView(axis helix.Axis, v r3.Vec) (x, y float64) {
	if axis == helix.AxisZ {
		return v.X, -v.Z
	}

	return v.X, -v.Y
}

// EncodeSVG writes g as a standalone <svg> element.
func EncodeSVG(w io.Writer, g *helix.Geometry, opt SVGOptions) error {
	if g == nil {
		return ErrNilGeometry
	}
	if opt.Width <= 0 {
		opt.Width = DefaultSVGWidth
	}
	if opt.Height <= 0 {
		opt.Height = DefaultSVGHeight
	}
	if opt.Title == "" {
		opt.Title = fmt.Sprintf("%d-strand helix", g.Params.StrandCount)
	}

	lo, hi := g.Bounds()
	x0, y0 := sideView(g.Axis, lo)
	x1, y1 := sideView(g.Axis, hi)
	minX, maxX := math.Min(x0, x1)-svgMargin, math.Max(x0, x1)+svgMargin
	minY, maxY := math.Min(y0, y1)-svgMargin, math.Max(y0, y1)+svgMargin

	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, `<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d" viewBox="%s %s %s %s" role="img">`+"\n",
		opt.Width, opt.Height, svgFloat(minX), svgFloat(minY), svgFloat(maxX-minX), svgFloat(maxY-minY))
	fmt.Fprintf(bw, "<title>%s</title>\n", html.EscapeString(opt.Title))
	if opt.Background {
		fmt.Fprintf(bw, `<rect x="%s" y="%s" width="%s" height="%s" fill="%s"/>`+"\n",
			svgFloat(minX), svgFloat(minY), svgFloat(maxX-minX), svgFloat(maxY-minY), scene.BackgroundColor.Hex())
	}

	if len(g.Connectors) > 0 {
		width := svgRungWidth
		if g.Mode == helix.Radial {
			width = svgSpokeWidth
		}
		fmt.Fprintf(bw, `<g class="connectors" stroke="%s" stroke-width="%s" stroke-linecap="round">`+"\n",
			scene.ConnectorColor.Hex(), svgFloat(width))
		for _, c := range g.Connectors {
			ax, ay := sideView(g.Axis, c.From)
			bx, by := sideView(g.Axis, c.To)
			fmt.Fprintf(bw, `<line x1="%s" y1="%s" x2="%s" y2="%s"/>`+"\n",
				svgFloat(ax), svgFloat(ay), svgFloat(bx), svgFloat(by))
		}
		bw.WriteString("</g>\n")
	}

	if len(g.Hubs) > 0 {
		fmt.Fprintf(bw, `<g class="hubs" fill="%s">`+"\n", scene.ConnectorColor.Hex())
		for _, h := range g.Hubs {
			cx, cy := sideView(g.Axis, h.Position)
			fmt.Fprintf(bw, `<circle cx="%s" cy="%s" r="%s"/>`+"\n", svgFloat(cx), svgFloat(cy), svgFloat(svgHubRadius))
		}
		bw.WriteString("</g>\n")
	}

	fmt.Fprintf(bw, `<g class="strands" fill="none" stroke-width="%s" stroke-linejoin="round">`+"\n", svgFloat(svgStrandWidth))
	for s, pts := range g.Strands {
		var sb strings.Builder
		for i, pt := range pts {
			if i > 0 {
				sb.WriteByte(' ')
			}
			x, y := sideView(g.Axis, pt.Position)
			sb.WriteString(svgFloat(x))
			sb.WriteByte(',')
			sb.WriteString(svgFloat(y))
		}
		fmt.Fprintf(bw, `<polyline stroke="%s" points="%s"/>`+"\n", scene.StrandColor(s).Hex(), sb.String())
	}
	bw.WriteString("</g>\n</svg>\n")

	return bw.Flush()
}

// svgFloat rounds to three decimals and trims trailing zeros.
func svgFloat(f float64) string {
	s := strconv.FormatFloat(math.Round(f*1000)/1000, 'f', -1, 64)
	if s == "-0" {
		return "0"
	}

	return s
}
