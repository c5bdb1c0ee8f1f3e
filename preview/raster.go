// SPDX-License-Identifier: MIT
// Package: lvhelix/preview
//
// raster.go - scene → Frame projection.
//
// Terminal cells are roughly twice as tall as wide, so points are projected
// onto a Width×(2·Height) canvas and the row is halved. Colours are dimmed
// with depth across the helix's bounding sphere.

package preview

import (
	"math"

	"gonum.org/v1/gonum/spatial/r3"

	"github.com/katalvlaran/lvhelix/scene"
)

const (
	cellAspect = 2.0
	minShade   = 0.35
)

type projected struct {
	x, y, depth float64
	ok          bool
}

type rasterizer struct {
	sc     *scene.Scene
	rot    r3.Rotation
	frame  *Frame
	width  float64
	height float64 // canvas height in projection units

	// depth range used for shading
	near, far float64
}

// Rasterize draws sc rotated by angle (radians about sc.Axis) into a new
// width×height frame. Draw order is connectors, hubs, backbones, markers;
// the depth test decides what stays visible.
func Rasterize(sc *scene.Scene, angle float64, width, height int) *Frame {
	f := NewFrame(width, height)
	RasterizeInto(f, sc, angle)

	return f
}

// RasterizeInto clears f and draws sc into it.
func RasterizeInto(f *Frame, sc *scene.Scene, angle float64) {
	f.Clear()
	if sc == nil || f.Width == 0 || f.Height == 0 {
		return
	}

	dist := sc.Camera.Distance()
	reach := sceneReach(sc)
	r := rasterizer{
		sc:     sc,
		rot:    r3.NewRotation(angle, sc.Axis),
		frame:  f,
		width:  float64(f.Width),
		height: float64(f.Height) * cellAspect,
		near:   dist - reach,
		far:    dist + reach,
	}

	for _, c := range sc.Cylinders {
		r.line(c.From, c.To, RuneConnector, c.Color)
	}
	for _, h := range sc.Hubs {
		r.point(h.Center, RuneHub, h.Color)
	}
	for _, b := range sc.Backbones {
		for i := 1; i < len(b.Points); i++ {
			r.line(b.Points[i-1], b.Points[i], RuneStrand, b.Color)
		}
	}
	for _, m := range sc.Markers {
		r.point(m.Center, RuneMarker, m.Color)
	}
}

// sceneReach is the radius of a sphere around the origin holding every backbone point.
func sceneReach(sc *scene.Scene) float64 {
	reach := 0.0
	for _, b := range sc.Backbones {
		for _, p := range b.Points {
			reach = math.Max(reach, r3.Norm(p))
		}
	}

	return reach
}

func (r *rasterizer) project(v r3.Vec) projected {
	x, y, depth, ok := r.sc.Camera.Project(r.rot.Rotate(v), r.width, r.height)

	return projected{x: x, y: y / cellAspect, depth: depth, ok: ok}
}

// shade dims c linearly from full brightness at the near side of the helix
// to minShade at the far side.
func (r *rasterizer) shade(c scene.Color, depth float64) scene.Color {
	if r.far <= r.near {
		return c
	}
	t := (depth - r.near) / (r.far - r.near)
	t = math.Min(math.Max(t, 0), 1)

	return c.Scale(1 - t*(1-minShade))
}

func (r *rasterizer) plot(p projected, glyph rune, c scene.Color) {
	r.frame.Plot(int(math.Floor(p.x)), int(math.Floor(p.y)), Cell{Rune: glyph, Color: r.shade(c, p.depth), Depth: p.depth})
}

func (r *rasterizer) point(v r3.Vec, glyph rune, c scene.Color) {
	if p := r.project(v); p.ok {
		r.plot(p, glyph, c)
	}
}

// line walks the segment a→b one cell at a time, interpolating depth.
func (r *rasterizer) line(a, b r3.Vec, glyph rune, c scene.Color) {
	pa, pb := r.project(a), r.project(b)
	if !pa.ok || !pb.ok {
		return
	}
	steps := int(math.Ceil(math.Max(math.Abs(pb.x-pa.x), math.Abs(pb.y-pa.y))))
	if steps < 1 {
		r.plot(pa, glyph, c)
		return
	}
	for k := 0; k <= steps; k++ {
		t := float64(k) / float64(steps)
		r.plot(projected{
			x:     pa.x + (pb.x-pa.x)*t,
			y:     pa.y + (pb.y-pa.y)*t,
			depth: pa.depth + (pb.depth-pa.depth)*t,
		}, glyph, c)
	}
}
