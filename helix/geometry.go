// SPDX-License-Identifier: MIT
// Package: lvhelix/helix
//
// geometry.go - read-only queries over a generated Geometry.

package helix

import (
	"math"

	"gonum.org/v1/gonum/spatial/r3"
)

// Counts summarizes the size of a Geometry.
type Counts struct {
	Strands    int
	Points     int // StrandCount · (Segments+1)
	Segments   int // backbone segments: StrandCount · Segments
	Connectors int
	Hubs       int
}

// Counts returns the entity totals of g.
func (g *Geometry) Counts() Counts {
	c := Counts{
		Strands:    len(g.Strands),
		Connectors: len(g.Connectors),
		Hubs:       len(g.Hubs),
	}
	for _, s := range g.Strands {
		c.Points += len(s)
		if len(s) > 0 {
			c.Segments += len(s) - 1
		}
	}

	return c
}

// Section returns the cross-section at segment index i: one point per strand,
// in strand order. ok is false when i is out of range.
func (g *Geometry) Section(i int) (points []StrandPoint, ok bool) {
	if i < 0 || i > g.Params.Segments {
		return nil, false
	}
	points = make([]StrandPoint, len(g.Strands))
	for s := range g.Strands {
		points[s] = g.Strands[s][i]
	}

	return points, true
}

// Backbone returns the polyline of strand s, or nil when s is out of range.
func (g *Geometry) Backbone(s int) []r3.Vec {
	if s < 0 || s >= len(g.Strands) {
		return nil
	}
	line := make([]r3.Vec, len(g.Strands[s]))
	for i, pt := range g.Strands[s] {
		line[i] = pt.Position
	}

	return line
}

// Bounds returns the axis-aligned box enclosing every strand point, connector
// endpoint and hub. An empty Geometry yields two zero vectors.
func (g *Geometry) Bounds() (lo, hi r3.Vec) {
	lo = r3.Vec{X: math.Inf(1), Y: math.Inf(1), Z: math.Inf(1)}
	hi = r3.Vec{X: math.Inf(-1), Y: math.Inf(-1), Z: math.Inf(-1)}
	seen := false

	grow := func(v r3.Vec) {
		seen = true
		lo = r3.Vec{X: math.Min(lo.X, v.X), Y: math.Min(lo.Y, v.Y), Z: math.Min(lo.Z, v.Z)}
		hi = r3.Vec{X: math.Max(hi.X, v.X), Y: math.Max(hi.Y, v.Y), Z: math.Max(hi.Z, v.Z)}
	}

	for _, s := range g.Strands {
		for _, pt := range s {
			grow(pt.Position)
		}
	}
	for _, c := range g.Connectors {
		grow(c.From)
		grow(c.To)
	}
	for _, h := range g.Hubs {
		grow(h.Position)
	}

	if !seen {
		return r3.Vec{}, r3.Vec{}
	}

	return lo, hi
}

// AxisVector returns the unit vector of g's helix axis.
func (g *Geometry) AxisVector() r3.Vec {
	return axisPoint(g.Axis, 1)
}
