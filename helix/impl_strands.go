// SPDX-License-Identifier: MIT
// Package: lvhelix/helix
//
// impl_strands.go - backbone sampling.
//
// Canonical model:
//   • t_i = i / Segments for i = 0..Segments (Segments+1 samples).
//   • angle = t·Turns·2π + strand·2π/StrandCount.
//   • rotating-plane position (cos(angle)·Radius, sin(angle)·Radius),
//     axial position (t − 0.5)·Height.
//
// Contract:
//   • Each strand is an explicit slice indexed by segment; neighbours are
//     found by index arithmetic, never by scanning previously emitted output.
//   • The same angle/position helpers are shared with the connector builders
//     so connectors land bit-exactly on the backbone where they coincide.
//
// Complexity: O(StrandCount · Segments) time and memory.

package helix

import (
	"math"

	"gonum.org/v1/gonum/spatial/r3"
)

// buildStrands samples every backbone.
func buildStrands(p Params, cfg generatorConfig) [][]StrandPoint {
	strands := make([][]StrandPoint, p.StrandCount)
	for s := 0; s < p.StrandCount; s++ {
		points := make([]StrandPoint, p.Segments+1)
		for i := 0; i <= p.Segments; i++ {
			t := float64(i) / float64(p.Segments)
			angle := strandAngle(p, s, t)
			points[i] = StrandPoint{
				Strand:   s,
				Index:    i,
				T:        t,
				Angle:    angle,
				Position: place(cfg.axis, angle, p.Radius, axialOffset(p, t)),
			}
		}
		strands[s] = points
	}

	return strands
}

// strandAngle returns the winding angle of strand s at axial parameter t.
func strandAngle(p Params, s int, t float64) float64 {
	return t*p.Turns*math.Pi*2 + strandOffset(p.StrandCount, s)
}

// strandOffset is the fixed angular phase of strand s: s·2π/n.
func strandOffset(n, s int) float64 {
	return float64(s) * 2 * math.Pi / float64(n)
}

// axialOffset maps t ∈ [0,1] onto [-Height/2, Height/2].
func axialOffset(p Params, t float64) float64 {
	return (t - 0.5) * p.Height
}

// place converts polar coordinates in the rotating plane plus an axial offset
// into a 3D point for the configured axis.
func place(axis Axis, angle, radius, along float64) r3.Vec {
	u := math.Cos(angle) * radius
	v := math.Sin(angle) * radius
	switch axis {
	case AxisZ:
		return r3.Vec{X: u, Y: v, Z: along}
	case AxisX:
		return r3.Vec{X: along, Y: u, Z: v}
	default:
		return r3.Vec{X: u, Y: along, Z: v}
	}
}

// axisPoint returns the point on the helix axis at the given axial offset.
func axisPoint(axis Axis, along float64) r3.Vec {
	return place(axis, 0, 0, along)
}
