// SPDX-License-Identifier: MIT
// Package: lvhelix/scene
//
// camera.go - perspective look-at camera.
//
// Convention: right-handed world, camera looks from Position towards Target,
// Up is projected to be orthogonal to the view direction. Screen origin is
// the top-left corner, y grows downwards.

package scene

import (
	"math"

	"gonum.org/v1/gonum/spatial/r3"
)

// Camera is a perspective camera orbiting Target.
type Camera struct {
	Position r3.Vec
	Target   r3.Vec
	Up       r3.Vec
	FOV      float64 // vertical field of view, degrees
	Near     float64
	Far      float64

	// Orbit limits for Zoom.
	MinDistance float64
	MaxDistance float64
}

// CameraDistance is the default orbit distance for strandCount strands.
func CameraDistance(strandCount int) float64 {
	return CameraBaseDistance + CameraPerStrand*float64(strandCount)
}

// newCamera frames a helix winding around axis from the given distance.
// The camera sits on a line perpendicular to the axis: +Z unless the axis
// itself is Z, then -Y with Z as up.
func newCamera(axis r3.Vec, distance float64) Camera {
	dir, up := r3.Vec{Z: 1}, r3.Vec{Y: 1}
	if math.Abs(axis.Z) > 0.5 {
		dir, up = r3.Vec{Y: -1}, r3.Vec{Z: 1}
	}

	return Camera{
		Position:    r3.Scale(distance, dir),
		Up:          up,
		FOV:         CameraFOV,
		Near:        CameraNear,
		Far:         CameraFar,
		MinDistance: CameraMinDistance,
		MaxDistance: CameraMaxDistance,
	}
}

// Distance returns |Position − Target|.
func (c Camera) Distance() float64 {
	return r3.Norm(r3.Sub(c.Position, c.Target))
}

// Zoom moves the camera along its view line by factor (<1 closer, >1 away),
// clamped to [MinDistance, MaxDistance].
func (c Camera) Zoom(factor float64) Camera {
	d := c.Distance()
	if d == 0 || !(factor > 0) {
		return c
	}
	nd := math.Min(math.Max(d*factor, c.MinDistance), c.MaxDistance)
	rel := r3.Scale(nd/d, r3.Sub(c.Position, c.Target))
	c.Position = r3.Add(c.Target, rel)

	return c
}

// basis returns the camera's right, up and forward unit vectors.
func (c Camera) basis() (right, up, forward r3.Vec) {
	forward = r3.Unit(r3.Sub(c.Target, c.Position))
	right = r3.Unit(r3.Cross(forward, c.Up))
	up = r3.Cross(right, forward)

	return right, up, forward
}

// Project maps world point v onto a width×height viewport. depth is the
// distance along the view direction; ok is false when v lies outside the
// near/far range. Points off-screen still project (x, y may leave the
// viewport); callers clip.
func (c Camera) Project(v r3.Vec, width, height float64) (x, y, depth float64, ok bool) {
	right, up, forward := c.basis()
	rel := r3.Sub(v, c.Position)
	depth = r3.Dot(rel, forward)
	if depth < c.Near || depth > c.Far || width <= 0 || height <= 0 {
		return 0, 0, depth, false
	}

	f := 1 / math.Tan(c.FOV*math.Pi/360)
	aspect := width / height
	ndcX := f * r3.Dot(rel, right) / (depth * aspect)
	ndcY := f * r3.Dot(rel, up) / depth

	x = (ndcX + 1) / 2 * width
	y = (1 - ndcY) / 2 * height

	return x, y, depth, true
}
