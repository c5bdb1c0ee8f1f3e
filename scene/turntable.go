// SPDX-License-Identifier: MIT
// Package: lvhelix/scene
//
// turntable.go - constant-rate rotation about the helix axis.

package scene

import (
	"math"

	"gonum.org/v1/gonum/spatial/r3"
)

// Turntable spins a scene about a fixed axis through the origin by Rate
// radians per Step while running. It is not safe for concurrent use; the
// render loop owns it.
type Turntable struct {
	Axis r3.Vec
	Rate float64

	angle   float64
	running bool
}

// NewTurntable returns a running turntable. A zero axis falls back to Y.
func NewTurntable(axis r3.Vec, rate float64) *Turntable {
	if r3.Norm(axis) == 0 {
		axis = r3.Vec{Y: 1}
	}

	return &Turntable{Axis: r3.Unit(axis), Rate: rate, running: true}
}

// Step advances one frame and returns the new angle, wrapped to [0, 2π).
func (t *Turntable) Step() float64 {
	if t.running {
		t.angle = math.Mod(t.angle+t.Rate, 2*math.Pi)
		if t.angle < 0 {
			t.angle += 2 * math.Pi
		}
	}

	return t.angle
}

// Toggle pauses or resumes rotation and reports whether it is now running.
func (t *Turntable) Toggle() bool {
	t.running = !t.running
	return t.running
}

// Reset returns to angle zero without changing the running state.
func (t *Turntable) Reset() {
	t.angle = 0
}

// Angle returns the current rotation in radians.
func (t *Turntable) Angle() float64 { return t.angle }

// Running reports whether Step advances the angle.
func (t *Turntable) Running() bool { return t.running }

// Rotation returns the rotation for the current angle.
func (t *Turntable) Rotation() r3.Rotation {
	return r3.NewRotation(t.angle, t.Axis)
}

// Apply rotates v by the current angle.
func (t *Turntable) Apply(v r3.Vec) r3.Vec {
	if t.angle == 0 {
		return v
	}

	return t.Rotation().Rotate(v)
}
