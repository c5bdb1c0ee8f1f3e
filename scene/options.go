// SPDX-License-Identifier: MIT
// Package: lvhelix/scene
//
// options.go - functional options for Build.
//
// Policy (mirrors helix): constructors panic on meaningless values, Build
// never panics, later options win.

package scene

import (
	"fmt"
)

// Option customizes Build.
type Option func(*sceneConfig)

type sceneConfig struct {
	palette      []Color
	markerStride int // autoMarkerStride ⇒ derived from strand count
	rotationRate float64
}

func newSceneConfig(opts ...Option) sceneConfig {
	cfg := sceneConfig{
		palette:      Palette,
		markerStride: autoMarkerStride,
		rotationRate: DefaultRotationRate,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// markerStrideFor returns the sample stride between marker spheres.
func (c sceneConfig) markerStrideFor(n int) int {
	if c.markerStride != autoMarkerStride {
		return c.markerStride
	}
	if n > markerCrowdedAbove {
		return markerStrideDense
	}

	return markerStrideSparse
}

// WithPalette replaces the strand colour cycle. Panics when empty.
func WithPalette(colors ...Color) Option {
	if len(colors) == 0 {
		panic("scene: WithPalette() needs at least one colour")
	}
	p := make([]Color, len(colors))
	copy(p, colors)

	return func(c *sceneConfig) { c.palette = p }
}

// WithMarkerStride places a marker sphere every k samples. Panics if k < 1.
func WithMarkerStride(k int) Option {
	if k < 1 {
		panic(fmt.Sprintf("scene: WithMarkerStride(%d): stride must be ≥ 1", k))
	}

	return func(c *sceneConfig) { c.markerStride = k }
}

// WithRotationRate sets the turntable step in radians per frame.
// Zero yields a still turntable. Panics on negative rates.
func WithRotationRate(rad float64) Option {
	if !(rad >= 0) {
		panic(fmt.Sprintf("scene: WithRotationRate(%g): rate must be ≥ 0", rad))
	}

	return func(c *sceneConfig) { c.rotationRate = rad }
}
