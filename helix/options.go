// SPDX-License-Identifier: MIT
// Package: lvhelix/helix
//
// options.go - functional options for Generate.
//
// Contract:
//   • Options are functional (type Option func(*generatorConfig)).
//   • Option constructors VALIDATE and PANIC on meaningless inputs; Generate
//     itself never panics.
//   • Options only tune connection policy and orientation. Geometry inputs
//     live in Params and are validated into errors, not panics.

package helix

import (
	"fmt"
)

// Option customizes connection policy before geometry is generated.
// Complexity: applying N options costs O(N) time, O(1) space.
type Option func(*generatorConfig)

// WithPairingThreshold sets the largest strand count that still uses Paired
// connectors. 0 makes every helix Radial. Panics on negative k.
func WithPairingThreshold(k int) Option {
	if k < 0 {
		panic(fmt.Sprintf("helix: WithPairingThreshold(%d)", k))
	}
	return func(c *generatorConfig) {
		c.pairingThreshold = k
	}
}

// WithBasePairsPerTurn sets how many Paired cross-sections are emitted per
// full turn. Panics if n < 1.
func WithBasePairsPerTurn(n int) Option {
	if n < 1 {
		panic(fmt.Sprintf("helix: WithBasePairsPerTurn(%d)", n))
	}
	return func(c *generatorConfig) {
		c.basePairsPerTurn = n
	}
}

// WithRadialStride fixes the segment stride between Radial cross-sections,
// overriding the strand-count policy of RadialStride. Panics if k < 1.
func WithRadialStride(k int) Option {
	if k < 1 {
		panic(fmt.Sprintf("helix: WithRadialStride(%d)", k))
	}
	return func(c *generatorConfig) {
		c.radialStride = k
	}
}

// WithAxis selects the coordinate axis the strands wind around.
// Panics on an unknown Axis value.
func WithAxis(a Axis) Option {
	if a != AxisX && a != AxisY && a != AxisZ {
		panic(fmt.Sprintf("helix: WithAxis(%d)", int(a)))
	}
	return func(c *generatorConfig) {
		c.axis = a
	}
}
