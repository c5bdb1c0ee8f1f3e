// SPDX-License-Identifier: MIT
// Package: lvhelix/helix
//
// config.go - internal configuration and deterministic defaults.
//
// Design:
//   • generatorConfig is the single source of truth for policy knobs.
//   • Defaults are named constants; there are no globals.
//   • newGeneratorConfig applies options in order (later overrides earlier).
//
// Deterministic defaults:
//   • pairingThreshold = 4   (Paired for 1..4 strands, Radial above)
//   • basePairsPerTurn = 10
//   • radialStride     = auto (6, or 8 above 8 strands)
//   • axis             = AxisY

package helix

// generatorConfig aggregates the policy knobs that are not part of Params.
// It is passed by value to the builders (immutable to callers).
type generatorConfig struct {
	pairingThreshold int  // Paired iff StrandCount ≤ pairingThreshold
	basePairsPerTurn int  // Paired cross-sections per full turn
	radialStride     int  // segment stride between radial sections; autoStride = derive
	axis             Axis // helix axis
}

// newGeneratorConfig constructs a config with deterministic defaults and
// applies all options in order.
// Complexity: O(len(opts)) time, O(1) space.
func newGeneratorConfig(opts ...Option) generatorConfig {
	cfg := generatorConfig{
		pairingThreshold: DefaultPairingThreshold,
		basePairsPerTurn: DefaultBasePairsPerTurn,
		radialStride:     autoStride,
		axis:             AxisY,
	}

	// Last-wins semantics.
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// modeFor applies the pairing threshold.
func (c generatorConfig) modeFor(strandCount int) ConnectionMode {
	if strandCount <= c.pairingThreshold {
		return Paired
	}

	return Radial
}

// strideFor resolves the radial stride for the given strand count.
func (c generatorConfig) strideFor(strandCount int) int {
	if c.radialStride != autoStride {
		return c.radialStride
	}

	return RadialStride(strandCount)
}
