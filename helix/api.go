// SPDX-License-Identifier: MIT
// Package: lvhelix/helix
//
// api.go - thin public entry-points for the helix package.
//
// Design contract (strict):
//   - One orchestrator: Generate(p, opts...). Validates p, resolves cfg, runs the
//     strand builder and then exactly one connector builder.
//   - Builders are implemented in impl_*.go and only ever append to the Geometry
//     they are handed; they never read back previously emitted entities.
//   - Determinism: same Params and options ⇒ identical Geometry.
//   - Safety: never panic; invalid Params return ErrConfiguration.

package helix

// DefaultParams returns the reference layout for strandCount: a radius scaled
// with ScaledRadius(DefaultBaseRadius, n), height 40, 3 turns, 150 segments.
// The result is not validated; Generate will reject strandCount < 1.
func DefaultParams(strandCount int) Params {
	return Params{
		StrandCount: strandCount,
		Radius:      ScaledRadius(DefaultBaseRadius, strandCount),
		Height:      DefaultHeight,
		Turns:       DefaultTurns,
		Segments:    DefaultSegments,
	}
}

// ModeFor reports the connection mode the default pairing threshold selects.
func ModeFor(strandCount int) ConnectionMode {
	return newGeneratorConfig().modeFor(strandCount)
}

// RadialStride returns the default segment stride between Radial
// cross-sections: 6, or 8 once there are more than 8 strands.
func RadialStride(strandCount int) int {
	if strandCount > radialCrowdedAbove {
		return radialStrideDense
	}

	return radialStrideSparse
}

// Generate builds the Geometry described by p.
//
// Steps:
//  1. validate p (ErrConfiguration on violation, including sizes above the
//     Max* bounds and, in Paired mode, too many base-pair sections);
//  2. sample Segments+1 points per strand;
//  3. pick the connection mode from StrandCount and the pairing threshold;
//  4. emit base pairs (Paired) or hubs and spokes (Radial).
//
// Complexity: O(StrandCount · Segments) time and memory.
//
// Concurrency: Generate holds no shared state; concurrent calls are safe.
func Generate(p Params, opts ...Option) (*Geometry, error) {
	// 1) Reject invalid input before any allocation.
	if err := validateParams(MethodGenerate, p); err != nil {
		return nil, err
	}

	// 2) Resolve policy knobs.
	cfg := newGeneratorConfig(opts...)

	mode := cfg.modeFor(p.StrandCount)
	if mode == Paired {
		if err := validateBasePairs(MethodGenerate, p, cfg); err != nil {
			return nil, err
		}
	}

	g := &Geometry{
		Params:           p,
		Mode:             mode,
		Axis:             cfg.axis,
		PairingThreshold: cfg.pairingThreshold,
	}

	// 3) Backbones.
	g.Strands = buildStrands(p, cfg)

	// 4) Connectors for the selected topology.
	switch g.Mode {
	case Paired:
		g.BasePairsPerTurn = cfg.basePairsPerTurn
		g.Connectors = buildBasePairs(p, cfg)
	case Radial:
		g.RadialStride = cfg.strideFor(p.StrandCount)
		g.Hubs, g.Connectors = buildSpokes(p, cfg, g.RadialStride)
	}

	return g, nil
}
