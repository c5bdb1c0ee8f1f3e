// SPDX-License-Identifier: MIT
// Package: lvhelix/helix
//
// impl_paired.go - base-pair connectors for sparse helices (Paired mode).
//
// Canonical model:
//   • total = Turns · basePairsPerTurn cross-sections at t_i = i/total for every
//     integer i with i < total (a fractional total adds one final section).
//   • At each section, for s in [0, ⌊n/2⌋): angle1 = t·Turns·2π + s·2π/n and
//     angle2 = angle1 + π. Both endpoints come from the angle formula.
//
// Odd strand counts:
//   • The opposite angle does not land on any strand, so the far endpoint floats
//     on the helix cylinder between two backbones and StrandB is NoStrand.
//     The connector is still emitted as a straight segment.
//   • For even counts the far endpoint is strand s + n/2 at the same t.
//
// Complexity: O(total · ⌊n/2⌋) time and memory.

package helix

import (
	"math"
)

// buildBasePairs emits one connector per (pairing index, section).
func buildBasePairs(p Params, cfg generatorConfig) []Connector {
	pairs := p.StrandCount / 2
	if pairs == 0 {
		// Single strand: nothing to pair with.
		return nil
	}

	total := p.Turns * float64(cfg.basePairsPerTurn)
	sections := int(math.Ceil(total))

	connectors := make([]Connector, 0, sections*pairs)
	for i := 0; i < sections; i++ {
		t := float64(i) / total
		base := t * p.Turns * math.Pi * 2
		along := axialOffset(p, t)

		for s := 0; s < pairs; s++ {
			angle1 := base + strandOffset(p.StrandCount, s)
			angle2 := angle1 + math.Pi

			connectors = append(connectors, Connector{
				Kind:    BasePair,
				StrandA: s,
				StrandB: oppositeStrand(p.StrandCount, s),
				Index:   i,
				Section: i,
				Hub:     NoHub,
				T:       t,
				From:    place(cfg.axis, angle1, p.Radius, along),
				To:      place(cfg.axis, angle2, p.Radius, along),
			})
		}
	}

	return connectors
}

// oppositeStrand returns the strand whose phase is π away from strand s, or
// NoStrand when the strand count is odd.
func oppositeStrand(n, s int) int {
	if n%2 != 0 {
		return NoStrand
	}

	return s + n/2
}
