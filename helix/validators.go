// Package helix provides validation helpers that turn Params violations into
// errors wrapping ErrConfiguration.
package helix

import (
	"fmt"
	"math"
)

// validateParams checks every field of p and reports the first violation.
// Order: StrandCount, Radius, Height, Turns, Segments, sample budget.
//
// Complexity: O(1) time and space.
func validateParams(method string, p Params) error {
	if p.StrandCount < MinStrandCount {
		return fmt.Errorf("%s: StrandCount=%d < %d: %w", method, p.StrandCount, MinStrandCount, ErrConfiguration)
	}
	if p.StrandCount > MaxStrandCount {
		return fmt.Errorf("%s: StrandCount=%d > %d: %w", method, p.StrandCount, MaxStrandCount, ErrConfiguration)
	}
	if err := validatePositive(method, "Radius", p.Radius); err != nil {
		return err
	}
	if err := validatePositive(method, "Height", p.Height); err != nil {
		return err
	}
	if err := validatePositive(method, "Turns", p.Turns); err != nil {
		return err
	}
	if p.Segments < MinSegments {
		return fmt.Errorf("%s: Segments=%d < %d: %w", method, p.Segments, MinSegments, ErrConfiguration)
	}
	if p.Segments > MaxSegments {
		return fmt.Errorf("%s: Segments=%d > %d: %w", method, p.Segments, MaxSegments, ErrConfiguration)
	}
	// Both factors are bounded above, so the product fits in an int.
	if samples := p.StrandCount * (p.Segments + 1); samples > MaxSamples {
		return fmt.Errorf("%s: StrandCount·(Segments+1)=%d > %d: %w", method, samples, MaxSamples, ErrConfiguration)
	}

	return nil
}

// validateBasePairs checks the Paired connector count that p and the resolved
// basePairsPerTurn imply. Call it only after validateParams succeeded.
//
// Complexity: O(1) time and space.
func validateBasePairs(method string, p Params, cfg generatorConfig) error {
	total := p.Turns * float64(cfg.basePairsPerTurn)
	if total > MaxBasePairSections {
		return fmt.Errorf("%s: Turns·basePairsPerTurn=%g > %d: %w", method, total, MaxBasePairSections, ErrConfiguration)
	}
	if pairs := int(math.Ceil(total)) * (p.StrandCount / 2); pairs > MaxSamples {
		return fmt.Errorf("%s: base pairs=%d > %d: %w", method, pairs, MaxSamples, ErrConfiguration)
	}

	return nil
}

// validatePositive rejects v ≤ 0, NaN and ±Inf.
func validatePositive(method, field string, v float64) error {
	// !(v > 0) also catches NaN.
	if !(v > 0) || math.IsInf(v, 0) {
		return fmt.Errorf("%s: %s=%g must be finite and > 0: %w", method, field, v, ErrConfiguration)
	}

	return nil
}
