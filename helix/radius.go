// SPDX-License-Identifier: MIT
// Package: lvhelix/helix
//
// radius.go - strand-count dependent radius scaling.
//
// Denser helices need a wider tube or the strands visually collapse into one
// another. Growth must stay sub-linear so a 12-strand helix is not enormous.

package helix

import (
	"math"
)

// RadiusLaw maps a strand count to a radius multiplier (≥ 1).
type RadiusLaw int

const (
	// SqrtLaw scales by max(1, √(n/2)). This is the default.
	SqrtLaw RadiusLaw = iota
	// LinearLaw scales by max(1, n/4), the layout of the early 7- and 10-strand pages.
	LinearLaw
)

// Multiplier returns the scale factor for strandCount under law l.
// Unknown laws behave like SqrtLaw.
func (l RadiusLaw) Multiplier(strandCount int) float64 {
	n := float64(strandCount)
	switch l {
	case LinearLaw:
		return math.Max(1, n/4)
	default:
		return math.Max(1, math.Sqrt(n/2))
	}
}

// ScaledRadius returns base * max(1, √(strandCount/2)).
// It is monotonic non-decreasing in strandCount.
func ScaledRadius(base float64, strandCount int) float64 {
	return base * SqrtLaw.Multiplier(strandCount)
}

// ScaledRadiusLaw is ScaledRadius with an explicit scaling law.
func ScaledRadiusLaw(law RadiusLaw, base float64, strandCount int) float64 {
	return base * law.Multiplier(strandCount)
}
