// SPDX-License-Identifier: MIT
// Package: lvhelix/helix
//
// errors.go - sentinel errors for the helix package.
//
// Error policy:
//   • Only sentinel variables are exposed; callers branch with errors.Is.
//   • Context is attached with %w at the failure site:
//       "Generate: Radius=-1: helix: invalid configuration"
//   • Generate never panics at runtime. Option constructors (WithX) panic on
//     meaningless values because those are programmer errors fixed at call sites.

package helix

import (
	"errors"
)

// ErrConfiguration indicates that Params violate the generator contract:
// StrandCount < 1, or a non-positive (or non-finite) Radius, Height, Turns or
// Segments. The generator never substitutes defaults for invalid input.
// Usage: if errors.Is(err, helix.ErrConfiguration) { /* refuse to render */ }.
var ErrConfiguration = errors.New("helix: invalid configuration")
