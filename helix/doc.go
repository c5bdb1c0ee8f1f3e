// Package helix generates the geometry of parametric multi-strand helices:
// N backbones wound around a common axis plus the cross-strand connectors
// that tie them together.
//
// What it produces:
//
//	Geometry
//	  ├─ Strands     one backbone polyline per strand (Segments+1 points each)
//	  ├─ Connectors  base pairs (Paired mode) or hub spokes (Radial mode)
//	  └─ Hubs        axial hub points, one per radial cross-section
//
// Topology policy:
//   - StrandCount ≤ pairing threshold (default 4) → Paired: every cross-section
//     links strand s to the point diametrically opposite it (angle + π).
//   - StrandCount > threshold → Radial: every coarse cross-section links every
//     strand to a shared hub on the axis (a wheel, not a ring of rungs).
//
// Cross-section of a 6-strand helix in Radial mode (view along the axis):
//
//	     1   0
//	      \ /
//	   2 ── H ── 5
//	      / \
//	     3   4
//
// Guarantees:
//   - Pure and deterministic: identical Params and options ⇒ bit-identical output.
//   - Rotational symmetry: at every sampled t the strands are spaced exactly
//     2π/StrandCount apart.
//   - Invalid Params never fall back to defaults; Generate returns an error
//     wrapping ErrConfiguration.
//   - No shared state: Generate is safe to call concurrently on independent inputs.
//
// Usage:
//
//	g, err := helix.Generate(helix.DefaultParams(5), helix.WithRadialStride(5))
//	if err != nil {
//		// errors.Is(err, helix.ErrConfiguration)
//	}
//	for _, c := range g.Connectors { ... }
//
// Complexity: O(StrandCount · Segments) time and memory.
package helix
