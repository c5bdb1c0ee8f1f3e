// SPDX-License-Identifier: MIT
// Package: lvhelix/helix
//
// impl_radial.go - hub-and-spoke connectors for dense helices (Radial mode).
//
// Canonical model (a wheel per cross-section):
//   • Sections at segment indices i = 0, stride, 2·stride, … ≤ Segments. A
//     trailing partial interval is dropped, there is no wraparound.
//   • Each section adds one hub on the axis at (t − 0.5)·Height and one spoke
//     per strand, in strand order, from the strand point to that hub.
//
// Contract:
//   • Spoke.From equals the backbone sample Strands[s][i].Position exactly.
//   • Spoke.Hub indexes the returned hubs slice; hubs are in axial order.
//
// Complexity: O((Segments/stride + 1) · n) time and memory.

package helix

// buildSpokes emits hubs and spokes for every radial section.
func buildSpokes(p Params, cfg generatorConfig, stride int) ([]Hub, []Connector) {
	sections := p.Segments/stride + 1

	hubs := make([]Hub, 0, sections)
	connectors := make([]Connector, 0, sections*p.StrandCount)

	for i, section := 0, 0; i <= p.Segments; i, section = i+stride, section+1 {
		t := float64(i) / float64(p.Segments)
		along := axialOffset(p, t)
		center := axisPoint(cfg.axis, along)

		hubs = append(hubs, Hub{
			Section:  section,
			Index:    i,
			T:        t,
			Position: center,
		})

		for s := 0; s < p.StrandCount; s++ {
			connectors = append(connectors, Connector{
				Kind:    Spoke,
				StrandA: s,
				StrandB: NoStrand,
				Index:   i,
				Section: section,
				Hub:     section,
				T:       t,
				From:    place(cfg.axis, strandAngle(p, s, t), p.Radius, along),
				To:      center,
			})
		}
	}

	return hubs, connectors
}
