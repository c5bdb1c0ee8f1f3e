// Package lvhelix generates the geometry of multi-strand helices: the
// classic double helix, triple and quadruple helices, and symmetric
// bundles of up to a dozen strands (or more) tied to a shared axis.
//
// What is inside?
//
//	A deterministic, dependency-light toolkit that brings together:
//		• Geometry: strand backbones, base-pair rungs, axial hubs and spokes
//		• Scaling: radius laws that keep dense bundles readable
//		• Metadata: a strand-count catalog with a documented fallback
//		• Rendering: an engine-neutral scene, a terminal turntable, a window viewer
//		• Export: JSON, Wavefront OBJ, SVG and a static HTML gallery
//
// Packages:
//
//	helix/    Params, Generate, Geometry and the radius laws (no I/O)
//	catalog/  strand-count metadata, embedded YAML table
//	scene/    palette, markers, cylinders, lights, camera, turntable
//	export/   JSON / OBJ / SVG encoders
//	site/     static HTML pages with inline SVG
//	preview/  tcell rasterizer and render loop
//	cmd/      helixgen, helixterm, helixview
//
// Cross-section of a four-strand helix (Paired) and a six-strand one (Radial):
//
//	    1                 1   2
//	    │               \ │ /
//	2 ──┼── 0        3 ── ● ── 0
//	    │               / │ \
//	    3                 4   5
//
// Quick start:
//
//	g, err := helix.Generate(helix.DefaultParams(5))
//	if err != nil { /* errors.Is(err, helix.ErrConfiguration) */ }
//	_ = export.Encode(os.Stdout, g, export.FormatOBJ)
//
//	go install github.com/katalvlaran/lvhelix/cmd/helixgen@latest
package lvhelix
