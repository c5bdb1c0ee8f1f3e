// Package scene turns a helix.Geometry into an engine-neutral render
// description: coloured backbone polylines, marker spheres, connector
// cylinders, hub spheres, lights and a perspective camera.
//
// Nothing here draws. Renderers (the terminal preview, the ebiten viewer,
// the SVG exporter) walk a Scene and map each primitive onto their own
// drawing calls. The only animation is a Turntable, a constant-rate
// rotation about the helix axis.
//
//	g, _ := helix.Generate(helix.DefaultParams(5))
//	sc, _ := scene.Build(g)
//	tt := sc.NewTurntable()
//	x, y, depth, ok := sc.Camera.Project(tt.Apply(p), 800, 600)
package scene
