// Package export serialises a helix.Geometry to files other tools read:
// JSON for data pipelines, Wavefront OBJ line records for 3D packages and
// an orthographic SVG side view for documents and web pages.
//
// All encoders are deterministic: the same Geometry always produces the same
// bytes.
package export
