// SPDX-License-Identifier: MIT
// Package: lvhelix/scene
//
// scene.go - Geometry → primitives.
//
// Contract:
//   • Build reads the Geometry only; the Scene holds copies of every point.
//   • One Polyline per strand, in strand order.
//   • One Cylinder per connector, in connector order; one hub Sphere per hub.
//   • Deterministic: same Geometry and options ⇒ identical Scene.

package scene

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/spatial/r3"

	"github.com/katalvlaran/lvhelix/helix"
)

// Polyline is a strand backbone.
type Polyline struct {
	Strand int
	Color  Color
	Points []r3.Vec
}

// Sphere is a marker on a backbone or a hub on the axis.
type Sphere struct {
	Strand   int // helix.NoStrand for hubs
	Center   r3.Vec
	Radius   float64
	Color    Color
	Emissive Color
}

// Cylinder is a connector rod.
type Cylinder struct {
	Kind   helix.ConnectorKind
	From   r3.Vec
	To     r3.Vec
	Radius float64
	Color  Color
}

// LightKind enumerates light sources.
type LightKind int

const (
	// Ambient lights every surface uniformly.
	Ambient LightKind = iota
	// Directional shines parallel rays from Position towards the origin.
	Directional
	// Point radiates from Position and fades out at Range.
	Point
)

// Light is one light source. Position is the direction origin for
// Directional lights; Range applies to Point lights only.
type Light struct {
	Kind      LightKind
	Color     Color
	Intensity float64
	Position  r3.Vec
	Range     float64
}

// Fog fades primitives linearly between Near and Far camera distance.
type Fog struct {
	Color     Color
	Near, Far float64
}

// Scene is everything a renderer needs to draw one helix.
type Scene struct {
	Strands    int
	Mode       helix.ConnectionMode
	Axis       r3.Vec // unit helix axis, turntable spin axis
	Backbones  []Polyline
	Markers    []Sphere
	Cylinders  []Cylinder
	Hubs       []Sphere
	Lights     []Light
	Camera     Camera
	Background Color
	Fog        Fog

	RotationRate float64
}

// Build maps g onto render primitives.
func Build(g *helix.Geometry, opts ...Option) (*Scene, error) {
	if g == nil {
		return nil, fmt.Errorf("%s: %w", MethodBuild, ErrNilGeometry)
	}
	cfg := newSceneConfig(opts...)
	n := len(g.Strands)
	axis := g.AxisVector()

	sc := &Scene{
		Strands:      n,
		Mode:         g.Mode,
		Axis:         axis,
		Camera:       newCamera(axis, CameraDistance(n)),
		Background:   BackgroundColor,
		Fog:          Fog{Color: BackgroundColor, Near: FogNear, Far: FogFar},
		RotationRate: cfg.rotationRate,
	}

	sc.Backbones, sc.Markers = buildBackbones(g, cfg)
	sc.Cylinders, sc.Hubs = buildConnectors(g)
	sc.Lights = buildLights(n, cfg.palette)

	return sc, nil
}

// NewTurntable returns a running turntable for this scene's axis and rate.
func (sc *Scene) NewTurntable() *Turntable {
	return NewTurntable(sc.Axis, sc.RotationRate)
}

// StrandColor returns the backbone colour of strand s, or ConnectorColor
// when s is out of range.
func (sc *Scene) StrandColor(s int) Color {
	if s < 0 || s >= len(sc.Backbones) {
		return ConnectorColor
	}

	return sc.Backbones[s].Color
}

// MarkerRadius returns the marker sphere radius for strandCount strands.
func MarkerRadius(strandCount int) float64 {
	if strandCount > markerShrinkAbove {
		return markerRadiusSmall
	}

	return markerRadiusLarge
}

func buildBackbones(g *helix.Geometry, cfg sceneConfig) ([]Polyline, []Sphere) {
	n := len(g.Strands)
	stride := cfg.markerStrideFor(n)
	radius := MarkerRadius(n)

	lines := make([]Polyline, n)
	var markers []Sphere
	for s := range g.Strands {
		col := paletteColor(cfg.palette, s)
		lines[s] = Polyline{Strand: s, Color: col, Points: g.Backbone(s)}
		for i := 0; i < len(g.Strands[s]); i += stride {
			markers = append(markers, Sphere{
				Strand:   s,
				Center:   g.Strands[s][i].Position,
				Radius:   radius,
				Color:    col,
				Emissive: col.Emissive(),
			})
		}
	}

	return lines, markers
}

func buildConnectors(g *helix.Geometry) ([]Cylinder, []Sphere) {
	cyl := make([]Cylinder, len(g.Connectors))
	for i, c := range g.Connectors {
		r := basePairRadius
		if c.Kind == helix.Spoke {
			r = spokeRadius
		}
		cyl[i] = Cylinder{Kind: c.Kind, From: c.From, To: c.To, Radius: r, Color: ConnectorColor}
	}

	var hubs []Sphere
	if len(g.Hubs) > 0 {
		hubs = make([]Sphere, len(g.Hubs))
		for i, h := range g.Hubs {
			hubs[i] = Sphere{
				Strand:   helix.NoStrand,
				Center:   h.Position,
				Radius:   hubRadius,
				Color:    ConnectorColor,
				Emissive: ConnectorColor.Emissive(),
			}
		}
	}

	return cyl, hubs
}

// buildLights returns ambient, key, fill and back lights followed by up to
// four coloured point lights on a circle around the helix.
func buildLights(n int, palette []Color) []Light {
	lights := []Light{
		{Kind: Ambient, Color: 0x404040, Intensity: 0.5},
		{Kind: Directional, Color: 0xffffff, Intensity: 1, Position: r3.Vec{X: 5, Y: 10, Z: 7.5}},
		{Kind: Directional, Color: 0x4caf50, Intensity: 0.3, Position: r3.Vec{X: -5, Y: -5, Z: -5}},
		{Kind: Directional, Color: 0x2196f3, Intensity: 0.3, Position: r3.Vec{Y: 5, Z: -10}},
	}

	count := min(n, maxPointLights)
	for i := 0; i < count; i++ {
		a := float64(i) / float64(count) * 2 * math.Pi
		lights = append(lights, Light{
			Kind:      Point,
			Color:     paletteColor(palette, i),
			Intensity: pointLightIntensity,
			Range:     pointLightRange,
			Position:  r3.Vec{X: math.Cos(a) * pointLightOrbit, Y: math.Sin(a) * pointLightOrbit, Z: pointLightLift},
		})
	}

	return lights
}
