// SPDX-License-Identifier: MIT
// Package: lvhelix/scene
//
// scene_test.go - primitive counts, styling rules, camera and turntable.

package scene_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/spatial/r3"

	"github.com/katalvlaran/lvhelix/helix"
	"github.com/katalvlaran/lvhelix/scene"
)

func buildScene(t *testing.T, n int, opts ...scene.Option) *scene.Scene {
	t.Helper()
	g, err := helix.Generate(helix.DefaultParams(n))
	require.NoError(t, err)
	sc, err := scene.Build(g, opts...)
	require.NoError(t, err)
	return sc
}

func TestBuild_NilGeometry(t *testing.T) {
	_, err := scene.Build(nil)
	assert.ErrorIs(t, err, scene.ErrNilGeometry)
}

func TestBuild_DoubleHelix(t *testing.T) {
	sc := buildScene(t, 2)

	require.Len(t, sc.Backbones, 2)
	assert.Equal(t, scene.Color(0x00ff00), sc.Backbones[0].Color)
	assert.Equal(t, scene.Color(0x0000ff), sc.Backbones[1].Color)
	assert.Len(t, sc.Backbones[0].Points, 151)

	// 0, 3, ..., 150 → 51 markers per strand.
	assert.Len(t, sc.Markers, 102)
	for _, m := range sc.Markers {
		assert.Equal(t, 0.4, m.Radius)
		assert.Equal(t, m.Color.Emissive(), m.Emissive)
	}

	require.Len(t, sc.Cylinders, 30)
	for _, c := range sc.Cylinders {
		assert.Equal(t, helix.BasePair, c.Kind)
		assert.Equal(t, 0.15, c.Radius)
		assert.Equal(t, scene.ConnectorColor, c.Color)
	}
	assert.Empty(t, sc.Hubs)

	assert.Len(t, sc.Lights, 6) // 4 fixed + 2 point
	assert.InDelta(t, 34.0, sc.Camera.Distance(), 1e-12)
	assert.Equal(t, scene.BackgroundColor, sc.Background)
}

func TestBuild_DenseRadial(t *testing.T) {
	sc := buildScene(t, 9)

	// Marker stride 4: 0..148 → 38 per strand.
	assert.Len(t, sc.Markers, 9*38)
	assert.Equal(t, 0.3, sc.Markers[0].Radius)

	// Radial stride 8: 0..144 → 19 sections.
	require.Len(t, sc.Hubs, 19)
	assert.Len(t, sc.Cylinders, 19*9)
	for _, c := range sc.Cylinders {
		assert.Equal(t, helix.Spoke, c.Kind)
		assert.Equal(t, 0.08, c.Radius)
	}
	for _, h := range sc.Hubs {
		assert.Equal(t, 0.25, h.Radius)
		assert.Equal(t, helix.NoStrand, h.Strand)
	}

	assert.Len(t, sc.Lights, 8) // point lights capped at 4
	assert.InDelta(t, 48.0, sc.Camera.Distance(), 1e-12)
}

func TestBuild_MarkerThresholds(t *testing.T) {
	seven := buildScene(t, 7)
	assert.Len(t, seven.Markers, 7*38)
	assert.Equal(t, 0.4, seven.Markers[0].Radius)

	six := buildScene(t, 6)
	assert.Len(t, six.Markers, 6*51)

	custom := buildScene(t, 2, scene.WithMarkerStride(50))
	assert.Len(t, custom.Markers, 2*4) // 0, 50, 100, 150
}

func TestBuild_PaletteCycles(t *testing.T) {
	sc := buildScene(t, 12)
	for s, line := range sc.Backbones {
		assert.Equal(t, scene.Palette[s], line.Color)
	}
	assert.Equal(t, scene.Palette[0], scene.StrandColor(12))
	assert.Equal(t, scene.ConnectorColor, sc.StrandColor(12))

	mono := buildScene(t, 3, scene.WithPalette(0x123456))
	for _, line := range mono.Backbones {
		assert.Equal(t, scene.Color(0x123456), line.Color)
	}
}

func TestColor(t *testing.T) {
	c := scene.Color(0xff8000)
	assert.Equal(t, "#ff8000", c.Hex())
	assert.Equal(t, scene.Color(0x330000), c.Emissive())
	assert.Equal(t, scene.Color(0x003300), scene.Color(0x44ff44).Emissive())
	assert.Equal(t, scene.Color(0x804000), c.Scale(0.5))
	assert.Equal(t, scene.Color(0), c.Scale(-1))
	assert.Equal(t, c, c.Scale(2))

	r, g, b, a := c.RGBA()
	assert.Equal(t, uint32(0xffff), r)
	assert.Equal(t, uint32(0x8080), g)
	assert.Equal(t, uint32(0), b)
	assert.Equal(t, uint32(0xffff), a)
}

func TestCamera_Project(t *testing.T) {
	cam := buildScene(t, 2).Camera
	const w, h = 800.0, 600.0

	x, y, depth, ok := cam.Project(r3.Vec{}, w, h)
	require.True(t, ok)
	assert.InDelta(t, w/2, x, 1e-9)
	assert.InDelta(t, h/2, y, 1e-9)
	assert.InDelta(t, 34.0, depth, 1e-9)

	x, y, _, ok = cam.Project(r3.Vec{X: 1, Y: 1}, w, h)
	require.True(t, ok)
	assert.Greater(t, x, w/2)
	assert.Less(t, y, h/2)

	// Closer points spread further from the centre.
	xNear, _, _, _ := cam.Project(r3.Vec{X: 1, Z: 10}, w, h)
	xFar, _, _, _ := cam.Project(r3.Vec{X: 1, Z: -10}, w, h)
	assert.Greater(t, xNear, xFar)

	_, _, _, ok = cam.Project(r3.Vec{Z: 40}, w, h)
	assert.False(t, ok, "behind the camera")
}

func TestCamera_Zoom(t *testing.T) {
	cam := buildScene(t, 2).Camera
	assert.InDelta(t, 150.0, cam.Zoom(100).Distance(), 1e-9)
	assert.InDelta(t, 20.0, cam.Zoom(0.01).Distance(), 1e-9)
	assert.InDelta(t, 68.0, cam.Zoom(2).Distance(), 1e-9)
	assert.Equal(t, cam, cam.Zoom(0))
}

func TestCamera_FramesAxisZ(t *testing.T) {
	g, err := helix.Generate(helix.DefaultParams(2), helix.WithAxis(helix.AxisZ))
	require.NoError(t, err)
	sc, err := scene.Build(g)
	require.NoError(t, err)

	assert.InDelta(t, -34.0, sc.Camera.Position.Y, 1e-12)
	assert.Equal(t, r3.Vec{Z: 1}, sc.Axis)
}

func TestTurntable(t *testing.T) {
	sc := buildScene(t, 2)
	tt := sc.NewTurntable()
	require.True(t, tt.Running())

	assert.InDelta(t, 0.005, tt.Step(), 1e-15)
	assert.InDelta(t, 0.010, tt.Step(), 1e-15)

	assert.False(t, tt.Toggle())
	assert.InDelta(t, 0.010, tt.Step(), 1e-15)
	assert.True(t, tt.Toggle())

	tt.Reset()
	assert.Equal(t, 0.0, tt.Angle())
	assert.True(t, tt.Running())

	v := r3.Vec{X: 3, Y: 2, Z: 1}
	assert.Equal(t, v, tt.Apply(v))
}

func TestTurntable_ApplyPreservesAxisComponent(t *testing.T) {
	tt := scene.NewTurntable(r3.Vec{Y: 2}, math.Pi/2)
	tt.Step()

	v := r3.Vec{X: 1, Y: 7}
	got := tt.Apply(v)
	assert.InDelta(t, 7.0, got.Y, 1e-12)
	assert.InDelta(t, 0.0, got.X, 1e-12)
	assert.InDelta(t, 1.0, math.Abs(got.Z), 1e-12)
}

func TestTurntable_Wraps(t *testing.T) {
	tt := scene.NewTurntable(r3.Vec{}, 4)
	tt.Step()
	assert.InDelta(t, 8-2*math.Pi, tt.Step(), 1e-12)
	assert.Equal(t, r3.Vec{Y: 1}, tt.Axis)
}

func TestOptions_Panic(t *testing.T) {
	assert.Panics(t, func() { scene.WithPalette() })
	assert.Panics(t, func() { scene.WithMarkerStride(0) })
	assert.Panics(t, func() { scene.WithRotationRate(-0.1) })
	assert.Panics(t, func() { scene.WithRotationRate(math.NaN()) })
	assert.NotPanics(t, func() { scene.WithRotationRate(0) })
}
