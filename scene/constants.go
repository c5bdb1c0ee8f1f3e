// SPDX-License-Identifier: MIT
// Package: lvhelix/scene
//
// constants.go - render defaults.

package scene

// Marker spheres and connector primitives.
const (
	markerStrideSparse = 3
	markerStrideDense  = 4 // when strands > markerCrowdedAbove
	markerCrowdedAbove = 6
	markerRadiusLarge  = 0.4
	markerRadiusSmall  = 0.3 // when strands > markerShrinkAbove
	markerShrinkAbove  = 8
	autoMarkerStride   = 0
	basePairRadius     = 0.15
	spokeRadius        = 0.08
	hubRadius          = 0.25
)

// Camera and orbit limits.
const (
	CameraBaseDistance = 30.0
	CameraPerStrand    = 2.0
	CameraMinDistance  = 20.0
	CameraMaxDistance  = 150.0
	CameraFOV          = 75.0 // vertical, degrees
	CameraNear         = 0.1
	CameraFar          = 1000.0
	FogNear            = 50.0
	FogFar             = 200.0
)

// Lighting.
const (
	maxPointLights      = 4
	pointLightOrbit     = 15.0
	pointLightLift      = 10.0
	pointLightIntensity = 0.4
	pointLightRange     = 60.0
)

// DefaultRotationRate is the turntable step in radians per frame.
const DefaultRotationRate = 0.005

// MethodBuild names Build in wrapped errors.
const MethodBuild = "Build"
