// SPDX-License-Identifier: MIT
// Package: lvhelix/helix
//
// types.go - public data model: inputs (Params), derived entities
// (StrandPoint, Connector, Hub) and the assembled Geometry.

package helix

import (
	"fmt"
	"strings"

	"gonum.org/v1/gonum/spatial/r3"
)

// ConnectionMode selects how strands are tied together at a cross-section.
// It is derived from StrandCount, never supplied by the caller.
type ConnectionMode int

const (
	// Paired links each strand to the point opposite it (angle + π).
	Paired ConnectionMode = iota
	// Radial links every strand to a shared hub on the axis.
	Radial
)

// String returns the lower-case mode name.
func (m ConnectionMode) String() string {
	switch m {
	case Paired:
		return "paired"
	case Radial:
		return "radial"
	default:
		return "unknown"
	}
}

// ConnectorKind distinguishes strand-to-strand rungs from strand-to-hub spokes.
type ConnectorKind int

const (
	// BasePair is a rung between two opposite points of one cross-section.
	BasePair ConnectorKind = iota
	// Spoke is a segment from a strand point to the axial hub.
	Spoke
)

// String returns the lower-case kind name.
func (k ConnectorKind) String() string {
	switch k {
	case BasePair:
		return "base_pair"
	case Spoke:
		return "spoke"
	default:
		return "unknown"
	}
}

// Axis names the coordinate axis the helix winds around.
type Axis int

const (
	// AxisY winds around Y; strands rotate in the XZ plane.
	AxisY Axis = iota
	// AxisZ winds around Z; strands rotate in the XY plane.
	AxisZ
	// AxisX winds around X; strands rotate in the YZ plane.
	AxisX
)

// String returns "x", "y" or "z".
func (a Axis) String() string {
	switch a {
	case AxisX:
		return "x"
	case AxisY:
		return "y"
	case AxisZ:
		return "z"
	default:
		return "unknown"
	}
}

// ParseAxis accepts "x", "y" or "z" (any case).
func ParseAxis(s string) (Axis, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "x":
		return AxisX, nil
	case "y":
		return AxisY, nil
	case "z":
		return AxisZ, nil
	}

	return AxisY, fmt.Errorf("%s: axis %q: %w", MethodParseAxis, s, ErrConfiguration)
}

// NoStrand marks a connector endpoint that does not coincide with any strand.
const NoStrand = -1

// NoHub marks a connector that is not attached to a hub.
const NoHub = -1

// Params is the immutable input of one Generate call.
type Params struct {
	StrandCount int     // number of strands; ≥ 1
	Radius      float64 // distance from the axis to each strand; > 0
	Height      float64 // total axial extent; > 0
	Turns       float64 // full rotations over Height; > 0
	Segments    int     // backbone samples minus one; > 0
}

// StrandPoint is one sampled backbone position.
type StrandPoint struct {
	Strand   int     // 0-based strand index
	Index    int     // segment index in [0, Segments]
	T        float64 // normalized axial position in [0,1]
	Angle    float64 // T*Turns*2π + Strand*2π/StrandCount
	Position r3.Vec
}

// Connector is a straight segment tying a strand to its partner or to a hub.
//
// Paired: StrandB is the partner strand when the opposite angle lands on one
// (even StrandCount), otherwise NoStrand. Hub is NoHub.
// Radial: StrandB is NoStrand, Hub indexes Geometry.Hubs, To is the hub position.
type Connector struct {
	Kind    ConnectorKind
	StrandA int
	StrandB int
	Index   int // base-pair index (Paired) or segment index (Radial)
	Section int // ordinal of the cross-section that emitted this connector
	Hub     int
	T       float64
	From    r3.Vec
	To      r3.Vec
}

// Length returns the Euclidean length of the connector.
func (c Connector) Length() float64 {
	return r3.Norm(r3.Sub(c.To, c.From))
}

// Hub is a point on the helix axis shared by the spokes of one cross-section.
type Hub struct {
	Section  int
	Index    int // segment index the hub was sampled at
	T        float64
	Position r3.Vec
}

// Geometry is the complete, renderer-neutral description of one helix.
// It is produced fresh by Generate and never mutated afterwards.
type Geometry struct {
	Params Params
	Mode   ConnectionMode
	Axis   Axis

	// Resolved policy values the connectors were built with.
	PairingThreshold int
	BasePairsPerTurn int // Paired mode only
	RadialStride     int // Radial mode only

	Strands    [][]StrandPoint
	Connectors []Connector
	Hubs       []Hub
}
