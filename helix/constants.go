// Package helix defines shared constants so defaults and policy thresholds are
// named once and reused by the generator, the options and the tests.
package helix

//-----------------------------------------------------------------------------
// Method names used as error context prefixes.
//-----------------------------------------------------------------------------

const (
	// MethodGenerate is the canonical name for Generate.
	MethodGenerate = "Generate"
	// MethodParseAxis is the canonical name for ParseAxis.
	MethodParseAxis = "ParseAxis"
)

//-----------------------------------------------------------------------------
// Input bounds
//-----------------------------------------------------------------------------

// MinStrandCount is the smallest accepted strand count. A single strand is a
// degenerate helix: one backbone and no connectors.
const MinStrandCount = 1

// MinSegments is the smallest accepted segment count (two samples per strand).
const MinSegments = 1

// Upper bounds keep every allocation Generate makes finite and int-sized.
const (
	// MaxStrandCount is the largest accepted strand count.
	MaxStrandCount = 1 << 12
	// MaxSegments is the largest accepted segment count.
	MaxSegments = 1 << 20
	// MaxBasePairSections caps Turns·basePairsPerTurn in Paired mode.
	MaxBasePairSections = 1 << 20
	// MaxSamples caps StrandCount·(Segments+1) backbone points and the
	// number of base-pair connectors.
	MaxSamples = 1 << 24
)

//-----------------------------------------------------------------------------
// Default geometry (the reference page layout)
//-----------------------------------------------------------------------------

const (
	// DefaultBaseRadius is the radius of a double helix before strand scaling.
	DefaultBaseRadius = 5.0
	// DefaultHeight is the axial extent of the reference layout.
	DefaultHeight = 40.0
	// DefaultTurns is the number of full rotations over DefaultHeight.
	DefaultTurns = 3.0
	// DefaultSegments is the number of backbone intervals per strand.
	DefaultSegments = 150
)

//-----------------------------------------------------------------------------
// Connection policy
//-----------------------------------------------------------------------------

// DefaultPairingThreshold is the largest strand count that still uses Paired
// connectors; larger counts switch to Radial.
const DefaultPairingThreshold = 4

// DefaultBasePairsPerTurn is the number of Paired cross-sections per turn.
const DefaultBasePairsPerTurn = 10

// Radial stride policy: coarser cross-sections once the helix gets crowded.
const (
	radialStrideSparse = 6 // StrandCount ≤ radialCrowdedAbove
	radialStrideDense  = 8 // StrandCount > radialCrowdedAbove
	radialCrowdedAbove = 8
)

// autoStride marks "derive the radial stride from StrandCount".
const autoStride = 0
