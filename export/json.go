// SPDX-License-Identifier: MIT
// Package: lvhelix/export
//
// json.go - plain JSON document.
//
// Vectors are [x, y, z] arrays; enums are their String() names. The document
// carries the resolved policy values so a consumer can tell how connectors
// were laid out without re-deriving them.

package export

import (
	"encoding/json"
	"io"

	"gonum.org/v1/gonum/spatial/r3"

	"github.com/katalvlaran/lvhelix/helix"
)

// Document is the JSON shape of a Geometry.
type Document struct {
	Params           ParamsDoc      `json:"params"`
	Mode             string         `json:"mode"`
	Axis             string         `json:"axis"`
	PairingThreshold int            `json:"pairing_threshold"`
	BasePairsPerTurn int            `json:"base_pairs_per_turn,omitempty"`
	RadialStride     int            `json:"radial_stride,omitempty"`
	Strands          [][][3]float64 `json:"strands"`
	Connectors       []ConnectorDoc `json:"connectors"`
	Hubs             []HubDoc       `json:"hubs"`
}

// ParamsDoc mirrors helix.Params.
type ParamsDoc struct {
	StrandCount int     `json:"strand_count"`
	Radius      float64 `json:"radius"`
	Height      float64 `json:"height"`
	Turns       float64 `json:"turns"`
	Segments    int     `json:"segments"`
}

// ConnectorDoc mirrors helix.Connector. StrandB and Hub use -1 for "none".
type ConnectorDoc struct {
	Kind    string     `json:"kind"`
	StrandA int        `json:"strand_a"`
	StrandB int        `json:"strand_b"`
	Index   int        `json:"index"`
	Section int        `json:"section"`
	Hub     int        `json:"hub"`
	T       float64    `json:"t"`
	From    [3]float64 `json:"from"`
	To      [3]float64 `json:"to"`
}

// HubDoc mirrors helix.Hub.
type HubDoc struct {
	Section  int        `json:"section"`
	Index    int        `json:"index"`
	T        float64    `json:"t"`
	Position [3]float64 `json:"position"`
}

// NewDocument converts g into its JSON shape.
func NewDocument(g *helix.Geometry) Document {
	p := g.Params
	doc := Document{
		Params: ParamsDoc{
			StrandCount: p.StrandCount,
			Radius:      p.Radius,
			Height:      p.Height,
			Turns:       p.Turns,
			Segments:    p.Segments,
		},
		Mode:             g.Mode.String(),
		Axis:             g.Axis.String(),
		PairingThreshold: g.PairingThreshold,
		BasePairsPerTurn: g.BasePairsPerTurn,
		RadialStride:     g.RadialStride,
		Strands:          make([][][3]float64, len(g.Strands)),
		Connectors:       make([]ConnectorDoc, len(g.Connectors)),
		Hubs:             make([]HubDoc, len(g.Hubs)),
	}

	for s, pts := range g.Strands {
		line := make([][3]float64, len(pts))
		for i, pt := range pts {
			line[i] = triple(pt.Position)
		}
		doc.Strands[s] = line
	}
	for i, c := range g.Connectors {
		doc.Connectors[i] = ConnectorDoc{
			Kind:    c.Kind.String(),
			StrandA: c.StrandA,
			StrandB: c.StrandB,
			Index:   c.Index,
			Section: c.Section,
			Hub:     c.Hub,
			T:       c.T,
			From:    triple(c.From),
			To:      triple(c.To),
		}
	}
	for i, h := range g.Hubs {
		doc.Hubs[i] = HubDoc{Section: h.Section, Index: h.Index, T: h.T, Position: triple(h.Position)}
	}

	return doc
}

// EncodeJSON writes g as an indented Document.
func EncodeJSON(w io.Writer, g *helix.Geometry) error {
	if g == nil {
		return ErrNilGeometry
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")

	return enc.Encode(NewDocument(g))
}

func triple(v r3.Vec) [3]float64 {
	return [3]float64{v.X, v.Y, v.Z}
}
