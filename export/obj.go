// SPDX-License-Identifier: MIT
// Package: lvhelix/export
//
// obj.go - Wavefront OBJ line geometry.
//
// Layout:
//   • one object "strand_<s>" per backbone: its vertices then one "l" record
//     through all of them;
//   • object "connectors": two vertices and one 2-point "l" per connector;
//   • object "hubs" (Radial only): one vertex and one "p" record per hub.
// Vertex indices are 1-based and global, as OBJ requires.

package export

import (
	"bufio"
	"fmt"
	"io"
	"strconv"

	"gonum.org/v1/gonum/spatial/r3"

	"github.com/katalvlaran/lvhelix/helix"
)

// objWriter tracks the running vertex index and the first write error.
type objWriter struct {
	w    *bufio.Writer
	next int // index the next vertex will get
	err  error
}

func (o *objWriter) printf(format string, args ...any) {
	if o.err != nil {
		return
	}
	_, o.err = fmt.Fprintf(o.w, format, args...)
}

func (o *objWriter) vertex(v r3.Vec) int {
	o.printf("v %s %s %s\n", objFloat(v.X), objFloat(v.Y), objFloat(v.Z))
	o.next++
	return o.next - 1
}

// EncodeOBJ writes g as OBJ polylines.
func EncodeOBJ(w io.Writer, g *helix.Geometry) error {
	if g == nil {
		return ErrNilGeometry
	}
	o := &objWriter{w: bufio.NewWriter(w), next: 1}

	p := g.Params
	o.printf("# lvhelix: %d strands, mode %s, axis %s\n", p.StrandCount, g.Mode, g.Axis)
	o.printf("# radius %s height %s turns %s segments %d\n",
		objFloat(p.Radius), objFloat(p.Height), objFloat(p.Turns), p.Segments)

	for s, pts := range g.Strands {
		o.printf("o strand_%d\n", s)
		first := o.next
		for _, pt := range pts {
			o.vertex(pt.Position)
		}
		o.printf("l")
		for i := range pts {
			o.printf(" %d", first+i)
		}
		o.printf("\n")
	}

	if len(g.Connectors) > 0 {
		o.printf("o connectors\n")
		for _, c := range g.Connectors {
			a := o.vertex(c.From)
			b := o.vertex(c.To)
			o.printf("l %d %d\n", a, b)
		}
	}

	if len(g.Hubs) > 0 {
		o.printf("o hubs\n")
		for _, h := range g.Hubs {
			o.printf("p %d\n", o.vertex(h.Position))
		}
	}

	if o.err != nil {
		return o.err
	}

	return o.w.Flush()
}

// objFloat formats with the shortest exact representation.
func objFloat(f float64) string {
	return strconv.FormatFloat(f, 'g', -1, 64)
}
