// SPDX-License-Identifier: MIT
// Package: lvhelix/export
//
// export_test.go - format parsing and per-encoder structure checks.

package export_test

import (
	"bufio"
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvhelix/export"
	"github.com/katalvlaran/lvhelix/helix"
)

func generate(t *testing.T, n int) *helix.Geometry {
	t.Helper()
	g, err := helix.Generate(helix.DefaultParams(n))
	require.NoError(t, err)
	return g
}

func TestParseFormat(t *testing.T) {
	cases := map[string]export.Format{
		"json":  export.FormatJSON,
		"JSON":  export.FormatJSON,
		".obj":  export.FormatOBJ,
		" svg ": export.FormatSVG,
	}
	for in, want := range cases {
		got, err := export.ParseFormat(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}

	_, err := export.ParseFormat("png")
	assert.ErrorIs(t, err, export.ErrUnknownFormat)
	_, err = export.ParseFormat("")
	assert.ErrorIs(t, err, export.ErrUnknownFormat)
}

func TestFormat_Names(t *testing.T) {
	assert.Equal(t, "json", export.FormatJSON.String())
	assert.Equal(t, ".svg", export.FormatSVG.Extension())
	assert.Equal(t, "unknown", export.Format(9).String())
}

func TestEncode_Errors(t *testing.T) {
	var buf bytes.Buffer
	assert.ErrorIs(t, export.Encode(&buf, nil, export.FormatJSON), export.ErrNilGeometry)
	assert.ErrorIs(t, export.Encode(&buf, generate(t, 2), export.Format(7)), export.ErrUnknownFormat)
	assert.Zero(t, buf.Len())
}

func TestEncode_JSON(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, export.Encode(&buf, generate(t, 2), export.FormatJSON))

	var doc export.Document
	require.NoError(t, json.Unmarshal(buf.Bytes(), &doc))

	assert.Equal(t, 2, doc.Params.StrandCount)
	assert.Equal(t, 150, doc.Params.Segments)
	assert.Equal(t, "paired", doc.Mode)
	assert.Equal(t, "y", doc.Axis)
	assert.Equal(t, 10, doc.BasePairsPerTurn)
	assert.Zero(t, doc.RadialStride)
	require.Len(t, doc.Strands, 2)
	assert.Len(t, doc.Strands[0], 151)
	require.Len(t, doc.Connectors, 30)
	assert.Empty(t, doc.Hubs)

	first := doc.Connectors[0]
	assert.Equal(t, "base_pair", first.Kind)
	assert.Equal(t, 1, first.StrandB)
	assert.Equal(t, helix.NoHub, first.Hub)
	assert.Equal(t, [3]float64{5, -20, 0}, first.From)

	assert.NotContains(t, buf.String(), "radial_stride")
	assert.Contains(t, buf.String(), `"hubs": []`)
}

func TestEncode_JSONRadial(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, export.Encode(&buf, generate(t, 5), export.FormatJSON))

	var doc export.Document
	require.NoError(t, json.Unmarshal(buf.Bytes(), &doc))
	assert.Equal(t, "radial", doc.Mode)
	assert.Equal(t, 6, doc.RadialStride)
	assert.Len(t, doc.Hubs, 26)
	assert.Len(t, doc.Connectors, 130)
	assert.Equal(t, "spoke", doc.Connectors[0].Kind)
	assert.Equal(t, helix.NoStrand, doc.Connectors[0].StrandB)
}

// objRecords counts lines by their leading record keyword.
func objRecords(t *testing.T, data []byte) map[string]int {
	t.Helper()
	counts := map[string]int{}
	sc := bufio.NewScanner(bytes.NewReader(data))
	sc.Buffer(make([]byte, 0, 64*1024), 1<<20)
	for sc.Scan() {
		if f := strings.Fields(sc.Text()); len(f) > 0 {
			counts[f[0]]++
		}
	}
	require.NoError(t, sc.Err())
	return counts
}

func TestEncode_OBJPaired(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, export.Encode(&buf, generate(t, 2), export.FormatOBJ))

	rec := objRecords(t, buf.Bytes())
	assert.Equal(t, 2*151+2*30, rec["v"])
	assert.Equal(t, 2+30, rec["l"])
	assert.Equal(t, 3, rec["o"])
	assert.Zero(t, rec["p"])

	out := buf.String()
	assert.True(t, strings.HasPrefix(out, "# lvhelix: 2 strands, mode paired, axis y\n"))
	assert.Contains(t, out, "o strand_0\nv 5 -20 0\n")
	assert.Contains(t, out, "\nl 1 2 3 ")
	assert.Contains(t, out, "\nl 303 304\n") // first connector after 302 backbone vertices
}

func TestEncode_OBJRadial(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, export.Encode(&buf, generate(t, 5), export.FormatOBJ))

	rec := objRecords(t, buf.Bytes())
	assert.Equal(t, 5*151+130*2+26, rec["v"])
	assert.Equal(t, 5+130, rec["l"])
	assert.Equal(t, 26, rec["p"])
	assert.Equal(t, 7, rec["o"])
}

func TestEncode_SVG(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, export.Encode(&buf, generate(t, 5), export.FormatSVG))

	out := buf.String()
	assert.True(t, strings.HasPrefix(out, `<svg xmlns="http://www.w3.org/2000/svg" width="480" height="640"`))
	assert.True(t, strings.HasSuffix(out, "</svg>\n"))
	assert.Contains(t, out, "<title>5-strand helix</title>")
	assert.Contains(t, out, `fill="#0a0a0a"`)
	assert.Equal(t, 5, strings.Count(out, "<polyline "))
	assert.Equal(t, 130, strings.Count(out, "<line "))
	assert.Equal(t, 26, strings.Count(out, "<circle "))
	assert.Contains(t, out, `stroke="#ff0080"`) // strand 4
	assert.Contains(t, out, `stroke-width="0.08"`)
}

func TestEncodeSVG_Options(t *testing.T) {
	var buf bytes.Buffer
	opt := export.SVGOptions{Title: `a<b`, Background: false}
	require.NoError(t, export.EncodeSVG(&buf, generate(t, 2), opt))

	out := buf.String()
	assert.Contains(t, out, `width="480" height="640"`)
	assert.Contains(t, out, "<title>a&lt;b</title>")
	assert.NotContains(t, out, "<rect ")
	assert.NotContains(t, out, "<circle ")
}

func TestEncode_Deterministic(t *testing.T) {
	for _, f := range []export.Format{export.FormatJSON, export.FormatOBJ, export.FormatSVG} {
		var a, b bytes.Buffer
		require.NoError(t, export.Encode(&a, generate(t, 7), f))
		require.NoError(t, export.Encode(&b, generate(t, 7), f))
		assert.Equal(t, a.Bytes(), b.Bytes(), f.String())
	}
}
