// SPDX-License-Identifier: MIT
// Package: lvhelix/catalog
//
// catalog_test.go - table loading, validation and fallback behaviour.

package catalog_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvhelix/catalog"
)

func TestDefault_CoversTwoToTwelve(t *testing.T) {
	tbl, err := catalog.Default()
	require.NoError(t, err)

	assert.Equal(t, []int{2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12}, tbl.Counts())

	for _, n := range tbl.Counts() {
		e := tbl.Lookup(n)
		assert.Equal(t, n, e.Strands)
		assert.False(t, e.Fallback, "n=%d", n)
		assert.NotEmpty(t, e.Name, "n=%d", n)
		assert.NotEmpty(t, e.ScientificType, "n=%d", n)
		assert.NotEmpty(t, e.KeyPoints, "n=%d", n)
		assert.True(t, e.HasSpiritual(), "n=%d", n)
	}

	double := tbl.Lookup(2)
	assert.Equal(t, "Double Helix", double.Name)
	assert.Equal(t, "B-DNA", double.ScientificType)

	quad := tbl.Lookup(4)
	assert.Equal(t, "G-Quadruplex", quad.Name)
	assert.Equal(t, "Tetraplex", quad.ScientificType)
}

func TestDefault_Shared(t *testing.T) {
	a, err := catalog.Default()
	require.NoError(t, err)
	b, err := catalog.Default()
	require.NoError(t, err)
	assert.Same(t, a, b)
}

func TestLookup_Fallback(t *testing.T) {
	tbl, err := catalog.Default()
	require.NoError(t, err)

	e := tbl.Lookup(20)
	assert.True(t, e.Fallback)
	assert.Equal(t, 20, e.Strands)
	assert.Equal(t, "20-Strand DNA", e.Name)
	assert.Equal(t, "Multi-Strand Complex", e.ScientificType)
	assert.Equal(t, "Complex geometry", e.HelixTurn)
	assert.Equal(t, "~6 nm", e.Diameter) // 5*sqrt(10)/2.5 = 6.32
	assert.Equal(t, "Higher-order DNA structure with 20 strands arranged in a symmetric pattern.", e.Description)
	assert.False(t, e.HasSpiritual())

	assert.Equal(t, "~2 nm", tbl.Lookup(1).Diameter) // radius clamps at the base
	assert.Equal(t, "~5 nm", tbl.Lookup(13).Diameter)
}

func TestEntry_Strict(t *testing.T) {
	tbl, err := catalog.Default()
	require.NoError(t, err)

	e, err := tbl.Entry(5)
	require.NoError(t, err)
	assert.Equal(t, "Pentaplex", e.Name)

	_, err = tbl.Entry(13)
	assert.ErrorIs(t, err, catalog.ErrNoEntry)
}

func TestCounts_ReturnsCopy(t *testing.T) {
	tbl, err := catalog.Load(strings.NewReader("- {strands: 3, name: c}\n- {strands: 1, name: a}\n"))
	require.NoError(t, err)

	counts := tbl.Counts()
	assert.Equal(t, []int{1, 3}, counts)
	counts[0] = 99
	assert.Equal(t, []int{1, 3}, tbl.Counts())
}

func TestLoad_Rejects(t *testing.T) {
	cases := []struct {
		name string
		doc  string
	}{
		{"Empty", "[]\n"},
		{"ZeroStrands", "- {strands: 0, name: x}\n"},
		{"NegativeStrands", "- {strands: -2, name: x}\n"},
		{"MissingName", "- {strands: 3}\n"},
		{"Duplicate", "- {strands: 3, name: a}\n- {strands: 3, name: b}\n"},
		{"UnknownField", "- {strands: 3, name: a, colour: red}\n"},
		{"NotASequence", "strands: 3\n"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := catalog.Load(strings.NewReader(tc.doc))
			assert.ErrorIs(t, err, catalog.ErrBadTable)
		})
	}
}

func TestLoad_KeyPoints(t *testing.T) {
	doc := `
- strands: 2
  name: Pair
  key_points:
    - one
    - two
`
	tbl, err := catalog.Load(strings.NewReader(doc))
	require.NoError(t, err)

	e := tbl.Lookup(2)
	assert.Equal(t, []string{"one", "two"}, e.KeyPoints)
	assert.False(t, e.HasSpiritual())
}
