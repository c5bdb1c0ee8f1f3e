package main

import (
	"bytes"
	"flag"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvhelix/export"
	"github.com/katalvlaran/lvhelix/helix"
)

func TestRun_StdoutOBJ(t *testing.T) {
	var stdout, stderr bytes.Buffer
	require.NoError(t, run([]string{"-strands", "5", "-format", "obj"}, &stdout, &stderr))

	assert.True(t, strings.HasPrefix(stdout.String(), "# lvhelix: 5 strands, mode radial, axis y\n"))
	assert.Contains(t, stdout.String(), "\no hubs\n")
	assert.Contains(t, stderr.String(), "wrote geometry")
	assert.Contains(t, stderr.String(), "dest=stdout")
}

func TestRun_FileSVG(t *testing.T) {
	out := filepath.Join(t.TempDir(), "helix.svg")
	var stdout, stderr bytes.Buffer
	require.NoError(t, run([]string{"-strands", "3", "-format", "svg", "-axis", "z", "-out", out, "-v"}, &stdout, &stderr))

	data, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(data), "<svg "))
	assert.Zero(t, stdout.Len())
	assert.Contains(t, stderr.String(), "level=DEBUG msg=generated")
}

func TestRun_Site(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "public")
	var stdout, stderr bytes.Buffer
	require.NoError(t, run([]string{"-site", dir}, &stdout, &stderr))

	assert.FileExists(t, filepath.Join(dir, "index.html"))
	assert.FileExists(t, filepath.Join(dir, "12-strand.html"))
	assert.Contains(t, stderr.String(), "pages=11")
}

func TestRun_Errors(t *testing.T) {
	var stdout, stderr bytes.Buffer

	err := run([]string{"-format", "stl"}, &stdout, &stderr)
	assert.ErrorIs(t, err, export.ErrUnknownFormat)

	err = run([]string{"-strands", "0"}, &stdout, &stderr)
	assert.ErrorIs(t, err, helix.ErrConfiguration)

	err = run([]string{"-axis", "w"}, &stdout, &stderr)
	assert.ErrorIs(t, err, helix.ErrConfiguration)

	err = run([]string{"-law", "cubic"}, &stdout, &stderr)
	assert.ErrorContains(t, err, "unknown radius law")

	err = run([]string{"extra"}, &stdout, &stderr)
	assert.ErrorContains(t, err, "unexpected arguments")

	err = run([]string{"-h"}, &stdout, &stderr)
	assert.ErrorIs(t, err, flag.ErrHelp)
}

func TestOptions_Params(t *testing.T) {
	o := options{strands: 8, law: "linear", height: 40, turns: 3, segments: 150}
	p, err := o.params()
	require.NoError(t, err)
	assert.Equal(t, 10.0, p.Radius) // 5 · 8/4

	o.law = "sqrt"
	p, err = o.params()
	require.NoError(t, err)
	assert.InDelta(t, 10.0, p.Radius, 1e-12) // 5 · √4

	o.radius = 3
	p, err = o.params()
	require.NoError(t, err)
	assert.Equal(t, 3.0, p.Radius)
}

func TestRun_SiteFlags(t *testing.T) {
	var stdout, stderr bytes.Buffer

	dir := filepath.Join(t.TempDir(), "public")
	require.NoError(t, run([]string{"-site", dir, "-turns", "4", "-segments", "60", "-law", "linear"}, &stdout, &stderr))
	assert.FileExists(t, filepath.Join(dir, "index.html"))

	// Geometry flags reach every page.
	err := run([]string{"-site", t.TempDir(), "-segments", "0"}, &stdout, &stderr)
	assert.ErrorIs(t, err, helix.ErrConfiguration)

	err = run([]string{"-site", t.TempDir(), "-law", "cubic"}, &stdout, &stderr)
	assert.ErrorContains(t, err, "unknown radius law")

	for _, args := range [][]string{
		{"-strands", "5"},
		{"-radius", "3"},
		{"-format", "svg"},
		{"-out", "x.svg"},
	} {
		err = run(append([]string{"-site", t.TempDir()}, args...), &stdout, &stderr)
		assert.ErrorContains(t, err, "cannot be combined with -site", args[0])
	}
}

func TestWriteGeometry_RemovesPartialFile(t *testing.T) {
	out := filepath.Join(t.TempDir(), "helix.json")

	n, err := writeGeometry(out, nil, nil, export.FormatJSON)
	assert.ErrorIs(t, err, export.ErrNilGeometry)
	assert.Zero(t, n)
	assert.NoFileExists(t, out)

	g, err := helix.Generate(helix.DefaultParams(2))
	require.NoError(t, err)
	n, err = writeGeometry(out, nil, g, export.FormatJSON)
	require.NoError(t, err)
	info, err := os.Stat(out)
	require.NoError(t, err)
	assert.Equal(t, info.Size(), n)
}
