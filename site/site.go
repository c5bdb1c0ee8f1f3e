// SPDX-License-Identifier: MIT
// Package: lvhelix/site
//
// site.go - Config, page naming and Build.
//
// Contract:
//   • Pages are emitted in Config.Counts order; the first is index.html.
//   • Every page is fully rendered in memory before anything is written, so a
//     geometry or template failure leaves dir untouched.
//   • Output is deterministic for a given Config.

package site

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"

	"github.com/katalvlaran/lvhelix/catalog"
	"github.com/katalvlaran/lvhelix/helix"
)

// Method names used in wrapped errors.
const (
	MethodBuild  = "Build"
	MethodRender = "Render"
)

// IndexFile is the file name of the first page.
const IndexFile = "index.html"

// DefaultTitle heads the sidebar.
const DefaultTitle = "DNA Studio"

// Config selects the pages and how each geometry is generated.
type Config struct {
	Counts  []int                  // strand counts, one page each, in navigation order
	Catalog *catalog.Table         // nil selects catalog.Default()
	Params  func(int) helix.Params // nil selects helix.DefaultParams
	Options []helix.Option         // passed to every helix.Generate call
	Title   string                 // sidebar heading; empty selects DefaultTitle
}

// DefaultConfig covers 2..12 strands with the reference layout.
func DefaultConfig() Config {
	counts := make([]int, 0, 11)
	for n := 2; n <= 12; n++ {
		counts = append(counts, n)
	}

	return Config{Counts: counts}
}

// Page describes one written file.
type Page struct {
	Strands int
	File    string // base name inside the output directory
	Name    string // catalog display name
	Size    int    // bytes written
}

// FileName returns the page file for count n: IndexFile when n is the first
// count, "<n>-strand.html" otherwise.
func FileName(counts []int, n int) string {
	if len(counts) > 0 && counts[0] == n {
		return IndexFile
	}

	return fmt.Sprintf("%d-strand.html", n)
}

// resolve validates cfg and fills defaults.
func (cfg Config) resolve(method string) (Config, error) {
	if len(cfg.Counts) == 0 {
		return cfg, fmt.Errorf("%s: no strand counts: %w", method, ErrBadConfig)
	}
	seen := make(map[int]bool, len(cfg.Counts))
	for _, n := range cfg.Counts {
		if n < helix.MinStrandCount {
			return cfg, fmt.Errorf("%s: strand count %d < %d: %w", method, n, helix.MinStrandCount, ErrBadConfig)
		}
		if seen[n] {
			return cfg, fmt.Errorf("%s: duplicate strand count %d: %w", method, n, ErrBadConfig)
		}
		seen[n] = true
	}

	if cfg.Catalog == nil {
		tbl, err := catalog.Default()
		if err != nil {
			return cfg, fmt.Errorf("%s: %w", method, err)
		}
		cfg.Catalog = tbl
	}
	if cfg.Params == nil {
		cfg.Params = helix.DefaultParams
	}
	if cfg.Title == "" {
		cfg.Title = DefaultTitle
	}

	return cfg, nil
}

// Build renders every page of cfg and writes them into dir, creating it if
// needed. It returns the written pages in navigation order.
func Build(dir string, cfg Config) ([]Page, error) {
	if dir == "" {
		return nil, fmt.Errorf("%s: empty output directory: %w", MethodBuild, ErrBadConfig)
	}
	cfg, err := cfg.resolve(MethodBuild)
	if err != nil {
		return nil, err
	}

	rendered := make([][]byte, len(cfg.Counts))
	for i, n := range cfg.Counts {
		var buf bytes.Buffer
		if err := renderPage(&buf, cfg, n); err != nil {
			return nil, fmt.Errorf("%s: %w", MethodBuild, err)
		}
		rendered[i] = buf.Bytes()
	}

	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("%s: %w", MethodBuild, err)
	}

	pages := make([]Page, len(cfg.Counts))
	for i, n := range cfg.Counts {
		file := FileName(cfg.Counts, n)
		if err := os.WriteFile(filepath.Join(dir, file), rendered[i], 0o644); err != nil {
			return nil, fmt.Errorf("%s: %w", MethodBuild, err)
		}
		pages[i] = Page{
			Strands: n,
			File:    file,
			Name:    cfg.Catalog.Lookup(n).Name,
			Size:    len(rendered[i]),
		}
	}

	return pages, nil
}
