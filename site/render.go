// SPDX-License-Identifier: MIT
// Package: lvhelix/site
//
// render.go - one page through html/template.

package site

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"io"

	"github.com/katalvlaran/lvhelix/catalog"
	"github.com/katalvlaran/lvhelix/export"
	"github.com/katalvlaran/lvhelix/helix"
)

//go:embed templates/page.html
var templateFS embed.FS

var pageTemplate = template.Must(template.ParseFS(templateFS, "templates/page.html"))

// Inline SVG size on each page.
const (
	svgWidth  = 480
	svgHeight = 640
)

type navItem struct {
	Strands  int
	Name     string
	Subtitle string
	Accent   string
	File     string
	Active   bool
}

type pageData struct {
	Title  string
	Entry  catalog.Entry
	Nav    []navItem
	Mode   string
	Counts helix.Counts
	SVG    template.HTML
}

// Render writes the page for strand count n to w. n need not be part of
// cfg.Counts; the sidebar then has no active entry.
func Render(w io.Writer, cfg Config, n int) error {
	cfg, err := cfg.resolve(MethodRender)
	if err != nil {
		return err
	}
	if err := renderPage(w, cfg, n); err != nil {
		return fmt.Errorf("%s: %w", MethodRender, err)
	}

	return nil
}

// renderPage expects a resolved cfg.
func renderPage(w io.Writer, cfg Config, n int) error {
	p := cfg.Params(n)
	p.StrandCount = n
	g, err := helix.Generate(p, cfg.Options...)
	if err != nil {
		return fmt.Errorf("strands=%d: %w", n, err)
	}

	entry := cfg.Catalog.Lookup(n)

	var svg bytes.Buffer
	opt := export.SVGOptions{Width: svgWidth, Height: svgHeight, Title: entry.Name, Background: true}
	if err := export.EncodeSVG(&svg, g, opt); err != nil {
		return fmt.Errorf("strands=%d: %w", n, err)
	}

	data := pageData{
		Title:  cfg.Title,
		Entry:  entry,
		Nav:    navigation(cfg, n),
		Mode:   g.Mode.String(),
		Counts: g.Counts(),
		// EncodeSVG escapes the only caller-supplied text (the title).
		SVG: template.HTML(svg.String()),
	}
	if err := pageTemplate.Execute(w, data); err != nil {
		return fmt.Errorf("strands=%d: %w", n, err)
	}

	return nil
}

func navigation(cfg Config, active int) []navItem {
	items := make([]navItem, len(cfg.Counts))
	for i, n := range cfg.Counts {
		e := cfg.Catalog.Lookup(n)
		items[i] = navItem{
			Strands:  n,
			Name:     e.Name,
			Subtitle: e.Subtitle,
			Accent:   e.Accent,
			File:     FileName(cfg.Counts, n),
			Active:   n == active,
		}
	}

	return items
}
