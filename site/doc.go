// Package site renders a static HTML gallery with one page per strand count.
//
// Each page carries a sidebar linking every page (the current one marked
// active), the structure information panel from the catalog and an inline
// SVG side view of the generated helix. Pages are self-contained: no scripts,
// no external stylesheets, no network fetches.
package site
