// SPDX-License-Identifier: MIT
// Package: lvhelix/catalog
//
// catalog.go - loading and lookup.
//
// Contract:
//   • Load validates the whole table up front; a Table is immutable afterwards.
//   • Lookup is total: unknown counts get a deterministic fallback entry.
//   • Default parses the embedded table once and shares it (read-only).

package catalog

import (
	"bytes"
	_ "embed"
	"fmt"
	"io"
	"math"
	"sort"
	"sync"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/lvhelix/helix"
)

//go:embed strands.yaml
var embeddedTable []byte

// Fallback labels for strand counts outside the table.
const (
	fallbackType      = "Multi-Strand Complex"
	fallbackHelixTurn = "Complex geometry"
	fallbackSubtitle  = "Higher-order multi-strand structure"
	fallbackAccent    = "gray"

	// diameterPerRadius converts scene radius units into the nominal nm label.
	diameterPerRadius = 2.5
)

// Table is an immutable strand-count → Entry mapping.
type Table struct {
	entries map[int]Entry
	counts  []int // ascending
}

// Load parses a YAML sequence of entries from r and validates it.
func Load(r io.Reader) (*Table, error) {
	var list []Entry
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&list); err != nil {
		return nil, fmt.Errorf("Load: decode: %v: %w", err, ErrBadTable)
	}

	return newTable(list)
}

var defaultTable = sync.OnceValues(func() (*Table, error) {
	return Load(bytes.NewReader(embeddedTable))
})

// Default returns the embedded 2..12 strand table.
func Default() (*Table, error) {
	return defaultTable()
}

// newTable indexes list and enforces the table invariants.
func newTable(list []Entry) (*Table, error) {
	if len(list) == 0 {
		return nil, fmt.Errorf("Load: empty table: %w", ErrBadTable)
	}

	t := &Table{entries: make(map[int]Entry, len(list))}
	for i, e := range list {
		if e.Strands < 1 {
			return nil, fmt.Errorf("Load: entry %d: strands=%d < 1: %w", i, e.Strands, ErrBadTable)
		}
		if e.Name == "" {
			return nil, fmt.Errorf("Load: entry %d (strands=%d): missing name: %w", i, e.Strands, ErrBadTable)
		}
		if _, dup := t.entries[e.Strands]; dup {
			return nil, fmt.Errorf("Load: entry %d: duplicate strands=%d: %w", i, e.Strands, ErrBadTable)
		}
		t.entries[e.Strands] = e
		t.counts = append(t.counts, e.Strands)
	}
	sort.Ints(t.counts)

	return t, nil
}

// Counts returns the strand counts present in the table, ascending.
func (t *Table) Counts() []int {
	out := make([]int, len(t.counts))
	copy(out, t.counts)
	return out
}

// Entry returns the stored entry for n without falling back.
func (t *Table) Entry(n int) (Entry, error) {
	e, ok := t.entries[n]
	if !ok {
		return Entry{}, fmt.Errorf("Entry: strands=%d: %w", n, ErrNoEntry)
	}

	return e, nil
}

// Lookup returns the entry for n, or the fallback entry when n is not in the
// table. The fallback diameter is derived from the reference radius for n.
func (t *Table) Lookup(n int) Entry {
	if e, ok := t.entries[n]; ok {
		return e
	}

	return FallbackEntry(n)
}

// FallbackEntry synthesizes the entry used for strand counts outside a table.
func FallbackEntry(n int) Entry {
	radius := helix.ScaledRadius(helix.DefaultBaseRadius, n)

	return Entry{
		Strands:        n,
		Name:           fmt.Sprintf("%d-Strand DNA", n),
		Subtitle:       fallbackSubtitle,
		Accent:         fallbackAccent,
		ScientificType: fallbackType,
		HelixTurn:      fallbackHelixTurn,
		Diameter:       fmt.Sprintf("~%d nm", int(math.Floor(radius/diameterPerRadius+0.5))),
		Description:    fmt.Sprintf("Higher-order DNA structure with %d strands arranged in a symmetric pattern.", n),
		Fallback:       true,
	}
}
