// SPDX-License-Identifier: MIT
// Package: lvhelix/catalog
//
// errors.go - sentinel errors for the catalog package.

package catalog

import (
	"errors"
)

// ErrBadTable indicates a metadata table that cannot be used: unparsable
// YAML, an empty table, a strand count below 1, a duplicate count or an
// entry without a name.
var ErrBadTable = errors.New("catalog: invalid table")

// ErrNoEntry indicates a strand count that has no stored entry.
// Lookup never returns it; it falls back instead.
var ErrNoEntry = errors.New("catalog: no entry for strand count")
