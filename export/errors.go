// SPDX-License-Identifier: MIT
// Package: lvhelix/export
//
// errors.go - sentinel errors for the export package.

package export

import (
	"errors"
)

var (
	// ErrUnknownFormat is returned for format names or values Encode does not support.
	ErrUnknownFormat = errors.New("export: unknown format")

	// ErrNilGeometry is returned when an encoder is handed a nil Geometry.
	ErrNilGeometry = errors.New("export: nil geometry")
)
