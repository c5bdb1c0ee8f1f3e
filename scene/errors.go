// SPDX-License-Identifier: MIT
// Package: lvhelix/scene
//
// errors.go - sentinel errors for the scene package.

package scene

import (
	"errors"
)

// ErrNilGeometry is returned when Build is handed a nil Geometry.
var ErrNilGeometry = errors.New("scene: nil geometry")
