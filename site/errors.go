// SPDX-License-Identifier: MIT
// Package: lvhelix/site
//
// errors.go - sentinel errors for the site package.

package site

import (
	"errors"
)

// ErrBadConfig indicates an unusable Config: no strand counts, a count
// below 1, a duplicate count or an empty output directory.
var ErrBadConfig = errors.New("site: invalid config")
