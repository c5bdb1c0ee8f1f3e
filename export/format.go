// SPDX-License-Identifier: MIT
// Package: lvhelix/export
//
// format.go - output formats and the Encode dispatcher.

package export

import (
	"fmt"
	"io"
	"strings"

	"github.com/katalvlaran/lvhelix/helix"
)

// Format selects an encoder.
type Format int

const (
	FormatJSON Format = iota
	FormatOBJ
	FormatSVG
)

// Method names used in wrapped errors.
const (
	MethodEncode      = "Encode"
	MethodParseFormat = "ParseFormat"
)

var formatNames = [...]string{
	FormatJSON: "json",
	FormatOBJ:  "obj",
	FormatSVG:  "svg",
}

// String returns the lower-case format name, which is also its file extension.
func (f Format) String() string {
	if f < 0 || int(f) >= len(formatNames) {
		return "unknown"
	}
	return formatNames[f]
}

// Extension returns ".json", ".obj" or ".svg".
func (f Format) Extension() string {
	return "." + f.String()
}

// ParseFormat accepts a format name or extension, case-insensitively.
func ParseFormat(s string) (Format, error) {
	name := strings.TrimPrefix(strings.ToLower(strings.TrimSpace(s)), ".")
	for f, n := range formatNames {
		if n == name {
			return Format(f), nil
		}
	}

	return 0, fmt.Errorf("%s: %q: %w", MethodParseFormat, s, ErrUnknownFormat)
}

// Encode writes g to w in format f.
func Encode(w io.Writer, g *helix.Geometry, f Format) error {
	if g == nil {
		return fmt.Errorf("%s: %w", MethodEncode, ErrNilGeometry)
	}

	var err error
	switch f {
	case FormatJSON:
		err = EncodeJSON(w, g)
	case FormatOBJ:
		err = EncodeOBJ(w, g)
	case FormatSVG:
		err = EncodeSVG(w, g, DefaultSVGOptions())
	default:
		return fmt.Errorf("%s: format=%d: %w", MethodEncode, int(f), ErrUnknownFormat)
	}
	if err != nil {
		return fmt.Errorf("%s: %s: %w", MethodEncode, f, err)
	}

	return nil
}
