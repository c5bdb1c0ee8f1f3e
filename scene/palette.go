// SPDX-License-Identifier: MIT
// Package: lvhelix/scene
//
// palette.go - strand colours.

package scene

import (
	"fmt"
)

// Color is a 0xRRGGBB value. It implements image/color.Color (fully opaque)
// so renderers can pass it straight to their drawing APIs.
type Color uint32

// RGBA implements color.Color.
func (c Color) RGBA() (r, g, b, a uint32) {
	r8, g8, b8 := c.Channels()
	r = uint32(r8) * 0x101
	g = uint32(g8) * 0x101
	b = uint32(b8) * 0x101
	return r, g, b, 0xffff
}

// Channels splits c into its 8-bit red, green and blue components.
func (c Color) Channels() (r, g, b uint8) {
	return uint8(c >> 16), uint8(c >> 8), uint8(c)
}

// Hex returns the CSS form "#rrggbb".
func (c Color) Hex() string {
	return fmt.Sprintf("#%06x", uint32(c)&0xffffff)
}

// Emissive returns the glow tint of c: each channel masked to 0x33.
func (c Color) Emissive() Color {
	return c & emissiveMask
}

// Scale multiplies every channel by f (clamped to [0,1]).
func (c Color) Scale(f float64) Color {
	if f <= 0 {
		return 0
	}
	if f >= 1 {
		return c
	}
	r, g, b := c.Channels()
	mul := func(v uint8) Color { return Color(float64(v)*f + 0.5) }
	return mul(r)<<16 | mul(g)<<8 | mul(b)
}

const emissiveMask Color = 0x333333

// Palette is the default strand colour cycle.
var Palette = []Color{
	0x00ff00, // green
	0x0000ff, // blue
	0xff8000, // orange
	0x8000ff, // purple
	0xff0080, // pink
	0x80ff00, // lime
	0x0080ff, // sky
	0xff00ff, // magenta
	0x00ffff, // cyan
	0xffff00, // yellow
	0xff4444, // light red
	0x44ff44, // light green
}

// Fixed colours.
const (
	ConnectorColor  Color = 0xff0000
	BackgroundColor Color = 0x0a0a0a
)

// StrandColor returns Palette[s mod len(Palette)]. Negative s maps to the
// first entry.
func StrandColor(s int) Color {
	return paletteColor(Palette, s)
}

func paletteColor(p []Color, s int) Color {
	if s < 0 {
		s = 0
	}
	return p[s%len(p)]
}
