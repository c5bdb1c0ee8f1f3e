// SPDX-License-Identifier: MIT
// Package: lvhelix/preview
//
// keys_test.go - key bindings and viewer state transitions.

package preview

import (
	"testing"

	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvhelix/helix"
	"github.com/katalvlaran/lvhelix/scene"
)

func TestKeyAction(t *testing.T) {
	cases := []struct {
		name string
		key  tcell.Key
		r    rune
		want action
	}{
		{"Escape", tcell.KeyEscape, 0, actQuit},
		{"CtrlC", tcell.KeyCtrlC, 0, actQuit},
		{"q", tcell.KeyRune, 'q', actQuit},
		{"Space", tcell.KeyRune, ' ', actToggle},
		{"r", tcell.KeyRune, 'r', actReset},
		{"Plus", tcell.KeyRune, '+', actZoomIn},
		{"Equals", tcell.KeyRune, '=', actZoomIn},
		{"Minus", tcell.KeyRune, '-', actZoomOut},
		{"Other", tcell.KeyRune, 'x', actNone},
		{"Enter", tcell.KeyEnter, 0, actNone},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, keyAction(tc.key, tc.r))
		})
	}
}

func TestViewer_Apply(t *testing.T) {
	g, err := helix.Generate(helix.DefaultParams(4))
	require.NoError(t, err)
	sc, err := scene.Build(g)
	require.NoError(t, err)

	v := &viewer{sc: sc, home: sc.Camera, tt: sc.NewTurntable()}

	v.tt.Step()
	assert.True(t, v.apply(actToggle))
	assert.False(t, v.tt.Running())

	assert.True(t, v.apply(actZoomIn))
	assert.InDelta(t, 38*zoomIn, v.sc.Camera.Distance(), 1e-9)
	assert.True(t, v.apply(actZoomOut))
	assert.True(t, v.apply(actZoomOut))
	assert.Greater(t, v.sc.Camera.Distance(), 38.0)

	assert.True(t, v.apply(actReset))
	assert.Zero(t, v.tt.Angle())
	assert.Equal(t, v.home, v.sc.Camera)

	assert.True(t, v.apply(actNone))
	assert.False(t, v.apply(actQuit))
}
