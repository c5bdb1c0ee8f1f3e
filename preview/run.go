// SPDX-License-Identifier: MIT
// Package: lvhelix/preview
//
// run.go - tcell render loop.
//
// Contract:
//   • Run owns neither the screen's lifecycle nor the terminal: the caller
//     calls Init before and Fini after. Fini also releases the event reader.
//   • One goroutine reads events; all drawing happens on the calling goroutine.
//   • Run returns nil when the user quits and ctx.Err() when ctx ends first.

package preview

import (
	"context"
	"fmt"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/katalvlaran/lvhelix/helix"
	"github.com/katalvlaran/lvhelix/scene"
)

// DefaultFramePeriod is ~30 frames per second.
const DefaultFramePeriod = 33 * time.Millisecond

// Zoom factors per key press.
const (
	zoomIn  = 0.9
	zoomOut = 1 / zoomIn
)

// Options tunes Run.
type Options struct {
	FramePeriod time.Duration  // ≤ 0 selects DefaultFramePeriod
	Scene       []scene.Option // forwarded to scene.Build
	StatusLine  bool           // reserve the last row for a key legend
}

// action is what a key press asks the loop to do.
type action int

const (
	actNone action = iota
	actQuit
	actToggle
	actReset
	actZoomIn
	actZoomOut
)

// keyAction maps a key (and its rune for KeyRune) onto an action.
func keyAction(key tcell.Key, r rune) action {
	switch key {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return actQuit
	case tcell.KeyRune:
		switch r {
		case 'q', 'Q':
			return actQuit
		case ' ':
			return actToggle
		case 'r', 'R':
			return actReset
		case '+', '=':
			return actZoomIn
		case '-', '_':
			return actZoomOut
		}
	}

	return actNone
}

// viewer is the mutable state of one Run.
type viewer struct {
	screen tcell.Screen
	sc     *scene.Scene
	home   scene.Camera
	tt     *scene.Turntable
	frame  *Frame
	status string
	legend bool
}

// Run animates g on screen until ctx is done or the user quits.
func Run(ctx context.Context, screen tcell.Screen, g *helix.Geometry, opts Options) error {
	sc, err := scene.Build(g, opts.Scene...)
	if err != nil {
		return fmt.Errorf("Run: %w", err)
	}
	period := opts.FramePeriod
	if period <= 0 {
		period = DefaultFramePeriod
	}

	v := &viewer{
		screen: screen,
		sc:     sc,
		home:   sc.Camera,
		tt:     sc.NewTurntable(),
		frame:  NewFrame(0, 0),
		legend: opts.StatusLine,
		status: fmt.Sprintf(" %d strands · %s · space pause · r reset · +/- zoom · q quit",
			g.Params.StrandCount, g.Mode),
	}

	events := make(chan tcell.Event, 16)
	done := make(chan struct{})
	defer close(done)
	go func() {
		for {
			ev := screen.PollEvent()
			if ev == nil {
				return // screen finalized
			}
			select {
			case events <- ev:
			case <-done:
				return
			}
		}
	}()

	ticker := time.NewTicker(period)
	defer ticker.Stop()

	v.draw()
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()

		case ev := <-events:
			if !v.handle(ev) {
				return nil
			}

		case <-ticker.C:
			v.tt.Step()
			v.draw()
		}
	}
}

// handle applies one event and reports whether the loop should continue.
func (v *viewer) handle(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		return v.apply(keyAction(ev.Key(), ev.Rune()))
	case *tcell.EventResize:
		v.screen.Sync()
	}

	return true
}

// apply performs a and reports whether the loop should continue.
func (v *viewer) apply(a action) bool {
	switch a {
	case actQuit:
		return false
	case actToggle:
		v.tt.Toggle()
	case actReset:
		v.tt.Reset()
		v.sc.Camera = v.home
	case actZoomIn:
		v.sc.Camera = v.sc.Camera.Zoom(zoomIn)
	case actZoomOut:
		v.sc.Camera = v.sc.Camera.Zoom(zoomOut)
	}

	return true
}

// draw renders the current angle and flushes it to the screen.
func (v *viewer) draw() {
	w, h := v.screen.Size()
	rows := h
	if v.legend && rows > 1 {
		rows--
	}
	if v.frame.Width != w || v.frame.Height != rows {
		v.frame = NewFrame(w, rows)
	}
	RasterizeInto(v.frame, v.sc, v.tt.Angle())

	v.screen.Clear()
	Draw(v.screen, v.frame, tcell.StyleDefault.Background(tcellColor(v.sc.Background)))
	if v.legend && h > 1 {
		style := tcell.StyleDefault.Foreground(tcell.ColorGray)
		for x, r := range []rune(v.status) {
			if x >= w {
				break
			}
			v.screen.SetContent(x, h-1, r, nil, style)
		}
	}
	v.screen.Show()
}

// Draw copies f onto screen at the origin using base for empty cells.
func Draw(screen tcell.Screen, f *Frame, base tcell.Style) {
	for y := 0; y < f.Height; y++ {
		for x := 0; x < f.Width; x++ {
			c := f.At(x, y)
			if c.Rune == 0 {
				screen.SetContent(x, y, ' ', nil, base)
				continue
			}
			screen.SetContent(x, y, c.Rune, nil, base.Foreground(tcellColor(c.Color)))
		}
	}
}

func tcellColor(c scene.Color) tcell.Color {
	r, g, b := c.Channels()

	return tcell.NewRGBColor(int32(r), int32(g), int32(b))
}
