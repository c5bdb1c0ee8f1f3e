package main

import (
	"fmt"
	"image/color"
	"math"
	"sort"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"gonum.org/v1/gonum/spatial/r3"

	"github.com/katalvlaran/lvhelix/scene"
)

const (
	strandWidth = 2
	zoomStep    = 0.9
	minShade    = 0.35
)

// viewer implements ebiten.Game.
type viewer struct {
	sc   *scene.Scene
	home scene.Camera
	tt   *scene.Turntable

	reach         float64 // bounding-sphere radius of the backbones, for depth shading
	width, height int
	prevKey       map[ebiten.Key]bool

	items []drawItem // reused between frames
}

// drawItem is one projected primitive, painted back to front.
type drawItem struct {
	depth  float64
	line   bool
	x0, y0 float32
	x1, y1 float32
	radius float32
	width  float32
	col    color.Color
}

func newViewer(sc *scene.Scene) *viewer {
	reach := 0.0
	for _, b := range sc.Backbones {
		for _, p := range b.Points {
			reach = math.Max(reach, r3.Norm(p))
		}
	}

	return &viewer{
		reach:   reach,
		sc:      sc,
		home:    sc.Camera,
		tt:      sc.NewTurntable(),
		width:   windowWidth,
		height:  windowHeight,
		prevKey: map[ebiten.Key]bool{},
	}
}

func (v *viewer) justPressed(k ebiten.Key) bool {
	pressed := ebiten.IsKeyPressed(k)
	jp := pressed && !v.prevKey[k]
	v.prevKey[k] = pressed
	return jp
}

func (v *viewer) Update() error {
	if v.justPressed(ebiten.KeyEscape) || v.justPressed(ebiten.KeyQ) {
		return ebiten.Termination
	}
	if v.justPressed(ebiten.KeySpace) {
		v.tt.Toggle()
	}
	if v.justPressed(ebiten.KeyR) {
		v.tt.Reset()
		v.sc.Camera = v.home
	}
	if v.justPressed(ebiten.KeyEqual) || v.justPressed(ebiten.KeyKPAdd) {
		v.sc.Camera = v.sc.Camera.Zoom(zoomStep)
	}
	if v.justPressed(ebiten.KeyMinus) || v.justPressed(ebiten.KeyKPSubtract) {
		v.sc.Camera = v.sc.Camera.Zoom(1 / zoomStep)
	}
	if _, dy := ebiten.Wheel(); dy != 0 {
		v.sc.Camera = v.sc.Camera.Zoom(math.Pow(zoomStep, dy))
	}

	v.tt.Step()
	return nil
}

func (v *viewer) Draw(screen *ebiten.Image) {
	screen.Fill(v.sc.Background)

	v.collect()
	for _, it := range v.items {
		if it.line {
			vector.StrokeLine(screen, it.x0, it.y0, it.x1, it.y1, it.width, it.col, true)
			continue
		}
		vector.DrawFilledCircle(screen, it.x0, it.y0, it.radius, it.col, true)
	}

	state := "spinning"
	if !v.tt.Running() {
		state = "paused"
	}
	ebitenutil.DebugPrintAt(screen, fmt.Sprintf("%d strands · %s · %s · %.0f fps",
		v.sc.Strands, v.sc.Mode, state, ebiten.ActualFPS()), 12, 12)
}

func (v *viewer) Layout(outsideWidth, outsideHeight int) (int, int) {
	v.width, v.height = outsideWidth, outsideHeight
	return outsideWidth, outsideHeight
}

// collect projects every primitive for the current angle and sorts the
// result far to near (painter's algorithm).
func (v *viewer) collect() {
	v.items = v.items[:0]
	rot := v.tt.Rotation()
	cam := v.sc.Camera
	w, h := float64(v.width), float64(v.height)
	focal := h / 2 / math.Tan(cam.FOV*math.Pi/360)
	near, far := cam.Distance()-v.reach, cam.Distance()+v.reach

	shade := func(c scene.Color, depth float64) color.Color {
		if far <= near {
			return c
		}
		t := math.Min(math.Max((depth-near)/(far-near), 0), 1)
		return c.Scale(1 - t*(1-minShade))
	}
	seg := func(a, b r3.Vec, width float64, c scene.Color) {
		ax, ay, ad, aok := cam.Project(rot.Rotate(a), w, h)
		bx, by, bd, bok := cam.Project(rot.Rotate(b), w, h)
		if !aok || !bok {
			return
		}
		d := (ad + bd) / 2
		v.items = append(v.items, drawItem{
			depth: d, line: true,
			x0: float32(ax), y0: float32(ay), x1: float32(bx), y1: float32(by),
			width: float32(width), col: shade(c, d),
		})
	}
	dot := func(p r3.Vec, radius float64, c scene.Color) {
		x, y, d, ok := cam.Project(rot.Rotate(p), w, h)
		if !ok {
			return
		}
		v.items = append(v.items, drawItem{
			depth: d, x0: float32(x), y0: float32(y),
			radius: float32(math.Max(1, radius*focal/d)), col: shade(c, d),
		})
	}

	for _, c := range v.sc.Cylinders {
		seg(c.From, c.To, math.Max(1, c.Radius*focal/cam.Distance()), c.Color)
	}
	for _, hub := range v.sc.Hubs {
		dot(hub.Center, hub.Radius, hub.Color)
	}
	for _, b := range v.sc.Backbones {
		for i := 1; i < len(b.Points); i++ {
			seg(b.Points[i-1], b.Points[i], strandWidth, b.Color)
		}
	}
	for _, m := range v.sc.Markers {
		dot(m.Center, m.Radius, m.Color)
	}

	sort.SliceStable(v.items, func(i, j int) bool { return v.items[i].depth > v.items[j].depth })
}
