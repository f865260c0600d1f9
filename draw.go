package main

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/jakecoffman/cp"
	"github.com/milk9111/hammerjam/arena"
	"github.com/milk9111/hammerjam/common"
	"github.com/milk9111/hammerjam/ecs/component"
	"github.com/milk9111/hammerjam/nav"
	"golang.org/x/image/colornames"
)

const pixelsPerUnit = 32

var (
	backgroundColor = color.RGBA{R: 0x1c, G: 0x1f, B: 0x26, A: 0xff}
	meshColor       = color.RGBA{R: 0x3a, G: 0x44, B: 0x55, A: 0xff}
	smackColor      = color.RGBA{R: 0xff, G: 0xd2, B: 0x4a, A: 0xff}
	beamColor       = color.RGBA{R: 0xff, G: 0x30, B: 0x30, A: 0xff}
)

// view maps the ground plane to the screen, looking down with the camera's
// yaw pointing up.
type view struct {
	unrotate cp.Vector
	cx, cy   float64
}

func newView(cameraYaw float64) view {
	return view{
		unrotate: common.Forward(-cameraYaw),
		cx:       common.BaseWidth / 2,
		cy:       common.BaseHeight / 2,
	}
}

func (v view) project(x, z float64) (float32, float32) {
	p := cp.Vector{X: x, Y: z}.Rotate(v.unrotate)
	return float32(v.cx + p.X*pixelsPerUnit), float32(v.cy - p.Y*pixelsPerUnit)
}

func (v view) along(x, z, yaw, length float64) (float32, float32) {
	end := cp.Vector{X: x, Y: z}.Add(common.Forward(yaw).Mult(length))
	return v.project(end.X, end.Y)
}

func drawMesh(screen *ebiten.Image, v view, mesh *nav.Mesh) {
	if mesh == nil {
		return
	}
	for _, tri := range mesh.Triangles() {
		for i := range tri {
			a, b := tri[i], tri[(i+1)%3]
			ax, ay := v.project(a.X, a.Y)
			bx, by := v.project(b.X, b.Y)
			vector.StrokeLine(screen, ax, ay, bx, by, 1, meshColor, true)
		}
	}
}

func drawSnapshot(screen *ebiten.Image, v view, snap arena.Snapshot) {
	for _, m := range snap.Markers {
		x, y := v.project(m.X, m.Z)
		r := float32(m.Radius * pixelsPerUnit)
		if m.Kind == "smack" {
			c := smackColor
			c.A = uint8(200 * (1 - m.Progress))
			vector.FillCircle(screen, x, y, r*float32(0.5+0.5*m.Progress), c, true)
			continue
		}
		vector.StrokeCircle(screen, x, y, r, 2, colornames.Mediumpurple, true)
		vector.FillCircle(screen, x, y, r*float32(m.Progress), colornames.Rebeccapurple, true)
	}

	for _, e := range snap.Enemies {
		c := enemyColor(e.Kind)
		if e.Flash {
			c = colornames.White
		}
		drawActor(screen, v, e, c)
		if e.Beam > 0 {
			x, y := v.project(e.X, e.Z)
			bx, by := v.along(e.X, e.Z, e.Yaw, e.Beam)
			vector.StrokeLine(screen, x, y, bx, by, 3, beamColor, true)
		}
	}

	if p := snap.Player; p != nil {
		drawActor(screen, v, *p, colornames.Steelblue)
		if p.Swing > 0 {
			hx, hy := v.along(p.X, p.Z, p.Yaw, 2*p.Swing)
			x, y := v.project(p.X, p.Z)
			vector.StrokeLine(screen, x, y, hx, hy, 4, colornames.Burlywood, true)
		}
	}
}

func enemyColor(kind string) color.Color {
	switch component.EnemyKind(kind) {
	case component.KindEyeball:
		return colornames.Indianred
	case component.KindFlockSphere:
		return colornames.Mediumseagreen
	}
	return colornames.Gray
}

func drawActor(screen *ebiten.Image, v view, a arena.Actor, c color.Color) {
	x, y := v.project(a.X, a.Z)
	scale := a.Scale
	if scale <= 0 {
		scale = 1
	}
	r := float32(a.Radius * scale * pixelsPerUnit)
	vector.FillCircle(screen, x, y, r, c, true)

	fx, fy := v.along(a.X, a.Z, a.Yaw, a.Radius*scale)
	vector.StrokeLine(screen, x, y, fx, fy, 2, colornames.White, true)

	if a.Total > 0 {
		drawHealthBar(screen, x, y-r-8, a)
	}
}

func drawHealthBar(screen *ebiten.Image, cx, top float32, a arena.Actor) {
	const w, h = 40, 5
	left := cx - w/2
	vector.FillRect(screen, left, top, w, h, colornames.Black, false)
	vector.FillRect(screen, left, top, w*fraction(a.Last, a.Total), h, colornames.Gold, false)
	vector.FillRect(screen, left, top, w*fraction(a.Current, a.Total), h, colornames.Limegreen, false)
	vector.StrokeRect(screen, left, top, w, h, 1, colornames.Dimgray, false)
}

func fraction(v, total float64) float32 {
	if total <= 0 {
		return 0
	}
	return float32(common.Clamp01(v / total))
}
