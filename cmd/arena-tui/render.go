package main

import (
	"fmt"
	"math"

	"github.com/gdamore/tcell/v2"
	"github.com/jakecoffman/cp"
	"github.com/milk9111/hammerjam/arena"
	"github.com/milk9111/hammerjam/common"
	"github.com/milk9111/hammerjam/ecs/component"
	"github.com/milk9111/hammerjam/nav"
)

type cell struct {
	r     rune
	style tcell.Style
}

// canvas is a character grid with the arena projected onto it. Row 0 is the
// status line.
type canvas struct {
	w, h  int
	cells []cell

	unrotate cp.Vector
	// cells per world unit; terminal cells are about twice as tall as wide
	sx, sy float64
}

func newCanvas(w, h int, cameraYaw, extent float64) *canvas {
	c := &canvas{w: w, h: h, cells: make([]cell, w*h), unrotate: common.Forward(-cameraYaw)}
	if extent <= 0 {
		extent = 1
	}
	c.sy = float64(h-2) / (2 * extent)
	c.sx = float64(w-1) / (2 * extent)
	if c.sx > 2*c.sy {
		c.sx = 2 * c.sy
	} else {
		c.sy = c.sx / 2
	}
	// tiny terminals still get a usable scale
	if c.sy < 0.1 {
		c.sx, c.sy = 0.2, 0.1
	}
	c.clear()
	return c
}

func (c *canvas) clear() {
	for i := range c.cells {
		c.cells[i] = cell{r: ' ', style: tcell.StyleDefault}
	}
}

func (c *canvas) project(p cp.Vector) (int, int) {
	v := p.Rotate(c.unrotate)
	x := int(math.Round(float64(c.w)/2 + v.X*c.sx))
	y := int(math.Round(float64(c.h+1)/2 - v.Y*c.sy))
	return x, y
}

func (c *canvas) unproject(x, y int) cp.Vector {
	v := cp.Vector{X: (float64(x) - float64(c.w)/2) / c.sx, Y: (float64(c.h+1)/2 - float64(y)) / c.sy}
	return v.Rotate(cp.Vector{X: c.unrotate.X, Y: -c.unrotate.Y})
}

func (c *canvas) set(x, y int, r rune, style tcell.Style) {
	if x < 0 || x >= c.w || y < 1 || y >= c.h {
		return
	}
	c.cells[y*c.w+x] = cell{r: r, style: style}
}

func (c *canvas) at(x, y int) rune {
	if x < 0 || x >= c.w || y < 0 || y >= c.h {
		return 0
	}
	return c.cells[y*c.w+x].r
}

func (c *canvas) text(x, y int, s string, style tcell.Style) {
	for i, r := range []rune(s) {
		if x+i >= c.w {
			return
		}
		c.cells[y*c.w+x+i] = cell{r: r, style: style}
	}
}

func (c *canvas) floor(mesh *nav.Mesh) {
	style := tcell.StyleDefault.Foreground(tcell.ColorDarkSlateGray)
	for y := 1; y < c.h; y++ {
		for x := 0; x < c.w; x++ {
			if mesh.Contains(c.unproject(x, y)) {
				c.set(x, y, '.', style)
			}
		}
	}
}

func (c *canvas) ring(center cp.Vector, radius float64, r rune, style tcell.Style) {
	steps := int(math.Max(12, radius*c.sx*4))
	for i := 0; i < steps; i++ {
		p := center.Add(cp.ForAngle(common.Tau * float64(i) / float64(steps)).Mult(radius))
		x, y := c.project(p)
		c.set(x, y, r, style)
	}
}

func (c *canvas) line(from cp.Vector, yaw, length float64, r rune, style tcell.Style) {
	dir := common.Forward(yaw)
	step := 1 / (2 * c.sx)
	for d := step; d <= length; d += step {
		x, y := c.project(from.Add(dir.Mult(d)))
		c.set(x, y, r, style)
	}
}

// draw renders one snapshot, status line included.
func (c *canvas) draw(snap arena.Snapshot, mesh *nav.Mesh, best float64) {
	c.clear()
	if mesh != nil {
		c.floor(mesh)
	}

	for _, m := range snap.Markers {
		center := cp.Vector{X: m.X, Y: m.Z}
		if m.Kind == "smack" {
			c.ring(center, m.Radius*(0.5+0.5*m.Progress), 'o', tcell.StyleDefault.Foreground(tcell.ColorYellow))
			continue
		}
		c.ring(center, m.Radius, '+', tcell.StyleDefault.Foreground(tcell.ColorPurple))
	}

	for _, e := range snap.Enemies {
		pos := cp.Vector{X: e.X, Y: e.Z}
		if e.Beam > 0 {
			c.line(pos, e.Yaw, e.Beam, '*', tcell.StyleDefault.Foreground(tcell.ColorRed))
		}
		x, y := c.project(pos)
		style := healthStyle(e)
		if e.Flash {
			style = style.Reverse(true)
		}
		c.set(x, y, enemyGlyph(e.Kind), style)
	}

	if p := snap.Player; p != nil {
		pos := cp.Vector{X: p.X, Y: p.Z}
		if p.Swing > 0 {
			c.line(pos, p.Yaw, 2*p.Swing, '=', tcell.StyleDefault.Foreground(tcell.ColorTan))
		}
		x, y := c.project(pos)
		c.set(x, y, '@', healthStyle(*p).Bold(true))
	}

	health := 0.0
	if snap.Player != nil {
		health = snap.Player.Current
	}
	status := fmt.Sprintf(" time %5.1fs  kills %3d  health %4.0f  best %5.1fs  enemies %d", snap.Survived, snap.Kills, health, best, len(snap.Enemies))
	if snap.Over {
		status += "  RUN OVER: r restart, q quit"
	}
	c.text(0, 0, status, tcell.StyleDefault.Reverse(true))
}

func enemyGlyph(kind string) rune {
	switch component.EnemyKind(kind) {
	case component.KindEyeball:
		return 'E'
	case component.KindFlockSphere:
		return 'F'
	}
	return '?'
}

func healthStyle(a arena.Actor) tcell.Style {
	style := tcell.StyleDefault.Foreground(tcell.ColorGreen)
	if a.Total <= 0 {
		return style
	}
	switch frac := a.Current / a.Total; {
	case frac < 0.34:
		style = tcell.StyleDefault.Foreground(tcell.ColorRed)
	case frac < 0.67:
		style = tcell.StyleDefault.Foreground(tcell.ColorYellow)
	}
	return style
}

func (c *canvas) blit(screen tcell.Screen) {
	for y := 0; y < c.h; y++ {
		for x := 0; x < c.w; x++ {
			cl := c.cells[y*c.w+x]
			screen.SetContent(x, y, cl.r, nil, cl.style)
		}
	}
}
