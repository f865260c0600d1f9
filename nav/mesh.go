// Package nav holds the walkable surface enemies roam on.
package nav

import (
	"errors"
	"fmt"
	"math"
	"math/rand"
	"sort"

	"github.com/jakecoffman/cp"
)

var ErrDegenerateMesh = errors.New("nav: mesh has no area")

// Triangle is a walkable face on the XZ plane.
type Triangle [3]cp.Vector

func (t Triangle) area() float64 {
	ab := t[1].Sub(t[0])
	ac := t[2].Sub(t[0])
	return math.Abs(ab.Cross(ac)) / 2
}

func (t Triangle) bounds() cp.BB {
	return cp.BB{
		L: math.Min(t[0].X, math.Min(t[1].X, t[2].X)),
		B: math.Min(t[0].Y, math.Min(t[1].Y, t[2].Y)),
		R: math.Max(t[0].X, math.Max(t[1].X, t[2].X)),
		T: math.Max(t[0].Y, math.Max(t[1].Y, t[2].Y)),
	}
}

func mergeBB(a, b cp.BB) cp.BB {
	return cp.BB{L: math.Min(a.L, b.L), B: math.Min(a.B, b.B), R: math.Max(a.R, b.R), T: math.Max(a.T, b.T)}
}

func bbContains(bb cp.BB, p cp.Vector) bool {
	return p.X >= bb.L && p.X <= bb.R && p.Y >= bb.B && p.Y <= bb.T
}

// contains uses edge signs so it works for either winding. Points on an edge
// count as inside.
func (t Triangle) contains(p cp.Vector) bool {
	d1 := edgeSign(p, t[0], t[1])
	d2 := edgeSign(p, t[1], t[2])
	d3 := edgeSign(p, t[2], t[0])
	hasNeg := d1 < 0 || d2 < 0 || d3 < 0
	hasPos := d1 > 0 || d2 > 0 || d3 > 0
	return !(hasNeg && hasPos)
}

func edgeSign(p, a, b cp.Vector) float64 {
	return (p.X-b.X)*(a.Y-b.Y) - (a.X-b.X)*(p.Y-b.Y)
}

// surface is a triangle set with a cumulative area table for weighted picks.
type surface struct {
	tris   []Triangle
	cumul  []float64
	total  float64
	bounds cp.BB
}

func newSurface(tris []Triangle) (surface, error) {
	s := surface{tris: make([]Triangle, 0, len(tris))}
	first := true
	for _, t := range tris {
		a := t.area()
		if a <= 0 {
			continue
		}
		s.tris = append(s.tris, t)
		s.total += a
		s.cumul = append(s.cumul, s.total)
		if first {
			s.bounds = t.bounds()
			first = false
		} else {
			s.bounds = mergeBB(s.bounds, t.bounds())
		}
	}
	if s.total <= 0 {
		return surface{}, ErrDegenerateMesh
	}
	return s, nil
}

func (s *surface) pick(rng *rand.Rand) cp.Vector {
	r := rng.Float64() * s.total
	i := sort.SearchFloat64s(s.cumul, r)
	if i >= len(s.tris) {
		i = len(s.tris) - 1
	}
	t := s.tris[i]
	// uniform barycentric sample, folding the far half back into the triangle
	u, v := rng.Float64(), rng.Float64()
	if u+v > 1 {
		u, v = 1-u, 1-v
	}
	return t[0].Add(t[1].Sub(t[0]).Mult(u)).Add(t[2].Sub(t[0]).Mult(v))
}

func (s *surface) contains(p cp.Vector) bool {
	if !bbContains(s.bounds, p) {
		return false
	}
	for _, t := range s.tris {
		if t.contains(p) {
			return true
		}
	}
	return false
}

// Mesh answers where enemies may walk. Samples are drawn from the sampling
// surface, which may extend past the walkable one, so callers must check
// Contains before using a sample.
type Mesh struct {
	walkable surface
	sampling surface
}

// NewMesh builds a mesh that samples from its own walkable triangles.
func NewMesh(walkable []Triangle) (*Mesh, error) {
	return NewMeshWithSampling(walkable, nil)
}

// NewMeshWithSampling builds a mesh whose samples come from a different
// triangle set. A nil sampling set falls back to the walkable one.
func NewMeshWithSampling(walkable, sampling []Triangle) (*Mesh, error) {
	w, err := newSurface(walkable)
	if err != nil {
		return nil, fmt.Errorf("nav: walkable surface: %w", err)
	}
	m := &Mesh{walkable: w, sampling: w}
	if sampling != nil {
		s, err := newSurface(sampling)
		if err != nil {
			return nil, fmt.Errorf("nav: sampling surface: %w", err)
		}
		m.sampling = s
	}
	return m, nil
}

// Rect returns two triangles covering the axis-aligned rectangle centred on
// center.
func Rect(center cp.Vector, width, depth float64) []Triangle {
	hw, hd := width/2, depth/2
	a := cp.Vector{X: center.X - hw, Y: center.Y - hd}
	b := cp.Vector{X: center.X + hw, Y: center.Y - hd}
	c := cp.Vector{X: center.X + hw, Y: center.Y + hd}
	d := cp.Vector{X: center.X - hw, Y: center.Y + hd}
	return []Triangle{{a, b, c}, {a, c, d}}
}

// SamplePoint returns an area-uniform point on the sampling surface.
func (m *Mesh) SamplePoint(rng *rand.Rand) cp.Vector {
	return m.sampling.pick(rng)
}

// Contains reports whether p lies on the walkable surface.
func (m *Mesh) Contains(p cp.Vector) bool {
	if m == nil {
		return false
	}
	return m.walkable.contains(p)
}

// Bounds returns the walkable surface's bounding box.
func (m *Mesh) Bounds() cp.BB {
	return m.walkable.bounds
}

// Triangles returns the walkable faces.
func (m *Mesh) Triangles() []Triangle {
	out := make([]Triangle, len(m.walkable.tris))
	copy(out, m.walkable.tris)
	return out
}

// Area returns the walkable area.
func (m *Mesh) Area() float64 {
	return m.walkable.total
}

// Fan triangulates a convex outline from its first vertex.
func Fan(outline []cp.Vector) []Triangle {
	if len(outline) < 3 {
		return nil
	}
	tris := make([]Triangle, 0, len(outline)-2)
	for i := 1; i+1 < len(outline); i++ {
		tris = append(tris, Triangle{outline[0], outline[i], outline[i+1]})
	}
	return tris
}
