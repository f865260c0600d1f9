package nav

import (
	"errors"
	"math"
	"math/rand"
	"testing"

	"github.com/jakecoffman/cp"
)

func TestNewMeshRejectsDegenerate(t *testing.T) {
	cases := []struct {
		name string
		tris []Triangle
	}{
		{"empty", nil},
		{"collinear", []Triangle{{{X: 0, Y: 0}, {X: 1, Y: 1}, {X: 2, Y: 2}}}},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if _, err := NewMesh(c.tris); !errors.Is(err, ErrDegenerateMesh) {
				t.Fatalf("expected ErrDegenerateMesh, got %v", err)
			}
		})
	}
}

func TestMeshContains(t *testing.T) {
	m, err := NewMesh(Rect(cp.Vector{}, 4, 2))
	if err != nil {
		t.Fatalf("NewMesh: %v", err)
	}
	cases := []struct {
		name string
		p    cp.Vector
		want bool
	}{
		{"center", cp.Vector{}, true},
		{"corner", cp.Vector{X: 2, Y: 1}, true},
		{"inside_edge", cp.Vector{X: -1.9, Y: 0.9}, true},
		{"outside_x", cp.Vector{X: 2.1, Y: 0}, false},
		{"outside_z", cp.Vector{X: 0, Y: -1.5}, false},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if got := m.Contains(c.p); got != c.want {
				t.Fatalf("Contains(%v) = %v, want %v", c.p, got, c.want)
			}
		})
	}
	if math.Abs(m.Area()-8) > 1e-9 {
		t.Fatalf("expected area 8, got %v", m.Area())
	}
}

func TestSamplePointStaysOnSurface(t *testing.T) {
	m, err := NewMesh(Rect(cp.Vector{X: 3, Y: -2}, 6, 6))
	if err != nil {
		t.Fatalf("NewMesh: %v", err)
	}
	rng := rand.New(rand.NewSource(7))
	var left int
	const n = 2000
	for i := 0; i < n; i++ {
		p := m.SamplePoint(rng)
		if !m.Contains(p) {
			t.Fatalf("sample %v left the mesh", p)
		}
		if p.X < 3 {
			left++
		}
	}
	// halves of the square have equal area
	if left < n*4/10 || left > n*6/10 {
		t.Fatalf("samples not area-uniform: %d of %d on the left half", left, n)
	}
}

func TestSamplingSurfaceMayExceedWalkable(t *testing.T) {
	m, err := NewMeshWithSampling(Rect(cp.Vector{}, 2, 2), Rect(cp.Vector{}, 20, 20))
	if err != nil {
		t.Fatalf("NewMeshWithSampling: %v", err)
	}
	rng := rand.New(rand.NewSource(1))
	var outside int
	for i := 0; i < 200; i++ {
		if !m.Contains(m.SamplePoint(rng)) {
			outside++
		}
	}
	if outside == 0 {
		t.Fatalf("expected some samples outside the walkable surface")
	}
}

func TestFanOctagon(t *testing.T) {
	outline := []cp.Vector{
		{X: -1, Y: -2}, {X: 1, Y: -2}, {X: 2, Y: -1}, {X: 2, Y: 1},
		{X: 1, Y: 2}, {X: -1, Y: 2}, {X: -2, Y: 1}, {X: -2, Y: -1},
	}
	tris := Fan(outline)
	if len(tris) != 6 {
		t.Fatalf("expected 6 triangles, got %d", len(tris))
	}
	m, err := NewMesh(tris)
	if err != nil {
		t.Fatalf("NewMesh: %v", err)
	}
	// 4x4 square minus four corner triangles of area 0.5
	if math.Abs(m.Area()-14) > 1e-9 {
		t.Fatalf("expected area 14, got %v", m.Area())
	}
	if m.Contains(cp.Vector{X: 1.9, Y: 1.9}) {
		t.Fatalf("cut corner should not be walkable")
	}
	if Fan(outline[:2]) != nil {
		t.Fatalf("two points cannot form a surface")
	}
}
