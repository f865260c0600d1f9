package common

import (
	"math"

	"github.com/jakecoffman/cp"
)

// Vec3 is a world-space position. Y is up; gameplay happens on the XZ plane.
type Vec3 struct {
	X, Y, Z float64
}

// XZ projects v onto the ground plane.
func (v Vec3) XZ() cp.Vector {
	return cp.Vector{X: v.X, Y: v.Z}
}

// WithXZ returns v with its ground-plane coordinates replaced by p.
func (v Vec3) WithXZ(p cp.Vector) Vec3 {
	return Vec3{X: p.X, Y: v.Y, Z: p.Y}
}

// FromXZ lifts a ground-plane point to height y.
func FromXZ(p cp.Vector, y float64) Vec3 {
	return Vec3{X: p.X, Y: y, Z: p.Y}
}

// Ray is a bounded 2D ray with a unit direction.
type Ray struct {
	Origin cp.Vector
	Dir    cp.Vector
	Max    float64
}

// NewRay normalizes dir. A zero direction yields a ray that hits nothing.
func NewRay(origin, dir cp.Vector, max float64) Ray {
	if dir.LengthSq() == 0 {
		return Ray{Origin: origin, Max: -1}
	}
	return Ray{Origin: origin, Dir: dir.Normalize(), Max: max}
}

// CircleHit returns the distance along the ray to the first point inside the
// circle. An origin inside the circle reports 0. Misses, hits behind the origin
// and hits beyond Max report false.
func (r Ray) CircleHit(center cp.Vector, radius float64) (float64, bool) {
	if r.Max < 0 || radius < 0 {
		return 0, false
	}
	offset := r.Origin.Sub(center)
	projected := offset.Dot(r.Dir)
	closest := offset.Sub(r.Dir.Mult(projected))
	dsq := radius*radius - closest.LengthSq()
	if dsq < 0 {
		return 0, false
	}
	// circle lies entirely behind an origin that is outside it
	if math.Copysign(projected*projected, -projected) < -dsq {
		return 0, false
	}
	toi := -projected - math.Sqrt(dsq)
	if toi > r.Max {
		return 0, false
	}
	return math.Max(toi, 0), true
}

// CirclesOverlap reports whether two closed discs intersect.
func CirclesOverlap(a cp.Vector, ra float64, b cp.Vector, rb float64) bool {
	r := ra + rb
	return a.DistanceSq(b) <= r*r
}
