package engine

import (
	"github.com/chewxy/math32"

	vm "spheres/internal/vecmath"
)

// Hit describes a ray-sphere intersection
type Hit struct {
	T         float32 // Parametric distance along the ray
	Point     vm.Vec3 // Intersection point
	Normal    vm.Vec3 // Outward unit normal at Point
	Reflected vm.Vec3 // Ray direction mirrored about Normal
}

// Intersect intersects the ray s + t*d (d unit length) with the sphere (c, r).
// The near root is used unless invert is set, in which case the far root
// (the exit surface) is returned. Roots at or behind the origin are misses.
func Intersect(s, d, c vm.Vec3, r float32, invert bool) (Hit, bool) {
	v := s.Sub(c)
	vd := vm.Dot(v, d)

	disc := vd*vd - (vm.Dot(v, v) - r*r)
	if disc < 0 {
		return Hit{}, false
	}

	var t float32
	if invert {
		t = -vd + math32.Sqrt(disc)
	} else {
		t = -vd - math32.Sqrt(disc)
	}
	if t <= 0 {
		return Hit{}, false
	}

	p := s.Add(d.Scale(t))
	n := p.Sub(c)
	n.Normalize()

	return Hit{
		T:         t,
		Point:     p,
		Normal:    n,
		Reflected: vm.Reflect(d, n),
	}, true
}
