package engine

import (
	vm "spheres/internal/vecmath"
)

const (
	// MaxDepth is the deepest recursion level that still contributes color;
	// rays bouncing inside carved cavities stop here.
	MaxDepth = 6

	// minLightScale drops light contributions too faint to matter
	minLightScale = 0.05
)

// Tracer shades rays against a scene
type Tracer struct {
	scene *Scene
}

// NewTracer creates a tracer bound to the given scene
func NewTracer(scene *Scene) *Tracer {
	return &Tracer{scene: scene}
}

// Trace returns the unclamped linear color seen along the ray s + t*d
func (tr *Tracer) Trace(s, d vm.Vec3) vm.Vec3 {
	c, _ := tr.trace(s, d, 1)
	return c
}

// TraceDepth is like Trace but also reports the deepest recursion level at
// which a surface was hit (0 when the primary ray misses everything).
func (tr *Tracer) TraceDepth(s, d vm.Vec3) (vm.Vec3, int) {
	return tr.trace(s, d, 1)
}

func (tr *Tracer) trace(s, d vm.Vec3, n int) (vm.Vec3, int) {
	if n > MaxDepth {
		return vm.Vec3{}, n - 1
	}

	objects := tr.scene.Objects

	var (
		best  Hit
		obj   = -1
		found bool
	)
	for i := range objects {
		o := &objects[i]
		if o.Role != Ordinary {
			continue
		}
		hit, ok := Intersect(s, d, o.Position, o.Radius, false)
		if ok && (!found || hit.T < best.T) {
			best, obj, found = hit, i, true
		}
	}
	if !found {
		return vm.Vec3{}, n - 1
	}

	best = tr.carve(s, d, best)

	o := &objects[obj]
	bounce, depth := tr.trace(best.Point, best.Reflected, n+1)

	pixel := bounce.Mul(o.Specular).Add(tr.scene.Ambient.Mul(o.Diffuse))
	for i := range tr.scene.Lights {
		pixel = pixel.Add(lightContribution(&tr.scene.Lights[i], o, best, n))
	}

	return pixel, depth
}

// carve replaces hit with the exit surface of the first subtractive sphere
// whose volume contains the hit point.
func (tr *Tracer) carve(s, d vm.Vec3, hit Hit) Hit {
	objects := tr.scene.Objects
	for i := range objects {
		sub := &objects[i]
		if sub.Role != Subtractive {
			continue
		}
		if hit.Point.Sub(sub.Position).LenSq() > sub.Radius*sub.Radius {
			continue
		}
		if exit, ok := Intersect(s, d, sub.Position, sub.Radius, true); ok {
			return exit
		}
		return hit
	}
	return hit
}

// lightContribution is the light reflected towards the viewer at recursion
// level n. Lights behind the reflected ray or fainter than minLightScale add nothing.
func lightContribution(l *Light, o *Object, hit Hit, n int) vm.Vec3 {
	dir := l.Position.Sub(hit.Point)

	lr := vm.Dot(dir, hit.Reflected)
	if lr <= 0 {
		return vm.Vec3{}
	}

	scale := lr / dir.Len() / float32(int(1)<<n)
	if scale <= minLightScale {
		return vm.Vec3{}
	}

	return l.Diffuse.Mul(o.Diffuse).Scale(scale)
}
