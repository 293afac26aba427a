package engine

import (
	"fmt"
	"math"

	vm "spheres/internal/vecmath"
)

// Role determines how an object takes part in tracing
type Role int

const (
	// Ordinary objects are directly visible
	Ordinary Role = iota
	// Subtractive objects are invisible and carve cavities out of ordinary ones
	Subtractive
)

func (r Role) String() string {
	switch r {
	case Ordinary:
		return "ordinary"
	case Subtractive:
		return "subtractive"
	default:
		return fmt.Sprintf("Role(%d)", int(r))
	}
}

// MotionKind selects the animation applied to an object
type MotionKind int

const (
	Static  MotionKind = iota // keeps its position
	Orbit              // circle of Radius in the XY plane around Center
	Breathe            // Z = Center.Z + Amplitude*sin(Rate*t)
	Follow             // coincident with the object at index Host
)

// Motion describes how an object moves as a function of time.
// Phase is expressed in turns (1 = full circle).
type Motion struct {
	Kind      MotionKind
	Center    vm.Vec3
	Radius    float64
	Phase     float64
	Amplitude float64
	Rate      float64
	Host      int
}

// Object is a sphere in the scene
type Object struct {
	Position vm.Vec3
	Radius   float32
	Diffuse  vm.Vec3
	Specular vm.Vec3
	Role     Role
	Motion   Motion
}

// Light is a static point light
type Light struct {
	Position vm.Vec3
	Diffuse  vm.Vec3
}

// Scene holds everything the tracer reads while rendering a frame.
// It is mutated by Animate before tracing starts and is read-only afterwards.
// The tracer reads each object's Role on every frame.
type Scene struct {
	Objects []Object
	Lights  []Light
	Ambient vm.Vec3
}

// NewScene validates the objects and lights and builds a scene
func NewScene(objects []Object, lights []Light, ambient vm.Vec3) (*Scene, error) {
	s := &Scene{
		Objects: append([]Object(nil), objects...),
		Lights:  append([]Light(nil), lights...),
		Ambient: ambient,
	}

	for i, obj := range s.Objects {
		if !(obj.Radius > 0) {
			return nil, fmt.Errorf("object %d: radius must be positive, got %v", i, obj.Radius)
		}

		if obj.Role != Ordinary && obj.Role != Subtractive {
			return nil, fmt.Errorf("object %d: unknown role %v", i, obj.Role)
		}

		if obj.Motion.Kind == Follow {
			h := obj.Motion.Host
			if h < 0 || h >= len(s.Objects) || h == i {
				return nil, fmt.Errorf("object %d: invalid host index %d", i, h)
			}
			if s.Objects[h].Motion.Kind == Follow {
				return nil, fmt.Errorf("object %d: host %d must not follow another object", i, h)
			}
		}
	}

	return s, nil
}

// DefaultScene returns the animated demo scene: three orbiting spheres, one
// breathing in depth at the centre, and a slightly larger subtractive sphere
// sharing the third orbiting sphere's centre, which turns it into a bowl.
func DefaultScene() *Scene {
	grey := vm.Vec3{X: .5, Y: .5, Z: .5}

	objects := []Object{
		{
			Radius:   1,
			Diffuse:  vm.Vec3{X: .8, Y: 0, Z: .8},
			Specular: grey,
			Motion:   Motion{Kind: Orbit, Center: vm.Vec3{Z: -3}, Radius: 1.5},
		},
		{
			Radius:   1,
			Diffuse:  vm.Vec3{X: 0, Y: .8, Z: .8},
			Specular: grey,
			Motion:   Motion{Kind: Orbit, Center: vm.Vec3{Z: -3}, Radius: 1.5, Phase: 1 / 3.},
		},
		{
			Radius:   .25,
			Diffuse:  vm.Vec3{X: .8, Y: .8, Z: .8},
			Specular: vm.Vec3{X: .8, Y: .8, Z: .8},
			Motion:   Motion{Kind: Breathe, Center: vm.Vec3{Z: -3}, Amplitude: 2, Rate: 2},
		},
		{
			Radius:   1,
			Diffuse:  vm.Vec3{X: .8, Y: .8, Z: 0},
			Specular: grey,
			Motion:   Motion{Kind: Orbit, Center: vm.Vec3{Z: -3}, Radius: 1.5, Phase: 2 / 3.},
		},
		{
			Radius: 1.2,
			Role:   Subtractive,
			Motion: Motion{Kind: Follow, Host: 3},
		},
	}

	lights := []Light{
		{Position: vm.Vec3{X: -3, Y: 3, Z: -4}, Diffuse: vm.Vec3{X: 0, Y: .6, Z: .6}},
		{Position: vm.Vec3{X: 0, Y: 30, Z: -4}, Diffuse: vm.Vec3{X: 1, Y: 1, Z: 1}},
		{Position: vm.Vec3{X: 2, Y: -2, Z: 1}, Diffuse: vm.Vec3{X: .9, Y: .7, Z: .5}},
	}

	s, err := NewScene(objects, lights, vm.Vec3{X: .08, Y: .08, Z: .1})
	if err != nil {
		panic(err)
	}
	s.Animate(0)
	return s
}

// Animate positions every object for elapsed time t (seconds).
// The result depends on t only, so calling it twice with the same t is a no-op.
func (s *Scene) Animate(t float64) {
	// hosts first so followers see this frame's position
	for i := range s.Objects {
		if s.Objects[i].Motion.Kind != Follow {
			s.Objects[i].Position = s.Objects[i].Motion.at(t, s.Objects[i].Position)
		}
	}
	for i := range s.Objects {
		m := &s.Objects[i].Motion
		if m.Kind == Follow {
			s.Objects[i].Position = s.Objects[m.Host].Position
		}
	}
}

func (m Motion) at(t float64, current vm.Vec3) vm.Vec3 {
	switch m.Kind {
	case Orbit:
		a := t + m.Phase*2*math.Pi
		return vm.Vec3{
			X: m.Center.X + float32(m.Radius*math.Cos(a)),
			Y: m.Center.Y + float32(m.Radius*math.Sin(a)),
			Z: m.Center.Z,
		}
	case Breathe:
		return vm.Vec3{
			X: m.Center.X,
			Y: m.Center.Y,
			Z: m.Center.Z + float32(m.Amplitude*math.Sin(m.Rate*t)),
		}
	}
	return current
}

// Clone returns a deep copy of the scene
func (s *Scene) Clone() *Scene {
	c := *s
	c.Objects = append([]Object(nil), s.Objects...)
	c.Lights = append([]Light(nil), s.Lights...)
	return &c
}

// Count returns the number of objects with the given role
func (s *Scene) Count(role Role) int {
	n := 0
	for i := range s.Objects {
		if s.Objects[i].Role == role {
			n++
		}
	}
	return n
}

// String returns a short description used in debug logs
func (s *Scene) String() string {
	return fmt.Sprintf("scene{objects: %d (%d subtractive), lights: %d}",
		len(s.Objects), s.Count(Subtractive), len(s.Lights))
}
