package engine

import (
	"testing"

	vm "spheres/internal/vecmath"
)

func TestTraceMissIsBlack(t *testing.T) {
	s := mustScene(t, []Object{
		{Position: vm.Vec3{Z: -3}, Radius: 1, Diffuse: gray(1), Specular: gray(1)},
	}, []Light{{Position: vm.Vec3{}, Diffuse: gray(1)}}, gray(1))

	c, depth := NewTracer(s).TraceDepth(vm.Vec3{}, vm.Vec3{Z: 1})
	if c != (vm.Vec3{}) || depth != 0 {
		t.Fatalf("miss = %v at depth %d, want black at 0", c, depth)
	}
}

func TestSubtractiveSphereIsInvisible(t *testing.T) {
	s := mustScene(t, []Object{
		{Position: vm.Vec3{Z: -3}, Radius: 1, Diffuse: gray(1), Specular: gray(1), Role: Subtractive},
	}, []Light{{Position: vm.Vec3{}, Diffuse: gray(1)}}, gray(1))

	if c := NewTracer(s).Trace(vm.Vec3{}, vm.Vec3{Z: -1}); c != (vm.Vec3{}) {
		t.Fatalf("subtractive sphere rendered as %v", c)
	}
}

func TestDepthCutoff(t *testing.T) {
	// Two spheres facing each other along Z bounce the axial ray forever.
	diffuse, specular := float32(.5), float32(.5)
	s := mustScene(t, []Object{
		{Position: vm.Vec3{Z: -3}, Radius: 1, Diffuse: gray(diffuse), Specular: gray(specular)},
		{Position: vm.Vec3{Z: 3}, Radius: 1, Diffuse: gray(diffuse), Specular: gray(specular)},
	}, nil, gray(1))

	c, depth := NewTracer(s).TraceDepth(vm.Vec3{}, vm.Vec3{Z: -1})
	if depth != MaxDepth {
		t.Fatalf("deepest level = %d, want %d", depth, MaxDepth)
	}

	// ambient*diffuse summed over MaxDepth levels, attenuated by specular
	var want, k float32 = 0, 1
	for i := 0; i < MaxDepth; i++ {
		want += diffuse * k
		k *= specular
	}
	if !near(c.X, want) || !near(c.Y, want) || !near(c.Z, want) {
		t.Fatalf("color = %v, want %v per channel", c, want)
	}
}

func TestLightAlongNormalIsMaximal(t *testing.T) {
	obj := Object{Position: vm.Vec3{Z: -3}, Radius: 1, Diffuse: gray(1)}
	hit, ok := Intersect(vm.Vec3{}, vm.Vec3{Z: -1}, obj.Position, obj.Radius, false)
	if !ok {
		t.Fatal("expected hit")
	}

	onAxis := lightContribution(&Light{Position: vm.Vec3{}, Diffuse: gray(1)}, &obj, hit, 1)
	if !(onAxis.X > 0) || !near(onAxis.X, 0.5) {
		t.Fatalf("on-axis contribution = %v, want 0.5", onAxis)
	}

	// same distance from the hit point, rotated away from the normal
	for _, p := range []vm.Vec3{
		{X: 1, Z: -2 + 1.7320508},
		{Y: 1.4142135, Z: -2 + 1.4142135},
		{X: -1.9, Z: -2 + 0.6244998},
	} {
		off := lightContribution(&Light{Position: p, Diffuse: gray(1)}, &obj, hit, 1)
		if off.X >= onAxis.X {
			t.Errorf("light at %v contributes %v, not less than on-axis %v", p, off.X, onAxis.X)
		}
	}

	behind := lightContribution(&Light{Position: vm.Vec3{Z: -5}, Diffuse: gray(1)}, &obj, hit, 1)
	if behind != (vm.Vec3{}) {
		t.Fatalf("light behind surface contributes %v", behind)
	}
}

func TestLightContributionFadesWithDepth(t *testing.T) {
	obj := Object{Position: vm.Vec3{Z: -3}, Radius: 1, Diffuse: gray(1)}
	hit, _ := Intersect(vm.Vec3{}, vm.Vec3{Z: -1}, obj.Position, obj.Radius, false)
	l := &Light{Position: vm.Vec3{}, Diffuse: gray(1)}

	if c := lightContribution(l, &obj, hit, 3); !near(c.X, 0.125) {
		t.Errorf("depth 3 contribution = %v, want 0.125", c.X)
	}
	// 1/2^5 = 0.03125 is below the cutoff
	if c := lightContribution(l, &obj, hit, 5); c != (vm.Vec3{}) {
		t.Errorf("depth 5 contribution = %v, want none", c)
	}
}

func TestTraceSingleSphereWithLight(t *testing.T) {
	s := mustScene(t, []Object{
		{Position: vm.Vec3{Z: -3}, Radius: 1, Diffuse: vm.Vec3{X: 1, Y: .5}, Specular: vm.Vec3{}},
	}, []Light{
		{Position: vm.Vec3{}, Diffuse: gray(1)},
		{Position: vm.Vec3{Z: -10}, Diffuse: gray(1)},
	}, vm.Vec3{})

	c := NewTracer(s).Trace(vm.Vec3{}, vm.Vec3{Z: -1})
	want := vm.Vec3{X: .5, Y: .25}
	if !nearVec(c, want) {
		t.Fatalf("color = %v, want %v", c, want)
	}
}

func TestCarveReplacesHitInsideSubtractiveVolume(t *testing.T) {
	s := mustScene(t, []Object{
		{Position: vm.Vec3{Z: -3}, Radius: 1, Diffuse: gray(1), Specular: gray(0)},
		{Position: vm.Vec3{Z: -2}, Radius: .5, Role: Subtractive},
	}, nil, vm.Vec3{})
	tr := NewTracer(s)

	s0, d := vm.Vec3{}, vm.Vec3{Z: -1}
	hit, _ := Intersect(s0, d, s.Objects[0].Position, s.Objects[0].Radius, false)
	carved := tr.carve(s0, d, hit)

	if !nearVec(carved.Point, vm.Vec3{Z: -2.5}) {
		t.Errorf("carved point = %v, want (0,0,-2.5)", carved.Point)
	}
	if !nearVec(carved.Normal, vm.Vec3{Z: -1}) {
		t.Errorf("carved normal = %v, want (0,0,-1)", carved.Normal)
	}
	if !nearVec(carved.Reflected, vm.Vec3{Z: 1}) {
		t.Errorf("carved reflection = %v, want (0,0,1)", carved.Reflected)
	}

	// a hit outside the subtractive volume is left alone
	s1 := vm.Vec3{Y: .8}
	hit, ok := Intersect(s1, d, s.Objects[0].Position, s.Objects[0].Radius, false)
	if !ok {
		t.Fatal("expected hit")
	}
	if got := tr.carve(s1, d, hit); got != hit {
		t.Errorf("hit outside cavity changed: %v -> %v", hit, got)
	}
}

func TestCarvedSurfaceIsLit(t *testing.T) {
	s := mustScene(t, []Object{
		{Position: vm.Vec3{Z: -3}, Radius: 1, Diffuse: gray(1), Specular: gray(0)},
		{Position: vm.Vec3{Z: -2}, Radius: .5, Role: Subtractive},
	}, []Light{{Position: vm.Vec3{}, Diffuse: gray(1)}}, vm.Vec3{})

	// cavity floor at z=-2.5 faces the light at the origin
	c := NewTracer(s).Trace(vm.Vec3{}, vm.Vec3{Z: -1})
	if !near(c.X, 0.5) {
		t.Fatalf("cavity color = %v, want 0.5", c)
	}
}

func TestFirstSubtractiveSphereWins(t *testing.T) {
	s := mustScene(t, []Object{
		{Position: vm.Vec3{Z: -3}, Radius: 1, Diffuse: gray(1)},
		{Position: vm.Vec3{Z: -2}, Radius: .5, Role: Subtractive},
		{Position: vm.Vec3{Z: -2}, Radius: .8, Role: Subtractive},
	}, nil, vm.Vec3{})

	d := vm.Vec3{Z: -1}
	hit, _ := Intersect(vm.Vec3{}, d, s.Objects[0].Position, s.Objects[0].Radius, false)
	carved := NewTracer(s).carve(vm.Vec3{}, d, hit)
	if !nearVec(carved.Point, vm.Vec3{Z: -2.5}) {
		t.Fatalf("carved point = %v, want the first cavity at (0,0,-2.5)", carved.Point)
	}
}

func TestNearestHitWins(t *testing.T) {
	s := mustScene(t, []Object{
		{Position: vm.Vec3{Z: -6}, Radius: 1, Diffuse: vm.Vec3{X: 1}},
		{Position: vm.Vec3{Z: -3}, Radius: 1, Diffuse: vm.Vec3{Y: 1}},
	}, nil, gray(1))

	c := NewTracer(s).Trace(vm.Vec3{}, vm.Vec3{Z: -1})
	if c.X != 0 || !near(c.Y, 1) {
		t.Fatalf("color = %v, want the nearer green sphere", c)
	}
}

func TestCoincidentSubtractiveCarvesBowl(t *testing.T) {
	s := mustScene(t, []Object{
		{Position: vm.Vec3{Z: -3}, Radius: 1, Diffuse: gray(1)},
		{Position: vm.Vec3{Z: -3}, Radius: 1.25, Role: Subtractive, Motion: Motion{Kind: Follow, Host: 0}},
	}, []Light{{Position: vm.Vec3{}, Diffuse: gray(1)}}, vm.Vec3{})
	s.Animate(0)
	tr := NewTracer(s)

	d := vm.Vec3{Z: -1}
	hit, _ := Intersect(vm.Vec3{}, d, s.Objects[0].Position, s.Objects[0].Radius, false)
	carved := tr.carve(vm.Vec3{}, d, hit)

	// exit surface of the subtractive sphere, behind the host centre
	if !nearVec(carved.Point, vm.Vec3{Z: -4.25}) {
		t.Errorf("carved point = %v, want (0,0,-4.25)", carved.Point)
	}
	if !nearVec(carved.Reflected, vm.Vec3{Z: 1}) {
		t.Errorf("carved reflection = %v, want (0,0,1)", carved.Reflected)
	}

	// the bowl floor faces the light at the origin: 4.25/4.25/2
	if c := tr.Trace(vm.Vec3{}, d); !near(c.X, 0.5) {
		t.Errorf("bowl color = %v, want 0.5", c)
	}
}

func TestRoleChangeAfterConstruction(t *testing.T) {
	s := mustScene(t, []Object{
		{Position: vm.Vec3{Z: -3}, Radius: 1, Diffuse: gray(1)},
	}, nil, gray(1))
	tr := NewTracer(s)

	if c := tr.Trace(vm.Vec3{}, vm.Vec3{Z: -1}); !near(c.X, 1) {
		t.Fatalf("ordinary sphere color = %v, want 1", c)
	}

	s.Objects[0].Role = Subtractive
	if c := tr.Trace(vm.Vec3{}, vm.Vec3{Z: -1}); c != (vm.Vec3{}) {
		t.Fatalf("sphere switched to subtractive still visible: %v", c)
	}
	if s.Count(Subtractive) != 1 || s.Count(Ordinary) != 0 {
		t.Fatalf("Count does not reflect role change")
	}
}
