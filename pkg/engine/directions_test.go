package engine

import (
	"testing"

	vm "spheres/internal/vecmath"
)

func TestDirectionCacheGeometry(t *testing.T) {
	c := NewDirectionCache()
	if !c.Ensure(4, 2) {
		t.Fatal("first Ensure must build the grid")
	}
	if w, h := c.Size(); w != 4 || h != 2 {
		t.Fatalf("Size = %dx%d", w, h)
	}

	// pixel (2, 1) sits exactly on the optical axis
	if d := c.At(2, 1); !nearVec(d, vm.Vec3{Z: -1}) {
		t.Errorf("centre direction = %v, want (0,0,-1)", d)
	}

	// top-left corner: ((0-0.5)*2, (0-0.5)*2*2/4, -1)
	want := vm.Vec3{X: -1, Y: -0.5, Z: -1}.Normalized()
	if d := c.At(0, 0); !nearVec(d, want) {
		t.Errorf("corner direction = %v, want %v", d, want)
	}

	for y := 0; y < 2; y++ {
		for x, d := range c.Row(y) {
			if !near(d.Len(), 1) {
				t.Errorf("(%d,%d) not unit length: %v", x, y, d)
			}
			if d != c.At(x, y) {
				t.Errorf("Row and At disagree at (%d,%d)", x, y)
			}
		}
	}
}

func TestDirectionCacheReuse(t *testing.T) {
	c := NewDirectionCache()
	c.Ensure(8, 8)
	if c.Ensure(8, 8) {
		t.Fatal("same resolution must not rebuild")
	}
	if !c.Ensure(8, 9) {
		t.Fatal("new resolution must rebuild")
	}
}

func TestDirectionCacheResizeRoundTrip(t *testing.T) {
	c := NewDirectionCache()
	c.Ensure(64, 48)
	before := append([]vm.Vec3(nil), c.dirs...)

	c.Ensure(17, 93)
	if len(c.dirs) != 17*93 {
		t.Fatalf("grid has %d entries, want %d", len(c.dirs), 17*93)
	}

	c.Ensure(64, 48)
	if len(c.dirs) != len(before) {
		t.Fatalf("grid has %d entries after round trip, want %d", len(c.dirs), len(before))
	}
	for i := range before {
		if c.dirs[i] != before[i] {
			t.Fatalf("direction %d changed: %v != %v", i, c.dirs[i], before[i])
		}
	}
}
