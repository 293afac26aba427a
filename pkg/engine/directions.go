package engine

import (
	vm "spheres/internal/vecmath"
)

// fieldOfView scales the horizontal extent of the image plane at z = -1
const fieldOfView = 2

// DirectionCache holds the primary ray direction of every pixel for one
// resolution. It is rebuilt whole whenever the resolution changes.
type DirectionCache struct {
	width  int
	height int
	dirs   []vm.Vec3
}

// NewDirectionCache returns an empty cache; call Ensure before use
func NewDirectionCache() *DirectionCache {
	return &DirectionCache{}
}

// Ensure makes the cache valid for width x height.
// It reports whether the grid had to be rebuilt.
func (c *DirectionCache) Ensure(width, height int) bool {
	if c.dirs != nil && c.width == width && c.height == height {
		return false
	}

	dirs := make([]vm.Vec3, width*height)

	kx := float32(fieldOfView)
	ky := fieldOfView * float32(height) / float32(width)
	w, h := float32(width), float32(height)

	for y := 0; y < height; y++ {
		row := dirs[y*width : (y+1)*width]
		dy := (float32(y)/h - 0.5) * ky
		for x := range row {
			row[x] = vm.Vec3{
				X: (float32(x)/w - 0.5) * kx,
				Y: dy,
				Z: -1,
			}
			row[x].Normalize()
		}
	}

	c.dirs = dirs
	c.width = width
	c.height = height
	return true
}

// Size returns the resolution the cache is valid for
func (c *DirectionCache) Size() (int, int) {
	return c.width, c.height
}

// At returns the primary ray direction of pixel (x, y)
func (c *DirectionCache) At(x, y int) vm.Vec3 {
	return c.dirs[y*c.width+x]
}

// Row returns the directions of row y. The slice must not be modified.
func (c *DirectionCache) Row(y int) []vm.Vec3 {
	return c.dirs[y*c.width : (y+1)*c.width]
}
