package vecmath

import (
	"github.com/chewxy/math32"
)

// Vec3 represents a 3D vector or an RGB color
type Vec3 struct {
	X, Y, Z float32
}

// Dot calculates the dot product of two vectors
func Dot(a, b Vec3) float32 {
	return a.X*b.X + a.Y*b.Y + a.Z*b.Z
}

// Normalize scales v in place to unit length.
// v must be nonzero: a zero vector ends up with non-finite components.
func (v *Vec3) Normalize() {
	inv := 1 / math32.Sqrt(Dot(*v, *v))

	v.X *= inv
	v.Y *= inv
	v.Z *= inv
}

// Normalized returns a unit-length copy of v
func (v Vec3) Normalized() Vec3 {
	v.Normalize()
	return v
}

// Reflect mirrors d about the unit normal n
func Reflect(d, n Vec3) Vec3 {
	k := 2 * Dot(n, d)
	return Vec3{
		X: d.X - k*n.X,
		Y: d.Y - k*n.Y,
		Z: d.Z - k*n.Z,
	}
}

// Add adds two vectors
func (v Vec3) Add(other Vec3) Vec3 {
	return Vec3{v.X + other.X, v.Y + other.Y, v.Z + other.Z}
}

// Sub subtracts a vector from another
func (v Vec3) Sub(other Vec3) Vec3 {
	return Vec3{v.X - other.X, v.Y - other.Y, v.Z - other.Z}
}

// Scale multiplies a vector by a scalar
func (v Vec3) Scale(s float32) Vec3 {
	return Vec3{v.X * s, v.Y * s, v.Z * s}
}

// Mul multiplies two vectors componentwise (color modulation)
func (v Vec3) Mul(other Vec3) Vec3 {
	return Vec3{v.X * other.X, v.Y * other.Y, v.Z * other.Z}
}

// LenSq returns the squared length of the vector
func (v Vec3) LenSq() float32 {
	return Dot(v, v)
}

// Len returns the length of the vector
func (v Vec3) Len() float32 {
	return math32.Sqrt(Dot(v, v))
}
