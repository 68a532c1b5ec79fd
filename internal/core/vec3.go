package core

import "math"

// Vec3 is a world-space vector. Y is up; the ground plane is X/Z.
type Vec3 struct {
	X, Y, Z float64
}

// V3 is shorthand for building a Vec3.
func V3(x, y, z float64) Vec3 {
	return Vec3{X: x, Y: y, Z: z}
}

// Add returns v + o.
func (v Vec3) Add(o Vec3) Vec3 {
	return Vec3{v.X + o.X, v.Y + o.Y, v.Z + o.Z}
}

// Sub returns v - o.
func (v Vec3) Sub(o Vec3) Vec3 {
	return Vec3{v.X - o.X, v.Y - o.Y, v.Z - o.Z}
}

// Scale returns v * s.
func (v Vec3) Scale(s float64) Vec3 {
	return Vec3{v.X * s, v.Y * s, v.Z * s}
}

// Dot returns the dot product of v and o.
func (v Vec3) Dot(o Vec3) float64 {
	return v.X*o.X + v.Y*o.Y + v.Z*o.Z
}

// LenSq returns the squared length. Prefer it for threshold comparisons.
func (v Vec3) LenSq() float64 {
	return v.Dot(v)
}

// Len returns the Euclidean length.
func (v Vec3) Len() float64 {
	return math.Sqrt(v.LenSq())
}

// Normalize returns the unit vector in the direction of v.
// The zero vector normalizes to itself.
func (v Vec3) Normalize() Vec3 {
	l := v.Len()
	if l == 0 {
		return Vec3{}
	}
	return v.Scale(1 / l)
}

// WithLen rescales v to the given length.
func (v Vec3) WithLen(length float64) Vec3 {
	return v.Normalize().Scale(length)
}

// DistSq returns the squared distance between two points.
func DistSq(a, b Vec3) float64 {
	return a.Sub(b).LenSq()
}

// Within reports whether a and b are strictly closer than radius.
func Within(a, b Vec3, radius float64) bool {
	return DistSq(a, b) < radius*radius
}

// IsFinite reports whether every component is a finite number.
func (v Vec3) IsFinite() bool {
	return !math.IsNaN(v.X+v.Y+v.Z) && !math.IsInf(v.X+v.Y+v.Z, 0)
}

// Forward returns the unit facing vector on the ground plane for a yaw angle.
// Yaw 0 faces +Z; increasing yaw turns left when viewed from above.
func Forward(yaw float64) Vec3 {
	return Vec3{X: math.Sin(yaw), Z: math.Cos(yaw)}
}

// Yaw returns the ground-plane heading of v, the inverse of Forward.
func (v Vec3) Yaw() float64 {
	return math.Atan2(v.X, v.Z)
}
