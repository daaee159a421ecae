// Package csg implements Constructive Solid Geometry boolean operations
// (union, subtract, intersect) over convex boundary polygons via Binary
// Space Partitioning trees, following the BSP-CSG algorithm used by
// evanw's csg.js and its many ports.
package csg

import "math"

// Vector3 is an ordered triple of finite real numbers.
type Vector3 struct {
	X, Y, Z float64
}

// Add returns v+o.
func (v Vector3) Add(o Vector3) Vector3 {
	return Vector3{v.X + o.X, v.Y + o.Y, v.Z + o.Z}
}

// Sub returns v-o.
func (v Vector3) Sub(o Vector3) Vector3 {
	return Vector3{v.X - o.X, v.Y - o.Y, v.Z - o.Z}
}

// Scale returns v scaled by s.
func (v Vector3) Scale(s float64) Vector3 {
	return Vector3{v.X * s, v.Y * s, v.Z * s}
}

// Negate returns -v.
func (v Vector3) Negate() Vector3 {
	return Vector3{-v.X, -v.Y, -v.Z}
}

// Dot returns the dot product of v and o.
func (v Vector3) Dot(o Vector3) float64 {
	return v.X*o.X + v.Y*o.Y + v.Z*o.Z
}

// Cross returns the cross product v x o.
func (v Vector3) Cross(o Vector3) Vector3 {
	return Vector3{
		X: v.Y*o.Z - v.Z*o.Y,
		Y: v.Z*o.X - v.X*o.Z,
		Z: v.X*o.Y - v.Y*o.X,
	}
}

// Length returns the Euclidean length of v.
func (v Vector3) Length() float64 {
	return math.Sqrt(v.Dot(v))
}

// Normalize returns a unit-length copy of v. The zero vector normalizes to
// itself rather than producing NaNs.
func (v Vector3) Normalize() Vector3 {
	l := v.Length()
	if l == 0 {
		return v
	}
	return v.Scale(1 / l)
}

// Lerp linearly interpolates between a and b by t.
func Lerp(a, b Vector3, t float64) Vector3 {
	return a.Add(b.Sub(a).Scale(t))
}

// Dot is the package-level helper required by the core interface: the dot
// product of two Vector3 values (ignoring any plane offset).
func Dot(a, b Vector3) float64 {
	return a.Dot(b)
}

// PolygonNormal returns the unit normal of the triangle p0,p1,p2 via the
// right-hand rule.
func PolygonNormal(p0, p1, p2 Vector3) Vector3 {
	return p1.Sub(p0).Cross(p2.Sub(p0)).Normalize()
}
